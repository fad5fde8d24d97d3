package menu

import "runtime"

// Platform identifies a target operating system by its GOOS name.
type Platform string

const (
	PlatformDarwin  Platform = "darwin"
	PlatformLinux   Platform = "linux"
	PlatformWindows Platform = "windows"
)

// Current returns the platform the binary runs on.
func Current() Platform {
	return Platform(runtime.GOOS)
}

// KnownPlatforms returns the platforms with an explicit profile.
func KnownPlatforms() []Platform {
	return []Platform{PlatformDarwin, PlatformLinux, PlatformWindows}
}

// Capabilities are the platform conventions the menu and shell depend on.
type Capabilities struct {
	// AppMenu is the global application-named menu (About, Services, Hide, Quit).
	AppMenu bool `json:"app_menu" yaml:"app_menu"`
	// EditMenu is the clipboard menu convention.
	EditMenu bool `json:"edit_menu" yaml:"edit_menu"`
	// HideApplication is an OS-level "hide the whole application" primitive.
	// Without it the shell minimizes its window instead.
	HideApplication bool `json:"hide_application" yaml:"hide_application"`
}

// Profile pairs a platform's capabilities with the ordered directives that
// build its menu bar.
type Profile struct {
	Capabilities Capabilities
	Directives   []Directive
}

var profiles = map[Platform]Profile{
	PlatformDarwin: {
		Capabilities: Capabilities{AppMenu: true, EditMenu: true, HideApplication: true},
		Directives:   []Directive{appSubmenu, fileSubmenu, editSubmenu, viewSubmenu, windowSubmenu},
	},
	PlatformLinux: {
		Capabilities: Capabilities{},
		Directives:   []Directive{fileSubmenu, windowSubmenu},
	},
	PlatformWindows: {
		Capabilities: Capabilities{EditMenu: true},
		Directives:   []Directive{fileSubmenu, editSubmenu, windowSubmenu},
	},
}

// fallbackProfile covers every other platform (the BSDs and friends).
var fallbackProfile = Profile{
	Capabilities: Capabilities{EditMenu: true},
	Directives:   []Directive{fileSubmenu, editSubmenu, windowSubmenu},
}

// ProfileFor returns the profile for p, falling back to the generic profile.
func ProfileFor(p Platform) Profile {
	if profile, ok := profiles[p]; ok {
		return profile
	}
	return fallbackProfile
}

// CapabilitiesFor returns the capabilities of p.
func CapabilitiesFor(p Platform) Capabilities {
	return ProfileFor(p).Capabilities
}
