// Package menu builds the native menu bar model.
//
// The model is plain data: a Bar of Submenus holding Items. Items are either
// custom (they carry an ID and are reported back through menu activation
// events) or native roles that the platform layer implements itself.
package menu

import (
	"slices"
	"strings"
)

// ID identifies a custom menu item. The zero ID means "no id" and is only
// carried by native items.
type ID uint32

// Role describes what a menu item does.
type Role string

const (
	RoleCustom          Role = "custom"
	RoleSeparator       Role = "separator"
	RoleAbout           Role = "about"
	RoleServices        Role = "services"
	RoleHide            Role = "hide"
	RoleHideOthers      Role = "hide-others"
	RoleShowAll         Role = "show-all"
	RoleQuit            Role = "quit"
	RoleUndo            Role = "undo"
	RoleRedo            Role = "redo"
	RoleCut             Role = "cut"
	RoleCopy            Role = "copy"
	RolePaste           Role = "paste"
	RoleSelectAll       Role = "select-all"
	RoleEnterFullScreen Role = "enter-full-screen"
	RoleMinimize        Role = "minimize"
	RoleZoom            Role = "zoom"
)

// Modifier is a platform-neutral accelerator modifier.
type Modifier string

// ModPrimary is Cmd on darwin and Ctrl everywhere else.
const ModPrimary Modifier = "primary"

// Accelerator is a keyboard shortcut bound to a menu item.
type Accelerator struct {
	Modifier Modifier `json:"modifier" yaml:"modifier"`
	Key      string   `json:"key" yaml:"key"`
}

// GTK returns the accelerator in GTK accelerator syntax, e.g. "<Primary>w".
func (a Accelerator) GTK() string {
	key := strings.ToLower(a.Key)
	if a.Modifier == ModPrimary {
		return "<Primary>" + key
	}
	return key
}

// Display returns the accelerator as shown to users on platform p,
// e.g. "Cmd+W" or "Ctrl+W".
func (a Accelerator) Display(p Platform) string {
	key := strings.ToUpper(a.Key)
	if a.Modifier != ModPrimary {
		return key
	}
	if p == PlatformDarwin {
		return "Cmd+" + key
	}
	return "Ctrl+" + key
}

// Item is a single menu entry.
type Item struct {
	ID          ID           `json:"id,omitempty" yaml:"id,omitempty"`
	Role        Role         `json:"role" yaml:"role"`
	Label       string       `json:"label,omitempty" yaml:"label,omitempty"`
	Accelerator *Accelerator `json:"accelerator,omitempty" yaml:"accelerator,omitempty"`
}

// Native reports whether the item is implemented by the platform layer.
func (i Item) Native() bool {
	return i.Role != RoleCustom
}

// IsSeparator reports whether the item is a separator.
func (i Item) IsSeparator() bool {
	return i.Role == RoleSeparator
}

// Submenu is a titled top-level menu.
type Submenu struct {
	Title   string `json:"title" yaml:"title"`
	Enabled bool   `json:"enabled" yaml:"enabled"`
	Items   []Item `json:"items" yaml:"items"`
}

// Roles returns the roles of every item in order.
func (s Submenu) Roles() []Role {
	roles := make([]Role, len(s.Items))
	for i, item := range s.Items {
		roles[i] = item.Role
	}
	return roles
}

// Bar is the whole menu bar.
type Bar struct {
	Platform Platform  `json:"platform" yaml:"platform"`
	Submenus []Submenu `json:"submenus" yaml:"submenus"`
}

// Titles returns the submenu titles in order.
func (b *Bar) Titles() []string {
	titles := make([]string, len(b.Submenus))
	for i, s := range b.Submenus {
		titles[i] = s.Title
	}
	return titles
}

// Submenu returns the submenu with the given title.
func (b *Bar) Submenu(title string) (Submenu, bool) {
	for _, s := range b.Submenus {
		if s.Title == title {
			return s, true
		}
	}
	return Submenu{}, false
}

// Items returns every item of every submenu in order.
func (b *Bar) Items() []Item {
	var items []Item
	for _, s := range b.Submenus {
		items = append(items, s.Items...)
	}
	return items
}

// IDSet is the immutable set of custom item ids returned by Build.
type IDSet map[ID]struct{}

// NewIDSet creates a set from ids.
func NewIDSet(ids ...ID) IDSet {
	set := make(IDSet, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}

// Contains reports whether id is a member of the set.
func (s IDSet) Contains(id ID) bool {
	_, ok := s[id]
	return ok
}

// Len returns the number of ids in the set.
func (s IDSet) Len() int {
	return len(s)
}

// IDs returns the ids in ascending order.
func (s IDSet) IDs() []ID {
	ids := make([]ID, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}
