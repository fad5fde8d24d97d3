package model

// Fixed identity of the shell. None of these are configurable.
const (
	// AppName is the window title, notification summary, app name and icon key.
	AppName = "Discord"

	// AppURL is the only page the shell ever loads.
	AppURL = "https://discord.com/app"

	// UserAgent is reported by the webview for every request.
	UserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/112.0.0.0 Safari/537.36"

	// AppID is the GTK application id.
	AppID = "io.github.jmylchreest.webshell"

	// DesktopEntry is the .desktop file name advertised in notification hints.
	DesktopEntry = "webshell"
)
