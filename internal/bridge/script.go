// Package bridge connects the page's notification API to native code.
//
// Script returns the JavaScript injected into the top frame at document
// start. It replaces window.Notification with a class that always reports
// permission as granted and forwards the message text of every constructed
// notification over the "ipc" script message channel. Handler receives
// those messages on the native side.
package bridge

import _ "embed"

// MessageHandlerName is the script message channel the page posts to.
const MessageHandlerName = "ipc"

//go:embed bridge.js
var script string

// Script returns the notification override script.
func Script() string {
	return script
}
