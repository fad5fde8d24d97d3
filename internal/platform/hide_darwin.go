//go:build darwin

package platform

/*
#cgo CFLAGS: -x objective-c
#cgo LDFLAGS: -framework Cocoa
#import <Cocoa/Cocoa.h>

static int webshell_hide_application(void) {
	NSApplication *app = [NSApplication sharedApplication];
	if (app == nil) {
		return 0;
	}
	[app hide:nil];
	return 1;
}
*/
import "C"

import "errors"

// hideApplication asks AppKit to hide every window of the process.
func hideApplication() error {
	if C.webshell_hide_application() == 0 {
		return errors.New("NSApplication unavailable")
	}
	return nil
}
