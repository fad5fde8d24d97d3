package app

import (
	"github.com/diamondburned/gotk4-webkitgtk/pkg/javascriptcore/v6"
	webkit "github.com/diamondburned/gotk4-webkitgtk/pkg/webkit/v6"

	"github.com/jmylchreest/webshell/internal/bridge"
	"github.com/jmylchreest/webshell/internal/links"
	"github.com/jmylchreest/webshell/internal/model"
)

// newWebView creates the webview with the fixed user agent, injects the
// notification bridge before any page script runs and loads the app URL.
func (s *Shell) newWebView() *webkit.WebView {
	wv := webkit.NewWebView()
	wv.SetHExpand(true)
	wv.SetVExpand(true)

	wv.Settings().SetUserAgent(model.UserAgent)

	ucm := wv.UserContentManager()
	ucm.AddScript(webkit.NewUserScript(
		bridge.Script(),
		webkit.UserContentInjectTopFrame,
		webkit.UserScriptInjectAtDocumentStart,
		nil, nil,
	))
	ucm.ConnectScriptMessageReceived(func(value *javascriptcore.Value) {
		s.onScriptMessage(value.String())
	})
	if !ucm.RegisterScriptMessageHandler(bridge.MessageHandlerName, "") {
		s.logger.Error("failed to register script message handler", "name", bridge.MessageHandlerName)
	}

	// New windows are decided here so the "create" signal never fires.
	wv.ConnectDecidePolicy(func(decision webkit.PolicyDecisioner, kind webkit.PolicyDecisionType) bool {
		if !interceptsNewWindow(kind) {
			return false
		}
		nav, ok := decision.(*webkit.NavigationPolicyDecision)
		if !ok {
			return false
		}
		target := nav.NavigationAction().Request().URI()
		nav.Ignore()
		s.openLink(target)
		return true
	})

	wv.LoadURI(model.AppURL)
	return wv
}

// interceptsNewWindow reports whether a policy decision of kind is a
// request to open a new window.
func interceptsNewWindow(kind webkit.PolicyDecisionType) bool {
	return kind == webkit.PolicyDecisionTypeNewWindowAction
}

// openLink handles a request for a new window. The shell has exactly one
// window, so new windows are either loaded in place or handed to the
// system browser.
func (s *Shell) openLink(target string) {
	switch s.links.Decide(target) {
	case links.Internal:
		s.webview.LoadURI(target)
	case links.External:
		if err := s.links.Open(target); err != nil {
			s.logger.Warn("failed to open link", "url", target, "error", err)
		}
	default:
		s.logger.Debug("ignoring new window request", "url", target)
	}
}
