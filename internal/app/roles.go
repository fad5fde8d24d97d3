package app

import (
	"github.com/diamondburned/gotk4-adwaita/pkg/adw"

	"github.com/jmylchreest/webshell/internal/menu"
	"github.com/jmylchreest/webshell/internal/model"
)

// editingCommands maps edit roles to WebKit editing commands.
var editingCommands = map[menu.Role]string{
	menu.RoleUndo:      "Undo",
	menu.RoleRedo:      "Redo",
	menu.RoleCut:       "Cut",
	menu.RoleCopy:      "Copy",
	menu.RolePaste:     "Paste",
	menu.RoleSelectAll: "SelectAll",
}

// performRole implements a native menu role. Native roles never go through
// the event loop.
func (s *Shell) performRole(role menu.Role) {
	if cmd, ok := editingCommands[role]; ok {
		s.webview.ExecuteEditingCommand(cmd)
		return
	}

	switch role {
	case menu.RoleAbout:
		s.showAbout()
	case menu.RoleHide:
		if err := s.hider.HideOrMinimize(); err != nil {
			s.logger.Warn("failed to hide window", "error", err)
		}
	case menu.RoleQuit:
		s.app.Quit()
	case menu.RoleEnterFullScreen:
		if s.window.IsFullscreen() {
			s.window.Unfullscreen()
		} else {
			s.window.Fullscreen()
		}
	case menu.RoleMinimize:
		s.window.Minimize()
	case menu.RoleZoom:
		if s.window.IsMaximized() {
			s.window.Unmaximize()
		} else {
			s.window.Maximize()
		}
	default:
		// Services, Hide Others and Show All have no GTK counterpart.
		s.logger.Debug("menu role has no effect here", "role", role)
	}
}

func (s *Shell) showAbout() {
	about := adw.NewAboutWindow()
	about.SetTransientFor(&s.window.Window)
	about.SetApplicationName(model.AppName)
	about.SetApplicationIcon(model.AppName)
	about.SetVersion(s.opts.Version)
	about.SetWebsite(model.AppURL)
	about.Present()
}
