package app

import (
	"fmt"

	"github.com/diamondburned/gotk4/pkg/gio/v2"
	"github.com/diamondburned/gotk4/pkg/glib/v2"

	"github.com/jmylchreest/webshell/internal/loop"
	"github.com/jmylchreest/webshell/internal/menu"
)

// actionName returns the application action an item activates, without the
// "app." prefix. Separators have no action.
func actionName(item menu.Item) (string, bool) {
	switch {
	case !item.Native():
		return fmt.Sprintf("menu-item-%d", item.ID), true
	case item.IsSeparator():
		return "", false
	default:
		return "role-" + string(item.Role), true
	}
}

// sections splits items at separators. GTK draws a separator between
// sections of a menu model.
func sections(items []menu.Item) [][]menu.Item {
	var out [][]menu.Item
	var cur []menu.Item
	for _, item := range items {
		if item.IsSeparator() {
			if len(cur) > 0 {
				out = append(out, cur)
			}
			cur = nil
			continue
		}
		cur = append(cur, item)
	}
	if len(cur) > 0 {
		out = append(out, cur)
	}
	return out
}

// installMenubar renders the menu bar into a gio.Menu and registers one
// application action per item.
func (s *Shell) installMenubar() {
	bar := gio.NewMenu()
	registered := make(map[string]bool)

	for _, sub := range s.bar.Submenus {
		submenu := gio.NewMenu()
		for _, section := range sections(sub.Items) {
			sectionMenu := gio.NewMenu()
			for _, item := range section {
				name, ok := actionName(item)
				if !ok {
					continue
				}
				if !registered[name] {
					s.addItemAction(name, item)
					registered[name] = true
				}
				sectionMenu.Append(item.Label, "app."+name)
			}
			submenu.AppendSection("", sectionMenu)
		}
		bar.AppendSubmenu(sub.Title, submenu)
	}

	s.app.SetMenubar(bar)
}

// addItemAction registers the action behind item and its accelerator.
func (s *Shell) addItemAction(name string, item menu.Item) {
	action := gio.NewSimpleAction(name, nil)
	if item.Native() {
		role := item.Role
		action.ConnectActivate(func(*glib.Variant) {
			s.performRole(role)
		})
	} else {
		id := item.ID
		action.ConnectActivate(func(*glib.Variant) {
			s.loop.Dispatch(loop.MenuActivated(id))
		})
	}
	s.app.AddAction(action)

	if item.Accelerator != nil {
		s.app.SetAccelsForAction("app."+name, []string{item.Accelerator.GTK()})
	}
}
