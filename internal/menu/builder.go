package menu

// CloseWindowLabel is the label of both custom close items.
const CloseWindowLabel = "Close Window"

// closeAccelerator is bound to both custom close items.
var closeAccelerator = Accelerator{Modifier: ModPrimary, Key: "w"}

// Directive adds one submenu to the bar under construction.
type Directive func(b *builder)

// builder accumulates the bar, hands out ids and records the close items.
type builder struct {
	appName  string
	caps     Capabilities
	bar      *Bar
	nextID   ID
	closeIDs []ID
}

// Build constructs the menu bar for platform p and returns it together with
// the ids of every custom "Close Window" item.
func Build(appName string, p Platform) (*Bar, IDSet) {
	profile := ProfileFor(p)
	b := &builder{
		appName: appName,
		caps:    profile.Capabilities,
		bar:     &Bar{Platform: p},
	}

	for _, directive := range profile.Directives {
		directive(b)
	}

	return b.bar, NewIDSet(b.closeIDs...)
}

func (b *builder) submenu(title string, items ...Item) {
	b.bar.Submenus = append(b.bar.Submenus, Submenu{
		Title:   title,
		Enabled: true,
		Items:   items,
	})
}

func (b *builder) native(role Role) Item {
	return Item{Role: role, Label: nativeLabel(role, b.appName)}
}

// closeItem allocates a custom close item and records its id.
func (b *builder) closeItem() Item {
	b.nextID++
	id := b.nextID
	b.closeIDs = append(b.closeIDs, id)

	accel := closeAccelerator
	return Item{
		ID:          id,
		Role:        RoleCustom,
		Label:       CloseWindowLabel,
		Accelerator: &accel,
	}
}

func appSubmenu(b *builder) {
	b.submenu(b.appName,
		b.native(RoleAbout),
		b.native(RoleSeparator),
		b.native(RoleServices),
		b.native(RoleSeparator),
		b.native(RoleHide),
		b.native(RoleHideOthers),
		b.native(RoleShowAll),
		b.native(RoleSeparator),
		b.native(RoleQuit),
	)
}

func fileSubmenu(b *builder) {
	items := []Item{b.closeItem()}
	if !b.caps.AppMenu {
		items = append(items, b.native(RoleQuit))
	}
	b.submenu("File", items...)
}

func editSubmenu(b *builder) {
	var items []Item
	if b.caps.AppMenu {
		items = append(items,
			b.native(RoleUndo),
			b.native(RoleRedo),
			b.native(RoleSeparator),
		)
	}
	items = append(items,
		b.native(RoleCut),
		b.native(RoleCopy),
		b.native(RolePaste),
	)
	if b.caps.AppMenu {
		items = append(items, b.native(RoleSelectAll))
	}
	b.submenu("Edit", items...)
}

func viewSubmenu(b *builder) {
	b.submenu("View", b.native(RoleEnterFullScreen))
}

func windowSubmenu(b *builder) {
	items := []Item{b.native(RoleMinimize)}
	if b.caps.AppMenu {
		items = append(items,
			b.native(RoleZoom),
			b.native(RoleSeparator),
		)
	}
	items = append(items, b.closeItem())
	b.submenu("Window", items...)
}

// nativeLabel returns the conventional label for a native role.
func nativeLabel(role Role, appName string) string {
	switch role {
	case RoleAbout:
		return "About " + appName
	case RoleServices:
		return "Services"
	case RoleHide:
		return "Hide " + appName
	case RoleHideOthers:
		return "Hide Others"
	case RoleShowAll:
		return "Show All"
	case RoleQuit:
		return "Quit " + appName
	case RoleUndo:
		return "Undo"
	case RoleRedo:
		return "Redo"
	case RoleCut:
		return "Cut"
	case RoleCopy:
		return "Copy"
	case RolePaste:
		return "Paste"
	case RoleSelectAll:
		return "Select All"
	case RoleEnterFullScreen:
		return "Enter Full Screen"
	case RoleMinimize:
		return "Minimize"
	case RoleZoom:
		return "Zoom"
	default:
		return ""
	}
}
