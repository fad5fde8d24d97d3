package output

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/tree"

	"github.com/jmylchreest/webshell/internal/menu"
)

// TreeFormatter renders the bar as a styled tree.
type TreeFormatter struct {
	rootStyle    lipgloss.Style
	submenuStyle lipgloss.Style
	customStyle  lipgloss.Style
	nativeStyle  lipgloss.Style
	dimStyle     lipgloss.Style
}

// NewTreeFormatter creates a new tree formatter.
func NewTreeFormatter() *TreeFormatter {
	return &TreeFormatter{
		rootStyle:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		submenuStyle: lipgloss.NewStyle().Bold(true),
		customStyle:  lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		nativeStyle:  lipgloss.NewStyle(),
		dimStyle:     lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
	}
}

// Format implements Formatter.
func (f *TreeFormatter) Format(w io.Writer, bar *menu.Bar, _ menu.IDSet) error {
	root := tree.Root(f.rootStyle.Render(fmt.Sprintf("menu bar (%s)", bar.Platform))).
		Enumerator(tree.RoundedEnumerator).
		EnumeratorStyle(f.dimStyle)

	for _, sub := range bar.Submenus {
		node := tree.Root(f.submenuStyle.Render(sub.Title))
		for _, item := range sub.Items {
			node.Child(f.itemLabel(item, bar.Platform))
		}
		root.Child(node)
	}

	_, err := fmt.Fprintln(w, root.String())
	return err
}

func (f *TreeFormatter) itemLabel(item menu.Item, p menu.Platform) string {
	if item.IsSeparator() {
		return f.dimStyle.Render("────")
	}

	if item.Native() {
		return f.nativeStyle.Render(item.Label) + " " + f.dimStyle.Render("["+string(item.Role)+"]")
	}

	label := f.customStyle.Render(item.Label)
	if item.Accelerator != nil {
		label += "  " + f.dimStyle.Render(item.Accelerator.Display(p))
	}
	return label + " " + f.dimStyle.Render(fmt.Sprintf("#%d", item.ID))
}
