// Package output renders the menu bar model for the menu command.
package output

import (
	"fmt"
	"io"

	"github.com/jmylchreest/webshell/internal/menu"
)

// Formatter writes a menu bar to w.
type Formatter interface {
	Format(w io.Writer, bar *menu.Bar, closeIDs menu.IDSet) error
}

// FormatType represents an output format type.
type FormatType string

const (
	FormatTree FormatType = "tree"
	FormatJSON FormatType = "json"
	FormatYAML FormatType = "yaml"
	FormatIDs  FormatType = "ids"
)

// FormatTypes returns every supported format.
func FormatTypes() []FormatType {
	return []FormatType{FormatTree, FormatJSON, FormatYAML, FormatIDs}
}

// NewFormatter creates a formatter for the specified format type.
func NewFormatter(format FormatType) (Formatter, error) {
	switch format {
	case FormatTree, "":
		return NewTreeFormatter(), nil
	case FormatJSON:
		return NewJSONFormatter(), nil
	case FormatYAML:
		return NewYAMLFormatter(), nil
	case FormatIDs:
		return NewIDsFormatter(), nil
	default:
		return nil, fmt.Errorf("unknown format %q, must be one of: %v", format, FormatTypes())
	}
}

// document is the serialised form of a bar.
type document struct {
	Platform     menu.Platform     `json:"platform" yaml:"platform"`
	Capabilities menu.Capabilities `json:"capabilities" yaml:"capabilities"`
	CloseIDs     []menu.ID         `json:"close_ids" yaml:"close_ids"`
	Submenus     []menu.Submenu    `json:"submenus" yaml:"submenus"`
}

func newDocument(bar *menu.Bar, closeIDs menu.IDSet) document {
	return document{
		Platform:     bar.Platform,
		Capabilities: menu.CapabilitiesFor(bar.Platform),
		CloseIDs:     closeIDs.IDs(),
		Submenus:     bar.Submenus,
	}
}
