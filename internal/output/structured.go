package output

import (
	"encoding/json"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/jmylchreest/webshell/internal/menu"
)

// JSONFormatter formats the bar as indented JSON.
type JSONFormatter struct{}

// NewJSONFormatter creates a new JSON formatter.
func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{}
}

// Format implements Formatter.
func (f *JSONFormatter) Format(w io.Writer, bar *menu.Bar, closeIDs menu.IDSet) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(newDocument(bar, closeIDs))
}

// YAMLFormatter formats the bar as YAML.
type YAMLFormatter struct{}

// NewYAMLFormatter creates a new YAML formatter.
func NewYAMLFormatter() *YAMLFormatter {
	return &YAMLFormatter{}
}

// Format implements Formatter.
func (f *YAMLFormatter) Format(w io.Writer, bar *menu.Bar, closeIDs menu.IDSet) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(newDocument(bar, closeIDs)); err != nil {
		return err
	}
	return encoder.Close()
}
