package output

import (
	"fmt"
	"io"

	"github.com/jmylchreest/webshell/internal/menu"
)

// IDsFormatter outputs just the custom close item ids, one per line.
type IDsFormatter struct{}

// NewIDsFormatter creates a new IDs formatter.
func NewIDsFormatter() *IDsFormatter {
	return &IDsFormatter{}
}

// Format implements Formatter.
func (f *IDsFormatter) Format(w io.Writer, _ *menu.Bar, closeIDs menu.IDSet) error {
	for _, id := range closeIDs.IDs() {
		if _, err := fmt.Fprintln(w, id); err != nil {
			return err
		}
	}
	return nil
}
