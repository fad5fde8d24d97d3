package simulate

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
)

// writeClipboard is replaced in tests.
var writeClipboard = clipboard.WriteAll

// Log returns every transition as plain text, one per line.
func (m Model) Log() string {
	var sb strings.Builder
	for _, tr := range m.rec.transitions {
		fmt.Fprintf(&sb, "%s %s -> %s [%s]\n", tr.Event.String(), tr.From, tr.To, tr.Action)
	}
	return sb.String()
}

// copyLog copies the event log to the system clipboard.
func (m Model) copyLog() string {
	if len(m.rec.transitions) == 0 {
		return "nothing to copy"
	}
	if err := writeClipboard(m.Log()); err != nil {
		return "copy failed: " + err.Error()
	}
	return fmt.Sprintf("copied %d events", len(m.rec.transitions))
}
