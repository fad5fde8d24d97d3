package app

import (
	"testing"

	webkit "github.com/diamondburned/gotk4-webkitgtk/pkg/webkit/v6"
	"github.com/stretchr/testify/assert"
)

func TestInterceptsNewWindow(t *testing.T) {
	tests := []struct {
		name string
		kind webkit.PolicyDecisionType
		want bool
	}{
		{"new window", webkit.PolicyDecisionTypeNewWindowAction, true},
		{"navigation", webkit.PolicyDecisionTypeNavigationAction, false},
		{"response", webkit.PolicyDecisionTypeResponse, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, interceptsNewWindow(tt.kind))
		})
	}
}
