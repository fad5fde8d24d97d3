package links

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPolicy(t *testing.T, openExternal bool) *Policy {
	t.Helper()
	p, err := NewPolicy("https://discord.com/app", openExternal, nil)
	require.NoError(t, err)
	return p
}

func TestPolicy_Decide(t *testing.T) {
	p := newPolicy(t, true)

	tests := []struct {
		target string
		want   Decision
	}{
		{"https://discord.com/channels/@me", Internal},
		{"https://DISCORD.com/login", Internal},
		{"https://canary.discord.com/app", Internal},
		{"http://discord.com:8080/x", Internal},
		{"https://github.com/jmylchreest", External},
		{"https://notdiscord.com/", External},
		{"https://discord.com.evil.example/", External},
		{"mailto:someone@example.com", External},
		{"javascript:alert(1)", Ignore},
		{"file:///etc/passwd", Ignore},
		{"about:blank", Ignore},
		{"https://", Ignore},
		{"://bad", Ignore},
	}

	for _, tt := range tests {
		t.Run(tt.target, func(t *testing.T) {
			assert.Equal(t, tt.want, p.Decide(tt.target))
		})
	}
}

func TestPolicy_ExternalDisabled(t *testing.T) {
	p := newPolicy(t, false)

	assert.Equal(t, Ignore, p.Decide("https://github.com/"))
	assert.Equal(t, Internal, p.Decide("https://discord.com/app"))

	p.SetOpenExternal(true)
	assert.Equal(t, External, p.Decide("https://github.com/"))
}

func TestPolicy_Open(t *testing.T) {
	p := newPolicy(t, true)

	var opened []string
	p.open = func(u string) error {
		opened = append(opened, u)
		return nil
	}

	require.NoError(t, p.Open("https://github.com/"))
	assert.Equal(t, []string{"https://github.com/"}, opened)

	err := p.Open("https://discord.com/app")
	assert.ErrorIs(t, err, ErrNotExternal)
	assert.Len(t, opened, 1)
}

func TestPolicy_OpenFailure(t *testing.T) {
	p := newPolicy(t, true)
	boom := errors.New("no browser")
	p.open = func(string) error { return boom }

	assert.ErrorIs(t, p.Open("https://github.com/"), boom)
}

func TestDecisionString(t *testing.T) {
	assert.Equal(t, "internal", Internal.String())
	assert.Equal(t, "external", External.String())
	assert.Equal(t, "ignore", Ignore.String())
}
