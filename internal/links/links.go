// Package links decides where page navigations that ask for a new window
// should go: back into the shell for the application's own hosts, or to the
// system browser for everything else.
package links

import (
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"sync"

	"github.com/pkg/browser"
)

// ErrNotExternal is returned by Open for targets that stay inside the shell.
var ErrNotExternal = errors.New("link is not external")

// Decision is where a link opens.
type Decision int

const (
	// Ignore drops the request (unparseable or non-web targets).
	Ignore Decision = iota
	// Internal keeps the navigation inside the shell's webview.
	Internal
	// External opens the link in the system browser.
	External
)

// String returns the string representation of Decision.
func (d Decision) String() string {
	switch d {
	case Internal:
		return "internal"
	case External:
		return "external"
	default:
		return "ignore"
	}
}

// Policy classifies link targets relative to the application URL.
type Policy struct {
	mu           sync.RWMutex
	appHost      string
	openExternal bool
	open         func(string) error
	logger       *slog.Logger
}

// NewPolicy creates a policy for the application at appURL.
func NewPolicy(appURL string, openExternal bool, logger *slog.Logger) (*Policy, error) {
	u, err := url.Parse(appURL)
	if err != nil {
		return nil, fmt.Errorf("invalid application url: %w", err)
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Policy{
		appHost:      strings.ToLower(u.Hostname()),
		openExternal: openExternal,
		open:         browser.OpenURL,
		logger:       logger,
	}, nil
}

// SetOpenExternal toggles handing foreign links to the system browser.
func (p *Policy) SetOpenExternal(enabled bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.openExternal = enabled
}

// Decide classifies target. Hosts equal to the application host or one of
// its subdomains stay internal. With external opening disabled, foreign
// links are ignored.
func (p *Policy) Decide(target string) Decision {
	u, err := url.Parse(target)
	if err != nil {
		return Ignore
	}

	switch strings.ToLower(u.Scheme) {
	case "http", "https":
	case "mailto":
		return p.external()
	default:
		return Ignore
	}

	host := strings.ToLower(u.Hostname())
	if host == "" {
		return Ignore
	}
	if host == p.appHost || strings.HasSuffix(host, "."+p.appHost) {
		return Internal
	}
	return p.external()
}

func (p *Policy) external() Decision {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.openExternal {
		return External
	}
	return Ignore
}

// Open hands target to the system browser when Decide says External.
func (p *Policy) Open(target string) error {
	decision := p.Decide(target)
	if decision != External {
		return fmt.Errorf("%w: %s (%s)", ErrNotExternal, target, decision)
	}

	if err := p.open(target); err != nil {
		return fmt.Errorf("failed to open browser: %w", err)
	}
	p.logger.Debug("opened external link", "url", target)
	return nil
}
