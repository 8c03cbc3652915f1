// Package probe answers, once per process, whether the rendering
// environment supports the CSS color-mix() function.
package probe

import (
	"os"
	"strings"
	"sync"
	"sync/atomic"
)

// EnvVar is read by the Env surface.
const EnvVar = "SHADESCALE_COLOR_MIX"

// Surface is the capability query the probe caches.
type Surface interface {
	SupportsColorMix() bool
}

// Static is a Surface with a fixed answer.
type Static bool

func (s Static) SupportsColorMix() bool { return bool(s) }

// Env reads the answer from an environment variable. An unset or
// unrecognized value means unsupported, so headless runs stay on the
// numeric path.
type Env struct {
	Var string
}

func (e Env) SupportsColorMix() bool {
	name := e.Var
	if name == "" {
		name = EnvVar
	}
	switch strings.ToLower(strings.TrimSpace(os.Getenv(name))) {
	case "1", "true", "yes", "on":
		return true
	default:
		return false
	}
}

const (
	unknown int32 = iota
	unsupported
	supported
)

// Probe caches the answer of its surface. Concurrent first calls may query
// the surface more than once; the answer is the same either way.
type Probe struct {
	mu      sync.Mutex
	surface Surface
	state   atomic.Int32
}

// New returns a probe backed by s. A nil surface falls back to Env.
func New(s Surface) *Probe {
	if s == nil {
		s = Env{}
	}
	return &Probe{surface: s}
}

// Supported reports whether color-mix can be used.
func (p *Probe) Supported() bool {
	switch p.state.Load() {
	case supported:
		return true
	case unsupported:
		return false
	}

	p.mu.Lock()
	s := p.surface
	p.mu.Unlock()
	if s == nil {
		s = Env{}
	}

	ok := s.SupportsColorMix()
	if ok {
		p.state.Store(supported)
	} else {
		p.state.Store(unsupported)
	}
	return ok
}

// Reset forgets the cached answer; the next Supported call queries again.
func (p *Probe) Reset() {
	p.state.Store(unknown)
}

// SetSurface swaps the surface and drops the cached answer.
func (p *Probe) SetSurface(s Surface) {
	p.mu.Lock()
	p.surface = s
	p.mu.Unlock()
	p.Reset()
}

// Default is the process-wide probe used by the package-level helpers.
var Default = New(Env{})

// IsSupported queries the process-wide probe.
func IsSupported() bool { return Default.Supported() }

// Reset clears the process-wide cache.
func Reset() { Default.Reset() }

// SetSurface replaces the process-wide surface.
func SetSurface(s Surface) { Default.SetSurface(s) }
