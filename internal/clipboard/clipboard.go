package clipboard

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/leonardotrapani/shadescale/internal/deps"
)

var ErrNoBackend = errors.New("no clipboard tool found (install wl-clipboard, xclip or xsel)")

// Backend is a command that reads the clipboard contents from stdin
type Backend struct {
	Name string
	Args []string
}

// DefaultBackends are tried in order; the first one installed is used.
var DefaultBackends = []Backend{
	{Name: "wl-copy"},
	{Name: "xclip", Args: []string{"-selection", "clipboard"}},
	{Name: "xsel", Args: []string{"--clipboard", "--input"}},
	{Name: "pbcopy"},
}

// Copier puts text on the system clipboard
type Copier struct {
	Backends []Backend
	Timeout  time.Duration
}

// New returns a copier using DefaultBackends
func New() *Copier {
	return &Copier{
		Backends: DefaultBackends,
		Timeout:  3 * time.Second,
	}
}

// Backend returns the first installed backend
func (c *Copier) Backend() (Backend, error) {
	names := make([]string, len(c.Backends))
	for i, b := range c.Backends {
		names[i] = b.Name
	}
	i, _ := deps.FirstInstalled(names...)
	if i < 0 {
		return Backend{}, ErrNoBackend
	}
	return c.Backends[i], nil
}

func (c *Copier) Copy(ctx context.Context, text string) error {
	if text == "" {
		return fmt.Errorf("cannot copy empty text")
	}

	b, err := c.Backend()
	if err != nil {
		return err
	}

	if c.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.Timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, b.Name, b.Args...)
	cmd.Stdin = strings.NewReader(text)

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%s failed: %w", b.Name, err)
	}

	return nil
}
