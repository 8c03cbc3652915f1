package testutil

import (
	"io"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/leonardotrapani/shadescale/internal/config"
	"github.com/leonardotrapani/shadescale/internal/probe"
	"github.com/leonardotrapani/shadescale/internal/scale"
)

// TestConfig returns a valid configuration for testing
func TestConfig() *config.Config {
	return &config.Config{
		General: config.GeneralConfig{
			Strategy: "hsla",
		},
		Palettes: []config.PaletteConfig{
			{Name: "brand", Prefix: "brand-", Kind: config.KindLightness, Color: "#336699"},
			{Name: "overlay", Prefix: "overlay-", Kind: config.KindAlpha, Color: "black"},
		},
		Output: config.OutputConfig{
			Format:   "css",
			Selector: ":root",
		},
		Notifications: config.NotificationsConfig{
			Enabled: true,
			Type:    "log",
		},
	}
}

// WriteTempConfig saves cfg into a temporary directory and returns its path
func WriteTempConfig(t *testing.T, cfg *config.Config) string {
	t.Helper()

	configPath := filepath.Join(t.TempDir(), "config.toml")
	if err := config.SaveFile(configPath, cfg); err != nil {
		t.Fatalf("Failed to create temp config file: %v", err)
	}
	return configPath
}

// CreateTempConfigFile creates a temporary config file for testing
func CreateTempConfigFile(t *testing.T, configContent string) string {
	t.Helper()

	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "config.toml")

	err := os.WriteFile(configPath, []byte(configContent), 0644)
	if err != nil {
		t.Fatalf("Failed to create temp config file: %v", err)
	}

	return configPath
}

// ColorMixResolver returns a resolver whose probe reports color-mix support
func ColorMixResolver() *scale.Resolver {
	return scale.New(probe.New(probe.Static(true)))
}

// HSLAResolver returns a resolver whose probe reports no color-mix support
func HSLAResolver() *scale.Resolver {
	return scale.New(probe.New(probe.Static(false)))
}

// MockNotifier records notifications for testing
type MockNotifier struct {
	mu      sync.Mutex
	Written []string
	Errors  []string
}

func (m *MockNotifier) ThemeWritten(path string, entries int) {
	m.mu.Lock()
	m.Written = append(m.Written, path)
	m.mu.Unlock()
}

func (m *MockNotifier) Error(msg string) {
	m.mu.Lock()
	m.Errors = append(m.Errors, msg)
	m.mu.Unlock()
}

func (m *MockNotifier) WrittenCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Written)
}

func (m *MockNotifier) ErrorCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Errors)
}

// WaitForCondition waits for a condition to be true or times out
func WaitForCondition(t *testing.T, condition func() bool, timeout time.Duration) {
	t.Helper()

	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if condition() {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatalf("Condition not met within %v", timeout)
}

// CaptureOutput captures stdout for testing
func CaptureOutput(t *testing.T, fn func()) string {
	t.Helper()

	old := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	fn()

	w.Close()
	os.Stdout = old

	out, _ := io.ReadAll(r)
	return string(out)
}
