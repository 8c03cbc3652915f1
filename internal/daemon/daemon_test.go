package daemon

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/leonardotrapani/shadescale/internal/bus"
	"github.com/leonardotrapani/shadescale/internal/config"
	"github.com/leonardotrapani/shadescale/internal/probe"
	"github.com/leonardotrapani/shadescale/internal/testutil"
)

func startDaemon(t *testing.T, cfg *config.Config) (*Daemon, *bus.Bus, *testutil.MockNotifier) {
	t.Helper()

	m, err := config.NewManager(testutil.WriteTempConfig(t, cfg))
	if err != nil {
		t.Fatalf("NewManager() error = %v", err)
	}
	b := &bus.Bus{Dir: t.TempDir()}
	n := &testutil.MockNotifier{}
	d := New(m, b, probe.New(probe.Static(false)), n)

	errCh := make(chan error, 1)
	go func() {
		errCh <- d.Run()
	}()

	// Wait for daemon to be ready by trying to connect
	maxAttempts := 100
	for i := 0; i < maxAttempts; i++ {
		if _, err := b.SendCommand('v'); err == nil {
			break
		}
		if i == maxAttempts-1 {
			t.Fatal("daemon failed to start within timeout")
		}
		time.Sleep(10 * time.Millisecond)
	}

	t.Cleanup(func() {
		b.SendCommand('q')
		select {
		case <-errCh:
		case <-time.After(3 * time.Second):
			t.Error("daemon did not exit within timeout")
		}
	})
	return d, b, n
}

func TestDaemonGeneratesOnStart(t *testing.T) {
	cfg := testutil.TestConfig()
	out := filepath.Join(t.TempDir(), "theme.css")
	cfg.Output.Path = out

	d, b, n := startDaemon(t, cfg)

	testutil.WaitForCondition(t, func() bool { return n.WrittenCount() >= 1 }, 2*time.Second)

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("theme not written: %v", err)
	}
	if !strings.Contains(string(data), "--brand-500: hsla(") {
		t.Errorf("theme missing base shade:\n%s", data)
	}

	st := d.Status()
	if st.Generations != 1 || st.Entries != 30 || st.Strategy != "hsla" {
		t.Errorf("Status() = %+v", st)
	}

	resp, err := b.SendCommand('s')
	if err != nil {
		t.Fatalf("status failed: %v", err)
	}
	if resp != "STATUS generations=1 entries=30 strategy=hsla\n" {
		t.Errorf("unexpected status response: %q", resp)
	}
}

func TestDaemonRegenerateCommand(t *testing.T) {
	cfg := testutil.TestConfig()
	cfg.Output.Path = filepath.Join(t.TempDir(), "theme.css")

	d, b, _ := startDaemon(t, cfg)

	resp, err := b.SendCommand('r')
	if err != nil {
		t.Fatalf("regenerate failed: %v", err)
	}
	if resp != "OK regenerated entries=30\n" {
		t.Errorf("unexpected regenerate response: %q", resp)
	}
	if got := d.Status().Generations; got != 2 {
		t.Errorf("generations = %d, want 2", got)
	}
}

func TestDaemonProtoAndUnknown(t *testing.T) {
	cfg := testutil.TestConfig()
	cfg.Output.Path = filepath.Join(t.TempDir(), "theme.css")

	_, b, _ := startDaemon(t, cfg)

	resp, err := b.SendCommand('v')
	if err != nil {
		t.Fatalf("version failed: %v", err)
	}
	if resp != "STATUS proto="+bus.ProtoVer+"\n" {
		t.Errorf("unexpected version response: %q", resp)
	}

	resp, err = b.SendCommand('x')
	if err != nil {
		t.Fatalf("unknown command failed: %v", err)
	}
	if !strings.HasPrefix(resp, "ERR unknown=") {
		t.Errorf("unexpected response: %q", resp)
	}
}

func TestDaemonRegeneratesOnConfigChange(t *testing.T) {
	cfg := testutil.TestConfig()
	out := filepath.Join(t.TempDir(), "theme.css")
	cfg.Output.Path = out

	d, _, n := startDaemon(t, cfg)
	testutil.WaitForCondition(t, func() bool { return n.WrittenCount() >= 1 }, 2*time.Second)

	cfg.Palettes[0].Prefix = "accent-"
	if err := config.SaveFile(d.manager.Path(), cfg); err != nil {
		t.Fatalf("SaveFile() error = %v", err)
	}

	testutil.WaitForCondition(t, func() bool {
		data, err := os.ReadFile(out)
		return err == nil && strings.Contains(string(data), "--accent-500:")
	}, 3*time.Second)
}

func TestGenerateToWriter(t *testing.T) {
	cfg := testutil.TestConfig()
	m, err := config.NewManager(testutil.WriteTempConfig(t, cfg))
	if err != nil {
		t.Fatalf("NewManager() error = %v", err)
	}
	n := &testutil.MockNotifier{}
	d := New(m, &bus.Bus{Dir: t.TempDir()}, probe.New(probe.Static(true)), n)

	var buf bytes.Buffer
	d.SetOutput(&buf)

	cfg.General.Strategy = "auto"
	if err := d.Generate(cfg); err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if !strings.Contains(buf.String(), "--brand-500: #336699;") {
		t.Errorf("expected color-mix output, got:\n%s", buf.String())
	}
	if d.Status().Strategy != "color-mix" {
		t.Errorf("strategy = %q, want color-mix", d.Status().Strategy)
	}
	testutil.WaitForCondition(t, func() bool { return n.WrittenCount() == 1 }, time.Second)
}

func TestGenerateReportsErrors(t *testing.T) {
	cfg := testutil.TestConfig()
	m, err := config.NewManager(testutil.WriteTempConfig(t, cfg))
	if err != nil {
		t.Fatalf("NewManager() error = %v", err)
	}
	n := &testutil.MockNotifier{}
	d := New(m, &bus.Bus{Dir: t.TempDir()}, nil, n)

	cfg.General.Strategy = "bogus"
	if err := d.Generate(cfg); err == nil {
		t.Fatal("expected error for unknown strategy")
	}
	if d.Status().LastErr == nil {
		t.Error("LastErr not recorded")
	}
	testutil.WaitForCondition(t, func() bool { return n.ErrorCount() == 1 }, time.Second)
}

func TestGenerateDefaultsToStdout(t *testing.T) {
	cfg := testutil.TestConfig()
	cfg.Notifications.Enabled = false
	m, err := config.NewManager(testutil.WriteTempConfig(t, cfg))
	if err != nil {
		t.Fatalf("NewManager() error = %v", err)
	}

	out := testutil.CaptureOutput(t, func() {
		d := New(m, &bus.Bus{Dir: t.TempDir()}, probe.New(probe.Static(false)), nil)
		if err := d.Generate(cfg); err != nil {
			t.Errorf("Generate() error = %v", err)
		}
	})

	if !strings.HasPrefix(out, ":root {") || !strings.Contains(out, "--overlay-950:") {
		t.Errorf("unexpected stdout:\n%s", out)
	}
}
