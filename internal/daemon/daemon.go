package daemon

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log"
	"net"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/leonardotrapani/shadescale/internal/bus"
	"github.com/leonardotrapani/shadescale/internal/config"
	"github.com/leonardotrapani/shadescale/internal/export"
	"github.com/leonardotrapani/shadescale/internal/notify"
	"github.com/leonardotrapani/shadescale/internal/probe"
	"github.com/leonardotrapani/shadescale/internal/scale"
	"github.com/leonardotrapani/shadescale/internal/theme"
)

// Daemon regenerates the theme whenever the config file changes and
// answers control commands on the bus socket.
type Daemon struct {
	mu          sync.Mutex
	manager     *config.Manager
	bus         *bus.Bus
	probe       *probe.Probe
	notifier    notify.Notifier
	stdout      io.Writer
	generations int
	entries     int
	strategy    string
	lastErr     error

	ctx    context.Context
	cancel context.CancelFunc
}

// New creates a daemon. A nil notifier is picked from the config on every
// generation; a nil probe uses probe.Default.
func New(m *config.Manager, b *bus.Bus, p *probe.Probe, n notify.Notifier) *Daemon {
	if p == nil {
		p = probe.Default
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &Daemon{
		manager:  m,
		bus:      b,
		probe:    p,
		notifier: n,
		stdout:   os.Stdout,
		ctx:      ctx,
		cancel:   cancel,
	}
}

// SetOutput changes where themes without an output path are printed.
func (d *Daemon) SetOutput(w io.Writer) {
	d.mu.Lock()
	d.stdout = w
	d.mu.Unlock()
}

// Stop asks Run to return.
func (d *Daemon) Stop() {
	d.cancel()
}

func (d *Daemon) Run() error {
	if err := d.bus.CheckExistingDaemon(); err != nil {
		return err
	}

	ln, err := d.bus.Listen()
	if err != nil {
		return err
	}
	defer ln.Close()

	if err := d.bus.CreatePidFile(); err != nil {
		return fmt.Errorf("failed to create PID file: %w", err)
	}
	defer d.bus.RemovePidFile()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)
	defer signal.Stop(sigCh)

	go func() {
		select {
		case sig := <-sigCh:
			log.Printf("Received signal %v, shutting down gracefully", sig)
			d.cancel()
		case <-d.ctx.Done():
		}
	}()

	// Close the listener when context is done
	go func() {
		<-d.ctx.Done()
		ln.Close()
	}()

	if err := d.Generate(d.manager.GetConfig()); err != nil {
		log.Printf("Daemon: initial generation failed: %v", err)
	}

	d.manager.OnReload(func(cfg *config.Config) {
		if err := d.Generate(cfg); err != nil {
			log.Printf("Daemon: regeneration failed: %v", err)
		}
	})
	if err := d.manager.StartWatching(d.ctx); err != nil {
		return fmt.Errorf("failed to watch config: %w", err)
	}
	defer d.manager.Stop()

	log.Printf("Daemon started, listening on socket")

	for {
		c, err := ln.Accept()
		if err != nil {
			if d.ctx.Err() != nil {
				log.Printf("Shutdown requested")
				return nil
			}
			log.Printf("Accept error: %v", err)
			return fmt.Errorf("accept failed: %w", err)
		}
		go d.handle(c)
	}
}

func (d *Daemon) handle(c net.Conn) {
	defer c.Close()

	line, err := bufio.NewReader(c).ReadString('\n')
	if err != nil {
		log.Printf("Client read error: %v", err)
		fmt.Fprintf(c, "ERR read_error: %v\n", err)
		return
	}
	if len(line) == 0 {
		fmt.Fprint(c, "ERR empty\n")
		return
	}
	cmd := line[0]

	switch cmd {
	case 'r':
		if err := d.Generate(d.manager.GetConfig()); err != nil {
			fmt.Fprintf(c, "ERR generate: %v\n", err)
			return
		}
		fmt.Fprintf(c, "OK regenerated entries=%d\n", d.Status().Entries)
	case 's':
		st := d.Status()
		fmt.Fprintf(c, "STATUS generations=%d entries=%d strategy=%s\n", st.Generations, st.Entries, st.Strategy)
	case 'v':
		fmt.Fprintf(c, "STATUS proto=%s\n", bus.ProtoVer)
	case 'q':
		fmt.Fprint(c, "OK quitting\n")
		d.cancel()
	default:
		log.Printf("Unknown command: %c", cmd)
		fmt.Fprintf(c, "ERR unknown=%q\n", cmd)
	}
}

// Status is a snapshot of the last generation.
type Status struct {
	Generations int
	Entries     int
	Strategy    string
	LastErr     error
}

func (d *Daemon) Status() Status {
	d.mu.Lock()
	defer d.mu.Unlock()
	return Status{
		Generations: d.generations,
		Entries:     d.entries,
		Strategy:    d.strategy,
		LastErr:     d.lastErr,
	}
}

// Generate builds the theme for cfg and writes it to the configured output.
func (d *Daemon) Generate(cfg *config.Config) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	n := d.notifier
	if n == nil {
		n = notify.Nop{}
		if cfg.Notifications.Enabled {
			n = notify.New(cfg.Notifications.Type)
		}
	}

	err := d.generate(cfg, n)
	d.lastErr = err
	if err != nil {
		go n.Error(err.Error())
		return err
	}
	return nil
}

func (d *Daemon) generate(cfg *config.Config, n notify.Notifier) error {
	r, err := scale.StrategyByName(cfg.General.Strategy, d.probe)
	if err != nil {
		return err
	}

	t, err := theme.Build(cfg, r)
	if err != nil {
		return err
	}

	format, err := export.ParseFormat(cfg.Output.Format)
	if err != nil {
		return err
	}
	opts := export.Options{Format: format, Selector: cfg.Output.Selector}

	target := cfg.Output.Path
	if target == "" {
		if err := export.Write(d.stdout, t, opts); err != nil {
			return err
		}
		target = "stdout"
	} else if err := export.WriteFile(target, t, opts); err != nil {
		return err
	}

	d.generations++
	d.entries = t.Len()
	d.strategy = r.Strategy().Name()

	log.Printf("Daemon: wrote %d colors to %s (%s)", d.entries, target, d.strategy)
	go n.ThemeWritten(target, d.entries)
	return nil
}
