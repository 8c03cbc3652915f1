package bus

import (
	"bufio"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"strconv"
	"syscall"
	"time"
)

const SockName = "control.sock"
const PidName = "shadescale.pid"
const ProtoVer = "0.1"

// Bus locates the control socket and PID file of the watch daemon.
type Bus struct {
	Dir string
}

// Default returns the bus under ~/.cache/shadescale
func Default() (*Bus, error) {
	dir, err := os.UserCacheDir()
	if err != nil {
		return nil, err
	}
	return &Bus{Dir: filepath.Join(dir, "shadescale")}, nil
}

// ~/.cache/shadescale/control.sock
func (b *Bus) SockPath() string {
	return filepath.Join(b.Dir, SockName)
}

// ~/.cache/shadescale/shadescale.pid
func (b *Bus) PidPath() string {
	return filepath.Join(b.Dir, PidName)
}

func (b *Bus) Listen() (net.Listener, error) {
	sp := b.SockPath()
	if err := os.MkdirAll(filepath.Dir(sp), 0o700); err != nil {
		return nil, err
	}
	_ = os.Remove(sp) // stale socket from last run
	return net.Listen("unix", sp)
}

func (b *Bus) Dial() (net.Conn, error) {
	return net.DialTimeout("unix", b.SockPath(), 2*time.Second)
}

func (b *Bus) SendCommand(cmd byte) (string, error) {
	c, err := b.Dial()
	if err != nil {
		return "", err
	}
	defer c.Close()

	_, err = c.Write([]byte{cmd, '\n'})
	if err != nil {
		return "", err
	}

	resp, err := bufio.NewReader(c).ReadString('\n')
	return resp, err
}

func (b *Bus) CheckExistingDaemon() error {
	pidPath := b.PidPath()

	pidData, err := os.ReadFile(pidPath)
	if os.IsNotExist(err) {
		return nil // no existing daemon
	}
	if err != nil {
		return err
	}

	pid, err := strconv.Atoi(string(pidData))
	if err != nil {
		_ = os.Remove(pidPath) // invalid pid file, assume stale
		return nil
	}

	if !isProcessAlive(pid) {
		_ = os.Remove(pidPath)
		return nil
	}

	return fmt.Errorf("daemon already running with PID %d", pid)
}

func (b *Bus) CreatePidFile() error {
	pidPath := b.PidPath()
	if err := os.MkdirAll(filepath.Dir(pidPath), 0o700); err != nil {
		return err
	}

	pid := os.Getpid()
	return os.WriteFile(pidPath, []byte(strconv.Itoa(pid)), 0o600)
}

func (b *Bus) RemovePidFile() error {
	return os.Remove(b.PidPath())
}

func isProcessAlive(pid int) bool {
	proc, err := os.FindProcess(pid)
	if err != nil {
		return false
	}
	// signal 0 checks for existence without delivering anything
	return proc.Signal(syscall.Signal(0)) == nil
}
