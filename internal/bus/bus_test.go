package bus

import (
	"net"
	"os"
	"strconv"
	"testing"
	"time"
)

func TestPidFile(t *testing.T) {
	b := &Bus{Dir: t.TempDir()}

	t.Run("create and remove PID file", func(t *testing.T) {
		if err := b.CreatePidFile(); err != nil {
			t.Fatalf("CreatePidFile failed: %v", err)
		}

		pidData, err := os.ReadFile(b.PidPath())
		if err != nil {
			t.Fatalf("failed to read PID file: %v", err)
		}

		expectedPid := strconv.Itoa(os.Getpid())
		if string(pidData) != expectedPid {
			t.Errorf("PID file contains %q, expected %q", string(pidData), expectedPid)
		}

		if err := b.RemovePidFile(); err != nil {
			t.Fatalf("RemovePidFile failed: %v", err)
		}
		if _, err := os.Stat(b.PidPath()); !os.IsNotExist(err) {
			t.Error("PID file should not exist after removal")
		}
	})

	t.Run("no PID file", func(t *testing.T) {
		if err := b.CheckExistingDaemon(); err != nil {
			t.Errorf("CheckExistingDaemon should not error when no PID file exists: %v", err)
		}
	})

	t.Run("current process", func(t *testing.T) {
		if err := b.CreatePidFile(); err != nil {
			t.Fatalf("CreatePidFile failed: %v", err)
		}
		defer b.RemovePidFile()

		if err := b.CheckExistingDaemon(); err == nil {
			t.Error("CheckExistingDaemon should fail when process is running")
		}
	})

	t.Run("stale PID file", func(t *testing.T) {
		if err := os.WriteFile(b.PidPath(), []byte("99999999"), 0o600); err != nil {
			t.Fatalf("failed to write stale PID file: %v", err)
		}
		if err := b.CheckExistingDaemon(); err != nil {
			t.Errorf("CheckExistingDaemon should succeed with stale PID: %v", err)
		}
		if _, err := os.Stat(b.PidPath()); !os.IsNotExist(err) {
			t.Error("stale PID file should be removed")
		}
	})

	t.Run("invalid PID file", func(t *testing.T) {
		if err := os.WriteFile(b.PidPath(), []byte("invalid"), 0o600); err != nil {
			t.Fatalf("failed to write invalid PID file: %v", err)
		}
		if err := b.CheckExistingDaemon(); err != nil {
			t.Errorf("CheckExistingDaemon should succeed with invalid PID: %v", err)
		}
		if _, err := os.Stat(b.PidPath()); !os.IsNotExist(err) {
			t.Error("invalid PID file should be removed")
		}
	})
}

func TestIsProcessAlive(t *testing.T) {
	if !isProcessAlive(os.Getpid()) {
		t.Error("current process should be alive")
	}
	if isProcessAlive(99999999) {
		t.Error("non-existent process should not be alive")
	}
}

func TestSendCommand(t *testing.T) {
	b := &Bus{Dir: t.TempDir()}

	t.Run("dial without listener", func(t *testing.T) {
		if _, err := b.SendCommand('s'); err == nil {
			t.Error("SendCommand should fail when no listener exists")
		}
	})

	t.Run("round trip with mock server", func(t *testing.T) {
		listener, err := b.Listen()
		if err != nil {
			t.Fatalf("Listen failed: %v", err)
		}
		defer listener.Close()

		go func() {
			for {
				conn, err := listener.Accept()
				if err != nil {
					return
				}
				go func(c net.Conn) {
					defer c.Close()
					buf := make([]byte, 2)
					n, err := c.Read(buf)
					if err != nil || n != 2 {
						return
					}
					c.Write([]byte("OK got=" + string(buf[0]) + "\n"))
				}(conn)
			}
		}()

		time.Sleep(10 * time.Millisecond)

		resp, err := b.SendCommand('r')
		if err != nil {
			t.Fatalf("SendCommand failed: %v", err)
		}
		if resp != "OK got=r\n" {
			t.Errorf("response = %q, want %q", resp, "OK got=r\n")
		}
	})
}
