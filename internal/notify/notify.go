package notify

import (
	"fmt"
	"log"
	"os/exec"

	"github.com/leonardotrapani/shadescale/internal/deps"
)

type Notifier interface {
	ThemeWritten(path string, entries int)
	Error(msg string)
}

// New returns the notifier for a notifications.type value. Desktop falls
// back to Log when notify-send is not installed.
func New(notifType string) Notifier {
	switch notifType {
	case "desktop":
		if !deps.CheckNotifySend().Installed {
			log.Printf("Notify: notify-send not found, logging notifications instead")
			return Log{}
		}
		return Desktop{}
	case "log":
		return Log{}
	default:
		return Nop{}
	}
}

type Desktop struct{}

func (Desktop) ThemeWritten(path string, entries int) {
	cmd := exec.Command("notify-send", "-a", "Shadescale", "Shadescale: Theme Updated",
		fmt.Sprintf("%d colors written to %s", entries, path))
	if err := cmd.Run(); err != nil {
		log.Printf("Failed to send notification: %v", err)
	}
}

func (Desktop) Error(msg string) {
	cmd := exec.Command("notify-send", "-a", "Shadescale", "-u", "critical", "Shadescale Error", msg)
	if err := cmd.Run(); err != nil {
		log.Printf("Failed to send error notification: %v", err)
	}
}

// Log writes notifications to the standard logger.
type Log struct{}

func (Log) ThemeWritten(path string, entries int) {
	log.Printf("Shadescale: Theme Updated - %d colors written to %s", entries, path)
}

func (Log) Error(msg string) {
	log.Printf("Shadescale Error: %s", msg)
}

// Nop is a Notifier that does absolutely nothing.
// Useful in unit tests or headless builds.
type Nop struct{}

func (Nop) ThemeWritten(path string, entries int) {}
func (Nop) Error(msg string)                      {}
