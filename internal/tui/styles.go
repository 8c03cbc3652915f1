package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Styles shared by the preview and the configuration editor
var (
	// Header style for titles and section headers
	StyleHeader = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary).
			MarginBottom(1)

	// Label style for form field labels
	StyleLabel = lipgloss.NewStyle().
			Foreground(ColorText).
			Bold(true)

	// Success style for positive feedback
	StyleSuccess = lipgloss.NewStyle().
			Foreground(ColorSuccess)

	// Error style for error messages
	StyleError = lipgloss.NewStyle().
			Foreground(ColorError).
			Bold(true)

	// Box style for bordered containers
	StyleBox = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorSubtle).
			Padding(1, 2)
)

const logoASCII = `
     _               _                     _      
 ___| |__   __ _  __| | ___  ___  ___ __ _| | ___ 
/ __| '_ \ / _' |/ _' |/ _ \/ __|/ __/ _' | |/ _ \
\__ \ | | | (_| | (_| |  __/\__ \ (_| (_| | |  __/
|___/_| |_|\__,_|\__,_|\___||___/\___\__,_|_|\___|`

// Logo returns the shadescale ASCII art
func Logo() string {
	return StyleHeader.Render(strings.Trim(logoASCII, "\n"))
}

