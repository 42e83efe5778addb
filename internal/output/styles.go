package output

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles holds all lipgloss styles for text output
var Styles = struct {
	// Log level styles
	Debug lipgloss.Style
	Info  lipgloss.Style
	Warn  lipgloss.Style
	Error lipgloss.Style
	Plain lipgloss.Style

	// Component styles
	Timestamp lipgloss.Style
	Label     lipgloss.Style
	Value     lipgloss.Style

	// Status styles
	Header  lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style
	Danger  lipgloss.Style
}{
	Debug: lipgloss.NewStyle().Foreground(lipgloss.Color("243")),            // Gray
	Info:  lipgloss.NewStyle().Foreground(lipgloss.Color("39")),             // Cyan
	Warn:  lipgloss.NewStyle().Foreground(lipgloss.Color("214")),            // Orange
	Error: lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true), // Red bold
	Plain: lipgloss.NewStyle(),

	Timestamp: lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
	Label:     lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
	Value:     lipgloss.NewStyle().Bold(true),

	Header:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
	Success: lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true),
	Warning: lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true),
	Danger:  lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
}

// LevelStyle returns the style for a level token. Levels are free-form, so
// unknown tokens fall back to plain rendering.
func LevelStyle(level string) lipgloss.Style {
	switch level {
	case "DEBUG", "TRACE":
		return Styles.Debug
	case "INFO":
		return Styles.Info
	case "WARN", "WARNING":
		return Styles.Warn
	case "ERROR", "FATAL", "CRITICAL":
		return Styles.Error
	default:
		return Styles.Plain
	}
}
