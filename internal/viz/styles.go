package viz

import "github.com/charmbracelet/lipgloss"

var (
	HeaderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	CanvasStyle = lipgloss.NewStyle().Padding(0, 1)
	StatsStyle  = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(lipgloss.Color("240")).Padding(0, 2).Width(38)
	LabelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(12)
	ValueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	GraphStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("49"))
	HelpStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
	ErrorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	PausedTag  = lipgloss.NewStyle().Foreground(lipgloss.Color("220")).Bold(true)
	RunningTag = lipgloss.NewStyle().Foreground(lipgloss.Color("82")).Bold(true)
)

// bodyStyles maps the color tags used by presets onto terminal colors.
// Unknown tags render white; the tag is opaque to everything else.
var bodyStyles = map[string]lipgloss.Style{
	"yellow": lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
	"orange": lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	"red":    lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
	"blue":   lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
	"gray":   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	"green":  lipgloss.NewStyle().Foreground(lipgloss.Color("82")),
	"white":  lipgloss.NewStyle().Foreground(lipgloss.Color("255")),
}

// BodyStyle returns the style for a body color tag.
func BodyStyle(color string) lipgloss.Style {
	if st, ok := bodyStyles[color]; ok {
		return st
	}
	return bodyStyles["white"]
}
