package timer

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/ayoisaiah/focusexpress/internal/models"
)

const (
	padding  = 2
	maxWidth = 72
)

// Style holds the lipgloss styles of the journey screen.
type Style struct {
	Base      lipgloss.Style
	Main      lipgloss.Style
	Secondary lipgloss.Style
	Hint      lipgloss.Style
	Warn      lipgloss.Style
	Card      lipgloss.Style
}

// environmentColors tints the station card by scenery.
var environmentColors = map[models.Environment]lipgloss.Color{
	models.EnvCity:      lipgloss.Color("#94A3B8"),
	models.EnvNature:    lipgloss.Color("#4ADE80"),
	models.EnvCyberpunk: lipgloss.Color("#E879F9"),
	models.EnvDesert:    lipgloss.Color("#FBBF24"),
	models.EnvSnow:      lipgloss.Color("#E0F2FE"),
	models.EnvClear:     lipgloss.Color("#38BDF8"),
}

// NewStyle returns the styles for a light or dark terminal.
func NewStyle(dark bool) Style {
	main := lipgloss.Color("#1E293B")
	secondary := lipgloss.Color("#475569")
	hint := lipgloss.Color("#64748B")

	if dark {
		main = lipgloss.Color("#F8FAFC")
		secondary = lipgloss.Color("#CBD5E1")
		hint = lipgloss.Color("#94A3B8")
	}

	return Style{
		Base:      lipgloss.NewStyle().Padding(1, padding),
		Main:      lipgloss.NewStyle().Bold(true).Foreground(main),
		Secondary: lipgloss.NewStyle().Foreground(secondary),
		Hint:      lipgloss.NewStyle().Foreground(hint),
		Warn:      lipgloss.NewStyle().Foreground(lipgloss.Color("#F87171")),
		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1),
	}
}

// card renders the station card tinted for env.
func (s Style) card(env models.Environment, body string) string {
	c, ok := environmentColors[env]
	if !ok {
		c = environmentColors[models.EnvCity]
	}

	return s.Card.BorderForeground(c).Render(body)
}

// labelColors maps label colour names to terminal colours.
var labelColors = map[string]lipgloss.Color{
	"red":     "#EF4444",
	"orange":  "#F97316",
	"amber":   "#F59E0B",
	"yellow":  "#EAB308",
	"lime":    "#84CC16",
	"green":   "#22C55E",
	"emerald": "#10B981",
	"teal":    "#14B8A6",
	"cyan":    "#06B6D4",
	"sky":     "#0EA5E9",
	"blue":    "#3B82F6",
	"indigo":  "#6366F1",
	"violet":  "#8B5CF6",
	"purple":  "#A855F7",
	"fuchsia": "#D946EF",
	"pink":    "#EC4899",
	"rose":    "#F43F5E",
}

func labelStyle(color string) lipgloss.Style {
	c, ok := labelColors[color]
	if !ok {
		c = labelColors["indigo"]
	}

	return lipgloss.NewStyle().Bold(true).Foreground(c)
}
