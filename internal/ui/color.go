// Package ui holds the pterm helpers shared by the non-interactive commands
package ui

import (
	"github.com/pterm/pterm"
)

// DarkTheme selects the lighter shades that read well on dark terminals.
var DarkTheme bool

// shade is a colour in its dark-theme and light-theme variants.
type shade struct {
	dark  pterm.Color
	light pterm.Color
}

var (
	green     = shade{pterm.FgLightGreen, pterm.FgGreen}
	cyan      = shade{pterm.FgLightCyan, pterm.FgCyan}
	magenta   = shade{pterm.FgLightMagenta, pterm.FgMagenta}
	blue      = shade{pterm.FgLightBlue, pterm.FgBlue}
	red       = shade{pterm.FgLightRed, pterm.FgRed}
	highlight = shade{pterm.FgLightWhite, pterm.FgBlack}
)

func paint(s shade, a any) string {
	if DarkTheme {
		return s.dark.Sprint(a)
	}

	return s.light.Sprint(a)
}

func Green(a any) string {
	return paint(green, a)
}

func Cyan(a any) string {
	return paint(cyan, a)
}

func Magenta(a any) string {
	return paint(magenta, a)
}

func Blue(a any) string {
	return paint(blue, a)
}

func Red(a any) string {
	return paint(red, a)
}

func Highlight(a any) string {
	return paint(highlight, a)
}
