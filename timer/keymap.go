package timer

import "github.com/charmbracelet/bubbles/key"

type keymap struct {
	togglePlay key.Binding
	finish     key.Binding
	abandon    key.Binding
	music      key.Binding
	nextTrack  key.Binding
	prevTrack  key.Binding
	enter      key.Binding
	quit       key.Binding
}

var defaultKeymap = keymap{
	togglePlay: key.NewBinding(
		key.WithKeys("p", " "),
		key.WithHelp("p", "pause/resume"),
	),
	finish: key.NewBinding(
		key.WithKeys("f"),
		key.WithHelp("f", "finish early"),
	),
	abandon: key.NewBinding(
		key.WithKeys("x"),
		key.WithHelp("x x", "abandon"),
	),
	music: key.NewBinding(
		key.WithKeys("m"),
		key.WithHelp("m", "music"),
	),
	nextTrack: key.NewBinding(
		key.WithKeys("]", "n"),
		key.WithHelp("]", "next track"),
	),
	prevTrack: key.NewBinding(
		key.WithKeys("["),
		key.WithHelp("[", "prev track"),
	),
	enter: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "book next journey"),
	),
	quit: key.NewBinding(
		key.WithKeys("ctrl+c", "q"),
		key.WithHelp("q", "quit"),
	),
}
