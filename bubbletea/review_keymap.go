package bubbletea

import "github.com/charmbracelet/bubbles/key"

// ReviewKeyMap defines the key bindings for the verdict reviewer.
type ReviewKeyMap struct {
	// Navigation
	NextCase     key.Binding
	PrevCase     key.Binding
	NextUnjudged key.Binding
	PrevUnjudged key.Binding

	// Panels and scrolling
	CodePanel    key.Binding
	ResultPanel  key.Binding
	HalfPageUp   key.Binding
	HalfPageDown key.Binding

	// Judgment
	Pass     key.Binding
	Fail     key.Binding
	Critique key.Binding

	// Critique mode
	ExitCritique key.Binding

	// Export
	CopyCase key.Binding

	// General
	Quit key.Binding
}

// DefaultReviewKeyMap returns the default key bindings for the verdict reviewer.
func DefaultReviewKeyMap() ReviewKeyMap {
	return ReviewKeyMap{
		NextCase: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "next case"),
		),
		PrevCase: key.NewBinding(
			key.WithKeys("N"),
			key.WithHelp("N", "previous case"),
		),
		NextUnjudged: key.NewBinding(
			key.WithKeys("u"),
			key.WithHelp("u", "next unjudged"),
		),
		PrevUnjudged: key.NewBinding(
			key.WithKeys("U"),
			key.WithHelp("U", "previous unjudged"),
		),
		CodePanel: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "code panel"),
		),
		ResultPanel: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "result panel"),
		),
		HalfPageUp: key.NewBinding(
			key.WithKeys("ctrl+u"),
			key.WithHelp("ctrl+u", "half page up"),
		),
		HalfPageDown: key.NewBinding(
			key.WithKeys("ctrl+d"),
			key.WithHelp("ctrl+d", "half page down"),
		),
		Pass: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "mark pass"),
		),
		Fail: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "mark fail"),
		),
		Critique: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "enter critique"),
		),
		ExitCritique: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "exit critique mode"),
		),
		CopyCase: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "copy case to clipboard"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}
