// Package style wraps lipgloss into plain string renderers.
package style

import "github.com/charmbracelet/lipgloss"

// New returns an empty style.
func New() lipgloss.Style {
	return lipgloss.NewStyle()
}

// Fg returns a renderer painting text in c.
func Fg(c lipgloss.Color) func(string) string {
	s := New().Foreground(c)
	return func(text string) string { return s.Render(text) }
}

func Faint(text string) string { return New().Faint(true).Render(text) }
func Bold(text string) string  { return New().Bold(true).Render(text) }
