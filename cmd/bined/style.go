package main

import "github.com/charmbracelet/lipgloss"

type styles struct {
	prompt lipgloss.Style
	err    lipgloss.Style
}

// newStyles returns the prompt and error styles. With color off every style
// renders its input unchanged.
func newStyles(color bool) styles {
	if !color {
		return styles{prompt: lipgloss.NewStyle(), err: lipgloss.NewStyle()}
	}
	return styles{
		prompt: lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
		err:    lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
	}
}
