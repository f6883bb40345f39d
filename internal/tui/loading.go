package tui

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// LoadingState drives the spinner shown while more rows are being revealed.
type LoadingState struct {
	spinner spinner.Model
	message string
}

// NewLoadingState creates a spinner with the "Loading..." label.
func NewLoadingState() *LoadingState {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = mutedStyle
	return &LoadingState{spinner: s, message: "Loading..."}
}

// Tick starts or continues the spinner animation.
func (l *LoadingState) Tick() tea.Msg {
	return l.spinner.Tick()
}

// Update advances the spinner.
func (l *LoadingState) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	l.spinner, cmd = l.spinner.Update(msg)
	return cmd
}

// View renders the spinner and label.
func (l *LoadingState) View() string {
	return l.spinner.View() + " " + l.message
}
