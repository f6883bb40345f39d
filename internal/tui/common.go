// Package tui implements the interactive college browser on Bubble Tea.
package tui

import (
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// ViewState is the screen the browser is showing.
type ViewState int

// View states.
const (
	ViewStateList ViewState = iota
	ViewStateDetail
	ViewStateQuitting
)

// Key bindings.
const (
	keyQuit  = "q"
	keyCtrlC = "ctrl+c"
	keyEnter = "enter"
	keyEsc   = "esc"
	keySlash = "/"
	keyMore  = "m"
	keyTag   = "t"
)

// Layout defaults.
const (
	defaultWidth         = 120
	defaultHeight        = 30
	minHeight            = 5
	filterInputCharLimit = 100
	filterInputWidth     = 40
	// chromeHeight is the number of lines around the list: title, search,
	// header (with border), footer and help.
	chromeHeight = 8
)

//nolint:gochecknoglobals // Shared styles.
var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))

	headerStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("240")).
			BorderBottom(true).
			Bold(true)

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57"))

	featuredStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))

	badgeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("214")).
			Padding(0, 1)

	mutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

// printer formats counts with digit grouping.
//
//nolint:gochecknoglobals // Stateless formatter.
var printer = message.NewPrinter(language.English)
