package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rshade/collegelist/internal/college"
	"github.com/rshade/collegelist/internal/listing"
)

// Column widths in cells.
const (
	colRank      = 8
	colName      = 40
	colFees      = 14
	colPlacement = 14
	colReviews   = 14
	colRanking   = 18
)

const (
	arrowUp   = "▲"
	arrowDown = "▼"
)

// columnLabels are the header labels of the sortable columns, keyed by field.
//
//nolint:gochecknoglobals // Header labels.
var columnLabels = map[listing.Field]string{
	listing.FieldRank:        "CD Rank",
	listing.FieldFees:        "Course Fees",
	listing.FieldPlacement:   "Placement",
	listing.FieldUserReviews: "User Reviews",
	listing.FieldRanking:     "Ranking",
}

// View implements tea.Model.
func (m *BrowserModel) View() string {
	switch m.state {
	case ViewStateQuitting:
		return ""
	case ViewStateDetail:
		return m.renderDetailView()
	case ViewStateList:
		return m.renderListView()
	default:
		return ""
	}
}

func (m *BrowserModel) renderListView() string {
	sections := []string{
		titleStyle.Render("College List"),
		m.renderSearch(),
		m.renderHeader(),
	}
	if len(m.rows) == 0 {
		sections = append(sections, mutedStyle.Render("No colleges match the search."))
	} else {
		sections = append(sections, m.virtualList.View())
	}
	sections = append(sections, m.renderFooter(), m.renderHelp())
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m *BrowserModel) renderSearch() string {
	if m.showFilter || m.textInput.Value() != "" {
		return "Search: " + m.textInput.View()
	}
	return mutedStyle.Render("Press / to search by college name")
}

func (m *BrowserModel) renderHeader() string {
	indicator := m.pipeline.Sort()
	label := func(field listing.Field, width int) string {
		text := columnLabels[field]
		if indicator.Active() && indicator.Field == field {
			arrow := arrowUp
			if indicator.Direction == listing.Descending {
				arrow = arrowDown
			}
			text += " " + arrow
		}
		return pad(text, width)
	}

	header := label(listing.FieldRank, colRank) +
		pad("College", colName) +
		label(listing.FieldFees, colFees) +
		label(listing.FieldPlacement, colPlacement) +
		label(listing.FieldUserReviews, colReviews) +
		label(listing.FieldRanking, colRanking)
	return headerStyle.Render(header)
}

// renderRow renders one college line for the virtual list.
func (m *BrowserModel) renderRow(rec college.Record, selected bool) string {
	name := rec.Name
	if rec.Featured {
		name = "★ " + name
	}

	line := pad(fmt.Sprintf("#%d", rec.Rank), colRank) +
		pad(truncate(name, colName-1), colName) +
		pad(rec.Fees.String(), colFees) +
		pad(rec.Placement.String(), colPlacement) +
		pad(fmt.Sprintf("%.1f / 10", rec.UserReviews), colReviews) +
		pad(truncate(rec.Ranking.String(), colRanking-1), colRanking)

	switch {
	case selected:
		return selectedStyle.Render(line)
	case rec.Featured:
		return featuredStyle.Render(line)
	default:
		return line
	}
}

func (m *BrowserModel) renderFooter() string {
	counts := printer.Sprintf("Showing %d of %d revealed (%d total)",
		len(m.rows), m.pipeline.Revealed(), m.pipeline.Total())

	switch {
	case m.pending:
		return counts + "  " + m.loading.View()
	case m.pipeline.Exhausted():
		return counts + "  " + mutedStyle.Render("No more data")
	default:
		return counts + "  " + mutedStyle.Render("scroll down or press m for more")
	}
}

func (m *BrowserModel) renderHelp() string {
	return mutedStyle.Render("1-5 sort · / search · enter details · q quit")
}

func (m *BrowserModel) renderDetailView() string {
	rec := m.virtualList.GetSelectedItem()
	if rec == nil {
		return mutedStyle.Render("No college selected. Press ESC to return")
	}

	var content strings.Builder
	title := rec.Name
	if rec.Featured {
		title += " " + badgeStyle.Render("Featured")
	}
	content.WriteString(titleStyle.Render(title))
	content.WriteString("\n\n")

	writeField := func(label, value string) {
		content.WriteString(mutedStyle.Render(pad(label+":", 14)))
		content.WriteString(value)
		content.WriteString("\n")
	}
	writeField("CD Rank", fmt.Sprintf("#%d", rec.Rank))
	writeField("Location", rec.Location)
	writeField("Course", rec.Course)
	writeField("Course Fees", rec.Fees.String())
	writeField("Placement", rec.Placement.String())
	writeField("Ranking", rec.Ranking.String())
	writeField("User Reviews", fmt.Sprintf("%.1f / 10", rec.UserReviews))
	content.WriteString(printer.Sprintf("Based on %d User Reviews\n", college.ReviewCount))

	tag := m.SelectedTag(rec.ID)
	if tag == "" {
		tag = "none"
	}
	writeField("Review tag", tag)
	content.WriteString("\n")
	content.WriteString("Apply Now | Download Brochure\n\n")
	content.WriteString(mutedStyle.Render("t cycle review tag · esc back · q quit"))

	return content.String()
}

// pad right-pads s with spaces to width cells.
func pad(s string, width int) string {
	if w := lipgloss.Width(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}

// truncate shortens s to at most width runes, marking the cut with an ellipsis.
func truncate(s string, width int) string {
	runes := []rune(s)
	if len(runes) <= width || width < 1 {
		return s
	}
	return string(runes[:width-1]) + "…"
}
