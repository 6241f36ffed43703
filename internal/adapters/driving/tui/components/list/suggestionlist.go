// Package list renders the suggestion panel.
package list

import (
	"strings"

	"github.com/parcelworks/addrsearch-cli/internal/adapters/driving/tui/styles"
	"github.com/parcelworks/addrsearch-cli/internal/core/domain"
)

// Row state markers.
const (
	markerContainer = "▸"
	markerPending   = "…"
	markerSettled   = "✓"
)

// SuggestionList renders the ranked suggestions with highlight
// rendering, container indicators, and selection markers. Order is the
// lookup service's ranking; the list never reorders.
type SuggestionList struct {
	styles      *styles.Styles
	suggestions []domain.Location
	selection   domain.SelectionState
	query       string
	cursor      int
	width       int
}

// NewSuggestionList creates an empty suggestion list.
func NewSuggestionList(s *styles.Styles) *SuggestionList {
	if s == nil {
		s = styles.DefaultStyles()
	}
	return &SuggestionList{
		styles: s,
		width:  80,
	}
}

// SetSuggestions replaces the list. The query is kept for fallback
// highlighting when a result carries no offsets. The cursor is clamped
// into the new list.
func (l *SuggestionList) SetSuggestions(locs []domain.Location, query string) {
	l.suggestions = locs
	l.query = query
	if l.cursor >= len(locs) {
		l.cursor = 0
	}
}

// SetSelection updates the selection markers.
func (l *SuggestionList) SetSelection(sel domain.SelectionState) {
	l.selection = sel
}

// MoveUp moves the cursor up one row.
func (l *SuggestionList) MoveUp() {
	if l.cursor > 0 {
		l.cursor--
	}
}

// MoveDown moves the cursor down one row.
func (l *SuggestionList) MoveDown() {
	if l.cursor < len(l.suggestions)-1 {
		l.cursor++
	}
}

// Cursor returns the focused row index.
func (l *SuggestionList) Cursor() int {
	return l.cursor
}

// Current returns the focused location, or nil when the list is empty.
func (l *SuggestionList) Current() *domain.Location {
	if len(l.suggestions) == 0 {
		return nil
	}
	loc := l.suggestions[l.cursor]
	return &loc
}

// Len returns the number of suggestions.
func (l *SuggestionList) Len() int {
	return len(l.suggestions)
}

// SetWidth sets the render width.
func (l *SuggestionList) SetWidth(width int) {
	l.width = width
}

// View renders the panel.
func (l *SuggestionList) View() string {
	if len(l.suggestions) == 0 {
		return ""
	}

	rows := make([]string, 0, len(l.suggestions))
	for i, loc := range l.suggestions {
		rows = append(rows, l.renderRow(loc, i == l.cursor))
	}

	return l.styles.Border.Padding(0, 1).Render(strings.Join(rows, "\n"))
}

// renderRow renders one suggestion: marker, highlighted primary line,
// muted secondary line. The selection markers win over the cursor so a
// pending or settled row is never mistaken for plain focus.
func (l *SuggestionList) renderRow(loc domain.Location, focused bool) string {
	marker := "  "
	switch {
	case l.selection.PendingKey(loc.Key):
		marker = markerPending + " "
	case l.selection.SettledKey(loc.Key):
		marker = l.styles.Success.Render(markerSettled) + " "
	case focused:
		marker = "> "
	}

	var primary string
	if focused {
		// Uniform background over the whole focused line; per-segment
		// styling would break it up.
		text := loc.Primary.Text
		if loc.Expandable() {
			text += " " + markerContainer
		}
		primary = l.styles.Selected.Render(text)
	} else {
		primary = l.renderPrimary(loc)
		if loc.Expandable() {
			primary += " " + l.styles.Muted.Render(markerContainer)
		}
	}

	line := marker + primary
	if loc.Secondary.Text != "" {
		line += "\n    " + l.styles.Muted.Render(loc.Secondary.Text)
	}
	return line
}

// renderPrimary renders the primary line with matched fragments
// emphasised. Offsets from the service win; otherwise the current
// query is matched as a fallback.
func (l *SuggestionList) renderPrimary(loc domain.Location) string {
	segs := domain.RenderSegments(loc.Primary.Text, loc.Primary.Highlights, l.query)

	var sb strings.Builder
	for _, seg := range segs {
		if seg.Highlight {
			sb.WriteString(l.styles.Highlight.Render(seg.DisplayValue()))
		} else {
			sb.WriteString(l.styles.Normal.Render(seg.DisplayValue()))
		}
	}
	return sb.String()
}
