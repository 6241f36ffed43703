// Package status provides the status bar for the widget.
package status

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/parcelworks/addrsearch-cli/internal/adapters/driving/tui/keymap"
	"github.com/parcelworks/addrsearch-cli/internal/adapters/driving/tui/styles"
	"github.com/parcelworks/addrsearch-cli/internal/core/domain"
)

// Bar displays search progress, banners, and keybinding hints.
type Bar struct {
	styles      *styles.Styles
	keymap      *keymap.KeyMap
	searching   bool
	panelOpen   bool
	banner      *domain.Banner
	resultCount int
	width       int
}

// NewBar creates a new status bar component.
func NewBar(s *styles.Styles, km *keymap.KeyMap) *Bar {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	return &Bar{
		styles: s,
		keymap: km,
		width:  80,
	}
}

// Init initialises the status bar.
func (s *Bar) Init() tea.Cmd {
	return nil
}

// Update handles status bar messages.
func (s *Bar) Update(msg tea.Msg) (*Bar, tea.Cmd) {
	// Bar is passive, updated via Set methods
	return s, nil
}

// View renders the status bar.
func (s *Bar) View() string {
	left := s.renderLeft()
	right := s.renderRight()

	padding := s.width - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 1 {
		padding = 1
	}

	return s.styles.StatusBar.Width(s.width).Render(
		left + strings.Repeat(" ", padding) + right,
	)
}

// renderLeft renders the progress or banner segment. A banner always
// wins over the searching indicator and the result count.
func (s *Bar) renderLeft() string {
	if s.banner != nil {
		switch s.banner.Tone {
		case domain.ToneSuccess:
			return s.styles.Success.Render(s.banner.Message)
		default:
			return s.styles.Error.Render(s.banner.Message)
		}
	}

	if s.searching {
		return s.styles.Muted.Render("Searching...")
	}

	if s.panelOpen && s.resultCount > 0 {
		return s.styles.Normal.Render(fmt.Sprintf("%d suggestions", s.resultCount))
	}

	return s.styles.Muted.Render("Ready")
}

// renderRight renders keybinding hints.
func (s *Bar) renderRight() string {
	var bindings []key.Binding
	if s.panelOpen && s.resultCount > 0 {
		bindings = s.keymap.PanelHelp()
	} else {
		bindings = s.keymap.ShortHelp()
	}

	hints := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		hints = append(hints, fmt.Sprintf("%s: %s", h.Key, h.Desc))
	}
	return s.styles.Muted.Render(strings.Join(hints, " | "))
}

// SetSearching sets the search progress indicator.
func (s *Bar) SetSearching(searching bool) {
	s.searching = searching
}

// Searching returns whether the search indicator is shown.
func (s *Bar) Searching() bool {
	return s.searching
}

// SetPanelOpen records whether the suggestion panel is visible.
func (s *Bar) SetPanelOpen(open bool) {
	s.panelOpen = open
}

// SetBanner sets the banner to display, or nil to clear it.
func (s *Bar) SetBanner(banner *domain.Banner) {
	s.banner = banner
}

// Banner returns the current banner.
func (s *Bar) Banner() *domain.Banner {
	return s.banner
}

// SetResultCount sets the suggestion count.
func (s *Bar) SetResultCount(count int) {
	s.resultCount = count
}

// ResultCount returns the current suggestion count.
func (s *Bar) ResultCount() int {
	return s.resultCount
}

// SetWidth sets the status bar width.
func (s *Bar) SetWidth(width int) {
	s.width = width
}

// Width returns the current width.
func (s *Bar) Width() int {
	return s.width
}

// Clear resets the status bar to its default state.
func (s *Bar) Clear() {
	s.searching = false
	s.panelOpen = false
	s.banner = nil
	s.resultCount = 0
}
