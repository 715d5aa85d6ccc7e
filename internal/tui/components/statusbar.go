package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"menuctl/internal/tui/design"
)

// StatusBar renders the bottom line: a transient message or key hints
// on the left, drag/transition feedback on the right.
func StatusBar(st design.Styles, left, right string, width int) string {
	gap := width - lipgloss.Width(left) - lipgloss.Width(right) - 2*design.SpaceSM
	if gap < 1 {
		gap = 1
	}
	return st.StatusBar.Width(width).Render(left + strings.Repeat(" ", gap) + right)
}
