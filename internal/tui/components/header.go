package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"menuctl/internal/tui/design"
)

// Header renders the top bar: screen title, a back affordance when
// history allows it, and the mock lives counter.
func Header(st design.Styles, title string, lives int, canGoBack bool, width int) string {
	left := title
	if canGoBack {
		left = st.BackHint.Render("‹ ") + title
	}

	right := fmt.Sprintf("❤ %d", lives)

	gap := width - lipgloss.Width(left) - lipgloss.Width(right) - 2*design.SpaceSM
	if gap < 1 {
		gap = 1
	}
	return st.Header.Width(width).Render(left + strings.Repeat(" ", gap) + right)
}
