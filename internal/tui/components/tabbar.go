// Package components holds the small reusable widgets of the shell:
// tab bar, header, and status bar.
package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
	"github.com/mattn/go-runewidth"

	"menuctl/internal/config"
	"menuctl/internal/navigation"
	"menuctl/internal/tui/design"
)

// TabZonePrefix namespaces the clickable tab zones.
const TabZonePrefix = "tab:"

// TabBar renders the enabled tabs in order, highlighting the one bound
// to the current screen. Each tab is wrapped in a bubblezone mark so a
// click navigates like a tap.
func TabBar(st design.Styles, tabs []config.TabEntry, current navigation.ScreenID, width int) string {
	if len(tabs) == 0 {
		return ""
	}

	// Label room per tab, icon and padding included.
	cell := width/len(tabs) - 2
	if cell < 4 {
		cell = 4
	}

	parts := make([]string, 0, len(tabs))
	for _, tab := range tabs {
		label := runewidth.Truncate(tab.Label, cell, "…")
		text := tab.Icon + " " + label
		style := st.TabInactive
		if tab.Screen == current {
			style = st.TabActive
		}
		parts = append(parts, zone.Mark(TabZonePrefix+tab.ID, style.Render(text)))
	}

	bar := lipgloss.JoinHorizontal(lipgloss.Top, parts...)
	if pad := width - lipgloss.Width(bar); pad > 0 {
		bar += st.TabBar.Render(strings.Repeat(" ", pad))
	}
	return bar
}
