// Package view renders the model. Every function here is pure: it
// reads state and returns strings, never mutates.
package view

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"

	"menuctl/internal/navigation"
	"menuctl/internal/tui/components"
	"menuctl/internal/tui/model"
)

// Render draws the whole frame: header, current screen, tab bar and
// status bar, with any open modal stacked on top. The output is passed
// through zone.Scan so the clickable tab marks resolve to coordinates.
func Render(m *model.Model) string {
	if m.Width <= 0 || m.Height <= 0 {
		return "loading..."
	}

	st := m.Theme.Styles()

	header := components.Header(st, screenTitle(m), m.Lives, m.Nav.CanGoBack(), m.Width)
	tabbar := components.TabBar(st, m.Store.EnabledTabs(), m.Nav.CurrentScreen(), m.Width)
	status := components.StatusBar(st, statusLeft(m), statusRight(m), m.Width)

	bodyHeight := m.Height - lipgloss.Height(header) - lipgloss.Height(tabbar) - lipgloss.Height(status)
	if bodyHeight < 1 {
		bodyHeight = 1
	}
	body := renderScreen(m, bodyHeight)

	if modal := m.Nav.ActiveModal(); modal != nil {
		body = renderModalOver(m, body, bodyHeight, modal)
	} else if m.ShowHelp {
		body = renderHelpOver(m, body, bodyHeight)
	}

	frame := lipgloss.JoinVertical(lipgloss.Left, header, body, tabbar, status)
	return zone.Scan(frame)
}

func screenTitle(m *model.Model) string {
	switch m.Nav.CurrentScreen() {
	case navigation.ScreenHome:
		return "Home"
	case navigation.ScreenShop:
		return "Shop"
	case navigation.ScreenTeam:
		return "Team"
	case navigation.ScreenCollection:
		return "Collection"
	case navigation.ScreenLeaderboard:
		return "Leaderboard"
	case navigation.ScreenAreas:
		return "Areas"
	case navigation.ScreenSettings:
		return "Settings"
	case navigation.ScreenGameplay:
		return "Playing"
	case navigation.ScreenEvent:
		return eventTitle(m)
	default:
		return string(m.Nav.CurrentScreen())
	}
}

func statusLeft(m *model.Model) string {
	if m.StatusMessage != "" {
		return m.StatusMessage
	}
	if m.DebugMode && m.LastLog != nil {
		return fmt.Sprintf("[%s] %s: %s", m.LastLog.Level, m.LastLog.Subsystem, m.LastLog.Message)
	}
	return m.Help.ShortHelpView(m.Keys.ShortHelp())
}

// statusRight surfaces gesture feedback: the live drag offset while a
// drag is in flight, otherwise the direction of the last lateral slide.
func statusRight(m *model.Model) string {
	if offset := m.Gesture.Offset(); offset != 0 {
		if offset < 0 {
			return fmt.Sprintf("⇠ %.0f", -offset)
		}
		return fmt.Sprintf("%.0f ⇢", offset)
	}
	if t := m.LastTransition; t != nil && t.Lateral {
		if t.ToIndex > t.FromIndex {
			return "slide ⇢"
		}
		return "⇠ slide"
	}
	return ""
}
