package controller

import (
	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"

	"menuctl/internal/gesture"
	"menuctl/internal/navigation"
	"menuctl/internal/tui/components"
	"menuctl/internal/tui/model"
)

// handleMouse feeds pointer events into the swipe navigator. Cell
// coordinates are scaled to gesture units so the commit threshold
// behaves the same regardless of terminal width. A release that the
// navigator does not commit falls through to zone hit testing so tab
// taps still work.
func handleMouse(m *model.Model, msg tea.MouseMsg) (*model.Model, tea.Cmd) {
	if msg.Button != tea.MouseButtonLeft && msg.Action != tea.MouseActionMotion {
		return m, nil
	}
	x := float64(msg.X) * model.UnitsPerCell

	switch msg.Action {
	case tea.MouseActionPress:
		if m.Nav.ModalDepth() > 0 {
			// Taps dismiss the top overlay instead of dragging the
			// screen beneath it.
			m.Nav.CloseModal()
			return m, nil
		}
		m.Gesture.PointerDown(x)
		return m, nil

	case tea.MouseActionMotion:
		m.Gesture.PointerMove(x)
		return m, nil

	case tea.MouseActionRelease:
		// A committed swipe records its transition through the
		// recording surface; only plain taps reach zone testing.
		if m.Gesture.PointerUp(x) == gesture.ResultCommitted {
			return m, nil
		}
		return handleClick(m, msg)
	}
	return m, nil
}

// handleClick resolves a plain tap against the marked zones: the tab
// bar everywhere, plus the home screen's buttons and event badges.
func handleClick(m *model.Model, msg tea.MouseMsg) (*model.Model, tea.Cmd) {
	for _, tab := range m.Store.EnabledTabs() {
		if zone.Get(components.TabZonePrefix + tab.ID).InBounds(msg) {
			navigateTo(m, navigation.ScreenID(tab.Screen), nil)
			return m, nil
		}
	}

	if m.Nav.CurrentScreen() != navigation.ScreenHome {
		return m, nil
	}
	if zone.Get(components.PlayZoneID).InBounds(msg) {
		navigateTo(m, navigation.ScreenGameplay, nil)
		return m, nil
	}
	if zone.Get(components.AreasZoneID).InBounds(msg) && m.Store.ShowAreaButton() {
		navigateTo(m, navigation.ScreenAreas, nil)
		return m, nil
	}
	for _, id := range m.Store.EnabledEvents() {
		if zone.Get(components.EventZonePrefix + id).InBounds(msg) {
			navigateTo(m, navigation.ScreenEvent, navigation.Params{"eventId": id})
			return m, nil
		}
	}
	return m, nil
}
