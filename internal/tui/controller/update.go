package controller

import (
	tea "github.com/charmbracelet/bubbletea"

	"menuctl/internal/navigation"
	"menuctl/internal/tui/model"
)

// Update is the central dispatch for every Bubble Tea message.
func Update(msg tea.Msg, m *model.Model) (*model.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.Help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return handleKey(m, msg)

	case tea.MouseMsg:
		return handleMouse(m, msg)

	case model.NewLogEntryMsg:
		m.LastLog = &msg.Entry
		return m, model.ChannelReaderCmd(m.LogChannel)

	case model.ClearStatusMsg:
		m.StatusMessage = ""
		return m, nil
	}
	return m, nil
}

// navigateTo performs a screen change on behalf of any input path,
// closing every open modal first so no overlay is orphaned above a
// different screen.
func navigateTo(m *model.Model, screen navigation.ScreenID, params navigation.Params) {
	if m.Nav.ModalDepth() > 0 {
		m.Nav.CloseAllModals()
	}
	if tr, moved := m.Nav.Navigate(screen, params); moved {
		m.LastTransition = &tr
	}
}

// lateral moves one tab over in the enabled ordering, clamped at the
// ends. dir is -1 for the previous tab, +1 for the next.
func lateral(m *model.Model, dir int) {
	screens := m.Store.EnabledScreens()
	idx := -1
	for i, s := range screens {
		if s == m.Nav.CurrentScreen() {
			idx = i
			break
		}
	}
	if idx < 0 {
		// The current screen is outside the swipe set; snap to the
		// first tab instead of guessing a neighbor.
		if len(screens) > 0 {
			navigateTo(m, screens[0], nil)
		}
		return
	}
	next := idx + dir
	if next < 0 || next >= len(screens) {
		return
	}
	navigateTo(m, screens[next], nil)
}
