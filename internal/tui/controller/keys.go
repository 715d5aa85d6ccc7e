package controller

import (
	"fmt"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"menuctl/internal/config"
	"menuctl/internal/navigation"
	"menuctl/internal/theme"
	"menuctl/internal/tui/model"
)

func handleKey(m *model.Model, msg tea.KeyMsg) (*model.Model, tea.Cmd) {
	// Global bindings work everywhere, even above modals.
	switch {
	case key.Matches(msg, m.Keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.Keys.Help):
		m.ShowHelp = !m.ShowHelp
		return m, nil
	}
	if m.ShowHelp {
		// Any other key dismisses the help overlay.
		m.ShowHelp = false
		return m, nil
	}

	if m.Nav.ModalDepth() > 0 {
		return handleModalKey(m, msg)
	}

	switch {
	case key.Matches(msg, m.Keys.Back):
		if m.Nav.GoBack() {
			m.LastTransition = nil
		}
		return m, nil
	case key.Matches(msg, m.Keys.Left):
		if m.Nav.CurrentScreen() != navigation.ScreenSettings {
			lateral(m, -1)
		}
		return m, nil
	case key.Matches(msg, m.Keys.Right):
		if m.Nav.CurrentScreen() != navigation.ScreenSettings {
			lateral(m, +1)
		}
		return m, nil
	case key.Matches(msg, m.Keys.Settings):
		navigateTo(m, navigation.ScreenSettings, nil)
		return m, nil
	case key.Matches(msg, m.Keys.Play):
		navigateTo(m, navigation.ScreenGameplay, nil)
		return m, nil
	case key.Matches(msg, m.Keys.DemoModal):
		m.Lives = 0
		m.Nav.OpenModal(navigation.ModalOutOfLives, nil)
		return m, nil
	}

	switch m.Nav.CurrentScreen() {
	case navigation.ScreenSettings:
		return handleAdminKey(m, msg)
	case navigation.ScreenHome:
		return handleHomeKey(m, msg)
	case navigation.ScreenTeam:
		if msg.String() == "g" {
			m.Nav.OpenModal(navigation.ModalSignIn, nil)
		}
	case navigation.ScreenGameplay:
		if key.Matches(msg, m.Keys.Toggle) {
			m.Nav.OpenModal(navigation.ModalReward, navigation.Params{"name": "Level 87 Cleared!"})
		}
	}
	return m, nil
}

func handleModalKey(m *model.Model, msg tea.KeyMsg) (*model.Model, tea.Cmd) {
	active := m.Nav.ActiveModal()
	switch {
	case key.Matches(msg, m.Keys.Back):
		m.Nav.CloseModal()
		return m, nil
	case key.Matches(msg, m.Keys.Toggle):
		if active != nil && active.ID == navigation.ModalResetConfirm {
			m.Nav.CloseModal()
			if m.Store.Dispatch(config.ResetToDefaults{}) {
				return setStatus(m, "configuration reset to defaults")
			}
			return m, nil
		}
		m.Nav.CloseModal()
		return m, nil
	case key.Matches(msg, m.Keys.DemoModal):
		// Stacks another overlay, up to the depth cap.
		m.Nav.OpenModal(navigation.ModalInfo, nil)
		return m, nil
	}
	return m, nil
}

// handleHomeKey covers shortcuts that only make sense on the home
// screen, such as the optional areas button.
func handleHomeKey(m *model.Model, msg tea.KeyMsg) (*model.Model, tea.Cmd) {
	if msg.String() == "g" && m.Store.ShowAreaButton() {
		navigateTo(m, navigation.ScreenAreas, nil)
	}
	return m, nil
}

func handleAdminKey(m *model.Model, msg tea.KeyMsg) (*model.Model, tea.Cmd) {
	m.ClampAdminCursor()
	rows := m.AdminRows()

	switch {
	case key.Matches(msg, m.Keys.Up):
		if m.AdminCursor > 0 {
			m.AdminCursor--
		}
		return m, nil
	case key.Matches(msg, m.Keys.Down):
		if m.AdminCursor < len(rows)-1 {
			m.AdminCursor++
		}
		return m, nil
	case key.Matches(msg, m.Keys.Theme):
		return cycleTheme(m)
	case key.Matches(msg, m.Keys.Export):
		return exportConfig(m)
	case key.Matches(msg, m.Keys.Reset):
		m.Nav.OpenModal(navigation.ModalResetConfirm, nil)
		return m, nil
	}

	if len(rows) == 0 {
		return m, nil
	}
	row := rows[m.AdminCursor]

	switch {
	case key.Matches(msg, m.Keys.Toggle):
		return activateRow(m, row)
	case key.Matches(msg, m.Keys.MoveUp):
		return moveRow(m, row, -1)
	case key.Matches(msg, m.Keys.MoveDown):
		return moveRow(m, row, +1)
	}
	return m, nil
}

func activateRow(m *model.Model, row model.AdminRow) (*model.Model, tea.Cmd) {
	switch row.Kind {
	case model.RowTab:
		enabled := false
		for _, t := range m.Store.Tabs() {
			if t.ID == row.ID {
				enabled = t.Enabled
				break
			}
		}
		if !m.Store.Dispatch(config.ToggleTab{TabID: row.ID, Enabled: !enabled}) {
			return setStatus(m, "tab count must stay between "+boundsHint(m))
		}
	case model.RowEvent:
		m.Store.Dispatch(config.ToggleEvent{
			EventID: row.ID,
			Enabled: !m.Store.IsEventEnabled(row.ID),
		})
	case model.RowTheme:
		return cycleTheme(m)
	case model.RowExport:
		return exportConfig(m)
	case model.RowReset:
		m.Nav.OpenModal(navigation.ModalResetConfirm, nil)
	}
	return m, nil
}

// moveRow shifts a tab within the working order, or flips an enabled
// event between the left and right home columns.
func moveRow(m *model.Model, row model.AdminRow, dir int) (*model.Model, tea.Cmd) {
	switch row.Kind {
	case model.RowTab:
		cfg := m.Store.Config()
		order := make([]string, 0, len(cfg.Tabs))
		idx := -1
		for i, t := range cfg.Tabs {
			if t.ID == row.ID {
				idx = i
			}
			order = append(order, t.ID)
		}
		target := idx + dir
		if idx < 0 || target < 0 || target >= len(order) {
			return m, nil
		}
		order[idx], order[target] = order[target], order[idx]
		m.Store.Dispatch(config.ReorderTabs{Order: order})
	case model.RowEvent:
		placement := m.Store.EventPlacement()
		if !placement.Contains(row.ID) {
			return m, nil
		}
		next := config.EventPlacement{
			Left:  remove(placement.Left, row.ID),
			Right: remove(placement.Right, row.ID),
		}
		if dir < 0 {
			next.Left = append(next.Left, row.ID)
		} else {
			next.Right = append(next.Right, row.ID)
		}
		m.Store.Dispatch(config.UpdateEventPlacement{Placement: next})
	}
	return m, nil
}

func cycleTheme(m *model.Model) (*model.Model, tea.Cmd) {
	ids := theme.IDs()
	if len(ids) == 0 {
		return m, nil
	}
	current := m.Store.CurrentThemePreset()
	next := ids[0]
	for i, id := range ids {
		if id == current {
			next = ids[(i+1)%len(ids)]
			break
		}
	}
	if m.Store.Dispatch(config.SetThemePreset{PresetID: next}) {
		return setStatus(m, "theme: "+next)
	}
	return m, nil
}

func exportConfig(m *model.Model) (*model.Model, tea.Cmd) {
	data, err := m.Store.ExportJSON()
	if err != nil {
		return setStatus(m, "export failed: "+err.Error())
	}
	if err := clipboard.WriteAll(string(data)); err != nil {
		return setStatus(m, "clipboard unavailable: "+err.Error())
	}
	return setStatus(m, "configuration copied to clipboard")
}

func setStatus(m *model.Model, text string) (*model.Model, tea.Cmd) {
	m.StatusMessage = text
	return m, tea.Tick(3*time.Second, func(time.Time) tea.Msg {
		return model.ClearStatusMsg{}
	})
}

func boundsHint(m *model.Model) string {
	b := m.Store.Bounds()
	return fmt.Sprintf("%d and %d", b.Min, b.Max)
}

func remove(ids []string, id string) []string {
	out := make([]string, 0, len(ids))
	for _, v := range ids {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}
