package view

import (
	"fmt"
	"strings"

	"menuctl/internal/catalog"
	"menuctl/internal/config"
	"menuctl/internal/tui/model"
)

// renderSettings draws the admin panel: the working tab list with its
// [1..n] bounds, event placement, theme cycling, and the reset/export
// actions. The cursor row is highlighted; every edit dispatches a
// store command from the controller.
func renderSettings(m *model.Model) string {
	st := m.Theme.Styles()
	rows := m.AdminRows()
	cfg := m.Store.Config()
	placement := m.Store.EventPlacement()

	var b strings.Builder
	bounds := m.Store.Bounds()
	b.WriteString(st.Title.Render("Admin Panel") + "  " +
		st.Subtitle.Render(fmt.Sprintf("tabs %d–%d enabled, space toggles, [ ] moves", bounds.Min, bounds.Max)) + "\n")

	lastSection := ""
	for i, row := range rows {
		if section := sectionTitle(row.Kind); section != lastSection {
			b.WriteString("\n" + st.PanelTitle.Render(section) + "\n")
			lastSection = section
		}

		line := rowLabel(m, row, cfg, placement)
		if i == m.AdminCursor {
			line = st.Cursor.Render("› ") + st.CursorLine.Render(line)
		} else {
			line = "  " + line
		}
		b.WriteString(line + "\n")
	}
	return b.String()
}

func sectionTitle(kind model.AdminRowKind) string {
	switch kind {
	case model.RowTab:
		return "Navigation Tabs"
	case model.RowEvent:
		return "Live Events"
	default:
		return "Appearance & Data"
	}
}

func rowLabel(m *model.Model, row model.AdminRow, cfg config.PersistedConfig, placement config.EventPlacement) string {
	switch row.Kind {
	case model.RowTab:
		return tabRowLabel(row.ID, cfg)
	case model.RowEvent:
		return eventRowLabel(row.ID, placement)
	case model.RowTheme:
		return fmt.Sprintf("Theme preset: %s  (t cycles)", m.Store.CurrentThemePreset())
	case model.RowExport:
		return "Copy configuration to clipboard  (y)"
	case model.RowReset:
		return "Reset everything to defaults  (r)"
	default:
		return ""
	}
}

func tabRowLabel(id string, cfg config.PersistedConfig) string {
	for i, tab := range cfg.Tabs {
		if tab.ID == id {
			mark := "[ ]"
			if tab.Enabled {
				mark = "[x]"
			}
			return fmt.Sprintf("%s %s %-12s #%d", mark, tab.Icon, tab.Label, i+1)
		}
	}
	// Catalog tab not yet in the working list.
	if def, ok := catalog.TabByID(id); ok {
		return fmt.Sprintf("[ ] %s %-12s", def.Icon, def.Label)
	}
	return id
}

func eventRowLabel(id string, placement config.EventPlacement) string {
	def, ok := catalog.EventByID(id)
	if !ok {
		return id
	}
	side := "off"
	for _, e := range placement.Left {
		if e == id {
			side = "left"
		}
	}
	for _, e := range placement.Right {
		if e == id {
			side = "right"
		}
	}
	mark := "[ ]"
	if side != "off" {
		mark = "[x]"
	}
	return fmt.Sprintf("%s %s %-16s %s", mark, def.Icon, def.Name, side)
}
