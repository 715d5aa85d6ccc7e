package config

import (
	"menuctl/internal/catalog"
	"menuctl/internal/theme"
)

// DefaultConfig builds the compiled-in configuration from the static
// catalog: the default tab set enabled in order, the default event
// placement, and the default theme preset fully resolved.
func DefaultConfig() PersistedConfig {
	var tabs []TabEntry
	for _, id := range catalog.DefaultTabIDs() {
		def, ok := catalog.TabByID(id)
		if !ok {
			continue
		}
		tabs = append(tabs, tabFromCatalog(def, true))
	}

	left, right := catalog.DefaultPlacement()
	placement := EventPlacement{Left: left, Right: right}

	tokens, _ := theme.Resolve(theme.DefaultPresetID)

	return PersistedConfig{
		Tabs:           tabs,
		EnabledEvents:  placement.Enabled(),
		EventPlacement: placement,
		Theme:          tokens,
		ThemePresetID:  theme.DefaultPresetID,
		ShowAreaButton: true,
	}
}

func tabFromCatalog(def catalog.TabDef, enabled bool) TabEntry {
	return TabEntry{
		ID:      def.ID,
		Icon:    def.Icon,
		Label:   def.Label,
		Screen:  def.Screen,
		Enabled: enabled,
	}
}
