package config

import (
	"encoding/json"

	"menuctl/internal/catalog"
	"menuctl/internal/theme"
	"menuctl/pkg/logging"
)

// persistedBlob mirrors PersistedConfig with pointer fields so a read
// can tell "absent" from "zero". Older blobs may omit any field.
type persistedBlob struct {
	Tabs           *[]TabEntry        `json:"tabs"`
	EnabledEvents  *[]string          `json:"enabledEvents"`
	EventPlacement *EventPlacement    `json:"eventPlacement"`
	Theme          *map[string]string `json:"theme"`
	ThemePresetID  *string            `json:"themePresetId"`
	ShowAreaButton *bool              `json:"showAreaButton"`
}

// loader is the storage read side of the store.
type loaderStore interface {
	Load() ([]byte, bool, error)
}

// loadConfig reads the persisted blob and merges it over compiled
// defaults. Every fault path degrades to defaults: a read error, a
// parse error, or a missing field never surfaces to the user.
func loadConfig(persister loaderStore, bounds Bounds) PersistedConfig {
	cfg := DefaultConfig()

	data, found, err := persister.Load()
	if err != nil {
		logging.Error(subsystem, err, "could not read persisted config, using defaults")
		return cfg
	}
	if !found {
		return cfg
	}

	var blob persistedBlob
	if err := json.Unmarshal(data, &blob); err != nil {
		logging.Error(subsystem, err, "persisted config is malformed, using defaults")
		return cfg
	}

	return mergeConfig(cfg, blob, bounds)
}

// mergeConfig overlays blob onto base field by field, then reconciles
// the derived pieces: the enabled-event set is rebuilt from placement
// and the theme tokens are regenerated from the preset id.
func mergeConfig(base PersistedConfig, blob persistedBlob, bounds Bounds) PersistedConfig {
	cfg := base

	if blob.Tabs != nil {
		if tabs := sanitizeTabs(*blob.Tabs, bounds); len(tabs) > 0 {
			cfg.Tabs = tabs
		}
	}

	switch {
	case blob.EventPlacement != nil:
		cfg.EventPlacement = sanitizePlacement(*blob.EventPlacement)
	case blob.EnabledEvents != nil:
		// Blob predates split placement: everything goes left.
		cfg.EventPlacement = sanitizePlacement(EventPlacement{Left: *blob.EnabledEvents})
	}
	cfg.EnabledEvents = cfg.EventPlacement.Enabled()

	if blob.ThemePresetID != nil {
		if tokens, ok := theme.Resolve(*blob.ThemePresetID); ok {
			cfg.ThemePresetID = *blob.ThemePresetID
			cfg.Theme = tokens
		} else {
			logging.Warn(subsystem, "persisted theme preset %q is unknown, keeping default", *blob.ThemePresetID)
		}
	}

	if blob.ShowAreaButton != nil {
		cfg.ShowAreaButton = *blob.ShowAreaButton
	}

	return cfg
}

// sanitizeTabs validates a persisted tab list against the catalog and
// the count bounds. Unknown tabs are dropped, icon/label/screen are
// refreshed from the catalog, surplus enabled tabs beyond Max are
// disabled, and an all-disabled list is rejected entirely.
func sanitizeTabs(tabs []TabEntry, bounds Bounds) []TabEntry {
	out := make([]TabEntry, 0, len(tabs))
	seen := make(map[string]bool, len(tabs))
	enabled := 0
	for _, t := range tabs {
		if seen[t.ID] {
			continue
		}
		def, ok := catalog.TabByID(t.ID)
		if !ok {
			logging.Warn(subsystem, "dropping unknown tab %q from persisted config", t.ID)
			continue
		}
		seen[t.ID] = true
		entry := tabFromCatalog(def, t.Enabled)
		if entry.Enabled {
			if enabled >= bounds.Max {
				entry.Enabled = false
			} else {
				enabled++
			}
		}
		out = append(out, entry)
	}
	if enabled < bounds.Min {
		logging.Warn(subsystem, "persisted config has %d enabled tab(s), need at least %d, using defaults", enabled, bounds.Min)
		return nil
	}
	return out
}
