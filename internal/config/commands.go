package config

import (
	"menuctl/internal/catalog"
	"menuctl/internal/theme"
	"menuctl/pkg/logging"
)

// Command is a tagged mutation request processed by the pure transition
// function apply. Every command is total: invalid input is absorbed as
// a no-op, never surfaced as an error, because the admin UI is
// best-effort and a rejected toggle simply leaves the control unchanged.
type Command interface {
	isCommand()
}

// ToggleTab enables or disables one tab of the working list. Enabling a
// tab absent from the list instantiates it from the catalog.
type ToggleTab struct {
	TabID   string
	Enabled bool
}

// ReorderTabs replaces the working tab list with the given id order.
// The new order must be a permutation of the current list; anything
// else is rejected.
type ReorderTabs struct {
	Order []string
}

// ToggleEvent enables an event (appending it to the left placement) or
// disables it (removing it from both sides).
type ToggleEvent struct {
	EventID string
	Enabled bool
}

// UpdateEventPlacement replaces both placement lists wholesale. The
// enabled set is re-derived from the new lists.
type UpdateEventPlacement struct {
	Placement EventPlacement
}

// SetThemePreset switches the theme preset and regenerates the resolved
// token map. Unknown preset ids are rejected.
type SetThemePreset struct {
	PresetID string
}

// ResetToDefaults discards every customization.
type ResetToDefaults struct{}

func (ToggleTab) isCommand()            {}
func (ReorderTabs) isCommand()          {}
func (ToggleEvent) isCommand()          {}
func (UpdateEventPlacement) isCommand() {}
func (SetThemePreset) isCommand()       {}
func (ResetToDefaults) isCommand()      {}

// apply is the single transition function. It returns the next state
// and whether anything changed; a false result means the command was
// rejected or redundant and the input state is returned untouched.
func apply(cfg PersistedConfig, bounds Bounds, cmd Command) (PersistedConfig, bool) {
	switch cmd := cmd.(type) {
	case ToggleTab:
		return applyToggleTab(cfg, bounds, cmd)
	case ReorderTabs:
		return applyReorderTabs(cfg, cmd)
	case ToggleEvent:
		return applyToggleEvent(cfg, cmd)
	case UpdateEventPlacement:
		return applyUpdatePlacement(cfg, cmd)
	case SetThemePreset:
		return applySetThemePreset(cfg, cmd)
	case ResetToDefaults:
		return DefaultConfig(), true
	default:
		logging.Warn(subsystem, "unhandled command %T", cmd)
		return cfg, false
	}
}

func applyToggleTab(cfg PersistedConfig, bounds Bounds, cmd ToggleTab) (PersistedConfig, bool) {
	idx := -1
	for i, t := range cfg.Tabs {
		if t.ID == cmd.TabID {
			idx = i
			break
		}
	}

	if cmd.Enabled {
		if cfg.enabledTabCount() >= bounds.Max {
			logging.Debug(subsystem, "tab %s not enabled, already at %d tabs", cmd.TabID, bounds.Max)
			return cfg, false
		}
		if idx >= 0 {
			if cfg.Tabs[idx].Enabled {
				return cfg, false
			}
			next := cfg.clone()
			next.Tabs[idx].Enabled = true
			return next, true
		}
		def, ok := catalog.TabByID(cmd.TabID)
		if !ok {
			logging.Warn(subsystem, "ignoring toggle of unknown tab %q", cmd.TabID)
			return cfg, false
		}
		next := cfg.clone()
		next.Tabs = append(next.Tabs, tabFromCatalog(def, true))
		return next, true
	}

	// Disabling.
	if idx < 0 || !cfg.Tabs[idx].Enabled {
		return cfg, false
	}
	if cfg.enabledTabCount() <= bounds.Min {
		logging.Debug(subsystem, "tab %s not disabled, %d tab(s) must stay enabled", cmd.TabID, bounds.Min)
		return cfg, false
	}
	next := cfg.clone()
	next.Tabs[idx].Enabled = false
	return next, true
}

func applyReorderTabs(cfg PersistedConfig, cmd ReorderTabs) (PersistedConfig, bool) {
	if !sameIDSet(cfg.Tabs, cmd.Order) {
		logging.Warn(subsystem, "reorder rejected: order is not a permutation of the tab list")
		return cfg, false
	}

	byID := make(map[string]TabEntry, len(cfg.Tabs))
	for _, t := range cfg.Tabs {
		byID[t.ID] = t
	}
	reordered := make([]TabEntry, 0, len(cmd.Order))
	changed := false
	for i, id := range cmd.Order {
		reordered = append(reordered, byID[id])
		if cfg.Tabs[i].ID != id {
			changed = true
		}
	}
	if !changed {
		return cfg, false
	}
	next := cfg.clone()
	next.Tabs = reordered
	return next, true
}

// sameIDSet checks set equality between the working list and a proposed
// order: same length, no duplicates, no unknown ids.
func sameIDSet(tabs []TabEntry, order []string) bool {
	if len(order) != len(tabs) {
		return false
	}
	seen := make(map[string]bool, len(tabs))
	for _, t := range tabs {
		seen[t.ID] = false
	}
	for _, id := range order {
		used, ok := seen[id]
		if !ok || used {
			return false
		}
		seen[id] = true
	}
	return true
}

func applyToggleEvent(cfg PersistedConfig, cmd ToggleEvent) (PersistedConfig, bool) {
	if cmd.Enabled {
		if _, ok := catalog.EventByID(cmd.EventID); !ok {
			logging.Warn(subsystem, "ignoring toggle of unknown event %q", cmd.EventID)
			return cfg, false
		}
		if cfg.EventPlacement.Contains(cmd.EventID) {
			return cfg, false
		}
		next := cfg.clone()
		next.EventPlacement.Left = append(next.EventPlacement.Left, cmd.EventID)
		next.EnabledEvents = next.EventPlacement.Enabled()
		return next, true
	}

	if !cfg.EventPlacement.Contains(cmd.EventID) {
		return cfg, false
	}
	next := cfg.clone()
	next.EventPlacement.Left = remove(next.EventPlacement.Left, cmd.EventID)
	next.EventPlacement.Right = remove(next.EventPlacement.Right, cmd.EventID)
	next.EnabledEvents = next.EventPlacement.Enabled()
	return next, true
}

func applyUpdatePlacement(cfg PersistedConfig, cmd UpdateEventPlacement) (PersistedConfig, bool) {
	next := cfg.clone()
	next.EventPlacement = sanitizePlacement(cmd.Placement)
	next.EnabledEvents = next.EventPlacement.Enabled()
	if equalPlacement(cfg.EventPlacement, next.EventPlacement) {
		return cfg, false
	}
	return next, true
}

// sanitizePlacement drops ids the catalog does not know and collapses
// duplicates, keeping the first occurrence (left side wins).
func sanitizePlacement(p EventPlacement) EventPlacement {
	seen := make(map[string]bool)
	keep := func(ids []string) []string {
		out := make([]string, 0, len(ids))
		for _, id := range ids {
			if seen[id] {
				continue
			}
			if _, ok := catalog.EventByID(id); !ok {
				logging.Warn(subsystem, "dropping unknown event %q from placement", id)
				continue
			}
			seen[id] = true
			out = append(out, id)
		}
		return out
	}
	return EventPlacement{Left: keep(p.Left), Right: keep(p.Right)}
}

func applySetThemePreset(cfg PersistedConfig, cmd SetThemePreset) (PersistedConfig, bool) {
	tokens, ok := theme.Resolve(cmd.PresetID)
	if !ok {
		logging.Warn(subsystem, "ignoring unknown theme preset %q", cmd.PresetID)
		return cfg, false
	}
	if cfg.ThemePresetID == cmd.PresetID {
		return cfg, false
	}
	next := cfg.clone()
	next.ThemePresetID = cmd.PresetID
	next.Theme = tokens
	return next, true
}

func remove(ids []string, id string) []string {
	out := ids[:0]
	for _, e := range ids {
		if e != id {
			out = append(out, e)
		}
	}
	return out
}

func equalPlacement(a, b EventPlacement) bool {
	if len(a.Left) != len(b.Left) || len(a.Right) != len(b.Right) {
		return false
	}
	for i := range a.Left {
		if a.Left[i] != b.Left[i] {
			return false
		}
	}
	for i := range a.Right {
		if a.Right[i] != b.Right[i] {
			return false
		}
	}
	return true
}
