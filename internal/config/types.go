package config

import (
	"menuctl/internal/navigation"
)

// TabEntry is one tab of the primary swipe set as the administrator
// configured it. Entries are instantiated from the static catalog; the
// persisted config never invents tabs of its own.
type TabEntry struct {
	ID      string              `json:"id"`
	Icon    string              `json:"icon"`
	Label   string              `json:"label"`
	Screen  navigation.ScreenID `json:"screen"`
	Enabled bool                `json:"enabled"`
}

// EventPlacement holds the ordered event ids anchored to each side of
// the home screen. Placement is the source of truth for which events
// are enabled; the enabled set is always derived as left ++ right.
type EventPlacement struct {
	Left  []string `json:"left"`
	Right []string `json:"right"`
}

// Contains reports whether id appears on either side.
func (p EventPlacement) Contains(id string) bool {
	for _, e := range p.Left {
		if e == id {
			return true
		}
	}
	for _, e := range p.Right {
		if e == id {
			return true
		}
	}
	return false
}

// Enabled derives the enabled-event set as the concatenation of both
// sides, left first.
func (p EventPlacement) Enabled() []string {
	out := make([]string, 0, len(p.Left)+len(p.Right))
	out = append(out, p.Left...)
	out = append(out, p.Right...)
	return out
}

func (p EventPlacement) clone() EventPlacement {
	return EventPlacement{
		Left:  append([]string{}, p.Left...),
		Right: append([]string{}, p.Right...),
	}
}

// PersistedConfig is the durable snapshot written after every committed
// mutation. All fields are optional on read (missing ones fall back to
// compiled defaults) and always present on write.
type PersistedConfig struct {
	Tabs           []TabEntry        `json:"tabs"`
	EnabledEvents  []string          `json:"enabledEvents"`
	EventPlacement EventPlacement    `json:"eventPlacement"`
	Theme          map[string]string `json:"theme"`
	ThemePresetID  string            `json:"themePresetId"`
	ShowAreaButton bool              `json:"showAreaButton"`
}

func (c PersistedConfig) clone() PersistedConfig {
	out := c
	out.Tabs = append([]TabEntry{}, c.Tabs...)
	out.EnabledEvents = append([]string{}, c.EnabledEvents...)
	out.EventPlacement = c.EventPlacement.clone()
	out.Theme = make(map[string]string, len(c.Theme))
	for k, v := range c.Theme {
		out.Theme[k] = v
	}
	return out
}

// EnabledTabs filters the working tab list down to the enabled entries,
// preserving order.
func (c PersistedConfig) EnabledTabs() []TabEntry {
	out := make([]TabEntry, 0, len(c.Tabs))
	for _, t := range c.Tabs {
		if t.Enabled {
			out = append(out, t)
		}
	}
	return out
}

func (c PersistedConfig) enabledTabCount() int {
	n := 0
	for _, t := range c.Tabs {
		if t.Enabled {
			n++
		}
	}
	return n
}

// Bounds constrains how many tabs may be enabled at once. The 1..5
// range is a UX default, not a structural requirement, so it stays
// configurable.
type Bounds struct {
	Min int
	Max int
}

// DefaultBounds matches the shipped admin UI.
var DefaultBounds = Bounds{Min: 1, Max: 5}
