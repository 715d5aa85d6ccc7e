// Package config holds the admin-configurable state of the menu shell:
// the navigation tab set, the live-event placement, and the theme
// selection. Every mutation is validated, committed atomically,
// persisted, and pushed through the theme sink.
package config

import (
	"encoding/json"

	"menuctl/internal/navigation"
	"menuctl/internal/storage"
	"menuctl/internal/theme"
	"menuctl/pkg/logging"
)

const subsystem = "Config"

// Store owns the persisted configuration. It is handed by reference to
// the admin UI, the navigation controller, and the theme applier; there
// is no ambient singleton.
type Store struct {
	cfg       PersistedConfig
	bounds    Bounds
	persister storage.Store
	sink      theme.Sink
	listeners []func()
}

// Option customizes a Store at construction time.
type Option func(*Store)

// WithBounds overrides the enabled-tab count bounds.
func WithBounds(b Bounds) Option {
	return func(s *Store) { s.bounds = b }
}

// WithSink sets the theme sink that receives resolved tokens after
// load and after every committed mutation.
func WithSink(sink theme.Sink) Option {
	return func(s *Store) { s.sink = sink }
}

// Load builds a Store from whatever the persister holds, merged over
// compiled defaults. Malformed or missing data falls back to defaults
// field by field; loading never fails.
func Load(persister storage.Store, opts ...Option) *Store {
	s := &Store{
		bounds:    DefaultBounds,
		persister: persister,
		sink:      theme.NopSink{},
	}
	for _, opt := range opts {
		opt(s)
	}

	s.cfg = loadConfig(persister, s.bounds)
	s.sink.Apply(s.cfg.Theme)
	return s
}

// Subscribe registers fn to run after every committed mutation.
func (s *Store) Subscribe(fn func()) {
	s.listeners = append(s.listeners, fn)
}

// Dispatch validates and applies cmd. On commit it persists the new
// snapshot, re-applies the theme, and notifies subscribers; rejected or
// redundant commands return false with no observable effect.
func (s *Store) Dispatch(cmd Command) bool {
	next, changed := apply(s.cfg, s.bounds, cmd)
	if !changed {
		return false
	}
	s.cfg = next

	// Persistence is issued strictly after the in-memory commit; a
	// failed write costs at most this one mutation.
	if err := s.save(); err != nil {
		logging.Error(subsystem, err, "failed to persist configuration")
	}
	s.sink.Apply(s.cfg.Theme)
	for _, fn := range s.listeners {
		fn()
	}
	return true
}

func (s *Store) save() error {
	data, err := json.MarshalIndent(s.cfg, "", "  ")
	if err != nil {
		return err
	}
	return s.persister.Save(data)
}

// Config returns a deep copy of the current snapshot.
func (s *Store) Config() PersistedConfig { return s.cfg.clone() }

// Bounds returns the enabled-tab count bounds in effect.
func (s *Store) Bounds() Bounds { return s.bounds }

// EnabledTabs returns the enabled tabs in their configured order.
func (s *Store) EnabledTabs() []TabEntry { return s.cfg.EnabledTabs() }

// Tabs returns the full working tab list, enabled or not.
func (s *Store) Tabs() []TabEntry { return append([]TabEntry{}, s.cfg.Tabs...) }

// EnabledScreens lists the screens bound to enabled tabs, in tab
// order. It satisfies navigation.TabSource.
func (s *Store) EnabledScreens() []navigation.ScreenID {
	tabs := s.cfg.EnabledTabs()
	out := make([]navigation.ScreenID, len(tabs))
	for i, t := range tabs {
		out[i] = t.Screen
	}
	return out
}

// IsEventEnabled reports whether id is placed on either side.
func (s *Store) IsEventEnabled(id string) bool {
	return s.cfg.EventPlacement.Contains(id)
}

// EnabledEvents returns the derived enabled-event set, left then right.
func (s *Store) EnabledEvents() []string {
	return append([]string{}, s.cfg.EnabledEvents...)
}

// EventPlacement returns a copy of the current placement.
func (s *Store) EventPlacement() EventPlacement { return s.cfg.EventPlacement.clone() }

// CurrentThemePreset returns the active preset id.
func (s *Store) CurrentThemePreset() string { return s.cfg.ThemePresetID }

// ThemeTokens returns a copy of the resolved token map.
func (s *Store) ThemeTokens() map[string]string {
	out := make(map[string]string, len(s.cfg.Theme))
	for k, v := range s.cfg.Theme {
		out[k] = v
	}
	return out
}

// ShowAreaButton reports the misc flag of the same name.
func (s *Store) ShowAreaButton() bool { return s.cfg.ShowAreaButton }

// ExportJSON renders the current snapshot as indented JSON, the same
// bytes the persister receives.
func (s *Store) ExportJSON() ([]byte, error) {
	return json.MarshalIndent(s.cfg, "", "  ")
}
