// Package model holds the Bubble Tea model of the menu shell and the
// messages flowing through it. Mutation lives in the controller
// package; rendering lives in the view package.
package model

import (
	"github.com/charmbracelet/bubbles/help"

	"menuctl/internal/catalog"
	"menuctl/internal/config"
	"menuctl/internal/gesture"
	"menuctl/internal/navigation"
	"menuctl/internal/tui/design"
	"menuctl/pkg/logging"
)

// UnitsPerCell converts terminal cell columns into the gesture units
// the threshold is expressed in, approximating the px-equivalent feel
// of the touch original.
const UnitsPerCell = 10.0

// Model is the complete TUI state. Navigation, configuration, gesture
// and theme state are owned by their core packages; the model carries
// references plus presentation-only fields.
type Model struct {
	Nav     *navigation.Controller
	Store   *config.Store
	Gesture *gesture.Navigator
	Theme   *design.Applier

	Width  int
	Height int

	Keys     KeyMap
	Help     help.Model
	ShowHelp bool

	DebugMode  bool
	LogChannel <-chan logging.Entry
	LastLog    *logging.Entry

	// LastTransition drives the slide-direction indicator. A newer
	// navigation supersedes it; logical state never lags behind.
	LastTransition *navigation.Transition

	StatusMessage string

	// AdminCursor indexes into AdminRows on the settings screen.
	AdminCursor int

	// Lives is mock player state for the home screen affordances.
	Lives int
}

// New assembles a model over the shared core objects.
func New(store *config.Store, nav *navigation.Controller, g *gesture.Navigator, applier *design.Applier, logCh <-chan logging.Entry, debug bool) *Model {
	return &Model{
		Nav:        nav,
		Store:      store,
		Gesture:    g,
		Theme:      applier,
		Keys:       DefaultKeyMap(),
		Help:       help.New(),
		DebugMode:  debug,
		LogChannel: logCh,
		Lives:      5,
	}
}

// AdminRowKind tags one row of the settings screen.
type AdminRowKind int

const (
	RowTab AdminRowKind = iota
	RowEvent
	RowTheme
	RowExport
	RowReset
)

// AdminRow is one selectable row of the admin panel.
type AdminRow struct {
	Kind AdminRowKind
	ID   string
}

// AdminRows builds the settings screen's row list: the working tab list
// in its configured order, then catalog tabs not yet instantiated, then
// every event, then the theme/export/reset actions.
func (m *Model) AdminRows() []AdminRow {
	var rows []AdminRow

	inList := make(map[string]bool)
	for _, tab := range m.Store.Tabs() {
		inList[tab.ID] = true
		rows = append(rows, AdminRow{Kind: RowTab, ID: tab.ID})
	}
	for _, def := range catalog.Tabs() {
		if !inList[def.ID] {
			rows = append(rows, AdminRow{Kind: RowTab, ID: def.ID})
		}
	}

	for _, ev := range catalog.Events() {
		rows = append(rows, AdminRow{Kind: RowEvent, ID: ev.ID})
	}

	rows = append(rows,
		AdminRow{Kind: RowTheme},
		AdminRow{Kind: RowExport},
		AdminRow{Kind: RowReset},
	)
	return rows
}

// ClampAdminCursor keeps the cursor inside the row list after the list
// shrinks (e.g. a reset).
func (m *Model) ClampAdminCursor() {
	rows := m.AdminRows()
	if m.AdminCursor >= len(rows) {
		m.AdminCursor = len(rows) - 1
	}
	if m.AdminCursor < 0 {
		m.AdminCursor = 0
	}
}
