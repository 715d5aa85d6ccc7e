package controller

import (
	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"

	"menuctl/internal/config"
	"menuctl/internal/gesture"
	"menuctl/internal/navigation"
	"menuctl/internal/storage"
	"menuctl/internal/tui/design"
	"menuctl/internal/tui/model"
	"menuctl/pkg/logging"
)

// recordingSurface wraps the navigation controller for the gesture
// navigator and records each committed transition into the model, so
// swipe-initiated navigations drive the slide indicator the same way
// key-initiated ones do.
type recordingSurface struct {
	nav *navigation.Controller
	m   *model.Model
}

func (s *recordingSurface) CurrentScreen() navigation.ScreenID { return s.nav.CurrentScreen() }
func (s *recordingSurface) ModalDepth() int                    { return s.nav.ModalDepth() }

func (s *recordingSurface) Navigate(screen navigation.ScreenID, params navigation.Params) (navigation.Transition, bool) {
	tr, moved := s.nav.Navigate(screen, params)
	if moved && s.m != nil {
		s.m.LastTransition = &tr
	}
	return tr, moved
}

// NewProgram assembles the full object graph and returns a runnable
// Bubble Tea program: persisted store, configuration store with the
// lipgloss theme applier attached, navigation controller, and gesture
// navigator sharing the store's tab ordering.
func NewProgram(debug bool) (*tea.Program, error) {
	level := logging.LevelInfo
	if debug {
		level = logging.LevelDebug
	}
	logCh := logging.InitForTUI(level)

	zone.NewGlobal()

	fileStore, err := storage.NewFileStore()
	if err != nil {
		return nil, err
	}

	applier := design.NewApplier()
	store := config.Load(fileStore, config.WithSink(applier))
	nav := navigation.NewController(store)

	surface := &recordingSurface{nav: nav}
	g := gesture.New(surface, store)

	m := model.New(store, nav, g, applier, logCh, debug)
	surface.m = m

	app := NewAppModel(m)
	return tea.NewProgram(app, tea.WithAltScreen(), tea.WithMouseCellMotion()), nil
}
