// Package gesture translates pointer drags into lateral tab
// transitions. One drag session is tracked at a time through an
// explicit state machine: idle -> dragging -> (commit | cancel) -> idle.
// The per-drag state lives here only; it is never persisted.
package gesture

import (
	"menuctl/internal/navigation"
	"menuctl/pkg/logging"
)

const subsystem = "Gesture"

// DefaultThreshold is the horizontal displacement, in abstract units,
// a drag must exceed to commit a transition.
const DefaultThreshold = 80.0

// Phase is the recognizer's state.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseDragging
)

// Result classifies what a pointer release produced.
type Result int

const (
	// ResultNone: no drag was in progress, or it was suppressed.
	ResultNone Result = iota
	// ResultCommitted: a neighbor tab was navigated to.
	ResultCommitted
	// ResultSnapBack: the drag was discarded and the view snaps back.
	ResultSnapBack
)

// Surface is the slice of the navigation controller the recognizer
// drives. *navigation.Controller satisfies it.
type Surface interface {
	CurrentScreen() navigation.ScreenID
	ModalDepth() int
	Navigate(screen navigation.ScreenID, params navigation.Params) (navigation.Transition, bool)
}

// Navigator owns one pointer-drag session against a Surface.
type Navigator struct {
	nav       Surface
	tabs      navigation.TabSource
	threshold float64

	phase       Phase
	originX     float64
	currentX    float64
	startScreen navigation.ScreenID
}

// Option customizes a Navigator.
type Option func(*Navigator)

// WithThreshold overrides the commit threshold.
func WithThreshold(units float64) Option {
	return func(g *Navigator) {
		if units > 0 {
			g.threshold = units
		}
	}
}

// New builds a Navigator over the given surface and tab ordering.
func New(nav Surface, tabs navigation.TabSource, opts ...Option) *Navigator {
	g := &Navigator{nav: nav, tabs: tabs, threshold: DefaultThreshold}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Phase returns the recognizer state.
func (g *Navigator) Phase() Phase { return g.phase }

// Offset returns the live horizontal displacement of the active drag,
// for the cosmetic follow-the-finger translation. Zero while idle.
func (g *Navigator) Offset() float64 {
	if g.phase != PhaseDragging {
		return 0
	}
	return g.currentX - g.originX
}

// PointerDown starts a drag session. Drags are suppressed while any
// modal is open, to avoid navigating beneath an overlay.
func (g *Navigator) PointerDown(x float64) {
	if g.phase != PhaseIdle {
		return
	}
	if g.nav.ModalDepth() > 0 {
		return
	}
	g.phase = PhaseDragging
	g.originX = x
	g.currentX = x
	g.startScreen = g.nav.CurrentScreen()
}

// PointerMove updates the live offset. A modal opening mid-drag
// abandons the session.
func (g *Navigator) PointerMove(x float64) {
	if g.phase != PhaseDragging {
		return
	}
	if g.nav.ModalDepth() > 0 {
		g.Cancel()
		return
	}
	g.currentX = x
}

// PointerUp ends the session and either commits a transition to the
// neighboring tab or snaps back. Direction mapping: a leftward drag
// (negative displacement) advances to the next tab index, a rightward
// drag returns to the previous one; past either end the drag is
// clamped, not wrapped.
func (g *Navigator) PointerUp(x float64) Result {
	if g.phase != PhaseDragging {
		return ResultNone
	}
	g.currentX = x
	offset := g.currentX - g.originX
	g.phase = PhaseIdle

	if g.nav.ModalDepth() > 0 {
		return ResultNone
	}
	if g.nav.CurrentScreen() != g.startScreen {
		// Something else navigated mid-drag; the session is stale.
		return ResultSnapBack
	}
	if offset > -g.threshold && offset < g.threshold {
		return ResultSnapBack
	}

	neighbor, ok := g.neighbor(offset)
	if !ok {
		return ResultSnapBack
	}
	if _, moved := g.nav.Navigate(neighbor, nil); !moved {
		return ResultSnapBack
	}
	logging.Debug(subsystem, "drag of %.0f committed to %s", offset, neighbor)
	return ResultCommitted
}

// Cancel abandons the session without navigating, e.g. on
// pointer-cancel events.
func (g *Navigator) Cancel() {
	g.phase = PhaseIdle
}

// neighbor resolves the adjacent tab in the drag direction within the
// current enabled-tab ordering.
func (g *Navigator) neighbor(offset float64) (navigation.ScreenID, bool) {
	screens := g.tabs.EnabledScreens()
	idx := -1
	for i, s := range screens {
		if s == g.startScreen {
			idx = i
			break
		}
	}
	if idx < 0 {
		// The current screen is not part of the swipe set.
		return "", false
	}

	next := idx + 1
	if offset > 0 {
		next = idx - 1
	}
	if next < 0 || next >= len(screens) {
		return "", false
	}
	return screens[next], true
}
