// Package navigation owns the session-scoped view state of the menu
// shell: which screen is current, the back history, and the modal stack.
// The state is never persisted; every session starts at the home screen.
package navigation

import (
	"fmt"

	"menuctl/pkg/logging"
)

const subsystem = "Navigation"

// maxModalDepth caps pathological modal nesting. An overflowing push is
// refused and logged, never a crash.
const maxModalDepth = 4

// TabSource supplies the current enabled-tab ordering. Transitions are
// classified against a fresh read on every call because the admin panel
// can reorder or toggle tabs at runtime.
type TabSource interface {
	EnabledScreens() []ScreenID
}

// Modal is one entry of the modal stack, last-opened-on-top.
type Modal struct {
	ID     ModalID
	Params Params
}

// Transition describes a committed screen change. FromIndex/ToIndex are
// positions within the enabled-tab ordering, -1 when the screen is not a
// tab. Lateral transitions (both sides are tabs) get the slide
// treatment; everything else is modal-like.
type Transition struct {
	From      ScreenID
	To        ScreenID
	FromIndex int
	ToIndex   int
	Lateral   bool
}

// Controller is the single owner of navigation state. All mutation goes
// through its methods; callers receive it by reference, not via a global.
type Controller struct {
	current ScreenID
	history []ScreenID
	modals  []Modal
	params  map[ScreenID]Params
	tabs    TabSource
}

// NewController starts a session at home with empty history and no
// modals open.
func NewController(tabs TabSource) *Controller {
	return &Controller{
		current: ScreenHome,
		params:  make(map[ScreenID]Params),
		tabs:    tabs,
	}
}

// CurrentScreen returns the visible screen.
func (c *Controller) CurrentScreen() ScreenID { return c.current }

// Params returns the payload stored for screen by the last Navigate
// call targeting it, or nil.
func (c *Controller) Params(screen ScreenID) Params { return c.params[screen] }

// Navigate switches the current screen, recording the previous one in
// history. Navigating to the current screen is a no-op. Unknown ids are
// a programming error, not a runtime condition.
func (c *Controller) Navigate(screen ScreenID, params Params) (Transition, bool) {
	if !screen.Known() {
		panic(fmt.Sprintf("navigation: unknown screen id %q", screen))
	}
	if screen == c.current {
		return Transition{}, false
	}

	from := c.current
	c.history = append(c.history, from)
	c.current = screen
	if params != nil {
		c.params[screen] = params
	}

	t := c.classify(from, screen)
	logging.Debug(subsystem, "navigate %s -> %s (lateral=%v)", t.From, t.To, t.Lateral)
	return t, true
}

// GoBack pops the most recent history entry into the current screen.
// Returns false when there is nowhere to go.
func (c *Controller) GoBack() bool {
	if len(c.history) == 0 {
		return false
	}
	last := len(c.history) - 1
	c.current = c.history[last]
	c.history = c.history[:last]
	return true
}

// CanGoBack backs the conditional back affordance on screens.
func (c *Controller) CanGoBack() bool { return len(c.history) > 0 }

// OpenModal pushes a modal onto the stack. Beyond maxModalDepth the push
// is silently refused.
func (c *Controller) OpenModal(id ModalID, params Params) {
	if !id.Known() {
		panic(fmt.Sprintf("navigation: unknown modal id %q", id))
	}
	if len(c.modals) >= maxModalDepth {
		logging.Warn(subsystem, "modal stack at depth %d, refusing %s", len(c.modals), id)
		return
	}
	c.modals = append(c.modals, Modal{ID: id, Params: params})
}

// CloseModal pops the top modal; no-op when none is open.
func (c *Controller) CloseModal() {
	if len(c.modals) == 0 {
		return
	}
	c.modals = c.modals[:len(c.modals)-1]
}

// CloseAllModals clears the stack in one step, used when a navigation
// happens underneath an open overlay.
func (c *Controller) CloseAllModals() {
	c.modals = nil
}

// ActiveModal returns the top of the modal stack, or nil.
func (c *Controller) ActiveModal() *Modal {
	if len(c.modals) == 0 {
		return nil
	}
	top := c.modals[len(c.modals)-1]
	return &top
}

// ModalDepth returns how many modals are open.
func (c *Controller) ModalDepth() int { return len(c.modals) }

// HistoryDepth returns the number of back entries.
func (c *Controller) HistoryDepth() int { return len(c.history) }

// TabIndex locates screen within the enabled-tab ordering, -1 if absent.
func (c *Controller) TabIndex(screen ScreenID) int {
	if c.tabs == nil {
		return -1
	}
	for i, s := range c.tabs.EnabledScreens() {
		if s == screen {
			return i
		}
	}
	return -1
}

func (c *Controller) classify(from, to ScreenID) Transition {
	fi := c.TabIndex(from)
	ti := c.TabIndex(to)
	return Transition{
		From:      from,
		To:        to,
		FromIndex: fi,
		ToIndex:   ti,
		Lateral:   fi >= 0 && ti >= 0,
	}
}
