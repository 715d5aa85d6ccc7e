package navigation

// ScreenID identifies a registered full-page screen. The set is closed:
// every value stored in navigation state comes from the constants below.
type ScreenID string

const (
	ScreenHome        ScreenID = "home"
	ScreenShop        ScreenID = "shop"
	ScreenTeam        ScreenID = "team"
	ScreenCollection  ScreenID = "collection"
	ScreenLeaderboard ScreenID = "leaderboard"
	ScreenAreas       ScreenID = "areas"
	ScreenSettings    ScreenID = "settings"
	ScreenGameplay    ScreenID = "gameplay"
	ScreenEvent       ScreenID = "event"
)

var knownScreens = map[ScreenID]struct{}{
	ScreenHome:        {},
	ScreenShop:        {},
	ScreenTeam:        {},
	ScreenCollection:  {},
	ScreenLeaderboard: {},
	ScreenAreas:       {},
	ScreenSettings:    {},
	ScreenGameplay:    {},
	ScreenEvent:       {},
}

// Known reports whether id belongs to the closed screen enumeration.
func (id ScreenID) Known() bool {
	_, ok := knownScreens[id]
	return ok
}

// Screens returns the closed enumeration in presentation order.
func Screens() []ScreenID {
	return []ScreenID{
		ScreenHome, ScreenShop, ScreenTeam, ScreenCollection,
		ScreenLeaderboard, ScreenAreas, ScreenSettings,
		ScreenGameplay, ScreenEvent,
	}
}

// ModalID identifies an overlay view. Modals stack above the current
// screen and close independently of it.
type ModalID string

const (
	ModalOutOfLives   ModalID = "out-of-lives"
	ModalSignIn       ModalID = "sign-in"
	ModalReward       ModalID = "reward"
	ModalInfo         ModalID = "info"
	ModalResetConfirm ModalID = "reset-confirm"
)

var knownModals = map[ModalID]struct{}{
	ModalOutOfLives:   {},
	ModalSignIn:       {},
	ModalReward:       {},
	ModalInfo:         {},
	ModalResetConfirm: {},
}

// Known reports whether id belongs to the closed modal enumeration.
func (id ModalID) Known() bool {
	_, ok := knownModals[id]
	return ok
}

// Params carries per-screen or per-modal payload, e.g. the event id for
// the generic event screen.
type Params map[string]any
