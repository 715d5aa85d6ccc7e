package navigation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubTabs struct {
	screens []ScreenID
}

func (s stubTabs) EnabledScreens() []ScreenID { return s.screens }

func newTestController() *Controller {
	return NewController(stubTabs{screens: []ScreenID{
		ScreenAreas, ScreenLeaderboard, ScreenHome, ScreenTeam, ScreenCollection,
	}})
}

func TestInitialState(t *testing.T) {
	c := newTestController()
	assert.Equal(t, ScreenHome, c.CurrentScreen())
	assert.False(t, c.CanGoBack())
	assert.Nil(t, c.ActiveModal())
}

func TestNavigatePushesHistory(t *testing.T) {
	c := newTestController()

	_, moved := c.Navigate(ScreenShop, nil)
	require.True(t, moved)
	assert.Equal(t, ScreenShop, c.CurrentScreen())
	assert.True(t, c.CanGoBack())
	assert.Equal(t, 1, c.HistoryDepth())
}

func TestNavigateToCurrentScreenIsNoOp(t *testing.T) {
	c := newTestController()

	_, moved := c.Navigate(ScreenHome, nil)
	assert.False(t, moved)
	assert.Equal(t, 0, c.HistoryDepth())
}

func TestNavigateStoresParams(t *testing.T) {
	c := newTestController()

	c.Navigate(ScreenEvent, Params{"eventId": "treasure-hunt"})
	assert.Equal(t, "treasure-hunt", c.Params(ScreenEvent)["eventId"])
}

func TestNavigateUnknownScreenPanics(t *testing.T) {
	c := newTestController()
	assert.Panics(t, func() { c.Navigate(ScreenID("mystery"), nil) })
}

func TestGoBackOnEmptyHistory(t *testing.T) {
	c := newTestController()

	assert.False(t, c.GoBack())
	assert.Equal(t, ScreenHome, c.CurrentScreen())
}

func TestHomeShopSettingsBackBack(t *testing.T) {
	c := newTestController()

	c.Navigate(ScreenShop, nil)
	c.Navigate(ScreenSettings, nil)

	require.True(t, c.GoBack())
	assert.Equal(t, ScreenShop, c.CurrentScreen())
	require.True(t, c.GoBack())
	assert.Equal(t, ScreenHome, c.CurrentScreen())
	assert.False(t, c.CanGoBack())
}

func TestTransitionClassification(t *testing.T) {
	c := newTestController()

	tr, moved := c.Navigate(ScreenTeam, nil)
	require.True(t, moved)
	assert.True(t, tr.Lateral, "home and team are both enabled tabs")
	assert.Equal(t, 2, tr.FromIndex)
	assert.Equal(t, 3, tr.ToIndex)

	tr, moved = c.Navigate(ScreenSettings, nil)
	require.True(t, moved)
	assert.False(t, tr.Lateral, "settings is not an enabled tab")
	assert.Equal(t, -1, tr.ToIndex)
}

func TestClassificationFollowsLiveTabOrdering(t *testing.T) {
	tabs := &stubTabs{screens: []ScreenID{ScreenHome, ScreenShop}}
	c := NewController(*tabs)

	tr, _ := c.Navigate(ScreenShop, nil)
	assert.True(t, tr.Lateral)

	// Admin disables the shop tab; the same pair is now modal-like.
	c.tabs = stubTabs{screens: []ScreenID{ScreenHome}}
	tr, _ = c.Navigate(ScreenHome, nil)
	assert.False(t, tr.Lateral)
}

func TestModalStackOrder(t *testing.T) {
	c := newTestController()

	c.OpenModal(ModalOutOfLives, nil)
	c.OpenModal(ModalSignIn, nil)
	require.NotNil(t, c.ActiveModal())
	assert.Equal(t, ModalSignIn, c.ActiveModal().ID)

	c.CloseModal()
	require.NotNil(t, c.ActiveModal())
	assert.Equal(t, ModalOutOfLives, c.ActiveModal().ID)
}

func TestCloseModalOnEmptyStackIsNoOp(t *testing.T) {
	c := newTestController()
	c.CloseModal()
	assert.Nil(t, c.ActiveModal())
}

func TestModalDepthCap(t *testing.T) {
	c := newTestController()

	for i := 0; i < maxModalDepth; i++ {
		c.OpenModal(ModalInfo, nil)
	}
	c.OpenModal(ModalReward, nil)

	assert.Equal(t, maxModalDepth, c.ModalDepth())
	assert.Equal(t, ModalInfo, c.ActiveModal().ID, "overflowing push must be refused")
}

func TestCloseAllModals(t *testing.T) {
	c := newTestController()

	c.OpenModal(ModalReward, nil)
	c.OpenModal(ModalInfo, nil)
	c.CloseAllModals()

	assert.Equal(t, 0, c.ModalDepth())
	assert.Nil(t, c.ActiveModal())
}

func TestOpenUnknownModalPanics(t *testing.T) {
	c := newTestController()
	assert.Panics(t, func() { c.OpenModal(ModalID("surprise"), nil) })
}
