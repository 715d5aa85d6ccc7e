package config

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tabIDs(tabs []TabEntry) []string {
	out := make([]string, len(tabs))
	for i, t := range tabs {
		out[i] = t.ID
	}
	return out
}

func enabledIDs(cfg PersistedConfig) []string {
	return tabIDs(cfg.EnabledTabs())
}

func TestToggleTabDisable(t *testing.T) {
	cfg := DefaultConfig()

	next, changed := apply(cfg, DefaultBounds, ToggleTab{TabID: "areas", Enabled: false})
	require.True(t, changed)
	assert.NotContains(t, enabledIDs(next), "areas")
	// Disabled, not removed: the entry stays in the working list.
	assert.Contains(t, tabIDs(next.Tabs), "areas")
}

func TestToggleTabEnableInstantiatesFromCatalog(t *testing.T) {
	cfg := DefaultConfig()
	cfg, _ = apply(cfg, DefaultBounds, ToggleTab{TabID: "areas", Enabled: false})

	next, changed := apply(cfg, DefaultBounds, ToggleTab{TabID: "shop", Enabled: true})
	require.True(t, changed)
	assert.Contains(t, enabledIDs(next), "shop")
	// Appended at the end with catalog metadata.
	last := next.Tabs[len(next.Tabs)-1]
	assert.Equal(t, "shop", last.ID)
	assert.Equal(t, "Shop", last.Label)
}

func TestToggleTabSixthIsRejected(t *testing.T) {
	cfg := DefaultConfig()
	require.Len(t, cfg.EnabledTabs(), 5)

	next, changed := apply(cfg, DefaultBounds, ToggleTab{TabID: "shop", Enabled: true})
	assert.False(t, changed)
	assert.Len(t, next.EnabledTabs(), 5)
}

func TestToggleTabLastEnabledIsKept(t *testing.T) {
	cfg := DefaultConfig()
	for _, id := range []string{"areas", "leaderboard", "team", "collection"} {
		cfg, _ = apply(cfg, DefaultBounds, ToggleTab{TabID: id, Enabled: false})
	}
	require.Len(t, cfg.EnabledTabs(), 1)

	next, changed := apply(cfg, DefaultBounds, ToggleTab{TabID: "home", Enabled: false})
	assert.False(t, changed)
	assert.Len(t, next.EnabledTabs(), 1)
}

func TestToggleTabUnknownID(t *testing.T) {
	cfg := DefaultConfig()
	_, changed := apply(cfg, DefaultBounds, ToggleTab{TabID: "chat", Enabled: true})
	assert.False(t, changed)
}

func TestToggleTabRedundant(t *testing.T) {
	cfg := DefaultConfig()
	_, changed := apply(cfg, DefaultBounds, ToggleTab{TabID: "home", Enabled: true})
	assert.False(t, changed, "enabling an enabled tab changes nothing")
}

func TestEnabledCountAlwaysInBounds(t *testing.T) {
	cfg := DefaultConfig()
	ids := []string{"areas", "leaderboard", "home", "team", "collection", "shop", "chat"}
	rng := rand.New(rand.NewSource(7))

	for i := 0; i < 500; i++ {
		cmd := ToggleTab{TabID: ids[rng.Intn(len(ids))], Enabled: rng.Intn(2) == 0}
		cfg, _ = apply(cfg, DefaultBounds, cmd)
		n := len(cfg.EnabledTabs())
		require.GreaterOrEqual(t, n, DefaultBounds.Min)
		require.LessOrEqual(t, n, DefaultBounds.Max)
	}
}

func TestCustomBounds(t *testing.T) {
	bounds := Bounds{Min: 2, Max: 3}
	cfg := DefaultConfig()

	// Disable down toward the floor.
	cfg, _ = apply(cfg, bounds, ToggleTab{TabID: "areas", Enabled: false})
	cfg, _ = apply(cfg, bounds, ToggleTab{TabID: "leaderboard", Enabled: false})
	cfg, _ = apply(cfg, bounds, ToggleTab{TabID: "team", Enabled: false})
	assert.Len(t, cfg.EnabledTabs(), 2)

	_, changed := apply(cfg, bounds, ToggleTab{TabID: "home", Enabled: false})
	assert.False(t, changed, "floor of 2 must hold")
}

func TestReorderTabsPreservesSet(t *testing.T) {
	cfg := DefaultConfig()
	before := enabledIDs(cfg)

	perm := []string{"home", "collection", "areas", "team", "leaderboard"}
	next, changed := apply(cfg, DefaultBounds, ReorderTabs{Order: perm})
	require.True(t, changed)
	assert.Equal(t, perm, tabIDs(next.Tabs))
	assert.ElementsMatch(t, before, enabledIDs(next))
}

func TestReorderTabsRejectsDroppedTab(t *testing.T) {
	cfg := DefaultConfig()
	_, changed := apply(cfg, DefaultBounds, ReorderTabs{Order: []string{"home", "areas"}})
	assert.False(t, changed)
}

func TestReorderTabsRejectsForeignTab(t *testing.T) {
	cfg := DefaultConfig()
	_, changed := apply(cfg, DefaultBounds, ReorderTabs{
		Order: []string{"shop", "leaderboard", "home", "team", "collection"},
	})
	assert.False(t, changed, "shop is not in the working list")
}

func TestReorderTabsRejectsDuplicates(t *testing.T) {
	cfg := DefaultConfig()
	_, changed := apply(cfg, DefaultBounds, ReorderTabs{
		Order: []string{"home", "home", "areas", "team", "collection"},
	})
	assert.False(t, changed)
}

func TestReorderTabsIdenticalOrderIsNoOp(t *testing.T) {
	cfg := DefaultConfig()
	_, changed := apply(cfg, DefaultBounds, ReorderTabs{Order: tabIDs(cfg.Tabs)})
	assert.False(t, changed)
}

func TestToggleEventEnableAppendsLeft(t *testing.T) {
	cfg := DefaultConfig()

	next, changed := apply(cfg, DefaultBounds, ToggleEvent{EventID: "season-pass", Enabled: true})
	require.True(t, changed)
	assert.Equal(t, "season-pass", next.EventPlacement.Left[len(next.EventPlacement.Left)-1])
	assert.Contains(t, next.EnabledEvents, "season-pass")
}

func TestToggleEventDisableRemovesFromBothSides(t *testing.T) {
	cfg := DefaultConfig()
	cfg, _ = apply(cfg, DefaultBounds, UpdateEventPlacement{Placement: EventPlacement{
		Left:  []string{"treasure-hunt"},
		Right: []string{"team-battle", "daily-spin"},
	}})

	for _, id := range []string{"treasure-hunt", "team-battle", "daily-spin"} {
		next, changed := apply(cfg, DefaultBounds, ToggleEvent{EventID: id, Enabled: false})
		require.True(t, changed, id)
		assert.NotContains(t, next.EventPlacement.Left, id)
		assert.NotContains(t, next.EventPlacement.Right, id)
		assert.NotContains(t, next.EnabledEvents, id)
	}
}

func TestToggleEventUnknownID(t *testing.T) {
	cfg := DefaultConfig()
	_, changed := apply(cfg, DefaultBounds, ToggleEvent{EventID: "nope", Enabled: true})
	assert.False(t, changed)
}

func TestUpdateEventPlacementDerivesEnabledSet(t *testing.T) {
	cfg := DefaultConfig()

	next, changed := apply(cfg, DefaultBounds, UpdateEventPlacement{Placement: EventPlacement{
		Left:  []string{"daily-spin"},
		Right: []string{"season-pass", "treasure-hunt"},
	}})
	require.True(t, changed)
	assert.Equal(t, []string{"daily-spin", "season-pass", "treasure-hunt"}, next.EnabledEvents)
}

func TestUpdateEventPlacementDropsUnknownAndDuplicates(t *testing.T) {
	cfg := DefaultConfig()

	next, _ := apply(cfg, DefaultBounds, UpdateEventPlacement{Placement: EventPlacement{
		Left:  []string{"daily-spin", "ghost-event", "daily-spin"},
		Right: []string{"daily-spin", "team-battle"},
	}})
	assert.Equal(t, []string{"daily-spin"}, next.EventPlacement.Left)
	assert.Equal(t, []string{"team-battle"}, next.EventPlacement.Right)
}

func TestEnabledEventsAlwaysMatchPlacement(t *testing.T) {
	cfg := DefaultConfig()
	rng := rand.New(rand.NewSource(13))
	ids := []string{"treasure-hunt", "team-battle", "daily-spin", "season-pass", "lightning-round"}

	for i := 0; i < 300; i++ {
		var cmd Command
		if rng.Intn(2) == 0 {
			cmd = ToggleEvent{EventID: ids[rng.Intn(len(ids))], Enabled: rng.Intn(2) == 0}
		} else {
			cmd = UpdateEventPlacement{Placement: EventPlacement{
				Left:  []string{ids[rng.Intn(len(ids))]},
				Right: []string{ids[rng.Intn(len(ids))]},
			}}
		}
		cfg, _ = apply(cfg, DefaultBounds, cmd)
		require.Equal(t, cfg.EventPlacement.Enabled(), cfg.EnabledEvents)
	}
}

func TestSetThemePreset(t *testing.T) {
	cfg := DefaultConfig()

	next, changed := apply(cfg, DefaultBounds, SetThemePreset{PresetID: "midnight"})
	require.True(t, changed)
	assert.Equal(t, "midnight", next.ThemePresetID)
	assert.NotEqual(t, cfg.Theme, next.Theme, "tokens regenerate with the preset")
}

func TestSetThemePresetUnknown(t *testing.T) {
	cfg := DefaultConfig()
	next, changed := apply(cfg, DefaultBounds, SetThemePreset{PresetID: "vaporwave"})
	assert.False(t, changed)
	assert.Equal(t, cfg.ThemePresetID, next.ThemePresetID)
}

func TestSetThemePresetSameIsNoOp(t *testing.T) {
	cfg := DefaultConfig()
	_, changed := apply(cfg, DefaultBounds, SetThemePreset{PresetID: cfg.ThemePresetID})
	assert.False(t, changed)
}

func TestResetToDefaults(t *testing.T) {
	cfg := DefaultConfig()
	cfg, _ = apply(cfg, DefaultBounds, ToggleTab{TabID: "areas", Enabled: false})
	cfg, _ = apply(cfg, DefaultBounds, SetThemePreset{PresetID: "forest"})

	next, changed := apply(cfg, DefaultBounds, ResetToDefaults{})
	require.True(t, changed)
	assert.Equal(t, DefaultConfig(), next)
}

func TestApplyDoesNotMutateInput(t *testing.T) {
	cfg := DefaultConfig()
	snapshot := cfg.clone()

	apply(cfg, DefaultBounds, ToggleTab{TabID: "areas", Enabled: false})
	apply(cfg, DefaultBounds, UpdateEventPlacement{Placement: EventPlacement{Left: []string{"daily-spin"}}})
	apply(cfg, DefaultBounds, SetThemePreset{PresetID: "midnight"})

	assert.Equal(t, snapshot, cfg)
}
