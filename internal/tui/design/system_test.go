package design

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"

	"menuctl/internal/theme"
)

func TestApplierIsIdempotent(t *testing.T) {
	a := NewApplier()
	tokens, _ := theme.Resolve("midnight")

	a.Apply(tokens)
	first := a.Styles()
	a.Apply(tokens)

	assert.Equal(t, first.Primary, a.Styles().Primary)
	assert.Equal(t, first.Background, a.Styles().Background)
}

func TestApplyFullyOverwrites(t *testing.T) {
	a := NewApplier()

	midnight, _ := theme.Resolve("midnight")
	a.Apply(midnight)
	forest, _ := theme.Resolve("forest")
	a.Apply(forest)

	assert.Equal(t, lipgloss.Color(forest[theme.TokenPrimary]), a.Styles().Primary)
	assert.NotEqual(t, lipgloss.Color(midnight[theme.TokenPrimary]), a.Styles().Primary)
}

func TestSparseTokenMapFallsBackToDefaults(t *testing.T) {
	a := NewApplier()
	a.Apply(map[string]string{theme.TokenPrimary: "#ABCDEF"})

	fallback, _ := theme.Resolve(theme.DefaultPresetID)
	assert.Equal(t, lipgloss.Color("#ABCDEF"), a.Styles().Primary)
	assert.Equal(t, lipgloss.Color(fallback[theme.TokenBackground]), a.Styles().Background)
}

func TestNewApplierRendersBeforeFirstApply(t *testing.T) {
	a := NewApplier()
	out := a.Styles().Title.Render("menuctl")
	assert.Contains(t, out, "menuctl")
}
