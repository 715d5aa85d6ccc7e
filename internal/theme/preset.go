// Package theme defines the named theme presets and resolves them into
// flat token maps consumed by a Sink.
package theme

import "sort"

// Preset is a named bundle of style token values.
type Preset struct {
	ID     string
	Name   string
	Tokens map[string]string
}

// Token names shared by every preset. The sink treats the map as flat;
// there is no nesting.
const (
	TokenBackground = "color.background"
	TokenSurface    = "color.surface"
	TokenPrimary    = "color.primary"
	TokenAccent     = "color.accent"
	TokenText       = "color.text"
	TokenTextMuted  = "color.textMuted"
	TokenBorder     = "color.border"
	TokenHighlight  = "color.highlight"
	TokenSuccess    = "color.success"
	TokenDanger     = "color.danger"
)

// DefaultPresetID selects the preset applied before any customization.
const DefaultPresetID = "classic"

var builtins = map[string]Preset{
	"classic": {
		ID:   "classic",
		Name: "Classic",
		Tokens: map[string]string{
			TokenBackground: "#101020",
			TokenSurface:    "#1C1C30",
			TokenPrimary:    "#7571F9",
			TokenAccent:     "#F5A623",
			TokenText:       "#F0F0F5",
			TokenTextMuted:  "#8E8EA8",
			TokenBorder:     "#3A3A55",
			TokenHighlight:  "#2C2C50",
			TokenSuccess:    "#10B981",
			TokenDanger:     "#EF4444",
		},
	},
	"midnight": {
		ID:   "midnight",
		Name: "Midnight",
		Tokens: map[string]string{
			TokenBackground: "#05070F",
			TokenSurface:    "#0D1220",
			TokenPrimary:    "#3B82F6",
			TokenAccent:     "#22D3EE",
			TokenText:       "#E2E8F0",
			TokenTextMuted:  "#64748B",
			TokenBorder:     "#1E293B",
			TokenHighlight:  "#16233C",
			TokenSuccess:    "#34D399",
			TokenDanger:     "#F87171",
		},
	},
	"bubblegum": {
		ID:   "bubblegum",
		Name: "Bubblegum",
		Tokens: map[string]string{
			TokenBackground: "#2A1024",
			TokenSurface:    "#3D1A35",
			TokenPrimary:    "#F472B6",
			TokenAccent:     "#FBBF24",
			TokenText:       "#FDF2F8",
			TokenTextMuted:  "#B07A9E",
			TokenBorder:     "#5C2B4E",
			TokenHighlight:  "#4E2244",
			TokenSuccess:    "#4ADE80",
			TokenDanger:     "#FB7185",
		},
	},
	"forest": {
		ID:   "forest",
		Name: "Forest",
		Tokens: map[string]string{
			TokenBackground: "#0A140D",
			TokenSurface:    "#14241A",
			TokenPrimary:    "#34D399",
			TokenAccent:     "#FACC15",
			TokenText:       "#ECFDF5",
			TokenTextMuted:  "#6B8577",
			TokenBorder:     "#1F3A2B",
			TokenHighlight:  "#1B3326",
			TokenSuccess:    "#86EFAC",
			TokenDanger:     "#F87171",
		},
	},
}

// Lookup returns the preset for id. Unknown ids report ok=false; the
// caller treats that as a rejected mutation, never an error.
func Lookup(id string) (Preset, bool) {
	p, ok := builtins[id]
	return p, ok
}

// Resolve returns a fresh copy of the preset's token map. The copy keeps
// later mutations of stored config from aliasing the catalog.
func Resolve(id string) (map[string]string, bool) {
	p, ok := builtins[id]
	if !ok {
		return nil, false
	}
	tokens := make(map[string]string, len(p.Tokens))
	for k, v := range p.Tokens {
		tokens[k] = v
	}
	return tokens, true
}

// IDs returns all preset ids in sorted order, for cycling in the admin
// panel and for help output.
func IDs() []string {
	ids := make([]string, 0, len(builtins))
	for id := range builtins {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
