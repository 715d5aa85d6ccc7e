// Package design turns resolved theme tokens into the lipgloss styles
// the views render with. The Applier is the production theme.Sink:
// every Apply rebuilds the whole style set from the token map, which
// makes re-application idempotent and guarantees no stale style
// survives a preset switch.
package design

import (
	"github.com/charmbracelet/lipgloss"

	"menuctl/internal/theme"
)

// Spacing units, in cells.
const (
	SpaceXS = 1
	SpaceSM = 2
	SpaceMD = 3
	SpaceLG = 4
)

// Styles is the full style set derived from one token map.
type Styles struct {
	Background lipgloss.Color
	Surface    lipgloss.Color
	Primary    lipgloss.Color
	Accent     lipgloss.Color
	Text       lipgloss.Color
	TextMuted  lipgloss.Color
	Border     lipgloss.Color
	Highlight  lipgloss.Color
	Success    lipgloss.Color
	Danger     lipgloss.Color

	Screen   lipgloss.Style
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Muted    lipgloss.Style
	Value    lipgloss.Style
	Good     lipgloss.Style
	Bad      lipgloss.Style

	Header    lipgloss.Style
	StatusBar lipgloss.Style

	TabActive   lipgloss.Style
	TabInactive lipgloss.Style
	TabBar      lipgloss.Style

	Panel       lipgloss.Style
	PanelTitle  lipgloss.Style
	Overlay     lipgloss.Style
	EventBadge  lipgloss.Style
	Cursor      lipgloss.Style
	CursorLine  lipgloss.Style
	BackHint    lipgloss.Style
	PlayButton  lipgloss.Style
	AreasButton lipgloss.Style
}

// FromTokens builds a complete style set. Missing tokens fall back to
// the default preset's value so a sparse map still renders.
func FromTokens(tokens map[string]string) Styles {
	fallback, _ := theme.Resolve(theme.DefaultPresetID)
	get := func(name string) lipgloss.Color {
		if v, ok := tokens[name]; ok && v != "" {
			return lipgloss.Color(v)
		}
		return lipgloss.Color(fallback[name])
	}

	s := Styles{
		Background: get(theme.TokenBackground),
		Surface:    get(theme.TokenSurface),
		Primary:    get(theme.TokenPrimary),
		Accent:     get(theme.TokenAccent),
		Text:       get(theme.TokenText),
		TextMuted:  get(theme.TokenTextMuted),
		Border:     get(theme.TokenBorder),
		Highlight:  get(theme.TokenHighlight),
		Success:    get(theme.TokenSuccess),
		Danger:     get(theme.TokenDanger),
	}

	s.Screen = lipgloss.NewStyle().
		Foreground(s.Text).
		Padding(0, SpaceSM)

	s.Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(s.Primary)

	s.Subtitle = lipgloss.NewStyle().
		Foreground(s.TextMuted)

	s.Muted = lipgloss.NewStyle().Foreground(s.TextMuted)
	s.Value = lipgloss.NewStyle().Foreground(s.Accent).Bold(true)
	s.Good = lipgloss.NewStyle().Foreground(s.Success)
	s.Bad = lipgloss.NewStyle().Foreground(s.Danger)

	s.Header = lipgloss.NewStyle().
		Bold(true).
		Background(s.Surface).
		Foreground(s.Text).
		Padding(0, SpaceSM)

	s.StatusBar = lipgloss.NewStyle().
		Background(s.Surface).
		Foreground(s.TextMuted).
		Padding(0, SpaceSM)

	s.TabActive = lipgloss.NewStyle().
		Bold(true).
		Background(s.Highlight).
		Foreground(s.Primary).
		Padding(0, SpaceXS)

	s.TabInactive = lipgloss.NewStyle().
		Background(s.Surface).
		Foreground(s.TextMuted).
		Padding(0, SpaceXS)

	s.TabBar = lipgloss.NewStyle().
		Background(s.Surface)

	s.Panel = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(s.Border).
		Padding(SpaceXS-1, SpaceSM)

	s.PanelTitle = lipgloss.NewStyle().
		Bold(true).
		Foreground(s.Text)

	s.Overlay = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(s.Primary).
		Background(s.Surface).
		Foreground(s.Text).
		Padding(1, 2)

	s.EventBadge = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(s.Accent).
		Foreground(s.Accent).
		Padding(0, 1)

	s.Cursor = lipgloss.NewStyle().Foreground(s.Accent).Bold(true)
	s.CursorLine = lipgloss.NewStyle().Background(s.Highlight).Foreground(s.Text)
	s.BackHint = lipgloss.NewStyle().Foreground(s.Primary)

	s.PlayButton = lipgloss.NewStyle().
		Bold(true).
		Background(s.Primary).
		Foreground(s.Background).
		Padding(0, SpaceMD)

	s.AreasButton = lipgloss.NewStyle().
		Background(s.Surface).
		Foreground(s.Accent).
		Padding(0, SpaceSM)

	return s
}

// Applier holds the active style set and satisfies theme.Sink. The UI
// loop is single-threaded, so no locking is needed around the swap.
type Applier struct {
	styles Styles
}

// NewApplier starts from the default preset so views render sensibly
// before the first Apply.
func NewApplier() *Applier {
	tokens, _ := theme.Resolve(theme.DefaultPresetID)
	return &Applier{styles: FromTokens(tokens)}
}

// Apply rebuilds the style set from tokens, replacing it wholesale.
func (a *Applier) Apply(tokens map[string]string) {
	a.styles = FromTokens(tokens)
}

// Styles returns the active style set.
func (a *Applier) Styles() Styles { return a.styles }
