package view

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"menuctl/internal/navigation"
	"menuctl/internal/tui/model"
)

// renderModalOver places the top modal centered over the screen body.
// Deeper stack entries stay hidden beneath; only their count shows, so
// the player knows esc peels one layer at a time.
func renderModalOver(m *model.Model, body string, height int, modal *navigation.Modal) string {
	st := m.Theme.Styles()

	content := modalContent(m, modal)
	if depth := m.Nav.ModalDepth(); depth > 1 {
		content += "\n\n" + st.Subtitle.Render(fmt.Sprintf("(%d more beneath — esc closes one)", depth-1))
	}
	box := st.Overlay.Render(content)

	return lipgloss.Place(m.Width, height, lipgloss.Center, lipgloss.Center, box)
}

func modalContent(m *model.Model, modal *navigation.Modal) string {
	st := m.Theme.Styles()
	switch modal.ID {
	case navigation.ModalOutOfLives:
		return st.Title.Render("Out of Lives!") + "\n\n" +
			"Next life in 18:32\n" +
			st.Subtitle.Render("o opens info on top · esc closes")
	case navigation.ModalSignIn:
		return st.Title.Render("Sign In") + "\n\n" +
			"Save progress across devices.\n" +
			st.Subtitle.Render("esc to dismiss")
	case navigation.ModalReward:
		title := "Reward!"
		if name, ok := modal.Params["name"].(string); ok {
			title = name
		}
		return st.Title.Render(title) + "\n\n" + "🎁 ×1 Booster Pack"
	case navigation.ModalInfo:
		return st.Title.Render("Info") + "\n\n" + "Match three or more to clear."
	case navigation.ModalResetConfirm:
		return st.Title.Render("Reset Configuration?") + "\n\n" +
			"All tabs, events and theme choices revert.\n\n" +
			st.Bad.Render("enter confirms") + st.Subtitle.Render(" · esc cancels")
	default:
		return string(modal.ID)
	}
}

func renderHelpOver(m *model.Model, body string, height int) string {
	st := m.Theme.Styles()
	box := st.Overlay.Render(
		st.Title.Render("Keys") + "\n\n" + m.Help.FullHelpView(m.Keys.FullHelp()),
	)
	return lipgloss.Place(m.Width, height, lipgloss.Center, lipgloss.Center, box)
}
