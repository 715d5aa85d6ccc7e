package view

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"

	"menuctl/internal/catalog"
	"menuctl/internal/navigation"
	"menuctl/internal/tui/components"
	"menuctl/internal/tui/model"
)

func renderScreen(m *model.Model, height int) string {
	var body string
	switch m.Nav.CurrentScreen() {
	case navigation.ScreenHome:
		body = renderHome(m)
	case navigation.ScreenShop:
		body = renderShop(m)
	case navigation.ScreenTeam:
		body = renderTeam(m)
	case navigation.ScreenCollection:
		body = renderCollection(m)
	case navigation.ScreenLeaderboard:
		body = renderLeaderboard(m)
	case navigation.ScreenAreas:
		body = renderAreas(m)
	case navigation.ScreenSettings:
		body = renderSettings(m)
	case navigation.ScreenGameplay:
		body = renderGameplay(m)
	case navigation.ScreenEvent:
		body = renderEvent(m)
	default:
		body = ""
	}

	st := m.Theme.Styles()
	return st.Screen.Width(m.Width).Height(height).Render(body)
}

// renderHome is the hub: live-event badges on both flanks, the play
// button in the middle, and the optional areas shortcut.
func renderHome(m *model.Model) string {
	st := m.Theme.Styles()
	placement := m.Store.EventPlacement()

	column := func(ids []string) string {
		var badges []string
		for _, id := range ids {
			if ev, ok := catalog.EventByID(id); ok {
				badge := st.EventBadge.Render(ev.Icon + " " + ev.Name)
				badges = append(badges, zone.Mark(components.EventZonePrefix+id, badge))
			}
		}
		if len(badges) == 0 {
			return ""
		}
		return lipgloss.JoinVertical(lipgloss.Left, badges...)
	}

	center := zone.Mark(components.PlayZoneID, st.PlayButton.Render("▶ PLAY")) +
		"\n\n" + st.Subtitle.Render("p to play · o for a demo modal")
	if m.Store.ShowAreaButton() {
		center += "\n\n" + zone.Mark(components.AreasZoneID, st.AreasButton.Render("🗺 Areas"))
	}

	innerWidth := m.Width - 2*4
	if innerWidth < 20 {
		innerWidth = 20
	}
	left := column(placement.Left)
	right := column(placement.Right)
	midWidth := innerWidth - lipgloss.Width(left) - lipgloss.Width(right)
	if midWidth < 10 {
		midWidth = 10
	}
	mid := lipgloss.PlaceHorizontal(midWidth, lipgloss.Center, center)

	return "\n" + lipgloss.JoinHorizontal(lipgloss.Top, left, mid, right)
}

func renderShop(m *model.Model) string {
	st := m.Theme.Styles()
	items := []struct {
		name  string
		price string
	}{
		{"Booster Pack", "500 ⛃"},
		{"Extra Lives ×3", "300 ⛃"},
		{"Rainbow Bomb", "750 ⛃"},
		{"Piggy Bank", "$ 1.99"},
	}
	var b strings.Builder
	b.WriteString(st.Title.Render("Daily Deals") + "\n\n")
	for _, item := range items {
		b.WriteString(fmt.Sprintf("  %s %s\n", item.name, st.Value.Render(item.price)))
	}
	return b.String()
}

func renderTeam(m *model.Model) string {
	st := m.Theme.Styles()
	var b strings.Builder
	b.WriteString(st.Title.Render("Sugar Rush Squad") + "\n\n")
	for _, line := range []string{
		"  👑 PixiePop      lv 41",
		"  ⭐ MatchMaker3k  lv 38",
		"  ⭐ CandyCrusher  lv 35",
		"     You           lv 12",
	} {
		b.WriteString(line + "\n")
	}
	b.WriteString("\n" + st.Subtitle.Render("g to sign in for team chests"))
	return b.String()
}

func renderCollection(m *model.Model) string {
	st := m.Theme.Styles()
	var b strings.Builder
	b.WriteString(st.Title.Render("Card Collection") + "\n\n")
	b.WriteString("  Set 1 — Forest Friends  " + st.Good.Render("9/9 ✓") + "\n")
	b.WriteString("  Set 2 — Deep Sea        " + st.Value.Render("6/9") + "\n")
	b.WriteString("  Set 3 — Volcano Valley  " + st.Muted.Render("0/9") + "\n")
	return b.String()
}

func renderLeaderboard(m *model.Model) string {
	st := m.Theme.Styles()
	var b strings.Builder
	b.WriteString(st.Title.Render("Weekly Ranks") + "\n\n")
	for i, name := range []string{"GummyBear", "Lolly", "You", "Jawbreaker", "Fizz"} {
		row := fmt.Sprintf("  %d. %s", i+1, name)
		if name == "You" {
			row = st.Value.Render(row)
		}
		b.WriteString(row + "\n")
	}
	return b.String()
}

func renderAreas(m *model.Model) string {
	st := m.Theme.Styles()
	var b strings.Builder
	b.WriteString(st.Title.Render("World Map") + "\n\n")
	b.WriteString("  ✓ Candy Coast      complete\n")
	b.WriteString("  ▶ Minty Mountains  level 87\n")
	b.WriteString("  🔒 Soda Springs     locked\n")
	return b.String()
}

func renderGameplay(m *model.Model) string {
	st := m.Theme.Styles()
	return st.Title.Render("Level 87") + "\n\n" +
		"  The match-3 board would run here.\n\n" +
		st.Subtitle.Render("enter finishes the level · esc heads back to the menu")
}

func renderEvent(m *model.Model) string {
	st := m.Theme.Styles()
	title := eventTitle(m)
	return st.Title.Render(title) + "\n\n" +
		"  Limited-time rewards are live!\n\n" +
		st.Subtitle.Render("esc to go back")
}

func eventTitle(m *model.Model) string {
	params := m.Nav.Params(navigation.ScreenEvent)
	if id, ok := params["eventId"].(string); ok {
		if ev, found := catalog.EventByID(id); found {
			return ev.Icon + " " + ev.Name
		}
	}
	return "Event"
}
