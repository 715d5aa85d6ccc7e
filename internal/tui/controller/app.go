// Package controller owns the Bubble Tea update loop of the menu
// shell. It translates terminal events into operations on the
// navigation controller, the gesture navigator, and the configuration
// store, and leaves rendering to the view package.
package controller

import (
	tea "github.com/charmbracelet/bubbletea"

	"menuctl/internal/tui/model"
	"menuctl/internal/tui/view"
)

// AppModel wraps the model to satisfy tea.Model.
type AppModel struct {
	model *model.Model
}

// NewAppModel creates the app wrapper.
func NewAppModel(m *model.Model) AppModel {
	return AppModel{model: m}
}

// Init implements tea.Model.
func (a AppModel) Init() tea.Cmd {
	return a.model.Init()
}

// Update implements tea.Model.
func (a AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	m, cmd := Update(msg, a.model)
	a.model = m
	return a, cmd
}

// View implements tea.Model.
func (a AppModel) View() string {
	return view.Render(a.model)
}
