package model

import (
	tea "github.com/charmbracelet/bubbletea"

	"menuctl/pkg/logging"
)

// NewLogEntryMsg carries one log entry from the logging channel into
// the update loop.
type NewLogEntryMsg struct {
	Entry logging.Entry
}

// ClearStatusMsg wipes the transient status bar message.
type ClearStatusMsg struct{}

// ChannelReaderCmd waits for the next log entry. The returned command
// re-arms itself from the update loop after each delivery.
func ChannelReaderCmd(ch <-chan logging.Entry) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		entry, ok := <-ch
		if !ok {
			return nil
		}
		return NewLogEntryMsg{Entry: entry}
	}
}

// Init implements the model half of tea.Model.
func (m *Model) Init() tea.Cmd {
	return ChannelReaderCmd(m.LogChannel)
}
