package tui

import tea "charm.land/bubbletea/v2"

// handleHelpMode closes the help overlay
func (m Model) handleHelpMode(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case m.Config.KeyMappings.ShowHelp, "esc", "enter", m.Config.KeyMappings.Quit:
		m.UiState.CloseHelp()
	}
	return m, nil
}
