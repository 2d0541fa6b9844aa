package view

import (
	tea "github.com/charmbracelet/bubbletea"
)

// CommonModel tracks the terminal size a screen lays itself out in. Zero
// means no size has been reported yet.
type CommonModel struct {
	Width  int
	Height int
}

func (c *CommonModel) SetSize(msg tea.WindowSizeMsg) {
	c.Width = msg.Width
	c.Height = msg.Height
}

type BackMsg struct{}

func Back() tea.Msg {
	return BackMsg{}
}
