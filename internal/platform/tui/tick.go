// Package tui is the Bubble Tea front-end of the pursuit game: the turn
// based game screen, the history browser and the Wish SSH server.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// ComputerTurnMsg tells the game screen to play the pending computer turn.
type ComputerTurnMsg time.Time

// computerTurnCmd waits for delay before a computer player acts, so that
// people can follow what happened.
func computerTurnCmd(delay time.Duration) tea.Cmd {
	return tea.Tick(delay, func(t time.Time) tea.Msg {
		return ComputerTurnMsg(t)
	})
}
