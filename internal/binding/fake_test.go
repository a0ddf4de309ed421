package binding_test

import (
	"ctchen222/BoardGameKit/internal/binding"
	"ctchen222/BoardGameKit/internal/game"
)

// recordingBoard keeps what was last written to each display element.
type recordingBoard struct {
	cells  [game.BoardSize]string
	status string
	writes int
}

func (b *recordingBoard) SetCellText(index int, text string) {
	b.cells[index] = text
	b.writes++
}

func (b *recordingBoard) SetStatusText(text string) {
	b.status = text
	b.writes++
}

// recordingContainer remembers the shown panes.
type recordingContainer struct {
	shown []binding.Pane
}

func (c *recordingContainer) Show(p binding.Pane) {
	c.shown = append(c.shown, p)
}

func (c *recordingContainer) current() binding.Pane {
	if len(c.shown) == 0 {
		return nil
	}
	return c.shown[len(c.shown)-1]
}

func ticTacToeEntry(board binding.Board) binding.Entry {
	return binding.Entry{
		ID:    "tictactoe",
		Title: "Tic Tac Toe",
		NewPane: func() binding.GamePane {
			return binding.NewTicTacToe(board, game.PlayerX)
		},
	}
}
