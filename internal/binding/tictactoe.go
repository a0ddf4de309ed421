package binding

import (
	"context"
	"fmt"
	"log/slog"

	"ctchen222/BoardGameKit/internal/game"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// TicTacToePaneName is the name of the tic-tac-toe pane.
const TicTacToePaneName = "tictactoe"

// TicTacToe binds a game.Game to a Board display.
type TicTacToe struct {
	board    Board
	game     *game.Game
	starting game.Player
	metrics  *bindingMetrics
}

// NewTicTacToe creates the controller with a fresh game. It does not touch the
// display until Render or an event handler is called.
func NewTicTacToe(board Board, starting game.Player) *TicTacToe {
	g := game.New(starting)
	return &TicTacToe{
		board:    board,
		game:     g,
		starting: g.CurrentPlayer(),
		metrics:  defaultMetrics(),
	}
}

func (t *TicTacToe) Name() string {
	return TicTacToePaneName
}

// Game exposes the current game for read access.
func (t *TicTacToe) Game() *game.Game {
	return t.game
}

// OnCellActivated plays the current player's mark on a cell. A rejected move
// leaves the display untouched; an index outside the board is returned as
// game.ErrIndexOutOfRange.
func (t *TicTacToe) OnCellActivated(index int) error {
	ctx := context.Background()
	mover := t.game.CurrentPlayer()

	accepted, err := t.game.AttemptMove(index)
	if err != nil {
		return fmt.Errorf("cell %d: %w", index, err)
	}
	t.metrics.moves.Add(ctx, 1, metric.WithAttributes(attribute.Bool("move.accepted", accepted)))
	if !accepted {
		slog.DebugContext(ctx, "move rejected", "cell.index", index, "player", mover.String())
		return nil
	}

	t.board.SetCellText(index, mover.String())
	t.board.SetStatusText(StatusText(t.game))

	if st := t.game.Status(); st.IsTerminal() {
		t.metrics.finished.Add(ctx, 1, metric.WithAttributes(attribute.String("game.outcome", st.String())))
		slog.InfoContext(ctx, "game finished", "game.status", st.String(), "game.moves", t.game.MoveCount())
	}
	return nil
}

// OnNewGameRequested discards the current game and clears the board display.
// None starts with the player configured at construction, which is X unless
// the starting-player setting overrides it.
func (t *TicTacToe) OnNewGameRequested(starting game.Player) {
	if starting == game.None {
		starting = t.starting
	}
	t.game = game.New(starting)
	t.Render()
}

// Render writes every cell and the status line.
func (t *TicTacToe) Render() {
	b := t.game.Board()
	for i, cell := range b {
		t.board.SetCellText(i, cell.String())
	}
	t.board.SetStatusText(StatusText(t.game))
}

// CellHandlers returns one click handler per cell, each bound to its own index.
func (t *TicTacToe) CellHandlers() [game.BoardSize]func() error {
	var handlers [game.BoardSize]func() error
	for i := range handlers {
		index := i
		handlers[i] = func() error { return t.OnCellActivated(index) }
	}
	return handlers
}

// StatusText renders the status line for a game.
func StatusText(g *game.Game) string {
	st := g.Status()
	switch st.Kind {
	case game.Won:
		return fmt.Sprintf("Game Over: Player %s wins!", st.Winner())
	case game.Draw:
		return "Cat's Game!"
	default:
		return fmt.Sprintf("Turn: %s", g.CurrentPlayer())
	}
}
