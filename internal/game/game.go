package game

import "fmt"

// BoardSize is the number of cells on the board, indexed left-to-right, top-to-bottom.
const BoardSize = 9

// winningLines holds every triple of cells that ends the game when one player owns all three.
var winningLines = [8][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// Board is the 3x3 grid flattened into nine cells.
type Board [BoardSize]Player

// IsFull reports whether every cell is occupied.
func (b Board) IsFull() bool {
	for _, cell := range b {
		if cell == None {
			return false
		}
	}
	return true
}

// WinningLines returns a copy of the winning line table.
func WinningLines() [8][3]int {
	return winningLines
}

// Evaluate derives the status of a board.
func Evaluate(b Board) Status {
	for _, line := range winningLines {
		first := b[line[0]]
		if first != None && first == b[line[1]] && first == b[line[2]] {
			return won(first)
		}
	}
	if b.IsFull() {
		return draw()
	}
	return inProgress()
}

// Game is a single tic-tac-toe match. The zero value is not usable, use New.
type Game struct {
	board   Board
	current Player
	status  Status
	moves   int
}

// New starts a game on an empty board. None defaults to X.
func New(starting Player) *Game {
	if starting != PlayerX && starting != PlayerO {
		starting = PlayerX
	}
	return &Game{
		current: starting,
		status:  inProgress(),
	}
}

// AttemptMove marks cell for the current player.
//
// It returns false with a nil error when the move is rejected because the
// cell is taken or the game is over. An index outside the board returns
// ErrIndexOutOfRange. The current player is flipped only if the game is still
// in progress after the move, so after a win it reports the winner.
func (g *Game) AttemptMove(cell int) (bool, error) {
	if err := checkIndex(cell); err != nil {
		return false, err
	}
	if g.status.IsTerminal() || g.board[cell] != None {
		return false, nil
	}

	g.board[cell] = g.current
	g.moves++
	g.status = Evaluate(g.board)
	if !g.status.IsTerminal() {
		g.current = g.current.Other()
	}
	return true, nil
}

func (g *Game) Status() Status {
	return g.status
}

// CurrentPlayer is the player to move, or the winner once the game is won.
func (g *Game) CurrentPlayer() Player {
	return g.current
}

// CellAt returns the occupant of cell, None when empty.
func (g *Game) CellAt(cell int) (Player, error) {
	if err := checkIndex(cell); err != nil {
		return None, err
	}
	return g.board[cell], nil
}

// Board returns a copy of the board.
func (g *Game) Board() Board {
	return g.board
}

func (g *Game) MoveCount() int {
	return g.moves
}

func (g *Game) IsOver() bool {
	return g.status.IsTerminal()
}

func checkIndex(cell int) error {
	if cell < 0 || cell >= BoardSize {
		return fmt.Errorf("%w: %d", ErrIndexOutOfRange, cell)
	}
	return nil
}
