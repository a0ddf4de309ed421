// Package binding turns interaction events into game calls and writes the
// results into display elements owned by the UI host.
//
// Nothing in here knows how the display is drawn. The host provides a Board
// for cell and status texts, a Container that swaps the visible pane, and a
// Terminator for process exit.
package binding

import "ctchen222/BoardGameKit/internal/game"

//go:generate mockgen -destination=mocks/display.go -package=mocks ctchen222/BoardGameKit/internal/binding Board,Container,Terminator

// Board is the display of a grid game: one text per cell plus a status line.
type Board interface {
	SetCellText(index int, text string)
	SetStatusText(text string)
}

// Container holds the pane currently visible to the user.
type Container interface {
	Show(p Pane)
}

// Terminator ends the application.
type Terminator interface {
	Terminate(code int)
}

// Pane is anything the Container can display.
type Pane interface {
	Name() string
}

// GamePane is a pane that hosts a playable game.
type GamePane interface {
	Pane
	OnCellActivated(index int) error
	OnNewGameRequested(starting game.Player)
	// Render writes the full current state into the display.
	Render()
}
