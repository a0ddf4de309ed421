package events

import "ctchen222/BoardGameKit/internal/game"

// Kind names an interaction event coming from the UI host.
type Kind string

const (
	CellActivated Kind = "cell_activated"
	NewGame       Kind = "new_game"
	GameSelected  Kind = "game_selected"
	Exit          Kind = "exit"
	ReturnToMenu  Kind = "return_to_menu"
)

// Event is a single interaction. Index is meaningful for CellActivated and
// GameSelected, Starting for NewGame.
type Event struct {
	Kind     Kind
	Index    int
	Starting game.Player
}

func CellActivatedEvent(index int) Event {
	return Event{Kind: CellActivated, Index: index}
}

func NewGameEvent(starting game.Player) Event {
	return Event{Kind: NewGame, Starting: starting}
}

func GameSelectedEvent(index int) Event {
	return Event{Kind: GameSelected, Index: index}
}

func ExitEvent() Event {
	return Event{Kind: Exit}
}

func ReturnToMenuEvent() Event {
	return Event{Kind: ReturnToMenu}
}
