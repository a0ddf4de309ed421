package game

// StatusKind enumerates the three mutually exclusive game states.
type StatusKind uint8

const (
	InProgress StatusKind = iota
	Won
	Draw
)

// Status is derived from the board after every accepted move.
type Status struct {
	Kind   StatusKind
	winner Player
}

func inProgress() Status { return Status{Kind: InProgress} }
func draw() Status { return Status{Kind: Draw} }
func won(winner Player) Status { return Status{Kind: Won, winner: winner} }

// Winner returns the winning player, or None unless the kind is Won.
func (s Status) Winner() Player {
	if s.Kind != Won {
		return None
	}
	return s.winner
}

// IsTerminal reports whether the game has been decided.
func (s Status) IsTerminal() bool {
	return s.Kind != InProgress
}

func (s Status) String() string {
	switch s.Kind {
	case Won:
		return "won(" + s.winner.String() + ")"
	case Draw:
		return "draw"
	default:
		return "in_progress"
	}
}
