package game

import (
	"fmt"
	"strings"
)

// Player represents the mark of a player (X, O) or an empty cell.
type Player uint8

const (
	None Player = iota
	PlayerX
	PlayerO
)

func (p Player) String() string {
	switch p {
	case PlayerX:
		return "X"
	case PlayerO:
		return "O"
	default:
		return ""
	}
}

// Other returns the opponent of p. None has no opponent.
func (p Player) Other() Player {
	switch p {
	case PlayerX:
		return PlayerO
	case PlayerO:
		return PlayerX
	default:
		return None
	}
}

// ParsePlayer accepts "X" or "O" in any case.
func ParsePlayer(s string) (Player, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "X":
		return PlayerX, nil
	case "O":
		return PlayerO, nil
	default:
		return None, fmt.Errorf("%w: %q", ErrInvalidPlayer, s)
	}
}
