package proto

import (
	"fmt"

	"ctchen222/BoardGameKit/internal/events"
	"ctchen222/BoardGameKit/internal/game"
)

// ClientEvent represents an interaction sent by the browser, either as the
// body of POST /api/events or as a websocket text frame.
type ClientEvent struct {
	Type     string `json:"type" validate:"required,oneof=cell_activated new_game game_selected exit return_to_menu"`
	Index    *int   `json:"index,omitempty" validate:"required_if=Type cell_activated,required_if=Type game_selected"`
	Starting string `json:"starting,omitempty" validate:"omitempty,player"`
}

// ToEvent converts a validated ClientEvent into a dispatchable event.
func (m ClientEvent) ToEvent() (events.Event, error) {
	ev := events.Event{Kind: events.Kind(m.Type)}
	if m.Index != nil {
		ev.Index = *m.Index
	}
	if m.Starting != "" {
		p, err := game.ParsePlayer(m.Starting)
		if err != nil {
			return events.Event{}, fmt.Errorf("invalid starting player: %w", err)
		}
		ev.Starting = p
	}
	return ev, nil
}

// GameInfo describes one registry entry as shown on the menu.
type GameInfo struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

// ScreenMessage is the full display state pushed to clients.
type ScreenMessage struct {
	Type   string     `json:"type"`
	Pane   string     `json:"pane"`
	Cells  []string   `json:"cells"`
	Status string     `json:"status"`
	Games  []GameInfo `json:"games,omitempty"`
}
