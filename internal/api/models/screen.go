package models

import (
	"ctchen222/BoardGameKit/internal/binding"
	"ctchen222/BoardGameKit/internal/display"
	"ctchen222/BoardGameKit/pkg/proto"
)

// ScreenMessageType is the type field of every pushed screen message.
const ScreenMessageType = "screen"

// NewScreenMessage builds the wire form of a display snapshot. The game list
// is only attached while the menu is visible.
func NewScreenMessage(snap display.Snapshot, entries []binding.Entry) proto.ScreenMessage {
	msg := proto.ScreenMessage{
		Type:   ScreenMessageType,
		Pane:   snap.Pane,
		Cells:  snap.Cells[:],
		Status: snap.Status,
	}
	if snap.Pane == binding.MenuPaneName {
		msg.Games = GameInfos(entries)
	}
	return msg
}

// GameInfos lists registry entries in menu order.
func GameInfos(entries []binding.Entry) []proto.GameInfo {
	games := make([]proto.GameInfo, 0, len(entries))
	for _, e := range entries {
		games = append(games, proto.GameInfo{ID: e.ID, Title: e.Title})
	}
	return games
}
