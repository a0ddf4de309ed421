package controller

import (
	"context"
	"net/http"

	"ctchen222/BoardGameKit/internal/api/models"
	"ctchen222/BoardGameKit/internal/api/response"
	"ctchen222/BoardGameKit/internal/binding"
	"ctchen222/BoardGameKit/internal/display"
	"ctchen222/BoardGameKit/internal/events"
	"ctchen222/BoardGameKit/internal/validator"
	"ctchen222/BoardGameKit/pkg/proto"

	"github.com/gin-gonic/gin"
)

// Dispatcher hands events to the core.
type Dispatcher interface {
	Dispatch(ctx context.Context, ev events.Event) error
}

// ScreenSource provides the current display state.
type ScreenSource interface {
	Snapshot() display.Snapshot
}

// ScreenController handles the screen and event HTTP endpoints.
type ScreenController struct {
	dispatcher Dispatcher
	screen     ScreenSource
	registry   *binding.Registry
}

func NewScreenController(dispatcher Dispatcher, screen ScreenSource, registry *binding.Registry) *ScreenController {
	return &ScreenController{
		dispatcher: dispatcher,
		screen:     screen,
		registry:   registry,
	}
}

// GetScreen returns the current display state.
func (sc *ScreenController) GetScreen(c *gin.Context) {
	response.SuccessResponse(c, sc.Message())
}

// ListGames returns the registered games in menu order.
func (sc *ScreenController) ListGames(c *gin.Context) {
	response.SuccessResponseList(c, models.GameInfos(sc.registry.Entries()))
}

// PostEvent validates and dispatches one interaction event, then returns the
// resulting display state.
func (sc *ScreenController) PostEvent(c *gin.Context) {
	var req proto.ClientEvent
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}
	if err := validator.GetValidator().Struct(req); err != nil {
		response.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	ev, err := req.ToEvent()
	if err != nil {
		response.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}
	if err := sc.dispatcher.Dispatch(c.Request.Context(), ev); err != nil {
		response.AbortWithError(c, err)
		return
	}

	response.SuccessResponse(c, sc.Message())
}

// Message is the current screen in wire form.
func (sc *ScreenController) Message() proto.ScreenMessage {
	return sc.MessageFor(sc.screen.Snapshot())
}

// MessageFor converts a snapshot into wire form.
func (sc *ScreenController) MessageFor(snap display.Snapshot) proto.ScreenMessage {
	return models.NewScreenMessage(snap, sc.registry.Entries())
}
