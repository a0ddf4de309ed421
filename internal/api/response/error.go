package response

import (
	"errors"
	"net/http"

	"ctchen222/BoardGameKit/internal/binding"
	"ctchen222/BoardGameKit/internal/game"
)

type Error struct {
	Success bool   `json:"success"`
	Code    int    `json:"code"`
	Extras  string `json:"extras"`
}

func (e Error) Error() string {
	return e.Extras
}

func NewError(success bool, code int, message string) Error {
	return Error{
		Success: success,
		Code:    code,
		Extras:  message,
	}
}

// StatusFor maps a dispatch error to an HTTP status code.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, game.ErrIndexOutOfRange),
		errors.Is(err, game.ErrInvalidPlayer),
		errors.Is(err, binding.ErrUnknownEvent):
		return http.StatusBadRequest
	case errors.Is(err, binding.ErrDispatcherStopped):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
