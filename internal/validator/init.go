package validator

import (
	"ctchen222/BoardGameKit/internal/game"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())

	// "player" accepts the textual form of X or O.
	if err := validate.RegisterValidation("player", validatePlayer); err != nil {
		panic(err)
	}
}

func GetValidator() *validator.Validate {
	return validate
}

func validatePlayer(fl validator.FieldLevel) bool {
	_, err := game.ParsePlayer(fl.Field().String())
	return err == nil
}
