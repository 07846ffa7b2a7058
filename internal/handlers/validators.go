package handlers

import (
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// timeOfDay validates an HH:MM wall-clock string. The empty string passes
// through omitempty and means "clear the value".
func timeOfDay(fl validator.FieldLevel) bool {
	_, err := time.Parse("15:04", fl.Field().String())
	return err == nil
}

// The timecard DTOs reference these validators in their binding tags, so they
// must exist before any route in this package binds a request.
func init() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	_ = v.RegisterValidation("timeofday", timeOfDay)
}
