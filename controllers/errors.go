package controllers

import (
	"errors"
	"net/http"

	"github.com/yeremiapane/reservation-app/models"
	"gorm.io/gorm"
)

var ErrNoPermission = errors.New("you do not have permission for this action")

// statusForError memetakan error kind dari service ke HTTP status.
// Validation -> 400, closed/no-availability/invalid-transition -> 422,
// conflict -> 409, not found -> 404.
func statusForError(err error) int {
	switch {
	case errors.Is(err, models.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, models.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, models.ErrClosed),
		errors.Is(err, models.ErrNoAvailability),
		errors.Is(err, models.ErrInvalidTransition):
		return http.StatusUnprocessableEntity
	case errors.Is(err, gorm.ErrRecordNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
