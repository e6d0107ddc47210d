package controllers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/reservation-app/models"
	"github.com/yeremiapane/reservation-app/services"
	"github.com/yeremiapane/reservation-app/utils"
)

type ReservationController struct {
	Reservations *services.ReservationService
}

func NewReservationController(reservations *services.ReservationService) *ReservationController {
	return &ReservationController{Reservations: reservations}
}

// CreateReservation -> satu request atomik berisi hasil keempat step
// wizard. Availability dicek ulang di service; tabrakan -> 409.
func (rc *ReservationController) CreateReservation(c *gin.Context) {
	var req services.CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	reservation, err := rc.Reservations.Create(req)
	if err != nil {
		utils.RespondError(c, statusForError(err), err)
		return
	}

	utils.RespondJSON(c, http.StatusCreated, "Reservation created", reservation)
}

// GetReservationByCode -> halaman konfirmasi tamu
func (rc *ReservationController) GetReservationByCode(c *gin.Context) {
	code := c.Param("code")

	reservation, err := rc.Reservations.FindByCode(code)
	if err != nil {
		utils.RespondError(c, statusForError(err), err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Reservation detail", reservation)
}

// GetAllReservations -> list untuk Reservation Manager, filter status
// dan tanggal opsional
func (rc *ReservationController) GetAllReservations(c *gin.Context) {
	restaurantID, err := strconv.Atoi(c.Query("restaurant_id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, fmt.Errorf("restaurant_id is required"))
		return
	}

	status := models.ReservationStatus(c.Query("status"))
	date := c.Query("date")

	reservations, err := rc.Reservations.List(uint(restaurantID), status, date)
	if err != nil {
		utils.RespondError(c, statusForError(err), err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "List of reservations", reservations)
}

// UpdateReservationStatus -> transisi lifecycle dengan expected status
// (optimistic concurrency). Expected tidak cocok -> 409; transisi di
// luar tabel -> 422.
func (rc *ReservationController) UpdateReservationStatus(c *gin.Context) {
	reservationID, err := strconv.Atoi(c.Param("reservation_id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, fmt.Errorf("invalid reservation id"))
		return
	}

	var req struct {
		ExpectedStatus string `json:"expected_status" binding:"required"`
		NewStatus      string `json:"new_status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	reservation, err := rc.Reservations.TransitionStatus(
		uint(reservationID),
		models.ReservationStatus(req.ExpectedStatus),
		models.ReservationStatus(req.NewStatus),
	)
	if err != nil {
		utils.RespondError(c, statusForError(err), err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Reservation status updated", reservation)
}
