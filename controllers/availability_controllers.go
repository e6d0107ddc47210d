package controllers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/reservation-app/services"
	"github.com/yeremiapane/reservation-app/utils"
)

type AvailabilityController struct {
	Availability *services.AvailabilityService
}

func NewAvailabilityController(availability *services.AvailabilityService) *AvailabilityController {
	return &AvailabilityController{Availability: availability}
}

// GetSlots -> seluruh slot pada satu tanggal dengan flag available.
// Hari tutup menghasilkan list kosong, bukan error.
func (ac *AvailabilityController) GetSlots(c *gin.Context) {
	restaurantID, err := strconv.Atoi(c.Param("restaurant_id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, fmt.Errorf("invalid restaurant id"))
		return
	}

	date := c.Query("date")
	if date == "" {
		utils.RespondError(c, http.StatusBadRequest, fmt.Errorf("date is required"))
		return
	}

	partySize := 1
	if raw := c.Query("party_size"); raw != "" {
		partySize, err = strconv.Atoi(raw)
		if err != nil {
			utils.RespondError(c, http.StatusBadRequest, fmt.Errorf("invalid party_size"))
			return
		}
	}

	slots, err := ac.Availability.ListSlots(uint(restaurantID), date, partySize)
	if err != nil {
		utils.RespondError(c, statusForError(err), err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Available time slots", slots)
}

// GetTables -> meja yang bisa dipilih untuk satu slot, terurut
// berdasarkan kecocokan kapasitas
func (ac *AvailabilityController) GetTables(c *gin.Context) {
	restaurantID, err := strconv.Atoi(c.Param("restaurant_id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, fmt.Errorf("invalid restaurant id"))
		return
	}

	date := c.Query("date")
	timeSlot := c.Query("time")
	if date == "" || timeSlot == "" {
		utils.RespondError(c, http.StatusBadRequest, fmt.Errorf("date and time are required"))
		return
	}

	partySize, err := strconv.Atoi(c.Query("party_size"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, fmt.Errorf("invalid party_size"))
		return
	}

	tables, err := ac.Availability.ListTables(uint(restaurantID), date, timeSlot, partySize)
	if err != nil {
		utils.RespondError(c, statusForError(err), err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Available tables", tables)
}
