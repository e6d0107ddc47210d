package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/reservation-app/services"
	"github.com/yeremiapane/reservation-app/utils"
)

type BookingController struct {
	Booking *services.BookingService
}

func NewBookingController(booking *services.BookingService) *BookingController {
	return &BookingController{Booking: booking}
}

// StartSession -> buka wizard baru, sekalian kirim tanggal yang bisa
// dipilih (14 hari ke depan)
func (bc *BookingController) StartSession(c *gin.Context) {
	var req struct {
		RestaurantID uint `json:"restaurant_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	session := bc.Booking.StartSession(req.RestaurantID)
	utils.RespondJSON(c, http.StatusCreated, "Booking session started", gin.H{
		"session": session,
		"dates":   bc.Booking.BookingDates(),
	})
}

// GetSession -> state wizard saat ini
func (bc *BookingController) GetSession(c *gin.Context) {
	session, err := bc.Booking.GetSession(c.Param("session_id"))
	if err != nil {
		utils.RespondError(c, statusForError(err), err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Booking session", session)
}

// AdvanceSession menerima data untuk satu step. Field step menentukan
// gate mana yang divalidasi; step selesai -> wizard maju.
func (bc *BookingController) AdvanceSession(c *gin.Context) {
	sessionID := c.Param("session_id")

	var req struct {
		Step      string `json:"step" binding:"required"` // date_party, time, table, contact, back
		Date      string `json:"date"`
		PartySize int    `json:"party_size"`
		TimeSlot  string `json:"time_slot"`
		TableID   uint   `json:"table_id"`

		FirstName      string `json:"first_name"`
		LastName       string `json:"last_name"`
		Email          string `json:"email"`
		Phone          string `json:"phone"`
		SpecialRequest string `json:"special_request"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	switch req.Step {
	case "date_party":
		session, err := bc.Booking.SubmitDateParty(sessionID, req.Date, req.PartySize)
		if err != nil {
			utils.RespondError(c, statusForError(err), err)
			return
		}
		utils.RespondJSON(c, http.StatusOK, "Date and party size selected", session)

	case "time":
		session, err := bc.Booking.SubmitTime(sessionID, req.TimeSlot)
		if err != nil {
			utils.RespondError(c, statusForError(err), err)
			return
		}
		utils.RespondJSON(c, http.StatusOK, "Time selected", session)

	case "table":
		session, err := bc.Booking.SubmitTable(sessionID, req.TableID)
		if err != nil {
			utils.RespondError(c, statusForError(err), err)
			return
		}
		utils.RespondJSON(c, http.StatusOK, "Table selected", session)

	case "contact":
		reservation, err := bc.Booking.SubmitContact(sessionID, services.ContactDetails{
			FirstName:      req.FirstName,
			LastName:       req.LastName,
			Email:          req.Email,
			Phone:          req.Phone,
			SpecialRequest: req.SpecialRequest,
		})
		if err != nil {
			utils.RespondError(c, statusForError(err), err)
			return
		}
		utils.RespondJSON(c, http.StatusCreated, "Reservation created", reservation)

	case "back":
		session, err := bc.Booking.Back(sessionID)
		if err != nil {
			utils.RespondError(c, statusForError(err), err)
			return
		}
		utils.RespondJSON(c, http.StatusOK, "Moved back one step", session)

	default:
		utils.RespondError(c, http.StatusBadRequest, fmt.Errorf("unknown step %q", req.Step))
	}
}
