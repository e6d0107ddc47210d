package controllers

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/reservation-app/models"
	"github.com/yeremiapane/reservation-app/utils"
	"gorm.io/gorm"
)

type AdminController struct {
	DB *gorm.DB
}

func NewAdminController(db *gorm.DB) *AdminController {
	return &AdminController{DB: db}
}

// GetDashboardStats -> ringkasan hari ini untuk dashboard restoran:
// jumlah reservasi per status, total tamu yang diharapkan, jumlah meja.
func (ac *AdminController) GetDashboardStats(c *gin.Context) {
	restaurantID, err := strconv.Atoi(c.Query("restaurant_id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, fmt.Errorf("restaurant_id is required"))
		return
	}

	date := c.Query("date")
	if date == "" {
		date = time.Now().Format(models.DateLayout)
	}

	counts := map[string]int64{}
	for _, status := range []models.ReservationStatus{
		models.StatusPending,
		models.StatusConfirmed,
		models.StatusCancelled,
		models.StatusCompleted,
	} {
		var n int64
		err := ac.DB.Model(&models.Reservation{}).
			Where("restaurant_id = ? AND date = ? AND status = ?", restaurantID, date, status).
			Count(&n).Error
		if err != nil {
			utils.RespondError(c, http.StatusInternalServerError, err)
			return
		}
		counts[string(status)] = n
	}

	// Total tamu dari reservasi yang masih aktif hari itu
	var expectedCovers int64
	err = ac.DB.Model(&models.Reservation{}).
		Where("restaurant_id = ? AND date = ? AND status IN ?", restaurantID, date, models.ActiveStatuses()).
		Select("COALESCE(SUM(party_size), 0)").
		Scan(&expectedCovers).Error
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	var tableCount int64
	if err := ac.DB.Model(&models.Table{}).Where("restaurant_id = ?", restaurantID).Count(&tableCount).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Dashboard stats", gin.H{
		"date":            date,
		"reservations":    counts,
		"expected_covers": expectedCovers,
		"table_count":     tableCount,
	})
}
