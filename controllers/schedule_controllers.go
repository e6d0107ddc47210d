package controllers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/reservation-app/models"
	"github.com/yeremiapane/reservation-app/services"
	"github.com/yeremiapane/reservation-app/utils"
	"gorm.io/gorm"
)

type ScheduleController struct {
	DB       *gorm.DB
	Schedule *services.ScheduleService
}

func NewScheduleController(db *gorm.DB, schedule *services.ScheduleService) *ScheduleController {
	return &ScheduleController{DB: db, Schedule: schedule}
}

// GetResolvedSchedule -> jam buka hasil resolve untuk satu tanggal.
// Hari tutup tetap 200 dengan closed=true; bukan error.
func (sc *ScheduleController) GetResolvedSchedule(c *gin.Context) {
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

	window, err := sc.Schedule.ResolveHours(uint(restaurantID), date)
	if err != nil {
		utils.RespondError(c, statusForError(err), err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Resolved schedule", gin.H{
		"date":       date,
		"open_time":  window.OpenTime,
		"close_time": window.CloseTime,
		"closed":     window.IsClosed(),
	})
}

// GetWeeklySchedule -> tujuh baris jadwal mingguan
func (sc *ScheduleController) GetWeeklySchedule(c *gin.Context) {
	restaurantID := c.Param("restaurant_id")

	var hours []models.OperatingHour
	if err := sc.DB.Where("restaurant_id = ?", restaurantID).Order("weekday").Find(&hours).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Weekly schedule", hours)
}

// PutWeeklySchedule -> ganti jadwal mingguan sekaligus (Schedule Manager)
func (sc *ScheduleController) PutWeeklySchedule(c *gin.Context) {
	restaurantID, err := strconv.Atoi(c.Param("restaurant_id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, fmt.Errorf("invalid restaurant id"))
		return
	}

	var req struct {
		Hours []struct {
			Weekday   int    `json:"weekday"`
			OpenTime  string `json:"open_time" binding:"required"`
			CloseTime string `json:"close_time" binding:"required"`
		} `json:"hours" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	saved := make([]models.OperatingHour, 0, len(req.Hours))
	for _, entry := range req.Hours {
		hour, err := sc.Schedule.SetWeeklyHours(uint(restaurantID), entry.Weekday, entry.OpenTime, entry.CloseTime)
		if err != nil {
			utils.RespondError(c, statusForError(err), err)
			return
		}
		saved = append(saved, *hour)
	}

	utils.InfoLogger.Printf("Weekly schedule updated for restaurant %d (%d rows)", restaurantID, len(saved))
	utils.RespondJSON(c, http.StatusOK, "Weekly schedule updated", saved)
}

// GetOverrides -> daftar special day
func (sc *ScheduleController) GetOverrides(c *gin.Context) {
	restaurantID := c.Param("restaurant_id")

	var overrides []models.ScheduleOverride
	if err := sc.DB.Where("restaurant_id = ?", restaurantID).Order("date").Find(&overrides).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Schedule overrides", overrides)
}

// CreateOverride -> tambah special day; 00:00-00:00 berarti tutup
func (sc *ScheduleController) CreateOverride(c *gin.Context) {
	restaurantID, err := strconv.Atoi(c.Param("restaurant_id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, fmt.Errorf("invalid restaurant id"))
		return
	}

	var req struct {
		Date      string `json:"date" binding:"required"`
		OpenTime  string `json:"open_time" binding:"required"`
		CloseTime string `json:"close_time" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	override, err := sc.Schedule.AddOverride(uint(restaurantID), req.Date, req.OpenTime, req.CloseTime)
	if err != nil {
		utils.RespondError(c, statusForError(err), err)
		return
	}

	utils.InfoLogger.Printf("Schedule override set: restaurant=%d %s %s-%s",
		restaurantID, override.Date, override.OpenTime, override.CloseTime)
	utils.RespondJSON(c, http.StatusCreated, "Schedule override created", override)
}

// DeleteOverride -> hapus special day, tanggal kembali ke jadwal mingguan
func (sc *ScheduleController) DeleteOverride(c *gin.Context) {
	restaurantID, err := strconv.Atoi(c.Param("restaurant_id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, fmt.Errorf("invalid restaurant id"))
		return
	}
	overrideID, err := strconv.Atoi(c.Param("override_id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, fmt.Errorf("invalid override id"))
		return
	}

	if err := sc.Schedule.RemoveOverride(uint(restaurantID), uint(overrideID)); err != nil {
		utils.RespondError(c, statusForError(err), err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Schedule override removed", gin.H{
		"id": overrideID,
	})
}
