package controllers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/reservation-app/models"
	"github.com/yeremiapane/reservation-app/utils"
	"gorm.io/gorm"
)

type TableController struct {
	DB *gorm.DB
}

func NewTableController(db *gorm.DB) *TableController {
	return &TableController{DB: db}
}

// CreateTable -> menambahkan meja baru ke restoran
func (tc *TableController) CreateTable(c *gin.Context) {
	restaurantID, err := strconv.Atoi(c.Param("restaurant_id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, fmt.Errorf("invalid restaurant id"))
		return
	}

	var req struct {
		Name     string `json:"name" binding:"required"`
		Capacity int    `json:"capacity" binding:"required"`
		MinSeats int    `json:"min_seats"`
		Location string `json:"location"`
		PosX     int    `json:"pos_x"`
		PosY     int    `json:"pos_y"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if req.Capacity < 1 {
		utils.RespondError(c, http.StatusBadRequest, fmt.Errorf("capacity must be at least 1"))
		return
	}
	if req.MinSeats == 0 {
		req.MinSeats = 1
	}
	if req.MinSeats > req.Capacity {
		utils.RespondError(c, http.StatusBadRequest, fmt.Errorf("min_seats cannot exceed capacity"))
		return
	}

	table := models.Table{
		RestaurantID: uint(restaurantID),
		Name:         req.Name,
		Capacity:     req.Capacity,
		MinSeats:     req.MinSeats,
		Location:     req.Location,
		PosX:         req.PosX,
		PosY:         req.PosY,
	}

	if err := tc.DB.Create(&table).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("New table created: %s (restaurant=%d, capacity=%d)", table.Name, table.RestaurantID, table.Capacity)
	utils.RespondJSON(c, http.StatusCreated, "Table created successfully", table)
}

// GetAllTables -> seluruh meja satu restoran
func (tc *TableController) GetAllTables(c *gin.Context) {
	restaurantID := c.Param("restaurant_id")

	var tables []models.Table
	if err := tc.DB.Where("restaurant_id = ?", restaurantID).Find(&tables).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of tables", tables)
}

// UpdateTable -> ubah kapasitas/lokasi meja
func (tc *TableController) UpdateTable(c *gin.Context) {
	tableID := c.Param("table_id")

	var table models.Table
	if err := tc.DB.First(&table, tableID).Error; err != nil {
		utils.RespondError(c, statusForError(err), err)
		return
	}

	var req struct {
		Name     *string `json:"name"`
		Capacity *int    `json:"capacity"`
		MinSeats *int    `json:"min_seats"`
		Location *string `json:"location"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if req.Name != nil {
		table.Name = *req.Name
	}
	if req.Capacity != nil {
		table.Capacity = *req.Capacity
	}
	if req.MinSeats != nil {
		table.MinSeats = *req.MinSeats
	}
	if req.Location != nil {
		table.Location = *req.Location
	}

	if table.Capacity < 1 {
		utils.RespondError(c, http.StatusBadRequest, fmt.Errorf("capacity must be at least 1"))
		return
	}
	if table.MinSeats > table.Capacity {
		utils.RespondError(c, http.StatusBadRequest, fmt.Errorf("min_seats cannot exceed capacity"))
		return
	}

	if err := tc.DB.Save(&table).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("Table %d updated (capacity=%d, min_seats=%d)", table.ID, table.Capacity, table.MinSeats)
	utils.RespondJSON(c, http.StatusOK, "Table updated", table)
}

// UpdateTablePosition -> posisi floor plan; murni tampilan, tidak
// berpengaruh ke availability
func (tc *TableController) UpdateTablePosition(c *gin.Context) {
	tableID := c.Param("table_id")

	var req struct {
		PosX int `json:"pos_x"`
		PosY int `json:"pos_y"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var table models.Table
	if err := tc.DB.First(&table, tableID).Error; err != nil {
		utils.RespondError(c, statusForError(err), err)
		return
	}

	table.PosX = req.PosX
	table.PosY = req.PosY
	if err := tc.DB.Save(&table).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Table position updated", table)
}

// DeleteTable -> menghapus meja
func (tc *TableController) DeleteTable(c *gin.Context) {
	tableID := c.Param("table_id")
	var table models.Table

	if err := tc.DB.First(&table, tableID).Error; err != nil {
		utils.RespondError(c, statusForError(err), err)
		return
	}

	// Meja dengan reservasi aktif tidak boleh dihapus
	var active int64
	err := tc.DB.Model(&models.Reservation{}).
		Where("table_id = ? AND status IN ?", table.ID, models.ActiveStatuses()).
		Count(&active).Error
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	if active > 0 {
		utils.RespondError(c, http.StatusConflict, fmt.Errorf("table has active reservations"))
		return
	}

	if err := tc.DB.Delete(&table).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("Table %d deleted", table.ID)
	utils.RespondJSON(c, http.StatusOK, "Table deleted", gin.H{
		"id": table.ID,
	})
}
