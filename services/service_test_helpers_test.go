package services

import (
	"testing"

	"github.com/yeremiapane/reservation-app/models"
	"github.com/yeremiapane/reservation-app/utils"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupServiceTestDB -> SQLite in-memory + migrate semua model
func setupServiceTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	utils.InitLogger()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open in-memory sqlite: %v", err)
	}

	// Satu koneksi saja: tiap koneksi baru ke :memory: adalah database
	// kosong yang berbeda
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	err = db.AutoMigrate(
		&models.User{},
		&models.Restaurant{},
		&models.Table{},
		&models.OperatingHour{},
		&models.ScheduleOverride{},
		&models.Reservation{},
	)
	if err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return db
}

// seedRestaurant membuat restoran buka Senin-Minggu 11:00-22:00 dengan
// tiga meja (2, 4, 6 kursi)
func seedRestaurant(t *testing.T, db *gorm.DB) models.Restaurant {
	t.Helper()

	restaurant := models.Restaurant{Name: "Le Petit Bistro", Cuisine: "French"}
	if err := db.Create(&restaurant).Error; err != nil {
		t.Fatalf("failed to seed restaurant: %v", err)
	}

	for weekday := 0; weekday < 7; weekday++ {
		db.Create(&models.OperatingHour{
			RestaurantID: restaurant.ID,
			Weekday:      weekday,
			OpenTime:     "11:00",
			CloseTime:    "22:00",
		})
	}

	tables := []models.Table{
		{RestaurantID: restaurant.ID, Name: "T1", Capacity: 2, MinSeats: 1, Location: "Window"},
		{RestaurantID: restaurant.ID, Name: "T2", Capacity: 4, MinSeats: 2, Location: "Center"},
		{RestaurantID: restaurant.ID, Name: "T3", Capacity: 6, MinSeats: 4, Location: "Private Room"},
	}
	for i := range tables {
		if err := db.Create(&tables[i]).Error; err != nil {
			t.Fatalf("failed to seed table: %v", err)
		}
	}

	return restaurant
}

func tableByName(t *testing.T, db *gorm.DB, restaurantID uint, name string) models.Table {
	t.Helper()
	var table models.Table
	if err := db.Where("restaurant_id = ? AND name = ?", restaurantID, name).First(&table).Error; err != nil {
		t.Fatalf("table %s not found: %v", name, err)
	}
	return table
}
