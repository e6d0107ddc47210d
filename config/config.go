package config

import (
	"fmt"
	"os"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// InitDB membuka koneksi database sesuai env. DB_DRIVER=mysql butuh
// DB_DSN; selain itu fallback ke SQLite lokal (development).
func InitDB() (*gorm.DB, error) {
	driver := os.Getenv("DB_DRIVER")

	switch driver {
	case "mysql":
		dsn := os.Getenv("DB_DSN")
		if dsn == "" {
			return nil, fmt.Errorf("DB_DSN is required when DB_DRIVER=mysql")
		}
		return gorm.Open(mysql.Open(dsn), &gorm.Config{})
	case "sqlite", "":
		path := os.Getenv("DB_DSN")
		if path == "" {
			path = "reservation.db"
		}
		return gorm.Open(sqlite.Open(path), &gorm.Config{})
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", driver)
	}
}

// AutoConfirmReservations: kebijakan status awal reservasi. True berarti
// reservasi baru langsung confirmed tanpa approval staff.
func AutoConfirmReservations() bool {
	return os.Getenv("RESERVATION_AUTO_CONFIRM") == "true"
}
