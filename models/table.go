package models

import "time"

type Table struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	RestaurantID uint   `gorm:"not null;index" json:"restaurant_id"`
	Name         string `gorm:"type:varchar(50);not null" json:"name"`
	Capacity     int    `gorm:"not null" json:"capacity"`
	MinSeats     int    `gorm:"not null;default:1" json:"min_seats"`
	Location     string `gorm:"type:varchar(100)" json:"location"`

	// Posisi di floor plan, hanya untuk tampilan editor
	PosX int `gorm:"default:0" json:"pos_x"`
	PosY int `gorm:"default:0" json:"pos_y"`

	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

// FitsParty -> true jika meja muat untuk jumlah tamu
func (t *Table) FitsParty(partySize int) bool {
	return t.Capacity >= partySize
}

// PreferredFor reports whether the party size falls in the table's
// preferred band [MinSeats, MinSeats+2]. Used only for ranking.
func (t *Table) PreferredFor(partySize int) bool {
	return partySize >= t.MinSeats && partySize <= t.MinSeats+2
}
