package models

import "time"

// MaxPartySize is a sanity cap on the booking form, not a hard domain
// limit; no table in practice seats more anyway.
const MaxPartySize = 20

// ReservationStatus is a closed enumeration; transitions go through
// CanTransition, never by assigning the field directly at call sites.
type ReservationStatus string

const (
	StatusPending   ReservationStatus = "pending"
	StatusConfirmed ReservationStatus = "confirmed"
	StatusCancelled ReservationStatus = "cancelled"
	StatusCompleted ReservationStatus = "completed"
)

// statusTransitions memetakan transisi yang sah per status asal.
// Status terminal (cancelled/completed) tidak punya entry.
var statusTransitions = map[ReservationStatus][]ReservationStatus{
	StatusPending:   {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusCancelled, StatusCompleted},
}

// Valid reports whether s is one of the known statuses.
func (s ReservationStatus) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted:
		return true
	}
	return false
}

// IsTerminal -> tidak ada transisi keluar dari status ini.
func (s ReservationStatus) IsTerminal() bool {
	return s == StatusCancelled || s == StatusCompleted
}

// IsActive reports whether the reservation still occupies its table slot.
func (s ReservationStatus) IsActive() bool {
	return s == StatusPending || s == StatusConfirmed
}

// CanTransition checks the lifecycle table for a legal edge from -> to.
func CanTransition(from, to ReservationStatus) bool {
	for _, next := range statusTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// ActiveStatuses are the statuses that block a (table, date, slot) tuple.
func ActiveStatuses() []ReservationStatus {
	return []ReservationStatus{StatusPending, StatusConfirmed}
}

type Reservation struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	Code         string     `gorm:"type:varchar(36);uniqueIndex;not null" json:"code"`
	RestaurantID uint       `gorm:"not null;index" json:"restaurant_id"`
	Restaurant   Restaurant `gorm:"foreignKey:RestaurantID" json:"-"`
	TableID      uint       `gorm:"not null;index:idx_reservation_tuple" json:"table_id"`
	Table        Table      `gorm:"foreignKey:TableID" json:"table,omitempty"`

	Date     string `gorm:"type:varchar(10);not null;index:idx_reservation_tuple" json:"date"`
	TimeSlot string `gorm:"type:varchar(5);not null;index:idx_reservation_tuple" json:"time_slot"`

	PartySize int `gorm:"not null" json:"party_size"`

	FirstName      string `gorm:"type:varchar(100);not null" json:"first_name"`
	LastName       string `gorm:"type:varchar(100);not null" json:"last_name"`
	Email          string `gorm:"type:varchar(255);not null" json:"email"`
	Phone          string `gorm:"type:varchar(50);not null" json:"phone"`
	SpecialRequest string `gorm:"type:text" json:"special_request,omitempty"`

	Status ReservationStatus `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`

	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

// StartsAt menggabungkan tanggal dan slot menjadi time.Time lokal.
func (r *Reservation) StartsAt() (time.Time, error) {
	return time.ParseInLocation(DateLayout+" "+TimeLayout, r.Date+" "+r.TimeSlot, time.Local)
}
