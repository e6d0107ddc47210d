package models

import (
	"fmt"
	"time"
)

const (
	// Format tanggal dan jam yang dipakai di seluruh aplikasi
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"

	// SlotInterval is the booking granularity in minutes.
	SlotInterval = 30
)

// OperatingHour is one row of the weekly recurring schedule.
// Weekday follows time.Weekday (0 = Sunday).
type OperatingHour struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	RestaurantID uint   `gorm:"not null;uniqueIndex:idx_hours_restaurant_day" json:"restaurant_id"`
	Weekday      int    `gorm:"not null;uniqueIndex:idx_hours_restaurant_day" json:"weekday"`
	OpenTime     string `gorm:"type:varchar(5);not null" json:"open_time"`
	CloseTime    string `gorm:"type:varchar(5);not null" json:"close_time"`

	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

// ScheduleOverride replaces the weekly schedule for one calendar date.
// The 00:00-00:00 sentinel marks the day as closed, same as OperatingHour.
type ScheduleOverride struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	RestaurantID uint   `gorm:"not null;uniqueIndex:idx_override_restaurant_date" json:"restaurant_id"`
	Date         string `gorm:"type:varchar(10);not null;uniqueIndex:idx_override_restaurant_date" json:"date"`
	OpenTime     string `gorm:"type:varchar(5);not null" json:"open_time"`
	CloseTime    string `gorm:"type:varchar(5);not null" json:"close_time"`

	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

// OpenWindow adalah hasil resolve jadwal untuk satu tanggal.
type OpenWindow struct {
	OpenTime  string `json:"open_time"`
	CloseTime string `json:"close_time"`
}

// ClosedWindow is the sentinel window meaning "not open that day".
func ClosedWindow() OpenWindow {
	return OpenWindow{OpenTime: "00:00", CloseTime: "00:00"}
}

// IsClosed -> open sama dengan close berarti tutup, bukan buka 24 jam.
func (w OpenWindow) IsClosed() bool {
	return w.OpenTime == w.CloseTime
}

// Slots enumerates the bookable times inside the window at SlotInterval
// granularity. The closing time itself is not a seating. A close time
// earlier than the open time (e.g. 11:00-01:00) rolls past midnight.
func (w OpenWindow) Slots() []string {
	if w.IsClosed() {
		return nil
	}

	openMin, err := MinuteOfDay(w.OpenTime)
	if err != nil {
		return nil
	}
	closeMin, err := MinuteOfDay(w.CloseTime)
	if err != nil {
		return nil
	}
	if closeMin < openMin {
		closeMin += 24 * 60
	}

	var slots []string
	for m := openMin; m < closeMin; m += SlotInterval {
		slots = append(slots, formatMinute(m%(24*60)))
	}
	return slots
}

// Contains -> cek apakah jam tertentu ada di dalam window
func (w OpenWindow) Contains(timeSlot string) bool {
	for _, s := range w.Slots() {
		if s == timeSlot {
			return true
		}
	}
	return false
}

// MinuteOfDay parses "HH:MM" into minutes since midnight.
func MinuteOfDay(hhmm string) (int, error) {
	t, err := time.Parse(TimeLayout, hhmm)
	if err != nil {
		return 0, fmt.Errorf("invalid time %q: %w", hhmm, err)
	}
	return t.Hour()*60 + t.Minute(), nil
}

func formatMinute(m int) string {
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}

// ParseDate validates a "YYYY-MM-DD" date string.
func ParseDate(date string) (time.Time, error) {
	return time.Parse(DateLayout, date)
}
