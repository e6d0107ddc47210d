package services

import (
	"fmt"
	"sort"

	"github.com/yeremiapane/reservation-app/models"
	"gorm.io/gorm"
)

// TimeSlot adalah satu slot pada satu tanggal; Available dihitung ulang
// setiap query, tidak pernah disimpan.
type TimeSlot struct {
	Time      string `json:"time"`
	Available bool   `json:"available"`
}

type AvailabilityService struct {
	DB       *gorm.DB
	Schedule *ScheduleService
}

func NewAvailabilityService(db *gorm.DB, schedule *ScheduleService) *AvailabilityService {
	return &AvailabilityService{DB: db, Schedule: schedule}
}

// ListSlots mengembalikan seluruh slot dalam jam buka, dengan flag
// available per slot. Hari tutup menghasilkan slice kosong, bukan error.
func (s *AvailabilityService) ListSlots(restaurantID uint, date string, partySize int) ([]TimeSlot, error) {
	if err := validPartySize(partySize); err != nil {
		return nil, err
	}

	window, err := s.Schedule.ResolveHours(restaurantID, date)
	if err != nil {
		return nil, err
	}
	if window.IsClosed() {
		return []TimeSlot{}, nil
	}

	slots := make([]TimeSlot, 0)
	for _, at := range window.Slots() {
		tables, err := s.eligibleTables(restaurantID, date, at, partySize)
		if err != nil {
			return nil, err
		}
		slots = append(slots, TimeSlot{Time: at, Available: len(tables) > 0})
	}
	return slots, nil
}

// ListTables mengembalikan meja yang bisa dipilih pada satu slot,
// diurutkan: kapasitas terkecil yang masih muat dulu, lalu meja yang
// party size-nya masuk band [MinSeats, MinSeats+2].
func (s *AvailabilityService) ListTables(restaurantID uint, date, timeSlot string, partySize int) ([]models.Table, error) {
	if err := validPartySize(partySize); err != nil {
		return nil, err
	}

	window, err := s.Schedule.ResolveHours(restaurantID, date)
	if err != nil {
		return nil, err
	}
	if window.IsClosed() || !window.Contains(timeSlot) {
		return nil, fmt.Errorf("%w: %s %s is outside opening hours", models.ErrClosed, date, timeSlot)
	}

	tables, err := s.eligibleTables(restaurantID, date, timeSlot, partySize)
	if err != nil {
		return nil, err
	}

	rankTables(tables, partySize)
	return tables, nil
}

// eligibleTables: kapasitas cukup dan tuple (table, date, slot) belum
// ditempati reservasi pending/confirmed. Cancelled/completed melepas meja.
func (s *AvailabilityService) eligibleTables(restaurantID uint, date, timeSlot string, partySize int) ([]models.Table, error) {
	occupied := s.DB.Model(&models.Reservation{}).
		Select("table_id").
		Where("restaurant_id = ? AND date = ? AND time_slot = ? AND status IN ?",
			restaurantID, date, timeSlot, models.ActiveStatuses())

	var tables []models.Table
	err := s.DB.
		Where("restaurant_id = ? AND capacity >= ?", restaurantID, partySize).
		Where("id NOT IN (?)", occupied).
		Find(&tables).Error
	if err != nil {
		return nil, err
	}
	return tables, nil
}

// rankTables is advisory ordering only; every table in the slice stays
// selectable regardless of rank.
func rankTables(tables []models.Table, partySize int) {
	sort.SliceStable(tables, func(i, j int) bool {
		if tables[i].Capacity != tables[j].Capacity {
			return tables[i].Capacity < tables[j].Capacity
		}
		pi, pj := tables[i].PreferredFor(partySize), tables[j].PreferredFor(partySize)
		if pi != pj {
			return pi
		}
		return tables[i].ID < tables[j].ID
	})
}

func validPartySize(partySize int) error {
	if partySize < 1 {
		return fmt.Errorf("%w: party size must be at least 1", models.ErrValidation)
	}
	if partySize > models.MaxPartySize {
		return fmt.Errorf("%w: party size must be at most %d", models.ErrValidation, models.MaxPartySize)
	}
	return nil
}
