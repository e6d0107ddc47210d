package services

import (
	"errors"
	"fmt"

	"github.com/yeremiapane/reservation-app/models"
	"gorm.io/gorm"
)

type ScheduleService struct {
	DB *gorm.DB
}

func NewScheduleService(db *gorm.DB) *ScheduleService {
	return &ScheduleService{DB: db}
}

// ResolveHours menentukan jam buka restoran pada satu tanggal.
// Override per tanggal menang mutlak atas jadwal mingguan. Tanggal yang
// tidak bisa di-resolve (weekday tidak punya entry) dianggap tutup,
// tidak pernah dianggap buka.
func (s *ScheduleService) ResolveHours(restaurantID uint, date string) (models.OpenWindow, error) {
	day, err := models.ParseDate(date)
	if err != nil {
		return models.ClosedWindow(), fmt.Errorf("%w: invalid date %q", models.ErrValidation, date)
	}

	var override models.ScheduleOverride
	err = s.DB.Where("restaurant_id = ? AND date = ?", restaurantID, date).First(&override).Error
	if err == nil {
		return models.OpenWindow{OpenTime: override.OpenTime, CloseTime: override.CloseTime}, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return models.ClosedWindow(), err
	}

	var hour models.OperatingHour
	err = s.DB.Where("restaurant_id = ? AND weekday = ?", restaurantID, int(day.Weekday())).First(&hour).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		// Tidak ada jadwal untuk hari ini -> tutup
		return models.ClosedWindow(), nil
	}
	if err != nil {
		return models.ClosedWindow(), err
	}

	return models.OpenWindow{OpenTime: hour.OpenTime, CloseTime: hour.CloseTime}, nil
}

// SetWeeklyHours replaces the weekly schedule row for one weekday.
func (s *ScheduleService) SetWeeklyHours(restaurantID uint, weekday int, open, close string) (*models.OperatingHour, error) {
	if weekday < 0 || weekday > 6 {
		return nil, fmt.Errorf("%w: weekday must be 0-6", models.ErrValidation)
	}
	if err := validTimePair(open, close); err != nil {
		return nil, err
	}

	var hour models.OperatingHour
	err := s.DB.Where("restaurant_id = ? AND weekday = ?", restaurantID, weekday).First(&hour).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		hour = models.OperatingHour{RestaurantID: restaurantID, Weekday: weekday}
	} else if err != nil {
		return nil, err
	}

	hour.OpenTime = open
	hour.CloseTime = close
	if err := s.DB.Save(&hour).Error; err != nil {
		return nil, err
	}
	return &hour, nil
}

// AddOverride membuat atau menimpa override untuk satu tanggal.
func (s *ScheduleService) AddOverride(restaurantID uint, date, open, close string) (*models.ScheduleOverride, error) {
	if _, err := models.ParseDate(date); err != nil {
		return nil, fmt.Errorf("%w: invalid date %q", models.ErrValidation, date)
	}
	if err := validTimePair(open, close); err != nil {
		return nil, err
	}

	var override models.ScheduleOverride
	err := s.DB.Where("restaurant_id = ? AND date = ?", restaurantID, date).First(&override).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		override = models.ScheduleOverride{RestaurantID: restaurantID, Date: date}
	} else if err != nil {
		return nil, err
	}

	override.OpenTime = open
	override.CloseTime = close
	if err := s.DB.Save(&override).Error; err != nil {
		return nil, err
	}
	return &override, nil
}

// RemoveOverride menghapus override; tanggal kembali ke jadwal mingguan.
func (s *ScheduleService) RemoveOverride(restaurantID uint, overrideID uint) error {
	result := s.DB.Where("restaurant_id = ?", restaurantID).Delete(&models.ScheduleOverride{}, overrideID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func validTimePair(open, close string) error {
	if _, err := models.MinuteOfDay(open); err != nil {
		return fmt.Errorf("%w: invalid open time %q", models.ErrValidation, open)
	}
	if _, err := models.MinuteOfDay(close); err != nil {
		return fmt.Errorf("%w: invalid close time %q", models.ErrValidation, close)
	}
	return nil
}
