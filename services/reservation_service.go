package services

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/yeremiapane/reservation-app/models"
	"github.com/yeremiapane/reservation-app/utils"
	"gorm.io/gorm"
)

// CreateReservationRequest adalah payload atomik dari booking wizard
// (atau langsung dari POST /reservations).
type CreateReservationRequest struct {
	RestaurantID   uint   `json:"restaurant_id" binding:"required"`
	TableID        uint   `json:"table_id" binding:"required"`
	Date           string `json:"date" binding:"required"`
	TimeSlot       string `json:"time_slot" binding:"required"`
	PartySize      int    `json:"party_size" binding:"required"`
	FirstName      string `json:"first_name" binding:"required"`
	LastName       string `json:"last_name" binding:"required"`
	Email          string `json:"email" binding:"required,email"`
	Phone          string `json:"phone" binding:"required"`
	SpecialRequest string `json:"special_request"`
}

type ReservationService struct {
	DB           *gorm.DB
	Availability *AvailabilityService

	// AutoConfirm: reservasi baru langsung confirmed, tanpa approval staff.
	// Kebijakan eksternal, bukan bagian dari state machine.
	AutoConfirm bool

	// Satu mutex per tuple (table, date, slot) supaya cek availability dan
	// insert berjalan sebagai satu unit. Map tidak pernah dibersihkan;
	// ukurannya dibatasi jumlah tuple yang pernah dibooking sejak start.
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewReservationService(db *gorm.DB, availability *AvailabilityService) *ReservationService {
	return &ReservationService{
		DB:           db,
		Availability: availability,
		locks:        make(map[string]*sync.Mutex),
	}
}

func (rs *ReservationService) tupleLock(tableID uint, date, timeSlot string) *sync.Mutex {
	key := fmt.Sprintf("%d|%s|%s", tableID, date, timeSlot)

	rs.mu.Lock()
	defer rs.mu.Unlock()

	lock, ok := rs.locks[key]
	if !ok {
		lock = &sync.Mutex{}
		rs.locks[key] = lock
	}
	return lock
}

// Create memvalidasi request lalu menulis reservasi baru. Availability
// dicek ulang di dalam transaksi (bukan hanya saat seleksi) supaya dua
// booking bersamaan untuk tuple yang sama tidak dua-duanya sukses.
func (rs *ReservationService) Create(req CreateReservationRequest) (*models.Reservation, error) {
	if err := rs.validate(&req); err != nil {
		return nil, err
	}

	window, err := rs.Availability.Schedule.ResolveHours(req.RestaurantID, req.Date)
	if err != nil {
		return nil, err
	}
	if window.IsClosed() || !window.Contains(req.TimeSlot) {
		return nil, fmt.Errorf("%w: %s %s is outside opening hours", models.ErrClosed, req.Date, req.TimeSlot)
	}

	lock := rs.tupleLock(req.TableID, req.Date, req.TimeSlot)
	lock.Lock()
	defer lock.Unlock()

	status := models.StatusPending
	if rs.AutoConfirm {
		status = models.StatusConfirmed
	}

	reservation := models.Reservation{
		Code:           uuid.NewString(),
		RestaurantID:   req.RestaurantID,
		TableID:        req.TableID,
		Date:           req.Date,
		TimeSlot:       req.TimeSlot,
		PartySize:      req.PartySize,
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		Email:          req.Email,
		Phone:          req.Phone,
		SpecialRequest: req.SpecialRequest,
		Status:         status,
	}

	err = rs.DB.Transaction(func(tx *gorm.DB) error {
		var table models.Table
		if err := tx.Where("restaurant_id = ?", req.RestaurantID).First(&table, req.TableID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: table %d not found", models.ErrValidation, req.TableID)
			}
			return err
		}
		if !table.FitsParty(req.PartySize) {
			return fmt.Errorf("%w: table %s seats %d, party is %d",
				models.ErrNoAvailability, table.Name, table.Capacity, req.PartySize)
		}

		var conflicting int64
		err := tx.Model(&models.Reservation{}).
			Where("table_id = ? AND date = ? AND time_slot = ? AND status IN ?",
				req.TableID, req.Date, req.TimeSlot, models.ActiveStatuses()).
			Count(&conflicting).Error
		if err != nil {
			return err
		}
		if conflicting > 0 {
			return fmt.Errorf("%w: table already booked for %s %s", models.ErrConflict, req.Date, req.TimeSlot)
		}

		return tx.Create(&reservation).Error
	})
	if err != nil {
		return nil, err
	}

	utils.InfoLogger.Printf("Reservation %s created: restaurant=%d table=%d %s %s party=%d status=%s",
		reservation.Code, reservation.RestaurantID, reservation.TableID,
		reservation.Date, reservation.TimeSlot, reservation.PartySize, reservation.Status)

	return &reservation, nil
}

// TransitionStatus menjalankan transisi lifecycle dengan optimistic
// concurrency: caller membawa expected status, dan update hanya terjadi
// bila status di database masih sama (compare-and-set).
func (rs *ReservationService) TransitionStatus(id uint, expected, next models.ReservationStatus) (*models.Reservation, error) {
	if !expected.Valid() || !next.Valid() {
		return nil, fmt.Errorf("%w: unknown status", models.ErrValidation)
	}

	var reservation models.Reservation
	if err := rs.DB.First(&reservation, id).Error; err != nil {
		return nil, err
	}

	if reservation.Status != expected {
		return nil, fmt.Errorf("%w: reservation is %s, expected %s",
			models.ErrConflict, reservation.Status, expected)
	}

	if !models.CanTransition(expected, next) {
		return nil, fmt.Errorf("%w: %s -> %s", models.ErrInvalidTransition, expected, next)
	}

	// Completed hanya boleh setelah jam reservasi lewat. Dicek di sini,
	// di tepi, bukan di dalam tabel transisi.
	if next == models.StatusCompleted {
		startsAt, err := reservation.StartsAt()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", models.ErrValidation, err)
		}
		if time.Now().Before(startsAt) {
			return nil, fmt.Errorf("%w: reservation time has not passed yet", models.ErrValidation)
		}
	}

	result := rs.DB.Model(&models.Reservation{}).
		Where("id = ? AND status = ?", id, expected).
		Update("status", next)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		// Status keburu berubah di antara read dan update
		return nil, fmt.Errorf("%w: reservation status changed concurrently", models.ErrConflict)
	}

	reservation.Status = next
	utils.InfoLogger.Printf("Reservation %s: %s -> %s", reservation.Code, expected, next)
	return &reservation, nil
}

// FindByCode mencari reservasi lewat kode publik (halaman konfirmasi).
func (rs *ReservationService) FindByCode(code string) (*models.Reservation, error) {
	var reservation models.Reservation
	err := rs.DB.Preload("Table").Where("code = ?", code).First(&reservation).Error
	if err != nil {
		return nil, err
	}
	return &reservation, nil
}

// List mengembalikan reservasi untuk sisi restoran, dengan filter
// opsional status dan tanggal (ala halaman Reservation Manager).
func (rs *ReservationService) List(restaurantID uint, status models.ReservationStatus, date string) ([]models.Reservation, error) {
	query := rs.DB.Preload("Table").Where("restaurant_id = ?", restaurantID)
	if status != "" {
		if !status.Valid() {
			return nil, fmt.Errorf("%w: unknown status %q", models.ErrValidation, status)
		}
		query = query.Where("status = ?", status)
	}
	if date != "" {
		query = query.Where("date = ?", date)
	}

	var reservations []models.Reservation
	if err := query.Order("date, time_slot").Find(&reservations).Error; err != nil {
		return nil, err
	}
	return reservations, nil
}

func (rs *ReservationService) validate(req *CreateReservationRequest) error {
	if _, err := models.ParseDate(req.Date); err != nil {
		return fmt.Errorf("%w: invalid date %q", models.ErrValidation, req.Date)
	}
	if err := validPartySize(req.PartySize); err != nil {
		return err
	}
	for field, value := range map[string]string{
		"first_name": req.FirstName,
		"last_name":  req.LastName,
		"email":      req.Email,
		"phone":      req.Phone,
	} {
		if strings.TrimSpace(value) == "" {
			return fmt.Errorf("%w: %s is required", models.ErrValidation, field)
		}
	}
	return nil
}
