package services

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/yeremiapane/reservation-app/models"
)

// BookingStep adalah posisi wizard. Mundur selalu boleh; maju hanya
// dari step yang sudah lengkap.
type BookingStep int

const (
	StepDateParty BookingStep = iota + 1
	StepTime
	StepTable
	StepContact
)

func (s BookingStep) String() string {
	switch s {
	case StepDateParty:
		return "date_party"
	case StepTime:
		return "time"
	case StepTable:
		return "table"
	case StepContact:
		return "contact"
	}
	return "unknown"
}

// BookingHorizonDays: tanggal yang ditawarkan wizard, mulai hari ini.
const BookingHorizonDays = 14

// BookingSession menyimpan state wizard per calon tamu. Hidup di memori;
// reservasi final baru ditulis ke database saat step contact selesai.
type BookingSession struct {
	ID           string      `json:"id"`
	RestaurantID uint        `json:"restaurant_id"`
	Step         BookingStep `json:"step"`

	Date      string `json:"date,omitempty"`
	PartySize int    `json:"party_size,omitempty"`
	TimeSlot  string `json:"time_slot,omitempty"`
	TableID   uint   `json:"table_id,omitempty"`

	Completed       bool   `json:"completed"`
	ReservationCode string `json:"reservation_code,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

type ContactDetails struct {
	FirstName      string `json:"first_name"`
	LastName       string `json:"last_name"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	SpecialRequest string `json:"special_request"`
}

type BookingService struct {
	Availability *AvailabilityService
	Reservations *ReservationService

	mu       sync.Mutex
	sessions map[string]*BookingSession
}

func NewBookingService(availability *AvailabilityService, reservations *ReservationService) *BookingService {
	return &BookingService{
		Availability: availability,
		Reservations: reservations,
		sessions:     make(map[string]*BookingSession),
	}
}

// StartSession membuka wizard baru di step pertama.
func (bs *BookingService) StartSession(restaurantID uint) *BookingSession {
	session := &BookingSession{
		ID:           uuid.NewString(),
		RestaurantID: restaurantID,
		Step:         StepDateParty,
		CreatedAt:    time.Now(),
	}

	bs.mu.Lock()
	bs.sessions[session.ID] = session
	bs.mu.Unlock()

	return session
}

func (bs *BookingService) GetSession(id string) (*BookingSession, error) {
	bs.mu.Lock()
	defer bs.mu.Unlock()

	session, ok := bs.sessions[id]
	if !ok {
		return nil, fmt.Errorf("%w: booking session %s not found", models.ErrValidation, id)
	}
	copied := *session
	return &copied, nil
}

// BookingDates: daftar tanggal yang ditawarkan di step pertama.
func (bs *BookingService) BookingDates() []string {
	dates := make([]string, 0, BookingHorizonDays)
	today := time.Now()
	for i := 0; i < BookingHorizonDays; i++ {
		dates = append(dates, today.AddDate(0, 0, i).Format(models.DateLayout))
	}
	return dates
}

// SubmitDateParty mengisi step 1. Mengulang step ini (revisit) mereset
// pilihan waktu dan meja karena keduanya tergantung tanggal/party size.
func (bs *BookingService) SubmitDateParty(id, date string, partySize int) (*BookingSession, error) {
	if _, err := models.ParseDate(date); err != nil {
		return nil, fmt.Errorf("%w: invalid date %q", models.ErrValidation, date)
	}
	if err := validPartySize(partySize); err != nil {
		return nil, err
	}

	return bs.update(id, func(session *BookingSession) error {
		session.Date = date
		session.PartySize = partySize
		session.TimeSlot = ""
		session.TableID = 0
		session.Step = StepTime
		return nil
	})
}

// SubmitTime mengisi step 2; slot harus berasal dari ListSlots dan
// berstatus available. Kalau tidak ada slot sama sekali, advancement
// diblok dengan ErrNoAvailability.
func (bs *BookingService) SubmitTime(id, timeSlot string) (*BookingSession, error) {
	return bs.update(id, func(session *BookingSession) error {
		if session.Step < StepTime {
			return fmt.Errorf("%w: select date and party size first", models.ErrValidation)
		}

		slots, err := bs.Availability.ListSlots(session.RestaurantID, session.Date, session.PartySize)
		if err != nil {
			return err
		}
		if len(slots) == 0 {
			return fmt.Errorf("%w: restaurant is not open on %s", models.ErrClosed, session.Date)
		}

		for _, slot := range slots {
			if slot.Time == timeSlot {
				if !slot.Available {
					return fmt.Errorf("%w: no table free at %s", models.ErrNoAvailability, timeSlot)
				}
				session.TimeSlot = timeSlot
				session.TableID = 0
				session.Step = StepTable
				return nil
			}
		}
		return fmt.Errorf("%w: %s is not a bookable slot", models.ErrValidation, timeSlot)
	})
}

// SubmitTable mengisi step 3; meja harus ada di hasil ListTables.
func (bs *BookingService) SubmitTable(id string, tableID uint) (*BookingSession, error) {
	return bs.update(id, func(session *BookingSession) error {
		if session.Step < StepTable {
			return fmt.Errorf("%w: select a time first", models.ErrValidation)
		}

		tables, err := bs.Availability.ListTables(session.RestaurantID, session.Date, session.TimeSlot, session.PartySize)
		if err != nil {
			return err
		}
		if len(tables) == 0 {
			return fmt.Errorf("%w: no table fits a party of %d at %s",
				models.ErrNoAvailability, session.PartySize, session.TimeSlot)
		}

		for _, table := range tables {
			if table.ID == tableID {
				session.TableID = tableID
				session.Step = StepContact
				return nil
			}
		}
		return fmt.Errorf("%w: table %d is not available for this slot", models.ErrValidation, tableID)
	})
}

// SubmitContact menutup wizard: validasi kontak, lalu emit satu request
// create-reservation atomik. Availability dicek ulang oleh
// ReservationService, bukan hanya saat seleksi.
func (bs *BookingService) SubmitContact(id string, contact ContactDetails) (*models.Reservation, error) {
	session, err := bs.GetSession(id)
	if err != nil {
		return nil, err
	}
	if session.Completed {
		return nil, fmt.Errorf("%w: booking session already completed", models.ErrValidation)
	}
	if session.Step < StepContact {
		return nil, fmt.Errorf("%w: select a table first", models.ErrValidation)
	}

	reservation, err := bs.Reservations.Create(CreateReservationRequest{
		RestaurantID:   session.RestaurantID,
		TableID:        session.TableID,
		Date:           session.Date,
		TimeSlot:       session.TimeSlot,
		PartySize:      session.PartySize,
		FirstName:      strings.TrimSpace(contact.FirstName),
		LastName:       strings.TrimSpace(contact.LastName),
		Email:          strings.TrimSpace(contact.Email),
		Phone:          strings.TrimSpace(contact.Phone),
		SpecialRequest: contact.SpecialRequest,
	})
	if err != nil {
		return nil, err
	}

	if _, err := bs.update(id, func(s *BookingSession) error {
		s.Completed = true
		s.ReservationCode = reservation.Code
		return nil
	}); err != nil {
		return nil, err
	}

	return reservation, nil
}

// Back mundur satu step. Step yang sudah selesai boleh dikunjungi lagi.
func (bs *BookingService) Back(id string) (*BookingSession, error) {
	return bs.update(id, func(session *BookingSession) error {
		if session.Completed {
			return fmt.Errorf("%w: booking session already completed", models.ErrValidation)
		}
		if session.Step > StepDateParty {
			session.Step--
		}
		return nil
	})
}

func (bs *BookingService) update(id string, fn func(*BookingSession) error) (*BookingSession, error) {
	bs.mu.Lock()
	defer bs.mu.Unlock()

	session, ok := bs.sessions[id]
	if !ok {
		return nil, fmt.Errorf("%w: booking session %s not found", models.ErrValidation, id)
	}
	if err := fn(session); err != nil {
		return nil, err
	}
	copied := *session
	return &copied, nil
}
