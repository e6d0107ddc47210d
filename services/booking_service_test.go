package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/yeremiapane/reservation-app/models"
	"gorm.io/gorm"
)

func newBookingStack(t *testing.T) (*gorm.DB, models.Restaurant, *BookingService) {
	t.Helper()
	db := setupServiceTestDB(t)
	restaurant := seedRestaurant(t, db)
	availability := NewAvailabilityService(db, NewScheduleService(db))
	reservations := NewReservationService(db, availability)
	return db, restaurant, NewBookingService(availability, reservations)
}

func TestBookingWizardHappyPath(t *testing.T) {
	db, restaurant, svc := newBookingStack(t)
	t2 := tableByName(t, db, restaurant.ID, "T2")

	session := svc.StartSession(restaurant.ID)
	assert.Equal(t, StepDateParty, session.Step)
	assert.Len(t, svc.BookingDates(), BookingHorizonDays)

	session, err := svc.SubmitDateParty(session.ID, "2023-12-18", 4)
	assert.NoError(t, err)
	assert.Equal(t, StepTime, session.Step)

	session, err = svc.SubmitTime(session.ID, "19:00")
	assert.NoError(t, err)
	assert.Equal(t, StepTable, session.Step)

	session, err = svc.SubmitTable(session.ID, t2.ID)
	assert.NoError(t, err)
	assert.Equal(t, StepContact, session.Step)

	reservation, err := svc.SubmitContact(session.ID, ContactDetails{
		FirstName: "John",
		LastName:  "Smith",
		Email:     "john.smith@example.com",
		Phone:     "+1 (555) 123-4567",
	})
	assert.NoError(t, err)
	assert.Equal(t, models.StatusPending, reservation.Status)
	assert.Equal(t, t2.ID, reservation.TableID)

	session, err = svc.GetSession(session.ID)
	assert.NoError(t, err)
	assert.True(t, session.Completed)
	assert.Equal(t, reservation.Code, session.ReservationCode)
}

func TestBookingWizardForwardGates(t *testing.T) {
	_, restaurant, svc := newBookingStack(t)

	session := svc.StartSession(restaurant.ID)

	// Tidak boleh loncat ke step berikutnya sebelum step sebelumnya lengkap
	_, err := svc.SubmitTime(session.ID, "19:00")
	assert.ErrorIs(t, err, models.ErrValidation)

	_, err = svc.SubmitTable(session.ID, 1)
	assert.ErrorIs(t, err, models.ErrValidation)

	_, err = svc.SubmitContact(session.ID, ContactDetails{FirstName: "John"})
	assert.ErrorIs(t, err, models.ErrValidation)

	// Step 1 dengan data invalid juga tidak maju
	_, err = svc.SubmitDateParty(session.ID, "", 2)
	assert.ErrorIs(t, err, models.ErrValidation)

	_, err = svc.SubmitDateParty(session.ID, "2023-12-18", 0)
	assert.ErrorIs(t, err, models.ErrValidation)
}

func TestBookingWizardClosedDateBlocksTimeStep(t *testing.T) {
	_, restaurant, svc := newBookingStack(t)

	_, err := svc.Availability.Schedule.AddOverride(restaurant.ID, "2023-12-25", "00:00", "00:00")
	assert.NoError(t, err)

	session := svc.StartSession(restaurant.ID)
	_, err = svc.SubmitDateParty(session.ID, "2023-12-25", 2)
	assert.NoError(t, err) // tanggal sendiri valid

	// Tidak ada slot -> advancement diblok, bukan pilihan invalid
	_, err = svc.SubmitTime(session.ID, "19:00")
	assert.ErrorIs(t, err, models.ErrClosed)
}

func TestBookingWizardUnavailableSlotRejected(t *testing.T) {
	db, restaurant, svc := newBookingStack(t)
	t3 := tableByName(t, db, restaurant.ID, "T3")

	// Party 6 hanya muat di T3; kalau T3 terisi, slot 19:00 unavailable
	db.Create(&models.Reservation{
		Code: "res-occupied", RestaurantID: restaurant.ID, TableID: t3.ID,
		Date: "2023-12-18", TimeSlot: "19:00", PartySize: 6,
		FirstName: "Emma", LastName: "Johnson", Email: "emma@example.com", Phone: "555",
		Status: models.StatusConfirmed,
	})

	session := svc.StartSession(restaurant.ID)
	_, err := svc.SubmitDateParty(session.ID, "2023-12-18", 6)
	assert.NoError(t, err)

	_, err = svc.SubmitTime(session.ID, "19:00")
	assert.ErrorIs(t, err, models.ErrNoAvailability)

	// Slot lain masih bisa
	_, err = svc.SubmitTime(session.ID, "19:30")
	assert.NoError(t, err)
}

func TestBookingWizardBackAndRevisit(t *testing.T) {
	db, restaurant, svc := newBookingStack(t)
	t2 := tableByName(t, db, restaurant.ID, "T2")

	session := svc.StartSession(restaurant.ID)
	_, err := svc.SubmitDateParty(session.ID, "2023-12-18", 4)
	assert.NoError(t, err)
	_, err = svc.SubmitTime(session.ID, "19:00")
	assert.NoError(t, err)
	_, err = svc.SubmitTable(session.ID, t2.ID)
	assert.NoError(t, err)

	// Mundur selalu boleh
	session, err = svc.Back(session.ID)
	assert.NoError(t, err)
	assert.Equal(t, StepTable, session.Step)

	// Mengulang step 1 mereset pilihan waktu dan meja
	session, err = svc.SubmitDateParty(session.ID, "2023-12-19", 2)
	assert.NoError(t, err)
	assert.Equal(t, StepTime, session.Step)
	assert.Empty(t, session.TimeSlot)
	assert.Zero(t, session.TableID)
}

func TestBookingWizardTableNotInList(t *testing.T) {
	_, restaurant, svc := newBookingStack(t)

	session := svc.StartSession(restaurant.ID)
	_, err := svc.SubmitDateParty(session.ID, "2023-12-18", 4)
	assert.NoError(t, err)
	_, err = svc.SubmitTime(session.ID, "19:00")
	assert.NoError(t, err)

	// T1 (cap 2) bukan kandidat untuk party 4
	_, err = svc.SubmitTable(session.ID, 999)
	assert.ErrorIs(t, err, models.ErrValidation)
}

func TestBookingWizardUnknownSession(t *testing.T) {
	_, _, svc := newBookingStack(t)

	_, err := svc.GetSession("missing")
	assert.ErrorIs(t, err, models.ErrValidation)

	_, err = svc.SubmitDateParty("missing", "2023-12-18", 2)
	assert.ErrorIs(t, err, models.ErrValidation)
}
