package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/yeremiapane/reservation-app/models"
)

func TestListSlotsOpenDay(t *testing.T) {
	db := setupServiceTestDB(t)
	restaurant := seedRestaurant(t, db)
	svc := NewAvailabilityService(db, NewScheduleService(db))

	slots, err := svc.ListSlots(restaurant.ID, "2023-12-18", 2)
	assert.NoError(t, err)

	// 11:00 - 22:00 dengan interval 30 menit = 22 slot
	assert.Len(t, slots, 22)
	assert.Equal(t, "11:00", slots[0].Time)
	assert.Equal(t, "21:30", slots[len(slots)-1].Time)
	for _, slot := range slots {
		assert.True(t, slot.Available)
	}
}

func TestListSlotsClosedDateReturnsEmpty(t *testing.T) {
	db := setupServiceTestDB(t)
	restaurant := seedRestaurant(t, db)
	schedule := NewScheduleService(db)
	svc := NewAvailabilityService(db, schedule)

	// Override tutup Natal (00:00-00:00) walaupun jadwal mingguan buka
	_, err := schedule.AddOverride(restaurant.ID, "2023-12-25", "00:00", "00:00")
	assert.NoError(t, err)

	slots, err := svc.ListSlots(restaurant.ID, "2023-12-25", 2)
	assert.NoError(t, err)
	assert.Empty(t, slots)
}

func TestListSlotsIdempotent(t *testing.T) {
	db := setupServiceTestDB(t)
	restaurant := seedRestaurant(t, db)
	svc := NewAvailabilityService(db, NewScheduleService(db))

	first, err := svc.ListSlots(restaurant.ID, "2023-12-18", 4)
	assert.NoError(t, err)
	second, err := svc.ListSlots(restaurant.ID, "2023-12-18", 4)
	assert.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestListTablesRanking(t *testing.T) {
	db := setupServiceTestDB(t)
	restaurant := seedRestaurant(t, db)
	svc := NewAvailabilityService(db, NewScheduleService(db))

	// Party 4: T1 (cap 2) tersaring, T2 (cap 4) di depan T3 (cap 6)
	tables, err := svc.ListTables(restaurant.ID, "2023-12-18", "19:00", 4)
	assert.NoError(t, err)
	assert.Len(t, tables, 2)
	assert.Equal(t, "T2", tables[0].Name)
	assert.Equal(t, "T3", tables[1].Name)
}

func TestListTablesPreferredBandTieBreak(t *testing.T) {
	db := setupServiceTestDB(t)
	restaurant := seedRestaurant(t, db)
	svc := NewAvailabilityService(db, NewScheduleService(db))

	// Dua meja kapasitas sama; yang band [MinSeats, MinSeats+2]-nya
	// memuat party harus di depan
	db.Create(&models.Table{RestaurantID: restaurant.ID, Name: "T4", Capacity: 8, MinSeats: 6})
	db.Create(&models.Table{RestaurantID: restaurant.ID, Name: "T5", Capacity: 8, MinSeats: 2})

	tables, err := svc.ListTables(restaurant.ID, "2023-12-18", "19:00", 7)
	assert.NoError(t, err)
	assert.Len(t, tables, 2)
	assert.Equal(t, "T4", tables[0].Name) // 7 masuk [6,8]
	assert.Equal(t, "T5", tables[1].Name) // 7 di luar [2,4], tetap selectable
}

func TestListTablesExcludesOccupied(t *testing.T) {
	db := setupServiceTestDB(t)
	restaurant := seedRestaurant(t, db)
	svc := NewAvailabilityService(db, NewScheduleService(db))
	t2 := tableByName(t, db, restaurant.ID, "T2")

	db.Create(&models.Reservation{
		Code: "res-test-1", RestaurantID: restaurant.ID, TableID: t2.ID,
		Date: "2023-12-18", TimeSlot: "19:00", PartySize: 4,
		FirstName: "John", LastName: "Smith", Email: "john@example.com", Phone: "555",
		Status: models.StatusConfirmed,
	})

	tables, err := svc.ListTables(restaurant.ID, "2023-12-18", "19:00", 4)
	assert.NoError(t, err)
	assert.Len(t, tables, 1)
	assert.Equal(t, "T3", tables[0].Name)

	// Slot lain tidak terpengaruh
	tables, err = svc.ListTables(restaurant.ID, "2023-12-18", "19:30", 4)
	assert.NoError(t, err)
	assert.Len(t, tables, 2)
}

func TestListTablesCancelledFreesTable(t *testing.T) {
	db := setupServiceTestDB(t)
	restaurant := seedRestaurant(t, db)
	svc := NewAvailabilityService(db, NewScheduleService(db))
	t2 := tableByName(t, db, restaurant.ID, "T2")

	db.Create(&models.Reservation{
		Code: "res-test-2", RestaurantID: restaurant.ID, TableID: t2.ID,
		Date: "2023-12-18", TimeSlot: "19:00", PartySize: 4,
		FirstName: "Emma", LastName: "Johnson", Email: "emma@example.com", Phone: "555",
		Status: models.StatusCancelled,
	})

	tables, err := svc.ListTables(restaurant.ID, "2023-12-18", "19:00", 4)
	assert.NoError(t, err)
	assert.Len(t, tables, 2) // cancelled melepas meja
}

func TestListTablesOutsideHours(t *testing.T) {
	db := setupServiceTestDB(t)
	restaurant := seedRestaurant(t, db)
	svc := NewAvailabilityService(db, NewScheduleService(db))

	_, err := svc.ListTables(restaurant.ID, "2023-12-18", "09:00", 2)
	assert.ErrorIs(t, err, models.ErrClosed)
}

func TestListSlotsPartySizeValidation(t *testing.T) {
	db := setupServiceTestDB(t)
	restaurant := seedRestaurant(t, db)
	svc := NewAvailabilityService(db, NewScheduleService(db))

	_, err := svc.ListSlots(restaurant.ID, "2023-12-18", 0)
	assert.ErrorIs(t, err, models.ErrValidation)

	_, err = svc.ListSlots(restaurant.ID, "2023-12-18", models.MaxPartySize+1)
	assert.ErrorIs(t, err, models.ErrValidation)
}

func TestListSlotsUnavailableWhenNoTableFits(t *testing.T) {
	db := setupServiceTestDB(t)
	restaurant := seedRestaurant(t, db)
	svc := NewAvailabilityService(db, NewScheduleService(db))

	// Party 10 tidak muat di meja manapun -> semua slot unavailable
	slots, err := svc.ListSlots(restaurant.ID, "2023-12-18", 10)
	assert.NoError(t, err)
	assert.Len(t, slots, 22)
	for _, slot := range slots {
		assert.False(t, slot.Available)
	}
}
