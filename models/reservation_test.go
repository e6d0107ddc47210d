package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	cases := []struct {
		name    string
		from    ReservationStatus
		to      ReservationStatus
		allowed bool
	}{
		{"pending to confirmed", StatusPending, StatusConfirmed, true},
		{"pending to cancelled", StatusPending, StatusCancelled, true},
		{"confirmed to cancelled", StatusConfirmed, StatusCancelled, true},
		{"confirmed to completed", StatusConfirmed, StatusCompleted, true},
		{"pending to completed", StatusPending, StatusCompleted, false},
		{"confirmed to pending", StatusConfirmed, StatusPending, false},
		{"cancelled is terminal", StatusCancelled, StatusPending, false},
		{"cancelled to confirmed", StatusCancelled, StatusConfirmed, false},
		{"completed is terminal", StatusCompleted, StatusCancelled, false},
		{"same status is not a transition", StatusPending, StatusPending, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.allowed, CanTransition(tc.from, tc.to))
		})
	}
}

func TestStatusHelpers(t *testing.T) {
	assert.True(t, StatusCancelled.IsTerminal())
	assert.True(t, StatusCompleted.IsTerminal())
	assert.False(t, StatusPending.IsTerminal())
	assert.False(t, StatusConfirmed.IsTerminal())

	assert.True(t, StatusPending.IsActive())
	assert.True(t, StatusConfirmed.IsActive())
	assert.False(t, StatusCancelled.IsActive())

	assert.True(t, ReservationStatus("confirmed").Valid())
	assert.False(t, ReservationStatus("seated").Valid())
}

func TestOpenWindowSlots(t *testing.T) {
	w := OpenWindow{OpenTime: "11:00", CloseTime: "13:00"}
	assert.Equal(t, []string{"11:00", "11:30", "12:00", "12:30"}, w.Slots())
	assert.True(t, w.Contains("12:30"))
	assert.False(t, w.Contains("13:00")) // closing time is not a seating

	// Sentinel 00:00-00:00 berarti tutup, bukan buka 24 jam
	closed := ClosedWindow()
	assert.True(t, closed.IsClosed())
	assert.Empty(t, closed.Slots())

	// Close melewati tengah malam
	late := OpenWindow{OpenTime: "23:00", CloseTime: "01:00"}
	assert.Equal(t, []string{"23:00", "23:30", "00:00", "00:30"}, late.Slots())
}
