package models

import "errors"

// Error kinds untuk booking core. Controller memetakan kind ini ke
// HTTP status; service membungkus dengan fmt.Errorf("%w: ...").
var (
	// ErrValidation: request malformed (tanggal kosong, party size <= 0, dst).
	ErrValidation = errors.New("validation failed")

	// ErrClosed: restoran tutup pada tanggal/slot yang diminta.
	ErrClosed = errors.New("restaurant is closed")

	// ErrNoAvailability: tidak ada meja yang muat pada slot tersebut.
	ErrNoAvailability = errors.New("no availability")

	// ErrConflict: tuple (table, date, slot) keburu terisi, atau
	// expected status tidak cocok saat transisi.
	ErrConflict = errors.New("conflict")

	// ErrInvalidTransition: transisi status di luar tabel lifecycle.
	ErrInvalidTransition = errors.New("invalid status transition")
)
