package repository

import (
	"turnos-backend/internal/database/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// ShiftStats aggregates record counts over a date range
type ShiftStats struct {
	Total            int64                      `json:"total"`
	CountByShiftType map[models.ShiftType]int64 `json:"count_by_shift_type"`
	VacationCount    int64                      `json:"vacation_count"`
}

// TurnoRepository is the storage port for turno records. Backends are
// interchangeable: Postgres for normal operation, a read-only file
// snapshot for offline/dev use.
type TurnoRepository interface {
	// FindByKey returns the record at (date, personID) or ErrTurnoNotFound
	FindByKey(date string, personID *string) (*models.Turno, error)

	// FindByRange returns records with date in [from, to], filtered by
	// person when set, ordered by date ascending unless descending is true
	FindByRange(from, to string, personID *string, descending bool) ([]models.Turno, error)

	// Create inserts a new record
	Create(turno *models.Turno) error

	// Update replaces an existing record
	Update(turno *models.Turno) error

	// Delete removes the record at (date, personID)
	Delete(date string, personID *string) error

	// Upsert performs a read-then-create-or-replace at the record's key,
	// preserving CreatedAt on replace. It reports whether a new record
	// was created and returns the stored record.
	Upsert(turno *models.Turno) (created bool, stored *models.Turno, err error)

	// Stats aggregates counts over [from, to]; empty bounds are open
	Stats(from, to string) (*ShiftStats, error)

	// DeleteOlderThan removes records with date strictly before the cutoff
	// and returns the number deleted
	DeleteOlderThan(date string) (int64, error)
}
