package testutils

import (
	"testing"

	"turnos-backend/internal/database/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// TurnoFactory builds and persists turno rows for tests.
type TurnoFactory struct {
	db *gorm.DB
}

func NewTurnoFactory(db *gorm.DB) *TurnoFactory {
	return &TurnoFactory{db: db}
}

// TurnoOption mutates a turno before it is persisted.
type TurnoOption func(*models.Turno)

func WithPersonID(personID string) TurnoOption {
	return func(t *models.Turno) { t.PersonID = &personID }
}

func WithShift(shiftType models.ShiftType, start, end string) TurnoOption {
	return func(t *models.Turno) {
		t.ShiftType = shiftType
		t.StartTime = &start
		t.EndTime = &end
	}
}

func WithVacation() TurnoOption {
	return func(t *models.Turno) {
		t.IsVacation = true
		t.ShiftType = ""
		t.StartTime = nil
		t.EndTime = nil
	}
}

func WithNotes(notes string) TurnoOption {
	return func(t *models.Turno) { t.Notes = notes }
}

// Create persists a morning turno for the given date, applying any options.
func (f *TurnoFactory) Create(t *testing.T, date string, opts ...TurnoOption) *models.Turno {
	t.Helper()

	turno := &models.Turno{
		ID:        uuid.New(),
		Date:      date,
		ShiftType: models.ShiftTypeMorning,
	}
	for _, opt := range opts {
		opt(turno)
	}

	require.NoError(t, f.db.Create(turno).Error)
	return turno
}

// Build returns an unsaved turno, useful for request payload construction.
func (f *TurnoFactory) Build(date string, opts ...TurnoOption) *models.Turno {
	turno := &models.Turno{
		Date:      date,
		ShiftType: models.ShiftTypeMorning,
	}
	for _, opt := range opts {
		opt(turno)
	}
	return turno
}
