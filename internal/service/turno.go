package service

import (
	"time"

	"turnos-backend/internal/database/models"
	"turnos-backend/internal/dates"
	apperrors "turnos-backend/internal/errors"
	"turnos-backend/internal/repository"

	"github.com/go-playground/validator/v10"
)

// TurnoService handles business logic for turno records
type TurnoService struct {
	repo      repository.TurnoRepository
	calendar  *dates.Calendar
	validator *validator.Validate
}

// NewTurnoService creates a new turno service
func NewTurnoService(repo repository.TurnoRepository, calendar *dates.Calendar, validator *validator.Validate) *TurnoService {
	return &TurnoService{
		repo:      repo,
		calendar:  calendar,
		validator: validator,
	}
}

// UpsertTurnoRequest represents the request to create or replace a turno
type UpsertTurnoRequest struct {
	Date       string  `json:"date" validate:"required"`
	PersonID   *string `json:"person_id,omitempty" validate:"omitempty,max=64"`
	ShiftType  string  `json:"shift_type,omitempty"`
	StartTime  *string `json:"start_time,omitempty"`
	EndTime    *string `json:"end_time,omitempty"`
	IsVacation bool    `json:"is_vacation"`
	Notes      string  `json:"notes" validate:"max=500"`
}

// TurnoResponse represents the response for turno operations
type TurnoResponse struct {
	ID         string           `json:"id"`
	Date       string           `json:"date"`
	ShiftType  models.ShiftType `json:"shift_type,omitempty"`
	StartTime  *string          `json:"start_time,omitempty"`
	EndTime    *string          `json:"end_time,omitempty"`
	IsVacation bool             `json:"is_vacation"`
	Notes      string           `json:"notes"`
	PersonID   *string          `json:"person_id,omitempty"`
	CreatedAt  string           `json:"created_at"`
	UpdatedAt  string           `json:"updated_at"`
}

// TurnoListResponse represents a date-range query result
type TurnoListResponse struct {
	Turnos []TurnoResponse `json:"turnos"`
	Total  int             `json:"total"`
}

// CleanupResponse reports how many records the retention sweep removed
type CleanupResponse struct {
	DeletedCount int64  `json:"deleted_count"`
	Cutoff       string `json:"cutoff"`
}

// Upsert validates a turno candidate and performs a full-field
// create-or-replace at its (date, person) key
func (s *TurnoService) Upsert(req *UpsertTurnoRequest) (*TurnoResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}

	date, err := NormalizeDate(s.calendar, req.Date)
	if err != nil {
		return nil, apperrors.ErrInvalidDate
	}

	var shiftType models.ShiftType
	if req.ShiftType != "" {
		parsed, ok := models.ParseShiftType(req.ShiftType)
		if !ok {
			return nil, apperrors.ErrInvalidShiftType
		}
		shiftType = parsed
	}

	candidate := &models.Turno{
		Date:       date,
		PersonID:   normalizePersonID(req.PersonID),
		ShiftType:  shiftType,
		StartTime:  req.StartTime,
		EndTime:    req.EndTime,
		IsVacation: req.IsVacation,
		Notes:      req.Notes,
	}

	validated, err := ValidateTurno(candidate)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	validated.CreatedAt = now
	validated.UpdatedAt = now

	_, stored, err := s.repo.Upsert(validated)
	if err != nil {
		return nil, err
	}

	return toTurnoResponse(stored), nil
}

// GetByDate retrieves the turno at (date, personID)
func (s *TurnoService) GetByDate(date string, personID *string) (*TurnoResponse, error) {
	normalized, err := NormalizeDate(s.calendar, date)
	if err != nil {
		return nil, apperrors.ErrInvalidDate
	}

	turno, err := s.repo.FindByKey(normalized, normalizePersonID(personID))
	if err != nil {
		return nil, err
	}
	return toTurnoResponse(turno), nil
}

// GetToday retrieves the turno for the current localized date
func (s *TurnoService) GetToday(personID *string) (*TurnoResponse, error) {
	return s.GetByDate(s.calendar.Today().ISO(), personID)
}

// GetRange retrieves turnos with date in [from, to], ascending by date
func (s *TurnoService) GetRange(from, to string, personID *string) (*TurnoListResponse, error) {
	fromISO, err := NormalizeDate(s.calendar, from)
	if err != nil {
		return nil, apperrors.NewValidationError("from", "date must be in YYYY-MM-DD format")
	}
	toISO, err := NormalizeDate(s.calendar, to)
	if err != nil {
		return nil, apperrors.NewValidationError("to", "date must be in YYYY-MM-DD format")
	}
	if fromISO > toISO {
		return nil, apperrors.NewValidationError("to", "range end must not be before range start")
	}

	turnos, err := s.repo.FindByRange(fromISO, toISO, normalizePersonID(personID), false)
	if err != nil {
		return nil, err
	}

	responses := make([]TurnoResponse, len(turnos))
	for i, t := range turnos {
		responses[i] = *toTurnoResponse(&t)
	}
	return &TurnoListResponse{Turnos: responses, Total: len(responses)}, nil
}

// Delete removes the turno at (date, personID)
func (s *TurnoService) Delete(date string, personID *string) error {
	normalized, err := NormalizeDate(s.calendar, date)
	if err != nil {
		return apperrors.ErrInvalidDate
	}
	return s.repo.Delete(normalized, normalizePersonID(personID))
}

// GetStats aggregates record counts over an optional date range
func (s *TurnoService) GetStats(from, to string) (*repository.ShiftStats, error) {
	fromISO, toISO := "", ""
	var err error
	if from != "" {
		if fromISO, err = NormalizeDate(s.calendar, from); err != nil {
			return nil, apperrors.NewValidationError("from", "date must be in YYYY-MM-DD format")
		}
	}
	if to != "" {
		if toISO, err = NormalizeDate(s.calendar, to); err != nil {
			return nil, apperrors.NewValidationError("to", "date must be in YYYY-MM-DD format")
		}
	}
	return s.repo.Stats(fromISO, toISO)
}

// Cleanup deletes records older than today minus daysOld and returns the
// deleted count together with the cutoff that was applied
func (s *TurnoService) Cleanup(daysOld int) (*CleanupResponse, error) {
	if daysOld <= 0 {
		return nil, apperrors.NewValidationError("days_old", "must be a positive number of days")
	}

	cutoff := s.calendar.Today().SubDays(daysOld).ISO()
	deleted, err := s.repo.DeleteOlderThan(cutoff)
	if err != nil {
		return nil, err
	}
	return &CleanupResponse{DeletedCount: deleted, Cutoff: cutoff}, nil
}

func normalizePersonID(personID *string) *string {
	if personID == nil || *personID == "" {
		return nil
	}
	return personID
}

func toTurnoResponse(turno *models.Turno) *TurnoResponse {
	return &TurnoResponse{
		ID:         turno.ID.String(),
		Date:       turno.Date,
		ShiftType:  turno.ShiftType,
		StartTime:  turno.StartTime,
		EndTime:    turno.EndTime,
		IsVacation: turno.IsVacation,
		Notes:      turno.Notes,
		PersonID:   turno.PersonID,
		CreatedAt:  turno.CreatedAt.Format(time.RFC3339),
		UpdatedAt:  turno.UpdatedAt.Format(time.RFC3339),
	}
}
