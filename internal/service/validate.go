package service

import (
	"regexp"

	"turnos-backend/internal/database/models"
	apperrors "turnos-backend/internal/errors"
)

// Business-rule validation for turno candidates. ValidateTurno is a pure
// function: it returns a normalized copy of its input or the first rule
// violation. The check order is fixed: field syntax, clear-on-vacation,
// exclusivity, time pairing, time ordering.

var (
	isoDatePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	clockHHMM      = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)
)

// midnight marks an overnight shift ending on the next day; it is the
// only end time allowed to compare at or before the start time.
const midnight = "00:00"

// ValidateTurno checks a candidate against the turno business rules and
// returns a normalized copy ready for persistence.
func ValidateTurno(candidate *models.Turno) (*models.Turno, error) {
	turno := *candidate

	if !isoDatePattern.MatchString(turno.Date) {
		return nil, apperrors.ErrInvalidDate
	}

	if turno.ShiftType != "" && !turno.ShiftType.IsValid() {
		return nil, apperrors.ErrInvalidShiftType
	}

	if turno.StartTime != nil && !clockHHMM.MatchString(*turno.StartTime) {
		return nil, apperrors.ErrInvalidTime
	}
	if turno.EndTime != nil && !clockHHMM.MatchString(*turno.EndTime) {
		return nil, apperrors.ErrInvalidTime
	}

	// A vacation day silently drops any supplied shift data.
	if turno.IsVacation {
		turno.ShiftType = ""
		turno.StartTime = nil
		turno.EndTime = nil
	}

	if turno.IsVacation && turno.ShiftType != "" {
		return nil, apperrors.ErrConflictingState
	}

	if (turno.StartTime == nil) != (turno.EndTime == nil) {
		return nil, apperrors.ErrIncompleteTimeRange
	}

	if turno.StartTime != nil && turno.EndTime != nil {
		if *turno.StartTime >= *turno.EndTime && *turno.EndTime != midnight {
			return nil, apperrors.ErrInvalidTimeOrder
		}
	}

	return &turno, nil
}
