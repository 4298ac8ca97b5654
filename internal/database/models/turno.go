package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Turno is a work-shift record for a calendar day. The (date, person_id)
// pair uniquely identifies a record; person_id stays NULL in
// single-tenant deployments so the date alone is the key.
type Turno struct {
	ID         uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Date       string    `json:"date" gorm:"size:10;not null;uniqueIndex:idx_turnos_date_person" validate:"required,len=10"`
	PersonID   *string   `json:"person_id,omitempty" gorm:"size:64;uniqueIndex:idx_turnos_date_person"`
	ShiftType  ShiftType `json:"shift_type,omitempty" gorm:"size:16"`
	StartTime  *string   `json:"start_time,omitempty" gorm:"size:5"`
	EndTime    *string   `json:"end_time,omitempty" gorm:"size:5"`
	IsVacation bool      `json:"is_vacation" gorm:"not null;default:false"`
	Notes      string    `json:"notes" gorm:"size:500" validate:"max=500"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// BeforeCreate sets the UUID if not already set
func (t *Turno) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}

// Key returns the composite key string: the date alone, or
// date + "_" + personId when a person is set.
func (t *Turno) Key() string {
	return TurnoKey(t.Date, t.PersonID)
}

// TurnoKey builds the composite key string for a (date, person) pair
func TurnoKey(date string, personID *string) string {
	if personID != nil && *personID != "" {
		return date + "_" + *personID
	}
	return date
}
