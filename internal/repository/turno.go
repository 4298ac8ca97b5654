package repository

import (
	"errors"
	"time"

	"turnos-backend/internal/database/models"
	apperrors "turnos-backend/internal/errors"

	"gorm.io/gorm"
)

// PostgresTurnoRepository handles database operations for turnos
type PostgresTurnoRepository struct {
	db *gorm.DB
}

// NewPostgresTurnoRepository creates a new Postgres-backed turno repository
func NewPostgresTurnoRepository(db *gorm.DB) *PostgresTurnoRepository {
	return &PostgresTurnoRepository{db: db}
}

func personScope(db *gorm.DB, personID *string) *gorm.DB {
	if personID != nil && *personID != "" {
		return db.Where("person_id = ?", *personID)
	}
	return db.Where("person_id IS NULL")
}

// FindByKey retrieves the turno at (date, personID)
func (r *PostgresTurnoRepository) FindByKey(date string, personID *string) (*models.Turno, error) {
	var turno models.Turno
	err := personScope(r.db.Where("date = ?", date), personID).First(&turno).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTurnoNotFound
		}
		return nil, apperrors.NewStorageError("find by key", err)
	}
	return &turno, nil
}

// FindByRange retrieves turnos with date in [from, to], inclusive
func (r *PostgresTurnoRepository) FindByRange(from, to string, personID *string, descending bool) ([]models.Turno, error) {
	order := "date ASC"
	if descending {
		order = "date DESC"
	}

	query := r.db.Where("date >= ? AND date <= ?", from, to).Order(order)
	if personID != nil && *personID != "" {
		query = query.Where("person_id = ?", *personID)
	}

	var turnos []models.Turno
	if err := query.Find(&turnos).Error; err != nil {
		return nil, apperrors.NewStorageError("find by range", err)
	}
	return turnos, nil
}

// Create inserts a new turno
func (r *PostgresTurnoRepository) Create(turno *models.Turno) error {
	if err := r.db.Create(turno).Error; err != nil {
		return apperrors.NewStorageError("create", err)
	}
	return nil
}

// Update replaces an existing turno. Save writes every field, so cleared
// shift data (vacation days) is persisted as NULL rather than merged.
func (r *PostgresTurnoRepository) Update(turno *models.Turno) error {
	turno.UpdatedAt = time.Now()
	if err := r.db.Save(turno).Error; err != nil {
		return apperrors.NewStorageError("update", err)
	}
	return nil
}

// Delete removes the turno at (date, personID)
func (r *PostgresTurnoRepository) Delete(date string, personID *string) error {
	result := personScope(r.db.Where("date = ?", date), personID).Delete(&models.Turno{})
	if result.Error != nil {
		return apperrors.NewStorageError("delete", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrTurnoNotFound
	}
	return nil
}

// Upsert performs a read-then-create-or-replace at the record's key,
// preserving CreatedAt on replace
func (r *PostgresTurnoRepository) Upsert(turno *models.Turno) (bool, *models.Turno, error) {
	existing, err := r.FindByKey(turno.Date, turno.PersonID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrTurnoNotFound) {
			return false, nil, err
		}
		if err := r.Create(turno); err != nil {
			return false, nil, err
		}
		return true, turno, nil
	}

	turno.ID = existing.ID
	turno.CreatedAt = existing.CreatedAt
	if err := r.Update(turno); err != nil {
		return false, nil, err
	}
	return false, turno, nil
}

// Stats aggregates counts over [from, to]; empty bounds are open
func (r *PostgresTurnoRepository) Stats(from, to string) (*ShiftStats, error) {
	base := r.db.Model(&models.Turno{})
	if from != "" {
		base = base.Where("date >= ?", from)
	}
	if to != "" {
		base = base.Where("date <= ?", to)
	}

	stats := &ShiftStats{CountByShiftType: make(map[models.ShiftType]int64)}

	if err := base.Session(&gorm.Session{}).Count(&stats.Total).Error; err != nil {
		return nil, apperrors.NewStorageError("stats", err)
	}

	if err := base.Session(&gorm.Session{}).Where("is_vacation = ?", true).Count(&stats.VacationCount).Error; err != nil {
		return nil, apperrors.NewStorageError("stats", err)
	}

	type shiftCount struct {
		ShiftType models.ShiftType
		Count     int64
	}
	var counts []shiftCount
	err := base.Session(&gorm.Session{}).
		Select("shift_type, COUNT(*) as count").
		Where("is_vacation = ? AND shift_type <> ''", false).
		Group("shift_type").
		Scan(&counts).Error
	if err != nil {
		return nil, apperrors.NewStorageError("stats", err)
	}
	for _, c := range counts {
		stats.CountByShiftType[c.ShiftType] = c.Count
	}

	return stats, nil
}

// DeleteOlderThan removes turnos with date strictly before the cutoff
func (r *PostgresTurnoRepository) DeleteOlderThan(date string) (int64, error) {
	result := r.db.Where("date < ?", date).Delete(&models.Turno{})
	if result.Error != nil {
		return 0, apperrors.NewStorageError("delete older than", result.Error)
	}
	return result.RowsAffected, nil
}
