package repository

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"sync"
	"time"

	"turnos-backend/internal/database/models"
	apperrors "turnos-backend/internal/errors"
)

// SnapshotTurnoRepository serves turnos from a local JSON snapshot file.
// It is read-only: every mutating operation fails with ReadOnlyModeError.
// The snapshot is loaded lazily and reloaded whenever the file's
// modification time advances past the cached value.
type SnapshotTurnoRepository struct {
	path string

	mu       sync.RWMutex
	loadedAt time.Time
	records  map[string]models.Turno
}

// NewSnapshotTurnoRepository creates a repository over a JSON snapshot file
func NewSnapshotTurnoRepository(path string) *SnapshotTurnoRepository {
	return &SnapshotTurnoRepository{path: path}
}

func (r *SnapshotTurnoRepository) ensureLoaded() error {
	info, err := os.Stat(r.path)
	if err != nil {
		return apperrors.NewStorageError("stat snapshot", err)
	}

	r.mu.RLock()
	fresh := r.records != nil && !info.ModTime().After(r.loadedAt)
	r.mu.RUnlock()
	if fresh {
		return nil
	}

	data, err := os.ReadFile(r.path)
	if err != nil {
		return apperrors.NewStorageError("read snapshot", err)
	}

	var turnos []models.Turno
	if err := json.Unmarshal(data, &turnos); err != nil {
		return apperrors.NewStorageError("parse snapshot", fmt.Errorf("%s: %w", r.path, err))
	}

	records := make(map[string]models.Turno, len(turnos))
	for _, t := range turnos {
		records[t.Key()] = t
	}

	r.mu.Lock()
	r.records = records
	r.loadedAt = info.ModTime()
	r.mu.Unlock()
	return nil
}

// FindByKey retrieves the turno at (date, personID)
func (r *SnapshotTurnoRepository) FindByKey(date string, personID *string) (*models.Turno, error) {
	if err := r.ensureLoaded(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	turno, ok := r.records[models.TurnoKey(date, personID)]
	if !ok {
		return nil, apperrors.ErrTurnoNotFound
	}
	return &turno, nil
}

// FindByRange retrieves turnos with date in [from, to], inclusive
func (r *SnapshotTurnoRepository) FindByRange(from, to string, personID *string, descending bool) ([]models.Turno, error) {
	if err := r.ensureLoaded(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	var turnos []models.Turno
	for _, t := range r.records {
		if t.Date < from || t.Date > to {
			continue
		}
		if personID != nil && *personID != "" {
			if t.PersonID == nil || *t.PersonID != *personID {
				continue
			}
		}
		turnos = append(turnos, t)
	}

	sort.Slice(turnos, func(i, j int) bool {
		if descending {
			return turnos[i].Date > turnos[j].Date
		}
		return turnos[i].Date < turnos[j].Date
	})
	return turnos, nil
}

// Create fails: the snapshot backend is read-only
func (r *SnapshotTurnoRepository) Create(turno *models.Turno) error {
	return apperrors.NewReadOnlyModeError("create")
}

// Update fails: the snapshot backend is read-only
func (r *SnapshotTurnoRepository) Update(turno *models.Turno) error {
	return apperrors.NewReadOnlyModeError("update")
}

// Delete fails: the snapshot backend is read-only
func (r *SnapshotTurnoRepository) Delete(date string, personID *string) error {
	return apperrors.NewReadOnlyModeError("delete")
}

// Upsert fails: the snapshot backend is read-only
func (r *SnapshotTurnoRepository) Upsert(turno *models.Turno) (bool, *models.Turno, error) {
	return false, nil, apperrors.NewReadOnlyModeError("upsert")
}

// Stats aggregates counts over [from, to]; empty bounds are open
func (r *SnapshotTurnoRepository) Stats(from, to string) (*ShiftStats, error) {
	if err := r.ensureLoaded(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	stats := &ShiftStats{CountByShiftType: make(map[models.ShiftType]int64)}
	for _, t := range r.records {
		if from != "" && t.Date < from {
			continue
		}
		if to != "" && t.Date > to {
			continue
		}
		stats.Total++
		if t.IsVacation {
			stats.VacationCount++
			continue
		}
		if t.ShiftType != "" {
			stats.CountByShiftType[t.ShiftType]++
		}
	}
	return stats, nil
}

// DeleteOlderThan fails: the snapshot backend is read-only
func (r *SnapshotTurnoRepository) DeleteOlderThan(date string) (int64, error) {
	return 0, apperrors.NewReadOnlyModeError("delete older than")
}
