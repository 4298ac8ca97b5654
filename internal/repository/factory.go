package repository

import (
	"turnos-backend/internal/config"
	apperrors "turnos-backend/internal/errors"

	"gorm.io/gorm"
)

// NewTurnoRepository selects the storage backend once from configuration.
// The db handle may be nil when the snapshot backend is selected.
func NewTurnoRepository(cfg *config.Config, db *gorm.DB) (TurnoRepository, error) {
	switch cfg.StorageBackend {
	case config.StorageBackendPostgres:
		return NewPostgresTurnoRepository(db), nil
	case config.StorageBackendSnapshot:
		if cfg.SnapshotPath == "" {
			return nil, apperrors.ErrSnapshotPathRequired
		}
		return NewSnapshotTurnoRepository(cfg.SnapshotPath), nil
	default:
		return nil, apperrors.ErrUnknownStorageBackend
	}
}
