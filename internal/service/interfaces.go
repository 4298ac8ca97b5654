package service

import (
	"io"

	"turnos-backend/internal/repository"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// TurnoServiceInterface defines the interface for turno service
type TurnoServiceInterface interface {
	Upsert(req *UpsertTurnoRequest) (*TurnoResponse, error)
	GetByDate(date string, personID *string) (*TurnoResponse, error)
	GetToday(personID *string) (*TurnoResponse, error)
	GetRange(from, to string, personID *string) (*TurnoListResponse, error)
	Delete(date string, personID *string) error
	GetStats(from, to string) (*repository.ShiftStats, error)
	Cleanup(daysOld int) (*CleanupResponse, error)
}

// ImportServiceInterface defines the interface for spreadsheet import
type ImportServiceInterface interface {
	ImportExcel(reader io.Reader, personID *string) (*ImportResult, error)
	ParseImportFile(reader io.Reader) ([]ImportRow, error)
	ImportBatch(rows []ImportRow, personID *string) (*ImportResult, error)
}
