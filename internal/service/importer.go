package service

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"turnos-backend/internal/database/models"
	"turnos-backend/internal/dates"
	apperrors "turnos-backend/internal/errors"
	"turnos-backend/internal/logger"
	"turnos-backend/internal/repository"

	"github.com/xuri/excelize/v2"
)

const maxImportRows = 1000

// ImportRow is a raw spreadsheet row before normalization. Row carries
// the human-readable spreadsheet row number (header row is 1).
type ImportRow struct {
	Row       int
	Date      string
	ShiftType string
	StartTime string
	EndTime   string
	Vacation  string
	Notes     string
}

// ImportWarning reports a non-fatal problem with a single row
type ImportWarning struct {
	Row     int    `json:"row"`
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
}

// ImportResult aggregates the outcome of a bulk import
type ImportResult struct {
	InsertedCount int             `json:"inserted_count"`
	UpdatedCount  int             `json:"updated_count"`
	SkippedCount  int             `json:"skipped_count"`
	Warnings      []ImportWarning `json:"warnings"`
	Records       []TurnoResponse `json:"records"`
}

// ImportService converts spreadsheet rows into validated turno records
type ImportService struct {
	repo     repository.TurnoRepository
	calendar *dates.Calendar
	log      *logger.Logger
}

// NewImportService creates a new import service
func NewImportService(repo repository.TurnoRepository, calendar *dates.Calendar) *ImportService {
	return &ImportService{
		repo:     repo,
		calendar: calendar,
		log:      logger.New().WithField("component", "import"),
	}
}

// ImportExcel parses an uploaded spreadsheet and reconciles its rows
// against storage
func (s *ImportService) ImportExcel(reader io.Reader, personID *string) (*ImportResult, error) {
	rows, err := s.ParseImportFile(reader)
	if err != nil {
		return nil, err
	}
	return s.ImportBatch(rows, personID)
}

// ParseImportFile reads the first sheet of an .xlsx file into raw rows.
// Column order is flexible: headers are matched by name, with Spanish
// and English aliases. Blank rows are skipped.
func (s *ImportService) ParseImportFile(reader io.Reader) ([]ImportRow, error) {
	f, err := excelize.OpenReader(reader)
	if err != nil {
		return nil, fmt.Errorf("open spreadsheet: %w", err)
	}
	defer f.Close()

	sheetName := f.GetSheetName(0)
	excelRows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheetName, err)
	}

	if len(excelRows) < 2 {
		return nil, apperrors.ErrNoDataRows
	}

	colIndex := parseHeaderIndex(excelRows[0])
	if colIndex["date"] < 0 {
		return nil, apperrors.ErrMissingColumns
	}

	cell := func(row []string, key string) string {
		if idx := colIndex[key]; idx >= 0 && idx < len(row) {
			return strings.TrimSpace(row[idx])
		}
		return ""
	}

	var rows []ImportRow
	for i := 1; i < len(excelRows); i++ {
		row := excelRows[i]
		item := ImportRow{
			Row:       i + 1,
			Date:      cell(row, "date"),
			ShiftType: cell(row, "shift_type"),
			StartTime: cell(row, "start_time"),
			EndTime:   cell(row, "end_time"),
			Vacation:  cell(row, "vacation"),
			Notes:     cell(row, "notes"),
		}

		if item.Date == "" && item.ShiftType == "" && item.StartTime == "" &&
			item.EndTime == "" && item.Vacation == "" && item.Notes == "" {
			continue
		}

		rows = append(rows, item)
	}

	if len(rows) == 0 {
		return nil, apperrors.ErrNoDataRows
	}
	if len(rows) > maxImportRows {
		return nil, fmt.Errorf("spreadsheet has more than %d data rows", maxImportRows)
	}

	return rows, nil
}

// parseHeaderIndex maps known header names to column indexes
func parseHeaderIndex(header []string) map[string]int {
	idx := map[string]int{
		"date":       -1,
		"shift_type": -1,
		"start_time": -1,
		"end_time":   -1,
		"vacation":   -1,
		"notes":      -1,
	}
	for i, h := range header {
		lower := strings.ToLower(strings.TrimSpace(h))
		switch lower {
		case "fecha", "date":
			idx["date"] = i
		case "turno", "shift", "shift type", "shift_type", "tipo":
			idx["shift_type"] = i
		case "hora inicio", "inicio", "entrada", "start", "start time", "start_time":
			idx["start_time"] = i
		case "hora fin", "fin", "salida", "end", "end time", "end_time":
			idx["end_time"] = i
		case "vacaciones", "vacacion", "vacación", "vacation":
			idx["vacation"] = i
		case "notas", "notes", "observaciones":
			idx["notes"] = i
		}
	}
	return idx
}

// ImportBatch normalizes, validates, deduplicates and stores a batch of
// rows. Row problems never abort the batch: each one becomes a warning
// and the row is dropped. Rows are processed strictly in input order so
// warnings and counts are deterministic.
func (s *ImportService) ImportBatch(rows []ImportRow, personID *string) (*ImportResult, error) {
	result := &ImportResult{
		Warnings: []ImportWarning{},
		Records:  []TurnoResponse{},
	}

	person := normalizePersonID(personID)
	seen := make(map[string]bool)

	// rowCandidate keeps the source row number with the record so storage
	// warnings can name the row like every other warning.
	type rowCandidate struct {
		row   int
		turno *models.Turno
	}
	var candidates []rowCandidate

	for _, row := range rows {
		candidate, warnings := s.buildCandidate(row, person)
		result.Warnings = append(result.Warnings, warnings...)
		if candidate == nil {
			continue
		}

		// First occurrence of a date wins; later duplicates are dropped.
		if seen[candidate.Date] {
			result.Warnings = append(result.Warnings, ImportWarning{
				Row:     row.Row,
				Field:   "date",
				Message: fmt.Sprintf("duplicate date %s in file, row ignored", candidate.Date),
			})
			continue
		}
		seen[candidate.Date] = true
		candidates = append(candidates, rowCandidate{row: row.Row, turno: candidate})
	}

	for _, c := range candidates {
		candidate := c.turno
		now := time.Now()
		candidate.CreatedAt = now
		candidate.UpdatedAt = now

		created, stored, err := s.repo.Upsert(candidate)
		if err != nil {
			if errors.Is(err, apperrors.ErrReadOnlyMode) {
				return nil, err
			}
			s.log.WithError(err).WithField("date", candidate.Date).Warn("storing imported row failed")
			result.SkippedCount++
			result.Warnings = append(result.Warnings, ImportWarning{
				Row:     c.row,
				Field:   "date",
				Message: fmt.Sprintf("could not store record for %s: %v", candidate.Date, err),
			})
			continue
		}

		if created {
			result.InsertedCount++
		} else {
			result.UpdatedCount++
		}
		result.Records = append(result.Records, *toTurnoResponse(stored))
	}

	return result, nil
}

// buildCandidate normalizes one raw row into a validated turno, or
// returns the warnings that disqualified it
func (s *ImportService) buildCandidate(row ImportRow, personID *string) (*models.Turno, []ImportWarning) {
	var warnings []ImportWarning

	date, err := NormalizeDate(s.calendar, row.Date)
	if err != nil {
		return nil, append(warnings, ImportWarning{Row: row.Row, Field: "date", Message: err.Error()})
	}

	isVacation := NormalizeVacationFlag(row.Vacation)

	var shiftType models.ShiftType
	if row.ShiftType != "" {
		parsed, ok := models.ParseShiftType(row.ShiftType)
		if !ok {
			return nil, append(warnings, ImportWarning{
				Row:     row.Row,
				Field:   "shift_type",
				Message: fmt.Sprintf("unrecognized shift type %q", row.ShiftType),
			})
		}
		shiftType = parsed
	}

	var startTime, endTime *string
	if row.StartTime != "" {
		normalized, err := NormalizeTime(row.StartTime)
		if err != nil {
			return nil, append(warnings, ImportWarning{Row: row.Row, Field: "start_time", Message: err.Error()})
		}
		startTime = &normalized
	}
	if row.EndTime != "" {
		normalized, err := NormalizeTime(row.EndTime)
		if err != nil {
			return nil, append(warnings, ImportWarning{Row: row.Row, Field: "end_time", Message: err.Error()})
		}
		endTime = &normalized
	}

	// Vacation takes priority over any shift data supplied alongside it.
	if isVacation && (shiftType != "" || startTime != nil || endTime != nil) {
		warnings = append(warnings, ImportWarning{
			Row:     row.Row,
			Field:   "is_vacation",
			Message: "row declares both a shift and vacation; vacation takes priority",
		})
		shiftType = ""
		startTime = nil
		endTime = nil
	}

	candidate := &models.Turno{
		Date:       date,
		PersonID:   personID,
		ShiftType:  shiftType,
		StartTime:  startTime,
		EndTime:    endTime,
		IsVacation: isVacation,
		Notes:      row.Notes,
	}

	validated, err := ValidateTurno(candidate)
	if err != nil {
		field := ""
		var validationErr *apperrors.ValidationError
		if errors.As(err, &validationErr) {
			field = validationErr.Field
		}
		return nil, append(warnings, ImportWarning{Row: row.Row, Field: field, Message: err.Error()})
	}

	return validated, warnings
}
