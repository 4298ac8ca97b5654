package service_test

import (
	"bytes"
	"testing"

	"turnos-backend/internal/database/models"
	"turnos-backend/internal/dates"
	apperrors "turnos-backend/internal/errors"
	"turnos-backend/internal/mocks"
	"turnos-backend/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"go.uber.org/mock/gomock"
)

func newImportService(t *testing.T) (*service.ImportService, *mocks.MockTurnoRepository) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockTurnoRepository(ctrl)
	return service.NewImportService(repo, dates.Default()), repo
}

// upsertEcho makes the mock behave like a store that inserts everything.
func upsertEcho(repo *mocks.MockTurnoRepository, times int) {
	repo.EXPECT().
		Upsert(gomock.Any()).
		DoAndReturn(func(turno *models.Turno) (bool, *models.Turno, error) {
			return true, turno, nil
		}).
		Times(times)
}

func TestImportBatchInsertsAndCounts(t *testing.T) {
	svc, repo := newImportService(t)
	upsertEcho(repo, 2)

	rows := []service.ImportRow{
		{Row: 2, Date: "2025-01-01", ShiftType: "mañana"},
		{Row: 3, Date: "2025-01-02", ShiftType: "tarde", StartTime: "15:00", EndTime: "23:00"},
	}

	result, err := svc.ImportBatch(rows, nil)
	require.NoError(t, err)
	assert.Equal(t, 2, result.InsertedCount)
	assert.Zero(t, result.UpdatedCount)
	assert.Zero(t, result.SkippedCount)
	assert.Empty(t, result.Warnings)
	require.Len(t, result.Records, 2)
	assert.Equal(t, models.ShiftTypeMorning, result.Records[0].ShiftType)
}

func TestImportBatchFirstDateWins(t *testing.T) {
	svc, repo := newImportService(t)
	upsertEcho(repo, 2)

	rows := []service.ImportRow{
		{Row: 2, Date: "2025-01-01", ShiftType: "mañana"},
		{Row: 3, Date: "2025-01-01", ShiftType: "tarde"},
		{Row: 4, Date: "2025-01-02", Vacation: "sí"},
	}

	result, err := svc.ImportBatch(rows, nil)
	require.NoError(t, err)
	assert.Equal(t, 2, result.InsertedCount)
	require.Len(t, result.Warnings, 1)
	assert.Equal(t, 3, result.Warnings[0].Row)
	assert.Contains(t, result.Warnings[0].Message, "duplicate date 2025-01-01")

	// The stored record for Jan 1 is the first row's morning shift.
	assert.Equal(t, models.ShiftTypeMorning, result.Records[0].ShiftType)
	assert.True(t, result.Records[1].IsVacation)
}

func TestImportBatchBadRowsBecomeWarnings(t *testing.T) {
	svc, repo := newImportService(t)
	upsertEcho(repo, 1)

	rows := []service.ImportRow{
		{Row: 2, Date: "not a date", ShiftType: "mañana"},
		{Row: 3, Date: "2025-01-02", ShiftType: "siesta"},
		{Row: 4, Date: "2025-01-03", ShiftType: "mañana", StartTime: "07:00"},
		{Row: 5, Date: "2025-01-04", ShiftType: "noche", StartTime: "22:00", EndTime: "06:00"},
		{Row: 6, Date: "2025-01-05", ShiftType: "mañana", StartTime: "07:00", EndTime: "15:00"},
	}

	result, err := svc.ImportBatch(rows, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, result.InsertedCount)
	require.Len(t, result.Warnings, 4)
	assert.Equal(t, "date", result.Warnings[0].Field)
	assert.Equal(t, "shift_type", result.Warnings[1].Field)
	assert.Equal(t, "end_time", result.Warnings[2].Field)
	assert.Equal(t, "end_time", result.Warnings[3].Field)
}

func TestImportBatchVacationOverridesShift(t *testing.T) {
	svc, repo := newImportService(t)

	var stored *models.Turno
	repo.EXPECT().
		Upsert(gomock.Any()).
		DoAndReturn(func(turno *models.Turno) (bool, *models.Turno, error) {
			stored = turno
			return true, turno, nil
		})

	rows := []service.ImportRow{
		{Row: 2, Date: "2025-01-01", ShiftType: "mañana", StartTime: "07:00", EndTime: "15:00", Vacation: "sí"},
	}

	result, err := svc.ImportBatch(rows, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, result.InsertedCount)
	require.Len(t, result.Warnings, 1)
	assert.Equal(t, "is_vacation", result.Warnings[0].Field)

	require.NotNil(t, stored)
	assert.True(t, stored.IsVacation)
	assert.Empty(t, stored.ShiftType)
	assert.Nil(t, stored.StartTime)
}

func TestImportBatchStorageFailureSkipsRow(t *testing.T) {
	svc, repo := newImportService(t)

	gomock.InOrder(
		repo.EXPECT().Upsert(gomock.Any()).Return(false, nil, apperrors.NewStorageError("create", assert.AnError)),
		repo.EXPECT().Upsert(gomock.Any()).DoAndReturn(func(turno *models.Turno) (bool, *models.Turno, error) {
			return false, turno, nil
		}),
	)

	rows := []service.ImportRow{
		{Row: 2, Date: "2025-01-01", ShiftType: "mañana"},
		{Row: 3, Date: "2025-01-02", ShiftType: "tarde"},
	}

	result, err := svc.ImportBatch(rows, nil)
	require.NoError(t, err)
	assert.Zero(t, result.InsertedCount)
	assert.Equal(t, 1, result.UpdatedCount)
	assert.Equal(t, 1, result.SkippedCount)
	require.Len(t, result.Warnings, 1)
	assert.Equal(t, 2, result.Warnings[0].Row)
	assert.Contains(t, result.Warnings[0].Message, "2025-01-01")
}

func TestImportBatchReadOnlyModeAborts(t *testing.T) {
	svc, repo := newImportService(t)

	repo.EXPECT().Upsert(gomock.Any()).Return(false, nil, apperrors.NewReadOnlyModeError("upsert"))

	rows := []service.ImportRow{
		{Row: 2, Date: "2025-01-01", ShiftType: "mañana"},
		{Row: 3, Date: "2025-01-02", ShiftType: "tarde"},
	}

	_, err := svc.ImportBatch(rows, nil)
	require.Error(t, err)
	assert.True(t, apperrors.IsReadOnlyMode(err))
}

func TestImportBatchAttachesPersonID(t *testing.T) {
	svc, repo := newImportService(t)

	var stored *models.Turno
	repo.EXPECT().
		Upsert(gomock.Any()).
		DoAndReturn(func(turno *models.Turno) (bool, *models.Turno, error) {
			stored = turno
			return true, turno, nil
		})

	alice := "alice"
	_, err := svc.ImportBatch([]service.ImportRow{{Row: 2, Date: "2025-01-01", ShiftType: "noche"}}, &alice)
	require.NoError(t, err)
	require.NotNil(t, stored)
	require.NotNil(t, stored.PersonID)
	assert.Equal(t, "alice", *stored.PersonID)
}

// buildWorkbook produces an in-memory .xlsx with the given header and rows.
func buildWorkbook(t *testing.T, header []string, rows [][]string) *bytes.Reader {
	t.Helper()

	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	require.NoError(t, f.SetSheetRow(sheet, "A1", &header))
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &row))
	}

	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))
	return bytes.NewReader(buf.Bytes())
}

func TestParseImportFileSpanishHeaders(t *testing.T) {
	svc, _ := newImportService(t)

	reader := buildWorkbook(t,
		[]string{"Fecha", "Turno", "Hora Inicio", "Hora Fin", "Vacaciones", "Notas"},
		[][]string{
			{"2025-01-01", "mañana", "07:00", "15:00", "", "guardia"},
			{"", "", "", "", "", ""},
			{"2025-01-02", "", "", "", "sí", ""},
		},
	)

	rows, err := svc.ParseImportFile(reader)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, 2, rows[0].Row)
	assert.Equal(t, "mañana", rows[0].ShiftType)
	assert.Equal(t, "guardia", rows[0].Notes)
	assert.Equal(t, 4, rows[1].Row)
	assert.Equal(t, "sí", rows[1].Vacation)
}

func TestParseImportFileReorderedEnglishHeaders(t *testing.T) {
	svc, _ := newImportService(t)

	reader := buildWorkbook(t,
		[]string{"Notes", "Shift", "Date"},
		[][]string{{"x", "night", "2025-01-01"}},
	)

	rows, err := svc.ParseImportFile(reader)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "2025-01-01", rows[0].Date)
	assert.Equal(t, "night", rows[0].ShiftType)
	assert.Equal(t, "x", rows[0].Notes)
}

func TestParseImportFileMissingDateColumn(t *testing.T) {
	svc, _ := newImportService(t)

	reader := buildWorkbook(t,
		[]string{"Turno", "Notas"},
		[][]string{{"mañana", "x"}},
	)

	_, err := svc.ParseImportFile(reader)
	assert.ErrorIs(t, err, apperrors.ErrMissingColumns)
}

func TestParseImportFileNoDataRows(t *testing.T) {
	svc, _ := newImportService(t)

	reader := buildWorkbook(t, []string{"Fecha", "Turno"}, nil)
	_, err := svc.ParseImportFile(reader)
	assert.ErrorIs(t, err, apperrors.ErrNoDataRows)
}

func TestParseImportFileNotASpreadsheet(t *testing.T) {
	svc, _ := newImportService(t)

	_, err := svc.ParseImportFile(bytes.NewReader([]byte("definitely not xlsx")))
	assert.Error(t, err)
}

func TestImportExcelEndToEnd(t *testing.T) {
	svc, repo := newImportService(t)
	upsertEcho(repo, 2)

	reader := buildWorkbook(t,
		[]string{"Fecha", "Turno", "Hora Inicio", "Hora Fin", "Vacaciones"},
		[][]string{
			{"2025-01-01", "mañana", "7", "15", ""},
			{"2025-01-01", "tarde", "", "", ""},
			{"2025-01-02", "", "", "", "sí"},
		},
	)

	result, err := svc.ImportExcel(reader, nil)
	require.NoError(t, err)
	assert.Equal(t, 2, result.InsertedCount)
	require.Len(t, result.Warnings, 1)
	assert.Contains(t, result.Warnings[0].Message, "duplicate date")
	require.Len(t, result.Records, 2)
	assert.Equal(t, "07:00", *result.Records[0].StartTime)
	assert.Equal(t, "15:00", *result.Records[0].EndTime)
}
