package repository_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"turnos-backend/internal/database/models"
	apperrors "turnos-backend/internal/errors"
	"turnos-backend/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSnapshot(t *testing.T, path string, turnos []models.Turno) {
	t.Helper()
	data, err := json.Marshal(turnos)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, data, 0o644))
}

func snapshotFixture() []models.Turno {
	start, end := "07:00", "15:00"
	alice := "alice"
	return []models.Turno{
		{Date: "2025-01-10", ShiftType: models.ShiftTypeMorning, StartTime: &start, EndTime: &end},
		{Date: "2025-01-11", ShiftType: models.ShiftTypeNight},
		{Date: "2025-01-11", PersonID: &alice, ShiftType: models.ShiftTypeAfternoon},
		{Date: "2025-01-12", IsVacation: true},
	}
}

func TestSnapshotRepositoryFindByKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), "turnos.json")
	writeSnapshot(t, path, snapshotFixture())
	repo := repository.NewSnapshotTurnoRepository(path)

	turno, err := repo.FindByKey("2025-01-10", nil)
	require.NoError(t, err)
	assert.Equal(t, models.ShiftTypeMorning, turno.ShiftType)

	alice := "alice"
	scoped, err := repo.FindByKey("2025-01-11", &alice)
	require.NoError(t, err)
	assert.Equal(t, models.ShiftTypeAfternoon, scoped.ShiftType)

	_, err = repo.FindByKey("2025-01-31", nil)
	assert.True(t, apperrors.IsNotFound(err))
}

func TestSnapshotRepositoryFindByRange(t *testing.T) {
	path := filepath.Join(t.TempDir(), "turnos.json")
	writeSnapshot(t, path, snapshotFixture())
	repo := repository.NewSnapshotTurnoRepository(path)

	turnos, err := repo.FindByRange("2025-01-10", "2025-01-11", nil, false)
	require.NoError(t, err)
	require.Len(t, turnos, 3)
	assert.Equal(t, "2025-01-10", turnos[0].Date)

	desc, err := repo.FindByRange("2025-01-10", "2025-01-12", nil, true)
	require.NoError(t, err)
	assert.Equal(t, "2025-01-12", desc[0].Date)

	alice := "alice"
	scoped, err := repo.FindByRange("2025-01-01", "2025-01-31", &alice, false)
	require.NoError(t, err)
	require.Len(t, scoped, 1)
	assert.Equal(t, "2025-01-11", scoped[0].Date)
}

func TestSnapshotRepositoryStats(t *testing.T) {
	path := filepath.Join(t.TempDir(), "turnos.json")
	writeSnapshot(t, path, snapshotFixture())
	repo := repository.NewSnapshotTurnoRepository(path)

	stats, err := repo.Stats("", "")
	require.NoError(t, err)
	assert.Equal(t, int64(4), stats.Total)
	assert.Equal(t, int64(1), stats.VacationCount)
	assert.Equal(t, int64(1), stats.CountByShiftType[models.ShiftTypeMorning])
	assert.Equal(t, int64(1), stats.CountByShiftType[models.ShiftTypeNight])
	assert.Equal(t, int64(1), stats.CountByShiftType[models.ShiftTypeAfternoon])

	bounded, err := repo.Stats("2025-01-11", "2025-01-11")
	require.NoError(t, err)
	assert.Equal(t, int64(2), bounded.Total)
}

func TestSnapshotRepositoryReloadsOnFileChange(t *testing.T) {
	path := filepath.Join(t.TempDir(), "turnos.json")
	writeSnapshot(t, path, snapshotFixture())
	repo := repository.NewSnapshotTurnoRepository(path)

	turnos, err := repo.FindByRange("2025-01-01", "2025-12-31", nil, false)
	require.NoError(t, err)
	require.Len(t, turnos, 4)

	// Rewrite the file with one extra day and bump mtime past the cached value.
	updated := append(snapshotFixture(), models.Turno{Date: "2025-01-13", ShiftType: models.ShiftTypeMorning})
	writeSnapshot(t, path, updated)
	future := time.Now().Add(2 * time.Second)
	require.NoError(t, os.Chtimes(path, future, future))

	turnos, err = repo.FindByRange("2025-01-01", "2025-12-31", nil, false)
	require.NoError(t, err)
	assert.Len(t, turnos, 5)
}

func TestSnapshotRepositoryMissingFile(t *testing.T) {
	repo := repository.NewSnapshotTurnoRepository(filepath.Join(t.TempDir(), "missing.json"))

	_, err := repo.FindByKey("2025-01-10", nil)
	require.Error(t, err)
	assert.True(t, apperrors.IsStorage(err))
}

func TestSnapshotRepositoryMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "turnos.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))
	repo := repository.NewSnapshotTurnoRepository(path)

	_, err := repo.Stats("", "")
	require.Error(t, err)
	assert.True(t, apperrors.IsStorage(err))
}

func TestSnapshotRepositoryRejectsWrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "turnos.json")
	writeSnapshot(t, path, snapshotFixture())
	repo := repository.NewSnapshotTurnoRepository(path)

	turno := &models.Turno{Date: "2025-02-01", ShiftType: models.ShiftTypeMorning}

	assert.True(t, apperrors.IsReadOnlyMode(repo.Create(turno)))
	assert.True(t, apperrors.IsReadOnlyMode(repo.Update(turno)))
	assert.True(t, apperrors.IsReadOnlyMode(repo.Delete("2025-01-10", nil)))

	_, _, err := repo.Upsert(turno)
	assert.True(t, apperrors.IsReadOnlyMode(err))

	_, err = repo.DeleteOlderThan("2025-01-01")
	assert.True(t, apperrors.IsReadOnlyMode(err))
}
