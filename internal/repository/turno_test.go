package repository_test

import (
	"testing"
	"time"

	"turnos-backend/internal/database/models"
	apperrors "turnos-backend/internal/errors"
	"turnos-backend/internal/repository"
	"turnos-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
)

type TurnoRepositoryTestSuite struct {
	*testutils.BaseTestSuite
	repo    *repository.PostgresTurnoRepository
	factory *testutils.TurnoFactory
}

func TestTurnoRepositoryTestSuite(t *testing.T) {
	base := testutils.SetupTestSuite(t)
	s := &TurnoRepositoryTestSuite{BaseTestSuite: base}
	s.repo = repository.NewPostgresTurnoRepository(base.DB)
	s.factory = testutils.NewTurnoFactory(base.DB)
	suite.Run(t, s)
}

func strPtr(s string) *string { return &s }

func (s *TurnoRepositoryTestSuite) TestCreateAndFindByKey() {
	turno := s.factory.Build("2025-01-15", testutils.WithShift(models.ShiftTypeMorning, "07:00", "15:00"))
	s.Require().NoError(s.repo.Create(turno))

	found, err := s.repo.FindByKey("2025-01-15", nil)
	s.Require().NoError(err)
	s.Equal("2025-01-15", found.Date)
	s.Equal(models.ShiftTypeMorning, found.ShiftType)
	s.Require().NotNil(found.StartTime)
	s.Equal("07:00", *found.StartTime)
	s.NotZero(found.ID)
	s.False(found.CreatedAt.IsZero())
}

func (s *TurnoRepositoryTestSuite) TestFindByKeyNotFound() {
	_, err := s.repo.FindByKey("2025-01-15", nil)
	s.Require().Error(err)
	s.True(apperrors.IsNotFound(err))
}

func (s *TurnoRepositoryTestSuite) TestFindByKeyPersonScoping() {
	s.factory.Create(s.T(), "2025-01-15")
	s.factory.Create(s.T(), "2025-01-15", testutils.WithPersonID("alice"))

	general, err := s.repo.FindByKey("2025-01-15", nil)
	s.Require().NoError(err)
	s.Nil(general.PersonID)

	scoped, err := s.repo.FindByKey("2025-01-15", strPtr("alice"))
	s.Require().NoError(err)
	s.Require().NotNil(scoped.PersonID)
	s.Equal("alice", *scoped.PersonID)

	_, err = s.repo.FindByKey("2025-01-15", strPtr("bob"))
	s.True(apperrors.IsNotFound(err))
}

func (s *TurnoRepositoryTestSuite) TestFindByRange() {
	s.factory.Create(s.T(), "2025-01-10")
	s.factory.Create(s.T(), "2025-01-20")
	s.factory.Create(s.T(), "2025-01-31")
	s.factory.Create(s.T(), "2025-02-01")

	turnos, err := s.repo.FindByRange("2025-01-01", "2025-01-31", nil, false)
	s.Require().NoError(err)
	s.Require().Len(turnos, 3)
	s.Equal("2025-01-10", turnos[0].Date)
	s.Equal("2025-01-31", turnos[2].Date)

	desc, err := s.repo.FindByRange("2025-01-01", "2025-01-31", nil, true)
	s.Require().NoError(err)
	s.Equal("2025-01-31", desc[0].Date)
}

func (s *TurnoRepositoryTestSuite) TestFindByRangeFiltersByPerson() {
	s.factory.Create(s.T(), "2025-01-10")
	s.factory.Create(s.T(), "2025-01-11", testutils.WithPersonID("alice"))
	s.factory.Create(s.T(), "2025-01-12", testutils.WithPersonID("alice"))

	turnos, err := s.repo.FindByRange("2025-01-01", "2025-01-31", strPtr("alice"), false)
	s.Require().NoError(err)
	s.Len(turnos, 2)
	for _, turno := range turnos {
		s.Require().NotNil(turno.PersonID)
		s.Equal("alice", *turno.PersonID)
	}
}

func (s *TurnoRepositoryTestSuite) TestFindByRangeEmpty() {
	turnos, err := s.repo.FindByRange("2025-01-01", "2025-01-31", nil, false)
	s.Require().NoError(err)
	s.Empty(turnos)
}

func (s *TurnoRepositoryTestSuite) TestUpsertCreatesWhenMissing() {
	turno := s.factory.Build("2025-03-01", testutils.WithShift(models.ShiftTypeNight, "22:00", "00:00"))

	created, stored, err := s.repo.Upsert(turno)
	s.Require().NoError(err)
	s.True(created)
	s.Equal("2025-03-01", stored.Date)
	s.NotZero(stored.ID)
}

func (s *TurnoRepositoryTestSuite) TestUpsertReplacesPreservingCreatedAt() {
	original := s.factory.Create(s.T(), "2025-03-01", testutils.WithShift(models.ShiftTypeMorning, "07:00", "15:00"))

	replacement := s.factory.Build("2025-03-01", testutils.WithVacation())
	created, stored, err := s.repo.Upsert(replacement)
	s.Require().NoError(err)
	s.False(created)
	s.Equal(original.ID, stored.ID)
	s.WithinDuration(original.CreatedAt, stored.CreatedAt, time.Second)
	s.True(stored.IsVacation)
	s.Nil(stored.StartTime)
	s.Nil(stored.EndTime)

	// only one row remains for that date
	turnos, err := s.repo.FindByRange("2025-03-01", "2025-03-01", nil, false)
	s.Require().NoError(err)
	s.Len(turnos, 1)
}

func (s *TurnoRepositoryTestSuite) TestUpsertKeysOnPerson() {
	s.factory.Create(s.T(), "2025-03-01")

	scoped := s.factory.Build("2025-03-01", testutils.WithPersonID("alice"))
	created, _, err := s.repo.Upsert(scoped)
	s.Require().NoError(err)
	s.True(created)

	turnos, err := s.repo.FindByRange("2025-03-01", "2025-03-01", nil, false)
	s.Require().NoError(err)
	s.Len(turnos, 2)
}

func (s *TurnoRepositoryTestSuite) TestDelete() {
	s.factory.Create(s.T(), "2025-01-15")

	s.Require().NoError(s.repo.Delete("2025-01-15", nil))

	_, err := s.repo.FindByKey("2025-01-15", nil)
	s.True(apperrors.IsNotFound(err))
}

func (s *TurnoRepositoryTestSuite) TestDeleteNotFound() {
	err := s.repo.Delete("2025-01-15", nil)
	s.Require().Error(err)
	s.True(apperrors.IsNotFound(err))
}

func (s *TurnoRepositoryTestSuite) TestStats() {
	s.factory.Create(s.T(), "2025-01-01", testutils.WithShift(models.ShiftTypeMorning, "07:00", "15:00"))
	s.factory.Create(s.T(), "2025-01-02", testutils.WithShift(models.ShiftTypeMorning, "07:00", "15:00"))
	s.factory.Create(s.T(), "2025-01-03", testutils.WithShift(models.ShiftTypeNight, "22:00", "00:00"))
	s.factory.Create(s.T(), "2025-01-04", testutils.WithVacation())
	s.factory.Create(s.T(), "2025-02-10", testutils.WithShift(models.ShiftTypeAfternoon, "15:00", "23:00"))

	stats, err := s.repo.Stats("2025-01-01", "2025-01-31")
	s.Require().NoError(err)
	s.Equal(int64(4), stats.Total)
	s.Equal(int64(1), stats.VacationCount)
	s.Equal(int64(2), stats.CountByShiftType[models.ShiftTypeMorning])
	s.Equal(int64(1), stats.CountByShiftType[models.ShiftTypeNight])
	s.Zero(stats.CountByShiftType[models.ShiftTypeAfternoon])
}

func (s *TurnoRepositoryTestSuite) TestStatsOpenBounds() {
	s.factory.Create(s.T(), "2024-12-31")
	s.factory.Create(s.T(), "2025-01-01")

	stats, err := s.repo.Stats("", "")
	s.Require().NoError(err)
	s.Equal(int64(2), stats.Total)
}

func (s *TurnoRepositoryTestSuite) TestDeleteOlderThan() {
	s.factory.Create(s.T(), "2024-01-01")
	s.factory.Create(s.T(), "2024-05-31")
	s.factory.Create(s.T(), "2024-06-01")
	s.factory.Create(s.T(), "2025-01-01")

	deleted, err := s.repo.DeleteOlderThan("2024-06-01")
	s.Require().NoError(err)
	s.Equal(int64(2), deleted)

	remaining, err := s.repo.FindByRange("2024-01-01", "2025-12-31", nil, false)
	s.Require().NoError(err)
	s.Require().Len(remaining, 2)
	s.Equal("2024-06-01", remaining[0].Date)
	s.Equal("2025-01-01", remaining[1].Date)
}

func (s *TurnoRepositoryTestSuite) TestDeleteOlderThanNothingMatches() {
	s.factory.Create(s.T(), "2025-01-01")

	deleted, err := s.repo.DeleteOlderThan("2024-01-01")
	s.Require().NoError(err)
	s.Zero(deleted)
}
