package catalog

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/stretchr/testify/require"
)

func setupMock(t *testing.T) (Repository, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	sqlxDB := sqlx.NewDb(db, "sqlmock")
	repo := NewRepository(sqlxDB)

	closer := func() {
		sqlxDB.Close()
	}

	return repo, mock, closer
}

func serviceColumns() []string {
	return []string{"id", "name", "duration_minutes", "price", "created_at"}
}

func trainerColumns() []string {
	return []string{"id", "full_name", "specialty", "work_start", "work_end", "photo_url", "created_at"}
}

func TestCreateService(t *testing.T) {
	repo, mock, close := setupMock(t)
	defer close()

	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO services (name, duration_minutes, price) VALUES ($1, $2, $3) RETURNING id, name, duration_minutes, price, created_at")).
		WithArgs("Yoga", 45, 200.0).
		WillReturnRows(sqlmock.NewRows(serviceColumns()).AddRow(1, "Yoga", 45, 200.0, now))

	s, err := repo.CreateService(context.Background(), "Yoga", 45, 200.0)
	require.NoError(t, err)
	require.Equal(t, 1, s.ID)
	require.Equal(t, "Yoga", s.Name)
}

func TestCreateService_DuplicateName(t *testing.T) {
	repo, mock, close := setupMock(t)
	defer close()

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO services")).
		WithArgs("Yoga", 45, 200.0).
		WillReturnError(&pq.Error{Code: "23505"})

	s, err := repo.CreateService(context.Background(), "Yoga", 45, 200.0)
	require.Error(t, err)
	require.Equal(t, ErrServiceNameTaken, err)
	require.Nil(t, s)
}

func TestDeleteService(t *testing.T) {
	repo, mock, close := setupMock(t)
	defer close()

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM services WHERE id = $1")).
		WithArgs(3).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.DeleteService(context.Background(), 3))

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM services WHERE id = $1")).
		WithArgs(4).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.DeleteService(context.Background(), 4)
	require.Equal(t, ErrServiceNotFound, err)
}

func TestGetTrainersBySpecialty(t *testing.T) {
	repo, mock, close := setupMock(t)
	defer close()

	now := time.Now()

	rows := sqlmock.NewRows(trainerColumns()).
		AddRow(1, "Ada", "Yoga", "09:00", "15:00", nil, now).
		AddRow(2, "Grace", "yoga", "10:00", "18:00", nil, now)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, full_name, specialty, work_start, work_end, photo_url, created_at FROM trainers WHERE LOWER(specialty) = LOWER($1) ORDER BY full_name ASC")).
		WithArgs("Yoga").
		WillReturnRows(rows)

	trainers, err := repo.GetTrainersBySpecialty(context.Background(), "Yoga")
	require.NoError(t, err)
	require.Len(t, trainers, 2)
	require.Equal(t, "Ada", trainers[0].FullName)
}

func TestGetAvailableTrainers(t *testing.T) {
	repo, mock, close := setupMock(t)
	defer close()

	now := time.Now()
	date := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)

	rows := sqlmock.NewRows(trainerColumns()).
		AddRow(1, "Ada", "Yoga", "09:00", "15:00", nil, now)

	mock.ExpectQuery("SELECT t.id, t.full_name, t.specialty").
		WithArgs("Yoga", "2025-06-10", "10:00").
		WillReturnRows(rows)

	trainers, err := repo.GetAvailableTrainers(context.Background(), "Yoga", date, "10:00")
	require.NoError(t, err)
	require.Len(t, trainers, 1)
}

func TestUpdateTrainer_NotFound(t *testing.T) {
	repo, mock, close := setupMock(t)
	defer close()

	mock.ExpectQuery(regexp.QuoteMeta("UPDATE trainers")).
		WithArgs(99, "Ada", "Yoga", "09:00", "15:00", nil).
		WillReturnRows(sqlmock.NewRows(trainerColumns()))

	trainer, err := repo.UpdateTrainer(context.Background(), 99, "Ada", "Yoga", "09:00", "15:00", nil)
	require.Error(t, err)
	require.Nil(t, trainer)
}
