package report

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
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

func TestGetRows(t *testing.T) {
	repo, mock, close := setupMock(t)
	defer close()

	date := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)
	from := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	rows := sqlmock.NewRows([]string{"id", "member_name", "member_email", "service_name", "service_price", "trainer_name", "date", "time", "approved"}).
		AddRow(1, "Ada", "ada@example.com", "Yoga", 200.0, "Grace Trainer", date, "10:00", true)

	mock.ExpectQuery(regexp.QuoteMeta("AND a.date >= $1")).
		WithArgs("2026-09-01").
		WillReturnRows(rows)

	result, err := repo.GetRows(context.Background(), &from, nil)
	require.NoError(t, err)
	require.Len(t, result, 1)
	require.Equal(t, "Yoga", result[0].ServiceName)
	require.Equal(t, 200.0, result[0].ServicePrice)
}

func TestGetStats(t *testing.T) {
	repo, mock, close := setupMock(t)
	defer close()

	now := time.Date(2026, 9, 10, 12, 0, 0, 0, time.UTC)

	mock.ExpectQuery("COUNT").
		WithArgs("2026-09-10", "2026-09-07", "2026-09-01").
		WillReturnRows(sqlmock.NewRows([]string{"total", "today", "this_week", "this_month", "approved", "pending"}).
			AddRow(10, 2, 5, 8, 6, 4))

	mock.ExpectQuery(regexp.QuoteMeta("COALESCE(SUM(s.price), 0)")).
		WithArgs("2026-09-01").
		WillReturnRows(sqlmock.NewRows([]string{"total", "this_month"}).AddRow(1500.0, 900.0))

	mock.ExpectQuery("GROUP BY s.name").
		WillReturnRows(sqlmock.NewRows([]string{"service_name", "count", "revenue"}).
			AddRow("Yoga", 6, 1200.0).
			AddRow("Pilates", 4, 300.0))

	mock.ExpectQuery("GROUP BY t.full_name").
		WillReturnRows(sqlmock.NewRows([]string{"trainer_name", "count"}).
			AddRow("Grace Trainer", 7).
			AddRow("Alan Trainer", 3))

	stats, err := repo.GetStats(context.Background(), now)
	require.NoError(t, err)
	require.Equal(t, 10, stats.Counts.Total)
	require.Equal(t, 2, stats.Counts.Today)
	require.Equal(t, 6, stats.Counts.Approved)
	require.Equal(t, 1500.0, stats.Revenue.Total)
	require.Len(t, stats.PerService, 2)
	require.Equal(t, "Grace Trainer", stats.PerTrainer[0].TrainerName)
}

func TestGetStats_WeekStartsMonday(t *testing.T) {
	repo, mock, close := setupMock(t)
	defer close()

	// 2026-09-13 is a Sunday, so the week began on 2026-09-07
	now := time.Date(2026, 9, 13, 12, 0, 0, 0, time.UTC)

	mock.ExpectQuery("COUNT").
		WithArgs("2026-09-13", "2026-09-07", "2026-09-01").
		WillReturnRows(sqlmock.NewRows([]string{"total", "today", "this_week", "this_month", "approved", "pending"}).
			AddRow(0, 0, 0, 0, 0, 0))

	mock.ExpectQuery(regexp.QuoteMeta("COALESCE(SUM(s.price), 0)")).
		WithArgs("2026-09-01").
		WillReturnRows(sqlmock.NewRows([]string{"total", "this_month"}).AddRow(0.0, 0.0))

	mock.ExpectQuery("GROUP BY s.name").
		WillReturnRows(sqlmock.NewRows([]string{"service_name", "count", "revenue"}))

	mock.ExpectQuery("GROUP BY t.full_name").
		WillReturnRows(sqlmock.NewRows([]string{"trainer_name", "count"}))

	stats, err := repo.GetStats(context.Background(), now)
	require.NoError(t, err)
	require.Equal(t, 0, stats.Counts.Total)
	require.NoError(t, mock.ExpectationsWereMet())
}
