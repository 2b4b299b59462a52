package report

import (
	"context"
	"strconv"
	"time"

	"github.com/jmoiron/sqlx"
)

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) GetRows(ctx context.Context, from, to *time.Time) ([]Row, error) {
	query := `
		SELECT
			a.id,
			a.member_name,
			u.email AS member_email,
			s.name AS service_name,
			s.price AS service_price,
			t.full_name AS trainer_name,
			a.date,
			a.time,
			a.approved
		FROM appointments a
		JOIN services s ON a.service_id = s.id
		JOIN trainers t ON a.trainer_id = t.id
		JOIN users u ON a.user_id = u.id
		WHERE 1=1
	`
	args := []interface{}{}

	if from != nil {
		args = append(args, from.Format("2006-01-02"))
		query += ` AND a.date >= $` + strconv.Itoa(len(args))
	}
	if to != nil {
		args = append(args, to.Format("2006-01-02"))
		query += ` AND a.date <= $` + strconv.Itoa(len(args))
	}

	query += ` ORDER BY a.date DESC, a.time DESC`

	var rows []Row
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, err
	}

	return rows, nil
}

func (r *repository) GetStats(ctx context.Context, now time.Time) (*Stats, error) {
	today := now.Format("2006-01-02")
	// week starts on Monday
	weekday := int(now.Weekday())
	if weekday == 0 {
		weekday = 7
	}
	weekStart := now.AddDate(0, 0, -(weekday - 1)).Format("2006-01-02")
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).Format("2006-01-02")

	var counts Counts
	countsQuery := `
		SELECT
			COUNT(*) AS total,
			COUNT(*) FILTER (WHERE date = $1) AS today,
			COUNT(*) FILTER (WHERE date >= $2) AS this_week,
			COUNT(*) FILTER (WHERE date >= $3) AS this_month,
			COUNT(*) FILTER (WHERE approved) AS approved,
			COUNT(*) FILTER (WHERE NOT approved) AS pending
		FROM appointments
	`
	if err := r.db.GetContext(ctx, &counts, countsQuery, today, weekStart, monthStart); err != nil {
		return nil, err
	}

	var revenue Revenue
	revenueQuery := `
		SELECT
			COALESCE(SUM(s.price), 0) AS total,
			COALESCE(SUM(s.price) FILTER (WHERE a.date >= $1), 0) AS this_month
		FROM appointments a
		JOIN services s ON a.service_id = s.id
		WHERE a.approved
	`
	if err := r.db.GetContext(ctx, &revenue, revenueQuery, monthStart); err != nil {
		return nil, err
	}

	var perService []ServiceBreakdown
	perServiceQuery := `
		SELECT
			s.name AS service_name,
			COUNT(a.id) AS count,
			COALESCE(SUM(s.price) FILTER (WHERE a.approved), 0) AS revenue
		FROM services s
		LEFT JOIN appointments a ON a.service_id = s.id
		GROUP BY s.name
		ORDER BY count DESC, s.name ASC
	`
	if err := r.db.SelectContext(ctx, &perService, perServiceQuery); err != nil {
		return nil, err
	}

	var perTrainer []TrainerBreakdown
	perTrainerQuery := `
		SELECT
			t.full_name AS trainer_name,
			COUNT(a.id) AS count
		FROM trainers t
		LEFT JOIN appointments a ON a.trainer_id = t.id
		GROUP BY t.full_name
		ORDER BY count DESC, t.full_name ASC
	`
	if err := r.db.SelectContext(ctx, &perTrainer, perTrainerQuery); err != nil {
		return nil, err
	}

	return &Stats{
		Counts:     counts,
		Revenue:    revenue,
		PerService: perService,
		PerTrainer: perTrainer,
	}, nil
}
