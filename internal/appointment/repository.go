package appointment

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

const uniqueViolation = "23505"

const detailColumns = `
		a.id,
		a.user_id,
		a.member_name,
		a.service_id,
		a.trainer_id,
		a.date,
		a.time,
		a.approved,
		a.created_at,
		s.name AS service_name,
		s.price AS service_price,
		t.full_name AS trainer_name,
		t.specialty AS trainer_specialty,
		u.email AS member_email`

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, userID int, memberName string, serviceID, trainerID int, date time.Time, slot string, approved bool) (*Appointment, error) {
	query := `
		INSERT INTO appointments (user_id, member_name, service_id, trainer_id, date, time, approved)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, user_id, member_name, service_id, trainer_id, date, time, approved, created_at
	`

	var appt Appointment
	err := r.db.GetContext(ctx, &appt, query, userID, memberName, serviceID, trainerID, date.Format("2006-01-02"), slot, approved)
	if err != nil {
		// The unique index on (trainer_id, date, time) closes the
		// check-then-insert race between concurrent bookings.
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return nil, ErrTrainerSlotTaken
		}
		return nil, err
	}

	return &appt, nil
}

func (r *repository) GetByID(ctx context.Context, id int) (*Appointment, error) {
	query := `
		SELECT id, user_id, member_name, service_id, trainer_id, date, time, approved, created_at
		FROM appointments
		WHERE id = $1
	`

	var appt Appointment
	err := r.db.GetContext(ctx, &appt, query, id)
	if err != nil {
		return nil, err
	}

	return &appt, nil
}

func (r *repository) GetByUser(ctx context.Context, userID int) ([]AppointmentWithDetails, error) {
	query := `
		SELECT ` + detailColumns + `
		FROM appointments a
		JOIN services s ON a.service_id = s.id
		JOIN trainers t ON a.trainer_id = t.id
		JOIN users u ON a.user_id = u.id
		WHERE a.user_id = $1
		ORDER BY a.date DESC, a.time DESC
	`

	var appts []AppointmentWithDetails
	err := r.db.SelectContext(ctx, &appts, query, userID)
	if err != nil {
		return nil, err
	}

	return appts, nil
}

func (r *repository) GetByTrainerAndDate(ctx context.Context, trainerID int, date time.Time) ([]Appointment, error) {
	query := `
		SELECT id, user_id, member_name, service_id, trainer_id, date, time, approved, created_at
		FROM appointments
		WHERE trainer_id = $1 AND date = $2
		ORDER BY time ASC
	`

	var appts []Appointment
	err := r.db.SelectContext(ctx, &appts, query, trainerID, date.Format("2006-01-02"))
	if err != nil {
		return nil, err
	}

	return appts, nil
}

func (r *repository) TrainerSlotTaken(ctx context.Context, trainerID int, date time.Time, slot string) (bool, error) {
	query := `
		SELECT EXISTS(
			SELECT 1 FROM appointments
			WHERE trainer_id = $1 AND date = $2 AND LOWER(time) = LOWER($3)
		)
	`

	var exists bool
	err := r.db.GetContext(ctx, &exists, query, trainerID, date.Format("2006-01-02"), slot)
	if err != nil {
		return false, err
	}

	return exists, nil
}

func (r *repository) MemberSlotTaken(ctx context.Context, userID int, date time.Time, slot string) (bool, error) {
	query := `
		SELECT EXISTS(
			SELECT 1 FROM appointments
			WHERE user_id = $1 AND date = $2 AND LOWER(time) = LOWER($3)
		)
	`

	var exists bool
	err := r.db.GetContext(ctx, &exists, query, userID, date.Format("2006-01-02"), slot)
	if err != nil {
		return false, err
	}

	return exists, nil
}

func (r *repository) SetApproved(ctx context.Context, id int, approved bool) error {
	result, err := r.db.ExecContext(ctx, `UPDATE appointments SET approved = $2 WHERE id = $1`, id, approved)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return ErrAppointmentNotFound
	}

	return nil
}

func (r *repository) Delete(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM appointments WHERE id = $1`, id)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return ErrAppointmentNotFound
	}

	return nil
}

func (r *repository) GetAll(ctx context.Context, filter AdminFilter) ([]AppointmentWithDetails, error) {
	query := `
		SELECT ` + detailColumns + `
		FROM appointments a
		JOIN services s ON a.service_id = s.id
		JOIN trainers t ON a.trainer_id = t.id
		JOIN users u ON a.user_id = u.id
		WHERE 1=1
	`
	args := []interface{}{}

	if filter.From != nil {
		args = append(args, filter.From.Format("2006-01-02"))
		query += ` AND a.date >= $` + strconv.Itoa(len(args))
	}
	if filter.To != nil {
		args = append(args, filter.To.Format("2006-01-02"))
		query += ` AND a.date <= $` + strconv.Itoa(len(args))
	}
	if filter.Approved != nil {
		args = append(args, *filter.Approved)
		query += ` AND a.approved = $` + strconv.Itoa(len(args))
	}
	if filter.ServiceID != nil {
		args = append(args, *filter.ServiceID)
		query += ` AND a.service_id = $` + strconv.Itoa(len(args))
	}
	if filter.TrainerID != nil {
		args = append(args, *filter.TrainerID)
		query += ` AND a.trainer_id = $` + strconv.Itoa(len(args))
	}

	query += ` ORDER BY a.date DESC, a.time DESC`

	var appts []AppointmentWithDetails
	err := r.db.SelectContext(ctx, &appts, query, args...)
	if err != nil {
		return nil, err
	}

	return appts, nil
}
