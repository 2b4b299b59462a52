package catalog

import (
	"context"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

var (
	ErrServiceNotFound  = errors.New("service not found")
	ErrTrainerNotFound  = errors.New("trainer not found")
	ErrServiceNameTaken = errors.New("service name already exists")
)

const uniqueViolation = "23505"

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == uniqueViolation
}

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) CreateService(ctx context.Context, name string, durationMinutes int, price float64) (*Service, error) {
	query := `
		INSERT INTO services (name, duration_minutes, price)
		VALUES ($1, $2, $3)
		RETURNING id, name, duration_minutes, price, created_at
	`

	var service Service
	err := r.db.GetContext(ctx, &service, query, name, durationMinutes, price)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrServiceNameTaken
		}
		return nil, err
	}

	return &service, nil
}

func (r *repository) GetAllServices(ctx context.Context) ([]Service, error) {
	query := `
		SELECT id, name, duration_minutes, price, created_at
		FROM services
		ORDER BY name ASC
	`

	var services []Service
	err := r.db.SelectContext(ctx, &services, query)
	if err != nil {
		return nil, err
	}

	return services, nil
}

func (r *repository) GetServiceByID(ctx context.Context, id int) (*Service, error) {
	query := `
		SELECT id, name, duration_minutes, price, created_at
		FROM services
		WHERE id = $1
	`

	var service Service
	err := r.db.GetContext(ctx, &service, query, id)
	if err != nil {
		return nil, err
	}

	return &service, nil
}

func (r *repository) UpdateService(ctx context.Context, id int, name string, durationMinutes int, price float64) (*Service, error) {
	query := `
		UPDATE services
		SET name = $2, duration_minutes = $3, price = $4
		WHERE id = $1
		RETURNING id, name, duration_minutes, price, created_at
	`

	var service Service
	err := r.db.GetContext(ctx, &service, query, id, name, durationMinutes, price)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrServiceNameTaken
		}
		return nil, err
	}

	return &service, nil
}

func (r *repository) DeleteService(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM services WHERE id = $1`, id)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return ErrServiceNotFound
	}

	return nil
}

func (r *repository) CreateTrainer(ctx context.Context, fullName, specialty, workStart, workEnd string, photoURL *string) (*Trainer, error) {
	query := `
		INSERT INTO trainers (full_name, specialty, work_start, work_end, photo_url)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, full_name, specialty, work_start, work_end, photo_url, created_at
	`

	var trainer Trainer
	err := r.db.GetContext(ctx, &trainer, query, fullName, specialty, workStart, workEnd, photoURL)
	if err != nil {
		return nil, err
	}

	return &trainer, nil
}

func (r *repository) GetAllTrainers(ctx context.Context) ([]Trainer, error) {
	query := `
		SELECT id, full_name, specialty, work_start, work_end, photo_url, created_at
		FROM trainers
		ORDER BY full_name ASC
	`

	var trainers []Trainer
	err := r.db.SelectContext(ctx, &trainers, query)
	if err != nil {
		return nil, err
	}

	return trainers, nil
}

func (r *repository) GetTrainerByID(ctx context.Context, id int) (*Trainer, error) {
	query := `
		SELECT id, full_name, specialty, work_start, work_end, photo_url, created_at
		FROM trainers
		WHERE id = $1
	`

	var trainer Trainer
	err := r.db.GetContext(ctx, &trainer, query, id)
	if err != nil {
		return nil, err
	}

	return &trainer, nil
}

func (r *repository) UpdateTrainer(ctx context.Context, id int, fullName, specialty, workStart, workEnd string, photoURL *string) (*Trainer, error) {
	query := `
		UPDATE trainers
		SET full_name = $2, specialty = $3, work_start = $4, work_end = $5, photo_url = $6
		WHERE id = $1
		RETURNING id, full_name, specialty, work_start, work_end, photo_url, created_at
	`

	var trainer Trainer
	err := r.db.GetContext(ctx, &trainer, query, id, fullName, specialty, workStart, workEnd, photoURL)
	if err != nil {
		return nil, err
	}

	return &trainer, nil
}

func (r *repository) DeleteTrainer(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM trainers WHERE id = $1`, id)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return ErrTrainerNotFound
	}

	return nil
}

// GetTrainersBySpecialty matches trainers whose specialty equals the
// service name, case-insensitively.
func (r *repository) GetTrainersBySpecialty(ctx context.Context, specialty string) ([]Trainer, error) {
	query := `
		SELECT id, full_name, specialty, work_start, work_end, photo_url, created_at
		FROM trainers
		WHERE LOWER(specialty) = LOWER($1)
		ORDER BY full_name ASC
	`

	var trainers []Trainer
	err := r.db.SelectContext(ctx, &trainers, query, specialty)
	if err != nil {
		return nil, err
	}

	return trainers, nil
}

// GetAvailableTrainers returns trainers of the given specialty that work
// the requested slot and have no appointment on it for that date.
func (r *repository) GetAvailableTrainers(ctx context.Context, specialty string, date time.Time, slot string) ([]Trainer, error) {
	query := `
		SELECT t.id, t.full_name, t.specialty, t.work_start, t.work_end, t.photo_url, t.created_at
		FROM trainers t
		WHERE LOWER(t.specialty) = LOWER($1)
		  AND t.work_start <= $3 AND t.work_end >= $3
		  AND NOT EXISTS (
			SELECT 1 FROM appointments a
			WHERE a.trainer_id = t.id AND a.date = $2 AND LOWER(a.time) = LOWER($3)
		  )
		ORDER BY t.full_name ASC
	`

	var trainers []Trainer
	err := r.db.SelectContext(ctx, &trainers, query, specialty, date.Format("2006-01-02"), slot)
	if err != nil {
		return nil, err
	}

	return trainers, nil
}
