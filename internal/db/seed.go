package db

import (
	"context"
	"fmt"

	"github.com/murtaDuElama/FitnessCenter/internal/auth"
	"github.com/murtaDuElama/FitnessCenter/internal/logger"

	"github.com/jmoiron/sqlx"
)

type seedService struct {
	name            string
	durationMinutes int
	price           float64
}

type seedTrainer struct {
	fullName  string
	specialty string
	workStart string
	workEnd   string
}

var starterServices = []seedService{
	{"Fitness", 60, 250},
	{"Yoga", 45, 200},
	{"Pilates", 45, 200},
}

var starterTrainers = []seedTrainer{
	{"Ahmet Yilmaz", "Fitness", "09:00", "18:00"},
	{"Ayse Kaya", "Yoga", "09:00", "15:00"},
	{"Mehmet Demir", "Pilates", "10:00", "17:00"},
}

// Seed inserts the default admin account and the starter catalog. It is
// idempotent and safe to run on every startup.
func Seed(ctx context.Context, db *sqlx.DB, adminEmail, adminPassword string) error {
	if err := seedAdmin(ctx, db, adminEmail, adminPassword); err != nil {
		return err
	}
	if err := seedServices(ctx, db); err != nil {
		return err
	}
	return seedTrainers(ctx, db)
}

func seedAdmin(ctx context.Context, db *sqlx.DB, email, password string) error {
	exists, err := Exists(ctx, db, `SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)`, email)
	if err != nil {
		return fmt.Errorf("seed: check admin: %w", err)
	}
	if exists {
		return nil
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return fmt.Errorf("seed: hash admin password: %w", err)
	}

	_, err = db.ExecContext(ctx, `
		INSERT INTO users (name, email, password_hash, role)
		VALUES ($1, $2, $3, $4)
	`, "System Administrator", email, hash, auth.RoleAdmin)
	if err != nil {
		return fmt.Errorf("seed: create admin: %w", err)
	}

	logger.Infof("Seeded admin account %s", email)
	return nil
}

func seedServices(ctx context.Context, db *sqlx.DB) error {
	exists, err := Exists(ctx, db, `SELECT EXISTS(SELECT 1 FROM services)`)
	if err != nil {
		return fmt.Errorf("seed: check services: %w", err)
	}
	if exists {
		return nil
	}

	for _, s := range starterServices {
		_, err := db.ExecContext(ctx, `
			INSERT INTO services (name, duration_minutes, price)
			VALUES ($1, $2, $3)
		`, s.name, s.durationMinutes, s.price)
		if err != nil {
			return fmt.Errorf("seed: create service %s: %w", s.name, err)
		}
	}

	logger.Infof("Seeded %d starter services", len(starterServices))
	return nil
}

func seedTrainers(ctx context.Context, db *sqlx.DB) error {
	exists, err := Exists(ctx, db, `SELECT EXISTS(SELECT 1 FROM trainers)`)
	if err != nil {
		return fmt.Errorf("seed: check trainers: %w", err)
	}
	if exists {
		return nil
	}

	for _, t := range starterTrainers {
		_, err := db.ExecContext(ctx, `
			INSERT INTO trainers (full_name, specialty, work_start, work_end)
			VALUES ($1, $2, $3, $4)
		`, t.fullName, t.specialty, t.workStart, t.workEnd)
		if err != nil {
			return fmt.Errorf("seed: create trainer %s: %w", t.fullName, err)
		}
	}

	logger.Infof("Seeded %d starter trainers", len(starterTrainers))
	return nil
}
