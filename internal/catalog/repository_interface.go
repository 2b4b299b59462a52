package catalog

import (
	"context"
	"time"
)

type Repository interface {
	CreateService(ctx context.Context, name string, durationMinutes int, price float64) (*Service, error)
	GetAllServices(ctx context.Context) ([]Service, error)
	GetServiceByID(ctx context.Context, id int) (*Service, error)
	UpdateService(ctx context.Context, id int, name string, durationMinutes int, price float64) (*Service, error)
	DeleteService(ctx context.Context, id int) error

	CreateTrainer(ctx context.Context, fullName, specialty, workStart, workEnd string, photoURL *string) (*Trainer, error)
	GetAllTrainers(ctx context.Context) ([]Trainer, error)
	GetTrainerByID(ctx context.Context, id int) (*Trainer, error)
	UpdateTrainer(ctx context.Context, id int, fullName, specialty, workStart, workEnd string, photoURL *string) (*Trainer, error)
	DeleteTrainer(ctx context.Context, id int) error

	GetTrainersBySpecialty(ctx context.Context, specialty string) ([]Trainer, error)
	GetAvailableTrainers(ctx context.Context, specialty string, date time.Time, slot string) ([]Trainer, error)
}
