package appointment

import (
	"context"
	"time"
)

type Repository interface {
	Create(ctx context.Context, userID int, memberName string, serviceID, trainerID int, date time.Time, slot string, approved bool) (*Appointment, error)
	GetByID(ctx context.Context, id int) (*Appointment, error)
	GetByUser(ctx context.Context, userID int) ([]AppointmentWithDetails, error)
	GetByTrainerAndDate(ctx context.Context, trainerID int, date time.Time) ([]Appointment, error)
	TrainerSlotTaken(ctx context.Context, trainerID int, date time.Time, slot string) (bool, error)
	MemberSlotTaken(ctx context.Context, userID int, date time.Time, slot string) (bool, error)
	SetApproved(ctx context.Context, id int, approved bool) error
	Delete(ctx context.Context, id int) error
	GetAll(ctx context.Context, filter AdminFilter) ([]AppointmentWithDetails, error)
}
