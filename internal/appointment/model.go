package appointment

import "time"

type Appointment struct {
	ID         int       `db:"id" json:"id"`
	UserID     int       `db:"user_id" json:"user_id"`
	MemberName string    `db:"member_name" json:"member_name"`
	ServiceID  int       `db:"service_id" json:"service_id"`
	TrainerID  int       `db:"trainer_id" json:"trainer_id"`
	Date       time.Time `db:"date" json:"date"`
	Time       string    `db:"time" json:"time"`
	Approved   bool      `db:"approved" json:"approved"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
}

type AppointmentWithDetails struct {
	Appointment
	ServiceName      string  `db:"service_name" json:"service_name"`
	ServicePrice     float64 `db:"service_price" json:"service_price"`
	TrainerName      string  `db:"trainer_name" json:"trainer_name"`
	TrainerSpecialty string  `db:"trainer_specialty" json:"trainer_specialty"`
	MemberEmail      string  `db:"member_email" json:"member_email"`
}

type CreateAppointmentRequest struct {
	ServiceID int    `json:"service_id" binding:"required"`
	TrainerID int    `json:"trainer_id" binding:"required"`
	Date      string `json:"date" binding:"required"`
	// Time is validated by the booking guard so that a blank value maps
	// to the invalid-input error instead of a binding failure.
	Time string `json:"time"`
}

// AdminFilter narrows the admin appointment listing.
type AdminFilter struct {
	From      *time.Time
	To        *time.Time
	Approved  *bool
	ServiceID *int
	TrainerID *int
}
