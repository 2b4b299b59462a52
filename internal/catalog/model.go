package catalog

import "time"

type Service struct {
	ID              int       `db:"id" json:"id"`
	Name            string    `db:"name" json:"name"`
	DurationMinutes int       `db:"duration_minutes" json:"duration_minutes"`
	Price           float64   `db:"price" json:"price"`
	CreatedAt       time.Time `db:"created_at" json:"created_at"`
}

type Trainer struct {
	ID       int    `db:"id" json:"id"`
	FullName string `db:"full_name" json:"full_name"`
	// Specialty is matched against a service name to decide which
	// trainers are eligible for that service.
	Specialty string    `db:"specialty" json:"specialty"`
	WorkStart string    `db:"work_start" json:"work_start"`
	WorkEnd   string    `db:"work_end" json:"work_end"`
	PhotoURL  *string   `db:"photo_url" json:"photo_url,omitempty"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

type CreateServiceRequest struct {
	Name            string  `json:"name" binding:"required"`
	DurationMinutes int     `json:"duration_minutes" binding:"required,min=15,max=180"`
	Price           float64 `json:"price" binding:"required,gte=0"`
}

type UpdateServiceRequest struct {
	Name            string  `json:"name" binding:"required"`
	DurationMinutes int     `json:"duration_minutes" binding:"required,min=15,max=180"`
	Price           float64 `json:"price" binding:"required,gte=0"`
}

type CreateTrainerRequest struct {
	FullName  string  `json:"full_name" binding:"required"`
	Specialty string  `json:"specialty" binding:"required"`
	WorkStart string  `json:"work_start" binding:"omitempty,len=5"`
	WorkEnd   string  `json:"work_end" binding:"omitempty,len=5"`
	PhotoURL  *string `json:"photo_url"`
}

type UpdateTrainerRequest struct {
	FullName  string  `json:"full_name" binding:"required"`
	Specialty string  `json:"specialty" binding:"required"`
	WorkStart string  `json:"work_start" binding:"required,len=5"`
	WorkEnd   string  `json:"work_end" binding:"required,len=5"`
	PhotoURL  *string `json:"photo_url"`
}
