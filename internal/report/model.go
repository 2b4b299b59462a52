package report

import "time"

// Row is one line of the admin appointment report, with the joined
// service and trainer details an administrator needs on screen.
type Row struct {
	ID           int       `db:"id" json:"id"`
	MemberName   string    `db:"member_name" json:"member_name"`
	MemberEmail  string    `db:"member_email" json:"member_email"`
	ServiceName  string    `db:"service_name" json:"service_name"`
	ServicePrice float64   `db:"service_price" json:"service_price"`
	TrainerName  string    `db:"trainer_name" json:"trainer_name"`
	Date         time.Time `db:"date" json:"date"`
	Time         string    `db:"time" json:"time"`
	Approved     bool      `db:"approved" json:"approved"`
}

type Counts struct {
	Total     int `db:"total" json:"total"`
	Today     int `db:"today" json:"today"`
	ThisWeek  int `db:"this_week" json:"this_week"`
	ThisMonth int `db:"this_month" json:"this_month"`
	Approved  int `db:"approved" json:"approved"`
	Pending   int `db:"pending" json:"pending"`
}

type Revenue struct {
	Total     float64 `db:"total" json:"total"`
	ThisMonth float64 `db:"this_month" json:"this_month"`
}

type ServiceBreakdown struct {
	ServiceName string  `db:"service_name" json:"service_name"`
	Count       int     `db:"count" json:"count"`
	Revenue     float64 `db:"revenue" json:"revenue"`
}

type TrainerBreakdown struct {
	TrainerName string `db:"trainer_name" json:"trainer_name"`
	Count       int    `db:"count" json:"count"`
}

// Stats is the aggregate dashboard payload. Revenue only counts
// approved appointments.
type Stats struct {
	Counts     Counts             `json:"counts"`
	Revenue    Revenue            `json:"revenue"`
	PerService []ServiceBreakdown `json:"per_service"`
	PerTrainer []TrainerBreakdown `json:"per_trainer"`
}
