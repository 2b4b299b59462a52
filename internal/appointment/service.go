package appointment

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/murtaDuElama/FitnessCenter/internal/catalog"
)

var (
	ErrUnauthenticated     = errors.New("user not authenticated")
	ErrInvalidInput        = errors.New("please select a time")
	ErrPastDate            = errors.New("appointments cannot be created for past dates")
	ErrTrainerSlotTaken    = errors.New("this slot is taken, please pick another time")
	ErrMemberSlotTaken     = errors.New("you already have an appointment at this time")
	ErrAppointmentNotFound = errors.New("appointment not found")
	ErrNotOwner            = errors.New("can only cancel own appointments")
)

// Notifier sends appointment lifecycle emails. Kept as a narrow interface
// so the service can run without a mail backend in tests.
type Notifier interface {
	SendAppointmentConfirmation(ctx context.Context, email, name, serviceName, trainerName string, date time.Time, slot string) error
	SendApprovalNotice(ctx context.Context, email, name, serviceName string, date time.Time, slot string) error
	SendCancellation(ctx context.Context, email, name, serviceName string, date time.Time, slot string) error
}

// UserLookup is the slice of the user repository the service needs to
// address notification emails.
type UserLookup interface {
	FindByID(ctx context.Context, id int) (*EmailRecipient, error)
}

type EmailRecipient struct {
	Email string
	Name  string
}

type Service interface {
	GetAvailableSlots(ctx context.Context, trainerID int, date time.Time) ([]string, error)
	Create(ctx context.Context, userID int, memberName string, req CreateAppointmentRequest) (*Appointment, error)
	GetUserAppointments(ctx context.Context, userID int) ([]AppointmentWithDetails, error)
	Cancel(ctx context.Context, userID, appointmentID int) error

	List(ctx context.Context, filter AdminFilter) ([]AppointmentWithDetails, error)
	Approve(ctx context.Context, id int) error
	Unapprove(ctx context.Context, id int) error
	Delete(ctx context.Context, id int) error
}

type service struct {
	repo        Repository
	catalogRepo catalog.Repository
	users       UserLookup
	notifier    Notifier

	slotTemplate []string
	autoApprove  bool
}

func NewService(repo Repository, catalogRepo catalog.Repository, users UserLookup, notifier Notifier, slotTemplate []string, autoApprove bool) Service {
	return &service{
		repo:         repo,
		catalogRepo:  catalogRepo,
		users:        users,
		notifier:     notifier,
		slotTemplate: slotTemplate,
		autoApprove:  autoApprove,
	}
}

// GetAvailableSlots computes the bookable slots for a trainer on a date:
// the fixed daily template, narrowed to the trainer's working hours, minus
// slots already booked that day.
func (s *service) GetAvailableSlots(ctx context.Context, trainerID int, date time.Time) ([]string, error) {
	trainer, err := s.catalogRepo.GetTrainerByID(ctx, trainerID)
	if err != nil {
		return nil, catalog.ErrTrainerNotFound
	}

	candidates := narrowToWorkHours(s.slotTemplate, trainer.WorkStart, trainer.WorkEnd)

	booked, err := s.repo.GetByTrainerAndDate(ctx, trainerID, date)
	if err != nil {
		return nil, err
	}

	bookedSet := make(map[string]struct{}, len(booked))
	for _, appt := range booked {
		slot := strings.TrimSpace(appt.Time)
		if slot == "" {
			continue
		}
		bookedSet[strings.ToLower(slot)] = struct{}{}
	}

	available := make([]string, 0, len(candidates))
	for _, slot := range candidates {
		if _, taken := bookedSet[strings.ToLower(slot)]; !taken {
			available = append(available, slot)
		}
	}

	return available, nil
}

// narrowToWorkHours keeps the template slots that fall inside the
// trainer's hourly working window. An inverted window is swapped, and a
// window that excludes every template slot falls back to the full
// template.
func narrowToWorkHours(template []string, workStart, workEnd string) []string {
	startHour, endHour := 9, 15

	if h, ok := parseHour(workStart); ok {
		startHour = h
	}
	if h, ok := parseHour(workEnd); ok {
		endHour = h
	}

	if endHour < startHour {
		startHour, endHour = endHour, startHour
	}

	window := make(map[string]struct{})
	for h := startHour; h <= endHour; h++ {
		if h == 12 {
			// midday break
			continue
		}
		window[fmt.Sprintf("%02d:00", h)] = struct{}{}
	}

	narrowed := make([]string, 0, len(template))
	for _, slot := range template {
		if _, ok := window[slot]; ok {
			narrowed = append(narrowed, slot)
		}
	}

	if len(narrowed) == 0 {
		return template
	}

	return narrowed
}

func parseHour(value string) (int, bool) {
	t, err := time.Parse("15:04", strings.TrimSpace(value))
	if err != nil {
		return 0, false
	}
	return t.Hour(), true
}

// Create runs the booking guard and inserts the appointment. Checks are
// ordered: blank time, past date, trainer conflict, member conflict.
func (s *service) Create(ctx context.Context, userID int, memberName string, req CreateAppointmentRequest) (*Appointment, error) {
	slot := strings.TrimSpace(req.Time)
	if slot == "" {
		return nil, ErrInvalidInput
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return nil, ErrInvalidInput
	}

	if dayOf(date).Before(dayOf(time.Now())) {
		return nil, ErrPastDate
	}

	trainerTaken, err := s.repo.TrainerSlotTaken(ctx, req.TrainerID, date, slot)
	if err != nil {
		return nil, err
	}
	if trainerTaken {
		return nil, ErrTrainerSlotTaken
	}

	memberTaken, err := s.repo.MemberSlotTaken(ctx, userID, date, slot)
	if err != nil {
		return nil, err
	}
	if memberTaken {
		return nil, ErrMemberSlotTaken
	}

	appt, err := s.repo.Create(ctx, userID, memberName, req.ServiceID, req.TrainerID, date, slot, s.autoApprove)
	if err != nil {
		return nil, err
	}

	s.notifyConfirmation(ctx, appt)

	return appt, nil
}

func (s *service) GetUserAppointments(ctx context.Context, userID int) ([]AppointmentWithDetails, error) {
	return s.repo.GetByUser(ctx, userID)
}

// Cancel deletes a member's own appointment.
func (s *service) Cancel(ctx context.Context, userID, appointmentID int) error {
	appt, err := s.repo.GetByID(ctx, appointmentID)
	if err != nil {
		return ErrAppointmentNotFound
	}

	if appt.UserID != userID {
		return ErrNotOwner
	}

	if err := s.repo.Delete(ctx, appointmentID); err != nil {
		return err
	}

	s.notifyCancellation(ctx, appt)

	return nil
}

func (s *service) List(ctx context.Context, filter AdminFilter) ([]AppointmentWithDetails, error) {
	return s.repo.GetAll(ctx, filter)
}

func (s *service) Approve(ctx context.Context, id int) error {
	appt, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return ErrAppointmentNotFound
	}

	if err := s.repo.SetApproved(ctx, id, true); err != nil {
		return err
	}

	s.notifyApproval(ctx, appt)

	return nil
}

func (s *service) Unapprove(ctx context.Context, id int) error {
	err := s.repo.SetApproved(ctx, id, false)
	if errors.Is(err, ErrAppointmentNotFound) {
		return ErrAppointmentNotFound
	}
	return err
}

// Delete removes an appointment unconditionally, in any approval state.
func (s *service) Delete(ctx context.Context, id int) error {
	return s.repo.Delete(ctx, id)
}

func dayOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func (s *service) notifyConfirmation(ctx context.Context, appt *Appointment) {
	if s.notifier == nil || s.users == nil {
		return
	}

	recipient, err := s.users.FindByID(ctx, appt.UserID)
	if err != nil || recipient == nil {
		return
	}

	serviceName, trainerName := s.lookupNames(ctx, appt)
	s.notifier.SendAppointmentConfirmation(ctx, recipient.Email, recipient.Name, serviceName, trainerName, appt.Date, appt.Time)
}

func (s *service) notifyApproval(ctx context.Context, appt *Appointment) {
	if s.notifier == nil || s.users == nil {
		return
	}

	recipient, err := s.users.FindByID(ctx, appt.UserID)
	if err != nil || recipient == nil {
		return
	}

	serviceName, _ := s.lookupNames(ctx, appt)
	s.notifier.SendApprovalNotice(ctx, recipient.Email, recipient.Name, serviceName, appt.Date, appt.Time)
}

func (s *service) notifyCancellation(ctx context.Context, appt *Appointment) {
	if s.notifier == nil || s.users == nil {
		return
	}

	recipient, err := s.users.FindByID(ctx, appt.UserID)
	if err != nil || recipient == nil {
		return
	}

	serviceName, _ := s.lookupNames(ctx, appt)
	s.notifier.SendCancellation(ctx, recipient.Email, recipient.Name, serviceName, appt.Date, appt.Time)
}

func (s *service) lookupNames(ctx context.Context, appt *Appointment) (serviceName, trainerName string) {
	serviceName, trainerName = "Training session", "your trainer"

	if svc, err := s.catalogRepo.GetServiceByID(ctx, appt.ServiceID); err == nil {
		serviceName = svc.Name
	}
	if trainer, err := s.catalogRepo.GetTrainerByID(ctx, appt.TrainerID); err == nil {
		trainerName = trainer.FullName
	}

	return serviceName, trainerName
}
