package appointment

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/murtaDuElama/FitnessCenter/internal/api"
	"github.com/murtaDuElama/FitnessCenter/internal/auth"
	"github.com/murtaDuElama/FitnessCenter/internal/catalog"
	"github.com/murtaDuElama/FitnessCenter/internal/metrics"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// GetSlots godoc
// @Summary      Available slots for a trainer
// @Description  Returns the open slots for a trainer on a date. A past date
// @Description  is clamped to today with a warning in the response.
// @Tags         appointments
// @Security     BearerAuth
// @Produce      json
// @Param        trainerID  path      int     true   "Trainer ID"
// @Param        date       query     string  false  "Date (YYYY-MM-DD), defaults to today"
// @Success      200        {object}  api.SlotsResponse
// @Failure      400        {object}  api.ErrorResponse
// @Failure      404        {object}  api.ErrorResponse
// @Router       /trainers/{trainerID}/slots [get]
func (h *Handler) GetSlots(c *gin.Context) {
	trainerID, err := strconv.Atoi(c.Param("trainerID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid trainer ID"})
		return
	}

	date := time.Now()
	if dateStr := c.Query("date"); dateStr != "" {
		date, err = time.Parse("2006-01-02", dateStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid date format, use YYYY-MM-DD"})
			return
		}
	}

	warning := ""
	today := time.Now()
	if date.Format("2006-01-02") < today.Format("2006-01-02") {
		date = today
		warning = "past date requested, showing today"
	}

	slots, err := h.service.GetAvailableSlots(c.Request.Context(), trainerID, date)
	if err != nil {
		if errors.Is(err, catalog.ErrTrainerNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Trainer not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to fetch slots"})
		return
	}

	c.JSON(http.StatusOK, api.SlotsResponse{
		Date:    date.Format("2006-01-02"),
		Slots:   slots,
		Warning: warning,
	})
}

// Create godoc
// @Summary      Book an appointment
// @Tags         appointments
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request  body      CreateAppointmentRequest  true  "Booking payload"
// @Success      201      {object}  Appointment
// @Failure      400      {object}  api.ErrorResponse
// @Failure      401      {object}  api.ErrorResponse
// @Failure      409      {object}  api.ErrorResponse
// @Router       /appointments [post]
func (h *Handler) Create(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		metrics.RecordAppointment("unauthenticated")
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: ErrUnauthenticated.Error()})
		return
	}

	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		metrics.RecordAppointment("invalid")
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	memberName, _ := auth.GetUserName(c)

	appt, err := h.service.Create(c.Request.Context(), userID, memberName, req)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidInput):
			metrics.RecordAppointment("invalid")
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		case errors.Is(err, ErrPastDate):
			metrics.RecordAppointment("past_date")
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		case errors.Is(err, ErrTrainerSlotTaken):
			metrics.RecordAppointment("trainer_conflict")
			c.JSON(http.StatusConflict, api.ErrorResponse{Error: err.Error()})
		case errors.Is(err, ErrMemberSlotTaken):
			metrics.RecordAppointment("member_conflict")
			c.JSON(http.StatusConflict, api.ErrorResponse{Error: err.Error()})
		default:
			metrics.RecordAppointment("error")
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to create appointment"})
		}
		return
	}

	metrics.RecordAppointment("created")
	c.JSON(http.StatusCreated, appt)
}

// ListMine godoc
// @Summary      List own appointments
// @Tags         appointments
// @Security     BearerAuth
// @Produce      json
// @Success      200  {array}   AppointmentWithDetails
// @Failure      401  {object}  api.ErrorResponse
// @Router       /appointments [get]
func (h *Handler) ListMine(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: ErrUnauthenticated.Error()})
		return
	}

	appts, err := h.service.GetUserAppointments(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to fetch appointments"})
		return
	}

	c.JSON(http.StatusOK, appts)
}

// Cancel godoc
// @Summary      Cancel own appointment
// @Tags         appointments
// @Security     BearerAuth
// @Produce      json
// @Param        appointmentID  path      int  true  "Appointment ID"
// @Success      200            {object}  api.MessageResponse
// @Failure      400            {object}  api.ErrorResponse
// @Failure      401            {object}  api.ErrorResponse
// @Failure      403            {object}  api.ErrorResponse
// @Failure      404            {object}  api.ErrorResponse
// @Router       /appointments/{appointmentID} [delete]
func (h *Handler) Cancel(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: ErrUnauthenticated.Error()})
		return
	}

	appointmentID, err := strconv.Atoi(c.Param("appointmentID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid appointment ID"})
		return
	}

	if err := h.service.Cancel(c.Request.Context(), userID, appointmentID); err != nil {
		switch {
		case errors.Is(err, ErrAppointmentNotFound):
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Appointment not found"})
		case errors.Is(err, ErrNotOwner):
			c.JSON(http.StatusForbidden, api.ErrorResponse{Error: err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to cancel appointment"})
		}
		return
	}

	metrics.RecordCancellation()
	c.JSON(http.StatusOK, api.MessageResponse{Message: "Appointment cancelled"})
}

// List godoc
// @Summary      List all appointments
// @Description  Admin-only: every appointment, optionally filtered by date
// @Description  range, approval state, service or trainer.
// @Tags         admin,appointments
// @Security     BearerAuth
// @Produce      json
// @Param        from        query     string  false  "From date (YYYY-MM-DD)"
// @Param        to          query     string  false  "To date (YYYY-MM-DD)"
// @Param        approved    query     bool    false  "Approval state"
// @Param        service_id  query     int     false  "Service ID"
// @Param        trainer_id  query     int     false  "Trainer ID"
// @Success      200         {array}   AppointmentWithDetails
// @Failure      400         {object}  api.ErrorResponse
// @Failure      500         {object}  api.ErrorResponse
// @Router       /admin/appointments [get]
func (h *Handler) List(c *gin.Context) {
	filter, err := parseAdminFilter(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	appts, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to fetch appointments"})
		return
	}

	c.JSON(http.StatusOK, appts)
}

func parseAdminFilter(c *gin.Context) (AdminFilter, error) {
	var filter AdminFilter

	if fromStr := c.Query("from"); fromStr != "" {
		from, err := time.Parse("2006-01-02", fromStr)
		if err != nil {
			return filter, errors.New("invalid from date, use YYYY-MM-DD")
		}
		filter.From = &from
	}

	if toStr := c.Query("to"); toStr != "" {
		to, err := time.Parse("2006-01-02", toStr)
		if err != nil {
			return filter, errors.New("invalid to date, use YYYY-MM-DD")
		}
		filter.To = &to
	}

	if approvedStr := c.Query("approved"); approvedStr != "" {
		approved, err := strconv.ParseBool(approvedStr)
		if err != nil {
			return filter, errors.New("invalid approved value, use true or false")
		}
		filter.Approved = &approved
	}

	if serviceStr := c.Query("service_id"); serviceStr != "" {
		serviceID, err := strconv.Atoi(serviceStr)
		if err != nil {
			return filter, errors.New("invalid service_id")
		}
		filter.ServiceID = &serviceID
	}

	if trainerStr := c.Query("trainer_id"); trainerStr != "" {
		trainerID, err := strconv.Atoi(trainerStr)
		if err != nil {
			return filter, errors.New("invalid trainer_id")
		}
		filter.TrainerID = &trainerID
	}

	return filter, nil
}

// Approve godoc
// @Summary      Approve appointment
// @Tags         admin,appointments
// @Security     BearerAuth
// @Produce      json
// @Param        appointmentID  path      int  true  "Appointment ID"
// @Success      200            {object}  api.MessageResponse
// @Failure      400            {object}  api.ErrorResponse
// @Failure      404            {object}  api.ErrorResponse
// @Router       /admin/appointments/{appointmentID}/approve [post]
func (h *Handler) Approve(c *gin.Context) {
	appointmentID, err := strconv.Atoi(c.Param("appointmentID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid appointment ID"})
		return
	}

	if err := h.service.Approve(c.Request.Context(), appointmentID); err != nil {
		if errors.Is(err, ErrAppointmentNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Appointment not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to approve appointment"})
		return
	}

	metrics.RecordApproval("approve")
	c.JSON(http.StatusOK, api.MessageResponse{Message: "Appointment approved"})
}

// Unapprove godoc
// @Summary      Revoke appointment approval
// @Tags         admin,appointments
// @Security     BearerAuth
// @Produce      json
// @Param        appointmentID  path      int  true  "Appointment ID"
// @Success      200            {object}  api.MessageResponse
// @Failure      400            {object}  api.ErrorResponse
// @Failure      404            {object}  api.ErrorResponse
// @Router       /admin/appointments/{appointmentID}/unapprove [post]
func (h *Handler) Unapprove(c *gin.Context) {
	appointmentID, err := strconv.Atoi(c.Param("appointmentID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid appointment ID"})
		return
	}

	if err := h.service.Unapprove(c.Request.Context(), appointmentID); err != nil {
		if errors.Is(err, ErrAppointmentNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Appointment not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to unapprove appointment"})
		return
	}

	metrics.RecordApproval("unapprove")
	c.JSON(http.StatusOK, api.MessageResponse{Message: "Appointment approval revoked"})
}

// AdminDelete godoc
// @Summary      Delete appointment
// @Description  Admin-only: remove an appointment in any approval state.
// @Tags         admin,appointments
// @Security     BearerAuth
// @Produce      json
// @Param        appointmentID  path      int  true  "Appointment ID"
// @Success      200            {object}  api.MessageResponse
// @Failure      400            {object}  api.ErrorResponse
// @Failure      404            {object}  api.ErrorResponse
// @Router       /admin/appointments/{appointmentID} [delete]
func (h *Handler) AdminDelete(c *gin.Context) {
	appointmentID, err := strconv.Atoi(c.Param("appointmentID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid appointment ID"})
		return
	}

	if err := h.service.Delete(c.Request.Context(), appointmentID); err != nil {
		if errors.Is(err, ErrAppointmentNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Appointment not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to delete appointment"})
		return
	}

	c.JSON(http.StatusOK, api.MessageResponse{Message: "Appointment deleted"})
}
