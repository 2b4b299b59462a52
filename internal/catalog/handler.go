package catalog

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/murtaDuElama/FitnessCenter/internal/api"

	"github.com/gin-gonic/gin"
)

// middayBreak is never bookable, so no trainer is available then.
const middayBreak = "12:00"

type Handler struct {
	repo Repository
}

func NewHandler(repo Repository) *Handler {
	return &Handler{repo: repo}
}

// ListServices godoc
// @Summary      List services
// @Tags         services
// @Security     BearerAuth
// @Produce      json
// @Success      200  {array}   Service
// @Failure      500  {object}  api.ErrorResponse
// @Router       /services [get]
func (h *Handler) ListServices(c *gin.Context) {
	services, err := h.repo.GetAllServices(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to fetch services"})
		return
	}

	c.JSON(http.StatusOK, services)
}

// GetService godoc
// @Summary      Get service
// @Tags         services
// @Security     BearerAuth
// @Produce      json
// @Param        serviceID  path      int  true  "Service ID"
// @Success      200        {object}  Service
// @Failure      400        {object}  api.ErrorResponse
// @Failure      404        {object}  api.ErrorResponse
// @Router       /services/{serviceID} [get]
func (h *Handler) GetService(c *gin.Context) {
	serviceID, err := strconv.Atoi(c.Param("serviceID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid service ID"})
		return
	}

	service, err := h.repo.GetServiceByID(c.Request.Context(), serviceID)
	if err != nil {
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Service not found"})
		return
	}

	c.JSON(http.StatusOK, service)
}

// ListTrainersForService godoc
// @Summary      List eligible trainers for a service
// @Description  Trainers whose specialty matches the service name. With date
// @Description  and time query params, only trainers free at that slot.
// @Tags         trainers
// @Security     BearerAuth
// @Produce      json
// @Param        serviceID  path      int     true   "Service ID"
// @Param        date       query     string  false  "Date (YYYY-MM-DD)"
// @Param        time       query     string  false  "Slot (HH:mm)"
// @Success      200        {array}   Trainer
// @Failure      400        {object}  api.ErrorResponse
// @Failure      404        {object}  api.ErrorResponse
// @Failure      500        {object}  api.ErrorResponse
// @Router       /services/{serviceID}/trainers [get]
func (h *Handler) ListTrainersForService(c *gin.Context) {
	serviceID, err := strconv.Atoi(c.Param("serviceID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid service ID"})
		return
	}

	ctx := c.Request.Context()

	service, err := h.repo.GetServiceByID(ctx, serviceID)
	if err != nil {
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Service not found"})
		return
	}

	slot := c.Query("time")
	if slot == "" {
		trainers, err := h.repo.GetTrainersBySpecialty(ctx, service.Name)
		if err != nil {
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to fetch trainers"})
			return
		}
		c.JSON(http.StatusOK, trainers)
		return
	}

	if slot == middayBreak {
		c.JSON(http.StatusOK, []Trainer{})
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

	trainers, err := h.repo.GetAvailableTrainers(ctx, service.Name, date, slot)
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to fetch trainers"})
		return
	}

	c.JSON(http.StatusOK, trainers)
}

// CreateService godoc
// @Summary      Create service
// @Description  Admin-only: create a new service. Name must be unique.
// @Tags         admin,services
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request  body      CreateServiceRequest  true  "Service payload"
// @Success      201      {object}  Service
// @Failure      400      {object}  api.ErrorResponse
// @Failure      409      {object}  api.ErrorResponse
// @Failure      500      {object}  api.ErrorResponse
// @Router       /admin/services [post]
func (h *Handler) CreateService(c *gin.Context) {
	var req CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	service, err := h.repo.CreateService(c.Request.Context(), req.Name, req.DurationMinutes, req.Price)
	if err != nil {
		if errors.Is(err, ErrServiceNameTaken) {
			c.JSON(http.StatusConflict, api.ErrorResponse{Error: "Service name already exists"})
			return
		}
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to create service"})
		return
	}

	c.JSON(http.StatusCreated, service)
}

// UpdateService godoc
// @Summary      Update service
// @Tags         admin,services
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        serviceID  path      int                   true  "Service ID"
// @Param        request    body      UpdateServiceRequest  true  "Service payload"
// @Success      200        {object}  Service
// @Failure      400        {object}  api.ErrorResponse
// @Failure      404        {object}  api.ErrorResponse
// @Failure      409        {object}  api.ErrorResponse
// @Router       /admin/services/{serviceID} [put]
func (h *Handler) UpdateService(c *gin.Context) {
	serviceID, err := strconv.Atoi(c.Param("serviceID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid service ID"})
		return
	}

	var req UpdateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	service, err := h.repo.UpdateService(c.Request.Context(), serviceID, req.Name, req.DurationMinutes, req.Price)
	if err != nil {
		if errors.Is(err, ErrServiceNameTaken) {
			c.JSON(http.StatusConflict, api.ErrorResponse{Error: "Service name already exists"})
			return
		}
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Service not found"})
		return
	}

	c.JSON(http.StatusOK, service)
}

// DeleteService godoc
// @Summary      Delete service
// @Tags         admin,services
// @Security     BearerAuth
// @Produce      json
// @Param        serviceID  path      int  true  "Service ID"
// @Success      200        {object}  api.MessageResponse
// @Failure      400        {object}  api.ErrorResponse
// @Failure      404        {object}  api.ErrorResponse
// @Router       /admin/services/{serviceID} [delete]
func (h *Handler) DeleteService(c *gin.Context) {
	serviceID, err := strconv.Atoi(c.Param("serviceID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid service ID"})
		return
	}

	if err := h.repo.DeleteService(c.Request.Context(), serviceID); err != nil {
		if errors.Is(err, ErrServiceNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Service not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to delete service"})
		return
	}

	c.JSON(http.StatusOK, api.MessageResponse{Message: "Service deleted"})
}

// ListTrainers godoc
// @Summary      List trainers
// @Tags         trainers
// @Security     BearerAuth
// @Produce      json
// @Success      200  {array}   Trainer
// @Failure      500  {object}  api.ErrorResponse
// @Router       /trainers [get]
func (h *Handler) ListTrainers(c *gin.Context) {
	trainers, err := h.repo.GetAllTrainers(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to fetch trainers"})
		return
	}

	c.JSON(http.StatusOK, trainers)
}

// CreateTrainer godoc
// @Summary      Create trainer
// @Description  Admin-only: create a trainer. Working hours default to 09:00-15:00.
// @Tags         admin,trainers
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request  body      CreateTrainerRequest  true  "Trainer payload"
// @Success      201      {object}  Trainer
// @Failure      400      {object}  api.ErrorResponse
// @Failure      500      {object}  api.ErrorResponse
// @Router       /admin/trainers [post]
func (h *Handler) CreateTrainer(c *gin.Context) {
	var req CreateTrainerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	workStart := req.WorkStart
	if workStart == "" {
		workStart = "09:00"
	}
	workEnd := req.WorkEnd
	if workEnd == "" {
		workEnd = "15:00"
	}

	trainer, err := h.repo.CreateTrainer(c.Request.Context(), req.FullName, req.Specialty, workStart, workEnd, req.PhotoURL)
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to create trainer"})
		return
	}

	c.JSON(http.StatusCreated, trainer)
}

// UpdateTrainer godoc
// @Summary      Update trainer
// @Tags         admin,trainers
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        trainerID  path      int                   true  "Trainer ID"
// @Param        request    body      UpdateTrainerRequest  true  "Trainer payload"
// @Success      200        {object}  Trainer
// @Failure      400        {object}  api.ErrorResponse
// @Failure      404        {object}  api.ErrorResponse
// @Router       /admin/trainers/{trainerID} [put]
func (h *Handler) UpdateTrainer(c *gin.Context) {
	trainerID, err := strconv.Atoi(c.Param("trainerID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid trainer ID"})
		return
	}

	var req UpdateTrainerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	trainer, err := h.repo.UpdateTrainer(c.Request.Context(), trainerID, req.FullName, req.Specialty, req.WorkStart, req.WorkEnd, req.PhotoURL)
	if err != nil {
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Trainer not found"})
		return
	}

	c.JSON(http.StatusOK, trainer)
}

// DeleteTrainer godoc
// @Summary      Delete trainer
// @Tags         admin,trainers
// @Security     BearerAuth
// @Produce      json
// @Param        trainerID  path      int  true  "Trainer ID"
// @Success      200        {object}  api.MessageResponse
// @Failure      400        {object}  api.ErrorResponse
// @Failure      404        {object}  api.ErrorResponse
// @Router       /admin/trainers/{trainerID} [delete]
func (h *Handler) DeleteTrainer(c *gin.Context) {
	trainerID, err := strconv.Atoi(c.Param("trainerID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid trainer ID"})
		return
	}

	if err := h.repo.DeleteTrainer(c.Request.Context(), trainerID); err != nil {
		if errors.Is(err, ErrTrainerNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Trainer not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to delete trainer"})
		return
	}

	c.JSON(http.StatusOK, api.MessageResponse{Message: "Trainer deleted"})
}
