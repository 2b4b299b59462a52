package ai

import (
	"net/http"

	"github.com/murtaDuElama/FitnessCenter/internal/api"
	"github.com/murtaDuElama/FitnessCenter/internal/metrics"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	client *Client
	images *ImageGenerator
}

func NewHandler(client *Client, images *ImageGenerator) *Handler {
	return &Handler{client: client, images: images}
}

// WorkoutAnalysis godoc
// @Summary      Analyze a workout description
// @Tags         ai
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request  body      WorkoutAnalysisRequest  true  "Workout description"
// @Success      200      {object}  TextResponse
// @Failure      400      {object}  api.ErrorResponse
// @Failure      502      {object}  api.ErrorResponse
// @Router       /ai/workout-analysis [post]
func (h *Handler) WorkoutAnalysis(c *gin.Context) {
	var req WorkoutAnalysisRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	result, err := h.client.AnalyzeWorkout(c.Request.Context(), req.Description)
	if err != nil {
		metrics.RecordAIRequest("workout_analysis", "error")
		c.JSON(http.StatusBadGateway, api.ErrorResponse{Error: "AI service unavailable"})
		return
	}

	metrics.RecordAIRequest("workout_analysis", "ok")
	c.JSON(http.StatusOK, TextResponse{Result: result})
}

// NutritionAdvice godoc
// @Summary      Get nutrition advice
// @Tags         ai
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request  body      NutritionAdviceRequest  true  "Nutrition question"
// @Success      200      {object}  TextResponse
// @Failure      400      {object}  api.ErrorResponse
// @Failure      502      {object}  api.ErrorResponse
// @Router       /ai/nutrition-advice [post]
func (h *Handler) NutritionAdvice(c *gin.Context) {
	var req NutritionAdviceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	result, err := h.client.NutritionAdvice(c.Request.Context(), req.Question)
	if err != nil {
		metrics.RecordAIRequest("nutrition_advice", "error")
		c.JSON(http.StatusBadGateway, api.ErrorResponse{Error: "AI service unavailable"})
		return
	}

	metrics.RecordAIRequest("nutrition_advice", "ok")
	c.JSON(http.StatusOK, TextResponse{Result: result})
}

// ExerciseImage godoc
// @Summary      Generate an exercise illustration URL
// @Tags         ai
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request  body      ExerciseImageRequest  true  "Exercise details"
// @Success      200      {object}  ImageResponse
// @Failure      400      {object}  api.ErrorResponse
// @Router       /ai/exercise-image [post]
func (h *Handler) ExerciseImage(c *gin.Context) {
	var req ExerciseImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	url, err := h.images.ExerciseImageURL(req.ExerciseName, req.Days, req.Reps)
	if err != nil {
		metrics.RecordAIRequest("exercise_image", "error")
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	metrics.RecordAIRequest("exercise_image", "ok")
	c.JSON(http.StatusOK, ImageResponse{URL: url})
}

// Plan godoc
// @Summary      Build a rule-based training plan
// @Description  Generates a training and nutrition plan from goal, body
// @Description  metrics and preferences without calling an external model.
// @Tags         ai
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request  body      PlanRequest  true  "Plan inputs"
// @Success      200      {object}  PlanResponse
// @Failure      400      {object}  api.ErrorResponse
// @Router       /ai/plan [post]
func (h *Handler) Plan(c *gin.Context) {
	var req PlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	metrics.RecordAIRequest("plan", "ok")
	c.JSON(http.StatusOK, BuildPlan(req))
}
