package server

import (
	"context"
	"net/http"
	"time"

	"github.com/murtaDuElama/FitnessCenter/internal/ai"
	"github.com/murtaDuElama/FitnessCenter/internal/appointment"
	"github.com/murtaDuElama/FitnessCenter/internal/auth"
	"github.com/murtaDuElama/FitnessCenter/internal/catalog"
	"github.com/murtaDuElama/FitnessCenter/internal/config"
	"github.com/murtaDuElama/FitnessCenter/internal/email"
	"github.com/murtaDuElama/FitnessCenter/internal/report"
	"github.com/murtaDuElama/FitnessCenter/internal/user"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
)

type Server struct {
	router *gin.Engine
	http   *http.Server
	db     *sqlx.DB
	config *config.Config
	email  *email.Service
}

// recipientLookup adapts the user repository to the slice the
// appointment service needs for notification emails.
type recipientLookup struct {
	repo user.Repository
}

func (l recipientLookup) FindByID(ctx context.Context, id int) (*appointment.EmailRecipient, error) {
	u, err := l.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &appointment.EmailRecipient{Email: u.Email, Name: u.Name}, nil
}

func New(db *sqlx.DB, cfg *config.Config, emailService *email.Service) *Server {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(corsMiddleware())
	router.Use(RequestLoggingMiddleware())
	router.Use(MetricsMiddleware())
	router.Use(RateLimitMiddleware(20, 40))

	userRepo := user.NewRepository(db)
	catalogRepo := catalog.NewRepository(db)
	appointmentRepo := appointment.NewRepository(db)
	reportRepo := report.NewRepository(db)

	var notifier appointment.Notifier
	if emailService != nil {
		notifier = emailService
	}

	appointmentService := appointment.NewService(
		appointmentRepo,
		catalogRepo,
		recipientLookup{repo: userRepo},
		notifier,
		cfg.SlotTemplate,
		cfg.AutoApprove,
	)

	userHandler := user.NewHandler(userRepo, cfg.JWTSecret)
	catalogHandler := catalog.NewHandler(catalogRepo)
	appointmentHandler := appointment.NewHandler(appointmentService)
	reportHandler := report.NewHandler(reportRepo)

	aiClient := ai.NewClient(cfg.AIAPIKey, cfg.AIBaseURL, cfg.AIModel)
	imageGen := ai.NewImageGenerator(cfg.ImageBaseURL)
	aiHandler := ai.NewHandler(aiClient, imageGen)

	public := router.Group("/auth")
	{
		public.POST("/register", userHandler.Register)
		public.POST("/login", userHandler.Login)
		public.POST("/refresh", userHandler.RefreshToken)
	}

	authMiddleware := auth.AuthMiddleware(cfg.JWTSecret)
	protected := router.Group("/")
	protected.Use(authMiddleware)
	{
		protected.GET("/me", userHandler.GetMe)

		protected.GET("/services", catalogHandler.ListServices)
		protected.GET("/services/:serviceID", catalogHandler.GetService)
		protected.GET("/services/:serviceID/trainers", catalogHandler.ListTrainersForService)
		protected.GET("/trainers", catalogHandler.ListTrainers)
		protected.GET("/trainers/:trainerID/slots", appointmentHandler.GetSlots)

		protected.POST("/appointments", appointmentHandler.Create)
		protected.GET("/appointments", appointmentHandler.ListMine)
		protected.DELETE("/appointments/:appointmentID", appointmentHandler.Cancel)

		aiGroup := protected.Group("/ai")
		{
			aiGroup.POST("/workout-analysis", aiHandler.WorkoutAnalysis)
			aiGroup.POST("/nutrition-advice", aiHandler.NutritionAdvice)
			aiGroup.POST("/exercise-image", aiHandler.ExerciseImage)
			aiGroup.POST("/plan", aiHandler.Plan)
		}
	}

	admin := router.Group("/admin")
	admin.Use(authMiddleware, auth.RequireRole(auth.RoleAdmin))
	{
		admin.POST("/services", catalogHandler.CreateService)
		admin.PUT("/services/:serviceID", catalogHandler.UpdateService)
		admin.DELETE("/services/:serviceID", catalogHandler.DeleteService)

		admin.POST("/trainers", catalogHandler.CreateTrainer)
		admin.PUT("/trainers/:trainerID", catalogHandler.UpdateTrainer)
		admin.DELETE("/trainers/:trainerID", catalogHandler.DeleteTrainer)

		admin.GET("/appointments", appointmentHandler.List)
		admin.POST("/appointments/:appointmentID/approve", appointmentHandler.Approve)
		admin.POST("/appointments/:appointmentID/unapprove", appointmentHandler.Unapprove)
		admin.DELETE("/appointments/:appointmentID", appointmentHandler.AdminDelete)

		admin.GET("/reports/appointments", reportHandler.Appointments)
		admin.GET("/reports/stats", reportHandler.Stats)
	}

	router.GET("/health", Health)
	router.GET("/metrics", Metrics())
	if emailService != nil {
		router.GET("/test-email", TestEmail(emailService))
	}
	SetupSwagger(router)

	return &Server{
		router: router,
		db:     db,
		config: cfg,
		email:  emailService,
	}
}

// Router exposes the gin engine for tests.
func (s *Server) Router() *gin.Engine {
	return s.router
}

func (s *Server) Start(port string) error {
	s.http = &http.Server{
		Addr:              ":" + port,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s.http.ListenAndServe()
}

// Shutdown drains in-flight requests before closing the listener.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.http == nil {
		return nil
	}
	return s.http.Shutdown(ctx)
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	}
}
