package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/clippercut/clippercut-api/internal/audit"
	"github.com/clippercut/clippercut-api/internal/cache"
	"github.com/clippercut/clippercut-api/internal/config"
	"github.com/clippercut/clippercut-api/internal/handlers"
	infraRepo "github.com/clippercut/clippercut-api/internal/infra/repository"
	"github.com/clippercut/clippercut-api/internal/middleware"
	"github.com/clippercut/clippercut-api/internal/models"
	ucAppointment "github.com/clippercut/clippercut-api/internal/usecase/appointment"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	appointmentRepo := infraRepo.NewAppointmentGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	cch := cache.New(cfg.RedisURL)

	// ======================================================
	// USE CASES (APPOINTMENTS)
	// ======================================================
	createAppointmentUC := ucAppointment.NewCreateAppointment(
		appointmentRepo,
		auditDispatcher,
		cfg.StrictSlotConflicts,
	)

	updateAppointmentUC := ucAppointment.NewUpdateAppointment(
		appointmentRepo,
		auditDispatcher,
		cfg.StrictSlotConflicts,
	)

	deleteAppointmentUC := ucAppointment.NewDeleteAppointment(
		appointmentRepo,
		auditDispatcher,
	)

	getAppointmentUC := ucAppointment.NewGetAppointment(appointmentRepo)

	listAppointmentsUC := ucAppointment.NewListAppointments(appointmentRepo)

	lastCompletedUC := ucAppointment.NewLastCompletedPerClient(appointmentRepo)

	publicBookingUC := ucAppointment.NewPublicBooking(
		appointmentRepo,
		auditDispatcher,
	)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db)
	userHandler := handlers.NewUserHandler(db)

	clientHandler := handlers.NewClientHandler(db)
	categoryHandler := handlers.NewCategoryHandler(db)
	serviceHandler := handlers.NewServiceHandler(db)
	barberHandler := handlers.NewBarberHandler(db)

	appointmentHandler := handlers.NewAppointmentHandler(
		createAppointmentUC,
		updateAppointmentUC,
		deleteAppointmentUC,
		getAppointmentUC,
		listAppointmentsUC,
		lastCompletedUC,
	)

	publicHandler := handlers.NewPublicHandler(publicBookingUC)
	saleHandler := handlers.NewSaleHandler(db, auditDispatcher)
	dashboardHandler := handlers.NewDashboardHandler(db, cch)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// PUBLIC ROUTES
	// ======================================================
	r.POST("/auth/login", authHandler.Login)
	r.POST("/appointments/public", publicHandler.CreateBooking)

	// ======================================================
	// STAFF ROUTES (BARBER / ADMIN / ADMINBARBER)
	// ======================================================
	staff := r.Group("/")
	staff.Use(
		middleware.AuthMiddleware(cfg),
		middleware.RequireRoles(models.StaffRoles...),
	)
	{
		staff.GET("/me", meHandler.GetMe)

		// ------------------------------
		// APPOINTMENTS
		// ------------------------------
		staff.GET("/appointments", appointmentHandler.List)
		staff.GET("/appointments/last-completed", appointmentHandler.LastCompleted)
		staff.GET("/appointments/:id", appointmentHandler.Get)
		staff.POST("/appointments", appointmentHandler.Create)
		staff.PUT("/appointments/:id", appointmentHandler.Update)
		staff.DELETE("/appointments/:id", appointmentHandler.Delete)

		// ------------------------------
		// CRM
		// ------------------------------
		staff.GET("/clients", clientHandler.List)
		staff.GET("/clients/:id", clientHandler.Get)
		staff.POST("/clients", clientHandler.Create)
		staff.PUT("/clients/:id", clientHandler.Update)
		staff.DELETE("/clients/:id", clientHandler.Delete)

		staff.GET("/categories", categoryHandler.List)
		staff.POST("/categories", categoryHandler.Create)
		staff.PUT("/categories/:id", categoryHandler.Update)
		staff.DELETE("/categories/:id", categoryHandler.Delete)

		staff.GET("/services", serviceHandler.List)
		staff.POST("/services", serviceHandler.Create)
		staff.PUT("/services/:id", serviceHandler.Update)
		staff.DELETE("/services/:id", serviceHandler.Delete)

		staff.GET("/barbers", barberHandler.List)
		staff.GET("/barbers/:id", barberHandler.Get)
		staff.POST("/barbers", barberHandler.Create)
		staff.PUT("/barbers/:id", barberHandler.Update)
		staff.DELETE("/barbers/:id", barberHandler.Delete)

		staff.GET("/sales", saleHandler.List)
		staff.POST("/sales", saleHandler.Create)

		staff.GET("/dashboard/summary", dashboardHandler.Summary)
	}

	// ======================================================
	// ADMIN ROUTES
	// ======================================================
	admin := r.Group("/")
	admin.Use(
		middleware.AuthMiddleware(cfg),
		middleware.RequireRoles(models.RoleAdmin, models.RoleAdminBarber),
	)
	{
		admin.GET("/users", userHandler.List)
		admin.POST("/users", userHandler.Create)

		admin.GET("/audit-logs", auditLogsHandler.List)
	}
}
