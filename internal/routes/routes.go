package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/service-marketplace/internal/audit"
	"github.com/BruksfildServices01/service-marketplace/internal/cache"
	"github.com/BruksfildServices01/service-marketplace/internal/config"
	"github.com/BruksfildServices01/service-marketplace/internal/events"
	"github.com/BruksfildServices01/service-marketplace/internal/handlers"
	infraRepo "github.com/BruksfildServices01/service-marketplace/internal/infra/repository"
	"github.com/BruksfildServices01/service-marketplace/internal/middleware"
	"github.com/BruksfildServices01/service-marketplace/internal/models"
	"github.com/BruksfildServices01/service-marketplace/internal/revocation"
	"github.com/BruksfildServices01/service-marketplace/internal/token"
	ucAdmin "github.com/BruksfildServices01/service-marketplace/internal/usecase/admin"
	ucAuth "github.com/BruksfildServices01/service-marketplace/internal/usecase/auth"
	ucBooking "github.com/BruksfildServices01/service-marketplace/internal/usecase/booking"
	ucCatalog "github.com/BruksfildServices01/service-marketplace/internal/usecase/catalog"
	ucNotification "github.com/BruksfildServices01/service-marketplace/internal/usecase/notification"
	ucProvider "github.com/BruksfildServices01/service-marketplace/internal/usecase/provider"
)

// Deps are the process-wide singletons built in main.
type Deps struct {
	DB        *gorm.DB
	Config    *config.Config
	Tokens    *token.Manager
	Audit     audit.Recorder
	Events    events.Publisher
	Cache     cache.Client
	Revoked   revocation.Store
	AdminInit *ucAuth.AdminSetup
}

func RegisterRoutes(r *gin.Engine, d Deps) {
	cfg := d.Config

	// ======================================================
	// GLOBAL MIDDLEWARE
	// ======================================================
	r.Use(
		middleware.RequestID(),
		middleware.RequestLogger(),
		middleware.CORSMiddleware(middleware.CORSConfig{
			AllowedOrigins: cfg.CORSAllowedOrigins,
			AllowedHeaders: cfg.CORSAllowedHeaders,
		}),
	)

	// ======================================================
	// INFRA
	// ======================================================
	userRepo := infraRepo.NewUserGormRepository(d.DB)
	serviceRepo := infraRepo.NewServiceGormRepository(d.DB)
	bookingRepo := infraRepo.NewBookingGormRepository(d.DB)
	providerRepo := infraRepo.NewProviderGormRepository(d.DB)
	adminRepo := infraRepo.NewAdminGormRepository(d.DB)

	// ======================================================
	// USE CASES
	// ======================================================
	listServicesUC := ucCatalog.NewListServices(serviceRepo)
	deleteServiceUC := ucCatalog.NewDeleteService(serviceRepo, d.Audit)

	listBookingsUC := ucBooking.NewListBookings(bookingRepo)
	deleteBookingUC := ucBooking.NewDeleteBooking(bookingRepo, d.Audit)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(
		ucAuth.NewLogin(userRepo, d.Tokens),
		ucAuth.NewRegister(userRepo, d.Tokens),
		ucAuth.NewChangePassword(userRepo, d.Revoked),
		ucAuth.NewMe(userRepo),
		ucAuth.NewUpdateProfile(userRepo),
		d.AdminInit,
	)

	serviceHandler := handlers.NewServiceHandler(
		listServicesUC,
		ucCatalog.NewGetService(serviceRepo),
		ucCatalog.NewCreateService(serviceRepo),
		ucCatalog.NewUpdateService(serviceRepo),
		deleteServiceUC,
	)

	bookingHandler := handlers.NewBookingHandler(
		ucBooking.NewCreateBooking(bookingRepo, d.Events, cfg.Timezone),
		ucBooking.NewUpdateBookingStatus(bookingRepo, d.Audit, d.Events, cfg.Timezone),
		ucBooking.NewRateBooking(bookingRepo, d.Events),
		deleteBookingUC,
		listBookingsUC,
		ucBooking.NewGetBooking(bookingRepo),
	)

	notificationHandler := handlers.NewNotificationHandler(
		ucNotification.NewListNotifications(bookingRepo),
	)

	providerHandler := handlers.NewProviderHandler(
		ucProvider.NewTopProviders(providerRepo),
		ucProvider.NewGetProfile(providerRepo),
		ucProvider.NewGetAnalytics(providerRepo),
	)

	adminHandler := handlers.NewAdminHandler(handlers.AdminUseCases{
		Dashboard:      ucAdmin.NewGetDashboard(adminRepo),
		ListUsers:      ucAdmin.NewListUsers(userRepo),
		GetUser:        ucAdmin.NewGetUser(userRepo),
		SetBlocked:     ucAdmin.NewSetBlocked(userRepo, d.Audit, d.Revoked),
		DeleteUser:     ucAdmin.NewDeleteUser(userRepo, adminRepo, d.Audit),
		DeleteProvider: ucAdmin.NewDeleteProvider(adminRepo, d.Audit),
		AuditLogs:      ucAdmin.NewListAuditLogs(adminRepo),
		Providers:      ucProvider.NewListSummaries(providerRepo),
		ListServices:   listServicesUC,
		DeleteService:  deleteServiceUC,
		ListBookings:   listBookingsUC,
		DeleteBooking:  deleteBookingUC,
		UpdatePayment:  ucBooking.NewUpdatePaymentStatus(bookingRepo, d.Audit),
	})

	authRequired := middleware.AuthMiddleware(d.Tokens, d.Revoked)
	authLimit := middleware.RateLimiter(d.Cache, "auth", cfg.RateLimitMax, cfg.RateLimitWindow)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/register", authLimit, authHandler.Register)
		api.POST("/auth/login", authLimit, authHandler.Login)
		api.POST("/admin/setup", authLimit, authHandler.AdminSetup)

		// ------------------------------
		// PUBLIC CATALOG
		// ------------------------------
		api.GET("/services", serviceHandler.List)
		api.GET("/services/:id", serviceHandler.Get)
		api.GET("/providers/top", providerHandler.Top)
		api.GET("/providers/:id", providerHandler.Profile)

		// ------------------------------
		// AUTHENTICATED
		// ------------------------------
		secured := api.Group("")
		secured.Use(authRequired)
		{
			secured.POST("/auth/change-password", authHandler.ChangePassword)
			secured.GET("/me", authHandler.Me)
			secured.PUT("/me", authHandler.UpdateMe)

			owners := middleware.RequireRole(models.RoleProvider, models.RoleAdmin)
			secured.POST("/services", owners, serviceHandler.Create)
			secured.PUT("/services/:id", owners, serviceHandler.Update)
			secured.DELETE("/services/:id", owners, serviceHandler.Delete)

			secured.GET("/bookings", bookingHandler.List)
			secured.POST("/bookings", middleware.RequireRole(models.RoleCustomer, models.RoleAdmin), bookingHandler.Create)
			secured.GET("/bookings/:id", bookingHandler.Get)
			secured.PUT("/bookings/:id", bookingHandler.UpdateStatus)
			secured.POST("/bookings/:id/rating", middleware.RequireRole(models.RoleCustomer), bookingHandler.Rate)
			secured.DELETE("/bookings/:id", bookingHandler.Delete)

			secured.GET("/notifications", notificationHandler.List)

			secured.GET("/provider/analytics", middleware.RequireRole(models.RoleProvider), providerHandler.Analytics)
		}

		// ------------------------------
		// ADMIN
		// ------------------------------
		admin := api.Group("/admin")
		admin.Use(authRequired, middleware.RequireRole(models.RoleAdmin))
		{
			admin.GET("/dashboard", adminHandler.Dashboard)

			admin.GET("/users", adminHandler.ListUsers)
			admin.GET("/users/:id", adminHandler.GetUser)
			admin.PUT("/users/:id", adminHandler.UpdateUser)
			admin.DELETE("/users/:id", adminHandler.DeleteUser)

			admin.GET("/providers-list", adminHandler.ListProviders)
			admin.DELETE("/providers-list", adminHandler.DeleteProvider)
			admin.GET("/services-list", adminHandler.ListServices)
			admin.DELETE("/services-list", adminHandler.DeleteService)
			admin.GET("/bookings-list", adminHandler.ListBookings)
			admin.DELETE("/bookings-list", adminHandler.DeleteBooking)
			admin.PUT("/bookings/:id/payment", adminHandler.UpdatePayment)

			admin.GET("/audit-logs", adminHandler.AuditLogs)
		}
	}
}
