package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/smilepoint/dental-clinic/internal/audit"
	"github.com/smilepoint/dental-clinic/internal/config"
	"github.com/smilepoint/dental-clinic/internal/handlers"
	infraRepo "github.com/smilepoint/dental-clinic/internal/infra/repository"
	"github.com/smilepoint/dental-clinic/internal/kv"
	"github.com/smilepoint/dental-clinic/internal/middleware"
	"github.com/smilepoint/dental-clinic/internal/otp"
	"github.com/smilepoint/dental-clinic/internal/session"
	"github.com/smilepoint/dental-clinic/internal/storage"
	ucBooking "github.com/smilepoint/dental-clinic/internal/usecase/booking"
	ucIdentity "github.com/smilepoint/dental-clinic/internal/usecase/identity"
	ucOrdering "github.com/smilepoint/dental-clinic/internal/usecase/ordering"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, store kv.Store, cfg *config.Config) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	bookingRepo := infraRepo.NewBookingGormRepository(db)
	orderingRepo := infraRepo.NewOrderingGormRepository(db)
	catalogRepo := infraRepo.NewCatalogGormRepository(db)
	userRepo := infraRepo.NewUserGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	codes := otp.NewService(store)
	sessions := session.NewManager(store, cfg.SessionSecret)
	uploader := storage.NewUploader(cfg)

	// ======================================================
	// USE CASES
	// ======================================================
	sendCodeUC := ucIdentity.NewSendCode(codes)
	verifyCodeUC := ucIdentity.NewVerifyCode(codes, userRepo, sessions)
	completeSignupUC := ucIdentity.NewCompleteSignup(userRepo, sessions, auditDispatcher)

	createAppointmentUC := ucBooking.NewCreateAppointment(bookingRepo, auditDispatcher)
	listAppointmentsUC := ucBooking.NewListAppointments(bookingRepo)
	updateStatusUC := ucBooking.NewUpdateStatus(bookingRepo, auditDispatcher)
	cancelAppointmentUC := ucBooking.NewCancelAppointment(bookingRepo, auditDispatcher)
	listSlotsUC := ucBooking.NewListAvailableSlots(bookingRepo)

	createOrderUC := ucOrdering.NewCreateOrder(orderingRepo, auditDispatcher)
	listOrdersUC := ucOrdering.NewListOrders(orderingRepo)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(
		sendCodeUC,
		verifyCodeUC,
		completeSignupUC,
		userRepo,
		sessions,
		uploader,
	)

	dentistHandler := handlers.NewDentistHandler(catalogRepo, listSlotsUC)

	appointmentHandler := handlers.NewAppointmentHandler(
		createAppointmentUC,
		listAppointmentsUC,
		updateStatusUC,
		cancelAppointmentUC,
	)

	productHandler := handlers.NewProductHandler(catalogRepo)
	reviewHandler := handlers.NewReviewHandler(catalogRepo, orderingRepo)
	orderHandler := handlers.NewOrderHandler(createOrderUC, listOrdersUC)

	requireAuth := middleware.RequireAuth(sessions)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/send-otp", authHandler.SendOTP)
		api.POST("/auth/verify-otp", authHandler.VerifyOTP)
		api.POST("/auth/complete-signup", authHandler.CompleteSignup)
		api.GET("/auth/user", requireAuth, authHandler.GetUser)
		api.POST("/auth/logout", authHandler.Logout)
		api.POST("/auth/profile-image", requireAuth, authHandler.UploadProfileImage)

		// ------------------------------
		// DENTISTS
		// ------------------------------
		api.GET("/dentists", dentistHandler.List)
		api.GET("/dentists/:id", dentistHandler.Get)
		api.GET("/dentists/:id/timeslots", dentistHandler.ListTimeSlots)

		// ------------------------------
		// APPOINTMENTS
		// ------------------------------
		api.POST("/appointments", requireAuth, appointmentHandler.Create)
		api.GET("/appointments", requireAuth, appointmentHandler.List)
		api.PATCH("/appointments/:id/status", requireAuth, appointmentHandler.UpdateStatus)
		api.DELETE("/appointments/:id", requireAuth, appointmentHandler.Cancel)

		// ------------------------------
		// PRODUCTS
		// ------------------------------
		api.GET("/products", productHandler.List)
		api.GET("/products/:id", productHandler.Get)
		api.GET("/products/:id/reviews", reviewHandler.List)
		api.POST("/products/:id/reviews", requireAuth, reviewHandler.Create)

		// ------------------------------
		// ORDERS
		// ------------------------------
		api.POST("/orders", requireAuth, orderHandler.Create)
		api.GET("/orders", requireAuth, orderHandler.List)
	}
}
