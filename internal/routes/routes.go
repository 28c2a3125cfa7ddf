package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/mapleforkbistro/bistro-api/internal/audit"
	"github.com/mapleforkbistro/bistro-api/internal/config"
	"github.com/mapleforkbistro/bistro-api/internal/handlers"
	infraRepo "github.com/mapleforkbistro/bistro-api/internal/infra/repository"
	"github.com/mapleforkbistro/bistro-api/internal/middleware"
	ucReservation "github.com/mapleforkbistro/bistro-api/internal/usecase/reservation"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config, log *zap.Logger) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	reservationRepo := infraRepo.NewReservationGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger, log)

	// Public create is the only unauthenticated write; keep it throttled.
	createLimiter := middleware.NewIPRateLimiter(10, 5, 5*time.Minute)

	// ======================================================
	// USE CASES — RESERVATIONS
	// ======================================================
	createReservationUC := ucReservation.NewCreateReservation(
		reservationRepo,
		auditDispatcher,
		log,
	)

	listReservationsUC := ucReservation.NewListReservations(
		reservationRepo,
		log,
	)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db)

	reservationHandler := handlers.NewReservationHandler(
		createReservationUC,
		listReservationsUC,
	)

	publicWebHandler := handlers.NewPublicWebHandler()

	// ======================================================
	// WEB (HTML)
	// ======================================================
	r.GET("/", publicWebHandler.ShowHomePage)
	r.Static("/static", "./web/static")

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// PUBLIC API
		// ------------------------------
		api.POST(
			"/reservations",
			middleware.RateLimitByIP(createLimiter),
			reservationHandler.Create,
		)

		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)
		api.POST("/auth/logout", meHandler.Logout)

		// ------------------------------
		// PRIVATE API
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.GetMe)

			secured.GET(
				"/reservations",
				middleware.RequireAdmin(),
				reservationHandler.List,
			)
		}
	}
}
