package routes

import (
	"log"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/OptiVisionCare/optic-booking/internal/audit"
	"github.com/OptiVisionCare/optic-booking/internal/config"
	domain "github.com/OptiVisionCare/optic-booking/internal/domain/booking"
	"github.com/OptiVisionCare/optic-booking/internal/handlers"
	"github.com/OptiVisionCare/optic-booking/internal/middleware"
	"github.com/OptiVisionCare/optic-booking/internal/ratelimit"
	"github.com/OptiVisionCare/optic-booking/internal/timezone"
	ucBooking "github.com/OptiVisionCare/optic-booking/internal/usecase/booking"
)

// RegisterRoutes wires the store into usecases, handlers and the two public
// endpoints. db is nil when the spreadsheet backend is active; the audit
// logger then records to structured logs instead of audit_logs rows.
func RegisterRoutes(r *gin.Engine, store domain.Store, db *gorm.DB, cfg *config.Config) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	loc := timezone.Location(cfg.BusinessTimezone)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	var limiter ratelimit.Limiter
	if cfg.RedisAddr != "" {
		redisLimiter, err := ratelimit.NewRedisLimiter(
			cfg.RedisAddr,
			cfg.RedisPassword,
			"optic:ratelimit",
			cfg.RateLimit,
			cfg.RateWindow,
		)
		if err != nil {
			log.Fatalf("failed to init redis rate limiter: %v", err)
		}
		limiter = redisLimiter
	} else {
		limiter = ratelimit.NewMemoryLimiter(cfg.RateLimit, cfg.RateWindow)
	}

	// ======================================================
	// USE CASES
	// ======================================================
	createBookingUC := ucBooking.NewCreateBooking(store, auditDispatcher, loc)
	updateBookingUC := ucBooking.NewUpdateBooking(store, auditDispatcher, loc)
	cancelBookingUC := ucBooking.NewCancelBooking(store, auditDispatcher)
	listBookedSlotsUC := ucBooking.NewListBookedSlots(store, loc)

	// ======================================================
	// HANDLERS
	// ======================================================
	bookingHandler := handlers.NewBookingHandler(
		createBookingUC,
		updateBookingUC,
		cancelBookingUC,
		listBookedSlotsUC,
	)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		api.GET("/book", bookingHandler.Availability)
		api.POST("/book",
			middleware.RateLimitMiddleware(limiter),
			bookingHandler.Book,
		)
	}
}
