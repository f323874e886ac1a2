package main

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"gorm.io/gorm"

	"github.com/OptiVisionCare/optic-booking/internal/config"
	dbpkg "github.com/OptiVisionCare/optic-booking/internal/db"
	domain "github.com/OptiVisionCare/optic-booking/internal/domain/booking"
	infraRepo "github.com/OptiVisionCare/optic-booking/internal/infra/repository"
	"github.com/OptiVisionCare/optic-booking/internal/infra/sheetstore"
	"github.com/OptiVisionCare/optic-booking/internal/middleware"
	"github.com/OptiVisionCare/optic-booking/internal/routes"
)

func main() {

	_ = godotenv.Load()

	cfg := config.Load()

	var (
		store domain.Store
		db    *gorm.DB
	)

	switch cfg.StoreBackend {
	case "postgres":
		db = dbpkg.NewDB(cfg)
		store = infraRepo.NewBookingGormRepository(db)
	default:
		s, err := sheetstore.New(context.Background(), sheetstore.Config{
			SpreadsheetID:       cfg.SheetID,
			SheetName:           cfg.SheetName,
			ServiceAccountEmail: cfg.ServiceAccountEmail,
			PrivateKey:          cfg.ServiceAccountKey,
		})
		if err != nil {
			log.Fatalf("failed to init sheet store: %v", err)
		}
		store = s
	}

	r := gin.Default()

	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, store, db, cfg)

	log.Printf("Server running on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
