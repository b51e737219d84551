package app

import (
	"database/sql"

	"github.com/archit-sahay/Aibo-Meikan/internal/auth"
	"github.com/archit-sahay/Aibo-Meikan/internal/contact"
	"github.com/archit-sahay/Aibo-Meikan/internal/health"
	"github.com/archit-sahay/Aibo-Meikan/internal/mailer"
	"github.com/archit-sahay/Aibo-Meikan/internal/partner"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
	notifier mailer.Notifier,
	adminPassword string,
) {
	// --- Repositories ---
	partnerRepo := partner.NewRepository(gormDB)

	// --- Services ---
	authService := auth.NewService(adminPassword)
	partnerService := partner.NewService(db, partnerRepo, rdb, notifier)
	contactService := contact.NewService(notifier)

	// --- Handlers ---
	authHandler := auth.NewHandler(authService)
	partnerHandler := partner.NewHandler(partnerService)
	contactHandler := contact.NewHandler(contactService)
	healthHandler := health.NewHandler(gormDB)

	// --- Routes Registration ---
	api := router.Group("")
	{
		auth.RegisterRoutes(api, authHandler)
		partner.RegisterRoutes(api, partnerHandler, adminPassword)
		contact.RegisterRoutes(api, contactHandler)
		health.RegisterRoutes(api, healthHandler)
	}
}
