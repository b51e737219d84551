package app

import (
	"os"
	"strconv"

	"github.com/archit-sahay/Aibo-Meikan/internal/mailer"
	"github.com/archit-sahay/Aibo-Meikan/internal/middleware"
	"github.com/archit-sahay/Aibo-Meikan/internal/shared/connection"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func BuildApp(router *gin.Engine) error {
	// 1. Setup Infrastructure
	gormDB, err := connection.ConnectGORMWithRetry(
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_SSLMODE"),
		5,
	)
	if err != nil {
		return err
	}

	db, err := gormDB.DB()
	if err != nil {
		return err
	}

	// Redis is optional; without it the partner listing just skips the cache.
	var rdb *redis.Client
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		rdb, err = connection.ConnectRedisWithRetry(addr, 5)
		if err != nil {
			return err
		}
	} else {
		zap.L().Info("REDIS_ADDR not set, partner listing cache disabled")
	}

	// Mail transport. A missing password does not block startup: the mailer
	// reports ErrNotConfigured at send time and each caller decides what
	// that means for its request.
	smtpPort := 587
	if p, err := strconv.Atoi(os.Getenv("SMTP_PORT")); err == nil {
		smtpPort = p
	}
	smtpCfg := mailer.Config{
		Host:     envOrDefault("SMTP_HOST", "smtp.gmail.com"),
		Port:     smtpPort,
		Username: os.Getenv("SMTP_USER"),
		Password: os.Getenv("SMTP_PASSWORD"),
		From:     os.Getenv("SMTP_USER"),
	}
	if smtpCfg.Password == "" {
		zap.L().Warn("SMTP_PASSWORD not set, email sending will not work")
	}
	notifier := mailer.NewNotifier(mailer.NewSMTP(smtpCfg), smtpCfg.Username)

	adminPassword := os.Getenv("ADMIN_PASSWORD")
	if adminPassword == "" {
		zap.L().Warn("ADMIN_PASSWORD not set, admin endpoints will reject every request")
	}

	router.Use(middleware.RequestID())

	registerModules(router, db, gormDB, rdb, notifier, adminPassword)

	return nil
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
