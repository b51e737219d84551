package health

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type Handler struct {
	ping func(ctx context.Context) error
}

func NewHandler(db *gorm.DB) *Handler {
	return NewHandlerWithPing(func(ctx context.Context) error {
		return db.WithContext(ctx).Exec("SELECT 1").Error
	})
}

// NewHandlerWithPing lets tests substitute the database probe.
func NewHandlerWithPing(ping func(ctx context.Context) error) *Handler {
	return &Handler{ping: ping}
}

func (h *Handler) Check(c *gin.Context) {
	timestamp := time.Now().UTC().Format(time.RFC3339)

	if err := h.ping(c.Request.Context()); err != nil {
		message := "Database connection failed"
		if gin.Mode() != gin.ReleaseMode {
			message = err.Error()
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":    "error",
			"database":  "disconnected",
			"error":     message,
			"timestamp": timestamp,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"database":  "connected",
		"timestamp": timestamp,
	})
}

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	r.GET("/health", handler.Check)
}
