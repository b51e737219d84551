package contact

import (
	"net/http"

	"github.com/archit-sahay/Aibo-Meikan/internal/shared/apperror"
	"github.com/archit-sahay/Aibo-Meikan/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("contact.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("contact.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) Submit(c *gin.Context) {
	var req ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("http contact validation failed", zap.Error(err))
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.service.Submit(c.Request.Context(), req); err != nil {
		httpErr := apperror.ToHTTP(err)
		h.logger.Warn("contact request failed",
			zap.Int("status", httpErr.Status),
			zap.String("code", httpErr.Code),
			zap.String("message", httpErr.Message),
		)
		response.Error(c, httpErr.Status, httpErr.Message)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Your message has been sent successfully."})
}
