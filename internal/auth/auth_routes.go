package auth

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	admin := r.Group("/admin")
	{
		admin.POST("/auth", handler.Login)
	}
}
