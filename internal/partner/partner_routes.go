package partner

import (
	"github.com/archit-sahay/Aibo-Meikan/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	adminPassword string,
) {
	r.POST("/register", handler.Register)

	partners := r.Group("/partners")
	partners.Use(middleware.AdminAuth(adminPassword))
	{
		partners.GET("", handler.List)
		partners.POST("/:id", handler.UpdateNotes)
		partners.DELETE("/:id", handler.Delete)
	}
}
