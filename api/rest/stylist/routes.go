package stylist

import (
	"github.com/gin-gonic/gin"

	"github.com/jsb2092/fashion-coordinator-sub000/internal/auth"
)

// registers stylist chat routes
func RegisterRoutes(router *gin.RouterGroup, deps Deps, aiLimiter gin.HandlerFunc) {
	stylistGroup := router.Group("/stylist")
	stylistGroup.Use(auth.AuthMiddleware())
	{
		stylistGroup.POST("/chat", aiLimiter, ChatHandler(deps))
	}
}
