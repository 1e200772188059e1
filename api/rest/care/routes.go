package care

import (
	"github.com/gin-gonic/gin"

	"github.com/jsb2092/fashion-coordinator-sub000/internal/auth"
)

// registers care instruction routes
func RegisterRoutes(router *gin.RouterGroup, deps Deps, aiLimiter gin.HandlerFunc) {
	careGroup := router.Group("/care")
	careGroup.Use(auth.AuthMiddleware())
	{
		careGroup.POST("/items/:id/instructions", aiLimiter, InstructionsHandler(deps))
	}
}
