package shopping

import (
	"github.com/gin-gonic/gin"

	"github.com/jsb2092/fashion-coordinator-sub000/internal/auth"
)

// registers shopping recommendation routes
func RegisterRoutes(router *gin.RouterGroup, deps Deps, aiLimiter gin.HandlerFunc) {
	shoppingGroup := router.Group("/shopping")
	shoppingGroup.Use(auth.AuthMiddleware())
	{
		shoppingGroup.GET("/recommendations", aiLimiter, RecommendationsHandler(deps))
		shoppingGroup.POST("/recommendations/click", ClickHandler(deps))
	}
}
