package supplies

import (
	"github.com/gin-gonic/gin"

	"github.com/jsb2092/fashion-coordinator-sub000/internal/auth"
	"github.com/jsb2092/fashion-coordinator-sub000/internal/supplies"
)

// registers care supply CRUD routes
func RegisterRoutes(router *gin.RouterGroup, supplyRepo *supplies.Repository) {
	suppliesGroup := router.Group("/supplies")
	suppliesGroup.Use(auth.AuthMiddleware())
	{
		suppliesGroup.GET("", ListSuppliesHandler(supplyRepo))
		suppliesGroup.POST("", CreateSupplyHandler(supplyRepo))
		suppliesGroup.PUT("/:id", UpdateSupplyHandler(supplyRepo))
		suppliesGroup.DELETE("/:id", DeleteSupplyHandler(supplyRepo))
	}
}
