package wardrobe

import (
	"github.com/gin-gonic/gin"

	"github.com/jsb2092/fashion-coordinator-sub000/internal/auth"
	"github.com/jsb2092/fashion-coordinator-sub000/internal/wardrobe"
)

// registers wardrobe item CRUD routes
func RegisterRoutes(router *gin.RouterGroup, itemRepo *wardrobe.Repository) {
	itemsGroup := router.Group("/wardrobe/items")
	itemsGroup.Use(auth.AuthMiddleware())
	{
		itemsGroup.GET("", ListItemsHandler(itemRepo))
		itemsGroup.POST("", CreateItemHandler(itemRepo))
		itemsGroup.GET("/:id", GetItemHandler(itemRepo))
		itemsGroup.PUT("/:id", UpdateItemHandler(itemRepo))
		itemsGroup.DELETE("/:id", DeleteItemHandler(itemRepo))
	}
}
