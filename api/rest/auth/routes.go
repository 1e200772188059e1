package auth

import (
	"github.com/gin-gonic/gin"

	"github.com/jsb2092/fashion-coordinator-sub000/internal/auth"
	"github.com/jsb2092/fashion-coordinator-sub000/internal/people"
)

// registers all authentication routes
func RegisterRoutes(router *gin.RouterGroup, personRepo *people.Repository) {
	authGroup := router.Group("/auth")
	{
		authGroup.GET("/:provider", BeginAuthHandler(personRepo))
		authGroup.GET("/:provider/callback", CallbackHandler(personRepo))
		authGroup.POST("/logout", LogoutHandler())
		authGroup.GET("/me", auth.AuthMiddleware(), GetCurrentPersonHandler(personRepo))
		authGroup.PUT("/me", auth.AuthMiddleware(), UpdateProfileHandler(personRepo))
	}
}
