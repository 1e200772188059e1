package billing

import (
	"github.com/gin-gonic/gin"
)

// registers the billing webhook. no auth middleware: the provider
// authenticates with the HMAC signature, not a JWT
func RegisterRoutes(router *gin.RouterGroup, personRepo SubscriptionUpdater, secret string) {
	router.POST("/billing/webhook", WebhookHandler(personRepo, secret))
}
