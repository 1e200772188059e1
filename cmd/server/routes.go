package main

import (
	"github.com/gin-gonic/gin"

	"github.com/jsb2092/fashion-coordinator-sub000/api/rest/auth"
	"github.com/jsb2092/fashion-coordinator-sub000/api/rest/billing"
	"github.com/jsb2092/fashion-coordinator-sub000/api/rest/care"
	"github.com/jsb2092/fashion-coordinator-sub000/api/rest/health"
	"github.com/jsb2092/fashion-coordinator-sub000/api/rest/shopping"
	"github.com/jsb2092/fashion-coordinator-sub000/api/rest/stylist"
	"github.com/jsb2092/fashion-coordinator-sub000/api/rest/supplies"
	"github.com/jsb2092/fashion-coordinator-sub000/api/rest/wardrobe"
)

// sets up all API routes and middleware
func RegisterRoutes(router *gin.Engine, server *Server) {
	router.Use(CORSMiddleware())
	router.GET("/health", health.Handler)

	aiLimiter := AIRateLimiter()

	v1 := router.Group("/api/v1")

	{
		v1.GET("/ping", health.PingHandler)

		auth.RegisterRoutes(v1, server.personRepo)
		wardrobe.RegisterRoutes(v1, server.itemRepo)
		supplies.RegisterRoutes(v1, server.supplyRepo)

		care.RegisterRoutes(v1, care.Deps{
			People:  server.personRepo,
			Items:   server.itemRepo,
			Shelf:   server.supplyRepo,
			Cache:   server.cacheRepo,
			Advisor: server.services.Advisor,
			Access:  server.services.Access,
			Quota:   server.services.Quota,
		}, aiLimiter)

		shopping.RegisterRoutes(v1, shopping.Deps{
			People:  server.personRepo,
			Items:   server.itemRepo,
			Cache:   server.cacheRepo,
			Advisor: server.services.Advisor,
		}, aiLimiter)

		stylist.RegisterRoutes(v1, stylist.Deps{
			People:  server.personRepo,
			Items:   server.itemRepo,
			Advisor: server.services.Advisor,
			Access:  server.services.Access,
		}, aiLimiter)

		billing.RegisterRoutes(v1, server.personRepo, server.config.BillingWebhookSecret)
	}
}
