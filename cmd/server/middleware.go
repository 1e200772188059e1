package main

import (
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	mgin "github.com/ulule/limiter/v3/drivers/middleware/gin"
	"github.com/ulule/limiter/v3/drivers/store/memory"
)

// builds the CORS middleware. allowed origins come from ALLOWED_ORIGINS
// (comma-separated); development allows the local frontend by default
func CORSMiddleware() gin.HandlerFunc {
	origins := []string{"http://localhost:5173", "http://localhost:3000"}

	if env := os.Getenv("ALLOWED_ORIGINS"); env != "" {
		origins = strings.Split(env, ",")
	}

	return cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	})
}

// per-client rate limit for the endpoints that can reach the model. the
// regeneration throttle bounds spend per cached subject; this bounds raw
// request volume per IP
func AIRateLimiter() gin.HandlerFunc {
	rate := limiter.Rate{
		Period: 1 * time.Minute,
		Limit:  20,
	}

	return mgin.NewMiddleware(limiter.New(memory.NewStore(), rate))
}
