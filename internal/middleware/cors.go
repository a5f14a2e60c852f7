package middleware

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// CORS returns a CORS middleware for the storefront origins plus any extra ones
func CORS(extraOrigins ...string) gin.HandlerFunc {
	origins := []string{
		"http://localhost:3000", // Next.js storefront
		"http://localhost:4200", // Admin shell app
	}
	for _, o := range extraOrigins {
		if o != "" && !contains(origins, o) {
			origins = append(origins, o)
		}
	}

	config := cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Accept", "Accept-Language", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}

	return cors.New(config)
}

func contains(values []string, v string) bool {
	for _, existing := range values {
		if existing == v {
			return true
		}
	}
	return false
}
