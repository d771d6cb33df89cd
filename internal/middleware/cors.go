package middleware

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// local development origins, always allowed
var defaultOrigins = []string{
	"http://localhost:3000",
	"http://localhost:5173",
	"http://127.0.0.1:3000",
	"http://127.0.0.1:5173",
}

// CORS adds CORS headers for the default origins plus extra. Requests from
// any other origin pass through untouched; the browser decides whether the
// page may read the response.
func CORS(extra []string) (gin.HandlerFunc, error) {
	origins := append([]string{}, defaultOrigins...)
	origins = append(origins, extra...)

	cfg := cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Content-Length", "Accept", "X-Requested-With", RequestIDHeader},
		ExposeHeaders:    []string{"Content-Length", RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           10 * time.Minute,
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	allowed := make(map[string]bool, len(origins))
	for _, o := range origins {
		allowed[o] = true
	}
	corsHandler := cors.New(cfg)

	return func(c *gin.Context) {
		if !allowed[c.GetHeader("Origin")] {
			c.Next()
			return
		}
		corsHandler(c)
	}, nil
}
