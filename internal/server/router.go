package server

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"cafeapi/internal/config"
	"cafeapi/internal/domain/cafe"
	"cafeapi/internal/middleware"
	"cafeapi/internal/pkg/response"
)

// NewRouter wires the cafe endpoints and middleware onto a fresh gin engine.
func NewRouter(cfg *config.Config, db *gorm.DB) (*gin.Engine, error) {
	corsMW, err := middleware.CORS(cfg.AllowedOrigins())
	if err != nil {
		return nil, err
	}

	r := gin.New()
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.ErrorLogger())
	r.Use(corsMW)

	cafeService := cafe.NewService(cafe.NewRepository(db))
	cafeHandler := cafe.NewHandler(cafeService)
	cafeHandler.RegisterRoutes(r, middleware.APIKey(cfg.APIKey, cfg.APIKeyHash))

	r.NoRoute(response.RouteNotFound)

	return r, nil
}
