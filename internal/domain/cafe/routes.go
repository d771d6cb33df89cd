package cafe

import "github.com/gin-gonic/gin"

// RegisterRoutes mounts the cafe endpoints. guard protects the delete route.
func (h *Handler) RegisterRoutes(r gin.IRoutes, guard gin.HandlerFunc) {
	r.GET("/", Home)
	r.GET("/random", h.GetRandom)
	r.GET("/all", h.GetAll)
	r.GET("/search", h.Search)
	r.POST("/add", h.Add)
	r.PATCH("/update-price/:id", h.UpdatePrice)
	r.DELETE("/report-closed/:id", guard, h.ReportClosed)
}
