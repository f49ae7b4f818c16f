package notification

import (
	"go-siteops/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts the employee-facing notification surface. There is no
// RBAC resource here: every authenticated employee sees only their own rows.
func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	notifications := r.Group("/notifications")
	notifications.Use(middleware.AuthMiddleware())
	{
		notifications.GET("", h.GetMine)
		notifications.PUT("/read-all", h.MarkAllRead)
		notifications.PUT("/:id/read", h.MarkRead)
	}
}
