package warning

import (
	"go-siteops/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, rbacService middleware.Enforcer) {
	warnings := r.Group("/warnings")
	warnings.Use(middleware.AuthMiddleware())
	{
		warnings.GET("", middleware.RBACAuthorize(rbacService, "warning", "read"), h.GetAll)
		warnings.GET("/:id", middleware.RBACAuthorize(rbacService, "warning", "read"), h.GetByID)
		warnings.POST("", middleware.RBACAuthorize(rbacService, "warning", "create"), h.Create)
		// acknowledgement is done by the targeted employee, no RBAC resource check
		warnings.PUT("/:id/acknowledge", h.Acknowledge)
		warnings.DELETE("/:id", middleware.RBACAuthorize(rbacService, "warning", "delete"), h.Delete)
	}
}
