package role

import (
	"go-siteops/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, rbacService middleware.Enforcer) {
	roles := r.Group("/roles")
	roles.Use(middleware.AuthMiddleware())
	{
		roles.GET("", middleware.RBACAuthorize(rbacService, "role", "read"), h.GetAll)
		roles.GET("/:id", middleware.RBACAuthorize(rbacService, "role", "read"), h.GetByID)
		roles.POST("", middleware.RBACAuthorize(rbacService, "role", "create"), h.Create)
		roles.PUT("/:id", middleware.RBACAuthorize(rbacService, "role", "update"), h.Update)
		roles.DELETE("/:id", middleware.RBACAuthorize(rbacService, "role", "delete"), h.Delete)
	}
}
