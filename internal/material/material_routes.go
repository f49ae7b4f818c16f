package material

import (
	"go-siteops/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, rbacService middleware.Enforcer) {
	materials := r.Group("/materials")
	materials.Use(middleware.AuthMiddleware())
	{
		materials.GET("", middleware.RBACAuthorize(rbacService, "material", "read"), h.GetAll)
		materials.GET("/:id", middleware.RBACAuthorize(rbacService, "material", "read"), h.GetByID)
		materials.GET("/:id/movements", middleware.RBACAuthorize(rbacService, "material", "read"), h.GetMovements)
		materials.POST("", middleware.RBACAuthorize(rbacService, "material", "create"), h.Create)
		materials.POST("/:id/adjust-stock", middleware.RBACAuthorize(rbacService, "material", "update"), h.AdjustStock)
		materials.PUT("/:id", middleware.RBACAuthorize(rbacService, "material", "update"), h.Update)
		materials.DELETE("/:id", middleware.RBACAuthorize(rbacService, "material", "delete"), h.Delete)
	}
}
