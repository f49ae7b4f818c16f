package wagerate

import (
	"go-siteops/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, rbacService middleware.Enforcer) {
	rates := r.Group("/wage-rates")
	rates.Use(middleware.AuthMiddleware())
	{
		rates.GET("", middleware.RBACAuthorize(rbacService, "wagerate", "read"), h.GetAll)
		rates.GET("/:id", middleware.RBACAuthorize(rbacService, "wagerate", "read"), h.GetByID)
		rates.GET("/role/:roleId/current", middleware.RBACAuthorize(rbacService, "wagerate", "read"), h.GetCurrentByRole)
		rates.POST("", middleware.RBACAuthorize(rbacService, "wagerate", "create"), h.Create)
		rates.PUT("/:id", middleware.RBACAuthorize(rbacService, "wagerate", "update"), h.Update)
		rates.DELETE("/:id", middleware.RBACAuthorize(rbacService, "wagerate", "delete"), h.Delete)
	}
}
