package site

import (
	"go-siteops/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, rbacService middleware.Enforcer) {
	sites := r.Group("/sites")
	sites.Use(middleware.AuthMiddleware())
	{
		sites.GET("", middleware.RBACAuthorize(rbacService, "site", "read"), h.GetAll)
		sites.GET("/:id", middleware.RBACAuthorize(rbacService, "site", "read"), h.GetByID)
		sites.POST("", middleware.RBACAuthorize(rbacService, "site", "create"), h.Create)
		sites.PUT("/:id", middleware.RBACAuthorize(rbacService, "site", "update"), h.Update)
		sites.DELETE("/:id", middleware.RBACAuthorize(rbacService, "site", "delete"), h.Delete)
	}
}
