package budget

import (
	"go-siteops/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, rbacService middleware.Enforcer) {
	budgets := r.Group("/budgets")
	budgets.Use(middleware.AuthMiddleware())
	{
		budgets.GET("", middleware.RBACAuthorize(rbacService, "budget", "read"), h.GetAll)
		budgets.GET("/:id", middleware.RBACAuthorize(rbacService, "budget", "read"), h.GetByID)
		budgets.GET("/:id/status", middleware.RBACAuthorize(rbacService, "budget", "read"), h.GetStatus)
		budgets.POST("", middleware.RBACAuthorize(rbacService, "budget", "create"), h.Create)
		budgets.PUT("/:id", middleware.RBACAuthorize(rbacService, "budget", "update"), h.Update)
		budgets.DELETE("/:id", middleware.RBACAuthorize(rbacService, "budget", "delete"), h.Delete)
	}
}
