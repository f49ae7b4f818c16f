package laborcost

import (
	"go-siteops/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// RegisterRoutes mounts the /for-labor surface. Record creation is guarded by
// the idempotency middleware so a retried POST cannot double-book payroll.
func RegisterRoutes(r *gin.RouterGroup, h *Handler, rbacService middleware.Enforcer, rdb *redis.Client) {
	labor := r.Group("/for-labor")
	labor.Use(middleware.AuthMiddleware())
	{
		labor.GET("", middleware.RBACAuthorize(rbacService, "laborcost", "read"), h.GetAll)
		labor.GET("/:id", middleware.RBACAuthorize(rbacService, "laborcost", "read"), h.GetByID)
		labor.GET("/attendance-preview", middleware.RBACAuthorize(rbacService, "laborcost", "read"), h.AttendancePreview)
		labor.GET("/analytics/payment-types", middleware.RBACAuthorize(rbacService, "laborcost", "read"), h.GetPaymentTypeStats)
		labor.GET("/analytics/employee/:id/ytd", middleware.RBACAuthorize(rbacService, "laborcost", "read"), h.GetYTD)

		labor.POST("",
			middleware.RBACAuthorize(rbacService, "laborcost", "create"),
			middleware.Idempotency(rdb),
			h.Create,
		)
		labor.POST("/from-attendance",
			middleware.RBACAuthorize(rbacService, "laborcost", "create"),
			middleware.Idempotency(rdb),
			h.CreateFromAttendance,
		)
		labor.POST("/generate-period",
			middleware.RBACAuthorize(rbacService, "laborcost", "create"),
			middleware.Idempotency(rdb),
			h.GeneratePeriod,
		)

		labor.PUT("/:id/approve", middleware.RBACAuthorize(rbacService, "laborcost", "approve"), h.Approve)
		labor.PUT("/:id/pay", middleware.RBACAuthorize(rbacService, "laborcost", "pay"), h.Pay)
		labor.PUT("/:id/cancel", middleware.RBACAuthorize(rbacService, "laborcost", "cancel"), h.Cancel)
	}
}
