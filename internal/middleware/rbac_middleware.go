package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Enforcer is a local interface so this package stays decoupled from the
// rbac package (whose routes import middleware in turn).
type Enforcer interface {
	Enforce(employeeID, resource, action string) (bool, error)
}

func RBACAuthorize(service Enforcer, resource, action string) gin.HandlerFunc {
	return func(c *gin.Context) {
		employeeID := c.GetString("employee_id")
		if employeeID == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "missing auth context"})
			c.Abort()
			return
		}

		allowed, err := service.Enforce(employeeID, resource, action)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			c.Abort()
			return
		}

		if !allowed {
			c.JSON(http.StatusForbidden, gin.H{
				"error":    "forbidden",
				"message":  "You do not have permission to access this resource",
				"required": resource + ":" + action,
			})
			c.Abort()
			return
		}
		c.Next()
	}
}
