package employee

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"go-siteops/internal/role"
)

const (
	EmploymentStatusActive     = "ACTIVE"
	EmploymentStatusInactive   = "INACTIVE"
	EmploymentStatusTerminated = "TERMINATED"
)

type Employee struct {
	ID               uuid.UUID  `gorm:"type:uuid;primaryKey"`
	RoleID           uuid.UUID  `gorm:"type:uuid;index;not null"`
	Role             *role.Role `gorm:"foreignKey:RoleID"`
	SiteID           *uuid.UUID `gorm:"type:uuid;index"`
	FullName         string     `gorm:"type:varchar(255);not null"`
	Email            string     `gorm:"uniqueIndex:uq_employee_email"`
	EmployeeNumber   string     `gorm:"uniqueIndex:uq_employee_number"`
	Phone            string     `gorm:"type:varchar(32)"`
	HireDate         time.Time  `gorm:"type:date;not null"`
	EmploymentStatus string     `gorm:"type:varchar(20);not null;default:'ACTIVE'"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
	DeletedAt        gorm.DeletedAt `gorm:"index"`
}

func (Employee) TableName() string {
	return "employees"
}
