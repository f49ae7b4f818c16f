package notification

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	TypeLaborRecord = "labor_record"
	TypeWarning     = "warning"
)

// Notification is a persisted per-employee message. ReadAt stays null until
// the employee acknowledges it.
type Notification struct {
	ID          uuid.UUID      `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	EmployeeID  uuid.UUID      `gorm:"column:employee_id;type:uuid;not null;index"`
	Type        string         `gorm:"column:type;type:varchar(50);not null"`
	Title       string         `gorm:"column:title;type:varchar(255);not null"`
	Message     string         `gorm:"column:message;type:text;not null"`
	ReferenceID *uuid.UUID     `gorm:"column:reference_id;type:uuid"`
	ReadAt      *time.Time     `gorm:"column:read_at;type:timestamptz"`
	CreatedAt   time.Time      `gorm:"column:created_at"`
	UpdatedAt   time.Time      `gorm:"column:updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"column:deleted_at;index"`
}

func (Notification) TableName() string {
	return "notifications"
}
