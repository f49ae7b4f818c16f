package warning

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	SeverityMinor    = "MINOR"
	SeverityMajor    = "MAJOR"
	SeverityCritical = "CRITICAL"
)

// Warning is a disciplinary record issued against an employee. It stays
// unacknowledged until the employee confirms they have seen it.
type Warning struct {
	ID             uuid.UUID      `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	EmployeeID     uuid.UUID      `gorm:"column:employee_id;type:uuid;not null;index"`
	IssuedBy       *uuid.UUID     `gorm:"column:issued_by;type:uuid"`
	Severity       string         `gorm:"column:severity;type:varchar(20);not null"`
	Reason         string         `gorm:"column:reason;type:varchar(255);not null"`
	Description    *string        `gorm:"column:description;type:text"`
	AcknowledgedAt *time.Time     `gorm:"column:acknowledged_at;type:timestamptz"`
	CreatedAt      time.Time      `gorm:"column:created_at"`
	UpdatedAt      time.Time      `gorm:"column:updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"column:deleted_at;index"`
	Employee       *EmployeeRef   `gorm:"foreignKey:EmployeeID;references:ID"`
}

func (Warning) TableName() string {
	return "warnings"
}

type EmployeeRef struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	FullName string    `gorm:"column:full_name"`
}

func (EmployeeRef) TableName() string {
	return "employees"
}
