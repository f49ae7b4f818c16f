package attendance

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Attendance is one check-in/check-out interval. An employee can hold several
// intervals on the same day (split shifts); CheckOut stays null while the
// employee is still on site.
type Attendance struct {
	ID         uuid.UUID      `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	EmployeeID uuid.UUID      `gorm:"column:employee_id;type:uuid;not null;index"`
	SiteID     *uuid.UUID     `gorm:"column:site_id;type:uuid;index"`
	CheckIn    time.Time      `gorm:"column:check_in;type:timestamptz;not null;index"`
	CheckOut   *time.Time     `gorm:"column:check_out;type:timestamptz"`
	Latitude   *float64       `gorm:"column:latitude"`
	Longitude  *float64       `gorm:"column:longitude"`
	Status     string         `gorm:"column:status;type:varchar(20);not null;default:PRESENT"`
	Source     string         `gorm:"column:source;type:varchar(30);not null;default:MANUAL"`
	Notes      *string        `gorm:"column:notes;type:text"`
	CreatedAt  time.Time      `gorm:"column:created_at"`
	UpdatedAt  time.Time      `gorm:"column:updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"column:deleted_at;index"`
	Employee   *EmployeeRef   `gorm:"foreignKey:EmployeeID;references:ID"`
}

func (Attendance) TableName() string {
	return "attendances"
}

type EmployeeRef struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	FullName string    `gorm:"column:full_name"`
}

func (EmployeeRef) TableName() string {
	return "employees"
}
