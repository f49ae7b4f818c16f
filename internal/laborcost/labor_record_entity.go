package laborcost

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	StatusPending   = "pending"
	StatusApproved  = "approved"
	StatusPaid      = "paid"
	StatusCancelled = "cancelled"
)

// validTransitions drives the externally-triggered approval workflow.
// Paid and cancelled are terminal.
var validTransitions = map[string][]string{
	StatusPending:  {StatusApproved, StatusCancelled},
	StatusApproved: {StatusPaid, StatusCancelled},
}

func CanTransition(from, to string) bool {
	for _, allowed := range validTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

// LaborRecord is one payroll line item. Calculated records carry the cost
// breakdown they were derived from; manual records may only have the amount.
// OvertimeCost includes the double-time premium; DoubleTimeHours keeps the
// hour split recoverable.
type LaborRecord struct {
	ID              uuid.UUID  `gorm:"type:uuid;primaryKey"`
	ReferenceNumber string     `gorm:"uniqueIndex:uq_labor_reference;type:varchar(20)"`
	EmployeeID      uuid.UUID  `gorm:"type:uuid;not null;index"`
	SiteID          *uuid.UUID `gorm:"type:uuid;index"`
	PaymentType     string     `gorm:"type:varchar(20);not null;index"`
	Status          string     `gorm:"type:varchar(20);not null;default:'pending';index"`
	Amount          float64    `gorm:"not null"`
	HoursWorked     *float64
	HourlyRate      *float64
	OvertimeHours   *float64
	DoubleTimeHours *float64
	OvertimeRate    *float64
	BaseCost        *float64
	OvertimeCost    *float64
	BonusAmount     *float64
	TaxAmount       float64
	NetAmount       float64
	WorkDate        *time.Time `gorm:"type:date;index"`
	PeriodStart     *time.Time `gorm:"type:date"`
	PeriodEnd       *time.Time `gorm:"type:date"`
	Notes           *string    `gorm:"type:text"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
	DeletedAt       gorm.DeletedAt `gorm:"index"`
	Employee        *EmployeeRef   `gorm:"foreignKey:EmployeeID;references:ID"`
}

func (LaborRecord) TableName() string {
	return "labor_records"
}

type EmployeeRef struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	FullName string    `gorm:"column:full_name"`
}

func (EmployeeRef) TableName() string {
	return "employees"
}
