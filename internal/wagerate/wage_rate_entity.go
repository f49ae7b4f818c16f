package wagerate

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type WageRate struct {
	ID                   uuid.UUID `gorm:"type:uuid;primaryKey"`
	RoleID               uuid.UUID `gorm:"type:uuid;index;not null"`
	HourlyRate           float64   `gorm:"not null"`
	OvertimeMultiplier   float64   `gorm:"not null;default:1.5"`
	DoubleTimeMultiplier float64   `gorm:"not null;default:2.0"`
	EffectiveDate        time.Time `gorm:"type:date;not null;index"`
	CreatedAt            time.Time
	UpdatedAt            time.Time
	DeletedAt            gorm.DeletedAt `gorm:"index"`
}

func (WageRate) TableName() string {
	return "wage_rates"
}

// Info is the immutable snapshot handed to cost calculations. It carries the
// role the rate came from so cached entries can be traced back.
type Info struct {
	WageRateID           string    `json:"wage_rate_id"`
	RoleID               string    `json:"role_id"`
	HourlyRate           float64   `json:"hourly_rate"`
	OvertimeMultiplier   float64   `json:"overtime_multiplier"`
	DoubleTimeMultiplier float64   `json:"double_time_multiplier"`
	EffectiveDate        time.Time `json:"effective_date"`
}

func (w WageRate) toInfo() Info {
	return Info{
		WageRateID:           w.ID.String(),
		RoleID:               w.RoleID.String(),
		HourlyRate:           w.HourlyRate,
		OvertimeMultiplier:   w.OvertimeMultiplier,
		DoubleTimeMultiplier: w.DoubleTimeMultiplier,
		EffectiveDate:        w.EffectiveDate,
	}
}
