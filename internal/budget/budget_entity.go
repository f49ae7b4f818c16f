package budget

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Budget caps spend for one site over one period. Labor and material spend
// are not stored here; they are computed from labor records and stock
// movements at read time.
type Budget struct {
	ID             uuid.UUID      `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	SiteID         uuid.UUID      `gorm:"column:site_id;type:uuid;not null;index"`
	Name           string         `gorm:"column:name;type:varchar(255);not null"`
	LaborBudget    float64        `gorm:"column:labor_budget;not null;default:0"`
	MaterialBudget float64        `gorm:"column:material_budget;not null;default:0"`
	PeriodStart    time.Time      `gorm:"column:period_start;type:date;not null"`
	PeriodEnd      time.Time      `gorm:"column:period_end;type:date;not null"`
	CreatedAt      time.Time      `gorm:"column:created_at"`
	UpdatedAt      time.Time      `gorm:"column:updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"column:deleted_at;index"`
}

func (Budget) TableName() string {
	return "budgets"
}
