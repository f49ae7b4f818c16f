package material

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Material is a stock-tracked inventory item, optionally bound to one site.
type Material struct {
	ID             uuid.UUID      `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	SiteID         *uuid.UUID     `gorm:"column:site_id;type:uuid;index"`
	Name           string         `gorm:"column:name;type:varchar(255);not null"`
	SKU            string         `gorm:"column:sku;type:varchar(100);not null;uniqueIndex:uq_material_sku"`
	Unit           string         `gorm:"column:unit;type:varchar(30);not null"`
	QuantityOnHand float64        `gorm:"column:quantity_on_hand;not null;default:0"`
	UnitCost       float64        `gorm:"column:unit_cost;not null;default:0"`
	ReorderLevel   *float64       `gorm:"column:reorder_level"`
	CreatedAt      time.Time      `gorm:"column:created_at"`
	UpdatedAt      time.Time      `gorm:"column:updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"column:deleted_at;index"`
}

func (Material) TableName() string {
	return "materials"
}

// StockMovement is the audit row behind every stock adjustment. Quantity is
// signed: purchases positive, consumption negative.
type StockMovement struct {
	ID         uuid.UUID  `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	MaterialID uuid.UUID  `gorm:"column:material_id;type:uuid;not null;index"`
	SiteID     *uuid.UUID `gorm:"column:site_id;type:uuid;index"`
	Quantity   float64    `gorm:"column:quantity;not null"`
	UnitCost   float64    `gorm:"column:unit_cost;not null;default:0"`
	Reason     string     `gorm:"column:reason;type:varchar(255)"`
	CreatedAt  time.Time  `gorm:"column:created_at"`
}

func (StockMovement) TableName() string {
	return "stock_movements"
}
