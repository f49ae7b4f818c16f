package material

type CreateMaterialRequest struct {
	SiteID         *string  `json:"site_id" binding:"omitempty,uuid"`
	Name           string   `json:"name" binding:"required,min=2,max=255"`
	SKU            string   `json:"sku" binding:"required,min=2,max=100"`
	Unit           string   `json:"unit" binding:"required,min=1,max=30"`
	QuantityOnHand float64  `json:"quantity_on_hand" binding:"gte=0"`
	UnitCost       float64  `json:"unit_cost" binding:"gte=0"`
	ReorderLevel   *float64 `json:"reorder_level" binding:"omitempty,gte=0"`
}

type UpdateMaterialRequest struct {
	SiteID       *string  `json:"site_id" binding:"omitempty,uuid"`
	Name         string   `json:"name" binding:"required,min=2,max=255"`
	Unit         string   `json:"unit" binding:"required,min=1,max=30"`
	UnitCost     float64  `json:"unit_cost" binding:"gte=0"`
	ReorderLevel *float64 `json:"reorder_level" binding:"omitempty,gte=0"`
}

// AdjustStockRequest moves stock by a signed quantity. Consumption is a
// negative quantity and must not push the on-hand balance below zero.
type AdjustStockRequest struct {
	Quantity float64  `json:"quantity" binding:"required"`
	UnitCost *float64 `json:"unit_cost" binding:"omitempty,gte=0"`
	Reason   string   `json:"reason" binding:"required,min=2,max=255"`
}

type MaterialResponse struct {
	ID             string   `json:"id"`
	SiteID         *string  `json:"site_id,omitempty"`
	Name           string   `json:"name"`
	SKU            string   `json:"sku"`
	Unit           string   `json:"unit"`
	QuantityOnHand float64  `json:"quantity_on_hand"`
	UnitCost       float64  `json:"unit_cost"`
	ReorderLevel   *float64 `json:"reorder_level,omitempty"`
	LowStock       bool     `json:"low_stock"`
}

type StockMovementResponse struct {
	ID         string  `json:"id"`
	MaterialID string  `json:"material_id"`
	Quantity   float64 `json:"quantity"`
	UnitCost   float64 `json:"unit_cost"`
	Reason     string  `json:"reason"`
	CreatedAt  string  `json:"created_at"`
}
