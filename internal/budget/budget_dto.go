package budget

type CreateBudgetRequest struct {
	SiteID         string  `json:"site_id" binding:"required,uuid"`
	Name           string  `json:"name" binding:"required,min=2,max=255"`
	LaborBudget    float64 `json:"labor_budget" binding:"gte=0"`
	MaterialBudget float64 `json:"material_budget" binding:"gte=0"`
	PeriodStart    string  `json:"period_start" binding:"required"`
	PeriodEnd      string  `json:"period_end" binding:"required"`
}

type UpdateBudgetRequest struct {
	Name           string  `json:"name" binding:"required,min=2,max=255"`
	LaborBudget    float64 `json:"labor_budget" binding:"gte=0"`
	MaterialBudget float64 `json:"material_budget" binding:"gte=0"`
	PeriodStart    string  `json:"period_start" binding:"required"`
	PeriodEnd      string  `json:"period_end" binding:"required"`
}

type BudgetResponse struct {
	ID             string  `json:"id"`
	SiteID         string  `json:"site_id"`
	Name           string  `json:"name"`
	LaborBudget    float64 `json:"labor_budget"`
	MaterialBudget float64 `json:"material_budget"`
	TotalBudget    float64 `json:"total_budget"`
	PeriodStart    string  `json:"period_start"`
	PeriodEnd      string  `json:"period_end"`
}

// BudgetStatusResponse is a budget plus its spend-to-date, computed from
// labor records and material purchases inside the budget period.
type BudgetStatusResponse struct {
	BudgetResponse
	LaborSpent    float64 `json:"labor_spent"`
	MaterialSpent float64 `json:"material_spent"`
	TotalSpent    float64 `json:"total_spent"`
	Remaining     float64 `json:"remaining"`
	OverBudget    bool    `json:"over_budget"`
}
