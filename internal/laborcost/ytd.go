package laborcost

// YTDSummary buckets persisted labor record amounts by payment type.
// GrandTotal is the sum of the five buckets and must equal TotalTax +
// NetTotal within floating-point tolerance. Records with an unrecognized
// payment type land in no bucket; UnrecognizedCount surfaces them so bad
// data stays visible.
type YTDSummary struct {
	TotalHourly       float64 `json:"total_hourly"`
	TotalMonthly      float64 `json:"total_monthly"`
	TotalBonus        float64 `json:"total_bonus"`
	TotalOvertime     float64 `json:"total_overtime"`
	TotalCommission   float64 `json:"total_commission"`
	GrandTotal        float64 `json:"grand_total"`
	TotalTax          float64 `json:"total_tax"`
	NetTotal          float64 `json:"net_total"`
	RecordCount       int     `json:"record_count"`
	UnrecognizedCount int     `json:"unrecognized_count"`
}

// AggregateYTD folds a year's labor records into per-type totals.
func AggregateYTD(records []LaborRecord) YTDSummary {
	var summary YTDSummary
	summary.RecordCount = len(records)

	for _, rec := range records {
		amount := rec.Amount

		taxRate, ok := TaxRateFor(rec.PaymentType)
		if !ok {
			summary.UnrecognizedCount++
			continue
		}

		tax := amount * taxRate
		net := amount - tax

		switch rec.PaymentType {
		case PaymentTypeHourly:
			summary.TotalHourly += amount
		case PaymentTypeMonthly:
			summary.TotalMonthly += amount
		case PaymentTypeBonus:
			summary.TotalBonus += amount
		case PaymentTypeOvertime:
			summary.TotalOvertime += amount
		case PaymentTypeCommission:
			summary.TotalCommission += amount
		}

		summary.TotalTax += tax
		summary.NetTotal += net
	}

	summary.GrandTotal = summary.TotalHourly +
		summary.TotalMonthly +
		summary.TotalBonus +
		summary.TotalOvertime +
		summary.TotalCommission

	return summary
}
