package laborcost

import (
	"fmt"

	"go-siteops/internal/shared/apperror"
)

const (
	PaymentTypeHourly     = "hourly"
	PaymentTypeMonthly    = "monthly"
	PaymentTypeBonus      = "bonus"
	PaymentTypeOvertime   = "overtime"
	PaymentTypeCommission = "commission"
)

// taxRates maps each payment type to its withholding rate.
var taxRates = map[string]float64{
	PaymentTypeHourly:     0.15,
	PaymentTypeMonthly:    0.20,
	PaymentTypeBonus:      0.25,
	PaymentTypeOvertime:   0.18,
	PaymentTypeCommission: 0.22,
}

// TaxRateFor returns the withholding rate for a payment type, or false for an
// unrecognized one.
func TaxRateFor(paymentType string) (float64, bool) {
	rate, ok := taxRates[paymentType]
	return rate, ok
}

// PaymentInput is the closed set of payment shapes the calculator accepts,
// one concrete type per payment type, each carrying only the fields that
// type uses. The unexported methods keep the set closed to this package.
type PaymentInput interface {
	Type() string
	validate() []string
	breakdown() CostCalculation
}

// HourlyPayment is priced from hours times rate, plus an optional flat
// overtime block.
type HourlyPayment struct {
	HoursWorked   float64
	HourlyRate    float64
	OvertimeHours float64
	OvertimeRate  float64
}

func (p HourlyPayment) Type() string { return PaymentTypeHourly }

func (p HourlyPayment) validate() []string {
	var violations []string
	if p.HoursWorked <= 0 {
		violations = append(violations, "hourly payment requires hours_worked > 0")
	}
	if p.HourlyRate <= 0 {
		violations = append(violations, "hourly payment requires hourly_rate > 0")
	}
	return violations
}

func (p HourlyPayment) breakdown() CostCalculation {
	calc := CostCalculation{BaseCost: p.HoursWorked * p.HourlyRate}
	if p.OvertimeHours > 0 {
		rate := p.OvertimeRate
		if rate <= 0 {
			rate = p.HourlyRate * 1.5
		}
		calc.OvertimeCost = p.OvertimeHours * rate
	}
	return calc
}

// MonthlyPayment is a fixed salary amount with an optional bonus on top.
type MonthlyPayment struct {
	Amount      float64
	BonusAmount float64
}

func (p MonthlyPayment) Type() string { return PaymentTypeMonthly }

func (p MonthlyPayment) validate() []string {
	if p.Amount <= 0 {
		return []string{"monthly payment requires amount > 0"}
	}
	return nil
}

func (p MonthlyPayment) breakdown() CostCalculation {
	calc := CostCalculation{BaseCost: p.Amount}
	if p.BonusAmount > 0 {
		calc.BonusAmount = p.BonusAmount
	}
	return calc
}

// BonusPayment is a one-off amount with no base component.
type BonusPayment struct {
	Amount float64
}

func (p BonusPayment) Type() string { return PaymentTypeBonus }

func (p BonusPayment) validate() []string {
	if p.Amount <= 0 {
		return []string{"bonus payment requires amount or bonus_amount > 0"}
	}
	return nil
}

func (p BonusPayment) breakdown() CostCalculation {
	return CostCalculation{BonusAmount: p.Amount}
}

// OvertimePayment prices standalone overtime hours. When no explicit
// overtime rate is given it falls back to 1.5x the hourly rate.
type OvertimePayment struct {
	OvertimeHours float64
	OvertimeRate  float64
	HourlyRate    float64
}

func (p OvertimePayment) Type() string { return PaymentTypeOvertime }

func (p OvertimePayment) validate() []string {
	var violations []string
	if p.OvertimeHours <= 0 {
		violations = append(violations, "overtime payment requires overtime_hours > 0")
	}
	if p.OvertimeRate <= 0 && p.HourlyRate <= 0 {
		violations = append(violations, "overtime payment requires overtime_rate or hourly_rate > 0")
	}
	return violations
}

func (p OvertimePayment) breakdown() CostCalculation {
	rate := p.OvertimeRate
	if rate <= 0 {
		rate = p.HourlyRate * 1.5
	}
	return CostCalculation{OvertimeCost: p.OvertimeHours * rate}
}

// CommissionPayment is a sales-style amount taxed at its own rate.
type CommissionPayment struct {
	Amount float64
}

func (p CommissionPayment) Type() string { return PaymentTypeCommission }

func (p CommissionPayment) validate() []string {
	if p.Amount <= 0 {
		return []string{"commission payment requires amount > 0"}
	}
	return nil
}

func (p CommissionPayment) breakdown() CostCalculation {
	return CostCalculation{BonusAmount: p.Amount}
}

// CostCalculation is the output of every calculation path.
// Invariants: TotalCost = BaseCost + OvertimeCost + DoubleTimeCost +
// BonusAmount and NetAmount = TotalCost − TaxAmount.
type CostCalculation struct {
	BaseCost       float64 `json:"base_cost"`
	OvertimeCost   float64 `json:"overtime_cost"`
	DoubleTimeCost float64 `json:"double_time_cost"`
	BonusAmount    float64 `json:"bonus_amount"`
	TotalCost      float64 `json:"total_cost"`
	TaxRate        float64 `json:"tax_rate"`
	TaxAmount      float64 `json:"tax_amount"`
	NetAmount      float64 `json:"net_amount"`
}

// PaymentFromRequest maps the flat API request onto the typed payment for
// its declared type. Field-level rules are left to Calculate so every
// violation is still reported at once.
func PaymentFromRequest(req CreateLaborRecordRequest) (PaymentInput, error) {
	switch req.PaymentType {
	case "":
		return nil, apperror.NewValidation([]string{"payment_type is required"})
	case PaymentTypeHourly:
		return HourlyPayment{
			HoursWorked:   orZero(req.HoursWorked),
			HourlyRate:    orZero(req.HourlyRate),
			OvertimeHours: orZero(req.OvertimeHours),
			OvertimeRate:  orZero(req.OvertimeRate),
		}, nil
	case PaymentTypeMonthly:
		return MonthlyPayment{
			Amount:      orZero(req.Amount),
			BonusAmount: orZero(req.BonusAmount),
		}, nil
	case PaymentTypeBonus:
		amount := orZero(req.Amount)
		if amount <= 0 {
			amount = orZero(req.BonusAmount)
		}
		return BonusPayment{Amount: amount}, nil
	case PaymentTypeOvertime:
		return OvertimePayment{
			OvertimeHours: orZero(req.OvertimeHours),
			OvertimeRate:  orZero(req.OvertimeRate),
			HourlyRate:    orZero(req.HourlyRate),
		}, nil
	case PaymentTypeCommission:
		return CommissionPayment{Amount: orZero(req.Amount)}, nil
	default:
		return nil, apperror.NewValidation([]string{fmt.Sprintf("unknown payment_type %q", req.PaymentType)})
	}
}

// Calculate validates the payment, collecting every violated rule, then
// produces the full cost breakdown.
func Calculate(in PaymentInput) (CostCalculation, error) {
	if in == nil {
		return CostCalculation{}, apperror.NewValidation([]string{"payment_type is required"})
	}
	if violations := in.validate(); len(violations) > 0 {
		return CostCalculation{}, apperror.NewValidation(violations)
	}

	calc := in.breakdown()
	calc.TotalCost = calc.BaseCost + calc.OvertimeCost + calc.DoubleTimeCost + calc.BonusAmount
	calc.TaxRate = taxRates[in.Type()]
	calc.TaxAmount = calc.TotalCost * calc.TaxRate
	calc.NetAmount = calc.TotalCost * (1 - calc.TaxRate)

	return calc, nil
}

func orZero(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}
