package laborcost_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"go-siteops/internal/laborcost"
	"go-siteops/internal/shared/apperror"
)

func f(v float64) *float64 { return &v }

func TestCalculate_Hourly(t *testing.T) {
	calc, err := laborcost.Calculate(laborcost.HourlyPayment{
		HoursWorked: 8,
		HourlyRate:  18,
	})

	assert.NoError(t, err)
	assert.InDelta(t, 144.0, calc.BaseCost, 1e-6)
	assert.InDelta(t, 144.0, calc.TotalCost, 1e-6)
	assert.InDelta(t, 0.15, calc.TaxRate, 1e-6)
	assert.InDelta(t, 21.6, calc.TaxAmount, 1e-6)
	assert.InDelta(t, 122.4, calc.NetAmount, 1e-6)
}

func TestCalculate_HourlyWithOvertime(t *testing.T) {
	calc, err := laborcost.Calculate(laborcost.HourlyPayment{
		HoursWorked:   8,
		HourlyRate:    18,
		OvertimeHours: 1,
	})

	assert.NoError(t, err)
	// no explicit overtime rate: falls back to 1.5x base
	assert.InDelta(t, 27.0, calc.OvertimeCost, 1e-6)
	assert.InDelta(t, 171.0, calc.TotalCost, 1e-6)
}

func TestCalculate_Monthly(t *testing.T) {
	calc, err := laborcost.Calculate(laborcost.MonthlyPayment{
		Amount:      4000,
		BonusAmount: 500,
	})

	assert.NoError(t, err)
	assert.InDelta(t, 4000.0, calc.BaseCost, 1e-6)
	assert.InDelta(t, 500.0, calc.BonusAmount, 1e-6)
	assert.InDelta(t, 4500.0, calc.TotalCost, 1e-6)
	assert.InDelta(t, 0.20, calc.TaxRate, 1e-6)
	assert.InDelta(t, 900.0, calc.TaxAmount, 1e-6)
	assert.InDelta(t, 3600.0, calc.NetAmount, 1e-6)
}

func TestCalculate_Bonus(t *testing.T) {
	calc, err := laborcost.Calculate(laborcost.BonusPayment{Amount: 1500})

	assert.NoError(t, err)
	assert.Zero(t, calc.BaseCost)
	assert.InDelta(t, 1500.0, calc.BonusAmount, 1e-6)
	assert.InDelta(t, 375.0, calc.TaxAmount, 1e-6)
	assert.InDelta(t, 1125.0, calc.NetAmount, 1e-6)
}

func TestCalculate_Overtime(t *testing.T) {
	calc, err := laborcost.Calculate(laborcost.OvertimePayment{
		OvertimeHours: 3,
		OvertimeRate:  30,
	})

	assert.NoError(t, err)
	assert.InDelta(t, 90.0, calc.OvertimeCost, 1e-6)
	assert.InDelta(t, 0.18, calc.TaxRate, 1e-6)
	assert.InDelta(t, 90.0*0.82, calc.NetAmount, 1e-6)
}

func TestCalculate_OvertimeFallsBackToHourlyRate(t *testing.T) {
	calc, err := laborcost.Calculate(laborcost.OvertimePayment{
		OvertimeHours: 2,
		HourlyRate:    20,
	})

	assert.NoError(t, err)
	assert.InDelta(t, 60.0, calc.OvertimeCost, 1e-6)
}

func TestCalculate_Commission(t *testing.T) {
	calc, err := laborcost.Calculate(laborcost.CommissionPayment{Amount: 800})

	assert.NoError(t, err)
	assert.InDelta(t, 800.0, calc.BonusAmount, 1e-6)
	assert.InDelta(t, 0.22, calc.TaxRate, 1e-6)
	assert.InDelta(t, 800.0*0.78, calc.NetAmount, 1e-6)
}

func TestCalculate_NetPlusTaxEqualsTotal(t *testing.T) {
	inputs := []laborcost.PaymentInput{
		laborcost.HourlyPayment{HoursWorked: 7.5, HourlyRate: 19.25},
		laborcost.MonthlyPayment{Amount: 3333.33},
		laborcost.BonusPayment{Amount: 250.10},
		laborcost.OvertimePayment{OvertimeHours: 2.5, HourlyRate: 18},
		laborcost.CommissionPayment{Amount: 1234.56},
	}

	for _, in := range inputs {
		calc, err := laborcost.Calculate(in)
		assert.NoError(t, err)
		assert.InDelta(t, calc.TotalCost, calc.NetAmount+calc.TaxAmount, 1e-6, "type %s", in.Type())
	}
}

func TestPaymentFromRequest_MapsEachType(t *testing.T) {
	payment, err := laborcost.PaymentFromRequest(laborcost.CreateLaborRecordRequest{
		PaymentType: laborcost.PaymentTypeHourly,
		HoursWorked: f(8),
		HourlyRate:  f(18),
	})
	assert.NoError(t, err)
	assert.Equal(t, laborcost.HourlyPayment{HoursWorked: 8, HourlyRate: 18}, payment)

	// bonus accepts either amount field
	payment, err = laborcost.PaymentFromRequest(laborcost.CreateLaborRecordRequest{
		PaymentType: laborcost.PaymentTypeBonus,
		BonusAmount: f(250),
	})
	assert.NoError(t, err)
	assert.Equal(t, laborcost.BonusPayment{Amount: 250}, payment)

	payment, err = laborcost.PaymentFromRequest(laborcost.CreateLaborRecordRequest{
		PaymentType: laborcost.PaymentTypeCommission,
		Amount:      f(1200),
	})
	assert.NoError(t, err)
	assert.Equal(t, laborcost.CommissionPayment{Amount: 1200}, payment)
}

func TestPaymentFromRequest_MissingPaymentType(t *testing.T) {
	_, err := laborcost.PaymentFromRequest(laborcost.CreateLaborRecordRequest{})
	assert.Error(t, err)

	var appErr *apperror.AppError
	assert.True(t, errors.As(err, &appErr))
	assert.Equal(t, apperror.CodeInvalidInput, appErr.Code)
}

func TestPaymentFromRequest_UnknownPaymentType(t *testing.T) {
	_, err := laborcost.PaymentFromRequest(laborcost.CreateLaborRecordRequest{
		PaymentType: "stock-options",
		Amount:      f(100),
	})
	assert.Error(t, err)
}

func TestValidate_CollectsEveryViolation(t *testing.T) {
	// hourly with neither hours nor rate must report both rules
	_, err := laborcost.Calculate(laborcost.HourlyPayment{})
	assert.Error(t, err)

	var appErr *apperror.AppError
	assert.True(t, errors.As(err, &appErr))

	violations, ok := appErr.Details.([]string)
	assert.True(t, ok)
	assert.Len(t, violations, 2)
}

func TestTaxRateFor(t *testing.T) {
	rate, ok := laborcost.TaxRateFor(laborcost.PaymentTypeBonus)
	assert.True(t, ok)
	assert.InDelta(t, 0.25, rate, 1e-6)

	_, ok = laborcost.TaxRateFor("unknown")
	assert.False(t, ok)
}
