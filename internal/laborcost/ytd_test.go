package laborcost_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"go-siteops/internal/laborcost"
)

func record(paymentType string, amount float64) laborcost.LaborRecord {
	return laborcost.LaborRecord{
		ID:          uuid.New(),
		EmployeeID:  uuid.New(),
		PaymentType: paymentType,
		Status:      laborcost.StatusApproved,
		Amount:      amount,
	}
}

func TestAggregateYTD_BucketsByPaymentType(t *testing.T) {
	records := []laborcost.LaborRecord{
		record(laborcost.PaymentTypeHourly, 1000),
		record(laborcost.PaymentTypeHourly, 500),
		record(laborcost.PaymentTypeMonthly, 4000),
		record(laborcost.PaymentTypeBonus, 1500),
		record(laborcost.PaymentTypeOvertime, 300),
		record(laborcost.PaymentTypeCommission, 800),
	}

	summary := laborcost.AggregateYTD(records)

	assert.InDelta(t, 1500.0, summary.TotalHourly, 1e-6)
	assert.InDelta(t, 4000.0, summary.TotalMonthly, 1e-6)
	assert.InDelta(t, 1500.0, summary.TotalBonus, 1e-6)
	assert.InDelta(t, 300.0, summary.TotalOvertime, 1e-6)
	assert.InDelta(t, 800.0, summary.TotalCommission, 1e-6)
	assert.InDelta(t, 8100.0, summary.GrandTotal, 1e-6)
	assert.Equal(t, 6, summary.RecordCount)
	assert.Zero(t, summary.UnrecognizedCount)

	// 1500*.15 + 4000*.20 + 1500*.25 + 300*.18 + 800*.22
	expectedTax := 225.0 + 800.0 + 375.0 + 54.0 + 176.0
	assert.InDelta(t, expectedTax, summary.TotalTax, 1e-6)
	assert.InDelta(t, summary.GrandTotal, summary.TotalTax+summary.NetTotal, 1e-6)
}

func TestAggregateYTD_UnrecognizedTypesCountedNotSummed(t *testing.T) {
	records := []laborcost.LaborRecord{
		record(laborcost.PaymentTypeHourly, 1000),
		record("equity", 9999),
		record("", 50),
	}

	summary := laborcost.AggregateYTD(records)

	assert.Equal(t, 2, summary.UnrecognizedCount)
	assert.InDelta(t, 1000.0, summary.GrandTotal, 1e-6)
	assert.InDelta(t, 150.0, summary.TotalTax, 1e-6)
	assert.InDelta(t, 850.0, summary.NetTotal, 1e-6)
}

func TestAggregateYTD_Empty(t *testing.T) {
	summary := laborcost.AggregateYTD(nil)

	assert.Zero(t, summary.GrandTotal)
	assert.Zero(t, summary.RecordCount)
	assert.Zero(t, summary.UnrecognizedCount)
}

func TestCanTransition(t *testing.T) {
	assert.True(t, laborcost.CanTransition(laborcost.StatusPending, laborcost.StatusApproved))
	assert.True(t, laborcost.CanTransition(laborcost.StatusPending, laborcost.StatusCancelled))
	assert.True(t, laborcost.CanTransition(laborcost.StatusApproved, laborcost.StatusPaid))
	assert.True(t, laborcost.CanTransition(laborcost.StatusApproved, laborcost.StatusCancelled))

	assert.False(t, laborcost.CanTransition(laborcost.StatusPending, laborcost.StatusPaid))
	assert.False(t, laborcost.CanTransition(laborcost.StatusPaid, laborcost.StatusCancelled))
	assert.False(t, laborcost.CanTransition(laborcost.StatusCancelled, laborcost.StatusApproved))
}
