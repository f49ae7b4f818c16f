package laborcost_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"go-siteops/internal/laborcost"
)

func TestRateForHour_RegularHoursUnchanged(t *testing.T) {
	cfg := laborcost.DefaultProgressiveConfig()

	for hour := 1; hour <= 8; hour++ {
		assert.Equal(t, 20.0, laborcost.RateForHour(20.0, hour, cfg))
	}
}

func TestRateForHour_ProgressiveSteps(t *testing.T) {
	cfg := laborcost.DefaultProgressiveConfig()

	// base=$20: hour 9 pays 1.5x, each later hour one increment more
	assert.InDelta(t, 30.0, laborcost.RateForHour(20.0, 9, cfg), 1e-6)
	assert.InDelta(t, 32.0, laborcost.RateForHour(20.0, 10, cfg), 1e-6)
	assert.InDelta(t, 34.0, laborcost.RateForHour(20.0, 11, cfg), 1e-6)
}

func TestRateForHour_CapsAtMaxMultiplier(t *testing.T) {
	cfg := laborcost.DefaultProgressiveConfig()

	// 1.5 + (n-1)*0.1 reaches 3.0 at n=16, i.e. absolute hour 24
	capped := laborcost.RateForHour(10.0, 24, cfg)
	assert.InDelta(t, 30.0, capped, 1e-6)

	beyond := laborcost.RateForHour(10.0, 40, cfg)
	assert.InDelta(t, 30.0, beyond, 1e-6)
}

func TestRateForHour_NonDecreasing(t *testing.T) {
	cfg := laborcost.DefaultProgressiveConfig()

	prev := 0.0
	for hour := 9; hour <= 30; hour++ {
		rate := laborcost.RateForHour(18.0, hour, cfg)
		assert.GreaterOrEqual(t, rate, prev, "rate must not decrease at hour %d", hour)
		prev = rate
	}
}

func TestRateForHour_NoCapWhenZero(t *testing.T) {
	cfg := laborcost.ProgressiveConfig{
		BaseMultiplier:   1.5,
		IncrementPerHour: 0.5,
		MaxMultiplier:    0,
		StartAfterHours:  8,
	}

	assert.InDelta(t, 10.0*(1.5+9*0.5), laborcost.RateForHour(10.0, 18, cfg), 1e-6)
}
