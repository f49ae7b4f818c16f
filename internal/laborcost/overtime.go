package laborcost

// ProgressiveConfig shapes the stepped overtime rate: every overtime hour
// past StartAfterHours pays BaseMultiplier plus one increment per hour
// already consumed, clamped at MaxMultiplier.
type ProgressiveConfig struct {
	BaseMultiplier   float64 `json:"base_multiplier"`
	IncrementPerHour float64 `json:"increment_per_hour"`
	MaxMultiplier    float64 `json:"max_multiplier"`
	StartAfterHours  int     `json:"start_after_hours"`
}

func DefaultProgressiveConfig() ProgressiveConfig {
	return ProgressiveConfig{
		BaseMultiplier:   1.5,
		IncrementPerHour: 0.1,
		MaxMultiplier:    3.0,
		StartAfterHours:  8,
	}
}

// RateForHour returns the pay rate for one absolute hour of the day. Hours at
// or below the threshold pay the base rate unchanged; hour 9 pays
// base×BaseMultiplier, hour 10 one increment more, and so on up to the cap.
func RateForHour(baseRate float64, absoluteHourIndex int, cfg ProgressiveConfig) float64 {
	if absoluteHourIndex <= cfg.StartAfterHours {
		return baseRate
	}

	n := absoluteHourIndex - cfg.StartAfterHours
	multiplier := cfg.BaseMultiplier + float64(n-1)*cfg.IncrementPerHour
	if cfg.MaxMultiplier > 0 && multiplier > cfg.MaxMultiplier {
		multiplier = cfg.MaxMultiplier
	}
	return baseRate * multiplier
}
