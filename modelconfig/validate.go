package modelconfig

import "fmt"

// ValidationError 검증 실패 (프로그램 중단)
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Validate checks all required constraints.
// 실패 시 error 반환. 잘못된 파라미터로 엔진을 띄우지 않는다
func Validate(cfg *Config) error {
	// === Meta ===
	if cfg.Meta.ModelID == "" {
		return ValidationError{"meta.model_id", "required"}
	}

	// === Rates ===
	if cfg.Rates.RiskFreeRate < 0 {
		return ValidationError{"rates.risk_free_rate", "must be >= 0"}
	}
	if cfg.Rates.DefaultSpread < 0 {
		return ValidationError{"rates.default_spread", "must be >= 0"}
	}
	seen := make(map[string]bool, len(cfg.Rates.CreditSpreads))
	for i, cs := range cfg.Rates.CreditSpreads {
		if cs.Rating == "" {
			return ValidationError{fmt.Sprintf("rates.credit_spreads[%d].rating", i), "required"}
		}
		if seen[cs.Rating] {
			return ValidationError{fmt.Sprintf("rates.credit_spreads[%d].rating", i), "duplicate rating " + cs.Rating}
		}
		seen[cs.Rating] = true
		if cs.Spread < 0 {
			return ValidationError{fmt.Sprintf("rates.credit_spreads[%d].spread", i), "must be >= 0"}
		}
	}

	// === Volatility ===
	if cfg.Volatility.Default <= 0 {
		return ValidationError{"volatility.default", "must be > 0"}
	}
	if cfg.Volatility.Adjustment <= 0 {
		return ValidationError{"volatility.adjustment", "must be > 0"}
	}

	// === Bond ===
	if cfg.Bond.FaceValue <= 0 {
		return ValidationError{"bond.face_value", "must be > 0"}
	}
	if len(cfg.Bond.CouponRates) == 0 {
		return ValidationError{"bond.coupon_rates", "required"}
	}
	for i, rate := range cfg.Bond.CouponRates {
		if rate < 0 {
			return ValidationError{fmt.Sprintf("bond.coupon_rates[%d]", i), "must be >= 0"}
		}
	}
	if cfg.Bond.MinMaturityYears <= 0 {
		return ValidationError{"bond.min_maturity_years", "must be > 0"}
	}

	// === Conversion ===
	if cfg.Conversion.ThresholdPct <= 0 {
		return ValidationError{"conversion.threshold_pct", "must be > 0"}
	}

	// === Put ===
	if cfg.Put.Price <= 0 {
		return ValidationError{"put.price", "must be > 0"}
	}
	if cfg.Put.Probability < 0 || cfg.Put.Probability > 1 {
		return ValidationError{"put.probability", "must be in [0, 1]"}
	}
	if cfg.Put.WindowYears < 0 {
		return ValidationError{"put.window_years", "must be >= 0"}
	}

	// === Revision ===
	if cfg.Revision.BaseProbability < 0 || cfg.Revision.BaseProbability > 1 {
		return ValidationError{"revision.base_probability", "must be in [0, 1]"}
	}
	if cfg.Revision.NewStrikeRatio <= 0 || cfg.Revision.NewStrikeRatio > 1 {
		return ValidationError{"revision.new_strike_ratio", "must be in (0, 1]"}
	}

	// === Redemption ===
	if cfg.Redemption.CallTriggerRatio < 1 {
		return ValidationError{"redemption.call_trigger_ratio", "must be >= 1"}
	}

	// === Screen ===
	if cfg.Screen.TopN <= 0 {
		return ValidationError{"screen.top_n", "must be > 0"}
	}
	if cfg.Screen.MaxPremiumRate <= 0 {
		return ValidationError{"screen.max_premium_rate", "must be > 0"}
	}

	return nil
}
