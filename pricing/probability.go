package pricing

import "math"

// ExceedanceProbability estimates the probability that the conversion value
// (s/k × 100) reaches thresholdPct at horizon t under lognormal dynamics.
//
// t≤0 또는 σ≤0 이면 만기 도래로 보고 현재 전환가치로 즉시 판정한다.
// 반환값은 [0, 1].
func ExceedanceProbability(s, k, t, sigma, r, thresholdPct float64) float64 {
	if t <= 0 || sigma <= 0 {
		if k > 0 && s/k*100 >= thresholdPct {
			return 1.0
		}
		return 0.0
	}

	// 임계 전환가치에 대응하는 기초주가 수준
	requiredS := k * thresholdPct / 100
	if s <= 0 || requiredS <= 0 {
		return 0.0
	}

	d2 := (math.Log(s/requiredS) + (r-0.5*sigma*sigma)*t) / (sigma * math.Sqrt(t))
	return normCDF(d2)
}
