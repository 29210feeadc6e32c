// Package pricing provides closed-form option pricing primitives under
// lognormal dynamics.
// ⭐ SSOT: 옵션 가격 계산식은 여기서만. 순수 함수, 상태/부수효과 없음
package pricing

import "math"

// =============================================================================
// Standard Normal
// =============================================================================

// normCDF standard normal cumulative distribution function Φ(x).
func normCDF(x float64) float64 {
	return 0.5 * (1 + math.Erf(x/math.Sqrt2))
}

// dTerms computes the Black-Scholes d1/d2 terms.
// 호출 전에 degenerate guard를 통과했다고 가정 (T>0, σ>0, S>0, K>0)
func dTerms(s, k, t, r, sigma float64) (d1, d2 float64) {
	sqrtT := math.Sqrt(t)
	d1 = (math.Log(s/k) + (r+0.5*sigma*sigma)*t) / (sigma * sqrtT)
	d2 = d1 - sigma*sqrtT
	return d1, d2
}

// =============================================================================
// European Option Prices
// =============================================================================

// CallPrice prices a European call option.
// s: 기초자산 가격, k: 행사가격, t: 잔존기간(년), r: 무위험이자율, sigma: 변동성
// Degenerate 입력 (t≤0, σ≤0, s≤0, k≤0)은 내재가치 max(0, s−k)로 처리한다.
func CallPrice(s, k, t, r, sigma float64) float64 {
	if t <= 0 || sigma <= 0 || s <= 0 || k <= 0 {
		return math.Max(0, s-k)
	}
	d1, d2 := dTerms(s, k, t, r, sigma)
	return math.Max(0, s*normCDF(d1)-k*math.Exp(-r*t)*normCDF(d2))
}

// PutPrice prices a European put option.
// Degenerate 입력은 내재가치 max(0, k−s)로 처리한다.
func PutPrice(s, k, t, r, sigma float64) float64 {
	if t <= 0 || sigma <= 0 || s <= 0 || k <= 0 {
		return math.Max(0, k-s)
	}
	d1, d2 := dTerms(s, k, t, r, sigma)
	return math.Max(0, k*math.Exp(-r*t)*normCDF(-d2)-s*normCDF(-d1))
}
