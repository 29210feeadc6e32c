package valuation

import (
	"math"
	"testing"

	"github.com/wonny/cbquant/modelconfig"
	"github.com/wonny/cbquant/pricing"
)

func TestConversionOptionValue(t *testing.T) {
	// 주당 옵션가치 × (액면/전환가액)
	face, s, k, tt, sigma, r := 100.0, 20.0, 25.0, 3.0, 0.385, 0.025

	perShare := pricing.CallPrice(s, k, tt, r, sigma)
	want := perShare * face / k

	got := ConversionOptionValue(face, s, k, tt, sigma, r)
	if math.Abs(got-want) > 1e-12 {
		t.Errorf("ConversionOptionValue = %v, want %v", got, want)
	}

	if got := ConversionOptionValue(face, s, 0, tt, sigma, r); got != 0 {
		t.Errorf("zero strike must give 0, got %v", got)
	}
}

func TestRevisionProbabilityTiers(t *testing.T) {
	const base = 0.8

	tests := []struct {
		name            string
		yearsToPut      float64
		conversionValue float64
		want            float64
	}{
		{"inside put window", 0, 80, 0.8},
		{"one year to put", 1, 80, 0.72},
		{"two years to put", 2, 80, 0.4},
		{"far from put", 3, 80, 0.16},
		{"deep ITM scales down", 0, 110, 0.24},  // 0.8 × 0.3
		{"near parity scales down", 0, 95, 0.48}, // 0.8 × 0.6
		{"one year and near parity", 1, 95, 0.432},
	}

	for _, tc := range tests {
		got := revisionProbability(base, tc.yearsToPut, tc.conversionValue)
		if math.Abs(got-tc.want) > 1e-12 {
			t.Errorf("%s: revisionProbability = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestRevisionValueNonNegative(t *testing.T) {
	rev := modelconfig.Revision{BaseProbability: 0.8, NewStrikeRatio: 0.9}

	cases := []struct {
		name       string
		s, k       float64
		yearsToPut float64
	}{
		{"OTM bond", 20, 25, 1},
		{"ITM bond", 30, 25, 1},
		{"deep ITM", 50, 25, 0},
	}

	for _, tc := range cases {
		got := RevisionValue(100, tc.s, tc.k, 3, 0.385, 0.025, tc.yearsToPut, rev)
		if got < 0 {
			t.Errorf("%s: RevisionValue = %v, want >= 0", tc.name, got)
		}
	}
}

func TestRevisionValueOTMBondGains(t *testing.T) {
	// 주가가 전환가액보다 낮으면 리픽싱은 가치를 만든다
	rev := modelconfig.Revision{BaseProbability: 0.8, NewStrikeRatio: 0.9}

	got := RevisionValue(100, 20, 25, 3, 0.385, 0.025, 1, rev)
	if got <= 0 {
		t.Errorf("RevisionValue for OTM bond = %v, want > 0", got)
	}
}

func TestRevisionValueDegenerate(t *testing.T) {
	rev := modelconfig.Revision{BaseProbability: 0.8, NewStrikeRatio: 0.9}

	if got := RevisionValue(100, 0, 25, 3, 0.385, 0.025, 1, rev); got != 0 {
		t.Errorf("zero stock price: got %v, want 0", got)
	}
	if got := RevisionValue(100, 20, 0, 3, 0.385, 0.025, 1, rev); got != 0 {
		t.Errorf("zero convert price: got %v, want 0", got)
	}
}

func TestRedemptionLossShortMaturity(t *testing.T) {
	// 잔존만기 0.5년 이하는 강제상환 영향 없음
	for _, tt := range []float64{0.4, 0.5, 0} {
		if got := RedemptionLoss(100, 30, 25, tt, 0.385, 0.025, 1.30); got != 0 {
			t.Errorf("RedemptionLoss(T=%v) = %v, want 0", tt, got)
		}
	}
}

func TestRedemptionLossNonNegative(t *testing.T) {
	cases := []struct{ s, k, tt float64 }{
		{20, 25, 3},
		{30, 25, 3},
		{40, 25, 5}, // 전환가치 160, 트리거 임박 구간
		{25, 25, 1.2},
	}

	for _, tc := range cases {
		got := RedemptionLoss(100, tc.s, tc.k, tc.tt, 0.385, 0.025, 1.30)
		if got < 0 {
			t.Errorf("RedemptionLoss(S=%v K=%v T=%v) = %v, want >= 0", tc.s, tc.k, tc.tt, got)
		}
	}
}

func TestRedemptionLossGrowsWithParity(t *testing.T) {
	// 주가가 트리거에 가까울수록 강제상환 손실이 커진다
	low := RedemptionLoss(100, 20, 25, 3, 0.385, 0.025, 1.30)
	high := RedemptionLoss(100, 35, 25, 3, 0.385, 0.025, 1.30)

	if high <= low {
		t.Errorf("loss should grow toward trigger: high=%v <= low=%v", high, low)
	}
}
