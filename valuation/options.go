package valuation

import (
	"math"

	"github.com/wonny/cbquant/modelconfig"
	"github.com/wonny/cbquant/pricing"
)

// 강제상환 휴리스틱 상수
const (
	// minMaturityForCall 이하의 잔존만기는 강제상환 영향이 미미
	minMaturityForCall = 0.5
	// 전환가치가 이 수준을 넘으면 콜 트리거 임박으로 보고 확률을 상향
	nearCallParityPct = 125.0
	nearCallInflate   = 1.5
	maxCallProb       = 0.95
	// 강제상환은 1년 후 일어난다고 가정
	assumedCallDelayYears = 1.0
)

// ConversionOptionValue is the value of the normal conversion right per bond:
// 주당 콜옵션 가치 × 전환 가능 주수 (액면 ÷ 전환가액).
func ConversionOptionValue(face, s, k, t, sigma, r float64) float64 {
	if k <= 0 {
		return 0
	}
	sharesPerBond := face / k
	return pricing.CallPrice(s, k, t, r, sigma) * sharesPerBond
}

// revisionProbability scales the base refixing probability by the time-to-put
// tier, then by current parity.
// 리픽싱은 주로 풋 행사 구간 직전 1년과 구간 내에서 일어난다.
func revisionProbability(baseProb, yearsToPut, conversionValue float64) float64 {
	var prob float64
	switch {
	case yearsToPut <= 0:
		prob = baseProb
	case yearsToPut <= 1:
		prob = baseProb * 0.9
	case yearsToPut <= 2:
		prob = baseProb * 0.5
	default:
		prob = baseProb * 0.2
	}

	// 이미 깊은 내가격이면 발행사가 리픽싱할 유인이 작다
	switch {
	case conversionValue > 100:
		prob *= 0.3
	case conversionValue > 90:
		prob *= 0.6
	}

	return prob
}

// RevisionValue values the issuer's right to lower the conversion price
// (리픽싱). 조정 후 전환가액을 기초주가의 NewStrikeRatio 배로 가정하고,
// 옵션 가치 증가분에 트리거 확률을 곱한다.
func RevisionValue(face, s, k, t, sigma, r, yearsToPut float64, rev modelconfig.Revision) float64 {
	if k <= 0 || s <= 0 {
		return 0
	}

	prob := revisionProbability(rev.BaseProbability, yearsToPut, s/k*100)

	newK := s * rev.NewStrikeRatio
	original := ConversionOptionValue(face, s, k, t, sigma, r)
	revised := ConversionOptionValue(face, s, newK, t, sigma, r)

	return math.Max(0, revised-original) * prob
}

// RedemptionLoss is the option value the holder loses because the issuer can
// force early conversion once the stock exceeds the call trigger (강제상환).
func RedemptionLoss(face, s, k, t, sigma, r, callTriggerRatio float64) float64 {
	if t <= minMaturityForCall {
		return 0
	}
	if k <= 0 {
		return 0
	}

	// 콜 트리거 도달 확률. 트리거를 전환가치 임계로 환산해 재사용한다
	callProb := pricing.ExceedanceProbability(s, k, t, sigma, r, callTriggerRatio*100)

	if s/k*100 > nearCallParityPct {
		callProb = math.Min(maxCallProb, callProb*nearCallInflate)
	}

	remainingT := math.Max(0, t-assumedCallDelayYears)
	if remainingT <= 0 {
		return 0
	}

	// 손실 = (만기 보유 옵션가치 − 조기 종료 시점 옵션가치) × 콜 확률
	fullOption := ConversionOptionValue(face, s, k, t, sigma, r)
	earlyOption := ConversionOptionValue(face, s, k, assumedCallDelayYears, sigma, r)

	return math.Max(0, fullOption-earlyOption) * callProb
}
