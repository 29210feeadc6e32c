// Package valuation implements the convertible bond value model:
// 채권가치 + 풋가치 + 전환옵션 + 리픽싱 옵션 − 강제상환 손실.
// 모든 계산은 단일 종목 입력과 고정 파라미터만의 순수 함수다.
package valuation

import (
	"math"

	"github.com/wonny/cbquant/modelconfig"
)

// BondFloor computes the present value of the coupon-plus-principal schedule,
// weighted down by the probability that conversion has already occurred.
// 전환이 일어나면 잔여 채권 현금흐름은 소멸한다.
//
// conversionProbs는 연차별(1-based) 전환확률. 부족하면 마지막 값을 반복하고,
// 비어 있으면 전환확률 0으로 취급해 일반 고정수익 현가와 같아진다.
func BondFloor(bond modelconfig.Bond, yearsToMaturity, discountRate float64, conversionProbs []float64) float64 {
	if yearsToMaturity <= 0 {
		return bond.FaceValue
	}

	nYears := int(math.Ceil(yearsToMaturity))

	pv := 0.0
	remainingProb := 1.0 // 아직 전환되지 않았을 확률

	for year := 1; year <= nYears; year++ {
		if float64(year) > yearsToMaturity {
			break
		}

		coupon := bond.FaceValue * bond.CouponRate(year)
		convProb := probAt(conversionProbs, year)

		// 당해 연도까지 미전환이어야 이자를 받는다
		adjustedCoupon := coupon * remainingProb * (1 - convProb)
		pv += adjustedCoupon / math.Pow(1+discountRate, float64(year))

		remainingProb *= 1 - convProb
	}

	// 만기 원금 (미전환 확률 반영)
	pv += bond.FaceValue * remainingProb / math.Pow(1+discountRate, yearsToMaturity)

	return pv
}

// probAt returns the conversion probability for a 1-based year,
// repeating the last entry past the end of the slice.
func probAt(probs []float64, year int) float64 {
	if len(probs) == 0 {
		return 0
	}
	idx := year - 1
	if idx >= len(probs) {
		idx = len(probs) - 1
	}
	return probs[idx]
}
