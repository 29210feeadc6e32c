package valuation

import (
	"math"

	"github.com/wonny/cbquant/modelconfig"
)

// PutValue values the bondholder's right to force early repurchase
// (조기상환청구권). 실제 행사율이 낮아 고정 트리거 확률로 가중한다.
//
// yearsToPut ≤ 0 이면 이미 풋 행사 가능 구간 안에 있는 것으로 보고
// 할인 없이 확률만 반영한다.
func PutValue(put modelconfig.Put, yearsToPut, discountRate float64) float64 {
	if yearsToPut <= 0 {
		return put.Price * put.Probability
	}

	pv := put.Price / math.Pow(1+discountRate, yearsToPut)
	return pv * put.Probability
}
