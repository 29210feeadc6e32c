// Package selection implements the undervaluation screen over a valuation
// batch: hard cuts, stable ranking by deviation, top-N truncation.
package selection

import (
	"context"

	"github.com/wonny/cbquant/contracts"
	"github.com/wonny/cbquant/pkg/logger"
)

// Screener applies hard cut filtering to a valued batch.
// ⭐ SSOT: 저평가 스크리닝 로직은 여기서만
type Screener struct {
	logger *logger.Logger
}

// NewScreener creates a new screener.
func NewScreener(log *logger.Logger) *Screener {
	return &Screener{logger: log}
}

// Screen returns the indices (input order) of bonds that survive the cuts:
// 이론가치 > 0, 편차 < 0 (저평가), 전환 프리미엄 < 상한.
// results는 bonds와 index 정렬되어 있어야 한다.
func (s *Screener) Screen(
	ctx context.Context,
	bonds []contracts.BondRecord,
	results []contracts.ValuationResult,
	maxPremiumRate float64,
) []int {
	passed := make([]int, 0, len(bonds))
	filtered := make(map[string]int) // filter name -> count

	for i := range bonds {
		reason := s.checkConditions(&bonds[i], &results[i], maxPremiumRate)
		if reason == "" {
			passed = append(passed, i)
		} else {
			filtered[reason]++
		}
	}

	s.logger.WithFields(map[string]interface{}{
		"total_input":  len(bonds),
		"passed":       len(passed),
		"filtered_out": len(bonds) - len(passed),
		"filters":      filtered,
	}).Info("Screening completed")

	return passed
}

// checkConditions checks if a bond passes all cuts.
// 통과 시 빈 문자열, 아니면 걸린 필터 이름 반환
func (s *Screener) checkConditions(
	bond *contracts.BondRecord,
	result *contracts.ValuationResult,
	maxPremiumRate float64,
) string {
	// 유효하지 않은 평가 (기초 입력 불량 포함)
	if !result.IsValid() {
		return "invalid_value"
	}

	// 저평가(편차 음수)만 관심 대상
	if result.ValueDeviation >= 0 {
		return "overvalued"
	}

	// 전환 프리미엄 상한 (0 이하면 미적용)
	if maxPremiumRate > 0 && bond.PremiumRate >= maxPremiumRate {
		return "premium_rate"
	}

	return ""
}
