package selection

import (
	"context"
	"sort"

	"github.com/wonny/cbquant/contracts"
	"github.com/wonny/cbquant/pkg/logger"
)

// Ranker orders screened bonds by valuation deviation.
// ⭐ SSOT: 랭킹 로직은 여기서만
type Ranker struct {
	logger *logger.Logger
}

// NewRanker creates a new ranker.
func NewRanker(log *logger.Logger) *Ranker {
	return &Ranker{logger: log}
}

// Rank sorts the passed indices ascending by deviation (가장 저평가된 종목이
// 먼저) and truncates to topN. 동률은 입력 순서를 유지한다 (stable sort).
func (r *Ranker) Rank(
	ctx context.Context,
	bonds []contracts.BondRecord,
	results []contracts.ValuationResult,
	passed []int,
	topN int,
) []contracts.RankedBond {
	idx := make([]int, len(passed))
	copy(idx, passed)

	// passed가 입력 순서이므로 stable sort만으로 동률 순서가 보존된다
	sort.SliceStable(idx, func(i, j int) bool {
		return results[idx[i]].ValueDeviation < results[idx[j]].ValueDeviation
	})

	if topN > 0 && len(idx) > topN {
		idx = idx[:topN]
	}

	ranked := make([]contracts.RankedBond, 0, len(idx))
	for n, i := range idx {
		ranked = append(ranked, contracts.RankedBond{
			Rank:   n + 1,
			Bond:   bonds[i],
			Result: results[i],
		})
	}

	fields := map[string]interface{}{
		"candidates": len(passed),
		"returned":   len(ranked),
	}
	if len(ranked) > 0 {
		fields["top_code"] = ranked[0].Bond.Code
		fields["top_deviation"] = ranked[0].Result.ValueDeviation
	}
	r.logger.WithFields(fields).Info("Ranking completed")

	return ranked
}
