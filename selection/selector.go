package selection

import (
	"context"
	"runtime"

	"github.com/wonny/cbquant/contracts"
	"github.com/wonny/cbquant/modelconfig"
	"github.com/wonny/cbquant/pkg/logger"
	"github.com/wonny/cbquant/valuation"
)

// Options are per-call overrides of the configured screen defaults.
// zero value 필드는 modelconfig.Screen 기본값으로 대체된다.
type Options struct {
	TopN           int
	MaxPremiumRate float64 // %
	Workers        int
}

// Selector is the batch boundary exposed to collaborators:
// 평가 → 스크리닝 → 랭킹을 한 번에 수행한다.
type Selector struct {
	engine   *valuation.Engine
	screen   modelconfig.Screen
	screener *Screener
	ranker   *Ranker
}

// NewSelector wires the engine with the screen defaults.
func NewSelector(engine *valuation.Engine, screen modelconfig.Screen, log *logger.Logger) *Selector {
	return &Selector{
		engine:   engine,
		screen:   screen,
		screener: NewScreener(log),
		ranker:   NewRanker(log),
	}
}

// Select values the batch and returns at most topN undervalued bonds,
// most undervalued first, together with the full run for tracing.
// 스크린이 전부 걸러내면 빈 목록을 반환한다 (정상 결과, 에러 아님).
func (s *Selector) Select(
	ctx context.Context,
	bonds []contracts.BondRecord,
	opts Options,
) ([]contracts.RankedBond, *contracts.ValuationRun) {
	topN := opts.TopN
	if topN <= 0 {
		topN = s.screen.TopN
	}
	maxPremium := opts.MaxPremiumRate
	if maxPremium <= 0 {
		maxPremium = s.screen.MaxPremiumRate
	}
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	run := s.engine.EvaluateBatch(ctx, bonds, workers)
	passed := s.screener.Screen(ctx, bonds, run.Results, maxPremium)
	ranked := s.ranker.Rank(ctx, bonds, run.Results, passed, topN)

	return ranked, run
}
