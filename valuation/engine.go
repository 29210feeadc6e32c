package valuation

import (
	"context"
	"math"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/wonny/cbquant/contracts"
	"github.com/wonny/cbquant/modelconfig"
	"github.com/wonny/cbquant/pkg/logger"
	"github.com/wonny/cbquant/pricing"
)

// 기초주가 누락 시 보정 상수
const (
	fallbackStockRatio   = 0.8 // 전환가액 대비
	fallbackStockDefault = 10.0
)

// Engine assembles the per-bond value breakdown and runs batch passes.
// ⭐ SSOT: 순수 계산기. 데이터 수집/스크리닝/랭킹은 상위 레이어에서
type Engine struct {
	cfg        *modelconfig.Config
	configHash string
	logger     *logger.Logger
}

// NewEngine validates the parameter set and returns an engine bound to it.
// 설정 해시를 미리 계산해 모든 배치 실행에 기록한다.
func NewEngine(cfg *modelconfig.Config, log *logger.Logger) (*Engine, error) {
	if err := modelconfig.Validate(cfg); err != nil {
		return nil, err
	}
	hash, err := modelconfig.Hash(cfg)
	if err != nil {
		return nil, err
	}
	return &Engine{
		cfg:        cfg,
		configHash: hash,
		logger:     log,
	}, nil
}

// ConfigHash returns the hash of the bound parameter set.
func (e *Engine) ConfigHash() string {
	return e.configHash
}

// Deviation returns the valuation deviation in percent:
// (시장가격 − 이론가치) / 이론가치 × 100. 음수 = 시장이 저평가.
// 이론가치가 0 이하이면 편차는 정의되지 않으므로 0을 반환한다.
func Deviation(price, totalValue float64) float64 {
	if totalValue <= 0 {
		return 0
	}
	return (price - totalValue) / totalValue * 100
}

// Evaluate computes the full value breakdown for a single bond.
// 전환가액이 유효하지 않으면 모든 필드가 0인 결과를 반환한다
// (배치를 중단시키지 않고 TotalValue > 0 스크린에서 걸러짐).
func (e *Engine) Evaluate(bond contracts.BondRecord) contracts.ValuationResult {
	result := contracts.ValuationResult{Code: bond.Code}

	stockPrice := bond.StockPrice
	convertPrice := bond.ConvertPrice

	// 기초주가 누락/이상치 보정
	if stockPrice <= 0 {
		if convertPrice > 0 {
			stockPrice = convertPrice * fallbackStockRatio
		} else {
			stockPrice = fallbackStockDefault
		}
	}
	// 전환가액 없이는 평가 불능
	if convertPrice <= 0 {
		return result
	}

	years := bond.YearsToMaturity
	if years <= 0 {
		years = e.cfg.Bond.MinMaturityYears
	}

	r := e.cfg.Rates.RiskFreeRate
	discountRate := e.cfg.Rates.DiscountRate(bond.CreditRating)
	sigma := e.cfg.Volatility.Sigma()

	// 풋 행사 구간은 만기 전 WindowYears부터 시작한다고 가정
	yearsToPut := math.Max(0, years-e.cfg.Put.WindowYears)

	// 연차별 전환확률 (채권가치 보정용)
	nYears := int(math.Ceil(years))
	convProbs := make([]float64, 0, nYears)
	for year := 1; year <= nYears; year++ {
		t := math.Min(float64(year), years)
		convProbs = append(convProbs, pricing.ExceedanceProbability(stockPrice, convertPrice, t, sigma, r, e.cfg.Conversion.ThresholdPct))
	}

	face := e.cfg.Bond.FaceValue

	result.CurrentPrice = bond.Price
	result.BondFloor = BondFloor(e.cfg.Bond, years, discountRate, convProbs)
	result.PutValue = PutValue(e.cfg.Put, yearsToPut, discountRate)
	result.CallOptionValue = ConversionOptionValue(face, stockPrice, convertPrice, years, sigma, r)
	result.RevisionValue = RevisionValue(face, stockPrice, convertPrice, years, sigma, r, yearsToPut, e.cfg.Revision)
	result.RedemptionLoss = RedemptionLoss(face, stockPrice, convertPrice, years, sigma, r, e.cfg.Redemption.CallTriggerRatio)

	// putValue ≥ 0 이므로 max(채권가치, 채권가치+풋가치)는 항상 후자
	result.TotalValue = result.BondFloor + result.PutValue +
		result.CallOptionValue + result.RevisionValue - result.RedemptionLoss
	result.ValueDeviation = Deviation(bond.Price, result.TotalValue)

	return result
}

// EvaluateBatch values every bond concurrently and returns an index-aligned
// run. 종목 간 공유 상태가 없어 잠금 없이 병렬 처리한다.
func (e *Engine) EvaluateBatch(ctx context.Context, bonds []contracts.BondRecord, workers int) *contracts.ValuationRun {
	if workers <= 0 {
		workers = 1
	}
	if workers > len(bonds) && len(bonds) > 0 {
		workers = len(bonds)
	}

	results := make([]contracts.ValuationResult, len(bonds))
	jobCh := make(chan int, len(bonds))

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobCh {
				// 각 slot은 해당 job만 쓰므로 잠금 불필요
				results[idx] = e.Evaluate(bonds[idx])
			}
		}()
	}

	for i := range bonds {
		jobCh <- i
	}
	close(jobCh)
	wg.Wait()

	valid := 0
	undervalued := 0
	for i := range results {
		if results[i].IsValid() {
			valid++
		}
		if results[i].IsUndervalued() {
			undervalued++
		}
	}

	e.logger.WithFields(map[string]interface{}{
		"bonds":       len(bonds),
		"valid":       valid,
		"undervalued": undervalued,
		"workers":     workers,
		"config_hash": e.configHash[:8],
	}).Info("Valuation batch completed")

	return &contracts.ValuationRun{
		RunID:      uuid.New().String(),
		RunDate:    time.Now(),
		ConfigHash: e.configHash,
		Results:    results,
	}
}
