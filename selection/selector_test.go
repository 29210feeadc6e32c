package selection

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wonny/cbquant/contracts"
	"github.com/wonny/cbquant/modelconfig"
	"github.com/wonny/cbquant/pkg/logger"
	"github.com/wonny/cbquant/valuation"
)

func newTestSelector(t *testing.T) *Selector {
	t.Helper()
	cfg := modelconfig.Default()
	eng, err := valuation.NewEngine(cfg, logger.NewNop())
	require.NoError(t, err)
	return NewSelector(eng, cfg.Screen, logger.NewNop())
}

func TestSelectEndToEnd(t *testing.T) {
	sel := newTestSelector(t)

	bonds := []contracts.BondRecord{
		// 이론가치 대비 싼 종목
		{Code: "CB1", Price: 80, StockPrice: 20, ConvertPrice: 25, YearsToMaturity: 3, CreditRating: "AA", PremiumRate: 12},
		// 비싼 종목
		{Code: "CB2", Price: 200, StockPrice: 20, ConvertPrice: 25, YearsToMaturity: 3, CreditRating: "AA", PremiumRate: 12},
		// 전환가액 누락: 평가 불능
		{Code: "CB3", Price: 95, StockPrice: 20, ConvertPrice: 0, YearsToMaturity: 3, CreditRating: "AA", PremiumRate: 12},
		// 약간 싼 종목
		{Code: "CB4", Price: 95, StockPrice: 20, ConvertPrice: 25, YearsToMaturity: 3, CreditRating: "AA", PremiumRate: 12},
	}

	ranked, run := sel.Select(context.Background(), bonds, Options{})

	require.NotNil(t, run)
	assert.Len(t, run.Results, 4)
	assert.NotEmpty(t, run.RunID)
	assert.NotEmpty(t, run.ConfigHash)

	require.Len(t, ranked, 2)
	// 더 많이 저평가된 CB1이 1위
	assert.Equal(t, "CB1", ranked[0].Bond.Code)
	assert.Equal(t, 1, ranked[0].Rank)
	assert.Equal(t, "CB4", ranked[1].Bond.Code)
	assert.Equal(t, 2, ranked[1].Rank)

	assert.Less(t, ranked[0].Result.ValueDeviation, ranked[1].Result.ValueDeviation)
	assert.True(t, ranked[0].IsTopRanked(1))
	assert.False(t, ranked[1].IsTopRanked(1))
}

func TestSelectTopNOverride(t *testing.T) {
	sel := newTestSelector(t)

	bonds := make([]contracts.BondRecord, 0, 5)
	for i := 0; i < 5; i++ {
		bonds = append(bonds, contracts.BondRecord{
			Code:            string(rune('A' + i)),
			Price:           70 + float64(i)*5, // 전부 저평가, 편차는 서로 다름
			StockPrice:      20,
			ConvertPrice:    25,
			YearsToMaturity: 3,
			CreditRating:    "AA",
			PremiumRate:     12,
		})
	}

	ranked, _ := sel.Select(context.Background(), bonds, Options{TopN: 2, Workers: 2})

	require.Len(t, ranked, 2)
	// 가장 싼 A가 가장 저평가
	assert.Equal(t, "A", ranked[0].Bond.Code)
	assert.Equal(t, "B", ranked[1].Bond.Code)
}

func TestSelectPremiumCeiling(t *testing.T) {
	sel := newTestSelector(t)

	bonds := []contracts.BondRecord{
		{Code: "CB1", Price: 80, StockPrice: 20, ConvertPrice: 25, YearsToMaturity: 3, CreditRating: "AA", PremiumRate: 12},
		{Code: "CB2", Price: 80, StockPrice: 20, ConvertPrice: 25, YearsToMaturity: 3, CreditRating: "AA", PremiumRate: 80},
	}

	ranked, _ := sel.Select(context.Background(), bonds, Options{MaxPremiumRate: 50})

	require.Len(t, ranked, 1)
	assert.Equal(t, "CB1", ranked[0].Bond.Code)
}

func TestSelectAllFiltered(t *testing.T) {
	sel := newTestSelector(t)

	bonds := []contracts.BondRecord{
		{Code: "CB1", Price: 500, StockPrice: 20, ConvertPrice: 25, YearsToMaturity: 3, CreditRating: "AA", PremiumRate: 12},
	}

	ranked, run := sel.Select(context.Background(), bonds, Options{})

	assert.Empty(t, ranked)
	require.NotNil(t, run)
	assert.Len(t, run.Results, 1)
}
