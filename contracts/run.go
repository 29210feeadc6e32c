package contracts

import "time"

// ValuationRun is one batch pass over a bond universe.
// ⭐ SSOT: 재현성을 위해 파라미터 해시를 함께 기록
type ValuationRun struct {
	RunID      string            `json:"run_id"`
	RunDate    time.Time         `json:"run_date"`
	ConfigHash string            `json:"config_hash"` // modelconfig.Hash 결과
	Results    []ValuationResult `json:"results"`     // 입력 순서와 index 정렬
}

// RankedBond is a screened bond with its valuation, ordered by deviation.
// Rank는 1부터 시작 (가장 저평가된 종목이 1)
type RankedBond struct {
	Rank   int             `json:"rank"`
	Bond   BondRecord      `json:"bond"`
	Result ValuationResult `json:"result"`
}

// IsTopRanked checks if the bond is in top N ranks.
func (r *RankedBond) IsTopRanked(n int) bool {
	return r.Rank > 0 && r.Rank <= n
}
