// Package contracts defines the data types passed between the valuation
// engine, the selection stage and external collaborators.
// ⭐ SSOT: 단계 간 전달 타입은 여기서만 정의
package contracts

// BondRecord is a single convertible bond supplied by an external collector.
// 입력 전용: 밸류에이션 동안 불변으로 취급
type BondRecord struct {
	Code string `json:"code"`
	Name string `json:"name"`

	Price           float64 `json:"price"`             // 시장가격 (액면 100 기준)
	StockPrice      float64 `json:"stock_price"`       // 기초주식 현재가
	ConvertPrice    float64 `json:"convert_price"`     // 전환가액
	YearsToMaturity float64 `json:"years_to_maturity"` // 잔존만기 (년)
	CreditRating    string  `json:"credit_rating"`     // 신용등급 (없으면 기본 스프레드 적용)
	PremiumRate     float64 `json:"premium_rate"`      // 전환 프리미엄(%) - 사후 필터링에만 사용
}

// ConversionValue returns the parity value per 100 face:
// 전환가치 = 기초주가 / 전환가액 × 100
// Returns 0 when the conversion price is missing or non-positive.
func (b *BondRecord) ConversionValue() float64 {
	if b.ConvertPrice <= 0 {
		return 0
	}
	return b.StockPrice / b.ConvertPrice * 100
}

// DerivedPremiumRate computes the conversion premium from price and parity:
// (시장가격 − 전환가치) / 전환가치 × 100
// 수집처가 프리미엄을 주지 않을 때 PremiumRate 대신 쓸 수 있다.
// Returns 0 when the conversion value is not positive.
func (b *BondRecord) DerivedPremiumRate() float64 {
	cv := b.ConversionValue()
	if cv <= 0 {
		return 0
	}
	return (b.Price - cv) / cv * 100
}

// ValuationResult is the per-bond value breakdown produced by the engine.
// 기초 입력이 유효하지 않으면 모든 필드가 0으로 남는다 (TotalValue ≤ 0 스크린에서 제외됨).
type ValuationResult struct {
	Code string `json:"code"`

	BondFloor       float64 `json:"bond_floor"`        // 채권가치 (전환확률 보정 현가)
	PutValue        float64 `json:"put_value"`         // 조기상환청구권(풋) 가치
	CallOptionValue float64 `json:"call_option_value"` // 전환옵션 가치
	RevisionValue   float64 `json:"revision_value"`    // 전환가액 하향조정 옵션 가치
	RedemptionLoss  float64 `json:"redemption_loss"`   // 강제상환(콜) 손실 (차감 항목)

	TotalValue     float64 `json:"total_value"`     // 합산 이론가치
	CurrentPrice   float64 `json:"current_price"`   // 입력 가격 echo
	ValueDeviation float64 `json:"value_deviation"` // (가격-이론가)/이론가 × 100, 음수 = 저평가
}

// IsValid reports whether the record produced a usable valuation.
// TotalValue > 0 일 때만 편차가 정의된다.
func (r *ValuationResult) IsValid() bool {
	return r.TotalValue > 0
}

// IsUndervalued reports whether the market underprices the bond
// relative to the model.
func (r *ValuationResult) IsUndervalued() bool {
	return r.IsValid() && r.ValueDeviation < 0
}
