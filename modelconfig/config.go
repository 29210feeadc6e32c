// Package modelconfig defines the immutable parameter set of the convertible
// bond valuation model.
// ⭐ SSOT: 모델 파라미터는 여기서만 정의. 엔진은 이 설정을 받아 순수 계산만 수행
package modelconfig

import "strings"

// Config는 전환사채 밸류에이션 모델의 전체 파라미터
type Config struct {
	Meta       Meta       `yaml:"meta" json:"meta"`
	Rates      Rates      `yaml:"rates" json:"rates"`
	Volatility Volatility `yaml:"volatility" json:"volatility"`
	Bond       Bond       `yaml:"bond" json:"bond"`
	Conversion Conversion `yaml:"conversion" json:"conversion"`
	Put        Put        `yaml:"put" json:"put"`
	Revision   Revision   `yaml:"revision" json:"revision"`
	Redemption Redemption `yaml:"redemption" json:"redemption"`
	Screen     Screen     `yaml:"screen" json:"screen"`
}

// Meta 메타 정보
type Meta struct {
	ModelID string `yaml:"model_id" json:"model_id"`
	Version string `yaml:"version" json:"version"`
}

// Rates 할인율 구성: 무위험이자율 + 신용등급별 스프레드
type Rates struct {
	RiskFreeRate  float64        `yaml:"risk_free_rate" json:"risk_free_rate"`
	CreditSpreads []CreditSpread `yaml:"credit_spreads" json:"credit_spreads"`
	DefaultSpread float64        `yaml:"default_spread" json:"default_spread"` // 등급 미상/미지정
}

// CreditSpread 등급별 신용 스프레드 (연율)
// 주의: 해시 재현성을 위해 map 대신 순서 있는 slice 사용
type CreditSpread struct {
	Rating string  `yaml:"rating" json:"rating"`
	Spread float64 `yaml:"spread" json:"spread"`
}

// Volatility 변동성 상수 (이 코어는 역사적 변동성 추정을 하지 않음)
type Volatility struct {
	Default    float64 `yaml:"default" json:"default"`       // 기본 변동성
	Adjustment float64 `yaml:"adjustment" json:"adjustment"` // 발행 후 변동성 확대 보정계수
}

// Bond 채권 현금흐름 구성
type Bond struct {
	FaceValue float64 `yaml:"face_value" json:"face_value"`
	// CouponRates 연차별 표면이율. 잔존만기가 더 길면 마지막 값 반복.
	CouponRates []float64 `yaml:"coupon_rates" json:"coupon_rates"`
	// MinMaturityYears 잔존만기 하한 (0 이하 입력 보정용)
	MinMaturityYears float64 `yaml:"min_maturity_years" json:"min_maturity_years"`
}

// Conversion 전환확률 추정 파라미터
type Conversion struct {
	// ThresholdPct 전환이 일어났다고 보는 전환가치 임계값 (평가 130 기준)
	ThresholdPct float64 `yaml:"threshold_pct" json:"threshold_pct"`
}

// Put 조기상환청구권(풋) 파라미터
type Put struct {
	Price       float64 `yaml:"price" json:"price"`             // 전형적 풋 행사가격
	Probability float64 `yaml:"probability" json:"probability"` // 역사적 행사 확률
	WindowYears float64 `yaml:"window_years" json:"window_years"` // 만기 전 풋 행사 가능 기간
}

// Revision 전환가액 하향조정(리픽싱) 파라미터
type Revision struct {
	BaseProbability float64 `yaml:"base_probability" json:"base_probability"`
	NewStrikeRatio  float64 `yaml:"new_strike_ratio" json:"new_strike_ratio"` // 조정 후 전환가액 = 비율 × 기초주가
}

// Redemption 강제상환(콜) 파라미터
type Redemption struct {
	CallTriggerRatio float64 `yaml:"call_trigger_ratio" json:"call_trigger_ratio"` // 전환가액 대비 콜 트리거
}

// Screen 저평가 스크리닝 기본값
type Screen struct {
	TopN           int     `yaml:"top_n" json:"top_n"`
	MaxPremiumRate float64 `yaml:"max_premium_rate" json:"max_premium_rate"` // %
}

// SpreadFor returns the credit spread for a rating token.
// 공백/대소문자 정규화 후 조회, 미상 등급은 DefaultSpread
func (r *Rates) SpreadFor(rating string) float64 {
	token := strings.ToUpper(strings.TrimSpace(rating))
	if token == "" {
		return r.DefaultSpread
	}
	for _, cs := range r.CreditSpreads {
		if cs.Rating == token {
			return cs.Spread
		}
	}
	return r.DefaultSpread
}

// DiscountRate returns risk-free rate plus the rating's credit spread.
func (r *Rates) DiscountRate(rating string) float64 {
	return r.RiskFreeRate + r.SpreadFor(rating)
}

// CouponRate returns the coupon rate for a 1-based whole year.
// 스케줄보다 긴 만기는 마지막 값 반복
func (b *Bond) CouponRate(year int) float64 {
	if len(b.CouponRates) == 0 || year < 1 {
		return 0
	}
	idx := year - 1
	if idx >= len(b.CouponRates) {
		idx = len(b.CouponRates) - 1
	}
	return b.CouponRates[idx]
}

// Sigma returns the adjusted model volatility.
func (v *Volatility) Sigma() float64 {
	return v.Default * v.Adjustment
}

// Default returns the standard parameter set.
// 값 출처: 국내 전환사채 전형적 발행 조건 및 과거 행사 통계
func Default() *Config {
	return &Config{
		Meta: Meta{
			ModelID: "cb_value_v1",
			Version: "1.0.0",
		},
		Rates: Rates{
			RiskFreeRate: 0.025,
			CreditSpreads: []CreditSpread{
				{Rating: "AAA", Spread: 0.005},
				{Rating: "AA+", Spread: 0.010},
				{Rating: "AA", Spread: 0.015},
				{Rating: "AA-", Spread: 0.020},
				{Rating: "A+", Spread: 0.030},
				{Rating: "A", Spread: 0.040},
				{Rating: "A-", Spread: 0.050},
				{Rating: "BBB", Spread: 0.070},
			},
			DefaultSpread: 0.025,
		},
		Volatility: Volatility{
			Default:    0.35,
			Adjustment: 1.1, // 발행 후 변동성 확대 경향
		},
		Bond: Bond{
			FaceValue:        100,
			CouponRates:      []float64{0.004, 0.006, 0.010, 0.015, 0.020, 0.025},
			MinMaturityYears: 0.1,
		},
		Conversion: Conversion{
			ThresholdPct: 130.0,
		},
		Put: Put{
			Price:       103,
			Probability: 0.10, // 실제 풋 행사는 드묾
			WindowYears: 2,
		},
		Revision: Revision{
			BaseProbability: 0.80,
			NewStrikeRatio:  0.9,
		},
		Redemption: Redemption{
			CallTriggerRatio: 1.30,
		},
		Screen: Screen{
			TopN:           30,
			MaxPremiumRate: 50.0,
		},
	}
}
