package portfolio

import "time"

// =============================================================================
// Data Contract
// =============================================================================

// Record represents one trading day of an uploaded fund history
// ⭐ SSOT: 파싱 이후에는 절대 변경하지 않음 (모든 엔진이 읽기 전용으로 공유)
type Record struct {
	Date        string  `json:"date"` // canonical YYYY-MM-DD, ordering key
	BenchmarkA  float64 `json:"benchmark_a"`
	BenchmarkB  float64 `json:"benchmark_b"`
	BenchmarkC  float64 `json:"benchmark_c"`
	Shares      float64 `json:"shares"`
	ShareValue  float64 `json:"share_value"` // 파싱 시점에 > 0 보장
	GainLoss    float64 `json:"gain_loss"`
	DailyGain   float64 `json:"daily_gain"`
	MarketValue float64 `json:"market_value"`
	Principal   float64 `json:"principal"`
}

// Time returns the record date as a time.Time
// Date는 항상 정규화된 YYYY-MM-DD이므로 파싱 실패는 없음
func (r Record) Time() time.Time {
	t, _ := time.Parse("2006-01-02", r.Date)
	return t
}

// ParseOutcome is the tri-partite result of one ingestion call
// Errors가 하나라도 있으면 배치 전체가 사용 불가, Warnings는 정보성
type ParseOutcome struct {
	Records  []Record `json:"records"`
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}

// OK reports whether the batch is usable (no fatal errors)
func (o *ParseOutcome) OK() bool {
	return len(o.Errors) == 0
}
