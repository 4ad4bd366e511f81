// Package analysis turns a validated record sequence into descriptive
// financial analytics.
//
// ⭐ SSOT: 네 개의 엔진(metrics/risk/benchmark/drawdown)은 전부 순수 계산기다.
// 입력 레코드와 명시된 상수(무위험 수익률, 252 거래일, 365.25일) 외에 숨은
// 상태가 없고, 입력을 변경하지 않으므로 동시에 호출해도 안전하다.
// 레코드는 날짜 오름차순을 가정한다 — 파서는 역순 입력에 경고만 남기고
// 여기서는 재정렬하지 않는다.
package analysis

import (
	"github.com/shopspring/decimal"

	"github.com/MikeZhang69/fund-growth-insight/internal/portfolio"
)

// =============================================================================
// Result Value Objects
// =============================================================================
// 모든 퍼센트 필드는 ×100 스케일에 문서화된 자릿수로 미리 반올림되어 있다.
// 표시 레이어는 통화/로케일 기호만 붙이면 된다.

// Summary holds whole-period performance
type Summary struct {
	StartDate        string  `json:"start_date"`
	EndDate          string  `json:"end_date"`
	TotalReturn      float64 `json:"total_return"`      // %, 2 decimals
	AnnualizedReturn float64 `json:"annualized_return"` // %, 2 decimals
}

// AnnualReturn holds per-series returns for one calendar year
type AnnualReturn struct {
	Year       int     `json:"year"`
	ShareValue float64 `json:"share_value"` // %, 2 decimals
	BenchmarkA float64 `json:"benchmark_a"`
	BenchmarkB float64 `json:"benchmark_b"`
	BenchmarkC float64 `json:"benchmark_c"`
}

// Correlations holds Pearson correlation of share value vs each benchmark
type Correlations struct {
	BenchmarkA float64 `json:"benchmark_a"` // 3 decimals
	BenchmarkB float64 `json:"benchmark_b"`
	BenchmarkC float64 `json:"benchmark_c"`
}

// RiskMetrics holds volatility and risk-adjusted return figures
// 레코드가 2개 미만이면 모든 필드가 0인 값이 정의된 결과다 (에러 아님)
type RiskMetrics struct {
	Volatility        float64 `json:"volatility"`         // %, 2 decimals
	SharpeRatio       float64 `json:"sharpe_ratio"`       // 3 decimals
	MaxDrawdown       float64 `json:"max_drawdown"`       // %, 2 decimals
	DownsideDeviation float64 `json:"downside_deviation"` // %, 2 decimals
	SortinoRatio      float64 `json:"sortino_ratio"`      // 3 decimals
}

// BenchmarkComparison holds CAPM-style comparison stats for one benchmark
type BenchmarkComparison struct {
	Benchmark        string  `json:"benchmark"`
	PortfolioReturn  float64 `json:"portfolio_return"`  // %, 2 decimals
	BenchmarkReturn  float64 `json:"benchmark_return"`  // %, 2 decimals
	Alpha            float64 `json:"alpha"`             // %, 2 decimals
	Beta             float64 `json:"beta"`              // 3 decimals
	TrackingError    float64 `json:"tracking_error"`    // %, 2 decimals
	ActiveReturn     float64 `json:"active_return"`     // %, 2 decimals
	InformationRatio float64 `json:"information_ratio"` // 3 decimals
}

// DrawdownPeriod is one peak-to-trough(-to-recovery) episode
type DrawdownPeriod struct {
	StartDate       string  `json:"start_date"`              // 직전 고점 날짜
	EndDate         string  `json:"end_date"`                // 최저점 날짜
	RecoveryDate    string  `json:"recovery_date,omitempty"` // 회복 안 됐으면 빈 값
	PeakValue       float64 `json:"peak_value"`
	TroughValue     float64 `json:"trough_value"`
	DrawdownPercent float64 `json:"drawdown_percent"` // %, 2 decimals
	DurationDays    int     `json:"duration_days"`    // ceil(end - start)
	RecoveryDays    int     `json:"recovery_days"`    // ceil(recovery - end), 회복 시에만
	Recovered       bool    `json:"recovered"`
}

// DrawdownAnalysis aggregates the extracted episodes
type DrawdownAnalysis struct {
	MaxDrawdown         DrawdownPeriod   `json:"max_drawdown"` // zero sentinel if empty
	Drawdowns           []DrawdownPeriod `json:"drawdowns"`    // 깊은 순 (표시 정렬)
	Current             *DrawdownPeriod  `json:"current,omitempty"`
	AverageDrawdown     float64          `json:"average_drawdown"`      // %, 2 decimals
	AverageRecoveryDays float64          `json:"average_recovery_days"` // 회복된 에피소드만
}

// =============================================================================
// Shared Helpers
// =============================================================================

// round rounds to the documented decimal precision of each metric
func round(v float64, places int32) float64 {
	return decimal.NewFromFloat(v).Round(places).InexactFloat64()
}

func round2(v float64) float64 { return round(v, 2) }
func round3(v float64) float64 { return round(v, 3) }

// shareValues extracts the share value series
func shareValues(records []portfolio.Record) []float64 {
	out := make([]float64, len(records))
	for i, r := range records {
		out[i] = r.ShareValue
	}
	return out
}

// benchmarkSeries extracts one benchmark level series by key
func benchmarkSeries(records []portfolio.Record, key string) []float64 {
	out := make([]float64, len(records))
	for i, r := range records {
		switch key {
		case BenchmarkA:
			out[i] = r.BenchmarkA
		case BenchmarkB:
			out[i] = r.BenchmarkB
		case BenchmarkC:
			out[i] = r.BenchmarkC
		}
	}
	return out
}

// Benchmark keys, in the fixed reporting order
const (
	BenchmarkA = "benchmarkA"
	BenchmarkB = "benchmarkB"
	BenchmarkC = "benchmarkC"
)

// benchmarkOrder 보고 순서 고정
var benchmarkOrder = []string{BenchmarkA, BenchmarkB, BenchmarkC}

// percentChange returns (last-first)/first × 100 with a zero-denominator guard
func percentChange(first, last float64) float64 {
	if first == 0 {
		return 0
	}
	return (last - first) / first * 100
}
