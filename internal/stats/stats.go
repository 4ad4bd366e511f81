// Package stats provides the numeric primitives shared by the analysis engines.
//
// 모든 함수는 순수하고, 통계적 경계 조건(빈 수열, 분산 0)에서 NaN 대신 0을
// 반환한다. 표시 가능한 숫자를 우선하는 계약이므로 여기서 에러를 던지지 않는다.
package stats

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// =============================================================================
// Annualization Constants
// =============================================================================

const (
	// TradingDaysPerYear 연환산에 일괄 적용하는 거래일 수
	TradingDaysPerYear = 252

	// DaysPerYear 달력 기준 연환산 (기간 수익률용)
	DaysPerYear = 365.25
)

// Mean returns the arithmetic mean, 0 for an empty sequence
func Mean(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	return stat.Mean(xs, nil)
}

// PopVariance returns the population variance (÷n), 0 for an empty sequence
func PopVariance(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	return stat.PopVariance(xs, nil)
}

// Correlation returns the Pearson correlation of two sequences
// 길이가 다르면 짧은 쪽에 맞춰 자르고, 길이 0 또는 분산 0이면 0을 반환한다
func Correlation(xs, ys []float64) float64 {
	n := len(xs)
	if len(ys) < n {
		n = len(ys)
	}
	if n == 0 {
		return 0
	}

	r := stat.Correlation(xs[:n], ys[:n], nil)
	if math.IsNaN(r) || math.IsInf(r, 0) {
		// 상수 수열(표준편차 0)은 0으로 처리
		return 0
	}
	return r
}

// Beta returns the OLS slope of portfolio returns on benchmark returns
// cov(p, b) / var(b), 벤치마크 분산이 0이면 0
func Beta(portfolio, benchmark []float64) float64 {
	n := len(portfolio)
	if len(benchmark) < n {
		n = len(benchmark)
	}
	if n < 2 {
		return 0
	}

	variance := stat.Variance(benchmark[:n], nil)
	if variance == 0 {
		return 0
	}

	return stat.Covariance(portfolio[:n], benchmark[:n], nil) / variance
}

// Returns computes simple period-over-period returns from a level sequence
// 분모가 정확히 0인 구간은 조용히 건너뛴다 (Infinity/NaN을 만들지 않음)
func Returns(levels []float64) []float64 {
	if len(levels) < 2 {
		return nil
	}

	out := make([]float64, 0, len(levels)-1)
	for i := 1; i < len(levels); i++ {
		prev := levels[i-1]
		if prev == 0 {
			continue
		}
		out = append(out, (levels[i]-prev)/prev)
	}
	return out
}

// AnnualizedVolatility converts daily returns to annualized volatility (fraction)
// sqrt(popVariance × 252); 호출자가 ×100 해서 퍼센트로 보고한다
func AnnualizedVolatility(dailyReturns []float64) float64 {
	if len(dailyReturns) == 0 {
		return 0
	}
	return math.Sqrt(PopVariance(dailyReturns) * TradingDaysPerYear)
}
