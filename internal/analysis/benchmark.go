package analysis

import (
	"math"

	"github.com/MikeZhang69/fund-growth-insight/internal/portfolio"
	"github.com/MikeZhang69/fund-growth-insight/internal/stats"
)

// CompareBenchmarks computes alpha/beta/tracking-error stats per benchmark
//
// riskFreeRate는 연 소수 표기 (0.03 = 3%). CAPM은 전 기간 수익률 기준으로
// 단순화되어 있다 (연환산 아님) — 원 계약을 그대로 따른다.
// 레코드가 2개 미만이면 빈 슬라이스를 반환한다.
func CompareBenchmarks(records []portfolio.Record, riskFreeRate float64) []BenchmarkComparison {
	if len(records) < 2 {
		return []BenchmarkComparison{}
	}

	// CAPM 항은 퍼센트 포인트 단위 (기본 3 = 3%)
	riskFreePct := riskFreeRate * 100

	portfolioLevels := shareValues(records)
	portfolioReturns := stats.Returns(portfolioLevels)
	portfolioTotal := percentChange(portfolioLevels[0], portfolioLevels[len(portfolioLevels)-1])

	out := make([]BenchmarkComparison, 0, len(benchmarkOrder))
	for _, key := range benchmarkOrder {
		levels := benchmarkSeries(records, key)
		benchReturns := stats.Returns(levels)
		benchTotal := percentChange(levels[0], levels[len(levels)-1])

		// 수익률 수열은 공통 길이로 자른다
		n := len(portfolioReturns)
		if len(benchReturns) < n {
			n = len(benchReturns)
		}

		beta := stats.Beta(portfolioReturns[:n], benchReturns[:n])
		alpha := portfolioTotal - (riskFreePct + beta*(benchTotal-riskFreePct))

		// 추적 오차: 기간별 수익률 차이의 연환산 표준편차
		diffs := make([]float64, n)
		for i := 0; i < n; i++ {
			diffs[i] = portfolioReturns[i] - benchReturns[i]
		}
		trackingError := math.Sqrt(stats.PopVariance(diffs)*stats.TradingDaysPerYear) * 100

		activeReturn := portfolioTotal - benchTotal

		informationRatio := 0.0
		if trackingError != 0 {
			informationRatio = activeReturn / trackingError
		}

		out = append(out, BenchmarkComparison{
			Benchmark:        key,
			PortfolioReturn:  round2(portfolioTotal),
			BenchmarkReturn:  round2(benchTotal),
			Alpha:            round2(alpha),
			Beta:             round3(beta),
			TrackingError:    round2(trackingError),
			ActiveReturn:     round2(activeReturn),
			InformationRatio: round3(informationRatio),
		})
	}

	return out
}
