package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MikeZhang69/fund-growth-insight/internal/portfolio"
)

func TestCompareBenchmarks_DegenerateInput(t *testing.T) {
	assert.Empty(t, CompareBenchmarks(nil, DefaultRiskFreeRate))
	assert.Empty(t, CompareBenchmarks(seriesRecords(1.0), DefaultRiskFreeRate))
}

func TestCompareBenchmarks_FixedOrder(t *testing.T) {
	comparisons := CompareBenchmarks(seriesRecords(1.0, 1.1, 1.2), DefaultRiskFreeRate)
	require.Len(t, comparisons, 3)
	assert.Equal(t, "benchmarkA", comparisons[0].Benchmark)
	assert.Equal(t, "benchmarkB", comparisons[1].Benchmark)
	assert.Equal(t, "benchmarkC", comparisons[2].Benchmark)
}

func TestCompareBenchmarks_IdenticalSeries(t *testing.T) {
	// 포트폴리오와 벤치마크 수익률이 매 기간 동일하면
	// 추적 오차 0, 정보 비율 0 (0으로 나누지 않음), 베타 1, 알파 0
	records := []portfolio.Record{
		record("2021-06-01", 100, 100, 100, 100),
		record("2021-06-02", 110, 110, 110, 110),
		record("2021-06-03", 99, 99, 99, 99),
		record("2021-06-04", 120, 120, 120, 120),
	}

	comparisons := CompareBenchmarks(records, DefaultRiskFreeRate)
	require.Len(t, comparisons, 3)

	for _, c := range comparisons {
		assert.Equal(t, 0.0, c.TrackingError)
		assert.Equal(t, 0.0, c.InformationRatio)
		assert.Equal(t, 1.0, c.Beta)
		assert.Equal(t, 0.0, c.ActiveReturn)
		assert.Equal(t, 0.0, c.Alpha)
		assert.Equal(t, c.PortfolioReturn, c.BenchmarkReturn)
	}
}

func TestCompareBenchmarks_DoubleBeta(t *testing.T) {
	// 포트폴리오가 벤치마크 A의 정확히 2배로 움직이는 시나리오
	// bench: +10%, -10%, +10% / portfolio: +20%, -20%, +20%
	records := []portfolio.Record{
		record("2021-06-01", 1.0, 100.0, 50, 50),
		record("2021-06-02", 1.2, 110.0, 50, 50),
		record("2021-06-03", 0.96, 99.0, 50, 50),
		record("2021-06-04", 1.152, 108.9, 50, 50),
	}

	comparisons := CompareBenchmarks(records, DefaultRiskFreeRate)
	require.Len(t, comparisons, 3)

	a := comparisons[0]
	assert.Equal(t, 2.0, a.Beta)
	assert.Equal(t, 15.20, a.PortfolioReturn) // (1.152-1.0)/1.0
	assert.Equal(t, 8.90, a.BenchmarkReturn)  // (108.9-100)/100
	assert.Equal(t, 6.30, a.ActiveReturn)

	// alpha = 15.2 - (3 + 2×(8.9-3)) = 0.4
	assert.Equal(t, 0.40, a.Alpha)

	assert.Greater(t, a.TrackingError, 0.0)
	assert.Equal(t, round3(a.ActiveReturn/a.TrackingError), a.InformationRatio)
}

func TestCompareBenchmarks_ZeroVarianceBenchmark(t *testing.T) {
	// 상수 벤치마크: 베타 0, CAPM은 무위험 수익률 항만 남는다
	records := []portfolio.Record{
		record("2021-06-01", 1.0, 50, 50, 50),
		record("2021-06-02", 1.1, 50, 50, 50),
		record("2021-06-03", 1.2, 50, 50, 50),
	}

	comparisons := CompareBenchmarks(records, DefaultRiskFreeRate)
	for _, c := range comparisons {
		assert.Equal(t, 0.0, c.Beta)
		assert.Equal(t, 0.0, c.BenchmarkReturn)
		// alpha = 20 - (3 + 0×(0-3)) = 17
		assert.Equal(t, 17.00, c.Alpha)
	}
}
