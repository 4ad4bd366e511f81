package analysis

import (
	"fmt"

	"github.com/MikeZhang69/fund-growth-insight/internal/portfolio"
)

// seriesRecords builds records with sequential daily dates from a share value
// series. Benchmarks default to the share value so benchmark-independent tests
// stay simple; override per test where the benchmark values matter.
func seriesRecords(values ...float64) []portfolio.Record {
	records := make([]portfolio.Record, len(values))
	for i, v := range values {
		records[i] = portfolio.Record{
			Date:       fmt.Sprintf("2021-06-%02d", i+1),
			ShareValue: v,
			BenchmarkA: v,
			BenchmarkB: v,
			BenchmarkC: v,
			Shares:     1000,
		}
	}
	return records
}

// record builds a single record with explicit date and values
func record(date string, shareValue, benchA, benchB, benchC float64) portfolio.Record {
	return portfolio.Record{
		Date:       date,
		ShareValue: shareValue,
		BenchmarkA: benchA,
		BenchmarkB: benchB,
		BenchmarkC: benchC,
		Shares:     1000,
	}
}
