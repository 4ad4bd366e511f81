package analysis

import (
	"errors"
	"math"
	"sort"
	"strconv"

	"github.com/MikeZhang69/fund-growth-insight/internal/portfolio"
	"github.com/MikeZhang69/fund-growth-insight/internal/stats"
)

// ErrNoData is returned when a summary is requested for an empty sequence
var ErrNoData = errors.New("no data")

// Summarize computes whole-period total and annualized returns
// years = 달력일 수 / 365.25; 빈 수열은 0으로 나누지 않고 ErrNoData
func Summarize(records []portfolio.Record) (*Summary, error) {
	if len(records) == 0 {
		return nil, ErrNoData
	}

	first := records[0]
	last := records[len(records)-1]

	totalReturn := percentChange(first.ShareValue, last.ShareValue)

	days := last.Time().Sub(first.Time()).Hours() / 24
	years := days / stats.DaysPerYear

	annualized := 0.0
	if years > 0 {
		annualized = (math.Pow(last.ShareValue/first.ShareValue, 1/years) - 1) * 100
	}

	return &Summary{
		StartDate:        first.Date,
		EndDate:          last.Date,
		TotalReturn:      round2(totalReturn),
		AnnualizedReturn: round2(annualized),
	}, nil
}

// AnnualReturns computes per-series returns for each calendar year present
//
// 연도별로 입력 순서 기준 첫/마지막 레코드를 잡는다 (재정렬하지 않음).
// 레코드가 하나뿐인 연도는 first == last이므로 모든 시리즈가 0이 된다.
// 결과는 연도 오름차순.
func AnnualReturns(records []portfolio.Record) []AnnualReturn {
	type yearSpan struct {
		first portfolio.Record
		last  portfolio.Record
	}

	spans := make(map[int]*yearSpan)
	for _, r := range records {
		year, err := strconv.Atoi(r.Date[:4])
		if err != nil {
			continue
		}
		if span, ok := spans[year]; ok {
			span.last = r
		} else {
			spans[year] = &yearSpan{first: r, last: r}
		}
	}

	years := make([]int, 0, len(spans))
	for y := range spans {
		years = append(years, y)
	}
	sort.Ints(years)

	out := make([]AnnualReturn, 0, len(years))
	for _, y := range years {
		span := spans[y]
		out = append(out, AnnualReturn{
			Year:       y,
			ShareValue: round2(percentChange(span.first.ShareValue, span.last.ShareValue)),
			BenchmarkA: round2(percentChange(span.first.BenchmarkA, span.last.BenchmarkA)),
			BenchmarkB: round2(percentChange(span.first.BenchmarkB, span.last.BenchmarkB)),
			BenchmarkC: round2(percentChange(span.first.BenchmarkC, span.last.BenchmarkC)),
		})
	}
	return out
}

// Correlate computes Pearson correlation of share value against each benchmark
// 전체 히스토리 기준 (윈도우 없음)
func Correlate(records []portfolio.Record) Correlations {
	values := shareValues(records)
	return Correlations{
		BenchmarkA: round3(stats.Correlation(values, benchmarkSeries(records, BenchmarkA))),
		BenchmarkB: round3(stats.Correlation(values, benchmarkSeries(records, BenchmarkB))),
		BenchmarkC: round3(stats.Correlation(values, benchmarkSeries(records, BenchmarkC))),
	}
}
