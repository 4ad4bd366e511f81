// Package analyzer wires the parser and the four analysis engines into the
// single entry point the CLI and the HTTP API call.
package analyzer

import (
	"fmt"
	"time"

	"github.com/MikeZhang69/fund-growth-insight/internal/analysis"
	"github.com/MikeZhang69/fund-growth-insight/internal/portfolio"
	"github.com/MikeZhang69/fund-growth-insight/pkg/logger"
)

// Service runs the full analysis pipeline over one uploaded CSV
// ⭐ SSOT: 파서와 엔진 조립은 여기서만 — 엔진은 서로를 모른다
type Service struct {
	riskFreeRate float64
	logger       *logger.Logger
}

// New creates an analyzer service
// riskFreeRate는 연 소수 표기 (0.03 = 3%)
func New(riskFreeRate float64, log *logger.Logger) *Service {
	if riskFreeRate <= 0 {
		riskFreeRate = analysis.DefaultRiskFreeRate
	}
	return &Service{
		riskFreeRate: riskFreeRate,
		logger:       log,
	}
}

// Report is the complete analysis output for one record sequence
// 모든 퍼센트 필드는 ×100 스케일로 미리 반올림되어 있다
type Report struct {
	GeneratedAt   time.Time                      `json:"generated_at"`
	RecordCount   int                            `json:"record_count"`
	RiskFreeRate  float64                        `json:"risk_free_rate"`
	Summary       analysis.Summary               `json:"summary"`
	AnnualReturns []analysis.AnnualReturn        `json:"annual_returns"`
	Correlations  analysis.Correlations          `json:"correlations"`
	Risk          analysis.RiskMetrics           `json:"risk"`
	Benchmarks    []analysis.BenchmarkComparison `json:"benchmarks"`
	Drawdowns     analysis.DrawdownAnalysis      `json:"drawdowns"`
	Warnings      []string                       `json:"warnings"`
}

// Analyze parses a raw CSV blob and runs every engine over the records
// 파싱 오류가 하나라도 있으면 합쳐진 메시지로 실패한다 (경고는 통과)
func (s *Service) Analyze(raw string) (*Report, error) {
	started := time.Now()

	outcome := portfolio.Parse(raw)
	if err := outcome.Err(); err != nil {
		s.logger.WithError(err).Warn("Portfolio CSV rejected")
		return nil, err
	}
	records := outcome.Records

	summary, err := analysis.Summarize(records)
	if err != nil {
		// 파서가 오류 없는 배치에 레코드 1개 이상을 보장하므로 보통 도달하지 않음
		return nil, fmt.Errorf("summarize: %w", err)
	}

	report := &Report{
		GeneratedAt:   started,
		RecordCount:   len(records),
		RiskFreeRate:  s.riskFreeRate,
		Summary:       *summary,
		AnnualReturns: analysis.AnnualReturns(records),
		Correlations:  analysis.Correlate(records),
		Risk:          analysis.ComputeRisk(records, s.riskFreeRate),
		Benchmarks:    analysis.CompareBenchmarks(records, s.riskFreeRate),
		Drawdowns:     analysis.ExtractDrawdowns(records),
		Warnings:      outcome.Warnings,
	}

	s.logger.WithFields(map[string]interface{}{
		"records":      report.RecordCount,
		"warnings":     len(report.Warnings),
		"max_drawdown": report.Risk.MaxDrawdown,
		"duration_ms":  time.Since(started).Milliseconds(),
	}).Info("Analysis completed")

	return report, nil
}
