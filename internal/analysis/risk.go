package analysis

import (
	"github.com/MikeZhang69/fund-growth-insight/internal/portfolio"
	"github.com/MikeZhang69/fund-growth-insight/internal/stats"
)

// DefaultRiskFreeRate 연간 무위험 수익률 기본값 (소수)
const DefaultRiskFreeRate = 0.03

// ComputeRisk computes volatility and risk-adjusted return metrics
//
// riskFreeRate는 연 소수 표기 (0.03 = 3%). 레코드가 2개 미만이면 모든
// 필드가 0인 RiskMetrics를 반환한다 — 정의된 퇴화 케이스이지 에러가 아니다.
// 분모가 0이 되는 비율(Sharpe/Sortino)도 전부 0으로 처리한다.
func ComputeRisk(records []portfolio.Record, riskFreeRate float64) RiskMetrics {
	if len(records) < 2 {
		return RiskMetrics{}
	}

	dailyReturns := stats.Returns(shareValues(records))

	volatility := stats.AnnualizedVolatility(dailyReturns) * 100

	// Sharpe 내부용 연환산 수익률: mean(daily) × 252 × 100
	annualizedReturn := stats.Mean(dailyReturns) * stats.TradingDaysPerYear * 100
	excessReturn := annualizedReturn - riskFreeRate*100

	sharpe := 0.0
	if volatility != 0 {
		sharpe = excessReturn / volatility
	}

	// 하방 편차: 엄격히 음수인 일별 수익률만으로 같은 연환산 공식 적용
	negatives := make([]float64, 0, len(dailyReturns))
	for _, r := range dailyReturns {
		if r < 0 {
			negatives = append(negatives, r)
		}
	}
	downsideDeviation := stats.AnnualizedVolatility(negatives) * 100

	sortino := 0.0
	if downsideDeviation != 0 {
		sortino = excessReturn / downsideDeviation
	}

	return RiskMetrics{
		Volatility:        round2(volatility),
		SharpeRatio:       round3(sharpe),
		MaxDrawdown:       round2(maxDrawdownPercent(records)),
		DownsideDeviation: round2(downsideDeviation),
		SortinoRatio:      round3(sortino),
	}
}

// maxDrawdownPercent scans once, tracking the running peak of share value
func maxDrawdownPercent(records []portfolio.Record) float64 {
	maxDrawdown := 0.0
	peak := records[0].ShareValue

	for _, r := range records {
		if r.ShareValue > peak {
			peak = r.ShareValue
		}

		drawdown := (peak - r.ShareValue) / peak * 100
		if drawdown > maxDrawdown {
			maxDrawdown = drawdown
		}
	}

	return maxDrawdown
}
