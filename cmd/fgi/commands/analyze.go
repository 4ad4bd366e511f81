package commands

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/MikeZhang69/fund-growth-insight/internal/analysis"
	"github.com/MikeZhang69/fund-growth-insight/internal/analyzer"
	"github.com/MikeZhang69/fund-growth-insight/pkg/config"
	"github.com/MikeZhang69/fund-growth-insight/pkg/logger"
)

// analyzeCmd represents the analyze command
var analyzeCmd = &cobra.Command{
	Use:   "analyze [csv-file]",
	Short: "펀드 성장 이력 CSV 분석",
	Long: `펀드 성장 이력 CSV 파일을 파싱하고 전체 분석 리포트를 출력합니다.

리포트 구성:
- 전체 기간 수익률 (총/연환산)
- 연도별 수익률 (펀드 + 벤치마크 3종)
- 리스크 지표 (변동성, Sharpe, Sortino, MDD)
- 벤치마크 비교 (알파, 베타, 추적오차, IR)
- 드로다운 에피소드 분석

Flags:
  --risk-free   무위험 수익률 (연 소수, 기본: config 또는 0.03)
  --json        리포트를 JSON으로 출력

Example:
  go run ./cmd/fgi analyze portfolio.csv
  go run ./cmd/fgi analyze portfolio.csv --risk-free 0.04
  go run ./cmd/fgi analyze portfolio.csv --json > report.json`,
	Args: cobra.ExactArgs(1),
	RunE: runAnalyze,
}

var (
	analyzeRiskFree float64
	analyzeJSON     bool
)

func init() {
	rootCmd.AddCommand(analyzeCmd)

	// Flags
	analyzeCmd.Flags().Float64Var(&analyzeRiskFree, "risk-free", 0, "무위험 수익률 (연 소수, 0.03 = 3%)")
	analyzeCmd.Flags().BoolVar(&analyzeJSON, "json", false, "JSON 출력")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	// 1. Load config
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	// 2. Initialize logger
	log := logger.New(cfg)

	// Risk-free rate: flag > config > default
	riskFree := cfg.Analysis.RiskFreeRate
	if analyzeRiskFree > 0 {
		riskFree = analyzeRiskFree
	}

	// 3. Read CSV file
	raw, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("read csv file: %w", err)
	}

	// 4. Run the analysis pipeline
	service := analyzer.New(riskFree, log)
	report, err := service.Analyze(string(raw))
	if err != nil {
		PrintError(fmt.Sprintf("Analysis failed: %v", err))
		return err
	}

	// 5. Print report
	if analyzeJSON {
		out, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return fmt.Errorf("encode report: %w", err)
		}
		fmt.Println(string(out))
		return nil
	}

	printReport(report)
	return nil
}

func printReport(report *analyzer.Report) {
	fmt.Println("\n✅ Analysis Completed")
	PrintDoubleSeparator()
	fmt.Println()

	// Summary
	fmt.Println("📊 Summary")
	fmt.Printf("Period: %s ~ %s (%d records)\n",
		report.Summary.StartDate, report.Summary.EndDate, report.RecordCount)
	fmt.Printf("Total Return:      %+.2f%%\n", report.Summary.TotalReturn)
	fmt.Printf("Annualized Return: %+.2f%%\n", report.Summary.AnnualizedReturn)
	fmt.Printf("Risk-Free Rate:    %.2f%%\n", report.RiskFreeRate*100)
	fmt.Println()

	// Annual returns
	fmt.Println("📅 Annual Returns")
	widths := []int{6, 12, 12, 12, 12}
	PrintTableHeader([]string{"Year", "Fund", "BenchmarkA", "BenchmarkB", "BenchmarkC"}, widths)
	for _, year := range report.AnnualReturns {
		PrintTableRow([]string{
			strconv.Itoa(year.Year),
			fmt.Sprintf("%+.2f%%", year.ShareValue),
			fmt.Sprintf("%+.2f%%", year.BenchmarkA),
			fmt.Sprintf("%+.2f%%", year.BenchmarkB),
			fmt.Sprintf("%+.2f%%", year.BenchmarkC),
		}, widths)
	}
	fmt.Println()

	// Risk metrics
	fmt.Println("📉 Risk Metrics")
	fmt.Printf("Volatility:         %.2f%%\n", report.Risk.Volatility)
	fmt.Printf("Sharpe Ratio:       %.3f", report.Risk.SharpeRatio)
	if report.Risk.SharpeRatio > 2.0 {
		fmt.Print(" 🌟 (Excellent)")
	} else if report.Risk.SharpeRatio > 1.0 {
		fmt.Print(" ✅ (Good)")
	}
	fmt.Println()
	fmt.Printf("Sortino Ratio:      %.3f\n", report.Risk.SortinoRatio)
	fmt.Printf("Downside Deviation: %.2f%%\n", report.Risk.DownsideDeviation)
	fmt.Printf("Max Drawdown:       %.2f%%", report.Risk.MaxDrawdown)
	if report.Risk.MaxDrawdown < 10.0 {
		fmt.Print(" 🌟 (Excellent)")
	} else if report.Risk.MaxDrawdown < 20.0 {
		fmt.Print(" ✅ (Good)")
	} else {
		fmt.Print(" ⚠️  (High)")
	}
	fmt.Println()
	fmt.Println()

	// Benchmark comparison
	fmt.Println("💹 Benchmark Comparison")
	widths = []int{12, 10, 10, 8, 8, 8, 8}
	PrintTableHeader([]string{"Benchmark", "Fund", "Bench", "Alpha", "Beta", "TE", "IR"}, widths)
	for _, b := range report.Benchmarks {
		PrintTableRow([]string{
			b.Benchmark,
			fmt.Sprintf("%+.2f%%", b.PortfolioReturn),
			fmt.Sprintf("%+.2f%%", b.BenchmarkReturn),
			fmt.Sprintf("%+.2f", b.Alpha),
			fmt.Sprintf("%.3f", b.Beta),
			fmt.Sprintf("%.2f", b.TrackingError),
			fmt.Sprintf("%.3f", b.InformationRatio),
		}, widths)
	}
	fmt.Println()

	fmt.Println("🔗 Correlation (Fund vs Benchmark)")
	fmt.Printf("BenchmarkA: %.3f\n", report.Correlations.BenchmarkA)
	fmt.Printf("BenchmarkB: %.3f\n", report.Correlations.BenchmarkB)
	fmt.Printf("BenchmarkC: %.3f\n", report.Correlations.BenchmarkC)
	fmt.Println()

	// Drawdowns
	fmt.Println("📈 Drawdown Analysis")
	if len(report.Drawdowns.Drawdowns) == 0 {
		fmt.Println("No drawdowns detected")
	} else {
		fmt.Printf("Episodes:          %d\n", len(report.Drawdowns.Drawdowns))
		fmt.Printf("Average Drawdown:  %.2f%%\n", report.Drawdowns.AverageDrawdown)
		fmt.Printf("Average Recovery:  %.1f days\n", report.Drawdowns.AverageRecoveryDays)
		fmt.Println()
		for _, dd := range report.Drawdowns.Drawdowns {
			printDrawdown(dd)
		}
		if report.Drawdowns.Current != nil {
			fmt.Printf("⚠️  Currently in drawdown since %s (%.2f%% below peak)\n",
				report.Drawdowns.Current.StartDate, report.Drawdowns.Current.DrawdownPercent)
		}
	}
	fmt.Println()

	// Parser warnings
	if len(report.Warnings) > 0 {
		PrintWarning(fmt.Sprintf("%d data warnings", len(report.Warnings)))
		PrintList(report.Warnings)
		fmt.Println()
	}
}

func printDrawdown(dd analysis.DrawdownPeriod) {
	status := "recovered in " + strconv.Itoa(dd.RecoveryDays) + " days"
	if !dd.Recovered {
		status = "not recovered"
	}
	fmt.Printf("%s ~ %s: -%.2f%% (%d days, %s)\n",
		dd.StartDate, dd.EndDate, dd.DrawdownPercent, dd.DurationDays, status)
}
