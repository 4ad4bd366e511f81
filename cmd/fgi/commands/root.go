package commands

import (
	"github.com/spf13/cobra"
)

var (
	// Global flags
	configFile string
	env        string
	verbose    bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "fgi",
	Short: "Fund Growth Insight - 펀드 성과 분석 엔진",
	Long: `Fund Growth Insight CLI

펀드 성장 이력 CSV를 받아 수익률, 리스크, 벤치마크 비교,
드로다운 분석 리포트를 생성합니다.

Usage:
  go run ./cmd/fgi [command]

Examples:
  go run ./cmd/fgi analyze portfolio.csv
  go run ./cmd/fgi analyze portfolio.csv --risk-free 0.04 --json
  go run ./cmd/fgi api`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file (default is .env)")
	rootCmd.PersistentFlags().StringVar(&env, "env", "development", "environment (development|staging|production)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
