package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/MikeZhang69/fund-growth-insight/internal/analyzer"
	"github.com/MikeZhang69/fund-growth-insight/internal/api"
	"github.com/MikeZhang69/fund-growth-insight/internal/api/handlers"
	"github.com/MikeZhang69/fund-growth-insight/pkg/config"
	"github.com/MikeZhang69/fund-growth-insight/pkg/logger"
)

// apiCmd represents the api command
var apiCmd = &cobra.Command{
	Use:   "api",
	Short: "API 서버 시작",
	Long: `REST API 서버를 시작합니다.

이 명령어는:
- HTTP API 서버 시작
- CSV 업로드 분석 엔드포인트 제공

Endpoints:
  GET  /health        - Health check
  POST /api/analyze   - CSV 업로드 후 분석 리포트 반환

Example:
  go run ./cmd/fgi api
  go run ./cmd/fgi api --port 8087`,
	RunE: runAPIServer,
}

var (
	apiPort string
)

func init() {
	rootCmd.AddCommand(apiCmd)

	// Flags
	apiCmd.Flags().StringVar(&apiPort, "port", "", "API 서버 포트 (기본: config)")
}

func runAPIServer(cmd *cobra.Command, args []string) error {
	fmt.Println("=== Fund Growth Insight API Server ===")

	// 1. Load config
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	// Override port if flag is set
	if apiPort != "" {
		cfg.Port = apiPort
	}

	// 2. Initialize logger
	log := logger.New(cfg)

	log.WithFields(map[string]interface{}{
		"port":           cfg.Port,
		"env":            cfg.Env,
		"risk_free_rate": cfg.Analysis.RiskFreeRate,
	}).Info("Initializing API server")

	// 3. Create analyzer service
	service := analyzer.New(cfg.Analysis.RiskFreeRate, log)

	// 4. Create handler
	analysisHandler := handlers.NewAnalysisHandler(service, cfg.API.MaxBodyBytes, log)

	// 5. Create router
	router := api.NewRouter(analysisHandler, cfg, log)

	// 6. Create server
	server := api.New(cfg, log, router)

	// 7. Start server with graceful shutdown
	go func() {
		if err := server.Start(); err != nil {
			log.WithError(err).Fatal("Failed to start server")
		}
	}()

	log.Info("API server started successfully")
	fmt.Printf("\n✅ Server running on http://localhost:%s\n", cfg.Port)
	fmt.Println("\nAvailable endpoints:")
	fmt.Println("  GET  /health")
	fmt.Println("  POST /api/analyze")
	fmt.Println("\nPress Ctrl+C to stop")

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	log.Info("Server stopped")
	return nil
}
