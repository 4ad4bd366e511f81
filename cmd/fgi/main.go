package main

import (
	"os"

	"github.com/MikeZhang69/fund-growth-insight/cmd/fgi/commands"
)

// main is the entry point for the FGI CLI
// ⭐ 통합 CLI 진입점: go run ./cmd/fgi [command]
func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
