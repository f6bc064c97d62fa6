package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/pitchside/pitchside-cli/internal/analyzer"
	"github.com/pitchside/pitchside-cli/internal/config"
	"github.com/pitchside/pitchside-cli/pkg/gemini"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "pitchside",
	Short: "AI-grounded football match analysis",
	Long:  "Queries Gemini with search grounding for fixtures and match analyses, parses the replies into typed records, and derives conservative and bingo bet slips.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = c

		if err := config.InitLogger(cfg.Log); err != nil {
			return fmt.Errorf("init logger: %w", err)
		}

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = zap.L().Sync()
	},
}

// newService builds the analysis service from configuration.
func newService(ctx context.Context) (*analyzer.Service, error) {
	oracle, err := gemini.NewClient(ctx, cfg.Gemini.Key,
		gemini.WithModel(cfg.Gemini.Model),
		gemini.WithTemperature(float32(cfg.Gemini.Temperature)),
	)
	if err != nil {
		return nil, err
	}
	return analyzer.New(oracle), nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
