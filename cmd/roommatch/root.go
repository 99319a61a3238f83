package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/denisok6893-rgb/roommate-matching/internal/config"
	"github.com/denisok6893-rgb/roommate-matching/internal/logger"
	"github.com/denisok6893-rgb/roommate-matching/internal/matching"
)

type rootOptions struct {
	configPath string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:          "roommatch",
		Short:        "Roommate compatibility scoring for event attendees",
		SilenceUsage: true,
	}
	cmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "path to config file (default: ./configs/config.yaml)")

	cmd.AddCommand(newServeCmd(opts))
	cmd.AddCommand(newScoreCmd(opts))
	return cmd
}

func loadRuntime(opts *rootOptions) (*config.Config, *zap.Logger, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return nil, nil, err
	}
	log, err := logger.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return nil, nil, fmt.Errorf("build logger: %w", err)
	}
	return cfg, log, nil
}

// newEngine builds the engine, falling back to the built-in weights when the
// configured weights file is missing or invalid.
func newEngine(cfg *config.Config, log *zap.Logger) *matching.Engine {
	mc := matching.DefaultConfig()
	if cfg.Matching.WeightsPath != "" {
		w, err := matching.LoadWeightsFromFile(cfg.Matching.WeightsPath)
		if err != nil {
			log.Info("use default weights", zap.String("reason", err.Error()))
		}
		mc.Weights = w
	}
	return matching.NewEngine(mc)
}
