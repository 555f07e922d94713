package cmd

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"go-emotive/config"
	"go-emotive/logger"
)

var rootCmd = &cobra.Command{
	Use:   "go-emotive",
	Short: "Multilingual emotion and sentiment analysis service",
	Long: `go-emotive detects the language of a text, translates it to English when
needed and classifies its emotion and sentiment.

Running without a subcommand starts the HTTP server.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return serveCmd.RunE(cmd, args)
	},
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and runs it.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func loadConfig() (config.Config, *logrus.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return config.Config{}, nil, fmt.Errorf("load config: %w", err)
	}
	log, err := logger.New(cfg.Log)
	if err != nil {
		return config.Config{}, nil, err
	}
	return cfg, log, nil
}
