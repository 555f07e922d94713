package cmd

import (
	"encoding/json"
	"strings"

	"github.com/spf13/cobra"

	"go-emotive/app"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <text...>",
	Short: "Analyze one text and print the result as JSON",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, log, err := loadConfig()
		if err != nil {
			return err
		}
		log.SetOutput(cmd.ErrOrStderr())

		a, err := app.New(cmd.Context(), cfg, log)
		if err != nil {
			return err
		}
		defer a.Close()

		result, err := a.Analyzer.Analyze(cmd.Context(), strings.Join(args, " "))
		if err != nil {
			return err
		}

		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	},
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
}
