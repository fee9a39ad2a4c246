package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/VivekChaurasia03/attendance-app/internal/app/bootstrap"
)

var outPath string

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Parse and reconcile, writing the dataset to JSON for inspection",
	Long: `Verify runs the full reconciliation pipeline without touching the
database and writes the validated dataset to a JSON file for manual review.`,
	RunE: runVerify,
}

func init() {
	verifyCmd.Flags().StringVar(&outPath, "out", "roster_output.json", "output path for the reconciled dataset")
	rootCmd.AddCommand(verifyCmd)
}

func runVerify(cmd *cobra.Command, args []string) error {
	logger, err := bootstrap.NewLogger()
	if err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck

	students, _, err := loadRoster(logger)
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(students, "", "  ")
	if err != nil {
		return fmt.Errorf("encode roster: %w", err)
	}
	if err := os.WriteFile(outPath, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", outPath, err)
	}

	logger.Info("wrote reconciled roster",
		zap.String("path", outPath),
		zap.Int("students", len(students)))
	return nil
}
