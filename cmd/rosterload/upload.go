package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/VivekChaurasia03/attendance-app/internal/app/bootstrap"
	"github.com/VivekChaurasia03/attendance-app/internal/app/roster"
	studentstore "github.com/VivekChaurasia03/attendance-app/internal/app/store/students"
	"github.com/VivekChaurasia03/attendance-app/internal/app/system/indexes"
)

var uploadCmd = &cobra.Command{
	Use:   "upload",
	Short: "Reconcile and upsert the roster into MongoDB",
	Long: `Upload runs the reconciliation pipeline and, if the dataset is
clean, applies an idempotent upsert plan keyed on SIS ID. Running it again
over the same inputs leaves the students collection unchanged.`,
	RunE: runUpload,
}

func init() {
	rootCmd.AddCommand(uploadCmd)
}

func runUpload(cmd *cobra.Command, args []string) error {
	logger, err := bootstrap.NewLogger()
	if err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck

	// Config problems abort before any file or network I/O.
	cfg, err := bootstrap.LoadConfig()
	if err != nil {
		logger.Error("configuration error", zap.Error(err))
		return err
	}

	students, _, err := loadRoster(logger)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	client, db, err := bootstrap.Connect(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer bootstrap.Disconnect(context.Background(), client, logger)

	if err := indexes.EnsureStudents(ctx, db); err != nil {
		return fmt.Errorf("ensure indexes: %w", err)
	}

	plan := roster.BuildPlan(students)
	res, err := studentstore.New(db).ApplyPlan(ctx, plan)
	if err != nil {
		return fmt.Errorf("upsert plan: %w", err)
	}

	logger.Info("upsert plan applied",
		zap.Int("operations", len(plan)),
		zap.Int64("matched", res.Matched),
		zap.Int64("upserted", res.Upserted),
		zap.Int64("modified", res.Modified))
	return nil
}
