package main

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/VivekChaurasia03/attendance-app/internal/app/bootstrap"
	"github.com/VivekChaurasia03/attendance-app/internal/app/fixtures"
	attendancestore "github.com/VivekChaurasia03/attendance-app/internal/app/store/attendance"
	studentstore "github.com/VivekChaurasia03/attendance-app/internal/app/store/students"
	"github.com/VivekChaurasia03/attendance-app/internal/app/system/indexes"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Insert randomized attendance fixtures for the built-in test dates",
	RunE:  runSeed,
}

func init() {
	rootCmd.AddCommand(seedCmd)
}

func runSeed(cmd *cobra.Command, args []string) error {
	logger, err := bootstrap.NewLogger()
	if err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck

	cfg, err := bootstrap.LoadConfig()
	if err != nil {
		logger.Error("configuration error", zap.Error(err))
		return err
	}

	ctx := cmd.Context()
	client, db, err := bootstrap.Connect(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer bootstrap.Disconnect(context.Background(), client, logger)

	if err := indexes.EnsureAttendance(ctx, db); err != nil {
		return fmt.Errorf("ensure indexes: %w", err)
	}

	bySection, err := studentstore.New(db).BySection(ctx)
	if err != nil {
		return fmt.Errorf("fetch students: %w", err)
	}
	if len(bySection) == 0 {
		return errors.New("no students found; run rosterload upload first")
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	summaries := fixtures.Seed(ctx, attendancestore.New(db), bySection,
		fixtures.DefaultSchedule(rng), rng, logger)

	for _, day := range summaries {
		logger.Info("seeded attendance",
			zap.String("date", day.Date),
			zap.Int("inserted", day.Inserted),
			zap.Int("already_recorded", day.Duplicates),
			zap.Int("failed", day.Failed))
		for _, sec := range day.Sections {
			logger.Info("section attendance",
				zap.String("date", day.Date),
				zap.String("section", sec.Section),
				zap.Int("present", sec.Present),
				zap.Int("absent", sec.Total-sec.Present))
		}
	}
	return nil
}
