package main

import (
	"context"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/VivekChaurasia03/attendance-app/internal/app/bootstrap"
	attendancestore "github.com/VivekChaurasia03/attendance-app/internal/app/store/attendance"
)

var wipeCmd = &cobra.Command{
	Use:   "wipe",
	Short: "Delete every attendance record",
	RunE:  runWipe,
}

func init() {
	rootCmd.AddCommand(wipeCmd)
}

func runWipe(cmd *cobra.Command, args []string) error {
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

	deleted, err := attendancestore.New(db).DeleteAll(ctx)
	if err != nil {
		return err
	}

	logger.Info("attendance records wiped", zap.Int64("deleted", deleted))
	return nil
}
