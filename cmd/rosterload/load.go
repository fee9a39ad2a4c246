package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"go.uber.org/zap"

	"github.com/VivekChaurasia03/attendance-app/internal/app/roster"
	"github.com/VivekChaurasia03/attendance-app/internal/domain/models"
)

// loadRoster parses both inputs and reconciles them. Every accumulated
// problem is logged before the run fails, so one invocation surfaces the
// whole mess rather than only the first row.
func loadRoster(logger *zap.Logger) ([]models.Student, roster.Report, error) {
	dir := roster.Directory{}

	ef, err := os.Open(emailsPath)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		// Proceed without emails: every student will carry an empty email
		// and a missing-email notice.
		logger.Warn("email roster not found, proceeding without emails", zap.String("path", emailsPath))
	case err != nil:
		return nil, roster.Report{}, fmt.Errorf("email roster: %w", err)
	default:
		defer ef.Close()
		var collisions []roster.Collision
		dir, collisions, err = roster.ParseEmailDirectory(ef)
		if err != nil {
			return nil, roster.Report{}, err
		}
		for _, c := range collisions {
			logger.Warn("email directory name collision, later entry wins",
				zap.Int("line", c.Line),
				zap.String("key", c.Key),
				zap.String("replaced", c.Replaced),
				zap.String("kept", c.Kept))
		}
		logger.Info("email directory loaded", zap.Int("entries", len(dir)))
	}

	rf, err := os.Open(rosterPath)
	if err != nil {
		return nil, roster.Report{}, fmt.Errorf("roster file: %w", err)
	}
	defer rf.Close()

	result, err := roster.ParseRoster(rf, dir)
	if err != nil {
		return nil, roster.Report{}, err
	}
	if result.HasErrors() {
		for _, e := range result.Errors {
			logger.Error("invalid roster row",
				zap.Int("line", e.Line),
				zap.String("reason", e.Reason),
				zap.Strings("raw", e.Raw))
		}
		return nil, roster.Report{}, fmt.Errorf("%d invalid roster rows, aborting", len(result.Errors))
	}

	report, err := roster.Reconcile(result.Students)
	if err != nil {
		return nil, roster.Report{}, err
	}

	logger.Info("roster parsed", zap.Int("students", report.Total))
	for _, sec := range report.Sections() {
		logger.Info("section distribution",
			zap.String("section", sec),
			zap.Int("students", report.SectionCounts[sec]))
	}
	logger.Info("email coverage",
		zap.Int("matched", report.WithEmail),
		zap.Int("total", report.Total))
	for _, m := range result.MissingEmails {
		logger.Warn("no email found",
			zap.Int("line", m.Line),
			zap.String("name", m.Name))
	}

	return result.Students, report, nil
}
