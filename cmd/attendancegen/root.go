package main

import "github.com/spf13/cobra"

var rootCmd = &cobra.Command{
	Use:   "attendancegen",
	Short: "Seed or wipe synthetic attendance fixtures",
	Long: `attendancegen fills the attendance collection with randomized test
data keyed to the persisted student roster, one record per (student, date),
and can wipe it all again.

Seeding is re-runnable: a student already recorded for a date is skipped via
the (uid, date) uniqueness constraint rather than duplicated.`,
	SilenceUsage: true,
}
