package main

import "github.com/spf13/cobra"

var (
	rosterPath string
	emailsPath string
)

var rootCmd = &cobra.Command{
	Use:   "rosterload",
	Short: "Reconcile the class roster with the email directory",
	Long: `rosterload reconciles two independently exported CSVs — the class
roster and its email directory — into a single validated dataset.

The roster's header row is misaligned with its data (a known quirk of the
export), so fields are read by position, not by header name. Every problem
in the input is reported in one pass; any validation error or duplicate
SIS ID aborts the run before anything is persisted.

Use "verify" to inspect the reconciled dataset as JSON, or "upload" to
upsert it into MongoDB (re-runnable without creating duplicates).`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&rosterPath, "roster",
		"Spring Student Roster - Sheet1.csv", "path to the roster CSV (header line is skipped)")
	rootCmd.PersistentFlags().StringVar(&emailsPath, "emails",
		"email-roster-1403867.csv", "path to the email directory CSV (name,email; no header)")
}
