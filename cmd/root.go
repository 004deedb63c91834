package cmd

import (
	"github.com/spf13/cobra"

	"github.com/techskyline/academy/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "academy",
	Short: "AI literacy courses, labs, and certification",
	Long:  "TechSkyline Academy in the terminal: course progress, live labs, quizzes, and certificate verification.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDashboard(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides ACADEMY_DB env var)")

	completeCmd.AddCommand(completeModuleCmd)
	completeCmd.AddCommand(completeLabCmd)

	rootCmd.AddCommand(dashboardCmd)
	rootCmd.AddCommand(completeCmd)
	rootCmd.AddCommand(quizCmd)
	rootCmd.AddCommand(labCmd)
	rootCmd.AddCommand(evaluateCmd)
	rootCmd.AddCommand(adviseCmd)
	rootCmd.AddCommand(certCmd)
	rootCmd.AddCommand(verifyCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(trackCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then ACADEMY_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}
