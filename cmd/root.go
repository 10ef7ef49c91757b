package cmd

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/abhisek/talentscout/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "talentscout",
	Short: "AI hiring assistant for technology placements",
	Long: "TalentScout — terminal hiring assistant that collects a candidate profile " +
		"and runs a four-question technical screening interview.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runInterview(cmd)
	},
}

func Execute() error {
	// A local .env is the easiest way to carry API keys; absence is fine.
	_ = godotenv.Load()
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("data", "", "Data directory for database and transcripts (overrides TALENTSCOUT_DATA)")
	rootCmd.Flags().String("lang", "en", "Interview language (en, es, fr, de)")

	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDataDir returns the data directory using the --data flag
// (highest priority), then TALENTSCOUT_DATA, then the default XDG path.
func resolveDataDir(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("data"); p != "" {
		return p, nil
	}
	return store.DefaultDataDir()
}

// openStore resolves the data directory and opens the database in it.
func openStore(cmd *cobra.Command) (*store.Store, string, error) {
	dataDir, err := resolveDataDir(cmd)
	if err != nil {
		return nil, "", fmt.Errorf("resolve data dir: %w", err)
	}
	st, err := store.Open(store.DBPath(dataDir))
	if err != nil {
		return nil, "", fmt.Errorf("open database: %w", err)
	}
	return st, dataDir, nil
}
