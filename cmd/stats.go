package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show cross-session interview statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, _, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		agg, err := st.GetAggregate(context.Background())
		if err != nil {
			return fmt.Errorf("read aggregate: %w", err)
		}

		if agg.TotalSessions == 0 {
			fmt.Println("No interview sessions recorded yet.")
			return nil
		}

		fmt.Printf("Total sessions:          %d\n", agg.TotalSessions)
		fmt.Printf("Completed sessions:      %d\n", agg.CompletedSessions)
		fmt.Printf("Average completion rate: %.0f%%\n", agg.AverageCompletionRate*100)
		return nil
	},
}
