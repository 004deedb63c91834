package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/techskyline/academy/internal/catalog"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show progress and AI usage statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		ledger, err := loadLedger(ctx, st, cfg)
		if err != nil {
			return err
		}
		state := ledger.Snapshot()

		fmt.Printf("Modules completed:  %d / %d\n", len(state.CompletedModules), catalog.Size())
		fmt.Printf("Labs completed:     %d / %d\n", len(state.CompletedLabs), len(catalog.Labs()))
		fmt.Printf("Credits earned:     %d / %d\n", catalog.CreditsFor(state.CompletedModules), catalog.TotalCredits())
		fmt.Printf("XP / Level:         %d / %d\n", state.XP, state.Level)
		fmt.Printf("Certificates:       %d\n", len(state.Certificates))

		total, succeeded, err := st.EventRepo().CountLLMRequests(ctx)
		if err != nil {
			return fmt.Errorf("count AI calls: %w", err)
		}
		fmt.Printf("AI calls:           %d (%d succeeded)\n", total, succeeded)
		return nil
	},
}
