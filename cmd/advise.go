package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/techskyline/academy/internal/advisor"
	"github.com/techskyline/academy/internal/ui/theme"
)

var adviseCmd = &cobra.Command{
	Use:   "advise",
	Short: "Ask the advisor what to do next",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		provider, err := buildProvider(ctx, st)
		if err != nil {
			return fmt.Errorf("the advisor needs an AI provider; set ACADEMY_LLM_PROVIDER and an API key: %w", err)
		}

		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		ledger, err := loadLedger(ctx, st, cfg)
		if err != nil {
			return err
		}

		rec, err := advisor.NewService(provider, advisor.DefaultConfig()).
			Recommend(ctx, ledger.Snapshot())
		if err != nil {
			return fmt.Errorf("get recommendation: %w", err)
		}

		fmt.Println(theme.Title.Render("Next step"))
		fmt.Println(theme.Body.Render(rec.NextStep))
		fmt.Println()
		fmt.Println(theme.Hint.Render(rec.Reasoning))
		if len(rec.FocusSkills) > 0 {
			fmt.Println()
			fmt.Println(theme.Subtitle.Render("Focus: " + strings.Join(rec.FocusSkills, ", ")))
		}
		return nil
	},
}
