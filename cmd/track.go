package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/techskyline/academy/internal/catalog"
	"github.com/techskyline/academy/internal/ui/theme"
)

var trackCmd = &cobra.Command{
	Use:   "track <name>",
	Short: "Declare your career track",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		name := strings.Join(args, " ")

		if !catalog.IsTrack(name) {
			return fmt.Errorf("unknown track %q (available: %s)",
				name, strings.Join(catalog.Tracks(), ", "))
		}

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

		if _, err := ledger.SetTrack(ctx, name); err != nil {
			return fmt.Errorf("set track: %w", err)
		}

		fmt.Println(theme.Correct.Render("✓ ") + "Track set to " + name)
		return nil
	},
}
