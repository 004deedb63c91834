package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/techskyline/academy/internal/catalog"
	"github.com/techskyline/academy/internal/progress"
	"github.com/techskyline/academy/internal/ui/theme"
)

var completeCmd = &cobra.Command{
	Use:   "complete",
	Short: "Record completed coursework",
}

var completeModuleCmd = &cobra.Command{
	Use:   "module <id>",
	Short: "Mark a module as completed",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		mod, ok := catalog.ModuleByID(args[0])
		if !ok {
			return fmt.Errorf("unknown module %q (see dashboard for ids)", args[0])
		}

		deltas := make(map[string]int, len(mod.Skills))
		for _, s := range mod.Skills {
			deltas[s] = 15
		}

		return applyCompletion(cmd, progress.Event{
			Timestamp:   time.Now().UTC(),
			Kind:        progress.KindModule,
			SubjectID:   mod.ID,
			Action:      "Completed " + mod.Title,
			SkillDeltas: deltas,
		})
	},
}

var completeLabCmd = &cobra.Command{
	Use:   "lab <id>",
	Short: "Mark a lab as completed",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		l, ok := catalog.LabByID(args[0])
		if !ok {
			return fmt.Errorf("unknown lab %q (see dashboard for ids)", args[0])
		}

		return applyCompletion(cmd, progress.Event{
			Timestamp: time.Now().UTC(),
			Kind:      progress.KindLab,
			SubjectID: l.ID,
			Action:    "Completed " + l.Title,
			SkillDeltas: map[string]int{
				"Prompt Design": 20,
			},
		})
	},
}

func applyCompletion(cmd *cobra.Command, event progress.Event) error {
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

	before := ledger.Snapshot()
	already := (event.Kind == progress.KindModule && before.HasModule(event.SubjectID)) ||
		(event.Kind == progress.KindLab && before.HasLab(event.SubjectID))

	after, err := ledger.Apply(ctx, event)
	if err != nil {
		return fmt.Errorf("record completion: %w", err)
	}

	if already {
		fmt.Println(theme.Hint.Render("Note: this was already in your completed list."))
	}

	fmt.Println(theme.Correct.Render("✓ ") + event.Action)
	fmt.Printf("XP: %d (+%d)   Level %d\n", after.XP, after.XP-before.XP, after.Level)
	if after.Level > before.Level {
		fmt.Println(theme.Correct.Render(fmt.Sprintf("Level up! You reached level %d.", after.Level)))
	}
	return nil
}
