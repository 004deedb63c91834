package cmd

import (
	"fmt"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/spf13/cobra"

	"github.com/techskyline/academy/internal/catalog"
	"github.com/techskyline/academy/internal/progress"
	labscreen "github.com/techskyline/academy/internal/screens/lab"
	"github.com/techskyline/academy/internal/ui/theme"
)

var labCmd = &cobra.Command{
	Use:   "lab <lab-id>",
	Short: "Open an interactive prompt lab",
	Long:  "Opens the lab in the terminal. With --prompt, runs the prompt headless against the lab's system prompt and prints the output.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		l, ok := catalog.LabByID(args[0])
		if !ok {
			return fmt.Errorf("unknown lab %q (see dashboard for ids)", args[0])
		}

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		tut := buildTutor(ctx, st)
		if tut == nil {
			return fmt.Errorf("labs need an AI provider; set ACADEMY_LLM_PROVIDER and an API key")
		}

		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		ledger, err := loadLedger(ctx, st, cfg)
		if err != nil {
			return err
		}
		before := ledger.Snapshot()

		headlessPrompt, _ := cmd.Flags().GetString("prompt")

		var ran bool

		if headlessPrompt != "" {
			fmt.Println(tut.RunPrompt(ctx, l.SystemPrompt, headlessPrompt))
			ran = true
		} else {
			model := labscreen.New(tut, l, before.Level, before.XP)
			if _, err := tea.NewProgram(model).Run(); err != nil {
				return fmt.Errorf("run lab: %w", err)
			}
			ran = model.Result().Ran
		}

		if !ran {
			fmt.Println(theme.Hint.Render("No prompt was run; the lab stays open."))
			return nil
		}

		if before.HasLab(l.ID) {
			return nil
		}

		after, err := ledger.Apply(ctx, progress.Event{
			Timestamp: time.Now().UTC(),
			Kind:      progress.KindLab,
			SubjectID: l.ID,
			Action:    "Completed " + l.Title,
			SkillDeltas: map[string]int{
				"Prompt Design": 20,
			},
		})
		if err != nil {
			return fmt.Errorf("record lab: %w", err)
		}

		fmt.Println(theme.Correct.Render("✓ ") + "Lab completed: " + l.Title)
		fmt.Printf("XP: %d   Level %d\n", after.XP, after.Level)
		return nil
	},
}

func init() {
	labCmd.Flags().String("prompt", "", "Run this prompt headless instead of opening the TUI")
}
