package cmd

import (
	"fmt"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/spf13/cobra"

	"github.com/techskyline/academy/internal/catalog"
	"github.com/techskyline/academy/internal/progress"
	"github.com/techskyline/academy/internal/screens/quizplay"
	"github.com/techskyline/academy/internal/ui/theme"
)

// quizPassRatio is the share of correct answers needed for skill deltas.
const quizPassRatio = 0.6

var quizCmd = &cobra.Command{
	Use:   "quiz <module-id>",
	Short: "Take a generated quiz for a module",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		mod, ok := catalog.ModuleByID(args[0])
		if !ok {
			return fmt.Errorf("unknown module %q (see dashboard for ids)", args[0])
		}

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		tut := buildTutor(ctx, st)
		if tut == nil {
			return fmt.Errorf("quizzes need an AI provider; set ACADEMY_LLM_PROVIDER and an API key")
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

		model := quizplay.New(tut, mod, before.Level, before.XP)
		if _, err := tea.NewProgram(model).Run(); err != nil {
			return fmt.Errorf("run quiz: %w", err)
		}

		result := model.Result()
		if !result.Completed {
			fmt.Println(theme.Hint.Render("Quiz not finished; nothing recorded."))
			return nil
		}

		event := progress.Event{
			Timestamp: time.Now().UTC(),
			Kind:      progress.KindQuiz,
			SubjectID: mod.ID,
			Action:    fmt.Sprintf("Scored %d/%d on %s quiz", result.Correct, result.Total, mod.Title),
		}

		passed := result.Total > 0 && float64(result.Correct) >= quizPassRatio*float64(result.Total)
		if passed {
			event.SkillDeltas = make(map[string]int, len(mod.Skills))
			for _, s := range mod.Skills {
				event.SkillDeltas[s] = 5
			}
		}

		after, err := ledger.Apply(ctx, event)
		if err != nil {
			return fmt.Errorf("record quiz: %w", err)
		}

		fmt.Printf("Recorded: %s\n", event.Action)
		fmt.Printf("XP: %d   Level %d\n", after.XP, after.Level)
		if !passed {
			fmt.Println(theme.Hint.Render("Score 60% or better to earn skill points."))
		}
		return nil
	},
}
