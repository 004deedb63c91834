package cmd

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/techskyline/academy/internal/catalog"
	"github.com/techskyline/academy/internal/progress"
	"github.com/techskyline/academy/internal/ui/theme"
)

var evaluateCmd = &cobra.Command{
	Use:   "evaluate <lab-id>",
	Short: "Get structured AI feedback on your lab work",
	Long:  "Reads your prompt from --file or stdin and asks the AI for a structured evaluation. A failed evaluation records nothing; there is no such thing as a zero score for an unreviewed submission.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		l, ok := catalog.LabByID(args[0])
		if !ok {
			return fmt.Errorf("unknown lab %q (see dashboard for ids)", args[0])
		}

		submission, err := readSubmission(cmd)
		if err != nil {
			return err
		}
		if submission == "" {
			return fmt.Errorf("nothing to evaluate; pass --file or pipe your prompt on stdin")
		}

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		tut := buildTutor(ctx, st)
		if tut == nil {
			return fmt.Errorf("evaluation needs an AI provider; set ACADEMY_LLM_PROVIDER and an API key")
		}

		ev, ok := tut.Evaluate(ctx, l.Overview, submission)
		if !ok {
			fmt.Println(theme.Hint.Render("The AI could not evaluate this submission. Nothing was recorded; try again."))
			return nil
		}

		fmt.Println(theme.Title.Render(fmt.Sprintf("Score: %d/100", ev.Score)))
		fmt.Println()
		fmt.Println(theme.Body.Render(ev.Feedback))
		if len(ev.Strengths) > 0 {
			fmt.Println()
			fmt.Println(theme.Correct.Render("Strengths"))
			for _, s := range ev.Strengths {
				fmt.Println("  + " + s)
			}
		}
		if len(ev.Improvements) > 0 {
			fmt.Println()
			fmt.Println(theme.Incorrect.Render("Improvements"))
			for _, s := range ev.Improvements {
				fmt.Println("  - " + s)
			}
		}

		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		ledger, err := loadLedger(ctx, st, cfg)
		if err != nil {
			return err
		}

		deltas := map[string]int{}
		if ev.Score > 50 {
			deltas["Prompt Design"] = ev.Score / 20
		}

		if _, err := ledger.Apply(ctx, progress.Event{
			Timestamp:   time.Now().UTC(),
			Kind:        progress.KindEvaluation,
			SubjectID:   l.ID,
			Action:      fmt.Sprintf("Evaluated %s: %d/100", l.Title, ev.Score),
			SkillDeltas: deltas,
		}); err != nil {
			return fmt.Errorf("record evaluation: %w", err)
		}
		return nil
	},
}

func readSubmission(cmd *cobra.Command) (string, error) {
	if path, _ := cmd.Flags().GetString("file"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("read submission: %w", err)
		}
		return string(data), nil
	}

	info, err := os.Stdin.Stat()
	if err != nil || info.Mode()&os.ModeCharDevice != 0 {
		return "", nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return string(data), nil
}

func init() {
	evaluateCmd.Flags().StringP("file", "f", "", "File containing the prompt to evaluate")
}
