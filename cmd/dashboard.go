package cmd

import (
	"fmt"
	"sort"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/spf13/cobra"

	"github.com/techskyline/academy/internal/catalog"
	"github.com/techskyline/academy/internal/progress"
	"github.com/techskyline/academy/internal/ui/components"
	"github.com/techskyline/academy/internal/ui/theme"
)

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Show your progress overview",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDashboard(cmd)
	},
}

func runDashboard(cmd *cobra.Command) error {
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

	fmt.Println(renderDashboard(ledger.Snapshot()))
	return nil
}

func renderDashboard(state progress.State) string {
	var b strings.Builder

	title := theme.Title.Render("TechSkyline Academy")
	sub := theme.Subtitle.Render(fmt.Sprintf("%s · Level %d · %d XP", state.Track, state.Level, state.XP))
	b.WriteString(title + "\n" + sub + "\n\n")

	b.WriteString(sectionHeader("Curriculum"))
	for _, m := range catalog.Modules() {
		b.WriteString(checkLine(state.HasModule(m.ID), m.Title) + "\n")
	}
	for _, l := range catalog.Labs() {
		b.WriteString(checkLine(state.HasLab(l.ID), l.Title+"  "+theme.LabBadge.Render("LAB")) + "\n")
	}

	b.WriteString("\n" + sectionHeader("Skills"))
	names := make([]string, 0, len(state.Skills))
	for name := range state.Skills {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		b.WriteString(components.NewSkillMeter(name, state.Skills[name], 56).View() + "\n")
	}

	if len(state.ActivityLog) > 0 {
		b.WriteString("\n" + sectionHeader("Recent activity"))
		shown := state.ActivityLog
		if len(shown) > 8 {
			shown = shown[:8]
		}
		for _, a := range shown {
			line := fmt.Sprintf("%s  %s",
				a.Timestamp.Local().Format("Jan 02 15:04"), a.Action)
			b.WriteString(theme.Hint.Render(line) + "\n")
		}
	}

	if len(state.Certificates) > 0 {
		b.WriteString("\n" + sectionHeader("Certificates"))
		for _, id := range state.Certificates {
			b.WriteString(theme.Correct.Render("◆ "+id) + "\n")
		}
	}

	return lipgloss.NewStyle().Padding(0, 2).Render(b.String())
}

func sectionHeader(name string) string {
	return lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(name) + "\n"
}

func checkLine(done bool, label string) string {
	if done {
		return theme.Correct.Render("✓ ") + theme.Body.Render(label)
	}
	return theme.Hint.Render("○ ") + theme.Body.Render(label)
}
