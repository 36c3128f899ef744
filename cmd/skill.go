package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/abhisek/focusloop/internal/clock"
	"github.com/abhisek/focusloop/internal/mastery"
	"github.com/abhisek/focusloop/internal/urgency"
	"github.com/spf13/cobra"
)

var skillCmd = &cobra.Command{
	Use:   "skill",
	Short: "Browse the curriculum and learner skills",
}

var skillListCmd = &cobra.Command{
	Use:   "list",
	Short: "List curriculum domains in prerequisite order",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		cur, err := cfg.LoadCurriculum()
		if err != nil {
			return err
		}
		category, _ := cmd.Flags().GetString("category")

		fmt.Printf("%-24s  %-32s  %-11s  %s\n", "Domain", "Name", "Category", "Prerequisites")
		fmt.Println(strings.Repeat("─", 100))

		n := 0
		for _, e := range cur.TopologicalOrder() {
			if category != "" && e.Category != category {
				continue
			}
			n++
			fmt.Printf("%-24s  %-32s  %-11s  %s\n",
				e.Domain, truncate(e.DisplayName, 32), e.Category, strings.Join(e.Prerequisites, ", "))
		}
		if n == 0 && category != "" {
			return fmt.Errorf("no domains found for category %q", category)
		}
		fmt.Printf("\n%d domains\n", n)
		return nil
	},
}

var skillShowCmd = &cobra.Command{
	Use:   "show <student>",
	Short: "Show a learner's skills ranked by practice urgency",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		log, err := newLogger(cfg)
		if err != nil {
			return err
		}
		st, err := openStore(cmd, cfg)
		if err != nil {
			return err
		}
		defer st.Close()

		ledger := mastery.NewLedger(st.SkillRepo(), clock.System{}, log)
		skills, err := ledger.Skills(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		if len(skills) == 0 {
			fmt.Printf("No skills recorded for %s. Seed them with POST /api/v1/students/%s/seed.\n", args[0], args[0])
			return nil
		}

		now := time.Now()
		fmt.Printf("%-24s  %7s  %-6s  %5s  %8s  %-7s  %8s  %s\n",
			"Domain", "Mastery", "Conf", "Decay", "Accuracy", "Style", "Urgency", "Last seen")
		fmt.Println(strings.Repeat("─", 100))
		for _, r := range urgency.Rank(skills, now) {
			s := r.Skill
			fmt.Printf("%-24s  %7.1f  %-6s  %5.2f  %7.0f%%  %-7s  %8.2f  %s\n",
				s.Domain, s.Mastery, s.Confidence, s.DecayRate, s.Accuracy()*100,
				orDash(string(s.TypicalAnswerStyle)), r.Urgency, formatLastSeen(s.LastSeen, now))
		}
		return nil
	},
}

func init() {
	skillListCmd.Flags().String("category", "", "Filter by category (factual, procedural or conceptual)")

	skillCmd.AddCommand(skillListCmd)
	skillCmd.AddCommand(skillShowCmd)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-3] + "..."
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func formatLastSeen(t, now time.Time) string {
	if t.IsZero() {
		return "never"
	}
	d := urgency.DaysSince(t, now)
	if d < 1 {
		return "today"
	}
	return fmt.Sprintf("%.0fd ago", d)
}
