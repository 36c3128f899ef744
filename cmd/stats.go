package cmd

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/abhisek/focusloop/internal/clock"
	"github.com/abhisek/focusloop/internal/mastery"
	"github.com/abhisek/focusloop/internal/store"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats <student>",
	Short: "Show learning statistics for a learner",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		student := args[0]
		notesLimit, _ := cmd.Flags().GetInt("notes")

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

		ctx := cmd.Context()
		skills, err := mastery.NewLedger(st.SkillRepo(), clock.System{}, log).Skills(ctx, student)
		if err != nil {
			return err
		}
		grades, err := st.EventRepo().GradesAfter(ctx, student, 0, 0)
		if err != nil {
			return fmt.Errorf("load grades: %w", err)
		}
		if len(skills) == 0 && len(grades) == 0 {
			fmt.Printf("No activity recorded for %s.\n", student)
			return nil
		}

		bands := lo.CountValuesBy(skills, func(s *mastery.Skill) mastery.Confidence { return s.Confidence })
		mastered := lo.CountBy(skills, func(s *mastery.Skill) bool { return s.Mastery >= cfg.Engine.MasteryThreshold })
		fmt.Printf("Student:    %s\n", student)
		fmt.Printf("Skills:     %d (%d mastered; %d high, %d medium, %d low confidence)\n",
			len(skills), mastered,
			bands[mastery.ConfidenceHigh], bands[mastery.ConfidenceMedium], bands[mastery.ConfidenceLow])
		if len(skills) > 0 {
			avg := lo.SumBy(skills, func(s *mastery.Skill) float64 { return s.Mastery }) / float64(len(skills))
			fmt.Printf("Mastery:    %.1f average\n", avg)
		}

		if len(grades) > 0 {
			correct := lo.CountBy(grades, func(g store.GradeEventData) bool { return g.Correctness == string(mastery.Correct) })
			secs := lo.SumBy(grades, func(g store.GradeEventData) float64 { return g.TimeSecs })
			styles := lo.CountValuesBy(grades, func(g store.GradeEventData) string { return g.AnswerStyle })
			fmt.Printf("Attempts:   %d (%.0f%% correct, %.0fs average)\n",
				len(grades), float64(correct)/float64(len(grades))*100, secs/float64(len(grades)))
			fmt.Printf("Styles:     %s\n", formatCounts(styles))
			last := grades[len(grades)-1]
			fmt.Printf("Last graded %s\n", last.Timestamp.Local().Format(time.DateTime))
		}

		notes, err := st.NoteRepo().ListNotes(ctx, student, notesLimit)
		if err != nil {
			return fmt.Errorf("load notes: %w", err)
		}
		if len(notes) > 0 {
			fmt.Println("\nRecent notes:")
			for _, n := range notes {
				fmt.Printf("  %s  %-22s %s\n", n.CreatedAt.Local().Format(time.DateOnly), n.Kind, n.Detail)
			}
		}
		return nil
	},
}

func init() {
	statsCmd.Flags().Int("notes", 10, "Number of recent notes to show")
}

func formatCounts(counts map[string]int) string {
	keys := lo.Keys(counts)
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s %d", orDash(k), counts[k]))
	}
	return strings.Join(parts, ", ")
}
