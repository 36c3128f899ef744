package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/abhisek/focusloop/internal/config"
	"github.com/abhisek/focusloop/internal/contentgen"
	"github.com/abhisek/focusloop/internal/session"
	"github.com/abhisek/focusloop/internal/spacedrep"
	"github.com/abhisek/focusloop/internal/store"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var sessionCmd = &cobra.Command{
	Use:   "session",
	Short: "Inspect focus sessions",
}

var sessionShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a focus session with its loops and review plan",
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

		s, err := offlineOrchestrator(st, cfg, log).Get(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		printSession(s, time.Now())
		return nil
	},
}

func init() {
	sessionCmd.AddCommand(sessionShowCmd)
}

// offlineOrchestrator builds an orchestrator that writes straight to the
// store. It never generates LLM content.
func offlineOrchestrator(st *store.Store, cfg *config.Config, log logrus.FieldLogger) *session.Orchestrator {
	return session.NewOrchestrator(session.Deps{
		Repo:      st.SessionRepo(),
		Generator: contentgen.NewTemplate(cfg.Generator.ItemsPerArtifact),
		Planner:   spacedrep.NewPlanner(cfg.Review),
		Recorder:  st.EventRepo(),
		Log:       log,
	}, cfg.Session)
}

func printSession(s *session.Session, now time.Time) {
	fmt.Printf("Session:     %s\n", s.ID)
	fmt.Printf("Student:     %s\n", s.StudentID)
	fmt.Printf("Topic:       %s (%s)\n", s.Topic, s.Modality)
	fmt.Printf("Status:      %s\n", s.Status)
	if s.CancelReason != "" {
		fmt.Printf("Reason:      %s\n", s.CancelReason)
	}
	fmt.Printf("Started:     %s\n", s.StartTime.Local().Format(time.DateTime))
	if s.EndTime != nil {
		fmt.Printf("Ended:       %s (%s)\n", s.EndTime.Local().Format(time.DateTime),
			s.EndTime.Sub(s.StartTime).Round(time.Second))
	}
	fmt.Printf("Target:      %s\n", time.Duration(s.TargetDurationSeconds)*time.Second)
	fmt.Printf("Difficulty:  %s -> %s\n", s.InitialDifficulty, s.CurrentDifficulty)

	if len(s.Loops) > 0 {
		fmt.Printf("\n%-4s  %-6s  %5s  %8s  %10s  %11s  %s\n",
			"Loop", "Sealed", "Items", "Accuracy", "Engagement", "Frustration", "Adjustment")
		fmt.Println(strings.Repeat("─", 80))
		for _, l := range s.Loops {
			acc, eng, fru := "-", "-", "-"
			if p := l.Performance; p != nil {
				acc = fmt.Sprintf("%.0f%%", p.Accuracy*100)
				eng = fmt.Sprintf("%.2f", p.EngagementLevel)
				fru = fmt.Sprintf("%.2f", p.FrustrationLevel)
			}
			adj := "-"
			if l.Adjustment != nil {
				adj = fmt.Sprintf("%s -> %s", l.Adjustment.From, l.Adjustment.To)
			}
			fmt.Printf("%-4d  %-6t  %5d  %8s  %10s  %11s  %s\n",
				l.Number, l.Sealed, l.Artifact.ItemCount(), acc, eng, fru, adj)
		}
	}

	if len(s.SubtopicMastery) > 0 && s.ConceptMap != nil {
		fmt.Println("\nSubtopic mastery:")
		for _, name := range s.ConceptMap.Names() {
			if m, ok := s.SubtopicMastery[name]; ok {
				fmt.Printf("  %-32s %5.1f\n", name, m)
			}
		}
	}

	plan := s.ReviewPlan
	if plan == nil {
		return
	}
	fmt.Printf("\nReview plan: %s at %s difficulty, estimated gain %.1f\n",
		plan.RecommendedModality, plan.TargetDifficulty, plan.EstimatedMasteryGain)
	fmt.Printf("  %s\n", plan.Reasoning)
	if len(plan.ReviewSubtopics) > 0 {
		fmt.Printf("  Review: %s\n", strings.Join(plan.ReviewSubtopics, ", "))
	}
	if len(plan.NewSubtopics) > 0 {
		fmt.Printf("  New:    %s\n", strings.Join(plan.NewSubtopics, ", "))
	}
	for _, it := range plan.DueItems {
		fmt.Printf("  %-32s stage %d, every %2dd, due %s (%s)\n",
			it.Subtopic, it.Stage, it.IntervalDays,
			it.DueAt.Local().Format(time.DateOnly), spacedrep.Status(it, now))
	}
}
