package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/abhisek/focusloop/internal/contentgen"
	"github.com/abhisek/focusloop/internal/diagnosis"
	"github.com/abhisek/focusloop/internal/llm"
	"github.com/abhisek/focusloop/internal/mastery"
	"github.com/spf13/cobra"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Preview generated practice content for a topic (no database)",
	Long: `Build a concept map for a topic, generate one loop of practice content and
answer it interactively.

This is a stateless developer tool: no database, no mastery tracking, no
events. Useful for evaluating content quality and grading behaviour.`,
	RunE: runPreview,
}

func init() {
	previewCmd.Flags().String("topic", "", "Topic to practice (required)")
	previewCmd.Flags().String("modality", string(contentgen.ModalityQuiz), "Content modality")
	previewCmd.Flags().String("difficulty", string(mastery.DifficultyMedium), "Difficulty: easy, medium or hard")
	previewCmd.Flags().Bool("no-answer", false, "Print the content without asking for answers")
	_ = previewCmd.MarkFlagRequired("topic")
}

func runPreview(cmd *cobra.Command, args []string) error {
	topic, _ := cmd.Flags().GetString("topic")
	modalityVal, _ := cmd.Flags().GetString("modality")
	difficultyVal, _ := cmd.Flags().GetString("difficulty")
	noAnswer, _ := cmd.Flags().GetBool("no-answer")

	modality, err := contentgen.ParseModality(modalityVal)
	if err != nil {
		return err
	}
	difficulty, err := mastery.ParseDifficulty(difficultyVal)
	if err != nil {
		return err
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	log, err := newLogger(cfg)
	if err != nil {
		return err
	}

	// No audit repo: requests are only logged.
	ctx := cmd.Context()
	provider, err := llm.NewProvider(ctx, cfg.LLM, nil, log)
	if err != nil {
		return fmt.Errorf("LLM provider: %w", err)
	}
	if provider == nil {
		fmt.Println("No LLM provider configured; showing template content.")
	}
	gen := contentgen.NewGenerator(provider, cfg.Generator, cfg.LLM.Timeout, log)
	eval := diagnosis.NewEvaluator(provider, cfg.Evaluator, cfg.LLM.Timeout, log)

	cm, err := gen.BuildConceptMap(ctx, topic)
	if err != nil {
		return fmt.Errorf("concept map: %w", err)
	}
	fmt.Printf("Topic: %s\n", cm.Topic)
	for i, s := range cm.Subtopics {
		line := fmt.Sprintf("  %d. %s", i+1, s.Name)
		if len(s.Prerequisites) > 0 {
			line += " (after " + strings.Join(s.Prerequisites, ", ") + ")"
		}
		fmt.Println(line)
	}

	names := cm.Names()
	artifact, err := gen.GenerateArtifact(ctx, contentgen.ArtifactRequest{
		Topic:      topic,
		Difficulty: difficulty,
		Modality:   modality,
		Subtopics:  names[:min(len(names), 2)],
	})
	if err != nil {
		return fmt.Errorf("generate artifact: %w", err)
	}
	fmt.Printf("\n%s, %s, %d items (source: %s)\n\n", artifact.Kind, artifact.Difficulty, artifact.ItemCount(), artifact.Source)

	prompts := artifact.Prompts()
	scanner := bufio.NewScanner(os.Stdin)
	var correct int
	for i, prompt := range prompts {
		fmt.Printf("── Item %d/%d [%s] ──\n", i+1, len(prompts), artifact.ItemSubtopic(i))
		fmt.Println(prompt)
		if artifact.Kind == contentgen.KindQuiz {
			for j, c := range artifact.Quiz.Questions[i].Choices {
				fmt.Printf("  %d) %s\n", j+1, c)
			}
		}
		if noAnswer {
			if a := artifact.ItemAnswer(i); a != "" {
				fmt.Printf("Answer: %s\n", a)
			}
			fmt.Println()
			continue
		}

		fmt.Print("\nYour answer: ")
		started := time.Now()
		if !scanner.Scan() {
			fmt.Println("\n(input closed)")
			break
		}
		answer := strings.TrimSpace(scanner.Text())

		ev, err := eval.EvaluateAttempt(ctx, diagnosis.EvaluateRequest{
			Domain:         topic,
			QuestionText:   prompt,
			StudentAnswer:  answer,
			ExpectedAnswer: artifact.ItemAnswer(i),
			TimeSecs:       time.Since(started).Seconds(),
		})
		if err != nil {
			fmt.Printf("grading failed: %v\n\n", err)
			continue
		}
		if ev.Correctness == mastery.Correct {
			correct++
		}
		delta := mastery.MapToDelta(ev.GradedAttempt, mastery.DefaultDecayRate)
		fmt.Printf("%s (%s, reasoning %d/5, delta %+d) via %s\n",
			ev.Correctness, ev.AnswerStyle, ev.ReasoningQuality, delta.MasteryDelta, ev.Evaluator)
		if ev.Feedback != "" {
			fmt.Printf("Feedback: %s\n", ev.Feedback)
		}
		fmt.Println()
	}

	if !noAnswer {
		fmt.Printf("── Summary: %d/%d correct ──\n", correct, len(prompts))
	}
	return nil
}
