package contentgen

import (
	"fmt"
	"maps"
	"slices"
	"strings"
)

const artifactSystemPrompt = `You are a tutor creating short practice material for a single learning loop.

Rules:
- Produce exactly the requested number of items, spread across the listed subtopics.
- Every item must name one of the listed subtopics in its "subtopic" field, spelled exactly as given.
- Match the difficulty: easy items check recall, medium items ask for application, hard items combine ideas or probe edge cases.
- Use plain text. No markdown, no LaTeX.
- Keep prompts under 300 characters.
- For quizzes, either give 3-4 choices with the answer among them, or leave choices empty for an open question.
- When a rationale is required, phrase every prompt so the learner must explain their reasoning.
- Target the learner's known misconceptions where relevant.
- Do not repeat any prompt from the "already shown" list.`

const conceptMapSystemPrompt = `You are a curriculum designer. Break the topic into 3-8 subtopics ordered from foundational to advanced.

Rules:
- Subtopic names are short noun phrases, unique within the map.
- Prerequisites may only name subtopics that appear earlier in the list.
- The first subtopic has no prerequisites.`

func buildArtifactMessage(req ArtifactRequest, cfg Config) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Topic: %s\n", req.Topic)
	fmt.Fprintf(&b, "Format: %s\n", req.Modality)
	fmt.Fprintf(&b, "Difficulty: %s\n", req.Difficulty)
	fmt.Fprintf(&b, "Items: %d\n", cfg.ItemsPerArtifact)
	fmt.Fprintf(&b, "Subtopics: %s\n", strings.Join(req.Subtopics, ", "))
	fmt.Fprintf(&b, "Rationale required: %t\n", req.Modality == ModalityExplain)

	if req.Student.TypicalAnswerStyle != "" {
		fmt.Fprintf(&b, "Learner usually answers by: %s\n", req.Student.TypicalAnswerStyle)
	}
	if len(req.Student.SubtopicMastery) > 0 {
		b.WriteString("\nSubtopic mastery (0-100):\n")
		for _, name := range slices.Sorted(maps.Keys(req.Student.SubtopicMastery)) {
			fmt.Fprintf(&b, "- %s: %.0f\n", name, req.Student.SubtopicMastery[name])
		}
	}

	b.WriteString("\nKnown misconceptions:\n")
	b.WriteString(buildList(req.Student.Misconceptions, cfg.MaxMisconceptions))

	b.WriteString("\nAlready shown in this session:\n")
	b.WriteString(buildList(req.Student.Avoid, cfg.MaxAvoid))

	return b.String()
}

func buildConceptMapMessage(topic string) string {
	return fmt.Sprintf("Topic: %s\n", topic)
}

// buildList formats the most recent max entries as a bulleted list.
func buildList(entries []string, max int) string {
	if len(entries) == 0 {
		return "None\n"
	}
	if len(entries) > max {
		entries = entries[len(entries)-max:]
	}
	var b strings.Builder
	for _, e := range entries {
		fmt.Fprintf(&b, "- %s\n", e)
	}
	return b.String()
}
