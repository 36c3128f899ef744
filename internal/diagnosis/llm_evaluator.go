package diagnosis

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"text/template"

	"github.com/abhisek/focusloop/internal/llm"
	"github.com/abhisek/focusloop/internal/mastery"
)

// EvaluatorConfig holds configuration for the LLM evaluator.
type EvaluatorConfig struct {
	MaxTokens   int     `mapstructure:"max_tokens"`
	Temperature float64 `mapstructure:"temperature"`
}

// DefaultEvaluatorConfig returns sensible defaults.
func DefaultEvaluatorConfig() EvaluatorConfig {
	return EvaluatorConfig{
		MaxTokens:   384,
		Temperature: 0.2,
	}
}

// LLMEvaluator grades answers with an LLM.
type LLMEvaluator struct {
	provider llm.Provider
	cfg      EvaluatorConfig
}

// NewLLMEvaluator creates an LLM-based evaluator.
func NewLLMEvaluator(provider llm.Provider, cfg EvaluatorConfig) *LLMEvaluator {
	if cfg.MaxTokens <= 0 {
		cfg.MaxTokens = DefaultEvaluatorConfig().MaxTokens
	}
	return &LLMEvaluator{provider: provider, cfg: cfg}
}

// evaluationOutput is the raw LLM response.
type evaluationOutput struct {
	Correctness           string `json:"correctness"`
	ReasoningQuality      int    `json:"reasoning_quality"`
	AnswerStyle           string `json:"answer_style"`
	ConfidenceLevel       string `json:"confidence_level"`
	MisunderstandingLabel string `json:"misunderstanding_label"`
	Feedback              string `json:"feedback"`
}

type promptData struct {
	EvaluateRequest
	Candidates []*Misconception
}

// EvaluateAttempt sends the answer to the LLM. A misunderstanding label
// outside the candidate list is dropped.
func (e *LLMEvaluator) EvaluateAttempt(ctx context.Context, req EvaluateRequest) (*Evaluation, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	ctx = llm.WithPurpose(ctx, llm.PurposeEvaluation)

	candidates := Candidates(req.Category)
	userMsg, err := buildEvaluationMessage(promptData{EvaluateRequest: req, Candidates: candidates})
	if err != nil {
		return nil, fmt.Errorf("build evaluation prompt: %w", err)
	}

	r := llm.UserRequest(evaluationSystemPrompt, userMsg, EvaluationSchema)
	r.MaxTokens = e.cfg.MaxTokens
	r.Temperature = e.cfg.Temperature

	resp, err := e.provider.Generate(ctx, r)
	if err != nil {
		return nil, fmt.Errorf("LLM evaluation failed: %w", err)
	}

	var raw evaluationOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse evaluation response: %w", err)
	}

	label := raw.MisunderstandingLabel
	if label != "" && !containsID(candidates, label) {
		label = ""
	}

	attempt := mastery.GradedAttempt{
		Correctness:           mastery.Correctness(raw.Correctness),
		ReasoningQuality:      raw.ReasoningQuality,
		AnswerStyle:           mastery.AnswerStyle(raw.AnswerStyle),
		ConfidenceLevel:       mastery.Confidence(raw.ConfidenceLevel),
		MisunderstandingLabel: label,
		Feedback:              raw.Feedback,
	}
	if err := attempt.Validate(); err != nil {
		return nil, &llm.ErrInvalidResponse{Content: resp.Content, Err: err}
	}
	return &Evaluation{GradedAttempt: attempt, Evaluator: "llm"}, nil
}

func containsID(candidates []*Misconception, id string) bool {
	for _, c := range candidates {
		if c.ID == id {
			return true
		}
	}
	return false
}

const evaluationSystemPrompt = `You are an experienced tutor grading a single answer from a learner.

Instructions:
- correctness: "correct", "incorrect" or "partial" (right idea, incomplete or with a slip).
- reasoning_quality: 1 for a pure guess up to 5 for an expert explanation. Judge the reasoning shown, not only the final answer.
- answer_style: "skip" for no real attempt, "guess" when no reasoning is visible, "rushed" when the answer is hasty or careless, otherwise "worked".
- confidence_level: how sure the learner appears, judged from wording and timing.
- misunderstanding_label: if the error clearly matches one of the listed misconceptions, return its ID; otherwise return an empty string. Do NOT invent new IDs.
- feedback: one or two encouraging sentences addressed to the learner.`

var evaluationUserTemplate = template.Must(template.New("evaluation").Parse(`Skill: {{.Domain}}{{if .Category}} ({{.Category}}){{end}}
Question: {{.QuestionText}}
{{if .ExpectedAnswer}}Expected answer: {{.ExpectedAnswer}}
{{end}}Learner's answer: {{.StudentAnswer}}
Time taken: {{printf "%.0f" .TimeSecs}} seconds
Hints used: {{.HintsUsed}}
Current mastery: {{printf "%.0f" .SkillMastery}}/100

Known misconceptions:
{{range .Candidates}}- {{.ID}}: {{.Description}}
{{end}}`))

func buildEvaluationMessage(data promptData) (string, error) {
	var buf bytes.Buffer
	if err := evaluationUserTemplate.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
