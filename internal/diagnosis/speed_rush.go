package diagnosis

import "github.com/abhisek/focusloop/internal/mastery"

// SpeedRushThresholdSecs is the response time (exclusive) under which an
// answer counts as rushed.
const SpeedRushThresholdSecs = 5.0

// SpeedRushClassifier flags answers submitted too quickly.
type SpeedRushClassifier struct{}

func (c *SpeedRushClassifier) Name() string { return "speed-rush" }

func (c *SpeedRushClassifier) Classify(req *EvaluateRequest) (mastery.AnswerStyle, bool) {
	if req.TimeSecs < SpeedRushThresholdSecs {
		return mastery.StyleRushed, true
	}
	return "", false
}
