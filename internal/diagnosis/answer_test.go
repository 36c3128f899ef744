package diagnosis

import "testing"

func TestMatchAnswer(t *testing.T) {
	tests := []struct {
		answer, expected string
		want             AnswerMatch
	}{
		{"7", "7", MatchCorrect},
		{"007", "7", MatchCorrect},
		{" 3.50 ", "3.5", MatchCorrect},
		{"2/4", "1/2", MatchCorrect},
		{"0.5", "1/2", MatchCorrect},
		{"-3/6", "-1/2", MatchCorrect},
		{"Photosynthesis", "photosynthesis", MatchCorrect},
		{"the  Nile", "The Nile", MatchCorrect},
		{"1/3", "1/2", MatchWrong},
		{"8", "7", MatchWrong},
		{"1/0", "1/2", MatchUnknown},
		{"1/8 because 8 is bigger", "1/4", MatchUnknown},
		{"the amazon", "The Nile", MatchUnknown},
		{"7", "", MatchUnknown},
		{"", "7", MatchUnknown},
	}
	for _, tt := range tests {
		if got := MatchAnswer(tt.answer, tt.expected); got != tt.want {
			t.Errorf("MatchAnswer(%q, %q) = %v, want %v", tt.answer, tt.expected, got, tt.want)
		}
	}
}
