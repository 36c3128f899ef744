package urgency

import (
	"math/rand/v2"
	"testing"
	"time"

	"github.com/abhisek/focusloop/internal/apperr"
	"github.com/abhisek/focusloop/internal/mastery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2026, 4, 20, 12, 0, 0, 0, time.UTC)

func skill(domain string, m, decay float64, daysAgo float64) *mastery.Skill {
	return &mastery.Skill{
		ID:        "id-" + domain,
		Domain:    domain,
		Mastery:   m,
		DecayRate: decay,
		LastSeen:  now.Add(-time.Duration(daysAgo * 24 * float64(time.Hour))),
	}
}

func TestSelectNextFractionsOverMultiplication(t *testing.T) {
	skills := []*mastery.Skill{
		skill("multiplication", 80, 0.1, 1),
		skill("fractions", 20, 0.2, 10),
	}

	got, err := SelectNext(skills, now)
	require.NoError(t, err)
	assert.Equal(t, "fractions", got.Skill.Domain)
	assert.Equal(t, mastery.DifficultyEasy, got.Difficulty)
	assert.InDelta(t, 38.86, got.Urgency, 0.01)

	ranked := Rank(skills, now)
	require.Len(t, ranked, 2)
	assert.InDelta(t, 2.29, ranked[1].Urgency, 0.01)
}

func TestSelectNextEmpty(t *testing.T) {
	_, err := SelectNext(nil, now)
	require.ErrorIs(t, err, apperr.ErrNoSkillsAvailable)
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
}

func TestDaysSinceFutureIsZero(t *testing.T) {
	assert.Equal(t, 0.0, DaysSince(now.Add(time.Hour), now))
	assert.InDelta(t, 1.5, DaysSince(now.Add(-36*time.Hour), now), 1e-9)

	future := skill("geometry", 50, 0.2, -3)
	assert.InDelta(t, 10.0, Score(future, now), 1e-9)
}

func TestRankTieBreaks(t *testing.T) {
	// (100-50)*0.2 == (100-60)*0.25 == 10 at zero staleness.
	skills := []*mastery.Skill{
		skill("zeta", 60, 0.25, 0),
		skill("beta", 50, 0.2, 0),
		skill("alpha", 50, 0.2, 0),
	}
	ranked := Rank(skills, now)
	require.Len(t, ranked, 3)
	assert.Equal(t, "alpha", ranked[0].Skill.Domain)
	assert.Equal(t, "beta", ranked[1].Skill.Domain)
	assert.Equal(t, "zeta", ranked[2].Skill.Domain)
}

func TestSelectNextDeterministicAcrossOrderings(t *testing.T) {
	skills := []*mastery.Skill{
		skill("a", 10, 0.1, 2),
		skill("b", 40, 0.3, 5),
		skill("c", 10, 0.1, 2),
		skill("d", 90, 0.5, 30),
		skill("e", 70, 0.05, 0),
	}
	want, err := SelectNext(skills, now)
	require.NoError(t, err)

	rng := rand.New(rand.NewPCG(3, 5))
	for i := 0; i < 50; i++ {
		shuffled := append([]*mastery.Skill(nil), skills...)
		rng.Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })
		got, err := SelectNext(shuffled, now)
		require.NoError(t, err)
		assert.Equal(t, want.Skill.Domain, got.Skill.Domain)
	}
}

func TestStalenessNeverLowersRank(t *testing.T) {
	others := []*mastery.Skill{
		skill("a", 30, 0.2, 3),
		skill("b", 60, 0.4, 1),
		skill("c", 10, 0.1, 8),
	}
	position := func(days float64) int {
		target := skill("target", 45, 0.2, days)
		for i, r := range Rank(append([]*mastery.Skill{target}, others...), now) {
			if r.Skill.Domain == "target" {
				return i
			}
		}
		t.Fatal("target missing from ranking")
		return -1
	}

	prev := position(0)
	for days := 1.0; days <= 60; days++ {
		pos := position(days)
		assert.LessOrEqual(t, pos, prev, "rank worsened at %v days", days)
		prev = pos
	}
	assert.Equal(t, 0, prev)
}

func TestDifficultyBands(t *testing.T) {
	for _, tt := range []struct {
		mastery float64
		want    mastery.Difficulty
	}{
		{0, mastery.DifficultyEasy},
		{29, mastery.DifficultyEasy},
		{30, mastery.DifficultyMedium},
		{70, mastery.DifficultyMedium},
		{71, mastery.DifficultyHard},
	} {
		got, err := SelectNext([]*mastery.Skill{skill("x", tt.mastery, 0.2, 0)}, now)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got.Difficulty, "mastery %v", tt.mastery)
	}
}
