package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/denisok6893-rgb/roommate-matching/internal/domain"
)

const eps = 1e-9

func budget(lo, hi float64) (*float64, *float64) {
	return &lo, &hi
}

func withBudget(p domain.Profile, lo, hi float64) domain.Profile {
	p.BudgetMin, p.BudgetMax = budget(lo, hi)
	return p
}

func TestSleepScore(t *testing.T) {
	tests := []struct {
		name string
		a, b domain.SleepSchedule
		want float64
	}{
		{"identical", domain.SleepNightOwl, domain.SleepNightOwl, 20},
		{"adjacent", domain.SleepEarlyBird, domain.SleepModerate, 12},
		{"opposite", domain.SleepEarlyBird, domain.SleepNightOwl, 4},
		{"flexible left", domain.SleepFlexible, domain.SleepNightOwl, 18},
		{"flexible right", domain.SleepModerate, domain.SleepFlexible, 18},
		{"both flexible", domain.SleepFlexible, domain.SleepFlexible, 18},
		{"unknown value", "SIESTA", domain.SleepModerate, 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, sleepScore(tt.a, tt.b, 20), eps)
			assert.InDelta(t, tt.want, sleepScore(tt.b, tt.a, 20), eps)
		})
	}
}

func TestLevelScore(t *testing.T) {
	tests := []struct {
		a, b int
		want float64
	}{
		{3, 3, 15},
		{2, 3, 12},
		{1, 3, 9},
		{2, 5, 6},
		{1, 5, 3},
		// out of range levels clamp to 1..5
		{0, 5, 3},
		{-4, 9, 3},
		{7, 5, 15},
	}
	for _, tt := range tests {
		assert.InDelta(t, tt.want, levelScore(tt.a, tt.b, 15), eps, "levels %d vs %d", tt.a, tt.b)
	}
}

func TestBudgetScore(t *testing.T) {
	base := domain.Profile{}

	tests := []struct {
		name string
		a, b domain.Profile
		want float64
	}{
		{"missing on one side", withBudget(base, 50, 150), base, 12},
		{"missing on both sides", base, base, 12},
		{"partial overlap", withBudget(base, 50, 150), withBudget(base, 100, 300), 9},
		{"identical ranges", withBudget(base, 80, 120), withBudget(base, 80, 120), 15},
		{"nested range", withBudget(base, 0, 400), withBudget(base, 100, 200), 15 * (0.4 + 100.0/250.0*0.6)},
		{"zero width equal", withBudget(base, 100, 100), withBudget(base, 100, 100), 15},
		{"touching", withBudget(base, 50, 100), withBudget(base, 100, 200), 6},
		{"far apart", withBudget(base, 50, 60), withBudget(base, 200, 210), 3},
		{"small gap within tolerance", withBudget(base, 50, 150), withBudget(base, 160, 300), 6},
		{"reversed bounds", withBudget(base, 150, 50), withBudget(base, 300, 100), 9},
		{"zero is a real bound", withBudget(base, 0, 0), withBudget(base, 0, 0), 15},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, budgetScore(tt.a, tt.b, 15), eps)
			assert.InDelta(t, tt.want, budgetScore(tt.b, tt.a, 15), eps)
		})
	}
}

func TestInterestsScore(t *testing.T) {
	assert.InDelta(t, 8.0/3.0, interestsScore([]string{"music", "art"}, []string{"music", "travel"}, 8), eps)
	assert.InDelta(t, 8, interestsScore([]string{" Music ", "ART"}, []string{"art", "music"}, 8), eps)
	assert.InDelta(t, 4, interestsScore(nil, []string{"music"}, 8), eps)
	assert.InDelta(t, 4, interestsScore([]string{"music"}, []string{}, 8), eps)
	assert.InDelta(t, 0, interestsScore([]string{"hiking"}, []string{"gaming"}, 8), eps)
	// duplicates collapse into one set entry
	assert.InDelta(t, 8, interestsScore([]string{"music", "Music"}, []string{"music"}, 8), eps)
}

func TestLanguagesScore(t *testing.T) {
	assert.InDelta(t, 2.5, languagesScore([]string{"English"}, []string{"English", "German"}, 5), eps)
	assert.InDelta(t, 5, languagesScore([]string{"english", "GERMAN"}, []string{"English", "German", "Dutch"}, 5), eps)
	assert.InDelta(t, 2.5, languagesScore(nil, []string{"English"}, 5), eps)

	t.Run("no shared language is a cliff", func(t *testing.T) {
		// Unlike the other factors there is no partial credit: an empty list
		// scores 2.5 but two disjoint lists score 0.
		assert.Zero(t, languagesScore([]string{"French"}, []string{"German"}, 5))
		assert.Greater(t, languagesScore(nil, []string{"German"}, 5), languagesScore([]string{"French"}, []string{"German"}, 5))
	})
}

func TestVerificationScore(t *testing.T) {
	tests := []struct {
		a, b domain.VerificationLevel
		want float64
	}{
		{domain.VerificationNone, domain.VerificationNone, 0},
		{domain.VerificationBackground, domain.VerificationBackground, 3},
		{domain.VerificationEmail, domain.VerificationID, 1.5},
		{domain.VerificationPhone, domain.VerificationPhone, 1.5},
		{"", domain.VerificationBackground, 1.5},
	}
	for _, tt := range tests {
		assert.InDelta(t, tt.want, verificationScore(tt.a, tt.b, 3), eps, "%s vs %s", tt.a, tt.b)
	}
}

func TestGenderPreferenceScore(t *testing.T) {
	person := func(g domain.Gender, pref domain.GenderPreference) domain.Profile {
		return domain.Profile{Gender: g, GenderPreference: pref}
	}

	tests := []struct {
		name string
		a, b domain.Profile
		want float64
	}{
		{"both any", person(domain.GenderMale, domain.PreferAny), person(domain.GenderFemale, domain.PreferAny), 2},
		{"one sided same gender", person(domain.GenderMale, domain.PreferAny), person(domain.GenderFemale, domain.PreferSameGender), 1},
		{"same gender mutual", person(domain.GenderFemale, domain.PreferSameGender), person(domain.GenderFemale, domain.PreferFemaleOnly), 2},
		{"only one accepts", person(domain.GenderMale, domain.PreferFemaleOnly), person(domain.GenderFemale, domain.PreferFemaleOnly), 1},
		{"mutual rejection", person(domain.GenderMale, domain.PreferNonBinaryOnly), person(domain.GenderFemale, domain.PreferFemaleOnly), 0},
		{"non binary only", person(domain.GenderNonBinary, domain.PreferNonBinaryOnly), person(domain.GenderNonBinary, domain.PreferAny), 2},
		{"unknown preference accepts", person(domain.GenderMale, "WHOEVER"), person(domain.GenderMale, domain.PreferMaleOnly), 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, genderPreferenceScore(tt.a, tt.b, 2), eps)
			assert.InDelta(t, tt.want, genderPreferenceScore(tt.b, tt.a, 2), eps)
		})
	}
}
