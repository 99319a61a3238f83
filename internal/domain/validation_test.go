package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validProfile() Profile {
	lo, hi := 50.0, 150.0
	return Profile{
		SleepSchedule:     SleepModerate,
		CleanlinessLevel:  3,
		SocialLevel:       3,
		SmokingTolerance:  1,
		DrinkingTolerance: 2,
		BudgetMin:         &lo,
		BudgetMax:         &hi,
		VerificationLevel: VerificationEmail,
		Gender:            GenderFemale,
		GenderPreference:  PreferAny,
	}
}

func TestNewValidator_Candidate(t *testing.T) {
	v := NewValidator()
	zero, big := 0.0, 500.0

	tests := []struct {
		name    string
		mutate  func(c *Candidate)
		wantErr bool
	}{
		{"valid", func(c *Candidate) {}, false},
		{"no budget", func(c *Candidate) { c.Profile.BudgetMin, c.Profile.BudgetMax = nil, nil }, false},
		{"zero lower bound", func(c *Candidate) { c.Profile.BudgetMin = &zero }, false},
		{"level out of range", func(c *Candidate) { c.Profile.SocialLevel = 9 }, true},
		{"half a budget", func(c *Candidate) { c.Profile.BudgetMax = nil }, true},
		{"reversed budget", func(c *Candidate) { c.Profile.BudgetMin = &big }, true},
		{"unknown schedule", func(c *Candidate) { c.Profile.SleepSchedule = "SIESTA" }, true},
		{"missing name", func(c *Candidate) { c.DisplayName = "" }, true},
		{"unknown status", func(c *Candidate) { c.AccommodationStatus = "SOFA" }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Candidate{ID: "c1", DisplayName: "C", Visible: true, Profile: validProfile()}
			tt.mutate(&c)
			err := v.Struct(c)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
