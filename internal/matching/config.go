package matching

import (
	"errors"
	"fmt"
	"math"
	"os"

	"github.com/goccy/go-json"

	"github.com/denisok6893-rgb/roommate-matching/internal/domain"
)

// ErrInvalidWeights is returned when a weight table does not sum to 100
// or carries a negative weight.
var ErrInvalidWeights = errors.New("invalid weights")

// Weights defines the maximum points each compatibility factor contributes.
type Weights struct {
	SleepSchedule       float64 `json:"sleep_schedule"`
	CleanlinessLevel    float64 `json:"cleanliness_level"`
	BudgetCompatibility float64 `json:"budget_compatibility"`
	SmokingTolerance    float64 `json:"smoking_tolerance"`
	DrinkingTolerance   float64 `json:"drinking_tolerance"`
	SocialLevel         float64 `json:"social_level"`
	Interests           float64 `json:"interests"`
	Languages           float64 `json:"languages"`
	VerificationLevel   float64 `json:"verification_level"`
	GenderPreference    float64 `json:"gender_preference"`
}

// DefaultWeights returns the v1 weight table. It sums to 100.
func DefaultWeights() Weights {
	return Weights{
		SleepSchedule:       20,
		CleanlinessLevel:    15,
		BudgetCompatibility: 15,
		SmokingTolerance:    12,
		DrinkingTolerance:   10,
		SocialLevel:         10,
		Interests:           8,
		Languages:           5,
		VerificationLevel:   3,
		GenderPreference:    2,
	}
}

func (w Weights) asList() []float64 {
	return []float64{
		w.SleepSchedule, w.CleanlinessLevel, w.BudgetCompatibility,
		w.SmokingTolerance, w.DrinkingTolerance, w.SocialLevel,
		w.Interests, w.Languages, w.VerificationLevel, w.GenderPreference,
	}
}

// For returns the weight of the factor with the given breakdown key.
func (w Weights) For(key string) float64 {
	switch key {
	case domain.FactorSleepSchedule:
		return w.SleepSchedule
	case domain.FactorCleanlinessLevel:
		return w.CleanlinessLevel
	case domain.FactorBudgetCompatibility:
		return w.BudgetCompatibility
	case domain.FactorSmokingTolerance:
		return w.SmokingTolerance
	case domain.FactorDrinkingTolerance:
		return w.DrinkingTolerance
	case domain.FactorSocialLevel:
		return w.SocialLevel
	case domain.FactorInterests:
		return w.Interests
	case domain.FactorLanguages:
		return w.Languages
	case domain.FactorVerificationLevel:
		return w.VerificationLevel
	case domain.FactorGenderPreference:
		return w.GenderPreference
	default:
		return 0
	}
}

func (w Weights) Sum() float64 {
	var s float64
	for _, v := range w.asList() {
		s += v
	}
	return s
}

// Validate checks that weights sum to 100 and none are negative.
func (w Weights) Validate() error {
	for _, v := range w.asList() {
		if v < 0 {
			return fmt.Errorf("%w: negative weight %v", ErrInvalidWeights, v)
		}
	}
	if math.Abs(w.Sum()-100) > 0.001 {
		return fmt.Errorf("%w: weights sum to %.3f, must sum to 100", ErrInvalidWeights, w.Sum())
	}
	return nil
}

// Thresholds classify a total score into tiers.
type Thresholds struct {
	Excellent float64 `json:"excellent"`
	Good      float64 `json:"good"`
	Moderate  float64 `json:"moderate"`
	Minimum   float64 `json:"minimum"`
}

func DefaultThresholds() Thresholds {
	return Thresholds{
		Excellent: 85,
		Good:      70,
		Moderate:  55,
		Minimum:   40,
	}
}

const (
	TierExcellent = "excellent"
	TierGood      = "good"
	TierModerate  = "moderate"
	TierMinimum   = "minimum"
	TierLow       = "low"
)

// Tier returns the highest tier whose threshold the score reaches.
func (t Thresholds) Tier(score float64) string {
	switch {
	case score >= t.Excellent:
		return TierExcellent
	case score >= t.Good:
		return TierGood
	case score >= t.Moderate:
		return TierModerate
	case score >= t.Minimum:
		return TierMinimum
	default:
		return TierLow
	}
}

// Config is the versioned constant table owned by an Engine.
type Config struct {
	Weights    Weights
	Thresholds Thresholds
}

func DefaultConfig() Config {
	return Config{
		Weights:    DefaultWeights(),
		Thresholds: DefaultThresholds(),
	}
}

// LoadWeightsFromFile loads weights from a JSON file over the defaults.
// On any error the defaults are returned alongside it.
func LoadWeightsFromFile(path string) (Weights, error) {
	w := DefaultWeights()
	b, err := os.ReadFile(path)
	if err != nil {
		return w, fmt.Errorf("read weights file: %w", err)
	}
	loaded := w
	if err := json.Unmarshal(b, &loaded); err != nil {
		return w, fmt.Errorf("unmarshal weights: %w", err)
	}
	if err := loaded.Validate(); err != nil {
		return w, err
	}
	return loaded, nil
}
