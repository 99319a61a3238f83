package domain

type SleepSchedule string

const (
	SleepEarlyBird SleepSchedule = "EARLY_BIRD"
	SleepModerate  SleepSchedule = "MODERATE"
	SleepNightOwl  SleepSchedule = "NIGHT_OWL"
	SleepFlexible  SleepSchedule = "FLEXIBLE"
)

type VerificationLevel string

const (
	VerificationNone       VerificationLevel = "NONE"
	VerificationEmail      VerificationLevel = "EMAIL"
	VerificationPhone      VerificationLevel = "PHONE"
	VerificationID         VerificationLevel = "ID"
	VerificationBackground VerificationLevel = "BACKGROUND"
)

type Gender string

const (
	GenderMale           Gender = "MALE"
	GenderFemale         Gender = "FEMALE"
	GenderNonBinary      Gender = "NON_BINARY"
	GenderPreferNotToSay Gender = "PREFER_NOT_TO_SAY"
)

// GenderPreference is the roommate-gender filter a person applies to candidates.
type GenderPreference string

const (
	PreferAny           GenderPreference = "ANY"
	PreferMaleOnly      GenderPreference = "MALE_ONLY"
	PreferFemaleOnly    GenderPreference = "FEMALE_ONLY"
	PreferNonBinaryOnly GenderPreference = "NON_BINARY_ONLY"
	PreferSameGender    GenderPreference = "SAME_GENDER"
)

type AccommodationStatus string

const (
	AccommodationLooking  AccommodationStatus = "LOOKING"
	AccommodationHaveRoom AccommodationStatus = "HAVE_ROOM"
)

// Profile is one person's lifestyle and accommodation preferences.
// Level fields are on a 1..5 scale. Budget bounds are nightly spend and are
// either both set or both nil.
type Profile struct {
	SleepSchedule     SleepSchedule     `json:"sleep_schedule" validate:"required,oneof=EARLY_BIRD MODERATE NIGHT_OWL FLEXIBLE"`
	CleanlinessLevel  int               `json:"cleanliness_level" validate:"min=1,max=5"`
	SocialLevel       int               `json:"social_level" validate:"min=1,max=5"`
	SmokingTolerance  int               `json:"smoking_tolerance" validate:"min=1,max=5"`
	DrinkingTolerance int               `json:"drinking_tolerance" validate:"min=1,max=5"`
	BudgetMin         *float64          `json:"budget_min,omitempty" validate:"omitempty,gte=0"`
	BudgetMax         *float64          `json:"budget_max,omitempty" validate:"omitempty,gte=0"`
	Interests         []string          `json:"interests"`
	Languages         []string          `json:"languages"`
	VerificationLevel VerificationLevel `json:"verification_level" validate:"required,oneof=NONE EMAIL PHONE ID BACKGROUND"`
	Gender            Gender            `json:"gender" validate:"required,oneof=MALE FEMALE NON_BINARY PREFER_NOT_TO_SAY"`
	GenderPreference  GenderPreference  `json:"gender_preference" validate:"required,oneof=ANY MALE_ONLY FEMALE_ONLY NON_BINARY_ONLY SAME_GENDER"`
}

// HasBudget reports whether both budget bounds are set.
func (p Profile) HasBudget() bool {
	return p.BudgetMin != nil && p.BudgetMax != nil
}

// Candidate is an attendee whose profile can be matched against.
type Candidate struct {
	ID                  string              `json:"id"`
	DisplayName         string              `json:"display_name" validate:"required"`
	AccommodationStatus AccommodationStatus `json:"accommodation_status" validate:"omitempty,oneof=LOOKING HAVE_ROOM"`
	Visible             bool                `json:"visible"`
	Profile             Profile             `json:"profile"`
}

// Factor keys, in breakdown order.
const (
	FactorSleepSchedule       = "sleep_schedule"
	FactorCleanlinessLevel    = "cleanliness_level"
	FactorSmokingTolerance    = "smoking_tolerance"
	FactorDrinkingTolerance   = "drinking_tolerance"
	FactorSocialLevel         = "social_level"
	FactorBudgetCompatibility = "budget_compatibility"
	FactorInterests           = "interests"
	FactorLanguages           = "languages"
	FactorVerificationLevel   = "verification_level"
	FactorGenderPreference    = "gender_preference"
)

// ScoreBreakdown holds one sub-score per factor. Sub-scores are in points,
// bounded by the factor weight.
type ScoreBreakdown struct {
	SleepSchedule       float64 `json:"sleep_schedule"`
	CleanlinessLevel    float64 `json:"cleanliness_level"`
	SmokingTolerance    float64 `json:"smoking_tolerance"`
	DrinkingTolerance   float64 `json:"drinking_tolerance"`
	SocialLevel         float64 `json:"social_level"`
	BudgetCompatibility float64 `json:"budget_compatibility"`
	Interests           float64 `json:"interests"`
	Languages           float64 `json:"languages"`
	VerificationLevel   float64 `json:"verification_level"`
	GenderPreference    float64 `json:"gender_preference"`
}

type FactorScore struct {
	Key   string
	Score float64
}

// Factors returns the sub-scores in a fixed order.
func (b ScoreBreakdown) Factors() []FactorScore {
	return []FactorScore{
		{FactorSleepSchedule, b.SleepSchedule},
		{FactorCleanlinessLevel, b.CleanlinessLevel},
		{FactorSmokingTolerance, b.SmokingTolerance},
		{FactorDrinkingTolerance, b.DrinkingTolerance},
		{FactorSocialLevel, b.SocialLevel},
		{FactorBudgetCompatibility, b.BudgetCompatibility},
		{FactorInterests, b.Interests},
		{FactorLanguages, b.Languages},
		{FactorVerificationLevel, b.VerificationLevel},
		{FactorGenderPreference, b.GenderPreference},
	}
}

// Total is the sum of all sub-scores.
func (b ScoreBreakdown) Total() float64 {
	var total float64
	for _, f := range b.Factors() {
		total += f.Score
	}
	return total
}

type MatchResult struct {
	Candidate Candidate      `json:"candidate"`
	Score     float64        `json:"score"`
	Tier      string         `json:"tier"`
	Breakdown ScoreBreakdown `json:"breakdown"`
	Reasons   []ScoreReason  `json:"reasons"`
}

type ScoreReason struct {
	Type    string  `json:"type"`
	Message string  `json:"message"`
	Impact  float64 `json:"impact"`
}

type Pagination struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"total_pages"`
}
