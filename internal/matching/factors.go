package matching

import (
	"math"
	"strings"

	"github.com/denisok6893-rgb/roommate-matching/internal/domain"
)

// sleepOrder is the ordinal sequence for sleep schedules. FLEXIBLE is not on it.
var sleepOrder = map[domain.SleepSchedule]int{
	domain.SleepEarlyBird: 0,
	domain.SleepModerate:  1,
	domain.SleepNightOwl:  2,
}

var verificationOrder = map[domain.VerificationLevel]float64{
	domain.VerificationNone:       0,
	domain.VerificationEmail:      1,
	domain.VerificationPhone:      2,
	domain.VerificationID:         3,
	domain.VerificationBackground: 4,
}

const maxVerification = 4

func sleepScore(a, b domain.SleepSchedule, weight float64) float64 {
	if a == domain.SleepFlexible || b == domain.SleepFlexible {
		return weight * 0.9
	}
	if a == b {
		return weight
	}
	ia, okA := sleepOrder[a]
	ib, okB := sleepOrder[b]
	if !okA || !okB {
		return weight * 0.2
	}
	if absInt(ia-ib) == 1 {
		return weight * 0.6
	}
	return weight * 0.2
}

// levelScore loses 20% of the weight per step of difference on the 1..5 scale.
func levelScore(a, b int, weight float64) float64 {
	diff := absInt(clampLevel(a) - clampLevel(b))
	return weight * math.Max(1-float64(diff)*0.2, 0)
}

func budgetScore(a, b domain.Profile, weight float64) float64 {
	if !a.HasBudget() || !b.HasBudget() {
		return weight * 0.8
	}
	minA, maxA := orderedBounds(*a.BudgetMin, *a.BudgetMax)
	minB, maxB := orderedBounds(*b.BudgetMin, *b.BudgetMax)
	rangeA := maxA - minA
	rangeB := maxB - minB

	start := math.Max(minA, minB)
	end := math.Min(maxA, maxB)
	if start > end {
		gap := start - end
		tolerance := math.Min(rangeA, rangeB) * 0.3
		if gap <= tolerance {
			return weight * 0.4
		}
		return weight * 0.2
	}

	overlap := end - start
	avgRange := (rangeA + rangeB) / 2
	pct := 1.0
	if avgRange > 0 {
		pct = math.Min(overlap/avgRange, 1)
	}
	return weight * (0.4 + pct*0.6)
}

// interestsScore is the Jaccard similarity of the two interest sets.
func interestsScore(a, b []string, weight float64) float64 {
	if len(a) == 0 || len(b) == 0 {
		return weight * 0.5
	}
	setA := normalizedSet(a, true)
	setB := normalizedSet(b, true)

	union := make(map[string]struct{}, len(setA)+len(setB))
	for k := range setA {
		union[k] = struct{}{}
	}
	for k := range setB {
		union[k] = struct{}{}
	}
	if len(union) == 0 {
		return 0
	}
	return weight * float64(intersectionSize(setA, setB)) / float64(len(union))
}

// languagesScore gives nothing without a shared language; one shared language
// earns half the weight, two or more the full weight.
func languagesScore(a, b []string, weight float64) float64 {
	if len(a) == 0 || len(b) == 0 {
		return weight * 0.5
	}
	common := intersectionSize(normalizedSet(a, false), normalizedSet(b, false))
	if common == 0 {
		return 0
	}
	return weight * math.Min(float64(common)/2, 1)
}

func verificationScore(a, b domain.VerificationLevel, weight float64) float64 {
	avg := (verificationOrder[a] + verificationOrder[b]) / 2
	return weight * (avg / maxVerification)
}

func genderPreferenceScore(a, b domain.Profile, weight float64) float64 {
	aAllowsB := genderAllowed(a.GenderPreference, a.Gender, b.Gender)
	bAllowsA := genderAllowed(b.GenderPreference, b.Gender, a.Gender)
	switch {
	case aAllowsB && bAllowsA:
		return weight
	case aAllowsB || bAllowsA:
		return weight * 0.5
	default:
		return 0
	}
}

func genderAllowed(pref domain.GenderPreference, own, other domain.Gender) bool {
	switch pref {
	case domain.PreferSameGender:
		return own == other
	case domain.PreferMaleOnly:
		return other == domain.GenderMale
	case domain.PreferFemaleOnly:
		return other == domain.GenderFemale
	case domain.PreferNonBinaryOnly:
		return other == domain.GenderNonBinary
	default:
		return true
	}
}

func normalizedSet(items []string, trim bool) map[string]struct{} {
	out := make(map[string]struct{}, len(items))
	for _, it := range items {
		if trim {
			it = strings.TrimSpace(it)
		}
		out[strings.ToLower(it)] = struct{}{}
	}
	return out
}

func intersectionSize(a, b map[string]struct{}) int {
	n := 0
	for k := range a {
		if _, ok := b[k]; ok {
			n++
		}
	}
	return n
}

func orderedBounds(lo, hi float64) (float64, float64) {
	if lo > hi {
		return hi, lo
	}
	return lo, hi
}

func clampLevel(v int) int {
	if v < 1 {
		return 1
	}
	if v > 5 {
		return 5
	}
	return v
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
