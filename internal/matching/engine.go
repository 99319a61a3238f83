package matching

import (
	"math"
	"sort"

	"github.com/denisok6893-rgb/roommate-matching/internal/domain"
)

const (
	defaultPageLimit = 20
	maxPageLimit     = 50
	maxReasons       = 5
)

// Engine scores pairs of profiles. It holds no mutable state and is safe for
// concurrent use.
type Engine struct {
	cfg Config
}

func NewEngine(cfg Config) *Engine {
	return &Engine{cfg: cfg}
}

func (e *Engine) Config() Config { return e.cfg }

// Score compares two profiles factor by factor. Missing optional data resolves
// to per-factor defaults; it never fails.
func (e *Engine) Score(a, b domain.Profile) domain.ScoreBreakdown {
	w := e.cfg.Weights
	return domain.ScoreBreakdown{
		SleepSchedule:       sleepScore(a.SleepSchedule, b.SleepSchedule, w.SleepSchedule),
		CleanlinessLevel:    levelScore(a.CleanlinessLevel, b.CleanlinessLevel, w.CleanlinessLevel),
		SmokingTolerance:    levelScore(a.SmokingTolerance, b.SmokingTolerance, w.SmokingTolerance),
		DrinkingTolerance:   levelScore(a.DrinkingTolerance, b.DrinkingTolerance, w.DrinkingTolerance),
		SocialLevel:         levelScore(a.SocialLevel, b.SocialLevel, w.SocialLevel),
		BudgetCompatibility: budgetScore(a, b, w.BudgetCompatibility),
		Interests:           interestsScore(a.Interests, b.Interests, w.Interests),
		Languages:           languagesScore(a.Languages, b.Languages, w.Languages),
		VerificationLevel:   verificationScore(a.VerificationLevel, b.VerificationLevel, w.VerificationLevel),
		GenderPreference:    genderPreferenceScore(a, b, w.GenderPreference),
	}
}

// Evaluation is a single scored pair, as stored with a match request.
type Evaluation struct {
	Score     float64               `json:"score"`
	Tier      string                `json:"tier"`
	Breakdown domain.ScoreBreakdown `json:"breakdown"`
	Reasons   []domain.ScoreReason  `json:"reasons"`
}

func (e *Engine) Evaluate(a, b domain.Profile) Evaluation {
	bd := e.Score(a, b)
	total := bd.Total()
	return Evaluation{
		Score:     total,
		Tier:      e.cfg.Thresholds.Tier(total),
		Breakdown: bd,
		Reasons:   e.reasons(bd),
	}
}

type DiscoverOptions struct {
	// MinScore defaults to the minimum threshold when nil.
	MinScore            *float64
	AccommodationStatus domain.AccommodationStatus
	Page                int
	Limit               int
}

type DiscoverResult struct {
	Matches    []domain.MatchResult `json:"matches"`
	Pagination domain.Pagination    `json:"pagination"`
}

// Discover scores the seeker against every visible candidate, drops those
// below the minimum score, and returns one page sorted by score.
func (e *Engine) Discover(seeker domain.Profile, candidates []domain.Candidate, opts DiscoverOptions) DiscoverResult {
	minScore := e.cfg.Thresholds.Minimum
	if opts.MinScore != nil {
		minScore = *opts.MinScore
	}
	page := opts.Page
	if page < 1 {
		page = 1
	}
	limit := opts.Limit
	if limit <= 0 {
		limit = defaultPageLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}

	out := make([]domain.MatchResult, 0, len(candidates))
	for _, c := range candidates {
		if !c.Visible {
			continue
		}
		if opts.AccommodationStatus != "" && c.AccommodationStatus != opts.AccommodationStatus {
			continue
		}
		ev := e.Evaluate(seeker, c.Profile)
		if ev.Score < minScore {
			continue
		}
		out = append(out, domain.MatchResult{
			Candidate: c,
			Score:     ev.Score,
			Tier:      ev.Tier,
			Breakdown: ev.Breakdown,
			Reasons:   ev.Reasons,
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score > out[j].Score
		}
		return out[i].Candidate.ID < out[j].Candidate.ID
	})

	total := len(out)
	start := (page - 1) * limit
	if start > total {
		start = total
	}
	end := start + limit
	if end > total {
		end = total
	}

	return DiscoverResult{
		Matches: out[start:end],
		Pagination: domain.Pagination{
			Page:       page,
			Limit:      limit,
			Total:      total,
			TotalPages: int(math.Ceil(float64(total) / float64(limit))),
		},
	}
}

func (e *Engine) reasons(bd domain.ScoreBreakdown) []domain.ScoreReason {
	var out []domain.ScoreReason
	for _, f := range bd.Factors() {
		w := e.cfg.Weights.For(f.Key)
		if w <= 0 {
			continue
		}
		out = append(out, domain.ScoreReason{
			Type:    f.Key,
			Message: reasonMessage(f.Key, f.Score/w),
			Impact:  f.Score,
		})
	}
	return topReasons(out, maxReasons)
}

func topReasons(reasons []domain.ScoreReason, max int) []domain.ScoreReason {
	sort.SliceStable(reasons, func(i, j int) bool { return reasons[i].Impact > reasons[j].Impact })
	if max <= 0 {
		max = maxReasons
	}
	if len(reasons) > max {
		reasons = reasons[:max]
	}
	// Normalize Impact to share of the best item (0..1) for readability.
	if len(reasons) == 0 {
		return reasons
	}
	best := reasons[0].Impact
	if best <= 0 {
		return reasons
	}
	for i := range reasons {
		reasons[i].Impact = math.Round((reasons[i].Impact/best)*100) / 100
	}
	return reasons
}

func reasonMessage(label string, v float64) string {
	switch {
	case v >= 0.8:
		return label + ": strong match"
	case v >= 0.6:
		return label + ": good"
	case v >= 0.4:
		return label + ": mixed"
	default:
		return label + ": weak"
	}
}
