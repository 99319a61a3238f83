package httpapi

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/denisok6893-rgb/roommate-matching/internal/domain"
	"github.com/denisok6893-rgb/roommate-matching/internal/matching"
	"github.com/denisok6893-rgb/roommate-matching/internal/metrics"
	"github.com/denisok6893-rgb/roommate-matching/internal/storage"
)

// CandidateStore is the profile storage the API reads discovery pools from.
type CandidateStore interface {
	CreateCandidate(ctx context.Context, c domain.Candidate) (domain.Candidate, error)
	GetCandidate(ctx context.Context, id string) (domain.Candidate, error)
	DeleteCandidate(ctx context.Context, id string) (bool, error)
	ListCandidates(ctx context.Context, limit, offset int) ([]domain.Candidate, int, error)
	ListVisible(ctx context.Context, status domain.AccommodationStatus) ([]domain.Candidate, error)
}

type Server struct {
	Engine   *matching.Engine
	Store    CandidateStore
	Log      *zap.Logger
	validate *validator.Validate
}

func NewServer(engine *matching.Engine, store CandidateStore, log *zap.Logger) *Server {
	if log == nil {
		log = zap.NewNop()
	}
	return &Server{Engine: engine, Store: store, Log: log, validate: domain.NewValidator()}
}

func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(requestLogger(s.Log))

	r.Get("/health", s.handleHealth)
	r.Handle("/metrics", promhttp.Handler())
	r.Post("/score", s.handleScore)
	r.Post("/matches", s.handleMatches)

	r.Route("/profiles", func(r chi.Router) {
		r.Get("/", s.handleProfilesList)
		r.Post("/", s.handleProfilesCreate)
		r.Get("/{id}", s.handleProfileGet)
		r.Delete("/{id}", s.handleProfileDelete)
	})
	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

type ScoreRequest struct {
	A domain.Profile `json:"a"`
	B domain.Profile `json:"b"`
}

func (s *Server) handleScore(w http.ResponseWriter, r *http.Request) {
	var req ScoreRequest
	if !s.decodeAndValidate(w, r, &req) {
		return
	}

	ev := s.Engine.Evaluate(req.A, req.B)
	metrics.RecordScore(ev.Tier)
	writeJSON(w, http.StatusOK, ev)
}

// MatchCandidate is an inline discovery candidate. Visible defaults to true.
type MatchCandidate struct {
	ID                  string                     `json:"id"`
	DisplayName         string                     `json:"display_name" validate:"required"`
	AccommodationStatus domain.AccommodationStatus `json:"accommodation_status" validate:"omitempty,oneof=LOOKING HAVE_ROOM"`
	Visible             *bool                      `json:"visible"`
	Profile             domain.Profile             `json:"profile"`
}

func (c MatchCandidate) candidate() domain.Candidate {
	visible := true
	if c.Visible != nil {
		visible = *c.Visible
	}
	return domain.Candidate{
		ID:                  c.ID,
		DisplayName:         c.DisplayName,
		AccommodationStatus: c.AccommodationStatus,
		Visible:             visible,
		Profile:             c.Profile,
	}
}

type MatchRequest struct {
	Profile domain.Profile `json:"profile"`
	// Candidates, when present, replaces the stored pool.
	Candidates          *[]MatchCandidate          `json:"candidates,omitempty" validate:"omitempty,dive"`
	MinScore            *float64                   `json:"min_score,omitempty" validate:"omitempty,gte=0,lte=100"`
	AccommodationStatus domain.AccommodationStatus `json:"accommodation_status,omitempty" validate:"omitempty,oneof=LOOKING HAVE_ROOM"`
	Page                int                        `json:"page" validate:"gte=0"`
	Limit               int                        `json:"limit" validate:"gte=0"`
}

func (s *Server) handleMatches(w http.ResponseWriter, r *http.Request) {
	var req MatchRequest
	if !s.decodeAndValidate(w, r, &req) {
		return
	}

	if v := r.URL.Query().Get("limit"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			req.Limit = parsed
		}
	}
	if v := r.URL.Query().Get("page"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			req.Page = parsed
		}
	}

	var pool []domain.Candidate
	switch {
	case req.Candidates != nil:
		pool = make([]domain.Candidate, 0, len(*req.Candidates))
		for _, c := range *req.Candidates {
			pool = append(pool, c.candidate())
		}
	case s.Store != nil:
		stored, err := s.Store.ListVisible(r.Context(), req.AccommodationStatus)
		if err != nil {
			s.Log.Error("list discovery pool", zap.Error(err))
			writeError(w, http.StatusInternalServerError, "storage_error")
			return
		}
		pool = stored
	default:
		writeError(w, http.StatusBadRequest, "candidates_required")
		return
	}

	start := time.Now()
	res := s.Engine.Discover(req.Profile, pool, matching.DiscoverOptions{
		MinScore:            req.MinScore,
		AccommodationStatus: req.AccommodationStatus,
		Page:                req.Page,
		Limit:               req.Limit,
	})
	metrics.RecordDiscover(len(pool), time.Since(start))
	for _, m := range res.Matches {
		metrics.RecordScore(m.Tier)
	}

	writeJSON(w, http.StatusOK, res)
}

// ---- Profiles API ----

type ProfilesListResponse struct {
	Limit  int                `json:"limit"`
	Offset int                `json:"offset"`
	Total  int                `json:"total"`
	Items  []domain.Candidate `json:"items"`
}

func (s *Server) handleProfilesList(w http.ResponseWriter, r *http.Request) {
	if !s.requireStore(w) {
		return
	}
	limit, offset := parseLimitOffset(r, 20, 0)

	items, total, err := s.Store.ListCandidates(r.Context(), limit, offset)
	if err != nil {
		s.Log.Error("list profiles", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "storage_error")
		return
	}
	writeJSON(w, http.StatusOK, ProfilesListResponse{
		Limit:  limit,
		Offset: offset,
		Total:  total,
		Items:  items,
	})
}

type CreateProfileRequest struct {
	DisplayName         string                     `json:"display_name" validate:"required"`
	AccommodationStatus domain.AccommodationStatus `json:"accommodation_status" validate:"omitempty,oneof=LOOKING HAVE_ROOM"`
	// Visible defaults to true.
	Visible *bool          `json:"visible"`
	Profile domain.Profile `json:"profile"`
}

func (s *Server) handleProfilesCreate(w http.ResponseWriter, r *http.Request) {
	if !s.requireStore(w) {
		return
	}
	var req CreateProfileRequest
	if !s.decodeAndValidate(w, r, &req) {
		return
	}

	visible := true
	if req.Visible != nil {
		visible = *req.Visible
	}
	c, err := s.Store.CreateCandidate(r.Context(), domain.Candidate{
		DisplayName:         req.DisplayName,
		AccommodationStatus: req.AccommodationStatus,
		Visible:             visible,
		Profile:             req.Profile,
	})
	if err != nil {
		s.Log.Error("create profile", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "storage_error")
		return
	}
	writeJSON(w, http.StatusCreated, c)
}

func (s *Server) handleProfileGet(w http.ResponseWriter, r *http.Request) {
	if !s.requireStore(w) {
		return
	}
	c, err := s.Store.GetCandidate(r.Context(), chi.URLParam(r, "id"))
	if errors.Is(err, storage.ErrNotFound) {
		writeError(w, http.StatusNotFound, "not_found")
		return
	}
	if err != nil {
		s.Log.Error("get profile", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "storage_error")
		return
	}
	writeJSON(w, http.StatusOK, c)
}

func (s *Server) handleProfileDelete(w http.ResponseWriter, r *http.Request) {
	if !s.requireStore(w) {
		return
	}
	ok, err := s.Store.DeleteCandidate(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.Log.Error("delete profile", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "storage_error")
		return
	}
	if !ok {
		writeError(w, http.StatusNotFound, "not_found")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

func (s *Server) requireStore(w http.ResponseWriter) bool {
	if s.Store == nil {
		writeError(w, http.StatusServiceUnavailable, "storage_disabled")
		return false
	}
	return true
}

func (s *Server) decodeAndValidate(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return false
	}
	if err := s.validate.Struct(dst); err != nil {
		writeError(w, http.StatusBadRequest, validationMessage(err))
		return false
	}
	return true
}

func parseLimitOffset(r *http.Request, defLimit, defOffset int) (int, int) {
	q := r.URL.Query()

	limit := defLimit
	if v := q.Get("limit"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			limit = parsed
		}
	}
	if limit <= 0 {
		limit = defLimit
	}
	// safety cap
	if limit > 200 {
		limit = 200
	}

	offset := defOffset
	if v := q.Get("offset"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			offset = parsed
		}
	}
	if offset < 0 {
		offset = defOffset
	}

	return limit, offset
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
