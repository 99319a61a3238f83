package storage

import (
	"fmt"
	"os"

	"github.com/goccy/go-json"

	"github.com/denisok6893-rgb/roommate-matching/internal/domain"
)

// LoadCandidatesFromFile reads a JSON array of candidates used to seed the store.
func LoadCandidatesFromFile(path string) ([]domain.Candidate, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read candidates file: %w", err)
	}

	var items []domain.Candidate
	if err := json.Unmarshal(b, &items); err != nil {
		return nil, fmt.Errorf("unmarshal candidates: %w", err)
	}
	return items, nil
}

// LoadProfileFromFile reads a single profile object.
func LoadProfileFromFile(path string) (domain.Profile, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return domain.Profile{}, fmt.Errorf("read profile file: %w", err)
	}

	var p domain.Profile
	if err := json.Unmarshal(b, &p); err != nil {
		return domain.Profile{}, fmt.Errorf("unmarshal profile: %w", err)
	}
	return p, nil
}
