package matching

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultWeights_Valid(t *testing.T) {
	w := DefaultWeights()
	assert.InDelta(t, 100, w.Sum(), eps)
	assert.NoError(t, w.Validate())
}

func TestWeights_Validate(t *testing.T) {
	w := DefaultWeights()
	w.Languages = 10
	assert.ErrorIs(t, w.Validate(), ErrInvalidWeights)

	w = DefaultWeights()
	w.Languages = -5
	w.Interests = 18
	assert.ErrorIs(t, w.Validate(), ErrInvalidWeights)
}

func TestThresholds_Tier(t *testing.T) {
	th := DefaultThresholds()
	tests := []struct {
		score float64
		want  string
	}{
		{100, TierExcellent},
		{85, TierExcellent},
		{84.99, TierGood},
		{70, TierGood},
		{55, TierModerate},
		{40, TierMinimum},
		{39.9, TierLow},
		{0, TierLow},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, th.Tier(tt.score), "score %v", tt.score)
	}
}

func TestLoadWeightsFromFile(t *testing.T) {
	dir := t.TempDir()

	t.Run("overrides defaults", func(t *testing.T) {
		path := filepath.Join(dir, "weights.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"sleep_schedule": 25, "languages": 0}`), 0o644))

		w, err := LoadWeightsFromFile(path)
		require.NoError(t, err)
		assert.Equal(t, 25.0, w.SleepSchedule)
		assert.Zero(t, w.Languages)
		assert.Equal(t, 15.0, w.CleanlinessLevel)
	})

	t.Run("rejects bad sum", func(t *testing.T) {
		path := filepath.Join(dir, "bad.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"sleep_schedule": 90}`), 0o644))

		w, err := LoadWeightsFromFile(path)
		assert.ErrorIs(t, err, ErrInvalidWeights)
		assert.Equal(t, DefaultWeights(), w)
	})

	t.Run("missing file falls back", func(t *testing.T) {
		w, err := LoadWeightsFromFile(filepath.Join(dir, "nope.json"))
		assert.Error(t, err)
		assert.Equal(t, DefaultWeights(), w)
	})

	t.Run("malformed json", func(t *testing.T) {
		path := filepath.Join(dir, "broken.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"sleep_schedule":`), 0o644))

		_, err := LoadWeightsFromFile(path)
		assert.Error(t, err)
	})
}
