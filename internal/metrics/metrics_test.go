package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecordScore(t *testing.T) {
	before := testutil.ToFloat64(PairsScored.WithLabelValues("good"))
	RecordScore("good")
	RecordScore("good")
	assert.Equal(t, before+2, testutil.ToFloat64(PairsScored.WithLabelValues("good")))
}

func TestRecordAPIRequest(t *testing.T) {
	c := APIRequestsTotal.WithLabelValues("POST", "/score", "200")
	before := testutil.ToFloat64(c)
	RecordAPIRequest("POST", "/score", 200)
	assert.Equal(t, before+1, testutil.ToFloat64(c))
}

func TestRecordDiscover(t *testing.T) {
	assert.NotPanics(t, func() { RecordDiscover(12, 3*time.Millisecond) })
	assert.Equal(t, 1, testutil.CollectAndCount(DiscoverDuration))
}
