package admins

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBucketKeyGranularity(t *testing.T) {
	ts := time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)

	assert.Equal(t, "2026-03-14 09:00", BucketKey(ts, "day"))
	assert.Equal(t, "2026-03-14", BucketKey(ts, "week"))
	assert.Equal(t, "2026-03-14", BucketKey(ts, "month"))
}

func TestBucketTimes(t *testing.T) {
	base := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)
	times := []time.Time{
		base.Add(1 * time.Hour),
		base.Add(2 * time.Hour),
		base.Add(25 * time.Hour),
		base.Add(26 * time.Hour),
		base.Add(27 * time.Hour),
	}

	points := BucketTimes(times, "week")
	require.Len(t, points, 2)
	assert.Equal(t, "2026-03-14", points[0].Bucket)
	assert.Equal(t, 2, points[0].Count)
	assert.Equal(t, "2026-03-15", points[1].Bucket)
	assert.Equal(t, 3, points[1].Count)
}

func TestBucketTimesEmpty(t *testing.T) {
	assert.Empty(t, BucketTimes(nil, "day"))
}

func TestTrendWindowRejectsUnknownPeriod(t *testing.T) {
	_, err := trendWindow("year")
	assert.Error(t, err)

	w, err := trendWindow("week")
	require.NoError(t, err)
	assert.Equal(t, 7*24*time.Hour, w)
}

func TestMergeActivity(t *testing.T) {
	now := time.Now()
	items := []ActivityItem{
		{Type: "user_registered", Subject: "a", OccurredAt: now.Add(-3 * time.Hour)},
		{Type: "application_submitted", Subject: "b", OccurredAt: now.Add(-1 * time.Hour)},
		{Type: "user_registered", Subject: "c", OccurredAt: now.Add(-2 * time.Hour)},
	}

	merged := MergeActivity(items, 2)
	require.Len(t, merged, 2)
	assert.Equal(t, "b", merged[0].Subject)
	assert.Equal(t, "c", merged[1].Subject)
}
