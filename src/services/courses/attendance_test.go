package courses

import (
	"strings"
	"testing"
	"time"

	"Backend-CorpsConnect/src/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAttendanceRate(t *testing.T) {
	assert.Equal(t, 75.0, AttendanceRate(3, 4))
	assert.Equal(t, 0.0, AttendanceRate(0, 10))
	assert.Equal(t, 100.0, AttendanceRate(8, 8))
	assert.InDelta(t, 66.67, AttendanceRate(2, 3), 0.01)
}

func TestAttendanceRateWithNoSessions(t *testing.T) {
	// A course that has never run a session penalises nobody.
	assert.Equal(t, 100.0, AttendanceRate(0, 0))
}

func TestGenerateSessionCode(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		code, err := GenerateSessionCode()
		require.NoError(t, err)
		assert.Len(t, code, sessionCodeLength)
		for _, r := range code {
			assert.True(t, strings.ContainsRune(sessionCodeAlphabet, r), "unexpected rune %q", r)
		}
		seen[code] = true
	}
	assert.Greater(t, len(seen), 45, "codes should be effectively unique")
}

func TestScanStatus(t *testing.T) {
	start := time.Now()
	assert.Equal(t, models.AttendanceStatusPresent, scanStatus(start, start.Add(5*time.Minute)))
	assert.Equal(t, models.AttendanceStatusPresent, scanStatus(start, start.Add(lateThreshold)))
	assert.Equal(t, models.AttendanceStatusLate, scanStatus(start, start.Add(lateThreshold+time.Second)))
}
