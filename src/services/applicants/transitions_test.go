package applicants

import (
	"testing"

	"Backend-CorpsConnect/src/models"

	"github.com/stretchr/testify/assert"
)

func TestPipelineMovesForward(t *testing.T) {
	assert.True(t, CanTransition(models.ApplicationStatusPending, models.ApplicationStatusUnderReview))
	assert.True(t, CanTransition(models.ApplicationStatusUnderReview, models.ApplicationStatusShortlisted))
	assert.True(t, CanTransition(models.ApplicationStatusShortlisted, models.ApplicationStatusInterview))
	assert.True(t, CanTransition(models.ApplicationStatusInterview, models.ApplicationStatusAccepted))
	assert.True(t, CanTransition(models.ApplicationStatusInterview, models.ApplicationStatusRejected))
}

func TestPipelineRejectsBackwardMoves(t *testing.T) {
	assert.False(t, CanTransition(models.ApplicationStatusShortlisted, models.ApplicationStatusPending))
	assert.False(t, CanTransition(models.ApplicationStatusInterview, models.ApplicationStatusUnderReview))
}

func TestTerminalStatesAreFinal(t *testing.T) {
	for _, terminal := range []string{
		models.ApplicationStatusAccepted,
		models.ApplicationStatusRejected,
		models.ApplicationStatusWithdrawn,
	} {
		assert.True(t, IsTerminal(terminal))
		assert.False(t, CanTransition(terminal, models.ApplicationStatusPending))
		assert.False(t, CanTransition(terminal, models.ApplicationStatusWithdrawn))
	}
}

func TestWithdrawAllowedFromAnyOpenState(t *testing.T) {
	for _, open := range []string{
		models.ApplicationStatusPending,
		models.ApplicationStatusUnderReview,
		models.ApplicationStatusShortlisted,
		models.ApplicationStatusInterview,
	} {
		assert.True(t, CanTransition(open, models.ApplicationStatusWithdrawn), open)
		assert.False(t, IsTerminal(open))
	}
}

func TestRejectionSkipsAreAllowed(t *testing.T) {
	// An employer can reject straight from pending.
	assert.True(t, CanTransition(models.ApplicationStatusPending, models.ApplicationStatusRejected))
	// But cannot accept without at least shortlisting.
	assert.False(t, CanTransition(models.ApplicationStatusPending, models.ApplicationStatusAccepted))
	assert.False(t, CanTransition(models.ApplicationStatusUnderReview, models.ApplicationStatusAccepted))
}
