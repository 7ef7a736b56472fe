package services

import (
	"testing"
	"time"

	"Backend-CorpsConnect/src/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMergeProfileOverlaysNonZeroFields(t *testing.T) {
	current := &models.UserProfile{
		PhoneNumber:    "0800000000",
		StateOfService: "Lagos",
		Bio:            "original bio",
	}
	incoming := &models.UserProfile{
		PhoneNumber: "0811111111",
		StateCode:   "LA/24C/1234",
	}

	merged := mergeProfile(current, incoming)

	assert.Equal(t, "0811111111", merged.PhoneNumber)
	assert.Equal(t, "LA/24C/1234", merged.StateCode)
	assert.Equal(t, "Lagos", merged.StateOfService)
	assert.Equal(t, "original bio", merged.Bio)
}

func TestMergeProfileFromNil(t *testing.T) {
	dob := time.Date(2000, 6, 1, 0, 0, 0, 0, time.UTC)
	incoming := &models.UserProfile{
		CallUpNumber: "NYSC/2026/001",
		DateOfBirth:  &dob,
		Skills:       []models.ProfileSkill{{Name: "Go", Level: "intermediate"}},
	}

	merged := mergeProfile(nil, incoming)
	require.NotNil(t, merged)
	assert.Equal(t, "NYSC/2026/001", merged.CallUpNumber)
	assert.Equal(t, &dob, merged.DateOfBirth)
	assert.Len(t, merged.Skills, 1)
}

func TestMergeProfileDoesNotMutateCurrent(t *testing.T) {
	current := &models.UserProfile{Bio: "before"}
	_ = mergeProfile(current, &models.UserProfile{Bio: "after"})
	assert.Equal(t, "before", current.Bio)
}
