package jobs

import (
	"testing"

	"Backend-CorpsConnect/src/utils"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePage(t *testing.T) {
	page, limit := normalizePage(0, 0)
	assert.Equal(t, 1, page)
	assert.Equal(t, 10, limit)

	page, limit = normalizePage(3, 25)
	assert.Equal(t, 3, page)
	assert.Equal(t, 25, limit)

	_, limit = normalizePage(1, 500)
	assert.Equal(t, 10, limit)
}

func TestCreateJobInputValidation(t *testing.T) {
	input := CreateJobInput{}
	assert.Error(t, utils.Validate.Struct(input))

	input = CreateJobInput{
		Title:           "Backend Engineer",
		JobType:         "full-time",
		ExperienceLevel: "entry",
		WorkLocation:    "remote",
		Skills:          []string{"go"},
		AboutJob:        "Build services",
		Requirements:    "Go experience",
	}
	input.HiringLocation.Type = "nation-wide"
	assert.NoError(t, utils.Validate.Struct(input))

	input.JobType = "gig"
	assert.Error(t, utils.Validate.Struct(input))
}
