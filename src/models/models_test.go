package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestJobIsActive(t *testing.T) {
	job := Job{Status: JobStatusPublished}
	assert.True(t, job.IsActive())

	for _, status := range []string{JobStatusDraft, JobStatusClosed, JobStatusArchived} {
		job.Status = status
		assert.False(t, job.IsActive(), status)
	}
}

func TestCourseCapacity(t *testing.T) {
	course := Course{
		MaxStudents: 3,
		EnrolledStudents: []primitive.ObjectID{
			primitive.NewObjectID(),
			primitive.NewObjectID(),
		},
	}
	assert.Equal(t, 2, course.EnrolledCount())
	assert.Equal(t, 1, course.AvailableSpots())
}

func TestUserFullName(t *testing.T) {
	u := User{FirstName: "Ada", LastName: "Obi"}
	assert.Equal(t, "Ada Obi", u.FullName())
}
