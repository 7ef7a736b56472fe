package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Job lifecycle: draft -> published -> closed, archived is terminal.
const (
	JobStatusDraft     = "draft"
	JobStatusPublished = "published"
	JobStatusClosed    = "closed"
	JobStatusArchived  = "archived"
)

// SalaryRange - currency defaults to NGN, IsPublic controls exposure on listings.
type SalaryRange struct {
	Min      int    `bson:"min" json:"min" validate:"gte=0"`
	Max      int    `bson:"max" json:"max" validate:"gte=0"`
	Currency string `bson:"currency" json:"currency"`
	IsPublic bool   `bson:"isPublic" json:"isPublic"`
}

// HiringLocation is either nation-wide or pinned to one state.
type HiringLocation struct {
	Type  string `bson:"type" json:"type" validate:"oneof=nation-wide state"`
	State string `bson:"state,omitempty" json:"state,omitempty"`
}

type Job struct {
	ID               primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	EmployerID       primitive.ObjectID   `bson:"employerId" json:"employerId"`
	Title            string               `bson:"title" json:"title"`
	JobType          string               `bson:"jobType" json:"jobType"`
	ExperienceLevel  string               `bson:"experienceLevel" json:"experienceLevel"`
	WorkLocation     string               `bson:"workLocation" json:"workLocation"`
	JobPeriod        string               `bson:"jobPeriod" json:"jobPeriod"`
	Skills           []string             `bson:"skills" json:"skills"`
	AboutJob         string               `bson:"aboutJob" json:"aboutJob"`
	Requirements     string               `bson:"requirements" json:"requirements"`
	SalaryRange      SalaryRange          `bson:"salaryRange" json:"salaryRange"`
	HiringLocation   HiringLocation       `bson:"hiringLocation" json:"hiringLocation"`
	Status           string               `bson:"status" json:"status"`
	ApplicationCount int                  `bson:"applicationCount" json:"applicationCount"`
	ViewCount        int                  `bson:"viewCount" json:"viewCount"`
	Applicants       []primitive.ObjectID `bson:"applicants" json:"applicants"`
	PublishedAt      *time.Time           `bson:"publishedAt,omitempty" json:"publishedAt,omitempty"`
	ClosedAt         *time.Time           `bson:"closedAt,omitempty" json:"closedAt,omitempty"`
	CreatedAt        time.Time            `bson:"createdAt" json:"createdAt"`
	UpdatedAt        time.Time            `bson:"updatedAt" json:"updatedAt"`
}

// IsActive reports whether the job accepts applications.
func (j *Job) IsActive() bool {
	return j.Status == JobStatusPublished
}
