package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Application state machine:
// pending -> under_review -> shortlisted -> interview -> accepted | rejected,
// withdrawn is reachable from any non-terminal state (applicant only).
const (
	ApplicationStatusPending     = "pending"
	ApplicationStatusUnderReview = "under_review"
	ApplicationStatusShortlisted = "shortlisted"
	ApplicationStatusInterview   = "interview"
	ApplicationStatusRejected    = "rejected"
	ApplicationStatusAccepted    = "accepted"
	ApplicationStatusWithdrawn   = "withdrawn"
)

type Applicant struct {
	ID             primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	JobID          primitive.ObjectID  `bson:"jobId" json:"jobId"`
	EmployerID     primitive.ObjectID  `bson:"employerId" json:"employerId"`
	UserID         primitive.ObjectID  `bson:"userId" json:"userId"`
	DocumentID     *primitive.ObjectID `bson:"documentId,omitempty" json:"documentId,omitempty"`
	ResumeUploadID *primitive.ObjectID `bson:"resumeUploadId,omitempty" json:"resumeUploadId,omitempty"`
	Status         string              `bson:"status" json:"status"`
	CoverLetter    string              `bson:"coverLetter,omitempty" json:"coverLetter,omitempty"`
	AppliedAt      time.Time           `bson:"appliedAt" json:"appliedAt"`
	ReviewedAt     *time.Time          `bson:"reviewedAt,omitempty" json:"reviewedAt,omitempty"`
	UpdatedAt      time.Time           `bson:"updatedAt" json:"updatedAt"`
}
