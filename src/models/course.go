package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Course lifecycle: draft -> published -> archived.
const (
	CourseStatusDraft     = "draft"
	CourseStatusPublished = "published"
	CourseStatusArchived  = "archived"
)

const (
	AttendanceStatusPresent = "present"
	AttendanceStatusLate    = "late"
	AttendanceStatusAbsent  = "absent"
)

type Course struct {
	ID                 primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	StaffID            primitive.ObjectID   `bson:"staffId" json:"staffId"`
	Title              string               `bson:"title" json:"title"`
	Description        string               `bson:"description" json:"description"`
	Category           string               `bson:"category" json:"category"`
	Level              string               `bson:"level" json:"level"` // beginner, intermediate, advanced
	Duration           int                  `bson:"duration" json:"duration"` // hours
	MaxStudents        int                  `bson:"maxStudents" json:"maxStudents"`
	Skills             []string             `bson:"skills" json:"skills"`
	Prerequisites      []string             `bson:"prerequisites" json:"prerequisites"`
	LearningObjectives []string             `bson:"learningObjectives" json:"learningObjectives"`
	Status             string               `bson:"status" json:"status"`
	CoverImage         string               `bson:"coverImage,omitempty" json:"coverImage,omitempty"`
	EnrolledStudents   []primitive.ObjectID `bson:"enrolledStudents" json:"enrolledStudents"`
	QrSessions         []primitive.ObjectID `bson:"qrSessions" json:"-"`
	TotalSessions      int                  `bson:"totalSessions" json:"totalSessions"`
	IsActive           bool                 `bson:"isActive" json:"isActive"`
	PublishedAt        *time.Time           `bson:"publishedAt,omitempty" json:"publishedAt,omitempty"`
	CreatedAt          time.Time            `bson:"createdAt" json:"createdAt"`
	UpdatedAt          time.Time            `bson:"updatedAt" json:"updatedAt"`
}

// EnrolledCount and AvailableSpots are derived, not stored.
func (c *Course) EnrolledCount() int {
	return len(c.EnrolledStudents)
}

func (c *Course) AvailableSpots() int {
	return c.MaxStudents - len(c.EnrolledStudents)
}

// QrSession is one time-boxed attendance window for a course.
type QrSession struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CourseID    primitive.ObjectID `bson:"courseId" json:"courseId"`
	SessionCode string             `bson:"sessionCode" json:"sessionCode"`
	ExpiresAt   time.Time          `bson:"expiresAt" json:"expiresAt"`
	IsActive    bool               `bson:"isActive" json:"isActive"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
}

type GeoLocation struct {
	Latitude  float64 `bson:"latitude" json:"latitude"`
	Longitude float64 `bson:"longitude" json:"longitude"`
}

// Attendance - one record per (student, session).
type Attendance struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	StudentID primitive.ObjectID `bson:"studentId" json:"studentId"`
	SessionID primitive.ObjectID `bson:"sessionId" json:"sessionId"`
	Status    string             `bson:"status" json:"status"`
	ScannedAt time.Time          `bson:"scannedAt" json:"scannedAt"`
	Location  *GeoLocation       `bson:"location,omitempty" json:"location,omitempty"`
}
