package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	DocumentStatusPrivate  = "private"
	DocumentStatusPublic   = "public"
	DocumentStatusArchived = "archived"
)

// Document is a resume built in the editor. Sub-entities live in their own
// collections and are linked by ID so the client can address them in diffs.
type Document struct {
	ID              primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	UserID          primitive.ObjectID   `bson:"userId" json:"userId"`
	DocumentID      string               `bson:"documentId" json:"documentId"` // public uuid
	Title           string               `bson:"title" json:"title"`
	Summary         string               `bson:"summary,omitempty" json:"summary,omitempty"`
	ThemeColor      string               `bson:"themeColor" json:"themeColor"`
	Thumbnail       string               `bson:"thumbnail,omitempty" json:"thumbnail,omitempty"`
	CurrentPosition int                  `bson:"currentPosition" json:"currentPosition"`
	Status          string               `bson:"status" json:"status"`
	AuthorName      string               `bson:"authorName" json:"authorName"`
	AuthorEmail     string               `bson:"authorEmail" json:"authorEmail"`
	PersonalInfoID  *primitive.ObjectID  `bson:"personalInfo,omitempty" json:"personalInfoId,omitempty"`
	Experiences     []primitive.ObjectID `bson:"experiences" json:"experienceIds"`
	Educations      []primitive.ObjectID `bson:"educations" json:"educationIds"`
	Skills          []primitive.ObjectID `bson:"skills" json:"skillIds"`
	CreatedAt       time.Time            `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time            `bson:"updatedAt" json:"updatedAt"`
}

type PersonalInfo struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	FirstName string             `bson:"firstName,omitempty" json:"firstName,omitempty"`
	LastName  string             `bson:"lastName,omitempty" json:"lastName,omitempty"`
	JobTitle  string             `bson:"jobTitle,omitempty" json:"jobTitle,omitempty"`
	Address   string             `bson:"address,omitempty" json:"address,omitempty"`
	Phone     string             `bson:"phone,omitempty" json:"phone,omitempty"`
	Email     string             `bson:"email,omitempty" json:"email,omitempty"`
}

type Experience struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title            string             `bson:"title,omitempty" json:"title,omitempty"`
	CompanyName      string             `bson:"companyName,omitempty" json:"companyName,omitempty"`
	City             string             `bson:"city,omitempty" json:"city,omitempty"`
	State            string             `bson:"state,omitempty" json:"state,omitempty"`
	CurrentlyWorking bool               `bson:"currentlyWorking" json:"currentlyWorking"`
	WorkSummary      string             `bson:"workSummary,omitempty" json:"workSummary,omitempty"`
	StartDate        *time.Time         `bson:"startDate,omitempty" json:"startDate,omitempty"`
	EndDate          *time.Time         `bson:"endDate,omitempty" json:"endDate,omitempty"`
}

type Education struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UniversityName string             `bson:"universityName,omitempty" json:"universityName,omitempty"`
	Degree         string             `bson:"degree,omitempty" json:"degree,omitempty"`
	Major          string             `bson:"major,omitempty" json:"major,omitempty"`
	Description    string             `bson:"description,omitempty" json:"description,omitempty"`
	StartDate      *time.Time         `bson:"startDate,omitempty" json:"startDate,omitempty"`
	EndDate        *time.Time         `bson:"endDate,omitempty" json:"endDate,omitempty"`
}

type Skill struct {
	ID     primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name   string             `bson:"name,omitempty" json:"name,omitempty"`
	Rating int                `bson:"rating" json:"rating"`
}
