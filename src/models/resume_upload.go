package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ResumeUpload is metadata for an uploaded resume file, distinct from
// documents built in the editor.
type ResumeUpload struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID       primitive.ObjectID `bson:"userId" json:"userId"`
	OriginalName string             `bson:"originalName" json:"originalName"`
	FileName     string             `bson:"fileName" json:"fileName"`
	FilePath     string             `bson:"filePath" json:"-"`
	MimeType     string             `bson:"mimeType" json:"mimeType"`
	Size         int64              `bson:"size" json:"size"`
	UploadedAt   time.Time          `bson:"uploadedAt" json:"uploadedAt"`
}
