package uploads

import (
	"context"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"Backend-CorpsConnect/src/database"
	"Backend-CorpsConnect/src/models"
	"Backend-CorpsConnect/src/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const maxResumeSize = 5 << 20 // 5 MB

const resumeDir = "public/resumes"

var allowedMimeTypes = map[string]string{
	"application/pdf":    ".pdf",
	"application/msword": ".doc",
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": ".docx",
}

// SaveResume stores an uploaded resume on disk under a generated name
// and records its metadata.
func SaveResume(userID string, file *multipart.FileHeader) (*models.ResumeUpload, error) {
	uID, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, utils.BadRequest("Invalid user ID")
	}
	if file.Size > maxResumeSize {
		return nil, utils.BadRequest("Resume must be 5MB or smaller")
	}

	contentType := file.Header.Get("Content-Type")
	ext, ok := allowedMimeTypes[contentType]
	if !ok {
		return nil, utils.BadRequest("Only PDF and Word documents are accepted")
	}

	if err := os.MkdirAll(resumeDir, 0o755); err != nil {
		return nil, err
	}

	fileName := uuid.NewString() + ext
	filePath := filepath.Join(resumeDir, fileName)

	src, err := file.Open()
	if err != nil {
		return nil, err
	}
	defer src.Close()

	dst, err := os.Create(filePath)
	if err != nil {
		return nil, err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		os.Remove(filePath)
		return nil, err
	}

	upload := models.ResumeUpload{
		UserID:       uID,
		OriginalName: filepath.Base(strings.ReplaceAll(file.Filename, "\\", "/")),
		FileName:     fileName,
		FilePath:     filePath,
		MimeType:     contentType,
		Size:         file.Size,
		UploadedAt:   time.Now(),
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	res, err := database.ResumeUploadCollection.InsertOne(ctx, upload)
	if err != nil {
		os.Remove(filePath)
		return nil, err
	}
	upload.ID = res.InsertedID.(primitive.ObjectID)
	return &upload, nil
}

// ListResumes returns the user's uploads, newest first.
func ListResumes(userID string) ([]models.ResumeUpload, error) {
	uID, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, utils.BadRequest("Invalid user ID")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "uploadedAt", Value: -1}})
	cursor, err := database.ResumeUploadCollection.Find(ctx, bson.M{"userId": uID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	uploads := []models.ResumeUpload{}
	if err := cursor.All(ctx, &uploads); err != nil {
		return nil, err
	}
	return uploads, nil
}

func getOwnedResume(ctx context.Context, uploadID, userID string) (*models.ResumeUpload, error) {
	id, err := primitive.ObjectIDFromHex(uploadID)
	if err != nil {
		return nil, utils.BadRequest("Invalid resume upload ID")
	}

	var upload models.ResumeUpload
	if err := database.ResumeUploadCollection.FindOne(ctx, bson.M{"_id": id}).Decode(&upload); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, utils.NotFound("Resume upload not found")
		}
		return nil, err
	}
	if upload.UserID.Hex() != userID {
		return nil, utils.Forbidden("You do not own this resume")
	}
	return &upload, nil
}

// GetResume returns one upload's metadata for its owner.
func GetResume(uploadID, userID string) (*models.ResumeUpload, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	return getOwnedResume(ctx, uploadID, userID)
}

// ResumeFile returns the on-disk path and download name for an upload.
func ResumeFile(uploadID, userID string) (path string, name string, err error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	upload, err := getOwnedResume(ctx, uploadID, userID)
	if err != nil {
		return "", "", err
	}
	if _, err := os.Stat(upload.FilePath); err != nil {
		return "", "", utils.NotFound("Resume file is missing")
	}
	return upload.FilePath, upload.OriginalName, nil
}

// DeleteResume removes an upload and its file. Uploads referenced by an
// open application stay put.
func DeleteResume(uploadID, userID string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	upload, err := getOwnedResume(ctx, uploadID, userID)
	if err != nil {
		return err
	}

	inUse, err := database.ApplicantCollection.CountDocuments(ctx, bson.M{
		"resumeUploadId": upload.ID,
		"status":         bson.M{"$nin": bson.A{models.ApplicationStatusWithdrawn, models.ApplicationStatusRejected}},
	})
	if err != nil {
		return err
	}
	if inUse > 0 {
		return utils.Conflict("Resume is attached to an active application")
	}

	if _, err := database.ResumeUploadCollection.DeleteOne(ctx, bson.M{"_id": upload.ID}); err != nil {
		return err
	}
	_ = os.Remove(upload.FilePath)
	return nil
}
