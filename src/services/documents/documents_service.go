package documents

import (
	"context"
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

type CreateDocumentInput struct {
	Title string `json:"title" validate:"required,max=120"`
}

// DocumentDetail is a document with its sub-entities resolved.
type DocumentDetail struct {
	models.Document
	PersonalInfo *models.PersonalInfo `json:"personalInfo,omitempty"`
	Experiences  []models.Experience  `json:"experiences"`
	Educations   []models.Education   `json:"educations"`
	Skills       []models.Skill       `json:"skills"`
}

// CreateDocument starts a new resume with author details snapshotted
// from the account.
func CreateDocument(userID string, input CreateDocumentInput) (*models.Document, error) {
	uID, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, utils.BadRequest("Invalid user ID")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var user models.User
	if err := database.UserCollection.FindOne(ctx, bson.M{"_id": uID}).Decode(&user); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, utils.NotFound("User not found")
		}
		return nil, err
	}

	now := time.Now()
	doc := models.Document{
		UserID:      uID,
		DocumentID:  uuid.NewString(),
		Title:       input.Title,
		ThemeColor:  "#7c3aed",
		Status:      models.DocumentStatusPrivate,
		AuthorName:  user.FullName(),
		AuthorEmail: user.Email,
		Experiences: []primitive.ObjectID{},
		Educations:  []primitive.ObjectID{},
		Skills:      []primitive.ObjectID{},
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	res, err := database.DocumentCollection.InsertOne(ctx, doc)
	if err != nil {
		return nil, err
	}
	doc.ID = res.InsertedID.(primitive.ObjectID)
	return &doc, nil
}

// ListDocuments returns the user's documents, archived ones excluded.
func ListDocuments(userID string) ([]models.Document, error) {
	return listByStatus(userID, bson.M{"$ne": models.DocumentStatusArchived})
}

// ListArchivedDocuments is the trash view.
func ListArchivedDocuments(userID string) ([]models.Document, error) {
	return listByStatus(userID, models.DocumentStatusArchived)
}

func listByStatus(userID string, status any) ([]models.Document, error) {
	uID, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, utils.BadRequest("Invalid user ID")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "updatedAt", Value: -1}})
	cursor, err := database.DocumentCollection.Find(ctx, bson.M{"userId": uID, "status": status}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	docs := []models.Document{}
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}

func findByPublicID(ctx context.Context, documentID string) (*models.Document, error) {
	var doc models.Document
	err := database.DocumentCollection.FindOne(ctx, bson.M{"documentId": documentID}).Decode(&doc)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, utils.NotFound("Document not found")
		}
		return nil, err
	}
	return &doc, nil
}

// GetDocument resolves a document and its sub-entities for its owner.
func GetDocument(userID, documentID string) (*DocumentDetail, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	doc, err := findByPublicID(ctx, documentID)
	if err != nil {
		return nil, err
	}
	if doc.UserID.Hex() != userID {
		return nil, utils.Forbidden("You do not own this document")
	}
	return resolveDetail(ctx, doc)
}

// GetPublicDocument serves a shared resume by its public id.
func GetPublicDocument(documentID string) (*DocumentDetail, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	doc, err := findByPublicID(ctx, documentID)
	if err != nil {
		return nil, err
	}
	if doc.Status != models.DocumentStatusPublic {
		return nil, utils.NotFound("Document not found")
	}
	return resolveDetail(ctx, doc)
}

func resolveDetail(ctx context.Context, doc *models.Document) (*DocumentDetail, error) {
	detail := &DocumentDetail{
		Document:    *doc,
		Experiences: []models.Experience{},
		Educations:  []models.Education{},
		Skills:      []models.Skill{},
	}

	if doc.PersonalInfoID != nil {
		var info models.PersonalInfo
		err := database.PersonalInfoCollection.FindOne(ctx, bson.M{"_id": doc.PersonalInfoID}).Decode(&info)
		if err == nil {
			detail.PersonalInfo = &info
		} else if err != mongo.ErrNoDocuments {
			return nil, err
		}
	}

	if len(doc.Experiences) > 0 {
		cursor, err := database.ExperienceCollection.Find(ctx, bson.M{"_id": bson.M{"$in": doc.Experiences}})
		if err != nil {
			return nil, err
		}
		if err := cursor.All(ctx, &detail.Experiences); err != nil {
			return nil, err
		}
	}
	if len(doc.Educations) > 0 {
		cursor, err := database.EducationCollection.Find(ctx, bson.M{"_id": bson.M{"$in": doc.Educations}})
		if err != nil {
			return nil, err
		}
		if err := cursor.All(ctx, &detail.Educations); err != nil {
			return nil, err
		}
	}
	if len(doc.Skills) > 0 {
		cursor, err := database.SkillCollection.Find(ctx, bson.M{"_id": bson.M{"$in": doc.Skills}})
		if err != nil {
			return nil, err
		}
		if err := cursor.All(ctx, &detail.Skills); err != nil {
			return nil, err
		}
	}
	return detail, nil
}

// ArchiveDocument moves a document to the trash.
func ArchiveDocument(userID, documentID string) error {
	return setStatus(userID, documentID, models.DocumentStatusArchived)
}

// RestoreDocument brings an archived document back as private.
func RestoreDocument(userID, documentID string) error {
	return setStatus(userID, documentID, models.DocumentStatusPrivate)
}

func setStatus(userID, documentID, status string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	doc, err := findByPublicID(ctx, documentID)
	if err != nil {
		return err
	}
	if doc.UserID.Hex() != userID {
		return utils.Forbidden("You do not own this document")
	}

	_, err = database.DocumentCollection.UpdateOne(ctx,
		bson.M{"_id": doc.ID},
		bson.M{"$set": bson.M{"status": status, "updatedAt": time.Now()}},
	)
	return err
}

// PurgeDocument permanently deletes a document and its sub-entities.
func PurgeDocument(userID, documentID string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	doc, err := findByPublicID(ctx, documentID)
	if err != nil {
		return err
	}
	if doc.UserID.Hex() != userID {
		return utils.Forbidden("You do not own this document")
	}
	if doc.Status != models.DocumentStatusArchived {
		return utils.BadRequest("Archive the document before deleting it permanently")
	}

	if doc.PersonalInfoID != nil {
		if _, err := database.PersonalInfoCollection.DeleteOne(ctx, bson.M{"_id": doc.PersonalInfoID}); err != nil {
			return err
		}
	}
	if len(doc.Experiences) > 0 {
		if _, err := database.ExperienceCollection.DeleteMany(ctx, bson.M{"_id": bson.M{"$in": doc.Experiences}}); err != nil {
			return err
		}
	}
	if len(doc.Educations) > 0 {
		if _, err := database.EducationCollection.DeleteMany(ctx, bson.M{"_id": bson.M{"$in": doc.Educations}}); err != nil {
			return err
		}
	}
	if len(doc.Skills) > 0 {
		if _, err := database.SkillCollection.DeleteMany(ctx, bson.M{"_id": bson.M{"$in": doc.Skills}}); err != nil {
			return err
		}
	}

	_, err = database.DocumentCollection.DeleteOne(ctx, bson.M{"_id": doc.ID})
	return err
}
