package documents

import (
	"context"
	"time"

	"Backend-CorpsConnect/src/database"
	"Backend-CorpsConnect/src/models"
	"Backend-CorpsConnect/src/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// UpdateDocumentInput carries the full editor state. Sub-entity slices
// are reconciled against what is stored: items with an id are updated,
// items without one are created, and stored items missing from the
// payload are deleted. A nil slice leaves that section untouched.
type UpdateDocumentInput struct {
	Title           *string              `json:"title" validate:"omitempty,max=120"`
	Summary         *string              `json:"summary"`
	ThemeColor      *string              `json:"themeColor"`
	Thumbnail       *string              `json:"thumbnail"`
	CurrentPosition *int                 `json:"currentPosition"`
	Status          *string              `json:"status" validate:"omitempty,oneof=private public archived"`
	PersonalInfo    *models.PersonalInfo `json:"personalInfo"`
	Experiences     []models.Experience  `json:"experiences"`
	Educations      []models.Education   `json:"educations"`
	Skills          []models.Skill       `json:"skills"`
}

// UpdateDocument applies editor changes to a document and reconciles
// its sub-collections.
func UpdateDocument(userID, documentID string, input UpdateDocumentInput) (*DocumentDetail, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	doc, err := findByPublicID(ctx, documentID)
	if err != nil {
		return nil, err
	}
	if doc.UserID.Hex() != userID {
		return nil, utils.Forbidden("You do not own this document")
	}
	if doc.Status == models.DocumentStatusArchived {
		return nil, utils.BadRequest("Restore the document before editing it")
	}

	set := bson.M{"updatedAt": time.Now()}
	if input.Title != nil {
		set["title"] = *input.Title
	}
	if input.Summary != nil {
		set["summary"] = *input.Summary
	}
	if input.ThemeColor != nil {
		set["themeColor"] = *input.ThemeColor
	}
	if input.Thumbnail != nil {
		set["thumbnail"] = *input.Thumbnail
	}
	if input.CurrentPosition != nil {
		set["currentPosition"] = *input.CurrentPosition
	}
	if input.Status != nil {
		set["status"] = *input.Status
	}

	if input.PersonalInfo != nil {
		infoID, err := upsertPersonalInfo(ctx, doc, input.PersonalInfo)
		if err != nil {
			return nil, err
		}
		set["personalInfo"] = infoID
	}

	if input.Experiences != nil {
		ids, err := reconcileExperiences(ctx, doc.Experiences, input.Experiences)
		if err != nil {
			return nil, err
		}
		set["experiences"] = ids
	}
	if input.Educations != nil {
		ids, err := reconcileEducations(ctx, doc.Educations, input.Educations)
		if err != nil {
			return nil, err
		}
		set["educations"] = ids
	}
	if input.Skills != nil {
		ids, err := reconcileSkills(ctx, doc.Skills, input.Skills)
		if err != nil {
			return nil, err
		}
		set["skills"] = ids
	}

	_, err = database.DocumentCollection.UpdateOne(ctx, bson.M{"_id": doc.ID}, bson.M{"$set": set})
	if err != nil {
		return nil, err
	}

	return GetDocument(userID, documentID)
}

func upsertPersonalInfo(ctx context.Context, doc *models.Document, info *models.PersonalInfo) (primitive.ObjectID, error) {
	if doc.PersonalInfoID != nil {
		_, err := database.PersonalInfoCollection.UpdateOne(ctx,
			bson.M{"_id": doc.PersonalInfoID},
			bson.M{"$set": bson.M{
				"firstName": info.FirstName,
				"lastName":  info.LastName,
				"jobTitle":  info.JobTitle,
				"address":   info.Address,
				"phone":     info.Phone,
				"email":     info.Email,
			}},
		)
		return *doc.PersonalInfoID, err
	}

	info.ID = primitive.NilObjectID
	res, err := database.PersonalInfoCollection.InsertOne(ctx, info)
	if err != nil {
		return primitive.NilObjectID, err
	}
	return res.InsertedID.(primitive.ObjectID), nil
}

// removedIDs returns stored ids that the payload no longer references.
func removedIDs(stored, kept []primitive.ObjectID) []primitive.ObjectID {
	keep := make(map[primitive.ObjectID]struct{}, len(kept))
	for _, id := range kept {
		keep[id] = struct{}{}
	}
	removed := []primitive.ObjectID{}
	for _, id := range stored {
		if _, ok := keep[id]; !ok {
			removed = append(removed, id)
		}
	}
	return removed
}

func deleteRemoved(ctx context.Context, coll *mongo.Collection, stored, kept []primitive.ObjectID) error {
	removed := removedIDs(stored, kept)
	if len(removed) == 0 {
		return nil
	}
	_, err := coll.DeleteMany(ctx, bson.M{"_id": bson.M{"$in": removed}})
	return err
}

func reconcileExperiences(ctx context.Context, stored []primitive.ObjectID, incoming []models.Experience) ([]primitive.ObjectID, error) {
	ids := make([]primitive.ObjectID, 0, len(incoming))
	for i := range incoming {
		exp := incoming[i]
		if exp.ID.IsZero() {
			res, err := database.ExperienceCollection.InsertOne(ctx, exp)
			if err != nil {
				return nil, err
			}
			ids = append(ids, res.InsertedID.(primitive.ObjectID))
			continue
		}
		_, err := database.ExperienceCollection.UpdateOne(ctx,
			bson.M{"_id": exp.ID},
			bson.M{"$set": bson.M{
				"title":            exp.Title,
				"companyName":      exp.CompanyName,
				"city":             exp.City,
				"state":            exp.State,
				"currentlyWorking": exp.CurrentlyWorking,
				"workSummary":      exp.WorkSummary,
				"startDate":        exp.StartDate,
				"endDate":          exp.EndDate,
			}},
		)
		if err != nil {
			return nil, err
		}
		ids = append(ids, exp.ID)
	}
	if err := deleteRemoved(ctx, database.ExperienceCollection, stored, ids); err != nil {
		return nil, err
	}
	return ids, nil
}

func reconcileEducations(ctx context.Context, stored []primitive.ObjectID, incoming []models.Education) ([]primitive.ObjectID, error) {
	ids := make([]primitive.ObjectID, 0, len(incoming))
	for i := range incoming {
		edu := incoming[i]
		if edu.ID.IsZero() {
			res, err := database.EducationCollection.InsertOne(ctx, edu)
			if err != nil {
				return nil, err
			}
			ids = append(ids, res.InsertedID.(primitive.ObjectID))
			continue
		}
		_, err := database.EducationCollection.UpdateOne(ctx,
			bson.M{"_id": edu.ID},
			bson.M{"$set": bson.M{
				"universityName": edu.UniversityName,
				"degree":         edu.Degree,
				"major":          edu.Major,
				"description":    edu.Description,
				"startDate":      edu.StartDate,
				"endDate":        edu.EndDate,
			}},
		)
		if err != nil {
			return nil, err
		}
		ids = append(ids, edu.ID)
	}
	if err := deleteRemoved(ctx, database.EducationCollection, stored, ids); err != nil {
		return nil, err
	}
	return ids, nil
}

func reconcileSkills(ctx context.Context, stored []primitive.ObjectID, incoming []models.Skill) ([]primitive.ObjectID, error) {
	ids := make([]primitive.ObjectID, 0, len(incoming))
	for i := range incoming {
		skill := incoming[i]
		if skill.ID.IsZero() {
			res, err := database.SkillCollection.InsertOne(ctx, skill)
			if err != nil {
				return nil, err
			}
			ids = append(ids, res.InsertedID.(primitive.ObjectID))
			continue
		}
		_, err := database.SkillCollection.UpdateOne(ctx,
			bson.M{"_id": skill.ID},
			bson.M{"$set": bson.M{"name": skill.Name, "rating": skill.Rating}},
		)
		if err != nil {
			return nil, err
		}
		ids = append(ids, skill.ID)
	}
	if err := deleteRemoved(ctx, database.SkillCollection, stored, ids); err != nil {
		return nil, err
	}
	return ids, nil
}
