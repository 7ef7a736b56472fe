package applicants

import (
	"context"
	"math"
	"time"

	"Backend-CorpsConnect/src/database"
	"Backend-CorpsConnect/src/models"
	"Backend-CorpsConnect/src/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ApplyInput struct {
	JobID          string `json:"jobId" validate:"required"`
	DocumentID     string `json:"documentId"`
	ResumeUploadID string `json:"resumeUploadId"`
	CoverLetter    string `json:"coverLetter" validate:"omitempty,max=4000"`
}

type ApplicationList struct {
	Applications []models.Applicant `json:"applications"`
	Pagination   models.Pagination  `json:"pagination"`
}

// Apply submits an application to a published job. Exactly one resume
// source is required and it must belong to the applicant. A previously
// withdrawn application is resurrected instead of duplicated.
func Apply(userID string, input ApplyInput) (*models.Applicant, error) {
	uID, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, utils.BadRequest("Invalid user ID")
	}
	jobID, err := primitive.ObjectIDFromHex(input.JobID)
	if err != nil {
		return nil, utils.BadRequest("Invalid job ID")
	}
	if (input.DocumentID == "") == (input.ResumeUploadID == "") {
		return nil, utils.BadRequest("Provide exactly one of documentId or resumeUploadId")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var job models.Job
	if err := database.JobCollection.FindOne(ctx, bson.M{"_id": jobID}).Decode(&job); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, utils.NotFound("Job not found")
		}
		return nil, err
	}
	if !job.IsActive() {
		return nil, utils.BadRequest("This job is not accepting applications")
	}

	var docID, resumeID *primitive.ObjectID
	if input.DocumentID != "" {
		id, err := primitive.ObjectIDFromHex(input.DocumentID)
		if err != nil {
			return nil, utils.BadRequest("Invalid document ID")
		}
		count, err := database.DocumentCollection.CountDocuments(ctx, bson.M{
			"_id":    id,
			"userId": uID,
			"status": bson.M{"$ne": models.DocumentStatusArchived},
		})
		if err != nil {
			return nil, err
		}
		if count == 0 {
			return nil, utils.NotFound("Document not found")
		}
		docID = &id
	} else {
		id, err := primitive.ObjectIDFromHex(input.ResumeUploadID)
		if err != nil {
			return nil, utils.BadRequest("Invalid resume upload ID")
		}
		count, err := database.ResumeUploadCollection.CountDocuments(ctx, bson.M{"_id": id, "userId": uID})
		if err != nil {
			return nil, err
		}
		if count == 0 {
			return nil, utils.NotFound("Resume upload not found")
		}
		resumeID = &id
	}

	now := time.Now()

	var existing models.Applicant
	err = database.ApplicantCollection.FindOne(ctx, bson.M{"jobId": jobID, "userId": uID}).Decode(&existing)
	if err == nil {
		if existing.Status != models.ApplicationStatusWithdrawn {
			return nil, utils.Conflict("You have already applied to this job")
		}
		// Re-applying after withdrawal reuses the record.
		_, err = database.ApplicantCollection.UpdateOne(ctx,
			bson.M{"_id": existing.ID},
			bson.M{
				"$set": bson.M{
					"status":         models.ApplicationStatusPending,
					"documentId":     docID,
					"resumeUploadId": resumeID,
					"coverLetter":    input.CoverLetter,
					"appliedAt":      now,
					"updatedAt":      now,
				},
				"$unset": bson.M{"reviewedAt": ""},
			},
		)
		if err != nil {
			return nil, err
		}
		if err := bumpJobApplicants(ctx, jobID, uID, 1); err != nil {
			return nil, err
		}
		existing.Status = models.ApplicationStatusPending
		existing.DocumentID = docID
		existing.ResumeUploadID = resumeID
		existing.CoverLetter = input.CoverLetter
		existing.AppliedAt = now
		existing.ReviewedAt = nil
		existing.UpdatedAt = now
		return &existing, nil
	}
	if err != mongo.ErrNoDocuments {
		return nil, err
	}

	application := models.Applicant{
		JobID:          jobID,
		EmployerID:     job.EmployerID,
		UserID:         uID,
		DocumentID:     docID,
		ResumeUploadID: resumeID,
		Status:         models.ApplicationStatusPending,
		CoverLetter:    input.CoverLetter,
		AppliedAt:      now,
		UpdatedAt:      now,
	}

	res, err := database.ApplicantCollection.InsertOne(ctx, application)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, utils.Conflict("You have already applied to this job")
		}
		return nil, err
	}
	application.ID = res.InsertedID.(primitive.ObjectID)

	if err := bumpJobApplicants(ctx, jobID, uID, 1); err != nil {
		return nil, err
	}
	return &application, nil
}

// bumpJobApplicants keeps the job's denormalized applicant list and
// counter in step with the applications collection.
func bumpJobApplicants(ctx context.Context, jobID, userID primitive.ObjectID, delta int) error {
	update := bson.M{"$inc": bson.M{"applicationCount": delta}}
	if delta > 0 {
		update["$addToSet"] = bson.M{"applicants": userID}
	} else {
		update["$pull"] = bson.M{"applicants": userID}
	}
	_, err := database.JobCollection.UpdateOne(ctx, bson.M{"_id": jobID}, update)
	return err
}

// ListJobApplications returns applications for one of the employer's jobs.
func ListJobApplications(employerID, jobID, status string, page, limit int) (*ApplicationList, error) {
	empID, err := primitive.ObjectIDFromHex(employerID)
	if err != nil {
		return nil, utils.BadRequest("Invalid employer ID")
	}
	jID, err := primitive.ObjectIDFromHex(jobID)
	if err != nil {
		return nil, utils.BadRequest("Invalid job ID")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	count, err := database.JobCollection.CountDocuments(ctx, bson.M{"_id": jID, "employerId": empID})
	if err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, utils.NotFound("Job not found")
	}

	filter := bson.M{"jobId": jID}
	if status != "" {
		filter["status"] = status
	}
	return listApplications(ctx, filter, page, limit)
}

// ListEmployerApplications returns applications across all of the
// employer's jobs.
func ListEmployerApplications(employerID, status string, page, limit int) (*ApplicationList, error) {
	empID, err := primitive.ObjectIDFromHex(employerID)
	if err != nil {
		return nil, utils.BadRequest("Invalid employer ID")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	filter := bson.M{"employerId": empID}
	if status != "" {
		filter["status"] = status
	}
	return listApplications(ctx, filter, page, limit)
}

// ListMyApplications returns the corps member's own applications.
func ListMyApplications(userID string, status string, page, limit int) (*ApplicationList, error) {
	uID, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, utils.BadRequest("Invalid user ID")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	filter := bson.M{"userId": uID}
	if status != "" {
		filter["status"] = status
	}
	return listApplications(ctx, filter, page, limit)
}

func listApplications(ctx context.Context, filter bson.M, page, limit int) (*ApplicationList, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 10
	}

	total, err := database.ApplicantCollection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, err
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "appliedAt", Value: -1}}).
		SetSkip(int64((page - 1) * limit)).
		SetLimit(int64(limit))

	cursor, err := database.ApplicantCollection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	apps := []models.Applicant{}
	if err := cursor.All(ctx, &apps); err != nil {
		return nil, err
	}

	return &ApplicationList{
		Applications: apps,
		Pagination: models.Pagination{
			Total:      total,
			Page:       page,
			Limit:      limit,
			TotalPages: int(math.Ceil(float64(total) / float64(limit))),
		},
	}, nil
}

// GetApplication returns one application, visible to its applicant and
// the job's employer only.
func GetApplication(applicationID, callerID string) (*models.Applicant, error) {
	id, err := primitive.ObjectIDFromHex(applicationID)
	if err != nil {
		return nil, utils.BadRequest("Invalid application ID")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var app models.Applicant
	if err := database.ApplicantCollection.FindOne(ctx, bson.M{"_id": id}).Decode(&app); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, utils.NotFound("Application not found")
		}
		return nil, err
	}
	if app.UserID.Hex() != callerID && app.EmployerID.Hex() != callerID {
		return nil, utils.Forbidden("You cannot view this application")
	}
	return &app, nil
}

// UpdateApplicationStatus moves an application through the review
// pipeline. Only the owning employer may move it, and only along valid
// transitions.
func UpdateApplicationStatus(employerID, applicationID, newStatus string) (*models.Applicant, error) {
	id, err := primitive.ObjectIDFromHex(applicationID)
	if err != nil {
		return nil, utils.BadRequest("Invalid application ID")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var app models.Applicant
	if err := database.ApplicantCollection.FindOne(ctx, bson.M{"_id": id}).Decode(&app); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, utils.NotFound("Application not found")
		}
		return nil, err
	}
	if app.EmployerID.Hex() != employerID {
		return nil, utils.Forbidden("You do not own this application's job")
	}
	if !CanTransition(app.Status, newStatus) {
		return nil, utils.BadRequest("Cannot move application from %s to %s", app.Status, newStatus)
	}

	now := time.Now()
	set := bson.M{"status": newStatus, "updatedAt": now}
	if app.ReviewedAt == nil {
		set["reviewedAt"] = now
		app.ReviewedAt = &now
	}

	_, err = database.ApplicantCollection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		return nil, err
	}
	app.Status = newStatus
	app.UpdatedAt = now
	return &app, nil
}

// Withdraw lets the applicant pull out of a non-terminal application.
func Withdraw(userID, applicationID string) (*models.Applicant, error) {
	id, err := primitive.ObjectIDFromHex(applicationID)
	if err != nil {
		return nil, utils.BadRequest("Invalid application ID")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var app models.Applicant
	if err := database.ApplicantCollection.FindOne(ctx, bson.M{"_id": id}).Decode(&app); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, utils.NotFound("Application not found")
		}
		return nil, err
	}
	if app.UserID.Hex() != userID {
		return nil, utils.Forbidden("You cannot withdraw this application")
	}
	if !CanTransition(app.Status, models.ApplicationStatusWithdrawn) {
		return nil, utils.BadRequest("Application can no longer be withdrawn")
	}

	now := time.Now()
	_, err = database.ApplicantCollection.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"status": models.ApplicationStatusWithdrawn, "updatedAt": now}},
	)
	if err != nil {
		return nil, err
	}
	if err := bumpJobApplicants(ctx, app.JobID, app.UserID, -1); err != nil {
		return nil, err
	}
	app.Status = models.ApplicationStatusWithdrawn
	app.UpdatedAt = now
	return &app, nil
}
