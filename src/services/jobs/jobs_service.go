package jobs

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

type CreateJobInput struct {
	Title           string                `json:"title" validate:"required,max=120"`
	JobType         string                `json:"jobType" validate:"required,oneof=full-time part-time contract internship"`
	ExperienceLevel string                `json:"experienceLevel" validate:"required,oneof=entry mid senior"`
	WorkLocation    string                `json:"workLocation" validate:"required,oneof=remote on-site hybrid"`
	JobPeriod       string                `json:"jobPeriod"`
	Skills          []string              `json:"skills" validate:"required,min=1"`
	AboutJob        string                `json:"aboutJob" validate:"required"`
	Requirements    string                `json:"requirements" validate:"required"`
	SalaryRange     models.SalaryRange    `json:"salaryRange"`
	HiringLocation  models.HiringLocation `json:"hiringLocation" validate:"required"`
}

type UpdateJobInput struct {
	Title           string                 `json:"title" validate:"omitempty,max=120"`
	JobType         string                 `json:"jobType" validate:"omitempty,oneof=full-time part-time contract internship"`
	ExperienceLevel string                 `json:"experienceLevel" validate:"omitempty,oneof=entry mid senior"`
	WorkLocation    string                 `json:"workLocation" validate:"omitempty,oneof=remote on-site hybrid"`
	JobPeriod       string                 `json:"jobPeriod"`
	Skills          []string               `json:"skills"`
	AboutJob        string                 `json:"aboutJob"`
	Requirements    string                 `json:"requirements"`
	SalaryRange     *models.SalaryRange    `json:"salaryRange"`
	HiringLocation  *models.HiringLocation `json:"hiringLocation"`
}

type ListJobsQuery struct {
	Search          string `query:"search"`
	JobType         string `query:"jobType"`
	ExperienceLevel string `query:"experienceLevel"`
	WorkLocation    string `query:"workLocation"`
	State           string `query:"state"`
	Status          string `query:"status"`
	Page            int    `query:"page"`
	Limit           int    `query:"limit"`
}

type JobList struct {
	Jobs       []models.Job      `json:"jobs"`
	Pagination models.Pagination `json:"pagination"`
}

func normalizePage(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 10
	}
	return page, limit
}

// CreateJob stores a draft owned by the posting employer.
func CreateJob(employerID string, input CreateJobInput) (*models.Job, error) {
	empID, err := primitive.ObjectIDFromHex(employerID)
	if err != nil {
		return nil, utils.BadRequest("Invalid employer ID")
	}
	if input.HiringLocation.Type == "state" && input.HiringLocation.State == "" {
		return nil, utils.BadRequest("State is required for state-level hiring")
	}
	if input.SalaryRange.Max > 0 && input.SalaryRange.Min > input.SalaryRange.Max {
		return nil, utils.BadRequest("Salary minimum cannot exceed maximum")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	now := time.Now()
	job := models.Job{
		EmployerID:      empID,
		Title:           input.Title,
		JobType:         input.JobType,
		ExperienceLevel: input.ExperienceLevel,
		WorkLocation:    input.WorkLocation,
		JobPeriod:       input.JobPeriod,
		Skills:          input.Skills,
		AboutJob:        input.AboutJob,
		Requirements:    input.Requirements,
		SalaryRange:     input.SalaryRange,
		HiringLocation:  input.HiringLocation,
		Status:          models.JobStatusDraft,
		Applicants:      []primitive.ObjectID{},
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if job.SalaryRange.Currency == "" {
		job.SalaryRange.Currency = "NGN"
	}

	res, err := database.JobCollection.InsertOne(ctx, job)
	if err != nil {
		return nil, err
	}
	job.ID = res.InsertedID.(primitive.ObjectID)
	return &job, nil
}

// getOwnedJob loads a job and rejects callers who do not own it.
func getOwnedJob(ctx context.Context, jobID, employerID string) (*models.Job, error) {
	id, err := primitive.ObjectIDFromHex(jobID)
	if err != nil {
		return nil, utils.BadRequest("Invalid job ID")
	}

	var job models.Job
	if err := database.JobCollection.FindOne(ctx, bson.M{"_id": id}).Decode(&job); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, utils.NotFound("Job not found")
		}
		return nil, err
	}
	if job.EmployerID.Hex() != employerID {
		return nil, utils.Forbidden("You do not own this job posting")
	}
	return &job, nil
}

func UpdateJob(jobID, employerID string, input UpdateJobInput) (*models.Job, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	job, err := getOwnedJob(ctx, jobID, employerID)
	if err != nil {
		return nil, err
	}
	if job.Status == models.JobStatusArchived {
		return nil, utils.BadRequest("Archived jobs cannot be edited")
	}

	set := bson.M{"updatedAt": time.Now()}
	if input.Title != "" {
		set["title"] = input.Title
	}
	if input.JobType != "" {
		set["jobType"] = input.JobType
	}
	if input.ExperienceLevel != "" {
		set["experienceLevel"] = input.ExperienceLevel
	}
	if input.WorkLocation != "" {
		set["workLocation"] = input.WorkLocation
	}
	if input.JobPeriod != "" {
		set["jobPeriod"] = input.JobPeriod
	}
	if len(input.Skills) > 0 {
		set["skills"] = input.Skills
	}
	if input.AboutJob != "" {
		set["aboutJob"] = input.AboutJob
	}
	if input.Requirements != "" {
		set["requirements"] = input.Requirements
	}
	if input.SalaryRange != nil {
		if input.SalaryRange.Max > 0 && input.SalaryRange.Min > input.SalaryRange.Max {
			return nil, utils.BadRequest("Salary minimum cannot exceed maximum")
		}
		set["salaryRange"] = input.SalaryRange
	}
	if input.HiringLocation != nil {
		if input.HiringLocation.Type == "state" && input.HiringLocation.State == "" {
			return nil, utils.BadRequest("State is required for state-level hiring")
		}
		set["hiringLocation"] = input.HiringLocation
	}

	_, err = database.JobCollection.UpdateOne(ctx, bson.M{"_id": job.ID}, bson.M{"$set": set})
	if err != nil {
		return nil, err
	}

	if err := database.JobCollection.FindOne(ctx, bson.M{"_id": job.ID}).Decode(job); err != nil {
		return nil, err
	}
	return job, nil
}

// PublishJob moves a draft live and stamps publishedAt.
func PublishJob(jobID, employerID string) (*models.Job, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	job, err := getOwnedJob(ctx, jobID, employerID)
	if err != nil {
		return nil, err
	}
	if job.Status == models.JobStatusPublished {
		return nil, utils.BadRequest("Job is already published")
	}
	if job.Status != models.JobStatusDraft && job.Status != models.JobStatusClosed {
		return nil, utils.BadRequest("Only draft or closed jobs can be published")
	}

	now := time.Now()
	_, err = database.JobCollection.UpdateOne(ctx,
		bson.M{"_id": job.ID},
		bson.M{"$set": bson.M{
			"status":      models.JobStatusPublished,
			"publishedAt": now,
			"closedAt":    nil,
			"updatedAt":   now,
		}},
	)
	if err != nil {
		return nil, err
	}
	job.Status = models.JobStatusPublished
	job.PublishedAt = &now
	job.ClosedAt = nil
	return job, nil
}

// CloseJob stops new applications and stamps closedAt.
func CloseJob(jobID, employerID string) (*models.Job, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	job, err := getOwnedJob(ctx, jobID, employerID)
	if err != nil {
		return nil, err
	}
	if job.Status != models.JobStatusPublished {
		return nil, utils.BadRequest("Only published jobs can be closed")
	}

	now := time.Now()
	_, err = database.JobCollection.UpdateOne(ctx,
		bson.M{"_id": job.ID},
		bson.M{"$set": bson.M{
			"status":    models.JobStatusClosed,
			"closedAt":  now,
			"updatedAt": now,
		}},
	)
	if err != nil {
		return nil, err
	}
	job.Status = models.JobStatusClosed
	job.ClosedAt = &now
	return job, nil
}

// DeleteJob archives rather than removes so applications keep a target.
func DeleteJob(jobID, employerID string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	job, err := getOwnedJob(ctx, jobID, employerID)
	if err != nil {
		return err
	}
	if job.Status == models.JobStatusPublished {
		return utils.BadRequest("Close the job before deleting it")
	}

	_, err = database.JobCollection.UpdateOne(ctx,
		bson.M{"_id": job.ID},
		bson.M{"$set": bson.M{"status": models.JobStatusArchived, "updatedAt": time.Now()}},
	)
	return err
}

// GetJob returns one job. Unpublished jobs are only visible to their
// owner; public reads bump the view counter.
func GetJob(jobID, viewerID string) (*models.Job, error) {
	id, err := primitive.ObjectIDFromHex(jobID)
	if err != nil {
		return nil, utils.BadRequest("Invalid job ID")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var job models.Job
	if err := database.JobCollection.FindOne(ctx, bson.M{"_id": id}).Decode(&job); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, utils.NotFound("Job not found")
		}
		return nil, err
	}

	isOwner := viewerID != "" && job.EmployerID.Hex() == viewerID
	if job.Status != models.JobStatusPublished && !isOwner {
		return nil, utils.NotFound("Job not found")
	}

	if !isOwner {
		_, _ = database.JobCollection.UpdateOne(ctx,
			bson.M{"_id": id},
			bson.M{"$inc": bson.M{"viewCount": 1}},
		)
		job.ViewCount++
	}
	return &job, nil
}

// ListPublicJobs filters the published board. State filtering matches
// nation-wide jobs as well as jobs pinned to the requested state.
func ListPublicJobs(q ListJobsQuery) (*JobList, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	filter := bson.M{"status": models.JobStatusPublished}
	if q.JobType != "" {
		filter["jobType"] = q.JobType
	}
	if q.ExperienceLevel != "" {
		filter["experienceLevel"] = q.ExperienceLevel
	}
	if q.WorkLocation != "" {
		filter["workLocation"] = q.WorkLocation
	}
	if q.State != "" {
		filter["$or"] = []bson.M{
			{"hiringLocation.type": "nation-wide"},
			{"hiringLocation.state": q.State},
		}
	}
	if q.Search != "" {
		filter["title"] = bson.M{"$regex": q.Search, "$options": "i"}
	}

	return listJobs(ctx, filter, q.Page, q.Limit)
}

// ListEmployerJobs returns the employer's own postings, any status.
func ListEmployerJobs(employerID string, q ListJobsQuery) (*JobList, error) {
	empID, err := primitive.ObjectIDFromHex(employerID)
	if err != nil {
		return nil, utils.BadRequest("Invalid employer ID")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	filter := bson.M{"employerId": empID}
	if q.Status != "" {
		filter["status"] = q.Status
	}
	return listJobs(ctx, filter, q.Page, q.Limit)
}

func listJobs(ctx context.Context, filter bson.M, page, limit int) (*JobList, error) {
	page, limit = normalizePage(page, limit)

	total, err := database.JobCollection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, err
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetSkip(int64((page - 1) * limit)).
		SetLimit(int64(limit))

	cursor, err := database.JobCollection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	jobs := []models.Job{}
	if err := cursor.All(ctx, &jobs); err != nil {
		return nil, err
	}

	return &JobList{
		Jobs: jobs,
		Pagination: models.Pagination{
			Total:      total,
			Page:       page,
			Limit:      limit,
			TotalPages: int(math.Ceil(float64(total) / float64(limit))),
		},
	}, nil
}
