package jobs

import (
	"context"
	"time"

	"Backend-CorpsConnect/src/database"
	"Backend-CorpsConnect/src/models"
	"Backend-CorpsConnect/src/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// EmployerAnalysis summarises the employer's postings and their
// application pipeline.
type EmployerAnalysis struct {
	TotalJobs         int64            `json:"totalJobs"`
	PublishedJobs     int64            `json:"publishedJobs"`
	ClosedJobs        int64            `json:"closedJobs"`
	DraftJobs         int64            `json:"draftJobs"`
	TotalApplications int64            `json:"totalApplications"`
	TotalViews        int64            `json:"totalViews"`
	ByStatus          map[string]int64 `json:"applicationsByStatus"`
}

func GetEmployerAnalysis(employerID string) (*EmployerAnalysis, error) {
	empID, err := primitive.ObjectIDFromHex(employerID)
	if err != nil {
		return nil, utils.BadRequest("Invalid employer ID")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	analysis := &EmployerAnalysis{ByStatus: map[string]int64{}}

	jobCursor, err := database.JobCollection.Aggregate(ctx, bson.A{
		bson.M{"$match": bson.M{"employerId": empID}},
		bson.M{"$group": bson.M{
			"_id":          "$status",
			"count":        bson.M{"$sum": 1},
			"views":        bson.M{"$sum": "$viewCount"},
			"applications": bson.M{"$sum": "$applicationCount"},
		}},
	})
	if err != nil {
		return nil, err
	}
	defer jobCursor.Close(ctx)

	var jobGroups []struct {
		Status       string `bson:"_id"`
		Count        int64  `bson:"count"`
		Views        int64  `bson:"views"`
		Applications int64  `bson:"applications"`
	}
	if err := jobCursor.All(ctx, &jobGroups); err != nil {
		return nil, err
	}
	for _, g := range jobGroups {
		analysis.TotalJobs += g.Count
		analysis.TotalViews += g.Views
		analysis.TotalApplications += g.Applications
		switch g.Status {
		case models.JobStatusPublished:
			analysis.PublishedJobs = g.Count
		case models.JobStatusClosed:
			analysis.ClosedJobs = g.Count
		case models.JobStatusDraft:
			analysis.DraftJobs = g.Count
		}
	}

	appCursor, err := database.ApplicantCollection.Aggregate(ctx, bson.A{
		bson.M{"$match": bson.M{"employerId": empID}},
		bson.M{"$group": bson.M{"_id": "$status", "count": bson.M{"$sum": 1}}},
	})
	if err != nil {
		return nil, err
	}
	defer appCursor.Close(ctx)

	var appGroups []struct {
		Status string `bson:"_id"`
		Count  int64  `bson:"count"`
	}
	if err := appCursor.All(ctx, &appGroups); err != nil {
		return nil, err
	}
	for _, g := range appGroups {
		analysis.ByStatus[g.Status] = g.Count
	}

	return analysis, nil
}
