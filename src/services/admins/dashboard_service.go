package admins

import (
	"context"
	"sort"
	"time"

	"Backend-CorpsConnect/src/database"
	"Backend-CorpsConnect/src/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const recentActivityLimit = 10

type DashboardStats struct {
	TotalUsers        int64            `json:"totalUsers"`
	UsersByRole       map[string]int64 `json:"usersByRole"`
	TotalJobs         int64            `json:"totalJobs"`
	PublishedJobs     int64            `json:"publishedJobs"`
	TotalApplications int64            `json:"totalApplications"`
	AppsByStatus      map[string]int64 `json:"applicationsByStatus"`
	TotalCourses      int64            `json:"totalCourses"`
	PublishedCourses  int64            `json:"publishedCourses"`
}

// GetDashboardStats aggregates the headline numbers for the admin panel.
func GetDashboardStats() (*DashboardStats, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	stats := &DashboardStats{
		UsersByRole:  map[string]int64{},
		AppsByStatus: map[string]int64{},
	}

	userGroups, err := groupCount(ctx, database.UserCollection, "$role")
	if err != nil {
		return nil, err
	}
	for status, count := range userGroups {
		stats.UsersByRole[status] = count
		stats.TotalUsers += count
	}

	jobGroups, err := groupCount(ctx, database.JobCollection, "$status")
	if err != nil {
		return nil, err
	}
	for status, count := range jobGroups {
		stats.TotalJobs += count
		if status == models.JobStatusPublished {
			stats.PublishedJobs = count
		}
	}

	appGroups, err := groupCount(ctx, database.ApplicantCollection, "$status")
	if err != nil {
		return nil, err
	}
	for status, count := range appGroups {
		stats.AppsByStatus[status] = count
		stats.TotalApplications += count
	}

	courseGroups, err := groupCount(ctx, database.CourseCollection, "$status")
	if err != nil {
		return nil, err
	}
	for status, count := range courseGroups {
		stats.TotalCourses += count
		if status == models.CourseStatusPublished {
			stats.PublishedCourses = count
		}
	}

	return stats, nil
}

func groupCount(ctx context.Context, coll *mongo.Collection, field string) (map[string]int64, error) {
	cursor, err := coll.Aggregate(ctx, bson.A{
		bson.M{"$group": bson.M{"_id": field, "count": bson.M{"$sum": 1}}},
	})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var groups []struct {
		Key   string `bson:"_id"`
		Count int64  `bson:"count"`
	}
	if err := cursor.All(ctx, &groups); err != nil {
		return nil, err
	}

	out := map[string]int64{}
	for _, g := range groups {
		out[g.Key] = g.Count
	}
	return out, nil
}

// ActivityItem is one row in the recent-activity feed.
type ActivityItem struct {
	Type       string    `json:"type"` // user_registered, application_submitted
	Subject    string    `json:"subject"`
	OccurredAt time.Time `json:"occurredAt"`
}

// GetRecentActivity interleaves the latest registrations and
// applications into one feed.
func GetRecentActivity() ([]ActivityItem, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	userOpts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(5)
	userCursor, err := database.UserCollection.Find(ctx, bson.M{}, userOpts)
	if err != nil {
		return nil, err
	}
	defer userCursor.Close(ctx)

	var users []models.User
	if err := userCursor.All(ctx, &users); err != nil {
		return nil, err
	}

	appOpts := options.Find().
		SetSort(bson.D{{Key: "appliedAt", Value: -1}}).
		SetLimit(5)
	appCursor, err := database.ApplicantCollection.Find(ctx, bson.M{}, appOpts)
	if err != nil {
		return nil, err
	}
	defer appCursor.Close(ctx)

	var apps []models.Applicant
	if err := appCursor.All(ctx, &apps); err != nil {
		return nil, err
	}

	items := make([]ActivityItem, 0, len(users)+len(apps))
	for _, u := range users {
		items = append(items, ActivityItem{
			Type:       "user_registered",
			Subject:    u.FullName(),
			OccurredAt: u.CreatedAt,
		})
	}
	for _, a := range apps {
		items = append(items, ActivityItem{
			Type:       "application_submitted",
			Subject:    a.UserID.Hex(),
			OccurredAt: a.AppliedAt,
		})
	}

	return MergeActivity(items, recentActivityLimit), nil
}

// MergeActivity sorts items newest first and caps the feed.
func MergeActivity(items []ActivityItem, limit int) []ActivityItem {
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].OccurredAt.After(items[j].OccurredAt)
	})
	if len(items) > limit {
		items = items[:limit]
	}
	return items
}
