package admins

import (
	"context"
	"sort"
	"time"

	"Backend-CorpsConnect/src/database"
	"Backend-CorpsConnect/src/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// TrendPoint is one bucket in a signup or application histogram.
type TrendPoint struct {
	Bucket string `json:"bucket"`
	Count  int    `json:"count"`
}

type Trends struct {
	Period       string       `json:"period"`
	Signups      []TrendPoint `json:"signups"`
	Applications []TrendPoint `json:"applications"`
}

// trendWindow returns how far back each period looks.
func trendWindow(period string) (time.Duration, error) {
	switch period {
	case "day":
		return 24 * time.Hour, nil
	case "week":
		return 7 * 24 * time.Hour, nil
	case "month":
		return 30 * 24 * time.Hour, nil
	}
	return 0, utils.BadRequest("Period must be day, week or month")
}

// BucketKey folds a timestamp into the histogram granularity for the
// period: hourly buckets for a day, daily buckets otherwise.
func BucketKey(t time.Time, period string) string {
	if period == "day" {
		return t.Format("2006-01-02 15:00")
	}
	return t.Format("2006-01-02")
}

// BucketTimes builds a sorted histogram from raw timestamps.
func BucketTimes(times []time.Time, period string) []TrendPoint {
	counts := map[string]int{}
	for _, t := range times {
		counts[BucketKey(t, period)]++
	}

	points := make([]TrendPoint, 0, len(counts))
	for bucket, count := range counts {
		points = append(points, TrendPoint{Bucket: bucket, Count: count})
	}
	sort.Slice(points, func(i, j int) bool { return points[i].Bucket < points[j].Bucket })
	return points
}

// GetTrends charts signups and applications over the requested period.
func GetTrends(period string) (*Trends, error) {
	window, err := trendWindow(period)
	if err != nil {
		return nil, err
	}
	since := time.Now().Add(-window)

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	signupTimes, err := collectTimes(ctx, database.UserCollection, "createdAt", since)
	if err != nil {
		return nil, err
	}
	applicationTimes, err := collectTimes(ctx, database.ApplicantCollection, "appliedAt", since)
	if err != nil {
		return nil, err
	}

	return &Trends{
		Period:       period,
		Signups:      BucketTimes(signupTimes, period),
		Applications: BucketTimes(applicationTimes, period),
	}, nil
}

func collectTimes(ctx context.Context, coll *mongo.Collection, field string, since time.Time) ([]time.Time, error) {
	cursor, err := coll.Find(ctx, bson.M{field: bson.M{"$gte": since}})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	times := []time.Time{}
	for cursor.Next(ctx) {
		var doc bson.M
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		if dt, ok := doc[field].(primitive.DateTime); ok {
			times = append(times, dt.Time())
		}
	}
	return times, cursor.Err()
}
