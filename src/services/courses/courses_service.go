package courses

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

type CreateCourseInput struct {
	Title              string   `json:"title" validate:"required,max=120"`
	Description        string   `json:"description" validate:"required"`
	Category           string   `json:"category" validate:"required"`
	Level              string   `json:"level" validate:"required,oneof=beginner intermediate advanced"`
	Duration           int      `json:"duration" validate:"gte=0"`
	MaxStudents        int      `json:"maxStudents" validate:"required,gte=1"`
	Skills             []string `json:"skills"`
	Prerequisites      []string `json:"prerequisites"`
	LearningObjectives []string `json:"learningObjectives"`
	CoverImage         string   `json:"coverImage"`
}

type UpdateCourseInput struct {
	Title              string   `json:"title" validate:"omitempty,max=120"`
	Description        string   `json:"description"`
	Category           string   `json:"category"`
	Level              string   `json:"level" validate:"omitempty,oneof=beginner intermediate advanced"`
	Duration           int      `json:"duration" validate:"gte=0"`
	MaxStudents        int      `json:"maxStudents" validate:"gte=0"`
	Skills             []string `json:"skills"`
	Prerequisites      []string `json:"prerequisites"`
	LearningObjectives []string `json:"learningObjectives"`
	CoverImage         string   `json:"coverImage"`
}

type CourseList struct {
	Courses    []models.Course   `json:"courses"`
	Pagination models.Pagination `json:"pagination"`
}

// CreateCourse stores a draft owned by the staff account.
func CreateCourse(staffID string, input CreateCourseInput) (*models.Course, error) {
	sID, err := primitive.ObjectIDFromHex(staffID)
	if err != nil {
		return nil, utils.BadRequest("Invalid staff ID")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	now := time.Now()
	course := models.Course{
		StaffID:            sID,
		Title:              input.Title,
		Description:        input.Description,
		Category:           input.Category,
		Level:              input.Level,
		Duration:           input.Duration,
		MaxStudents:        input.MaxStudents,
		Skills:             input.Skills,
		Prerequisites:      input.Prerequisites,
		LearningObjectives: input.LearningObjectives,
		Status:             models.CourseStatusDraft,
		CoverImage:         input.CoverImage,
		EnrolledStudents:   []primitive.ObjectID{},
		QrSessions:         []primitive.ObjectID{},
		IsActive:           true,
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	res, err := database.CourseCollection.InsertOne(ctx, course)
	if err != nil {
		return nil, err
	}
	course.ID = res.InsertedID.(primitive.ObjectID)
	return &course, nil
}

func getOwnedCourse(ctx context.Context, courseID, staffID string) (*models.Course, error) {
	id, err := primitive.ObjectIDFromHex(courseID)
	if err != nil {
		return nil, utils.BadRequest("Invalid course ID")
	}

	var course models.Course
	if err := database.CourseCollection.FindOne(ctx, bson.M{"_id": id}).Decode(&course); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, utils.NotFound("Course not found")
		}
		return nil, err
	}
	if course.StaffID.Hex() != staffID {
		return nil, utils.Forbidden("You do not own this course")
	}
	return &course, nil
}

func UpdateCourse(courseID, staffID string, input UpdateCourseInput) (*models.Course, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	course, err := getOwnedCourse(ctx, courseID, staffID)
	if err != nil {
		return nil, err
	}
	if course.Status == models.CourseStatusArchived {
		return nil, utils.BadRequest("Archived courses cannot be edited")
	}

	set := bson.M{"updatedAt": time.Now()}
	if input.Title != "" {
		set["title"] = input.Title
	}
	if input.Description != "" {
		set["description"] = input.Description
	}
	if input.Category != "" {
		set["category"] = input.Category
	}
	if input.Level != "" {
		set["level"] = input.Level
	}
	if input.Duration > 0 {
		set["duration"] = input.Duration
	}
	if input.MaxStudents > 0 {
		if input.MaxStudents < course.EnrolledCount() {
			return nil, utils.BadRequest("Capacity cannot drop below current enrollment")
		}
		set["maxStudents"] = input.MaxStudents
	}
	if input.Skills != nil {
		set["skills"] = input.Skills
	}
	if input.Prerequisites != nil {
		set["prerequisites"] = input.Prerequisites
	}
	if input.LearningObjectives != nil {
		set["learningObjectives"] = input.LearningObjectives
	}
	if input.CoverImage != "" {
		set["coverImage"] = input.CoverImage
	}

	_, err = database.CourseCollection.UpdateOne(ctx, bson.M{"_id": course.ID}, bson.M{"$set": set})
	if err != nil {
		return nil, err
	}
	if err := database.CourseCollection.FindOne(ctx, bson.M{"_id": course.ID}).Decode(course); err != nil {
		return nil, err
	}
	return course, nil
}

// PublishCourse opens the course for enrollment.
func PublishCourse(courseID, staffID string) (*models.Course, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	course, err := getOwnedCourse(ctx, courseID, staffID)
	if err != nil {
		return nil, err
	}
	if course.Status == models.CourseStatusPublished {
		return nil, utils.BadRequest("Course is already published")
	}
	if course.Status == models.CourseStatusArchived {
		return nil, utils.BadRequest("Archived courses cannot be published")
	}

	now := time.Now()
	_, err = database.CourseCollection.UpdateOne(ctx,
		bson.M{"_id": course.ID},
		bson.M{"$set": bson.M{
			"status":      models.CourseStatusPublished,
			"publishedAt": now,
			"updatedAt":   now,
		}},
	)
	if err != nil {
		return nil, err
	}
	course.Status = models.CourseStatusPublished
	course.PublishedAt = &now
	return course, nil
}

// ArchiveCourse retires the course. Attendance history stays intact.
func ArchiveCourse(courseID, staffID string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	course, err := getOwnedCourse(ctx, courseID, staffID)
	if err != nil {
		return err
	}

	_, err = database.CourseCollection.UpdateOne(ctx,
		bson.M{"_id": course.ID},
		bson.M{"$set": bson.M{
			"status":    models.CourseStatusArchived,
			"isActive":  false,
			"updatedAt": time.Now(),
		}},
	)
	return err
}

// GetCourse returns one course. Drafts are only visible to their owner.
func GetCourse(courseID, viewerID string) (*models.Course, error) {
	id, err := primitive.ObjectIDFromHex(courseID)
	if err != nil {
		return nil, utils.BadRequest("Invalid course ID")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var course models.Course
	if err := database.CourseCollection.FindOne(ctx, bson.M{"_id": id}).Decode(&course); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, utils.NotFound("Course not found")
		}
		return nil, err
	}
	if course.Status != models.CourseStatusPublished && course.StaffID.Hex() != viewerID {
		return nil, utils.NotFound("Course not found")
	}
	return &course, nil
}

// ListCourses returns the published catalog, with optional category and
// level filters.
func ListCourses(category, level string, page, limit int) (*CourseList, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	filter := bson.M{"status": models.CourseStatusPublished}
	if category != "" {
		filter["category"] = category
	}
	if level != "" {
		filter["level"] = level
	}
	return listCourses(ctx, filter, page, limit)
}

// ListStaffCourses returns the staff account's own courses, any status.
func ListStaffCourses(staffID string, page, limit int) (*CourseList, error) {
	sID, err := primitive.ObjectIDFromHex(staffID)
	if err != nil {
		return nil, utils.BadRequest("Invalid staff ID")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return listCourses(ctx, bson.M{"staffId": sID}, page, limit)
}

func listCourses(ctx context.Context, filter bson.M, page, limit int) (*CourseList, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 10
	}

	total, err := database.CourseCollection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, err
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetSkip(int64((page - 1) * limit)).
		SetLimit(int64(limit))

	cursor, err := database.CourseCollection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	courses := []models.Course{}
	if err := cursor.All(ctx, &courses); err != nil {
		return nil, err
	}

	return &CourseList{
		Courses: courses,
		Pagination: models.Pagination{
			Total:      total,
			Page:       page,
			Limit:      limit,
			TotalPages: int(math.Ceil(float64(total) / float64(limit))),
		},
	}, nil
}
