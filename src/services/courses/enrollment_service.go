package courses

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

// Enroll adds a corps member to a published course. One active
// enrollment at a time: a student already in another published course
// must drop it first.
func Enroll(courseID, studentID string) (*models.Course, error) {
	cID, err := primitive.ObjectIDFromHex(courseID)
	if err != nil {
		return nil, utils.BadRequest("Invalid course ID")
	}
	sID, err := primitive.ObjectIDFromHex(studentID)
	if err != nil {
		return nil, utils.BadRequest("Invalid student ID")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var course models.Course
	if err := database.CourseCollection.FindOne(ctx, bson.M{"_id": cID}).Decode(&course); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, utils.NotFound("Course not found")
		}
		return nil, err
	}

	if course.Status != models.CourseStatusPublished {
		return nil, utils.BadRequest("Course is not open for enrollment")
	}
	if course.EnrolledCount() >= course.MaxStudents {
		return nil, utils.BadRequest("Course is full")
	}
	for _, id := range course.EnrolledStudents {
		if id == sID {
			return nil, utils.Conflict("You are already enrolled in this course")
		}
	}

	other, err := database.CourseCollection.CountDocuments(ctx, bson.M{
		"_id":              bson.M{"$ne": cID},
		"status":           models.CourseStatusPublished,
		"enrolledStudents": sID,
	})
	if err != nil {
		return nil, err
	}
	if other > 0 {
		return nil, utils.Conflict("You are already enrolled in another course")
	}

	res, err := database.CourseCollection.UpdateOne(ctx,
		bson.M{
			"_id":    cID,
			"status": models.CourseStatusPublished,
			// Capacity re-checked in the update filter to avoid racing
			// past maxStudents.
			"$expr": bson.M{"$lt": bson.A{bson.M{"$size": "$enrolledStudents"}, "$maxStudents"}},
		},
		bson.M{
			"$addToSet": bson.M{"enrolledStudents": sID},
			"$set":      bson.M{"updatedAt": time.Now()},
		},
	)
	if err != nil {
		return nil, err
	}
	if res.MatchedCount == 0 {
		return nil, utils.BadRequest("Course is full")
	}

	course.EnrolledStudents = append(course.EnrolledStudents, sID)
	return &course, nil
}

// Drop removes the student from the course roster. Attendance records
// are kept.
func Drop(courseID, studentID string) error {
	cID, err := primitive.ObjectIDFromHex(courseID)
	if err != nil {
		return utils.BadRequest("Invalid course ID")
	}
	sID, err := primitive.ObjectIDFromHex(studentID)
	if err != nil {
		return utils.BadRequest("Invalid student ID")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	res, err := database.CourseCollection.UpdateOne(ctx,
		bson.M{"_id": cID, "enrolledStudents": sID},
		bson.M{
			"$pull": bson.M{"enrolledStudents": sID},
			"$set":  bson.M{"updatedAt": time.Now()},
		},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return utils.NotFound("Enrollment not found")
	}
	return nil
}

// GetCurrentEnrollment returns the published course the student is
// enrolled in, if any.
func GetCurrentEnrollment(studentID string) (*models.Course, error) {
	sID, err := primitive.ObjectIDFromHex(studentID)
	if err != nil {
		return nil, utils.BadRequest("Invalid student ID")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var course models.Course
	err = database.CourseCollection.FindOne(ctx, bson.M{
		"status":           models.CourseStatusPublished,
		"enrolledStudents": sID,
	}).Decode(&course)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, utils.NotFound("No active enrollment")
		}
		return nil, err
	}
	return &course, nil
}
