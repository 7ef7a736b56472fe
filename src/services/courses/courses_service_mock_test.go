package courses

import (
	"testing"
	"time"

	"Backend-CorpsConnect/src/database"
	"Backend-CorpsConnect/src/models"
	"Backend-CorpsConnect/src/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func courseDoc(courseID primitive.ObjectID, enrolled bson.A, totalSessions int) bson.D {
	return bson.D{
		{Key: "_id", Value: courseID},
		{Key: "staffId", Value: primitive.NewObjectID()},
		{Key: "title", Value: "Cloud Fundamentals"},
		{Key: "status", Value: models.CourseStatusPublished},
		{Key: "maxStudents", Value: 30},
		{Key: "enrolledStudents", Value: enrolled},
		{Key: "qrSessions", Value: bson.A{}},
		{Key: "totalSessions", Value: totalSessions},
	}
}

func enrollCountResponse(n int) primitive.D {
	return mtest.CreateCursorResponse(0, "db.coll", mtest.FirstBatch,
		bson.D{{Key: "n", Value: n}})
}

func TestEnrollRejectsSecondActiveEnrollment(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("already enrolled elsewhere", func(mt *mtest.T) {
		database.CourseCollection = mt.DB.Collection("courses")

		courseID := primitive.NewObjectID()
		studentID := primitive.NewObjectID()

		mt.AddMockResponses(
			mtest.CreateCursorResponse(0, "db.courses", mtest.FirstBatch, courseDoc(courseID, bson.A{}, 0)),
			enrollCountResponse(1), // student sits in another published course
		)

		_, err := Enroll(courseID.Hex(), studentID.Hex())
		require.Error(mt, err)

		appErr, ok := utils.AsAppError(err)
		require.True(mt, ok)
		assert.Equal(mt, fiber.StatusConflict, appErr.Code)
		assert.Contains(mt, appErr.Message, "another course")
	})
}

func TestScanAttendanceRejectsExpiredSession(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("expired window", func(mt *mtest.T) {
		database.QrSessionCollection = mt.DB.Collection("qrSessions")

		studentID := primitive.NewObjectID()

		mt.AddMockResponses(
			mtest.CreateCursorResponse(0, "db.qrSessions", mtest.FirstBatch, bson.D{
				{Key: "_id", Value: primitive.NewObjectID()},
				{Key: "courseId", Value: primitive.NewObjectID()},
				{Key: "sessionCode", Value: "AB12CD34"},
				{Key: "expiresAt", Value: time.Now().Add(-time.Minute)},
				{Key: "isActive", Value: true},
				{Key: "createdAt", Value: time.Now().Add(-time.Hour)},
			}),
		)

		_, err := ScanAttendance(studentID.Hex(), ScanInput{SessionCode: "AB12CD34"})
		require.Error(mt, err)

		appErr, ok := utils.AsAppError(err)
		require.True(mt, ok)
		assert.Equal(mt, fiber.StatusBadRequest, appErr.Code)
	})
}

func TestScanAttendanceRejectsDuplicateScan(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("second scan of same session", func(mt *mtest.T) {
		database.QrSessionCollection = mt.DB.Collection("qrSessions")
		database.CourseCollection = mt.DB.Collection("courses")
		database.AttendanceCollection = mt.DB.Collection("attendances")

		studentID := primitive.NewObjectID()

		mt.AddMockResponses(
			mtest.CreateCursorResponse(0, "db.qrSessions", mtest.FirstBatch, bson.D{
				{Key: "_id", Value: primitive.NewObjectID()},
				{Key: "courseId", Value: primitive.NewObjectID()},
				{Key: "sessionCode", Value: "AB12CD34"},
				{Key: "expiresAt", Value: time.Now().Add(30 * time.Minute)},
				{Key: "isActive", Value: true},
				{Key: "createdAt", Value: time.Now()},
			}),
			enrollCountResponse(1), // enrolled in the session's course
			enrollCountResponse(1), // already scanned this session
		)

		_, err := ScanAttendance(studentID.Hex(), ScanInput{SessionCode: "AB12CD34"})
		require.Error(mt, err)

		appErr, ok := utils.AsAppError(err)
		require.True(mt, ok)
		assert.Equal(mt, fiber.StatusConflict, appErr.Code)
	})
}

func TestClearanceRequiresEnrollment(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	// A course with no sessions counts as fully attended, so a student
	// who never enrolled must be turned away before the rate is computed.
	mt.Run("never enrolled, zero sessions", func(mt *mtest.T) {
		database.CourseCollection = mt.DB.Collection("courses")
		database.AttendanceCollection = mt.DB.Collection("attendances")

		courseID := primitive.NewObjectID()
		outsiderID := primitive.NewObjectID()

		mt.AddMockResponses(
			mtest.CreateCursorResponse(0, "db.courses", mtest.FirstBatch, courseDoc(courseID, bson.A{}, 0)),
		)

		result, err := CheckClearance(courseID.Hex(), outsiderID.Hex())
		require.Error(mt, err)
		assert.Nil(mt, result)

		appErr, ok := utils.AsAppError(err)
		require.True(mt, ok)
		assert.Equal(mt, fiber.StatusForbidden, appErr.Code)
	})
}

func TestStudentAttendanceRequiresEnrollment(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("enrolled student passes the gate", func(mt *mtest.T) {
		database.CourseCollection = mt.DB.Collection("courses")
		database.AttendanceCollection = mt.DB.Collection("attendances")

		courseID := primitive.NewObjectID()
		studentID := primitive.NewObjectID()

		mt.AddMockResponses(
			mtest.CreateCursorResponse(0, "db.courses", mtest.FirstBatch,
				courseDoc(courseID, bson.A{studentID}, 0)),
			mtest.CreateCursorResponse(0, "db.attendances", mtest.FirstBatch),
		)

		stats, err := GetStudentAttendance(courseID.Hex(), studentID.Hex())
		require.NoError(mt, err)
		assert.Equal(mt, float64(100), stats.AttendanceRate)
	})

	mt.Run("outsider is rejected", func(mt *mtest.T) {
		database.CourseCollection = mt.DB.Collection("courses")

		courseID := primitive.NewObjectID()

		mt.AddMockResponses(
			mtest.CreateCursorResponse(0, "db.courses", mtest.FirstBatch, courseDoc(courseID, bson.A{}, 4)),
		)

		_, err := GetStudentAttendance(courseID.Hex(), primitive.NewObjectID().Hex())
		require.Error(mt, err)

		appErr, ok := utils.AsAppError(err)
		require.True(mt, ok)
		assert.Equal(mt, fiber.StatusForbidden, appErr.Code)
	})
}
