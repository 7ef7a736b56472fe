package courses

import (
	"context"
	"crypto/rand"
	"math/big"
	"time"

	"Backend-CorpsConnect/src/database"
	"Backend-CorpsConnect/src/jobs"
	"Backend-CorpsConnect/src/models"
	"Backend-CorpsConnect/src/qrcode"
	"Backend-CorpsConnect/src/utils"

	"github.com/hibiken/asynq"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

const sessionCodeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
const sessionCodeLength = 8

// lateThreshold: scans after this much of the window count as late.
const lateThreshold = 15 * time.Minute

// GenerateSessionCode returns the short code embedded in the QR image.
func GenerateSessionCode() (string, error) {
	code := make([]byte, sessionCodeLength)
	max := big.NewInt(int64(len(sessionCodeAlphabet)))
	for i := range code {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		code[i] = sessionCodeAlphabet[n.Int64()]
	}
	return string(code), nil
}

type QrSessionResult struct {
	Session models.QrSession `json:"session"`
	QrImage string           `json:"qrImage"`
}

// GenerateQrSession opens a time-boxed attendance window for a course,
// renders its QR image and schedules the expiry task.
func GenerateQrSession(courseID, staffID string, durationMinutes int) (*QrSessionResult, error) {
	if durationMinutes < 1 || durationMinutes > 24*60 {
		return nil, utils.BadRequest("Duration must be between 1 minute and 24 hours")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	course, err := getOwnedCourse(ctx, courseID, staffID)
	if err != nil {
		return nil, err
	}
	if course.Status != models.CourseStatusPublished {
		return nil, utils.BadRequest("Course must be published to run sessions")
	}

	code, err := GenerateSessionCode()
	if err != nil {
		return nil, err
	}

	now := time.Now()
	session := models.QrSession{
		CourseID:    course.ID,
		SessionCode: code,
		ExpiresAt:   now.Add(time.Duration(durationMinutes) * time.Minute),
		IsActive:    true,
		CreatedAt:   now,
	}

	res, err := database.QrSessionCollection.InsertOne(ctx, session)
	if err != nil {
		return nil, err
	}
	session.ID = res.InsertedID.(primitive.ObjectID)

	_, err = database.CourseCollection.UpdateOne(ctx,
		bson.M{"_id": course.ID},
		bson.M{
			"$push": bson.M{"qrSessions": session.ID},
			"$inc":  bson.M{"totalSessions": 1},
			"$set":  bson.M{"updatedAt": now},
		},
	)
	if err != nil {
		return nil, err
	}

	imagePath, err := qrcode.GenerateQRCode(code, session.ID.Hex())
	if err != nil {
		return nil, err
	}

	if database.AsynqClient != nil {
		task, err := jobs.NewExpireQrSessionTask(session.ID.Hex())
		if err == nil {
			_, _ = database.AsynqClient.Enqueue(task, asynq.ProcessAt(session.ExpiresAt))
		}
	}

	return &QrSessionResult{Session: session, QrImage: imagePath}, nil
}

type ScanInput struct {
	SessionCode string              `json:"sessionCode" validate:"required,len=8"`
	Location    *models.GeoLocation `json:"location"`
}

// ScanAttendance records a student's scan against an open session.
// Scans late in the window are marked late rather than present.
func ScanAttendance(studentID string, input ScanInput) (*models.Attendance, error) {
	sID, err := primitive.ObjectIDFromHex(studentID)
	if err != nil {
		return nil, utils.BadRequest("Invalid student ID")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var session models.QrSession
	err = database.QrSessionCollection.FindOne(ctx, bson.M{"sessionCode": input.SessionCode}).Decode(&session)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, utils.NotFound("Session code not recognised")
		}
		return nil, err
	}

	now := time.Now()
	if !session.IsActive || now.After(session.ExpiresAt) {
		return nil, utils.BadRequest("This session has expired")
	}

	enrolled, err := database.CourseCollection.CountDocuments(ctx, bson.M{
		"_id":              session.CourseID,
		"enrolledStudents": sID,
	})
	if err != nil {
		return nil, err
	}
	if enrolled == 0 {
		return nil, utils.Forbidden("You are not enrolled in this course")
	}

	dup, err := database.AttendanceCollection.CountDocuments(ctx, bson.M{
		"studentId": sID,
		"sessionId": session.ID,
	})
	if err != nil {
		return nil, err
	}
	if dup > 0 {
		return nil, utils.Conflict("Attendance already recorded for this session")
	}

	attendance := models.Attendance{
		StudentID: sID,
		SessionID: session.ID,
		Status:    scanStatus(session.CreatedAt, now),
		ScannedAt: now,
		Location:  input.Location,
	}

	res, err := database.AttendanceCollection.InsertOne(ctx, attendance)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, utils.Conflict("Attendance already recorded for this session")
		}
		return nil, err
	}
	attendance.ID = res.InsertedID.(primitive.ObjectID)
	return &attendance, nil
}

func scanStatus(sessionStart, scannedAt time.Time) string {
	if scannedAt.Sub(sessionStart) > lateThreshold {
		return models.AttendanceStatusLate
	}
	return models.AttendanceStatusPresent
}

// AttendanceRate returns the percentage of sessions attended. A course
// with no sessions yet counts as fully attended.
func AttendanceRate(attended, totalSessions int) float64 {
	if totalSessions == 0 {
		return 100
	}
	return float64(attended) / float64(totalSessions) * 100
}

type StudentAttendance struct {
	CourseID       primitive.ObjectID  `json:"courseId"`
	TotalSessions  int                 `json:"totalSessions"`
	Attended       int                 `json:"attended"`
	AttendanceRate float64             `json:"attendanceRate"`
	Records        []models.Attendance `json:"records"`
}

// GetStudentAttendance computes a student's attendance over a course.
// Present and late scans both count as attended.
func GetStudentAttendance(courseID, studentID string) (*StudentAttendance, error) {
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

	enrolled := false
	for _, id := range course.EnrolledStudents {
		if id == sID {
			enrolled = true
			break
		}
	}
	if !enrolled {
		return nil, utils.Forbidden("You are not enrolled in this course")
	}

	cursor, err := database.AttendanceCollection.Find(ctx, bson.M{
		"studentId": sID,
		"sessionId": bson.M{"$in": course.QrSessions},
	})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	records := []models.Attendance{}
	if err := cursor.All(ctx, &records); err != nil {
		return nil, err
	}

	attended := 0
	for _, r := range records {
		if r.Status == models.AttendanceStatusPresent || r.Status == models.AttendanceStatusLate {
			attended++
		}
	}

	return &StudentAttendance{
		CourseID:       cID,
		TotalSessions:  course.TotalSessions,
		Attended:       attended,
		AttendanceRate: AttendanceRate(attended, course.TotalSessions),
		Records:        records,
	}, nil
}

type CourseAttendanceRow struct {
	StudentID      primitive.ObjectID `json:"studentId"`
	Attended       int                `json:"attended"`
	AttendanceRate float64            `json:"attendanceRate"`
}

type CourseAttendance struct {
	CourseID      primitive.ObjectID    `json:"courseId"`
	TotalSessions int                   `json:"totalSessions"`
	Students      []CourseAttendanceRow `json:"students"`
}

// GetCourseAttendance gives the owning staff a per-student breakdown.
func GetCourseAttendance(courseID, staffID string) (*CourseAttendance, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	course, err := getOwnedCourse(ctx, courseID, staffID)
	if err != nil {
		return nil, err
	}

	cursor, err := database.AttendanceCollection.Aggregate(ctx, bson.A{
		bson.M{"$match": bson.M{
			"sessionId": bson.M{"$in": course.QrSessions},
			"status":    bson.M{"$in": bson.A{models.AttendanceStatusPresent, models.AttendanceStatusLate}},
		}},
		bson.M{"$group": bson.M{"_id": "$studentId", "attended": bson.M{"$sum": 1}}},
	})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var groups []struct {
		StudentID primitive.ObjectID `bson:"_id"`
		Attended  int                `bson:"attended"`
	}
	if err := cursor.All(ctx, &groups); err != nil {
		return nil, err
	}

	attendedBy := map[primitive.ObjectID]int{}
	for _, g := range groups {
		attendedBy[g.StudentID] = g.Attended
	}

	rows := make([]CourseAttendanceRow, 0, len(course.EnrolledStudents))
	for _, studentID := range course.EnrolledStudents {
		attended := attendedBy[studentID]
		rows = append(rows, CourseAttendanceRow{
			StudentID:      studentID,
			Attended:       attended,
			AttendanceRate: AttendanceRate(attended, course.TotalSessions),
		})
	}

	return &CourseAttendance{
		CourseID:      course.ID,
		TotalSessions: course.TotalSessions,
		Students:      rows,
	}, nil
}
