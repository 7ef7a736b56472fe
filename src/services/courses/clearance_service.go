package courses

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"Backend-CorpsConnect/src/database"
	"Backend-CorpsConnect/src/models"
	"Backend-CorpsConnect/src/utils"

	"github.com/jung-kurt/gofpdf"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// clearanceThreshold is the attendance rate required to pass a course.
const clearanceThreshold = 70.0

type ClearanceResult struct {
	CourseID       string  `json:"courseId"`
	CourseTitle    string  `json:"courseTitle"`
	AttendanceRate float64 `json:"attendanceRate"`
	Threshold      float64 `json:"threshold"`
	Eligible       bool    `json:"eligible"`
	Verdict        string  `json:"verdict"`
}

// CheckClearance evaluates a student's attendance against the pass
// threshold.
func CheckClearance(courseID, studentID string) (*ClearanceResult, error) {
	stats, err := GetStudentAttendance(courseID, studentID)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var course models.Course
	if err := database.CourseCollection.FindOne(ctx, bson.M{"_id": stats.CourseID}).Decode(&course); err != nil {
		return nil, err
	}

	result := &ClearanceResult{
		CourseID:       courseID,
		CourseTitle:    course.Title,
		AttendanceRate: stats.AttendanceRate,
		Threshold:      clearanceThreshold,
		Eligible:       stats.AttendanceRate >= clearanceThreshold,
	}
	if result.Eligible {
		result.Verdict = "PASS"
	} else {
		result.Verdict = "FAIL"
	}
	return result, nil
}

// GenerateClearanceCertificate renders a PDF certificate for a student
// who cleared the course and returns its served path.
func GenerateClearanceCertificate(courseID, studentID string) (string, error) {
	result, err := CheckClearance(courseID, studentID)
	if err != nil {
		return "", err
	}
	if !result.Eligible {
		return "", utils.BadRequest("Attendance rate %.0f%% is below the %.0f%% clearance threshold",
			result.AttendanceRate, result.Threshold)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	sID, err := primitive.ObjectIDFromHex(studentID)
	if err != nil {
		return "", utils.BadRequest("Invalid student ID")
	}
	var student models.User
	if err := database.UserCollection.FindOne(ctx, bson.M{"_id": sID}).Decode(&student); err != nil {
		return "", utils.NotFound("Student not found")
	}

	dir := "public/certificates"
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	filePath := filepath.Join(dir, fmt.Sprintf("%s_%s.pdf", courseID, studentID))

	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 28)
	pdf.CellFormat(0, 30, "Certificate of Completion", "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 14)
	pdf.CellFormat(0, 12, "This certifies that", "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "B", 22)
	pdf.CellFormat(0, 16, student.FullName(), "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 14)
	pdf.CellFormat(0, 12, "has completed the course", "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "B", 18)
	pdf.CellFormat(0, 14, result.CourseTitle, "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 12)
	pdf.CellFormat(0, 10, fmt.Sprintf("Attendance rate: %.0f%%", result.AttendanceRate), "", 1, "C", false, 0, "")
	pdf.CellFormat(0, 10, fmt.Sprintf("Issued on %s", time.Now().Format("2 January 2006")), "", 1, "C", false, 0, "")

	if err := pdf.OutputFileAndClose(filePath); err != nil {
		return "", err
	}
	return "/" + filePath, nil
}
