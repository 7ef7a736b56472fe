package applicants

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

func publishedJobDoc(jobID, employerID primitive.ObjectID) bson.D {
	return bson.D{
		{Key: "_id", Value: jobID},
		{Key: "employerId", Value: employerID},
		{Key: "title", Value: "Backend Engineer"},
		{Key: "status", Value: models.JobStatusPublished},
		{Key: "applicants", Value: bson.A{}},
	}
}

func countResponse(n int) primitive.D {
	return mtest.CreateCursorResponse(0, "db.coll", mtest.FirstBatch,
		bson.D{{Key: "n", Value: n}})
}

func TestApplyRejectsDuplicateOpenApplication(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("duplicate open application", func(mt *mtest.T) {
		database.JobCollection = mt.DB.Collection("jobs")
		database.DocumentCollection = mt.DB.Collection("documents")
		database.ApplicantCollection = mt.DB.Collection("applicants")

		jobID := primitive.NewObjectID()
		employerID := primitive.NewObjectID()
		userID := primitive.NewObjectID()
		docID := primitive.NewObjectID()

		mt.AddMockResponses(
			mtest.CreateCursorResponse(0, "db.jobs", mtest.FirstBatch, publishedJobDoc(jobID, employerID)),
			countResponse(1), // document is owned by the applicant
			mtest.CreateCursorResponse(0, "db.applicants", mtest.FirstBatch, bson.D{
				{Key: "_id", Value: primitive.NewObjectID()},
				{Key: "jobId", Value: jobID},
				{Key: "employerId", Value: employerID},
				{Key: "userId", Value: userID},
				{Key: "status", Value: models.ApplicationStatusPending},
			}),
		)

		_, err := Apply(userID.Hex(), ApplyInput{
			JobID:      jobID.Hex(),
			DocumentID: docID.Hex(),
		})
		require.Error(mt, err)

		appErr, ok := utils.AsAppError(err)
		require.True(mt, ok)
		assert.Equal(mt, fiber.StatusConflict, appErr.Code)
	})
}

func TestApplyResurrectsWithdrawnApplication(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("withdrawn row reused", func(mt *mtest.T) {
		database.JobCollection = mt.DB.Collection("jobs")
		database.DocumentCollection = mt.DB.Collection("documents")
		database.ApplicantCollection = mt.DB.Collection("applicants")

		jobID := primitive.NewObjectID()
		employerID := primitive.NewObjectID()
		userID := primitive.NewObjectID()
		docID := primitive.NewObjectID()
		existingID := primitive.NewObjectID()
		reviewed := time.Now().Add(-48 * time.Hour)

		mt.AddMockResponses(
			mtest.CreateCursorResponse(0, "db.jobs", mtest.FirstBatch, publishedJobDoc(jobID, employerID)),
			countResponse(1),
			mtest.CreateCursorResponse(0, "db.applicants", mtest.FirstBatch, bson.D{
				{Key: "_id", Value: existingID},
				{Key: "jobId", Value: jobID},
				{Key: "employerId", Value: employerID},
				{Key: "userId", Value: userID},
				{Key: "status", Value: models.ApplicationStatusWithdrawn},
				{Key: "reviewedAt", Value: reviewed},
			}),
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}),
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}),
		)

		app, err := Apply(userID.Hex(), ApplyInput{
			JobID:       jobID.Hex(),
			DocumentID:  docID.Hex(),
			CoverLetter: "second attempt",
		})
		require.NoError(mt, err)

		assert.Equal(mt, existingID, app.ID, "withdrawn row must be reused, not duplicated")
		assert.Equal(mt, models.ApplicationStatusPending, app.Status)
		assert.Nil(mt, app.ReviewedAt)
		require.NotNil(mt, app.DocumentID)
		assert.Equal(mt, docID, *app.DocumentID)
	})
}

func TestListEmployerApplicationsFiltersByEmployer(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("all jobs of one employer", func(mt *mtest.T) {
		database.ApplicantCollection = mt.DB.Collection("applicants")

		employerID := primitive.NewObjectID()
		jobA := primitive.NewObjectID()
		jobB := primitive.NewObjectID()

		mt.AddMockResponses(
			countResponse(2),
			mtest.CreateCursorResponse(0, "db.applicants", mtest.FirstBatch,
				bson.D{
					{Key: "_id", Value: primitive.NewObjectID()},
					{Key: "jobId", Value: jobA},
					{Key: "employerId", Value: employerID},
					{Key: "userId", Value: primitive.NewObjectID()},
					{Key: "status", Value: models.ApplicationStatusPending},
				},
				bson.D{
					{Key: "_id", Value: primitive.NewObjectID()},
					{Key: "jobId", Value: jobB},
					{Key: "employerId", Value: employerID},
					{Key: "userId", Value: primitive.NewObjectID()},
					{Key: "status", Value: models.ApplicationStatusShortlisted},
				},
			),
		)

		list, err := ListEmployerApplications(employerID.Hex(), "", 1, 10)
		require.NoError(mt, err)

		assert.EqualValues(mt, 2, list.Pagination.Total)
		require.Len(mt, list.Applications, 2)
		for _, app := range list.Applications {
			assert.Equal(mt, employerID, app.EmployerID)
		}

		// The filter sent to the server scopes by employerId.
		for _, evt := range mt.GetAllStartedEvents() {
			if evt.CommandName != "find" {
				continue
			}
			oid, ok := evt.Command.Lookup("filter", "employerId").ObjectIDOK()
			require.True(mt, ok)
			assert.Equal(mt, employerID, oid)
		}
	})
}

func TestWithdrawDecrementsApplicationCount(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("counter and roster updated", func(mt *mtest.T) {
		database.ApplicantCollection = mt.DB.Collection("applicants")
		database.JobCollection = mt.DB.Collection("jobs")

		appID := primitive.NewObjectID()
		jobID := primitive.NewObjectID()
		userID := primitive.NewObjectID()

		mt.AddMockResponses(
			mtest.CreateCursorResponse(0, "db.applicants", mtest.FirstBatch, bson.D{
				{Key: "_id", Value: appID},
				{Key: "jobId", Value: jobID},
				{Key: "userId", Value: userID},
				{Key: "status", Value: models.ApplicationStatusPending},
			}),
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}),
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}),
		)

		app, err := Withdraw(userID.Hex(), appID.Hex())
		require.NoError(mt, err)
		assert.Equal(mt, models.ApplicationStatusWithdrawn, app.Status)

		var jobUpdate bson.Raw
		for _, evt := range mt.GetAllStartedEvents() {
			if evt.CommandName == "update" && evt.Command.Lookup("update").StringValue() == "jobs" {
				jobUpdate = evt.Command
			}
		}
		require.NotNil(mt, jobUpdate, "job counter update was never issued")

		u := jobUpdate.Lookup("updates").Array().Index(0).Value().Document().Lookup("u").Document()
		delta, ok := u.Lookup("$inc", "applicationCount").AsInt64OK()
		require.True(mt, ok)
		assert.EqualValues(mt, -1, delta)

		pulled := u.Lookup("$pull", "applicants")
		oid, ok := pulled.ObjectIDOK()
		require.True(mt, ok)
		assert.Equal(mt, userID, oid)
	})
}
