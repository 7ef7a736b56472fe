package admins

import (
	"context"
	"math"
	"time"

	"Backend-CorpsConnect/src/database"
	"Backend-CorpsConnect/src/models"
	"Backend-CorpsConnect/src/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ListUsersQuery struct {
	Role   string `query:"role" validate:"omitempty,oneof=corps_member employer nitda"`
	Status string `query:"status" validate:"omitempty,oneof=PENDING ACCEPTED REJECTED SUSPENDED"`
	Search string `query:"search"`
	Page   int    `query:"page"`
	Limit  int    `query:"limit"`
}

type UserList struct {
	Users      []models.User     `json:"users"`
	Pagination models.Pagination `json:"pagination"`
}

// ListUsers is the admin directory with role, status and name filters.
func ListUsers(q ListUsersQuery) (*UserList, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	filter := bson.M{}
	if q.Role != "" {
		filter["role"] = q.Role
	}
	if q.Status != "" {
		filter["profile.status"] = q.Status
	}
	if q.Search != "" {
		filter["$or"] = []bson.M{
			{"firstName": bson.M{"$regex": q.Search, "$options": "i"}},
			{"lastName": bson.M{"$regex": q.Search, "$options": "i"}},
			{"email": bson.M{"$regex": q.Search, "$options": "i"}},
		}
	}

	page, limit := q.Page, q.Limit
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	total, err := database.UserCollection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, err
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetSkip(int64((page - 1) * limit)).
		SetLimit(int64(limit))

	cursor, err := database.UserCollection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	users := []models.User{}
	if err := cursor.All(ctx, &users); err != nil {
		return nil, err
	}
	for i := range users {
		users[i].Password = ""
	}

	return &UserList{
		Users: users,
		Pagination: models.Pagination{
			Total:      total,
			Page:       page,
			Limit:      limit,
			TotalPages: int(math.Ceil(float64(total) / float64(limit))),
		},
	}, nil
}

// UpdateUserStatus sets the vetting status on a corps member's profile.
func UpdateUserStatus(userID, status string) (*models.User, error) {
	switch status {
	case "PENDING", "ACCEPTED", "REJECTED", "SUSPENDED":
	default:
		return nil, utils.BadRequest("Unknown status %q", status)
	}

	id, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, utils.BadRequest("Invalid user ID")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	res := database.UserCollection.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"profile.status": status, "updatedAt": time.Now()}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	)

	var user models.User
	if err := res.Decode(&user); err != nil {
		return nil, utils.NotFound("User not found")
	}
	user.Password = ""
	return &user, nil
}

type ListApplicationsQuery struct {
	Status string `query:"status"`
	Page   int    `query:"page"`
	Limit  int    `query:"limit"`
}

type ApplicationList struct {
	Applications []models.Applicant `json:"applications"`
	Pagination   models.Pagination  `json:"pagination"`
}

// ListApplications gives admins the full application stream.
func ListApplications(q ListApplicationsQuery) (*ApplicationList, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	filter := bson.M{}
	if q.Status != "" {
		filter["status"] = q.Status
	}

	page, limit := q.Page, q.Limit
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	total, err := database.ApplicantCollection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, err
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "appliedAt", Value: -1}}).
		SetSkip(int64((page - 1) * limit)).
		SetLimit(int64(limit))

	cursor, err := database.ApplicantCollection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	apps := []models.Applicant{}
	if err := cursor.All(ctx, &apps); err != nil {
		return nil, err
	}

	return &ApplicationList{
		Applications: apps,
		Pagination: models.Pagination{
			Total:      total,
			Page:       page,
			Limit:      limit,
			TotalPages: int(math.Ceil(float64(total) / float64(limit))),
		},
	}, nil
}
