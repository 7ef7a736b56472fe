package services

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

type UpdateProfileInput struct {
	FirstName       string                  `json:"firstName" validate:"omitempty,max=50"`
	LastName        string                  `json:"lastName" validate:"omitempty,max=50"`
	Profile         *models.UserProfile     `json:"profile"`
	EmployerProfile *models.EmployerProfile `json:"employerProfile"`
}

func GetUserByID(userID string) (*models.User, error) {
	id, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, utils.BadRequest("Invalid user ID")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var user models.User
	err = database.UserCollection.FindOne(ctx, bson.M{"_id": id}).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, utils.NotFound("User not found")
		}
		return nil, err
	}
	user.Password = ""
	return &user, nil
}

// UpdateUserProfile merges name and profile fields onto the account.
// Employer profiles are only writable by employer and nitda roles.
func UpdateUserProfile(userID string, input UpdateProfileInput) (*models.User, error) {
	id, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, utils.BadRequest("Invalid user ID")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var user models.User
	if err := database.UserCollection.FindOne(ctx, bson.M{"_id": id}).Decode(&user); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, utils.NotFound("User not found")
		}
		return nil, err
	}

	set := bson.M{"updatedAt": time.Now()}
	if input.FirstName != "" {
		set["firstName"] = input.FirstName
	}
	if input.LastName != "" {
		set["lastName"] = input.LastName
	}
	if input.Profile != nil {
		if user.Role != models.RoleCorpsMember {
			return nil, utils.Forbidden("Only corps members can update a service profile")
		}
		set["profile"] = input.Profile
	}
	if input.EmployerProfile != nil {
		if user.Role == models.RoleCorpsMember {
			return nil, utils.Forbidden("Only employers can update a company profile")
		}
		set["employerProfile"] = input.EmployerProfile
	}

	_, err = database.UserCollection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		return nil, err
	}

	return GetUserByID(userID)
}

// UpdateProfilePicture stores the served path of an uploaded avatar.
func UpdateProfilePicture(userID string, picturePath string) error {
	id, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return utils.BadRequest("Invalid user ID")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	res, err := database.UserCollection.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"profile.profilePicture": picturePath, "updatedAt": time.Now()}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return utils.NotFound("User not found")
	}
	return nil
}
