package services

import (
	"context"
	"strings"
	"time"

	"Backend-CorpsConnect/src/database"
	"Backend-CorpsConnect/src/models"
	"Backend-CorpsConnect/src/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"
)

const nitdaEmailDomain = "@nitda.gov.ng"

// nitdaEmployerProfile is auto-filled for institutional accounts.
var nitdaEmployerProfile = models.EmployerProfile{
	CompanyName:        "National Information Technology Development Agency (NITDA)",
	CompanySize:        "1000+",
	Industry:           "technology",
	CompanyDescription: "NITDA's mandates are quite diverse and vast, focusing on the responsibilities of the Agency on fostering the development and growth of IT in Nigeria.",
	Website:            "https://nitda.gov.ng/",
	ContactNumber:      "+2348168401851",
	Location:           "abuja",
}

type RegisterInput struct {
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=8"`
	FirstName string `json:"firstName" validate:"required,max=50"`
	LastName  string `json:"lastName" validate:"required,max=50"`
	Role      string `json:"role" validate:"omitempty,oneof=corps_member employer"`
}

// RegisterUser creates a local account. Institutional emails are assigned
// the nitda role with a pre-filled employer profile and skip onboarding.
func RegisterUser(input RegisterInput) (*models.User, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	email := strings.ToLower(strings.TrimSpace(input.Email))

	count, err := database.UserCollection.CountDocuments(ctx, bson.M{"email": email})
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, utils.Conflict("An account with this email already exists")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	role := input.Role
	if role == "" {
		role = models.RoleCorpsMember
	}

	now := time.Now()
	user := models.User{
		Email:          email,
		Password:       string(hash),
		FirstName:      strings.TrimSpace(input.FirstName),
		LastName:       strings.TrimSpace(input.LastName),
		Role:           role,
		OnboardingStep: 1,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if strings.HasSuffix(email, nitdaEmailDomain) {
		profile := nitdaEmployerProfile
		user.Role = models.RoleNitda
		user.EmployerProfile = &profile
		user.OnboardingCompleted = true
	}

	res, err := database.UserCollection.InsertOne(ctx, user)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, utils.Conflict("An account with this email already exists")
		}
		return nil, err
	}

	user.ID = res.InsertedID.(primitive.ObjectID)
	user.Password = ""
	return &user, nil
}

// AuthenticateUser verifies credentials and stamps lastLogin.
func AuthenticateUser(email, password string) (*models.User, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var user models.User
	err := database.UserCollection.FindOne(ctx, bson.M{"email": strings.ToLower(email)}).Decode(&user)
	if err != nil {
		return nil, utils.Unauthorized("Invalid email or password")
	}

	if user.Password == "" {
		// OAuth-only account, no local password set.
		return nil, utils.Unauthorized("Invalid email or password")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, utils.Unauthorized("Invalid email or password")
	}

	now := time.Now()
	_, _ = database.UserCollection.UpdateOne(ctx,
		bson.M{"_id": user.ID},
		bson.M{"$set": bson.M{"lastLogin": now}},
	)
	user.LastLogin = &now

	user.Password = ""
	return &user, nil
}

// GetUserByEmail is shared by login and the OAuth email-link fallback.
func GetUserByEmail(email string) (*models.User, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var user models.User
	err := database.UserCollection.FindOne(ctx, bson.M{"email": strings.ToLower(email)}).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, utils.NotFound("User not found")
		}
		return nil, err
	}
	user.Password = ""
	return &user, nil
}
