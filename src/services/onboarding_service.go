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

// Onboarding walks corps members through five profile steps.
const (
	onboardingFirstStep = 1
	onboardingLastStep  = 5
)

type OnboardingStepInput struct {
	Step    int                `json:"step" validate:"required,gte=1,lte=5"`
	Profile models.UserProfile `json:"profile"`
}

type OnboardingProgress struct {
	CurrentStep int  `json:"currentStep"`
	TotalSteps  int  `json:"totalSteps"`
	Completed   bool `json:"completed"`
}

func loadOnboardingUser(ctx context.Context, userID string) (*models.User, error) {
	id, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, utils.BadRequest("Invalid user ID")
	}

	var user models.User
	if err := database.UserCollection.FindOne(ctx, bson.M{"_id": id}).Decode(&user); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, utils.NotFound("User not found")
		}
		return nil, err
	}
	if user.Role != models.RoleCorpsMember {
		return nil, utils.Forbidden("Onboarding is only available to corps members")
	}
	return &user, nil
}

// SaveOnboardingStep merges the submitted profile fields and advances the
// step pointer. Steps can be revisited but the pointer never moves back.
func SaveOnboardingStep(userID string, input OnboardingStepInput) (*OnboardingProgress, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	user, err := loadOnboardingUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user.OnboardingCompleted {
		return nil, utils.BadRequest("Onboarding is already completed")
	}

	merged := mergeProfile(user.Profile, &input.Profile)

	nextStep := user.OnboardingStep
	if input.Step >= nextStep {
		nextStep = input.Step + 1
		if nextStep > onboardingLastStep {
			nextStep = onboardingLastStep
		}
	}

	_, err = database.UserCollection.UpdateOne(ctx,
		bson.M{"_id": user.ID},
		bson.M{"$set": bson.M{
			"profile":        merged,
			"onboardingStep": nextStep,
			"updatedAt":      time.Now(),
		}},
	)
	if err != nil {
		return nil, err
	}

	return &OnboardingProgress{CurrentStep: nextStep, TotalSteps: onboardingLastStep}, nil
}

// CompleteOnboarding marks the walkthrough done once the last step is
// reached.
func CompleteOnboarding(userID string) (*OnboardingProgress, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	user, err := loadOnboardingUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user.OnboardingCompleted {
		return &OnboardingProgress{CurrentStep: onboardingLastStep, TotalSteps: onboardingLastStep, Completed: true}, nil
	}
	if user.OnboardingStep < onboardingLastStep {
		return nil, utils.BadRequest("Complete all onboarding steps first")
	}

	_, err = database.UserCollection.UpdateOne(ctx,
		bson.M{"_id": user.ID},
		bson.M{"$set": bson.M{"onboardingCompleted": true, "updatedAt": time.Now()}},
	)
	if err != nil {
		return nil, err
	}

	return &OnboardingProgress{CurrentStep: onboardingLastStep, TotalSteps: onboardingLastStep, Completed: true}, nil
}

func GetOnboardingProgress(userID string) (*OnboardingProgress, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	user, err := loadOnboardingUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	step := user.OnboardingStep
	if step < onboardingFirstStep {
		step = onboardingFirstStep
	}
	return &OnboardingProgress{
		CurrentStep: step,
		TotalSteps:  onboardingLastStep,
		Completed:   user.OnboardingCompleted,
	}, nil
}

// mergeProfile overlays non-zero incoming fields on the stored profile so
// each step only has to send its own section.
func mergeProfile(current, incoming *models.UserProfile) *models.UserProfile {
	if current == nil {
		current = &models.UserProfile{}
	}
	merged := *current

	if incoming.PhoneNumber != "" {
		merged.PhoneNumber = incoming.PhoneNumber
	}
	if incoming.StateOfService != "" {
		merged.StateOfService = incoming.StateOfService
	}
	if incoming.StateCode != "" {
		merged.StateCode = incoming.StateCode
	}
	if incoming.CallUpNumber != "" {
		merged.CallUpNumber = incoming.CallUpNumber
	}
	if incoming.PlaceOfPrimaryAssignment != "" {
		merged.PlaceOfPrimaryAssignment = incoming.PlaceOfPrimaryAssignment
	}
	if incoming.BankName != "" {
		merged.BankName = incoming.BankName
	}
	if incoming.AccountNumber != "" {
		merged.AccountNumber = incoming.AccountNumber
	}
	if incoming.Address != nil {
		merged.Address = incoming.Address
	}
	if len(incoming.Skills) > 0 {
		merged.Skills = incoming.Skills
	}
	if incoming.Bio != "" {
		merged.Bio = incoming.Bio
	}
	if incoming.ProfilePicture != "" {
		merged.ProfilePicture = incoming.ProfilePicture
	}
	if incoming.Resume != "" {
		merged.Resume = incoming.Resume
	}
	if incoming.LinkedIn != "" {
		merged.LinkedIn = incoming.LinkedIn
	}
	if incoming.GitHub != "" {
		merged.GitHub = incoming.GitHub
	}
	if incoming.DateOfBirth != nil {
		merged.DateOfBirth = incoming.DateOfBirth
	}
	if incoming.Gender != "" {
		merged.Gender = incoming.Gender
	}
	return &merged
}
