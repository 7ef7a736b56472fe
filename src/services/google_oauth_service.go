package services

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"Backend-CorpsConnect/src/database"
	"Backend-CorpsConnect/src/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

// GoogleUserInfo is the userinfo payload from Google.
type GoogleUserInfo struct {
	ID            string `json:"id"`
	Email         string `json:"email"`
	VerifiedEmail bool   `json:"verified_email"`
	Name          string `json:"name"`
	GivenName     string `json:"given_name"`
	FamilyName    string `json:"family_name"`
	Picture       string `json:"picture"`
}

func GetGoogleOAuthConfig() *oauth2.Config {
	return &oauth2.Config{
		ClientID:     os.Getenv("GOOGLE_CLIENT_ID"),
		ClientSecret: os.Getenv("GOOGLE_CLIENT_SECRET"),
		RedirectURL:  os.Getenv("GOOGLE_REDIRECT"),
		Scopes: []string{
			"https://www.googleapis.com/auth/userinfo.email",
			"https://www.googleapis.com/auth/userinfo.profile",
		},
		Endpoint: google.Endpoint,
	}
}

func GetGoogleUserInfo(accessToken string) (*GoogleUserInfo, error) {
	url := "https://www.googleapis.com/oauth2/v2/userinfo?access_token=" + accessToken

	resp, err := http.Get(url)
	if err != nil {
		return nil, fmt.Errorf("failed to get user info: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to get user info: status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %v", err)
	}

	var userInfo GoogleUserInfo
	if err := json.Unmarshal(body, &userInfo); err != nil {
		return nil, fmt.Errorf("failed to unmarshal user info: %v", err)
	}

	return &userInfo, nil
}

// ProcessGoogleLogin exchanges the code and finds or creates the account:
// match by googleId first, link by email second, create a corps_member
// account last.
func ProcessGoogleLogin(code string) (*models.User, error) {
	config := GetGoogleOAuthConfig()

	token, err := config.Exchange(context.Background(), code)
	if err != nil {
		return nil, fmt.Errorf("failed to exchange code for token: %v", err)
	}

	userInfo, err := GetGoogleUserInfo(token.AccessToken)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var user models.User
	err = database.UserCollection.FindOne(ctx, bson.M{"googleId": userInfo.ID}).Decode(&user)
	if err == nil {
		user.Password = ""
		return &user, nil
	}
	if err != mongo.ErrNoDocuments {
		return nil, err
	}

	// Link an existing local account by email.
	err = database.UserCollection.FindOne(ctx, bson.M{"email": userInfo.Email}).Decode(&user)
	if err == nil {
		_, err = database.UserCollection.UpdateOne(ctx,
			bson.M{"_id": user.ID},
			bson.M{"$set": bson.M{"googleId": userInfo.ID, "isEmailVerified": true}},
		)
		if err != nil {
			return nil, err
		}
		user.GoogleID = userInfo.ID
		user.Password = ""
		return &user, nil
	}
	if err != mongo.ErrNoDocuments {
		return nil, err
	}

	now := time.Now()
	newUser := models.User{
		Email:           userInfo.Email,
		GoogleID:        userInfo.ID,
		FirstName:       userInfo.GivenName,
		LastName:        userInfo.FamilyName,
		Role:            models.RoleCorpsMember,
		OnboardingStep:  1,
		IsEmailVerified: userInfo.VerifiedEmail,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if newUser.FirstName == "" {
		newUser.FirstName = userInfo.Name
	}

	res, err := database.UserCollection.InsertOne(ctx, newUser)
	if err != nil {
		return nil, err
	}
	newUser.ID = res.InsertedID.(primitive.ObjectID)
	return &newUser, nil
}
