package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Roles are a closed set; capabilities are resolved from them at
// authorization time (see utils.RolePermissions).
const (
	RoleCorpsMember = "corps_member"
	RoleEmployer    = "employer"
	RoleNitda       = "nitda"
)

type ProfileSkill struct {
	Name              string `bson:"name" json:"name"`
	Level             string `bson:"level" json:"level"` // beginner, intermediate, advanced, expert
	YearsOfExperience int    `bson:"yearsOfExperience,omitempty" json:"yearsOfExperience,omitempty"`
}

type Address struct {
	Street     string `bson:"street,omitempty" json:"street,omitempty"`
	City       string `bson:"city,omitempty" json:"city,omitempty"`
	State      string `bson:"state,omitempty" json:"state,omitempty"`
	Country    string `bson:"country,omitempty" json:"country,omitempty"`
	PostalCode string `bson:"postalCode,omitempty" json:"postalCode,omitempty"`
}

// UserProfile is the corps-member side of the account.
type UserProfile struct {
	PhoneNumber              string         `bson:"phoneNumber,omitempty" json:"phoneNumber,omitempty"`
	StateOfService           string         `bson:"stateOfService,omitempty" json:"stateOfService,omitempty"`
	StateCode                string         `bson:"stateCode,omitempty" json:"stateCode,omitempty"`
	CallUpNumber             string         `bson:"callUpNumber,omitempty" json:"callUpNumber,omitempty"`
	PlaceOfPrimaryAssignment string         `bson:"placeOfPrimaryAssignment,omitempty" json:"placeOfPrimaryAssignment,omitempty"`
	BankName                 string         `bson:"bankName,omitempty" json:"bankName,omitempty"`
	AccountNumber            string         `bson:"accountNumber,omitempty" json:"accountNumber,omitempty"`
	Address                  *Address       `bson:"address,omitempty" json:"address,omitempty"`
	Skills                   []ProfileSkill `bson:"skills,omitempty" json:"skills,omitempty"`
	Bio                      string         `bson:"bio,omitempty" json:"bio,omitempty"`
	ProfilePicture           string         `bson:"profilePicture,omitempty" json:"profilePicture,omitempty"`
	Resume                   string         `bson:"resume,omitempty" json:"resume,omitempty"`
	LinkedIn                 string         `bson:"linkedin,omitempty" json:"linkedin,omitempty"`
	GitHub                   string         `bson:"github,omitempty" json:"github,omitempty"`
	DateOfBirth              *time.Time     `bson:"dateOfBirth,omitempty" json:"dateOfBirth,omitempty"`
	Gender                   string         `bson:"gender,omitempty" json:"gender,omitempty"`
	Status                   string         `bson:"status,omitempty" json:"status,omitempty"` // PENDING, ACCEPTED, REJECTED, SUSPENDED
}

// EmployerProfile is the organisational side of the account.
type EmployerProfile struct {
	CompanyName        string `bson:"companyName,omitempty" json:"companyName,omitempty"`
	CompanySize        string `bson:"companySize,omitempty" json:"companySize,omitempty"`
	Industry           string `bson:"industry,omitempty" json:"industry,omitempty"`
	CompanyDescription string `bson:"companyDescription,omitempty" json:"companyDescription,omitempty"`
	Website            string `bson:"website,omitempty" json:"website,omitempty"`
	ContactNumber      string `bson:"contactNumber,omitempty" json:"contactNumber,omitempty"`
	Location           string `bson:"location,omitempty" json:"location,omitempty"`
}

// User - password is never serialized back to clients.
type User struct {
	ID                  primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Email               string             `bson:"email" json:"email"`
	Password            string             `bson:"password,omitempty" json:"-"`
	GoogleID            string             `bson:"googleId,omitempty" json:"-"`
	FirstName           string             `bson:"firstName" json:"firstName"`
	LastName            string             `bson:"lastName" json:"lastName"`
	Role                string             `bson:"role" json:"role"`
	OnboardingCompleted bool               `bson:"onboardingCompleted" json:"onboardingCompleted"`
	OnboardingStep      int                `bson:"onboardingStep" json:"onboardingStep"`
	Profile             *UserProfile       `bson:"profile,omitempty" json:"profile,omitempty"`
	EmployerProfile     *EmployerProfile   `bson:"employerProfile,omitempty" json:"employerProfile,omitempty"`
	IsEmailVerified     bool               `bson:"isEmailVerified" json:"isEmailVerified"`
	LastLogin           *time.Time         `bson:"lastLogin,omitempty" json:"lastLogin,omitempty"`
	CreatedAt           time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt           time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// FullName joins first and last name for display and feeds.
func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}
