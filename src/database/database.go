package database

import (
	"context"
	"log"
	"os"
	"sync"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const DBName = "CorpsConnectDB"

var (
	client     *mongo.Client
	once       sync.Once
	connectErr error

	UserCollection         *mongo.Collection
	JobCollection          *mongo.Collection
	ApplicantCollection    *mongo.Collection
	CourseCollection       *mongo.Collection
	QrSessionCollection    *mongo.Collection
	AttendanceCollection   *mongo.Collection
	DocumentCollection     *mongo.Collection
	PersonalInfoCollection *mongo.Collection
	ExperienceCollection   *mongo.Collection
	EducationCollection    *mongo.Collection
	SkillCollection        *mongo.Collection
	ResumeUploadCollection *mongo.Collection
)

// ConnectMongoDB establishes the shared client once and wires up the
// collection handles the service packages use.
func ConnectMongoDB() error {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: no .env file found")
	}

	mongoURI := os.Getenv("MONGO_URI")
	if mongoURI == "" {
		log.Fatal("MONGO_URI environment variable not set. Please create a .env file and set it.")
	}

	once.Do(func() {
		clientOptions := options.Client().ApplyURI(mongoURI)

		client, connectErr = mongo.Connect(context.TODO(), clientOptions)
		if connectErr != nil {
			return
		}

		connectErr = client.Ping(context.TODO(), readpref.Primary())
		if connectErr != nil {
			return
		}

		UserCollection = GetCollection(DBName, "users")
		JobCollection = GetCollection(DBName, "jobs")
		ApplicantCollection = GetCollection(DBName, "applicants")
		CourseCollection = GetCollection(DBName, "courses")
		QrSessionCollection = GetCollection(DBName, "qrSessions")
		AttendanceCollection = GetCollection(DBName, "attendances")
		DocumentCollection = GetCollection(DBName, "documents")
		PersonalInfoCollection = GetCollection(DBName, "personalInfos")
		ExperienceCollection = GetCollection(DBName, "experiences")
		EducationCollection = GetCollection(DBName, "educations")
		SkillCollection = GetCollection(DBName, "skills")
		ResumeUploadCollection = GetCollection(DBName, "resumeUploads")

		log.Println("MongoDB connected successfully")
	})

	return connectErr
}

// GetCollection returns a handle on the shared client.
func GetCollection(dbName, collectionName string) *mongo.Collection {
	if client == nil {
		log.Fatal("MongoDB client is nil")
	}
	return client.Database(dbName).Collection(collectionName)
}
