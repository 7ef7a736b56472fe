package seeder

import (
	"log"

	"Backend-CorpsConnect/src/models"
	"Backend-CorpsConnect/src/services"
	"Backend-CorpsConnect/src/services/courses"
	"Backend-CorpsConnect/src/services/jobs"
)

// SeedSampleData creates demo accounts, jobs and a course for local
// development. Safe to re-run: existing accounts are reused.
func SeedSampleData() error {
	employer, err := seedUser(services.RegisterInput{
		Email:     "hr@techbridge.example.com",
		Password:  "Password123!",
		FirstName: "Adaeze",
		LastName:  "Okafor",
		Role:      models.RoleEmployer,
	})
	if err != nil {
		return err
	}

	staff, err := seedUser(services.RegisterInput{
		Email:     "programs@nitda.gov.ng",
		Password:  "Password123!",
		FirstName: "Ibrahim",
		LastName:  "Musa",
	})
	if err != nil {
		return err
	}

	if _, err := seedUser(services.RegisterInput{
		Email:     "corps.member@example.com",
		Password:  "Password123!",
		FirstName: "Chidi",
		LastName:  "Eze",
		Role:      models.RoleCorpsMember,
	}); err != nil {
		return err
	}

	sampleJobs := []jobs.CreateJobInput{
		{
			Title:           "Junior Backend Engineer",
			JobType:         "full-time",
			ExperienceLevel: "entry",
			WorkLocation:    "hybrid",
			JobPeriod:       "12 months",
			Skills:          []string{"Go", "MongoDB", "REST"},
			AboutJob:        "Build and maintain APIs for our logistics platform.",
			Requirements:    "Completed NYSC orientation. Familiarity with Git and one backend language.",
			SalaryRange:     models.SalaryRange{Min: 150000, Max: 250000, Currency: "NGN", IsPublic: true},
			HiringLocation:  models.HiringLocation{Type: "state", State: "Lagos"},
		},
		{
			Title:           "Frontend Developer Intern",
			JobType:         "internship",
			ExperienceLevel: "entry",
			WorkLocation:    "remote",
			JobPeriod:       "6 months",
			Skills:          []string{"JavaScript", "Vue", "CSS"},
			AboutJob:        "Work with the product team on customer-facing dashboards.",
			Requirements:    "Portfolio or GitHub profile showing at least one shipped project.",
			SalaryRange:     models.SalaryRange{Min: 80000, Max: 120000, Currency: "NGN", IsPublic: true},
			HiringLocation:  models.HiringLocation{Type: "nation-wide"},
		},
	}
	for _, input := range sampleJobs {
		job, err := jobs.CreateJob(employer.ID.Hex(), input)
		if err != nil {
			log.Printf("seeder: job %q: %v", input.Title, err)
			continue
		}
		if _, err := jobs.PublishJob(job.ID.Hex(), employer.ID.Hex()); err != nil {
			log.Printf("seeder: publish job %q: %v", input.Title, err)
		}
	}

	course, err := courses.CreateCourse(staff.ID.Hex(), courses.CreateCourseInput{
		Title:              "Digital Skills Bootcamp",
		Description:        "An eight-week introduction to web development and cloud basics.",
		Category:           "software-development",
		Level:              "beginner",
		Duration:           64,
		MaxStudents:        40,
		Skills:             []string{"HTML", "CSS", "JavaScript", "Cloud"},
		LearningObjectives: []string{"Build a static site", "Deploy to a cloud provider"},
	})
	if err != nil {
		log.Printf("seeder: course: %v", err)
		return nil
	}
	if _, err := courses.PublishCourse(course.ID.Hex(), staff.ID.Hex()); err != nil {
		log.Printf("seeder: publish course: %v", err)
	}

	log.Println("seeder: sample data ready")
	return nil
}

// seedUser registers the account or falls back to the existing one.
func seedUser(input services.RegisterInput) (*models.User, error) {
	user, err := services.RegisterUser(input)
	if err == nil {
		log.Printf("seeder: created %s (%s)", user.Email, user.Role)
		return user, nil
	}
	existing, lookupErr := services.GetUserByEmail(input.Email)
	if lookupErr != nil {
		return nil, err
	}
	return existing, nil
}
