package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"time"

	_ "github.com/lib/pq"

	"github.com/PraveenKumar22C/mentor-connect/internal/config"
	"github.com/PraveenKumar22C/mentor-connect/internal/domain"
	mentorRepo "github.com/PraveenKumar22C/mentor-connect/internal/infra/storage/mentor"
	"github.com/PraveenKumar22C/mentor-connect/pkg/logger"
	"github.com/PraveenKumar22C/mentor-connect/pkg/types"
)

// Наполняет каталог демо-менторами. Запускается вручную на пустой базе:
//
//	go run ./cmd/seed
func main() {
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}

	repo := mentorRepo.NewRepository(db)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	for _, mentor := range demoMentors() {
		created, err := repo.Create(ctx, mentor)
		if err != nil {
			log.Fatal("Failed to seed mentor %q: %v", mentor.Name, err)
		}
		log.Info("Seeded mentor id=%d name=%q (%d slots, %d price tiers)",
			created.ID, created.Name, len(created.TimeSlots), len(created.Pricing))
	}

	log.Info("Seeding completed")
}

func demoMentors() []*domain.Mentor {
	return []*domain.Mentor{
		{
			Name:           "Dr. Sanjeev Jindal",
			Title:          "MD Radiodiagnosis resident",
			Specialization: "Medical Doctor - Radiodiagnosis",
			Experience:     8,
			Location:       "Chandigarh, Punjab",
			ProfileImage:   "https://images.unsplash.com/photo-1612349317150-e413f6a5b16d?w=400&h=400&fit=crop&crop=face",
			Bio:            "Mentor with a track record of passing NEET UG, NEET PG, UPSC CMS and ESIC on the first attempt. Builds customized preparation plans and helps students manage exam stress.",
			Languages:      []string{"English", "Hindi", "Punjabi"},
			Available:      true,
			IsActive:       true,
			TimeSlots: []domain.TimeSlot{
				slot("Monday 17:00 - 21:00", domain.Monday, "17:00", "21:00"),
				slot("Tuesday 21:00 - 01:00", domain.Tuesday, "21:00", "01:00"),
			},
			Pricing: []domain.Pricing{
				{DurationMinutes: 15, Price: 299},
				{DurationMinutes: 30, Price: 499},
				{DurationMinutes: 60, Price: 799},
			},
			Rating:        4.9,
			TotalSessions: 156,
		},
		{
			Name:           "Dr. Priya Sharma",
			Title:          "Senior Consultant - Internal Medicine",
			Specialization: "Internal Medicine",
			Experience:     12,
			Location:       "New Delhi",
			ProfileImage:   "https://images.unsplash.com/photo-1559839734-2b71ea197ec2?w=400&h=400&fit=crop&crop=face",
			Bio:            "Internal Medicine specialist with over 12 years of clinical practice. Mentors medical students and residents in clinical diagnosis, patient care and research.",
			Languages:      []string{"English", "Hindi"},
			Available:      true,
			IsActive:       true,
			TimeSlots: []domain.TimeSlot{
				slot("Monday 09:00 - 13:00", domain.Monday, "09:00", "13:00"),
				slot("Tuesday 17:00 - 21:00", domain.Tuesday, "17:00", "21:00"),
			},
			Pricing: []domain.Pricing{
				{DurationMinutes: 15, Price: 399},
				{DurationMinutes: 30, Price: 699},
				{DurationMinutes: 60, Price: 1199},
			},
			Rating:        4.8,
			TotalSessions: 234,
		},
		{
			Name:           "Dr. Rahul Gupta",
			Title:          "Cardiology Resident",
			Specialization: "Cardiology",
			Experience:     6,
			Location:       "Mumbai, Maharashtra",
			Bio:            "Cardiology resident helping aspirants crack NEET PG and build a strong foundation in clinical cardiology.",
			Languages:      []string{"English", "Hindi", "Marathi"},
			Available:      true,
			IsActive:       true,
			TimeSlots: []domain.TimeSlot{
				slot("Wednesday 13:00 - 17:00", domain.Wednesday, "13:00", "17:00"),
				slot("Thursday 21:00 - 01:00", domain.Thursday, "21:00", "01:00"),
			},
			Pricing: []domain.Pricing{
				{DurationMinutes: 15, Price: 349},
				{DurationMinutes: 30, Price: 599},
				{DurationMinutes: 60, Price: 999},
			},
			Rating:        4.7,
			TotalSessions: 89,
		},
		{
			Name:           "Dr. Vikram Singh",
			Title:          "Orthopedic Surgeon",
			Specialization: "Orthopedics",
			Experience:     15,
			Location:       "Jaipur, Rajasthan",
			ProfileImage:   "https://images.unsplash.com/photo-1622253692010-333f2da6031d?w=400&h=400&fit=crop&crop=face",
			Bio:            "Senior orthopedic surgeon and conference speaker. Mentors surgical residents on operative technique and career planning.",
			Languages:      []string{"English", "Hindi", "Rajasthani"},
			Available:      true,
			IsActive:       true,
			TimeSlots: []domain.TimeSlot{
				slot("Friday 17:00 - 21:00", domain.Friday, "17:00", "21:00"),
				slot("Saturday 21:00 - 01:00", domain.Saturday, "21:00", "01:00"),
			},
			Pricing: []domain.Pricing{
				{DurationMinutes: 15, Price: 449},
				{DurationMinutes: 30, Price: 799},
				{DurationMinutes: 60, Price: 1399},
			},
			Rating:        4.8,
			TotalSessions: 312,
		},
	}
}

func slot(name string, day domain.Weekday, start, end string) domain.TimeSlot {
	startTime, err := types.NewTimeStringFromString(start)
	if err != nil {
		panic(err)
	}
	endTime, err := types.NewTimeStringFromString(end)
	if err != nil {
		panic(err)
	}
	return domain.TimeSlot{
		Name:      name,
		Day:       day,
		StartTime: startTime,
		EndTime:   endTime,
		Available: true,
	}
}
