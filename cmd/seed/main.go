// Command main runs the database seeder for Raptor.
package main

import (
	"flag"
	"log"

	"raptor/internal/config"
	"raptor/internal/database"
	"raptor/internal/seed"
)

func main() {
	numUsers := flag.Int("users", 25, "Number of users to create")
	numRapts := flag.Int("rapts", 100, "Number of rapts to create")
	shouldClean := flag.Bool("clean", true, "Clean database before seeding")
	flag.Parse()

	log.Println("Database Seeder")
	log.Printf("Target: %d users, %d rapts, clean=%v\n", *numUsers, *numRapts, *shouldClean)

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	s := seed.NewSeeder(db, seed.Options{
		NumUsers:    *numUsers,
		NumRapts:    *numRapts,
		ShouldClean: *shouldClean,
	})
	if err := s.Run(); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}

	log.Println("All done! Your database is now populated with test data.")
	log.Println("All test users have the password: password123")
}
