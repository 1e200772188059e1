package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"

	"github.com/jsb2092/fashion-coordinator-sub000/internal/auth"
	"github.com/jsb2092/fashion-coordinator-sub000/internal/people"
)

// creates (or reuses) a test person and prints a JWT for manual API and
// TUI testing. usage: go run scripts/gen_test_token.go [email]
func main() {
	// load environment
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found")
	}

	dbConnString := os.Getenv("DATABASE_URL")
	if dbConnString == "" {
		log.Fatal("DATABASE_URL not set")
	}

	dbPool, err := pgxpool.New(context.Background(), dbConnString)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer dbPool.Close()

	email := "test@example.com"
	if len(os.Args) > 1 {
		email = os.Args[1]
	}

	personRepo := people.NewRepository(dbPool)

	person, err := personRepo.FindOrCreateByProvider(
		context.Background(),
		"google",
		"test-"+uuid.NewString(),
		email,
		"Test Person",
		"",
	)
	if err != nil {
		log.Fatalf("Failed to create test person: %v", err)
	}

	token, err := auth.GenerateJWT(person.ID, person.Email)
	if err != nil {
		log.Fatalf("Failed to generate token: %v", err)
	}

	fmt.Printf("person_id: %s\n", person.ID)
	fmt.Printf("email:     %s\n", person.Email)
	fmt.Printf("token:     %s\n", token)
}
