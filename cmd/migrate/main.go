// Command migrate applies or rolls back the embedded schema migrations.
//
// Usage:
//
//	migrate up|down|version
//
// Requires DATABASE_DSN environment variable to be set.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/heartmarshall/learnquest-backend/internal/adapter/postgres"
)

func main() {
	_ = godotenv.Load()

	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "Usage: migrate up|down|version")
		os.Exit(1)
	}

	dsn := os.Getenv("DATABASE_DSN")
	if dsn == "" {
		log.Fatal("DATABASE_DSN environment variable is required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	m, err := postgres.NewMigrator(ctx, dsn)
	if err != nil {
		log.Fatalf("open migrator: %v", err)
	}
	defer m.Close()

	switch os.Args[1] {
	case "up":
		n, err := m.Up(ctx)
		if err != nil {
			log.Fatalf("migrate up: %v", err)
		}
		fmt.Printf("Applied %d migration(s).\n", n)
	case "down":
		if err := m.Down(ctx); err != nil {
			log.Fatalf("migrate down: %v", err)
		}
		fmt.Println("Rolled back one migration.")
	case "version":
		v, err := m.Version(ctx)
		if err != nil {
			log.Fatalf("migrate version: %v", err)
		}
		fmt.Printf("Schema version: %d\n", v)
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q; want up, down or version\n", os.Args[1])
		os.Exit(1)
	}
}
