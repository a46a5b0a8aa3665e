package main

import (
	"context"
	"log"
	"os"

	"ai-legalaid-be/internal/repository/implementation"
	"ai-legalaid-be/internal/repository/specification"
	"ai-legalaid-be/pkg/corpus"
	"ai-legalaid-be/pkg/database"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
)

// Seeds the reference unit table with the bundled corpus. Safe to run more
// than once: unit ids are deterministic and existing rows are skipped.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		color.Red("Error: DB_CONNECTION_STRING is not set")
		os.Exit(1)
	}

	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		color.Red("Error: Failed to connect to database: %v", err)
		os.Exit(1)
	}

	ctx := context.Background()
	repo := implementation.NewReferenceUnitRepository(db)

	units := corpus.SampleUnits()
	color.Cyan("Seeding %d reference units...", len(units))

	seeded := 0
	for _, unit := range units {
		existing, err := repo.FindOne(ctx, specification.ByID{ID: unit.Id})
		if err != nil {
			color.Red("Error: lookup failed for %s: %v", unit.Title, err)
			os.Exit(1)
		}
		if existing != nil {
			color.Yellow("  skip  %s (already present)", unit.Title)
			continue
		}
		if err := repo.Create(ctx, unit); err != nil {
			color.Red("Error: insert failed for %s: %v", unit.Title, err)
			os.Exit(1)
		}
		color.Green("  seed  %s", unit.Title)
		seeded++
	}

	color.Cyan("Done: %d new units, %d already present", seeded, len(units)-seeded)
}
