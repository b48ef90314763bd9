package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/Kirtan-Dandwani/Workforce--distribution--ai/internal/catalog"
	"github.com/Kirtan-Dandwani/Workforce--distribution--ai/internal/db"
	"github.com/Kirtan-Dandwani/Workforce--distribution--ai/internal/seed"
)

var (
	seedCount int
	seedValue int64
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Populate the database with synthetic employees",
	Long:  `Generate a deterministic synthetic employee population and insert it into PostgreSQL. Intended for local development and model training.`,
	RunE:  runSeed,
}

func init() {
	seedCmd.Flags().IntVar(&seedCount, "count", seed.DefaultCount, "Number of employees to generate")
	seedCmd.Flags().Int64Var(&seedValue, "seed", 42, "Random seed for the generator")
	rootCmd.AddCommand(seedCmd)
}

func runSeed(_ *cobra.Command, _ []string) error {
	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		return fmt.Errorf("DATABASE_URL environment variable is required")
	}

	logger := newLogger()
	ctx := context.Background()

	database, err := db.Connect(ctx, databaseURL)
	if err != nil {
		return err
	}
	defer database.Close()

	if err := database.Migrate(ctx); err != nil {
		return err
	}

	roleCatalog := catalog.Default()
	if path := os.Getenv("CATALOG_PATH"); path != "" {
		roleCatalog, err = catalog.LoadFile(path)
		if err != nil {
			return fmt.Errorf("failed to load role catalog: %w", err)
		}
	}

	employees := seed.Generate(roleCatalog, seed.Options{
		Count: seedCount,
		Seed:  seedValue,
		AsOf:  time.Now(),
	})

	inserted := 0
	for _, e := range employees {
		id, err := database.CreateEmployee(ctx, &e.CreateEmployeeRequest)
		if err != nil {
			logger.Warn().Err(err).Str("email", e.Email).Msg("skipping employee")
			continue
		}
		if e.WillLeave {
			if err := database.MarkAttrition(ctx, id, true); err != nil {
				return err
			}
		}
		inserted++
	}

	logger.Info().Int("inserted", inserted).Int("requested", seedCount).Msg("seed complete")
	return nil
}
