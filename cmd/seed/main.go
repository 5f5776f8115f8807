// cmd/seed/main.go
//
// Reseeds the content store: migrates the schema, wipes existing content,
// inserts the canonical article and expressions, and runs the authoring
// lint over what was written. Reseeding is a bulk, exclusive operation;
// it is never run concurrently with normal traffic.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	"go_french_gapfill/internal/config"
	"go_french_gapfill/internal/repository"
	"go_french_gapfill/internal/seed"
)

func main() {
	configPath := flag.String("config", "configs", "directory containing config.yaml")
	resetOnly := flag.Bool("reset-only", false, "wipe content without reseeding")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	if err := config.LoadConfig(*configPath); err != nil {
		slog.Error("Error loading configuration", slog.Any("error", err))
		os.Exit(1)
	}

	db, err := repository.NewDB(config.Cfg.Database.URL, logger)
	if err != nil {
		slog.Error("Error initializing database", slog.Any("error", err))
		os.Exit(1)
	}
	sqlDB, err := db.DB()
	if err != nil {
		slog.Error("Error getting underlying sql.DB from GORM", slog.Any("error", err))
		os.Exit(1)
	}
	defer sqlDB.Close()

	ctx := context.Background()

	if err := seed.Migrate(db); err != nil {
		slog.Error("Migration failed", slog.Any("error", err))
		os.Exit(1)
	}
	slog.Info("Migration complete")

	if err := seed.Reset(ctx, db); err != nil {
		slog.Error("Content reset failed", slog.Any("error", err))
		os.Exit(1)
	}
	slog.Info("Existing content cleared")

	if *resetOnly {
		return
	}

	article, err := seed.Seed(ctx, db)
	if err != nil {
		slog.Error("Seeding failed", slog.Any("error", err))
		os.Exit(1)
	}
	slog.Info("Seeding complete", slog.String("article_id", article.ArticleID.String()), slog.String("title", article.Title))

	// Authoring lint over what was actually persisted.
	articleRepo := repository.NewGormArticleRepository()
	seeded, err := articleRepo.FindByID(ctx, db, article.ArticleID)
	if err != nil {
		slog.Error("Could not reload seeded article for validation", slog.Any("error", err))
		os.Exit(1)
	}
	if err := seed.ValidateArticle(seeded); err != nil {
		slog.Error("Seeded content failed validation", slog.Any("error", err))
		os.Exit(1)
	}
	slog.Info("Seeded content validated",
		slog.Int("segments", len(seeded.Segments)),
		slog.Int("expressions", len(seeded.Expressions)),
	)
}
