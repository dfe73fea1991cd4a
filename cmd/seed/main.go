package main

import (
	"context"
	"fmt"
	"log"

	"noteful-be/internal/bootstrap"
	"noteful-be/internal/config"
	"noteful-be/internal/pkg/logger"
	"noteful-be/internal/repository/unitofwork"

	"github.com/fatih/color"
)

type summary struct {
	label   string
	removed int64
	added   int
}

func main() {
	ctx := context.Background()
	cfg := config.Load()
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.IsProduction())
	defer sysLogger.Sync()

	factory, closeStore, err := bootstrap.NewRepositoryFactory(cfg, sysLogger)
	if err != nil {
		log.Fatal("Error: Failed to open storage:", err)
	}
	defer closeStore()

	log.Println("Seeding folders, tags and notes...")
	results, err := seed(ctx, factory)
	if err != nil {
		color.Red("Seeding failed: %v", err)
		log.Fatal(err)
	}

	for _, r := range results {
		fmt.Printf("%-8s %s %s\n",
			r.label,
			color.RedString("-%d", r.removed),
			color.GreenString("+%d", r.added),
		)
	}
	color.New(color.FgGreen, color.Bold).Println("Seeding completed!")
}

// seed replaces every collection with the fixtures in one transaction.
func seed(ctx context.Context, factory unitofwork.RepositoryFactory) (res []summary, err error) {
	uow := factory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer func() {
		if err != nil {
			uow.Rollback()
		}
	}()

	notesRemoved, err := uow.NoteRepository().DeleteAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("wipe notes: %w", err)
	}
	foldersRemoved, err := uow.FolderRepository().DeleteAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("wipe folders: %w", err)
	}
	tagsRemoved, err := uow.TagRepository().DeleteAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("wipe tags: %w", err)
	}

	if err := uow.FolderRepository().CreateMany(ctx, seedFolders); err != nil {
		return nil, fmt.Errorf("insert folders: %w", err)
	}
	if err := uow.TagRepository().CreateMany(ctx, seedTags); err != nil {
		return nil, fmt.Errorf("insert tags: %w", err)
	}
	if err := uow.NoteRepository().CreateMany(ctx, seedNotes); err != nil {
		return nil, fmt.Errorf("insert notes: %w", err)
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	return []summary{
		{"folders", foldersRemoved, len(seedFolders)},
		{"tags", tagsRemoved, len(seedTags)},
		{"notes", notesRemoved, len(seedNotes)},
	}, nil
}
