package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/nileroots/kinship-core/internal/application/handlers"
	"github.com/nileroots/kinship-core/internal/domain/services"
	"github.com/nileroots/kinship-core/internal/infrastructure/config"
	"github.com/nileroots/kinship-core/internal/infrastructure/familydb/sqlite"
)

// deps holds everything a command needs for one tree: the open store, the
// services built on it, and the handlers commands talk to.
type deps struct {
	Config *config.Config
	Trees  *config.TreesConfig
	TreeID string

	db      *sqlite.Repository
	persons *services.PersonService

	PersonHandler *handlers.PersonHandler
	RelateHandler *handlers.RelateHandler
	ImportHandler *handlers.ImportHandler
	LabelHandler  *handlers.LabelHandler
}

// withDeps loads config, opens the tree's database, builds dependencies, and
// calls the provided function. Cleanup is handled automatically.
func withDeps(ctx context.Context, fn func(*deps) error) error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("getting current directory: %w", err)
	}

	cfg, err := config.Load(cwd)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	trees, err := config.LoadTrees(cwd)
	if err != nil {
		return fmt.Errorf("loading trees: %w", err)
	}

	if globalTree == "" {
		return errors.New("tree is required (use --tree flag)")
	}

	treeID, err := trees.GetID(globalTree)
	if err != nil {
		return err
	}

	sqlitePath := config.SQLitePathForTree(cwd, globalTree)
	db, err := sqlite.NewRepository(config.SQLiteConfig{Path: sqlitePath})
	if err != nil {
		return fmt.Errorf("creating sqlite repository: %w", err)
	}
	defer db.Close()

	if err := db.EnsureSchema(ctx); err != nil {
		return fmt.Errorf("ensuring sqlite schema: %w", err)
	}

	personService := services.NewPersonService(db)
	labelService := services.NewLabelService(db)
	kinshipService := services.NewKinshipService(db, labelService, cfg.Engine.Locale, cfg.Engine.MaxDepth)
	importService := services.NewImportService(db, personService)

	d := &deps{
		Config:        cfg,
		Trees:         trees,
		TreeID:        treeID,
		db:            db,
		persons:       personService,
		PersonHandler: handlers.NewPersonHandler(personService, db),
		RelateHandler: handlers.NewRelateHandler(kinshipService, personService),
		ImportHandler: handlers.NewImportHandler(importService),
		LabelHandler:  handlers.NewLabelHandler(db),
	}

	return fn(d)
}
