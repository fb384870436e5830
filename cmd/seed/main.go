package main

import (
	"fmt"
	"log"
	"os"

	"scheme-navigator/internal/repository"
	"scheme-navigator/internal/service"
	"scheme-navigator/pkg/auth"
	"scheme-navigator/pkg/config"
	"scheme-navigator/pkg/logger"
	"scheme-navigator/pkg/postgres"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

func main() {
	app := &cli.App{
		Name:  "seed",
		Usage: "Load the scheme dataset into the document store",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
			},
		},
		Commands: []*cli.Command{
			{
				Name:   "import",
				Usage:  "Replace stored categories with the dataset files",
				Action: importCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "dataset",
						Aliases: []string{"d"},
						Usage:   "Directory holding agriculture.json, education.json, ... (defaults to DATASET_PATH)",
					},
					&cli.StringSliceFlag{
						Name:  "only",
						Usage: "Import only the given category slugs",
					},
				},
			},
			{
				Name:   "token",
				Usage:  "Issue an admin token for the reload endpoint",
				Action: tokenCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "subject",
						Usage: "Operator name recorded in the token",
						Value: "operator",
					},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func loadConfig(c *cli.Context) (*config.Config, *zap.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	level := cfg.Logger.Level
	if c.IsSet("log-level") {
		level = c.String("log-level")
	}
	appLogger, err := logger.New(level)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return cfg, appLogger, nil
}

func importCommand(c *cli.Context) error {
	cfg, appLogger, err := loadConfig(c)
	if err != nil {
		return err
	}
	defer func() {
		_ = appLogger.Sync()
	}()

	dataset := cfg.Dataset.Path
	if c.IsSet("dataset") {
		dataset = c.String("dataset")
	}

	ctx := c.Context
	db, err := postgres.NewPool(ctx, &cfg.Database, appLogger)
	if err != nil {
		return err
	}
	defer db.Close()

	repo := repository.NewSchemeRepository(db, appLogger)
	if err := repo.Migrate(ctx); err != nil {
		return err
	}

	appLogger.Info("Starting dataset import", zap.String("dataset", dataset))

	reports, err := service.NewImportService(repo, appLogger).Import(ctx, dataset, c.StringSlice("only"))
	for _, r := range reports {
		if r.Error != "" {
			fmt.Printf("✗ %-15s %s\n", r.Category, r.Error)
			continue
		}
		fmt.Printf("✓ %-15s %d documents, %d schemes\n", r.Category, r.Documents, r.Schemes)
	}
	if err != nil {
		return cli.Exit(fmt.Sprintf("import failed: %v", err), 1)
	}

	appLogger.Info("Dataset import completed", zap.Int("categories", len(reports)))
	return nil
}

func tokenCommand(c *cli.Context) error {
	cfg, _, err := loadConfig(c)
	if err != nil {
		return err
	}

	token, err := auth.NewJWTManager(cfg.Auth.SecretKey, cfg.Auth.Issuer, cfg.Auth.Expiration).
		GenerateToken(c.String("subject"), "admin")
	if err != nil {
		return err
	}
	fmt.Println(token)
	return nil
}
