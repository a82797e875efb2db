// Command loadcsv imports the bulk festival CSV export through the upsert
// engine. It accepts the Korean column headers of the public dataset and
// tolerates the known alternate spellings.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	_ "github.com/joho/godotenv/autoload" // Autoload .env file.
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/festa-kr/festa-api/internal/config"
	"github.com/festa-kr/festa-api/internal/db"
	"github.com/festa-kr/festa-api/internal/ingest"
	"github.com/festa-kr/festa-api/internal/logger"
	"github.com/festa-kr/festa-api/internal/repository"
	"github.com/festa-kr/festa-api/internal/repository/dao"
	"github.com/festa-kr/festa-api/internal/service"
)

func main() {
	configFile := flag.String("config", "./cmd/app/config.yml", "path to the config file")
	path := flag.String("path", "data.csv", "path to the CSV file")
	limit := flag.Int("limit", 0, "row cap, 0 means all rows")
	flag.Parse()

	if err := run(*configFile, *path, *limit); err != nil {
		fmt.Fprintf(os.Stderr, "loadcsv: %v\n", err)
		os.Exit(1)
	}
}

func run(configFile, path string, limit int) error {
	conf, err := config.Load(configFile)
	if err != nil {
		return fmt.Errorf("failed to initialize config -> %w", err)
	}

	if err = logger.Init(conf.API.Environment); err != nil {
		return fmt.Errorf("failed to initialize logger -> %w", err)
	}

	dbURL := os.Getenv("DATABASE_URL")
	var postgresDB *gorm.DB
	if dbURL != "" {
		postgresDB, err = db.OpenPostgresWithURL(dbURL)
	} else {
		postgresDB, err = db.OpenPostgres(conf.Postgres)
	}
	if err != nil {
		return fmt.Errorf("failed to initialize database -> %w", err)
	}

	if err = dao.InitTables(postgresDB); err != nil {
		return fmt.Errorf("failed to migrate tables -> %w", err)
	}

	repo := repository.NewFestivalRepository(dao.NewFestivalDAO(postgresDB))
	runner := ingest.NewRunner(service.NewIngestService(repo))

	res, err := runner.RunCSV(context.Background(), path, limit)
	if err != nil {
		return fmt.Errorf("runner.RunCSV -> %w", err)
	}

	zap.L().Info("import finished",
		zap.String("file", path),
		zap.Int("created", res.Created),
		zap.Int("updated", res.Updated),
		zap.Int("skipped", res.Skipped),
		zap.Int("failed", res.Failed),
	)

	return nil
}
