// Command fetchfestivals pulls festival pages from the open-data API and
// feeds every record through the upsert engine. Reruns are safe: records
// already present are updated in place, never duplicated.
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
	apiKey := flag.String("api-key", "", "open-data API key (falls back to FESTIVAL_API_KEY)")
	pageSize := flag.Int("page-size", 50, "records per page")
	pages := flag.Int("pages", 0, "page cap, 0 means all pages")
	flag.Parse()

	if err := run(*configFile, *apiKey, *pageSize, *pages); err != nil {
		fmt.Fprintf(os.Stderr, "fetchfestivals: %v\n", err)
		os.Exit(1)
	}
}

func run(configFile, apiKey string, pageSize, pages int) error {
	conf, err := config.Load(configFile)
	if err != nil {
		return fmt.Errorf("failed to initialize config -> %w", err)
	}

	if err = logger.Init(conf.API.Environment); err != nil {
		return fmt.Errorf("failed to initialize logger -> %w", err)
	}

	if apiKey == "" {
		apiKey = os.Getenv("FESTIVAL_API_KEY")
	}
	if apiKey == "" {
		apiKey = conf.Ingest.APIKey
	}
	if apiKey == "" {
		return fmt.Errorf("no API key given, pass --api-key or set FESTIVAL_API_KEY")
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
	client := ingest.NewAPIClient(conf.Ingest.APIURL, conf.Ingest.ServiceID, apiKey)

	res, err := runner.RunAPI(context.Background(), client, pageSize, pages)
	if err != nil {
		return fmt.Errorf("runner.RunAPI -> %w", err)
	}

	zap.L().Info("import finished",
		zap.Int("created", res.Created),
		zap.Int("updated", res.Updated),
		zap.Int("skipped", res.Skipped),
		zap.Int("failed", res.Failed),
	)

	return nil
}
