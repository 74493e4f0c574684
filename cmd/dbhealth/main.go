package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"sort"
	"time"

	"github.com/jdelacruz-io/campus-records/internal/common"
	repo "github.com/jdelacruz-io/campus-records/internal/repository"
)

func main() {
	cfg := common.LoadConfig()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	client, db, err := repo.Open(ctx, repo.Config{
		URI:            cfg.Database.URI,
		Database:       cfg.Database.Database,
		ConnectTimeout: cfg.Database.ConnectTimeout,
		PingTimeout:    cfg.Database.PingTimeout,
	}, logger)
	if err != nil {
		log.Fatalf("opening DB: %v", err)
	}
	defer repo.Close(context.Background(), client, logger)

	if err := repo.HealthCheck(ctx, client, 1*time.Second, logger); err != nil {
		log.Fatalf("DB health: FAIL (%v)", err)
	}
	log.Println("DB health: OK")

	records := repo.NewMongoRecordRepository(db, logger)
	counts, err := records.CountByCollection(ctx)
	if err != nil {
		log.Fatalf("counting records: %v", err)
	}

	names := make([]string, 0, len(counts))
	total := int64(0)
	for name, n := range counts {
		names = append(names, name)
		total += n
	}
	sort.Strings(names)

	log.Printf("records total: %d", total)
	for _, name := range names {
		log.Printf("- %s: %d", name, counts[name])
	}
}
