// Command cnm-server runs the HTTP API in front of the clustering engine.
package main

import (
	"database/sql"
	"log"

	_ "github.com/lib/pq"

	"github.com/nucleus/cnm-core/internal/httpapi"
	"github.com/nucleus/cnm-core/pkg/communitystore"
	"github.com/nucleus/cnm-core/pkg/config"
	"github.com/nucleus/cnm-core/pkg/jobqueue"
)

func main() {
	cfg := config.Load()

	store, err := initStore(cfg)
	if err != nil {
		log.Fatalf("store init: %v", err)
	}

	queue := jobqueue.New(store, cfg.AsyncJobWorkers, cfg.ReportInterval)
	defer queue.Close()

	server := httpapi.NewServer(queue, store)
	log.Printf("cnm-server listening on %s", cfg.ListenAddr)
	if err := server.Run(cfg.ListenAddr); err != nil {
		log.Fatalf("serve: %v", err)
	}
}

func initStore(cfg *config.Config) (communitystore.Store, error) {
	if cfg.PostgresDSN == "" {
		log.Printf("CNM_POSTGRES_DSN not set, using in-memory result store")
		return communitystore.NewMemoryStore(), nil
	}

	db, err := sql.Open("postgres", cfg.PostgresDSN)
	if err != nil {
		return nil, err
	}
	return communitystore.NewPostgresStore(db)
}
