package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/claimlens/claimlens/src/cache"
	"github.com/claimlens/claimlens/src/components/analysis"
	"github.com/claimlens/claimlens/src/components/extractor"
	"github.com/claimlens/claimlens/src/components/ollama"
	"github.com/claimlens/claimlens/src/components/scraper"
	"github.com/claimlens/claimlens/src/components/search"
	"github.com/claimlens/claimlens/src/components/textclean"
	"github.com/claimlens/claimlens/src/components/verifier"
	"github.com/claimlens/claimlens/src/config"
	"github.com/claimlens/claimlens/src/data"
	"github.com/claimlens/claimlens/src/types"
	"github.com/claimlens/claimlens/src/webserver"
)

func main() {
	// Connect to database first
	db := data.MustMySQL(data.GetMySQLDSN())

	if err := db.AutoMigrate(&types.Setting{}, &cache.ExtractedClaim{}, &cache.VerificationRun{}); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	// Load config with database
	cfg := config.Load(db)
	rdb := data.MustRedis(cfg.RedisURL)

	// Separate generation budgets: extraction emits whole claim lists,
	// analysis emits one compact judgment.
	extractLLM, err := ollama.New(cfg.OllamaModel, cfg.OllamaURL, ollama.Options{Temperature: 0.1, NumPredict: 2048})
	if err != nil {
		log.Fatalf("ollama: %v", err)
	}
	analyzeLLM, err := ollama.New(cfg.OllamaModel, cfg.OllamaURL, ollama.Options{Temperature: 0.1, NumPredict: 600})
	if err != nil {
		log.Fatalf("ollama: %v", err)
	}

	deps := webserver.Deps{
		Cleaner:   textclean.New(),
		Extractor: extractor.New(extractLLM),
		Verifier:  verifier.New(search.New(), scraper.New(), analysis.New(analyzeLLM)),
		Store:     cache.NewVerificationStore(db),
		Redis:     rdb,
	}

	router := webserver.New(deps)

	// Verification batches hold the connection open for a long time, so the
	// write timeout is far larger than the read timeout.
	httpSrv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 10 * time.Minute,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Starting HTTP server on port %s", cfg.Port)
		if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("http: %v", err)
		}
	}()

	log.Printf("ClaimLens API listening on %s (model: %s)", cfg.Port, cfg.OllamaModel)

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig

	shutCtx, cancelShut := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShut()
	_ = httpSrv.Shutdown(shutCtx)
}
