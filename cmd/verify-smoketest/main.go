package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/claimlens/claimlens/src/components/analysis"
	"github.com/claimlens/claimlens/src/components/ollama"
	"github.com/claimlens/claimlens/src/components/scraper"
	"github.com/claimlens/claimlens/src/components/search"
	"github.com/claimlens/claimlens/src/components/verifier"
)

var (
	modelFlag   = flag.String("model", "llama3.2:3b", "Ollama model name")
	urlFlag     = flag.String("ollama", "http://localhost:11434", "Ollama base URL")
	timeoutFlag = flag.Duration("timeout", 5*time.Minute, "Overall batch timeout")
)

const defaultClaim = "The Eiffel Tower is located in Paris, France."

// Runs the full verification pipeline against live search, scraping and a
// local model, without touching MySQL or Redis. Claims are taken from the
// command line; with none given a known-true claim is used.
func main() {
	log.SetFlags(0)
	flag.Parse()

	claims := flag.Args()
	if len(claims) == 0 {
		claims = []string{defaultClaim}
	}

	llm, err := ollama.New(*modelFlag, *urlFlag, ollama.Options{Temperature: 0.1, NumPredict: 600})
	if err != nil {
		log.Fatalf("ollama: %v", err)
	}

	v := verifier.New(search.New(), scraper.New(), analysis.New(llm))

	ctx, cancel := context.WithTimeout(context.Background(), *timeoutFlag)
	defer cancel()

	start := time.Now()
	summary, err := v.VerifyAll(ctx, claims)
	if err != nil {
		log.Fatalf("verify: %v", err)
	}

	out, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		log.Fatalf("encode: %v", err)
	}

	fmt.Println(string(out))
	fmt.Printf("done in %.1fs\n", time.Since(start).Seconds())
}
