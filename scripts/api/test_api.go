// Minimal end-to-end integration test for the ClaimLens API.
package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"
)

var baseURL = getenv("API_URL", "http://localhost:5000")

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func main() {
	health()

	sample := "Visit https://example.com! The   Eiffel Tower is located in Paris, France. " +
		"Water boils at 100 degrees Celsius at sea level."

	cleanText(sample)
	claims := analyze(sample)
	verify(claims)
	verified()

	fmt.Println("all endpoints OK")
}

func health() {
	var out struct {
		Status string `json:"status"`
	}
	get("/health", &out)
	if out.Status != "healthy" {
		log.Fatalf("health: unexpected status %q", out.Status)
	}
	fmt.Println("health OK")
}

func cleanText(text string) {
	var out struct {
		Success     bool   `json:"success"`
		CleanedText string `json:"cleaned_text"`
	}
	post("/api/clean-text", map[string]any{"text": text}, &out)
	if !out.Success || out.CleanedText == "" {
		log.Fatal("clean-text: empty result")
	}
	fmt.Printf("clean-text OK (%d chars)\n", len(out.CleanedText))
}

func analyze(text string) []string {
	var out struct {
		Success     bool     `json:"success"`
		Claims      []string `json:"claims"`
		TotalClaims int      `json:"total_claims"`
	}
	post("/api/analyze", map[string]any{"text": text}, &out)
	if !out.Success {
		log.Fatal("analyze: failed")
	}
	fmt.Printf("analyze OK (%d claims)\n", out.TotalClaims)
	return out.Claims
}

func verify(claims []string) {
	var out struct {
		Success           bool    `json:"success"`
		TotalClaims       int     `json:"total_claims"`
		OverallTrustScore float64 `json:"overall_trust_score"`
	}
	post("/api/verify", map[string]any{"claims": claims}, &out)
	if !out.Success {
		log.Fatal("verify: failed")
	}
	fmt.Printf("verify OK (%d claims, trust %.1f)\n", out.TotalClaims, out.OverallTrustScore)
}

func verified() {
	var out struct {
		Success bool `json:"success"`
	}
	get("/api/verified", &out)
	if !out.Success {
		log.Fatal("verified: no stored run")
	}
	fmt.Println("verified OK")
}

func get(path string, out any) {
	client := &http.Client{Timeout: 30 * time.Second}
	resp, err := client.Get(baseURL + path)
	if err != nil {
		log.Fatalf("GET %s: %v", path, err)
	}
	defer resp.Body.Close()
	decode(path, resp, out)
}

func post(path string, body map[string]any, out any) {
	payload, _ := json.Marshal(body)
	client := &http.Client{Timeout: 10 * time.Minute}
	resp, err := client.Post(baseURL+path, "application/json", bytes.NewReader(payload))
	if err != nil {
		log.Fatalf("POST %s: %v", path, err)
	}
	defer resp.Body.Close()
	decode(path, resp, out)
}

func decode(path string, resp *http.Response, out any) {
	if resp.StatusCode >= 300 {
		log.Fatalf("%s: status %d", path, resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		log.Fatalf("%s: decode: %v", path, err)
	}
}
