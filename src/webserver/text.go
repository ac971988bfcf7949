package webserver

import (
	"log"
	"math"
	"net/http"
	"time"
	"unicode/utf8"

	"github.com/gin-gonic/gin"

	"github.com/claimlens/claimlens/src/cache"
	"github.com/claimlens/claimlens/src/components/extractor"
	"github.com/claimlens/claimlens/src/components/textclean"
)

// Text handles the cleaning and extraction endpoints.
type Text struct {
	cleaner   *textclean.Cleaner
	extractor *extractor.Extractor
	store     *cache.VerificationStore
}

func NewText(cleaner *textclean.Cleaner, ex *extractor.Extractor, store *cache.VerificationStore) Text {
	return Text{cleaner: cleaner, extractor: ex, store: store}
}

type textRequest struct {
	Text       string `json:"text"`
	CleanFirst *bool  `json:"clean_first"`
}

func (t Text) Clean(c *gin.Context) {
	var req textRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Text == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "No text provided"})
		return
	}

	cleaned := t.cleaner.Clean(req.Text)

	c.JSON(http.StatusOK, gin.H{
		"success":         true,
		"original_length": utf8.RuneCountInString(req.Text),
		"cleaned_length":  utf8.RuneCountInString(cleaned),
		"cleaned_text":    cleaned,
	})
}

func (t Text) Extract(c *gin.Context) {
	var req textRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Text == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "No text provided"})
		return
	}

	text := req.Text
	if req.CleanFirst == nil || *req.CleanFirst {
		text = t.cleaner.Clean(text)
	}

	start := time.Now()
	claims, err := t.extractor.Extract(c.Request.Context(), text)
	if err != nil {
		log.Printf("extract claims: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":         true,
		"claims":          claims,
		"total_claims":    len(claims),
		"processing_time": elapsed(start),
	})
}

// Analyze runs the full intake pipeline and stores the extracted claims so a
// later verify call can pick them up.
func (t Text) Analyze(c *gin.Context) {
	var req textRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Text == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "No text provided"})
		return
	}

	cleaned := t.cleaner.Clean(req.Text)

	start := time.Now()
	claims, err := t.extractor.Extract(c.Request.Context(), cleaned)
	if err != nil {
		log.Printf("extract claims: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}

	if _, err := t.store.SaveClaims(claims); err != nil {
		log.Printf("save extracted claims: %v", err)
	}

	c.JSON(http.StatusOK, gin.H{
		"success":              true,
		"original_text_length": utf8.RuneCountInString(req.Text),
		"cleaned_text_length":  utf8.RuneCountInString(cleaned),
		"cleaned_text":         cleaned,
		"claims":               claims,
		"total_claims":         len(claims),
		"processing_time":      elapsed(start),
	})
}

// Latest returns the most recently extracted claim list.
func (t Text) Latest(c *gin.Context) {
	claims, err := t.store.LatestClaims()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}
	if claims == nil {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error":   "No extracted claims found. Run /api/analyze first.",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":      true,
		"claims":       claims,
		"total_claims": len(claims),
	})
}

func elapsed(start time.Time) float64 {
	return math.Round(time.Since(start).Seconds()*100) / 100
}
