package webserver

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/claimlens/claimlens/src/cache"
	"github.com/claimlens/claimlens/src/components/verifier"
	"github.com/claimlens/claimlens/src/data"
)

// Verify handles the verification endpoints.
type Verify struct {
	verifier *verifier.Verifier
	store    *cache.VerificationStore
	rdb      *redis.Client
}

func NewVerify(v *verifier.Verifier, store *cache.VerificationStore, rdb *redis.Client) Verify {
	return Verify{verifier: v, store: store, rdb: rdb}
}

type verifyRequest struct {
	Claims []string `json:"claims"`
}

type verifyResponse struct {
	Success bool `json:"success"`
	verifier.Summary
}

// Run verifies the posted claims, falling back to the latest stored
// extraction when the request carries none.
func (v Verify) Run(c *gin.Context) {
	var req verifyRequest
	_ = c.ShouldBindJSON(&req) // body is optional

	claims := req.Claims
	if len(claims) == 0 {
		stored, err := v.store.LatestClaims()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
			return
		}
		claims = stored
	}
	if len(claims) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "No claims provided and no stored extraction found. Run /api/analyze first.",
		})
		return
	}

	ctx := c.Request.Context()
	key := data.ClaimSetKey(claims)

	if v.rdb != nil {
		raw, err := data.CachedSummary(ctx, v.rdb, key)
		if err != nil {
			log.Printf("summary cache read: %v", err)
		}
		if payload := withSuccess(raw); payload != nil {
			c.JSON(http.StatusOK, payload)
			return
		}
	}

	summary, err := v.verifier.VerifyAll(ctx, claims)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, verifier.ErrNoClaims) {
			status = http.StatusBadRequest
		}
		c.JSON(status, gin.H{"success": false, "error": err.Error()})
		return
	}

	runID, err := v.store.SaveRun(uint32(summary.TotalClaims), uint32(summary.TotalSourcesChecked), summary.OverallTrustScore, summary)
	if err != nil {
		log.Printf("save verification run: %v", err)
	} else {
		log.Printf("verification run %s complete (%d claims)", runID, summary.TotalClaims)
	}

	if v.rdb != nil {
		if payload, err := json.Marshal(summary); err == nil {
			if err := data.CacheSummary(ctx, v.rdb, key, payload); err != nil {
				log.Printf("summary cache write: %v", err)
			}
		}
	}

	c.JSON(http.StatusOK, verifyResponse{Success: true, Summary: summary})
}

// Latest returns the most recent verification summary.
func (v Verify) Latest(c *gin.Context) {
	raw, err := v.store.LatestRun()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}

	payload := withSuccess(raw)
	if payload == nil {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error":   "No verified claims found. Run /api/verify first.",
		})
		return
	}

	c.JSON(http.StatusOK, payload)
}

// withSuccess folds a success flag into a stored JSON summary. Nil or
// unparsable input yields nil.
func withSuccess(raw []byte) gin.H {
	if len(raw) == 0 {
		return nil
	}
	var payload gin.H
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil
	}
	payload["success"] = true
	return payload
}
