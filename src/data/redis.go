package data

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"log"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	summaryPrefix = "verify:summary:"
	summaryTTL    = 15 * time.Minute
)

func MustRedis(url string) *redis.Client {
	opt, err := redis.ParseURL(url)
	if err != nil {
		log.Fatalf("redis: %v", err)
	}
	return redis.NewClient(opt)
}

// ClaimSetKey derives a stable cache key from an ordered claim list.
func ClaimSetKey(claims []string) string {
	sum := sha256.Sum256([]byte(strings.Join(claims, "\x00")))
	return summaryPrefix + hex.EncodeToString(sum[:])
}

// CacheSummary stores a serialized verification summary under the claim-set key.
func CacheSummary(ctx context.Context, rdb *redis.Client, key string, payload []byte) error {
	return rdb.Set(ctx, key, payload, summaryTTL).Err()
}

// CachedSummary returns the cached summary for a claim set, or nil when absent.
func CachedSummary(ctx context.Context, rdb *redis.Client, key string) ([]byte, error) {
	raw, err := rdb.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	return raw, err
}
