// Command kvcache-bench drives a small concurrent workload against a
// cache.Engine and reports the resulting statistics.
package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"runtime"
	"strconv"
	"sync"
	"time"

	gonanoid "github.com/matoous/go-nanoid/v2"

	"github.com/codewandler/kvcache/cache"
)

var (
	workers    = getEnvInt("WORKERS", 8)
	opsPerWork = getEnvInt("OPS", 50_000)
	maxSize    = getEnvInt("MAX_SIZE", 10_000)
	keySpace   = getEnvInt("KEYS", 5_000)
	ttl        = getEnvDuration("TTL", 30*time.Second)
)

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v, err := strconv.Atoi(getEnv(key, strconv.Itoa(fallback)))
	if err != nil {
		return fallback
	}
	return v
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	v, err := time.ParseDuration(getEnv(key, fallback.String()))
	if err != nil {
		return fallback
	}
	return v
}

func main() {
	log := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	runID := gonanoid.Must(8)
	log = log.With(slog.String("run", runID))

	c := cache.New(
		cache.WithMaxSize(maxSize),
		cache.WithDefaultTTL(ttl),
		cache.WithLogger(log),
	)
	defer c.Close()

	log.Info("starting kvcache-bench",
		slog.Int("workers", workers),
		slog.Int("ops_per_worker", opsPerWork),
		slog.Int("max_size", maxSize),
		slog.Int("key_space", keySpace),
	)

	startAt := time.Now()

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()
			rng := rand.New(rand.NewSource(int64(workerID) + startAt.UnixNano()))
			for i := 0; i < opsPerWork; i++ {
				key := fmt.Sprintf("key-%d", rng.Intn(keySpace))
				switch rng.Intn(10) {
				case 0, 1, 2:
					c.Set(key, []byte(fmt.Sprintf("w%d-i%d", workerID, i)), cache.WithTags(fmt.Sprintf("worker-%d", workerID)))
				case 3:
					c.Delete(key)
				default:
					c.Get(key)
				}
			}
		}(w)
	}
	wg.Wait()

	took := time.Since(startAt)
	runtime.GC()

	stats := c.Stats()
	report, _ := json.MarshalIndent(stats, "", "  ")

	fmt.Printf("completed in %.3fs (%.0f ops/s)\n", took.Seconds(), float64(workers*opsPerWork)/took.Seconds())
	fmt.Println(string(report))
}
