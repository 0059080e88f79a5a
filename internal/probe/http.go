package probe

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/okian/notes/pkg/logger"
)

// HTTPClient wraps http.Client with timeout
type HTTPClient struct {
	client *http.Client
}

// newHTTPClient creates a new HTTP client with timeout
func newHTTPClient(timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		client: &http.Client{Timeout: timeout},
	}
}

// Do sends method to url with an optional body and returns status and body.
func (c *HTTPClient) Do(ctx context.Context, method, url, body string) (int, string, error) {
	var reader io.Reader = http.NoBody
	if body != "" {
		reader = strings.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return 0, "", fmt.Errorf("failed to create request: %w", err)
	}
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return 0, "", fmt.Errorf("request %s %s: %w", method, url, err)
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, "", fmt.Errorf("failed to read response body: %w", err)
	}
	return resp.StatusCode, string(data), nil
}

// runChecks executes checks concurrently using a worker pool.
func runChecks(ctx context.Context, config *Config, checks []Check, stats *Stats) []Result {
	log := config.Logger
	log.Info(ctx, "running checks", logger.Int("checks", len(checks)), logger.Int("workers", config.Workers))

	client := newHTTPClient(config.Timeout)

	var (
		passed int64
		failed int64
		done   int64
	)

	// Progress reporting
	var lastReport atomic.Int64

	results := make([]Result, len(checks))
	indexes := make(chan int, config.Workers*WorkerChannelMultiplier)
	var wg sync.WaitGroup

	for i := 0; i < config.Workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			for idx := range indexes {
				res := runCheck(ctx, client, config.BaseURL, checks[idx])
				results[idx] = res

				atomic.AddInt64(&done, 1)
				if res.Err != nil {
					atomic.AddInt64(&failed, 1)
					log.Warn(ctx, "check failed", logger.String("check", res.Check.Name), logger.Error(res.Err))
				} else {
					atomic.AddInt64(&passed, 1)
					if config.Verbose {
						log.Debug(ctx, "check passed", logger.String("check", res.Check.Name), logger.Int("status", res.Status))
					}
				}

				now := time.Now().UnixNano()
				last := lastReport.Load()
				if now-last >= int64(ProgressInterval) && lastReport.CompareAndSwap(last, now) {
					log.Info(ctx, "progress",
						logger.Int("done", int(atomic.LoadInt64(&done))),
						logger.Int("total", len(checks)),
						logger.Int("failed", int(atomic.LoadInt64(&failed))))
				}
			}
		}()
	}

	go func() {
		defer close(indexes)
		for i := range checks {
			select {
			case <-ctx.Done():
				return
			case indexes <- i:
			}
		}
	}()

	wg.Wait()

	stats.Checks += int(atomic.LoadInt64(&done))
	stats.Passed += int(atomic.LoadInt64(&passed))
	stats.Failed += int(atomic.LoadInt64(&failed))

	// Checks skipped after cancellation leave zero results behind.
	executed := results[:0]
	for _, r := range results {
		if r.Check.Name != "" {
			executed = append(executed, r)
		}
	}
	return executed
}

// runCheck performs one check and verifies its response.
func runCheck(ctx context.Context, client *HTTPClient, baseURL string, check Check) Result {
	status, body, err := client.Do(ctx, check.Method, baseURL+check.Path, check.Body)
	if err != nil {
		return Result{Check: check, Status: status, Err: err}
	}
	return Result{Check: check, Status: status, Err: verifyResponse(check, status, body)}
}
