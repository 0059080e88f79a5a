package probe

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/okian/notes/pkg/logger"
)

// Run executes a complete probe against a running service.
func Run(ctx context.Context, config *Config) error {
	if err := config.normalize(); err != nil {
		return err
	}
	log := config.Logger

	stats := &Stats{
		StartTime: time.Now(),
	}

	log.Info(ctx, "starting notes probe",
		logger.String("baseURL", config.BaseURL),
		logger.Int("ids", config.IDs),
		logger.Int("workers", config.Workers),
		logger.String("timeout", config.Timeout.String()),
		logger.Any("verbose", config.Verbose))

	// Step 1: Check service health
	if err := checkServiceHealth(ctx, config); err != nil {
		return fmt.Errorf("service health check failed: %w", err)
	}

	// Step 2: Note resource and API root checks
	results := runChecks(ctx, config, buildChecks(config.IDs), stats)

	// Step 3: Notes index, rendered twice
	indexErr := checkIndex(ctx, config)
	stats.Checks++
	if indexErr != nil {
		stats.Failed++
		log.Warn(ctx, "notes index check failed", logger.Error(indexErr))
	} else {
		stats.Passed++
	}

	stats.EndTime = time.Now()
	stats.Duration = stats.EndTime.Sub(stats.StartTime)

	displayFinalStats(ctx, log, stats)

	if failed := failedChecks(results); len(failed) > 0 || indexErr != nil {
		if indexErr != nil {
			failed = append(failed, "notes index")
		}
		return fmt.Errorf("%w: %s", ErrChecksFailed, strings.Join(failed, ", "))
	}
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("probe interrupted: %w", err)
	}

	log.Info(ctx, "probe completed successfully")
	return nil
}

func (c *Config) normalize() error {
	c.BaseURL = strings.TrimRight(strings.TrimSpace(c.BaseURL), "/")
	switch {
	case c.BaseURL == "":
		return fmt.Errorf("%w: base url is empty", ErrInvalidConfig)
	case c.IDs <= 0:
		return fmt.Errorf("%w: ids must be positive", ErrInvalidConfig)
	case c.Workers <= 0:
		return fmt.Errorf("%w: workers must be positive", ErrInvalidConfig)
	case c.Timeout <= 0:
		return fmt.Errorf("%w: timeout must be positive", ErrInvalidConfig)
	}
	if c.Logger == nil {
		c.Logger = logger.Get()
	}
	return nil
}

// checkServiceHealth verifies the service is running.
func checkServiceHealth(ctx context.Context, config *Config) error {
	config.Logger.Info(ctx, "checking service health")

	client := newHTTPClient(config.Timeout)
	status, _, err := client.Do(ctx, http.MethodGet, config.BaseURL+PathHealth, "")
	if err != nil {
		return fmt.Errorf("failed to connect to service: %w", err)
	}
	if status != http.StatusOK {
		return fmt.Errorf("%w: status %d", ErrUnhealthy, status)
	}

	config.Logger.Info(ctx, "service is healthy")
	return nil
}

// checkIndex fetches the notes index twice and verifies both renders.
func checkIndex(ctx context.Context, config *Config) error {
	client := newHTTPClient(config.Timeout)
	url := config.BaseURL + PathNotesIdx

	var pages [2]string
	for i := range pages {
		status, body, err := client.Do(ctx, http.MethodGet, url, "")
		if err != nil {
			return err
		}
		if status != http.StatusOK {
			return fmt.Errorf("%w: notes index status %d", ErrUnexpected, status)
		}
		pages[i] = body
	}
	return verifyIndex(pages[0], pages[1])
}

// displayFinalStats logs the final run statistics.
func displayFinalStats(ctx context.Context, log logger.Logger, stats *Stats) {
	var passRate float64
	if stats.Checks > 0 {
		passRate = float64(stats.Passed) / float64(stats.Checks) * PercentageMultiplier
	}

	log.Info(ctx, "final statistics",
		logger.Int("checks", stats.Checks),
		logger.Int("passed", stats.Passed),
		logger.Int("failed", stats.Failed),
		logger.String("duration", stats.Duration.String()),
		logger.Float64("passRate", passRate))
}
