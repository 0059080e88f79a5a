package probe

import (
	"time"

	"github.com/okian/notes/pkg/logger"
)

// Config holds configuration for a probe run.
type Config struct {
	BaseURL string        // Base URL of the service
	IDs     int           // Number of numeric note ids to probe (each also gets a uuid id)
	Workers int           // Number of concurrent workers
	Timeout time.Duration // HTTP request timeout
	Verbose bool          // Log every check
	Logger  logger.Logger // Defaults to logger.Get()
}

// Check is a single request and the response it must produce.
type Check struct {
	Name   string
	Method string
	Path   string
	Body   string

	// WantStatus is the exact status expected; zero means "any non-2xx".
	WantStatus int
	// WantBody is the exact body expected; empty means not checked.
	WantBody string
}

// Result is the outcome of one Check.
type Result struct {
	Check  Check
	Status int
	Err    error
}

// Stats holds run statistics.
type Stats struct {
	Checks    int
	Passed    int
	Failed    int
	StartTime time.Time
	EndTime   time.Time
	Duration  time.Duration
}
