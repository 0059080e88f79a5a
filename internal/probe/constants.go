package probe

import "time"

// Worker configuration constants.
const (
	WorkerChannelMultiplier = 2
)

// Runner configuration constants.
const (
	ProgressInterval     = time.Second
	PercentageMultiplier = 100
)

// Paths probed on the service.
const (
	PathHealth   = "/healthz"
	PathNote     = "/api/data/note/"
	PathAPIRoot  = "/api/"
	PathNotesIdx = "/notes"
)
