package port

import "time"

// Scheduler runs deferred UI work, such as focus changes after a rebuild.
type Scheduler interface {
	After(delay time.Duration, fn func())
}
