package bootstrap

import (
	"context"
	"sync"
	"time"

	"github.com/bnema/crumbtrail/internal/logging"
)

// PhaseTimer records how long each step of workspace assembly took.
// Safe for concurrent use.
type PhaseTimer struct {
	mu     sync.Mutex
	start  time.Time
	last   time.Time
	order  []string
	phases map[string]time.Duration
}

// NewPhaseTimer starts a timer now.
func NewPhaseTimer() *PhaseTimer {
	now := time.Now()
	return &PhaseTimer{
		start:  now,
		last:   now,
		phases: make(map[string]time.Duration),
	}
}

// Mark closes the phase that ran since the previous mark.
func (t *PhaseTimer) Mark(phase string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	now := time.Now()
	if _, seen := t.phases[phase]; !seen {
		t.order = append(t.order, phase)
	}
	t.phases[phase] += now.Sub(t.last)
	t.last = now
}

// Phases returns the recorded phase names in the order they were first marked.
func (t *PhaseTimer) Phases() []string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]string(nil), t.order...)
}

// Duration returns the time attributed to phase.
func (t *PhaseTimer) Duration(phase string) time.Duration {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.phases[phase]
}

// Total returns the time elapsed since the timer started.
func (t *PhaseTimer) Total() time.Duration {
	t.mu.Lock()
	defer t.mu.Unlock()
	return time.Since(t.start)
}

// LogDebug writes all phases as one debug event.
func (t *PhaseTimer) LogDebug(ctx context.Context, msg string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	event := logging.FromContext(ctx).Debug().Dur("total", time.Since(t.start))
	for _, phase := range t.order {
		event = event.Dur(phase, t.phases[phase])
	}
	event.Msg(msg)
}
