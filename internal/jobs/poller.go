package jobs

import (
	"context"
	"time"

	"bookledger/internal/logger"
)

// Poller watches a JobStore at a fixed interval and reports snapshots of
// matching jobs. Callers use it to follow import progress without holding
// open connections to the queue.
type Poller struct {
	store    JobStore
	interval time.Duration
}

// NewPoller creates a poller over the given store. interval must be
// positive; a zero value falls back to one second.
func NewPoller(store JobStore, interval time.Duration) *Poller {
	if interval <= 0 {
		interval = time.Second
	}
	return &Poller{store: store, interval: interval}
}

// Snapshot is one poll result.
type Snapshot struct {
	Jobs    []*ImportStatementJob
	Settled bool
}

// settled reports whether no job in the set can still make progress.
func settled(js []*ImportStatementJob) bool {
	for _, j := range js {
		switch j.Status {
		case JobStatusCompleted, JobStatusFailed:
		default:
			return false
		}
	}
	return true
}

// Watch polls the store until every matching job has settled or the context
// is done. Each poll result is sent on the returned channel, which is
// closed when watching ends.
func (p *Poller) Watch(ctx context.Context, filter JobFilter) <-chan Snapshot {
	out := make(chan Snapshot)

	go func() {
		defer close(out)

		ticker := time.NewTicker(p.interval)
		defer ticker.Stop()

		log := logger.FromContext(ctx)
		for {
			js, err := p.store.ListJobs(ctx, filter)
			if err != nil {
				log.Warn().Err(err).Msg("job poll failed")
			} else {
				snap := Snapshot{Jobs: js, Settled: len(js) > 0 && settled(js)}
				select {
				case out <- snap:
				case <-ctx.Done():
					return
				}
				if snap.Settled {
					return
				}
			}

			select {
			case <-ticker.C:
			case <-ctx.Done():
				return
			}
		}
	}()

	return out
}
