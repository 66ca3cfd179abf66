package session

import (
	"context"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/videotube/vtx/internal/shared"
)

// Refresher keeps an authenticated session alive by invoking the refresh
// operation on a fixed interval.
//
// It is scheduled exactly while an identity is present: the timer arms when
// the identity becomes non-nil and disarms when it becomes nil (explicit or
// forced logout). Stop cancels the timer and the watch goroutine so no
// timers leak past the session's lifetime.
type Refresher struct {
	svc      *Service
	interval time.Duration
	logger   *log.Logger

	mu        sync.Mutex
	scheduled bool
	stop      chan struct{}
	stopOnce  sync.Once
	wg        sync.WaitGroup
}

// NewRefresher creates a Refresher that fires every interval while a
// session is believed valid.
func NewRefresher(svc *Service, interval time.Duration, logger *log.Logger) *Refresher {
	if interval <= 0 {
		interval = 15 * time.Minute
	}
	if logger == nil {
		logger = shared.NewSilentLogger()
	}
	return &Refresher{
		svc:      svc,
		interval: interval,
		logger:   logger,
		stop:     make(chan struct{}),
	}
}

// Start launches the scheduler goroutine. It returns immediately.
func (r *Refresher) Start(ctx context.Context) {
	r.wg.Add(1)
	go r.loop(ctx)
}

// Stop tears the scheduler down and waits for it to exit. After Stop
// returns, no further refresh calls are made.
func (r *Refresher) Stop() {
	r.stopOnce.Do(func() { close(r.stop) })
	r.wg.Wait()
}

// Scheduled reports whether the interval timer is currently armed.
func (r *Refresher) Scheduled() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.scheduled
}

func (r *Refresher) setScheduled(scheduled bool) {
	r.mu.Lock()
	r.scheduled = scheduled
	r.mu.Unlock()
}

func (r *Refresher) loop(ctx context.Context) {
	defer r.wg.Done()

	store := r.svc.Store()
	watch := store.Watch()
	defer store.Unwatch(watch)

	var ticker *time.Ticker
	var tick <-chan time.Time

	arm := func() {
		if ticker == nil {
			ticker = time.NewTicker(r.interval)
			tick = ticker.C
			r.setScheduled(true)
			r.logger.Debug("refresh scheduler armed", "interval", r.interval)
		}
	}
	disarm := func() {
		if ticker != nil {
			ticker.Stop()
			ticker = nil
			tick = nil
			r.setScheduled(false)
			r.logger.Debug("refresh scheduler disarmed")
		}
	}
	defer disarm()

	if store.State().Authenticated() {
		arm()
	}

	for {
		select {
		case st, ok := <-watch:
			if !ok {
				return
			}
			if st.Authenticated() {
				arm()
			} else {
				disarm()
			}
		case <-tick:
			// Refresh runs detached so a slow response never delays the
			// next tick; overlap is tolerated since refresh is idempotent
			// from the client's perspective.
			go func() {
				if err := r.svc.RefreshToken(ctx); err != nil {
					r.logger.Warn("scheduled refresh failed", "err", err)
				}
			}()
		case <-r.stop:
			return
		case <-ctx.Done():
			return
		}
	}
}
