package session

import (
	"sync"

	"github.com/charmbracelet/log"
	"github.com/videotube/vtx/internal/api"
	"github.com/videotube/vtx/internal/routes"
	"github.com/videotube/vtx/internal/shared"
)

// Notice is a transient, non-blocking notification for the UI.
type Notice struct {
	Message string
	Kind    api.Kind
}

// Coordinator is the single subscriber that owns the authorization-failure
// policy: on an authorization failure from any in-flight request it forces
// the store into the logged-out state and signals a redirect to the login
// route. All other failure kinds pass through as transient notices. The
// transport stays free of session and navigation concerns.
type Coordinator struct {
	store    *Store
	notifier *api.Notifier
	logger   *log.Logger

	redirects chan string
	notices   chan Notice

	stop     chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

// NewCoordinator wires a Coordinator to the transport's failure events.
func NewCoordinator(store *Store, notifier *api.Notifier, logger *log.Logger) *Coordinator {
	if logger == nil {
		logger = shared.NewSilentLogger()
	}
	return &Coordinator{
		store:     store,
		notifier:  notifier,
		logger:    logger,
		redirects: make(chan string, 4),
		notices:   make(chan Notice, 16),
		stop:      make(chan struct{}),
	}
}

// Redirects returns the navigation signal channel. At most one redirect is
// emitted per forced logout even when several concurrent requests fail.
func (c *Coordinator) Redirects() <-chan string {
	return c.redirects
}

// Notices returns the transient-notification channel.
func (c *Coordinator) Notices() <-chan Notice {
	return c.notices
}

// Start subscribes to failure events and launches the policy goroutine.
func (c *Coordinator) Start() {
	events := c.notifier.Subscribe()
	c.wg.Add(1)
	go c.loop(events)
}

// Stop unsubscribes and waits for the policy goroutine to exit.
func (c *Coordinator) Stop() {
	c.stopOnce.Do(func() { close(c.stop) })
	c.wg.Wait()
}

func (c *Coordinator) loop(events <-chan api.FailureEvent) {
	defer c.wg.Done()

	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return
			}
			c.handle(ev)
		case <-c.stop:
			c.notifier.Unsubscribe(events)
			return
		}
	}
}

func (c *Coordinator) handle(ev api.FailureEvent) {
	switch ev.Err.Kind {
	case api.KindAuthorization:
		// Deduplicate: concurrent failures after the session is already
		// cleared must not produce a second redirect.
		if c.store.State().Authenticated() {
			c.store.ForceLogout(ev.Err)
			c.emitRedirect(routes.LoginRoute)
		}
		c.emitNotice(Notice{Message: ev.Err.Message, Kind: ev.Err.Kind})
	case api.KindNetwork:
		c.logger.Warn("network failure", "path", ev.Path, "request_id", ev.RequestID)
		c.emitNotice(Notice{Message: ev.Err.Message, Kind: ev.Err.Kind})
	default:
		c.emitNotice(Notice{Message: ev.Err.Message, Kind: ev.Err.Kind})
	}
}

func (c *Coordinator) emitRedirect(target string) {
	select {
	case c.redirects <- target:
	default:
	}
}

func (c *Coordinator) emitNotice(n Notice) {
	select {
	case c.notices <- n:
	default:
	}
}
