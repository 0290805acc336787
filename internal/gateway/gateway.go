// Package gateway paces outbound calls to a single backend so
// consecutive call starts are at least a minimum interval apart,
// to stay clear of the backend's rate limit.
package gateway

import (
	"sync"
	"time"
)

type Logger interface {
	Debug(s string)
}

type Settings struct {
	// MinInterval is the minimum duration between the starts of
	// two consecutive calls. It defaults to 1 second.
	MinInterval time.Duration
	Logger      Logger
	// TimeNow defaults to time.Now and Sleep to time.Sleep;
	// both can be overridden for tests.
	TimeNow func() time.Time
	Sleep   func(d time.Duration)
}

func (s *Settings) setDefaults() {
	if s.MinInterval == 0 {
		s.MinInterval = time.Second
	}
	if s.TimeNow == nil {
		s.TimeNow = time.Now
	}
	if s.Sleep == nil {
		s.Sleep = time.Sleep
	}
}

// Gateway serializes calls to one backend. Each backend gets its own
// instance since rate limits are independent per backend.
type Gateway struct {
	minInterval time.Duration
	logger      Logger
	timeNow     func() time.Time
	sleep       func(d time.Duration)

	mutex    sync.Mutex
	lastCall time.Time
}

func New(settings Settings) *Gateway {
	settings.setDefaults()
	return &Gateway{
		minInterval: settings.MinInterval,
		logger:      settings.Logger,
		timeNow:     settings.TimeNow,
		sleep:       settings.Sleep,
	}
}

// Do runs the given call, first blocking until the minimum interval
// since the start of the previous call has elapsed. Pacing is
// call-start-to-call-start: the last call time is recorded before the
// call runs, not when it returns. Errors from the call are returned
// unchanged, with no retry.
func (g *Gateway) Do(call func() error) error {
	g.pace()
	return call()
}

func (g *Gateway) pace() {
	g.mutex.Lock()
	defer g.mutex.Unlock()

	now := g.timeNow()
	if !g.lastCall.IsZero() {
		sinceLastCall := now.Sub(g.lastCall)
		if sinceLastCall < g.minInterval {
			timeToWait := g.minInterval - sinceLastCall
			if g.logger != nil {
				g.logger.Debug("waiting " + timeToWait.String() +
					" to avoid the backend API rate limit")
			}
			g.sleep(timeToWait)
			now = now.Add(timeToWait)
		}
	}
	g.lastCall = now
}
