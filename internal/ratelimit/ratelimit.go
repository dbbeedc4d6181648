package ratelimit

import (
	"sync"
	"time"
)

// Limiter enforces sliding-window request limits per client key
// (normally the remote IP). Used to throttle login and registration.
type Limiter struct {
	requestsPerMinute int
	requestsPerHour   int
	enabled           bool

	clients map[string]*clientWindows
	mu      sync.Mutex
}

type clientWindows struct {
	minuteWindow []time.Time
	hourWindow   []time.Time
}

// NewLimiter creates a limiter with the given per-client limits. A
// zero hour limit disables the hourly check.
func NewLimiter(requestsPerMinute, requestsPerHour int, enabled bool) *Limiter {
	return &Limiter{
		requestsPerMinute: requestsPerMinute,
		requestsPerHour:   requestsPerHour,
		enabled:           enabled,
		clients:           make(map[string]*clientWindows),
	}
}

// Allow reports whether the client may make a request now, and records
// it if so.
func (l *Limiter) Allow(key string) bool {
	if !l.enabled {
		return true
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()
	cw := l.clients[key]
	if cw == nil {
		cw = &clientWindows{}
		l.clients[key] = cw
	}
	cw.cleanup(now)

	if len(cw.minuteWindow) >= l.requestsPerMinute {
		return false
	}
	if l.requestsPerHour > 0 && len(cw.hourWindow) >= l.requestsPerHour {
		return false
	}

	cw.minuteWindow = append(cw.minuteWindow, now)
	cw.hourWindow = append(cw.hourWindow, now)
	return true
}

func (cw *clientWindows) cleanup(now time.Time) {
	cw.minuteWindow = filterTimes(cw.minuteWindow, now.Add(-time.Minute))
	cw.hourWindow = filterTimes(cw.hourWindow, now.Add(-time.Hour))
}

func filterTimes(times []time.Time, cutoff time.Time) []time.Time {
	result := times[:0]
	for _, t := range times {
		if t.After(cutoff) {
			result = append(result, t)
		}
	}
	return result
}

// Stats contains current usage for one client key.
type Stats struct {
	Enabled            bool `json:"enabled"`
	RequestsLastMinute int  `json:"requests_last_minute"`
	RequestsLastHour   int  `json:"requests_last_hour"`
	LimitPerMinute     int  `json:"limit_per_minute"`
	LimitPerHour       int  `json:"limit_per_hour"`
}

// StatsFor returns the client's current window counts.
func (l *Limiter) StatsFor(key string) Stats {
	if !l.enabled {
		return Stats{Enabled: false}
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	stats := Stats{
		Enabled:        true,
		LimitPerMinute: l.requestsPerMinute,
		LimitPerHour:   l.requestsPerHour,
	}
	if cw := l.clients[key]; cw != nil {
		cw.cleanup(time.Now())
		stats.RequestsLastMinute = len(cw.minuteWindow)
		stats.RequestsLastHour = len(cw.hourWindow)
	}
	return stats
}

// Prune drops clients whose windows are fully expired. Intended to run
// periodically so the map does not grow without bound.
func (l *Limiter) Prune() {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()
	for key, cw := range l.clients {
		cw.cleanup(now)
		if len(cw.minuteWindow) == 0 && len(cw.hourWindow) == 0 {
			delete(l.clients, key)
		}
	}
}

// Reset clears all tracked requests.
func (l *Limiter) Reset() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.clients = make(map[string]*clientWindows)
}
