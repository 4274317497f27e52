// Package aislog wraps charmbracelet/log with the periodic-logger
// mechanism logger/periodic.go implements, so long-running stream
// consumers can log "N sentences decoded in the last minute"-style
// summaries without hand-rolling a ticker per caller.
package aislog

import (
	"io"
	"sync"
	"time"

	"github.com/cenkalti/backoff"
	"github.com/charmbracelet/log"
)

const (
	periodicMinSleep = 2 * time.Second
	periodicMaxSleep = 24 * time.Hour
)

// Logger is a *log.Logger plus a registry of periodic callbacks.
type Logger struct {
	*log.Logger

	mu      sync.Mutex
	timer   *time.Timer
	entries []*periodicEntry
	stopped bool
}

type periodicEntry struct {
	id      string
	fn      func(sinceLast time.Duration)
	backoff backoff.ExponentialBackOff
	nextRun time.Time
	lastRun time.Time
}

// New creates a Logger writing to w at the given level.
func New(w io.Writer, level log.Level) *Logger {
	l := &Logger{
		Logger: log.NewWithOptions(w, log.Options{
			ReportTimestamp: true,
			Level:           level,
		}),
		timer: time.NewTimer(periodicMaxSleep),
	}
	go l.run()
	return l
}

// AddPeriodic registers fn to run roughly every interval between
// minInterval and maxInterval, backing off exponentially the way
// logger/periodic.go's AddPeriodic does, starting at minInterval.
// Re-adding an id that already exists logs an error and is a no-op.
func (l *Logger) AddPeriodic(id string, minInterval, maxInterval time.Duration, fn func(sinceLast time.Duration)) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, e := range l.entries {
		if e.id == id {
			l.Logger.Errorf("periodic logger %q already registered", id)
			return
		}
	}
	b := backoff.ExponentialBackOff{
		InitialInterval:     minInterval,
		MaxInterval:         maxInterval,
		Multiplier:          3.0,
		RandomizationFactor: 0,
		MaxElapsedTime:      0,
		Clock:               backoff.SystemClock,
	}
	b.Reset()
	now := time.Now()
	l.entries = append(l.entries, &periodicEntry{
		id:      id,
		fn:      fn,
		backoff: b,
		lastRun: now,
		nextRun: now.Add(b.NextBackOff()),
	})
	l.resetTimerLocked(now)
}

// RemovePeriodic unregisters id; it is a no-op if id isn't registered.
func (l *Logger) RemovePeriodic(id string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for i, e := range l.entries {
		if e.id == id {
			l.entries = append(l.entries[:i], l.entries[i+1:]...)
			return
		}
	}
}

// Close stops the periodic runner. The underlying charmbracelet logger
// has no Close of its own.
func (l *Logger) Close() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.stopped = true
	l.timer.Stop()
	l.timer.Reset(0)
}

func (l *Logger) run() {
	for {
		now := <-l.timer.C
		l.mu.Lock()
		if l.stopped {
			l.mu.Unlock()
			return
		}
		l.runDueLocked(now, periodicMinSleep)
		l.resetTimerLocked(now)
		l.mu.Unlock()
	}
}

func (l *Logger) runDueLocked(now time.Time, minSleep time.Duration) {
	limit := now.Add(minSleep)
	for _, e := range l.entries {
		if limit.After(e.nextRun) {
			e.fn(now.Sub(e.lastRun))
			e.lastRun = now
			next := e.backoff.NextBackOff()
			if next <= 0 {
				next = periodicMaxSleep
			}
			e.nextRun = now.Add(next)
		}
	}
}

func (l *Logger) resetTimerLocked(now time.Time) {
	next := now.Add(periodicMaxSleep)
	for _, e := range l.entries {
		if next.After(e.nextRun) {
			next = e.nextRun
		}
	}
	l.timer.Stop()
	l.timer.Reset(next.Sub(now))
}
