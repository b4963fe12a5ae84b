package rate

import (
	"context"
	"errors"
	"strings"
	"time"
)

const (
	minuteWindow = time.Minute
	tenSecWindow = 10 * time.Second
)

var ErrInvalidSubject = errors.New("rate subject is required")

type WindowStore interface {
	IncrementWindow(ctx context.Context, key string, window time.Duration) (int64, time.Duration, error)
	WindowState(ctx context.Context, key string) (int64, time.Duration, error)
}

// Limiter enforces two fixed windows per subject for a single action.
// A zero limit disables its window.
type Limiter struct {
	store     WindowStore
	action    string
	perMinute int
	per10Sec  int
}

func NewLimiter(store WindowStore, action string, perMinute, per10Sec int) *Limiter {
	if perMinute < 0 {
		perMinute = 0
	}
	if per10Sec < 0 {
		per10Sec = 0
	}
	action = strings.TrimSpace(action)
	if action == "" {
		action = "default"
	}

	return &Limiter{
		store:     store,
		action:    action,
		perMinute: perMinute,
		per10Sec:  per10Sec,
	}
}

// Allow counts one action for subject and reports whether it fits both
// windows. When it does not, retryAfter is the wait in whole seconds.
func (l *Limiter) Allow(ctx context.Context, subject string) (retryAfter int64, allowed bool, err error) {
	subject = strings.TrimSpace(subject)
	if subject == "" {
		return 0, false, ErrInvalidSubject
	}
	if l.store == nil {
		return 0, false, errors.New("rate limiter store is nil")
	}

	for _, w := range l.windows() {
		count, ttl, err := l.store.IncrementWindow(ctx, l.key(w.suffix, subject), w.size)
		if err != nil {
			return 0, false, err
		}
		if count > int64(w.limit) {
			retryAfter = max(retryAfter, ceilSeconds(ttl))
		}
	}

	if retryAfter > 0 {
		return retryAfter, false, nil
	}
	return 0, true, nil
}

// RetryAfter reports how long subject must wait without counting an action.
func (l *Limiter) RetryAfter(ctx context.Context, subject string) (int64, error) {
	subject = strings.TrimSpace(subject)
	if subject == "" {
		return 0, ErrInvalidSubject
	}
	if l.store == nil {
		return 0, errors.New("rate limiter store is nil")
	}

	retryAfter := int64(0)
	for _, w := range l.windows() {
		count, ttl, err := l.store.WindowState(ctx, l.key(w.suffix, subject))
		if err != nil {
			return 0, err
		}
		if count >= int64(w.limit) {
			retryAfter = max(retryAfter, ceilSeconds(ttl))
		}
	}
	return retryAfter, nil
}

type window struct {
	suffix string
	size   time.Duration
	limit  int
}

func (l *Limiter) windows() []window {
	out := make([]window, 0, 2)
	if l.perMinute > 0 {
		out = append(out, window{suffix: "min", size: minuteWindow, limit: l.perMinute})
	}
	if l.per10Sec > 0 {
		out = append(out, window{suffix: "10s", size: tenSecWindow, limit: l.per10Sec})
	}
	return out
}

func (l *Limiter) key(suffix, subject string) string {
	return "rate:" + l.action + ":" + suffix + ":" + subject
}

func ceilSeconds(d time.Duration) int64 {
	if d <= 0 {
		return 0
	}
	sec := int64(d / time.Second)
	if d%time.Second != 0 {
		sec++
	}
	return max(sec, 1)
}
