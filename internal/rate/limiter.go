// Package rate limita intentos sobre los endpoints de auth con una ventana
// fija por key (típicamente la IP del cliente). El objetivo es encarecer el
// brute-force de credenciales, no hacer traffic shaping fino.
package rate

import (
	"context"
	"sync"
	"time"
)

// Result es el veredicto de un intento.
type Result struct {
	Allowed    bool
	Remaining  int64
	RetryAfter time.Duration
}

// Limiter decide si un intento identificado por key pasa o no.
type Limiter interface {
	Allow(ctx context.Context, key string) (Result, error)
}

// MemoryLimiter: fixed window in-process. Suficiente para una instancia sola;
// con varias réplicas usar RedisLimiter.
type MemoryLimiter struct {
	Max    int64
	Window time.Duration

	mu      sync.Mutex
	windows map[string]*window
}

type window struct {
	start time.Time
	hits  int64
}

func NewMemoryLimiter(max int, windowDur time.Duration) *MemoryLimiter {
	return &MemoryLimiter{
		Max:     int64(max),
		Window:  windowDur,
		windows: make(map[string]*window),
	}
}

func (l *MemoryLimiter) Allow(_ context.Context, key string) (Result, error) {
	now := time.Now()
	winStart := now.Truncate(l.Window)

	l.mu.Lock()
	defer l.mu.Unlock()

	w, ok := l.windows[key]
	if !ok || w.start.Before(winStart) {
		// Ventana nueva; de paso purgamos entradas viejas para no crecer
		// sin límite con keys que no vuelven.
		if len(l.windows) > 4096 {
			for k, old := range l.windows {
				if old.start.Before(winStart) {
					delete(l.windows, k)
				}
			}
		}
		w = &window{start: winStart}
		l.windows[key] = w
	}
	w.hits++

	res := Result{
		Allowed:   w.hits <= l.Max,
		Remaining: l.Max - w.hits,
	}
	if res.Remaining < 0 {
		res.Remaining = 0
	}
	if !res.Allowed {
		res.RetryAfter = winStart.Add(l.Window).Sub(now)
	}
	return res, nil
}
