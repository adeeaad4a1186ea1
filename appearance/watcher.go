package appearance

import (
	"context"
	"sync"
	"time"

	"github.com/themer-cli/themer/log"
)

// DefaultPollInterval is used when the configured interval is not positive.
const DefaultPollInterval = 2 * time.Second

// Watcher polls a Resolver and notifies listeners when the answer flips.
type Watcher struct {
	resolver *Resolver
	interval time.Duration

	mu        sync.RWMutex
	current   Preference
	listeners listeners

	ctx      context.Context
	cancel   context.CancelFunc
	stopOnce sync.Once
	wg       sync.WaitGroup
}

// NewWatcher resolves once and starts polling in the background.
func NewWatcher(resolver *Resolver, interval time.Duration) *Watcher {
	if interval <= 0 {
		interval = DefaultPollInterval
	}

	ctx, cancel := context.WithCancel(context.Background())

	w := &Watcher{
		resolver: resolver,
		interval: interval,
		current:  resolver.Resolve(),
		ctx:      ctx,
		cancel:   cancel,
	}

	w.wg.Add(1)
	go w.poll()

	return w
}

func (w *Watcher) PrefersDark() bool {
	return w.Current().Dark
}

// Current returns the last resolved preference.
func (w *Watcher) Current() Preference {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.current
}

func (w *Watcher) OnChange(fn func(bool)) func() {
	return w.listeners.add(fn)
}

// Stop ends polling and waits for the poll goroutine to exit.
// Safe to call multiple times.
func (w *Watcher) Stop() {
	w.stopOnce.Do(func() {
		w.cancel()
		w.wg.Wait()
	})
}

func (w *Watcher) poll() {
	defer w.wg.Done()

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-w.ctx.Done():
			return
		case <-ticker.C:
			w.refresh()
		}
	}
}

// refresh resolves again and notifies listeners on a flip.
func (w *Watcher) refresh() {
	next := w.resolver.Resolve()

	w.mu.Lock()
	changed := next.Dark != w.current.Dark
	w.current = next
	w.mu.Unlock()

	if !changed {
		return
	}

	log.WithFields(log.Fields{
		"dark":     next.Dark,
		"detector": next.Source,
	}).Info("host appearance changed")

	w.listeners.notify(next.Dark)
}
