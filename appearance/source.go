package appearance

import (
	"strings"
	"sync"

	"github.com/spf13/viper"
	"github.com/themer-cli/themer/key"
	"github.com/themer-cli/themer/theme"
)

// Source is a live host appearance preference.
type Source interface {
	PrefersDark() bool
	// OnChange registers fn for flips of the preference and returns a
	// function that removes it.
	OnChange(fn func(dark bool)) (unsubscribe func())
	// Stop releases the resources held by the source. Safe to call twice.
	Stop()
}

// Override values accepted by Open.
const (
	OverrideLight  = "light"
	OverrideDark   = "dark"
	OverrideSystem = "system"
)

// Open returns a fixed source for "light" or "dark" and a polling watcher
// configured from appearance.* settings for "system" or "".
func Open(override string) (Source, error) {
	switch strings.ToLower(strings.TrimSpace(override)) {
	case OverrideLight:
		return NewStatic(false), nil
	case OverrideDark:
		return NewStatic(true), nil
	case OverrideSystem, "":
		return NewWatcher(ResolverFromConfig(), viper.GetDuration(key.AppearancePollInterval)), nil
	default:
		return nil, &theme.UnknownValueError{
			Field: "appearance",
			Value: override,
			Known: []string{OverrideLight, OverrideDark, OverrideSystem},
		}
	}
}

// listeners is a set of callbacks that can be removed individually.
type listeners struct {
	mu   sync.Mutex
	next int
	fns  map[int]func(bool)
}

func (l *listeners) add(fn func(bool)) func() {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.fns == nil {
		l.fns = make(map[int]func(bool))
	}

	id := l.next
	l.next++
	l.fns[id] = fn

	var once sync.Once
	return func() {
		once.Do(func() {
			l.mu.Lock()
			defer l.mu.Unlock()
			delete(l.fns, id)
		})
	}
}

func (l *listeners) len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.fns)
}

// notify calls every listener outside the lock so callbacks may unsubscribe.
func (l *listeners) notify(dark bool) {
	l.mu.Lock()
	fns := make([]func(bool), 0, len(l.fns))
	for _, fn := range l.fns {
		fns = append(fns, fn)
	}
	l.mu.Unlock()

	for _, fn := range fns {
		fn(dark)
	}
}

// Static is a Source driven by hand.
type Static struct {
	mu        sync.Mutex
	dark      bool
	listeners listeners
}

func NewStatic(dark bool) *Static {
	return &Static{dark: dark}
}

func (s *Static) PrefersDark() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dark
}

func (s *Static) OnChange(fn func(bool)) func() {
	return s.listeners.add(fn)
}

// Listeners returns the number of registered callbacks.
func (s *Static) Listeners() int {
	return s.listeners.len()
}

// Set changes the preference. Listeners run only when the value changes.
func (s *Static) Set(dark bool) {
	s.mu.Lock()
	changed := s.dark != dark
	s.dark = dark
	s.mu.Unlock()

	if changed {
		s.listeners.notify(dark)
	}
}

func (*Static) Stop() {}
