// Package provider holds the process-wide theme state, derives the palette
// and broadcasts snapshots to any number of consumers.
//
// Setters are applied in call order. Each one persists the new state before
// subscribers are told about it, so a saved record always reflects the
// latest change.
package provider

import (
	"sync"

	"github.com/samber/mo"
	"github.com/themer-cli/themer/appearance"
	"github.com/themer-cli/themer/log"
	"github.com/themer-cli/themer/palette"
	"github.com/themer-cli/themer/prefs"
	"github.com/themer-cli/themer/storage"
	"github.com/themer-cli/themer/theme"
)

// Option configures a Provider.
type Option func(*Provider)

// WithPhaseHook calls fn on every lifecycle transition.
func WithPhaseHook(fn func(Phase)) Option {
	return func(p *Provider) {
		p.onPhase = fn
	}
}

// Provider is the single owner of theme.State.
type Provider struct {
	slot   storage.Slot
	source appearance.Source

	// writeMu serializes changes from setters and the appearance source
	// through persistence and notification. mu guards the fields below.
	writeMu sync.Mutex
	mu      sync.Mutex

	phase    Phase
	state    theme.State
	hostDark bool
	snapshot Snapshot

	subscribers map[uint64]func(Snapshot)
	nextID      uint64

	onPhase   func(Phase)
	detach    func()
	closeOnce sync.Once
}

// New hydrates from slot, starts following source and returns a Ready provider.
func New(slot storage.Slot, source appearance.Source, options ...Option) *Provider {
	p := &Provider{
		slot:        slot,
		source:      source,
		phase:       Uninitialized,
		subscribers: make(map[uint64]func(Snapshot)),
	}

	for _, option := range options {
		option(p)
	}

	p.setPhase(Hydrating)

	p.state = prefs.Load(slot).OrElse(theme.Default())
	p.hostDark = source.PrefersDark()
	p.snapshot = newSnapshot(1, p.state, p.hostDark)
	p.detach = source.OnChange(p.hostChanged)

	log.WithFields(log.Fields{
		"backend": slot.Name(),
		"mode":    p.state.Mode,
		"scheme":  p.state.Scheme,
		"design":  p.state.Design,
	}).Info("theme provider ready")

	p.setPhase(Ready)

	return p
}

func (p *Provider) setPhase(phase Phase) {
	p.phase = phase
	if p.onPhase != nil {
		p.onPhase(phase)
	}
}

// Phase reports the lifecycle position.
func (p *Provider) Phase() Phase {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.phase
}

// Snapshot returns the current view.
func (p *Provider) Snapshot() Snapshot {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.snapshot
}

// HostPrefersDark reports the last host appearance seen, whatever the mode.
func (p *Provider) HostPrefersDark() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.hostDark
}

// Subscribe registers fn for every new snapshot. Subscribers are called
// synchronously and must not call setters from within fn.
func (p *Provider) Subscribe(fn func(Snapshot)) (unsubscribe func()) {
	p.mu.Lock()
	id := p.nextID
	p.nextID++
	p.subscribers[id] = fn
	p.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			p.mu.Lock()
			delete(p.subscribers, id)
			p.mu.Unlock()
		})
	}
}

// publish derives a new snapshot and notifies subscribers.
// The caller must hold writeMu.
func (p *Provider) publish() Snapshot {
	p.mu.Lock()
	p.snapshot = newSnapshot(p.snapshot.Version+1, p.state, p.hostDark)
	snapshot := p.snapshot

	subscribers := make([]func(Snapshot), 0, len(p.subscribers))
	for _, fn := range p.subscribers {
		subscribers = append(subscribers, fn)
	}
	p.mu.Unlock()

	for _, fn := range subscribers {
		fn(snapshot)
	}

	return snapshot
}

// update applies change, saves the result and publishes it.
func (p *Provider) update(change func(state *theme.State)) Snapshot {
	p.writeMu.Lock()
	defer p.writeMu.Unlock()

	p.mu.Lock()
	next := p.state
	change(&next)
	p.state = next
	p.mu.Unlock()

	prefs.Save(p.slot, next)

	return p.publish()
}

// SetMode changes the light/dark intent. Entering auto samples the host.
func (p *Provider) SetMode(mode theme.Mode) Snapshot {
	if !mode.Valid() {
		log.WithField("mode", mode).Warn("ignoring unknown mode")
		return p.Snapshot()
	}

	return p.update(func(state *theme.State) {
		if mode == theme.Auto && state.Mode != theme.Auto {
			p.hostDark = p.source.PrefersDark()
		}
		state.Mode = mode
	})
}

func (p *Provider) SetColorScheme(scheme theme.Scheme) Snapshot {
	if !scheme.Valid() {
		log.WithField("scheme", scheme).Warn("ignoring unknown color scheme")
		return p.Snapshot()
	}

	return p.update(func(state *theme.State) {
		state.Scheme = scheme
	})
}

func (p *Provider) SetUIDesign(design theme.Design) Snapshot {
	if !design.Valid() {
		log.WithField("design", design).Warn("ignoring unknown ui design")
		return p.Snapshot()
	}

	return p.update(func(state *theme.State) {
		state.Design = design
	})
}

// ToggleMode switches to the explicit mode opposite to the effective one.
// It never selects auto.
func (p *Provider) ToggleMode() Snapshot {
	return p.update(func(state *theme.State) {
		if state.IsDark(p.hostDark) {
			state.Mode = theme.Light
		} else {
			state.Mode = theme.Dark
		}
	})
}

// SetCustomPalette stores a user palette and selects the custom scheme.
func (p *Provider) SetCustomPalette(custom theme.Custom) (Snapshot, error) {
	if err := palette.ValidateCustom(custom); err != nil {
		return p.Snapshot(), err
	}

	return p.update(func(state *theme.State) {
		state.Custom = mo.Some(custom)
		state.Scheme = theme.SchemeCustom
	}), nil
}

// ClearCustomPalette forgets the user palette. The custom scheme then
// renders like the default one.
func (p *Provider) ClearCustomPalette() Snapshot {
	return p.update(func(state *theme.State) {
		state.Custom = mo.None[theme.Custom]()
	})
}

// Reset returns to defaults and removes the saved record.
func (p *Provider) Reset() Snapshot {
	p.writeMu.Lock()
	defer p.writeMu.Unlock()

	p.mu.Lock()
	p.state = theme.Default()
	p.mu.Unlock()

	if err := prefs.Clear(p.slot); err != nil {
		log.WithError(err).Error("saved theme not removed")
	}

	return p.publish()
}

// Rehydrate reloads the saved record, for instance after another process
// changed it. It reports whether the state changed. An unreadable record,
// such as a file caught mid-write, keeps the current state; only a removed
// record resets to defaults.
func (p *Provider) Rehydrate() bool {
	p.writeMu.Lock()
	defer p.writeMu.Unlock()

	saved, err := prefs.LoadErr(p.slot)
	if err != nil {
		log.WithError(err).WithField("backend", p.slot.Name()).Warn("keeping current theme, saved record unreadable")
		return false
	}

	loaded := saved.OrElse(theme.Default())

	p.mu.Lock()
	changed := !loaded.Equal(p.state)
	p.state = loaded
	p.mu.Unlock()

	if !changed {
		return false
	}

	p.publish()

	return true
}

func (p *Provider) hostChanged(dark bool) {
	p.writeMu.Lock()
	defer p.writeMu.Unlock()

	p.mu.Lock()
	changed := p.hostDark != dark
	p.hostDark = dark
	auto := p.state.Mode == theme.Auto
	p.mu.Unlock()

	if !changed {
		return
	}

	if !auto {
		log.WithField("dark", dark).Debug("host appearance ignored outside auto mode")
		return
	}

	p.publish()
}

// Close stops following the appearance source. The source itself is not stopped.
func (p *Provider) Close() {
	p.closeOnce.Do(func() {
		p.detach()
	})
}
