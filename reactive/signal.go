package reactive

import (
	"fmt"

	"go.uber.org/zap"
)

// Getter reads a signal or memo and tracks it in the active listener.
type Getter[T any] func() T

// Setter writes a signal and notifies its observers when the value changes.
type Setter[T any] func(value T)

// CreateSignal makes a mutable cell. Reads register a dependency in the active
// memo or effect; writes of a value == to the current one are ignored.
func CreateSignal[T comparable](rs *System, initial T, opts ...Option) (Getter[T], Setter[T]) {
	cfg := newConfig(opts)

	var transform func(T) T
	if cfg.set != nil {
		fn, ok := cfg.set.(func(T) T)
		if !ok {
			panic(fmt.Sprintf("reactive: WithSet got %T for a signal of %T", cfg.set, initial))
		}
		transform = fn
	}

	h := rs.alloc(kindSignal, cfg.name)
	value := initial

	get := func() T {
		rs.track(h)
		return value
	}
	set := func(next T) {
		if transform != nil {
			next = transform(next)
		}
		if next == value {
			return
		}
		value = next
		rs.notifyObservers(h)
	}

	rs.nodes[h].setAny = func(v any) error {
		next, ok := v.(T)
		if !ok {
			return fmt.Errorf("%w: want %T, got %T", ErrTypeMismatch, value, v)
		}
		set(next)
		return nil
	}
	rs.register(h, cfg.name)
	if cfg.name != "" {
		rs.logger.Debug("signal created", zap.String("name", cfg.name))
	}

	return get, set
}

// Trigger is a signal without a value, for pure notification channels.
type Trigger struct {
	rs *System
	h  handle
}

func CreateTrigger(rs *System, opts ...Option) *Trigger {
	cfg := newConfig(opts)
	h := rs.alloc(kindSignal, cfg.name)
	t := &Trigger{rs: rs, h: h}
	rs.nodes[h].setAny = func(any) error {
		t.Notify()
		return nil
	}
	rs.register(h, cfg.name)
	return t
}

// Track registers the trigger as a dependency of the active memo or effect.
func (t *Trigger) Track() {
	t.rs.track(t.h)
}

// Notify wakes everything that tracked t.
func (t *Trigger) Notify() {
	t.rs.notifyObservers(t.h)
}

// Through tracks t and returns v unchanged.
func Through[T any](t *Trigger, v T) T {
	t.Track()
	return v
}
