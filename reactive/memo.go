package reactive

import (
	"fmt"

	"go.uber.org/zap"
)

type memoCell[T comparable] struct {
	value T
	set   bool
}

// CreateMemo makes a lazily computed, cached value. fn runs on the first read
// and again on the first read after any of its sources changed.
func CreateMemo[T comparable](rs *System, fn func() T, opts ...Option) Getter[T] {
	cfg := newConfig(opts)
	h := rs.alloc(kindMemo, cfg.name)
	cell := &memoCell[T]{}

	n := &rs.nodes[h]
	n.stale = true
	n.static = cfg.static
	n.compute = func() bool {
		v := fn()
		if cell.set && v == cell.value {
			return false
		}
		cell.value, cell.set = v, true
		return true
	}
	n.setAny = func(any) error {
		return ErrReadOnly
	}
	rs.register(h, cfg.name)
	if cfg.name != "" {
		rs.logger.Debug("memo created", zap.String("name", cfg.name), zap.Bool("static", cfg.static))
	}

	if cfg.untracked {
		return func() T {
			rs.refresh(h)
			return cell.value
		}
	}
	// Link before refreshing so a compute that panics still leaves the reader
	// subscribed for the retry.
	return func() T {
		rs.track(h)
		rs.refresh(h)
		return cell.value
	}
}

func (rs *System) refresh(h handle) {
	if rs.nodes[h].stale {
		rs.recompute(h)
	}
}

func (rs *System) recompute(h handle) {
	n := &rs.nodes[h]
	if n.running {
		panic(fmt.Sprintf("reactive: %s depends on itself", rs.label(h)))
	}
	frozen := n.static && n.ran
	l := noHandle
	if !frozen {
		rs.cleanup(h)
		n.epoch = rs.nextEpoch()
		l = h
	}
	n.running = true
	n.resend = false
	compute := n.compute

	var changed bool
	func() {
		completed := false
		defer func() {
			n := &rs.nodes[h]
			n.running = false
			// observers already heard about this staleness
			n.resend = !completed
		}()
		rs.with(l, func() {
			changed = compute()
		})
		completed = true
	}()
	rs.recomputes++

	// fn may have created nodes and moved the arena.
	n = &rs.nodes[h]
	n.stale = false
	n.ran = true
	if changed {
		rs.notifyObservers(h)
	}
}
