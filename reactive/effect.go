package reactive

import "go.uber.org/zap"

// ErrFn is an effect body.
type ErrFn func() error

// Disposer stops an effect or subscription. Calling it again does nothing.
type Disposer func()

// CreateEffect runs fn now and again whenever something it read changes.
// Errors from fn go to the System's OnErrorFunc.
func CreateEffect(rs *System, fn ErrFn, opts ...Option) Disposer {
	cfg := newConfig(opts)
	h, dispose := rs.newEffect(cfg)
	rs.nodes[h].run = func() {
		if err := fn(); err != nil {
			rs.reportError(cfg.name, err)
		}
		if cfg.once {
			dispose()
		}
	}
	rs.start(h, dispose)
	return dispose
}

func (rs *System) newEffect(cfg config) (handle, Disposer) {
	h := rs.alloc(kindEffect, cfg.name)
	n := &rs.nodes[h]
	n.static = cfg.static
	n.pending = true
	gen := n.gen
	if cfg.name != "" {
		rs.logger.Debug("effect created", zap.String("name", cfg.name))
	}
	return h, func() {
		rs.dispose(h, gen)
	}
}

// start performs the first run. The caller never receives the disposer if that
// run panics, so the effect is disposed on the way out.
func (rs *System) start(h handle, dispose Disposer) {
	completed := false
	defer func() {
		if !completed {
			dispose()
		}
	}()
	rs.runEffect(h)
	completed = true
}

func (rs *System) runEffect(h handle) {
	n := &rs.nodes[h]
	if n.disposed {
		return
	}
	frozen := n.static && n.ran
	l := noHandle
	if !frozen {
		rs.cleanup(h)
		n.epoch = rs.nextEpoch()
		l = h
	}
	n.running = true
	run := n.run
	rs.effectRuns++

	defer func() {
		n := &rs.nodes[h]
		n.running = false
		n.pending = false
		if n.disposed {
			rs.release(h)
		}
	}()
	rs.with(l, run)
	rs.nodes[h].ran = true
}

func (rs *System) dispose(h handle, gen uint32) {
	n, ok := rs.live(h, gen)
	if !ok {
		return
	}
	rs.cleanup(h)
	n.disposed = true
	n.pending = false
	if n.name != "" {
		rs.logger.Debug("effect disposed", zap.String("name", n.name))
	}
	if !n.running {
		rs.release(h)
	}
}
