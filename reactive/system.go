package reactive

import (
	"errors"
	"fmt"

	"go.uber.org/zap"
)

var (
	// ErrReadOnly is returned when something tries to write a memo.
	ErrReadOnly = errors.New("reactive: memo values are derived and cannot be set")
	// ErrTypeMismatch is returned by SetAny when the value does not fit the signal.
	ErrTypeMismatch = errors.New("reactive: value type does not match signal")
	// ErrUnknownNode is returned by SetAny for names that were never registered.
	ErrUnknownNode = errors.New("reactive: no node with that name")
)

// OnErrorFunc receives errors returned by effect functions. name is the
// effect's WithName, or empty.
type OnErrorFunc func(name string, err error)

// SystemOption configures a System at construction.
type SystemOption func(*System)

// WithLogger sets the logger. The default is zap.NewNop.
func WithLogger(logger *zap.Logger) SystemOption {
	return func(rs *System) {
		if logger != nil {
			rs.logger = logger
		}
	}
}

// WithErrorHandler routes effect errors to fn instead of the logger.
func WithErrorHandler(fn OnErrorFunc) SystemOption {
	return func(rs *System) {
		rs.onError = fn
	}
}

// System owns one dependency graph. Graphs created from different Systems never
// interact. A System must only be used from one goroutine at a time.
type System struct {
	nodes []node
	free  []handle
	names map[string]handle

	listener handle
	epoch    uint64

	batchDepth int
	queue      []queued

	logger  *zap.Logger
	onError OnErrorFunc

	recomputes uint64
	effectRuns uint64
	flushes    uint64
}

type queued struct {
	h   handle
	gen uint32
}

// NewSystem returns an empty graph.
func NewSystem(opts ...SystemOption) *System {
	rs := &System{
		names:    map[string]handle{},
		listener: noHandle,
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(rs)
	}
	return rs
}

func (rs *System) nextEpoch() uint64 {
	rs.epoch++
	return rs.epoch
}

// with runs fn with l as the active listener and puts the previous one back on
// every exit path.
func (rs *System) with(l handle, fn func()) {
	prev := rs.listener
	rs.listener = l
	defer func() {
		rs.listener = prev
	}()
	fn()
}

func (rs *System) register(h handle, name string) {
	if name == "" {
		return
	}
	if prev, ok := rs.names[name]; ok {
		rs.logger.Debug("node name reused",
			zap.String("name", name),
			zap.String("previous", rs.nodes[prev].kind.String()),
		)
	}
	rs.names[name] = h
}

func (rs *System) reportError(name string, err error) {
	if rs.onError != nil {
		rs.onError(name, err)
		return
	}
	rs.logger.Error("effect failed", zap.String("effect", name), zap.Error(err))
}

// SetAny writes the signal registered under name with an untyped value. Memos
// reject the write with ErrReadOnly; triggers ignore v and just notify.
func (rs *System) SetAny(name string, v any) error {
	h, ok := rs.names[name]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownNode, name)
	}
	if err := rs.nodes[h].setAny(v); err != nil {
		if errors.Is(err, ErrReadOnly) {
			rs.logger.Warn("rejected write to memo", zap.String("name", name))
		}
		return fmt.Errorf("set %q: %w", name, err)
	}
	return nil
}
