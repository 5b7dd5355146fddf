package reactive

import "fmt"

// handle addresses a node in its System's arena.
type handle int32

const noHandle handle = -1

type kind uint8

const (
	kindSignal kind = iota
	kindMemo
	kindEffect
)

func (k kind) String() string {
	switch k {
	case kindSignal:
		return "signal"
	case kindMemo:
		return "memo"
	case kindEffect:
		return "effect"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// edge points at the far node and at this edge's position in the far node's list,
// so either side can be removed in O(1).
type edge struct {
	node handle
	slot int32
}

type node struct {
	kind kind
	name string
	gen  uint32

	stale    bool // memo: cached value may be out of date
	resend   bool // memo: stale, but a notification through it never reached its effect
	pending  bool // effect: queued or about to run
	static   bool // sources frozen after the first successful run
	ran      bool
	running  bool
	disposed bool

	// epoch identifies the evaluation pass currently recording this node's sources,
	// stamp is the epoch of the last pass that linked this node as a source.
	epoch uint64
	stamp uint64

	sources   []edge
	observers []edge

	compute func() (changed bool)
	run     func()
	setAny  func(v any) error
}

// alloc takes a slot off the free list or grows the arena. Only effects are ever
// released, so a recycled slot was never anyone's source.
func (rs *System) alloc(k kind, name string) handle {
	if last := len(rs.free) - 1; last >= 0 {
		h := rs.free[last]
		rs.free = rs.free[:last]
		n := &rs.nodes[h]
		*n = node{
			kind:      k,
			name:      name,
			gen:       n.gen,
			sources:   n.sources[:0],
			observers: n.observers[:0],
		}
		return h
	}
	rs.nodes = append(rs.nodes, node{kind: k, name: name})
	return handle(len(rs.nodes) - 1)
}

// release returns a disposed effect's slot. Bumping gen invalidates every
// outstanding (handle, gen) pair: queued notifications and disposers.
func (rs *System) release(h handle) {
	n := &rs.nodes[h]
	n.gen++
	n.run = nil
	n.compute = nil
	n.setAny = nil
	rs.free = append(rs.free, h)
}

// live returns the node for (h, gen) if it still refers to an undisposed node.
func (rs *System) live(h handle, gen uint32) (*node, bool) {
	n := &rs.nodes[h]
	if n.gen != gen || n.disposed {
		return nil, false
	}
	return n, true
}

func (rs *System) label(h handle) string {
	n := &rs.nodes[h]
	if n.name != "" {
		return fmt.Sprintf("%s %q", n.kind, n.name)
	}
	return fmt.Sprintf("%s #%d", n.kind, h)
}
