package reactive

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/cespare/xxhash/v2"
	mapset "github.com/deckarep/golang-set/v2"
)

// Stats is a point-in-time count of live nodes, edges and work done.
type Stats struct {
	Signals int
	Memos   int
	Effects int
	Edges   int
	Queued  int

	Recomputes uint64
	EffectRuns uint64
	Flushes    uint64
}

// Stats walks the arena and returns the current counts.
func (rs *System) Stats() Stats {
	s := Stats{
		Queued:     len(rs.queue),
		Recomputes: rs.recomputes,
		EffectRuns: rs.effectRuns,
		Flushes:    rs.flushes,
	}
	for i := range rs.nodes {
		n := &rs.nodes[i]
		if n.disposed {
			continue
		}
		switch n.kind {
		case kindSignal:
			s.Signals++
		case kindMemo:
			s.Memos++
		case kindEffect:
			s.Effects++
		}
		s.Edges += len(n.sources)
	}
	return s
}

// Validate checks that every edge is recorded on both ends with matching slots,
// that no consumer holds two edges to one source and that disposed nodes hold none.
func (rs *System) Validate() error {
	var errs []error
	for i := range rs.nodes {
		h := handle(i)
		n := &rs.nodes[i]
		if n.disposed {
			if len(n.sources) > 0 {
				errs = append(errs, fmt.Errorf("%s: disposed with %d sources", rs.label(h), len(n.sources)))
			}
			continue
		}

		seen := mapset.NewThreadUnsafeSet[handle]()
		for j, e := range n.sources {
			if !seen.Add(e.node) {
				errs = append(errs, fmt.Errorf("%s: duplicate edge to %s", rs.label(h), rs.label(e.node)))
			}
			back := rs.nodes[e.node].observers
			if int(e.slot) >= len(back) || back[e.slot] != (edge{node: h, slot: int32(j)}) {
				errs = append(errs, fmt.Errorf("%s: source %d (%s) has no matching observer", rs.label(h), j, rs.label(e.node)))
			}
		}
		for j, e := range n.observers {
			back := rs.nodes[e.node].sources
			if int(e.slot) >= len(back) || back[e.slot] != (edge{node: h, slot: int32(j)}) {
				errs = append(errs, fmt.Errorf("%s: observer %d (%s) has no matching source", rs.label(h), j, rs.label(e.node)))
			}
		}
	}
	return errors.Join(errs...)
}

// Fingerprint hashes the live topology: kinds, names and ordered source lists.
// Observer order is left out, it changes with every swap on removal.
func (rs *System) Fingerprint() uint64 {
	buf := make([]byte, 0, 16*len(rs.nodes))
	for i := range rs.nodes {
		n := &rs.nodes[i]
		if n.disposed {
			continue
		}
		buf = binary.LittleEndian.AppendUint32(buf, uint32(i))
		buf = append(buf, byte(n.kind))
		buf = append(buf, n.name...)
		buf = binary.AppendUvarint(buf, uint64(len(n.sources)))
		for _, e := range n.sources {
			buf = binary.LittleEndian.AppendUint32(buf, uint32(e.node))
		}
	}
	return xxhash.Sum64(buf)
}
