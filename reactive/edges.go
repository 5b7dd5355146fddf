package reactive

// track records that the active listener read src. A consumer holds at most one
// edge per source within a pass.
func (rs *System) track(src handle) {
	l := rs.listener
	if l == noHandle || l == src {
		return
	}
	obs := &rs.nodes[l]
	if obs.disposed {
		return
	}
	s := &rs.nodes[src]
	switch {
	case s.stamp == obs.epoch:
		return
	case s.stamp > obs.epoch:
		// A pass nested inside this one read src since; only a scan can tell.
		for _, e := range obs.sources {
			if e.node == src {
				s.stamp = obs.epoch
				return
			}
		}
	}
	s.stamp = obs.epoch
	s.observers = append(s.observers, edge{node: l, slot: int32(len(obs.sources))})
	obs.sources = append(obs.sources, edge{node: src, slot: int32(len(s.observers) - 1)})
}

// cleanup drops every source edge of h. Each removal swaps the source's last
// observer into the vacated slot and repoints that observer's back reference.
func (rs *System) cleanup(h handle) {
	n := &rs.nodes[h]
	for _, e := range n.sources {
		src := &rs.nodes[e.node]
		last := int32(len(src.observers) - 1)
		if e.slot != last {
			moved := src.observers[last]
			src.observers[e.slot] = moved
			rs.nodes[moved.node].sources[moved.slot].slot = e.slot
		}
		src.observers = src.observers[:last]
	}
	n.sources = n.sources[:0]
}

// notify reacts to a change in one of h's sources.
func (rs *System) notify(h handle) {
	n := &rs.nodes[h]
	switch n.kind {
	case kindMemo:
		if n.stale && !n.resend {
			return
		}
		n.stale, n.resend = true, false
		rs.notifyObservers(h)
	case kindEffect:
		if n.pending || n.disposed {
			return
		}
		n.pending = true
		if rs.batchDepth > 0 {
			rs.queue = append(rs.queue, queued{h: h, gen: n.gen})
			return
		}
		rs.runEffect(h)
	}
}

// notifyObservers fans a change out to h's observers inside an implicit batch,
// so effects reached from one write run once, after every memo is marked stale.
func (rs *System) notifyObservers(h handle) {
	observers := rs.nodes[h].observers
	if len(observers) == 0 {
		return
	}
	rs.batchDepth++
	for _, e := range observers {
		rs.notify(e.node)
	}
	rs.EndBatch()
}

// markResend flags the stale memos above h. Their staleness was already
// announced, but the announcement died with a dropped effect, so the next write
// through them has to propagate again.
func (rs *System) markResend(h handle) {
	for _, e := range rs.nodes[h].sources {
		src := &rs.nodes[e.node]
		if src.kind != kindMemo || !src.stale || src.resend {
			continue
		}
		src.resend = true
		rs.markResend(e.node)
	}
}
