package reactive

import "go.uber.org/zap"

// StartBatch opens a batch that lasts until the matching EndBatch.
func (rs *System) StartBatch() {
	rs.batchDepth++
}

// EndBatch closes a StartBatch. An unmatched call is logged and ignored.
func (rs *System) EndBatch() {
	if rs.batchDepth == 0 {
		rs.logger.Warn("EndBatch without StartBatch")
		return
	}
	rs.batchDepth--
	if rs.batchDepth == 0 {
		rs.flush()
	}
}

// Batch defers effect runs until fn returns. Batches nest; only the outermost
// one flushes. If fn panics nothing is flushed and queued effects are dropped.
func (rs *System) Batch(fn func()) {
	rs.batchDepth++
	completed := false
	defer func() {
		if completed {
			rs.EndBatch()
			return
		}
		if rs.batchDepth > 0 {
			rs.batchDepth--
		}
		if rs.batchDepth == 0 {
			rs.drop(0)
		}
	}()
	fn()
	completed = true
}

// Transaction is Batch.
func (rs *System) Transaction(fn func()) {
	rs.Batch(fn)
}

// flush runs queued effects in FIFO order. The depth stays raised while it runs,
// so writes made by effects append to the queue instead of flushing recursively.
// A panicking effect aborts the flush: the rest of the queue is dropped and the
// panic continues to the caller.
func (rs *System) flush() {
	if len(rs.queue) == 0 {
		return
	}
	rs.flushes++
	rs.batchDepth++
	i := 0
	completed := false
	defer func() {
		if completed {
			return
		}
		dropped := len(rs.queue) - i - 1
		rs.drop(i + 1)
		rs.batchDepth = 0
		rs.logger.Debug("flush aborted", zap.Int("dropped", dropped))
	}()
	for ; i < len(rs.queue); i++ {
		q := rs.queue[i]
		if _, ok := rs.live(q.h, q.gen); ok {
			rs.runEffect(q.h)
		}
	}
	rs.queue = rs.queue[:0]
	rs.batchDepth--
	completed = true
}

// drop discards queue entries from index from on. Their pending flag is cleared
// and the stale memos they read are marked, so later writes reach them again.
func (rs *System) drop(from int) {
	if from < len(rs.queue) {
		for _, q := range rs.queue[from:] {
			if n, ok := rs.live(q.h, q.gen); ok {
				n.pending = false
				rs.markResend(q.h)
			}
		}
	}
	rs.queue = rs.queue[:0]
}
