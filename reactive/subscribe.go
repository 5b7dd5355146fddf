package reactive

//go:generate go run ../cmd/codegen --count 4 --out subscribe_gen.go

// Subscribe calls fn with get's value now and after every change. fn runs
// untracked, so whatever it reads does not become a dependency.
func Subscribe[T comparable](rs *System, get Getter[T], fn func(T), opts ...Option) Disposer {
	return subscribe[T](rs, get, fn, opts)
}

// SubscribeAll is Subscribe over several getters of one type. fn receives their
// values in order.
func SubscribeAll[T comparable](rs *System, gets []Getter[T], fn func([]T), opts ...Option) Disposer {
	read := func() []T {
		values := make([]T, len(gets))
		for i, get := range gets {
			values[i] = get()
		}
		return values
	}
	return subscribe(rs, read, fn, opts)
}

// subscribe builds a static effect: read runs tracked on the first run only, fn
// always runs untracked.
func subscribe[V any](rs *System, read func() V, fn func(V), opts []Option) Disposer {
	cfg := newConfig(opts)
	cfg.static = true
	skip := cfg.deferred

	h, dispose := rs.newEffect(cfg)
	rs.nodes[h].run = func() {
		v := read()
		if skip {
			skip = false
			return
		}
		rs.with(noHandle, func() {
			fn(v)
		})
		if cfg.once {
			dispose()
		}
	}
	rs.start(h, dispose)
	return dispose
}
