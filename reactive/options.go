package reactive

// Option configures a signal, memo, effect or subscription. Options that do not
// apply to a node kind are ignored.
type Option func(*config)

type config struct {
	name      string
	set       any
	static    bool
	untracked bool
	once      bool
	deferred  bool
}

func newConfig(opts []Option) config {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithName labels the node for logs, Validate errors and SetAny.
func WithName(name string) Option {
	return func(c *config) {
		c.name = name
	}
}

// WithSet maps every value written to a signal through fn before the equality
// check. fn must be a func(T) T for the signal's T.
func WithSet[T any](fn func(T) T) Option {
	return func(c *config) {
		c.set = fn
	}
}

// Static freezes a memo's or effect's sources after its first successful run.
func Static() Option {
	return func(c *config) {
		c.static = true
	}
}

// Untracked makes a memo getter that never registers a dependency in its caller.
func Untracked() Option {
	return func(c *config) {
		c.untracked = true
	}
}

// Once disposes an effect after its first run, or a subscription after its first
// callback.
func Once() Option {
	return func(c *config) {
		c.once = true
	}
}

// Defer makes a subscription record its dependencies without calling the
// callback on creation.
func Defer() Option {
	return func(c *config) {
		c.deferred = true
	}
}
