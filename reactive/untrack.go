package reactive

// Untrack runs fn without a listener: nothing fn reads becomes a dependency of
// the caller.
func Untrack[T any](rs *System, fn func() T) T {
	var v T
	rs.with(noHandle, func() {
		v = fn()
	})
	return v
}
