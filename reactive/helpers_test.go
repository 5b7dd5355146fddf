package reactive_test

import (
	"testing"

	"github.com/delaneyj/pozitron/reactive"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSystem(t *testing.T, opts ...reactive.SystemOption) *reactive.System {
	t.Helper()
	opts = append([]reactive.SystemOption{
		reactive.WithErrorHandler(func(name string, err error) {
			assert.FailNow(t, err.Error(), "effect %q", name)
		}),
	}, opts...)
	rs := reactive.NewSystem(opts...)
	t.Cleanup(func() {
		require.NoError(t, rs.Validate())
	})
	return rs
}

// record returns an effect body that appends get's value to seen.
func record[T comparable](get reactive.Getter[T], seen *[]T) reactive.ErrFn {
	return func() error {
		*seen = append(*seen, get())
		return nil
	}
}
