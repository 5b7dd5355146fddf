package reactive_test

import (
	"fmt"
	"testing"

	"github.com/delaneyj/pozitron/reactive"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTopologyDropAbaUpdates(t *testing.T) {
	rs := newSystem(t)

	//     A
	//   / |
	//  B  |
	//   \ |
	//     C
	//     |
	//     D
	a, setA := reactive.CreateSignal(rs, 2)
	b := reactive.CreateMemo(rs, func() int { return a() - 1 })
	c := reactive.CreateMemo(rs, func() int { return a() + b() })
	callCount := 0
	d := reactive.CreateMemo(rs, func() string {
		callCount++
		return fmt.Sprintf("d: %d", c())
	})

	assert.Equal(t, "d: 3", d())
	assert.Equal(t, 1, callCount)

	setA(4)
	assert.Equal(t, "d: 7", d())
	assert.Equal(t, 2, callCount)
}

func TestShouldOnlyUpdateEverySignalOnceDiamondTail(t *testing.T) {
	rs := newSystem(t)

	//     A
	//   /   \
	//  B     C
	//   \   /
	//     D
	//     |
	//     E
	a, setA := reactive.CreateSignal(rs, "a")
	b := reactive.CreateMemo(rs, func() string { return a() })
	c := reactive.CreateMemo(rs, func() string { return a() })
	d := reactive.CreateMemo(rs, func() string { return b() + " " + c() })
	eCallCount := 0
	e := reactive.CreateMemo(rs, func() string {
		eCallCount++
		return d()
	})

	assert.Equal(t, "a a", e())
	assert.Equal(t, 1, eCallCount)

	setA("aa")
	assert.Equal(t, "aa aa", e())
	assert.Equal(t, 2, eCallCount)
}

func TestShouldOnlyUpdateEverySignalOnceJaggedDiamondTails(t *testing.T) {
	rs := newSystem(t)

	//     A
	//   /   \
	//  B     C
	//  |     |
	//  |     D
	//   \   /
	//     E
	//   /   \
	//  F     G
	a, setA := reactive.CreateSignal(rs, "a")
	b := reactive.CreateMemo(rs, func() string { return a() })
	c := reactive.CreateMemo(rs, func() string { return a() })
	d := reactive.CreateMemo(rs, func() string { return c() })

	var order []string
	eCallCount := 0
	e := reactive.CreateMemo(rs, func() string {
		v := b() + " " + d()
		eCallCount++
		order = append(order, "e")
		return v
	})
	fCallCount := 0
	f := reactive.CreateMemo(rs, func() string {
		v := e()
		fCallCount++
		order = append(order, "f")
		return v
	})
	gCallCount := 0
	g := reactive.CreateMemo(rs, func() string {
		v := e()
		gCallCount++
		order = append(order, "g")
		return v
	})

	require.Equal(t, "a a", f())
	require.Equal(t, 1, fCallCount)
	require.Equal(t, "a a", g())
	require.Equal(t, 1, gCallCount)

	for _, v := range []string{"b", "c"} {
		eCallCount, fCallCount, gCallCount = 0, 0, 0
		order = order[:0]

		setA(v)
		want := v + " " + v
		require.Equal(t, want, e())
		require.Equal(t, 1, eCallCount)
		require.Equal(t, want, f())
		require.Equal(t, 1, fCallCount)
		require.Equal(t, want, g())
		require.Equal(t, 1, gCallCount)

		// top to bottom, then left to right
		assert.Equal(t, []string{"e", "f", "g"}, order)
	}
}

func TestShouldOnlySubscribeToSignalsListenedTo(t *testing.T) {
	rs := newSystem(t)

	//    *A
	//   /   \
	// *B     C <- never read
	a, setA := reactive.CreateSignal(rs, "a")
	b := reactive.CreateMemo(rs, func() string { return a() })
	callCount := 0
	reactive.CreateMemo(rs, func() string {
		callCount++
		return a()
	})

	assert.Equal(t, "a", b())
	assert.Equal(t, 0, callCount)

	setA("aa")
	assert.Equal(t, "aa", b())
	assert.Equal(t, 0, callCount)
}

func TestShouldStopUpdatingAfterUnsubscribe(t *testing.T) {
	rs := newSystem(t)

	//    *A
	//   /   \
	// *B     D
	//  |
	// *C
	a, setA := reactive.CreateSignal(rs, "a")
	bCallCount := 0
	b := reactive.CreateMemo(rs, func() string {
		bCallCount++
		return a()
	})
	cCallCount := 0
	c := reactive.CreateMemo(rs, func() string {
		cCallCount++
		return b()
	})
	d := reactive.CreateMemo(rs, func() string { return a() })

	result := ""
	unsub := reactive.CreateEffect(rs, func() error {
		result = c()
		return nil
	})

	assert.Equal(t, "a", result)
	assert.Equal(t, "a", d())

	bCallCount, cCallCount = 0, 0
	unsub()

	setA("aa")
	assert.Equal(t, 0, bCallCount)
	assert.Equal(t, 0, cCallCount)
	assert.Equal(t, "aa", d())
	assert.Equal(t, "a", result)
}

func TestShouldEnsureSubsUpdate(t *testing.T) {
	rs := newSystem(t)

	// C always returns the same value, D must still update because B changed.
	//     A
	//   /   \
	//  B     *C
	//   \   /
	//     D
	a, setA := reactive.CreateSignal(rs, "a")
	b := reactive.CreateMemo(rs, func() string { return a() })
	c := reactive.CreateMemo(rs, func() string {
		a()
		return "c"
	})
	dCallCount := 0
	d := reactive.CreateMemo(rs, func() string {
		dCallCount++
		return b() + " " + c()
	})

	assert.Equal(t, "a c", d())
	assert.Equal(t, 1, dCallCount)

	setA("aa")
	assert.Equal(t, "aa c", d())
	assert.Equal(t, 2, dCallCount)
}

func TestShouldEnsureSubsUpdateEvenIfTwoDepsUnmarkIt(t *testing.T) {
	rs := newSystem(t)

	//     A
	//   / | \
	//  B *C *D
	//   \ | /
	//     E
	a, setA := reactive.CreateSignal(rs, "a")
	b := reactive.CreateMemo(rs, func() string { return a() })
	c := reactive.CreateMemo(rs, func() string {
		a()
		return "c"
	})
	d := reactive.CreateMemo(rs, func() string {
		a()
		return "d"
	})
	eCallCount := 0
	e := reactive.CreateMemo(rs, func() string {
		eCallCount++
		return b() + " " + c() + " " + d()
	})

	assert.Equal(t, "a c d", e())
	assert.Equal(t, 1, eCallCount)

	setA("aa")
	assert.Equal(t, "aa c d", e())
	assert.Equal(t, 2, eCallCount)
}

func TestShouldKeepGraphConsistentOnMemoPanics(t *testing.T) {
	rs := newSystem(t)
	a, setA := reactive.CreateSignal(rs, 0)
	b := reactive.CreateMemo(rs, func() int {
		panic("fail")
	})
	c := reactive.CreateMemo(rs, func() int { return a() })

	assert.Panics(t, func() {
		b()
	})

	setA(1)
	assert.Equal(t, 1, a())
	assert.Equal(t, 1, c())
}
