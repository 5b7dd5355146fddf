package reactive_test

import (
	"errors"
	"testing"

	"github.com/delaneyj/pozitron/reactive"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestSystemLogging(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	rs := reactive.NewSystem(reactive.WithLogger(zap.New(core)))

	count, setCount := reactive.CreateSignal(rs, 0, reactive.WithName("count"))
	reactive.CreateMemo(rs, func() int { return count() }, reactive.WithName("mirror"), reactive.Static())
	reactive.CreateEffect(rs, func() error {
		if count() > 0 {
			return errors.New("positive")
		}
		return nil
	}, reactive.WithName("guard"))

	assert.Equal(t, 1, logs.FilterMessage("signal created").FilterField(zap.String("name", "count")).Len())
	assert.Equal(t, 1, logs.FilterMessage("memo created").FilterField(zap.Bool("static", true)).Len())
	assert.Equal(t, 1, logs.FilterMessage("effect created").Len())

	t.Run("effect errors without a handler are logged", func(t *testing.T) {
		setCount(1)
		failed := logs.FilterMessage("effect failed").FilterField(zap.String("effect", "guard"))
		require.Equal(t, 1, failed.Len())
		assert.Equal(t, zapcore.ErrorLevel, failed.All()[0].Level)
	})

	t.Run("writes to memos are warned about", func(t *testing.T) {
		err := rs.SetAny("mirror", 3)
		assert.True(t, errors.Is(err, reactive.ErrReadOnly))
		assert.Equal(t, 1, logs.FilterMessage("rejected write to memo").FilterLevelExact(zapcore.WarnLevel).Len())
	})

	t.Run("name reuse", func(t *testing.T) {
		reactive.CreateSignal(rs, "", reactive.WithName("count"))
		assert.Equal(t, 1, logs.FilterMessage("node name reused").Len())
	})

	t.Run("aborted flush", func(t *testing.T) {
		b, setB := reactive.CreateSignal(rs, 0)
		reactive.CreateEffect(rs, func() error {
			if b() > 0 {
				panic("b")
			}
			return nil
		})
		reactive.CreateEffect(rs, func() error {
			b()
			return nil
		})
		assert.Panics(t, func() {
			setB(1)
		})
		aborted := logs.FilterMessage("flush aborted")
		require.Equal(t, 1, aborted.Len())
		assert.Equal(t, int64(1), aborted.All()[0].ContextMap()["dropped"])
	})
}

func TestSystemsAreIndependent(t *testing.T) {
	rs1 := newSystem(t)
	rs2 := newSystem(t)
	a, setA := reactive.CreateSignal(rs1, 1)
	b, setB := reactive.CreateSignal(rs2, 1)

	runs := 0
	reactive.CreateEffect(rs1, func() error {
		a()
		b()
		runs++
		return nil
	})

	setB(2)
	assert.Equal(t, 1, runs)
	setA(2)
	assert.Equal(t, 2, runs)
	assert.Equal(t, 1, rs1.Stats().Edges)
	assert.Zero(t, rs2.Stats().Edges)
}

func TestStats(t *testing.T) {
	rs := newSystem(t)
	a, setA := reactive.CreateSignal(rs, 1)
	reactive.CreateTrigger(rs)
	m := reactive.CreateMemo(rs, func() int { return a() + 1 })
	stop := reactive.CreateEffect(rs, func() error {
		m()
		return nil
	})

	s := rs.Stats()
	assert.Equal(t, 2, s.Signals)
	assert.Equal(t, 1, s.Memos)
	assert.Equal(t, 1, s.Effects)
	assert.Equal(t, 2, s.Edges)
	assert.Equal(t, uint64(1), s.Recomputes)
	assert.Equal(t, uint64(1), s.EffectRuns)

	setA(2)
	s = rs.Stats()
	assert.Equal(t, uint64(2), s.Recomputes)
	assert.Equal(t, uint64(2), s.EffectRuns)
	assert.Equal(t, uint64(1), s.Flushes)

	stop()
	s = rs.Stats()
	assert.Zero(t, s.Effects)
	assert.Equal(t, 1, s.Edges)
}
