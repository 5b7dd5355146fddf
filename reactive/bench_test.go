package reactive_test

import (
	"fmt"
	"testing"

	"github.com/delaneyj/pozitron/reactive"
)

func BenchmarkSignalWrite(b *testing.B) {
	rs := reactive.NewSystem()
	_, set := reactive.CreateSignal(rs, 0)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		set(i)
	}
}

func BenchmarkPropagate(b *testing.B) {
	for _, w := range []int{1, 10, 100} {
		for _, h := range []int{1, 10, 100} {
			b.Run(fmt.Sprintf("%dx%d", w, h), func(b *testing.B) {
				rs := reactive.NewSystem()
				src, set := reactive.CreateSignal(rs, 0)
				for i := 0; i < w; i++ {
					last := src
					for j := 0; j < h; j++ {
						prev := last
						last = reactive.CreateMemo(rs, func() int { return prev() + 1 })
					}
					tail := last
					reactive.CreateEffect(rs, func() error {
						tail()
						return nil
					})
				}
				b.ReportAllocs()
				b.ResetTimer()
				for i := 0; i < b.N; i++ {
					set(i + 1)
				}
			})
		}
	}
}

func BenchmarkDynamicDeps(b *testing.B) {
	rs := reactive.NewSystem()
	cond, setCond := reactive.CreateSignal(rs, true)
	x, _ := reactive.CreateSignal(rs, 1)
	y, _ := reactive.CreateSignal(rs, 2)
	reactive.CreateEffect(rs, func() error {
		if cond() {
			x()
		} else {
			y()
		}
		return nil
	})
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		setCond(i%2 == 0)
	}
}
