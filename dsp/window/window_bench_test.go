package window

import "testing"

func BenchmarkGenerate(b *testing.B) {
	for _, typ := range []Type{TypeHann, TypeKaiser} {
		b.Run(typ.String(), func(b *testing.B) {
			for b.Loop() {
				_ = Generate(typ, 1024)
			}
		})
	}
}

func BenchmarkAnalyze(b *testing.B) {
	w := Generate(TypeBlackman, 256)

	for b.Loop() {
		_, _ = Analyze(w)
	}
}
