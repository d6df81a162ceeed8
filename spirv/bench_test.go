package spirv

import (
	"testing"
)

func BenchmarkBuildAndDump(b *testing.B) {
	b.ReportAllocs()

	var words int
	for b.Loop() {
		sb := buildFullModule()
		words = len(sb.Dump())
	}

	b.ReportMetric(float64(words), "words")
}

func BenchmarkTypeInterning(b *testing.B) {
	sb := newTestBuilder()
	f32 := sb.MakeFloatType(32)

	b.ReportAllocs()

	for b.Loop() {
		for n := 2; n <= 4; n++ {
			v := sb.MakeVectorType(f32, n)
			sb.MakeMatrixType(f32, n, n)
			sb.MakePointer(StorageClassFunction, v)
		}
	}
}

func BenchmarkAccessChainStore(b *testing.B) {
	sb, _ := newFragmentBuilder()

	f32 := sb.MakeFloatType(32)
	v4 := sb.MakeVectorType(f32, 4)
	v := sb.CreateVariable(StorageClassPrivate, v4, "v", NoResult)
	one := sb.MakeFloatConstant(1, false)
	pair := sb.MakeCompositeConstant(sb.MakeVectorType(f32, 2), []ID{one, one}, false)

	b.ReportAllocs()

	for b.Loop() {
		sb.ClearAccessChain()
		sb.SetAccessChainLValue(v)
		sb.AccessChainPushSwizzle([]uint32{2, 0}, v4)
		sb.AccessChainStore(pair)
	}
}

func BenchmarkParse(b *testing.B) {
	data := buildFullModule().DumpBytes()

	b.ReportAllocs()
	b.SetBytes(int64(len(data)))

	for b.Loop() {
		if _, err := ParseBytes(data); err != nil {
			b.Fatal(err)
		}
	}
}
