package spirv

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTypeInterning(t *testing.T) {
	b := newTestBuilder()

	i32 := b.MakeIntType(32)
	u32 := b.MakeUintType(32)
	f32 := b.MakeFloatType(32)

	assert.Equal(t, i32, b.MakeIntType(32))
	assert.Equal(t, u32, b.MakeIntegerType(32, false))
	assert.NotEqual(t, i32, u32)
	assert.Equal(t, b.MakeVoidType(), b.MakeVoidType())
	assert.Equal(t, b.MakeBoolType(), b.MakeBoolType())

	v4 := b.MakeVectorType(f32, 4)
	assert.Equal(t, v4, b.MakeVectorType(f32, 4))
	assert.NotEqual(t, v4, b.MakeVectorType(f32, 3))

	m4 := b.MakeMatrixType(f32, 4, 4)
	assert.Equal(t, m4, b.MakeMatrixType(f32, 4, 4))
	assert.NotEqual(t, m4, b.MakeMatrixType(f32, 3, 4))
	assert.Equal(t, v4, b.ContainedTypeID(m4))

	p := b.MakePointer(StorageClassFunction, v4)
	assert.Equal(t, p, b.MakePointer(StorageClassFunction, v4))
	assert.NotEqual(t, p, b.MakePointer(StorageClassPrivate, v4))
	assert.Equal(t, StorageClassFunction, b.Module().StorageClass(p))

	fnType := b.MakeFunctionType(b.MakeVoidType(), []ID{f32, i32})
	assert.Equal(t, fnType, b.MakeFunctionType(b.MakeVoidType(), []ID{f32, i32}))
	assert.NotEqual(t, fnType, b.MakeFunctionType(b.MakeVoidType(), []ID{i32, f32}))

	img := b.MakeImageType(f32, Dim2D, false, false, false, 1, ImageFormatUnknown)
	assert.Equal(t, img, b.MakeImageType(f32, Dim2D, false, false, false, 1, ImageFormatUnknown))
	assert.NotEqual(t, img, b.MakeImageType(f32, Dim2D, true, false, false, 1, ImageFormatUnknown))
	assert.Equal(t, b.MakeSampledImageType(img), b.MakeSampledImageType(img))
}

func TestStructTypesAreNeverShared(t *testing.T) {
	b := newTestBuilder()

	f32 := b.MakeFloatType(32)
	i32 := b.MakeIntType(32)

	s1 := b.MakeStructType([]ID{f32, i32}, "A")
	s2 := b.MakeStructType([]ID{f32, i32}, "A")
	assert.NotEqual(t, s1, s2)

	// a result struct reuses whatever matching struct exists
	assert.Equal(t, s1, b.MakeStructResultType(f32, i32))

	r := b.MakeStructResultType(i32, f32)
	assert.NotEqual(t, s1, r)
	assert.Equal(t, r, b.MakeStructResultType(i32, f32))
	assert.Equal(t, 2, b.NumTypeConstituents(r))
	assert.Equal(t, f32, b.ContainedTypeIDAt(r, 1))
}

func TestArrayTypeStride(t *testing.T) {
	b := newTestBuilder()

	f32 := b.MakeFloatType(32)
	size := b.MakeUintConstant(4, false)

	a := b.MakeArrayType(f32, size, 0)
	assert.Equal(t, a, b.MakeArrayType(f32, size, 0))
	assert.Equal(t, 4, b.NumTypeConstituents(a))

	s1 := b.MakeArrayType(f32, size, 16)
	s2 := b.MakeArrayType(f32, size, 16)
	assert.NotEqual(t, a, s1)
	assert.NotEqual(t, s1, s2)

	bin := dumpAndParse(t, b)

	var strides []ID
	for _, dec := range bin.ByOpCode(OpDecorate) {
		if Decoration(dec.Operands[1]) == DecorationArrayStride {
			assert.Equal(t, uint32(16), dec.Operands[2])
			strides = append(strides, ID(dec.Operands[0]))
		}
	}

	assert.Equal(t, []ID{s1, s2}, strides)
}

func TestArrayTypeStrideFirst(t *testing.T) {
	b := newTestBuilder()

	f32 := b.MakeFloatType(32)
	size := b.MakeUintConstant(4, false)

	strided := b.MakeArrayType(f32, size, 16)
	plain := b.MakeArrayType(f32, size, 0)

	assert.NotEqual(t, strided, plain)
	assert.Equal(t, plain, b.MakeArrayType(f32, size, 0))
	assert.True(t, b.IsArrayType(strided))

	bin := dumpAndParse(t, b)

	assert.Equal(t, []ID{strided}, decorationTargets(bin))
	assert.Len(t, bin.ByOpCode(OpTypeArray), 2)
}

func TestScalarTypeCapabilities(t *testing.T) {
	tests := []struct {
		name string
		make func(b *Builder) ID
		cap  Capability
	}{
		{"int8", func(b *Builder) ID { return b.MakeIntType(8) }, CapabilityInt8},
		{"uint16", func(b *Builder) ID { return b.MakeUintType(16) }, CapabilityInt16},
		{"int64", func(b *Builder) ID { return b.MakeIntType(64) }, CapabilityInt64},
		{"half", func(b *Builder) ID { return b.MakeFloatType(16) }, CapabilityFloat16},
		{"double", func(b *Builder) ID { return b.MakeFloatType(64) }, CapabilityFloat64},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := newTestBuilder()
			tc.make(b)

			assert.True(t, b.HasCapability(tc.cap))
			assert.Len(t, b.capabilities, 1)
		})
	}

	b := newTestBuilder()
	b.MakeIntType(32)
	b.MakeFloatType(32)
	assert.Empty(t, b.capabilities)
}

func TestImageTypeCapabilities(t *testing.T) {
	tests := []struct {
		name    string
		dim     Dim
		arrayed bool
		ms      bool
		sampled uint32
		want    []Capability
	}{
		{"texture2D", Dim2D, false, false, 1, nil},
		{"texture1D", Dim1D, false, false, 1, []Capability{CapabilitySampled1D}},
		{"image1D", Dim1D, false, false, 2, []Capability{CapabilityImage1D}},
		{"textureBuffer", DimBuffer, false, false, 1, []Capability{CapabilitySampledBuffer}},
		{"imageBuffer", DimBuffer, false, false, 2, []Capability{CapabilityImageBuffer}},
		{"textureCube", DimCube, false, false, 1, nil},
		{"textureCubeArray", DimCube, true, false, 1, []Capability{CapabilitySampledCubeArray}},
		{"imageCubeArray", DimCube, true, false, 2, []Capability{CapabilityImageCubeArray}},
		{"texture2DRect", DimRect, false, false, 1, []Capability{CapabilitySampledRect}},
		{"image2DRect", DimRect, false, false, 2, []Capability{CapabilityImageRect}},
		{"subpassInput", DimSubpassData, false, false, 2, []Capability{CapabilityInputAttachment}},
		{"subpassInputMS", DimSubpassData, false, true, 2, []Capability{CapabilityInputAttachment}},
		{"image2DMS", Dim2D, false, true, 2, []Capability{CapabilityStorageImageMultisample}},
		{"image2DMSArray", Dim2D, true, true, 2, []Capability{CapabilityStorageImageMultisample, CapabilityImageMSArray}},
		{"texture2DMS", Dim2D, false, true, 1, nil},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := newTestBuilder()

			f32 := b.MakeFloatType(32)
			img := b.MakeImageType(f32, tc.dim, false, tc.arrayed, tc.ms, tc.sampled, ImageFormatUnknown)

			assert.Equal(t, tc.dim, b.TypeDimensionality(img))
			assert.Equal(t, tc.arrayed, b.IsArrayedImageType(img))

			got := make([]Capability, 0, len(b.capabilities))
			for c := range b.capabilities {
				got = append(got, c)
			}

			assert.ElementsMatch(t, tc.want, got)
		})
	}
}

func TestTypeQueries(t *testing.T) {
	b := newTestBuilder()

	f32 := b.MakeFloatType(32)
	u32 := b.MakeUintType(32)
	v3 := b.MakeVectorType(f32, 3)
	m := b.MakeMatrixType(f32, 2, 3)
	arr := b.MakeArrayType(m, b.MakeUintConstant(5, false), 0)
	rt := b.MakeRuntimeArray(v3)
	p := b.MakePointer(StorageClassStorageBuffer, arr)
	s := b.MakeStructType([]ID{u32, rt}, "Buf")

	assert.Equal(t, f32, b.ScalarTypeID(p))
	assert.Equal(t, f32, b.ScalarTypeID(rt))
	assert.Equal(t, OpTypeFloat, b.MostBasicTypeClass(p))
	assert.Equal(t, 32, b.ScalarTypeWidth(v3))

	assert.Equal(t, 3, b.NumTypeConstituents(v3))
	assert.Equal(t, 2, b.NumTypeConstituents(m))
	assert.Equal(t, 5, b.NumTypeConstituents(arr))
	assert.Equal(t, 2, b.NumTypeConstituents(s))
	assert.Equal(t, rt, b.ContainedTypeIDAt(s, 1))
	assert.Equal(t, arr, b.ContainedTypeID(p))

	assert.True(t, b.IsUintType(u32))
	assert.False(t, b.IsUintType(b.MakeIntType(32)))
	assert.True(t, b.IsScalarType(f32))
	assert.False(t, b.IsScalarType(v3))
	assert.True(t, b.IsAggregateType(arr))
	assert.True(t, b.IsAggregateType(s))
	assert.False(t, b.IsAggregateType(m))
	assert.True(t, b.IsMatrixType(m))
	assert.True(t, b.IsPointerType(p))

	assert.Panics(t, func() { b.MakeMatrixType(f32, 5, 4) })
	assert.Panics(t, func() { b.ScalarTypeID(s) })
	assert.Panics(t, func() { b.NumTypeConstituents(b.MakeVoidType()) })
}

func TestTypeIDsAreDense(t *testing.T) {
	b := newTestBuilder()

	ids := []ID{
		b.MakeVoidType(),
		b.MakeBoolType(),
		b.MakeFloatType(32),
		b.MakeVectorType(b.MakeFloatType(32), 4),
	}

	require.Equal(t, []ID{1, 2, 3, 4}, ids)
	assert.Equal(t, uint32(5), b.Bound())
}
