package spirv

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"tlog.app/go/tlog"
)

func TestBuildLoggerOncePerFeature(t *testing.T) {
	l := NewBuildLogger(tlog.Span{})

	l.Missing("float16 matrices")
	l.Missing("float16 matrices")
	l.TBD("float16 matrices")
	l.TBD("float16 matrices")
	l.Missing("cube array queries")

	assert.Equal(t, []string{
		"TBD functionality: float16 matrices",
		"Missing functionality: float16 matrices",
		"Missing functionality: cube array queries",
	}, l.Messages())
}

func TestBuilderReportsSoftFailuresOnce(t *testing.T) {
	b, _ := newFragmentBuilder()

	f32 := b.MakeFloatType(32)
	img := b.MakeImageType(f32, Dim2D, false, false, false, 1, ImageFormatUnknown)
	v := b.CreateVariable(StorageClassUniformConstant, img, "img", NoResult)
	image := b.CreateLoad(v, MemoryAccessNone, 0)

	for range 3 {
		b.CreateTextureQueryCall(OpImageQueryFormat, TextureParameters{Sampler: image}, false)
		b.CreateTextureQueryCall(OpImageRead, TextureParameters{Sampler: image}, false)
	}

	assert.Equal(t, []string{
		"TBD functionality: texture query OpImageQueryFormat",
		"Missing functionality: texture query OpImageRead",
	}, b.Logger().Messages())
}

func TestBuildLoggerEmpty(t *testing.T) {
	b := newTestBuilder()

	assert.Empty(t, b.Logger().Messages())
}
