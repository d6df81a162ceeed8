package main

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"tlog.app/go/tlog"

	"github.com/gogpu/spvbuilder/spirv"
)

func TestTexturedQuad(t *testing.T) {
	tests := []struct {
		name string
		opts shaderOptions
		op   spirv.OpCode
		mask []uint32
	}{
		{"implicit", shaderOptions{}, spirv.OpImageSampleImplicitLod, nil},
		{"explicit", shaderOptions{ExplicitLod: true, Lod: 2}, spirv.OpImageSampleExplicitLod, []uint32{uint32(spirv.ImageOperandsLod)}},
		{"gather", shaderOptions{Gather: true}, spirv.OpImageGather, nil},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := buildTexturedQuad(tc.opts, tlog.Span{})

			bin, err := spirv.ParseBytes(b.DumpBytes())
			require.NoError(t, err)

			samples := bin.ByOpCode(tc.op)
			require.Len(t, samples, 1)

			ops := samples[0].Operands
			if tc.mask != nil {
				require.Len(t, ops, 4)
				assert.Equal(t, tc.mask[0], ops[2])
			}

			assert.Len(t, bin.ByOpCode(spirv.OpSampledImage), 1)
			assert.Len(t, bin.ByOpCode(spirv.OpStore), 1)
			assert.Len(t, bin.ByOpCode(spirv.OpDecorate), 6)
			assert.Empty(t, b.Logger().Messages())
		})
	}
}

func TestRunWritesModule(t *testing.T) {
	out := filepath.Join(t.TempDir(), "quad.spv")

	cmd := newCommand()
	cmd.SetOut(io.Discard)
	cmd.SetArgs([]string{"-o", out, "--lod", "1"})
	require.NoError(t, cmd.Execute())

	data, err := os.ReadFile(out)
	require.NoError(t, err)

	bin, err := spirv.ParseBytes(data)
	require.NoError(t, err)

	assert.Len(t, bin.ByOpCode(spirv.OpImageSampleExplicitLod), 1)
	assert.Equal(t, uint32(spirv.MagicNumber), bin.Header.Magic)
}
