package main

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/gogpu/spvbuilder/spirv"
)

func TestDisassembleFilesKeepsOrder(t *testing.T) {
	var paths []string

	for i := range 5 {
		b := buildShader()
		for j := range i {
			b.StringID(fmt.Sprintf("s%d", j))
		}
		paths = append(paths, writeFile(t, fmt.Sprintf("m%d.spv", i), b.DumpBytes()))
	}

	cfg := defaultConfig()
	cfg.Jobs = 2

	outs, err := disassembleFiles(context.Background(), paths, cfg, false)
	require.NoError(t, err)
	require.Len(t, outs, len(paths))

	for i, out := range outs {
		assert.Equal(t, i, strings.Count(string(out), "OpString"), "file %d", i)
	}
}

func TestDisassembleFilesErrors(t *testing.T) {
	good := writeFile(t, "good.spv", buildShader().DumpBytes())
	bad := writeFile(t, "bad.spv", []byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16, 17, 18, 19, 20})

	_, err := disassembleFiles(context.Background(), []string{good, bad}, defaultConfig(), false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad magic")

	_, err = disassembleFiles(context.Background(), []string{good + ".missing"}, defaultConfig(), false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read")

	outs, err := disassembleFiles(context.Background(), nil, defaultConfig(), false)
	assert.NoError(t, err)
	assert.Empty(t, outs)
}

func TestRenderMsgpack(t *testing.T) {
	data := buildShader().DumpBytes()

	bin, err := spirv.ParseBytes(data)
	require.NoError(t, err)

	cfg := defaultConfig()
	cfg.Format = "msgpack"

	out, err := render(bin, cfg, false)
	require.NoError(t, err)

	var decoded spirv.Binary
	require.NoError(t, msgpack.NewDecoder(bytes.NewReader(out)).Decode(&decoded))

	assert.Equal(t, bin.Header, decoded.Header)
	require.Len(t, decoded.Instructions, len(bin.Instructions))

	for i := range bin.Instructions {
		assert.Equal(t, bin.Instructions[i].Opcode, decoded.Instructions[i].Opcode)
		assert.Equal(t, bin.Instructions[i].ResultID, decoded.Instructions[i].ResultID)
		assert.Equal(t, bin.Instructions[i].Offset, decoded.Instructions[i].Offset)
	}
}

func TestRenderUnknownFormat(t *testing.T) {
	cfg := defaultConfig()
	cfg.Format = "yaml"

	_, err := render(&spirv.Binary{}, cfg, false)
	assert.Error(t, err)
}

func TestRunDisassembleMultipleFiles(t *testing.T) {
	a := writeFile(t, "a.spv", buildShader().DumpBytes())
	b := writeFile(t, "b.spv", buildShader().DumpBytes())

	var out bytes.Buffer

	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"--color", "off", "--header=false", a, b})
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
		for _, name := range []string{"color", "header"} {
			f := rootCmd.Flags().Lookup(name)
			_ = f.Value.Set(f.DefValue)
			f.Changed = false
		}
	})

	require.NoError(t, rootCmd.Execute())

	text := out.String()
	assert.True(t, strings.HasPrefix(text, "; "+a+"\n"))
	assert.Contains(t, text, "\n\n; "+b+"\n")
	assert.Equal(t, 2, strings.Count(text, "OpFunctionEnd"))
	assert.NotContains(t, text, "; SPIR-V")
}
