package spirv

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRoundTrip(t *testing.T) {
	b := buildFullModule()
	words := b.Dump()

	bin, err := Parse(words)
	require.NoError(t, err)

	assert.Equal(t, Header{MagicNumber, Version1_3.Word(), GeneratorID, b.Bound(), 0}, bin.Header)

	// offsets walk the whole module
	off := 5
	for _, inst := range bin.Instructions {
		assert.Equal(t, off, inst.Offset)
		off += int(words[off] >> 16)
	}
	assert.Equal(t, len(words), off)

	fnInst := bin.ByOpCode(OpFunction)
	require.Len(t, fnInst, 1)
	assert.Equal(t, b.EntryPointFunction().ID(), fnInst[0].ResultID)
	assert.Equal(t, b.MakeVoidType(), fnInst[0].TypeID)
}

func TestParseBytesByteOrder(t *testing.T) {
	b := buildFullModule()
	words := b.Dump()

	le := b.DumpBytes()

	be := make([]byte, 0, len(le))
	for _, w := range words {
		be = binary.BigEndian.AppendUint32(be, w)
	}

	fromLE, err := ParseBytes(le)
	require.NoError(t, err)

	fromBE, err := ParseBytes(be)
	require.NoError(t, err)

	assert.Equal(t, fromLE, fromBE)
}

func TestParseErrors(t *testing.T) {
	header := []uint32{MagicNumber, 0x00010300, 0, 10, 0}

	tests := []struct {
		name  string
		words []uint32
		data  []byte
		want  string
	}{
		{name: "unaligned", data: make([]byte, 21), want: "multiple of 4"},
		{name: "short bytes", data: make([]byte, 16), want: "too short"},
		{name: "short words", words: []uint32{MagicNumber}, want: "too short"},
		{name: "magic", words: []uint32{1, 2, 3, 4, 5}, want: "bad magic"},
		{name: "zero word count", words: append(header[:5:5], uint32(OpNop)), want: "word 5"},
		{name: "past end", words: append(header[:5:5], 5<<16|uint32(OpName), 1), want: "past end"},
		{name: "missing result", words: append(header[:5:5], 1<<16|uint32(OpTypeInt)), want: "missing result id"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var err error
			if tc.data != nil {
				_, err = ParseBytes(tc.data)
			} else {
				_, err = Parse(tc.words)
			}

			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.want)
		})
	}
}

func TestParseUnknownOpcode(t *testing.T) {
	words := []uint32{MagicNumber, 0x00010300, 0, 10, 0, 3<<16 | 9999, 7, 8}

	bin, err := Parse(words)
	require.NoError(t, err)
	require.Len(t, bin.Instructions, 1)

	inst := bin.Instructions[0]
	assert.Equal(t, OpCode(9999), inst.Opcode)
	assert.Equal(t, NoResult, inst.ResultID)
	assert.Equal(t, []uint32{7, 8}, inst.Operands)
}

func TestLiteralStringUnterminated(t *testing.T) {
	s, n := LiteralString([]uint32{0x64636261})
	assert.Equal(t, "abcd", s)
	assert.Equal(t, 1, n)

	s, n = LiteralString(nil)
	assert.Equal(t, "", s)
	assert.Equal(t, 0, n)
}
