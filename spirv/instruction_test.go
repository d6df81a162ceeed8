package spirv

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInstructionStringOperand(t *testing.T) {
	tests := []struct {
		in   string
		want []uint32
	}{
		{"", []uint32{0}},
		{"a", []uint32{0x61}},
		{"abc", []uint32{0x00636261}},
		{"abcd", []uint32{0x64636261, 0}},
		{"hello", []uint32{0x6c6c6568, 0x6f}},
	}

	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			inst := NewInstruction(NoResult, NoType, OpSourceExtension)
			inst.AddStringOperand(tc.in)

			got := make([]uint32, inst.NumOperands())
			for i := range got {
				got[i] = inst.ImmediateOperand(i)
			}

			assert.Equal(t, tc.want, got)

			s, n := LiteralString(got)
			assert.Equal(t, tc.in, s)
			assert.Equal(t, len(got), n)
		})
	}
}

func TestInstructionEncode(t *testing.T) {
	inst := NewInstruction(5, NoType, OpTypeInt)
	inst.AddImmediateOperand(32)
	inst.AddImmediateOperand(1)

	assert.Equal(t, 4, inst.WordCount())
	assert.Equal(t, []uint32{4<<16 | uint32(OpTypeInt), 5, 32, 1}, inst.Encode(nil))

	load := NewInstruction(9, 3, OpLoad)
	load.AddIDOperand(7)

	assert.Equal(t, []uint32{4<<16 | uint32(OpLoad), 3, 9, 7}, load.Encode(nil))

	store := NewInstruction(NoResult, NoType, OpStore)
	store.AddIDOperand(7)
	store.AddIDOperand(9)

	assert.Equal(t, []uint32{3<<16 | uint32(OpStore), 7, 9}, store.Encode([]uint32{}))
}

func TestInstructionUnknownOpcode(t *testing.T) {
	op := OpCode(9999)

	require.False(t, op.Known())
	assert.Equal(t, "Op(9999)", op.String())

	inst := NewInstruction(7, 3, op)
	assert.Equal(t, 3, inst.WordCount())
	assert.Equal(t, []uint32{3<<16 | 9999, 3, 7}, inst.Encode(nil))

	bare := NewInstruction(NoResult, NoType, op)
	assert.Equal(t, 1, bare.WordCount())
}

func TestInstructionLayoutPanics(t *testing.T) {
	assert.Panics(t, func() { NewInstruction(NoResult, NoType, OpTypeInt) })
	assert.Panics(t, func() { NewInstruction(5, NoType, OpLoad) })
	assert.Panics(t, func() { NewInstruction(5, NoType, OpStore) })

	inst := NewInstruction(NoResult, NoType, OpStore)
	assert.Panics(t, func() { inst.AddIDOperand(NoResult) })

	inst.AddImmediateOperand(3)
	assert.Panics(t, func() { inst.IDOperand(0) })

	inst.SetIDOperand(0, 4)
	assert.Equal(t, ID(4), inst.IDOperand(0))
	assert.Panics(t, func() { inst.ImmediateOperand(0) })
}

func TestOpCodeClasses(t *testing.T) {
	tests := []struct {
		op    OpCode
		class OpClass
	}{
		{OpTypeFloat, ClassType},
		{OpConstantComposite, ClassConstant},
		{OpSpecConstantOp, ClassConstant},
		{OpBranch, ClassTerminator},
		{OpReturnValue, ClassTerminator},
		{OpKill, ClassTerminator},
		{OpLoopMerge, ClassControlFlow},
		{OpDecorate, ClassAnnotation},
		{OpImageSampleImplicitLod, ClassImage},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.class, tc.op.Class(), "%v", tc.op)
	}

	assert.True(t, OpTypeVector.IsType())
	assert.True(t, OpConstantNull.IsConstant())
	assert.True(t, OpSwitch.IsTerminator())
	assert.False(t, OpSelectionMerge.IsTerminator())
	assert.True(t, OpSpecConstantTrue.IsSpecConstant())
	assert.False(t, OpConstantTrue.IsSpecConstant())
	assert.True(t, OpDecorateString.IsDecoration())
	assert.False(t, OpMemberDecorate.IsDecoration())
	assert.Equal(t, "OpTypeInt", OpTypeInt.String())
}
