package spirv

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpecConstantOpMode(t *testing.T) {
	b, _ := newFragmentBuilder()

	i32 := b.MakeIntType(32)
	v2 := b.MakeVectorType(i32, 2)

	x := b.MakeIntConstant(3, true)
	y := b.MakeIntConstant(4, true)

	before := len(b.BuildPoint().Instructions())

	b.SetToSpecConstCodeGenMode()
	require.True(t, b.IsInSpecConstCodeGenMode())

	sum := b.CreateBinOp(OpIAdd, i32, x, y)
	vec := b.CreateCompositeConstruct(v2, []ID{sum, x})
	second := b.CreateCompositeExtract(vec, i32, 1)
	swapped := b.CreateRvalueSwizzle(v2, vec, []uint32{1, 0})

	b.SetToNormalCodeGenMode()
	require.False(t, b.IsInSpecConstCodeGenMode())

	assert.Len(t, b.BuildPoint().Instructions(), before)
	assert.Equal(t, OpSpecConstantComposite, b.OpCodeOf(vec))

	tests := []struct {
		name     string
		id       ID
		op       OpCode
		operands []uint32
	}{
		{"binary", sum, OpIAdd, []uint32{uint32(x), uint32(y)}},
		{"extract", second, OpCompositeExtract, []uint32{uint32(vec), 1}},
		{"swizzle", swapped, OpVectorShuffle, []uint32{uint32(vec), uint32(vec), 1, 0}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			inst := b.Instruction(tc.id)
			require.Equal(t, OpSpecConstantOp, inst.OpCode())
			assert.True(t, b.IsSpecConstant(tc.id))
			assert.Equal(t, tc.op, OpCode(inst.ImmediateOperand(0)))

			got := make([]uint32, inst.NumOperands()-1)
			for i := range got {
				got[i] = inst.Operand(i + 1)
			}
			assert.Equal(t, tc.operands, got)
		})
	}

	plain := b.CreateBinOp(OpIAdd, i32, x, y)
	assert.Equal(t, OpIAdd, b.OpCodeOf(plain))
	assert.Len(t, b.BuildPoint().Instructions(), before+1)

	bin := dumpAndParse(t, b)
	assert.Len(t, bin.ByOpCode(OpSpecConstantOp), 3)
	assert.Len(t, bin.ByOpCode(OpSpecConstantComposite), 1)
}

func TestCreateCompositeCompare(t *testing.T) {
	tests := []struct {
		name  string
		typ   func(b *Builder) ID
		equal bool
		want  []OpCode
	}{
		{
			name:  "float scalar",
			typ:   func(b *Builder) ID { return b.MakeFloatType(32) },
			equal: true,
			want:  []OpCode{OpFOrdEqual},
		},
		{
			name: "int scalar",
			typ:  func(b *Builder) ID { return b.MakeIntType(32) },
			want: []OpCode{OpINotEqual},
		},
		{
			name:  "float vector",
			typ:   func(b *Builder) ID { return b.MakeVectorType(b.MakeFloatType(32), 3) },
			equal: true,
			want:  []OpCode{OpFOrdEqual, OpAll},
		},
		{
			name: "bool vector",
			typ:  func(b *Builder) ID { return b.MakeVectorType(b.MakeBoolType(), 2) },
			want: []OpCode{OpLogicalNotEqual, OpAny},
		},
		{
			name:  "matrix",
			typ:   func(b *Builder) ID { return b.MakeMatrixType(b.MakeFloatType(32), 2, 2) },
			equal: true,
			want: []OpCode{
				OpCompositeExtract, OpCompositeExtract, OpFOrdEqual, OpAll,
				OpCompositeExtract, OpCompositeExtract, OpFOrdEqual, OpAll,
				OpLogicalAnd,
			},
		},
		{
			name: "struct",
			typ: func(b *Builder) ID {
				f32 := b.MakeFloatType(32)
				return b.MakeStructType([]ID{b.MakeVectorType(f32, 2), b.MakeUintType(32)}, "S")
			},
			want: []OpCode{
				OpCompositeExtract, OpCompositeExtract, OpFUnordNotEqual, OpAny,
				OpCompositeExtract, OpCompositeExtract, OpINotEqual,
				OpLogicalOr,
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b, _ := newFragmentBuilder()

			typ := tc.typ(b)
			l := b.CreateLoad(b.CreateVariable(StorageClassFunction, typ, "l", NoResult), MemoryAccessNone, 0)
			r := b.CreateLoad(b.CreateVariable(StorageClassFunction, typ, "r", NoResult), MemoryAccessNone, 0)

			res := b.CreateCompositeCompare(l, r, tc.equal)

			assert.Equal(t, b.MakeBoolType(), b.TypeOf(res))
			assert.Equal(t, tc.want, opcodes(lastInstructions(t, b, len(tc.want))))
			assert.Equal(t, res, b.BuildPoint().Instructions()[len(b.BuildPoint().Instructions())-1].ResultID())
		})
	}
}

func TestPromoteScalar(t *testing.T) {
	b, _ := newFragmentBuilder()

	f32 := b.MakeFloatType(32)
	v3 := b.MakeVectorType(f32, 3)

	s := b.CreateLoad(b.CreateVariable(StorageClassFunction, f32, "s", NoResult), MemoryAccessNone, 0)
	v := b.CreateLoad(b.CreateVariable(StorageClassFunction, v3, "v", NoResult), MemoryAccessNone, 0)

	l, r := b.PromoteScalar(s, v)
	assert.Equal(t, v, r)
	require.NotEqual(t, s, l)

	smear := b.Instruction(l)
	assert.Equal(t, OpCompositeConstruct, smear.OpCode())
	assert.Equal(t, v3, smear.TypeID())
	assert.Equal(t, 3, smear.NumOperands())
	for i := range 3 {
		assert.Equal(t, s, smear.IDOperand(i))
	}

	l, r = b.PromoteScalar(v, s)
	assert.Equal(t, v, l)
	assert.Equal(t, v3, b.TypeOf(r))

	n := len(b.BuildPoint().Instructions())

	l, r = b.PromoteScalar(v, v)
	assert.Equal(t, v, l)
	assert.Equal(t, v, r)

	assert.Equal(t, s, b.SmearScalar(s, f32))
	assert.Len(t, b.BuildPoint().Instructions(), n)
}

func TestSmearScalarSpecConstant(t *testing.T) {
	b := newTestBuilder()

	f32 := b.MakeFloatType(32)
	v4 := b.MakeVectorType(f32, 4)
	one := b.MakeFloatConstant(1, true)

	b.SetToSpecConstCodeGenMode()
	vec := b.SmearScalar(one, v4)
	b.SetToNormalCodeGenMode()

	assert.Equal(t, OpSpecConstantComposite, b.OpCodeOf(vec))
	assert.Equal(t, 4, b.Instruction(vec).NumOperands())
}

func TestBarriers(t *testing.T) {
	b, _ := newFragmentBuilder()

	sem := MemorySemanticsAcquireRelease | MemorySemanticsWorkgroupMemory

	b.CreateControlBarrier(ScopeWorkgroup, ScopeWorkgroup, sem)
	b.CreateMemoryBarrier(ScopeDevice, sem)

	insts := lastInstructions(t, b, 2)

	tests := []struct {
		name string
		inst *Instruction
		op   OpCode
		want []uint32
	}{
		{"control", insts[0], OpControlBarrier, []uint32{uint32(ScopeWorkgroup), uint32(ScopeWorkgroup), uint32(sem)}},
		{"memory", insts[1], OpMemoryBarrier, []uint32{uint32(ScopeDevice), uint32(sem)}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.op, tc.inst.OpCode())
			assert.Equal(t, NoResult, tc.inst.ResultID())
			require.Equal(t, len(tc.want), tc.inst.NumOperands())

			for i, w := range tc.want {
				id := tc.inst.IDOperand(i)
				assert.True(t, b.IsConstantScalar(id))
				assert.Equal(t, w, b.ConstantScalar(id))
			}
		})
	}
}

func TestCreateArrayLength(t *testing.T) {
	b, _ := newFragmentBuilder()

	u32 := b.MakeUintType(32)
	data := b.MakeRuntimeArray(b.MakeFloatType(32))
	block := b.MakeStructType([]ID{u32, data}, "Buffer")

	buf := b.CreateVariable(StorageClassStorageBuffer, block, "buf", NoResult)

	n := b.CreateArrayLength(buf, 1)

	inst := b.Instruction(n)
	assert.Equal(t, OpArrayLength, inst.OpCode())
	assert.Equal(t, u32, inst.TypeID())
	assert.Equal(t, buf, inst.IDOperand(0))
	assert.Equal(t, uint32(1), inst.ImmediateOperand(1))
}

func TestAddDecorationID(t *testing.T) {
	b, _ := newFragmentBuilder()

	u32 := b.MakeUintType(32)
	data := b.MakeRuntimeArray(b.MakeFloatType(32))
	buf := b.CreateVariable(StorageClassStorageBuffer, b.MakeStructType([]ID{data}, "Buffer"), "buf", NoResult)

	align := b.MakeUintConstant(16, false)
	limit := b.MakeUintConstant(256, true)

	b.AddDecorationID(buf, DecorationAlignmentID, align)
	b.AddDecorationID(buf, DecorationMaxByteOffsetID, limit)

	bin := dumpAndParse(t, b)

	decs := bin.ByOpCode(OpDecorateID)
	require.Len(t, decs, 2)

	assert.Equal(t, []uint32{uint32(buf), uint32(DecorationAlignmentID), uint32(align)}, decs[0].Operands)
	assert.Equal(t, []uint32{uint32(buf), uint32(DecorationMaxByteOffsetID), uint32(limit)}, decs[1].Operands)
	assert.Equal(t, u32, b.TypeOf(limit))
}
