package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"tlog.app/go/tlog"

	"github.com/gogpu/spvbuilder/spirv"
)

func buildShader() *spirv.Builder {
	opts := spirv.DefaultOptions()
	opts.Logger = tlog.Span{}

	b := spirv.NewBuilder(opts)
	b.AddCapability(spirv.CapabilityShader)
	b.SetMemoryModel(spirv.AddressingModelLogical, spirv.MemoryModelGLSL450)
	b.SetSource(spirv.SourceLanguageGLSL, 450)

	fn := b.MakeEntryPoint("main")

	f32 := b.MakeFloatType(32)
	vec4 := b.MakeVectorType(f32, 4)

	out := b.CreateVariable(spirv.StorageClassOutput, vec4, "color", spirv.NoResult)
	b.AddDecoration(out, spirv.DecorationLocation, 0)

	pos := b.CreateVariable(spirv.StorageClassInput, vec4, "", spirv.NoResult)
	b.AddDecoration(pos, spirv.DecorationBuiltIn, uint32(spirv.BuiltInFragCoord))

	ep := b.AddEntryPoint(spirv.ExecutionModelFragment, fn, "main")
	ep.AddIDOperand(out)
	ep.AddIDOperand(pos)
	b.AddExecutionMode(fn, spirv.ExecutionModeOriginUpperLeft)

	half := b.MakeFloatConstant(1.5, false)
	b.MakeIntConstant(-2, false)
	b.MakeFloat16Constant(0.5, false)

	p := b.CreateLoad(pos, spirv.MemoryAccessNone, 0)
	x := b.CreateCompositeExtract(p, f32, 0)
	y := b.CreateBinOp(spirv.OpFMul, f32, x, half)
	b.CreateStore(b.SmearScalar(y, vec4), out, spirv.MemoryAccessNone, 0)

	b.LeaveFunction()

	return b
}

func disassemble(t *testing.T, b *spirv.Builder, header bool) string {
	t.Helper()

	bin, err := spirv.ParseBytes(b.DumpBytes())
	require.NoError(t, err)

	p := newPrinter(false, header)
	p.module(bin)

	return p.buf.String()
}

func trimmedLines(s string) []string {
	var res []string

	for _, l := range strings.Split(strings.TrimRight(s, "\n"), "\n") {
		res = append(res, strings.TrimSpace(l))
	}

	return res
}

func TestDisassembleShader(t *testing.T) {
	got := trimmedLines(disassemble(t, buildShader(), false))

	assert.Equal(t, []string{
		"OpCapability Shader",
		"OpCapability Float16",
		"OpMemoryModel Logical GLSL450",
		`OpEntryPoint Fragment %3 "main" %8 %10`,
		"OpExecutionMode %3 OriginUpperLeft",
		"OpSource GLSL 450",
		`OpName %3 "main"`,
		`OpName %8 "color"`,
		"OpDecorate %8 Location 0",
		"OpDecorate %10 BuiltIn FragCoord",
		"%1 = OpTypeVoid",
		"%2 = OpTypeFunction %1",
		"%5 = OpTypeFloat 32",
		"%6 = OpTypeVector %5 4",
		"%7 = OpTypePointer Output %6",
		"%8 = OpVariable %7 Output",
		"%9 = OpTypePointer Input %6",
		"%10 = OpVariable %9 Input",
		"%11 = OpConstant %5 1.5",
		"%12 = OpTypeInt 32 1",
		"%13 = OpConstant %12 -2",
		"%14 = OpTypeFloat 16",
		"%15 = OpConstant %14 0.5",
		"%3 = OpFunction %1 None %2",
		"%4 = OpLabel",
		"%16 = OpLoad %6 %10",
		"%17 = OpCompositeExtract %5 %16 0",
		"%18 = OpFMul %5 %17 %11",
		"%19 = OpCompositeConstruct %6 %18 %18 %18 %18",
		"OpStore %8 %19",
		"OpReturn",
		"OpFunctionEnd",
	}, got)
}

func TestDisassembleColumns(t *testing.T) {
	text := disassemble(t, buildShader(), false)
	lines := strings.Split(text, "\n")

	assert.Equal(t, strings.Repeat(" ", 17)+"OpCapability Shader", lines[0])
	assert.Contains(t, lines, strings.Repeat(" ", 12)+"%4 = OpLabel")
	assert.Contains(t, lines, strings.Repeat(" ", 11)+"%10 = OpVariable %9 Input")
}

func TestDisassembleHeader(t *testing.T) {
	b := buildShader()
	got := trimmedLines(disassemble(t, b, true))

	assert.Equal(t, []string{
		"; SPIR-V",
		"; Version: 1.3",
		"; Generator: 0x00000000",
		"; Bound: 20",
		"; Schema: 0",
	}, got[:5])
}

func TestDisassembleOperandLayouts(t *testing.T) {
	tests := []struct {
		name string
		inst spirv.ParsedInstruction
		want string
	}{
		{
			name: "unknown opcode",
			inst: spirv.ParsedInstruction{Opcode: 9999, Operands: []uint32{7, 8}},
			want: "Op(9999) %7 %8",
		},
		{
			name: "unknown enum value",
			inst: spirv.ParsedInstruction{Opcode: spirv.OpCapability, Operands: []uint32{77777}},
			want: "OpCapability 77777",
		},
		{
			name: "switch",
			inst: spirv.ParsedInstruction{Opcode: spirv.OpSwitch, Operands: []uint32{5, 6, 1, 7, 0xFFFFFFFF, 8}},
			want: "OpSwitch %5 %6 1 %7 4294967295 %8",
		},
		{
			name: "image sample with operands",
			inst: spirv.ParsedInstruction{
				Opcode: spirv.OpImageSampleExplicitLod, TypeID: 4, ResultID: 9,
				Operands: []uint32{5, 6, uint32(spirv.ImageOperandsLod), 7},
			},
			want: "%9 = OpImageSampleExplicitLod %4 %5 %6 2 %7",
		},
		{
			name: "dref gather",
			inst: spirv.ParsedInstruction{
				Opcode: spirv.OpImageDrefGather, TypeID: 4, ResultID: 9,
				Operands: []uint32{5, 6, 7},
			},
			want: "%9 = OpImageDrefGather %4 %5 %6 %7",
		},
		{
			name: "linkage",
			inst: spirv.ParsedInstruction{
				Opcode:   spirv.OpDecorate,
				Operands: append([]uint32{3, uint32(spirv.DecorationLinkageAttributes)}, 0x00747865, uint32(spirv.LinkageTypeImport)),
			},
			want: `OpDecorate %3 LinkageAttributes "ext" Import`,
		},
		{
			name: "member decorate",
			inst: spirv.ParsedInstruction{
				Opcode:   spirv.OpMemberDecorate,
				Operands: []uint32{3, 1, uint32(spirv.DecorationOffset), 16},
			},
			want: "OpMemberDecorate %3 1 Offset 16",
		},
		{
			name: "truncated",
			inst: spirv.ParsedInstruction{Opcode: spirv.OpMemoryModel, Operands: []uint32{0}},
			want: "OpMemoryModel Logical",
		},
		{
			name: "loop merge",
			inst: spirv.ParsedInstruction{Opcode: spirv.OpLoopMerge, Operands: []uint32{5, 6, uint32(spirv.LoopControlUnroll)}},
			want: "OpLoopMerge %5 %6 1",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := newPrinter(false, false)
			p.instruction(tc.inst)

			assert.Equal(t, tc.want, strings.TrimSpace(p.buf.String()))
		})
	}
}

func TestDisassembleWideConstants(t *testing.T) {
	p := newPrinter(false, false)

	p.instruction(spirv.ParsedInstruction{Opcode: spirv.OpTypeFloat, ResultID: 1, Operands: []uint32{64}})
	p.instruction(spirv.ParsedInstruction{Opcode: spirv.OpTypeInt, ResultID: 2, Operands: []uint32{64, 1}})
	p.instruction(spirv.ParsedInstruction{Opcode: spirv.OpTypeInt, ResultID: 3, Operands: []uint32{16, 0}})
	p.buf.Reset()

	p.instruction(spirv.ParsedInstruction{Opcode: spirv.OpConstant, TypeID: 1, ResultID: 4, Operands: []uint32{0, 0x40000000}})
	p.instruction(spirv.ParsedInstruction{Opcode: spirv.OpConstant, TypeID: 2, ResultID: 5, Operands: []uint32{0xFFFFFFFD, 0xFFFFFFFF}})
	p.instruction(spirv.ParsedInstruction{Opcode: spirv.OpConstant, TypeID: 3, ResultID: 6, Operands: []uint32{0xFFFF}})
	p.instruction(spirv.ParsedInstruction{Opcode: spirv.OpSpecConstant, TypeID: 99, ResultID: 7, Operands: []uint32{42}})

	assert.Equal(t, []string{
		"%4 = OpConstant %1 2",
		"%5 = OpConstant %2 -3",
		"%6 = OpConstant %3 65535",
		"%7 = OpSpecConstant %99 42",
	}, trimmedLines(p.buf.String()))
}

func TestColorPalette(t *testing.T) {
	p := newPrinter(true, false)
	p.instruction(spirv.ParsedInstruction{Opcode: spirv.OpTypeVoid, ResultID: 1})

	out := p.buf.String()
	assert.Contains(t, out, "\x1b[")
	assert.Contains(t, out, "OpTypeVoid")
}
