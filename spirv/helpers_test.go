package spirv

import (
	"testing"

	"github.com/stretchr/testify/require"
	"tlog.app/go/tlog"
)

func newTestBuilder() *Builder {
	opts := DefaultOptions()
	opts.Logger = tlog.Span{}

	return NewBuilder(opts)
}

// newFragmentBuilder returns a builder positioned in the entry block of main.
func newFragmentBuilder() (*Builder, *Function) {
	b := newTestBuilder()
	b.AddCapability(CapabilityShader)
	b.SetMemoryModel(AddressingModelLogical, MemoryModelGLSL450)

	fn := b.MakeEntryPoint("main")
	b.AddEntryPoint(ExecutionModelFragment, fn, "main")
	b.AddExecutionMode(fn, ExecutionModeOriginUpperLeft)

	return b, fn
}

func dumpAndParse(t *testing.T, b *Builder) *Binary {
	t.Helper()

	bin, err := ParseBytes(b.DumpBytes())
	require.NoError(t, err)

	return bin
}

// lastInstructions returns the trailing n instructions of the build point.
func lastInstructions(t *testing.T, b *Builder, n int) []*Instruction {
	t.Helper()

	insts := b.BuildPoint().Instructions()
	require.GreaterOrEqual(t, len(insts), n)

	return insts[len(insts)-n:]
}

func opcodes(insts []*Instruction) []OpCode {
	ops := make([]OpCode, len(insts))
	for i, inst := range insts {
		ops[i] = inst.OpCode()
	}
	return ops
}

func decorationTargets(bin *Binary) []ID {
	var ids []ID
	for _, inst := range bin.ByOpCode(OpDecorate) {
		ids = append(ids, ID(inst.Operands[0]))
	}
	return ids
}
