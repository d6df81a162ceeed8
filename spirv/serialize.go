package spirv

import (
	"encoding/binary"
	"maps"
	"slices"
)

// Maximum bytes of source text per OpSource/OpSourceContinued, leaving
// room for the opcode, language, version and file words and the
// terminating zero.
const sourceChunkBytes = 4*(0xFFFF-4) - 1

// Dump runs PostProcess and serializes the module in logical layout order.
func (b *Builder) Dump() []uint32 {
	b.PostProcess()

	out := []uint32{
		MagicNumber,
		b.opts.Version.Word(),
		b.opts.Generator,
		b.Bound(),
		0, // schema
	}

	for _, c := range slices.Sorted(maps.Keys(b.capabilities)) {
		inst := NewInstruction(NoResult, NoType, OpCapability)
		inst.AddImmediateOperand(uint32(c))
		out = inst.Encode(out)
	}

	for _, ext := range slices.Sorted(maps.Keys(b.extensions)) {
		inst := NewInstruction(NoResult, NoType, OpExtension)
		inst.AddStringOperand(ext)
		out = inst.Encode(out)
	}

	out = encodeAll(out, b.imports)

	if b.memoryModelSet {
		inst := NewInstruction(NoResult, NoType, OpMemoryModel)
		inst.AddImmediateOperand(uint32(b.addressModel))
		inst.AddImmediateOperand(uint32(b.memoryModel))
		out = inst.Encode(out)
	}

	out = encodeAll(out, b.entryPoints)
	out = encodeAll(out, b.executionModes)

	out = encodeAll(out, b.strings)
	out = b.encodeSource(out)
	out = encodeAll(out, b.sourceExtensions)
	out = encodeAll(out, b.names)
	out = encodeAll(out, b.moduleProcesses)

	out = encodeAll(out, b.decorations)

	out = encodeAll(out, b.globals)

	for _, fn := range b.declarations {
		out = fn.encode(out)
	}

	for _, fn := range b.module.functions {
		out = fn.encode(out)
	}

	return out
}

// DumpBytes returns Dump as little-endian bytes.
func (b *Builder) DumpBytes() []byte {
	words := b.Dump()

	buf := make([]byte, 0, len(words)*4)
	for _, w := range words {
		buf = binary.LittleEndian.AppendUint32(buf, w)
	}

	return buf
}

func encodeAll(out []uint32, insts []*Instruction) []uint32 {
	for _, inst := range insts {
		out = inst.Encode(out)
	}
	return out
}

// encodeSource writes OpSource, splitting long text into OpSourceContinued.
// Text is written only when a source file is set.
func (b *Builder) encodeSource(out []uint32) []uint32 {
	if b.source == SourceLanguageUnknown {
		return out
	}

	inst := NewInstruction(NoResult, NoType, OpSource)
	inst.AddImmediateOperand(uint32(b.source))
	inst.AddImmediateOperand(b.sourceVersion)

	if b.sourceFileID == NoResult {
		return inst.Encode(out)
	}

	inst.AddIDOperand(b.sourceFileID)

	if b.sourceText == "" {
		return inst.Encode(out)
	}

	text := b.sourceText
	for first := true; len(text) > 0; first = false {
		chunk := text[:min(len(text), sourceChunkBytes)]
		text = text[len(chunk):]

		if first {
			inst.AddStringOperand(chunk)
			out = inst.Encode(out)
			continue
		}

		cont := NewInstruction(NoResult, NoType, OpSourceContinued)
		cont.AddStringOperand(chunk)
		out = cont.Encode(out)
	}

	return out
}
