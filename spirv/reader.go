package spirv

import (
	"encoding/binary"

	"tlog.app/go/errors"
)

// Header is the five-word module header.
type Header struct {
	Magic     uint32 `msgpack:"magic"`
	Version   uint32 `msgpack:"version"`
	Generator uint32 `msgpack:"generator"`
	Bound     uint32 `msgpack:"bound"`
	Schema    uint32 `msgpack:"schema"`
}

// ParsedInstruction is one instruction of a binary module.
type ParsedInstruction struct {
	Opcode   OpCode   `msgpack:"op"`
	TypeID   ID       `msgpack:"type,omitempty"`
	ResultID ID       `msgpack:"result,omitempty"`
	Operands []uint32 `msgpack:"operands,omitempty"`

	// Offset is the word index of the instruction in the module.
	Offset int `msgpack:"offset"`
}

// Binary is a parsed SPIR-V module.
type Binary struct {
	Header       Header              `msgpack:"header"`
	Instructions []ParsedInstruction `msgpack:"instructions"`
}

// ByOpCode returns the instructions with opcode op, in module order.
func (bin *Binary) ByOpCode(op OpCode) []ParsedInstruction {
	var res []ParsedInstruction

	for _, inst := range bin.Instructions {
		if inst.Opcode == op {
			res = append(res, inst)
		}
	}

	return res
}

// ParseBytes parses a module in either byte order.
func ParseBytes(data []byte) (*Binary, error) {
	if len(data)%4 != 0 {
		return nil, errors.New("size %d is not a multiple of 4", len(data))
	}
	if len(data) < 20 {
		return nil, errors.New("module too short: %d bytes", len(data))
	}

	var order binary.ByteOrder = binary.LittleEndian
	if binary.BigEndian.Uint32(data) == MagicNumber {
		order = binary.BigEndian
	}

	words := make([]uint32, len(data)/4)
	for i := range words {
		words[i] = order.Uint32(data[i*4:])
	}

	return Parse(words)
}

// Parse splits a module into instructions. Result and type words are
// recognized for opcodes with known layout.
func Parse(words []uint32) (*Binary, error) {
	if len(words) < 5 {
		return nil, errors.New("module too short: %d words", len(words))
	}
	if words[0] != MagicNumber {
		return nil, errors.New("bad magic number %#08x", words[0])
	}

	bin := &Binary{
		Header: Header{
			Magic:     words[0],
			Version:   words[1],
			Generator: words[2],
			Bound:     words[3],
			Schema:    words[4],
		},
	}

	for off := 5; off < len(words); {
		inst, n, err := parseInstruction(words[off:])
		if err != nil {
			return nil, errors.Wrap(err, "word %d", off)
		}

		inst.Offset = off
		bin.Instructions = append(bin.Instructions, inst)

		off += n
	}

	return bin, nil
}

func parseInstruction(words []uint32) (ParsedInstruction, int, error) {
	wc := int(words[0] >> 16)
	op := OpCode(words[0] & 0xFFFF)

	if wc == 0 {
		return ParsedInstruction{}, 0, errors.New("%v: zero word count", op)
	}
	if wc > len(words) {
		return ParsedInstruction{}, 0, errors.New("%v: word count %d past end of module", op, wc)
	}

	inst := ParsedInstruction{Opcode: op}
	rest := words[1:wc]

	if op.HasType() {
		if len(rest) == 0 {
			return ParsedInstruction{}, 0, errors.New("%v: missing result type", op)
		}
		inst.TypeID = ID(rest[0])
		rest = rest[1:]
	}

	if op.HasResult() {
		if len(rest) == 0 {
			return ParsedInstruction{}, 0, errors.New("%v: missing result id", op)
		}
		inst.ResultID = ID(rest[0])
		rest = rest[1:]
	}

	if len(rest) != 0 {
		inst.Operands = append([]uint32(nil), rest...)
	}

	return inst, wc, nil
}

// LiteralString decodes a null-terminated string operand and returns it
// with the number of words it occupies.
func LiteralString(words []uint32) (string, int) {
	var buf []byte

	for i, w := range words {
		for shift := 0; shift < 32; shift += 8 {
			c := byte(w >> shift)
			if c == 0 {
				return string(buf), i + 1
			}
			buf = append(buf, c)
		}
	}

	return string(buf), len(words)
}
