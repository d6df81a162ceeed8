package spirv

import (
	"fmt"

	"fortio.org/safecast"
)

// Instruction is one SPIR-V instruction owned by a module section or a block.
type Instruction struct {
	resultID  ID
	typeID    ID
	opcode    OpCode
	operands  []uint32
	idOperand []bool
	block     *Block
}

// NewInstruction creates an instruction with no operands.
// A known opcode must be given exactly the result and type ids its layout has.
func NewInstruction(result, typ ID, op OpCode) *Instruction {
	if op.Known() {
		if op.HasResult() != (result != NoResult) {
			panic(fmt.Sprintf("spirv: %v: result id %d does not match layout", op, result))
		}
		if op.HasType() != (typ != NoType) {
			panic(fmt.Sprintf("spirv: %v: type id %d does not match layout", op, typ))
		}
	}

	return &Instruction{
		resultID: result,
		typeID:   typ,
		opcode:   op,
	}
}

// AddIDOperand appends an id operand.
func (i *Instruction) AddIDOperand(id ID) {
	if id == NoResult {
		panic(fmt.Sprintf("spirv: %v: zero id operand", i.opcode))
	}
	i.operands = append(i.operands, uint32(id))
	i.idOperand = append(i.idOperand, true)
}

// AddIDOperands appends id operands in order.
func (i *Instruction) AddIDOperands(ids []ID) {
	for _, id := range ids {
		i.AddIDOperand(id)
	}
}

// AddImmediateOperand appends a literal word.
func (i *Instruction) AddImmediateOperand(word uint32) {
	i.operands = append(i.operands, word)
	i.idOperand = append(i.idOperand, false)
}

// AddImmediateOperands appends literal words in order.
func (i *Instruction) AddImmediateOperands(words []uint32) {
	for _, w := range words {
		i.AddImmediateOperand(w)
	}
}

// AddStringOperand appends a null-terminated UTF-8 string,
// packed little-endian four bytes per word and padded with zeros.
func (i *Instruction) AddStringOperand(s string) {
	var word uint32
	shift := 0

	for j := 0; j < len(s); j++ {
		word |= uint32(s[j]) << shift
		shift += 8
		if shift == 32 {
			i.AddImmediateOperand(word)
			word, shift = 0, 0
		}
	}

	// the final word always holds at least one terminating zero
	i.AddImmediateOperand(word)
}

// SetIDOperand replaces operand idx with an id.
func (i *Instruction) SetIDOperand(idx int, id ID) {
	i.operands[idx] = uint32(id)
	i.idOperand[idx] = true
}

// SetImmediateOperand replaces operand idx with a literal word.
func (i *Instruction) SetImmediateOperand(idx int, word uint32) {
	i.operands[idx] = word
	i.idOperand[idx] = false
}

// ResultID returns the result id.
func (i *Instruction) ResultID() ID { return i.resultID }

// TypeID returns the result type id.
func (i *Instruction) TypeID() ID { return i.typeID }

// OpCode returns the opcode.
func (i *Instruction) OpCode() OpCode { return i.opcode }

// NumOperands returns the number of operand words.
func (i *Instruction) NumOperands() int { return len(i.operands) }

// Block returns the block owning the instruction, or nil.
func (i *Instruction) Block() *Block { return i.block }

// Operand returns operand idx as a raw word.
func (i *Instruction) Operand(idx int) uint32 { return i.operands[idx] }

// IsIDOperand reports whether operand idx names an id.
func (i *Instruction) IsIDOperand(idx int) bool { return i.idOperand[idx] }

// IDOperand returns operand idx, which must be an id.
func (i *Instruction) IDOperand(idx int) ID {
	if !i.idOperand[idx] {
		panic(fmt.Sprintf("spirv: %v: operand %d is not an id", i.opcode, idx))
	}
	return ID(i.operands[idx])
}

// ImmediateOperand returns operand idx, which must be a literal.
func (i *Instruction) ImmediateOperand(idx int) uint32 {
	if i.idOperand[idx] {
		panic(fmt.Sprintf("spirv: %v: operand %d is not a literal", i.opcode, idx))
	}
	return i.operands[idx]
}

// WordCount is the number of words Encode appends.
func (i *Instruction) WordCount() int {
	n := 1 + len(i.operands)
	if i.hasTypeWord() {
		n++
	}
	if i.hasResultWord() {
		n++
	}
	return n
}

func (i *Instruction) hasTypeWord() bool {
	if i.opcode.Known() {
		return i.opcode.HasType()
	}
	return i.typeID != NoType
}

func (i *Instruction) hasResultWord() bool {
	if i.opcode.Known() {
		return i.opcode.HasResult()
	}
	return i.resultID != NoResult
}

// Encode appends the binary form of the instruction to dst.
func (i *Instruction) Encode(dst []uint32) []uint32 {
	wc, err := safecast.Conv[uint16](i.WordCount())
	if err != nil {
		panic(fmt.Sprintf("spirv: %v: too many operands: %v", i.opcode, err))
	}

	dst = append(dst, uint32(wc)<<16|uint32(i.opcode))
	if i.hasTypeWord() {
		dst = append(dst, uint32(i.typeID))
	}
	if i.hasResultWord() {
		dst = append(dst, uint32(i.resultID))
	}

	return append(dst, i.operands...)
}

// String formats the instruction for debugging.
func (i *Instruction) String() string {
	return fmt.Sprintf("%%%d = %v %%%d %v", i.resultID, i.opcode, i.typeID, i.operands)
}

// u32 converts a length or index into an operand word.
func u32(n int) uint32 {
	v, err := safecast.Conv[uint32](n)
	if err != nil {
		panic(fmt.Errorf("spirv: operand overflow: %w", err))
	}
	return v
}
