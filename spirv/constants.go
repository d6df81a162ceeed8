package spirv

import (
	"fmt"
	"math"
	"slices"

	"github.com/x448/float16"
)

// findScalarConstant scans the bucket of typeClass for a constant with the
// same opcode, type and literal words.
func (b *Builder) findScalarConstant(typeClass, op OpCode, typeID ID, words ...uint32) ID {
	for _, c := range b.groupedConstants[typeClass] {
		if c.opcode == op && c.typeID == typeID && slices.Equal(c.operands, words) {
			return c.resultID
		}
	}
	return NoResult
}

func (b *Builder) addConstant(typeClass OpCode, inst *Instruction) ID {
	b.groupedConstants[typeClass] = append(b.groupedConstants[typeClass], inst)
	b.addGlobal(inst)
	return inst.resultID
}

// MakeBoolConstant returns a boolean constant. Specialization constants
// are never shared.
func (b *Builder) MakeBoolConstant(v, spec bool) ID {
	typeID := b.MakeBoolType()

	var op OpCode
	switch {
	case spec && v:
		op = OpSpecConstantTrue
	case spec:
		op = OpSpecConstantFalse
	case v:
		op = OpConstantTrue
	default:
		op = OpConstantFalse
	}

	if !spec {
		if id := b.findScalarConstant(OpTypeBool, op, typeID); id != NoResult {
			return id
		}
	}

	return b.addConstant(OpTypeBool, NewInstruction(b.UniqueID(), typeID, op))
}

func (b *Builder) scalarConstant(typeClass OpCode, typeID ID, spec bool, words ...uint32) ID {
	op := OpConstant
	if spec {
		op = OpSpecConstant
	}

	if !spec {
		if id := b.findScalarConstant(typeClass, op, typeID, words...); id != NoResult {
			return id
		}
	}

	inst := NewInstruction(b.UniqueID(), typeID, op)
	inst.AddImmediateOperands(words)

	return b.addConstant(typeClass, inst)
}

// MakeIntConstantOfType returns an integer constant of an existing int type.
// Values of types narrower than 64 bits are truncated to the low word.
func (b *Builder) MakeIntConstantOfType(typeID ID, v uint64, spec bool) ID {
	if !b.IsIntType(typeID) {
		panic(fmt.Sprintf("spirv: %%%d is not an integer type", typeID))
	}

	if b.ScalarTypeWidth(typeID) == 64 {
		return b.scalarConstant(OpTypeInt, typeID, spec, uint32(v), uint32(v>>32))
	}

	return b.scalarConstant(OpTypeInt, typeID, spec, uint32(v))
}

// MakeIntConstant returns a 32-bit signed integer constant.
func (b *Builder) MakeIntConstant(v int32, spec bool) ID {
	return b.MakeIntConstantOfType(b.MakeIntType(32), uint64(int64(v)), spec)
}

// MakeUintConstant returns a 32-bit unsigned integer constant.
func (b *Builder) MakeUintConstant(v uint32, spec bool) ID {
	return b.MakeIntConstantOfType(b.MakeUintType(32), uint64(v), spec)
}

// MakeInt64Constant returns a 64-bit signed integer constant.
func (b *Builder) MakeInt64Constant(v int64, spec bool) ID {
	return b.MakeIntConstantOfType(b.MakeIntType(64), uint64(v), spec)
}

// MakeUint64Constant returns a 64-bit unsigned integer constant.
func (b *Builder) MakeUint64Constant(v uint64, spec bool) ID {
	return b.MakeIntConstantOfType(b.MakeUintType(64), v, spec)
}

// MakeFloatConstant returns a 32-bit float constant.
func (b *Builder) MakeFloatConstant(f float32, spec bool) ID {
	return b.scalarConstant(OpTypeFloat, b.MakeFloatType(32), spec, math.Float32bits(f))
}

// MakeDoubleConstant returns a 64-bit float constant.
func (b *Builder) MakeDoubleConstant(d float64, spec bool) ID {
	bits := math.Float64bits(d)
	return b.scalarConstant(OpTypeFloat, b.MakeFloatType(64), spec, uint32(bits), uint32(bits>>32))
}

// MakeFloat16Constant rounds f to half precision.
func (b *Builder) MakeFloat16Constant(f float32, spec bool) ID {
	bits := float16.Fromfloat32(f).Bits()
	return b.scalarConstant(OpTypeFloat, b.MakeFloatType(16), spec, uint32(bits))
}

// MakeNullConstant returns the OpConstantNull of typeID.
func (b *Builder) MakeNullConstant(typeID ID) ID {
	for _, c := range b.nullConstants {
		if c.typeID == typeID {
			return c.resultID
		}
	}

	inst := NewInstruction(b.UniqueID(), typeID, OpConstantNull)
	b.nullConstants = append(b.nullConstants, inst)
	b.addGlobal(inst)

	return inst.resultID
}

func idWords(ids []ID) []uint32 {
	words := make([]uint32, len(ids))
	for i, id := range ids {
		words[i] = uint32(id)
	}
	return words
}

// findCompositeConstant looks up an ordinary composite constant.
// Specialization composites share the buckets but never match.
func (b *Builder) findCompositeConstant(bucket []*Instruction, typeID ID, members []ID) ID {
	words := idWords(members)

	for _, c := range bucket {
		if c.opcode == OpConstantComposite && c.typeID == typeID && slices.Equal(c.operands, words) {
			return c.resultID
		}
	}

	return NoResult
}

// MakeCompositeConstant returns a vector, matrix, array or struct constant
// built from constant members.
func (b *Builder) MakeCompositeConstant(typeID ID, members []ID, spec bool) ID {
	op := OpConstantComposite
	if spec {
		op = OpSpecConstantComposite
	}

	typeClass := b.TypeClass(typeID)

	switch typeClass {
	case OpTypeVector, OpTypeArray, OpTypeMatrix:
		if !spec {
			if id := b.findCompositeConstant(b.groupedConstants[typeClass], typeID, members); id != NoResult {
				return id
			}
		}
	case OpTypeStruct:
		if !spec {
			if id := b.findCompositeConstant(b.groupedStructConstants[typeID], typeID, members); id != NoResult {
				return id
			}
		}
	default:
		panic(fmt.Sprintf("spirv: composite constant of %v", typeClass))
	}

	inst := NewInstruction(b.UniqueID(), typeID, op)
	inst.AddIDOperands(members)

	if typeClass == OpTypeStruct {
		b.groupedStructConstants[typeID] = append(b.groupedStructConstants[typeID], inst)
		b.addGlobal(inst)

		return inst.resultID
	}

	return b.addConstant(typeClass, inst)
}

// IsConstant reports whether id is defined by a constant instruction.
func (b *Builder) IsConstant(id ID) bool { return b.OpCodeOf(id).IsConstant() }

// IsConstantScalar reports whether id is a non-specialization OpConstant.
func (b *Builder) IsConstantScalar(id ID) bool { return b.OpCodeOf(id) == OpConstant }

// IsSpecConstant reports whether id is a specialization constant.
func (b *Builder) IsSpecConstant(id ID) bool { return b.OpCodeOf(id).IsSpecConstant() }

// ConstantScalar returns the low literal word of a scalar constant.
func (b *Builder) ConstantScalar(id ID) uint32 {
	inst := b.module.Instruction(id)

	switch inst.opcode {
	case OpConstant, OpSpecConstant:
		return inst.ImmediateOperand(0)
	case OpConstantTrue, OpSpecConstantTrue:
		return 1
	case OpConstantFalse, OpSpecConstantFalse, OpConstantNull:
		return 0
	default:
		panic(fmt.Sprintf("spirv: %%%d (%v) is not a scalar constant", id, inst.opcode))
	}
}
