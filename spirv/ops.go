package spirv

import (
	"fmt"
	"slices"
)

// CreateVariable declares a variable. Function-storage variables go to the
// entry block of the current function, all others are module globals.
func (b *Builder) CreateVariable(sc StorageClass, typeID ID, name string, initializer ID) ID {
	pointerType := b.MakePointer(sc, typeID)

	inst := NewInstruction(b.UniqueID(), pointerType, OpVariable)
	inst.AddImmediateOperand(uint32(sc))
	if initializer != NoResult {
		inst.AddIDOperand(initializer)
	}

	if sc == StorageClassFunction {
		if b.buildPoint == nil {
			panic("spirv: function variable outside of a function")
		}
		b.buildPoint.Parent().AddLocalVariable(inst)
	} else {
		b.addGlobal(inst)
	}

	if name != "" {
		b.AddName(inst.resultID, name)
	}

	return inst.resultID
}

// CreateUndefined returns an OpUndef of typeID.
func (b *Builder) CreateUndefined(typeID ID) ID {
	inst := NewInstruction(b.UniqueID(), typeID, OpUndef)
	b.addInstruction(inst)
	return inst.resultID
}

func addMemoryAccess(inst *Instruction, access MemoryAccess, alignment uint32) {
	if access == MemoryAccessNone {
		return
	}

	inst.AddImmediateOperand(uint32(access))
	if access&MemoryAccessAligned != 0 {
		inst.AddImmediateOperand(alignment)
	}
}

// CreateLoad loads through pointer. alignment is used only with
// MemoryAccessAligned.
func (b *Builder) CreateLoad(pointer ID, access MemoryAccess, alignment uint32) ID {
	inst := NewInstruction(b.UniqueID(), b.DerefTypeID(pointer), OpLoad)
	inst.AddIDOperand(pointer)
	addMemoryAccess(inst, access, alignment)

	b.addInstruction(inst)

	return inst.resultID
}

// CreateStore stores value through pointer.
func (b *Builder) CreateStore(value, pointer ID, access MemoryAccess, alignment uint32) {
	inst := NewInstruction(NoResult, NoType, OpStore)
	inst.AddIDOperand(pointer)
	inst.AddIDOperand(value)
	addMemoryAccess(inst, access, alignment)

	b.addInstruction(inst)
}

// CreateAccessChain addresses into base. Struct members must be selected
// by constant indexes.
func (b *Builder) CreateAccessChain(sc StorageClass, base ID, offsets []ID) ID {
	if len(offsets) == 0 {
		panic("spirv: access chain without indexes")
	}

	typeID := b.DerefTypeID(base)
	for _, off := range offsets {
		if b.IsStructType(typeID) {
			if !b.IsConstantScalar(off) {
				panic(fmt.Sprintf("spirv: struct member index %%%d is not constant", off))
			}
			typeID = b.ContainedTypeIDAt(typeID, int(b.ConstantScalar(off)))
		} else {
			typeID = b.ContainedTypeID(typeID)
		}
	}

	inst := NewInstruction(b.UniqueID(), b.MakePointer(sc, typeID), OpAccessChain)
	inst.AddIDOperand(base)
	inst.AddIDOperands(offsets)

	b.addInstruction(inst)

	return inst.resultID
}

// CreateArrayLength returns the length of the runtime array in member of
// the struct base points to.
func (b *Builder) CreateArrayLength(base ID, member int) ID {
	inst := NewInstruction(b.UniqueID(), b.MakeUintType(32), OpArrayLength)
	inst.AddIDOperand(base)
	inst.AddImmediateOperand(u32(member))

	b.addInstruction(inst)

	return inst.resultID
}

// CreateCompositeExtract extracts the constituent at indexes.
func (b *Builder) CreateCompositeExtract(composite, typeID ID, indexes ...uint32) ID {
	if b.specConstantOpMode {
		return b.CreateSpecConstantOp(OpCompositeExtract, typeID, []ID{composite}, indexes)
	}

	inst := NewInstruction(b.UniqueID(), typeID, OpCompositeExtract)
	inst.AddIDOperand(composite)
	inst.AddImmediateOperands(indexes)

	b.addInstruction(inst)

	return inst.resultID
}

// CreateCompositeInsert inserts object into composite at indexes.
func (b *Builder) CreateCompositeInsert(object, composite, typeID ID, indexes ...uint32) ID {
	if b.specConstantOpMode {
		return b.CreateSpecConstantOp(OpCompositeInsert, typeID, []ID{object, composite}, indexes)
	}

	inst := NewInstruction(b.UniqueID(), typeID, OpCompositeInsert)
	inst.AddIDOperand(object)
	inst.AddIDOperand(composite)
	inst.AddImmediateOperands(indexes)

	b.addInstruction(inst)

	return inst.resultID
}

// CreateVectorExtractDynamic extracts the component at a runtime index.
func (b *Builder) CreateVectorExtractDynamic(vector, typeID, index ID) ID {
	inst := NewInstruction(b.UniqueID(), typeID, OpVectorExtractDynamic)
	inst.AddIDOperand(vector)
	inst.AddIDOperand(index)

	b.addInstruction(inst)

	return inst.resultID
}

// CreateVectorInsertDynamic inserts component at a runtime index.
func (b *Builder) CreateVectorInsertDynamic(vector, typeID, component, index ID) ID {
	inst := NewInstruction(b.UniqueID(), typeID, OpVectorInsertDynamic)
	inst.AddIDOperand(vector)
	inst.AddIDOperand(component)
	inst.AddIDOperand(index)

	b.addInstruction(inst)

	return inst.resultID
}

// CreateNoResultOp emits an instruction without result or type.
func (b *Builder) CreateNoResultOp(op OpCode, operands ...ID) {
	inst := NewInstruction(NoResult, NoType, op)
	inst.AddIDOperands(operands)

	b.addInstruction(inst)
}

// CreateControlBarrier waits for all invocations in the execution scope.
func (b *Builder) CreateControlBarrier(execution, memory Scope, semantics MemorySemantics) {
	b.CreateNoResultOp(OpControlBarrier,
		b.MakeUintConstant(uint32(execution), false),
		b.MakeUintConstant(uint32(memory), false),
		b.MakeUintConstant(uint32(semantics), false))
}

// CreateMemoryBarrier orders memory accesses in the memory scope.
func (b *Builder) CreateMemoryBarrier(memory Scope, semantics MemorySemantics) {
	b.CreateNoResultOp(OpMemoryBarrier,
		b.MakeUintConstant(uint32(memory), false),
		b.MakeUintConstant(uint32(semantics), false))
}

// CreateUnaryOp emits op with one operand.
func (b *Builder) CreateUnaryOp(op OpCode, typeID, operand ID) ID {
	return b.CreateOp(op, typeID, []ID{operand})
}

// CreateBinOp emits op with two operands.
func (b *Builder) CreateBinOp(op OpCode, typeID, left, right ID) ID {
	return b.CreateOp(op, typeID, []ID{left, right})
}

// CreateTriOp emits op with three operands.
func (b *Builder) CreateTriOp(op OpCode, typeID, op1, op2, op3 ID) ID {
	return b.CreateOp(op, typeID, []ID{op1, op2, op3})
}

// CreateOp emits op with id operands. In spec-constant mode the operation
// becomes an OpSpecConstantOp.
func (b *Builder) CreateOp(op OpCode, typeID ID, operands []ID) ID {
	if b.specConstantOpMode {
		return b.CreateSpecConstantOp(op, typeID, operands, nil)
	}

	inst := NewInstruction(b.UniqueID(), typeID, op)
	inst.AddIDOperands(operands)

	b.addInstruction(inst)

	return inst.resultID
}

// CreateSpecConstantOp adds an OpSpecConstantOp to the global section.
func (b *Builder) CreateSpecConstantOp(op OpCode, typeID ID, operands []ID, literals []uint32) ID {
	inst := NewInstruction(b.UniqueID(), typeID, OpSpecConstantOp)
	inst.AddImmediateOperand(uint32(op))
	inst.AddIDOperands(operands)
	inst.AddImmediateOperands(literals)

	b.addGlobal(inst)

	return inst.resultID
}

// SetToSpecConstCodeGenMode makes operations produce specialization
// constant instructions instead of block instructions.
func (b *Builder) SetToSpecConstCodeGenMode() { b.specConstantOpMode = true }

// SetToNormalCodeGenMode returns to emitting block instructions.
func (b *Builder) SetToNormalCodeGenMode() { b.specConstantOpMode = false }

// IsInSpecConstCodeGenMode reports whether spec-constant mode is on.
func (b *Builder) IsInSpecConstCodeGenMode() bool { return b.specConstantOpMode }

// CreateFunctionCall calls fn with args.
func (b *Builder) CreateFunctionCall(fn *Function, args []ID) ID {
	inst := NewInstruction(b.UniqueID(), fn.ReturnType(), OpFunctionCall)
	inst.AddIDOperand(fn.ID())
	inst.AddIDOperands(args)

	b.addInstruction(inst)

	return inst.resultID
}

// CreateRvalueSwizzle selects channels of source.
func (b *Builder) CreateRvalueSwizzle(typeID, source ID, channels []uint32) ID {
	if len(channels) == 1 {
		return b.CreateCompositeExtract(source, typeID, channels[0])
	}

	if b.specConstantOpMode {
		literals := append([]uint32{}, channels...)
		return b.CreateSpecConstantOp(OpVectorShuffle, typeID, []ID{source, source}, literals)
	}

	inst := NewInstruction(b.UniqueID(), typeID, OpVectorShuffle)
	inst.AddIDOperand(source)
	inst.AddIDOperand(source)
	inst.AddImmediateOperands(channels)

	b.addInstruction(inst)

	return inst.resultID
}

// CreateLvalueSwizzle writes the components of source into channels of
// target and returns the combined vector.
func (b *Builder) CreateLvalueSwizzle(typeID, target, source ID, channels []uint32) ID {
	if len(channels) == 1 && b.NumComponents(source) == 1 {
		return b.CreateCompositeInsert(source, target, typeID, channels[0])
	}

	if !b.IsVector(target) || !b.IsVector(source) {
		panic("spirv: lvalue swizzle of a non-vector")
	}
	if b.NumComponents(source) != len(channels) {
		panic(fmt.Sprintf("spirv: lvalue swizzle of %d channels from %d components", len(channels), b.NumComponents(source)))
	}

	numTarget := b.NumComponents(target)

	// identity shuffle of target with the written channels punched in
	components := make([]uint32, numTarget)
	for i := range components {
		components[i] = u32(i)
	}
	for i, c := range channels {
		components[c] = u32(numTarget + i)
	}

	inst := NewInstruction(b.UniqueID(), typeID, OpVectorShuffle)
	inst.AddIDOperand(target)
	inst.AddIDOperand(source)
	inst.AddImmediateOperands(components)

	b.addInstruction(inst)

	return inst.resultID
}

// PromoteScalar smears whichever operand is a scalar to the other's vector type.
func (b *Builder) PromoteScalar(left, right ID) (ID, ID) {
	lc := b.NumComponents(left)
	rc := b.NumComponents(right)

	switch {
	case lc == rc:
	case b.IsScalar(left) && rc > 1:
		left = b.SmearScalar(left, b.MakeVectorType(b.TypeOf(left), rc))
	case b.IsScalar(right) && lc > 1:
		right = b.SmearScalar(right, b.MakeVectorType(b.TypeOf(right), lc))
	}

	return left, right
}

// SmearScalar replicates scalar into every component of vectorType.
func (b *Builder) SmearScalar(scalar, vectorType ID) ID {
	n := b.NumTypeConstituents(vectorType)
	if n == 1 {
		return scalar
	}

	members := make([]ID, n)
	for i := range members {
		members[i] = scalar
	}

	if b.specConstantOpMode {
		return b.MakeCompositeConstant(vectorType, members, b.IsSpecConstant(scalar))
	}

	inst := NewInstruction(b.UniqueID(), vectorType, OpCompositeConstruct)
	inst.AddIDOperands(members)

	b.addInstruction(inst)

	return inst.resultID
}

// CreateBuiltinCall calls entry of the extended instruction set builtins.
func (b *Builder) CreateBuiltinCall(resultType, builtins ID, entry uint32, args []ID) ID {
	inst := NewInstruction(b.UniqueID(), resultType, OpExtInst)
	inst.AddIDOperand(builtins)
	inst.AddImmediateOperand(entry)
	inst.AddIDOperands(args)

	b.addInstruction(inst)

	return inst.resultID
}

// CreateCompositeConstruct builds a composite. In spec-constant mode it
// yields a composite constant.
func (b *Builder) CreateCompositeConstruct(typeID ID, constituents []ID) ID {
	if b.specConstantOpMode {
		spec := slices.ContainsFunc(constituents, b.IsSpecConstant)
		return b.MakeCompositeConstant(typeID, constituents, spec)
	}

	inst := NewInstruction(b.UniqueID(), typeID, OpCompositeConstruct)
	inst.AddIDOperands(constituents)

	b.addInstruction(inst)

	return inst.resultID
}

// CreateCompositeCompare compares two values of the same type for equality
// (or inequality) and returns a single bool.
func (b *Builder) CreateCompositeCompare(value1, value2 ID, equal bool) ID {
	boolType := b.MakeBoolType()
	valueType := b.TypeOf(value1)
	n := b.NumTypeConstituents(valueType)

	if b.IsScalarType(valueType) || b.IsVectorType(valueType) {
		var op OpCode

		switch b.MostBasicTypeClass(valueType) {
		case OpTypeFloat:
			op = pick(equal, OpFOrdEqual, OpFUnordNotEqual)
		case OpTypeInt:
			op = pick(equal, OpIEqual, OpINotEqual)
		case OpTypeBool:
			op = pick(equal, OpLogicalEqual, OpLogicalNotEqual)
		default:
			b.log.Missing("composite comparison of " + b.MostBasicTypeClass(valueType).String())
			op = pick(equal, OpIEqual, OpINotEqual)
		}

		if b.IsScalarType(valueType) {
			return b.CreateBinOp(op, boolType, value1, value2)
		}

		res := b.CreateBinOp(op, b.MakeVectorType(boolType, n), value1, value2)

		return b.CreateUnaryOp(pick(equal, OpAll, OpAny), boolType, res)
	}

	if !b.IsAggregateType(valueType) && !b.IsMatrixType(valueType) {
		panic(fmt.Sprintf("spirv: cannot compare values of %v", b.TypeClass(valueType)))
	}

	var res ID

	for c := 0; c < n; c++ {
		t1 := b.ContainedTypeIDAt(valueType, c)
		t2 := b.ContainedTypeIDAt(b.TypeOf(value2), c)

		c1 := b.CreateCompositeExtract(value1, t1, u32(c))
		c2 := b.CreateCompositeExtract(value2, t2, u32(c))

		sub := b.CreateCompositeCompare(c1, c2, equal)

		if c == 0 {
			res = sub
		} else {
			res = b.CreateBinOp(pick(equal, OpLogicalAnd, OpLogicalOr), boolType, res, sub)
		}
	}

	return res
}

func pick[T any](cond bool, a, b T) T {
	if cond {
		return a
	}
	return b
}
