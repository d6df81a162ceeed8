package spirv

import (
	"fmt"
)

func (b *Builder) addType(inst *Instruction) ID {
	b.groupedTypes[inst.opcode] = append(b.groupedTypes[inst.opcode], inst)
	b.addGlobal(inst)
	return inst.resultID
}

// findType scans the bucket for op for a type with exactly the given operands.
func (b *Builder) findType(op OpCode, operands ...uint32) ID {
next:
	for _, t := range b.groupedTypes[op] {
		if len(t.operands) != len(operands) {
			continue
		}
		for i, w := range operands {
			if t.operands[i] != w {
				continue next
			}
		}
		return t.resultID
	}

	return NoType
}

func (b *Builder) singletonType(op OpCode) ID {
	if ts := b.groupedTypes[op]; len(ts) != 0 {
		return ts[0].resultID
	}
	return b.addType(NewInstruction(b.UniqueID(), NoType, op))
}

// MakeVoidType returns the void type.
func (b *Builder) MakeVoidType() ID { return b.singletonType(OpTypeVoid) }

// MakeBoolType returns the bool type.
func (b *Builder) MakeBoolType() ID { return b.singletonType(OpTypeBool) }

// MakeSamplerType returns the sampler type.
func (b *Builder) MakeSamplerType() ID { return b.singletonType(OpTypeSampler) }

// MakeIntegerType returns the integer type of width bits.
func (b *Builder) MakeIntegerType(width int, signed bool) ID {
	signedness := uint32(0)
	if signed {
		signedness = 1
	}

	if id := b.findType(OpTypeInt, u32(width), signedness); id != NoType {
		return id
	}

	inst := NewInstruction(b.UniqueID(), NoType, OpTypeInt)
	inst.AddImmediateOperand(u32(width))
	inst.AddImmediateOperand(signedness)

	switch width {
	case 8:
		b.AddCapability(CapabilityInt8)
	case 16:
		b.AddCapability(CapabilityInt16)
	case 64:
		b.AddCapability(CapabilityInt64)
	}

	return b.addType(inst)
}

// MakeIntType returns a signed integer type.
func (b *Builder) MakeIntType(width int) ID { return b.MakeIntegerType(width, true) }

// MakeUintType returns an unsigned integer type.
func (b *Builder) MakeUintType(width int) ID { return b.MakeIntegerType(width, false) }

// MakeFloatType returns a float type. 16 and 64 bits add their capability.
func (b *Builder) MakeFloatType(width int) ID {
	if id := b.findType(OpTypeFloat, u32(width)); id != NoType {
		return id
	}

	inst := NewInstruction(b.UniqueID(), NoType, OpTypeFloat)
	inst.AddImmediateOperand(u32(width))

	switch width {
	case 16:
		b.AddCapability(CapabilityFloat16)
	case 64:
		b.AddCapability(CapabilityFloat64)
	}

	return b.addType(inst)
}

// MakeStructType always creates a new struct type, so that decorations
// can tell apart structs of identical layout.
func (b *Builder) MakeStructType(members []ID, name string) ID {
	inst := NewInstruction(b.UniqueID(), NoType, OpTypeStruct)
	inst.AddIDOperands(members)

	id := b.addType(inst)
	if name != "" {
		b.AddName(id, name)
	}

	return id
}

// MakeStructResultType returns a two-member struct type, reusing any
// existing struct with the same members.
func (b *Builder) MakeStructResultType(t0, t1 ID) ID {
	if id := b.findType(OpTypeStruct, uint32(t0), uint32(t1)); id != NoType {
		return id
	}

	return b.MakeStructType([]ID{t0, t1}, "ResType")
}

// MakeVectorType returns a vector of size components.
func (b *Builder) MakeVectorType(component ID, size int) ID {
	if id := b.findType(OpTypeVector, uint32(component), u32(size)); id != NoType {
		return id
	}

	inst := NewInstruction(b.UniqueID(), NoType, OpTypeVector)
	inst.AddIDOperand(component)
	inst.AddImmediateOperand(u32(size))

	return b.addType(inst)
}

// MakeMatrixType returns a matrix of cols columns of rows components each.
func (b *Builder) MakeMatrixType(component ID, cols, rows int) ID {
	if cols > 4 || rows > 4 {
		panic(fmt.Sprintf("spirv: matrix %dx%d too large", cols, rows))
	}

	column := b.MakeVectorType(component, rows)

	if id := b.findType(OpTypeMatrix, uint32(column), u32(cols)); id != NoType {
		return id
	}

	inst := NewInstruction(b.UniqueID(), NoType, OpTypeMatrix)
	inst.AddIDOperand(column)
	inst.AddImmediateOperand(u32(cols))

	return b.addType(inst)
}

// MakeArrayType returns an array type of a constant length sizeID.
// A non-zero stride always mints a new type decorated with ArrayStride.
func (b *Builder) MakeArrayType(element, sizeID ID, stride int) ID {
	if stride == 0 {
		if id := b.findType(OpTypeArray, uint32(element), uint32(sizeID)); id != NoType {
			return id
		}
	}

	inst := NewInstruction(b.UniqueID(), NoType, OpTypeArray)
	inst.AddIDOperand(element)
	inst.AddIDOperand(sizeID)

	if stride == 0 {
		return b.addType(inst)
	}

	// strided arrays stay out of the lookup bucket
	b.addGlobal(inst)
	b.AddDecoration(inst.resultID, DecorationArrayStride, u32(stride))

	return inst.resultID
}

// MakeRuntimeArray returns a new runtime array type.
func (b *Builder) MakeRuntimeArray(element ID) ID {
	inst := NewInstruction(b.UniqueID(), NoType, OpTypeRuntimeArray)
	inst.AddIDOperand(element)

	return b.addType(inst)
}

// MakePointer returns a pointer to pointee in storage class sc.
func (b *Builder) MakePointer(sc StorageClass, pointee ID) ID {
	if id := b.findType(OpTypePointer, uint32(sc), uint32(pointee)); id != NoType {
		return id
	}

	inst := NewInstruction(b.UniqueID(), NoType, OpTypePointer)
	inst.AddImmediateOperand(uint32(sc))
	inst.AddIDOperand(pointee)

	return b.addType(inst)
}

// MakeFunctionType returns a function type.
func (b *Builder) MakeFunctionType(returnType ID, paramTypes []ID) ID {
	key := make([]uint32, 0, len(paramTypes)+1)
	key = append(key, uint32(returnType))
	for _, p := range paramTypes {
		key = append(key, uint32(p))
	}

	if id := b.findType(OpTypeFunction, key...); id != NoType {
		return id
	}

	inst := NewInstruction(b.UniqueID(), NoType, OpTypeFunction)
	inst.AddIDOperand(returnType)
	inst.AddIDOperands(paramTypes)

	return b.addType(inst)
}

// MakeImageType returns an image type and adds the capabilities its
// dimensionality and usage require. sampled is 1 for sampled images and
// 2 for storage images.
func (b *Builder) MakeImageType(sampledType ID, dim Dim, depth, arrayed, ms bool, sampled uint32, format ImageFormat) ID {
	key := []uint32{
		uint32(sampledType),
		uint32(dim),
		boolWord(depth),
		boolWord(arrayed),
		boolWord(ms),
		sampled,
		uint32(format),
	}

	if id := b.findType(OpTypeImage, key...); id != NoType {
		return id
	}

	inst := NewInstruction(b.UniqueID(), NoType, OpTypeImage)
	inst.AddIDOperand(sampledType)
	inst.AddImmediateOperands(key[1:])

	switch dim {
	case DimBuffer:
		if sampled == 1 {
			b.AddCapability(CapabilitySampledBuffer)
		} else {
			b.AddCapability(CapabilityImageBuffer)
		}
	case Dim1D:
		if sampled == 1 {
			b.AddCapability(CapabilitySampled1D)
		} else {
			b.AddCapability(CapabilityImage1D)
		}
	case DimCube:
		if arrayed {
			if sampled == 1 {
				b.AddCapability(CapabilitySampledCubeArray)
			} else {
				b.AddCapability(CapabilityImageCubeArray)
			}
		}
	case DimRect:
		if sampled == 1 {
			b.AddCapability(CapabilitySampledRect)
		} else {
			b.AddCapability(CapabilityImageRect)
		}
	case DimSubpassData:
		b.AddCapability(CapabilityInputAttachment)
	}

	if ms && sampled == 2 {
		// subpass inputs are not storage images
		if dim != DimSubpassData {
			b.AddCapability(CapabilityStorageImageMultisample)
		}
		if arrayed {
			b.AddCapability(CapabilityImageMSArray)
		}
	}

	return b.addType(inst)
}

// MakeSampledImageType returns the sampled image type of imageType.
func (b *Builder) MakeSampledImageType(imageType ID) ID {
	if id := b.findType(OpTypeSampledImage, uint32(imageType)); id != NoType {
		return id
	}

	inst := NewInstruction(b.UniqueID(), NoType, OpTypeSampledImage)
	inst.AddIDOperand(imageType)

	return b.addType(inst)
}

func boolWord(v bool) uint32 {
	if v {
		return 1
	}
	return 0
}

// TypeOf returns the result type of id.
func (b *Builder) TypeOf(id ID) ID { return b.module.TypeID(id) }

// OpCodeOf returns the opcode that defines id.
func (b *Builder) OpCodeOf(id ID) OpCode { return b.module.Instruction(id).opcode }

// TypeClass returns the opcode of a type instruction.
func (b *Builder) TypeClass(typeID ID) OpCode { return b.OpCodeOf(typeID) }

// MostBasicTypeClass strips vectors, matrices, arrays and pointers.
func (b *Builder) MostBasicTypeClass(typeID ID) OpCode {
	inst := b.module.Instruction(typeID)

	switch inst.opcode {
	case OpTypeVector, OpTypeMatrix, OpTypeArray, OpTypeRuntimeArray:
		return b.MostBasicTypeClass(inst.IDOperand(0))
	case OpTypePointer:
		return b.MostBasicTypeClass(inst.IDOperand(1))
	default:
		return inst.opcode
	}
}

// NumComponents returns the number of constituents of id's type.
func (b *Builder) NumComponents(id ID) int { return b.NumTypeConstituents(b.TypeOf(id)) }

// NumTypeConstituents returns how many components, columns, elements or
// members typeID has.
func (b *Builder) NumTypeConstituents(typeID ID) int {
	inst := b.module.Instruction(typeID)

	switch inst.opcode {
	case OpTypeBool, OpTypeInt, OpTypeFloat, OpTypePointer:
		return 1
	case OpTypeVector, OpTypeMatrix:
		return int(inst.ImmediateOperand(1))
	case OpTypeArray:
		return int(b.ConstantScalar(inst.IDOperand(1)))
	case OpTypeStruct:
		return inst.NumOperands()
	default:
		panic(fmt.Sprintf("spirv: %v has no constituents", inst.opcode))
	}
}

// ScalarTypeID returns the scalar at the bottom of typeID.
func (b *Builder) ScalarTypeID(typeID ID) ID {
	inst := b.module.Instruction(typeID)

	switch inst.opcode {
	case OpTypeBool, OpTypeInt, OpTypeFloat:
		return typeID
	case OpTypeVector, OpTypeMatrix, OpTypeArray, OpTypeRuntimeArray, OpTypePointer:
		return b.ScalarTypeID(b.ContainedTypeID(typeID))
	default:
		panic(fmt.Sprintf("spirv: %v has no scalar type", inst.opcode))
	}
}

// ContainedTypeIDAt returns the type of member of an aggregate, the
// component type of a vector, or the pointee of a pointer.
func (b *Builder) ContainedTypeIDAt(typeID ID, member int) ID {
	inst := b.module.Instruction(typeID)

	switch inst.opcode {
	case OpTypeVector, OpTypeMatrix, OpTypeArray, OpTypeRuntimeArray, OpTypeSampledImage:
		return inst.IDOperand(0)
	case OpTypePointer:
		return inst.IDOperand(1)
	case OpTypeStruct:
		return inst.IDOperand(member)
	default:
		panic(fmt.Sprintf("spirv: %v has no contained type", inst.opcode))
	}
}

// ContainedTypeID returns the first contained type.
func (b *Builder) ContainedTypeID(typeID ID) ID { return b.ContainedTypeIDAt(typeID, 0) }

// DerefTypeID returns the pointee type of a pointer-typed result.
func (b *Builder) DerefTypeID(id ID) ID {
	typeID := b.TypeOf(id)
	if !b.IsPointerType(typeID) {
		panic(fmt.Sprintf("spirv: %%%d is not a pointer", id))
	}
	return b.ContainedTypeID(typeID)
}

// StorageClassOf returns the storage class of a pointer-typed result.
func (b *Builder) StorageClassOf(id ID) StorageClass { return b.module.StorageClass(b.TypeOf(id)) }

// ImageTypeOf returns the image type of an image or sampled-image result.
func (b *Builder) ImageTypeOf(id ID) ID {
	typeID := b.TypeOf(id)
	if b.IsSampledImageType(typeID) {
		typeID = b.ContainedTypeID(typeID)
	}
	return typeID
}

// TypeDimensionality returns the Dim of an image type.
func (b *Builder) TypeDimensionality(imageType ID) Dim {
	inst := b.module.Instruction(imageType)
	if inst.opcode != OpTypeImage {
		panic(fmt.Sprintf("spirv: %v is not an image type", inst.opcode))
	}
	return Dim(inst.ImmediateOperand(1))
}

// IsArrayedImageType reports whether an image type is arrayed.
func (b *Builder) IsArrayedImageType(imageType ID) bool {
	inst := b.module.Instruction(imageType)
	if inst.opcode != OpTypeImage {
		panic(fmt.Sprintf("spirv: %v is not an image type", inst.opcode))
	}
	return inst.ImmediateOperand(3) != 0
}

// ScalarTypeWidth returns the bit width of an int or float type.
func (b *Builder) ScalarTypeWidth(typeID ID) int {
	inst := b.module.Instruction(b.ScalarTypeID(typeID))
	if inst.opcode != OpTypeInt && inst.opcode != OpTypeFloat {
		return 0
	}
	return int(inst.ImmediateOperand(0))
}

// IsPointer reports whether id has a pointer type.
func (b *Builder) IsPointer(id ID) bool { return b.IsPointerType(b.TypeOf(id)) }

// IsScalar reports whether id has a scalar type.
func (b *Builder) IsScalar(id ID) bool { return b.IsScalarType(b.TypeOf(id)) }

// IsVector reports whether id has a vector type.
func (b *Builder) IsVector(id ID) bool { return b.IsVectorType(b.TypeOf(id)) }

// IsMatrix reports whether id has a matrix type.
func (b *Builder) IsMatrix(id ID) bool { return b.IsMatrixType(b.TypeOf(id)) }

// IsAggregate reports whether id has an array or struct type.
func (b *Builder) IsAggregate(id ID) bool { return b.IsAggregateType(b.TypeOf(id)) }

// IsBoolType reports whether typeID is bool.
func (b *Builder) IsBoolType(typeID ID) bool { return b.TypeClass(typeID) == OpTypeBool }

// IsIntType reports whether typeID is an integer type.
func (b *Builder) IsIntType(typeID ID) bool { return b.TypeClass(typeID) == OpTypeInt }

// IsFloatType reports whether typeID is a float type.
func (b *Builder) IsFloatType(typeID ID) bool { return b.TypeClass(typeID) == OpTypeFloat }

// IsPointerType reports whether typeID is a pointer type.
func (b *Builder) IsPointerType(typeID ID) bool { return b.TypeClass(typeID) == OpTypePointer }

// IsStructType reports whether typeID is a struct type.
func (b *Builder) IsStructType(typeID ID) bool { return b.TypeClass(typeID) == OpTypeStruct }

// IsArrayType reports whether typeID is a sized array type.
func (b *Builder) IsArrayType(typeID ID) bool { return b.TypeClass(typeID) == OpTypeArray }

// IsVectorType reports whether typeID is a vector type.
func (b *Builder) IsVectorType(typeID ID) bool { return b.TypeClass(typeID) == OpTypeVector }

// IsMatrixType reports whether typeID is a matrix type.
func (b *Builder) IsMatrixType(typeID ID) bool { return b.TypeClass(typeID) == OpTypeMatrix }

// IsImageType reports whether typeID is an image type.
func (b *Builder) IsImageType(typeID ID) bool { return b.TypeClass(typeID) == OpTypeImage }

// IsSampledImageType reports whether typeID is a sampled image type.
func (b *Builder) IsSampledImageType(typeID ID) bool {
	return b.TypeClass(typeID) == OpTypeSampledImage
}

// IsUintType reports whether typeID is an unsigned integer type.
func (b *Builder) IsUintType(typeID ID) bool {
	return b.IsIntType(typeID) && b.module.Instruction(typeID).ImmediateOperand(1) == 0
}

// IsScalarType reports whether typeID is bool, integer or float.
func (b *Builder) IsScalarType(typeID ID) bool {
	switch b.TypeClass(typeID) {
	case OpTypeInt, OpTypeFloat, OpTypeBool:
		return true
	default:
		return false
	}
}

// IsAggregateType reports whether typeID is an array or struct type.
func (b *Builder) IsAggregateType(typeID ID) bool {
	return b.IsArrayType(typeID) || b.IsStructType(typeID)
}
