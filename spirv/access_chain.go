package spirv

import (
	"slices"
)

// AccessChain is the pending addressing state of an l-value or r-value
// expression. Nothing is emitted until the chain is loaded, stored or
// collapsed.
type AccessChain struct {
	// Base is a pointer for l-values or a value for r-values.
	Base ID

	// IndexChain holds indexes not yet turned into an access chain.
	IndexChain []ID

	// InstrID caches the collapsed OpAccessChain.
	InstrID ID

	// Swizzle is a pending static component selection.
	Swizzle []uint32

	// Component is a pending dynamic component selection.
	Component ID

	// PreSwizzleBaseType is the vector type the swizzle or component applies to.
	PreSwizzleBaseType ID

	IsRValue bool
}

func (ac AccessChain) clone() AccessChain {
	ac.IndexChain = slices.Clone(ac.IndexChain)
	ac.Swizzle = slices.Clone(ac.Swizzle)
	return ac
}

// AccessChain returns a copy of the current chain, so a nested expression
// can be resolved and the chain restored with SetAccessChain.
func (b *Builder) AccessChain() AccessChain { return b.accessChain.clone() }

// SetAccessChain replaces the access chain with a copy of ac.
func (b *Builder) SetAccessChain(ac AccessChain) { b.accessChain = ac.clone() }

// ClearAccessChain starts a new expression.
func (b *Builder) ClearAccessChain() { b.accessChain = AccessChain{} }

// SetAccessChainLValue starts addressing from the pointer lvalue.
func (b *Builder) SetAccessChainLValue(lvalue ID) {
	if !b.IsPointer(lvalue) {
		panic("spirv: l-value base is not a pointer")
	}

	b.accessChain.Base = lvalue
	b.accessChain.InstrID = NoResult
}

// SetAccessChainRValue starts selecting from the value rvalue.
func (b *Builder) SetAccessChainRValue(rvalue ID) {
	b.accessChain.IsRValue = true
	b.accessChain.Base = rvalue
	b.accessChain.InstrID = NoResult
}

// AccessChainPush appends a member or element index.
func (b *Builder) AccessChainPush(index ID) {
	b.accessChain.IndexChain = append(b.accessChain.IndexChain, index)
	b.accessChain.InstrID = NoResult
}

// AccessChainPushSwizzle applies a static swizzle of the vector type
// preSwizzleBaseType. Stacked swizzles are composed into one.
func (b *Builder) AccessChainPushSwizzle(swizzle []uint32, preSwizzleBaseType ID) {
	ac := &b.accessChain

	if ac.PreSwizzleBaseType == NoType {
		ac.PreSwizzleBaseType = preSwizzleBaseType
	}

	if len(ac.Swizzle) != 0 {
		old := ac.Swizzle
		composed := make([]uint32, len(swizzle))
		for i, c := range swizzle {
			if int(c) >= len(old) {
				panic("spirv: swizzle selects past the previous swizzle")
			}
			composed[i] = old[c]
		}
		ac.Swizzle = composed
	} else {
		ac.Swizzle = slices.Clone(swizzle)
	}

	b.simplifyAccessChainSwizzle()
}

// simplifyAccessChainSwizzle drops a swizzle selecting every component in order.
func (b *Builder) simplifyAccessChainSwizzle() {
	ac := &b.accessChain

	if b.NumTypeConstituents(ac.PreSwizzleBaseType) > len(ac.Swizzle) {
		return
	}

	for i, c := range ac.Swizzle {
		if u32(i) != c {
			return
		}
	}

	ac.Swizzle = nil
	if ac.Component == NoResult {
		ac.PreSwizzleBaseType = NoType
	}
}

// AccessChainPushComponent selects a component by the runtime index component.
func (b *Builder) AccessChainPushComponent(component, preSwizzleBaseType ID) {
	ac := &b.accessChain

	ac.Component = component
	if ac.PreSwizzleBaseType == NoType {
		ac.PreSwizzleBaseType = preSwizzleBaseType
	}
}

// transferAccessChainSwizzle turns a single selected component into an
// ordinary index. Multi-component swizzles and components of bool vectors
// stay pending.
func (b *Builder) transferAccessChainSwizzle(dynamic bool) {
	ac := &b.accessChain

	if len(ac.Swizzle) == 0 && ac.Component == NoResult {
		return
	}
	if len(ac.Swizzle) > 1 {
		return
	}
	if ac.PreSwizzleBaseType != NoType && b.IsVectorType(ac.PreSwizzleBaseType) &&
		b.IsBoolType(b.ContainedTypeID(ac.PreSwizzleBaseType)) {
		return
	}

	switch {
	case len(ac.Swizzle) == 1:
		if ac.Component != NoResult {
			panic("spirv: static and dynamic component selected together")
		}

		ac.IndexChain = append(ac.IndexChain, b.MakeUintConstant(ac.Swizzle[0], false))
		ac.Swizzle = nil
		ac.PreSwizzleBaseType = NoType
		ac.InstrID = NoResult
	case dynamic && ac.Component != NoResult:
		ac.IndexChain = append(ac.IndexChain, ac.Component)
		ac.Component = NoResult
		ac.PreSwizzleBaseType = NoType
		ac.InstrID = NoResult
	}
}

// remapDynamicSwizzle folds a multi-component swizzle into a pending
// dynamic component by selecting through a constant map of the swizzle.
func (b *Builder) remapDynamicSwizzle() {
	ac := &b.accessChain

	if ac.Component == NoResult || len(ac.Swizzle) <= 1 {
		return
	}

	uintType := b.MakeUintType(32)

	components := make([]ID, len(ac.Swizzle))
	for i, c := range ac.Swizzle {
		components[i] = b.MakeUintConstant(c, false)
	}

	mapType := b.MakeVectorType(uintType, len(ac.Swizzle))
	selector := b.MakeCompositeConstant(mapType, components, false)

	ac.Component = b.CreateVectorExtractDynamic(selector, uintType, ac.Component)
	ac.Swizzle = nil
}

// CollapseAccessChain emits the OpAccessChain for the pending indexes, once.
// A pending swizzle or dynamic component is left in place.
func (b *Builder) CollapseAccessChain() ID {
	ac := &b.accessChain

	if ac.IsRValue {
		panic("spirv: collapsing an r-value access chain")
	}

	if ac.InstrID != NoResult {
		return ac.InstrID
	}

	if len(ac.IndexChain) == 0 {
		return ac.Base
	}

	sc := b.StorageClassOf(ac.Base)
	ac.InstrID = b.CreateAccessChain(sc, ac.Base, ac.IndexChain)

	return ac.InstrID
}

// AccessChainStore stores value through the chain. A pending swizzle or
// dynamic component turns the store into load, insert, store.
func (b *Builder) AccessChainStore(value ID) {
	ac := &b.accessChain

	if ac.IsRValue {
		panic("spirv: store to an r-value")
	}

	b.transferAccessChainSwizzle(true)
	b.remapDynamicSwizzle()

	base := b.CollapseAccessChain()
	source := value

	if len(ac.Swizzle) != 0 {
		target := b.CreateLoad(base, MemoryAccessNone, 0)
		source = b.CreateLvalueSwizzle(b.TypeOf(target), target, source, ac.Swizzle)
	}

	if ac.Component != NoResult {
		target := b.CreateLoad(base, MemoryAccessNone, 0)
		source = b.CreateVectorInsertDynamic(target, b.TypeOf(target), source, ac.Component)
	}

	b.CreateStore(source, base, MemoryAccessNone, 0)
}

// AccessChainLoad loads the chain's value as resultType.
func (b *Builder) AccessChainLoad(resultType ID) ID {
	ac := &b.accessChain

	var id ID

	if ac.IsRValue {
		b.transferAccessChainSwizzle(false)

		if len(ac.IndexChain) == 0 {
			id = ac.Base
		} else {
			swizzleBase := resultType
			if ac.PreSwizzleBaseType != NoType {
				swizzleBase = ac.PreSwizzleBaseType
			}

			indexes, constant := b.constantIndexes(ac.IndexChain)
			if constant {
				id = b.CreateCompositeExtract(ac.Base, swizzleBase, indexes...)
			} else {
				// dynamic indexing needs addressable storage
				lvalue := b.CreateVariable(StorageClassFunction, b.TypeOf(ac.Base), "indexable", NoResult)
				b.CreateStore(ac.Base, lvalue, MemoryAccessNone, 0)

				ac.Base = lvalue
				ac.IsRValue = false
				ac.InstrID = NoResult

				id = b.CreateLoad(b.CollapseAccessChain(), MemoryAccessNone, 0)
			}
		}
	} else {
		b.transferAccessChainSwizzle(true)
		id = b.CreateLoad(b.CollapseAccessChain(), MemoryAccessNone, 0)
	}

	if len(ac.Swizzle) != 0 {
		swizzledType := b.ScalarTypeID(b.TypeOf(id))
		if len(ac.Swizzle) > 1 {
			swizzledType = b.MakeVectorType(swizzledType, len(ac.Swizzle))
		}
		id = b.CreateRvalueSwizzle(swizzledType, id, ac.Swizzle)
	}

	if ac.Component != NoResult {
		id = b.CreateVectorExtractDynamic(id, resultType, ac.Component)
	}

	return id
}

func (b *Builder) constantIndexes(chain []ID) ([]uint32, bool) {
	indexes := make([]uint32, 0, len(chain))

	for _, idx := range chain {
		if !b.IsConstantScalar(idx) {
			return nil, false
		}
		indexes = append(indexes, b.ConstantScalar(idx))
	}

	return indexes, true
}

// AccessChainGetLValue returns the pointer the chain addresses.
// The chain must not carry a swizzle or dynamic component.
func (b *Builder) AccessChainGetLValue() ID {
	ac := &b.accessChain

	if ac.IsRValue {
		panic("spirv: l-value of an r-value access chain")
	}

	b.transferAccessChainSwizzle(true)
	lvalue := b.CollapseAccessChain()

	if len(ac.Swizzle) != 0 || ac.Component != NoResult {
		panic("spirv: l-value of an access chain with a pending swizzle")
	}

	return lvalue
}

// AccessChainGetInferredType returns the type a load of the chain would
// produce without emitting code.
func (b *Builder) AccessChainGetInferredType() ID {
	ac := &b.accessChain

	if ac.Base == NoResult {
		return NoType
	}

	typeID := b.TypeOf(ac.Base)
	if !ac.IsRValue {
		typeID = b.ContainedTypeID(typeID)
	}

	for _, idx := range ac.IndexChain {
		if b.IsStructType(typeID) {
			typeID = b.ContainedTypeIDAt(typeID, int(b.ConstantScalar(idx)))
		} else {
			typeID = b.ContainedTypeID(typeID)
		}
	}

	switch {
	case len(ac.Swizzle) == 1:
		typeID = b.ContainedTypeID(typeID)
	case len(ac.Swizzle) > 1:
		typeID = b.MakeVectorType(b.ContainedTypeID(typeID), len(ac.Swizzle))
	}

	if ac.Component != NoResult {
		typeID = b.ContainedTypeID(typeID)
	}

	return typeID
}
