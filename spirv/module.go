package spirv

import (
	"fmt"
)

// Module owns every result-bearing instruction of a build, indexed by id,
// and the ordered list of functions.
type Module struct {
	idToInst  []*Instruction
	functions []*Function
}

func (m *Module) mapInstruction(inst *Instruction) {
	id := inst.resultID
	if id == NoResult {
		panic(fmt.Sprintf("spirv: mapping %v without a result id", inst.opcode))
	}

	if int(id) >= len(m.idToInst) {
		grown := make([]*Instruction, int(id)+16)
		copy(grown, m.idToInst)
		m.idToInst = grown
	}

	if m.idToInst[id] != nil {
		panic(fmt.Sprintf("spirv: id %d mapped twice (%v, %v)", id, m.idToInst[id].opcode, inst.opcode))
	}

	m.idToInst[id] = inst
}

// Instruction returns the instruction defining id.
func (m *Module) Instruction(id ID) *Instruction {
	if int(id) >= len(m.idToInst) || m.idToInst[id] == nil {
		panic(fmt.Sprintf("spirv: id %d is not mapped", id))
	}
	return m.idToInst[id]
}

func (m *Module) lookup(id ID) *Instruction {
	if int(id) >= len(m.idToInst) {
		return nil
	}
	return m.idToInst[id]
}

// TypeID returns the result type of id.
func (m *Module) TypeID(id ID) ID {
	return m.Instruction(id).typeID
}

// StorageClass returns the storage class of a pointer type.
func (m *Module) StorageClass(pointerType ID) StorageClass {
	inst := m.Instruction(pointerType)
	if inst.opcode != OpTypePointer {
		panic(fmt.Sprintf("spirv: %%%d is %v, not a pointer type", pointerType, inst.opcode))
	}
	return StorageClass(inst.ImmediateOperand(0))
}

// Functions returns the functions in definition order.
func (m *Module) Functions() []*Function { return m.functions }

func (m *Module) addFunction(f *Function) {
	m.functions = append(m.functions, f)
}

// Function is a function definition or declaration.
// The first block is the entry block.
type Function struct {
	module      *Module
	inst        *Instruction
	params      []*Instruction
	blocks      []*Block
	declaration bool
}

func newFunction(m *Module, id, returnType, functionType ID, control FunctionControl) *Function {
	inst := NewInstruction(id, returnType, OpFunction)
	inst.AddImmediateOperand(uint32(control))
	inst.AddIDOperand(functionType)

	f := &Function{
		module: m,
		inst:   inst,
	}

	m.mapInstruction(inst)

	return f
}

// ID returns the function result id.
func (f *Function) ID() ID { return f.inst.resultID }

// ReturnType returns the return type id.
func (f *Function) ReturnType() ID { return f.inst.typeID }

// FunctionType returns the function type id.
func (f *Function) FunctionType() ID { return f.inst.IDOperand(1) }

// NumParams returns the number of parameters.
func (f *Function) NumParams() int { return len(f.params) }

// IsDeclaration reports whether the function has no body.
func (f *Function) IsDeclaration() bool {
	return f.declaration
}

// ParamID returns the id of parameter i.
func (f *Function) ParamID(i int) ID { return f.params[i].resultID }

func (f *Function) addParam(inst *Instruction) {
	f.module.mapInstruction(inst)
	f.params = append(f.params, inst)
}

// Blocks returns the blocks in serialization order.
func (f *Function) Blocks() []*Block { return f.blocks }

// EntryBlock returns the first block, or nil for a declaration.
func (f *Function) EntryBlock() *Block {
	if len(f.blocks) == 0 {
		return nil
	}
	return f.blocks[0]
}

// AddBlock appends b to the function's block list.
func (f *Function) AddBlock(b *Block) {
	if b.parent != f {
		panic(fmt.Sprintf("spirv: block %%%d belongs to another function", b.ID()))
	}
	if b.attached {
		panic(fmt.Sprintf("spirv: block %%%d attached twice", b.ID()))
	}

	b.attached = true
	f.blocks = append(f.blocks, b)
}

// AddLocalVariable places a Function-storage OpVariable in the entry block.
func (f *Function) AddLocalVariable(inst *Instruction) {
	if len(f.blocks) == 0 {
		panic(fmt.Sprintf("spirv: function %%%d has no entry block", f.ID()))
	}
	f.blocks[0].addLocalVariable(inst)
}

func (f *Function) encode(dst []uint32) []uint32 {
	dst = f.inst.Encode(dst)

	for _, p := range f.params {
		dst = p.Encode(dst)
	}

	for _, b := range f.blocks {
		dst = b.encode(dst)
	}

	return NewInstruction(NoResult, NoType, OpFunctionEnd).Encode(dst)
}

// Block is a basic block.
type Block struct {
	parent         *Function
	label          *Instruction
	instructions   []*Instruction
	localVariables []*Instruction
	predecessors   []*Block
	successors     []*Block
	unreachable    bool
	attached       bool
}

func newBlock(id ID, parent *Function) *Block {
	b := &Block{
		parent: parent,
		label:  NewInstruction(id, NoType, OpLabel),
	}

	b.label.block = b
	parent.module.mapInstruction(b.label)

	return b
}

// ID returns the label id.
func (b *Block) ID() ID { return b.label.resultID }

// Parent returns the owning function.
func (b *Block) Parent() *Function { return b.parent }

// Predecessors returns the blocks branching here.
func (b *Block) Predecessors() []*Block { return b.predecessors }

// Successors returns the blocks this block branches to.
func (b *Block) Successors() []*Block { return b.successors }

// Instructions returns the block body.
func (b *Block) Instructions() []*Instruction {
	return b.instructions
}

// LocalVariables returns the function variables declared in this block.
func (b *Block) LocalVariables() []*Instruction {
	return b.localVariables
}

// SetUnreachable marks the block as having no structured predecessor.
func (b *Block) SetUnreachable() { b.unreachable = true }

// IsUnreachable reports whether SetUnreachable was called.
func (b *Block) IsUnreachable() bool { return b.unreachable }

// AddInstruction appends inst and maps its result id.
func (b *Block) AddInstruction(inst *Instruction) {
	if b.IsTerminated() {
		panic(fmt.Sprintf("spirv: %v appended to terminated block %%%d", inst.opcode, b.ID()))
	}

	inst.block = b
	b.instructions = append(b.instructions, inst)

	if inst.resultID != NoResult {
		b.parent.module.mapInstruction(inst)
	}
}

func (b *Block) addLocalVariable(inst *Instruction) {
	inst.block = b
	b.localVariables = append(b.localVariables, inst)
	b.parent.module.mapInstruction(inst)
}

// AddPredecessor records the edge pred -> b on both ends.
func (b *Block) AddPredecessor(pred *Block) {
	b.predecessors = append(b.predecessors, pred)
	pred.successors = append(pred.successors, b)
}

// IsTerminated reports whether the last instruction ends the block.
func (b *Block) IsTerminated() bool {
	if len(b.instructions) == 0 {
		return false
	}
	return b.instructions[len(b.instructions)-1].opcode.IsTerminator()
}

// MergeInstruction returns the OpSelectionMerge or OpLoopMerge governing
// the block's terminator, if any.
func (b *Block) MergeInstruction() *Instruction {
	if len(b.instructions) < 2 {
		return nil
	}

	inst := b.instructions[len(b.instructions)-2]
	if inst.opcode == OpSelectionMerge || inst.opcode == OpLoopMerge {
		return inst
	}

	return nil
}

func (b *Block) encode(dst []uint32) []uint32 {
	dst = b.label.Encode(dst)

	for _, v := range b.localVariables {
		dst = v.Encode(dst)
	}

	for _, inst := range b.instructions {
		dst = inst.Encode(dst)
	}

	return dst
}
