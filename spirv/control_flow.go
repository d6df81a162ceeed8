package spirv

import (
	"fmt"
)

// MakeEntryPoint creates the void, parameterless main function and makes
// its entry block the build point.
func (b *Builder) MakeEntryPoint(name string) *Function {
	if b.entryPointFunction != nil {
		panic("spirv: entry point function already made")
	}

	b.entryPointFunction, _ = b.MakeFunctionEntry(b.MakeVoidType(), name, nil)

	return b.entryPointFunction
}

// EntryPointFunction returns the function made by MakeEntryPoint.
func (b *Builder) EntryPointFunction() *Function { return b.entryPointFunction }

func (b *Builder) newFunction(returnType ID, name string, paramTypes []ID) *Function {
	typeID := b.MakeFunctionType(returnType, paramTypes)

	var firstParam ID
	if len(paramTypes) != 0 {
		firstParam = b.UniqueIDs(len(paramTypes))
	}

	fn := newFunction(&b.module, b.UniqueID(), returnType, typeID, FunctionControlNone)

	for i, pt := range paramTypes {
		fn.addParam(NewInstruction(firstParam+ID(u32(i)), pt, OpFunctionParameter))
	}

	if name != "" {
		b.AddName(fn.ID(), name)
	}

	return fn
}

// MakeFunctionEntry starts a function definition. The returned entry block
// is attached and becomes the build point.
func (b *Builder) MakeFunctionEntry(returnType ID, name string, paramTypes []ID) (*Function, *Block) {
	fn := b.newFunction(returnType, name, paramTypes)

	entry := newBlock(b.UniqueID(), fn)
	fn.AddBlock(entry)
	b.SetBuildPoint(entry)

	b.module.addFunction(fn)

	return fn, entry
}

// MakeFunctionDeclaration declares a function imported at link time.
func (b *Builder) MakeFunctionDeclaration(returnType ID, name string, paramTypes []ID) *Function {
	fn := b.newFunction(returnType, name, paramTypes)
	fn.declaration = true

	b.AddCapability(CapabilityLinkage)

	inst := NewInstruction(NoResult, NoType, OpDecorate)
	inst.AddIDOperand(fn.ID())
	inst.AddImmediateOperand(uint32(DecorationLinkageAttributes))
	inst.AddStringOperand(name)
	inst.AddImmediateOperand(uint32(LinkageTypeImport))
	b.decorations = append(b.decorations, inst)

	b.declarations = append(b.declarations, fn)

	return fn
}

// LeaveFunction closes the current function, adding an implicit return
// if the build point is still open.
func (b *Builder) LeaveFunction() {
	blk := b.buildPoint
	if blk == nil {
		panic("spirv: leaving a function with no build point")
	}

	if blk.IsTerminated() {
		return
	}

	fn := blk.Parent()
	if fn.ReturnType() == b.MakeVoidType() {
		b.MakeReturn(true, NoResult)
	} else {
		b.MakeReturn(true, b.CreateUndefined(fn.ReturnType()))
	}
}

// MakeReturn returns value, or nothing if value is NoResult.
// An explicit return opens a block for any dead code after it.
func (b *Builder) MakeReturn(implicit bool, value ID) {
	if value != NoResult {
		inst := NewInstruction(NoResult, NoType, OpReturnValue)
		inst.AddIDOperand(value)
		b.addInstruction(inst)
	} else {
		b.addInstruction(NewInstruction(NoResult, NoType, OpReturn))
	}

	if !implicit {
		b.createAndSetNoPredecessorBlock()
	}
}

// MakeDiscard kills the invocation.
func (b *Builder) MakeDiscard() {
	b.addInstruction(NewInstruction(NoResult, NoType, OpKill))
	b.createAndSetNoPredecessorBlock()
}

// createAndSetNoPredecessorBlock starts an unreachable block for code
// following a terminator.
func (b *Builder) createAndSetNoPredecessorBlock() {
	blk := newBlock(b.UniqueID(), b.buildPoint.Parent())
	blk.SetUnreachable()

	b.EmitBlock(blk)
}

// MakeNewBlock creates a detached block in the current function.
func (b *Builder) MakeNewBlock() *Block {
	if b.buildPoint == nil {
		panic("spirv: new block outside of a function")
	}
	return newBlock(b.UniqueID(), b.buildPoint.Parent())
}

// EmitBlock attaches blk to its function and makes it the build point.
func (b *Builder) EmitBlock(blk *Block) {
	blk.Parent().AddBlock(blk)
	b.SetBuildPoint(blk)
}

// CreateBranch branches to target and records the predecessor.
func (b *Builder) CreateBranch(target *Block) {
	inst := NewInstruction(NoResult, NoType, OpBranch)
	inst.AddIDOperand(target.ID())

	b.addInstruction(inst)
	target.AddPredecessor(b.buildPoint)
}

// CreateConditionalBranch branches on condition and records both predecessors.
func (b *Builder) CreateConditionalBranch(condition ID, thenBlock, elseBlock *Block) {
	inst := NewInstruction(NoResult, NoType, OpBranchConditional)
	inst.AddIDOperand(condition)
	inst.AddIDOperand(thenBlock.ID())
	inst.AddIDOperand(elseBlock.ID())

	b.addInstruction(inst)
	thenBlock.AddPredecessor(b.buildPoint)
	elseBlock.AddPredecessor(b.buildPoint)
}

// CreateSelectionMerge declares merge as the merge block of a selection.
func (b *Builder) CreateSelectionMerge(merge *Block, control SelectionControl) {
	inst := NewInstruction(NoResult, NoType, OpSelectionMerge)
	inst.AddIDOperand(merge.ID())
	inst.AddImmediateOperand(uint32(control))

	b.addInstruction(inst)
}

// CreateLoopMerge declares the merge and continue blocks of a loop.
func (b *Builder) CreateLoopMerge(merge, continueTarget *Block, control LoopControl, params ...uint32) {
	inst := NewInstruction(NoResult, NoType, OpLoopMerge)
	inst.AddIDOperand(merge.ID())
	inst.AddIDOperand(continueTarget.ID())
	inst.AddImmediateOperand(uint32(control))
	inst.AddImmediateOperands(params)

	b.addInstruction(inst)
}

// If builds a structured if/else. The header is the build point at
// creation; the then block becomes the new build point.
type If struct {
	b         *Builder
	condition ID
	control   SelectionControl
	fn        *Function

	header *Block
	then   *Block
	els    *Block
	merge  *Block
}

// NewIf starts an if construct on condition.
func (b *Builder) NewIf(condition ID, control SelectionControl) *If {
	if b.buildPoint == nil {
		panic("spirv: if outside of a function")
	}

	fn := b.buildPoint.Parent()

	i := &If{
		b:         b,
		condition: condition,
		control:   control,
		fn:        fn,
		header:    b.buildPoint,
		then:      newBlock(b.UniqueID(), fn),
		merge:     newBlock(b.UniqueID(), fn),
	}

	b.EmitBlock(i.then)

	return i
}

// MakeBeginElse closes the then branch and starts the else block.
func (i *If) MakeBeginElse() {
	if i.els != nil {
		panic("spirv: else begun twice")
	}

	if !i.b.buildPoint.IsTerminated() {
		i.b.CreateBranch(i.merge)
	}

	i.els = newBlock(i.b.UniqueID(), i.fn)
	i.b.EmitBlock(i.els)
}

// MakeEndIf closes the open branch, emits the header's selection merge and
// conditional branch, and continues in the merge block.
func (i *If) MakeEndIf() {
	if !i.b.buildPoint.IsTerminated() {
		i.b.CreateBranch(i.merge)
	}

	i.b.SetBuildPoint(i.header)
	i.b.CreateSelectionMerge(i.merge, i.control)

	if i.els != nil {
		i.b.CreateConditionalBranch(i.condition, i.then, i.els)
	} else {
		i.b.CreateConditionalBranch(i.condition, i.then, i.merge)
	}

	i.b.EmitBlock(i.merge)
}

// MergeBlock returns the block control reaches after the if.
func (i *If) MergeBlock() *Block { return i.merge }

// MakeSwitch emits a switch on selector with numSegments case segments.
// caseValues[k] jumps to segment valueIndexToSegment[k]; defaultSegment < 0
// makes the merge block the default target. The segment blocks are
// returned detached; NextSwitchSegment attaches them in order.
func (b *Builder) MakeSwitch(selector ID, control SelectionControl, numSegments int,
	caseValues []int32, valueIndexToSegment []int, defaultSegment int) []*Block {
	if len(caseValues) != len(valueIndexToSegment) {
		panic(fmt.Sprintf("spirv: %d case values for %d targets", len(caseValues), len(valueIndexToSegment)))
	}

	fn := b.buildPoint.Parent()

	segments := make([]*Block, numSegments)
	for s := range segments {
		segments[s] = newBlock(b.UniqueID(), fn)
	}

	merge := newBlock(b.UniqueID(), fn)

	b.CreateSelectionMerge(merge, control)

	inst := NewInstruction(NoResult, NoType, OpSwitch)
	inst.AddIDOperand(selector)

	defaultTarget := merge
	if defaultSegment >= 0 {
		defaultTarget = segments[defaultSegment]
	}
	inst.AddIDOperand(defaultTarget.ID())

	for k, v := range caseValues {
		inst.AddImmediateOperand(uint32(v))
		inst.AddIDOperand(segments[valueIndexToSegment[k]].ID())
	}

	header := b.buildPoint
	b.addInstruction(inst)

	defaultTarget.AddPredecessor(header)
	for _, s := range valueIndexToSegment {
		segments[s].AddPredecessor(header)
	}

	b.switchMerges = append(b.switchMerges, merge)

	return segments
}

// AddSwitchBreak branches to the innermost switch merge.
func (b *Builder) AddSwitchBreak() {
	if len(b.switchMerges) == 0 {
		panic("spirv: break outside of a switch")
	}

	b.CreateBranch(b.switchMerges[len(b.switchMerges)-1])
	b.createAndSetNoPredecessorBlock()
}

// NextSwitchSegment starts segment next. An open previous segment falls
// through into it.
func (b *Builder) NextSwitchSegment(segments []*Block, next int) {
	if next > 0 && !b.buildPoint.IsTerminated() {
		b.CreateBranch(segments[next])
	}

	b.EmitBlock(segments[next])
}

// EndSwitch closes the last segment and continues in the merge block.
func (b *Builder) EndSwitch(segments []*Block) {
	if len(b.switchMerges) == 0 {
		panic("spirv: end of switch without a switch")
	}

	merge := b.switchMerges[len(b.switchMerges)-1]

	if !b.buildPoint.IsTerminated() {
		b.CreateBranch(merge)
	}

	b.EmitBlock(merge)
	b.switchMerges = b.switchMerges[:len(b.switchMerges)-1]
}

// LoopBlocks are the blocks of one loop nesting level.
type LoopBlocks struct {
	Head, Body, Merge, ContinueTarget *Block
}

// MakeNewLoop creates the blocks of a loop, detached, and makes it the
// innermost loop.
func (b *Builder) MakeNewLoop() LoopBlocks {
	lb := LoopBlocks{
		Head:           b.MakeNewBlock(),
		Body:           b.MakeNewBlock(),
		Merge:          b.MakeNewBlock(),
		ContinueTarget: b.MakeNewBlock(),
	}

	b.loops = append(b.loops, lb)

	return lb
}

func (b *Builder) innermostLoop() LoopBlocks {
	if len(b.loops) == 0 {
		panic("spirv: loop control outside of a loop")
	}
	return b.loops[len(b.loops)-1]
}

// CreateLoopContinue branches to the innermost continue target.
func (b *Builder) CreateLoopContinue() {
	b.CreateBranch(b.innermostLoop().ContinueTarget)
	b.createAndSetNoPredecessorBlock()
}

// CreateLoopExit branches to the innermost loop merge.
func (b *Builder) CreateLoopExit() {
	b.CreateBranch(b.innermostLoop().Merge)
	b.createAndSetNoPredecessorBlock()
}

// CloseLoop pops the innermost loop.
func (b *Builder) CloseLoop() {
	b.innermostLoop()
	b.loops = b.loops[:len(b.loops)-1]
}
