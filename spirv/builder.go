package spirv

import (
	"fmt"
)

// Builder constructs one SPIR-V module in memory.
//
// A Builder is a single-threaded context: one build point and one access
// chain exist at a time and every call mutates them in place.
type Builder struct {
	opts Options
	log  *BuildLogger

	uniqueID ID
	module   Module

	capabilities     map[Capability]struct{}
	extensions       map[string]struct{}
	imports          []*Instruction
	importIDs        map[string]ID
	addressModel     AddressingModel
	memoryModel      MemoryModel
	memoryModelSet   bool
	entryPoints      []*Instruction
	executionModes   []*Instruction
	strings          []*Instruction
	stringIDs        map[string]ID
	source           SourceLanguage
	sourceVersion    uint32
	sourceFileID     ID
	sourceText       string
	sourceExtensions []*Instruction
	moduleProcesses  []*Instruction
	names            []*Instruction
	decorations      []*Instruction
	globals          []*Instruction // types, constants and global variables
	declarations     []*Function

	entryPointFunction *Function

	buildPoint  *Block
	currentLine int

	accessChain  AccessChain
	switchMerges []*Block
	loops        []LoopBlocks

	groupedTypes           map[OpCode][]*Instruction
	groupedConstants       map[OpCode][]*Instruction
	groupedStructConstants map[ID][]*Instruction
	nullConstants          []*Instruction

	specConstantOpMode bool
}

// NewBuilder creates an empty builder. No ids are minted.
func NewBuilder(opts Options) *Builder {
	return &Builder{
		opts:                   opts,
		log:                    NewBuildLogger(opts.Logger),
		capabilities:           make(map[Capability]struct{}),
		extensions:             make(map[string]struct{}),
		importIDs:              make(map[string]ID),
		stringIDs:              make(map[string]ID),
		groupedTypes:           make(map[OpCode][]*Instruction),
		groupedConstants:       make(map[OpCode][]*Instruction),
		groupedStructConstants: make(map[ID][]*Instruction),
	}
}

// Logger returns the soft-failure log of this build.
func (b *Builder) Logger() *BuildLogger { return b.log }

// Module returns the instruction store.
func (b *Builder) Module() *Module { return &b.module }

// UniqueID mints a fresh id.
func (b *Builder) UniqueID() ID {
	b.uniqueID++
	return b.uniqueID
}

// UniqueIDs reserves n consecutive ids and returns the first.
func (b *Builder) UniqueIDs(n int) ID {
	first := b.uniqueID + 1
	b.uniqueID += ID(u32(n))
	return first
}

// Bound is the id bound written to the module header.
func (b *Builder) Bound() uint32 { return uint32(b.uniqueID) + 1 }

// Instruction resolves id.
func (b *Builder) Instruction(id ID) *Instruction { return b.module.Instruction(id) }

func (b *Builder) addGlobal(inst *Instruction) {
	b.globals = append(b.globals, inst)
	b.module.mapInstruction(inst)
}

// AddCapability adds a capability.
func (b *Builder) AddCapability(c Capability) {
	b.capabilities[c] = struct{}{}
}

// HasCapability reports whether c was added.
func (b *Builder) HasCapability(c Capability) bool {
	_, ok := b.capabilities[c]
	return ok
}

// AddExtension adds an extension.
func (b *Builder) AddExtension(ext string) {
	b.extensions[ext] = struct{}{}
}

// Import returns the id of an extended instruction set, importing it once.
func (b *Builder) Import(name string) ID {
	if id, ok := b.importIDs[name]; ok {
		return id
	}

	inst := NewInstruction(b.UniqueID(), NoType, OpExtInstImport)
	inst.AddStringOperand(name)

	b.imports = append(b.imports, inst)
	b.module.mapInstruction(inst)
	b.importIDs[name] = inst.resultID

	return inst.resultID
}

// SetMemoryModel sets the addressing and memory model.
func (b *Builder) SetMemoryModel(addr AddressingModel, mem MemoryModel) {
	b.addressModel = addr
	b.memoryModel = mem
	b.memoryModelSet = true
}

// AddEntryPoint declares fn as an entry point. Interface ids may be
// appended to the returned instruction.
func (b *Builder) AddEntryPoint(model ExecutionModel, fn *Function, name string) *Instruction {
	inst := NewInstruction(NoResult, NoType, OpEntryPoint)
	inst.AddImmediateOperand(uint32(model))
	inst.AddIDOperand(fn.ID())
	inst.AddStringOperand(name)

	b.entryPoints = append(b.entryPoints, inst)

	return inst
}

// AddExecutionMode adds an execution mode for fn.
func (b *Builder) AddExecutionMode(fn *Function, mode ExecutionMode, params ...uint32) {
	inst := NewInstruction(NoResult, NoType, OpExecutionMode)
	inst.AddIDOperand(fn.ID())
	inst.AddImmediateOperand(uint32(mode))
	inst.AddImmediateOperands(params)

	b.executionModes = append(b.executionModes, inst)
}

// StringID returns the OpString id for s, creating it once.
func (b *Builder) StringID(s string) ID {
	if id, ok := b.stringIDs[s]; ok {
		return id
	}

	inst := NewInstruction(b.UniqueID(), NoType, OpString)
	inst.AddStringOperand(s)

	b.strings = append(b.strings, inst)
	b.module.mapInstruction(inst)
	b.stringIDs[s] = inst.resultID

	return inst.resultID
}

// SetSource sets the source language and version.
func (b *Builder) SetSource(lang SourceLanguage, version uint32) {
	b.source = lang
	b.sourceVersion = version
}

// SetSourceFile names the main source file. OpLine refers to it.
func (b *Builder) SetSourceFile(name string) {
	b.sourceFileID = b.StringID(name)
}

// SetSourceText embeds the source text. It is written only together
// with a source file.
func (b *Builder) SetSourceText(text string) {
	b.sourceText = text
}

// AddSourceExtension adds a source extension.
func (b *Builder) AddSourceExtension(ext string) {
	inst := NewInstruction(NoResult, NoType, OpSourceExtension)
	inst.AddStringOperand(ext)
	b.sourceExtensions = append(b.sourceExtensions, inst)
}

// AddModuleProcessed records a processing step applied to the module.
func (b *Builder) AddModuleProcessed(process string) {
	inst := NewInstruction(NoResult, NoType, OpModuleProcessed)
	inst.AddStringOperand(process)
	b.moduleProcesses = append(b.moduleProcesses, inst)
}

// AddName adds a debug name for id.
func (b *Builder) AddName(id ID, name string) {
	inst := NewInstruction(NoResult, NoType, OpName)
	inst.AddIDOperand(id)
	inst.AddStringOperand(name)
	b.names = append(b.names, inst)
}

// AddMemberName adds a debug name for a struct member.
func (b *Builder) AddMemberName(id ID, member int, name string) {
	inst := NewInstruction(NoResult, NoType, OpMemberName)
	inst.AddIDOperand(id)
	inst.AddImmediateOperand(u32(member))
	inst.AddStringOperand(name)
	b.names = append(b.names, inst)
}

// AddDecoration decorates id with literal parameters.
func (b *Builder) AddDecoration(id ID, dec Decoration, params ...uint32) {
	inst := NewInstruction(NoResult, NoType, OpDecorate)
	inst.AddIDOperand(id)
	inst.AddImmediateOperand(uint32(dec))
	inst.AddImmediateOperands(params)
	b.decorations = append(b.decorations, inst)
}

// AddDecorationString adds a decoration with a string operand.
func (b *Builder) AddDecorationString(id ID, dec Decoration, s string) {
	inst := NewInstruction(NoResult, NoType, OpDecorateString)
	inst.AddIDOperand(id)
	inst.AddImmediateOperand(uint32(dec))
	inst.AddStringOperand(s)
	b.decorations = append(b.decorations, inst)
}

// AddDecorationID decorates id with id parameters.
func (b *Builder) AddDecorationID(id ID, dec Decoration, params ...ID) {
	inst := NewInstruction(NoResult, NoType, OpDecorateID)
	inst.AddIDOperand(id)
	inst.AddImmediateOperand(uint32(dec))
	inst.AddIDOperands(params)
	b.decorations = append(b.decorations, inst)
}

// AddMemberDecoration adds a decoration to a struct member.
func (b *Builder) AddMemberDecoration(id ID, member int, dec Decoration, params ...uint32) {
	inst := NewInstruction(NoResult, NoType, OpMemberDecorate)
	inst.AddIDOperand(id)
	inst.AddImmediateOperand(u32(member))
	inst.AddImmediateOperand(uint32(dec))
	inst.AddImmediateOperands(params)
	b.decorations = append(b.decorations, inst)
}

// SetLine records the current source line. With EmitOpLines an OpLine
// is added to the build point whenever the line changes.
func (b *Builder) SetLine(line int) {
	if line == 0 || line == b.currentLine {
		return
	}

	b.currentLine = line

	if !b.opts.EmitOpLines || b.sourceFileID == NoResult {
		return
	}
	if b.buildPoint == nil || b.buildPoint.IsTerminated() {
		return
	}

	inst := NewInstruction(NoResult, NoType, OpLine)
	inst.AddIDOperand(b.sourceFileID)
	inst.AddImmediateOperand(u32(line))
	inst.AddImmediateOperand(0)

	b.buildPoint.AddInstruction(inst)
}

// SetBuildPoint makes blk receive subsequent instructions.
func (b *Builder) SetBuildPoint(blk *Block) { b.buildPoint = blk }

// BuildPoint returns the current block.
func (b *Builder) BuildPoint() *Block { return b.buildPoint }

// addInstruction appends inst to the build point.
func (b *Builder) addInstruction(inst *Instruction) {
	if b.buildPoint == nil {
		panic(fmt.Sprintf("spirv: %v emitted with no build point", inst.opcode))
	}
	b.buildPoint.AddInstruction(inst)
}
