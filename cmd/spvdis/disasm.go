package main

import (
	"bytes"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/x448/float16"

	"github.com/gogpu/spvbuilder/spirv"
)

// resultColumn is where the "=" of result instructions lines up.
const resultColumn = 14

type palette struct {
	opcode  *color.Color
	id      *color.Color
	str     *color.Color
	number  *color.Color
	comment *color.Color
}

func newPalette(enabled bool) palette {
	p := palette{
		opcode:  color.New(color.FgBlue, color.Bold),
		id:      color.New(color.FgYellow),
		str:     color.New(color.FgGreen),
		number:  color.New(color.FgRed),
		comment: color.New(color.FgHiBlack),
	}

	for _, c := range []*color.Color{p.opcode, p.id, p.str, p.number, p.comment} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}

	return p
}

// printer renders a parsed module as spvasm-like text.
type printer struct {
	buf    bytes.Buffer
	pal    palette
	header bool

	// scalar types seen so far, for formatting constants
	types map[spirv.ID]spirv.ParsedInstruction
}

func newPrinter(useColor, header bool) *printer {
	return &printer{
		pal:    newPalette(useColor),
		header: header,
		types:  make(map[spirv.ID]spirv.ParsedInstruction),
	}
}

func (p *printer) module(bin *spirv.Binary) {
	if p.header {
		h := bin.Header
		p.comment("SPIR-V")
		p.comment(fmt.Sprintf("Version: %d.%d", h.Version>>16&0xff, h.Version>>8&0xff))
		p.comment(fmt.Sprintf("Generator: %#08x", h.Generator))
		p.comment(fmt.Sprintf("Bound: %d", h.Bound))
		p.comment(fmt.Sprintf("Schema: %d", h.Schema))
	}

	for _, inst := range bin.Instructions {
		p.instruction(inst)
	}
}

func (p *printer) comment(s string) {
	p.buf.WriteString(p.pal.comment.Sprint("; " + s))
	p.buf.WriteByte('\n')
}

func (p *printer) instruction(inst spirv.ParsedInstruction) {
	if inst.Opcode == spirv.OpTypeInt || inst.Opcode == spirv.OpTypeFloat {
		p.types[inst.ResultID] = inst
	}

	if inst.ResultID != spirv.NoResult {
		plain := "%" + strconv.FormatUint(uint64(inst.ResultID), 10)
		p.buf.WriteString(strings.Repeat(" ", max(0, resultColumn-len(plain))))
		p.buf.WriteString(p.id(uint32(inst.ResultID)))
		p.buf.WriteString(" = ")
	} else {
		p.buf.WriteString(strings.Repeat(" ", resultColumn+3))
	}

	p.buf.WriteString(p.pal.opcode.Sprint(inst.Opcode.String()))

	words := make([]string, 0, len(inst.Operands)+1)
	if inst.TypeID != spirv.NoType {
		words = append(words, p.id(uint32(inst.TypeID)))
	}
	words = append(words, p.operands(inst)...)

	for _, w := range words {
		p.buf.WriteByte(' ')
		p.buf.WriteString(w)
	}

	p.buf.WriteByte('\n')
}

func (p *printer) id(v uint32) string {
	return p.pal.id.Sprintf("%%%d", v)
}

// cursor consumes operand words left to right.
type cursor struct {
	p     *printer
	words []uint32
	out   []string
}

func (c *cursor) next() (uint32, bool) {
	if len(c.words) == 0 {
		return 0, false
	}

	w := c.words[0]
	c.words = c.words[1:]

	return w, true
}

func (c *cursor) id() {
	if w, ok := c.next(); ok {
		c.out = append(c.out, c.p.id(w))
	}
}

func (c *cursor) ids() {
	for len(c.words) != 0 {
		c.id()
	}
}

func (c *cursor) literal() {
	if w, ok := c.next(); ok {
		c.out = append(c.out, c.p.pal.number.Sprint(w))
	}
}

func (c *cursor) literals() {
	for len(c.words) != 0 {
		c.literal()
	}
}

func (c *cursor) str() {
	if len(c.words) == 0 {
		return
	}

	s, n := spirv.LiteralString(c.words)
	c.words = c.words[n:]
	c.out = append(c.out, c.p.pal.str.Sprint(strconv.Quote(s)))
}

func (c *cursor) word(s string) {
	c.out = append(c.out, s)
}

func named[K ~uint32](c *cursor, names map[K]string) {
	if w, ok := c.next(); ok {
		c.word(enumName(names, w))
	}
}

// imageIDOperands is the number of id operands before the image operand mask.
var imageIDOperands = map[spirv.OpCode]int{
	spirv.OpImageSampleImplicitLod:               2,
	spirv.OpImageSampleExplicitLod:               2,
	spirv.OpImageSampleProjImplicitLod:           2,
	spirv.OpImageSampleProjExplicitLod:           2,
	spirv.OpImageSampleDrefImplicitLod:           3,
	spirv.OpImageSampleDrefExplicitLod:           3,
	spirv.OpImageSampleProjDrefImplicitLod:       3,
	spirv.OpImageSampleProjDrefExplicitLod:       3,
	spirv.OpImageFetch:                           2,
	spirv.OpImageGather:                          3,
	spirv.OpImageDrefGather:                      3,
	spirv.OpImageRead:                            2,
	spirv.OpImageWrite:                           3,
	spirv.OpImageSparseSampleImplicitLod:         2,
	spirv.OpImageSparseSampleExplicitLod:         2,
	spirv.OpImageSparseSampleProjImplicitLod:     2,
	spirv.OpImageSparseSampleProjExplicitLod:     2,
	spirv.OpImageSparseSampleDrefImplicitLod:     3,
	spirv.OpImageSparseSampleDrefExplicitLod:     3,
	spirv.OpImageSparseSampleProjDrefImplicitLod: 3,
	spirv.OpImageSparseSampleProjDrefExplicitLod: 3,
	spirv.OpImageSparseFetch:                     2,
	spirv.OpImageSparseGather:                    3,
	spirv.OpImageSparseDrefGather:                3,
	spirv.OpImageSparseRead:                      2,
}

//nolint:gocyclo,cyclop,funlen // one case per operand layout
func (p *printer) operands(inst spirv.ParsedInstruction) []string {
	c := &cursor{p: p, words: inst.Operands}

	switch op := inst.Opcode; op {
	case spirv.OpCapability:
		named(c, capabilityNames)

	case spirv.OpExtension, spirv.OpExtInstImport, spirv.OpSourceExtension,
		spirv.OpModuleProcessed, spirv.OpSourceContinued, spirv.OpString:
		c.str()

	case spirv.OpMemoryModel:
		named(c, addressingModelNames)
		named(c, memoryModelNames)

	case spirv.OpEntryPoint:
		named(c, executionModelNames)
		c.id()
		c.str()
		c.ids()

	case spirv.OpExecutionMode:
		c.id()
		named(c, executionModeNames)
		c.literals()

	case spirv.OpSource:
		named(c, sourceLanguageNames)
		c.literal()
		c.id()
		c.str()

	case spirv.OpName:
		c.id()
		c.str()

	case spirv.OpMemberName:
		c.id()
		c.literal()
		c.str()

	case spirv.OpLine:
		c.id()
		c.literals()

	case spirv.OpDecorate:
		c.id()
		p.decoration(c)

	case spirv.OpMemberDecorate:
		c.id()
		c.literal()
		p.decoration(c)

	case spirv.OpDecorateString:
		c.id()
		named(c, decorationNames)
		c.str()

	case spirv.OpDecorateID:
		c.id()
		named(c, decorationNames)
		c.ids()

	case spirv.OpTypeInt, spirv.OpTypeFloat:
		c.literals()

	case spirv.OpTypeVector, spirv.OpTypeMatrix:
		c.id()
		c.literal()

	case spirv.OpTypeImage:
		c.id()
		named(c, dimNames)
		c.literals()

	case spirv.OpTypePointer:
		named(c, storageClassNames)
		c.id()

	case spirv.OpConstant, spirv.OpSpecConstant:
		c.word(p.pal.number.Sprint(p.constant(inst)))
		c.words = nil

	case spirv.OpVariable:
		named(c, storageClassNames)
		c.id()

	case spirv.OpFunction:
		if w, ok := c.next(); ok {
			if w == uint32(spirv.FunctionControlNone) {
				c.word("None")
			} else {
				c.word(p.pal.number.Sprint(w))
			}
		}
		c.id()

	case spirv.OpLoad:
		c.id()
		c.literals()

	case spirv.OpStore:
		c.id()
		c.id()
		c.literals()

	case spirv.OpCompositeExtract:
		c.id()
		c.literals()

	case spirv.OpCompositeInsert, spirv.OpVectorShuffle:
		c.id()
		c.id()
		c.literals()

	case spirv.OpExtInst:
		c.id()
		c.literal()
		c.ids()

	case spirv.OpSelectionMerge:
		c.id()
		c.literal()

	case spirv.OpLoopMerge:
		c.id()
		c.id()
		c.literals()

	case spirv.OpBranchConditional:
		c.id()
		c.id()
		c.id()
		c.literals()

	case spirv.OpSwitch:
		c.id()
		c.id()
		for len(c.words) != 0 {
			c.literal()
			c.id()
		}

	default:
		if n, ok := imageIDOperands[op]; ok {
			for range n {
				c.id()
			}
			c.literal()
		}

		c.ids()
	}

	return c.out
}

func (p *printer) decoration(c *cursor) {
	w, ok := c.next()
	if !ok {
		return
	}

	c.word(enumName(decorationNames, w))

	switch spirv.Decoration(w) {
	case spirv.DecorationBuiltIn:
		named(c, builtInNames)
	case spirv.DecorationLinkageAttributes:
		c.str()
		named(c, linkageTypeNames)
	default:
		c.literals()
	}
}

// constant formats a scalar constant according to its type.
func (p *printer) constant(inst spirv.ParsedInstruction) string {
	ops := inst.Operands
	if len(ops) == 0 {
		return ""
	}

	t, ok := p.types[inst.TypeID]
	if !ok || len(t.Operands) == 0 {
		return strconv.FormatUint(uint64(ops[0]), 10)
	}

	width := t.Operands[0]

	switch t.Opcode {
	case spirv.OpTypeFloat:
		switch {
		case width == 16:
			return strconv.FormatFloat(float64(float16.Frombits(uint16(ops[0])).Float32()), 'g', -1, 32)
		case width == 64 && len(ops) > 1:
			return strconv.FormatFloat(math.Float64frombits(uint64(ops[1])<<32|uint64(ops[0])), 'g', -1, 64)
		default:
			return strconv.FormatFloat(float64(math.Float32frombits(ops[0])), 'g', -1, 32)
		}
	case spirv.OpTypeInt:
		signed := len(t.Operands) > 1 && t.Operands[1] == 1

		var v uint64
		if width == 64 && len(ops) > 1 {
			v = uint64(ops[1])<<32 | uint64(ops[0])
		} else {
			v = uint64(ops[0])
		}

		if !signed {
			return strconv.FormatUint(v, 10)
		}

		switch width {
		case 8:
			return strconv.FormatInt(int64(int8(v)), 10)
		case 16:
			return strconv.FormatInt(int64(int16(v)), 10)
		case 32:
			return strconv.FormatInt(int64(int32(v)), 10)
		default:
			return strconv.FormatInt(int64(v), 10)
		}
	}

	return strconv.FormatUint(uint64(ops[0]), 10)
}
