package spirv

import "fmt"

// OpCode represents a SPIR-V opcode.
type OpCode uint16

// Opcodes
const (
	OpNop                   OpCode = 0
	OpUndef                 OpCode = 1
	OpSourceContinued       OpCode = 2
	OpSource                OpCode = 3
	OpSourceExtension       OpCode = 4
	OpName                  OpCode = 5
	OpMemberName            OpCode = 6
	OpString                OpCode = 7
	OpLine                  OpCode = 8
	OpExtension             OpCode = 10
	OpExtInstImport         OpCode = 11
	OpExtInst               OpCode = 12
	OpMemoryModel           OpCode = 14
	OpEntryPoint            OpCode = 15
	OpExecutionMode         OpCode = 16
	OpCapability            OpCode = 17
	OpTypeVoid              OpCode = 19
	OpTypeBool              OpCode = 20
	OpTypeInt               OpCode = 21
	OpTypeFloat             OpCode = 22
	OpTypeVector            OpCode = 23
	OpTypeMatrix            OpCode = 24
	OpTypeImage             OpCode = 25
	OpTypeSampler           OpCode = 26
	OpTypeSampledImage      OpCode = 27
	OpTypeArray             OpCode = 28
	OpTypeRuntimeArray      OpCode = 29
	OpTypeStruct            OpCode = 30
	OpTypeOpaque            OpCode = 31
	OpTypePointer           OpCode = 32
	OpTypeFunction          OpCode = 33
	OpTypeForwardPointer    OpCode = 39
	OpConstantTrue          OpCode = 41
	OpConstantFalse         OpCode = 42
	OpConstant              OpCode = 43
	OpConstantComposite     OpCode = 44
	OpConstantSampler       OpCode = 45
	OpConstantNull          OpCode = 46
	OpSpecConstantTrue      OpCode = 48
	OpSpecConstantFalse     OpCode = 49
	OpSpecConstant          OpCode = 50
	OpSpecConstantComposite OpCode = 51
	OpSpecConstantOp        OpCode = 52
	OpFunction              OpCode = 54
	OpFunctionParameter     OpCode = 55
	OpFunctionEnd           OpCode = 56
	OpFunctionCall          OpCode = 57
	OpVariable              OpCode = 59
	OpImageTexelPointer     OpCode = 60
	OpLoad                  OpCode = 61
	OpStore                 OpCode = 62
	OpCopyMemory            OpCode = 63
	OpAccessChain           OpCode = 65
	OpInBoundsAccessChain   OpCode = 66
	OpPtrAccessChain        OpCode = 67
	OpArrayLength           OpCode = 68
	OpDecorate              OpCode = 71
	OpMemberDecorate        OpCode = 72
	OpDecorationGroup       OpCode = 73
	OpGroupDecorate         OpCode = 74
	OpGroupMemberDecorate   OpCode = 75
	OpVectorExtractDynamic  OpCode = 77
	OpVectorInsertDynamic   OpCode = 78
	OpVectorShuffle         OpCode = 79
	OpCompositeConstruct    OpCode = 80
	OpCompositeExtract      OpCode = 81
	OpCompositeInsert       OpCode = 82
	OpCopyObject            OpCode = 83
	OpTranspose             OpCode = 84

	OpSampledImage                   OpCode = 86
	OpImageSampleImplicitLod         OpCode = 87
	OpImageSampleExplicitLod         OpCode = 88
	OpImageSampleDrefImplicitLod     OpCode = 89
	OpImageSampleDrefExplicitLod     OpCode = 90
	OpImageSampleProjImplicitLod     OpCode = 91
	OpImageSampleProjExplicitLod     OpCode = 92
	OpImageSampleProjDrefImplicitLod OpCode = 93
	OpImageSampleProjDrefExplicitLod OpCode = 94
	OpImageFetch                     OpCode = 95
	OpImageGather                    OpCode = 96
	OpImageDrefGather                OpCode = 97
	OpImageRead                      OpCode = 98
	OpImageWrite                     OpCode = 99
	OpImage                          OpCode = 100
	OpImageQueryFormat               OpCode = 101
	OpImageQueryOrder                OpCode = 102
	OpImageQuerySizeLod              OpCode = 103
	OpImageQuerySize                 OpCode = 104
	OpImageQueryLod                  OpCode = 105
	OpImageQueryLevels               OpCode = 106
	OpImageQuerySamples              OpCode = 107

	OpConvertFToU   OpCode = 109
	OpConvertFToS   OpCode = 110
	OpConvertSToF   OpCode = 111
	OpConvertUToF   OpCode = 112
	OpUConvert      OpCode = 113
	OpSConvert      OpCode = 114
	OpFConvert      OpCode = 115
	OpQuantizeToF16 OpCode = 116
	OpBitcast       OpCode = 124

	OpSNegate           OpCode = 126
	OpFNegate           OpCode = 127
	OpIAdd              OpCode = 128
	OpFAdd              OpCode = 129
	OpISub              OpCode = 130
	OpFSub              OpCode = 131
	OpIMul              OpCode = 132
	OpFMul              OpCode = 133
	OpUDiv              OpCode = 134
	OpSDiv              OpCode = 135
	OpFDiv              OpCode = 136
	OpUMod              OpCode = 137
	OpSRem              OpCode = 138
	OpSMod              OpCode = 139
	OpFRem              OpCode = 140
	OpFMod              OpCode = 141
	OpVectorTimesScalar OpCode = 142
	OpMatrixTimesScalar OpCode = 143
	OpVectorTimesMatrix OpCode = 144
	OpMatrixTimesVector OpCode = 145
	OpMatrixTimesMatrix OpCode = 146
	OpOuterProduct      OpCode = 147
	OpDot               OpCode = 148
	OpIAddCarry         OpCode = 149
	OpISubBorrow        OpCode = 150
	OpUMulExtended      OpCode = 151
	OpSMulExtended      OpCode = 152

	OpAny                    OpCode = 154
	OpAll                    OpCode = 155
	OpIsNan                  OpCode = 156
	OpIsInf                  OpCode = 157
	OpLogicalEqual           OpCode = 164
	OpLogicalNotEqual        OpCode = 165
	OpLogicalOr              OpCode = 166
	OpLogicalAnd             OpCode = 167
	OpLogicalNot             OpCode = 168
	OpSelect                 OpCode = 169
	OpIEqual                 OpCode = 170
	OpINotEqual              OpCode = 171
	OpUGreaterThan           OpCode = 172
	OpSGreaterThan           OpCode = 173
	OpUGreaterThanEqual      OpCode = 174
	OpSGreaterThanEqual      OpCode = 175
	OpULessThan              OpCode = 176
	OpSLessThan              OpCode = 177
	OpULessThanEqual         OpCode = 178
	OpSLessThanEqual         OpCode = 179
	OpFOrdEqual              OpCode = 180
	OpFUnordEqual            OpCode = 181
	OpFOrdNotEqual           OpCode = 182
	OpFUnordNotEqual         OpCode = 183
	OpFOrdLessThan           OpCode = 184
	OpFUnordLessThan         OpCode = 185
	OpFOrdGreaterThan        OpCode = 186
	OpFUnordGreaterThan      OpCode = 187
	OpFOrdLessThanEqual      OpCode = 188
	OpFUnordLessThanEqual    OpCode = 189
	OpFOrdGreaterThanEqual   OpCode = 190
	OpFUnordGreaterThanEqual OpCode = 191

	OpShiftRightLogical    OpCode = 194
	OpShiftRightArithmetic OpCode = 195
	OpShiftLeftLogical     OpCode = 196
	OpBitwiseOr            OpCode = 197
	OpBitwiseXor           OpCode = 198
	OpBitwiseAnd           OpCode = 199
	OpNot                  OpCode = 200
	OpBitFieldInsert       OpCode = 201
	OpBitFieldSExtract     OpCode = 202
	OpBitFieldUExtract     OpCode = 203
	OpBitReverse           OpCode = 204
	OpBitCount             OpCode = 205

	OpDPdx         OpCode = 207
	OpDPdy         OpCode = 208
	OpFwidth       OpCode = 209
	OpDPdxFine     OpCode = 210
	OpDPdyFine     OpCode = 211
	OpFwidthFine   OpCode = 212
	OpDPdxCoarse   OpCode = 213
	OpDPdyCoarse   OpCode = 214
	OpFwidthCoarse OpCode = 215

	OpEmitVertex     OpCode = 218
	OpEndPrimitive   OpCode = 219
	OpControlBarrier OpCode = 224
	OpMemoryBarrier  OpCode = 225

	OpAtomicLoad            OpCode = 227
	OpAtomicStore           OpCode = 228
	OpAtomicExchange        OpCode = 229
	OpAtomicCompareExchange OpCode = 230
	OpAtomicIIncrement      OpCode = 232
	OpAtomicIDecrement      OpCode = 233
	OpAtomicIAdd            OpCode = 234
	OpAtomicISub            OpCode = 235
	OpAtomicSMin            OpCode = 236
	OpAtomicUMin            OpCode = 237
	OpAtomicSMax            OpCode = 238
	OpAtomicUMax            OpCode = 239
	OpAtomicAnd             OpCode = 240
	OpAtomicOr              OpCode = 241
	OpAtomicXor             OpCode = 242

	OpPhi               OpCode = 245
	OpLoopMerge         OpCode = 246
	OpSelectionMerge    OpCode = 247
	OpLabel             OpCode = 248
	OpBranch            OpCode = 249
	OpBranchConditional OpCode = 250
	OpSwitch            OpCode = 251
	OpKill              OpCode = 252
	OpReturn            OpCode = 253
	OpReturnValue       OpCode = 254
	OpUnreachable       OpCode = 255

	OpImageSparseSampleImplicitLod         OpCode = 305
	OpImageSparseSampleExplicitLod         OpCode = 306
	OpImageSparseSampleDrefImplicitLod     OpCode = 307
	OpImageSparseSampleDrefExplicitLod     OpCode = 308
	OpImageSparseSampleProjImplicitLod     OpCode = 309
	OpImageSparseSampleProjExplicitLod     OpCode = 310
	OpImageSparseSampleProjDrefImplicitLod OpCode = 311
	OpImageSparseSampleProjDrefExplicitLod OpCode = 312
	OpImageSparseFetch                     OpCode = 313
	OpImageSparseGather                    OpCode = 314
	OpImageSparseDrefGather                OpCode = 315
	OpImageSparseTexelsResident            OpCode = 316
	OpNoLine                               OpCode = 317
	OpImageSparseRead                      OpCode = 320

	OpModuleProcessed      OpCode = 330
	OpExecutionModeID      OpCode = 331
	OpDecorateID           OpCode = 332
	OpCopyLogical          OpCode = 400
	OpPtrEqual             OpCode = 401
	OpPtrNotEqual          OpCode = 402
	OpTerminateInvocation  OpCode = 4416
	OpDecorateString       OpCode = 5632
	OpMemberDecorateString OpCode = 5633
)

// OpClass groups opcodes into families. Every known opcode belongs to
// exactly one class.
type OpClass uint8

// Opcode classes
const (
	ClassMisc OpClass = iota
	ClassDebug
	ClassAnnotation
	ClassExtension
	ClassModeSetting
	ClassType
	ClassConstant
	ClassMemory
	ClassFunction
	ClassImage
	ClassConversion
	ClassComposite
	ClassArithmetic
	ClassBit
	ClassRelational
	ClassDerivative
	ClassPrimitive
	ClassBarrier
	ClassAtomic
	ClassControlFlow
	ClassTerminator
)

var classNames = [...]string{
	ClassMisc:        "Misc",
	ClassDebug:       "Debug",
	ClassAnnotation:  "Annotation",
	ClassExtension:   "Extension",
	ClassModeSetting: "ModeSetting",
	ClassType:        "Type",
	ClassConstant:    "Constant",
	ClassMemory:      "Memory",
	ClassFunction:    "Function",
	ClassImage:       "Image",
	ClassConversion:  "Conversion",
	ClassComposite:   "Composite",
	ClassArithmetic:  "Arithmetic",
	ClassBit:         "Bit",
	ClassRelational:  "Relational",
	ClassDerivative:  "Derivative",
	ClassPrimitive:   "Primitive",
	ClassBarrier:     "Barrier",
	ClassAtomic:      "Atomic",
	ClassControlFlow: "ControlFlow",
	ClassTerminator:  "Terminator",
}

// String returns the class name.
func (c OpClass) String() string {
	if int(c) < len(classNames) {
		return classNames[c]
	}
	return fmt.Sprintf("OpClass(%d)", uint8(c))
}

type opInfo struct {
	name      string
	class     OpClass
	hasType   bool
	hasResult bool
}

var opTable = map[OpCode]opInfo{
	OpNop:             {"OpNop", ClassMisc, false, false},
	OpUndef:           {"OpUndef", ClassMisc, true, true},
	OpSourceContinued: {"OpSourceContinued", ClassDebug, false, false},
	OpSource:          {"OpSource", ClassDebug, false, false},
	OpSourceExtension: {"OpSourceExtension", ClassDebug, false, false},
	OpName:            {"OpName", ClassDebug, false, false},
	OpMemberName:      {"OpMemberName", ClassDebug, false, false},
	OpString:          {"OpString", ClassDebug, false, true},
	OpLine:            {"OpLine", ClassDebug, false, false},
	OpNoLine:          {"OpNoLine", ClassDebug, false, false},
	OpModuleProcessed: {"OpModuleProcessed", ClassDebug, false, false},

	OpDecorate:             {"OpDecorate", ClassAnnotation, false, false},
	OpMemberDecorate:       {"OpMemberDecorate", ClassAnnotation, false, false},
	OpDecorationGroup:      {"OpDecorationGroup", ClassAnnotation, false, true},
	OpGroupDecorate:        {"OpGroupDecorate", ClassAnnotation, false, false},
	OpGroupMemberDecorate:  {"OpGroupMemberDecorate", ClassAnnotation, false, false},
	OpDecorateID:           {"OpDecorateId", ClassAnnotation, false, false},
	OpDecorateString:       {"OpDecorateString", ClassAnnotation, false, false},
	OpMemberDecorateString: {"OpMemberDecorateString", ClassAnnotation, false, false},

	OpExtension:     {"OpExtension", ClassExtension, false, false},
	OpExtInstImport: {"OpExtInstImport", ClassExtension, false, true},
	OpExtInst:       {"OpExtInst", ClassExtension, true, true},

	OpMemoryModel:     {"OpMemoryModel", ClassModeSetting, false, false},
	OpEntryPoint:      {"OpEntryPoint", ClassModeSetting, false, false},
	OpExecutionMode:   {"OpExecutionMode", ClassModeSetting, false, false},
	OpExecutionModeID: {"OpExecutionModeId", ClassModeSetting, false, false},
	OpCapability:      {"OpCapability", ClassModeSetting, false, false},

	OpTypeVoid:           {"OpTypeVoid", ClassType, false, true},
	OpTypeBool:           {"OpTypeBool", ClassType, false, true},
	OpTypeInt:            {"OpTypeInt", ClassType, false, true},
	OpTypeFloat:          {"OpTypeFloat", ClassType, false, true},
	OpTypeVector:         {"OpTypeVector", ClassType, false, true},
	OpTypeMatrix:         {"OpTypeMatrix", ClassType, false, true},
	OpTypeImage:          {"OpTypeImage", ClassType, false, true},
	OpTypeSampler:        {"OpTypeSampler", ClassType, false, true},
	OpTypeSampledImage:   {"OpTypeSampledImage", ClassType, false, true},
	OpTypeArray:          {"OpTypeArray", ClassType, false, true},
	OpTypeRuntimeArray:   {"OpTypeRuntimeArray", ClassType, false, true},
	OpTypeStruct:         {"OpTypeStruct", ClassType, false, true},
	OpTypeOpaque:         {"OpTypeOpaque", ClassType, false, true},
	OpTypePointer:        {"OpTypePointer", ClassType, false, true},
	OpTypeFunction:       {"OpTypeFunction", ClassType, false, true},
	OpTypeForwardPointer: {"OpTypeForwardPointer", ClassType, false, false},

	OpConstantTrue:          {"OpConstantTrue", ClassConstant, true, true},
	OpConstantFalse:         {"OpConstantFalse", ClassConstant, true, true},
	OpConstant:              {"OpConstant", ClassConstant, true, true},
	OpConstantComposite:     {"OpConstantComposite", ClassConstant, true, true},
	OpConstantSampler:       {"OpConstantSampler", ClassConstant, true, true},
	OpConstantNull:          {"OpConstantNull", ClassConstant, true, true},
	OpSpecConstantTrue:      {"OpSpecConstantTrue", ClassConstant, true, true},
	OpSpecConstantFalse:     {"OpSpecConstantFalse", ClassConstant, true, true},
	OpSpecConstant:          {"OpSpecConstant", ClassConstant, true, true},
	OpSpecConstantComposite: {"OpSpecConstantComposite", ClassConstant, true, true},
	OpSpecConstantOp:        {"OpSpecConstantOp", ClassConstant, true, true},

	OpVariable:            {"OpVariable", ClassMemory, true, true},
	OpImageTexelPointer:   {"OpImageTexelPointer", ClassMemory, true, true},
	OpLoad:                {"OpLoad", ClassMemory, true, true},
	OpStore:               {"OpStore", ClassMemory, false, false},
	OpCopyMemory:          {"OpCopyMemory", ClassMemory, false, false},
	OpAccessChain:         {"OpAccessChain", ClassMemory, true, true},
	OpInBoundsAccessChain: {"OpInBoundsAccessChain", ClassMemory, true, true},
	OpPtrAccessChain:      {"OpPtrAccessChain", ClassMemory, true, true},
	OpArrayLength:         {"OpArrayLength", ClassMemory, true, true},
	OpPtrEqual:            {"OpPtrEqual", ClassMemory, true, true},
	OpPtrNotEqual:         {"OpPtrNotEqual", ClassMemory, true, true},

	OpFunction:          {"OpFunction", ClassFunction, true, true},
	OpFunctionParameter: {"OpFunctionParameter", ClassFunction, true, true},
	OpFunctionEnd:       {"OpFunctionEnd", ClassFunction, false, false},
	OpFunctionCall:      {"OpFunctionCall", ClassFunction, true, true},

	OpSampledImage:                         {"OpSampledImage", ClassImage, true, true},
	OpImageSampleImplicitLod:               {"OpImageSampleImplicitLod", ClassImage, true, true},
	OpImageSampleExplicitLod:               {"OpImageSampleExplicitLod", ClassImage, true, true},
	OpImageSampleDrefImplicitLod:           {"OpImageSampleDrefImplicitLod", ClassImage, true, true},
	OpImageSampleDrefExplicitLod:           {"OpImageSampleDrefExplicitLod", ClassImage, true, true},
	OpImageSampleProjImplicitLod:           {"OpImageSampleProjImplicitLod", ClassImage, true, true},
	OpImageSampleProjExplicitLod:           {"OpImageSampleProjExplicitLod", ClassImage, true, true},
	OpImageSampleProjDrefImplicitLod:       {"OpImageSampleProjDrefImplicitLod", ClassImage, true, true},
	OpImageSampleProjDrefExplicitLod:       {"OpImageSampleProjDrefExplicitLod", ClassImage, true, true},
	OpImageFetch:                           {"OpImageFetch", ClassImage, true, true},
	OpImageGather:                          {"OpImageGather", ClassImage, true, true},
	OpImageDrefGather:                      {"OpImageDrefGather", ClassImage, true, true},
	OpImageRead:                            {"OpImageRead", ClassImage, true, true},
	OpImageWrite:                           {"OpImageWrite", ClassImage, false, false},
	OpImage:                                {"OpImage", ClassImage, true, true},
	OpImageQueryFormat:                     {"OpImageQueryFormat", ClassImage, true, true},
	OpImageQueryOrder:                      {"OpImageQueryOrder", ClassImage, true, true},
	OpImageQuerySizeLod:                    {"OpImageQuerySizeLod", ClassImage, true, true},
	OpImageQuerySize:                       {"OpImageQuerySize", ClassImage, true, true},
	OpImageQueryLod:                        {"OpImageQueryLod", ClassImage, true, true},
	OpImageQueryLevels:                     {"OpImageQueryLevels", ClassImage, true, true},
	OpImageQuerySamples:                    {"OpImageQuerySamples", ClassImage, true, true},
	OpImageSparseSampleImplicitLod:         {"OpImageSparseSampleImplicitLod", ClassImage, true, true},
	OpImageSparseSampleExplicitLod:         {"OpImageSparseSampleExplicitLod", ClassImage, true, true},
	OpImageSparseSampleDrefImplicitLod:     {"OpImageSparseSampleDrefImplicitLod", ClassImage, true, true},
	OpImageSparseSampleDrefExplicitLod:     {"OpImageSparseSampleDrefExplicitLod", ClassImage, true, true},
	OpImageSparseSampleProjImplicitLod:     {"OpImageSparseSampleProjImplicitLod", ClassImage, true, true},
	OpImageSparseSampleProjExplicitLod:     {"OpImageSparseSampleProjExplicitLod", ClassImage, true, true},
	OpImageSparseSampleProjDrefImplicitLod: {"OpImageSparseSampleProjDrefImplicitLod", ClassImage, true, true},
	OpImageSparseSampleProjDrefExplicitLod: {"OpImageSparseSampleProjDrefExplicitLod", ClassImage, true, true},
	OpImageSparseFetch:                     {"OpImageSparseFetch", ClassImage, true, true},
	OpImageSparseGather:                    {"OpImageSparseGather", ClassImage, true, true},
	OpImageSparseDrefGather:                {"OpImageSparseDrefGather", ClassImage, true, true},
	OpImageSparseTexelsResident:            {"OpImageSparseTexelsResident", ClassImage, true, true},
	OpImageSparseRead:                      {"OpImageSparseRead", ClassImage, true, true},

	OpConvertFToU:   {"OpConvertFToU", ClassConversion, true, true},
	OpConvertFToS:   {"OpConvertFToS", ClassConversion, true, true},
	OpConvertSToF:   {"OpConvertSToF", ClassConversion, true, true},
	OpConvertUToF:   {"OpConvertUToF", ClassConversion, true, true},
	OpUConvert:      {"OpUConvert", ClassConversion, true, true},
	OpSConvert:      {"OpSConvert", ClassConversion, true, true},
	OpFConvert:      {"OpFConvert", ClassConversion, true, true},
	OpQuantizeToF16: {"OpQuantizeToF16", ClassConversion, true, true},
	OpBitcast:       {"OpBitcast", ClassConversion, true, true},

	OpVectorExtractDynamic: {"OpVectorExtractDynamic", ClassComposite, true, true},
	OpVectorInsertDynamic:  {"OpVectorInsertDynamic", ClassComposite, true, true},
	OpVectorShuffle:        {"OpVectorShuffle", ClassComposite, true, true},
	OpCompositeConstruct:   {"OpCompositeConstruct", ClassComposite, true, true},
	OpCompositeExtract:     {"OpCompositeExtract", ClassComposite, true, true},
	OpCompositeInsert:      {"OpCompositeInsert", ClassComposite, true, true},
	OpCopyObject:           {"OpCopyObject", ClassComposite, true, true},
	OpCopyLogical:          {"OpCopyLogical", ClassComposite, true, true},
	OpTranspose:            {"OpTranspose", ClassComposite, true, true},

	OpSNegate:           {"OpSNegate", ClassArithmetic, true, true},
	OpFNegate:           {"OpFNegate", ClassArithmetic, true, true},
	OpIAdd:              {"OpIAdd", ClassArithmetic, true, true},
	OpFAdd:              {"OpFAdd", ClassArithmetic, true, true},
	OpISub:              {"OpISub", ClassArithmetic, true, true},
	OpFSub:              {"OpFSub", ClassArithmetic, true, true},
	OpIMul:              {"OpIMul", ClassArithmetic, true, true},
	OpFMul:              {"OpFMul", ClassArithmetic, true, true},
	OpUDiv:              {"OpUDiv", ClassArithmetic, true, true},
	OpSDiv:              {"OpSDiv", ClassArithmetic, true, true},
	OpFDiv:              {"OpFDiv", ClassArithmetic, true, true},
	OpUMod:              {"OpUMod", ClassArithmetic, true, true},
	OpSRem:              {"OpSRem", ClassArithmetic, true, true},
	OpSMod:              {"OpSMod", ClassArithmetic, true, true},
	OpFRem:              {"OpFRem", ClassArithmetic, true, true},
	OpFMod:              {"OpFMod", ClassArithmetic, true, true},
	OpVectorTimesScalar: {"OpVectorTimesScalar", ClassArithmetic, true, true},
	OpMatrixTimesScalar: {"OpMatrixTimesScalar", ClassArithmetic, true, true},
	OpVectorTimesMatrix: {"OpVectorTimesMatrix", ClassArithmetic, true, true},
	OpMatrixTimesVector: {"OpMatrixTimesVector", ClassArithmetic, true, true},
	OpMatrixTimesMatrix: {"OpMatrixTimesMatrix", ClassArithmetic, true, true},
	OpOuterProduct:      {"OpOuterProduct", ClassArithmetic, true, true},
	OpDot:               {"OpDot", ClassArithmetic, true, true},
	OpIAddCarry:         {"OpIAddCarry", ClassArithmetic, true, true},
	OpISubBorrow:        {"OpISubBorrow", ClassArithmetic, true, true},
	OpUMulExtended:      {"OpUMulExtended", ClassArithmetic, true, true},
	OpSMulExtended:      {"OpSMulExtended", ClassArithmetic, true, true},

	OpShiftRightLogical:    {"OpShiftRightLogical", ClassBit, true, true},
	OpShiftRightArithmetic: {"OpShiftRightArithmetic", ClassBit, true, true},
	OpShiftLeftLogical:     {"OpShiftLeftLogical", ClassBit, true, true},
	OpBitwiseOr:            {"OpBitwiseOr", ClassBit, true, true},
	OpBitwiseXor:           {"OpBitwiseXor", ClassBit, true, true},
	OpBitwiseAnd:           {"OpBitwiseAnd", ClassBit, true, true},
	OpNot:                  {"OpNot", ClassBit, true, true},
	OpBitFieldInsert:       {"OpBitFieldInsert", ClassBit, true, true},
	OpBitFieldSExtract:     {"OpBitFieldSExtract", ClassBit, true, true},
	OpBitFieldUExtract:     {"OpBitFieldUExtract", ClassBit, true, true},
	OpBitReverse:           {"OpBitReverse", ClassBit, true, true},
	OpBitCount:             {"OpBitCount", ClassBit, true, true},

	OpAny:                    {"OpAny", ClassRelational, true, true},
	OpAll:                    {"OpAll", ClassRelational, true, true},
	OpIsNan:                  {"OpIsNan", ClassRelational, true, true},
	OpIsInf:                  {"OpIsInf", ClassRelational, true, true},
	OpLogicalEqual:           {"OpLogicalEqual", ClassRelational, true, true},
	OpLogicalNotEqual:        {"OpLogicalNotEqual", ClassRelational, true, true},
	OpLogicalOr:              {"OpLogicalOr", ClassRelational, true, true},
	OpLogicalAnd:             {"OpLogicalAnd", ClassRelational, true, true},
	OpLogicalNot:             {"OpLogicalNot", ClassRelational, true, true},
	OpSelect:                 {"OpSelect", ClassRelational, true, true},
	OpIEqual:                 {"OpIEqual", ClassRelational, true, true},
	OpINotEqual:              {"OpINotEqual", ClassRelational, true, true},
	OpUGreaterThan:           {"OpUGreaterThan", ClassRelational, true, true},
	OpSGreaterThan:           {"OpSGreaterThan", ClassRelational, true, true},
	OpUGreaterThanEqual:      {"OpUGreaterThanEqual", ClassRelational, true, true},
	OpSGreaterThanEqual:      {"OpSGreaterThanEqual", ClassRelational, true, true},
	OpULessThan:              {"OpULessThan", ClassRelational, true, true},
	OpSLessThan:              {"OpSLessThan", ClassRelational, true, true},
	OpULessThanEqual:         {"OpULessThanEqual", ClassRelational, true, true},
	OpSLessThanEqual:         {"OpSLessThanEqual", ClassRelational, true, true},
	OpFOrdEqual:              {"OpFOrdEqual", ClassRelational, true, true},
	OpFUnordEqual:            {"OpFUnordEqual", ClassRelational, true, true},
	OpFOrdNotEqual:           {"OpFOrdNotEqual", ClassRelational, true, true},
	OpFUnordNotEqual:         {"OpFUnordNotEqual", ClassRelational, true, true},
	OpFOrdLessThan:           {"OpFOrdLessThan", ClassRelational, true, true},
	OpFUnordLessThan:         {"OpFUnordLessThan", ClassRelational, true, true},
	OpFOrdGreaterThan:        {"OpFOrdGreaterThan", ClassRelational, true, true},
	OpFUnordGreaterThan:      {"OpFUnordGreaterThan", ClassRelational, true, true},
	OpFOrdLessThanEqual:      {"OpFOrdLessThanEqual", ClassRelational, true, true},
	OpFUnordLessThanEqual:    {"OpFUnordLessThanEqual", ClassRelational, true, true},
	OpFOrdGreaterThanEqual:   {"OpFOrdGreaterThanEqual", ClassRelational, true, true},
	OpFUnordGreaterThanEqual: {"OpFUnordGreaterThanEqual", ClassRelational, true, true},

	OpDPdx:         {"OpDPdx", ClassDerivative, true, true},
	OpDPdy:         {"OpDPdy", ClassDerivative, true, true},
	OpFwidth:       {"OpFwidth", ClassDerivative, true, true},
	OpDPdxFine:     {"OpDPdxFine", ClassDerivative, true, true},
	OpDPdyFine:     {"OpDPdyFine", ClassDerivative, true, true},
	OpFwidthFine:   {"OpFwidthFine", ClassDerivative, true, true},
	OpDPdxCoarse:   {"OpDPdxCoarse", ClassDerivative, true, true},
	OpDPdyCoarse:   {"OpDPdyCoarse", ClassDerivative, true, true},
	OpFwidthCoarse: {"OpFwidthCoarse", ClassDerivative, true, true},

	OpEmitVertex:   {"OpEmitVertex", ClassPrimitive, false, false},
	OpEndPrimitive: {"OpEndPrimitive", ClassPrimitive, false, false},

	OpControlBarrier: {"OpControlBarrier", ClassBarrier, false, false},
	OpMemoryBarrier:  {"OpMemoryBarrier", ClassBarrier, false, false},

	OpAtomicLoad:            {"OpAtomicLoad", ClassAtomic, true, true},
	OpAtomicStore:           {"OpAtomicStore", ClassAtomic, false, false},
	OpAtomicExchange:        {"OpAtomicExchange", ClassAtomic, true, true},
	OpAtomicCompareExchange: {"OpAtomicCompareExchange", ClassAtomic, true, true},
	OpAtomicIIncrement:      {"OpAtomicIIncrement", ClassAtomic, true, true},
	OpAtomicIDecrement:      {"OpAtomicIDecrement", ClassAtomic, true, true},
	OpAtomicIAdd:            {"OpAtomicIAdd", ClassAtomic, true, true},
	OpAtomicISub:            {"OpAtomicISub", ClassAtomic, true, true},
	OpAtomicSMin:            {"OpAtomicSMin", ClassAtomic, true, true},
	OpAtomicUMin:            {"OpAtomicUMin", ClassAtomic, true, true},
	OpAtomicSMax:            {"OpAtomicSMax", ClassAtomic, true, true},
	OpAtomicUMax:            {"OpAtomicUMax", ClassAtomic, true, true},
	OpAtomicAnd:             {"OpAtomicAnd", ClassAtomic, true, true},
	OpAtomicOr:              {"OpAtomicOr", ClassAtomic, true, true},
	OpAtomicXor:             {"OpAtomicXor", ClassAtomic, true, true},

	OpPhi:            {"OpPhi", ClassControlFlow, true, true},
	OpLoopMerge:      {"OpLoopMerge", ClassControlFlow, false, false},
	OpSelectionMerge: {"OpSelectionMerge", ClassControlFlow, false, false},
	OpLabel:          {"OpLabel", ClassControlFlow, false, true},

	OpBranch:              {"OpBranch", ClassTerminator, false, false},
	OpBranchConditional:   {"OpBranchConditional", ClassTerminator, false, false},
	OpSwitch:              {"OpSwitch", ClassTerminator, false, false},
	OpKill:                {"OpKill", ClassTerminator, false, false},
	OpReturn:              {"OpReturn", ClassTerminator, false, false},
	OpReturnValue:         {"OpReturnValue", ClassTerminator, false, false},
	OpUnreachable:         {"OpUnreachable", ClassTerminator, false, false},
	OpTerminateInvocation: {"OpTerminateInvocation", ClassTerminator, false, false},
}

// String returns the opcode's mnemonic.
func (op OpCode) String() string {
	if info, ok := opTable[op]; ok {
		return info.name
	}
	return fmt.Sprintf("Op(%d)", uint16(op))
}

// Known reports whether op has metadata.
func (op OpCode) Known() bool {
	_, ok := opTable[op]
	return ok
}

// Class returns the family op belongs to. Unknown opcodes are ClassMisc.
func (op OpCode) Class() OpClass {
	return opTable[op].class
}

// IsType reports whether op declares a type.
func (op OpCode) IsType() bool { return op.Class() == ClassType }

// IsConstant reports whether op declares a constant.
func (op OpCode) IsConstant() bool { return op.Class() == ClassConstant }

// IsTerminator reports whether op ends a block.
func (op OpCode) IsTerminator() bool { return op.Class() == ClassTerminator }

// HasResult reports whether op has a result id.
func (op OpCode) HasResult() bool { return opTable[op].hasResult }

// HasType reports whether op has a result type.
func (op OpCode) HasType() bool { return opTable[op].hasType }

// IsSpecConstant reports whether op creates a specialization constant.
func (op OpCode) IsSpecConstant() bool {
	switch op {
	case OpSpecConstantTrue, OpSpecConstantFalse, OpSpecConstant,
		OpSpecConstantComposite, OpSpecConstantOp:
		return true
	default:
		return false
	}
}

// IsDecoration reports whether op decorates a single target id.
func (op OpCode) IsDecoration() bool {
	switch op {
	case OpDecorate, OpDecorateID, OpDecorateString:
		return true
	default:
		return false
	}
}
