package spirv

// Capability represents a SPIR-V capability.
type Capability uint32

// Capabilities
const (
	CapabilityMatrix                             Capability = 0
	CapabilityShader                             Capability = 1
	CapabilityGeometry                           Capability = 2
	CapabilityTessellation                       Capability = 3
	CapabilityAddresses                          Capability = 4
	CapabilityLinkage                            Capability = 5
	CapabilityKernel                             Capability = 6
	CapabilityVector16                           Capability = 7
	CapabilityFloat16Buffer                      Capability = 8
	CapabilityFloat16                            Capability = 9
	CapabilityFloat64                            Capability = 10
	CapabilityInt64                              Capability = 11
	CapabilityInt64Atomics                       Capability = 12
	CapabilityImageBasic                         Capability = 13
	CapabilityImageReadWrite                     Capability = 14
	CapabilityImageMipmap                        Capability = 15
	CapabilityPipes                              Capability = 17
	CapabilityGroups                             Capability = 18
	CapabilityDeviceEnqueue                      Capability = 19
	CapabilityLiteralSampler                     Capability = 20
	CapabilityAtomicStorage                      Capability = 21
	CapabilityInt16                              Capability = 22
	CapabilityTessellationPointSize              Capability = 23
	CapabilityGeometryPointSize                  Capability = 24
	CapabilityImageGatherExtended                Capability = 25
	CapabilityStorageImageMultisample            Capability = 27
	CapabilityUniformBufferArrayDynamicIndexing  Capability = 28
	CapabilitySampledImageArrayDynamicIndexing   Capability = 29
	CapabilityStorageBufferArrayDynamicIndexing  Capability = 30
	CapabilityStorageImageArrayDynamicIndexing   Capability = 31
	CapabilityClipDistance                       Capability = 32
	CapabilityCullDistance                       Capability = 33
	CapabilityImageCubeArray                     Capability = 34
	CapabilitySampleRateShading                  Capability = 35
	CapabilityImageRect                          Capability = 36
	CapabilitySampledRect                        Capability = 37
	CapabilityGenericPointer                     Capability = 38
	CapabilityInt8                               Capability = 39
	CapabilityInputAttachment                    Capability = 40
	CapabilitySparseResidency                    Capability = 41
	CapabilityMinLod                             Capability = 42
	CapabilitySampled1D                          Capability = 43
	CapabilityImage1D                            Capability = 44
	CapabilitySampledCubeArray                   Capability = 45
	CapabilitySampledBuffer                      Capability = 46
	CapabilityImageBuffer                        Capability = 47
	CapabilityImageMSArray                       Capability = 48
	CapabilityStorageImageExtendedFormats        Capability = 49
	CapabilityImageQuery                         Capability = 50
	CapabilityDerivativeControl                  Capability = 51
	CapabilityInterpolationFunction              Capability = 52
	CapabilityTransformFeedback                  Capability = 53
	CapabilityGeometryStreams                    Capability = 54
	CapabilityStorageImageReadWithoutFormat      Capability = 55
	CapabilityStorageImageWriteWithoutFormat     Capability = 56
	CapabilityMultiViewport                      Capability = 57
	CapabilityDrawParameters                     Capability = 4427
	CapabilityStorageBuffer16BitAccess           Capability = 4433
	CapabilityUniformAndStorageBuffer16BitAccess Capability = 4434
	CapabilityStoragePushConstant16              Capability = 4435
	CapabilityStorageInputOutput16               Capability = 4436
	CapabilityMultiView                          Capability = 4439
	CapabilityVariablePointersStorageBuffer      Capability = 4441
	CapabilityVariablePointers                   Capability = 4442
	CapabilityShaderNonUniform                   Capability = 5301
	CapabilityRuntimeDescriptorArray             Capability = 5302
	CapabilityVulkanMemoryModel                  Capability = 5345
	CapabilityPhysicalStorageBufferAddresses     Capability = 5347
)

// Decoration represents a SPIR-V decoration.
type Decoration uint32

// Decorations
const (
	DecorationRelaxedPrecision     Decoration = 0
	DecorationSpecID               Decoration = 1
	DecorationBlock                Decoration = 2
	DecorationBufferBlock          Decoration = 3
	DecorationRowMajor             Decoration = 4
	DecorationColMajor             Decoration = 5
	DecorationArrayStride          Decoration = 6
	DecorationMatrixStride         Decoration = 7
	DecorationGLSLShared           Decoration = 8
	DecorationGLSLPacked           Decoration = 9
	DecorationCPacked              Decoration = 10
	DecorationBuiltIn              Decoration = 11
	DecorationNoPerspective        Decoration = 13
	DecorationFlat                 Decoration = 14
	DecorationPatch                Decoration = 15
	DecorationCentroid             Decoration = 16
	DecorationSample               Decoration = 17
	DecorationInvariant            Decoration = 18
	DecorationRestrict             Decoration = 19
	DecorationAliased              Decoration = 20
	DecorationVolatile             Decoration = 21
	DecorationConstant             Decoration = 22
	DecorationCoherent             Decoration = 23
	DecorationNonWritable          Decoration = 24
	DecorationNonReadable          Decoration = 25
	DecorationUniform              Decoration = 26
	DecorationUniformID            Decoration = 27
	DecorationSaturatedConversion  Decoration = 28
	DecorationStream               Decoration = 29
	DecorationLocation             Decoration = 30
	DecorationComponent            Decoration = 31
	DecorationIndex                Decoration = 32
	DecorationBinding              Decoration = 33
	DecorationDescriptorSet        Decoration = 34
	DecorationOffset               Decoration = 35
	DecorationXfbBuffer            Decoration = 36
	DecorationXfbStride            Decoration = 37
	DecorationFuncParamAttr        Decoration = 38
	DecorationFPRoundingMode       Decoration = 39
	DecorationFPFastMathMode       Decoration = 40
	DecorationLinkageAttributes    Decoration = 41
	DecorationNoContraction        Decoration = 42
	DecorationInputAttachmentIndex Decoration = 43
	DecorationAlignment            Decoration = 44
	DecorationMaxByteOffset        Decoration = 45
	DecorationAlignmentID          Decoration = 46
	DecorationMaxByteOffsetID      Decoration = 47
	DecorationNonUniform           Decoration = 5300
	DecorationUserSemantic         Decoration = 5635
)

// StorageClass represents a SPIR-V storage class.
type StorageClass uint32

// Storage classes
const (
	StorageClassUniformConstant       StorageClass = 0
	StorageClassInput                 StorageClass = 1
	StorageClassUniform               StorageClass = 2
	StorageClassOutput                StorageClass = 3
	StorageClassWorkgroup             StorageClass = 4
	StorageClassCrossWorkgroup        StorageClass = 5
	StorageClassPrivate               StorageClass = 6
	StorageClassFunction              StorageClass = 7
	StorageClassGeneric               StorageClass = 8
	StorageClassPushConstant          StorageClass = 9
	StorageClassAtomicCounter         StorageClass = 10
	StorageClassImage                 StorageClass = 11
	StorageClassStorageBuffer         StorageClass = 12
	StorageClassPhysicalStorageBuffer StorageClass = 5349
)

// Dim is the dimensionality of an image type.
type Dim uint32

// Image dimensionalities
const (
	Dim1D          Dim = 0
	Dim2D          Dim = 1
	Dim3D          Dim = 2
	DimCube        Dim = 3
	DimRect        Dim = 4
	DimBuffer      Dim = 5
	DimSubpassData Dim = 6
)

// ImageFormat is the texel format of a storage image.
type ImageFormat uint32

// Image formats
const (
	ImageFormatUnknown      ImageFormat = 0
	ImageFormatRgba32f      ImageFormat = 1
	ImageFormatRgba16f      ImageFormat = 2
	ImageFormatR32f         ImageFormat = 3
	ImageFormatRgba8        ImageFormat = 4
	ImageFormatRgba8Snorm   ImageFormat = 5
	ImageFormatRg32f        ImageFormat = 6
	ImageFormatRg16f        ImageFormat = 7
	ImageFormatR11fG11fB10f ImageFormat = 8
	ImageFormatR16f         ImageFormat = 9
	ImageFormatRgba16       ImageFormat = 10
	ImageFormatRgb10A2      ImageFormat = 11
	ImageFormatRg16         ImageFormat = 12
	ImageFormatRg8          ImageFormat = 13
	ImageFormatR16          ImageFormat = 14
	ImageFormatR8           ImageFormat = 15
	ImageFormatRgba16Snorm  ImageFormat = 16
	ImageFormatRg16Snorm    ImageFormat = 17
	ImageFormatRg8Snorm     ImageFormat = 18
	ImageFormatR16Snorm     ImageFormat = 19
	ImageFormatR8Snorm      ImageFormat = 20
	ImageFormatRgba32i      ImageFormat = 21
	ImageFormatRgba16i      ImageFormat = 22
	ImageFormatRgba8i       ImageFormat = 23
	ImageFormatR32i         ImageFormat = 24
	ImageFormatRg32i        ImageFormat = 25
	ImageFormatRg16i        ImageFormat = 26
	ImageFormatRg8i         ImageFormat = 27
	ImageFormatR16i         ImageFormat = 28
	ImageFormatR8i          ImageFormat = 29
	ImageFormatRgba32ui     ImageFormat = 30
	ImageFormatRgba16ui     ImageFormat = 31
	ImageFormatRgba8ui      ImageFormat = 32
	ImageFormatR32ui        ImageFormat = 33
	ImageFormatRgb10a2ui    ImageFormat = 34
	ImageFormatRg32ui       ImageFormat = 35
	ImageFormatRg16ui       ImageFormat = 36
	ImageFormatRg8ui        ImageFormat = 37
	ImageFormatR16ui        ImageFormat = 38
	ImageFormatR8ui         ImageFormat = 39
)

// AddressingModel represents a SPIR-V addressing model.
type AddressingModel uint32

// Addressing models
const (
	AddressingModelLogical                 AddressingModel = 0
	AddressingModelPhysical32              AddressingModel = 1
	AddressingModelPhysical64              AddressingModel = 2
	AddressingModelPhysicalStorageBuffer64 AddressingModel = 5348
)

// MemoryModel represents a SPIR-V memory model.
type MemoryModel uint32

// Memory models
const (
	MemoryModelSimple  MemoryModel = 0
	MemoryModelGLSL450 MemoryModel = 1
	MemoryModelOpenCL  MemoryModel = 2
	MemoryModelVulkan  MemoryModel = 3
)

// ExecutionModel represents a shader stage.
type ExecutionModel uint32

// Execution models
const (
	ExecutionModelVertex                 ExecutionModel = 0
	ExecutionModelTessellationControl    ExecutionModel = 1
	ExecutionModelTessellationEvaluation ExecutionModel = 2
	ExecutionModelGeometry               ExecutionModel = 3
	ExecutionModelFragment               ExecutionModel = 4
	ExecutionModelGLCompute              ExecutionModel = 5
	ExecutionModelKernel                 ExecutionModel = 6
)

// ExecutionMode represents an entry point execution mode.
type ExecutionMode uint32

// Execution modes
const (
	ExecutionModeInvocations             ExecutionMode = 0
	ExecutionModeSpacingEqual            ExecutionMode = 1
	ExecutionModeSpacingFractionalEven   ExecutionMode = 2
	ExecutionModeSpacingFractionalOdd    ExecutionMode = 3
	ExecutionModeVertexOrderCw           ExecutionMode = 4
	ExecutionModeVertexOrderCcw          ExecutionMode = 5
	ExecutionModePixelCenterInteger      ExecutionMode = 6
	ExecutionModeOriginUpperLeft         ExecutionMode = 7
	ExecutionModeOriginLowerLeft         ExecutionMode = 8
	ExecutionModeEarlyFragmentTests      ExecutionMode = 9
	ExecutionModePointMode               ExecutionMode = 10
	ExecutionModeXfb                     ExecutionMode = 11
	ExecutionModeDepthReplacing          ExecutionMode = 12
	ExecutionModeDepthGreater            ExecutionMode = 14
	ExecutionModeDepthLess               ExecutionMode = 15
	ExecutionModeDepthUnchanged          ExecutionMode = 16
	ExecutionModeLocalSize               ExecutionMode = 17
	ExecutionModeLocalSizeHint           ExecutionMode = 18
	ExecutionModeInputPoints             ExecutionMode = 19
	ExecutionModeInputLines              ExecutionMode = 20
	ExecutionModeInputLinesAdjacency     ExecutionMode = 21
	ExecutionModeTriangles               ExecutionMode = 22
	ExecutionModeInputTrianglesAdjacency ExecutionMode = 23
	ExecutionModeQuads                   ExecutionMode = 24
	ExecutionModeIsolines                ExecutionMode = 25
	ExecutionModeOutputVertices          ExecutionMode = 26
	ExecutionModeOutputPoints            ExecutionMode = 27
	ExecutionModeOutputLineStrip         ExecutionMode = 28
	ExecutionModeOutputTriangleStrip     ExecutionMode = 29
	ExecutionModeVecTypeHint             ExecutionMode = 30
	ExecutionModeContractionOff          ExecutionMode = 31
)

// SelectionControl represents OpSelectionMerge control bits.
type SelectionControl uint32

// Selection controls
const (
	SelectionControlNone        SelectionControl = 0
	SelectionControlFlatten     SelectionControl = 1
	SelectionControlDontFlatten SelectionControl = 2
)

// LoopControl represents OpLoopMerge control bits.
type LoopControl uint32

// Loop controls
const (
	LoopControlNone               LoopControl = 0
	LoopControlUnroll             LoopControl = 1
	LoopControlDontUnroll         LoopControl = 2
	LoopControlDependencyInfinite LoopControl = 4
	LoopControlDependencyLength   LoopControl = 8
)

// FunctionControl represents OpFunction control bits.
type FunctionControl uint32

// Function controls
const (
	FunctionControlNone       FunctionControl = 0
	FunctionControlInline     FunctionControl = 1
	FunctionControlDontInline FunctionControl = 2
	FunctionControlPure       FunctionControl = 4
	FunctionControlConst      FunctionControl = 8
)

// ImageOperands is the optional-operand mask of image instructions.
type ImageOperands uint32

// Image operand bits, in the order their operands follow the mask.
const (
	ImageOperandsNone               ImageOperands = 0
	ImageOperandsBias               ImageOperands = 0x1
	ImageOperandsLod                ImageOperands = 0x2
	ImageOperandsGrad               ImageOperands = 0x4
	ImageOperandsConstOffset        ImageOperands = 0x8
	ImageOperandsOffset             ImageOperands = 0x10
	ImageOperandsConstOffsets       ImageOperands = 0x20
	ImageOperandsSample             ImageOperands = 0x40
	ImageOperandsMinLod             ImageOperands = 0x80
	ImageOperandsMakeTexelAvailable ImageOperands = 0x100
	ImageOperandsMakeTexelVisible   ImageOperands = 0x200
	ImageOperandsNonPrivateTexel    ImageOperands = 0x400
	ImageOperandsVolatileTexel      ImageOperands = 0x800
	ImageOperandsSignExtend         ImageOperands = 0x1000
	ImageOperandsZeroExtend         ImageOperands = 0x2000
)

// MemoryAccess is the memory operand mask of loads and stores.
type MemoryAccess uint32

// Memory access bits
const (
	MemoryAccessNone        MemoryAccess = 0
	MemoryAccessVolatile    MemoryAccess = 0x1
	MemoryAccessAligned     MemoryAccess = 0x2
	MemoryAccessNontemporal MemoryAccess = 0x4
)

// SourceLanguage identifies the language the module was produced from.
type SourceLanguage uint32

// Source languages
const (
	SourceLanguageUnknown    SourceLanguage = 0
	SourceLanguageESSL       SourceLanguage = 1
	SourceLanguageGLSL       SourceLanguage = 2
	SourceLanguageOpenCLC    SourceLanguage = 3
	SourceLanguageOpenCLCPP  SourceLanguage = 4
	SourceLanguageHLSL       SourceLanguage = 5
	SourceLanguageCPPForOpen SourceLanguage = 6
	SourceLanguageWGSL       SourceLanguage = 10
)

// BuiltIn identifies a built-in variable.
type BuiltIn uint32

// Built-ins
const (
	BuiltInPosition             BuiltIn = 0
	BuiltInPointSize            BuiltIn = 1
	BuiltInClipDistance         BuiltIn = 3
	BuiltInCullDistance         BuiltIn = 4
	BuiltInVertexID             BuiltIn = 5
	BuiltInInstanceID           BuiltIn = 6
	BuiltInPrimitiveID          BuiltIn = 7
	BuiltInInvocationID         BuiltIn = 8
	BuiltInLayer                BuiltIn = 9
	BuiltInViewportIndex        BuiltIn = 10
	BuiltInFragCoord            BuiltIn = 15
	BuiltInPointCoord           BuiltIn = 16
	BuiltInFrontFacing          BuiltIn = 17
	BuiltInSampleID             BuiltIn = 18
	BuiltInSamplePosition       BuiltIn = 19
	BuiltInSampleMask           BuiltIn = 20
	BuiltInFragDepth            BuiltIn = 22
	BuiltInHelperInvocation     BuiltIn = 23
	BuiltInNumWorkgroups        BuiltIn = 24
	BuiltInWorkgroupSize        BuiltIn = 25
	BuiltInWorkgroupID          BuiltIn = 26
	BuiltInLocalInvocationID    BuiltIn = 27
	BuiltInGlobalInvocationID   BuiltIn = 28
	BuiltInLocalInvocationIndex BuiltIn = 29
	BuiltInVertexIndex          BuiltIn = 42
	BuiltInInstanceIndex        BuiltIn = 43
)

// Scope is an execution or memory scope.
type Scope uint32

// Scopes
const (
	ScopeCrossDevice Scope = 0
	ScopeDevice      Scope = 1
	ScopeWorkgroup   Scope = 2
	ScopeSubgroup    Scope = 3
	ScopeInvocation  Scope = 4
)

// MemorySemantics is the memory semantics mask of barriers and atomics.
type MemorySemantics uint32

// Memory semantics bits
const (
	MemorySemanticsNone                   MemorySemantics = 0
	MemorySemanticsAcquire                MemorySemantics = 0x2
	MemorySemanticsRelease                MemorySemantics = 0x4
	MemorySemanticsAcquireRelease         MemorySemantics = 0x8
	MemorySemanticsSequentiallyConsistent MemorySemantics = 0x10
	MemorySemanticsUniformMemory          MemorySemantics = 0x40
	MemorySemanticsSubgroupMemory         MemorySemantics = 0x80
	MemorySemanticsWorkgroupMemory        MemorySemantics = 0x100
	MemorySemanticsCrossWorkgroupMemory   MemorySemantics = 0x200
	MemorySemanticsAtomicCounterMemory    MemorySemantics = 0x400
	MemorySemanticsImageMemory            MemorySemantics = 0x800
)

// LinkageType is the linkage of a LinkageAttributes decoration.
type LinkageType uint32

// Linkage types
const (
	LinkageTypeExport LinkageType = 0
	LinkageTypeImport LinkageType = 1
)
