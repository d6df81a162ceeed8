package main

import (
	"fmt"

	"github.com/gogpu/spvbuilder/spirv"
)

var capabilityNames = map[spirv.Capability]string{
	spirv.CapabilityMatrix:                             "Matrix",
	spirv.CapabilityShader:                             "Shader",
	spirv.CapabilityGeometry:                           "Geometry",
	spirv.CapabilityTessellation:                       "Tessellation",
	spirv.CapabilityAddresses:                          "Addresses",
	spirv.CapabilityLinkage:                            "Linkage",
	spirv.CapabilityKernel:                             "Kernel",
	spirv.CapabilityFloat16:                            "Float16",
	spirv.CapabilityFloat64:                            "Float64",
	spirv.CapabilityInt64:                              "Int64",
	spirv.CapabilityInt16:                              "Int16",
	spirv.CapabilityInt8:                               "Int8",
	spirv.CapabilityImageGatherExtended:                "ImageGatherExtended",
	spirv.CapabilityStorageImageMultisample:            "StorageImageMultisample",
	spirv.CapabilityClipDistance:                       "ClipDistance",
	spirv.CapabilityCullDistance:                       "CullDistance",
	spirv.CapabilityImageCubeArray:                     "ImageCubeArray",
	spirv.CapabilitySampleRateShading:                  "SampleRateShading",
	spirv.CapabilityImageRect:                          "ImageRect",
	spirv.CapabilitySampledRect:                        "SampledRect",
	spirv.CapabilityInputAttachment:                    "InputAttachment",
	spirv.CapabilitySparseResidency:                    "SparseResidency",
	spirv.CapabilityMinLod:                             "MinLod",
	spirv.CapabilitySampled1D:                          "Sampled1D",
	spirv.CapabilityImage1D:                            "Image1D",
	spirv.CapabilitySampledCubeArray:                   "SampledCubeArray",
	spirv.CapabilitySampledBuffer:                      "SampledBuffer",
	spirv.CapabilityImageBuffer:                        "ImageBuffer",
	spirv.CapabilityImageMSArray:                       "ImageMSArray",
	spirv.CapabilityStorageImageExtendedFormats:        "StorageImageExtendedFormats",
	spirv.CapabilityImageQuery:                         "ImageQuery",
	spirv.CapabilityDerivativeControl:                  "DerivativeControl",
	spirv.CapabilityInterpolationFunction:              "InterpolationFunction",
	spirv.CapabilityTransformFeedback:                  "TransformFeedback",
	spirv.CapabilityGeometryStreams:                    "GeometryStreams",
	spirv.CapabilityStorageImageReadWithoutFormat:      "StorageImageReadWithoutFormat",
	spirv.CapabilityStorageImageWriteWithoutFormat:     "StorageImageWriteWithoutFormat",
	spirv.CapabilityMultiViewport:                      "MultiViewport",
	spirv.CapabilityDrawParameters:                     "DrawParameters",
	spirv.CapabilityStorageBuffer16BitAccess:           "StorageBuffer16BitAccess",
	spirv.CapabilityUniformAndStorageBuffer16BitAccess: "UniformAndStorageBuffer16BitAccess",
	spirv.CapabilityStoragePushConstant16:              "StoragePushConstant16",
	spirv.CapabilityStorageInputOutput16:               "StorageInputOutput16",
	spirv.CapabilityMultiView:                          "MultiView",
	spirv.CapabilityVariablePointersStorageBuffer:      "VariablePointersStorageBuffer",
	spirv.CapabilityVariablePointers:                   "VariablePointers",
	spirv.CapabilityShaderNonUniform:                   "ShaderNonUniform",
	spirv.CapabilityRuntimeDescriptorArray:             "RuntimeDescriptorArray",
	spirv.CapabilityVulkanMemoryModel:                  "VulkanMemoryModel",
	spirv.CapabilityPhysicalStorageBufferAddresses:     "PhysicalStorageBufferAddresses",
}

var storageClassNames = map[spirv.StorageClass]string{
	spirv.StorageClassUniformConstant:       "UniformConstant",
	spirv.StorageClassInput:                 "Input",
	spirv.StorageClassUniform:               "Uniform",
	spirv.StorageClassOutput:                "Output",
	spirv.StorageClassWorkgroup:             "Workgroup",
	spirv.StorageClassCrossWorkgroup:        "CrossWorkgroup",
	spirv.StorageClassPrivate:               "Private",
	spirv.StorageClassFunction:              "Function",
	spirv.StorageClassGeneric:               "Generic",
	spirv.StorageClassPushConstant:          "PushConstant",
	spirv.StorageClassAtomicCounter:         "AtomicCounter",
	spirv.StorageClassImage:                 "Image",
	spirv.StorageClassStorageBuffer:         "StorageBuffer",
	spirv.StorageClassPhysicalStorageBuffer: "PhysicalStorageBuffer",
}

var decorationNames = map[spirv.Decoration]string{
	spirv.DecorationRelaxedPrecision:     "RelaxedPrecision",
	spirv.DecorationSpecID:               "SpecId",
	spirv.DecorationBlock:                "Block",
	spirv.DecorationBufferBlock:          "BufferBlock",
	spirv.DecorationRowMajor:             "RowMajor",
	spirv.DecorationColMajor:             "ColMajor",
	spirv.DecorationArrayStride:          "ArrayStride",
	spirv.DecorationMatrixStride:         "MatrixStride",
	spirv.DecorationBuiltIn:              "BuiltIn",
	spirv.DecorationNoPerspective:        "NoPerspective",
	spirv.DecorationFlat:                 "Flat",
	spirv.DecorationPatch:                "Patch",
	spirv.DecorationCentroid:             "Centroid",
	spirv.DecorationSample:               "Sample",
	spirv.DecorationInvariant:            "Invariant",
	spirv.DecorationRestrict:             "Restrict",
	spirv.DecorationAliased:              "Aliased",
	spirv.DecorationVolatile:             "Volatile",
	spirv.DecorationCoherent:             "Coherent",
	spirv.DecorationNonWritable:          "NonWritable",
	spirv.DecorationNonReadable:          "NonReadable",
	spirv.DecorationUniform:              "Uniform",
	spirv.DecorationUniformID:            "UniformId",
	spirv.DecorationLocation:             "Location",
	spirv.DecorationComponent:            "Component",
	spirv.DecorationIndex:                "Index",
	spirv.DecorationBinding:              "Binding",
	spirv.DecorationDescriptorSet:        "DescriptorSet",
	spirv.DecorationOffset:               "Offset",
	spirv.DecorationLinkageAttributes:    "LinkageAttributes",
	spirv.DecorationNoContraction:        "NoContraction",
	spirv.DecorationInputAttachmentIndex: "InputAttachmentIndex",
	spirv.DecorationAlignment:            "Alignment",
	spirv.DecorationMaxByteOffset:        "MaxByteOffset",
	spirv.DecorationAlignmentID:          "AlignmentId",
	spirv.DecorationMaxByteOffsetID:      "MaxByteOffsetId",
	spirv.DecorationNonUniform:           "NonUniform",
	spirv.DecorationUserSemantic:         "UserSemantic",
}

var builtInNames = map[spirv.BuiltIn]string{
	spirv.BuiltInPosition:             "Position",
	spirv.BuiltInPointSize:            "PointSize",
	spirv.BuiltInClipDistance:         "ClipDistance",
	spirv.BuiltInCullDistance:         "CullDistance",
	spirv.BuiltInVertexID:             "VertexId",
	spirv.BuiltInInstanceID:           "InstanceId",
	spirv.BuiltInPrimitiveID:          "PrimitiveId",
	spirv.BuiltInInvocationID:         "InvocationId",
	spirv.BuiltInLayer:                "Layer",
	spirv.BuiltInViewportIndex:        "ViewportIndex",
	spirv.BuiltInFragCoord:            "FragCoord",
	spirv.BuiltInPointCoord:           "PointCoord",
	spirv.BuiltInFrontFacing:          "FrontFacing",
	spirv.BuiltInSampleID:             "SampleId",
	spirv.BuiltInSamplePosition:       "SamplePosition",
	spirv.BuiltInSampleMask:           "SampleMask",
	spirv.BuiltInFragDepth:            "FragDepth",
	spirv.BuiltInHelperInvocation:     "HelperInvocation",
	spirv.BuiltInNumWorkgroups:        "NumWorkgroups",
	spirv.BuiltInWorkgroupSize:        "WorkgroupSize",
	spirv.BuiltInWorkgroupID:          "WorkgroupId",
	spirv.BuiltInLocalInvocationID:    "LocalInvocationId",
	spirv.BuiltInGlobalInvocationID:   "GlobalInvocationId",
	spirv.BuiltInLocalInvocationIndex: "LocalInvocationIndex",
	spirv.BuiltInVertexIndex:          "VertexIndex",
	spirv.BuiltInInstanceIndex:        "InstanceIndex",
}

var executionModelNames = map[spirv.ExecutionModel]string{
	spirv.ExecutionModelVertex:                 "Vertex",
	spirv.ExecutionModelTessellationControl:    "TessellationControl",
	spirv.ExecutionModelTessellationEvaluation: "TessellationEvaluation",
	spirv.ExecutionModelGeometry:               "Geometry",
	spirv.ExecutionModelFragment:               "Fragment",
	spirv.ExecutionModelGLCompute:              "GLCompute",
	spirv.ExecutionModelKernel:                 "Kernel",
}

var executionModeNames = map[spirv.ExecutionMode]string{
	spirv.ExecutionModeInvocations:           "Invocations",
	spirv.ExecutionModeSpacingEqual:          "SpacingEqual",
	spirv.ExecutionModeVertexOrderCw:         "VertexOrderCw",
	spirv.ExecutionModeVertexOrderCcw:        "VertexOrderCcw",
	spirv.ExecutionModePixelCenterInteger:    "PixelCenterInteger",
	spirv.ExecutionModeOriginUpperLeft:       "OriginUpperLeft",
	spirv.ExecutionModeOriginLowerLeft:       "OriginLowerLeft",
	spirv.ExecutionModeEarlyFragmentTests:    "EarlyFragmentTests",
	spirv.ExecutionModePointMode:             "PointMode",
	spirv.ExecutionModeDepthReplacing:        "DepthReplacing",
	spirv.ExecutionModeDepthGreater:          "DepthGreater",
	spirv.ExecutionModeDepthLess:             "DepthLess",
	spirv.ExecutionModeDepthUnchanged:        "DepthUnchanged",
	spirv.ExecutionModeLocalSize:             "LocalSize",
	spirv.ExecutionModeTriangles:             "Triangles",
	spirv.ExecutionModeQuads:                 "Quads",
	spirv.ExecutionModeOutputVertices:        "OutputVertices",
	spirv.ExecutionModeOutputPoints:          "OutputPoints",
	spirv.ExecutionModeOutputTriangleStrip:   "OutputTriangleStrip",
	spirv.ExecutionModeContractionOff:        "ContractionOff",
	spirv.ExecutionModeInputPoints:           "InputPoints",
	spirv.ExecutionModeInputLines:            "InputLines",
	spirv.ExecutionModeSpacingFractionalEven: "SpacingFractionalEven",
	spirv.ExecutionModeSpacingFractionalOdd:  "SpacingFractionalOdd",
}

var addressingModelNames = map[spirv.AddressingModel]string{
	spirv.AddressingModelLogical:                 "Logical",
	spirv.AddressingModelPhysical32:              "Physical32",
	spirv.AddressingModelPhysical64:              "Physical64",
	spirv.AddressingModelPhysicalStorageBuffer64: "PhysicalStorageBuffer64",
}

var memoryModelNames = map[spirv.MemoryModel]string{
	spirv.MemoryModelSimple:  "Simple",
	spirv.MemoryModelGLSL450: "GLSL450",
	spirv.MemoryModelOpenCL:  "OpenCL",
	spirv.MemoryModelVulkan:  "Vulkan",
}

var sourceLanguageNames = map[spirv.SourceLanguage]string{
	spirv.SourceLanguageUnknown:    "Unknown",
	spirv.SourceLanguageESSL:       "ESSL",
	spirv.SourceLanguageGLSL:       "GLSL",
	spirv.SourceLanguageOpenCLC:    "OpenCL_C",
	spirv.SourceLanguageOpenCLCPP:  "OpenCL_CPP",
	spirv.SourceLanguageHLSL:       "HLSL",
	spirv.SourceLanguageCPPForOpen: "CPP_for_OpenCL",
	spirv.SourceLanguageWGSL:       "WGSL",
}

var dimNames = map[spirv.Dim]string{
	spirv.Dim1D:          "1D",
	spirv.Dim2D:          "2D",
	spirv.Dim3D:          "3D",
	spirv.DimCube:        "Cube",
	spirv.DimRect:        "Rect",
	spirv.DimBuffer:      "Buffer",
	spirv.DimSubpassData: "SubpassData",
}

var linkageTypeNames = map[spirv.LinkageType]string{
	spirv.LinkageTypeExport: "Export",
	spirv.LinkageTypeImport: "Import",
}

// enumName falls back to the number for values without a mnemonic.
func enumName[K ~uint32](names map[K]string, v uint32) string {
	if s, ok := names[K(v)]; ok {
		return s
	}

	return fmt.Sprintf("%d", v)
}
