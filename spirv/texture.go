package spirv

// TextureParameters are the operands of an image sampling, fetch or query.
// Zero ids are absent operands.
type TextureParameters struct {
	Sampler ID
	Coords  ID
	Bias    ID
	Lod     ID
	Dref    ID
	Offset  ID
	Offsets ID
	GradX   ID
	GradY   ID
	Sample  ID

	// Component selects the gathered component.
	Component ID

	// ResidencyOut is a pointer receiving the residency code of a sparse access.
	ResidencyOut ID

	LodClamp ID

	NonPrivate bool
	Volatile   bool
}

// textureOpcode selects the image instruction for a sampling shape.
func textureOpcode(sparse, fetch, gather, explicitLod, proj, dref bool) OpCode {
	switch {
	case fetch:
		return pick(sparse, OpImageSparseFetch, OpImageFetch)
	case gather && dref:
		return pick(sparse, OpImageSparseDrefGather, OpImageDrefGather)
	case gather:
		return pick(sparse, OpImageSparseGather, OpImageGather)
	}

	if explicitLod {
		switch {
		case dref && proj:
			return pick(sparse, OpImageSparseSampleProjDrefExplicitLod, OpImageSampleProjDrefExplicitLod)
		case dref:
			return pick(sparse, OpImageSparseSampleDrefExplicitLod, OpImageSampleDrefExplicitLod)
		case proj:
			return pick(sparse, OpImageSparseSampleProjExplicitLod, OpImageSampleProjExplicitLod)
		default:
			return pick(sparse, OpImageSparseSampleExplicitLod, OpImageSampleExplicitLod)
		}
	}

	switch {
	case dref && proj:
		return pick(sparse, OpImageSparseSampleProjDrefImplicitLod, OpImageSampleProjDrefImplicitLod)
	case dref:
		return pick(sparse, OpImageSparseSampleDrefImplicitLod, OpImageSampleDrefImplicitLod)
	case proj:
		return pick(sparse, OpImageSparseSampleProjImplicitLod, OpImageSampleProjImplicitLod)
	default:
		return pick(sparse, OpImageSparseSampleImplicitLod, OpImageSampleImplicitLod)
	}
}

// CreateTextureCall emits the image instruction matching the operands
// present in params and returns its texel value.
//
// With noImplicitLod an implicit-LOD sample is given an explicit LOD of 0.
// A sparse access stores its residency code through params.ResidencyOut.
func (b *Builder) CreateTextureCall(resultType ID, sparse, fetch, proj, gather, noImplicitLod bool, params TextureParameters) ID {
	fixed := []ID{params.Sampler, params.Coords}
	if params.Dref != NoResult {
		fixed = append(fixed, params.Dref)
	}
	if params.Component != NoResult {
		fixed = append(fixed, params.Component)
	}

	var (
		mask        ImageOperands
		optional    []ID
		explicitLod bool
	)

	if params.Bias != NoResult {
		mask |= ImageOperandsBias
		optional = append(optional, params.Bias)
	}

	switch {
	case params.Lod != NoResult:
		mask |= ImageOperandsLod
		optional = append(optional, params.Lod)
		explicitLod = true
	case params.GradX != NoResult:
		mask |= ImageOperandsGrad
		optional = append(optional, params.GradX, params.GradY)
		explicitLod = true
	case noImplicitLod && !fetch && !gather:
		mask |= ImageOperandsLod
		optional = append(optional, b.MakeFloatConstant(0, false))
		explicitLod = true
	}

	if params.Offset != NoResult {
		if b.IsConstant(params.Offset) {
			mask |= ImageOperandsConstOffset
		} else {
			b.AddCapability(CapabilityImageGatherExtended)
			mask |= ImageOperandsOffset
		}
		optional = append(optional, params.Offset)
	}

	if params.Offsets != NoResult {
		b.AddCapability(CapabilityImageGatherExtended)
		mask |= ImageOperandsConstOffsets
		optional = append(optional, params.Offsets)
	}

	if params.Sample != NoResult {
		mask |= ImageOperandsSample
		optional = append(optional, params.Sample)
	}

	if params.LodClamp != NoResult {
		b.AddCapability(CapabilityMinLod)
		mask |= ImageOperandsMinLod
		optional = append(optional, params.LodClamp)
	}

	if params.NonPrivate {
		mask |= ImageOperandsNonPrivateTexel
	}
	if params.Volatile {
		mask |= ImageOperandsVolatileTexel
	}

	op := textureOpcode(sparse, fetch, gather, explicitLod, proj, params.Dref != NoResult)

	// legacy shadow lookups declare a vector result but produce a scalar
	smearedType := resultType
	if !b.IsScalarType(resultType) {
		switch op {
		case OpImageSampleDrefImplicitLod, OpImageSampleDrefExplicitLod,
			OpImageSampleProjDrefImplicitLod, OpImageSampleProjDrefExplicitLod:
			resultType = b.ScalarTypeID(resultType)
		}
	}

	texelType := resultType
	residencyType := NoType

	if sparse {
		if params.ResidencyOut == NoResult {
			panic("spirv: sparse texture access without a residency output")
		}

		residencyType = b.DerefTypeID(params.ResidencyOut)
		resultType = b.MakeStructResultType(residencyType, texelType)
	}

	inst := NewInstruction(b.UniqueID(), resultType, op)
	inst.AddIDOperands(fixed)
	if mask != ImageOperandsNone {
		inst.AddImmediateOperand(uint32(mask))
	}
	inst.AddIDOperands(optional)

	b.addInstruction(inst)

	res := inst.resultID

	if sparse {
		b.AddCapability(CapabilitySparseResidency)

		b.CreateStore(b.CreateCompositeExtract(res, residencyType, 0), params.ResidencyOut, MemoryAccessNone, 0)

		return b.CreateCompositeExtract(res, texelType, 1)
	}

	if resultType != smearedType {
		res = b.SmearScalar(res, smearedType)
	}

	return res
}

// CreateTextureQueryCall emits an image query: size, size with LOD, LOD,
// levels or samples.
func (b *Builder) CreateTextureQueryCall(op OpCode, params TextureParameters, unsigned bool) ID {
	b.AddCapability(CapabilityImageQuery)

	var intType ID
	if unsigned {
		intType = b.MakeUintType(32)
	} else {
		intType = b.MakeIntType(32)
	}

	var resultType ID

	switch op {
	case OpImageQuerySize, OpImageQuerySizeLod:
		imageType := b.ImageTypeOf(params.Sampler)

		var n int

		switch dim := b.TypeDimensionality(imageType); dim {
		case Dim1D, DimBuffer:
			n = 1
		case Dim2D, DimCube, DimRect, DimSubpassData:
			n = 2
		case Dim3D:
			n = 3
		default:
			b.log.Missing("size query of image dimensionality")
			n = 1
		}

		if b.IsArrayedImageType(imageType) {
			n++
		}

		resultType = intType
		if n > 1 {
			resultType = b.MakeVectorType(intType, n)
		}
	case OpImageQueryLod:
		resultType = b.MakeVectorType(b.ScalarTypeID(b.TypeOf(params.Coords)), 2)
	case OpImageQueryLevels, OpImageQuerySamples:
		resultType = intType
	case OpImageQueryFormat, OpImageQueryOrder:
		b.log.TBD("texture query " + op.String())
		return b.CreateUndefined(intType)
	default:
		b.log.Missing("texture query " + op.String())
		return b.CreateUndefined(intType)
	}

	inst := NewInstruction(b.UniqueID(), resultType, op)
	inst.AddIDOperand(params.Sampler)
	if params.Coords != NoResult {
		inst.AddIDOperand(params.Coords)
	}
	if params.Lod != NoResult {
		inst.AddIDOperand(params.Lod)
	}

	b.addInstruction(inst)

	return inst.resultID
}
