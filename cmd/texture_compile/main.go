// texture_compile builds the textured-quad fragment shader with the SPIR-V
// builder and writes the module to a file.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"tlog.app/go/errors"
	"tlog.app/go/tlog"

	"github.com/gogpu/spvbuilder/spirv"
)

// shaderOptions selects the sampling variant.
type shaderOptions struct {
	// Lod samples an explicit level instead of the implicit one.
	Lod float32
	// ExplicitLod is set when Lod is used.
	ExplicitLod bool
	// Gather gathers the red component instead of sampling.
	Gather bool
}

// buildTexturedQuad builds
//
//	@group(0) @binding(0) var texSampler: sampler;
//	@group(0) @binding(1) var tex: texture_2d<f32>;
//
//	@fragment
//	fn main(@location(0) uv: vec2<f32>) -> @location(0) vec4<f32> {
//	    return textureSample(tex, texSampler, uv);
//	}
func buildTexturedQuad(opts shaderOptions, log tlog.Span) *spirv.Builder {
	bopts := spirv.DefaultOptions()
	bopts.Logger = log

	b := spirv.NewBuilder(bopts)
	b.AddCapability(spirv.CapabilityShader)
	b.SetMemoryModel(spirv.AddressingModelLogical, spirv.MemoryModelGLSL450)
	b.SetSource(spirv.SourceLanguageWGSL, 0)

	fn := b.MakeEntryPoint("main")

	f32 := b.MakeFloatType(32)
	vec2 := b.MakeVectorType(f32, 2)
	vec4 := b.MakeVectorType(f32, 4)
	image := b.MakeImageType(f32, spirv.Dim2D, false, false, false, 1, spirv.ImageFormatUnknown)

	sampler := b.CreateVariable(spirv.StorageClassUniformConstant, b.MakeSamplerType(), "texSampler", spirv.NoResult)
	b.AddDecoration(sampler, spirv.DecorationDescriptorSet, 0)
	b.AddDecoration(sampler, spirv.DecorationBinding, 0)

	tex := b.CreateVariable(spirv.StorageClassUniformConstant, image, "tex", spirv.NoResult)
	b.AddDecoration(tex, spirv.DecorationDescriptorSet, 0)
	b.AddDecoration(tex, spirv.DecorationBinding, 1)

	uv := b.CreateVariable(spirv.StorageClassInput, vec2, "uv", spirv.NoResult)
	b.AddDecoration(uv, spirv.DecorationLocation, 0)

	out := b.CreateVariable(spirv.StorageClassOutput, vec4, "color", spirv.NoResult)
	b.AddDecoration(out, spirv.DecorationLocation, 0)

	ep := b.AddEntryPoint(spirv.ExecutionModelFragment, fn, "main")
	ep.AddIDOperand(uv)
	ep.AddIDOperand(out)
	b.AddExecutionMode(fn, spirv.ExecutionModeOriginUpperLeft)

	combined := b.CreateOp(spirv.OpSampledImage, b.MakeSampledImageType(image), []spirv.ID{
		b.CreateLoad(tex, spirv.MemoryAccessNone, 0),
		b.CreateLoad(sampler, spirv.MemoryAccessNone, 0),
	})

	params := spirv.TextureParameters{
		Sampler: combined,
		Coords:  b.CreateLoad(uv, spirv.MemoryAccessNone, 0),
	}

	switch {
	case opts.Gather:
		params.Component = b.MakeIntConstant(0, false)
	case opts.ExplicitLod:
		params.Lod = b.MakeFloatConstant(opts.Lod, false)
	}

	texel := b.CreateTextureCall(vec4, false, false, false, opts.Gather, false, params)
	b.CreateStore(texel, out, spirv.MemoryAccessNone, 0)

	b.LeaveFunction()

	return b
}

func newCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "texture_compile [flags]",
		Short: "Build the textured-quad fragment shader",
		Args:  cobra.NoArgs,
		RunE:  run,

		SilenceUsage: true,
	}

	cmd.Flags().StringP("output", "o", "texture.spv", "output file")
	cmd.Flags().Float32("lod", 0, "sample this level explicitly")
	cmd.Flags().Bool("gather", false, "gather the red component")

	return cmd
}

func main() {
	if err := newCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) (err error) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	ctx = tlog.ContextWithSpan(ctx, tlog.Root())

	tr, _ := tlog.SpawnFromContextAndWrap(ctx, "texture_compile")
	defer tr.Finish("err", &err)

	var opts shaderOptions

	opts.Gather, _ = cmd.Flags().GetBool("gather")
	if cmd.Flags().Changed("lod") {
		opts.ExplicitLod = true
		opts.Lod, _ = cmd.Flags().GetFloat32("lod")
	}

	output, _ := cmd.Flags().GetString("output")

	b := buildTexturedQuad(opts, tr)
	data := b.DumpBytes()

	for _, msg := range b.Logger().Messages() {
		fmt.Fprintln(cmd.ErrOrStderr(), msg)
	}

	if err := os.WriteFile(output, data, 0o644); err != nil {
		return errors.Wrap(err, "write %v", output)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s: %d bytes, bound %d\n", output, len(data), b.Bound())

	return nil
}
