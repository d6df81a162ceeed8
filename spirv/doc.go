// Package spirv provides an in-memory builder for SPIR-V modules.
//
// SPIR-V is the standard intermediate language for GPU shaders,
// used by Vulkan, OpenCL, and other APIs.
//
// # Builder
//
// A Builder is the construction context a compiler front-end calls into.
// It mints ids, interns types and constants, tracks the current block
// and serializes the result:
//
//	b := spirv.NewBuilder(spirv.DefaultOptions())
//	b.AddCapability(spirv.CapabilityShader)
//	b.SetMemoryModel(spirv.AddressingModelLogical, spirv.MemoryModelGLSL450)
//
//	fn := b.MakeEntryPoint("main")
//	b.AddEntryPoint(spirv.ExecutionModelFragment, fn, "main")
//
//	f32 := b.MakeFloatType(32)
//	v := b.CreateVariable(spirv.StorageClassFunction, f32, "x", spirv.NoResult)
//	b.CreateStore(b.MakeFloatConstant(1, false), v, spirv.MemoryAccessNone, 0)
//
//	b.LeaveFunction()
//	words := b.Dump()
//
// Types and constants are deduplicated by structure. Struct types,
// arrays with an explicit stride and specialization constants are
// always new.
//
// # Structured control flow
//
// If, switch and loop helpers create header, merge and continue blocks
// and emit the merge instructions SPIR-V requires. Code following a
// return, discard, break or continue goes to a fresh block with no
// predecessor; decorations of results defined only in such blocks are
// dropped when the module is dumped.
//
// # Access chains
//
// Expressions are resolved through an access chain which accumulates
// indexes, swizzles and dynamic component selections and emits the
// minimal load, store or OpAccessChain sequence when consumed.
//
// # Errors
//
// Misuse of the builder (unmapped ids, instructions after a terminator,
// inconsistent operands) panics. Features the builder does not model are
// reported once through the BuildLogger and the build continues.
//
// # Binary reader
//
// Parse and ParseBytes split a binary module into instructions for
// inspection and disassembly.
//
// # References
//
// SPIR-V Specification: https://registry.khronos.org/SPIR-V/specs/unified1/SPIRV.html
package spirv
