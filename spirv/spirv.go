package spirv

import (
	"tlog.app/go/tlog"
)

// Version represents a SPIR-V version.
type Version struct {
	Major uint8
	Minor uint8
}

// Common SPIR-V versions
var (
	Version1_0 = Version{1, 0}
	Version1_1 = Version{1, 1}
	Version1_2 = Version{1, 2}
	Version1_3 = Version{1, 3}
	Version1_4 = Version{1, 4}
	Version1_5 = Version{1, 5}
	Version1_6 = Version{1, 6}
)

// Word returns the version as it appears in the module header.
func (v Version) Word() uint32 {
	return (uint32(v.Major) << 16) | (uint32(v.Minor) << 8)
}

// Options configures a Builder.
type Options struct {
	// Version is the SPIR-V version written to the header
	Version Version

	// Generator is the generator magic written to the header
	Generator uint32

	// EmitOpLines makes SetLine emit OpLine into the build point
	EmitOpLines bool

	// Logger receives soft-failure and diagnostic messages.
	// A zero span discards them; they stay available from Builder.Logger.
	Logger tlog.Span
}

// DefaultOptions returns sensible default options.
func DefaultOptions() Options {
	return Options{
		Version:   Version1_3,
		Generator: GeneratorID,
		Logger:    tlog.Root(),
	}
}

// SPIR-V magic number and constants
const (
	MagicNumber = 0x07230203
	GeneratorID = 0x00000000 // Unregistered generator
)

// ID names a result, type, block or function within one module.
// Zero is never minted.
type ID uint32

// NoResult and NoType mark an absent id.
const (
	NoResult ID = 0
	NoType   ID = 0
)
