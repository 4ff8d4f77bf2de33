package bus

// Kind classifies a Region by its access semantics.
type Kind int

//go:generate go tool stringer -linecomment -type=Kind
const (
	KIND_RAM = Kind(0) // ram
	KIND_ROM = Kind(1) // rom
	KIND_IO  = Kind(2) // io
)
