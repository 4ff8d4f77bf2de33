// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package bus routes byte accesses across a 16-bit address space made
// of prioritized, possibly overlapping regions.
package bus

import (
	"fmt"
	"iter"
	"log"
	"os"
	"slices"
)

// OpenBus is the value read from addresses no region claims.
const OpenBus = uint8(0xff)

// directSpan is the address range a RAM region must cover, starting at
// zero, to serve as the zero-page and stack-page alias.
const directSpan = 0x200

// ReadFunc handles a byte read at an absolute bus address.
type ReadFunc func(addr uint16) (value uint8)

// WriteFunc handles a byte write at an absolute bus address.
type WriteFunc func(addr uint16, value uint8)

// Region is a contiguous address range with uniform access semantics.
type Region struct {
	Kind  Kind   // Access semantics of the region.
	Start uint16 // First address covered.
	Size  int    // Bytes covered, at most 65536 - Start.

	read  ReadFunc
	write WriteFunc
	data  []uint8
}

// Contains reports whether addr falls inside the region.
func (re *Region) Contains(addr uint16) bool {
	return addr >= re.Start && int(addr) < int(re.Start)+re.Size
}

func (re *Region) String() string {
	return fmt.Sprintf("%v $%04X-$%04X", re.Kind, re.Start, int(re.Start)+re.Size-1)
}

// Bus resolves each access to the most recently registered region that
// covers the address. Unclaimed reads return OpenBus, unclaimed writes
// are dropped.
type Bus struct {
	Verbose bool // If set, enables verbose logging.

	regions []*Region
	direct  []uint8
}

// New creates an empty Bus.
func New() (bu *Bus) {
	bu = &Bus{}
	return
}

// sizeOk verifies a region length against the remaining address space.
func sizeOk(start uint16, size int) bool {
	return size > 0 && size <= 0x10000-int(start)
}

func (bu *Bus) register(re *Region) {
	bu.regions = slices.Insert(bu.regions, 0, re)
	bu.refreshDirect()
	if bu.Verbose {
		log.Printf("bus: add %v", re)
	}
}

// refreshDirect recomputes the zero-page and stack-page alias. The
// alias is valid only while one RAM region is the top match for every
// address below directSpan.
func (bu *Bus) refreshDirect() {
	bu.direct = nil
	for _, re := range bu.regions {
		if re.Kind == KIND_RAM && re.Start == 0 && re.Size >= directSpan {
			bu.direct = re.data[:directSpan]
			return
		}
		if int(re.Start) < directSpan {
			return
		}
	}
}

// AddRAM registers a zero-filled read/write region over
// [start, start+size).
func (bu *Bus) AddRAM(start uint16, size int) (re *Region, err error) {
	if !sizeOk(start, size) {
		err = ErrRegionSize
		return
	}

	data := make([]uint8, size)
	re = &Region{
		Kind:  KIND_RAM,
		Start: start,
		Size:  size,
		data:  data,
		read: func(addr uint16) uint8 {
			return data[addr-start]
		},
		write: func(addr uint16, value uint8) {
			data[addr-start] = value
		},
	}
	bu.register(re)
	return
}

// AddROM registers a read-only region holding a copy of image.
// Writes to the region are dropped.
func (bu *Bus) AddROM(start uint16, image []uint8) (re *Region, err error) {
	if !sizeOk(start, len(image)) {
		err = ErrRegionSize
		return
	}

	data := slices.Clone(image)
	re = &Region{
		Kind:  KIND_ROM,
		Start: start,
		Size:  len(data),
		data:  data,
		read: func(addr uint16) uint8 {
			return data[addr-start]
		},
	}
	bu.register(re)
	return
}

// AddROMFile registers the contents of a flat binary file as ROM at
// start. Nothing is registered on failure.
func (bu *Bus) AddROMFile(start uint16, path string) (re *Region, err error) {
	image, err := os.ReadFile(path)
	if err != nil {
		err = ErrRomImage{Path: path, Err: err}
		return
	}

	re, err = bu.AddROM(start, image)
	if err != nil {
		err = ErrRomImage{Path: path, Err: err}
	}
	return
}

// AddIO registers caller supplied access handlers over
// [start, start+size). A nil read handler reads as OpenBus; a nil
// write handler drops writes.
func (bu *Bus) AddIO(start uint16, size int, read ReadFunc, write WriteFunc) (re *Region, err error) {
	if !sizeOk(start, size) {
		err = ErrRegionSize
		return
	}

	re = &Region{
		Kind:  KIND_IO,
		Start: start,
		Size:  size,
		read:  read,
		write: write,
	}
	bu.register(re)
	return
}

// Read returns the byte at addr from the topmost covering region, or
// OpenBus when no region covers it.
func (bu *Bus) Read(addr uint16) (value uint8) {
	for _, re := range bu.regions {
		if re.Contains(addr) {
			if re.read == nil {
				break
			}
			return re.read(addr)
		}
	}
	return OpenBus
}

// Write stores value at addr through the topmost covering region.
// Writes to ROM and to unclaimed addresses are dropped.
func (bu *Bus) Write(addr uint16, value uint8) {
	for _, re := range bu.regions {
		if re.Contains(addr) {
			if re.write != nil {
				re.write(addr, value)
			}
			return
		}
	}
}

// ReadWord reads a little-endian word. The second byte wraps around
// the top of the address space.
func (bu *Bus) ReadWord(addr uint16) uint16 {
	return uint16(bu.Read(addr)) | uint16(bu.Read(addr+1))<<8
}

// ReadDirect is Read through the zero-page and stack-page alias when
// one is installed. It resolves identically to Read at every address.
func (bu *Bus) ReadDirect(addr uint16) (value uint8) {
	if int(addr) < len(bu.direct) {
		return bu.direct[addr]
	}
	return bu.Read(addr)
}

// WriteDirect is Write through the zero-page and stack-page alias.
func (bu *Bus) WriteDirect(addr uint16, value uint8) {
	if int(addr) < len(bu.direct) {
		bu.direct[addr] = value
		return
	}
	bu.Write(addr, value)
}

// Regions iterates the registered regions in resolution order, the
// most recently registered first.
func (bu *Bus) Regions() iter.Seq[*Region] {
	return slices.Values(bu.regions)
}
