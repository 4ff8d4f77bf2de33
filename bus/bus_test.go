package bus

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKind_String(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("ram", KIND_RAM.String())
	assert.Equal("rom", KIND_ROM.String())
	assert.Equal("io", KIND_IO.String())
	assert.Equal("Kind(9)", Kind(9).String())
}

func TestBus_OpenBus(t *testing.T) {
	assert := assert.New(t)

	bu := New()
	for _, addr := range []uint16{0x0000, 0x1234, 0xffff} {
		assert.Equal(OpenBus, bu.Read(addr), "addr $%04x", addr)
		bu.Write(addr, 0x55)
		assert.Equal(OpenBus, bu.Read(addr), "addr $%04x", addr)
	}
}

func TestBus_AddRAM(t *testing.T) {
	assert := assert.New(t)

	bu := New()
	re, err := bu.AddRAM(0x4000, 0x100)
	assert.NoError(err)
	assert.Equal(KIND_RAM, re.Kind)
	assert.Equal(uint16(0x4000), re.Start)
	assert.Equal(0x100, re.Size)

	assert.Equal(uint8(0x00), bu.Read(0x4000))
	assert.Equal(uint8(0x00), bu.Read(0x40ff))

	bu.Write(0x4042, 0xa5)
	assert.Equal(uint8(0xa5), bu.Read(0x4042))

	// Outside the region the bus is open.
	assert.Equal(OpenBus, bu.Read(0x3fff))
	assert.Equal(OpenBus, bu.Read(0x4100))
	bu.Write(0x4100, 0x01)
	assert.Equal(OpenBus, bu.Read(0x4100))
}

func TestBus_AddRAM_Size(t *testing.T) {
	assert := assert.New(t)

	bu := New()
	_, err := bu.AddRAM(0x0000, 0)
	assert.ErrorIs(err, ErrRegionSize)

	_, err = bu.AddRAM(0x0000, -1)
	assert.ErrorIs(err, ErrRegionSize)

	_, err = bu.AddRAM(0x0000, 0x10001)
	assert.ErrorIs(err, ErrRegionSize)

	_, err = bu.AddRAM(0xff00, 0x101)
	assert.ErrorIs(err, ErrRegionSize)

	// Largest valid sizes.
	_, err = bu.AddRAM(0x0000, 0x10000)
	assert.NoError(err)
	_, err = bu.AddRAM(0xff00, 0x100)
	assert.NoError(err)
}

func TestBus_AddROM(t *testing.T) {
	assert := assert.New(t)

	bu := New()
	image := []uint8{0x01, 0x02, 0x03}
	re, err := bu.AddROM(0x9000, image)
	assert.NoError(err)
	assert.Equal(KIND_ROM, re.Kind)
	assert.Equal(3, re.Size)

	// The region holds a copy, not the caller's slice.
	image[0] = 0xee
	assert.Equal(uint8(0x01), bu.Read(0x9000))

	// ROM ignores writes.
	bu.Write(0x9001, 0x7f)
	assert.Equal(uint8(0x02), bu.Read(0x9001))

	_, err = bu.AddROM(0x9000, nil)
	assert.ErrorIs(err, ErrRegionSize)
}

func TestBus_AddROMFile(t *testing.T) {
	assert := assert.New(t)

	dir := t.TempDir()
	path := filepath.Join(dir, "image.bin")
	assert.NoError(os.WriteFile(path, []uint8{0xde, 0xad}, 0o644))

	bu := New()
	re, err := bu.AddROMFile(0xfffc, path)
	assert.NoError(err)
	assert.Equal(2, re.Size)
	assert.Equal(uint8(0xde), bu.Read(0xfffc))
	assert.Equal(uint8(0xad), bu.Read(0xfffd))
}

func TestBus_AddROMFile_Missing(t *testing.T) {
	assert := assert.New(t)

	bu := New()
	_, err := bu.AddROMFile(0x9000, filepath.Join(t.TempDir(), "absent.bin"))
	assert.Error(err)
	var rerr ErrRomImage
	assert.ErrorAs(err, &rerr)
	assert.ErrorIs(err, os.ErrNotExist)

	count := 0
	for range bu.Regions() {
		count++
	}
	assert.Zero(count)
}

func TestBus_AddROMFile_Oversize(t *testing.T) {
	assert := assert.New(t)

	start := uint16(0xff00)
	image := make([]uint8, 0x10000-int(start)+1)
	path := filepath.Join(t.TempDir(), "big.bin")
	assert.NoError(os.WriteFile(path, image, 0o644))

	bu := New()
	_, err := bu.AddROMFile(start, path)
	assert.ErrorIs(err, ErrRegionSize)

	count := 0
	for range bu.Regions() {
		count++
	}
	assert.Zero(count)
}

func TestBus_AddIO(t *testing.T) {
	assert := assert.New(t)

	bu := New()
	var gotAddr uint16
	var gotValue uint8
	_, err := bu.AddIO(0xd010, 4,
		func(addr uint16) uint8 {
			gotAddr = addr
			return 0x42
		},
		func(addr uint16, value uint8) {
			gotAddr = addr
			gotValue = value
		})
	assert.NoError(err)

	// Handlers see the absolute address.
	assert.Equal(uint8(0x42), bu.Read(0xd012))
	assert.Equal(uint16(0xd012), gotAddr)

	bu.Write(0xd013, 0x99)
	assert.Equal(uint16(0xd013), gotAddr)
	assert.Equal(uint8(0x99), gotValue)
}

func TestBus_AddIO_NilHandlers(t *testing.T) {
	assert := assert.New(t)

	bu := New()
	_, err := bu.AddIO(0xc000, 1, nil, nil)
	assert.NoError(err)

	assert.Equal(OpenBus, bu.Read(0xc000))
	bu.Write(0xc000, 0x01)
	assert.Equal(OpenBus, bu.Read(0xc000))
}

func TestBus_Priority(t *testing.T) {
	assert := assert.New(t)

	bu := New()
	_, err := bu.AddRAM(0x0000, 0x10000)
	assert.NoError(err)
	bu.Write(0x8000, 0x11)

	_, err = bu.AddROM(0x8000, []uint8{0x22})
	assert.NoError(err)

	// The overlay wins reads, and absorbs writes without falling
	// through to the RAM underneath.
	assert.Equal(uint8(0x22), bu.Read(0x8000))
	bu.Write(0x8000, 0x33)
	assert.Equal(uint8(0x22), bu.Read(0x8000))

	assert.Equal(uint8(0x00), bu.Read(0x8001))
}

func TestBus_ReadWord(t *testing.T) {
	assert := assert.New(t)

	bu := New()
	_, err := bu.AddRAM(0x0000, 0x10000)
	assert.NoError(err)

	bu.Write(0x0300, 0x34)
	bu.Write(0x0301, 0x12)
	assert.Equal(uint16(0x1234), bu.ReadWord(0x0300))

	// The second byte wraps past $FFFF to $0000.
	bu.Write(0xffff, 0xcd)
	bu.Write(0x0000, 0xab)
	assert.Equal(uint16(0xabcd), bu.ReadWord(0xffff))
}

func TestBus_Direct(t *testing.T) {
	assert := assert.New(t)

	bu := New()
	_, err := bu.AddRAM(0x0000, 0x10000)
	assert.NoError(err)

	bu.WriteDirect(0x01ff, 0x5a)
	assert.Equal(uint8(0x5a), bu.Read(0x01ff))
	bu.Write(0x0080, 0xa5)
	assert.Equal(uint8(0xa5), bu.ReadDirect(0x0080))

	// Above the aliased range the direct path resolves like Read.
	bu.Write(0x0200, 0x77)
	assert.Equal(uint8(0x77), bu.ReadDirect(0x0200))
}

func TestBus_Direct_Invalidated(t *testing.T) {
	assert := assert.New(t)

	bu := New()
	_, err := bu.AddRAM(0x0000, 0x10000)
	assert.NoError(err)

	var gotValue uint8
	_, err = bu.AddIO(0x0100, 0x10,
		func(addr uint16) uint8 { return 0x42 },
		func(addr uint16, value uint8) { gotValue = value })
	assert.NoError(err)

	// A later overlay below $0200 drops the alias, so the direct
	// path resolves through the region list.
	assert.Equal(uint8(0x42), bu.ReadDirect(0x0105))
	bu.WriteDirect(0x0105, 0x9c)
	assert.Equal(uint8(0x9c), gotValue)

	// Re-registering base RAM restores the alias.
	_, err = bu.AddRAM(0x0000, 0x10000)
	assert.NoError(err)
	bu.WriteDirect(0x0105, 0x10)
	assert.Equal(uint8(0x10), bu.Read(0x0105))
}

func TestBus_Regions(t *testing.T) {
	assert := assert.New(t)

	bu := New()
	_, err := bu.AddRAM(0x0000, 0x10000)
	assert.NoError(err)
	_, err = bu.AddROM(0xff00, make([]uint8, 0x100))
	assert.NoError(err)

	kinds := []Kind{}
	for re := range bu.Regions() {
		kinds = append(kinds, re.Kind)
	}
	assert.Equal([]Kind{KIND_ROM, KIND_RAM}, kinds)
}

func TestRegion_String(t *testing.T) {
	assert := assert.New(t)

	bu := New()
	re, err := bu.AddROM(0xff00, make([]uint8, 0x100))
	assert.NoError(err)
	assert.Equal("rom $FF00-$FFFF", re.String())
}
