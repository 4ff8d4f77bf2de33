package emulator

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/mos6502/bus"
	"github.com/ezrec/mos6502/cpu"
)

func TestMachine_LoadProfileSource(t *testing.T) {
	assert := assert.New(t)

	ma := NewMachine()
	ma.ConsoleOutput = &bytes.Buffer{}

	err := ma.LoadProfileSource("machine.star", strings.Join([]string{
		"console(base = 0xd010)",
		"poke(addr = 0x1234, value = 0x56)",
		"poke(VECTOR_RESET, 0x00)",
		"poke(VECTOR_RESET + 1, 0x02)",
		"strict(True)",
	}, "\n"))
	assert.NoError(err)

	assert.NotNil(ma.Console)
	assert.Equal(uint16(0xd010), ma.Console.Base)
	assert.Equal(uint8(0x56), ma.Cpu.Bus.Read(0x1234))
	assert.Equal(uint16(0x0200), ma.Cpu.Bus.ReadWord(cpu.VECTOR_RESET))
	assert.True(ma.Cpu.Strict)
}

func TestMachine_LoadProfileSource_Trace(t *testing.T) {
	assert := assert.New(t)

	ma := NewMachine()
	ma.TraceOutput = &bytes.Buffer{}

	assert.NoError(ma.LoadProfileSource("trace.star", "trace(True)"))
	assert.Equal(ma.TraceOutput, ma.Cpu.Trace)

	assert.NoError(ma.LoadProfileSource("trace.star", "trace(False)"))
	assert.Nil(ma.Cpu.Trace)
}

func TestMachine_LoadProfileSource_Errors(t *testing.T) {
	assert := assert.New(t)

	ma := NewMachine()

	err := ma.LoadProfileSource("bad.star", "this is not a profile")
	assert.Error(err)
	perr := &ErrProfile{}
	assert.ErrorAs(err, &perr)
	assert.Equal("bad.star", perr.Path)

	err = ma.LoadProfileSource("addr.star", "poke(0x10000, 0)")
	assert.ErrorIs(err, ErrAddress(0))

	err = ma.LoadProfileSource("value.star", "poke(0, 0x100)")
	assert.ErrorIs(err, ErrValue(0))

	err = ma.LoadProfileSource("ram.star", "ram(0xff00, 0x200)")
	assert.ErrorIs(err, bus.ErrRegionSize)

	err = ma.LoadProfileSource("rom.star", `rom(0xff00, "missing.bin")`)
	assert.Error(err)
	rerr := bus.ErrRomImage{}
	assert.ErrorAs(err, &rerr)
}

func TestMachine_LoadProfile(t *testing.T) {
	assert := assert.New(t)

	dir := t.TempDir()

	image := make([]uint8, 0x100)
	image[0x00] = 0xea
	image[0xfc] = 0x00
	image[0xfd] = 0xff
	assert.NoError(os.WriteFile(filepath.Join(dir, "boot.bin"), image, 0o644))

	path := filepath.Join(dir, "machine.star")
	profile := strings.Join([]string{
		`rom(start = 0xff00, path = "boot.bin")`,
		"strict(True)",
	}, "\n")
	assert.NoError(os.WriteFile(path, []byte(profile), 0o644))

	ma := NewMachine()
	assert.NoError(ma.LoadProfile(path))

	assert.True(ma.Cpu.Strict)
	assert.Equal(uint8(0xea), ma.Cpu.Bus.Read(0xff00))
	assert.Equal(uint16(0xff00), ma.Cpu.Bus.ReadWord(cpu.VECTOR_RESET))

	// The image is ROM, writes to it are dropped.
	ma.Cpu.Bus.Write(0xff00, 0x00)
	assert.Equal(uint8(0xea), ma.Cpu.Bus.Read(0xff00))
}

func TestMachine_LoadProfile_Missing(t *testing.T) {
	assert := assert.New(t)

	ma := NewMachine()

	err := ma.LoadProfile(filepath.Join(t.TempDir(), "nope.star"))
	assert.Error(err)
	perr := &ErrProfile{}
	assert.ErrorAs(err, &perr)
}
