package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFlags_Pack(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(uint8(0x20), Flags{}.Pack())
	assert.Equal(uint8(0xa0), Flags{N: true}.Pack())
	assert.Equal(uint8(0x60), Flags{V: true}.Pack())
	assert.Equal(uint8(0x30), Flags{B: true}.Pack())
	assert.Equal(uint8(0x28), Flags{D: true}.Pack())
	assert.Equal(uint8(0x24), Flags{I: true}.Pack())
	assert.Equal(uint8(0x22), Flags{Z: true}.Pack())
	assert.Equal(uint8(0x21), Flags{C: true}.Pack())
	assert.Equal(uint8(0xff), Flags{N: true, V: true, B: true, D: true, I: true, Z: true, C: true}.Pack())
}

func TestFlags_Unpack(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(Flags{}, UnpackFlags(0x00))
	assert.Equal(Flags{N: true}, UnpackFlags(0x80))
	assert.Equal(Flags{C: true}, UnpackFlags(0x01))

	// Bit 5 carries no flag.
	assert.Equal(Flags{}, UnpackFlags(0x20))
}

func TestFlags_RoundTrip(t *testing.T) {
	assert := assert.New(t)

	for bits := range 128 {
		fl := Flags{
			N: bits&0x40 != 0,
			V: bits&0x20 != 0,
			B: bits&0x10 != 0,
			D: bits&0x08 != 0,
			I: bits&0x04 != 0,
			Z: bits&0x02 != 0,
			C: bits&0x01 != 0,
		}
		status := fl.Pack()
		assert.NotZero(status&statusFixed, "flags %+v", fl)
		assert.Equal(fl, UnpackFlags(status), "flags %+v", fl)
	}
}

func TestFlags_String(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("--------", Flags{}.String())
	assert.Equal("N-----Z-", Flags{N: true, Z: true}.String())
	assert.Equal("NV-BDIZC", Flags{N: true, V: true, B: true, D: true, I: true, Z: true, C: true}.String())
}

func TestState_String(t *testing.T) {
	assert := assert.New(t)

	st := State{A: 0x42, SP: 0xff, PC: 0x0400, Flags: Flags{N: true, Z: true}}
	assert.Equal("A=42 X=00 Y=00 S=A2 SP=01FF N-----Z-", st.String())
}
