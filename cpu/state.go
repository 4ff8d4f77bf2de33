package cpu

import (
	"fmt"
)

// Flags holds the processor status, one field per flag bit.
type Flags struct {
	N bool // Negative.
	V bool // Overflow.
	B bool // Break.
	D bool // Decimal.
	I bool // Interrupt disable.
	Z bool // Zero.
	C bool // Carry.
}

// statusFixed is bit 5 of the packed status byte. The hardware wires
// it high; it never round-trips through Flags.
const statusFixed = uint8(0x20)

// Pack encodes the flags as a status byte, laid out N V 1 B D I Z C.
func (fl Flags) Pack() (status uint8) {
	status = statusFixed
	bits := []struct {
		set bool
		bit uint8
	}{
		{fl.N, 1 << 7},
		{fl.V, 1 << 6},
		{fl.B, 1 << 4},
		{fl.D, 1 << 3},
		{fl.I, 1 << 2},
		{fl.Z, 1 << 1},
		{fl.C, 1 << 0},
	}
	for _, b := range bits {
		if b.set {
			status |= b.bit
		}
	}
	return
}

// UnpackFlags decodes a status byte. Bit 5 carries no flag and is
// ignored.
func UnpackFlags(status uint8) (fl Flags) {
	fl.N = status&(1<<7) != 0
	fl.V = status&(1<<6) != 0
	fl.B = status&(1<<4) != 0
	fl.D = status&(1<<3) != 0
	fl.I = status&(1<<2) != 0
	fl.Z = status&(1<<1) != 0
	fl.C = status&(1<<0) != 0
	return
}

// String renders the flags as the eight character NV-BDIZC field, a
// dash standing in for each clear bit.
func (fl Flags) String() string {
	letter := func(set bool, c byte) byte {
		if set {
			return c
		}
		return '-'
	}
	return string([]byte{
		letter(fl.N, 'N'),
		letter(fl.V, 'V'),
		'-',
		letter(fl.B, 'B'),
		letter(fl.D, 'D'),
		letter(fl.I, 'I'),
		letter(fl.Z, 'Z'),
		letter(fl.C, 'C'),
	})
}

// State is the register file.
type State struct {
	A     uint8  // Accumulator.
	X     uint8  // X index.
	Y     uint8  // Y index.
	SP    uint8  // Stack pointer, an offset into the stack page.
	PC    uint16 // Program counter.
	Flags Flags
}

// String renders the registers in trace form. S is the packed status
// byte and SP the absolute stack address.
func (st State) String() string {
	return fmt.Sprintf("A=%02X X=%02X Y=%02X S=%02X SP=%04X %v",
		st.A, st.X, st.Y, st.Flags.Pack(), STACK_BASE+uint16(st.SP), st.Flags)
}
