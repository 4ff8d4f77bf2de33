// Package ins supplies the documented MOS 6502 instruction set as a
// decode table for the cpu core.
package ins

import (
	"github.com/ezrec/mos6502/cpu"
)

// Address mode helpers. Zero page index arithmetic wraps within the
// page, as the hardware does.

func zpx(c *cpu.Cpu, oper uint8) uint16 {
	return uint16(oper + c.State.X)
}

func zpy(c *cpu.Cpu, oper uint8) uint16 {
	return uint16(oper + c.State.Y)
}

func absx(c *cpu.Cpu, oper uint16) uint16 {
	return oper + uint16(c.State.X)
}

func absy(c *cpu.Cpu, oper uint16) uint16 {
	return oper + uint16(c.State.Y)
}

// indx resolves ($zp,X). The pointer itself lives in the zero page
// and wraps there.
func indx(c *cpu.Cpu, oper uint8) uint16 {
	lo := c.Bus.Read(uint16(oper + c.State.X))
	hi := c.Bus.Read(uint16(oper + c.State.X + 1))
	return uint16(lo) | uint16(hi)<<8
}

// indy resolves ($zp),Y.
func indy(c *cpu.Cpu, oper uint8) uint16 {
	lo := c.Bus.Read(uint16(oper))
	hi := c.Bus.Read(uint16(oper + 1))
	return (uint16(lo) | uint16(hi)<<8) + uint16(c.State.Y)
}

// nz sets the negative and zero flags from value, and returns it.
func nz(c *cpu.Cpu, value uint8) uint8 {
	c.State.Flags.N = value&0x80 != 0
	c.State.Flags.Z = value == 0
	return value
}

// modify applies op to one memory byte in place.
func modify(c *cpu.Cpu, addr uint16, op func(*cpu.Cpu, uint8) uint8) {
	c.Bus.Write(addr, op(c, c.Bus.Read(addr)))
}

func lda(c *cpu.Cpu, value uint8) {
	c.State.A = nz(c, value)
}

func ldx(c *cpu.Cpu, value uint8) {
	c.State.X = nz(c, value)
}

func ldy(c *cpu.Cpu, value uint8) {
	c.State.Y = nz(c, value)
}

// adc adds with carry, honoring decimal mode. The overflow flag comes
// from the binary sum either way.
func adc(c *cpu.Cpu, value uint8) {
	a := c.State.A
	carry := uint16(0)
	if c.State.Flags.C {
		carry = 1
	}

	sum := uint16(a) + uint16(value) + carry
	c.State.Flags.V = (a^value)&0x80 == 0 && (uint16(a)^sum)&0x80 != 0

	if c.State.Flags.D {
		if (a&0x0f)+(value&0x0f)+uint8(carry) > 9 {
			sum += 6
		}
		c.State.Flags.C = sum > 0x99
		if sum > 0x99 {
			sum += 0x60
		}
	} else {
		c.State.Flags.C = sum > 0xff
	}

	c.State.A = nz(c, uint8(sum))
}

// sbc subtracts with borrow. Binary mode is adc of the complement;
// decimal mode adjusts each nibble.
func sbc(c *cpu.Cpu, value uint8) {
	if !c.State.Flags.D {
		adc(c, ^value)
		return
	}

	a := c.State.A
	borrow := uint16(1)
	if c.State.Flags.C {
		borrow = 0
	}

	diff := uint16(a) - uint16(value) - borrow
	c.State.Flags.V = (a^value)&0x80 != 0 && (uint16(a)^diff)&0x80 != 0
	c.State.Flags.C = diff < 0x100

	if (uint16(a)&0x0f)-(uint16(value)&0x0f)-borrow > 0x0f {
		diff -= 6
	}
	if diff > 0xff {
		diff -= 0x60
	}

	c.State.A = nz(c, uint8(diff))
}

func and(c *cpu.Cpu, value uint8) {
	c.State.A = nz(c, c.State.A&value)
}

func ora(c *cpu.Cpu, value uint8) {
	c.State.A = nz(c, c.State.A|value)
}

func eor(c *cpu.Cpu, value uint8) {
	c.State.A = nz(c, c.State.A^value)
}

func inc(c *cpu.Cpu, value uint8) uint8 {
	return nz(c, value+1)
}

func dec(c *cpu.Cpu, value uint8) uint8 {
	return nz(c, value-1)
}

// compare sets the flags from reg minus value, discarding the result.
func compare(c *cpu.Cpu, reg, value uint8) {
	c.State.Flags.C = reg >= value
	nz(c, reg-value)
}

func bit(c *cpu.Cpu, value uint8) {
	c.State.Flags.N = value&0x80 != 0
	c.State.Flags.V = value&0x40 != 0
	c.State.Flags.Z = value&c.State.A == 0
}

func asl(c *cpu.Cpu, value uint8) uint8 {
	c.State.Flags.C = value&0x80 != 0
	return nz(c, value<<1)
}

func lsr(c *cpu.Cpu, value uint8) uint8 {
	c.State.Flags.C = value&0x01 != 0
	return nz(c, value>>1)
}

func rol(c *cpu.Cpu, value uint8) uint8 {
	carry := uint8(0)
	if c.State.Flags.C {
		carry = 0x01
	}
	c.State.Flags.C = value&0x80 != 0
	return nz(c, value<<1|carry)
}

func ror(c *cpu.Cpu, value uint8) uint8 {
	carry := uint8(0)
	if c.State.Flags.C {
		carry = 0x80
	}
	c.State.Flags.C = value&0x01 != 0
	return nz(c, value>>1|carry)
}

// branch moves PC by the signed offset when taken. PC is already past
// the branch instruction.
func branch(c *cpu.Cpu, taken bool, oper uint8) {
	if taken {
		c.State.PC += uint16(int8(oper))
	}
}

// jsr pushes the address of its own last byte, per the hardware's
// return address convention. rts compensates.
func jsr(c *cpu.Cpu, oper uint16) {
	c.PushWord(c.State.PC - 1)
	c.State.PC = oper
}

func rts(c *cpu.Cpu) {
	c.State.PC = c.PullWord() + 1
}

// brk pushes the word past its padding byte, pushes the status with
// the break bit set, and takes the interrupt request vector.
func brk(c *cpu.Cpu) {
	c.PushWord(c.State.PC + 1)
	fl := c.State.Flags
	fl.B = true
	c.PushByte(fl.Pack())
	c.State.Flags.I = true
	c.State.PC = c.Bus.ReadWord(cpu.VECTOR_IRQ)
}

func rti(c *cpu.Cpu) {
	c.State.Flags = cpu.UnpackFlags(c.PullByte())
	c.State.PC = c.PullWord()
}

// php pushes the status with the break bit set in the pushed copy.
func php(c *cpu.Cpu) {
	fl := c.State.Flags
	fl.B = true
	c.PushByte(fl.Pack())
}

func plp(c *cpu.Cpu) {
	c.State.Flags = cpu.UnpackFlags(c.PullByte())
}
