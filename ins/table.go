// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package ins

import (
	"github.com/ezrec/mos6502/cpu"
)

// Table builds a decode table covering the documented instruction
// set. Undocumented opcodes are left unimplemented, so execution
// running into one halts instead of running through it.
func Table() (tb *cpu.Table) {
	tb = &cpu.Table{}

	no := func(code uint8, name string, stack int, fn func(c *cpu.Cpu)) {
		tb[code] = cpu.Instruction{Name: name, Bytes: 1, Stack: stack, Exec: cpu.NoOperand(fn)}
	}
	by := func(code uint8, name string, fn func(c *cpu.Cpu, oper uint8)) {
		tb[code] = cpu.Instruction{Name: name, Bytes: 2, Exec: cpu.ByteOperand(fn)}
	}
	wo := func(code uint8, name string, stack int, fn func(c *cpu.Cpu, oper uint16)) {
		tb[code] = cpu.Instruction{Name: name, Bytes: 3, Stack: stack, Exec: cpu.WordOperand(fn)}
	}

	// Load.
	by(0xa9, "LDA", func(c *cpu.Cpu, oper uint8) { lda(c, oper) })
	by(0xa5, "LDA", func(c *cpu.Cpu, oper uint8) { lda(c, c.Bus.Read(uint16(oper))) })
	by(0xb5, "LDA", func(c *cpu.Cpu, oper uint8) { lda(c, c.Bus.Read(zpx(c, oper))) })
	wo(0xad, "LDA", 0, func(c *cpu.Cpu, oper uint16) { lda(c, c.Bus.Read(oper)) })
	wo(0xbd, "LDA", 0, func(c *cpu.Cpu, oper uint16) { lda(c, c.Bus.Read(absx(c, oper))) })
	wo(0xb9, "LDA", 0, func(c *cpu.Cpu, oper uint16) { lda(c, c.Bus.Read(absy(c, oper))) })
	by(0xa1, "LDA", func(c *cpu.Cpu, oper uint8) { lda(c, c.Bus.Read(indx(c, oper))) })
	by(0xb1, "LDA", func(c *cpu.Cpu, oper uint8) { lda(c, c.Bus.Read(indy(c, oper))) })

	by(0xa2, "LDX", func(c *cpu.Cpu, oper uint8) { ldx(c, oper) })
	by(0xa6, "LDX", func(c *cpu.Cpu, oper uint8) { ldx(c, c.Bus.Read(uint16(oper))) })
	by(0xb6, "LDX", func(c *cpu.Cpu, oper uint8) { ldx(c, c.Bus.Read(zpy(c, oper))) })
	wo(0xae, "LDX", 0, func(c *cpu.Cpu, oper uint16) { ldx(c, c.Bus.Read(oper)) })
	wo(0xbe, "LDX", 0, func(c *cpu.Cpu, oper uint16) { ldx(c, c.Bus.Read(absy(c, oper))) })

	by(0xa0, "LDY", func(c *cpu.Cpu, oper uint8) { ldy(c, oper) })
	by(0xa4, "LDY", func(c *cpu.Cpu, oper uint8) { ldy(c, c.Bus.Read(uint16(oper))) })
	by(0xb4, "LDY", func(c *cpu.Cpu, oper uint8) { ldy(c, c.Bus.Read(zpx(c, oper))) })
	wo(0xac, "LDY", 0, func(c *cpu.Cpu, oper uint16) { ldy(c, c.Bus.Read(oper)) })
	wo(0xbc, "LDY", 0, func(c *cpu.Cpu, oper uint16) { ldy(c, c.Bus.Read(absx(c, oper))) })

	// Store.
	by(0x85, "STA", func(c *cpu.Cpu, oper uint8) { c.Bus.Write(uint16(oper), c.State.A) })
	by(0x95, "STA", func(c *cpu.Cpu, oper uint8) { c.Bus.Write(zpx(c, oper), c.State.A) })
	wo(0x8d, "STA", 0, func(c *cpu.Cpu, oper uint16) { c.Bus.Write(oper, c.State.A) })
	wo(0x9d, "STA", 0, func(c *cpu.Cpu, oper uint16) { c.Bus.Write(absx(c, oper), c.State.A) })
	wo(0x99, "STA", 0, func(c *cpu.Cpu, oper uint16) { c.Bus.Write(absy(c, oper), c.State.A) })
	by(0x81, "STA", func(c *cpu.Cpu, oper uint8) { c.Bus.Write(indx(c, oper), c.State.A) })
	by(0x91, "STA", func(c *cpu.Cpu, oper uint8) { c.Bus.Write(indy(c, oper), c.State.A) })

	by(0x86, "STX", func(c *cpu.Cpu, oper uint8) { c.Bus.Write(uint16(oper), c.State.X) })
	by(0x96, "STX", func(c *cpu.Cpu, oper uint8) { c.Bus.Write(zpy(c, oper), c.State.X) })
	wo(0x8e, "STX", 0, func(c *cpu.Cpu, oper uint16) { c.Bus.Write(oper, c.State.X) })

	by(0x84, "STY", func(c *cpu.Cpu, oper uint8) { c.Bus.Write(uint16(oper), c.State.Y) })
	by(0x94, "STY", func(c *cpu.Cpu, oper uint8) { c.Bus.Write(zpx(c, oper), c.State.Y) })
	wo(0x8c, "STY", 0, func(c *cpu.Cpu, oper uint16) { c.Bus.Write(oper, c.State.Y) })

	// Register transfers. TXS is the one transfer that sets no flags.
	no(0xaa, "TAX", 0, func(c *cpu.Cpu) { c.State.X = nz(c, c.State.A) })
	no(0xa8, "TAY", 0, func(c *cpu.Cpu) { c.State.Y = nz(c, c.State.A) })
	no(0x8a, "TXA", 0, func(c *cpu.Cpu) { c.State.A = nz(c, c.State.X) })
	no(0x98, "TYA", 0, func(c *cpu.Cpu) { c.State.A = nz(c, c.State.Y) })
	no(0xba, "TSX", 0, func(c *cpu.Cpu) { c.State.X = nz(c, c.State.SP) })
	no(0x9a, "TXS", 0, func(c *cpu.Cpu) { c.State.SP = c.State.X })

	// Stack.
	no(0x48, "PHA", 1, func(c *cpu.Cpu) { c.PushByte(c.State.A) })
	no(0x08, "PHP", 1, php)
	no(0x68, "PLA", -1, func(c *cpu.Cpu) { c.State.A = nz(c, c.PullByte()) })
	no(0x28, "PLP", -1, plp)

	// Logic.
	by(0x29, "AND", func(c *cpu.Cpu, oper uint8) { and(c, oper) })
	by(0x25, "AND", func(c *cpu.Cpu, oper uint8) { and(c, c.Bus.Read(uint16(oper))) })
	by(0x35, "AND", func(c *cpu.Cpu, oper uint8) { and(c, c.Bus.Read(zpx(c, oper))) })
	wo(0x2d, "AND", 0, func(c *cpu.Cpu, oper uint16) { and(c, c.Bus.Read(oper)) })
	wo(0x3d, "AND", 0, func(c *cpu.Cpu, oper uint16) { and(c, c.Bus.Read(absx(c, oper))) })
	wo(0x39, "AND", 0, func(c *cpu.Cpu, oper uint16) { and(c, c.Bus.Read(absy(c, oper))) })
	by(0x21, "AND", func(c *cpu.Cpu, oper uint8) { and(c, c.Bus.Read(indx(c, oper))) })
	by(0x31, "AND", func(c *cpu.Cpu, oper uint8) { and(c, c.Bus.Read(indy(c, oper))) })

	by(0x49, "EOR", func(c *cpu.Cpu, oper uint8) { eor(c, oper) })
	by(0x45, "EOR", func(c *cpu.Cpu, oper uint8) { eor(c, c.Bus.Read(uint16(oper))) })
	by(0x55, "EOR", func(c *cpu.Cpu, oper uint8) { eor(c, c.Bus.Read(zpx(c, oper))) })
	wo(0x4d, "EOR", 0, func(c *cpu.Cpu, oper uint16) { eor(c, c.Bus.Read(oper)) })
	wo(0x5d, "EOR", 0, func(c *cpu.Cpu, oper uint16) { eor(c, c.Bus.Read(absx(c, oper))) })
	wo(0x59, "EOR", 0, func(c *cpu.Cpu, oper uint16) { eor(c, c.Bus.Read(absy(c, oper))) })
	by(0x41, "EOR", func(c *cpu.Cpu, oper uint8) { eor(c, c.Bus.Read(indx(c, oper))) })
	by(0x51, "EOR", func(c *cpu.Cpu, oper uint8) { eor(c, c.Bus.Read(indy(c, oper))) })

	by(0x09, "ORA", func(c *cpu.Cpu, oper uint8) { ora(c, oper) })
	by(0x05, "ORA", func(c *cpu.Cpu, oper uint8) { ora(c, c.Bus.Read(uint16(oper))) })
	by(0x15, "ORA", func(c *cpu.Cpu, oper uint8) { ora(c, c.Bus.Read(zpx(c, oper))) })
	wo(0x0d, "ORA", 0, func(c *cpu.Cpu, oper uint16) { ora(c, c.Bus.Read(oper)) })
	wo(0x1d, "ORA", 0, func(c *cpu.Cpu, oper uint16) { ora(c, c.Bus.Read(absx(c, oper))) })
	wo(0x19, "ORA", 0, func(c *cpu.Cpu, oper uint16) { ora(c, c.Bus.Read(absy(c, oper))) })
	by(0x01, "ORA", func(c *cpu.Cpu, oper uint8) { ora(c, c.Bus.Read(indx(c, oper))) })
	by(0x11, "ORA", func(c *cpu.Cpu, oper uint8) { ora(c, c.Bus.Read(indy(c, oper))) })

	by(0x24, "BIT", func(c *cpu.Cpu, oper uint8) { bit(c, c.Bus.Read(uint16(oper))) })
	wo(0x2c, "BIT", 0, func(c *cpu.Cpu, oper uint16) { bit(c, c.Bus.Read(oper)) })

	// Arithmetic.
	by(0x69, "ADC", func(c *cpu.Cpu, oper uint8) { adc(c, oper) })
	by(0x65, "ADC", func(c *cpu.Cpu, oper uint8) { adc(c, c.Bus.Read(uint16(oper))) })
	by(0x75, "ADC", func(c *cpu.Cpu, oper uint8) { adc(c, c.Bus.Read(zpx(c, oper))) })
	wo(0x6d, "ADC", 0, func(c *cpu.Cpu, oper uint16) { adc(c, c.Bus.Read(oper)) })
	wo(0x7d, "ADC", 0, func(c *cpu.Cpu, oper uint16) { adc(c, c.Bus.Read(absx(c, oper))) })
	wo(0x79, "ADC", 0, func(c *cpu.Cpu, oper uint16) { adc(c, c.Bus.Read(absy(c, oper))) })
	by(0x61, "ADC", func(c *cpu.Cpu, oper uint8) { adc(c, c.Bus.Read(indx(c, oper))) })
	by(0x71, "ADC", func(c *cpu.Cpu, oper uint8) { adc(c, c.Bus.Read(indy(c, oper))) })

	by(0xe9, "SBC", func(c *cpu.Cpu, oper uint8) { sbc(c, oper) })
	by(0xe5, "SBC", func(c *cpu.Cpu, oper uint8) { sbc(c, c.Bus.Read(uint16(oper))) })
	by(0xf5, "SBC", func(c *cpu.Cpu, oper uint8) { sbc(c, c.Bus.Read(zpx(c, oper))) })
	wo(0xed, "SBC", 0, func(c *cpu.Cpu, oper uint16) { sbc(c, c.Bus.Read(oper)) })
	wo(0xfd, "SBC", 0, func(c *cpu.Cpu, oper uint16) { sbc(c, c.Bus.Read(absx(c, oper))) })
	wo(0xf9, "SBC", 0, func(c *cpu.Cpu, oper uint16) { sbc(c, c.Bus.Read(absy(c, oper))) })
	by(0xe1, "SBC", func(c *cpu.Cpu, oper uint8) { sbc(c, c.Bus.Read(indx(c, oper))) })
	by(0xf1, "SBC", func(c *cpu.Cpu, oper uint8) { sbc(c, c.Bus.Read(indy(c, oper))) })

	// Compare.
	by(0xc9, "CMP", func(c *cpu.Cpu, oper uint8) { compare(c, c.State.A, oper) })
	by(0xc5, "CMP", func(c *cpu.Cpu, oper uint8) { compare(c, c.State.A, c.Bus.Read(uint16(oper))) })
	by(0xd5, "CMP", func(c *cpu.Cpu, oper uint8) { compare(c, c.State.A, c.Bus.Read(zpx(c, oper))) })
	wo(0xcd, "CMP", 0, func(c *cpu.Cpu, oper uint16) { compare(c, c.State.A, c.Bus.Read(oper)) })
	wo(0xdd, "CMP", 0, func(c *cpu.Cpu, oper uint16) { compare(c, c.State.A, c.Bus.Read(absx(c, oper))) })
	wo(0xd9, "CMP", 0, func(c *cpu.Cpu, oper uint16) { compare(c, c.State.A, c.Bus.Read(absy(c, oper))) })
	by(0xc1, "CMP", func(c *cpu.Cpu, oper uint8) { compare(c, c.State.A, c.Bus.Read(indx(c, oper))) })
	by(0xd1, "CMP", func(c *cpu.Cpu, oper uint8) { compare(c, c.State.A, c.Bus.Read(indy(c, oper))) })

	by(0xe0, "CPX", func(c *cpu.Cpu, oper uint8) { compare(c, c.State.X, oper) })
	by(0xe4, "CPX", func(c *cpu.Cpu, oper uint8) { compare(c, c.State.X, c.Bus.Read(uint16(oper))) })
	wo(0xec, "CPX", 0, func(c *cpu.Cpu, oper uint16) { compare(c, c.State.X, c.Bus.Read(oper)) })

	by(0xc0, "CPY", func(c *cpu.Cpu, oper uint8) { compare(c, c.State.Y, oper) })
	by(0xc4, "CPY", func(c *cpu.Cpu, oper uint8) { compare(c, c.State.Y, c.Bus.Read(uint16(oper))) })
	wo(0xcc, "CPY", 0, func(c *cpu.Cpu, oper uint16) { compare(c, c.State.Y, c.Bus.Read(oper)) })

	// Increment and decrement.
	by(0xe6, "INC", func(c *cpu.Cpu, oper uint8) { modify(c, uint16(oper), inc) })
	by(0xf6, "INC", func(c *cpu.Cpu, oper uint8) { modify(c, zpx(c, oper), inc) })
	wo(0xee, "INC", 0, func(c *cpu.Cpu, oper uint16) { modify(c, oper, inc) })
	wo(0xfe, "INC", 0, func(c *cpu.Cpu, oper uint16) { modify(c, absx(c, oper), inc) })
	no(0xe8, "INX", 0, func(c *cpu.Cpu) { c.State.X = inc(c, c.State.X) })
	no(0xc8, "INY", 0, func(c *cpu.Cpu) { c.State.Y = inc(c, c.State.Y) })

	by(0xc6, "DEC", func(c *cpu.Cpu, oper uint8) { modify(c, uint16(oper), dec) })
	by(0xd6, "DEC", func(c *cpu.Cpu, oper uint8) { modify(c, zpx(c, oper), dec) })
	wo(0xce, "DEC", 0, func(c *cpu.Cpu, oper uint16) { modify(c, oper, dec) })
	wo(0xde, "DEC", 0, func(c *cpu.Cpu, oper uint16) { modify(c, absx(c, oper), dec) })
	no(0xca, "DEX", 0, func(c *cpu.Cpu) { c.State.X = dec(c, c.State.X) })
	no(0x88, "DEY", 0, func(c *cpu.Cpu) { c.State.Y = dec(c, c.State.Y) })

	// Shifts and rotates.
	no(0x0a, "ASL", 0, func(c *cpu.Cpu) { c.State.A = asl(c, c.State.A) })
	by(0x06, "ASL", func(c *cpu.Cpu, oper uint8) { modify(c, uint16(oper), asl) })
	by(0x16, "ASL", func(c *cpu.Cpu, oper uint8) { modify(c, zpx(c, oper), asl) })
	wo(0x0e, "ASL", 0, func(c *cpu.Cpu, oper uint16) { modify(c, oper, asl) })
	wo(0x1e, "ASL", 0, func(c *cpu.Cpu, oper uint16) { modify(c, absx(c, oper), asl) })

	no(0x4a, "LSR", 0, func(c *cpu.Cpu) { c.State.A = lsr(c, c.State.A) })
	by(0x46, "LSR", func(c *cpu.Cpu, oper uint8) { modify(c, uint16(oper), lsr) })
	by(0x56, "LSR", func(c *cpu.Cpu, oper uint8) { modify(c, zpx(c, oper), lsr) })
	wo(0x4e, "LSR", 0, func(c *cpu.Cpu, oper uint16) { modify(c, oper, lsr) })
	wo(0x5e, "LSR", 0, func(c *cpu.Cpu, oper uint16) { modify(c, absx(c, oper), lsr) })

	no(0x2a, "ROL", 0, func(c *cpu.Cpu) { c.State.A = rol(c, c.State.A) })
	by(0x26, "ROL", func(c *cpu.Cpu, oper uint8) { modify(c, uint16(oper), rol) })
	by(0x36, "ROL", func(c *cpu.Cpu, oper uint8) { modify(c, zpx(c, oper), rol) })
	wo(0x2e, "ROL", 0, func(c *cpu.Cpu, oper uint16) { modify(c, oper, rol) })
	wo(0x3e, "ROL", 0, func(c *cpu.Cpu, oper uint16) { modify(c, absx(c, oper), rol) })

	no(0x6a, "ROR", 0, func(c *cpu.Cpu) { c.State.A = ror(c, c.State.A) })
	by(0x66, "ROR", func(c *cpu.Cpu, oper uint8) { modify(c, uint16(oper), ror) })
	by(0x76, "ROR", func(c *cpu.Cpu, oper uint8) { modify(c, zpx(c, oper), ror) })
	wo(0x6e, "ROR", 0, func(c *cpu.Cpu, oper uint16) { modify(c, oper, ror) })
	wo(0x7e, "ROR", 0, func(c *cpu.Cpu, oper uint16) { modify(c, absx(c, oper), ror) })

	// Control transfer.
	wo(0x4c, "JMP", 0, func(c *cpu.Cpu, oper uint16) { c.State.PC = oper })
	wo(0x6c, "JMP", 0, func(c *cpu.Cpu, oper uint16) { c.State.PC = c.Bus.ReadWord(oper) })
	wo(0x20, "JSR", 2, jsr)
	no(0x60, "RTS", -2, rts)

	// Branches.
	by(0x90, "BCC", func(c *cpu.Cpu, oper uint8) { branch(c, !c.State.Flags.C, oper) })
	by(0xb0, "BCS", func(c *cpu.Cpu, oper uint8) { branch(c, c.State.Flags.C, oper) })
	by(0xf0, "BEQ", func(c *cpu.Cpu, oper uint8) { branch(c, c.State.Flags.Z, oper) })
	by(0x30, "BMI", func(c *cpu.Cpu, oper uint8) { branch(c, c.State.Flags.N, oper) })
	by(0xd0, "BNE", func(c *cpu.Cpu, oper uint8) { branch(c, !c.State.Flags.Z, oper) })
	by(0x10, "BPL", func(c *cpu.Cpu, oper uint8) { branch(c, !c.State.Flags.N, oper) })
	by(0x50, "BVC", func(c *cpu.Cpu, oper uint8) { branch(c, !c.State.Flags.V, oper) })
	by(0x70, "BVS", func(c *cpu.Cpu, oper uint8) { branch(c, c.State.Flags.V, oper) })

	// Flag operations.
	no(0x18, "CLC", 0, func(c *cpu.Cpu) { c.State.Flags.C = false })
	no(0xd8, "CLD", 0, func(c *cpu.Cpu) { c.State.Flags.D = false })
	no(0x58, "CLI", 0, func(c *cpu.Cpu) { c.State.Flags.I = false })
	no(0xb8, "CLV", 0, func(c *cpu.Cpu) { c.State.Flags.V = false })
	no(0x38, "SEC", 0, func(c *cpu.Cpu) { c.State.Flags.C = true })
	no(0xf8, "SED", 0, func(c *cpu.Cpu) { c.State.Flags.D = true })
	no(0x78, "SEI", 0, func(c *cpu.Cpu) { c.State.Flags.I = true })

	// Interrupt and miscellaneous.
	no(0x00, "BRK", 3, brk)
	no(0x40, "RTI", -3, rti)
	no(0xea, "NOP", 0, func(c *cpu.Cpu) {})

	return
}
