package cpu

import (
	"log"
)

// Reset loads PC from the reset vector and returns the register file
// to its power-on state: registers and flags cleared, interrupts
// disabled, stack empty.
func (cpu *Cpu) Reset() {
	cpu.State = State{
		PC:    cpu.Bus.ReadWord(VECTOR_RESET),
		SP:    0xff,
		Flags: Flags{I: true},
	}

	if cpu.Verbose {
		log.Printf("cpu: reset pc=$%04x", cpu.State.PC)
	}
}

// interrupt pushes the return address and status, disables further
// interrupts, and redirects PC through vector. In strict mode the
// three pushed bytes must fit, or nothing changes.
func (cpu *Cpu) interrupt(vector uint16) (err error) {
	if cpu.Strict && cpu.StackFree() < 3 {
		err = ErrStackOverflow
		return
	}

	cpu.PushWord(cpu.State.PC)
	cpu.PushByte(cpu.State.Flags.Pack())
	cpu.State.Flags.I = true
	cpu.State.PC = cpu.Bus.ReadWord(vector)

	if cpu.Verbose {
		log.Printf("cpu: interrupt vector=$%04x pc=$%04x", vector, cpu.State.PC)
	}
	return
}

// IRQ delivers a maskable interrupt request. Masking policy is the
// caller's: delivery here is unconditional, and identical to NMI but
// for the vector.
func (cpu *Cpu) IRQ() (err error) {
	return cpu.interrupt(VECTOR_IRQ)
}

// NMI delivers a non-maskable interrupt.
func (cpu *Cpu) NMI() (err error) {
	return cpu.interrupt(VECTOR_NMI)
}
