package cpu

import (
	"errors"
)

// Handler executes one instruction. It is one of NoOperand,
// ByteOperand, or WordOperand, picked to match the instruction
// length.
type Handler interface {
	handler()
}

// NoOperand handles a one byte instruction.
type NoOperand func(cpu *Cpu)

// ByteOperand handles a two byte instruction, given its operand.
type ByteOperand func(cpu *Cpu, oper uint8)

// WordOperand handles a three byte instruction, given its
// little-endian operand.
type WordOperand func(cpu *Cpu, oper uint16)

func (NoOperand) handler()   {}
func (ByteOperand) handler() {}
func (WordOperand) handler() {}

// Instruction describes a single opcode. A nil Exec marks the opcode
// unimplemented.
type Instruction struct {
	Name  string  // Mnemonic, for disassembly.
	Bytes int     // Total encoded length, opcode included.
	Stack int     // Net stack bytes: positive pushes, negative pulls.
	Exec  Handler // Semantics, nil if unimplemented.
}

// handlerBytes returns the instruction length implied by the handler
// kind, or zero for a nil handler.
func (in *Instruction) handlerBytes() (bytes int) {
	switch in.Exec.(type) {
	case NoOperand:
		bytes = 1
	case ByteOperand:
		bytes = 2
	case WordOperand:
		bytes = 3
	}
	return
}

// Table is a full decode table, indexed by opcode byte.
type Table [256]Instruction

// Check verifies that every implemented entry declares the length its
// handler kind implies.
func (tb *Table) Check() (err error) {
	for code := range tb {
		in := &tb[code]
		if in.Exec == nil {
			continue
		}
		if in.Bytes != in.handlerBytes() {
			err = errors.Join(err, ErrOpcode(code), ErrHandler)
		}
	}
	return
}
