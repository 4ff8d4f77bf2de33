package cpu

import (
	"fmt"
	"iter"
	"strings"
)

// disassemble renders one instruction from already fetched bytes. It
// classifies the addressing mode from the opcode bit pattern alone and
// never touches the bus.
func disassemble(in *Instruction, code, lo, hi uint8, pc uint16) (text string) {
	name := in.Name
	if name == "" {
		name = "???"
	}

	switch {
	case in.Bytes <= 1:
		text = name
	case code == 0x20:
		// JSR, the one absolute mode opcode outside the patterned
		// families.
		text = fmt.Sprintf("%s $%02X%02X", name, hi, lo)
	case code&0b11111 == 0b10000:
		// Branches. The target is relative to the next instruction.
		text = fmt.Sprintf("%s $%04X", name, pc+2+uint16(int8(lo)))
	default:
		text = modeText(name, code, lo, hi)
	}
	return
}

// modeText formats the opcode families laid out as aaabbbcc, with cc
// selecting a family and bbb its addressing mode.
func modeText(name string, code, lo, hi uint8) (text string) {
	mode := (code >> 2) & 0b111

	switch code & 0b11 {
	case 0b01:
		switch mode {
		case 0b000:
			text = fmt.Sprintf("%s ($%02X,X)", name, lo)
		case 0b001:
			text = fmt.Sprintf("%s $%02X", name, lo)
		case 0b010:
			text = fmt.Sprintf("%s #$%02X", name, lo)
		case 0b011:
			text = fmt.Sprintf("%s $%02X%02X", name, hi, lo)
		case 0b100:
			text = fmt.Sprintf("%s ($%02X),Y", name, lo)
		case 0b101:
			text = fmt.Sprintf("%s $%02X,X", name, lo)
		case 0b110:
			text = fmt.Sprintf("%s $%02X%02X,Y", name, hi, lo)
		case 0b111:
			text = fmt.Sprintf("%s $%02X%02X,X", name, hi, lo)
		}
	case 0b10:
		switch mode {
		case 0b000:
			text = fmt.Sprintf("%s #$%02X", name, lo)
		case 0b001:
			text = fmt.Sprintf("%s $%02X", name, lo)
		case 0b011:
			text = fmt.Sprintf("%s $%02X%02X", name, hi, lo)
		case 0b101:
			text = fmt.Sprintf("%s $%02X,X", name, lo)
		case 0b111:
			text = fmt.Sprintf("%s $%02X%02X,X", name, hi, lo)
		}
	case 0b00:
		switch mode {
		case 0b000:
			text = fmt.Sprintf("%s #$%02X", name, lo)
		case 0b001:
			text = fmt.Sprintf("%s $%02X", name, lo)
		case 0b011:
			text = fmt.Sprintf("%s $%02X%02X", name, hi, lo)
		case 0b101:
			text = fmt.Sprintf("%s $%02X,X", name, lo)
		case 0b111:
			text = fmt.Sprintf("%s $%02X%02X,X", name, hi, lo)
		}
	}

	if text == "" {
		text = name
	}
	return
}

// trace emits the one line diagnostic record for an instruction that
// just executed: its address, disassembly, raw bytes, the resulting
// register state, and the live stack bytes.
func (cpu *Cpu) trace(pc uint16, text string, code uint8, bytes int, lo, hi uint8) {
	raw := [3]string{fmt.Sprintf("%02X", code), "  ", "  "}
	if bytes >= 2 {
		raw[1] = fmt.Sprintf("%02X", lo)
	}
	if bytes >= 3 {
		raw[2] = fmt.Sprintf("%02X", hi)
	}

	fmt.Fprintf(cpu.Trace, "CPU: %04X %-20s | %s %s %s  %v  STACK: %s\n",
		pc, text, raw[0], raw[1], raw[2], cpu.State, cpu.stackText())
}

// stackText renders the pushed bytes from most recent to first.
func (cpu *Cpu) stackText() string {
	var sb strings.Builder
	for sp := int(cpu.State.SP) + 1; sp <= 0xff; sp++ {
		if sb.Len() > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%02X", cpu.Bus.ReadDirect(STACK_BASE+uint16(sp)))
	}
	return sb.String()
}

// Disassemble walks the instructions from start through end without
// executing them, yielding each address and its rendering. Unknown
// opcodes disassemble as "???" and occupy one byte.
func (cpu *Cpu) Disassemble(start, end uint16) iter.Seq2[uint16, string] {
	return func(yield func(uint16, string) bool) {
		pc := start
		for pc <= end {
			code := cpu.Bus.Read(pc)
			in := &cpu.Table[code]

			bytes := in.Bytes
			if bytes < 1 {
				bytes = 1
			}
			var lo, hi uint8
			if bytes >= 2 {
				lo = cpu.Bus.Read(pc + 1)
			}
			if bytes >= 3 {
				hi = cpu.Bus.Read(pc + 2)
			}

			if !yield(pc, disassemble(in, code, lo, hi, pc)) {
				return
			}

			next := pc + uint16(bytes)
			if next <= pc {
				// Wrapped past the top of the address space.
				return
			}
			pc = next
		}
	}
}
