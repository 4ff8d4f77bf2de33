package cpu

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDisassemble_Modes(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		code   uint8
		name   string
		bytes  int
		lo, hi uint8
		pc     uint16
		text   string
	}){
		{0xea, "NOP", 1, 0, 0, 0x0400, "NOP"},
		{0x0a, "ASL", 1, 0, 0, 0x0400, "ASL"},
		{0xa9, "LDA", 2, 0x42, 0, 0x0400, "LDA #$42"},
		{0xa5, "LDA", 2, 0x42, 0, 0x0400, "LDA $42"},
		{0xb5, "LDA", 2, 0x42, 0, 0x0400, "LDA $42,X"},
		{0xad, "LDA", 3, 0x34, 0x12, 0x0400, "LDA $1234"},
		{0xbd, "LDA", 3, 0x34, 0x12, 0x0400, "LDA $1234,X"},
		{0xb9, "LDA", 3, 0x34, 0x12, 0x0400, "LDA $1234,Y"},
		{0xa1, "LDA", 2, 0x42, 0, 0x0400, "LDA ($42,X)"},
		{0xb1, "LDA", 2, 0x42, 0, 0x0400, "LDA ($42),Y"},
		{0xa2, "LDX", 2, 0x42, 0, 0x0400, "LDX #$42"},
		{0xa0, "LDY", 2, 0x42, 0, 0x0400, "LDY #$42"},
		{0x2c, "BIT", 3, 0x34, 0x12, 0x0400, "BIT $1234"},
		{0x20, "JSR", 3, 0x34, 0x12, 0x0400, "JSR $1234"},
		{0x4c, "JMP", 3, 0x34, 0x12, 0x0400, "JMP $1234"},
		{0xd0, "BNE", 2, 0xfe, 0, 0x0400, "BNE $0400"},
		{0xf0, "BEQ", 2, 0x10, 0, 0x0400, "BEQ $0412"},
		{0x10, "BPL", 2, 0x80, 0, 0x0400, "BPL $0382"},
		{0x00, "", 1, 0, 0, 0x0400, "???"},
	}

	for _, entry := range table {
		in := &Instruction{Name: entry.name, Bytes: entry.bytes}
		text := disassemble(in, entry.code, entry.lo, entry.hi, entry.pc)
		assert.Equal(entry.text, text, "opcode $%02x", entry.code)
	}
}

func TestCpu_Trace(t *testing.T) {
	assert := assert.New(t)

	cpu, _, _ := testCpu(t, []uint8{0x02, 0x42, 0x04})
	out := &strings.Builder{}
	cpu.Trace = out

	assert.NoError(cpu.Step())
	assert.NoError(cpu.Step())

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	assert.Len(lines, 2)

	// Address, disassembly, raw bytes, post-execution state.
	expect := fmt.Sprintf("CPU: 0400 %-20s | 02 42     %s  STACK:",
		"LDB #$42", "A=00 X=00 Y=00 S=20 SP=01FF --------")
	assert.Equal(expect, strings.TrimRight(lines[0], " "))

	// One byte on the stack after the push.
	expect = fmt.Sprintf("CPU: 0402 %-20s | 04        %s  STACK: 5A",
		"PSH", "A=00 X=00 Y=00 S=20 SP=01FE --------")
	assert.Equal(expect, lines[1])
}

func TestCpu_Trace_IoOnce(t *testing.T) {
	assert := assert.New(t)

	// Tracing must not fetch the operand a second time.
	reads := 0
	cpu, got, _ := testCpu(t, nil)
	cpu.Trace = &strings.Builder{}

	err := cpu.AddIO(0x0401, 1,
		func(addr uint16) uint8 {
			reads++
			return 0x7f
		}, nil)
	assert.NoError(err)
	cpu.Bus.Write(0x0400, 0x02)

	assert.NoError(cpu.Step())
	assert.Equal(uint32(0x7f), *got)
	assert.Equal(1, reads)
}

func TestCpu_Disassemble(t *testing.T) {
	assert := assert.New(t)

	cpu, _, _ := testCpu(t, []uint8{0x02, 0x42, 0x4c, 0x00, 0x09, 0x01, 0xff})

	addrs := []uint16{}
	listing := []string{}
	for pc, text := range cpu.Disassemble(0x0400, 0x0406) {
		addrs = append(addrs, pc)
		listing = append(listing, text)
	}
	assert.Equal([]uint16{0x0400, 0x0402, 0x0405, 0x0406}, addrs)
	assert.Equal([]string{
		"LDB #$42",
		"JMP $0900",
		"CAP",
		"???",
	}, listing)

	// PC does not execute, so state is untouched.
	assert.Equal(uint16(0x0400), cpu.State.PC)
}

func TestCpu_Disassemble_Stop(t *testing.T) {
	assert := assert.New(t)

	cpu, _, _ := testCpu(t, nil)
	count := 0
	for range cpu.Disassemble(0xfffe, 0xffff) {
		count++
	}

	// The walk ends at the top of the address space.
	assert.Equal(2, count)
}
