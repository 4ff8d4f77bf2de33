package cpu

import (
	"io"
	"iter"
	"log"
	"maps"

	"github.com/ezrec/mos6502/bus"
)

var _cpu_defines = map[string]uint16{
	"STACK_BASE":   STACK_BASE,
	"STACK_TOP":    STACK_TOP,
	"VECTOR_NMI":   VECTOR_NMI,
	"VECTOR_RESET": VECTOR_RESET,
	"VECTOR_IRQ":   VECTOR_IRQ,
}

// Cpu is the execution context: the register file, the memory bus,
// and the decode table that supplies instruction semantics.
type Cpu struct {
	Verbose bool // Set to enable verbose logging.

	Bus   *bus.Bus // Memory bus.
	State State    // Register file.
	Table *Table   // Decode table, owned by the caller.

	Strict bool      // Enables stack capacity checks during dispatch.
	Trace  io.Writer // Per-instruction diagnostics. Nil disables tracing.
}

// NewCpu creates a CPU with an empty bus and the given decode table.
func NewCpu(table *Table) (cpu *Cpu) {
	cpu = &Cpu{
		Bus:   bus.New(),
		Table: table,
	}

	return
}

// Defines for the cpu memory layout.
func (cpu *Cpu) Defines() iter.Seq2[string, uint16] {
	return maps.All(_cpu_defines)
}

// AddRAM registers RAM on the bus.
func (cpu *Cpu) AddRAM(start uint16, size int) (err error) {
	_, err = cpu.Bus.AddRAM(start, size)
	return
}

// AddROM registers a ROM image on the bus.
func (cpu *Cpu) AddROM(start uint16, image []uint8) (err error) {
	_, err = cpu.Bus.AddROM(start, image)
	return
}

// AddROMFile registers the contents of a flat binary file as ROM.
func (cpu *Cpu) AddROMFile(start uint16, path string) (err error) {
	_, err = cpu.Bus.AddROMFile(start, path)
	return
}

// AddIO registers access handlers on the bus.
func (cpu *Cpu) AddIO(start uint16, size int, read bus.ReadFunc, write bus.WriteFunc) (err error) {
	_, err = cpu.Bus.AddIO(start, size, read, write)
	return
}

// Step fetches, decodes, and executes one instruction.
//
// The operand bytes are fetched exactly once, before PC advances, and
// shared with the tracer. PC has already moved past the instruction
// when the handler runs, so control transfers simply replace it. On
// failure no register or memory state has changed.
func (cpu *Cpu) Step() (err error) {
	pc := cpu.State.PC
	code := cpu.Bus.Read(pc)

	defer func() {
		if err != nil {
			err = ErrExec{Pc: pc, Code: code, Err: err}
		}
	}()

	in := &cpu.Table[code]
	if in.Exec == nil {
		err = ErrUnimplemented
		return
	}

	if cpu.Strict {
		switch {
		case in.Stack > 0 && int(cpu.StackFree()) < in.Stack:
			err = ErrStackOverflow
			return
		case in.Stack < 0 && int(cpu.StackUsed()) < -in.Stack:
			err = ErrStackUnderflow
			return
		}
	}

	var lo, hi uint8
	if in.Bytes >= 2 {
		lo = cpu.Bus.Read(pc + 1)
	}
	if in.Bytes >= 3 {
		hi = cpu.Bus.Read(pc + 2)
	}

	var text string
	if cpu.Trace != nil {
		text = disassemble(in, code, lo, hi, pc)
	}

	cpu.State.PC += uint16(in.Bytes)

	switch fn := in.Exec.(type) {
	case NoOperand:
		fn(cpu)
	case ByteOperand:
		fn(cpu, lo)
	case WordOperand:
		fn(cpu, uint16(lo)|uint16(hi)<<8)
	}

	if cpu.Trace != nil {
		cpu.trace(pc, text, code, in.Bytes, lo, hi)
	}

	return
}

// Run steps until an instruction fails, and returns that failure along
// with the count of instructions completed before it.
func (cpu *Cpu) Run() (count uint64, err error) {
	for {
		err = cpu.Step()
		if err != nil {
			if cpu.Verbose {
				log.Printf("cpu: halted after %d instructions: %v", count, err)
			}
			return
		}
		count++
	}
}

// Boot resets the CPU and runs.
func (cpu *Cpu) Boot() (count uint64, err error) {
	cpu.Reset()
	return cpu.Run()
}
