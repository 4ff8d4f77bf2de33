// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package emulator assembles a runnable 6502 machine: RAM over the
// whole address space, the documented instruction set, an optional
// memory mapped console, and starlark profiles to lay out the rest.
package emulator

import (
	"io"
	"iter"
	"log"
	"os"

	"github.com/ezrec/mos6502/cpu"
	"github.com/ezrec/mos6502/ins"
	"github.com/ezrec/mos6502/internal"
)

const (
	RAM_SIZE = 0x10000 // Base RAM covers the entire address space.
)

// Machine is a 6502 wired for use. ROM images, devices, and profiles
// overlay the base RAM.
type Machine struct {
	Verbose  bool // Set to enable verbose logging.
	*cpu.Cpu      // Processor core and its bus.

	Console *Console // Mapped console, nil until MapConsole.

	ConsoleOutput io.Writer // Display sink for mapped consoles.
	TraceOutput   io.Writer // Trace sink when a profile enables tracing.
}

// NewMachine creates a machine with RAM at every address.
func NewMachine() (ma *Machine) {
	ma = &Machine{
		Cpu:           cpu.NewCpu(ins.Table()),
		ConsoleOutput: os.Stdout,
		TraceOutput:   os.Stderr,
	}

	_ = ma.Cpu.AddRAM(0x0000, RAM_SIZE)

	return ma
}

// Defines returns an iterator over all of the machine's symbol definitions.
func (ma *Machine) Defines() iter.Seq2[string, uint16] {
	defines := []iter.Seq2[string, uint16]{ma.Cpu.Defines()}
	if ma.Console != nil {
		defines = append(defines, ma.Console.Defines())
	}

	return internal.IterSeq2Concat(defines...)
}

// MapConsole registers a console's registers at base.
func (ma *Machine) MapConsole(base uint16) (con *Console, err error) {
	con = NewConsole(base, ma.ConsoleOutput)

	err = ma.Cpu.AddIO(base, CONSOLE_SPAN, con.read, con.write)
	if err != nil {
		return nil, err
	}

	con.Verbose = ma.Verbose
	ma.Console = con

	if ma.Verbose {
		log.Printf("machine: console at $%04x", base)
	}

	return con, nil
}
