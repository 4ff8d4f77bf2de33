// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package emulator

import (
	"io"
	"iter"
	"log"
	"maps"
)

// Console register offsets from the mapped base, in the style of the
// classic serial terminal interfaces.
const (
	CONSOLE_KBD   = uint16(0) // Keyboard data; bit 7 set, reading consumes the key.
	CONSOLE_KBDCR = uint16(1) // Keyboard control; bit 7 set while a key waits.
	CONSOLE_DSP   = uint16(2) // Display data; writing emits one character.
	CONSOLE_DSPCR = uint16(3) // Display control; writes ignored.
	CONSOLE_SPAN  = 4         // Registers occupied on the bus.
)

// Console is a memory mapped serial console: a keyboard queue and a
// character display.
type Console struct {
	Verbose bool      // Set to enable verbose logging.
	Base    uint16    // Bus address of the first register.
	Output  io.Writer // Display sink. Nil drops display output.

	keys chan uint8
}

// NewConsole creates an unmapped console delivering display output to
// output.
func NewConsole(base uint16, output io.Writer) (con *Console) {
	con = &Console{
		Base:   base,
		Output: output,
		keys:   make(chan uint8, 64),
	}

	return con
}

// Defines returns the console's register addresses by name.
func (con *Console) Defines() iter.Seq2[string, uint16] {
	return maps.All(map[string]uint16{
		"CONSOLE_KBD":   con.Base + CONSOLE_KBD,
		"CONSOLE_KBDCR": con.Base + CONSOLE_KBDCR,
		"CONSOLE_DSP":   con.Base + CONSOLE_DSP,
		"CONSOLE_DSPCR": con.Base + CONSOLE_DSPCR,
	})
}

// Feed queues keystrokes for the machine to read. Keys beyond the
// queue capacity are dropped.
func (con *Console) Feed(keys []uint8) {
	for _, key := range keys {
		select {
		case con.keys <- key:
		default:
			if con.Verbose {
				log.Printf("console: key $%02x dropped", key)
			}
			return
		}
	}
}

// Pump feeds keystrokes from r until it fails or is exhausted. Run it
// on its own goroutine when r blocks, as a terminal does.
func (con *Console) Pump(r io.Reader) {
	var buf [64]uint8

	for {
		n, err := r.Read(buf[:])
		if n > 0 {
			con.Feed(buf[:n])
		}
		if err != nil {
			return
		}
	}
}

func (con *Console) read(addr uint16) (value uint8) {
	switch addr - con.Base {
	case CONSOLE_KBD:
		select {
		case key := <-con.keys:
			value = key | 0x80
		default:
		}
	case CONSOLE_KBDCR:
		if len(con.keys) > 0 {
			value = 0x80
		}
	}

	return value
}

func (con *Console) write(addr uint16, value uint8) {
	if addr-con.Base != CONSOLE_DSP {
		return
	}

	value &= 0x7f
	if value == '\r' {
		value = '\n'
	}

	if con.Output != nil {
		_, _ = con.Output.Write([]byte{value})
	}
}
