// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"flag"
	"fmt"
	"log"
	"net"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"

	"github.com/ezrec/mos6502/emulator"
	"github.com/ezrec/mos6502/remote"
)

func parseAddr(s string) (addr uint16, err error) {
	v, err := strconv.ParseUint(s, 0, 16)
	if err != nil {
		return 0, err
	}

	return uint16(v), nil
}

func main() {
	var profile string
	var rom string
	var console string
	var listen string
	var wsListen string
	var disasm string
	var trace bool
	var strict bool
	var verbose bool

	flag.StringVar(&profile, "p", "", ".star machine profile to load")
	flag.StringVar(&rom, "r", "", "ROM image to map, as addr:file")
	flag.StringVar(&console, "c", "", "Console base address")
	flag.StringVar(&listen, "l", "", "Listen for one TCP peripheral")
	flag.StringVar(&wsListen, "w", "", "Listen for one websocket peripheral")
	flag.StringVar(&disasm, "d", "", "Disassemble addr:addr, do not execute")
	flag.BoolVar(&trace, "t", false, "Trace execution")
	flag.BoolVar(&strict, "s", false, "Strict stack checking")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")

	flag.Parse()

	if flag.NArg() != 0 {
		log.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args())
	}

	ma := emulator.NewMachine()
	ma.Verbose = verbose
	ma.Cpu.Verbose = verbose
	ma.Cpu.Bus.Verbose = verbose

	if len(rom) != 0 {
		at, file, ok := strings.Cut(rom, ":")
		if !ok {
			log.Fatalf("%v: want addr:file", rom)
		}

		addr, err := parseAddr(at)
		if err != nil {
			log.Fatalf("%v: %v", rom, err)
		}

		err = ma.Cpu.AddROMFile(addr, file)
		if err != nil {
			log.Fatalf("%v: %v", rom, err)
		}
	}

	if len(console) != 0 {
		addr, err := parseAddr(console)
		if err != nil {
			log.Fatalf("%v: %v", console, err)
		}

		_, err = ma.MapConsole(addr)
		if err != nil {
			log.Fatalf("%v: %v", console, err)
		}
	}

	if len(profile) != 0 {
		err := ma.LoadProfile(profile)
		if err != nil {
			log.Fatal(err)
		}
	}

	if strict {
		ma.Cpu.Strict = true
	}
	if trace {
		ma.Cpu.Trace = ma.TraceOutput
	}

	if len(listen) != 0 {
		lis, err := net.Listen("tcp", listen)
		if err != nil {
			log.Fatalf("%v: %v", listen, err)
		}

		dev, err := remote.Accept(lis)
		if err != nil {
			log.Fatalf("%v: %v", listen, err)
		}
		lis.Close()
		defer dev.Close()

		dev.Verbose = verbose
		_, err = dev.Region(ma.Cpu.Bus)
		if err != nil {
			log.Fatalf("%v: %v", listen, err)
		}
	}

	if len(wsListen) != 0 {
		lis, err := net.Listen("tcp", wsListen)
		if err != nil {
			log.Fatalf("%v: %v", wsListen, err)
		}

		dev, err := remote.AcceptWS(lis, "/peripheral")
		if err != nil {
			log.Fatalf("%v: %v", wsListen, err)
		}
		defer dev.Close()

		dev.Verbose = verbose
		_, err = dev.Region(ma.Cpu.Bus)
		if err != nil {
			log.Fatalf("%v: %v", wsListen, err)
		}
	}

	if len(disasm) != 0 {
		from, to, ok := strings.Cut(disasm, ":")
		if !ok {
			log.Fatalf("%v: want addr:addr", disasm)
		}

		start, err := parseAddr(from)
		if err != nil {
			log.Fatalf("%v: %v", disasm, err)
		}
		end, err := parseAddr(to)
		if err != nil {
			log.Fatalf("%v: %v", disasm, err)
		}

		for addr, text := range ma.Cpu.Disassemble(start, end) {
			fmt.Printf("%04X  %s\n", addr, text)
		}
		return
	}

	fd := int(os.Stdin.Fd())
	var saved *term.State
	if ma.Console != nil {
		go ma.Console.Pump(os.Stdin)

		if term.IsTerminal(fd) {
			var err error
			saved, err = term.MakeRaw(fd)
			if err != nil {
				log.Fatalf("%v: %v", os.Args[0], err)
			}
		}
	}

	count, err := ma.Boot()

	if saved != nil {
		_ = term.Restore(fd, saved)
	}

	log.Printf("halted after %d instructions: %v", count, err)
}
