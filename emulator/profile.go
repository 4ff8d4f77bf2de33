// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package emulator

import (
	"log"
	"path/filepath"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// LoadProfile executes a starlark machine profile: a script that lays
// out the machine with ram(), rom(), console(), poke(), strict() and
// trace() calls. The machine's Defines are predeclared, so profiles
// may poke(VECTOR_RESET, ...) by name. ROM paths resolve relative to
// the profile's directory.
func (ma *Machine) LoadProfile(path string) (err error) {
	return ma.loadProfile(path, nil)
}

// LoadProfileSource is LoadProfile over in-memory source.
func (ma *Machine) LoadProfileSource(filename string, src any) (err error) {
	return ma.loadProfile(filename, src)
}

func (ma *Machine) loadProfile(path string, src any) (err error) {
	defer func() {
		if err != nil {
			err = &ErrProfile{Path: path, Err: err}
		}
	}()

	thread := starlark.Thread{Name: path}
	opts := syntax.FileOptions{}

	pred := starlark.StringDict{}
	for key, value := range ma.Defines() {
		pred[key] = starlark.MakeInt(int(value))
	}

	dir := filepath.Dir(path)
	pred["ram"] = starlark.NewBuiltin("ram", ma.starRAM)
	pred["rom"] = starlark.NewBuiltin("rom", ma.starROM(dir))
	pred["console"] = starlark.NewBuiltin("console", ma.starConsole)
	pred["poke"] = starlark.NewBuiltin("poke", ma.starPoke)
	pred["strict"] = starlark.NewBuiltin("strict", ma.starStrict)
	pred["trace"] = starlark.NewBuiltin("trace", ma.starTrace)

	_, err = starlark.ExecFileOptions(&opts, &thread, path, src, pred)
	if err != nil {
		return err
	}

	if ma.Verbose {
		log.Printf("machine: profile %v loaded", path)
	}

	return nil
}

func addr16(v int) (addr uint16, err error) {
	if v < 0 || v > 0xffff {
		return 0, ErrAddress(v)
	}

	return uint16(v), nil
}

func (ma *Machine) starRAM(thread *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var start, size int

	err := starlark.UnpackArgs(fn.Name(), args, kwargs, "start", &start, "size", &size)
	if err != nil {
		return starlark.None, err
	}

	addr, err := addr16(start)
	if err != nil {
		return starlark.None, err
	}

	return starlark.None, ma.Cpu.AddRAM(addr, size)
}

func (ma *Machine) starROM(dir string) func(*starlark.Thread, *starlark.Builtin, starlark.Tuple, []starlark.Tuple) (starlark.Value, error) {
	return func(thread *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
		var start int
		var path string

		err := starlark.UnpackArgs(fn.Name(), args, kwargs, "start", &start, "path", &path)
		if err != nil {
			return starlark.None, err
		}

		addr, err := addr16(start)
		if err != nil {
			return starlark.None, err
		}

		if !filepath.IsAbs(path) {
			path = filepath.Join(dir, path)
		}

		return starlark.None, ma.Cpu.AddROMFile(addr, path)
	}
}

func (ma *Machine) starConsole(thread *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var base int

	err := starlark.UnpackArgs(fn.Name(), args, kwargs, "base", &base)
	if err != nil {
		return starlark.None, err
	}

	addr, err := addr16(base)
	if err != nil {
		return starlark.None, err
	}

	_, err = ma.MapConsole(addr)
	return starlark.None, err
}

func (ma *Machine) starPoke(thread *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var addr, value int

	err := starlark.UnpackArgs(fn.Name(), args, kwargs, "addr", &addr, "value", &value)
	if err != nil {
		return starlark.None, err
	}

	a, err := addr16(addr)
	if err != nil {
		return starlark.None, err
	}

	if value < 0 || value > 0xff {
		return starlark.None, ErrValue(value)
	}

	ma.Cpu.Bus.Write(a, uint8(value))
	return starlark.None, nil
}

func (ma *Machine) starStrict(thread *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var flag bool

	err := starlark.UnpackArgs(fn.Name(), args, kwargs, "flag", &flag)
	if err != nil {
		return starlark.None, err
	}

	ma.Cpu.Strict = flag
	return starlark.None, nil
}

func (ma *Machine) starTrace(thread *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var flag bool

	err := starlark.UnpackArgs(fn.Name(), args, kwargs, "flag", &flag)
	if err != nil {
		return starlark.None, err
	}

	if flag {
		ma.Cpu.Trace = ma.TraceOutput
	} else {
		ma.Cpu.Trace = nil
	}

	return starlark.None, nil
}
