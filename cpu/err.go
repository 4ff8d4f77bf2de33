package cpu

import (
	"errors"

	"github.com/ezrec/mos6502/translate"
)

var f = translate.From

var (
	ErrStackOverflow  = errors.New(f("stack overflow"))
	ErrStackUnderflow = errors.New(f("stack underflow"))
	ErrUnimplemented  = errors.New(f("unimplemented instruction"))
	ErrHandler        = errors.New(f("handler does not match instruction length"))
)

type ErrOpcode uint8

func (eo ErrOpcode) Error() string {
	return f("bad opcode $%02x", uint8(eo))
}

func (eo ErrOpcode) Is(err error) (ok bool) {
	_, ok = err.(ErrOpcode)
	return
}

type ErrExec struct {
	Pc   uint16
	Code uint8
	Err  error
}

func (err ErrExec) Error() string {
	return f("pc $%04x opcode $%02x %v", err.Pc, err.Code, err.Err)
}

func (err ErrExec) Unwrap() error {
	return err.Err
}
