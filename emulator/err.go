package emulator

import (
	"github.com/ezrec/mos6502/translate"
)

var f = translate.From

// ErrProfile indicates the profile a load error came from.
type ErrProfile struct {
	Path string
	Err  error
}

func (err *ErrProfile) Error() string {
	return f("profile %v: %v", err.Path, err.Err)
}

func (err *ErrProfile) Unwrap() error {
	return err.Err
}

type ErrAddress int

func (err ErrAddress) Error() string {
	return f("address %v out of range", int(err))
}

func (err ErrAddress) Is(target error) bool {
	_, ok := target.(ErrAddress)
	return ok
}

type ErrValue int

func (err ErrValue) Error() string {
	return f("value %v out of range", int(err))
}

func (err ErrValue) Is(target error) bool {
	_, ok := target.(ErrValue)
	return ok
}
