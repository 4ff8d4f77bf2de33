package bus

import (
	"errors"

	"github.com/ezrec/mos6502/translate"
)

var f = translate.From

var (
	ErrRegionSize = errors.New(f("region size invalid"))
)

// ErrRomImage reports a ROM image that could not be loaded.
type ErrRomImage struct {
	Path string
	Err  error
}

func (err ErrRomImage) Error() string {
	return f("rom %v: %v", err.Path, err.Err)
}

func (err ErrRomImage) Unwrap() error {
	return err.Err
}
