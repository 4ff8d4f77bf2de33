package remote

import (
	"errors"

	"github.com/ezrec/mos6502/translate"
)

var f = translate.From

var (
	ErrPeripheral = errors.New(f("peripheral refused the request"))
	ErrMessage    = errors.New(f("unexpected websocket message type"))
)

type ErrProtocol uint8

func (err ErrProtocol) Error() string {
	return f("unexpected op $%02x", uint8(err))
}

func (err ErrProtocol) Is(target error) bool {
	_, ok := target.(ErrProtocol)
	return ok
}
