package emulator

import (
	"github.com/ezrec/hexacore/cpu"
	"github.com/ezrec/hexacore/translate"
)

var f = translate.From

// ErrRuntime indicates the location of a runtime error. Pc is the
// address of the instruction being executed.
type ErrRuntime struct {
	Tick int
	Pc   cpu.ExtendedAddress
	Err  error
}

func (err *ErrRuntime) Error() string {
	return f("tick %d pc %v: %v", err.Tick, err.Pc, err.Err)
}

func (err *ErrRuntime) Unwrap() error {
	return err.Err
}
