package device

import (
	"errors"

	"github.com/ezrec/hexacore/translate"
)

var f = translate.From

var (
	// Bus errors
	ErrNoDevice  = errors.New(f("no valid device"))
	ErrReadOnly  = errors.New(f("device is read only"))
	ErrWriteOnly = errors.New(f("device is write only"))
	ErrNoValue   = errors.New(f("device has no value"))
)

// ErrRomSize is an image larger than its ROM.
type ErrRomSize struct {
	Size     int
	Capacity uint32
}

func (err *ErrRomSize) Error() string {
	return f("image of %d bytes exceeds rom of %d bytes", err.Size, err.Capacity)
}

// ErrBus locates a failed bus transaction.
type ErrBus struct {
	Io      bool
	Address uint32
	Write   bool
	Err     error
}

func (err *ErrBus) Error() string {
	dir := "read"
	if err.Write {
		dir = "write"
	}
	if err.Io {
		return f("io %v %#02x: %v", dir, err.Address, err.Err)
	}
	return f("%v %#06x: %v", dir, err.Address, err.Err)
}

func (err *ErrBus) Unwrap() error {
	return err.Err
}
