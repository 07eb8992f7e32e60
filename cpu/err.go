package cpu

import (
	"errors"

	"github.com/ezrec/hexacore/translate"
)

var f = translate.From

var (
	// Opcode table errors
	ErrTableFormat = errors.New(f("opcode table format"))
	ErrTableEmpty  = errors.New(f("opcode table empty"))

	// Engine errors
	ErrState     = errors.New(f("invalid cpu state"))
	ErrInterrupt = errors.New(f("no interrupt latched"))
)

// ErrTableMnemonic is an unknown instruction name.
type ErrTableMnemonic string

func (err ErrTableMnemonic) Error() string {
	return f("unknown mnemonic '%v'", string(err))
}

// ErrTableMode is an unknown addressing mode tag.
type ErrTableMode string

func (err ErrTableMode) Error() string {
	return f("unknown addressing mode '%v'", string(err))
}

// ErrTableSyntax is a malformed "name|mode" table value.
type ErrTableSyntax string

func (err ErrTableSyntax) Error() string {
	return f("'%v' is not name|mode", string(err))
}

// ErrTableOpcode is an opcode key that is not a byte.
type ErrTableOpcode string

func (err ErrTableOpcode) Error() string {
	return f("'%v' is not an opcode", string(err))
}

// ErrTableModeInvalid is a mnemonic used with a mode it does not support.
type ErrTableModeInvalid struct {
	Name string
	Mode Mode
}

func (err ErrTableModeInvalid) Error() string {
	return f("%v does not support mode %v", err.Name, err.Mode.String())
}

// ErrTableEntry locates a bad opcode table row.
type ErrTableEntry struct {
	Opcode uint8
	Err    error
}

func (err ErrTableEntry) Error() string {
	return f("opcode %#02x: %v", err.Opcode, err.Err)
}

func (err ErrTableEntry) Unwrap() error {
	return err.Err
}

// ErrTableInfo locates a bad size class record.
type ErrTableInfo struct {
	Name string
	Err  error
}

func (err ErrTableInfo) Error() string {
	return f("info %v: %v", err.Name, err.Err)
}

func (err ErrTableInfo) Unwrap() error {
	return err.Err
}

// ErrOpcode is an opcode missing from the opcode table.
type ErrOpcode uint8

func (err ErrOpcode) Error() string {
	return f("unknown opcode %#02x", uint8(err))
}

func (err ErrOpcode) Is(target error) (ok bool) {
	_, ok = target.(ErrOpcode)
	return
}

// ErrSequence is a handler invoked with a cycle it does not define.
// It indicates a defect in the engine, not in the program.
type ErrSequence struct {
	Name  string
	Phase int
}

func (err ErrSequence) Error() string {
	return f("%v tried to execute non-existent cycle %d", err.Name, err.Phase)
}
