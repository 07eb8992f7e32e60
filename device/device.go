// Package device provides the HexaCore bus arbitration contract and the
// stock devices: linear RAM and ROM stores on the address bus, and the
// Out and In ports on the IO bus.
package device

import (
	"fmt"
)

// Kind classifies a device response. KIND_OK acknowledges a write,
// KIND_OK8 and KIND_OK16 carry read data, and KIND_NOT_MINE keeps the
// registry scan going. The rest are failures.
type Kind int

//go:generate go tool stringer -linecomment -type=Kind
const (
	KIND_OK         = Kind(iota) // ok
	KIND_OK8                     // ok8
	KIND_OK16                    // ok16
	KIND_NOT_MINE                // not-mine
	KIND_READ_ONLY               // read-only
	KIND_WRITE_ONLY              // write-only
	KIND_NO_VALUE                // no-value
	KIND_NO_DEVICE               // no-device
)

// Result is a device response.
type Result struct {
	Kind  Kind
	Value uint16
}

func Ok() Result {
	return Result{Kind: KIND_OK}
}

func Ok8(value uint8) Result {
	return Result{Kind: KIND_OK8, Value: uint16(value)}
}

func Ok16(value uint16) Result {
	return Result{Kind: KIND_OK16, Value: value}
}

func NotMine() Result {
	return Result{Kind: KIND_NOT_MINE}
}

// Done is true when the result stops a registry scan.
func (res Result) Done() bool {
	return res.Kind != KIND_NOT_MINE
}

// Err maps a failed result to its error, or nil on success.
func (res Result) Err() (err error) {
	switch res.Kind {
	case KIND_OK, KIND_OK8, KIND_OK16:
	case KIND_READ_ONLY:
		err = ErrReadOnly
	case KIND_WRITE_ONLY:
		err = ErrWriteOnly
	case KIND_NO_VALUE:
		err = ErrNoValue
	default:
		err = ErrNoDevice
	}
	return
}

func (res Result) String() string {
	switch res.Kind {
	case KIND_OK8:
		return fmt.Sprintf("ok8(%#02x)", res.Value)
	case KIND_OK16:
		return fmt.Sprintf("ok16(%#04x)", res.Value)
	}
	return res.Kind.String()
}

// AddressMapped is a device on the memory bus. Word accesses are big
// endian, covering address and address+1.
type AddressMapped interface {
	Read(address uint32, word bool) Result
	Write(address uint32, data uint16, word bool) Result
	Start() uint32 // First claimed address.
	End() uint32   // Last claimed address, inclusive.
	Size() uint32
}

// IoMapped is a device on the 8-bit IO bus, selected by exact address.
type IoMapped interface {
	IoAddress() uint8
	IoRead() Result
	IoWrite(data uint8) Result
	IoName() string
}
