package cpu

import (
	"fmt"
)

const (
	ADDRESS_MASK = uint32(0xff_ffff) // Full 24-bit addressable range.
	STACK_PAGE   = uint8(0x01)       // Default stack bank.
)

// ExtendedAddress is a 24-bit banked linear address.
// Bits 16..23 are the bank, bits 0..15 the segment.
type ExtendedAddress uint32

// NewAddress builds an address from a bank and a segment.
func NewAddress(bank uint8, segment uint16) ExtendedAddress {
	return ExtendedAddress((uint32(bank) << 16) | uint32(segment))
}

// Value returns the address as a masked 24-bit integer.
func (ea ExtendedAddress) Value() uint32 {
	return uint32(ea) & ADDRESS_MASK
}

func (ea ExtendedAddress) Bank() uint8 {
	return uint8(ea.Value() >> 16)
}

func (ea ExtendedAddress) Segment() uint16 {
	return uint16(ea.Value())
}

func (ea ExtendedAddress) Hi() uint8 {
	return uint8(ea.Value() >> 8)
}

func (ea ExtendedAddress) Lo() uint8 {
	return uint8(ea.Value())
}

// WithBank replaces the bank byte.
func (ea ExtendedAddress) WithBank(bank uint8) ExtendedAddress {
	return ExtendedAddress((ea.Value() & 0x00_ffff) | (uint32(bank) << 16))
}

// WithSegment replaces the low 16 bits, keeping the bank.
func (ea ExtendedAddress) WithSegment(segment uint16) ExtendedAddress {
	return ExtendedAddress((ea.Value() & 0xff_0000) | uint32(segment))
}

// WithHi replaces bits 8..15.
func (ea ExtendedAddress) WithHi(hi uint8) ExtendedAddress {
	return ExtendedAddress((ea.Value() & 0xff_00ff) | (uint32(hi) << 8))
}

// WithLo replaces bits 0..7.
func (ea ExtendedAddress) WithLo(lo uint8) ExtendedAddress {
	return ExtendedAddress((ea.Value() & 0xff_ff00) | uint32(lo))
}

// Increment advances the address by n, wrapping at 24 bits.
func (ea ExtendedAddress) Increment(n uint32) ExtendedAddress {
	return ExtendedAddress((ea.Value() + n) & ADDRESS_MASK)
}

// Offset8 applies a signed 8-bit displacement.
func (ea ExtendedAddress) Offset8(offset int8) ExtendedAddress {
	return ExtendedAddress(uint32(int32(ea.Value())+int32(offset)) & ADDRESS_MASK)
}

// Offset16 applies a signed 16-bit displacement.
func (ea ExtendedAddress) Offset16(offset int16) ExtendedAddress {
	return ExtendedAddress(uint32(int32(ea.Value())+int32(offset)) & ADDRESS_MASK)
}

func (ea ExtendedAddress) String() string {
	return fmt.Sprintf("0x%06x", ea.Value())
}

// StackAddress is a 16-bit stack offset inside a fixed page.
// The stack grows towards increasing offsets.
type StackAddress struct {
	Offset uint16
	Page   uint8
}

// NewStackAddress returns a stack address in the default page.
func NewStackAddress(offset uint16) StackAddress {
	return StackAddress{Offset: offset, Page: STACK_PAGE}
}

// Increment moves the stack pointer up by n, wrapping within the page.
func (sa *StackAddress) Increment(n uint16) {
	sa.Offset += n
}

// Decrement moves the stack pointer down by n, wrapping within the page.
func (sa *StackAddress) Decrement(n uint16) {
	sa.Offset -= n
}

// Address converts to an ExtendedAddress with the page as the bank.
func (sa StackAddress) Address() ExtendedAddress {
	return NewAddress(sa.Page, sa.Offset)
}

func (sa StackAddress) String() string {
	return sa.Address().String()
}
