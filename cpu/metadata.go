package cpu

import (
	"fmt"
)

// Metadata is the 16-bit word following every opcode byte.
//
//	bits  0..3  reg0
//	bits  4..7  reg1
//	bits  8..13 offset
//	bit   14    offset sign
//	bit   15    index by register
//
// Immediate and absolute forms may treat the whole word as data.
type Metadata uint16

func (md Metadata) Data() uint16 {
	return uint16(md)
}

func (md Metadata) LoByte() uint8 {
	return uint8(md)
}

func (md Metadata) Reg0() uint8 {
	return uint8(md) & 0xf
}

func (md Metadata) Reg1() uint8 {
	return (uint8(md) >> 4) & 0xf
}

func (md Metadata) Offset() uint8 {
	return uint8(md>>8) & 0x3f
}

func (md Metadata) OffsetSign() bool {
	return (md & (1 << 14)) != 0
}

func (md Metadata) RegOffset() bool {
	return (md & (1 << 15)) != 0
}

// Displacement returns the signed immediate displacement. The sign
// bit lands on bit 7, it is not a sign extension of the 6-bit field.
func (md Metadata) Displacement() int8 {
	value := md.Offset()
	if md.OffsetSign() {
		value |= 0x80
	}
	return int8(value)
}

// MakeMetadata encodes a metadata word.
func MakeMetadata(reg0, reg1 uint8, offset uint8, sign bool, regOffset bool) Metadata {
	md := Metadata(reg0&0xf) | Metadata(reg1&0xf)<<4 | Metadata(offset&0x3f)<<8
	if sign {
		md |= 1 << 14
	}
	if regOffset {
		md |= 1 << 15
	}
	return md
}

func (md Metadata) String() string {
	return fmt.Sprintf("r0=%d r1=%d off=%d sign=%v idx=%v",
		md.Reg0(), md.Reg1(), md.Offset(), md.OffsetSign(), md.RegOffset())
}

// Instruction is the decoded instruction header.
type Instruction struct {
	Address  ExtendedAddress // Where the opcode byte was fetched from.
	Opcode   uint8
	Metadata Metadata
}
