package cpu

import (
	"fmt"
)

// Register is a 16-bit register with independently addressable halves.
// The cached word is recomputed on every write.
type Register struct {
	high uint8
	low  uint8
	word uint16
}

func (reg *Register) High() uint8 {
	return reg.high
}

func (reg *Register) Low() uint8 {
	return reg.low
}

func (reg *Register) Word() uint16 {
	return reg.word
}

func (reg *Register) SetHigh(value uint8) {
	reg.high = value
	reg.update()
}

func (reg *Register) SetLow(value uint8) {
	reg.low = value
	reg.update()
}

func (reg *Register) SetWord(value uint16) {
	reg.high = uint8(value >> 8)
	reg.low = uint8(value)
	reg.update()
}

// SetSplit sets both halves at once.
func (reg *Register) SetSplit(high, low uint8) {
	reg.high = high
	reg.low = low
	reg.update()
}

func (reg *Register) update() {
	reg.word = (uint16(reg.high) << 8) | uint16(reg.low)
}

func (reg Register) String() string {
	return fmt.Sprintf("%04X", reg.word)
}

// Register selector constants. Selectors with bit 3 clear address a
// full register by the low two bits only, so 0-3 and 4-7 alias.
const (
	REG_A   = uint8(0b0000)
	REG_B   = uint8(0b0001)
	REG_C   = uint8(0b0010)
	REG_D   = uint8(0b0011)
	REG_A_H = uint8(0b1000)
	REG_A_L = uint8(0b1001)
	REG_B_H = uint8(0b1010)
	REG_B_L = uint8(0b1011)
	REG_C_H = uint8(0b1100)
	REG_C_L = uint8(0b1101)
	REG_D_H = uint8(0b1110)
	REG_D_L = uint8(0b1111)
)

type registerHalf int

const (
	halfNone = registerHalf(iota)
	halfHigh
	halfLow
)

var registerNames = [4]string{"ra", "rb", "rc", "rd"}

// RegisterRef is the result of decoding a 4-bit register selector:
// either a full register or one of its 8-bit halves.
type RegisterRef struct {
	reg   *Register
	index int
	half  registerHalf
}

// IsByte is true when the reference addresses an 8-bit half.
func (ref RegisterRef) IsByte() bool {
	return ref.half != halfNone
}

// Get returns the register value. Halves are zero extended.
func (ref RegisterRef) Get() uint16 {
	switch ref.half {
	case halfHigh:
		return uint16(ref.reg.High())
	case halfLow:
		return uint16(ref.reg.Low())
	}
	return ref.reg.Word()
}

// Set stores a value. Halves keep the low 8 bits of value.
func (ref RegisterRef) Set(value uint16) {
	switch ref.half {
	case halfHigh:
		ref.reg.SetHigh(uint8(value))
	case halfLow:
		ref.reg.SetLow(uint8(value))
	default:
		ref.reg.SetWord(value)
	}
}

func (ref RegisterRef) String() string {
	name := registerNames[ref.index]
	switch ref.half {
	case halfHigh:
		name += "h"
	case halfLow:
		name += "l"
	}
	return name
}

// decodeRegister resolves a 4-bit register selector.
//
//	0b0rnn: full register nn (r ignored)
//	0b1nnh: register nn, high half when h == 0, low half when h == 1
func (cpu *Cpu) decodeRegister(sel uint8) (ref RegisterRef) {
	sel &= 0xf

	if (sel & 0b1000) == 0 {
		index := int(sel & 0b11)
		return RegisterRef{reg: &cpu.Register[index], index: index, half: halfNone}
	}

	index := int((sel & 0b110) >> 1)
	half := halfHigh
	if (sel & 1) != 0 {
		half = halfLow
	}

	return RegisterRef{reg: &cpu.Register[index], index: index, half: half}
}
