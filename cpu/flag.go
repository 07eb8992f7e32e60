package cpu

import (
	"strings"
)

// Flag is a single status bit.
type Flag uint16

const (
	FLAG_Z = Flag(0b0000_0001) // Zero
	FLAG_N = Flag(0b0000_0010) // Negative
	FLAG_C = Flag(0b0000_0100) // Carry
	FLAG_O = Flag(0b0000_1000) // Overflow
	FLAG_L = Flag(0b0001_0000) // Less Than
	FLAG_G = Flag(0b0010_0000) // Greater Than
	FLAG_I = Flag(0b0100_0000) // Interrupt Disable
)

var flagNames = []struct {
	flag Flag
	name string
}{
	{FLAG_Z, "Z"},
	{FLAG_N, "N"},
	{FLAG_C, "C"},
	{FLAG_O, "O"},
	{FLAG_L, "L"},
	{FLAG_G, "G"},
	{FLAG_I, "I"},
}

// Flags is the CPU status register.
type Flags uint16

// Has returns true if every bit of flag is set.
func (fl Flags) Has(flag Flag) bool {
	return (Flag(fl) & flag) == flag
}

// Set assigns flag to value.
func (fl *Flags) Set(flag Flag, value bool) {
	if value {
		*fl |= Flags(flag)
	} else {
		*fl &^= Flags(flag)
	}
}

func (fl Flags) String() string {
	var sb strings.Builder
	for _, fn := range flagNames {
		if fl.Has(fn.flag) {
			sb.WriteString(fn.name)
		} else {
			sb.WriteString("-")
		}
	}
	return sb.String()
}
