package cpu

// Call frames are four bytes pushed upwards from Sp:
//
//	[sp+0] flags
//	[sp+1] bank
//	[sp+2] hi
//	[sp+3] lo
//
// JSR and interrupt entry build them, RTS and RTI unwind them.

func (cpu *Cpu) opJmp(pins *Pins, entry Entry) (err error) {
	switch cpu.Phase {
	case 1, 2, 3:
		err = cpu.resolveAbsolute(pins, false, jumpTo{})
	default:
		err = cpu.sequenceError(entry.String())
	}
	return
}

// branchIf returns a conditional branch on flag being set (or clear).
// A branch not taken leaves Pc after the operand.
func branchIf(flag Flag, set bool) handler {
	taken := jumpTo{
		cond: func(flags Flags) bool {
			return flags.Has(flag) == set
		},
	}

	return func(cpu *Cpu, pins *Pins, entry Entry) (err error) {
		switch cpu.Phase {
		case 1, 2, 3:
			err = cpu.resolveAbsolute(pins, false, taken)
		default:
			err = cpu.sequenceError(entry.String())
		}
		return
	}
}

// opJsr pushes a call frame and jumps.
//
//	1..3 resolve and push flags, 4 push bank, 5 push segment, 6 jump
func (cpu *Cpu) opJsr(pins *Pins, entry Entry) (err error) {
	switch cpu.Phase {
	case 1, 2, 3:
		err = cpu.resolveAbsolute(pins, false, callTo{})
	case 4:
		cpu.Sp.Increment(1)
		cpu.Word = false
		pins.write(cpu.Sp.Address(), uint16(cpu.Pc.Bank()))
	case 5:
		cpu.Sp.Increment(1)
		cpu.Word = true
		pins.write(cpu.Sp.Address(), cpu.Pc.Segment())
	case 6:
		cpu.Sp.Increment(2)
		cpu.Pc = cpu.TempAddr
		cpu.finish(pins)
	default:
		err = cpu.sequenceError(entry.String())
	}
	return
}

// opReturn unwinds a call frame for RTS and RTI.
//
//	1 pop lo, 2 pop hi, 3 pop bank, 4 pop flags, 5 jump
func (cpu *Cpu) opReturn(pins *Pins, entry Entry) (err error) {
	switch cpu.Phase {
	case 1:
	case 2:
		cpu.TempAddr = cpu.TempAddr.WithLo(uint8(pins.Data))
	case 3:
		cpu.TempAddr = cpu.TempAddr.WithHi(uint8(pins.Data))
	case 4:
		cpu.TempAddr = cpu.TempAddr.WithBank(uint8(pins.Data))
	case 5:
		cpu.Flags = Flags(uint8(pins.Data))
		cpu.Pc = cpu.TempAddr
		cpu.finish(pins)
		return
	default:
		err = cpu.sequenceError(entry.String())
		return
	}

	cpu.Sp.Decrement(1)
	cpu.Word = false
	pins.read(cpu.Sp.Address())

	return
}
