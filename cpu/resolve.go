package cpu

// Continuation decides what an absolute-mode instruction does once its
// effective address is in TempAddr.
type Continuation interface {
	Resolved(cpu *Cpu, pins *Pins) error
}

// readOperand reads the operand at the effective address.
type readOperand struct{}

func (readOperand) Resolved(cpu *Cpu, pins *Pins) error {
	pins.read(cpu.TempAddr)
	return nil
}

// storeOperand writes the destination register to the effective address.
type storeOperand struct{}

func (storeOperand) Resolved(cpu *Cpu, pins *Pins) error {
	value := cpu.decodeRegister(cpu.Instruction.Metadata.Reg0()).Get()
	if !cpu.Word {
		value &= 0xff
	}
	pins.write(cpu.TempAddr, value)
	return nil
}

// jumpTo loads the program counter when cond holds, or always when
// cond is nil.
type jumpTo struct {
	cond func(flags Flags) bool
}

func (jump jumpTo) Resolved(cpu *Cpu, pins *Pins) error {
	if jump.cond == nil || jump.cond(cpu.Flags) {
		cpu.Pc = cpu.TempAddr
	}
	cpu.finish(pins)
	return nil
}

// callTo pushes the flags, the first byte of a call frame.
type callTo struct{}

func (callTo) Resolved(cpu *Cpu, pins *Pins) error {
	cpu.Word = false
	pins.write(cpu.Sp.Address(), uint16(uint8(cpu.Flags)))
	return nil
}

// resolveAbsolute assembles the effective address of an absolute operand
// over cycles 1 to 3, then hands over to next.
//
//	1: read bank byte at Pc
//	2: latch bank, read segment word at Pc+1
//	3: latch segment, apply offset, call next
func (cpu *Cpu) resolveAbsolute(pins *Pins, isByte bool, next Continuation) (err error) {
	md := cpu.Instruction.Metadata

	switch cpu.Phase {
	case 1:
		cpu.Word = false
		pins.read(cpu.Pc)
	case 2:
		cpu.TempAddr = cpu.TempAddr.WithBank(uint8(pins.Data))
		cpu.Pc = cpu.Pc.Increment(1)
		cpu.Word = true
		pins.read(cpu.Pc)
	case 3:
		cpu.TempAddr = cpu.TempAddr.WithSegment(pins.Data)
		cpu.Pc = cpu.Pc.Increment(2)
		if md.RegOffset() {
			if (md.Reg1() & 0b100) != 0 {
				index := cpu.decodeRegister(md.Reg1()).Get()
				cpu.TempAddr = cpu.TempAddr.Offset16(int16(index))
			}
		} else {
			cpu.TempAddr = cpu.TempAddr.Offset8(md.Displacement())
		}
		cpu.Word = !isByte
		err = next.Resolved(cpu, pins)
	default:
		err = cpu.sequenceError("ABSOLUTE")
	}

	return
}
