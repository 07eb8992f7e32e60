package cpu

// opMov loads reg0 from the operand. In register mode the copy runs the
// other way, reg0 into reg1.
//
//	R: 1 copy and finish
func (cpu *Cpu) opMov(pins *Pins, entry Entry) (err error) {
	if entry.Mode != MODE_REGISTER {
		return cpu.withOperand(pins, entry, func(cpu *Cpu, dst, src uint16, w width) (uint16, bool) {
			cpu.setZN(src, w)
			return src, true
		})
	}

	if cpu.Phase != 1 {
		return cpu.sequenceError(entry.String())
	}

	md := cpu.Instruction.Metadata
	w := widthOf(entry.Byte)
	value := cpu.decodeRegister(md.Reg0()).Get() & w.mask
	cpu.decodeRegister(md.Reg1()).Set(value)
	cpu.setZN(value, w)
	cpu.finish(pins)
	return
}

// opSt stores reg0 at the effective address.
//
//	1..3 resolve and write, 4 finish
func (cpu *Cpu) opSt(pins *Pins, entry Entry) (err error) {
	switch cpu.Phase {
	case 1, 2, 3:
		err = cpu.resolveAbsolute(pins, entry.Byte, storeOperand{})
	case 4:
		cpu.finish(pins)
	default:
		err = cpu.sequenceError(entry.String())
	}
	return
}

// opPsh pushes an immediate or reg0.
//
//	I: 1 read operand, 2 write at Sp, 3 advance Sp and Pc
//	R: 1 write at Sp, 2 advance Sp
func (cpu *Cpu) opPsh(pins *Pins, entry Entry) (err error) {
	w := widthOf(entry.Byte)

	switch entry.Mode {
	case MODE_IMMEDIATE:
		switch cpu.Phase {
		case 1:
			cpu.Word = !entry.Byte
			pins.read(cpu.Pc)
		case 2:
			pins.write(cpu.Sp.Address(), pins.Data&w.mask)
		case 3:
			cpu.Sp.Increment(uint16(w.size))
			cpu.Pc = cpu.Pc.Increment(w.size)
			cpu.finish(pins)
		default:
			err = cpu.sequenceError(entry.String())
		}
	case MODE_REGISTER:
		switch cpu.Phase {
		case 1:
			value := cpu.decodeRegister(cpu.Instruction.Metadata.Reg0()).Get()
			cpu.Word = !entry.Byte
			pins.write(cpu.Sp.Address(), value&w.mask)
		case 2:
			cpu.Sp.Increment(uint16(w.size))
			cpu.finish(pins)
		default:
			err = cpu.sequenceError(entry.String())
		}
	default:
		err = ErrTableModeInvalid{Name: entry.Name(), Mode: entry.Mode}
	}

	return
}

// opPop pops into reg0.
//
//	1 retreat Sp and read, 2 latch
func (cpu *Cpu) opPop(pins *Pins, entry Entry) (err error) {
	w := widthOf(entry.Byte)

	switch cpu.Phase {
	case 1:
		cpu.Sp.Decrement(uint16(w.size))
		cpu.Word = !entry.Byte
		pins.read(cpu.Sp.Address())
	case 2:
		cpu.decodeRegister(cpu.Instruction.Metadata.Reg0()).Set(pins.Data & w.mask)
		cpu.finish(pins)
	default:
		err = cpu.sequenceError(entry.String())
	}

	return
}
