package cpu

// handler runs one cycle of an instruction.
type handler func(cpu *Cpu, pins *Pins, entry Entry) error

var handlers = [op_count]handler{
	OP_MOV: (*Cpu).opMov,
	OP_ST:  (*Cpu).opSt,
	OP_AND: (*Cpu).opAnd,
	OP_OR:  (*Cpu).opOr,
	OP_XOR: (*Cpu).opXor,
	OP_PSH: (*Cpu).opPsh,
	OP_POP: (*Cpu).opPop,
	OP_ADD: (*Cpu).opAdd,
	OP_SUB: (*Cpu).opSub,
	OP_CMP: (*Cpu).opCmp,
	OP_INC: (*Cpu).opInc,
	OP_DEC: (*Cpu).opDec,
	OP_SBL: (*Cpu).opSbl,
	OP_SBR: (*Cpu).opSbr,
	OP_ROL: (*Cpu).opRol,
	OP_ROR: (*Cpu).opRor,
	OP_CLC: (*Cpu).opClc,
	OP_CLI: (*Cpu).opCli,
	OP_CLV: (*Cpu).opClv,
	OP_SEI: (*Cpu).opSei,
	OP_JMP: (*Cpu).opJmp,
	OP_JSR: (*Cpu).opJsr,
	OP_BIZ: branchIf(FLAG_Z, true),
	OP_BIN: branchIf(FLAG_N, true),
	OP_BIC: branchIf(FLAG_C, true),
	OP_BIO: branchIf(FLAG_O, true),
	OP_BIL: branchIf(FLAG_L, true),
	OP_BIG: branchIf(FLAG_G, true),
	OP_BNZ: branchIf(FLAG_Z, false),
	OP_BNN: branchIf(FLAG_N, false),
	OP_BNC: branchIf(FLAG_C, false),
	OP_BNO: branchIf(FLAG_O, false),
	OP_BNL: branchIf(FLAG_L, false),
	OP_BNG: branchIf(FLAG_G, false),
	OP_RTS: (*Cpu).opReturn,
	OP_RTI: (*Cpu).opReturn,
	OP_IN:  (*Cpu).opIn,
	OP_OUT: (*Cpu).opOut,
	OP_HLT: (*Cpu).opHlt,
}

// width describes an 8 or 16 bit operation.
type width struct {
	size uint32 // Bytes
	bits uint
	mask uint16
	sign uint16
}

var (
	widthByte = width{size: 1, bits: 8, mask: 0x00ff, sign: 0x0080}
	widthWord = width{size: 2, bits: 16, mask: 0xffff, sign: 0x8000}
)

func widthOf(isByte bool) width {
	if isByte {
		return widthByte
	}
	return widthWord
}

// operation combines the destination value with an operand and returns
// the value to store, and if the destination is written at all.
type operation func(cpu *Cpu, dst uint16, src uint16, w width) (result uint16, store bool)

// withOperand runs the shared I/R/A sequences of two-operand instructions.
//
//	I: 1 read operand at Pc, 2 apply
//	R: 1 apply with reg1
//	A: 1..3 resolve, 4 apply
func (cpu *Cpu) withOperand(pins *Pins, entry Entry, op operation) (err error) {
	md := cpu.Instruction.Metadata
	w := widthOf(entry.Byte)
	dst := cpu.decodeRegister(md.Reg0())

	apply := func(src uint16) {
		result, store := op(cpu, dst.Get()&w.mask, src&w.mask, w)
		if store {
			dst.Set(result & w.mask)
		}
	}

	switch entry.Mode {
	case MODE_IMMEDIATE:
		switch cpu.Phase {
		case 1:
			cpu.Word = !entry.Byte
			pins.read(cpu.Pc)
		case 2:
			apply(pins.Data)
			cpu.Pc = cpu.Pc.Increment(w.size)
			cpu.finish(pins)
		default:
			err = cpu.sequenceError(entry.String())
		}
	case MODE_REGISTER:
		if cpu.Phase != 1 {
			err = cpu.sequenceError(entry.String())
			return
		}
		apply(cpu.decodeRegister(md.Reg1()).Get())
		cpu.finish(pins)
	case MODE_ABSOLUTE:
		switch cpu.Phase {
		case 1, 2, 3:
			err = cpu.resolveAbsolute(pins, entry.Byte, readOperand{})
		case 4:
			apply(pins.Data)
			cpu.finish(pins)
		default:
			err = cpu.sequenceError(entry.String())
		}
	default:
		err = ErrTableModeInvalid{Name: entry.Name(), Mode: entry.Mode}
	}

	return
}

// modification maps a value to its replacement.
type modification func(cpu *Cpu, value uint16, w width) (result uint16)

// modify runs the shared R/A sequences of read-modify-write instructions.
//
//	R: 1 modify reg0
//	A: 1..3 resolve, 4 modify and write back, 5 finish
func (cpu *Cpu) modify(pins *Pins, entry Entry, mod modification) (err error) {
	w := widthOf(entry.Byte)

	switch entry.Mode {
	case MODE_REGISTER:
		if cpu.Phase != 1 {
			err = cpu.sequenceError(entry.String())
			return
		}
		dst := cpu.decodeRegister(cpu.Instruction.Metadata.Reg0())
		dst.Set(mod(cpu, dst.Get()&w.mask, w) & w.mask)
		cpu.finish(pins)
	case MODE_ABSOLUTE:
		switch cpu.Phase {
		case 1, 2, 3:
			err = cpu.resolveAbsolute(pins, entry.Byte, readOperand{})
		case 4:
			result := mod(cpu, pins.Data&w.mask, w) & w.mask
			cpu.Word = !entry.Byte
			pins.write(cpu.TempAddr, result)
		case 5:
			cpu.finish(pins)
		default:
			err = cpu.sequenceError(entry.String())
		}
	default:
		err = ErrTableModeInvalid{Name: entry.Name(), Mode: entry.Mode}
	}

	return
}

// setZN assigns the zero and negative flags from a result.
func (cpu *Cpu) setZN(value uint16, w width) {
	value &= w.mask
	cpu.Flags.Set(FLAG_Z, value == 0)
	cpu.Flags.Set(FLAG_N, (value&w.sign) != 0)
}
