package cpu

func (cpu *Cpu) opAnd(pins *Pins, entry Entry) error {
	return cpu.withOperand(pins, entry, func(cpu *Cpu, dst, src uint16, w width) (uint16, bool) {
		result := dst & src
		cpu.setZN(result, w)
		return result, true
	})
}

func (cpu *Cpu) opOr(pins *Pins, entry Entry) error {
	return cpu.withOperand(pins, entry, func(cpu *Cpu, dst, src uint16, w width) (uint16, bool) {
		result := dst | src
		cpu.setZN(result, w)
		return result, true
	})
}

func (cpu *Cpu) opXor(pins *Pins, entry Entry) error {
	return cpu.withOperand(pins, entry, func(cpu *Cpu, dst, src uint16, w width) (uint16, bool) {
		result := dst ^ src
		cpu.setZN(result, w)
		return result, true
	})
}

// opAdd adds with carry in. C is the carry out, O the signed overflow.
func (cpu *Cpu) opAdd(pins *Pins, entry Entry) error {
	return cpu.withOperand(pins, entry, func(cpu *Cpu, dst, src uint16, w width) (uint16, bool) {
		sum := uint32(dst) + uint32(src)
		if cpu.Flags.Has(FLAG_C) {
			sum++
		}
		result := uint16(sum) & w.mask

		cpu.Flags.Set(FLAG_C, sum > uint32(w.mask))
		cpu.Flags.Set(FLAG_O, ((dst^result)&(src^result)&w.sign) != 0)
		cpu.setZN(result, w)
		return result, true
	})
}

// opSub adds the two's complement of the operand and the carry. C is the
// carry out, set when no borrow was taken.
func (cpu *Cpu) opSub(pins *Pins, entry Entry) error {
	return cpu.withOperand(pins, entry, func(cpu *Cpu, dst, src uint16, w width) (uint16, bool) {
		sum := uint32(dst) + uint32(^src&w.mask) + 1
		if cpu.Flags.Has(FLAG_C) {
			sum++
		}
		result := uint16(sum) & w.mask

		cpu.Flags.Set(FLAG_C, sum > uint32(w.mask))
		cpu.Flags.Set(FLAG_O, ((dst^src)&(dst^result)&w.sign) != 0)
		cpu.setZN(result, w)
		return result, true
	})
}

// opCmp compares unsigned, without storing the difference.
func (cpu *Cpu) opCmp(pins *Pins, entry Entry) error {
	return cpu.withOperand(pins, entry, func(cpu *Cpu, dst, src uint16, w width) (uint16, bool) {
		cpu.setZN(dst-src, w)
		cpu.Flags.Set(FLAG_L, dst < src)
		cpu.Flags.Set(FLAG_G, dst > src)
		return 0, false
	})
}

func (cpu *Cpu) opInc(pins *Pins, entry Entry) error {
	return cpu.modify(pins, entry, func(cpu *Cpu, value uint16, w width) uint16 {
		result := (value + 1) & w.mask
		cpu.setZN(result, w)
		return result
	})
}

func (cpu *Cpu) opDec(pins *Pins, entry Entry) error {
	return cpu.modify(pins, entry, func(cpu *Cpu, value uint16, w width) uint16 {
		result := (value - 1) & w.mask
		cpu.setZN(result, w)
		return result
	})
}

func (cpu *Cpu) opSbl(pins *Pins, entry Entry) error {
	return cpu.modify(pins, entry, func(cpu *Cpu, value uint16, w width) uint16 {
		cpu.Flags.Set(FLAG_C, (value&w.sign) != 0)
		result := (value << 1) & w.mask
		cpu.setZN(result, w)
		return result
	})
}

func (cpu *Cpu) opSbr(pins *Pins, entry Entry) error {
	return cpu.modify(pins, entry, func(cpu *Cpu, value uint16, w width) uint16 {
		cpu.Flags.Set(FLAG_C, (value&1) != 0)
		result := value >> 1
		cpu.setZN(result, w)
		return result
	})
}

func (cpu *Cpu) opRol(pins *Pins, entry Entry) error {
	return cpu.modify(pins, entry, func(cpu *Cpu, value uint16, w width) uint16 {
		cpu.Flags.Set(FLAG_C, (value&w.sign) != 0)
		result := ((value << 1) | (value >> (w.bits - 1))) & w.mask
		cpu.setZN(result, w)
		return result
	})
}

func (cpu *Cpu) opRor(pins *Pins, entry Entry) error {
	return cpu.modify(pins, entry, func(cpu *Cpu, value uint16, w width) uint16 {
		cpu.Flags.Set(FLAG_C, (value&1) != 0)
		result := ((value >> 1) | (value << (w.bits - 1))) & w.mask
		cpu.setZN(result, w)
		return result
	})
}
