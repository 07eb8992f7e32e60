package cpu

import (
	"log"
)

// implied runs a single cycle instruction.
func (cpu *Cpu) implied(pins *Pins, entry Entry, action func()) (err error) {
	if cpu.Phase != 1 {
		err = cpu.sequenceError(entry.String())
		return
	}
	action()
	cpu.finish(pins)
	return
}

func (cpu *Cpu) opClc(pins *Pins, entry Entry) error {
	return cpu.implied(pins, entry, func() { cpu.Flags.Set(FLAG_C, false) })
}

func (cpu *Cpu) opCli(pins *Pins, entry Entry) error {
	return cpu.implied(pins, entry, func() { cpu.Flags.Set(FLAG_I, false) })
}

func (cpu *Cpu) opClv(pins *Pins, entry Entry) error {
	return cpu.implied(pins, entry, func() { cpu.Flags.Set(FLAG_O, false) })
}

func (cpu *Cpu) opSei(pins *Pins, entry Entry) error {
	return cpu.implied(pins, entry, func() { cpu.Flags.Set(FLAG_I, true) })
}

func (cpu *Cpu) opHlt(pins *Pins, entry Entry) error {
	return cpu.implied(pins, entry, func() {
		if cpu.Verbose {
			log.Printf("cpu: halt at %v", cpu.Instruction.Address)
		}
		cpu.State = STATE_HALT
	})
}

// opIn reads an IO port into reg0.
//
//	1 read port byte, 2 IO read, 3 latch
func (cpu *Cpu) opIn(pins *Pins, entry Entry) (err error) {
	switch cpu.Phase {
	case 1:
		cpu.Word = false
		pins.read(cpu.Pc)
	case 2:
		cpu.Pc = cpu.Pc.Increment(1)
		pins.IoAddress = uint8(pins.Data)
		pins.IoRw = READ
		pins.IoEnable = true
	case 3:
		cpu.decodeRegister(cpu.Instruction.Metadata.Reg0()).Set(uint16(pins.IoData))
		cpu.finish(pins)
	default:
		err = cpu.sequenceError(entry.String())
	}
	return
}

// opOut writes the low byte of reg0 to an IO port.
//
//	1 read port byte, 2 IO write, 3 finish
func (cpu *Cpu) opOut(pins *Pins, entry Entry) (err error) {
	switch cpu.Phase {
	case 1:
		cpu.Word = false
		pins.read(cpu.Pc)
	case 2:
		cpu.Pc = cpu.Pc.Increment(1)
		pins.IoAddress = uint8(pins.Data)
		pins.IoData = uint8(cpu.decodeRegister(cpu.Instruction.Metadata.Reg0()).Get())
		pins.IoRw = WRITE
		pins.IoEnable = true
	case 3:
		cpu.finish(pins)
	default:
		err = cpu.sequenceError(entry.String())
	}
	return
}
