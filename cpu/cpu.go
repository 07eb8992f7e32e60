package cpu

import (
	"fmt"
	"iter"
	"log"
	"maps"
)

// State is the execution engine state.
type State int

//go:generate go tool stringer -linecomment -type=State
const (
	STATE_RESET     = State(iota) // reset
	STATE_FETCH                   // fetch
	STATE_EXECUTE                 // execute
	STATE_INTERRUPT               // interrupt
	STATE_HALT                    // halt
)

// InterruptStatus is the interrupt latch.
type InterruptStatus int

//go:generate go tool stringer -linecomment -type=InterruptStatus
const (
	INTERRUPT_NONE         = InterruptStatus(iota) // none
	INTERRUPT_NORMAL                               // irq
	INTERRUPT_NON_MASKABLE                         // nmi
)

// Status is returned by Cycle to the driving loop.
//
//   - STATUS_RUNNING: the engine advanced one cycle.
//   - STATUS_HALTED: the engine is frozen in Halt.
//   - STATUS_EXIT: halted with Options.ExitOnHalt set.
type Status int

//go:generate go tool stringer -linecomment -type=Status
const (
	STATUS_RUNNING = Status(iota) // running
	STATUS_HALTED                 // halted
	STATUS_EXIT                   // exit
)

const (
	RESET_VECTOR = uint32(0x000000) // Bank, hi, lo of the initial program counter.
	NMI_VECTOR   = uint32(0x000003) // Vector slot of the non-maskable interrupt.
	VECTOR_SIZE  = 3                // Bytes per vector slot.
)

var _cpu_defines = map[string]int{
	"RESET_VECTOR": int(RESET_VECTOR),
	"NMI_VECTOR":   int(NMI_VECTOR),
	"VECTOR_SIZE":  VECTOR_SIZE,
	"STACK_PAGE":   int(STACK_PAGE),
	"FLAG_Z":       int(FLAG_Z),
	"FLAG_N":       int(FLAG_N),
	"FLAG_C":       int(FLAG_C),
	"FLAG_O":       int(FLAG_O),
	"FLAG_L":       int(FLAG_L),
	"FLAG_G":       int(FLAG_G),
	"FLAG_I":       int(FLAG_I),
	"REG_A":        int(REG_A),
	"REG_B":        int(REG_B),
	"REG_C":        int(REG_C),
	"REG_D":        int(REG_D),
	"REG_A_H":      int(REG_A_H),
	"REG_A_L":      int(REG_A_L),
	"REG_B_H":      int(REG_B_H),
	"REG_B_L":      int(REG_B_L),
	"REG_C_H":      int(REG_C_H),
	"REG_C_L":      int(REG_C_L),
	"REG_D_H":      int(REG_D_H),
	"REG_D_L":      int(REG_D_L),
}

// Options configure the engine.
type Options struct {
	ExitOnHalt bool // Report STATUS_EXIT instead of freezing in Halt.
}

// Cpu is the cycle stepped execution engine.
type Cpu struct {
	Verbose bool // Set to enable verbose logging.

	Register    [4]Register     // General registers ra..rd.
	Flags       Flags           // Status register.
	Pc          ExtendedAddress // Program counter.
	Sp          StackAddress    // Stack pointer.
	Instruction Instruction     // Current instruction header.
	Word        bool            // Width of the bus transaction in flight.

	State     State           // Engine state.
	Interrupt InterruptStatus // Latched interrupt.
	Phase     int             // 1-based cycle within the current sequence.
	TempAddr  ExtendedAddress // Scratch address for multi-cycle assembly.

	Ticks   int // Cycles executed while not halted.
	Options Options

	table     *Table
	decoded   [256]Entry
	known     [256]bool
	nmiLast   bool // NMI line level on the previous cycle.
	inService bool // NMI latch held while its routine runs.
}

// New creates an engine for an opcode table. A nil table selects
// DefaultTable().
func New(table *Table, options Options) (cpu *Cpu) {
	if table == nil {
		table = DefaultTable()
	}

	cpu = &Cpu{
		Options: options,
		table:   table,
		Sp:      NewStackAddress(0),
		Phase:   1,
	}

	for opcode, entry := range table.Opcodes {
		cpu.decoded[opcode] = entry
		cpu.known[opcode] = true
	}

	return
}

// Table returns the opcode table in use.
func (cpu *Cpu) Table() *Table {
	return cpu.table
}

// Defines returns the vector, flag and register constants.
func Defines() iter.Seq2[string, int] {
	return maps.All(_cpu_defines)
}

// Defines for the cpu
func (cpu *Cpu) Defines() iter.Seq2[string, int] {
	return Defines()
}

// String returns the current CPU state as a string.
func (cpu *Cpu) String() (text string) {
	regs := []string{
		"pc", "sp", "flags",
		"ra", "rb", "rc", "rd",
		"state",
	}
	for _, reg := range regs {
		var strval string
		switch reg {
		case "pc":
			strval = cpu.Pc.String()
		case "sp":
			strval = cpu.Sp.String()
		case "flags":
			strval = cpu.Flags.String()
		case "ra", "rb", "rc", "rd":
			val := cpu.Register[reg[1]-'a']
			strval = fmt.Sprintf("%02X_%02X", val.High(), val.Low())
		case "state":
			strval = fmt.Sprintf("%v/%d", cpu.State, cpu.Phase)
		}
		text += fmt.Sprintf("% 5s: %v\n", reg, strval)
	}

	return
}

// Reset the CPU state.
//   - Clears the registers and flags.
//   - Moves the stack to the bottom of STACK_PAGE.
//   - Drops any latched interrupt.
//   - Enters STATE_RESET, which loads Pc from RESET_VECTOR.
func (cpu *Cpu) Reset(pins *Pins) {
	if cpu.Verbose {
		log.Printf("cpu: reset")
	}

	clear(cpu.Register[:])
	cpu.Flags = 0
	cpu.Pc = 0
	cpu.Sp = NewStackAddress(0)
	cpu.Instruction = Instruction{}
	cpu.Word = false
	cpu.TempAddr = 0
	cpu.Ticks = 0

	cpu.Interrupt = INTERRUPT_NONE
	cpu.inService = false
	cpu.nmiLast = false

	cpu.State = STATE_RESET
	cpu.Phase = 1

	if pins != nil {
		*pins = Pins{}
	}
}

// ClearInterrupt drops the interrupt latch. A serviced non-maskable
// interrupt stays latched until this is called.
func (cpu *Cpu) ClearInterrupt() {
	cpu.Interrupt = INTERRUPT_NONE
	cpu.inService = false
}

// sample latches a pending interrupt request. IRQ is checked before NMI,
// so an NMI edge in the same cycle as a level IRQ is not latched.
func (cpu *Cpu) sample(pins *Pins) {
	nmi_edge := pins.Irq.Nmi && !cpu.nmiLast
	cpu.nmiLast = pins.Irq.Nmi

	if cpu.Interrupt != INTERRUPT_NONE {
		return
	}

	if pins.Irq.Request && !cpu.Flags.Has(FLAG_I) {
		cpu.Interrupt = INTERRUPT_NORMAL
	} else if nmi_edge {
		cpu.Interrupt = INTERRUPT_NON_MASKABLE
	}
}

// Cycle advances the engine by one bus transaction.
//
// The caller must resolve the transaction left on pins (memory when
// BusEnable is set, with width Cpu.Word; IO when IoEnable is set) before
// the next call.
func (cpu *Cpu) Cycle(pins *Pins) (status Status, err error) {
	cpu.sample(pins)

	pins.BusEnable = false
	pins.IoEnable = false

	switch cpu.State {
	case STATE_RESET:
		err = cpu.reset(pins)
	case STATE_FETCH:
		err = cpu.fetch(pins)
	case STATE_EXECUTE:
		err = cpu.execute(pins)
	case STATE_INTERRUPT:
		err = cpu.interrupt(pins)
	case STATE_HALT:
		if cpu.pending() {
			// Wake into the interrupt sequence.
			cpu.State = STATE_INTERRUPT
			cpu.Phase = 1
			err = cpu.interrupt(pins)
			break
		}
		if cpu.Options.ExitOnHalt {
			status = STATUS_EXIT
			return
		}
		status = STATUS_HALTED
		cpu.Phase--
	default:
		err = ErrState
	}

	if err != nil {
		return
	}

	if status == STATUS_RUNNING {
		cpu.Ticks++
	}

	cpu.Phase++

	return
}

// pending is true when a latched interrupt is waiting to be entered.
func (cpu *Cpu) pending() bool {
	return cpu.Interrupt != INTERRUPT_NONE && !cpu.inService
}

// finish ends the current sequence and selects the next state.
func (cpu *Cpu) finish(pins *Pins) {
	cpu.Phase = 0
	pins.BusEnable = false

	if cpu.pending() {
		cpu.State = STATE_INTERRUPT
		return
	}

	if cpu.State == STATE_HALT {
		return
	}

	cpu.State = STATE_FETCH
}

// sequenceError reports a cycle outside of a sequence's range.
func (cpu *Cpu) sequenceError(name string) error {
	return ErrSequence{Name: name, Phase: cpu.Phase}
}

// reset loads the program counter from RESET_VECTOR.
func (cpu *Cpu) reset(pins *Pins) (err error) {
	switch cpu.Phase {
	case 1:
		cpu.Word = false
		pins.read(ExtendedAddress(RESET_VECTOR))
	case 2:
		cpu.TempAddr = cpu.TempAddr.WithBank(uint8(pins.Data))
		cpu.Word = true
		pins.read(ExtendedAddress(RESET_VECTOR).Increment(1))
	case 3:
		cpu.TempAddr = cpu.TempAddr.WithSegment(pins.Data)
		cpu.Pc = cpu.TempAddr
		if cpu.Verbose {
			log.Printf("cpu: reset vector %v", cpu.Pc)
		}
		cpu.finish(pins)
	default:
		err = cpu.sequenceError("RESET")
	}

	return
}

// fetch reads the opcode byte and metadata word.
func (cpu *Cpu) fetch(pins *Pins) (err error) {
	switch cpu.Phase {
	case 1:
		cpu.Instruction.Address = cpu.Pc
		cpu.Word = false
		pins.read(cpu.Pc)
	case 2:
		cpu.Instruction.Opcode = uint8(pins.Data)
		cpu.Pc = cpu.Pc.Increment(1)
		cpu.Word = true
		pins.read(cpu.Pc)
	case 3:
		cpu.Instruction.Metadata = Metadata(pins.Data)
		cpu.Pc = cpu.Pc.Increment(2)
		cpu.Phase = 0
		cpu.State = STATE_EXECUTE
	default:
		err = cpu.sequenceError("FETCH")
	}

	return
}

// execute dispatches the current instruction to its handler.
func (cpu *Cpu) execute(pins *Pins) (err error) {
	opcode := cpu.Instruction.Opcode
	if !cpu.known[opcode] {
		err = ErrOpcode(opcode)
		return
	}

	entry := cpu.decoded[opcode]
	if cpu.Verbose && cpu.Phase == 1 {
		log.Printf("cpu: %v: %v %v", cpu.Instruction.Address, entry, cpu.Instruction.Metadata)
	}

	return handlers[entry.Op](cpu, pins, entry)
}

// interrupt enters the service routine of the latched interrupt.
func (cpu *Cpu) interrupt(pins *Pins) (err error) {
	if cpu.Interrupt == INTERRUPT_NONE {
		err = ErrInterrupt
		return
	}

	cpu.Word = false

	switch cpu.Phase {
	case 1:
		pins.Irq.Ack = true
	case 2:
		pins.Irq.Ack = false
		slot := NMI_VECTOR
		if cpu.Interrupt == INTERRUPT_NORMAL {
			slot = uint32(pins.Irq.Data&0xf) * VECTOR_SIZE
		}
		if cpu.Verbose {
			log.Printf("cpu: interrupt %v, vector %#x", cpu.Interrupt, slot)
		}
		pins.read(ExtendedAddress(slot))
	case 3:
		cpu.TempAddr = cpu.TempAddr.WithBank(uint8(pins.Data))
		pins.read(pins.Address.Increment(1))
	case 4:
		cpu.TempAddr = cpu.TempAddr.WithHi(uint8(pins.Data))
		pins.read(pins.Address.Increment(1))
	case 5:
		cpu.TempAddr = cpu.TempAddr.WithLo(uint8(pins.Data))
		pins.write(cpu.Sp.Address(), uint16(uint8(cpu.Flags)))
	case 6:
		cpu.Sp.Increment(1)
		pins.write(cpu.Sp.Address(), uint16(cpu.Pc.Bank()))
	case 7:
		cpu.Sp.Increment(1)
		pins.write(cpu.Sp.Address(), uint16(cpu.Pc.Hi()))
	case 8:
		cpu.Sp.Increment(1)
		pins.write(cpu.Sp.Address(), uint16(cpu.Pc.Lo()))
	case 9:
		cpu.Sp.Increment(1)
		cpu.Pc = cpu.TempAddr
		cpu.Flags.Set(FLAG_I, true)
		if cpu.Interrupt == INTERRUPT_NORMAL {
			cpu.Interrupt = INTERRUPT_NONE
		} else {
			cpu.inService = true
		}
		cpu.finish(pins)
	default:
		err = cpu.sequenceError("INTERRUPT")
	}

	return
}
