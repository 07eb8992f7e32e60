// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package emulator

import (
	"io"
	"iter"
	"log"
	"maps"

	"github.com/ezrec/hexacore/cpu"
	"github.com/ezrec/hexacore/device"
	"github.com/ezrec/hexacore/internal"
)

const (
	ROM_START = uint32(0x000000) // First byte of the boot ROM.
	ROM_END   = uint32(0x00ffff) // Last byte of the boot ROM.
	RAM_START = uint32(0x010000) // First byte of RAM.
	RAM_END   = uint32(0xffffff) // Last byte of RAM.
	OUT_PORT  = uint8(0xa0)      // Console output port.
	IN_PORT   = uint8(0xa1)      // Console input port.
)

var _emulator_defines = map[string]int{
	"ROM_START": int(ROM_START),
	"ROM_END":   int(ROM_END),
	"RAM_START": int(RAM_START),
	"RAM_END":   int(RAM_END),
	"OUT_PORT":  int(OUT_PORT),
	"IN_PORT":   int(IN_PORT),
}

// Config is the memory map and port assignment of an emulator.
type Config struct {
	RomStart uint32
	RomEnd   uint32
	RamStart uint32
	RamEnd   uint32
	OutPort  uint8
	InPort   uint8

	Options cpu.Options
}

// DefaultConfig returns the standard HexaCore board.
func DefaultConfig() Config {
	return Config{
		RomStart: ROM_START,
		RomEnd:   ROM_END,
		RamStart: RAM_START,
		RamEnd:   RAM_END,
		OutPort:  OUT_PORT,
		InPort:   IN_PORT,
	}
}

// Emulator state. CPU + bus + devices.
type Emulator struct {
	Verbose  bool // If set, enables verbose logging.
	*cpu.Cpu      // Reference to the CPU simulation.

	Pins   cpu.Pins   // Signals between the CPU and the bus.
	Bus    device.Bus // Device registries.
	Status cpu.Status // Status of the last tick.

	Rom *device.Rom
	Ram *device.Ram
	Out device.Out
	In  device.In
}

// NewEmulator creates a new emulator on the default board and opcode table.
func NewEmulator() (emu *Emulator) {
	return New(DefaultConfig(), nil)
}

// New creates an emulator from a configuration. A nil table selects the
// built in opcode table.
func New(config Config, table *cpu.Table) (emu *Emulator) {
	emu = &Emulator{
		Cpu: cpu.New(table, config.Options),
		Rom: device.NewRom(config.RomStart, config.RomEnd),
		Ram: device.NewRam(config.RamStart, config.RamEnd),
	}

	emu.Out.Address = config.OutPort
	emu.Out.Output = io.Discard
	emu.In.Address = config.InPort

	// RAM is polled first; the ranges do not overlap on the default board.
	emu.Bus.Attach(emu.Ram)
	emu.Bus.Attach(emu.Rom)
	emu.Bus.AttachIo(&emu.Out)
	emu.Bus.AttachIo(&emu.In)

	return
}

// Defines returns the memory map and CPU constants of the default board.
func Defines() iter.Seq2[string, int] {
	return internal.IterSeq2Concat(maps.All(_emulator_defines),
		cpu.Defines(),
	)
}

// Defines returns an iterator over all of the defines
func (emu *Emulator) Defines() iter.Seq2[string, int] {
	return internal.IterSeq2Concat(maps.All(_emulator_defines),
		emu.Cpu.Defines(),
	)
}

// SetOutput sets the console output stream.
func (emu *Emulator) SetOutput(w io.Writer) {
	emu.Out.Output = w
}

// SetInput sets the console input stream.
func (emu *Emulator) SetInput(r io.Reader) {
	emu.In.Input = r
}

// Load replaces the ROM image.
func (emu *Emulator) Load(image []uint8) (err error) {
	emu.Rom.Verbose = emu.Verbose
	err = emu.Rom.Load(image)
	return
}

// LoadFrom reads the ROM image from r.
func (emu *Emulator) LoadFrom(r io.Reader) (err error) {
	emu.Rom.Verbose = emu.Verbose
	err = emu.Rom.LoadFrom(r)
	return
}

// Reset the CPU, the pins and the console.
func (emu *Emulator) Reset() {
	emu.Cpu.Verbose = emu.Verbose
	emu.Bus.Verbose = emu.Verbose

	emu.Cpu.Reset(&emu.Pins)
	emu.Out.Reset()
	emu.Status = cpu.STATUS_RUNNING
}

// Ticks returns the total ticks since a reset.
func (emu *Emulator) Ticks() int {
	return emu.Cpu.Ticks
}

// Irq raises a maskable interrupt request for a vector. The request is
// dropped when the CPU acknowledges it.
func (emu *Emulator) Irq(vector uint8) {
	emu.Pins.Irq.Request = true
	emu.Pins.Irq.Data = vector & 0xf
}

// Nmi drives the non-maskable interrupt line. The CPU latches on the
// rising edge.
func (emu *Emulator) Nmi(level bool) {
	emu.Pins.Irq.Nmi = level
}

// Tick performs a single CPU cycle and resolves its bus transaction.
// done is set once the CPU exits. A halted CPU is not done, as an
// interrupt can wake it.
func (emu *Emulator) Tick() (done bool, err error) {
	// Set CPU verbosity
	emu.Cpu.Verbose = emu.Verbose
	emu.Bus.Verbose = emu.Verbose

	tick := emu.Cpu.Ticks
	defer func() {
		if err != nil {
			err = &ErrRuntime{Tick: tick, Pc: emu.Cpu.Instruction.Address, Err: err}
		}
	}()

	emu.Status, err = emu.Cpu.Cycle(&emu.Pins)
	if err != nil {
		return
	}

	err = emu.Bus.Resolve(&emu.Pins, emu.Cpu.Word)
	if err != nil {
		return
	}

	if emu.Pins.Irq.Ack {
		emu.Pins.Irq.Request = false
	}

	done = emu.Status == cpu.STATUS_EXIT
	return
}

// Run ticks until the CPU exits, or limit cycles have run. A limit of
// zero runs without bound.
func (emu *Emulator) Run(limit int) (cycles int, err error) {
	for limit == 0 || cycles < limit {
		var done bool
		done, err = emu.Tick()
		if err != nil || done {
			return
		}
		cycles++
	}

	if emu.Verbose {
		log.Printf("emulator: stopped after %d cycles at %v", cycles, emu.Cpu.Pc)
	}

	return
}
