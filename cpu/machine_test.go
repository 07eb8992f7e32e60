package cpu

import (
	"testing"
)

var testTable = DefaultTable()

// testMachine is a flat 24-bit memory and IO space wired to a Cpu.
type testMachine struct {
	cpu  *Cpu
	pins Pins
	mem  map[uint32]uint8
	io   map[uint8]uint8
}

func newTestMachine() (tm *testMachine) {
	tm = &testMachine{
		cpu: New(testTable, Options{}),
		mem: map[uint32]uint8{},
		io:  map[uint8]uint8{},
	}
	return
}

// boot installs the reset vector and program at origin, and runs the
// reset sequence.
func boot(t *testing.T, origin uint32, program ...[]uint8) (tm *testMachine) {
	tm = newTestMachine()
	tm.load(RESET_VECTOR, uint8(origin>>16), uint8(origin>>8), uint8(origin))
	addr := origin
	for _, code := range program {
		tm.load(addr, code...)
		addr += uint32(len(code))
	}

	tm.cpu.Reset(&tm.pins)
	for range 3 {
		_, err := tm.step()
		if err != nil {
			t.Fatalf("reset: %v", err)
		}
	}

	return
}

func (tm *testMachine) load(addr uint32, data ...uint8) {
	for n, b := range data {
		tm.mem[(addr+uint32(n))&ADDRESS_MASK] = b
	}
}

func (tm *testMachine) peek(addr uint32) uint8 {
	return tm.mem[addr&ADDRESS_MASK]
}

func (tm *testMachine) peekWord(addr uint32) uint16 {
	return uint16(tm.peek(addr))<<8 | uint16(tm.peek(addr+1))
}

// resolve performs the transaction requested on the pins. Interrupt
// requesters drop their request once acknowledged.
func (tm *testMachine) resolve() {
	pins := &tm.pins

	if pins.BusEnable {
		addr := pins.Address.Value()
		switch pins.Rw {
		case READ:
			if tm.cpu.Word {
				pins.Data = tm.peekWord(addr)
			} else {
				pins.Data = uint16(tm.peek(addr))
			}
		case WRITE:
			if tm.cpu.Word {
				tm.load(addr, uint8(pins.Data>>8), uint8(pins.Data))
			} else {
				tm.load(addr, uint8(pins.Data))
			}
		}
	}

	if pins.IoEnable {
		switch pins.IoRw {
		case READ:
			pins.IoData = tm.io[pins.IoAddress]
		case WRITE:
			tm.io[pins.IoAddress] = pins.IoData
		}
	}

	if pins.Irq.Ack {
		pins.Irq.Request = false
	}
}

func (tm *testMachine) step() (status Status, err error) {
	status, err = tm.cpu.Cycle(&tm.pins)
	if err != nil {
		return
	}
	tm.resolve()
	return
}

// instruction runs until the next instruction fetch begins, or the
// engine halts, and returns the number of cycles taken.
func (tm *testMachine) instruction() (cycles int, err error) {
	for cycles < 64 {
		_, err = tm.step()
		if err != nil {
			return
		}
		cycles++
		if tm.cpu.State == STATE_HALT {
			return
		}
		if tm.cpu.State == STATE_FETCH && tm.cpu.Phase == 1 {
			return
		}
	}
	err = ErrState
	return
}

// runToHalt runs until the engine halts.
func (tm *testMachine) runToHalt(limit int) (cycles int, err error) {
	for cycles < limit {
		if tm.cpu.State == STATE_HALT {
			return
		}
		_, err = tm.step()
		if err != nil {
			return
		}
		cycles++
	}
	err = ErrState
	return
}

// code encodes one instruction with the default opcode table.
func code(t *testing.T, name string, mode Mode, md Metadata, operand ...uint8) []uint8 {
	opcode, ok := testTable.Lookup(name, mode)
	if !ok {
		t.Fatalf("no opcode for %v|%v", name, mode)
	}
	return append([]uint8{opcode, uint8(md >> 8), uint8(md)}, operand...)
}

// abs encodes a 24-bit absolute operand.
func abs(addr uint32) []uint8 {
	return []uint8{uint8(addr >> 16), uint8(addr >> 8), uint8(addr)}
}

// imm16 encodes a word immediate.
func imm16(value uint16) []uint8 {
	return []uint8{uint8(value >> 8), uint8(value)}
}
