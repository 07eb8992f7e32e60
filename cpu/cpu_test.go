package cpu

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReset(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name   string
		vector []uint8
		pc     ExtendedAddress
	}){
		{"zero", []uint8{0, 0, 0}, 0x000000},
		{"low", []uint8{0x00, 0x01, 0x00}, 0x000100},
		{"banked", []uint8{0x12, 0x34, 0x56}, 0x123456},
		{"top", []uint8{0xff, 0xff, 0xff}, 0xffffff},
	}

	for _, entry := range table {
		tm := newTestMachine()
		tm.load(RESET_VECTOR, entry.vector...)

		// Dirty the state first.
		tm.cpu.Register[1].SetWord(0x1234)
		tm.cpu.Register[3].SetSplit(0xaa, 0x55)
		tm.cpu.Flags = Flags(FLAG_C | FLAG_I | FLAG_Z)
		tm.cpu.Pc = 0xabcdef
		tm.cpu.Sp.Increment(0x40)
		tm.cpu.State = STATE_HALT

		tm.cpu.Reset(&tm.pins)
		assert.Equal(STATE_RESET, tm.cpu.State, entry.name)

		for range 3 {
			_, err := tm.step()
			assert.NoError(err, entry.name)
		}

		assert.Equal(entry.pc, tm.cpu.Pc, entry.name)
		assert.Equal(STATE_FETCH, tm.cpu.State, entry.name)
		assert.Equal(1, tm.cpu.Phase, entry.name)
		assert.Equal(Flags(0), tm.cpu.Flags, entry.name)
		assert.Equal(NewStackAddress(0), tm.cpu.Sp, entry.name)
		for n := range tm.cpu.Register {
			assert.Equal(uint16(0), tm.cpu.Register[n].Word(), entry.name)
		}
	}
}

func TestMovImmediate(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name    string
		op      string
		reg     uint8
		value   uint16
		operand []uint8
		want    uint16
		zero    bool
		neg     bool
		size    uint32
	}){
		{"word", "mov", REG_A, 0, imm16(0x1234), 0x1234, false, false, 5},
		{"word_zero", "mov", REG_B, 0xffff, imm16(0x0000), 0x0000, true, false, 5},
		{"word_neg", "mov", REG_C, 0, imm16(0x8001), 0x8001, false, true, 5},
		{"word_alias", "mov", 0b0111, 0, imm16(0x4242), 0x4242, false, false, 5},
		{"byte", "movb", REG_A, 0xffff, []uint8{0x42}, 0x0042, false, false, 4},
		{"byte_neg", "movb", REG_D, 0, []uint8{0x80}, 0x0080, false, true, 4},
		{"byte_zero", "movb", REG_B, 0x1234, []uint8{0x00}, 0x0000, true, false, 4},
	}

	for _, entry := range table {
		md := MakeMetadata(entry.reg, 0, 0, false, false)
		tm := boot(t, 0x000100,
			code(t, entry.op, MODE_IMMEDIATE, md, entry.operand...),
		)
		ref := tm.cpu.decodeRegister(entry.reg)
		ref.Set(entry.value)
		tm.cpu.Flags = Flags(FLAG_Z | FLAG_N)

		cycles, err := tm.instruction()
		assert.NoError(err, entry.name)

		assert.Equal(entry.want, ref.Get(), entry.name)
		assert.Equal(entry.zero, tm.cpu.Flags.Has(FLAG_Z), entry.name)
		assert.Equal(entry.neg, tm.cpu.Flags.Has(FLAG_N), entry.name)
		assert.Equal(ExtendedAddress(0x000100+entry.size), tm.cpu.Pc, entry.name)
		assert.Equal(3+2, cycles, entry.name)
	}
}

func TestCycleCounts(t *testing.T) {
	assert := assert.New(t)

	md := MakeMetadata(REG_A, REG_B, 0, false, false)

	table := [](struct {
		name   string
		code   []uint8
		cycles int
	}){
		{"mov|R", code(t, "mov", MODE_REGISTER, md), 3 + 1},
		{"mov|A", code(t, "mov", MODE_ABSOLUTE, md, abs(0x020000)...), 3 + 4},
		{"st|A", code(t, "st", MODE_ABSOLUTE, md, abs(0x020000)...), 3 + 4},
		{"inc|R", code(t, "inc", MODE_REGISTER, md), 3 + 1},
		{"inc|A", code(t, "inc", MODE_ABSOLUTE, md, abs(0x020000)...), 3 + 5},
		{"psh|I", code(t, "psh", MODE_IMMEDIATE, md, imm16(1)...), 3 + 3},
		{"psh|R", code(t, "psh", MODE_REGISTER, md), 3 + 2},
		{"clc|M", code(t, "clc", MODE_IMPLIED, 0), 3 + 1},
		{"jmp|A", code(t, "jmp", MODE_ABSOLUTE, 0, abs(0x000200)...), 3 + 3},
		{"jsr|A", code(t, "jsr", MODE_ABSOLUTE, 0, abs(0x000200)...), 3 + 6},
		{"in|I", code(t, "in", MODE_IMMEDIATE, md, 0xa1), 3 + 3},
		{"out|I", code(t, "out", MODE_IMMEDIATE, md, 0xa0), 3 + 3},
	}

	for _, entry := range table {
		tm := boot(t, 0x000100, entry.code)
		cycles, err := tm.instruction()
		assert.NoError(err, entry.name)
		assert.Equal(entry.cycles, cycles, entry.name)
		assert.Equal(cycles, tm.cpu.Ticks-3, entry.name)
	}
}

func TestCmpFlags(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name string
		a, b uint16
		z    bool
		l    bool
		g    bool
	}){
		{"less", 0x10, 0x20, false, true, false},
		{"greater", 0x20, 0x10, false, false, true},
		{"equal", 0x33, 0x33, true, false, false},
		{"unsigned", 0xffff, 0x0001, false, false, true},
	}

	for _, entry := range table {
		md := MakeMetadata(REG_A, REG_B, 0, false, false)
		tm := boot(t, 0x000100, code(t, "cmp", MODE_REGISTER, md))
		tm.cpu.Register[0].SetWord(entry.a)
		tm.cpu.Register[1].SetWord(entry.b)
		tm.cpu.Flags = Flags(FLAG_Z | FLAG_L | FLAG_G)

		_, err := tm.instruction()
		assert.NoError(err, entry.name)

		assert.Equal(entry.z, tm.cpu.Flags.Has(FLAG_Z), entry.name)
		assert.Equal(entry.l, tm.cpu.Flags.Has(FLAG_L), entry.name)
		assert.Equal(entry.g, tm.cpu.Flags.Has(FLAG_G), entry.name)
		assert.Equal(entry.a, tm.cpu.Register[0].Word(), entry.name)
	}
}

func TestCallReturn(t *testing.T) {
	assert := assert.New(t)

	const base = uint32(0x000200)
	const stride = uint32(0x10)

	for _, depth := range []int{1, 2, 16, 1000} {
		program := [][]uint8{
			code(t, "jsr", MODE_ABSOLUTE, 0, abs(base)...),
			code(t, "hlt", MODE_IMPLIED, 0),
		}
		tm := boot(t, 0x000100, program...)

		for n := range depth {
			sub := base + uint32(n)*stride
			if n < depth-1 {
				tm.load(sub, code(t, "jsr", MODE_ABSOLUTE, 0, abs(sub+stride)...)...)
				tm.load(sub+6, code(t, "rts", MODE_IMPLIED, 0)...)
			} else {
				tm.load(sub, code(t, "rts", MODE_IMPLIED, 0)...)
			}
		}

		tm.cpu.Flags = Flags(FLAG_C)

		// First call leaves a frame pointing after itself.
		_, err := tm.instruction()
		assert.NoError(err)
		assert.Equal(ExtendedAddress(base), tm.cpu.Pc)
		assert.Equal(uint16(4), tm.cpu.Sp.Offset)
		assert.Equal(uint8(FLAG_C), tm.peek(0x010000))
		assert.Equal(uint8(0x00), tm.peek(0x010001))
		assert.Equal(uint16(0x0106), tm.peekWord(0x010002))

		_, err = tm.runToHalt(100_000)
		assert.NoError(err, "depth %d", depth)

		// hlt at 0x106, so Pc is just past its header.
		assert.Equal(ExtendedAddress(0x000109), tm.cpu.Pc, "depth %d", depth)
		assert.Equal(NewStackAddress(0), tm.cpu.Sp, "depth %d", depth)
		assert.Equal(Flags(FLAG_C), tm.cpu.Flags, "depth %d", depth)
	}
}

func TestBranch(t *testing.T) {
	assert := assert.New(t)

	const target = ExtendedAddress(0x000400)
	const next = ExtendedAddress(0x000106)

	table := [](struct {
		op    string
		flags Flags
		pc    ExtendedAddress
	}){
		{"jmp", 0, target},
		{"biz", Flags(FLAG_Z), target},
		{"biz", 0, next},
		{"bnz", 0, target},
		{"bnz", Flags(FLAG_Z), next},
		{"bic", Flags(FLAG_C), target},
		{"bnc", Flags(FLAG_C), next},
		{"bin", Flags(FLAG_N), target},
		{"bnn", Flags(FLAG_N), next},
		{"bio", Flags(FLAG_O), target},
		{"bno", 0, target},
		{"bil", Flags(FLAG_L), target},
		{"bnl", Flags(FLAG_L), next},
		{"big", Flags(FLAG_G), target},
		{"bng", Flags(FLAG_G), next},
	}

	for _, entry := range table {
		tm := boot(t, 0x000100, code(t, entry.op, MODE_ABSOLUTE, 0, abs(target.Value())...))
		tm.cpu.Flags = entry.flags

		cycles, err := tm.instruction()
		assert.NoError(err, entry.op)
		assert.Equal(entry.pc, tm.cpu.Pc, "%v %v", entry.op, entry.flags)
		assert.Equal(3+3, cycles, entry.op)
	}
}

func TestInterruptDeferred(t *testing.T) {
	assert := assert.New(t)

	md := MakeMetadata(REG_A, 0, 0, false, false)
	tm := boot(t, 0x000100,
		code(t, "mov", MODE_IMMEDIATE, md, imm16(0x1234)...), // 0x100
		code(t, "hlt", MODE_IMPLIED, 0),                      // 0x105
	)
	// Vector 2 -> service routine at 0x000400
	tm.load(2*VECTOR_SIZE, abs(0x000400)...)
	tm.load(0x000400, code(t, "rti", MODE_IMPLIED, 0)...)

	// Fetch the mov header.
	for range 3 {
		_, err := tm.step()
		assert.NoError(err)
	}
	assert.Equal(STATE_EXECUTE, tm.cpu.State)

	tm.pins.Irq.Request = true
	tm.pins.Irq.Data = 2

	// Latched, but the mov keeps running.
	_, err := tm.step()
	assert.NoError(err)
	assert.Equal(INTERRUPT_NORMAL, tm.cpu.Interrupt)
	assert.Equal(STATE_EXECUTE, tm.cpu.State)
	assert.Equal(uint16(0), tm.cpu.Register[0].Word())

	_, err = tm.step()
	assert.NoError(err)
	assert.Equal(STATE_INTERRUPT, tm.cpu.State)
	assert.Equal(uint16(0x1234), tm.cpu.Register[0].Word())
	assert.Equal(ExtendedAddress(0x000105), tm.cpu.Pc)

	// Acknowledge pulse
	_, err = tm.step()
	assert.NoError(err)
	assert.True(tm.pins.Irq.Ack)
	_, err = tm.step()
	assert.NoError(err)
	assert.False(tm.pins.Irq.Ack)

	cycles, err := tm.instruction()
	assert.NoError(err)
	assert.Equal(7, cycles)
	assert.Equal(ExtendedAddress(0x000400), tm.cpu.Pc)
	assert.Equal(INTERRUPT_NONE, tm.cpu.Interrupt)
	assert.True(tm.cpu.Flags.Has(FLAG_I))
	assert.Equal(uint16(4), tm.cpu.Sp.Offset)
	assert.Equal(uint8(0x00), tm.peek(0x010001))
	assert.Equal(uint8(0x01), tm.peek(0x010002))
	assert.Equal(uint8(0x05), tm.peek(0x010003))

	// rti
	_, err = tm.instruction()
	assert.NoError(err)
	assert.Equal(ExtendedAddress(0x000105), tm.cpu.Pc)
	assert.Equal(NewStackAddress(0), tm.cpu.Sp)
	assert.False(tm.cpu.Flags.Has(FLAG_I))

	_, err = tm.runToHalt(100)
	assert.NoError(err)
	assert.Equal(ExtendedAddress(0x000108), tm.cpu.Pc)
}

func TestInterruptMasked(t *testing.T) {
	assert := assert.New(t)

	tm := boot(t, 0x000100,
		code(t, "sei", MODE_IMPLIED, 0),
		code(t, "hlt", MODE_IMPLIED, 0),
	)

	_, err := tm.instruction()
	assert.NoError(err)
	assert.True(tm.cpu.Flags.Has(FLAG_I))

	tm.pins.Irq.Request = true
	_, err = tm.runToHalt(100)
	assert.NoError(err)
	assert.Equal(INTERRUPT_NONE, tm.cpu.Interrupt)
	assert.True(tm.pins.Irq.Request)
}

func TestInterruptNmi(t *testing.T) {
	assert := assert.New(t)

	tm := boot(t, 0x000100,
		code(t, "clc", MODE_IMPLIED, 0),
		code(t, "hlt", MODE_IMPLIED, 0),
	)
	tm.load(NMI_VECTOR, abs(0x000400)...)
	tm.load(0x000400, code(t, "rti", MODE_IMPLIED, 0)...)

	tm.pins.Irq.Nmi = true

	// clc, then the NMI entry.
	cycles, err := tm.instruction()
	assert.NoError(err)
	assert.Equal(3+1+9, cycles)
	assert.Equal(INTERRUPT_NON_MASKABLE, tm.cpu.Interrupt)
	assert.Equal(ExtendedAddress(0x000400), tm.cpu.Pc)
	assert.Equal(uint16(0x0103), tm.peekWord(0x010002))

	// The latch is held after service.
	_, err = tm.runToHalt(100)
	assert.NoError(err)
	assert.Equal(ExtendedAddress(0x000106), tm.cpu.Pc)
	assert.Equal(INTERRUPT_NON_MASKABLE, tm.cpu.Interrupt)

	// A new edge is not serviced while latched.
	tm.pins.Irq.Nmi = false
	_, err = tm.step()
	assert.NoError(err)
	tm.pins.Irq.Nmi = true
	status, err := tm.step()
	assert.NoError(err)
	assert.Equal(STATUS_HALTED, status)

	// Until released.
	tm.cpu.ClearInterrupt()
	tm.pins.Irq.Nmi = false
	_, err = tm.step()
	assert.NoError(err)
	tm.pins.Irq.Nmi = true
	status, err = tm.step()
	assert.NoError(err)
	assert.Equal(STATUS_RUNNING, status)
	assert.Equal(STATE_INTERRUPT, tm.cpu.State)
}

func TestHalt(t *testing.T) {
	assert := assert.New(t)

	tm := boot(t, 0x000100, code(t, "hlt", MODE_IMPLIED, 0))

	_, err := tm.instruction()
	assert.NoError(err)
	assert.Equal(STATE_HALT, tm.cpu.State)

	ticks := tm.cpu.Ticks
	phase := tm.cpu.Phase
	for range 10 {
		status, err := tm.step()
		assert.NoError(err)
		assert.Equal(STATUS_HALTED, status)
	}
	assert.Equal(ticks, tm.cpu.Ticks)
	assert.Equal(phase, tm.cpu.Phase)
	assert.False(tm.pins.BusEnable)

	tm.cpu.Options.ExitOnHalt = true
	status, err := tm.step()
	assert.NoError(err)
	assert.Equal(STATUS_EXIT, status)
}

func TestUnknownOpcode(t *testing.T) {
	assert := assert.New(t)

	// Opcode 0x00 is not in the default table.
	tm := boot(t, 0x000100, []uint8{0x00, 0x00, 0x00})

	_, err := tm.instruction()
	assert.ErrorIs(err, ErrOpcode(0))

	var op ErrOpcode
	assert.True(errors.As(err, &op))
	assert.Equal(ErrOpcode(0), op)
}

func TestSequenceError(t *testing.T) {
	assert := assert.New(t)

	tm := boot(t, 0x000100, code(t, "clc", MODE_IMPLIED, 0))
	for range 3 {
		_, err := tm.step()
		assert.NoError(err)
	}
	tm.cpu.Phase = 7

	_, err := tm.step()
	var seq ErrSequence
	assert.True(errors.As(err, &seq))
	assert.Equal(7, seq.Phase)
	assert.Equal("clc|M", seq.Name)
}

func TestDefines(t *testing.T) {
	assert := assert.New(t)

	cpu := New(nil, Options{})
	defines := map[string]int{}
	for key, value := range cpu.Defines() {
		defines[key] = value
	}

	assert.Equal(int(NMI_VECTOR), defines["NMI_VECTOR"])
	assert.Equal(int(FLAG_I), defines["FLAG_I"])
	assert.Equal(int(REG_D_L), defines["REG_D_L"])
}

func TestNames(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name string
		got  fmt.Stringer
	}){
		{"reset", STATE_RESET},
		{"halt", STATE_HALT},
		{"State(9)", State(9)},
		{"none", INTERRUPT_NONE},
		{"nmi", INTERRUPT_NON_MASKABLE},
		{"running", STATUS_RUNNING},
		{"exit", STATUS_EXIT},
		{"Status(-1)", Status(-1)},
		{"M", MODE_IMPLIED},
		{"A", MODE_ABSOLUTE},
		{"mov", OP_MOV},
		{"hlt", OP_HLT},
		{"Op(99)", Op(99)},
		{"read", READ},
		{"write", WRITE},
	}

	for _, entry := range table {
		assert.Equal(entry.name, entry.got.String())
	}

	// Mnemonics come from the op names.
	for op := range op_count {
		assert.Equal(mnemonic{op: op}, mnemonics[op.String()], op.String())
	}
	assert.Equal(mnemonic{op: OP_MOV, isByte: true}, mnemonics["movb"])
}
