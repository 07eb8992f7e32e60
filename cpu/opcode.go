package cpu

import (
	"strings"
)

// Op is an instruction family. Byte variants share the Op of their
// word form and are distinguished by Entry.Byte.
type Op int

//go:generate go tool stringer -linecomment -type=Op
const (
	OP_MOV = Op(iota) // mov
	OP_ST             // st
	OP_AND            // and
	OP_OR             // or
	OP_XOR            // xor
	OP_PSH            // psh
	OP_POP            // pop
	OP_ADD            // add
	OP_SUB            // sub
	OP_CMP            // cmp
	OP_INC            // inc
	OP_DEC            // dec
	OP_SBL            // sbl
	OP_SBR            // sbr
	OP_ROL            // rol
	OP_ROR            // ror
	OP_CLC            // clc
	OP_CLI            // cli
	OP_CLV            // clv
	OP_SEI            // sei
	OP_JMP            // jmp
	OP_JSR            // jsr
	OP_BIZ            // biz
	OP_BIN            // bin
	OP_BIC            // bic
	OP_BIO            // bio
	OP_BIL            // bil
	OP_BIG            // big
	OP_BNZ            // bnz
	OP_BNN            // bnn
	OP_BNC            // bnc
	OP_BNO            // bno
	OP_BNL            // bnl
	OP_BNG            // bng
	OP_RTS            // rts
	OP_RTI            // rti
	OP_IN             // in
	OP_OUT            // out
	OP_HLT            // hlt
	op_count
)

// Mode is an addressing mode.
type Mode int

//go:generate go tool stringer -linecomment -type=Mode
const (
	MODE_IMPLIED   = Mode(0) // M
	MODE_IMMEDIATE = Mode(1) // I
	MODE_REGISTER  = Mode(2) // R
	MODE_ABSOLUTE  = Mode(3) // A
)

// ParseMode parses a single letter addressing mode tag.
func ParseMode(tag string) (mode Mode, err error) {
	for _, mode = range []Mode{MODE_IMPLIED, MODE_IMMEDIATE, MODE_REGISTER, MODE_ABSOLUTE} {
		if mode.String() == tag {
			return
		}
	}
	mode = MODE_IMPLIED
	err = ErrTableMode(tag)
	return
}

const (
	mImp = 1 << MODE_IMPLIED
	mImm = 1 << MODE_IMMEDIATE
	mReg = 1 << MODE_REGISTER
	mAbs = 1 << MODE_ABSOLUTE
)

// opInfo describes the static properties of an Op.
type opInfo struct {
	modes int  // Bitmask of permitted modes.
	sized bool // Has a byte-suffixed variant.
}

var opInfos = [op_count]opInfo{
	OP_MOV: {mImm | mReg | mAbs, true},
	OP_ST:  {mAbs, true},
	OP_AND: {mImm | mReg | mAbs, true},
	OP_OR:  {mImm | mReg | mAbs, true},
	OP_XOR: {mImm | mReg | mAbs, true},
	OP_PSH: {mImm | mReg, true},
	OP_POP: {mReg, true},
	OP_ADD: {mImm | mReg | mAbs, true},
	OP_SUB: {mImm | mReg | mAbs, true},
	OP_CMP: {mImm | mReg | mAbs, true},
	OP_INC: {mReg | mAbs, true},
	OP_DEC: {mReg | mAbs, true},
	OP_SBL: {mReg | mAbs, true},
	OP_SBR: {mReg | mAbs, true},
	OP_ROL: {mReg | mAbs, true},
	OP_ROR: {mReg | mAbs, true},
	OP_CLC: {mImp, false},
	OP_CLI: {mImp, false},
	OP_CLV: {mImp, false},
	OP_SEI: {mImp, false},
	OP_JMP: {mAbs, false},
	OP_JSR: {mAbs, false},
	OP_BIZ: {mAbs, false},
	OP_BIN: {mAbs, false},
	OP_BIC: {mAbs, false},
	OP_BIO: {mAbs, false},
	OP_BIL: {mAbs, false},
	OP_BIG: {mAbs, false},
	OP_BNZ: {mAbs, false},
	OP_BNN: {mAbs, false},
	OP_BNC: {mAbs, false},
	OP_BNO: {mAbs, false},
	OP_BNL: {mAbs, false},
	OP_BNG: {mAbs, false},
	OP_RTS: {mImp, false},
	OP_RTI: {mImp, false},
	OP_IN:  {mImm, false},
	OP_OUT: {mImm, false},
	OP_HLT: {mImp, false},
}

type mnemonic struct {
	op     Op
	isByte bool
}

// mnemonics maps every mnemonic, including byte variants, to its Op.
var mnemonics = func() (names map[string]mnemonic) {
	names = make(map[string]mnemonic, 2*int(op_count))
	for n, info := range opInfos {
		op := Op(n)
		names[op.String()] = mnemonic{op: op}
		if info.sized {
			names[op.String()+"b"] = mnemonic{op: op, isByte: true}
		}
	}
	return
}()

// Allows returns true if the Op may be used with mode.
func (op Op) Allows(mode Mode) bool {
	if op < 0 || op >= op_count {
		return false
	}
	return (opInfos[op].modes & (1 << mode)) != 0
}

// ParseMnemonic resolves an instruction name such as "addb".
func ParseMnemonic(name string) (op Op, isByte bool, err error) {
	entry, ok := mnemonics[strings.ToLower(name)]
	if !ok {
		err = ErrTableMnemonic(name)
		return
	}
	op = entry.op
	isByte = entry.isByte
	return
}

// Entry is one decoded opcode table row.
type Entry struct {
	Op   Op
	Byte bool
	Mode Mode
}

// Name returns the mnemonic of the entry.
func (entry Entry) Name() string {
	if entry.Byte {
		return entry.Op.String() + "b"
	}
	return entry.Op.String()
}

func (entry Entry) String() string {
	return entry.Name() + "|" + entry.Mode.String()
}

// ParseEntry parses a "name|mode" opcode table value.
func ParseEntry(text string) (entry Entry, err error) {
	name, tag, ok := strings.Cut(text, "|")
	if !ok || strings.Contains(tag, "|") {
		err = ErrTableSyntax(text)
		return
	}

	entry.Op, entry.Byte, err = ParseMnemonic(name)
	if err != nil {
		return
	}

	entry.Mode, err = ParseMode(tag)
	if err != nil {
		return
	}

	if !entry.Op.Allows(entry.Mode) {
		err = ErrTableModeInvalid{Name: entry.Name(), Mode: entry.Mode}
		return
	}

	return
}
