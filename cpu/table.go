package cpu

import (
	_ "embed"
	"encoding/json"
	"errors"
	"io"
	"iter"
	"log"
	"strconv"
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

//go:embed opcodes.json
var defaultOpcodes []byte

// Info is the per-mnemonic size class record of an opcode table.
type Info struct {
	Name   string           `json:"name"`
	Size   int              `json:"size"`
	Opcode map[string]uint8 `json:"opcode"`
	Byte   bool             `json:"byte"`
}

// Table maps opcode bytes to their decoded entries.
type Table struct {
	Opcodes map[uint8]Entry
	Info    []Info
}

// tableFile is the on-disk JSON layout.
type tableFile struct {
	Opcodes map[string]string `json:"opcodes"`
	Info    []Info            `json:"info"`
}

// NewTable validates and decodes raw "name|mode" opcode assignments.
func NewTable(opcodes map[uint8]string, info []Info) (table *Table, err error) {
	table = &Table{
		Opcodes: make(map[uint8]Entry, len(opcodes)),
		Info:    info,
	}

	for opcode, text := range opcodes {
		var entry Entry
		entry, err = ParseEntry(text)
		if err != nil {
			err = ErrTableEntry{Opcode: opcode, Err: err}
			table = nil
			return
		}
		table.Opcodes[opcode] = entry
	}

	for _, inf := range info {
		_, _, err = ParseMnemonic(inf.Name)
		if err != nil {
			err = ErrTableInfo{Name: inf.Name, Err: err}
			table = nil
			return
		}
		for _, opcode := range inf.Opcode {
			entry, ok := table.Opcodes[opcode]
			if !ok || entry.Name() != strings.ToLower(inf.Name) {
				err = ErrTableInfo{Name: inf.Name, Err: ErrTableOpcode(strconv.Itoa(int(opcode)))}
				table = nil
				return
			}
		}
	}

	return
}

// LoadTable reads a JSON opcode table.
func LoadTable(r io.Reader) (table *Table, err error) {
	var file tableFile

	dec := json.NewDecoder(r)
	err = dec.Decode(&file)
	if err != nil {
		err = errors.Join(ErrTableFormat, err)
		return
	}

	if len(file.Opcodes) == 0 {
		err = ErrTableEmpty
		return
	}

	opcodes := make(map[uint8]string, len(file.Opcodes))
	for key, text := range file.Opcodes {
		var value uint64
		value, err = strconv.ParseUint(key, 0, 8)
		if err != nil {
			err = ErrTableOpcode(key)
			return
		}
		opcodes[uint8(value)] = text
	}

	return NewTable(opcodes, file.Info)
}

// DefaultTable returns the built-in opcode table.
func DefaultTable() (table *Table) {
	table, err := LoadTable(strings.NewReader(string(defaultOpcodes)))
	if err != nil {
		panic("built-in opcode table: " + err.Error())
	}
	return
}

// LoadTableStarlark evaluates a Starlark opcode table script.
//
// The script must bind 'opcodes' to a dict of opcode integer to
// "name|mode" string. The mode letters are predeclared as IMPLIED,
// IMMEDIATE, REGISTER and ABSOLUTE, along with every integer in defines.
// An optional 'sizes' dict of mnemonic to size class fills in Info.
func LoadTableStarlark(filename string, src any, defines iter.Seq2[string, int]) (table *Table, err error) {
	thread := &starlark.Thread{
		Name: filename,
		Print: func(_ *starlark.Thread, msg string) {
			log.Printf("%v: %v", filename, msg)
		},
	}
	opts := syntax.FileOptions{}

	pred := starlark.StringDict{
		"IMPLIED":   starlark.String(MODE_IMPLIED.String()),
		"IMMEDIATE": starlark.String(MODE_IMMEDIATE.String()),
		"REGISTER":  starlark.String(MODE_REGISTER.String()),
		"ABSOLUTE":  starlark.String(MODE_ABSOLUTE.String()),
	}
	if defines != nil {
		for key, value := range defines {
			pred[key] = starlark.MakeInt(value)
		}
	}

	globals, err := starlark.ExecFileOptions(&opts, thread, filename, src, pred)
	if err != nil {
		err = errors.Join(ErrTableFormat, err)
		return
	}

	st_opcodes, ok := globals["opcodes"].(*starlark.Dict)
	if !ok {
		err = ErrTableEmpty
		return
	}

	opcodes := make(map[uint8]string, st_opcodes.Len())
	for _, item := range st_opcodes.Items() {
		key, value := item[0], item[1]
		var opcode int
		opcode, err = starlark.AsInt32(key)
		if err != nil || opcode < 0 || opcode > 0xff {
			err = ErrTableOpcode(key.String())
			return
		}
		text, ok := starlark.AsString(value)
		if !ok {
			err = ErrTableSyntax(value.String())
			return
		}
		opcodes[uint8(opcode)] = text
	}

	var info []Info
	if st_sizes, ok := globals["sizes"].(*starlark.Dict); ok {
		for _, item := range st_sizes.Items() {
			name, ok := starlark.AsString(item[0])
			if !ok {
				err = ErrTableSyntax(item[0].String())
				return
			}
			var size int
			size, err = starlark.AsInt32(item[1])
			if err != nil {
				err = ErrTableInfo{Name: name, Err: err}
				return
			}
			info = append(info, Info{Name: name, Size: size})
		}
	}

	return NewTable(opcodes, info)
}

// Entry returns the decoded entry for an opcode.
func (table *Table) Entry(opcode uint8) (entry Entry, ok bool) {
	entry, ok = table.Opcodes[opcode]
	return
}

// Lookup returns the lowest opcode assigned to name in mode.
func (table *Table) Lookup(name string, mode Mode) (opcode uint8, ok bool) {
	name = strings.ToLower(name)
	for n := range 256 {
		entry, found := table.Opcodes[uint8(n)]
		if found && entry.Mode == mode && entry.Name() == name {
			return uint8(n), true
		}
	}
	return
}

// Size returns the size class of a mnemonic from the table info.
func (table *Table) Size(name string) (size int, ok bool) {
	name = strings.ToLower(name)
	for _, inf := range table.Info {
		if strings.ToLower(inf.Name) == name {
			return inf.Size, true
		}
	}
	return
}
