package device

import (
	"fmt"
	"io"
)

type outMode int

const (
	outWaiting = outMode(iota) // Next write selects the mode.
	outInt
	outChar
)

// Out is a write only IO port. The first write selects the format of
// the second: 0 prints it as a hex integer, anything else as a character.
// A nil Output discards the text.
type Out struct {
	Address uint8
	Output  io.Writer

	mode outMode
}

var _ IoMapped = (*Out)(nil)

func (out *Out) IoAddress() uint8 {
	return out.Address
}

func (out *Out) IoName() string {
	return "Out"
}

func (out *Out) IoRead() Result {
	return Result{Kind: KIND_WRITE_ONLY}
}

func (out *Out) IoWrite(data uint8) (res Result) {
	res = Ok()

	w := out.Output
	if w == nil {
		w = io.Discard
	}

	switch out.mode {
	case outWaiting:
		if data == 0 {
			out.mode = outInt
		} else {
			out.mode = outChar
		}
		return
	case outInt:
		fmt.Fprintf(w, "0x%02x\n", data)
	case outChar:
		w.Write([]byte{data})
	}

	out.mode = outWaiting
	return
}

// Reset returns the port to mode selection.
func (out *Out) Reset() {
	out.mode = outWaiting
}

// In is a read only IO port returning successive bytes of Input.
type In struct {
	Address uint8
	Input   io.Reader
}

var _ IoMapped = (*In)(nil)

func (in *In) IoAddress() uint8 {
	return in.Address
}

func (in *In) IoName() string {
	return "In"
}

func (in *In) IoRead() Result {
	if in.Input == nil {
		return Result{Kind: KIND_NO_VALUE}
	}

	var one [1]byte
	_, err := io.ReadFull(in.Input, one[:])
	if err != nil {
		return Result{Kind: KIND_NO_VALUE}
	}

	return Ok8(one[0])
}

func (in *In) IoWrite(data uint8) Result {
	return Result{Kind: KIND_READ_ONLY}
}
