package cpu

// ReadWrite is a bus transfer direction.
type ReadWrite int

//go:generate go tool stringer -linecomment -type=ReadWrite
const (
	READ  = ReadWrite(0) // read
	WRITE = ReadWrite(1) // write
)

// Irq holds the interrupt request lines.
type Irq struct {
	Request bool  // Level triggered maskable request.
	Nmi     bool  // Edge triggered non-maskable request.
	Ack     bool  // Pulsed by the CPU for one cycle on interrupt entry.
	Data    uint8 // Vector number of the requester, 4 bits.
}

// Pins is the bus transaction descriptor exchanged with the caller on
// every cycle. The caller owns it, and must resolve the requested
// transaction before the next call to Cpu.Cycle().
type Pins struct {
	Address   ExtendedAddress
	Data      uint16
	Rw        ReadWrite
	BusEnable bool

	IoAddress uint8
	IoData    uint8
	IoRw      ReadWrite
	IoEnable  bool

	Irq Irq
}

// read requests a memory read.
func (pins *Pins) read(address ExtendedAddress) {
	pins.Address = address
	pins.Rw = READ
	pins.BusEnable = true
}

// write requests a memory write.
func (pins *Pins) write(address ExtendedAddress, data uint16) {
	pins.Address = address
	pins.Data = data
	pins.Rw = WRITE
	pins.BusEnable = true
}
