package device

import (
	"log"

	"github.com/ezrec/hexacore/cpu"
)

// Bus holds the address mapped and IO mapped device registries.
// Devices are polled in the order they were attached, and the first
// claimant wins. Overlapping ranges are not checked.
type Bus struct {
	Verbose bool // Set to log failed transactions.

	devices   []AddressMapped
	ioDevices []IoMapped
}

// Attach adds an address mapped device.
func (bus *Bus) Attach(dev AddressMapped) {
	bus.devices = append(bus.devices, dev)
}

// AttachIo adds an IO mapped device.
func (bus *Bus) AttachIo(dev IoMapped) {
	bus.ioDevices = append(bus.ioDevices, dev)
}

// Devices returns the attached address mapped devices.
func (bus *Bus) Devices() []AddressMapped {
	return bus.devices
}

// IoDevices returns the attached IO mapped devices.
func (bus *Bus) IoDevices() []IoMapped {
	return bus.ioDevices
}

func (bus *Bus) Read(address uint32, word bool) (res Result) {
	for _, dev := range bus.devices {
		res = dev.Read(address, word)
		if res.Done() {
			return
		}
	}

	res = Result{Kind: KIND_NO_DEVICE}
	return
}

func (bus *Bus) Write(address uint32, data uint16, word bool) (res Result) {
	for _, dev := range bus.devices {
		res = dev.Write(address, data, word)
		if res.Done() {
			return
		}
	}

	res = Result{Kind: KIND_NO_DEVICE}
	return
}

func (bus *Bus) ReadIo(address uint8) (res Result) {
	for _, dev := range bus.ioDevices {
		if dev.IoAddress() == address {
			return dev.IoRead()
		}
	}

	res = Result{Kind: KIND_NO_DEVICE}
	return
}

func (bus *Bus) WriteIo(address uint8, data uint8) (res Result) {
	for _, dev := range bus.ioDevices {
		if dev.IoAddress() == address {
			return dev.IoWrite(data)
		}
	}

	res = Result{Kind: KIND_NO_DEVICE}
	return
}

// Resolve performs the transactions requested on pins, with word giving
// the width of the memory transaction.
func (bus *Bus) Resolve(pins *cpu.Pins, word bool) (err error) {
	if pins.BusEnable {
		address := pins.Address.Value()
		write := pins.Rw == cpu.WRITE

		var res Result
		if write {
			res = bus.Write(address, pins.Data, word)
			if res.Kind != KIND_OK {
				err = bus.fail(false, address, write, res)
				return
			}
		} else {
			res = bus.Read(address, word)
			switch res.Kind {
			case KIND_OK8, KIND_OK16:
				pins.Data = res.Value
			default:
				err = bus.fail(false, address, write, res)
				return
			}
		}
	}

	if pins.IoEnable {
		address := pins.IoAddress
		write := pins.IoRw == cpu.WRITE

		var res Result
		if write {
			res = bus.WriteIo(address, pins.IoData)
			if res.Kind != KIND_OK {
				err = bus.fail(true, uint32(address), write, res)
				return
			}
		} else {
			res = bus.ReadIo(address)
			switch res.Kind {
			case KIND_OK8, KIND_OK16:
				pins.IoData = uint8(res.Value)
			default:
				err = bus.fail(true, uint32(address), write, res)
				return
			}
		}
	}

	return
}

func (bus *Bus) fail(io bool, address uint32, write bool, res Result) error {
	err := res.Err()
	if err == nil {
		// A read answered with a write acknowledgement.
		err = ErrNoValue
	}

	if bus.Verbose {
		log.Printf("bus: %v at %#06x (io=%v write=%v)", res, address, io, write)
	}

	return &ErrBus{Io: io, Address: address, Write: write, Err: err}
}
