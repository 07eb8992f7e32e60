package device

import (
	"io"
	"log"

	"github.com/cespare/xxhash"
)

// linear is a byte store claiming [start, end].
type linear struct {
	start uint32
	end   uint32
	data  []uint8
}

func newLinear(start, end uint32) linear {
	return linear{
		start: start,
		end:   end,
		data:  make([]uint8, end-start+1),
	}
}

func (mem *linear) Start() uint32 {
	return mem.start
}

func (mem *linear) End() uint32 {
	return mem.end
}

func (mem *linear) Size() uint32 {
	return uint32(len(mem.data))
}

// claims is true when every byte of the access is in range.
func (mem *linear) claims(address uint32, word bool) bool {
	last := address
	if word {
		last++
	}
	return address >= mem.start && last <= mem.end
}

func (mem *linear) read(address uint32, word bool) Result {
	if !mem.claims(address, word) {
		return NotMine()
	}

	offset := address - mem.start
	if word {
		return Ok16(uint16(mem.data[offset])<<8 | uint16(mem.data[offset+1]))
	}
	return Ok8(mem.data[offset])
}

// Ram is a zero filled read/write store.
type Ram struct {
	linear
}

var _ AddressMapped = (*Ram)(nil)

// NewRam creates a RAM claiming [start, end].
func NewRam(start, end uint32) (ram *Ram) {
	ram = &Ram{linear: newLinear(start, end)}
	return
}

func (ram *Ram) Read(address uint32, word bool) Result {
	return ram.read(address, word)
}

func (ram *Ram) Write(address uint32, data uint16, word bool) Result {
	if !ram.claims(address, word) {
		return NotMine()
	}

	offset := address - ram.start
	if word {
		ram.data[offset] = uint8(data >> 8)
		ram.data[offset+1] = uint8(data)
	} else {
		ram.data[offset] = uint8(data)
	}

	return Ok()
}

// Rom is a read only store holding a zero padded image.
type Rom struct {
	linear
	Verbose bool

	image int
}

var _ AddressMapped = (*Rom)(nil)

// NewRom creates an empty ROM claiming [start, end].
func NewRom(start, end uint32) (rom *Rom) {
	rom = &Rom{linear: newLinear(start, end)}
	return
}

// Load replaces the ROM contents with an image, zero padding the rest.
func (rom *Rom) Load(image []uint8) (err error) {
	if len(image) > len(rom.data) {
		err = &ErrRomSize{Size: len(image), Capacity: rom.Size()}
		return
	}

	clear(rom.data)
	copy(rom.data, image)
	rom.image = len(image)

	if rom.Verbose {
		log.Printf("rom: %d bytes, checksum %016x", rom.image, rom.Checksum())
	}

	return
}

// LoadFrom reads an image from r.
func (rom *Rom) LoadFrom(r io.Reader) (err error) {
	// Read one byte past capacity to detect oversize images.
	image, err := io.ReadAll(io.LimitReader(r, int64(rom.Size())+1))
	if err != nil {
		return
	}

	return rom.Load(image)
}

// Checksum is the xxhash of the loaded image, without padding.
func (rom *Rom) Checksum() uint64 {
	return xxhash.Sum64(rom.data[:rom.image])
}

func (rom *Rom) Read(address uint32, word bool) Result {
	return rom.read(address, word)
}

func (rom *Rom) Write(address uint32, data uint16, word bool) Result {
	if !rom.claims(address, word) {
		return NotMine()
	}
	return Result{Kind: KIND_READ_ONLY}
}
