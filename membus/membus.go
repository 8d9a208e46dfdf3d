// Package membus provides reference sh2.Bus implementations: linear RAM,
// read-only ROM, and an address-space router that composes several
// regions behind a single bus.
//
// These are the flat byte-array bus pattern used throughout the package's
// own tests (see the sh2 package's testBus) promoted to a reusable,
// exported form for cmd/sh2run and cmd/sh2dbg to assemble real address
// maps from.
package membus

import "fmt"

// RAM is a byte slice backing linear read/write memory. Accesses are
// little-endian and wrap modulo the slice length, which must be a power
// of two for the wrap to behave as a simple mask; NewRAM enforces this.
type RAM struct {
	mem  []byte
	mask uint32
}

// NewRAM allocates size bytes of zeroed RAM. size must be a power of two.
func NewRAM(size uint32) *RAM {
	if size == 0 || size&(size-1) != 0 {
		panic(fmt.Sprintf("membus: RAM size %d is not a power of two", size))
	}
	return &RAM{mem: make([]byte, size), mask: size - 1}
}

func (r *RAM) Read8(addr uint32) uint8 { return r.mem[addr&r.mask] }

func (r *RAM) Read16(addr uint32) uint16 {
	a := addr & r.mask
	return uint16(r.mem[a]) | uint16(r.mem[(a+1)&r.mask])<<8
}

func (r *RAM) Read32(addr uint32) uint32 {
	a := addr & r.mask
	return uint32(r.mem[a]) | uint32(r.mem[(a+1)&r.mask])<<8 |
		uint32(r.mem[(a+2)&r.mask])<<16 | uint32(r.mem[(a+3)&r.mask])<<24
}

func (r *RAM) Write8(addr uint32, val uint8) { r.mem[addr&r.mask] = val }

func (r *RAM) Write16(addr uint32, val uint16) {
	a := addr & r.mask
	r.mem[a] = byte(val)
	r.mem[(a+1)&r.mask] = byte(val >> 8)
}

func (r *RAM) Write32(addr uint32, val uint32) {
	a := addr & r.mask
	r.mem[a] = byte(val)
	r.mem[(a+1)&r.mask] = byte(val >> 8)
	r.mem[(a+2)&r.mask] = byte(val >> 16)
	r.mem[(a+3)&r.mask] = byte(val >> 24)
}

// Bytes exposes the backing slice directly, for loading a ROM image or a
// debugger's "set memory" command.
func (r *RAM) Bytes() []byte { return r.mem }

// ROM is a read-only variant of RAM. Writes are silently dropped, matching
// real ROM/flash behavior when the guest program mistakenly writes to it.
type ROM struct {
	ram *RAM
}

// NewROM wraps image as read-only memory. len(image) must be a power of
// two; image is copied, not aliased.
func NewROM(image []byte) *ROM {
	r := NewRAM(uint32(len(image)))
	copy(r.mem, image)
	return &ROM{ram: r}
}

func (r *ROM) Read8(addr uint32) uint8    { return r.ram.Read8(addr) }
func (r *ROM) Read16(addr uint32) uint16  { return r.ram.Read16(addr) }
func (r *ROM) Read32(addr uint32) uint32  { return r.ram.Read32(addr) }
func (r *ROM) Write8(addr uint32, v uint8) {}
func (r *ROM) Write16(addr uint32, v uint16) {}
func (r *ROM) Write32(addr uint32, v uint32) {}
