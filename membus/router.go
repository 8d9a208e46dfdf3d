package membus

import (
	"fmt"
	"sort"

	"github.com/sh2core/sh2"
)

// region is one mapped span of a Router's address space.
type region struct {
	base uint32
	size uint32
	bus  sh2.Bus
}

// Router composes multiple sh2.Bus regions keyed by base address and
// length, dispatching each access to the owning region. Accesses that
// fall outside every mapped region read as zero and drop writes, the
// same "unmapped reads as zero" convention the exception vector table
// scenarios rely on (S1 loads PC/SP from address 0, which must not
// panic on an otherwise-empty bus).
type Router struct {
	regions []region
}

// NewRouter returns an empty router. Use Map to add regions.
func NewRouter() *Router {
	return &Router{}
}

// Map registers bus as the handler for [base, base+size). It panics if
// the new region overlaps one already mapped, since overlapping address
// decode is a configuration bug, not a runtime condition to tolerate.
func (r *Router) Map(base, size uint32, bus sh2.Bus) {
	end := base + size
	for _, existing := range r.regions {
		existingEnd := existing.base + existing.size
		if base < existingEnd && existing.base < end {
			panic(fmt.Sprintf("membus: region [%#x,%#x) overlaps existing [%#x,%#x)",
				base, end, existing.base, existingEnd))
		}
	}
	r.regions = append(r.regions, region{base: base, size: size, bus: bus})
	sort.Slice(r.regions, func(i, j int) bool { return r.regions[i].base < r.regions[j].base })
}

// find returns the region owning addr, or nil if unmapped.
func (r *Router) find(addr uint32) *region {
	for i := range r.regions {
		reg := &r.regions[i]
		if addr >= reg.base && addr < reg.base+reg.size {
			return reg
		}
	}
	return nil
}

func (r *Router) Read8(addr uint32) uint8 {
	if reg := r.find(addr); reg != nil {
		return reg.bus.Read8(addr - reg.base)
	}
	return 0
}

func (r *Router) Read16(addr uint32) uint16 {
	if reg := r.find(addr); reg != nil {
		return reg.bus.Read16(addr - reg.base)
	}
	return 0
}

func (r *Router) Read32(addr uint32) uint32 {
	if reg := r.find(addr); reg != nil {
		return reg.bus.Read32(addr - reg.base)
	}
	return 0
}

func (r *Router) Write8(addr uint32, val uint8) {
	if reg := r.find(addr); reg != nil {
		reg.bus.Write8(addr-reg.base, val)
	}
}

func (r *Router) Write16(addr uint32, val uint16) {
	if reg := r.find(addr); reg != nil {
		reg.bus.Write16(addr-reg.base, val)
	}
}

func (r *Router) Write32(addr uint32, val uint32) {
	if reg := r.find(addr); reg != nil {
		reg.bus.Write32(addr-reg.base, val)
	}
}
