package membus

import "testing"

func TestRAMRoundTrip(t *testing.T) {
	ram := NewRAM(1024)
	ram.Write32(4, 0xDEADBEEF)

	if got := ram.Read32(4); got != 0xDEADBEEF {
		t.Fatalf("Read32(4) = %#x, want 0xDEADBEEF", got)
	}
	if got := ram.Read8(4); got != 0xEF {
		t.Errorf("Read8(4) = %#x, want 0xef", got)
	}
}

func TestRAMWrapsOnPowerOfTwoSize(t *testing.T) {
	ram := NewRAM(16)
	ram.Write8(16, 0x42) // wraps to offset 0

	if got := ram.Read8(0); got != 0x42 {
		t.Errorf("Read8(0) = %#x, want 0x42 (write should have wrapped)", got)
	}
}

func TestRAMWrapsOnWideAccessesNearRegionEnd(t *testing.T) {
	ram := NewRAM(16)

	ram.Write32(13, 0x44332211) // bytes land at offsets 13,14,15,0
	if got := ram.Read32(13); got != 0x44332211 {
		t.Fatalf("Read32(13) = %#x, want 0x44332211", got)
	}
	if got := ram.Read8(0); got != 0x44 {
		t.Errorf("byte at offset 0 = %#x, want 0x44 (top byte should have wrapped around)", got)
	}

	ram.Write16(15, 0xBEEF) // bytes land at offsets 15,0
	if got := ram.Read16(15); got != 0xBEEF {
		t.Errorf("Read16(15) = %#x, want 0xbeef", got)
	}
	if got := ram.Read8(0); got != 0xBE {
		t.Errorf("byte at offset 0 = %#x, want 0xbe (high byte should have wrapped around)", got)
	}
}

func TestROMDropsWrites(t *testing.T) {
	rom := NewROM([]byte{0x01, 0x02, 0x03, 0x04})
	rom.Write8(0, 0xFF)

	if got := rom.Read8(0); got != 0x01 {
		t.Errorf("Read8(0) = %#x, want 0x01 (write to ROM must be dropped)", got)
	}
}

func TestRouterDispatchesToOwningRegion(t *testing.T) {
	router := NewRouter()
	rom := NewROM(make([]byte, 256))
	ram := NewRAM(256)
	router.Map(0x00000000, 256, rom)
	router.Map(0x00001000, 256, ram)

	router.Write8(0x00001010, 0x7A)
	if got := router.Read8(0x00001010); got != 0x7A {
		t.Fatalf("Read8(0x1010) = %#x, want 0x7a", got)
	}
	if got := ram.Read8(0x10); got != 0x7A {
		t.Errorf("write did not translate to region-local offset: ram[0x10] = %#x", got)
	}
}

func TestRouterUnmappedReadsAsZero(t *testing.T) {
	router := NewRouter()
	router.Map(0x1000, 16, NewRAM(16))

	if got := router.Read32(0x9000); got != 0 {
		t.Errorf("Read32 on unmapped address = %#x, want 0", got)
	}
	router.Write32(0x9000, 0xFFFFFFFF) // must not panic
}

func TestRouterMapPanicsOnOverlap(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("Map did not panic on overlapping region")
		}
	}()

	router := NewRouter()
	router.Map(0x1000, 0x100, NewRAM(256))
	router.Map(0x1080, 0x100, NewRAM(256))
}
