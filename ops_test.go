package sh2

import "testing"

// TestGBRIndexedUsesGBRNotVBR guards against the GBR-relative byte forms
// computing their effective address from VBR instead of GBR.
func TestGBRIndexedUsesGBRNotVBR(t *testing.T) {
	cpu, bus := newTestCPU()
	cpu.SetReg(RegGBR, 0x2000)
	cpu.reg[RegVBR] = 0x9000 // deliberately different from GBR
	cpu.SetReg(RegR0, 0x10)
	bus.Write8(0x2010, 0xF0) // correct (GBR+R0) address: AND with 0x0F is zero
	bus.Write8(0x9010, 0x0F) // buggy (VBR+R0) address: AND with 0x0F is nonzero

	step(cpu, bus, 0xCC0F) // TST.B #0x0F,@(R0,GBR)

	if !cpu.t() {
		t.Errorf("T = false, want true (address should resolve via GBR, not VBR)")
	}
}

// TestSHLR16ActuallyShifts guards against a no-op SHLR16 implementation.
func TestSHLR16ActuallyShifts(t *testing.T) {
	cpu, bus := newTestCPU()
	cpu.SetReg(RegR0, 0x12345678)
	step(cpu, bus, 0x4029) // SHLR16 R0

	if got := cpu.Reg(RegR0); got != 0x00001234 {
		t.Errorf("R0 = %#x, want 0x00001234", got)
	}
}

// TestLDCSRMasksUndefinedBits verifies invariant 4: SR written from a
// register via LDC only retains the architecturally defined bits.
func TestLDCSRMasksUndefinedBits(t *testing.T) {
	cpu, bus := newTestCPU()
	cpu.SetReg(RegR0+1, 0xFFFFFFFF)
	step(cpu, bus, 0x410E) // LDC R1,SR

	if got := cpu.Reg(RegSR); got != srDefinedMask {
		t.Errorf("SR = %#x, want %#x (only defined bits set)", got, srDefinedMask)
	}
}

// TestDelaySlotInvariant covers universal property 6: for a delayed
// branch B followed by instruction I, after "cycle B; cycle I" the
// architectural state is PC = target(B), with I's effects fully applied
// and no side effect from B beyond the branch itself.
func TestDelaySlotInvariant(t *testing.T) {
	cpu, bus := newTestCPU()
	cpu.reg[RegPC] = 0x400
	cpu.SetReg(RegR0+5, 5)
	writeWord(bus, 0x400, 0xA010)         // BRA +16 -> target 0x400+4+0x20 = 0x424
	writeWord(bus, 0x402, 0x7503)         // delay slot: ADD #3,R5

	cpu.Cycle() // B
	cpu.Cycle() // I (delay slot)

	if got := cpu.Reg(RegPC); got != 0x424 {
		t.Fatalf("PC = %#x, want 0x424", got)
	}
	if got := cpu.Reg(RegR0 + 5); got != 8 {
		t.Errorf("R5 = %d, want 8 (delay-slot ADD must have applied)", got)
	}
}

// TestMOVStoreLoadRoundTrip stores a long with MOV.L Rm,@Rn and reads it
// back with MOV.L @Rm,Rn.
func TestMOVStoreLoadRoundTrip(t *testing.T) {
	cpu, bus := newTestCPU()
	cpu.SetReg(RegR0+1, 0x3000) // address register
	cpu.SetReg(RegR0+2, 0xDEADBEEF)

	step(cpu, bus, 0x2122) // MOV.L R2,@R1
	if got := bus.Read32(0x3000); got != 0xDEADBEEF {
		t.Fatalf("stored value = %#x, want 0xDEADBEEF", got)
	}

	cpu.SetReg(RegR0+3, 0)
	step(cpu, bus, 0x6312) // MOV.L @R1,R3
	if got := cpu.Reg(RegR0 + 3); got != 0xDEADBEEF {
		t.Errorf("loaded value = %#x, want 0xDEADBEEF", got)
	}
}

// TestMACLAccumulates checks that MAC.L adds into the existing MACH:MACL
// accumulator rather than overwriting it, and that both pointers advance.
func TestMACLAccumulates(t *testing.T) {
	cpu, bus := newTestCPU()
	cpu.SetReg(RegMACH, 0)
	cpu.SetReg(RegMACL, 10)
	cpu.SetReg(RegR0, 0x5000)
	cpu.SetReg(RegR0+1, 0x6000)
	bus.Write32(0x5000, 3)
	bus.Write32(0x6000, 4)

	step(cpu, bus, 0x010F) // MAC.L @R0+,@R1+

	if got := cpu.Reg(RegMACL); got != 22 { // 10 + 3*4
		t.Errorf("MACL = %d, want 22", got)
	}
	if got := cpu.Reg(RegR0); got != 0x5004 {
		t.Errorf("R0 = %#x, want 0x5004 (pointer not advanced)", got)
	}
	if got := cpu.Reg(RegR0 + 1); got != 0x6004 {
		t.Errorf("R1 = %#x, want 0x6004 (pointer not advanced)", got)
	}
}

// TestTASOrsInMSBRatherThanOverwriting guards against TAS.B writing a
// literal 0x80 instead of setting only the byte's MSB: on a non-zero low
// nibble, the two differ.
func TestTASOrsInMSBRatherThanOverwriting(t *testing.T) {
	cpu, bus := newTestCPU()
	bus.Write8(0x200, 0x01)
	cpu.SetReg(RegR0+3, 0x200)
	step(cpu, bus, 0x431B) // TAS.B @R3

	if cpu.t() {
		t.Errorf("T = true, want false (initial byte was nonzero)")
	}
	if got := bus.Read8(0x200); got != 0x81 {
		t.Errorf("byte at 0x200 = %#x, want 0x81 (0x01 | 0x80)", got)
	}
}

// TestJSRRTSRoundTrip guards against PR being recorded as the delay
// slot's own address instead of PC+2 (the address of the instruction
// following the delay slot). A wrong PR makes RTS resume execution back
// inside the delay slot rather than after it.
func TestJSRRTSRoundTrip(t *testing.T) {
	cpu, bus := newTestCPU()
	cpu.reg[RegPC] = 0x1000
	cpu.SetReg(RegR0+1, 0x2000) // JSR target
	writeWord(bus, 0x1000, 0x410B) // JSR @R1
	writeWord(bus, 0x1002, 0x0009) // delay slot: NOP
	writeWord(bus, 0x2000, 0x000B) // RTS
	writeWord(bus, 0x2002, 0x0009) // delay slot: NOP

	cpu.Cycle() // JSR: queues target 0x2000, PR should become 0x1004
	if got := cpu.Reg(RegPR); got != 0x1004 {
		t.Fatalf("PR = %#x, want 0x1004 (PC+2, not the delay slot's own address)", got)
	}

	cpu.Cycle() // delay-slot NOP, consumes the queued target
	if got := cpu.Reg(RegPC); got != 0x2000 {
		t.Fatalf("PC = %#x, want 0x2000 after JSR's delay slot", got)
	}

	cpu.Cycle() // RTS: queues target PR = 0x1004
	cpu.Cycle() // delay-slot NOP, consumes the queued target

	if got := cpu.Reg(RegPC); got != 0x1004 {
		t.Errorf("PC = %#x, want 0x1004 (the instruction after JSR's delay slot)", got)
	}
}

// TestBSRFSetsPRToInstructionAfterDelaySlot covers the same PR bug for
// the register-indirect delayed-call form.
func TestBSRFSetsPRToInstructionAfterDelaySlot(t *testing.T) {
	cpu, bus := newTestCPU()
	cpu.reg[RegPC] = 0x3000
	cpu.SetReg(RegR0+2, 0x100) // BSRF displacement register
	writeWord(bus, 0x3000, 0x0003|2<<8) // BSRF R2
	writeWord(bus, 0x3002, 0x0009)      // delay slot: NOP

	cpu.Cycle() // BSRF
	if got := cpu.Reg(RegPR); got != 0x3004 {
		t.Fatalf("PR = %#x, want 0x3004 (PC+2, not the delay slot's own address)", got)
	}
}
