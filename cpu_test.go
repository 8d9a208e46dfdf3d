package sh2

import "testing"

func TestNewRejectsNilBus(t *testing.T) {
	if _, err := New(nil); err == nil {
		t.Error("New(nil) returned no error")
	}
}

func TestStackRoundTrip(t *testing.T) {
	cpu, _ := newTestCPU()
	sp := cpu.Reg(RegSP)

	for _, v := range []uint32{0, 1, 0x7FFFFFFF, 0x80000000, 0xFFFFFFFF} {
		cpu.pushLong(v)
		got := cpu.popLong()
		if got != v {
			t.Errorf("push/pop %#x round-tripped to %#x", v, got)
		}
		if cpu.Reg(RegSP) != sp {
			t.Errorf("SP = %#x after round trip, want %#x", cpu.Reg(RegSP), sp)
		}
	}
}

func TestSignExtensionRoundTrip(t *testing.T) {
	cpu, bus := newTestCPU()
	for b := -128; b <= 127; b++ {
		step(cpu, bus, 0xE000|uint16(uint8(int8(b)))) // MOV #b,R0
		step(cpu, bus, 0x600E)                        // EXTS.B R0,R0
		want := signExtend8(uint8(int8(b)))
		if got := cpu.Reg(RegR0); got != want {
			t.Errorf("b=%d: R0 = %#x, want %#x", b, got, want)
		}
	}
}

func TestADDCCarryChain(t *testing.T) {
	cpu, bus := newTestCPU()
	cpu.SetReg(RegR0, 0xFFFFFFFF)
	cpu.SetReg(RegR0+1, 1)
	cpu.setT(false)
	step(cpu, bus, 0x301E) // ADDC R1,R0

	if got := cpu.Reg(RegR0); got != 0 {
		t.Fatalf("R0 = %#x, want 0", got)
	}
	if !cpu.t() {
		t.Fatalf("T = false after carry-out, want true")
	}

	cpu.SetReg(RegR0, 0)
	cpu.SetReg(RegR0+1, 0)
	step(cpu, bus, 0x301E) // ADDC R1,R0

	if got := cpu.Reg(RegR0); got != 1 {
		t.Errorf("R0 = %#x, want 1", got)
	}
	if cpu.t() {
		t.Errorf("T = true, want false")
	}
}

func TestDMULSMatchesTextbookProduct(t *testing.T) {
	samples := []int32{-2147483648, 2147483647, -1, 0, 1, -1024, 1024, 37, -37}
	cpu, bus := newTestCPU()

	for _, a := range samples {
		for _, b := range samples {
			cpu.SetReg(RegR0, uint32(a))
			cpu.SetReg(RegR0+1, uint32(b))
			step(cpu, bus, 0x301D) // DMULS.L R0,R1

			want := uint64(int64(a) * int64(b))
			got := uint64(cpu.Reg(RegMACH))<<32 | uint64(cpu.Reg(RegMACL))
			if got != want {
				t.Errorf("a=%d b=%d: product = %#x, want %#x", a, b, got, want)
			}
		}
	}
}

func TestIllegalSlotPushesEnclosingBranchTarget(t *testing.T) {
	cpu, bus := newTestCPU()
	cpu.reg[RegVBR] = 0x4000
	cpu.reg[RegPC] = 0x300
	writeWord(bus, 0x300, 0xA010) // BRA +16 -> target = 0x300+4+0x20 = 0x324
	writeWord(bus, 0x302, 0xA000) // delay slot: another BRA (illegal)

	cpu.Cycle() // executes the outer BRA, queues delay target 0x324
	cpu.Cycle() // executes the inner BRA sitting in the delay slot: illegal

	if got := cpu.State(); got != StateExceptionProcessing {
		t.Fatalf("state = %v, want ExceptionProcessing", got)
	}
	if got := cpu.Reg(RegPC); got != cpu.Reg(RegVBR)+0x18 {
		t.Fatalf("PC = %#x, want VBR+0x18 = %#x", got, cpu.Reg(RegVBR)+0x18)
	}

	pushedPC := bus.Read32(cpu.Reg(RegSP))
	if pushedPC != 0x324 {
		t.Errorf("pushed PC = %#x, want 0x324 (the outer branch's target)", pushedPC)
	}
}

func TestSerializeRoundTrip(t *testing.T) {
	cpu, _ := newTestCPU()
	cpu.SetReg(RegR0, 0x11223344)
	cpu.SetReg(RegPR, 0xAABBCCDD)
	cpu.setT(true)
	cpu.delayTarget = 0x500
	cpu.delayPending = true

	buf := make([]byte, cpu.SerializeSize())
	if err := cpu.Serialize(buf); err != nil {
		t.Fatalf("Serialize: %v", err)
	}

	restored := &CPU{bus: cpu.bus}
	if err := restored.Deserialize(buf); err != nil {
		t.Fatalf("Deserialize: %v", err)
	}

	if restored.Reg(RegR0) != cpu.Reg(RegR0) {
		t.Errorf("R0 = %#x, want %#x", restored.Reg(RegR0), cpu.Reg(RegR0))
	}
	if restored.Reg(RegPR) != cpu.Reg(RegPR) {
		t.Errorf("PR = %#x, want %#x", restored.Reg(RegPR), cpu.Reg(RegPR))
	}
	if !restored.t() {
		t.Errorf("T flag lost across round trip")
	}
	if !restored.delayPending || restored.delayTarget != 0x500 {
		t.Errorf("delay-slot state lost across round trip")
	}
}

func TestIRQArbitrationRespectsMask(t *testing.T) {
	cpu, bus := newTestCPU()
	cpu.reg[RegVBR] = 0x8000
	cpu.setSR((uint32(4) << srIMaskShift))
	writeWord(bus, cpu.Reg(RegPC), 0x0009) // NOP, in case the IRQ isn't accepted this cycle
	if err := cpu.IRQ(4); err != nil {
		t.Fatalf("IRQ(4): %v", err)
	}

	cpu.Cycle() // IRQ at line 4 does not exceed mask 4, stays pending
	if cpu.State() != StateProgramExecution {
		t.Fatalf("state = %v, want ProgramExecution (IRQ should not have been accepted)", cpu.State())
	}

	if err := cpu.IRQ(5); err != nil {
		t.Fatalf("IRQ(5): %v", err)
	}
	cpu.Cycle() // line 5 exceeds mask 4, accepted
	if cpu.State() != StateExceptionProcessing {
		t.Fatalf("state = %v, want ExceptionProcessing", cpu.State())
	}
	if got := cpu.Reg(RegPC); got != 0x8000+0x100+5*4 {
		t.Errorf("PC = %#x, want IRQ vector for line 5", got)
	}
}
