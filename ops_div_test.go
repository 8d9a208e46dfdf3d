package sh2

import "testing"

// TestDIV0SSeedsQMFromOperandSigns covers DIV0S's four sign combinations:
// same-sign operands leave T clear, differing signs set it.
func TestDIV0SSeedsQMFromOperandSigns(t *testing.T) {
	cases := []struct {
		name   string
		rn, rm uint32
		wantQ  bool
		wantM  bool
		wantT  bool
	}{
		{"both positive", 0x7FFFFFFF, 0x00000001, false, false, false},
		{"rn negative, rm positive", 0x80000000, 0x00000001, true, false, true},
		{"rn positive, rm negative", 0x7FFFFFFF, 0x80000000, false, true, true},
		{"both negative", 0x80000000, 0x80000001, true, true, false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			cpu, bus := newTestCPU()
			cpu.SetReg(RegR0+1, c.rn)
			cpu.SetReg(RegR0+2, c.rm)
			step(cpu, bus, 0x2127) // DIV0S R2,R1

			if got := cpu.q(); got != c.wantQ {
				t.Errorf("Q = %v, want %v", got, c.wantQ)
			}
			if got := cpu.m(); got != c.wantM {
				t.Errorf("M = %v, want %v", got, c.wantM)
			}
			if got := cpu.t(); got != c.wantT {
				t.Errorf("T = %v, want %v", got, c.wantT)
			}
		})
	}
}

// TestDIV0UClearsQMT guards against DIV0U leaving stale Q/M/T from a prior
// DIV0S/DIV1 sequence.
func TestDIV0UClearsQMT(t *testing.T) {
	cpu, bus := newTestCPU()
	cpu.setQ(true)
	cpu.setM(true)
	cpu.setT(true)

	step(cpu, bus, 0x0019) // DIV0U

	if cpu.q() {
		t.Errorf("Q = true, want false")
	}
	if cpu.m() {
		t.Errorf("M = true, want false")
	}
	if cpu.t() {
		t.Errorf("T = true, want false")
	}
}

// TestDIV1AllFourQMCases drives opDIV1 through each of the four (oldQ,oldM)
// branches of its conditional cascade, with Rn=10, Rm=3, T=0 held fixed so
// only the branch dispatch varies. Expected Rn/Q/T were hand-derived from
// the restoring-division algorithm for each case.
func TestDIV1AllFourQMCases(t *testing.T) {
	cases := []struct {
		name   string
		oldQ   bool
		oldM   bool
		wantRn uint32
		wantQ  bool
		wantT  bool
	}{
		{"Q=0,M=0: subtract, no borrow", false, false, 17, false, true},
		{"Q=0,M=1: add, no overflow", false, true, 23, true, true},
		{"Q=1,M=0: add, no overflow", true, false, 23, false, true},
		{"Q=1,M=1: subtract, no borrow", true, true, 17, true, true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			cpu, bus := newTestCPU()
			cpu.SetReg(RegR0+1, 10) // Rn
			cpu.SetReg(RegR0+2, 3)  // Rm
			cpu.setQ(c.oldQ)
			cpu.setM(c.oldM)
			cpu.setT(false)

			step(cpu, bus, 0x3124) // DIV1 R2,R1

			if got := cpu.Reg(RegR0 + 1); got != c.wantRn {
				t.Errorf("Rn = %d, want %d", got, c.wantRn)
			}
			if got := cpu.q(); got != c.wantQ {
				t.Errorf("Q = %v, want %v", got, c.wantQ)
			}
			if got := cpu.t(); got != c.wantT {
				t.Errorf("T = %v, want %v", got, c.wantT)
			}
			if got := cpu.m(); got != c.oldM {
				t.Errorf("M = %v, want %v (DIV1 must not touch M)", got, c.oldM)
			}
		})
	}
}
