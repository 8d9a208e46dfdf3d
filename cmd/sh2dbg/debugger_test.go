package main

import (
	"testing"

	"github.com/sh2core/sh2"
	"github.com/sh2core/sh2/membus"
)

func TestStepRecordsTheExecutedOpcode(t *testing.T) {
	ram := membus.NewRAM(1024)
	ram.Write16(0, 0x0009) // NOP
	cpu, err := sh2.New(ram)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	cpu.PowerOn()
	cpu.SetReg(sh2.RegPC, 0)

	dbg := NewDebugger(cpu, ram, 8)
	defer dbg.Close()
	dbg.Step()

	entries := dbg.Trace.Recent(1)
	if len(entries) != 1 {
		t.Fatalf("Recent(1) returned %d entries, want 1", len(entries))
	}
	if got := entries[0].Opcode; got != 0x0009 {
		t.Errorf("Opcode = %#04x, want 0x0009 (NOP actually executed)", got)
	}
}
