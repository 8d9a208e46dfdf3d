// Debugger state and breakpoint evaluation for sh2dbg.
//
// Grounded on golc3's pkg/debugger (Debugger.Step/Read/Write scanning a
// Breakpoints/Watchpoints slice against *machine.Machine) and on
// IntuitionAmiga-IntuitionEngine's debug_monitor.go scrollback/history
// idiom, adapted to a single in-process CPU rather than golc3's
// callback-driven HandleBreak hooks: sh2dbg drives the loop itself
// instead of handing control back to the machine between breaks.
package main

import (
	"fmt"

	lua "github.com/yuin/gopher-lua"

	"github.com/sh2core/sh2"
	"github.com/sh2core/sh2/internal/trace"
)

// Breakpoint stops the REPL's continue/step-until loop when PC reaches
// Addr. An empty Cond always fires; a non-empty Cond is a Lua boolean
// expression evaluated against the register snapshot (r0-r15, sr, pr,
// gbr, vbr, pc) at the moment PC matches.
type Breakpoint struct {
	Addr uint32
	Cond string
}

// Debugger wraps a *sh2.CPU with breakpoint bookkeeping and a retired-
// instruction trace ring.
type Debugger struct {
	CPU   *sh2.CPU
	Bus   sh2.Bus
	Trace *trace.Ring

	Breakpoints []Breakpoint
	lua         *lua.LState
}

// NewDebugger wires a debugger around cpu (reading and writing memory
// through bus, the same bus the CPU itself uses), with a history ring of
// the given capacity.
func NewDebugger(cpu *sh2.CPU, bus sh2.Bus, historyCap int) *Debugger {
	return &Debugger{
		CPU:   cpu,
		Bus:   bus,
		Trace: trace.NewRing(historyCap),
		lua:   lua.NewState(),
	}
}

// Close releases the Lua interpreter used for conditional breakpoints.
func (d *Debugger) Close() {
	d.lua.Close()
}

// Step executes exactly one instruction, recording it in the trace ring.
func (d *Debugger) Step() {
	d.CPU.Cycle()
	regs := d.CPU.Registers()
	d.Trace.Push(trace.Entry{
		PC:        regs.PC,
		Opcode:    d.CPU.LastOpcode(),
		SR:        regs.SR,
		Registers: regs.R,
	})
}

// Run steps until a breakpoint fires, the CPU enters Sleep or Standby, or
// maxSteps steps have run (0 means no step limit), returning the
// breakpoint that matched, or nil if the run stopped for another reason.
// Entering ExceptionProcessing does not stop the run.
func (d *Debugger) Run(maxSteps int) *Breakpoint {
	for i := 0; i < maxSteps || maxSteps == 0; i++ {
		d.Step()
		if bp := d.hitBreakpoint(); bp != nil {
			return bp
		}
		if d.CPU.State() == sh2.StateSleep || d.CPU.State() == sh2.StateStandby {
			return nil
		}
	}
	return nil
}

// hitBreakpoint returns the first breakpoint whose address matches the
// current PC and whose condition (if any) evaluates true.
func (d *Debugger) hitBreakpoint() *Breakpoint {
	pc := d.CPU.Reg(sh2.RegPC)
	for i := range d.Breakpoints {
		bp := &d.Breakpoints[i]
		if bp.Addr != pc {
			continue
		}
		if bp.Cond == "" {
			return bp
		}
		if ok, err := d.evalCondition(bp.Cond); err == nil && ok {
			return bp
		}
	}
	return nil
}

// evalCondition runs expr as a Lua boolean expression, with r0-r15, sr,
// pr, gbr, vbr, and pc bound as global numbers from the live register
// file.
func (d *Debugger) evalCondition(expr string) (bool, error) {
	regs := d.CPU.Registers()
	for i, v := range regs.R {
		d.lua.SetGlobal(fmt.Sprintf("r%d", i), lua.LNumber(v))
	}
	d.lua.SetGlobal("sr", lua.LNumber(regs.SR))
	d.lua.SetGlobal("pr", lua.LNumber(regs.PR))
	d.lua.SetGlobal("gbr", lua.LNumber(regs.GBR))
	d.lua.SetGlobal("vbr", lua.LNumber(regs.VBR))
	d.lua.SetGlobal("pc", lua.LNumber(regs.PC))

	if err := d.lua.DoString("__sh2dbg_cond = (" + expr + ")"); err != nil {
		return false, err
	}
	result := d.lua.GetGlobal("__sh2dbg_cond")
	return lua.LVAsBool(result), nil
}
