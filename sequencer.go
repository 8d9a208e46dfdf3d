package sh2

// Cycle advances the CPU by one instruction, or accepts one pending
// interrupt. It is a blocking, synchronous call: all register and bus
// effects of the step are observable before Cycle returns.
//
// Per state:
//   - PowerOff: no-op. PowerOn is the only way out of this state;
//     SoftReset leaves a powered-off CPU in PowerOff.
//   - ProgramExecution / ExceptionProcessing: arbitrate pending IRQs
//     first; if one is accepted, exception entry happens and no ordinary
//     instruction executes this cycle. Otherwise fetch, advance PC
//     (consuming any pending delayed-branch target), decode, execute.
//   - Sleep / Standby: arbitrate IRQs only; accepting one transitions to
//     ExceptionProcessing, otherwise the CPU stays put.
func (c *CPU) Cycle() {
	switch c.state {
	case StatePowerOff:
		return
	case StateSleep, StateStandby:
		c.arbitrateIRQ()
		return
	}

	if c.arbitrateIRQ() {
		return
	}
	c.stepInstruction()
}

// stepInstruction fetches the instruction at PC, advances PC (consuming
// a pending delay-branch target if one is set), and dispatches to the
// matching executor.
func (c *CPU) stepInstruction() {
	pending := c.delayPending
	delayed := c.delayTarget
	pc := c.reg[RegPC]
	op := c.bus.Read16(pc)

	if pending {
		c.reg[RegPC] = delayed
		c.delayTarget = 0
		c.delayPending = false
	} else {
		c.reg[RegPC] = pc + 2
	}

	c.ir = op
	c.curPC = pc
	c.slotDelay = delayed
	c.slotPending = pending

	handler := opcodeTable[op]
	if handler == nil {
		c.illegalInstruction()
		return
	}
	handler(c)
}
