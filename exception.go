package sh2

import "log"

// Exception vector offsets from VBR. Unlike the power-on/soft-reset
// vectors (which hold the PC/SP value directly), these are jumped to
// directly: PC is set to VBR+offset, not to a handler address read from
// that location. This matches the vector table laid out in the bus
// contract (§6): the handler code itself begins at the offset.
const (
	vecIllegalInstruction = 0x10
	vecIllegalSlot        = 0x18
	vecNMI                = 0x2C
	vecTRAPABase          = 0x80
	vecIRQBase            = 0x100
)

// illegalInstruction raises an illegal-instruction exception: the
// decoder found no executor for the current opcode. Pushes SR and the
// address of the faulting instruction.
func (c *CPU) illegalInstruction() {
	log.Printf("sh2: illegal instruction %#04x at pc=%#08x", c.ir, c.curPC)
	c.pushLong(c.reg[RegSR])
	c.pushLong(c.curPC)
	c.state = StateExceptionProcessing
	c.reg[RegPC] = c.reg[RegVBR] + vecIllegalInstruction
}

// checkDelaySlot raises an illegal-slot-instruction exception if the
// instruction currently executing sits in a delay slot (CHECK_DELAY_SLOT_PC
// rule: a branch in a delay slot is always illegal). Every branch
// executor must call this first and return immediately if it reports a
// fault. The pushed PC is the enclosing branch's target (c.slotDelay),
// not the address of the faulting instruction itself. Returns true if
// the exception was raised.
func (c *CPU) checkDelaySlot() bool {
	if !c.slotPending {
		return false
	}
	c.pushLong(c.reg[RegSR])
	c.pushLong(c.slotDelay)
	c.state = StateExceptionProcessing
	c.reg[RegPC] = c.reg[RegVBR] + vecIllegalSlot
	return true
}
