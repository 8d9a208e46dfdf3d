package sh2

func init() {
	registerBRA()
	registerBSR()
	registerBF()
	registerBT()
	registerBFS()
	registerBTS()
	registerBRAF()
	registerBSRF()
	registerJMP()
	registerJSR()
	registerRTS()
}

// Every branch executor calls checkDelaySlot first: CHECK_DELAY_SLOT_PC
// makes a branch-in-a-delay-slot an illegal-slot-instruction exception
// rather than a taken branch, regardless of how the condition would have
// resolved.

// --- BRA disp12 --- (top nibble 0xA: fully owned by this one form)

func registerBRA() {
	setTopNibble(0xA, opBRA)
}

func opBRA(c *CPU) {
	if c.checkDelaySlot() {
		return
	}
	c.delayTarget = c.Reg(RegPC) + 2 + 2*c.decodeDisp12()
	c.delayPending = true
}

// --- BSR disp12 ---

func registerBSR() {
	setTopNibble(0xB, opBSR)
}

func opBSR(c *CPU) {
	if c.checkDelaySlot() {
		return
	}
	c.SetReg(RegPR, c.Reg(RegPC)+2)
	c.delayTarget = c.Reg(RegPC) + 2 + 2*c.decodeDisp12()
	c.delayPending = true
}

// --- BF disp8 (no delay slot) ---

func registerBF() {
	setImm8(0x8B00, opBF)
}

func opBF(c *CPU) {
	if c.checkDelaySlot() {
		return
	}
	if c.t() {
		return
	}
	c.reg[RegPC] = c.Reg(RegPC) + 2 + 2*signExtend8(uint8(c.decodeImm8()))
}

// --- BT disp8 (no delay slot) ---

func registerBT() {
	setImm8(0x8900, opBT)
}

func opBT(c *CPU) {
	if c.checkDelaySlot() {
		return
	}
	if !c.t() {
		return
	}
	c.reg[RegPC] = c.Reg(RegPC) + 2 + 2*signExtend8(uint8(c.decodeImm8()))
}

// --- BF/S disp8 (delayed) ---

func registerBFS() {
	setImm8(0x8F00, opBFS)
}

func opBFS(c *CPU) {
	if c.checkDelaySlot() {
		return
	}
	if c.t() {
		return
	}
	c.delayTarget = c.Reg(RegPC) + 2 + 2*signExtend8(uint8(c.decodeImm8()))
	c.delayPending = true
}

// --- BT/S disp8 (delayed) ---

func registerBTS() {
	setImm8(0x8D00, opBTS)
}

func opBTS(c *CPU) {
	if c.checkDelaySlot() {
		return
	}
	if !c.t() {
		return
	}
	c.delayTarget = c.Reg(RegPC) + 2 + 2*signExtend8(uint8(c.decodeImm8()))
	c.delayPending = true
}

// --- BRAF Rn (delayed, register-indirect) ---

func registerBRAF() {
	setRn(0x0023, opBRAF)
}

func opBRAF(c *CPU) {
	if c.checkDelaySlot() {
		return
	}
	c.delayTarget = c.Reg(RegPC) + 2 + c.Reg(int(c.decodeN()))
	c.delayPending = true
}

// --- BSRF Rn (delayed, register-indirect) ---

func registerBSRF() {
	setRn(0x0003, opBSRF)
}

func opBSRF(c *CPU) {
	if c.checkDelaySlot() {
		return
	}
	c.SetReg(RegPR, c.Reg(RegPC)+2)
	c.delayTarget = c.Reg(RegPC) + 2 + c.Reg(int(c.decodeN()))
	c.delayPending = true
}

// --- JMP @Rn (delayed) ---

func registerJMP() {
	setRn(0x402B, opJMP)
}

func opJMP(c *CPU) {
	if c.checkDelaySlot() {
		return
	}
	c.delayTarget = c.Reg(int(c.decodeN()))
	c.delayPending = true
}

// --- JSR @Rn (delayed) ---

func registerJSR() {
	setRn(0x400B, opJSR)
}

func opJSR(c *CPU) {
	if c.checkDelaySlot() {
		return
	}
	c.SetReg(RegPR, c.Reg(RegPC)+2)
	c.delayTarget = c.Reg(int(c.decodeN()))
	c.delayPending = true
}

// --- RTS (delayed, no operand) ---

func registerRTS() {
	opcodeTable[0x000B] = opRTS
}

func opRTS(c *CPU) {
	if c.checkDelaySlot() {
		return
	}
	c.delayTarget = c.Reg(RegPR)
	c.delayPending = true
}
