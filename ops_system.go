package sh2

func init() {
	registerNoOperand()
	registerTRAPA()
	registerSTC()
	registerLDC()
	registerSTS()
	registerLDS()
	registerMOVT()
}

// --- Fixed-encoding, no-operand instructions. Each occupies exactly one
// opcode value; none of the register-field helpers apply. ---

func registerNoOperand() {
	opcodeTable[0x0009] = opNOP
	opcodeTable[0x001B] = opSLEEP
	opcodeTable[0x0008] = opCLRT
	opcodeTable[0x0018] = opSETT
	opcodeTable[0x002B] = opRTE
}

func opNOP(c *CPU) {}

func opSLEEP(c *CPU) {
	c.state = StateSleep
}

func opCLRT(c *CPU) {
	c.setT(false)
}

func opSETT(c *CPU) {
	c.setT(true)
}

// opRTE is a delayed branch: the instruction following it executes
// before control returns to the interrupted code. SR is restored
// immediately (it isn't part of the delay), PC is queued like any other
// delayed-branch target. Stack order mirrors exception entry, which
// always pushes SR before PC: RTE pops PC first, then SR.
func opRTE(c *CPU) {
	if c.checkDelaySlot() {
		return
	}
	pc := c.popLong()
	sr := c.popLong()
	c.setSR(sr)
	c.delayTarget = pc
	c.delayPending = true
	c.state = StateProgramExecution
}

// --- TRAPA #imm: software trap. Pushes SR and the return address (the
// instruction after TRAPA, which by executor time is already the live
// PC), then vectors to VBR + 0x80 + imm*4. Not a delayed branch. ---

func registerTRAPA() {
	setImm8(0xC300, opTRAPA)
}

func opTRAPA(c *CPU) {
	c.pushLong(c.reg[RegSR])
	c.pushLong(c.reg[RegPC])
	c.state = StateExceptionProcessing
	c.reg[RegPC] = c.reg[RegVBR] + vecTRAPABase + 4*uint32(c.decodeImm8())
}

// --- STC SR/GBR/VBR,Rn and STC.L SR/GBR/VBR,@-Rn ---

func registerSTC() {
	setRn(0x0002, opSTCSR)
	setRn(0x0012, opSTCGBR)
	setRn(0x0022, opSTCVBR)
	setRn(0x4003, opSTCLSR)
	setRn(0x4013, opSTCLGBR)
	setRn(0x4023, opSTCLVBR)
}

func opSTCSR(c *CPU)  { c.SetReg(int(c.decodeN()), c.Reg(RegSR)) }
func opSTCGBR(c *CPU) { c.SetReg(int(c.decodeN()), c.Reg(RegGBR)) }
func opSTCVBR(c *CPU) { c.SetReg(int(c.decodeN()), c.Reg(RegVBR)) }

func opSTCLSR(c *CPU) {
	n := int(c.decodeN())
	addr := c.Reg(n) - 4
	c.bus.Write32(addr, c.Reg(RegSR))
	c.SetReg(n, addr)
}

func opSTCLGBR(c *CPU) {
	n := int(c.decodeN())
	addr := c.Reg(n) - 4
	c.bus.Write32(addr, c.Reg(RegGBR))
	c.SetReg(n, addr)
}

func opSTCLVBR(c *CPU) {
	n := int(c.decodeN())
	addr := c.Reg(n) - 4
	c.bus.Write32(addr, c.Reg(RegVBR))
	c.SetReg(n, addr)
}

// --- LDC Rm,SR/GBR/VBR and LDC.L @Rm+,SR/GBR/VBR ---

func registerLDC() {
	setRn(0x400E, opLDCSR)
	setRn(0x401E, opLDCGBR)
	setRn(0x402E, opLDCVBR)
	setRn(0x4007, opLDCLSR)
	setRn(0x4017, opLDCLGBR)
	setRn(0x4027, opLDCLVBR)
}

func opLDCSR(c *CPU)  { c.setSR(c.Reg(int(c.decodeN()))) }
func opLDCGBR(c *CPU) { c.SetReg(RegGBR, c.Reg(int(c.decodeN()))) }
func opLDCVBR(c *CPU) { c.SetReg(RegVBR, c.Reg(int(c.decodeN()))) }

func opLDCLSR(c *CPU) {
	m := int(c.decodeN())
	addr := c.Reg(m)
	c.setSR(c.bus.Read32(addr))
	c.SetReg(m, addr+4)
}

func opLDCLGBR(c *CPU) {
	m := int(c.decodeN())
	addr := c.Reg(m)
	c.SetReg(RegGBR, c.bus.Read32(addr))
	c.SetReg(m, addr+4)
}

func opLDCLVBR(c *CPU) {
	m := int(c.decodeN())
	addr := c.Reg(m)
	c.SetReg(RegVBR, c.bus.Read32(addr))
	c.SetReg(m, addr+4)
}

// --- STS MACH/MACL/PR,Rn and STS.L MACH/MACL/PR,@-Rn ---

func registerSTS() {
	setRn(0x000A, opSTSMACH)
	setRn(0x001A, opSTSMACL)
	setRn(0x002A, opSTSPR)
	setRn(0x4002, opSTSLMACH)
	setRn(0x4012, opSTSLMACL)
	setRn(0x4022, opSTSLPR)
}

func opSTSMACH(c *CPU) { c.SetReg(int(c.decodeN()), c.Reg(RegMACH)) }
func opSTSMACL(c *CPU) { c.SetReg(int(c.decodeN()), c.Reg(RegMACL)) }
func opSTSPR(c *CPU)   { c.SetReg(int(c.decodeN()), c.Reg(RegPR)) }

func opSTSLMACH(c *CPU) {
	n := int(c.decodeN())
	addr := c.Reg(n) - 4
	c.bus.Write32(addr, c.Reg(RegMACH))
	c.SetReg(n, addr)
}

func opSTSLMACL(c *CPU) {
	n := int(c.decodeN())
	addr := c.Reg(n) - 4
	c.bus.Write32(addr, c.Reg(RegMACL))
	c.SetReg(n, addr)
}

func opSTSLPR(c *CPU) {
	n := int(c.decodeN())
	addr := c.Reg(n) - 4
	c.bus.Write32(addr, c.Reg(RegPR))
	c.SetReg(n, addr)
}

// --- LDS Rm,MACH/MACL/PR and LDS.L @Rm+,MACH/MACL/PR ---

func registerLDS() {
	setRn(0x400A, opLDSMACH)
	setRn(0x401A, opLDSMACL)
	setRn(0x402A, opLDSPR)
	setRn(0x4006, opLDSLMACH)
	setRn(0x4016, opLDSLMACL)
	setRn(0x4026, opLDSLPR)
}

func opLDSMACH(c *CPU) { c.SetReg(RegMACH, c.Reg(int(c.decodeN()))) }
func opLDSMACL(c *CPU) { c.SetReg(RegMACL, c.Reg(int(c.decodeN()))) }
func opLDSPR(c *CPU)   { c.SetReg(RegPR, c.Reg(int(c.decodeN()))) }

func opLDSLMACH(c *CPU) {
	m := int(c.decodeN())
	addr := c.Reg(m)
	c.SetReg(RegMACH, c.bus.Read32(addr))
	c.SetReg(m, addr+4)
}

func opLDSLMACL(c *CPU) {
	m := int(c.decodeN())
	addr := c.Reg(m)
	c.SetReg(RegMACL, c.bus.Read32(addr))
	c.SetReg(m, addr+4)
}

func opLDSLPR(c *CPU) {
	m := int(c.decodeN())
	addr := c.Reg(m)
	c.SetReg(RegPR, c.bus.Read32(addr))
	c.SetReg(m, addr+4)
}

// --- MOVT Rn: Rn = T ---

func registerMOVT() {
	setRn(0x0029, opMOVT)
}

func opMOVT(c *CPU) {
	v := uint32(0)
	if c.t() {
		v = 1
	}
	c.SetReg(int(c.decodeN()), v)
}
