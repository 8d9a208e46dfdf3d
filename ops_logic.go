package sh2

func init() {
	registerLogicReg()
	registerLogicImm()
	registerLogicGBR()
	registerNOT()
}

// --- AND/OR/XOR/TST Rm,Rn ---

func registerLogicReg() {
	setRnRm(0x2009, opAND)
	setRnRm(0x200B, opOR)
	setRnRm(0x200A, opXOR)
	setRnRm(0x2008, opTST)
}

func opAND(c *CPU) {
	n := int(c.decodeN())
	c.SetReg(n, c.Reg(n)&c.Reg(int(c.decodeM())))
}

func opOR(c *CPU) {
	n := int(c.decodeN())
	c.SetReg(n, c.Reg(n)|c.Reg(int(c.decodeM())))
}

func opXOR(c *CPU) {
	n := int(c.decodeN())
	c.SetReg(n, c.Reg(n)^c.Reg(int(c.decodeM())))
}

func opTST(c *CPU) {
	c.setT(c.Reg(int(c.decodeN()))&c.Reg(int(c.decodeM())) == 0)
}

// --- AND/OR/XOR/TST #imm,R0 ---

func registerLogicImm() {
	setImm8(0xC900, opANDImm)
	setImm8(0xCB00, opORImm)
	setImm8(0xCA00, opXORImm)
	setImm8(0xC800, opTSTImm)
}

func opANDImm(c *CPU) {
	c.SetReg(RegR0, c.Reg(RegR0)&uint32(c.decodeImm8()))
}

func opORImm(c *CPU) {
	c.SetReg(RegR0, c.Reg(RegR0)|uint32(c.decodeImm8()))
}

func opXORImm(c *CPU) {
	c.SetReg(RegR0, c.Reg(RegR0)^uint32(c.decodeImm8()))
}

func opTSTImm(c *CPU) {
	c.setT(c.Reg(RegR0)&uint32(c.decodeImm8()) == 0)
}

// --- AND.B/OR.B/XOR.B/TST.B #imm,@(R0,GBR) ---

func registerLogicGBR() {
	setImm8(0xCD00, opANDBGBR)
	setImm8(0xCF00, opORBGBR)
	setImm8(0xCE00, opXORBGBR)
	setImm8(0xCC00, opTSTBGBR)
}

func opANDBGBR(c *CPU) {
	addr := c.Reg(RegGBR) + c.Reg(RegR0)
	c.bus.Write8(addr, c.bus.Read8(addr)&uint8(c.decodeImm8()))
}

func opORBGBR(c *CPU) {
	addr := c.Reg(RegGBR) + c.Reg(RegR0)
	c.bus.Write8(addr, c.bus.Read8(addr)|uint8(c.decodeImm8()))
}

func opXORBGBR(c *CPU) {
	addr := c.Reg(RegGBR) + c.Reg(RegR0)
	c.bus.Write8(addr, c.bus.Read8(addr)^uint8(c.decodeImm8()))
}

func opTSTBGBR(c *CPU) {
	addr := c.Reg(RegGBR) + c.Reg(RegR0)
	c.setT(c.bus.Read8(addr)&uint8(c.decodeImm8()) == 0)
}

// --- NOT Rm,Rn ---

func registerNOT() {
	setRnRm(0x6007, opNOT)
}

func opNOT(c *CPU) {
	c.SetReg(int(c.decodeN()), ^c.Reg(int(c.decodeM())))
}
