package sh2

func init() {
	registerCMPReg()
	registerCMPUnary()
	registerCMPImm()
}

// --- CMP/EQ,HS,GE,HI,GT,STR Rm,Rn: all set T, none write back ---

func registerCMPReg() {
	setRnRm(0x3000, opCMPEQ)
	setRnRm(0x3002, opCMPHS)
	setRnRm(0x3003, opCMPGE)
	setRnRm(0x3006, opCMPHI)
	setRnRm(0x3007, opCMPGT)
	setRnRm(0x200C, opCMPSTR)
}

func opCMPEQ(c *CPU) {
	c.setT(c.Reg(int(c.decodeN())) == c.Reg(int(c.decodeM())))
}

func opCMPHS(c *CPU) {
	c.setT(c.Reg(int(c.decodeN())) >= c.Reg(int(c.decodeM())))
}

func opCMPGE(c *CPU) {
	c.setT(int32(c.Reg(int(c.decodeN()))) >= int32(c.Reg(int(c.decodeM()))))
}

func opCMPHI(c *CPU) {
	c.setT(c.Reg(int(c.decodeN())) > c.Reg(int(c.decodeM())))
}

func opCMPGT(c *CPU) {
	c.setT(int32(c.Reg(int(c.decodeN()))) > int32(c.Reg(int(c.decodeM()))))
}

// opCMPSTR sets T if any of the four byte lanes of Rn and Rm match.
func opCMPSTR(c *CPU) {
	a := c.Reg(int(c.decodeN()))
	b := c.Reg(int(c.decodeM()))
	x := a ^ b
	match := (x&0xFF == 0) || (x&0xFF00 == 0) || (x&0xFF0000 == 0) || (x&0xFF000000 == 0)
	c.setT(match)
}

// --- CMP/PZ,PL Rn ---

func registerCMPUnary() {
	setRn(0x4011, opCMPPZ)
	setRn(0x4015, opCMPPL)
}

func opCMPPZ(c *CPU) {
	c.setT(int32(c.Reg(int(c.decodeN()))) >= 0)
}

func opCMPPL(c *CPU) {
	c.setT(int32(c.Reg(int(c.decodeN()))) > 0)
}

// --- CMP/EQ #imm,R0 ---

func registerCMPImm() {
	setImm8(0x8800, opCMPEQImm)
}

func opCMPEQImm(c *CPU) {
	c.setT(c.Reg(RegR0) == signExtend8(uint8(c.decodeImm8())))
}
