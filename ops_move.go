package sh2

func init() {
	registerMOVReg()
	registerMOVImm()
	registerMOVLoadStore()
	registerMOVIndexed()
	registerMOVPCRelative()
	registerMOVGBRRelative()
	registerMOVR0Disp()
	registerMOVLDisp()
}

// --- MOV Rm,Rn ---

func registerMOVReg() {
	setRnRm(0x6003, opMOVReg)
}

func opMOVReg(c *CPU) {
	c.SetReg(int(c.decodeN()), c.Reg(int(c.decodeM())))
}

// --- MOV #imm,Rn --- (top nibble 0xE: fully owned by this one form)

func registerMOVImm() {
	setTopNibble(0xE, opMOVImm)
}

func opMOVImm(c *CPU) {
	c.SetReg(int(c.decodeN()), signExtend8(uint8(c.decodeImm8())))
}

// --- MOV.B/W/L Rm,@Rn, @Rm,Rn, @-Rn, @Rm+ ---

func registerMOVLoadStore() {
	setRnRm(0x2000, opMOVBStore)
	setRnRm(0x2001, opMOVWStore)
	setRnRm(0x2002, opMOVLStore)
	setRnRm(0x6000, opMOVBLoad)
	setRnRm(0x6001, opMOVWLoad)
	setRnRm(0x6002, opMOVLLoad)
	setRnRm(0x2004, opMOVBStoreDec)
	setRnRm(0x2005, opMOVWStoreDec)
	setRnRm(0x2006, opMOVLStoreDec)
	setRnRm(0x6004, opMOVBLoadInc)
	setRnRm(0x6005, opMOVWLoadInc)
	setRnRm(0x6006, opMOVLLoadInc)
}

func opMOVBStore(c *CPU) {
	c.bus.Write8(c.Reg(int(c.decodeN())), uint8(c.Reg(int(c.decodeM()))))
}

func opMOVWStore(c *CPU) {
	c.bus.Write16(c.Reg(int(c.decodeN())), uint16(c.Reg(int(c.decodeM()))))
}

func opMOVLStore(c *CPU) {
	c.bus.Write32(c.Reg(int(c.decodeN())), c.Reg(int(c.decodeM())))
}

func opMOVBLoad(c *CPU) {
	c.SetReg(int(c.decodeN()), signExtend8(c.bus.Read8(c.Reg(int(c.decodeM())))))
}

func opMOVWLoad(c *CPU) {
	c.SetReg(int(c.decodeN()), signExtend16(c.bus.Read16(c.Reg(int(c.decodeM())))))
}

func opMOVLLoad(c *CPU) {
	c.SetReg(int(c.decodeN()), c.bus.Read32(c.Reg(int(c.decodeM()))))
}

func opMOVBStoreDec(c *CPU) {
	n := int(c.decodeN())
	addr := c.Reg(n) - 1
	c.bus.Write8(addr, uint8(c.Reg(int(c.decodeM()))))
	c.SetReg(n, addr)
}

func opMOVWStoreDec(c *CPU) {
	n := int(c.decodeN())
	addr := c.Reg(n) - 2
	c.bus.Write16(addr, uint16(c.Reg(int(c.decodeM()))))
	c.SetReg(n, addr)
}

func opMOVLStoreDec(c *CPU) {
	n := int(c.decodeN())
	addr := c.Reg(n) - 4
	c.bus.Write32(addr, c.Reg(int(c.decodeM())))
	c.SetReg(n, addr)
}

func opMOVBLoadInc(c *CPU) {
	m := int(c.decodeM())
	addr := c.Reg(m)
	val := signExtend8(c.bus.Read8(addr))
	c.SetReg(m, addr+1)
	c.SetReg(int(c.decodeN()), val)
}

func opMOVWLoadInc(c *CPU) {
	m := int(c.decodeM())
	addr := c.Reg(m)
	val := signExtend16(c.bus.Read16(addr))
	c.SetReg(m, addr+2)
	c.SetReg(int(c.decodeN()), val)
}

func opMOVLLoadInc(c *CPU) {
	m := int(c.decodeM())
	addr := c.Reg(m)
	val := c.bus.Read32(addr)
	c.SetReg(m, addr+4)
	c.SetReg(int(c.decodeN()), val)
}

// --- MOV.B/W/L Rm,@(R0,Rn) and @(R0,Rm),Rn ---

func registerMOVIndexed() {
	setRnRm(0x0004, opMOVBStoreR0)
	setRnRm(0x0005, opMOVWStoreR0)
	setRnRm(0x0006, opMOVLStoreR0)
	setRnRm(0x000C, opMOVBLoadR0)
	setRnRm(0x000D, opMOVWLoadR0)
	setRnRm(0x000E, opMOVLLoadR0)
}

func opMOVBStoreR0(c *CPU) {
	c.bus.Write8(c.Reg(int(c.decodeN()))+c.Reg(RegR0), uint8(c.Reg(int(c.decodeM()))))
}

func opMOVWStoreR0(c *CPU) {
	c.bus.Write16(c.Reg(int(c.decodeN()))+c.Reg(RegR0), uint16(c.Reg(int(c.decodeM()))))
}

func opMOVLStoreR0(c *CPU) {
	c.bus.Write32(c.Reg(int(c.decodeN()))+c.Reg(RegR0), c.Reg(int(c.decodeM())))
}

func opMOVBLoadR0(c *CPU) {
	c.SetReg(int(c.decodeN()), signExtend8(c.bus.Read8(c.Reg(int(c.decodeM()))+c.Reg(RegR0))))
}

func opMOVWLoadR0(c *CPU) {
	c.SetReg(int(c.decodeN()), signExtend16(c.bus.Read16(c.Reg(int(c.decodeM()))+c.Reg(RegR0))))
}

func opMOVLLoadR0(c *CPU) {
	c.SetReg(int(c.decodeN()), c.bus.Read32(c.Reg(int(c.decodeM()))+c.Reg(RegR0)))
}

// --- MOV.W/L @(disp,PC),Rn, and MOVA @(disp,PC),R0 ---

func registerMOVPCRelative() {
	setTopNibble(0x9, opMOVWLoadPC)
	setTopNibble(0xD, opMOVLLoadPC)
	setImm8(0xC700, opMOVA)
}

func opMOVWLoadPC(c *CPU) {
	base := c.Reg(RegPC) // already advanced past this instruction
	addr := base + 2*uint32(c.decodeImm8())
	c.SetReg(int(c.decodeN()), signExtend16(c.bus.Read16(addr)))
}

func opMOVLLoadPC(c *CPU) {
	base := c.Reg(RegPC) & ^uint32(3)
	addr := base + 4*uint32(c.decodeImm8())
	c.SetReg(int(c.decodeN()), c.bus.Read32(addr))
}

func opMOVA(c *CPU) {
	base := c.Reg(RegPC) & ^uint32(3)
	c.SetReg(RegR0, base+4*uint32(c.decodeImm8()))
}

// --- MOV.B/W/L R0,@(disp,GBR) and @(disp,GBR),R0 ---

func registerMOVGBRRelative() {
	setImm8(0xC000, opMOVBStoreGBR)
	setImm8(0xC100, opMOVWStoreGBR)
	setImm8(0xC200, opMOVLStoreGBR)
	setImm8(0xC400, opMOVBLoadGBR)
	setImm8(0xC500, opMOVWLoadGBR)
	setImm8(0xC600, opMOVLLoadGBR)
}

func opMOVBStoreGBR(c *CPU) {
	c.bus.Write8(c.Reg(RegGBR)+uint32(c.decodeImm8()), uint8(c.Reg(RegR0)))
}

func opMOVWStoreGBR(c *CPU) {
	c.bus.Write16(c.Reg(RegGBR)+2*uint32(c.decodeImm8()), uint16(c.Reg(RegR0)))
}

func opMOVLStoreGBR(c *CPU) {
	c.bus.Write32(c.Reg(RegGBR)+4*uint32(c.decodeImm8()), c.Reg(RegR0))
}

func opMOVBLoadGBR(c *CPU) {
	c.SetReg(RegR0, signExtend8(c.bus.Read8(c.Reg(RegGBR)+uint32(c.decodeImm8()))))
}

func opMOVWLoadGBR(c *CPU) {
	c.SetReg(RegR0, signExtend16(c.bus.Read16(c.Reg(RegGBR)+2*uint32(c.decodeImm8()))))
}

func opMOVLLoadGBR(c *CPU) {
	c.SetReg(RegR0, c.bus.Read32(c.Reg(RegGBR)+4*uint32(c.decodeImm8())))
}

// --- MOV.B/W R0,@(disp,Rn) and @(disp,Rm),R0 ---

func registerMOVR0Disp() {
	setRegDisp4(0x8000, opMOVBStoreDisp)
	setRegDisp4(0x8100, opMOVWStoreDisp)
	setRegDisp4(0x8400, opMOVBLoadDisp)
	setRegDisp4(0x8500, opMOVWLoadDisp)
}

func opMOVBStoreDisp(c *CPU) {
	n := int(c.decodeM()) // reg field sits at bits 7-4 in this 8xxx form
	c.bus.Write8(c.Reg(n)+uint32(c.decodeD()), uint8(c.Reg(RegR0)))
}

func opMOVWStoreDisp(c *CPU) {
	n := int(c.decodeM())
	c.bus.Write16(c.Reg(n)+2*uint32(c.decodeD()), uint16(c.Reg(RegR0)))
}

func opMOVBLoadDisp(c *CPU) {
	m := int(c.decodeM())
	c.SetReg(RegR0, signExtend8(c.bus.Read8(c.Reg(m)+uint32(c.decodeD()))))
}

func opMOVWLoadDisp(c *CPU) {
	m := int(c.decodeM())
	c.SetReg(RegR0, signExtend16(c.bus.Read16(c.Reg(m)+2*uint32(c.decodeD()))))
}

// --- MOV.L Rm,@(disp,Rn) and @(disp,Rm),Rn --- (top nibbles 0x1 and 0x5
// are each wholly owned by one instruction.)

func registerMOVLDisp() {
	setTopNibble(0x1, opMOVLStoreDisp)
	setTopNibble(0x5, opMOVLLoadDisp)
}

func opMOVLStoreDisp(c *CPU) {
	n := int(c.decodeN())
	c.bus.Write32(c.Reg(n)+4*uint32(c.decodeD()), c.Reg(int(c.decodeM())))
}

func opMOVLLoadDisp(c *CPU) {
	m := int(c.decodeM())
	c.SetReg(int(c.decodeN()), c.bus.Read32(c.Reg(m)+4*uint32(c.decodeD())))
}
