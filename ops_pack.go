package sh2

func init() {
	registerSWAP()
	registerEXT()
	registerXTRCT()
	registerTAS()
}

// --- SWAP.B Rm,Rn: swaps the low two bytes; SWAP.W Rm,Rn: swaps the two
// halfwords. ---

func registerSWAP() {
	setRnRm(0x6008, opSWAPB)
	setRnRm(0x6009, opSWAPW)
}

func opSWAPB(c *CPU) {
	v := c.Reg(int(c.decodeM()))
	swapped := (v & 0xFFFF0000) | (v&0xFF)<<8 | (v&0xFF00)>>8
	c.SetReg(int(c.decodeN()), swapped)
}

func opSWAPW(c *CPU) {
	v := c.Reg(int(c.decodeM()))
	swapped := v<<16 | v>>16
	c.SetReg(int(c.decodeN()), swapped)
}

// --- EXTS.B/W, EXTU.B/W Rm,Rn: sign- or zero-extend the low byte/word of
// Rm into Rn. ---

func registerEXT() {
	setRnRm(0x600C, opEXTUB)
	setRnRm(0x600D, opEXTUW)
	setRnRm(0x600E, opEXTSB)
	setRnRm(0x600F, opEXTSW)
}

func opEXTUB(c *CPU) {
	c.SetReg(int(c.decodeN()), uint32(uint8(c.Reg(int(c.decodeM())))))
}

func opEXTUW(c *CPU) {
	c.SetReg(int(c.decodeN()), uint32(uint16(c.Reg(int(c.decodeM())))))
}

func opEXTSB(c *CPU) {
	c.SetReg(int(c.decodeN()), signExtend8(uint8(c.Reg(int(c.decodeM())))))
}

func opEXTSW(c *CPU) {
	c.SetReg(int(c.decodeN()), signExtend16(uint16(c.Reg(int(c.decodeM())))))
}

// --- XTRCT Rm,Rn: Rn = low16(Rm):high16(Rn). ---

func registerXTRCT() {
	setRnRm(0x200D, opXTRCT)
}

func opXTRCT(c *CPU) {
	n := int(c.decodeN())
	rn := c.Reg(n)
	rm := c.Reg(int(c.decodeM()))
	c.SetReg(n, (rm<<16)|(rn>>16))
}

// --- TAS.B @Rn: test-and-set. Reads the byte at @Rn, sets T if it was
// zero, then writes the byte back with its MSB set (byte | 0x80; the read-modify-write is
// indivisible on real hardware; this interpreter has no concurrent bus
// traffic to race against, so plain sequential read-then-write suffices). ---

func registerTAS() {
	setRn(0x401B, opTAS)
}

func opTAS(c *CPU) {
	addr := c.Reg(int(c.decodeN()))
	v := c.bus.Read8(addr)
	c.setT(v == 0)
	c.bus.Write8(addr, v|0x80)
}
