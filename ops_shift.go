package sh2

func init() {
	registerShift()
	registerShiftImm()
	registerRotate()
}

// --- SHLL/SHLR/SHAL/SHAR Rn: single-bit shifts, T takes the bit shifted
// out. SHAL/SHAR are arithmetic (sign-preserving on the right shift);
// SHLL/SHLR are logical. ---

func registerShift() {
	setRn(0x4000, opSHLL)
	setRn(0x4001, opSHLR)
	setRn(0x4020, opSHAL)
	setRn(0x4021, opSHAR)
}

func opSHLL(c *CPU) {
	n := int(c.decodeN())
	v := c.Reg(n)
	c.setT(v&0x80000000 != 0)
	c.SetReg(n, v<<1)
}

func opSHLR(c *CPU) {
	n := int(c.decodeN())
	v := c.Reg(n)
	c.setT(v&1 != 0)
	c.SetReg(n, v>>1)
}

func opSHAL(c *CPU) {
	n := int(c.decodeN())
	v := c.Reg(n)
	c.setT(v&0x80000000 != 0)
	c.SetReg(n, v<<1)
}

func opSHAR(c *CPU) {
	n := int(c.decodeN())
	v := int32(c.Reg(n))
	c.setT(v&1 != 0)
	c.SetReg(n, uint32(v>>1))
}

// --- SHLLn/SHLRn Rn: fixed-width logical shifts, 2/8/16 bits. T is left
// unmodified (unlike the single-bit forms). SHLR16 must actually shift
// by 16, not fall through as a no-op: a naive table-driven implementation
// that reuses the SHLR2/SHLR8 shift amount for "n>>1" arithmetic can
// silently miss the 16 case if 16 isn't handled as its own width. ---

func registerShiftImm() {
	setRn(0x4008, opSHLL2)
	setRn(0x4018, opSHLL8)
	setRn(0x4028, opSHLL16)
	setRn(0x4009, opSHLR2)
	setRn(0x4019, opSHLR8)
	setRn(0x4029, opSHLR16)
}

func opSHLL2(c *CPU) {
	n := int(c.decodeN())
	c.SetReg(n, c.Reg(n)<<2)
}

func opSHLL8(c *CPU) {
	n := int(c.decodeN())
	c.SetReg(n, c.Reg(n)<<8)
}

func opSHLL16(c *CPU) {
	n := int(c.decodeN())
	c.SetReg(n, c.Reg(n)<<16)
}

func opSHLR2(c *CPU) {
	n := int(c.decodeN())
	c.SetReg(n, c.Reg(n)>>2)
}

func opSHLR8(c *CPU) {
	n := int(c.decodeN())
	c.SetReg(n, c.Reg(n)>>8)
}

func opSHLR16(c *CPU) {
	n := int(c.decodeN())
	c.SetReg(n, c.Reg(n)>>16)
}

// --- ROTL/ROTR/ROTCL/ROTCR Rn ---

func registerRotate() {
	setRn(0x4004, opROTL)
	setRn(0x4005, opROTR)
	setRn(0x4024, opROTCL)
	setRn(0x4025, opROTCR)
}

func opROTL(c *CPU) {
	n := int(c.decodeN())
	v := c.Reg(n)
	out := v&0x80000000 != 0
	c.setT(out)
	v <<= 1
	if out {
		v |= 1
	}
	c.SetReg(n, v)
}

func opROTR(c *CPU) {
	n := int(c.decodeN())
	v := c.Reg(n)
	out := v&1 != 0
	c.setT(out)
	v >>= 1
	if out {
		v |= 0x80000000
	}
	c.SetReg(n, v)
}

func opROTCL(c *CPU) {
	n := int(c.decodeN())
	v := c.Reg(n)
	out := v&0x80000000 != 0
	carryIn := c.t()
	v <<= 1
	if carryIn {
		v |= 1
	}
	c.SetReg(n, v)
	c.setT(out)
}

func opROTCR(c *CPU) {
	n := int(c.decodeN())
	v := c.Reg(n)
	out := v&1 != 0
	carryIn := c.t()
	v >>= 1
	if carryIn {
		v |= 0x80000000
	}
	c.SetReg(n, v)
	c.setT(out)
}
