package sh2

func init() {
	registerMULL()
	registerMULSW()
	registerMULUW()
	registerDMULS()
	registerDMULU()
	registerMACL()
	registerMACW()
	registerCLRMAC()
}

// --- MUL.L Rm,Rn: 32x32 -> low 32 bits of the product, into MACL. ---

func registerMULL() {
	setRnRm(0x0007, opMULL)
}

func opMULL(c *CPU) {
	c.SetReg(RegMACL, c.Reg(int(c.decodeN()))*c.Reg(int(c.decodeM())))
}

// --- MULS.W / MULU.W Rm,Rn: 16x16 -> 32, operands taken from the low
// halfwords of Rm/Rn, result in MACL. ---

func registerMULSW() {
	setRnRm(0x200F, opMULSW)
}

func opMULSW(c *CPU) {
	n := int16(c.Reg(int(c.decodeN())))
	m := int16(c.Reg(int(c.decodeM())))
	c.SetReg(RegMACL, uint32(int32(n)*int32(m)))
}

func registerMULUW() {
	setRnRm(0x200E, opMULUW)
}

func opMULUW(c *CPU) {
	n := uint16(c.Reg(int(c.decodeN())))
	m := uint16(c.Reg(int(c.decodeM())))
	c.SetReg(RegMACL, uint32(n)*uint32(m))
}

// --- DMULS.L / DMULU.L Rm,Rn: 32x32 -> 64, into MACH:MACL. Multiplication
// is commutative, so the question of which operand plays "Rm" vs "Rn"
// in the manual's mnemonic has no observable effect on the result. ---

func registerDMULS() {
	setRnRm(0x300D, opDMULS)
}

func opDMULS(c *CPU) {
	n := int64(int32(c.Reg(int(c.decodeN()))))
	m := int64(int32(c.Reg(int(c.decodeM()))))
	product := uint64(n * m)
	c.SetReg(RegMACH, uint32(product>>32))
	c.SetReg(RegMACL, uint32(product))
}

func registerDMULU() {
	setRnRm(0x3005, opDMULU)
}

func opDMULU(c *CPU) {
	n := uint64(c.Reg(int(c.decodeN())))
	m := uint64(c.Reg(int(c.decodeM())))
	product := n * m
	c.SetReg(RegMACH, uint32(product>>32))
	c.SetReg(RegMACL, uint32(product))
}

// --- MAC.L @Rm+,@Rn+: 32x32 signed multiply-accumulate into MACH:MACL,
// post-incrementing both pointers. Saturation is not modeled: accumulation
// wraps on 64-bit overflow like any other two's-complement add, matching
// the bus/register model's treatment of every other arithmetic op. ---

func registerMACL() {
	setRnRm(0x000F, opMACL)
}

func opMACL(c *CPU) {
	n := int(c.decodeN())
	m := int(c.decodeM())
	addrN := c.Reg(n)
	addrM := c.Reg(m)

	a := int64(int32(c.bus.Read32(addrM)))
	b := int64(int32(c.bus.Read32(addrN)))
	c.SetReg(m, addrM+4)
	c.SetReg(n, addrN+4)

	acc := int64(uint64(c.Reg(RegMACH))<<32 | uint64(c.Reg(RegMACL)))
	acc += a * b

	c.SetReg(RegMACH, uint32(uint64(acc)>>32))
	c.SetReg(RegMACL, uint32(uint64(acc)))
}

// --- MAC.W @Rm+,@Rn+: 16x16 signed multiply-accumulate into MACL (MACH
// unchanged), post-incrementing both pointers by 2. ---

func registerMACW() {
	setRnRm(0x400F, opMACW)
}

func opMACW(c *CPU) {
	n := int(c.decodeN())
	m := int(c.decodeM())
	addrN := c.Reg(n)
	addrM := c.Reg(m)

	a := int32(int16(c.bus.Read16(addrM)))
	b := int32(int16(c.bus.Read16(addrN)))
	c.SetReg(m, addrM+2)
	c.SetReg(n, addrN+2)

	c.SetReg(RegMACL, c.Reg(RegMACL)+uint32(a*b))
}

// --- CLRMAC: zeroes MACH and MACL. ---

func registerCLRMAC() {
	opcodeTable[0x0028] = opCLRMAC
}

func opCLRMAC(c *CPU) {
	c.SetReg(RegMACH, 0)
	c.SetReg(RegMACL, 0)
}
