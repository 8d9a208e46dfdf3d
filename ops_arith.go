package sh2

func init() {
	registerADD()
	registerADDImm()
	registerADDC()
	registerADDV()
	registerSUB()
	registerSUBC()
	registerSUBV()
	registerNEG()
	registerNEGC()
	registerDT()
}

// --- ADD Rm,Rn ---

func registerADD() {
	setRnRm(0x300C, opADD)
}

func opADD(c *CPU) {
	n := int(c.decodeN())
	c.SetReg(n, c.Reg(n)+c.Reg(int(c.decodeM())))
}

// --- ADD #imm,Rn --- (top nibble 0x7: fully owned by this one form)

func registerADDImm() {
	setTopNibble(0x7, opADDImm)
}

func opADDImm(c *CPU) {
	n := int(c.decodeN())
	c.SetReg(n, c.Reg(n)+signExtend8(uint8(c.decodeImm8())))
}

// --- ADDC Rm,Rn: adds with the incoming T bit, sets T on carry-out ---

func registerADDC() {
	setRnRm(0x300E, opADDC)
}

func opADDC(c *CPU) {
	n := int(c.decodeN())
	a := c.Reg(n)
	b := c.Reg(int(c.decodeM()))
	carryIn := uint32(0)
	if c.t() {
		carryIn = 1
	}
	sum := a + b + carryIn
	c.SetReg(n, sum)
	carryOut := sum < a || (carryIn == 1 && sum == a)
	c.setT(carryOut)
}

// --- ADDV Rm,Rn: sets T on signed overflow ---

func registerADDV() {
	setRnRm(0x300F, opADDV)
}

func opADDV(c *CPU) {
	n := int(c.decodeN())
	a := int32(c.Reg(n))
	b := int32(c.Reg(int(c.decodeM())))
	sum := a + b
	c.SetReg(n, uint32(sum))

	overflow := (a >= 0 && b >= 0 && sum < 0) || (a < 0 && b < 0 && sum >= 0)
	c.setT(overflow)
}

// --- SUB Rm,Rn ---

func registerSUB() {
	setRnRm(0x3008, opSUB)
}

func opSUB(c *CPU) {
	n := int(c.decodeN())
	c.SetReg(n, c.Reg(n)-c.Reg(int(c.decodeM())))
}

// --- SUBC Rm,Rn: subtracts with the incoming T bit as borrow, sets T on
// borrow-out ---

func registerSUBC() {
	setRnRm(0x300A, opSUBC)
}

func opSUBC(c *CPU) {
	n := int(c.decodeN())
	a := c.Reg(n)
	b := c.Reg(int(c.decodeM()))
	borrowIn := uint32(0)
	if c.t() {
		borrowIn = 1
	}
	diff := a - b - borrowIn
	c.SetReg(n, diff)
	borrowOut := a < b || (borrowIn == 1 && a == b)
	c.setT(borrowOut)
}

// --- SUBV Rm,Rn: sets T on signed overflow ---

func registerSUBV() {
	setRnRm(0x300B, opSUBV)
}

func opSUBV(c *CPU) {
	n := int(c.decodeN())
	a := int32(c.Reg(n))
	b := int32(c.Reg(int(c.decodeM())))
	diff := a - b
	c.SetReg(n, uint32(diff))

	overflow := (a >= 0 && b < 0 && diff < 0) || (a < 0 && b >= 0 && diff >= 0)
	c.setT(overflow)
}

// --- NEG Rm,Rn: Rn = 0 - Rm ---

func registerNEG() {
	setRnRm(0x600B, opNEG)
}

func opNEG(c *CPU) {
	c.SetReg(int(c.decodeN()), 0-c.Reg(int(c.decodeM())))
}

// --- NEGC Rm,Rn: Rn = 0 - Rm - T, sets T on borrow-out ---

func registerNEGC() {
	setRnRm(0x600A, opNEGC)
}

func opNEGC(c *CPU) {
	m := c.Reg(int(c.decodeM()))
	borrowIn := uint32(0)
	if c.t() {
		borrowIn = 1
	}
	diff := 0 - m - borrowIn
	c.SetReg(int(c.decodeN()), diff)
	c.setT(m != 0 || borrowIn != 0)
}

// --- DT Rn: decrement and test for zero ---

func registerDT() {
	setRn(0x4010, opDT)
}

func opDT(c *CPU) {
	n := int(c.decodeN())
	v := c.Reg(n) - 1
	c.SetReg(n, v)
	c.setT(v == 0)
}
