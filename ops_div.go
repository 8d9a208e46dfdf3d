package sh2

func init() {
	registerDIV0S()
	registerDIV0U()
	registerDIV1()
}

// --- DIV0S Rm,Rn: seeds Q/M from the operands' signs ahead of a DIV1
// sequence, and sets T = M xor Q (the initial quotient-sign guess). ---

func registerDIV0S() {
	setRnRm(0x2007, opDIV0S)
}

func opDIV0S(c *CPU) {
	q := c.Reg(int(c.decodeN()))&0x80000000 != 0
	m := c.Reg(int(c.decodeM()))&0x80000000 != 0
	c.setQ(q)
	c.setM(m)
	c.setT(q != m)
}

// --- DIV0U: clears Q, M, T for an unsigned DIV1 sequence. ---

func registerDIV0U() {
	opcodeTable[0x0019] = opDIV0U
}

func opDIV0U(c *CPU) {
	c.setQ(false)
	c.setM(false)
	c.setT(false)
}

// --- DIV1 Rm,Rn: one step of the restoring-division algorithm. Rn is
// shifted left with T feeding the low bit, then Rm is added to or
// subtracted from the shifted Rn depending on the Q/M state carried in
// from the previous step (or from DIV0S/DIV0U on the first step). 32
// repetitions over the same Rm,Rn pair compute a full 32-bit quotient,
// one bit per call, with the quotient bits accumulating in T. ---

func registerDIV1() {
	setRnRm(0x3004, opDIV1)
}

func opDIV1(c *CPU) {
	n := int(c.decodeN())
	m := int(c.decodeM())

	oldQ := c.q()
	oldM := c.m()
	rn := c.Reg(n)
	rm := c.Reg(m)

	newQ := rn&0x80000000 != 0
	rn = rn<<1 | boolBit(c.t())

	var out bool
	switch {
	case !oldQ && !oldM:
		tmp := rn
		rn -= rm
		out = rn > tmp
		if !newQ {
			newQ = out
		} else {
			newQ = !out
		}
	case !oldQ && oldM:
		tmp := rn
		rn += rm
		out = rn < tmp
		if !newQ {
			newQ = !out
		} else {
			newQ = out
		}
	case oldQ && !oldM:
		tmp := rn
		rn += rm
		out = rn < tmp
		if !newQ {
			newQ = out
		} else {
			newQ = !out
		}
	default: // oldQ && oldM
		tmp := rn
		rn -= rm
		out = rn > tmp
		if !newQ {
			newQ = !out
		} else {
			newQ = out
		}
	}

	c.SetReg(n, rn)
	c.setQ(newQ)
	c.setT(newQ == c.m())
}

func boolBit(b bool) uint32 {
	if b {
		return 1
	}
	return 0
}
