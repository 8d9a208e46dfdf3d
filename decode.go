package sh2

// opFunc is the handler signature for a single SH-2 instruction. The
// opcode word is already latched in c.ir when called.
type opFunc func(*CPU)

// opcodeTable is a 64K-entry lookup table indexed by the raw 16-bit
// opcode. nil entries are illegal instructions. Building a flat table
// keeps decode a pure function of the opcode (no state is read) while
// avoiding any ambiguity from partial secondary-key aliasing: every one
// of the 65536 opcodes gets its own, fully-resolved slot.
var opcodeTable [65536]opFunc

// setTopNibble fills every opcode under the given top nibble (bits
// 15-12) with fn. Used for the eight single-executor groups in the
// SH-2 decode table (MOV.L Rm,@(disp,Rn), ADD #imm,Rn, BRA, BSR, ...)
// where the top nibble alone fully determines the executor.
func setTopNibble(nibble uint16, fn opFunc) {
	base := nibble << 12
	for low := uint16(0); low < 0x1000; low++ {
		opcodeTable[base|low] = fn
	}
}

// setRnRm fills opcodeTable for every (n, m) register-pair combination
// of the pattern base | n<<8 | m<<4, where base already has its fixed
// low nibble set (e.g. 0x300C for "ADD Rm,Rn").
func setRnRm(base uint16, fn opFunc) {
	for n := uint16(0); n < 16; n++ {
		for m := uint16(0); m < 16; m++ {
			opcodeTable[base|n<<8|m<<4] = fn
		}
	}
}

// setRn fills opcodeTable for every value of a single 4-bit register
// field at bits 11-8, base already carrying the fixed low byte (e.g.
// 0x4010 for "DT Rn"). Used for both n-indexed and m-indexed
// single-register forms; the bit position is the same.
func setRn(base uint16, fn opFunc) {
	for n := uint16(0); n < 16; n++ {
		opcodeTable[base|n<<8] = fn
	}
}

// setRegDisp4 fills opcodeTable for every (reg, disp4) combination of
// base | reg<<4 | disp, used by the R0-relative displacement forms
// (MOV.B R0,@(disp,Rn) and friends) where base already carries the top
// byte (top nibble + sub-opcode key).
func setRegDisp4(base uint16, fn opFunc) {
	for r := uint16(0); r < 16; r++ {
		for d := uint16(0); d < 16; d++ {
			opcodeTable[base|r<<4|d] = fn
		}
	}
}

// setImm8 fills opcodeTable for every 8-bit immediate/displacement of
// base | imm, used by GBR-relative and R0-immediate forms that have no
// register field.
func setImm8(base uint16, fn opFunc) {
	for imm := uint16(0); imm < 256; imm++ {
		opcodeTable[base|imm] = fn
	}
}

// decodeN extracts the n field (bits 11-8) of the current opcode.
func (c *CPU) decodeN() uint16 { return (c.ir >> 8) & 0xF }

// decodeM extracts the m field (bits 7-4) of the current opcode.
func (c *CPU) decodeM() uint16 { return (c.ir >> 4) & 0xF }

// decodeD extracts the d field (bits 3-0) of the current opcode.
func (c *CPU) decodeD() uint16 { return c.ir & 0xF }

// decodeImm8 extracts the low 8 bits of the current opcode.
func (c *CPU) decodeImm8() uint16 { return c.ir & 0xFF }

// decodeDisp12 extracts and sign-extends the low 12 bits of the current
// opcode (BRA/BSR displacement).
func (c *CPU) decodeDisp12() uint32 { return signExtend12(c.ir) }
