package core

// ALU opcodes, as encoded in the data-processing instruction's opcode field.
const (
	OpAND = 0
	OpEOR = 1
	OpSUB = 2
	OpRSB = 3
	OpADD = 4
	OpADC = 5
	OpSBC = 6
	OpRSC = 7
	OpTST = 8
	OpTEQ = 9
	OpCMP = 10
	OpCMN = 11
	OpORR = 12
	OpMOV = 13
	OpBIC = 14
	OpMVN = 15
)

// ALU computes ALUBus from ABus and BarrelBus according to ALUOp, updating
// the condition flags when SetCond is set. Opcodes 8-11 (the "test" group:
// TST, TEQ, CMP, CMN) never write ALUBus — hardware routes their result to
// the flags only, never to a destination register.
func (c *Core) ALU() {
	var result uint32
	switch c.ALUOp {
	case OpAND, OpTST:
		result = c.ABus & c.BarrelBus
	case OpEOR, OpTEQ:
		result = c.ABus ^ c.BarrelBus
	case OpSUB, OpCMP:
		result = c.ABus - c.BarrelBus
	case OpRSB:
		result = c.BarrelBus - c.ABus
	case OpADD, OpCMN:
		result = c.ABus + c.BarrelBus
	case OpADC:
		result = c.ABus + c.BarrelBus + boolToWord(c.CPSR.C)
	case OpSBC:
		result = c.ABus - (c.BarrelBus + carryBorrow(c.CPSR.C))
	case OpRSC:
		result = c.BarrelBus - (c.ABus + carryBorrow(c.CPSR.C))
	case OpORR:
		result = c.ABus | c.BarrelBus
	case OpMOV:
		result = c.BarrelBus
	case OpBIC:
		result = c.ABus &^ c.BarrelBus
	case OpMVN:
		result = ^c.BarrelBus
	}

	if c.SetCond {
		switch c.ALUOp {
		case OpAND, OpEOR, OpTST, OpTEQ, OpORR, OpMOV, OpBIC, OpMVN:
			c.setNZ(result)
		case OpADD, OpADC, OpCMN:
			c.setNZ(result)
			c.setAddFlags(c.ABus, c.BarrelBus)
		case OpSUB, OpSBC, OpCMP:
			c.setNZ(result)
			c.setSubFlags(c.ABus, c.BarrelBus)
		case OpRSB, OpRSC:
			c.setNZ(result)
			c.setSubFlags(c.BarrelBus, c.ABus)
		}
	}

	if c.ALUOp < OpTST || c.ALUOp > OpCMN {
		c.ALUBus = result
	}
}

func boolToWord(b bool) uint32 {
	if b {
		return 1
	}
	return 0
}

// carryBorrow is the SBC/RSC carry-in term: 0 when C is set (no borrow from
// a prior subtraction), 1 when C is clear. This is the standard ARM SBC
// definition, not a bitwise NOT of the carry bit.
func carryBorrow(c bool) uint32 {
	if c {
		return 0
	}
	return 1
}

func (c *Core) setNZ(result uint32) {
	c.CPSR.N = int32(result) < 0
	c.CPSR.Z = result == 0
}

// setAddFlags sets C from unsigned overflow and V from signed overflow of
// a+b. This is computed from the plain operands even for ADC — the
// reference implementation ignores the carry-in when deriving flags for
// ADC, an approximation this core preserves rather than corrects.
func (c *Core) setAddFlags(a, b uint32) {
	sum := a + b
	c.CPSR.C = sum < a
	signA, signB, signR := a>>31, b>>31, sum>>31
	c.CPSR.V = signA == signB && signA != signR
}

// setSubFlags sets C and V from overflow of a-b. Per the reference
// implementation, C is the unsigned-overflow flag of the wrapping
// subtraction (true when a < b, i.e. a borrow occurred) rather than the
// ARM-hardware convention of C meaning "no borrow" — this core preserves
// that inversion exactly rather than silently fixing it.
func (c *Core) setSubFlags(a, b uint32) {
	diff := a - b
	c.CPSR.C = a < b
	signA, signB, signR := a>>31, b>>31, diff>>31
	c.CPSR.V = signA != signB && signA != signR
}
