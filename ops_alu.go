package rv32

// RV32I register-register and register-immediate arithmetic. All
// arithmetic wraps modulo 2^32; signed comparisons reinterpret the
// operands as two's-complement. Shifts use only the low 5 bits of the
// amount.

func (c *CPU) lui(rd uint8, imm uint32) execResult {
	c.setReg(rd, imm)
	return resNext
}

func (c *CPU) auipc(rd uint8, imm uint32) execResult {
	c.setReg(rd, c.pc+imm)
	return resNext
}

func (c *CPU) addi(rd, rs1 uint8, imm uint32) execResult {
	c.setReg(rd, c.regs[rs1]+imm)
	return resNext
}

func (c *CPU) slti(rd, rs1 uint8, imm uint32) execResult {
	c.setReg(rd, boolBit(int32(c.regs[rs1]) < int32(imm)))
	return resNext
}

func (c *CPU) sltiu(rd, rs1 uint8, imm uint32) execResult {
	c.setReg(rd, boolBit(c.regs[rs1] < imm))
	return resNext
}

func (c *CPU) xori(rd, rs1 uint8, imm uint32) execResult {
	c.setReg(rd, c.regs[rs1]^imm)
	return resNext
}

func (c *CPU) ori(rd, rs1 uint8, imm uint32) execResult {
	c.setReg(rd, c.regs[rs1]|imm)
	return resNext
}

func (c *CPU) andi(rd, rs1 uint8, imm uint32) execResult {
	c.setReg(rd, c.regs[rs1]&imm)
	return resNext
}

func (c *CPU) slli(rd, rs1 uint8, shamt uint32) execResult {
	c.setReg(rd, c.regs[rs1]<<shamt)
	return resNext
}

func (c *CPU) srli(rd, rs1 uint8, shamt uint32) execResult {
	c.setReg(rd, c.regs[rs1]>>shamt)
	return resNext
}

func (c *CPU) srai(rd, rs1 uint8, shamt uint32) execResult {
	c.setReg(rd, uint32(int32(c.regs[rs1])>>shamt))
	return resNext
}

func (c *CPU) add(rd, rs1, rs2 uint8) execResult {
	c.setReg(rd, c.regs[rs1]+c.regs[rs2])
	return resNext
}

func (c *CPU) sub(rd, rs1, rs2 uint8) execResult {
	c.setReg(rd, c.regs[rs1]-c.regs[rs2])
	return resNext
}

func (c *CPU) sll(rd, rs1, rs2 uint8) execResult {
	c.setReg(rd, c.regs[rs1]<<(c.regs[rs2]&0x1f))
	return resNext
}

func (c *CPU) slt(rd, rs1, rs2 uint8) execResult {
	c.setReg(rd, boolBit(int32(c.regs[rs1]) < int32(c.regs[rs2])))
	return resNext
}

func (c *CPU) sltu(rd, rs1, rs2 uint8) execResult {
	c.setReg(rd, boolBit(c.regs[rs1] < c.regs[rs2]))
	return resNext
}

func (c *CPU) xor(rd, rs1, rs2 uint8) execResult {
	c.setReg(rd, c.regs[rs1]^c.regs[rs2])
	return resNext
}

func (c *CPU) srl(rd, rs1, rs2 uint8) execResult {
	c.setReg(rd, c.regs[rs1]>>(c.regs[rs2]&0x1f))
	return resNext
}

func (c *CPU) sra(rd, rs1, rs2 uint8) execResult {
	c.setReg(rd, uint32(int32(c.regs[rs1])>>(c.regs[rs2]&0x1f)))
	return resNext
}

func (c *CPU) or(rd, rs1, rs2 uint8) execResult {
	c.setReg(rd, c.regs[rs1]|c.regs[rs2])
	return resNext
}

func (c *CPU) and(rd, rs1, rs2 uint8) execResult {
	c.setReg(rd, c.regs[rs1]&c.regs[rs2])
	return resNext
}

func boolBit(b bool) uint32 {
	if b {
		return 1
	}
	return 0
}
