package rv32

// Loads and stores, little-endian. lb/lh sign-extend, lbu/lhu
// zero-extend. Every store conservatively invalidates the decoded
// page containing the target so self-modifying code refetches.

func (c *CPU) lb(rd, rs1 uint8, imm uint32, bus Bus) execResult {
	addr := c.regs[rs1] + imm
	c.setReg(rd, uint32(int32(int8(bus.Read8(addr)))))
	return resNext
}

func (c *CPU) lh(rd, rs1 uint8, imm uint32, bus Bus) execResult {
	addr := c.regs[rs1] + imm
	c.setReg(rd, uint32(int32(int16(bus.Read16(addr)))))
	return resNext
}

func (c *CPU) lw(rd, rs1 uint8, imm uint32, bus Bus) execResult {
	addr := c.regs[rs1] + imm
	c.setReg(rd, bus.Read32(addr))
	return resNext
}

func (c *CPU) lbu(rd, rs1 uint8, imm uint32, bus Bus) execResult {
	addr := c.regs[rs1] + imm
	c.setReg(rd, uint32(bus.Read8(addr)))
	return resNext
}

func (c *CPU) lhu(rd, rs1 uint8, imm uint32, bus Bus) execResult {
	addr := c.regs[rs1] + imm
	c.setReg(rd, uint32(bus.Read16(addr)))
	return resNext
}

func (c *CPU) sb(rs1, rs2 uint8, imm uint32, bus Bus) execResult {
	addr := c.regs[rs1] + imm
	bus.Write8(addr, uint8(c.regs[rs2]))
	c.cache.invalidate(addr)
	return resNext
}

func (c *CPU) sh(rs1, rs2 uint8, imm uint32, bus Bus) execResult {
	addr := c.regs[rs1] + imm
	bus.Write16(addr, uint16(c.regs[rs2]))
	c.cache.invalidate(addr)
	return resNext
}

func (c *CPU) sw(rs1, rs2 uint8, imm uint32, bus Bus) execResult {
	addr := c.regs[rs1] + imm
	bus.Write32(addr, c.regs[rs2])
	c.cache.invalidate(addr)
	return resNext
}
