package rv32

// System instructions: the Zicsr read-modify-write family, environment
// calls, and trap return.
//
// The CSR instructions follow the read-then-write contract: rd = 0
// suppresses the read of csrrw, and rs1 = 0 (or a zero immediate)
// suppresses the write of the set/clear forms. A side that does fire
// and fails the privilege or read-only rules raises the
// illegal-instruction trap and leaves rd unwritten.

func (c *CPU) csrrw(rd, rs1 uint8, addr uint32) execResult {
	var old uint32
	if rd != 0 {
		v, ok := c.csr.read(addr, c.mode)
		if !ok {
			return resTrap(causeIllegalInstruction)
		}
		old = v
	}
	if !c.csr.write(addr, c.regs[rs1], c.mode) {
		return resTrap(causeIllegalInstruction)
	}
	c.setReg(rd, old)
	return resNext
}

func (c *CPU) csrrs(rd, rs1 uint8, addr uint32) execResult {
	old, ok := c.csr.read(addr, c.mode)
	if !ok {
		return resTrap(causeIllegalInstruction)
	}
	if rs1 != 0 && !c.csr.write(addr, old|c.regs[rs1], c.mode) {
		return resTrap(causeIllegalInstruction)
	}
	c.setReg(rd, old)
	return resNext
}

func (c *CPU) csrrc(rd, rs1 uint8, addr uint32) execResult {
	old, ok := c.csr.read(addr, c.mode)
	if !ok {
		return resTrap(causeIllegalInstruction)
	}
	if rs1 != 0 && !c.csr.write(addr, old&^c.regs[rs1], c.mode) {
		return resTrap(causeIllegalInstruction)
	}
	c.setReg(rd, old)
	return resNext
}

func (c *CPU) csrrwi(rd, uimm uint8, addr uint32) execResult {
	var old uint32
	if rd != 0 {
		v, ok := c.csr.read(addr, c.mode)
		if !ok {
			return resTrap(causeIllegalInstruction)
		}
		old = v
	}
	if !c.csr.write(addr, uint32(uimm), c.mode) {
		return resTrap(causeIllegalInstruction)
	}
	c.setReg(rd, old)
	return resNext
}

func (c *CPU) csrrsi(rd, uimm uint8, addr uint32) execResult {
	old, ok := c.csr.read(addr, c.mode)
	if !ok {
		return resTrap(causeIllegalInstruction)
	}
	if uimm != 0 && !c.csr.write(addr, old|uint32(uimm), c.mode) {
		return resTrap(causeIllegalInstruction)
	}
	c.setReg(rd, old)
	return resNext
}

func (c *CPU) csrrci(rd, uimm uint8, addr uint32) execResult {
	old, ok := c.csr.read(addr, c.mode)
	if !ok {
		return resTrap(causeIllegalInstruction)
	}
	if uimm != 0 && !c.csr.write(addr, old&^uint32(uimm), c.mode) {
		return resTrap(causeIllegalInstruction)
	}
	c.setReg(rd, old)
	return resNext
}

// ecall raises the environment-call trap for the current mode.
func (c *CPU) ecall() execResult {
	switch c.mode {
	case User:
		return resTrap(causeEcallFromUser)
	case Supervisor:
		return resTrap(causeEcallFromSupervisor)
	}
	return resTrap(causeEcallFromMachine)
}

// mret returns from a trap: restores pc from mepc, pops MPIE into MIE,
// drops to the privilege stashed in MPP, and resets MPP to User. Only
// executable in Machine mode.
func (c *CPU) mret() execResult {
	if c.mode != Machine {
		return resTrap(causeIllegalInstruction)
	}

	mpie := c.csr.mstatus >> 7 & 1
	c.csr.mstatus &^= mstatusMIE
	c.csr.mstatus |= mpie << 3
	c.csr.mstatus |= mstatusMPIE

	mpp := c.csr.mstatus >> mstatusMPPShift & 0x3
	if mpp == 3 {
		c.mode = Machine
	} else {
		c.mode = User
	}
	c.csr.mstatus &^= mstatusMPPMask

	c.pc = c.csr.mepc
	return resJumped
}
