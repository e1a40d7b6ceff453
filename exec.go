package rv32

// execAction classifies what an instruction handler did to pc.
type execAction uint8

const (
	actNext execAction = iota // fall through, advance pc by the width
	actJumped
	actTrap
)

// execResult is the internal outcome of one instruction handler.
type execResult struct {
	action execAction
	cause  uint32
}

var (
	resNext   = execResult{action: actNext}
	resJumped = execResult{action: actJumped}
)

func resTrap(cause uint32) execResult {
	return execResult{action: actTrap, cause: cause}
}

// execute dispatches one decoded record to its semantic handler.
func (c *CPU) execute(rec *inst, bus Bus) execResult {
	switch rec.op {
	case opLUI:
		return c.lui(rec.rd, rec.imm)
	case opAUIPC:
		return c.auipc(rec.rd, rec.imm)
	case opJAL:
		return c.jal(rec.rd, rec.imm)
	case opJALR:
		return c.jalr(rec.rd, rec.rs1, rec.imm)
	case opBEQ:
		return c.beq(rec.rs1, rec.rs2, rec.imm)
	case opBNE:
		return c.bne(rec.rs1, rec.rs2, rec.imm)
	case opBLT:
		return c.blt(rec.rs1, rec.rs2, rec.imm)
	case opBGE:
		return c.bge(rec.rs1, rec.rs2, rec.imm)
	case opBLTU:
		return c.bltu(rec.rs1, rec.rs2, rec.imm)
	case opBGEU:
		return c.bgeu(rec.rs1, rec.rs2, rec.imm)
	case opLB:
		return c.lb(rec.rd, rec.rs1, rec.imm, bus)
	case opLH:
		return c.lh(rec.rd, rec.rs1, rec.imm, bus)
	case opLW:
		return c.lw(rec.rd, rec.rs1, rec.imm, bus)
	case opLBU:
		return c.lbu(rec.rd, rec.rs1, rec.imm, bus)
	case opLHU:
		return c.lhu(rec.rd, rec.rs1, rec.imm, bus)
	case opSB:
		return c.sb(rec.rs1, rec.rs2, rec.imm, bus)
	case opSH:
		return c.sh(rec.rs1, rec.rs2, rec.imm, bus)
	case opSW:
		return c.sw(rec.rs1, rec.rs2, rec.imm, bus)
	case opADDI:
		return c.addi(rec.rd, rec.rs1, rec.imm)
	case opSLTI:
		return c.slti(rec.rd, rec.rs1, rec.imm)
	case opSLTIU:
		return c.sltiu(rec.rd, rec.rs1, rec.imm)
	case opXORI:
		return c.xori(rec.rd, rec.rs1, rec.imm)
	case opORI:
		return c.ori(rec.rd, rec.rs1, rec.imm)
	case opANDI:
		return c.andi(rec.rd, rec.rs1, rec.imm)
	case opSLLI:
		return c.slli(rec.rd, rec.rs1, rec.imm)
	case opSRLI:
		return c.srli(rec.rd, rec.rs1, rec.imm)
	case opSRAI:
		return c.srai(rec.rd, rec.rs1, rec.imm)
	case opADD:
		return c.add(rec.rd, rec.rs1, rec.rs2)
	case opSUB:
		return c.sub(rec.rd, rec.rs1, rec.rs2)
	case opSLL:
		return c.sll(rec.rd, rec.rs1, rec.rs2)
	case opSLT:
		return c.slt(rec.rd, rec.rs1, rec.rs2)
	case opSLTU:
		return c.sltu(rec.rd, rec.rs1, rec.rs2)
	case opXOR:
		return c.xor(rec.rd, rec.rs1, rec.rs2)
	case opSRL:
		return c.srl(rec.rd, rec.rs1, rec.rs2)
	case opSRA:
		return c.sra(rec.rd, rec.rs1, rec.rs2)
	case opOR:
		return c.or(rec.rd, rec.rs1, rec.rs2)
	case opAND:
		return c.and(rec.rd, rec.rs1, rec.rs2)
	case opFENCE:
		return resNext
	case opFENCEI:
		c.cache.clear()
		return resNext
	case opWFI:
		// The step loop re-polls interrupts every cycle; nothing to wait on.
		return resNext
	case opECALL:
		return c.ecall()
	case opEBREAK:
		return resTrap(causeBreakpoint)
	case opMRET:
		return c.mret()
	case opMUL:
		return c.mul(rec.rd, rec.rs1, rec.rs2)
	case opMULH:
		return c.mulh(rec.rd, rec.rs1, rec.rs2)
	case opMULHSU:
		return c.mulhsu(rec.rd, rec.rs1, rec.rs2)
	case opMULHU:
		return c.mulhu(rec.rd, rec.rs1, rec.rs2)
	case opDIV:
		return c.div(rec.rd, rec.rs1, rec.rs2)
	case opDIVU:
		return c.divu(rec.rd, rec.rs1, rec.rs2)
	case opREM:
		return c.rem(rec.rd, rec.rs1, rec.rs2)
	case opREMU:
		return c.remu(rec.rd, rec.rs1, rec.rs2)
	case opCADDI4SPN:
		return c.cAddi4spn(rec.rd, rec.imm)
	case opCLW:
		return c.cLw(rec.rd, rec.rs1, rec.imm, bus)
	case opCSW:
		return c.cSw(rec.rs1, rec.rs2, rec.imm, bus)
	case opCADDI:
		return c.cAddi(rec.rd, rec.imm)
	case opCJAL:
		return c.cJal(rec.imm)
	case opCLI:
		return c.cLi(rec.rd, rec.imm)
	case opCLUI:
		return c.cLui(rec.rd, rec.imm)
	case opCADDI16SP:
		return c.cAddi16sp(rec.imm)
	case opCSRLI:
		return c.cSrli(rec.rd, rec.imm)
	case opCSRAI:
		return c.cSrai(rec.rd, rec.imm)
	case opCANDI:
		return c.cAndi(rec.rd, rec.imm)
	case opCSUB:
		return c.cSub(rec.rd, rec.rs2)
	case opCXOR:
		return c.cXor(rec.rd, rec.rs2)
	case opCOR:
		return c.cOr(rec.rd, rec.rs2)
	case opCAND:
		return c.cAnd(rec.rd, rec.rs2)
	case opCJ:
		return c.cJ(rec.imm)
	case opCBEQZ:
		return c.cBeqz(rec.rs1, rec.imm)
	case opCBNEZ:
		return c.cBnez(rec.rs1, rec.imm)
	case opCSLLI:
		return c.cSlli(rec.rd, rec.imm)
	case opCLWSP:
		return c.cLwsp(rec.rd, rec.imm, bus)
	case opCJR:
		return c.cJr(rec.rs1)
	case opCMV:
		return c.cMv(rec.rd, rec.rs2)
	case opCJALR:
		return c.cJalr(rec.rs1)
	case opCADD:
		return c.cAdd(rec.rd, rec.rs2)
	case opCSWSP:
		return c.cSwsp(rec.rs2, rec.imm, bus)
	case opCSRRW:
		return c.csrrw(rec.rd, rec.rs1, rec.imm)
	case opCSRRS:
		return c.csrrs(rec.rd, rec.rs1, rec.imm)
	case opCSRRC:
		return c.csrrc(rec.rd, rec.rs1, rec.imm)
	case opCSRRWI:
		return c.csrrwi(rec.rd, rec.rs1, rec.imm)
	case opCSRRSI:
		return c.csrrsi(rec.rd, rec.rs1, rec.imm)
	case opCSRRCI:
		return c.csrrci(rec.rd, rec.rs1, rec.imm)
	}
	// opIllegal, opAbsent, and anything unrecognized.
	return resTrap(causeIllegalInstruction)
}
