package rv32

// Decoding of the byte-exact RV32IMC + Zicsr encodings into inst records.
// The low two bits of the first halfword select the width: 0b11 means a
// 32-bit instruction, anything else a 16-bit compressed one.

func illegal32(raw uint32) inst {
	return inst{op: opIllegal, size: 4, raw: raw}
}

func illegal16(raw uint16) inst {
	return inst{op: opIllegal, size: 2, raw: uint32(raw)}
}

// Immediate field extraction for the 32-bit formats.

func immI(raw uint32) uint32 {
	return uint32(int32(raw) >> 20)
}

func immU(raw uint32) uint32 {
	return raw & 0xffff_f000
}

func immS(raw uint32) uint32 {
	imm := (raw>>25)<<5 | raw>>7&0x1f
	return uint32(int32(imm<<20) >> 20)
}

func immB(raw uint32) uint32 {
	imm := (raw>>31)<<12 | (raw>>7&0x1)<<11 | (raw>>25&0x3f)<<5 | (raw>>8&0xf)<<1
	return uint32(int32(imm<<19) >> 19)
}

func immJ(raw uint32) uint32 {
	imm := (raw>>31)<<20 | (raw>>12&0xff)<<12 | (raw>>20&0x1)<<11 | (raw>>21&0x3ff)<<1
	return uint32(int32(imm<<11) >> 11)
}

func regRd(raw uint32) uint8  { return uint8(raw >> 7 & 0x1f) }
func regRs1(raw uint32) uint8 { return uint8(raw >> 15 & 0x1f) }
func regRs2(raw uint32) uint8 { return uint8(raw >> 20 & 0x1f) }

// decode32 decodes a full-width instruction.
func decode32(raw uint32) inst {
	rec := inst{size: 4, raw: raw, rd: regRd(raw), rs1: regRs1(raw), rs2: regRs2(raw)}
	funct3 := raw >> 12 & 0x7
	funct7 := raw >> 25 & 0x7f

	switch raw & 0x7f {
	case 0b0110111:
		rec.op, rec.imm = opLUI, immU(raw)
	case 0b0010111:
		rec.op, rec.imm = opAUIPC, immU(raw)
	case 0b1101111:
		rec.op, rec.imm = opJAL, immJ(raw)
	case 0b1100111:
		if funct3 != 0 {
			return illegal32(raw)
		}
		rec.op, rec.imm = opJALR, immI(raw)
	case 0b1100011:
		rec.imm = immB(raw)
		switch funct3 {
		case 0b000:
			rec.op = opBEQ
		case 0b001:
			rec.op = opBNE
		case 0b100:
			rec.op = opBLT
		case 0b101:
			rec.op = opBGE
		case 0b110:
			rec.op = opBLTU
		case 0b111:
			rec.op = opBGEU
		default:
			return illegal32(raw)
		}
	case 0b0000011:
		rec.imm = immI(raw)
		switch funct3 {
		case 0b000:
			rec.op = opLB
		case 0b001:
			rec.op = opLH
		case 0b010:
			rec.op = opLW
		case 0b100:
			rec.op = opLBU
		case 0b101:
			rec.op = opLHU
		default:
			return illegal32(raw)
		}
	case 0b0100011:
		rec.imm = immS(raw)
		switch funct3 {
		case 0b000:
			rec.op = opSB
		case 0b001:
			rec.op = opSH
		case 0b010:
			rec.op = opSW
		default:
			return illegal32(raw)
		}
	case 0b0010011:
		imm := immI(raw)
		rec.imm = imm
		switch funct3 {
		case 0b000:
			rec.op = opADDI
		case 0b010:
			rec.op = opSLTI
		case 0b011:
			rec.op = opSLTIU
		case 0b100:
			rec.op = opXORI
		case 0b110:
			rec.op = opORI
		case 0b111:
			rec.op = opANDI
		case 0b001:
			if imm&0xfe0 != 0 {
				return illegal32(raw)
			}
			rec.op, rec.imm = opSLLI, imm&0x1f
		case 0b101:
			switch imm >> 5 & 0x7f {
			case 0x00:
				rec.op, rec.imm = opSRLI, imm&0x1f
			case 0x20:
				rec.op, rec.imm = opSRAI, imm&0x1f
			default:
				return illegal32(raw)
			}
		}
	case 0b0110011:
		switch funct7 {
		case 0x00:
			switch funct3 {
			case 0b000:
				rec.op = opADD
			case 0b001:
				rec.op = opSLL
			case 0b010:
				rec.op = opSLT
			case 0b011:
				rec.op = opSLTU
			case 0b100:
				rec.op = opXOR
			case 0b101:
				rec.op = opSRL
			case 0b110:
				rec.op = opOR
			case 0b111:
				rec.op = opAND
			}
		case 0x20:
			switch funct3 {
			case 0b000:
				rec.op = opSUB
			case 0b101:
				rec.op = opSRA
			default:
				return illegal32(raw)
			}
		case 0x01:
			switch funct3 {
			case 0b000:
				rec.op = opMUL
			case 0b001:
				rec.op = opMULH
			case 0b010:
				rec.op = opMULHSU
			case 0b011:
				rec.op = opMULHU
			case 0b100:
				rec.op = opDIV
			case 0b101:
				rec.op = opDIVU
			case 0b110:
				rec.op = opREM
			case 0b111:
				rec.op = opREMU
			}
		default:
			return illegal32(raw)
		}
	case 0b0001111:
		switch funct3 {
		case 0b000:
			rec.op = opFENCE
		case 0b001:
			rec.op = opFENCEI
		default:
			return illegal32(raw)
		}
	case 0b1110011:
		csr := raw >> 20 & 0xfff
		rec.imm = csr
		switch funct3 {
		case 0b000:
			if rec.rd != 0 || rec.rs1 != 0 {
				return illegal32(raw)
			}
			switch csr {
			case 0x000:
				rec.op = opECALL
			case 0x001:
				rec.op = opEBREAK
			case 0x302:
				rec.op = opMRET
			case 0x105:
				rec.op = opWFI
			default:
				return illegal32(raw)
			}
		case 0b001:
			rec.op = opCSRRW
		case 0b010:
			rec.op = opCSRRS
		case 0b011:
			rec.op = opCSRRC
		case 0b101:
			rec.op = opCSRRWI
		case 0b110:
			rec.op = opCSRRSI
		case 0b111:
			rec.op = opCSRRCI
		default:
			return illegal32(raw)
		}
	default:
		return illegal32(raw)
	}
	return rec
}

// regC maps a 3-bit compressed register field onto x8-x15.
func regC(bits uint16) uint8 { return uint8(bits&0x7) + 8 }

func sext(v uint32, bits uint) uint32 {
	shift := 32 - bits
	return uint32(int32(v<<shift) >> shift)
}

// decode16 decodes a compressed instruction from quadrants 00, 01 and 10.
func decode16(raw uint16) inst {
	if raw == 0 {
		// The all-zero halfword is defined illegal.
		return illegal16(raw)
	}
	rec := inst{size: 2, raw: uint32(raw)}
	funct3 := raw >> 13 & 0x7

	switch raw & 0x3 {
	case 0b00:
		switch funct3 {
		case 0b000: // c.addi4spn
			imm := uint32(raw>>11&0x3)<<4 | uint32(raw>>7&0xf)<<6 |
				uint32(raw>>6&0x1)<<2 | uint32(raw>>5&0x1)<<3
			rec.op, rec.rd, rec.rs1, rec.imm = opCADDI4SPN, regC(raw>>2), 2, imm
		case 0b010: // c.lw
			rec.op, rec.rd, rec.rs1, rec.imm = opCLW, regC(raw>>2), regC(raw>>7), immCLS(raw)
		case 0b110: // c.sw
			rec.op, rec.rs2, rec.rs1, rec.imm = opCSW, regC(raw>>2), regC(raw>>7), immCLS(raw)
		default:
			return illegal16(raw)
		}
	case 0b01:
		switch funct3 {
		case 0b000: // c.addi (rd=0 encodes c.nop)
			rec.op, rec.rd, rec.imm = opCADDI, uint8(raw>>7&0x1f), immCI(raw)
		case 0b001: // c.jal
			rec.op, rec.rd, rec.imm = opCJAL, 1, immCJ(raw)
		case 0b010: // c.li
			rec.op, rec.rd, rec.imm = opCLI, uint8(raw>>7&0x1f), immCI(raw)
		case 0b011:
			rd := uint8(raw >> 7 & 0x1f)
			if rd == 2 { // c.addi16sp
				imm := uint32(raw>>12&0x1)<<9 | uint32(raw>>6&0x1)<<4 |
					uint32(raw>>5&0x1)<<6 | uint32(raw>>3&0x3)<<7 | uint32(raw>>2&0x1)<<5
				rec.op, rec.rd, rec.imm = opCADDI16SP, 2, sext(imm, 10)
			} else { // c.lui, immediate pre-shifted into the upper 20 bits
				rec.op, rec.rd, rec.imm = opCLUI, rd, immCI(raw)<<12
			}
		case 0b100:
			rd := regC(raw >> 7)
			switch raw >> 10 & 0x3 {
			case 0b00: // c.srli
				if raw>>12&0x1 != 0 {
					return illegal16(raw)
				}
				rec.op, rec.rd, rec.imm = opCSRLI, rd, uint32(raw>>2&0x1f)
			case 0b01: // c.srai
				if raw>>12&0x1 != 0 {
					return illegal16(raw)
				}
				rec.op, rec.rd, rec.imm = opCSRAI, rd, uint32(raw>>2&0x1f)
			case 0b10: // c.andi
				rec.op, rec.rd, rec.imm = opCANDI, rd, immCI(raw)
			case 0b11:
				if raw>>12&0x1 != 0 {
					// c.subw/c.addw slots, RV64 only
					return illegal16(raw)
				}
				rec.rd, rec.rs2 = rd, regC(raw>>2)
				switch raw >> 5 & 0x3 {
				case 0b00:
					rec.op = opCSUB
				case 0b01:
					rec.op = opCXOR
				case 0b10:
					rec.op = opCOR
				case 0b11:
					rec.op = opCAND
				}
			}
		case 0b101: // c.j
			rec.op, rec.imm = opCJ, immCJ(raw)
		case 0b110: // c.beqz
			rec.op, rec.rs1, rec.imm = opCBEQZ, regC(raw>>7), immCB(raw)
		case 0b111: // c.bnez
			rec.op, rec.rs1, rec.imm = opCBNEZ, regC(raw>>7), immCB(raw)
		}
	case 0b10:
		switch funct3 {
		case 0b000: // c.slli
			if raw>>12&0x1 != 0 {
				return illegal16(raw)
			}
			rec.op, rec.rd, rec.imm = opCSLLI, uint8(raw>>7&0x1f), uint32(raw>>2&0x1f)
		case 0b010: // c.lwsp
			imm := uint32(raw>>12&0x1)<<5 | uint32(raw>>4&0x7)<<2 | uint32(raw>>2&0x3)<<6
			rec.op, rec.rd, rec.rs1, rec.imm = opCLWSP, uint8(raw>>7&0x1f), 2, imm
		case 0b100:
			rd := uint8(raw >> 7 & 0x1f)
			rs2 := uint8(raw >> 2 & 0x1f)
			if raw>>12&0x1 == 0 {
				if rs2 == 0 { // c.jr
					rec.op, rec.rs1 = opCJR, rd
				} else { // c.mv
					rec.op, rec.rd, rec.rs2 = opCMV, rd, rs2
				}
			} else {
				switch {
				case rd == 0 && rs2 == 0: // c.ebreak
					rec.op = opEBREAK
				case rs2 == 0: // c.jalr
					rec.op, rec.rs1 = opCJALR, rd
				default: // c.add
					rec.op, rec.rd, rec.rs2 = opCADD, rd, rs2
				}
			}
		case 0b110: // c.swsp
			imm := uint32(raw>>9&0xf)<<2 | uint32(raw>>7&0x3)<<6
			rec.op, rec.rs2, rec.rs1, rec.imm = opCSWSP, uint8(raw>>2&0x1f), 2, imm
		default:
			return illegal16(raw)
		}
	}
	return rec
}

// immCI is the sign-extended 6-bit CI-format immediate.
func immCI(raw uint16) uint32 {
	return sext(uint32(raw>>12&0x1)<<5|uint32(raw>>2&0x1f), 6)
}

// immCLS is the zero-extended word offset shared by c.lw and c.sw.
func immCLS(raw uint16) uint32 {
	return uint32(raw>>10&0x7)<<3 | uint32(raw>>6&0x1)<<2 | uint32(raw>>5&0x1)<<6
}

// immCJ is the sign-extended 12-bit CJ-format jump offset.
func immCJ(raw uint16) uint32 {
	imm := uint32(raw>>12&0x1)<<11 | uint32(raw>>11&0x1)<<4 |
		uint32(raw>>9&0x3)<<8 | uint32(raw>>8&0x1)<<10 |
		uint32(raw>>7&0x1)<<6 | uint32(raw>>6&0x1)<<7 |
		uint32(raw>>3&0x7)<<1 | uint32(raw>>2&0x1)<<5
	return sext(imm, 12)
}

// immCB is the sign-extended 9-bit CB-format branch offset.
func immCB(raw uint16) uint32 {
	imm := uint32(raw>>12&0x1)<<8 | uint32(raw>>10&0x3)<<3 |
		uint32(raw>>5&0x3)<<6 | uint32(raw>>3&0x3)<<1 | uint32(raw>>2&0x1)<<5
	return sext(imm, 9)
}
