package rv32

import "math"

// M-extension multiply and divide. The divide instructions never trap:
// division by zero and signed overflow produce the architecturally
// defined fixed results instead.

func (c *CPU) mul(rd, rs1, rs2 uint8) execResult {
	c.setReg(rd, c.regs[rs1]*c.regs[rs2])
	return resNext
}

func (c *CPU) mulh(rd, rs1, rs2 uint8) execResult {
	prod := int64(int32(c.regs[rs1])) * int64(int32(c.regs[rs2]))
	c.setReg(rd, uint32(prod>>32))
	return resNext
}

// mulhsu is signed x unsigned. The extreme products still fit in 64
// bits, so a single widening multiply suffices.
func (c *CPU) mulhsu(rd, rs1, rs2 uint8) execResult {
	prod := int64(int32(c.regs[rs1])) * int64(c.regs[rs2])
	c.setReg(rd, uint32(uint64(prod)>>32))
	return resNext
}

func (c *CPU) mulhu(rd, rs1, rs2 uint8) execResult {
	prod := uint64(c.regs[rs1]) * uint64(c.regs[rs2])
	c.setReg(rd, uint32(prod>>32))
	return resNext
}

func (c *CPU) div(rd, rs1, rs2 uint8) execResult {
	dividend := int32(c.regs[rs1])
	divisor := int32(c.regs[rs2])

	var result int32
	switch {
	case divisor == 0:
		result = -1
	case dividend == math.MinInt32 && divisor == -1:
		result = math.MinInt32
	default:
		result = dividend / divisor
	}
	c.setReg(rd, uint32(result))
	return resNext
}

func (c *CPU) divu(rd, rs1, rs2 uint8) execResult {
	dividend := c.regs[rs1]
	divisor := c.regs[rs2]

	result := uint32(math.MaxUint32)
	if divisor != 0 {
		result = dividend / divisor
	}
	c.setReg(rd, result)
	return resNext
}

func (c *CPU) rem(rd, rs1, rs2 uint8) execResult {
	dividend := int32(c.regs[rs1])
	divisor := int32(c.regs[rs2])

	var result int32
	switch {
	case divisor == 0:
		result = dividend
	case dividend == math.MinInt32 && divisor == -1:
		result = 0
	default:
		result = dividend % divisor
	}
	c.setReg(rd, uint32(result))
	return resNext
}

func (c *CPU) remu(rd, rs1, rs2 uint8) execResult {
	dividend := c.regs[rs1]
	divisor := c.regs[rs2]

	result := dividend
	if divisor != 0 {
		result = dividend % divisor
	}
	c.setReg(rd, result)
	return resNext
}
