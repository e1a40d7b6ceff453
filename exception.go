package rv32

import "log"

// Synchronous trap causes reachable from this core.
const (
	causeIllegalInstruction  = 2
	causeBreakpoint          = 3
	causeEcallFromUser       = 8
	causeEcallFromSupervisor = 9
	causeEcallFromMachine    = 11
)

// Asynchronous causes carry the interrupt flag in the high bit.
const (
	causeInterrupt       = 0x8000_0000
	causeMachineSoftware = causeInterrupt | 3
	causeMachineTimer    = causeInterrupt | 7
	causeMachineExternal = causeInterrupt | 11
)

// handleTrap performs trap entry: saves pc and cause, stacks the
// interrupt-enable and privilege state in mstatus, enters Machine mode
// and redirects pc through mtvec. For interrupts in vectored mode the
// target is offset by four times the cause code.
func (c *CPU) handleTrap(cause uint32, tval uint32) {
	if cause == causeIllegalInstruction {
		log.Printf("[rv32] illegal instruction %#08x at pc=%#08x", tval, c.pc)
	}

	c.csr.mepc = c.pc
	c.csr.mcause = cause
	c.csr.mtval = tval

	mie := c.csr.mstatus >> 3 & 1
	c.csr.mstatus &^= mstatusMPIE
	c.csr.mstatus |= mie << 7
	c.csr.mstatus &^= mstatusMIE

	c.csr.mstatus &^= mstatusMPPMask
	c.csr.mstatus |= uint32(c.mode) << mstatusMPPShift

	c.mode = Machine

	base := c.csr.mtvec &^ 0x3
	if cause&causeInterrupt != 0 && c.csr.mtvec&0x1 == 1 {
		c.pc = base + 4*(cause&^causeInterrupt)
	} else {
		c.pc = base
	}
}
