// Package rv32 implements a cycle-stepped RV32IMC + Zicsr emulator core.
//
// The core models a single hart with:
//   - 32 general-purpose 32-bit registers (x0 hard-wired to zero)
//   - A 32-bit program counter, always 2-aligned
//   - Machine and User privilege modes
//   - The machine-mode CSR file needed for trap delivery
//   - A page-indexed decoded-instruction cache
//
// Memory and devices live behind the Bus interface supplied to each
// Step call; DefaultBus provides RAM overlaid with the PLIC and CLINT
// windows. Architectural errors surface as traps through the StepResult
// and the CSR file, never as Go errors.
package rv32

import (
	"fmt"
	"strings"
)

// PrivilegeMode is the hart's current privilege level.
type PrivilegeMode uint8

const (
	User       PrivilegeMode = 0
	Supervisor PrivilegeMode = 1
	Machine    PrivilegeMode = 3
)

func (m PrivilegeMode) String() string {
	switch m {
	case User:
		return "User"
	case Supervisor:
		return "Supervisor"
	case Machine:
		return "Machine"
	}
	return fmt.Sprintf("PrivilegeMode(%d)", uint8(m))
}

// StepKind classifies the outcome of a Step call.
type StepKind uint8

const (
	// StepNormal: the instruction completed and pc advanced by Size.
	StepNormal StepKind = iota
	// StepJumped: the instruction wrote pc itself.
	StepJumped
	// StepTrap: trap entry completed; pc is the trap vector and Cause
	// matches mcause.
	StepTrap
)

// StepResult reports what a single Step did.
type StepResult struct {
	Kind  StepKind
	Size  int    // executed instruction width in bytes (StepNormal only)
	Cause uint32 // trap cause (StepTrap only)
}

// CPU is the processor core. All state is owned by the core and mutated
// only from within Step; the bus is borrowed for the duration of each
// call.
type CPU struct {
	regs  [32]uint32
	pc    uint32
	csr   csrFile
	mode  PrivilegeMode
	cache instCache
}

// New creates a core starting in Machine mode at the given pc.
func New(pc uint32) *CPU {
	return &CPU{pc: pc, mode: Machine}
}

// Step executes one instruction: advance the bus tick, deliver a
// pending interrupt if one is armed, otherwise fetch (through the
// decoded-instruction cache), execute, and advance pc by the
// instruction width.
func (c *CPU) Step(bus Bus) StepResult {
	bus.Tick()

	if cause, ok := c.checkInterrupt(bus); ok {
		c.handleTrap(cause, 0)
		return StepResult{Kind: StepTrap, Cause: cause}
	}

	rec := c.cache.fetch(c.pc, bus)
	res := c.execute(rec, bus)
	c.regs[0] = 0

	switch res.action {
	case actJumped:
		return StepResult{Kind: StepJumped}
	case actTrap:
		var tval uint32
		if res.cause == causeIllegalInstruction {
			tval = rec.raw
		}
		c.handleTrap(res.cause, tval)
		return StepResult{Kind: StepTrap, Cause: res.cause}
	}
	c.pc += uint32(rec.size)
	return StepResult{Kind: StepNormal, Size: int(rec.size)}
}

// Reg returns general-purpose register i.
func (c *CPU) Reg(i int) uint32 { return c.regs[i] }

// SetReg stores val into general-purpose register i. Writes to x0 are
// discarded.
func (c *CPU) SetReg(i int, val uint32) {
	if i != 0 {
		c.regs[i] = val
	}
}

// PC returns the current program counter.
func (c *CPU) PC() uint32 { return c.pc }

// SetPC sets the program counter.
func (c *CPU) SetPC(pc uint32) { c.pc = pc }

// Mode returns the current privilege mode.
func (c *CPU) Mode() PrivilegeMode { return c.mode }

// ReadCSR reads a CSR with Machine privilege, for hosts and test
// setups. Unknown addresses read as zero.
func (c *CPU) ReadCSR(addr uint32) uint32 {
	val, _ := c.csr.read(addr, Machine)
	return val
}

// WriteCSR writes a CSR with Machine privilege, for hosts and test
// setups. Writes to read-only or unknown addresses are discarded.
func (c *CPU) WriteCSR(addr uint32, val uint32) {
	c.csr.write(addr, val, Machine)
}

// ClaimInterrupt acknowledges the highest-priority external interrupt
// through the bus and returns its source ID, or 0.
func (c *CPU) ClaimInterrupt(bus Bus) uint32 {
	return bus.PlicClaim()
}

// CompleteInterrupt retires a claimed external interrupt source.
func (c *CPU) CompleteInterrupt(bus Bus, sourceID uint32) {
	bus.PlicComplete(sourceID)
}

// FlushCacheLine invalidates the decoded-instruction page containing
// addr.
func (c *CPU) FlushCacheLine(addr uint32) {
	c.cache.invalidate(addr)
}

// FlushCache invalidates every decoded-instruction page.
func (c *CPU) FlushCache() {
	c.cache.clear()
}

// DumpRegisters renders the register file and pc for debugging.
func (c *CPU) DumpRegisters() string {
	var sb strings.Builder
	for i, reg := range c.regs {
		fmt.Fprintf(&sb, "x%02d: 0x%08x\n", i, reg)
	}
	fmt.Fprintf(&sb, "pc : 0x%08x\n", c.pc)
	return sb.String()
}

// setReg writes rd, discarding writes to x0.
func (c *CPU) setReg(rd uint8, val uint32) {
	if rd != 0 {
		c.regs[rd] = val
	}
}
