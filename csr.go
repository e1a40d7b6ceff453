package rv32

// Machine-mode CSR addresses implemented by the core.
const (
	csrMstatus    = 0x300
	csrMisa       = 0x301
	csrMie        = 0x304
	csrMtvec      = 0x305
	csrMcounteren = 0x306
	csrMscratch   = 0x340
	csrMepc       = 0x341
	csrMcause     = 0x342
	csrMtval      = 0x343
	csrMip        = 0x344
	csrMhartid    = 0xf14
)

// mstatus bit assignments.
const (
	mstatusMIE      = 1 << 3
	mstatusMPIE     = 1 << 7
	mstatusMPPShift = 11
	mstatusMPPMask  = 0x3 << mstatusMPPShift
)

// mstatusWriteMask limits which mstatus bits software can change.
const mstatusWriteMask = 0x807e_1888

// mie/mip bit assignments for the machine interrupt causes.
const (
	intMSI = 1 << 3  // machine software interrupt
	intMTI = 1 << 7  // machine timer interrupt
	intMEI = 1 << 11 // machine external interrupt
)

// misaValue advertises RV32 (MXL=1) with the I, M, C and U extensions.
const misaValue = 0x4010_1104

// csrFile is the control/status register bank. Trap bookkeeping fields
// are mutated directly by the trap pipeline; instruction-level access
// goes through read/write, which enforce the privilege and read-only
// rules encoded in the 12-bit address.
type csrFile struct {
	mstatus    uint32
	mie        uint32
	mtvec      uint32
	mcounteren uint32
	mscratch   uint32
	mepc       uint32
	mcause     uint32
	mtval      uint32
	mip        uint32
}

// counterCSR reports whether addr is one of the User-visible performance
// counters (cycle..hpmcounter31 and their high halves).
func counterCSR(addr uint32) bool {
	return addr >= 0xc00 && addr <= 0xc1f || addr >= 0xc80 && addr <= 0xc9f
}

// read returns the register value, or ok=false when the access must
// raise an illegal-instruction trap.
func (f *csrFile) read(addr uint32, mode PrivilegeMode) (uint32, bool) {
	if uint32(mode) < addr>>8&0x3 {
		return 0, false
	}
	if counterCSR(addr) {
		if mode < Machine && f.mcounteren>>(addr&0x1f)&1 == 0 {
			return 0, false
		}
		return 0, true
	}
	switch addr {
	case csrMstatus:
		return f.mstatus, true
	case csrMisa:
		return misaValue, true
	case csrMie:
		return f.mie, true
	case csrMtvec:
		return f.mtvec, true
	case csrMcounteren:
		return f.mcounteren, true
	case csrMscratch:
		return f.mscratch, true
	case csrMepc:
		return f.mepc, true
	case csrMcause:
		return f.mcause, true
	case csrMtval:
		return f.mtval, true
	case csrMip:
		return f.mip, true
	case csrMhartid:
		return 0, true
	}
	return 0, false
}

// write stores val into the register, or returns false when the access
// must raise an illegal-instruction trap. Bits 11:10 of the address
// equal to 0b11 mark the register read-only.
func (f *csrFile) write(addr uint32, val uint32, mode PrivilegeMode) bool {
	if uint32(mode) < addr>>8&0x3 {
		return false
	}
	if addr>>10&0x3 == 0x3 {
		return false
	}
	switch addr {
	case csrMstatus:
		f.mstatus = f.mstatus&^mstatusWriteMask | val&mstatusWriteMask
		// MPP written with Supervisor or a reserved encoding demotes to User.
		if mpp := f.mstatus & mstatusMPPMask >> mstatusMPPShift; mpp == 1 || mpp == 2 {
			f.mstatus &^= mstatusMPPMask
		}
	case csrMisa:
		// Architecturally writable, semantically a fixed description.
	case csrMie:
		f.mie = val
	case csrMtvec:
		f.mtvec = val
	case csrMcounteren:
		f.mcounteren = val
	case csrMscratch:
		f.mscratch = val
	case csrMepc:
		f.mepc = val
	case csrMcause:
		f.mcause = val
	case csrMtval:
		f.mtval = val
	case csrMip:
		f.mip = val
	default:
		return false
	}
	return true
}
