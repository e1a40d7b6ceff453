package rv32

// plicSourceCount is the number of source slots. Slot 0 is unused: a
// source ID of 0 means "no source".
const plicSourceCount = 32

// Plic is the platform-level interrupt controller: up to 31 external
// sources with per-source priority, gated by an enable mask and a
// priority threshold, acknowledged through the claim/complete protocol.
//
// Register window layout (32-bit offsets from the window base):
//
//	0x000004..0x00007c  priority for sources 1..31
//	0x001000            pending bitmask (read-only from software)
//	0x002000            enable bitmask
//	0x200000            threshold
//	0x200004            read = claim, write = complete
type Plic struct {
	priorities [plicSourceCount]uint32
	pending    uint32
	enabled    uint32
	threshold  uint32

	// claimed tracks sources handed out by Claim and not yet completed;
	// they are withheld from further claims and from pending.
	claimed uint32

	// ip is the raw device line per source, for level-triggered re-pend
	// on Complete.
	ip uint32
}

func NewPlic() *Plic {
	return &Plic{}
}

func (p *Plic) read(offset uint32) uint32 {
	switch {
	case offset <= 0x00007c:
		id := offset / 4
		if id < plicSourceCount {
			return p.priorities[id]
		}
	case offset == 0x001000:
		return p.pending
	case offset == 0x002000:
		return p.enabled
	case offset == 0x200000:
		return p.threshold
	case offset == 0x200004:
		return p.Claim()
	}
	return 0
}

func (p *Plic) write(offset uint32, val uint32) {
	switch {
	case offset <= 0x00007c:
		id := offset / 4
		if id < plicSourceCount {
			p.priorities[id] = val
		}
	case offset == 0x001000:
		// pending is read-only from software
	case offset == 0x002000:
		p.enabled = val
	case offset == 0x200000:
		p.threshold = val
	case offset == 0x200004:
		p.Complete(val)
	}
}

// SetInterrupt raises the raw line for a source. The source becomes
// pending unless it is currently claimed.
func (p *Plic) SetInterrupt(sourceID uint32) {
	if sourceID == 0 || sourceID >= plicSourceCount {
		return
	}
	p.ip |= 1 << sourceID
	if p.claimed>>sourceID&1 == 0 {
		p.pending |= 1 << sourceID
	}
}

// ClearInterrupt lowers the raw line for a source and withdraws its
// pending state.
func (p *Plic) ClearInterrupt(sourceID uint32) {
	if sourceID == 0 || sourceID >= plicSourceCount {
		return
	}
	p.ip &^= 1 << sourceID
	p.pending &^= 1 << sourceID
}

// Claim selects the pending, enabled, unclaimed source with the highest
// priority above the threshold, marks it claimed, and returns its ID.
// Returns 0 when no source qualifies. Sources are scanned in ascending
// ID order keeping the strictly-highest priority, so ties break to the
// lower ID.
func (p *Plic) Claim() uint32 {
	candidates := p.pending & p.enabled &^ p.claimed

	var maxPriority, maxID uint32
	for id := uint32(1); id < plicSourceCount; id++ {
		if candidates>>id&1 == 1 && p.priorities[id] > maxPriority {
			maxPriority = p.priorities[id]
			maxID = id
		}
	}

	if maxID == 0 || maxPriority <= p.threshold {
		return 0
	}
	p.pending &^= 1 << maxID
	p.claimed |= 1 << maxID
	return maxID
}

// Complete retires a claimed source. If the raw device line is still
// asserted the source immediately becomes pending again (level-triggered
// behavior).
func (p *Plic) Complete(sourceID uint32) {
	if sourceID == 0 || sourceID >= plicSourceCount {
		return
	}
	p.claimed &^= 1 << sourceID
	if p.ip>>sourceID&1 == 1 {
		p.pending |= 1 << sourceID
	}
}

// InterruptLevel reports whether any pending and enabled source has a
// priority strictly above the threshold.
func (p *Plic) InterruptLevel() bool {
	armed := p.pending & p.enabled
	if armed == 0 {
		return false
	}
	var maxPriority uint32
	for id := uint32(1); id < plicSourceCount; id++ {
		if armed>>id&1 == 1 && p.priorities[id] > maxPriority {
			maxPriority = p.priorities[id]
		}
	}
	return maxPriority > p.threshold
}
