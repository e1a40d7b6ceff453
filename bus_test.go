package rv32

import "testing"

func TestDefaultBusRAM(t *testing.T) {
	b := NewDefaultBus(0x1000)

	b.Write8(0x10, 0xab)
	if got := b.Read8(0x10); got != 0xab {
		t.Errorf("Read8 = %#x, want 0xab", got)
	}

	b.Write16(0x20, 0x1234)
	if got := b.Read16(0x20); got != 0x1234 {
		t.Errorf("Read16 = %#x, want 0x1234", got)
	}
	// Little-endian byte order.
	if got := b.Read8(0x20); got != 0x34 {
		t.Errorf("low byte = %#x, want 0x34", got)
	}

	b.Write32(0x30, 0xdeadbeef)
	if got := b.Read32(0x30); got != 0xdeadbeef {
		t.Errorf("Read32 = %#x, want 0xdeadbeef", got)
	}
	if got := b.Read8(0x33); got != 0xde {
		t.Errorf("high byte = %#x, want 0xde", got)
	}
}

func TestDefaultBusPlicWindow(t *testing.T) {
	b := NewDefaultBus(0x1000)

	b.Write32(PlicBase+0x000004, 5)
	if got := b.Plic().priorities[1]; got != 5 {
		t.Errorf("priority[1] = %d, want 5", got)
	}

	b.Plic().SetInterrupt(1)
	if got := b.Read32(PlicBase + 0x001000); got != 1<<1 {
		t.Errorf("pending through window = %#x, want %#x", got, 1<<1)
	}
}

func TestDefaultBusClintWindow(t *testing.T) {
	b := NewDefaultBus(0x1000)

	b.Write32(ClintBase+0x4000, 99)
	if got := b.Read32(ClintBase + 0x4000); got != 99 {
		t.Errorf("mtimecmp low through window = %d, want 99", got)
	}

	b.Write32(ClintBase, 1)
	if !b.SoftwareInterruptLevel() {
		t.Error("software level not asserted after msip write")
	}
}

func TestDefaultBusClaimCompletePassThrough(t *testing.T) {
	b := NewDefaultBus(0x1000)

	b.Write32(PlicBase+0x000004, 5)
	b.Write32(PlicBase+0x002000, 1<<1)
	b.Plic().SetInterrupt(1)

	// A 32-bit read of the claim register performs the claim.
	if got := b.Read32(PlicBase + 0x200004); got != 1 {
		t.Errorf("claim through window = %d, want 1", got)
	}
	if got := b.PlicClaim(); got != 0 {
		t.Errorf("second claim = %d, want 0", got)
	}

	b.Plic().ClearInterrupt(1)
	b.Write32(PlicBase+0x200004, 1) // complete
	if b.InterruptLevel() {
		t.Error("interrupt level asserted after complete with line low")
	}
}

func TestLoadBinary(t *testing.T) {
	b := NewDefaultBus(0x100)

	if err := b.LoadBinary([]byte{1, 2, 3, 4}, 0x10); err != nil {
		t.Fatal(err)
	}
	if got := b.Read32(0x10); got != 0x04030201 {
		t.Errorf("Read32 = %#x, want 0x04030201", got)
	}

	if err := b.LoadBinary(make([]byte, 0x200), 0); err == nil {
		t.Error("oversized image accepted, want error")
	}
	if err := b.LoadBinary([]byte{1}, 0x100); err == nil {
		t.Error("out-of-range offset accepted, want error")
	}
}
