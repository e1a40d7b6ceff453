package rv32

import "testing"

func TestADDI(t *testing.T) {
	cpu := New(0)
	bus := &testBus{}

	cpu.regs[2] = 5
	// ADDI x1, x2, 10
	bus.writeInst32(0, 0x00a10093)

	cpu.Step(bus)

	if cpu.regs[1] != 15 {
		t.Errorf("x1 = %d, want 15", cpu.regs[1])
	}
}

func TestADDIWraps(t *testing.T) {
	cpu := New(0)
	bus := &testBus{}

	cpu.regs[2] = 0xffffffff
	// ADDI x1, x2, 1
	bus.writeInst32(0, 0x00110093)

	cpu.Step(bus)

	if cpu.regs[1] != 0 {
		t.Errorf("x1 = %#x, want 0", cpu.regs[1])
	}
}

func TestSLTI(t *testing.T) {
	tests := []struct {
		name string
		rs1  uint32
		want uint32
	}{
		{"less", 5, 1},
		{"equal", 10, 0},
		{"negative rs1", 0xfffffff6, 1}, // -10 < 10
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cpu := New(0)
			bus := &testBus{}
			cpu.regs[2] = tt.rs1
			// SLTI x1, x2, 10
			bus.writeInst32(0, 0x00a12093)

			cpu.Step(bus)

			if cpu.regs[1] != tt.want {
				t.Errorf("x1 = %d, want %d", cpu.regs[1], tt.want)
			}
		})
	}
}

func TestSLTIU(t *testing.T) {
	cpu := New(0)
	bus := &testBus{}

	cpu.regs[2] = 0xfffffff6 // large unsigned, not less than 10
	// SLTIU x1, x2, 10
	bus.writeInst32(0, 0x00a13093)

	cpu.Step(bus)

	if cpu.regs[1] != 0 {
		t.Errorf("x1 = %d, want 0", cpu.regs[1])
	}
}

func TestLogicalImmediates(t *testing.T) {
	tests := []struct {
		name string
		inst uint32
		rs1  uint32
		want uint32
	}{
		{"xori", 0x0ff14093, 0x0f0, 0x00f},
		{"ori", 0x0ff16093, 0xf00, 0xfff},
		{"andi", 0x0ff17093, 0xfff, 0x0ff},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cpu := New(0)
			bus := &testBus{}
			cpu.regs[2] = tt.rs1
			bus.writeInst32(0, tt.inst)

			cpu.Step(bus)

			if cpu.regs[1] != tt.want {
				t.Errorf("x1 = %#x, want %#x", cpu.regs[1], tt.want)
			}
		})
	}
}

func TestShiftImmediates(t *testing.T) {
	tests := []struct {
		name string
		inst uint32
		rs1  uint32
		want uint32
	}{
		{"slli", 0x00411093, 0x1, 0x10},
		{"srli", 0x00415093, 0x80000000, 0x08000000},
		{"srai", 0x40415093, 0x80000000, 0xf8000000},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cpu := New(0)
			bus := &testBus{}
			cpu.regs[2] = tt.rs1
			bus.writeInst32(0, tt.inst)

			cpu.Step(bus)

			if cpu.regs[1] != tt.want {
				t.Errorf("x1 = %#x, want %#x", cpu.regs[1], tt.want)
			}
		})
	}
}

func TestShiftImmediateOutOfRange(t *testing.T) {
	cpu := New(0)
	bus := &testBus{}

	// SLLI with a set bit in imm[11:5]: illegal.
	bus.writeInst32(0, 0x02411093)

	res := stepExpect(t, cpu, bus, StepTrap)
	if res.Cause != causeIllegalInstruction {
		t.Errorf("cause = %d, want %d", res.Cause, causeIllegalInstruction)
	}
}

func TestRegisterALU(t *testing.T) {
	tests := []struct {
		name string
		inst uint32
		rs1  uint32
		rs2  uint32
		want uint32
	}{
		{"add", 0x002081b3, 10, 20, 30},
		{"add wraps", 0x002081b3, 0xffffffff, 2, 1},
		{"sub", 0x402081b3, 10, 3, 7},
		{"sub wraps", 0x402081b3, 0, 1, 0xffffffff},
		{"sll", 0x002091b3, 1, 4, 16},
		{"sll by 32 is sll by 0", 0x002091b3, 0x1234, 32, 0x1234},
		{"slt true", 0x0020a1b3, 0xfffffff6, 10, 1},
		{"slt false", 0x0020a1b3, 10, 0xfffffff6, 0},
		{"sltu true", 0x0020b1b3, 10, 0xfffffff6, 1},
		{"sltu false", 0x0020b1b3, 0xfffffff6, 10, 0},
		{"xor", 0x0020c1b3, 0x0f0f, 0x00ff, 0x0ff0},
		{"srl", 0x0020d1b3, 0x80000000, 4, 0x08000000},
		{"srl by 32 is srl by 0", 0x0020d1b3, 0x80000000, 32, 0x80000000},
		{"sra", 0x4020d1b3, 0x80000000, 4, 0xf8000000},
		{"or", 0x0020e1b3, 0x0f00, 0x00f0, 0x0ff0},
		{"and", 0x0020f1b3, 0x0ff0, 0x00ff, 0x00f0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cpu := New(0)
			bus := &testBus{}
			cpu.regs[1] = tt.rs1
			cpu.regs[2] = tt.rs2
			bus.writeInst32(0, tt.inst)

			cpu.Step(bus)

			if cpu.regs[3] != tt.want {
				t.Errorf("x3 = %#x, want %#x", cpu.regs[3], tt.want)
			}
		})
	}
}
