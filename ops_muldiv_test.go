package rv32

import "testing"

func TestMultiply(t *testing.T) {
	tests := []struct {
		name string
		inst uint32
		rs1  uint32
		rs2  uint32
		want uint32
	}{
		{"mul", 0x022081b3, 6, 7, 42},
		{"mul wraps", 0x022081b3, 0x80000000, 2, 0},
		{"mulh pos pos", 0x022091b3, 0x40000000, 4, 1},
		{"mulh neg pos", 0x022091b3, 0xffffffff, 2, 0xffffffff},                    // -1 * 2
		{"mulh neg neg", 0x022091b3, 0xffffffff, 0xffffffff, 0},                    // -1 * -1 = 1
		{"mulhsu neg times large", 0x0220a1b3, 0xffffffff, 0xffffffff, 0xffffffff}, // -1 * (2^32-1)
		{"mulhsu pos", 0x0220a1b3, 2, 0x80000000, 1},
		{"mulhu", 0x0220b1b3, 0xffffffff, 0xffffffff, 0xfffffffe},
		{"mulhu small", 0x0220b1b3, 0x10000, 0x10000, 1},
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

func TestDivide(t *testing.T) {
	tests := []struct {
		name string
		inst uint32
		rs1  uint32
		rs2  uint32
		want uint32
	}{
		{"div", 0x0220c1b3, 42, 6, 7},
		{"div negative", 0x0220c1b3, 0xffffffd6, 10, 0xfffffffc}, // -42 / 10 = -4
		{"div by zero", 0x0220c1b3, 42, 0, 0xffffffff},
		{"div overflow", 0x0220c1b3, 0x80000000, 0xffffffff, 0x80000000},
		{"divu", 0x0220d1b3, 42, 6, 7},
		{"divu large", 0x0220d1b3, 0xffffffff, 2, 0x7fffffff},
		{"divu by zero", 0x0220d1b3, 42, 0, 0xffffffff},
		{"rem", 0x0220e1b3, 43, 6, 1},
		{"rem negative", 0x0220e1b3, 0xffffffd6, 10, 0xfffffffe}, // -42 % 10 = -2
		{"rem by zero", 0x0220e1b3, 43, 0, 43},
		{"rem overflow", 0x0220e1b3, 0x80000000, 0xffffffff, 0},
		{"remu", 0x0220f1b3, 43, 6, 1},
		{"remu by zero", 0x0220f1b3, 43, 0, 43},
		{"remu large", 0x0220f1b3, 0xffffffff, 0x10, 0xf},
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
