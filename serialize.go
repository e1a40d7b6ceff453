package rv32

import (
	"encoding/binary"
	"errors"
)

// cpuSerializeVersion is incremented whenever the binary layout changes.
const cpuSerializeVersion = 1

// cpuSerializeSize is the number of bytes produced by CPU.Serialize.
// Update this constant whenever the binary layout changes.
const cpuSerializeSize = 170

// SerializeSize returns the number of bytes needed for Serialize.
func (c *CPU) SerializeSize() int { return cpuSerializeSize }

// Serialize writes the architectural CPU state into buf, which must be
// at least SerializeSize() bytes. The decoded-instruction cache is not
// included (it is rebuilt on demand) and neither are the bus devices,
// which belong to the host.
func (c *CPU) Serialize(buf []byte) error {
	if len(buf) < cpuSerializeSize {
		return errors.New("rv32: serialize buffer too small")
	}

	buf[0] = cpuSerializeVersion
	be := binary.BigEndian
	off := 1

	for i := 0; i < 32; i++ {
		be.PutUint32(buf[off:], c.regs[i])
		off += 4
	}

	be.PutUint32(buf[off:], c.pc)
	off += 4
	buf[off] = uint8(c.mode)
	off++

	for _, v := range c.csrSnapshot() {
		be.PutUint32(buf[off:], v)
		off += 4
	}
	return nil
}

// Deserialize restores CPU state from buf, which must be at least
// SerializeSize() bytes. Returns an error if the buffer is too small or
// the version does not match. The cache is flushed.
func (c *CPU) Deserialize(buf []byte) error {
	if len(buf) < cpuSerializeSize {
		return errors.New("rv32: deserialize buffer too small")
	}
	if buf[0] != cpuSerializeVersion {
		return errors.New("rv32: unsupported serialize version")
	}

	be := binary.BigEndian
	off := 1

	for i := 0; i < 32; i++ {
		c.regs[i] = be.Uint32(buf[off:])
		off += 4
	}

	c.pc = be.Uint32(buf[off:])
	off += 4
	c.mode = PrivilegeMode(buf[off])
	off++

	fields := c.csrFields()
	for _, p := range fields {
		*p = be.Uint32(buf[off:])
		off += 4
	}

	c.cache.clear()
	return nil
}

// csrFields lists the CSR file's fields in serialization order.
func (c *CPU) csrFields() []*uint32 {
	f := &c.csr
	return []*uint32{
		&f.mstatus, &f.mie, &f.mtvec, &f.mcounteren, &f.mscratch,
		&f.mepc, &f.mcause, &f.mtval, &f.mip,
	}
}

func (c *CPU) csrSnapshot() []uint32 {
	fields := c.csrFields()
	out := make([]uint32, len(fields))
	for i, p := range fields {
		out[i] = *p
	}
	return out
}
