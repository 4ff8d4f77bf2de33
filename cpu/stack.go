package cpu

// The stack lives in the fixed stack page, reached through the bus
// direct path. SP moves modulo 256; capacity is only enforced by the
// dispatcher's strict mode checks.

// PushByte stores value at the stack pointer and moves it down.
func (cpu *Cpu) PushByte(value uint8) {
	cpu.Bus.WriteDirect(STACK_BASE+uint16(cpu.State.SP), value)
	cpu.State.SP--
}

// PullByte moves the stack pointer up and loads the byte there.
func (cpu *Cpu) PullByte() (value uint8) {
	cpu.State.SP++
	value = cpu.Bus.ReadDirect(STACK_BASE + uint16(cpu.State.SP))
	return
}

// PushWord pushes the high byte first, so the word reads back
// little-endian from the stack page.
func (cpu *Cpu) PushWord(value uint16) {
	cpu.PushByte(uint8(value >> 8))
	cpu.PushByte(uint8(value))
}

// PullWord pulls a word pushed by PushWord.
func (cpu *Cpu) PullWord() (value uint16) {
	value = uint16(cpu.PullByte())
	value |= uint16(cpu.PullByte()) << 8
	return
}

// StackFree returns how many bytes fit before the stack pointer wraps.
func (cpu *Cpu) StackFree() uint8 {
	return cpu.State.SP
}

// StackUsed returns how many bytes are on the stack.
func (cpu *Cpu) StackUsed() uint8 {
	return 0xff - cpu.State.SP
}
