package cpu

const (
	STACK_BASE = uint16(0x0100) // First address of the stack page.
	STACK_TOP  = uint16(0x01ff) // Last address of the stack page.

	VECTOR_NMI   = uint16(0xfffa) // Non-maskable interrupt vector.
	VECTOR_RESET = uint16(0xfffc) // Reset vector.
	VECTOR_IRQ   = uint16(0xfffe) // Interrupt request vector.
)
