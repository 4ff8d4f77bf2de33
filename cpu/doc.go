// Package cpu implements a MOS 6502 family processor core.
//
// The core owns the register file, status flag packing, the stack page
// discipline, interrupt sequencing, and the fetch-decode-execute loop.
// Instruction semantics come from outside as a 256-entry Table of
// opcode descriptors; the ins package supplies the documented 6502
// set. Memory is reached through a bus of prioritized regions.
//
// The dispatcher advances PC past the instruction before invoking its
// handler, so control transfer handlers simply overwrite PC.
package cpu
