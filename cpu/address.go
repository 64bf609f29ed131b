// Copyright 2026 Rachel Finch. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cpu

// Mode describes a memory addressing mode.
type Mode byte

// All memory addressing modes used by documented opcodes.
const (
	IMM Mode = iota // Immediate
	IMP             // Implied (no operand)
	ACC             // Accumulator (no operand)
	REL             // Relative
	ZPG             // Zero Page
	ZPX             // Zero Page,X
	ZPY             // Zero Page,Y
	ABS             // Absolute
	ABX             // Absolute,X
	ABY             // Absolute,Y
	IND             // (Indirect)
	IDX             // (Indirect,X)
	IDY             // (Indirect),Y
)

// Convert a 1- or 2-byte operand into an address.
func operandToAddress(operand []byte) uint16 {
	switch len(operand) {
	case 1:
		return uint16(operand[0])
	case 2:
		return uint16(operand[0]) | uint16(operand[1])<<8
	}
	return 0
}

// Return the address 'addr' offset by 'offset'. If the offset carried
// into the high address byte, return pageCrossed as true.
func offsetAddress(addr uint16, offset byte) (newAddr uint16, pageCrossed bool) {
	newAddr = addr + uint16(offset)
	pageCrossed = ((newAddr & 0xff00) != (addr & 0xff00))
	return newAddr, pageCrossed
}

// Offset a zero-page address 'addr' by 'offset', wrapping within the
// zero page.
func offsetZeroPage(addr uint16, offset byte) uint16 {
	return uint16(byte(addr) + offset)
}

// Given the 1-byte stack pointer register, return the corresponding
// page-1 memory address.
func stackAddress(offset byte) uint16 {
	return uint16(0x100) + uint16(offset)
}

// Read a 16-bit pointer from the zero page. When the pointer starts at
// $FF, the high byte is fetched from $00; the zero page wraps onto
// itself.
func (cpu *CPU) loadZeroPageAddress(zpaddr uint16) uint16 {
	lo := cpu.Mem.LoadByte(zpaddr)
	hi := cpu.Mem.LoadByte(offsetZeroPage(zpaddr, 1))
	return uint16(lo) | uint16(hi)<<8
}

// Read the 16-bit target of an indirect jump. A pointer placed at the
// end of a page fetches its high byte from the start of that same
// page, reproducing the NMOS part's wraparound defect: JMP ($12FF)
// reads the low byte from $12FF and the high byte from $1200.
func (cpu *CPU) loadIndirectAddress(addr uint16) uint16 {
	lo := cpu.Mem.LoadByte(addr)
	hi := cpu.Mem.LoadByte((addr & 0xff00) | uint16(byte(addr)+1))
	return uint16(lo) | uint16(hi)<<8
}
