// Copyright 2026 Rachel Finch. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cpu emulates the instruction-execution core of the 8-bit
// MOS 6502, including the Ricoh 2A03 variant found in the NES. It
// implements the full documented instruction set with cycle-accurate
// timing and NMI/IRQ/BRK/reset interrupt sequencing.
package cpu

import (
	"errors"
	"fmt"
	"sync/atomic"
)

// Variant selects which 6502 part the emulator reproduces.
type Variant byte

const (
	// NMOS6502 is the original MOS part, with a working decimal mode.
	NMOS6502 Variant = iota

	// Ricoh2A03 is the NES part. It behaves identically to the NMOS
	// 6502 except that the decimal flag has no effect on arithmetic.
	Ricoh2A03
)

// Errors returned by Step and Run.
var (
	// ErrIllegalOpcode is reported when the CPU fetches an opcode with
	// no documented encoding. The CPU halts until the next reset.
	ErrIllegalOpcode = errors.New("illegal opcode")

	// ErrHalted is reported when stepping a CPU that has already
	// halted on an illegal opcode.
	ErrHalted = errors.New("cpu halted")
)

// Interrupt vectors. Each holds a 16-bit little-endian target address.
const (
	vectorNMI   = 0xfffa
	vectorReset = 0xfffc
	vectorIRQ   = 0xfffe
	vectorBRK   = 0xfffe
)

// Cycles consumed by a hardware interrupt sequence and by reset.
const interruptCycles = 7

// CPU represents a single 6502 core bound to a memory bus. It is not
// safe to call Step, Run or Reset from more than one goroutine;
// SignalNMI and SetIRQ may be called from any goroutine.
type CPU struct {
	Variant Variant   // which silicon is emulated
	Reg     Registers // CPU registers
	Mem     Memory    // assigned memory
	Cycles  uint64    // total executed CPU cycles

	pageCrossed bool
	deltaCycles int8
	halted      bool
	nmiPending  atomic.Bool // edge latch, set by SignalNMI
	irqLine     atomic.Bool // level line, driven by SetIRQ
}

// NewCPU creates an emulated 6502 core bound to the specified memory.
// The register file starts in the power-on state; call Reset to begin
// execution at the reset vector.
func NewCPU(v Variant, m Memory) *CPU {
	cpu := &CPU{Variant: v, Mem: m}
	cpu.Reg.Init()
	return cpu
}

// SetPC updates the CPU program counter to 'addr'.
func (cpu *CPU) SetPC(addr uint16) {
	cpu.Reg.PC = addr
}

// Halted reports whether the CPU has stopped on an illegal opcode.
// A halted CPU refuses to step until it is reset.
func (cpu *CPU) Halted() bool {
	return cpu.halted
}

// SignalNMI latches an edge on the non-maskable interrupt line. The
// latch is consumed at the next instruction boundary regardless of the
// interrupt-disable flag. Repeated signals before the latch is
// consumed collapse into a single interrupt.
func (cpu *CPU) SignalNMI() {
	cpu.nmiPending.Store(true)
}

// SetIRQ drives the level-triggered interrupt request line. While the
// line is held high, an interrupt is taken at every instruction
// boundary at which the interrupt-disable flag is clear.
func (cpu *CPU) SetIRQ(level bool) {
	cpu.irqLine.Store(level)
}

// Reset performs the hardware reset sequence: the register file
// returns to its power-on state, the program counter is loaded from
// the reset vector, and any pending NMI latch or halt condition is
// discarded. Nothing is pushed onto the stack.
func (cpu *CPU) Reset() {
	cpu.Reg.Init()
	cpu.Reg.PC = cpu.Mem.LoadAddress(vectorReset)
	cpu.nmiPending.Store(false)
	cpu.halted = false
	cpu.Cycles += interruptCycles
}

// Step services a pending interrupt or executes the next instruction,
// and returns the number of cycles consumed, including any page-cross
// and branch penalties.
func (cpu *CPU) Step() (int, error) {
	if cpu.halted {
		return 0, ErrHalted
	}

	// Interrupt lines are sampled only between instructions. NMI wins
	// when both are pending; IRQ is masked by the interrupt-disable
	// flag and re-fires as long as the line is held.
	if cpu.nmiPending.CompareAndSwap(true, false) {
		cpu.interrupt(false, vectorNMI)
		cpu.Cycles += interruptCycles
		return interruptCycles, nil
	}
	if cpu.irqLine.Load() && !cpu.Reg.InterruptDisable {
		cpu.interrupt(false, vectorIRQ)
		cpu.Cycles += interruptCycles
		return interruptCycles, nil
	}

	// Fetch and decode.
	opcode := cpu.Mem.LoadByte(cpu.Reg.PC)
	inst := &instructions[opcode]
	if inst.fn == nil {
		cpu.halted = true
		return 0, fmt.Errorf("opcode $%02X at $%04X: %w", opcode, cpu.Reg.PC, ErrIllegalOpcode)
	}

	// Fetch the operand (if any) and advance the PC past the
	// instruction before executing it.
	var buf [2]byte
	operand := buf[:inst.Length-1]
	cpu.Mem.LoadBytes(cpu.Reg.PC+1, operand)
	cpu.Reg.PC += uint16(inst.Length)

	// Execute.
	cpu.pageCrossed = false
	cpu.deltaCycles = 0
	inst.fn(cpu, inst, operand)

	// Account for the cycle cost, including branch penalties and page
	// boundary crossings.
	n := int(int8(inst.Cycles) + cpu.deltaCycles)
	if cpu.pageCrossed {
		n += int(inst.BPCycles)
	}
	cpu.Cycles += uint64(n)
	return n, nil
}

// Run steps the CPU until at least 'cycles' cycles have been consumed
// and returns the number actually consumed. Execution stops early if
// the CPU faults.
func (cpu *CPU) Run(cycles uint64) (uint64, error) {
	var consumed uint64
	for consumed < cycles {
		n, err := cpu.Step()
		consumed += uint64(n)
		if err != nil {
			return consumed, err
		}
	}
	return consumed, nil
}

// Push the program counter and status onto the stack, disable
// interrupts, and continue at the address held in the vector. The
// break bit is set in the pushed status byte only for BRK.
func (cpu *CPU) interrupt(brk bool, vector uint16) {
	cpu.pushAddress(cpu.Reg.PC)
	cpu.push(cpu.Reg.SavePS(brk))
	cpu.Reg.InterruptDisable = true
	cpu.Reg.PC = cpu.Mem.LoadAddress(vector)
}

// Load a byte value using the requested addressing mode and the
// operand to determine where to load it from.
func (cpu *CPU) load(mode Mode, operand []byte) byte {
	switch mode {
	case IMM:
		return operand[0]
	case ZPG:
		zpaddr := operandToAddress(operand)
		return cpu.Mem.LoadByte(zpaddr)
	case ZPX:
		zpaddr := operandToAddress(operand)
		zpaddr = offsetZeroPage(zpaddr, cpu.Reg.X)
		return cpu.Mem.LoadByte(zpaddr)
	case ZPY:
		zpaddr := operandToAddress(operand)
		zpaddr = offsetZeroPage(zpaddr, cpu.Reg.Y)
		return cpu.Mem.LoadByte(zpaddr)
	case ABS:
		addr := operandToAddress(operand)
		return cpu.Mem.LoadByte(addr)
	case ABX:
		addr := operandToAddress(operand)
		addr, cpu.pageCrossed = offsetAddress(addr, cpu.Reg.X)
		return cpu.Mem.LoadByte(addr)
	case ABY:
		addr := operandToAddress(operand)
		addr, cpu.pageCrossed = offsetAddress(addr, cpu.Reg.Y)
		return cpu.Mem.LoadByte(addr)
	case IDX:
		zpaddr := operandToAddress(operand)
		zpaddr = offsetZeroPage(zpaddr, cpu.Reg.X)
		addr := cpu.loadZeroPageAddress(zpaddr)
		return cpu.Mem.LoadByte(addr)
	case IDY:
		zpaddr := operandToAddress(operand)
		addr := cpu.loadZeroPageAddress(zpaddr)
		addr, cpu.pageCrossed = offsetAddress(addr, cpu.Reg.Y)
		return cpu.Mem.LoadByte(addr)
	case ACC:
		return cpu.Reg.A
	default:
		panic("invalid addressing mode")
	}
}

// Load a 16-bit jump target using the requested addressing mode.
func (cpu *CPU) loadAddress(mode Mode, operand []byte) uint16 {
	switch mode {
	case ABS:
		return operandToAddress(operand)
	case IND:
		addr := operandToAddress(operand)
		return cpu.loadIndirectAddress(addr)
	default:
		panic("invalid addressing mode")
	}
}

// Store a byte value using the specified addressing mode and the
// operand to determine where to store it.
func (cpu *CPU) store(mode Mode, operand []byte, v byte) {
	switch mode {
	case ZPG:
		zpaddr := operandToAddress(operand)
		cpu.Mem.StoreByte(zpaddr, v)
	case ZPX:
		zpaddr := operandToAddress(operand)
		zpaddr = offsetZeroPage(zpaddr, cpu.Reg.X)
		cpu.Mem.StoreByte(zpaddr, v)
	case ZPY:
		zpaddr := operandToAddress(operand)
		zpaddr = offsetZeroPage(zpaddr, cpu.Reg.Y)
		cpu.Mem.StoreByte(zpaddr, v)
	case ABS:
		addr := operandToAddress(operand)
		cpu.Mem.StoreByte(addr, v)
	case ABX:
		addr := operandToAddress(operand)
		addr, _ = offsetAddress(addr, cpu.Reg.X)
		cpu.Mem.StoreByte(addr, v)
	case ABY:
		addr := operandToAddress(operand)
		addr, _ = offsetAddress(addr, cpu.Reg.Y)
		cpu.Mem.StoreByte(addr, v)
	case IDX:
		zpaddr := operandToAddress(operand)
		zpaddr = offsetZeroPage(zpaddr, cpu.Reg.X)
		addr := cpu.loadZeroPageAddress(zpaddr)
		cpu.Mem.StoreByte(addr, v)
	case IDY:
		zpaddr := operandToAddress(operand)
		addr := cpu.loadZeroPageAddress(zpaddr)
		addr, _ = offsetAddress(addr, cpu.Reg.Y)
		cpu.Mem.StoreByte(addr, v)
	case ACC:
		cpu.Reg.A = v
	default:
		panic("invalid addressing mode")
	}
}

// Execute a taken branch using the instruction's relative operand. A
// taken branch costs one extra cycle, and one more if the target lies
// on a different page than the instruction that follows the branch.
func (cpu *CPU) branch(operand []byte) {
	offset := operandToAddress(operand)
	oldPC := cpu.Reg.PC
	if offset < 0x80 {
		cpu.Reg.PC += offset
	} else {
		cpu.Reg.PC -= 0x100 - offset
	}
	cpu.deltaCycles++
	if ((cpu.Reg.PC ^ oldPC) & 0xff00) != 0 {
		cpu.deltaCycles++
	}
}

// Push a value onto the stack. The stack pointer wraps within page 1.
func (cpu *CPU) push(v byte) {
	cpu.Mem.StoreByte(stackAddress(cpu.Reg.SP), v)
	cpu.Reg.SP--
}

// Push a 16-bit address onto the stack, high byte first.
func (cpu *CPU) pushAddress(addr uint16) {
	cpu.push(byte(addr >> 8))
	cpu.push(byte(addr))
}

// Pop a value from the stack and return it.
func (cpu *CPU) pop() byte {
	cpu.Reg.SP++
	return cpu.Mem.LoadByte(stackAddress(cpu.Reg.SP))
}

// Pop a 16-bit address off the stack.
func (cpu *CPU) popAddress() uint16 {
	lo := cpu.pop()
	hi := cpu.pop()
	return uint16(lo) | uint16(hi)<<8
}

// Update the Zero and Sign flags based on the value of 'v'.
func (cpu *CPU) updateNZ(v byte) {
	cpu.Reg.Zero = (v == 0)
	cpu.Reg.Sign = ((v & 0x80) != 0)
}

// decimalArithmetic reports whether ADC and SBC should operate on
// binary-coded decimal values. The Ricoh part wired the decimal flag
// to nothing, so arithmetic stays binary no matter what D holds.
func (cpu *CPU) decimalArithmetic() bool {
	return cpu.Reg.Decimal && cpu.Variant != Ricoh2A03
}

// Add with carry. In decimal mode the nibbles are added as BCD digits,
// with a half-carry folded into the high nibble.
func (cpu *CPU) adc(inst *Instruction, operand []byte) {
	acc := uint32(cpu.Reg.A)
	add := uint32(cpu.load(inst.Mode, operand))
	carry := boolToUint32(cpu.Reg.Carry)
	var v uint32

	if cpu.decimalArithmetic() {
		lo := (acc & 0x0f) + (add & 0x0f) + carry

		var carrylo uint32
		if lo >= 0x0a {
			carrylo = 0x10
			lo -= 0x0a
		}

		hi := (acc & 0xf0) + (add & 0xf0) + carrylo

		if hi >= 0xa0 {
			cpu.Reg.Carry = true
			hi -= 0xa0
		} else {
			cpu.Reg.Carry = false
		}

		v = hi | lo

		cpu.Reg.Overflow = ((acc^v)&0x80) != 0 && ((acc^add)&0x80) == 0
	} else {
		v = acc + add + carry
		cpu.Reg.Carry = (v >= 0x100)
		cpu.Reg.Overflow = (((acc & 0x80) == (add & 0x80)) && ((acc & 0x80) != (v & 0x80)))
	}

	cpu.Reg.A = byte(v)
	cpu.updateNZ(cpu.Reg.A)
}

// Subtract with carry. Carry acts as an inverted borrow.
func (cpu *CPU) sbc(inst *Instruction, operand []byte) {
	acc := uint32(cpu.Reg.A)
	sub := uint32(cpu.load(inst.Mode, operand))
	carry := boolToUint32(cpu.Reg.Carry)
	var v uint32

	if cpu.decimalArithmetic() {
		lo := 0x0f + (acc & 0x0f) - (sub & 0x0f) + carry

		var carrylo uint32
		if lo < 0x10 {
			lo -= 0x06
			carrylo = 0
		} else {
			lo -= 0x10
			carrylo = 0x10
		}

		hi := 0xf0 + (acc & 0xf0) - (sub & 0xf0) + carrylo

		if hi < 0x100 {
			cpu.Reg.Carry = false
			hi -= 0x60
		} else {
			cpu.Reg.Carry = true
			hi -= 0x100
		}

		v = hi | lo

		cpu.Reg.Overflow = ((acc^v)&0x80) != 0 && ((acc^sub)&0x80) != 0
	} else {
		v = 0xff + acc - sub + carry
		cpu.Reg.Carry = (v >= 0x100)
		cpu.Reg.Overflow = (((acc & 0x80) != (sub & 0x80)) && ((acc & 0x80) != (v & 0x80)))
	}

	cpu.Reg.A = byte(v)
	cpu.updateNZ(byte(v))
}

// Boolean AND
func (cpu *CPU) and(inst *Instruction, operand []byte) {
	cpu.Reg.A &= cpu.load(inst.Mode, operand)
	cpu.updateNZ(cpu.Reg.A)
}

// Boolean OR
func (cpu *CPU) ora(inst *Instruction, operand []byte) {
	cpu.Reg.A |= cpu.load(inst.Mode, operand)
	cpu.updateNZ(cpu.Reg.A)
}

// Boolean XOR
func (cpu *CPU) eor(inst *Instruction, operand []byte) {
	cpu.Reg.A ^= cpu.load(inst.Mode, operand)
	cpu.updateNZ(cpu.Reg.A)
}

// Arithmetic Shift Left
func (cpu *CPU) asl(inst *Instruction, operand []byte) {
	v := cpu.load(inst.Mode, operand)
	cpu.Reg.Carry = ((v & 0x80) != 0)
	v <<= 1
	cpu.updateNZ(v)
	cpu.store(inst.Mode, operand, v)
}

// Logical Shift Right
func (cpu *CPU) lsr(inst *Instruction, operand []byte) {
	v := cpu.load(inst.Mode, operand)
	cpu.Reg.Carry = ((v & 1) != 0)
	v >>= 1
	cpu.updateNZ(v)
	cpu.store(inst.Mode, operand, v)
}

// Rotate Left through the carry flag
func (cpu *CPU) rol(inst *Instruction, operand []byte) {
	tmp := cpu.load(inst.Mode, operand)
	v := (tmp << 1) | boolToByte(cpu.Reg.Carry)
	cpu.Reg.Carry = ((tmp & 0x80) != 0)
	cpu.updateNZ(v)
	cpu.store(inst.Mode, operand, v)
}

// Rotate Right through the carry flag
func (cpu *CPU) ror(inst *Instruction, operand []byte) {
	tmp := cpu.load(inst.Mode, operand)
	v := (tmp >> 1) | (boolToByte(cpu.Reg.Carry) << 7)
	cpu.Reg.Carry = ((tmp & 1) != 0)
	cpu.updateNZ(v)
	cpu.store(inst.Mode, operand, v)
}

// Bit Test
func (cpu *CPU) bit(inst *Instruction, operand []byte) {
	v := cpu.load(inst.Mode, operand)
	cpu.Reg.Zero = ((v & cpu.Reg.A) == 0)
	cpu.Reg.Sign = ((v & 0x80) != 0)
	cpu.Reg.Overflow = ((v & 0x40) != 0)
}

// Compare to accumulator
func (cpu *CPU) cmp(inst *Instruction, operand []byte) {
	v := cpu.load(inst.Mode, operand)
	cpu.Reg.Carry = (cpu.Reg.A >= v)
	cpu.updateNZ(cpu.Reg.A - v)
}

// Compare to X register
func (cpu *CPU) cpx(inst *Instruction, operand []byte) {
	v := cpu.load(inst.Mode, operand)
	cpu.Reg.Carry = (cpu.Reg.X >= v)
	cpu.updateNZ(cpu.Reg.X - v)
}

// Compare to Y register
func (cpu *CPU) cpy(inst *Instruction, operand []byte) {
	v := cpu.load(inst.Mode, operand)
	cpu.Reg.Carry = (cpu.Reg.Y >= v)
	cpu.updateNZ(cpu.Reg.Y - v)
}

// Branch if Carry Clear
func (cpu *CPU) bcc(inst *Instruction, operand []byte) {
	if !cpu.Reg.Carry {
		cpu.branch(operand)
	}
}

// Branch if Carry Set
func (cpu *CPU) bcs(inst *Instruction, operand []byte) {
	if cpu.Reg.Carry {
		cpu.branch(operand)
	}
}

// Branch if EQual (to zero)
func (cpu *CPU) beq(inst *Instruction, operand []byte) {
	if cpu.Reg.Zero {
		cpu.branch(operand)
	}
}

// Branch if Not Equal (not zero)
func (cpu *CPU) bne(inst *Instruction, operand []byte) {
	if !cpu.Reg.Zero {
		cpu.branch(operand)
	}
}

// Branch if MInus (negative)
func (cpu *CPU) bmi(inst *Instruction, operand []byte) {
	if cpu.Reg.Sign {
		cpu.branch(operand)
	}
}

// Branch if PLus (positive)
func (cpu *CPU) bpl(inst *Instruction, operand []byte) {
	if !cpu.Reg.Sign {
		cpu.branch(operand)
	}
}

// Branch if oVerflow Clear
func (cpu *CPU) bvc(inst *Instruction, operand []byte) {
	if !cpu.Reg.Overflow {
		cpu.branch(operand)
	}
}

// Branch if oVerflow Set
func (cpu *CPU) bvs(inst *Instruction, operand []byte) {
	if cpu.Reg.Overflow {
		cpu.branch(operand)
	}
}

// Break: a software interrupt through the BRK/IRQ vector. The pushed
// return address skips the byte after the BRK opcode, and the pushed
// status byte carries the break bit.
func (cpu *CPU) brk(inst *Instruction, operand []byte) {
	cpu.Reg.PC++
	cpu.interrupt(true, vectorBRK)
}

// Return from Interrupt
func (cpu *CPU) rti(inst *Instruction, operand []byte) {
	v := cpu.pop()
	cpu.Reg.RestorePS(v)
	cpu.Reg.PC = cpu.popAddress()
}

// Jump to memory address
func (cpu *CPU) jmp(inst *Instruction, operand []byte) {
	cpu.Reg.PC = cpu.loadAddress(inst.Mode, operand)
}

// Jump to subroutine
func (cpu *CPU) jsr(inst *Instruction, operand []byte) {
	addr := cpu.loadAddress(inst.Mode, operand)
	cpu.pushAddress(cpu.Reg.PC - 1)
	cpu.Reg.PC = addr
}

// Return from Subroutine
func (cpu *CPU) rts(inst *Instruction, operand []byte) {
	addr := cpu.popAddress()
	cpu.Reg.PC = addr + 1
}

// Load Accumulator
func (cpu *CPU) lda(inst *Instruction, operand []byte) {
	cpu.Reg.A = cpu.load(inst.Mode, operand)
	cpu.updateNZ(cpu.Reg.A)
}

// Load the X register
func (cpu *CPU) ldx(inst *Instruction, operand []byte) {
	cpu.Reg.X = cpu.load(inst.Mode, operand)
	cpu.updateNZ(cpu.Reg.X)
}

// Load the Y register
func (cpu *CPU) ldy(inst *Instruction, operand []byte) {
	cpu.Reg.Y = cpu.load(inst.Mode, operand)
	cpu.updateNZ(cpu.Reg.Y)
}

// Store Accumulator
func (cpu *CPU) sta(inst *Instruction, operand []byte) {
	cpu.store(inst.Mode, operand, cpu.Reg.A)
}

// Store X register
func (cpu *CPU) stx(inst *Instruction, operand []byte) {
	cpu.store(inst.Mode, operand, cpu.Reg.X)
}

// Store Y register
func (cpu *CPU) sty(inst *Instruction, operand []byte) {
	cpu.store(inst.Mode, operand, cpu.Reg.Y)
}

// Increment memory value
func (cpu *CPU) inc(inst *Instruction, operand []byte) {
	v := cpu.load(inst.Mode, operand) + 1
	cpu.updateNZ(v)
	cpu.store(inst.Mode, operand, v)
}

// Decrement memory value
func (cpu *CPU) dec(inst *Instruction, operand []byte) {
	v := cpu.load(inst.Mode, operand) - 1
	cpu.updateNZ(v)
	cpu.store(inst.Mode, operand, v)
}

// Increment X register
func (cpu *CPU) inx(inst *Instruction, operand []byte) {
	cpu.Reg.X++
	cpu.updateNZ(cpu.Reg.X)
}

// Increment Y register
func (cpu *CPU) iny(inst *Instruction, operand []byte) {
	cpu.Reg.Y++
	cpu.updateNZ(cpu.Reg.Y)
}

// Decrement X register
func (cpu *CPU) dex(inst *Instruction, operand []byte) {
	cpu.Reg.X--
	cpu.updateNZ(cpu.Reg.X)
}

// Decrement Y register
func (cpu *CPU) dey(inst *Instruction, operand []byte) {
	cpu.Reg.Y--
	cpu.updateNZ(cpu.Reg.Y)
}

// Clear Carry flag
func (cpu *CPU) clc(inst *Instruction, operand []byte) {
	cpu.Reg.Carry = false
}

// Set Carry flag
func (cpu *CPU) sec(inst *Instruction, operand []byte) {
	cpu.Reg.Carry = true
}

// Clear InterruptDisable flag
func (cpu *CPU) cli(inst *Instruction, operand []byte) {
	cpu.Reg.InterruptDisable = false
}

// Set InterruptDisable flag
func (cpu *CPU) sei(inst *Instruction, operand []byte) {
	cpu.Reg.InterruptDisable = true
}

// Clear Decimal flag
func (cpu *CPU) cld(inst *Instruction, operand []byte) {
	cpu.Reg.Decimal = false
}

// Set Decimal flag
func (cpu *CPU) sed(inst *Instruction, operand []byte) {
	cpu.Reg.Decimal = true
}

// Clear oVerflow flag
func (cpu *CPU) clv(inst *Instruction, operand []byte) {
	cpu.Reg.Overflow = false
}

// Push Accumulator
func (cpu *CPU) pha(inst *Instruction, operand []byte) {
	cpu.push(cpu.Reg.A)
}

// Pull (pop) Accumulator
func (cpu *CPU) pla(inst *Instruction, operand []byte) {
	cpu.Reg.A = cpu.pop()
	cpu.updateNZ(cpu.Reg.A)
}

// Push Processor flags. PHP always pushes the break bit set.
func (cpu *CPU) php(inst *Instruction, operand []byte) {
	cpu.push(cpu.Reg.SavePS(true))
}

// Pull (pop) Processor flags
func (cpu *CPU) plp(inst *Instruction, operand []byte) {
	v := cpu.pop()
	cpu.Reg.RestorePS(v)
}

// Transfer Accumulator to X register
func (cpu *CPU) tax(inst *Instruction, operand []byte) {
	cpu.Reg.X = cpu.Reg.A
	cpu.updateNZ(cpu.Reg.X)
}

// Transfer X register to Accumulator
func (cpu *CPU) txa(inst *Instruction, operand []byte) {
	cpu.Reg.A = cpu.Reg.X
	cpu.updateNZ(cpu.Reg.A)
}

// Transfer Accumulator to Y register
func (cpu *CPU) tay(inst *Instruction, operand []byte) {
	cpu.Reg.Y = cpu.Reg.A
	cpu.updateNZ(cpu.Reg.Y)
}

// Transfer Y register to Accumulator
func (cpu *CPU) tya(inst *Instruction, operand []byte) {
	cpu.Reg.A = cpu.Reg.Y
	cpu.updateNZ(cpu.Reg.A)
}

// Transfer X register to the stack pointer. Flags are unaffected.
func (cpu *CPU) txs(inst *Instruction, operand []byte) {
	cpu.Reg.SP = cpu.Reg.X
}

// Transfer stack pointer to X register
func (cpu *CPU) tsx(inst *Instruction, operand []byte) {
	cpu.Reg.X = cpu.Reg.SP
	cpu.updateNZ(cpu.Reg.X)
}

// No-operation
func (cpu *CPU) nop(inst *Instruction, operand []byte) {
}
