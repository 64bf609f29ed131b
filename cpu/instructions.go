// Copyright 2026 Rachel Finch. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cpu

type instfunc func(cpu *CPU, inst *Instruction, operand []byte)

// An Instruction describes a CPU instruction: its mnemonic, its
// addressing mode, its opcode value, its encoded length, and its CPU
// cycle cost.
type Instruction struct {
	Opcode   byte     // hexadecimal opcode value
	Name     string   // all-caps mnemonic
	Mode     Mode     // addressing mode
	Length   byte     // combined size of opcode and operand, in bytes
	Cycles   byte     // base number of CPU cycles to execute the instruction
	BPCycles byte     // additional cycles when the access crosses a page boundary
	fn       instfunc // emulator implementation of the instruction
}

// Valid reports whether the opcode has a documented encoding. Stepping
// onto an instruction that is not valid is a fault.
func (inst *Instruction) Valid() bool {
	return inst.fn != nil
}

// The 151 documented opcode encodings of the NMOS 6502. The table is
// flattened into the 256-entry instruction set at package init time;
// opcodes missing from this list decode as illegal.
var opcodes = []Instruction{
	{0xa9, "LDA", IMM, 2, 2, 0, (*CPU).lda},
	{0xa5, "LDA", ZPG, 2, 3, 0, (*CPU).lda},
	{0xb5, "LDA", ZPX, 2, 4, 0, (*CPU).lda},
	{0xad, "LDA", ABS, 3, 4, 0, (*CPU).lda},
	{0xbd, "LDA", ABX, 3, 4, 1, (*CPU).lda},
	{0xb9, "LDA", ABY, 3, 4, 1, (*CPU).lda},
	{0xa1, "LDA", IDX, 2, 6, 0, (*CPU).lda},
	{0xb1, "LDA", IDY, 2, 5, 1, (*CPU).lda},

	{0xa2, "LDX", IMM, 2, 2, 0, (*CPU).ldx},
	{0xa6, "LDX", ZPG, 2, 3, 0, (*CPU).ldx},
	{0xb6, "LDX", ZPY, 2, 4, 0, (*CPU).ldx},
	{0xae, "LDX", ABS, 3, 4, 0, (*CPU).ldx},
	{0xbe, "LDX", ABY, 3, 4, 1, (*CPU).ldx},

	{0xa0, "LDY", IMM, 2, 2, 0, (*CPU).ldy},
	{0xa4, "LDY", ZPG, 2, 3, 0, (*CPU).ldy},
	{0xb4, "LDY", ZPX, 2, 4, 0, (*CPU).ldy},
	{0xac, "LDY", ABS, 3, 4, 0, (*CPU).ldy},
	{0xbc, "LDY", ABX, 3, 4, 1, (*CPU).ldy},

	// Indexed stores always pay the fixup cycle, so they carry it in
	// the base cost and never add a page-cross penalty.
	{0x85, "STA", ZPG, 2, 3, 0, (*CPU).sta},
	{0x95, "STA", ZPX, 2, 4, 0, (*CPU).sta},
	{0x8d, "STA", ABS, 3, 4, 0, (*CPU).sta},
	{0x9d, "STA", ABX, 3, 5, 0, (*CPU).sta},
	{0x99, "STA", ABY, 3, 5, 0, (*CPU).sta},
	{0x81, "STA", IDX, 2, 6, 0, (*CPU).sta},
	{0x91, "STA", IDY, 2, 6, 0, (*CPU).sta},

	{0x86, "STX", ZPG, 2, 3, 0, (*CPU).stx},
	{0x96, "STX", ZPY, 2, 4, 0, (*CPU).stx},
	{0x8e, "STX", ABS, 3, 4, 0, (*CPU).stx},

	{0x84, "STY", ZPG, 2, 3, 0, (*CPU).sty},
	{0x94, "STY", ZPX, 2, 4, 0, (*CPU).sty},
	{0x8c, "STY", ABS, 3, 4, 0, (*CPU).sty},

	{0x69, "ADC", IMM, 2, 2, 0, (*CPU).adc},
	{0x65, "ADC", ZPG, 2, 3, 0, (*CPU).adc},
	{0x75, "ADC", ZPX, 2, 4, 0, (*CPU).adc},
	{0x6d, "ADC", ABS, 3, 4, 0, (*CPU).adc},
	{0x7d, "ADC", ABX, 3, 4, 1, (*CPU).adc},
	{0x79, "ADC", ABY, 3, 4, 1, (*CPU).adc},
	{0x61, "ADC", IDX, 2, 6, 0, (*CPU).adc},
	{0x71, "ADC", IDY, 2, 5, 1, (*CPU).adc},

	{0xe9, "SBC", IMM, 2, 2, 0, (*CPU).sbc},
	{0xe5, "SBC", ZPG, 2, 3, 0, (*CPU).sbc},
	{0xf5, "SBC", ZPX, 2, 4, 0, (*CPU).sbc},
	{0xed, "SBC", ABS, 3, 4, 0, (*CPU).sbc},
	{0xfd, "SBC", ABX, 3, 4, 1, (*CPU).sbc},
	{0xf9, "SBC", ABY, 3, 4, 1, (*CPU).sbc},
	{0xe1, "SBC", IDX, 2, 6, 0, (*CPU).sbc},
	{0xf1, "SBC", IDY, 2, 5, 1, (*CPU).sbc},

	{0xc9, "CMP", IMM, 2, 2, 0, (*CPU).cmp},
	{0xc5, "CMP", ZPG, 2, 3, 0, (*CPU).cmp},
	{0xd5, "CMP", ZPX, 2, 4, 0, (*CPU).cmp},
	{0xcd, "CMP", ABS, 3, 4, 0, (*CPU).cmp},
	{0xdd, "CMP", ABX, 3, 4, 1, (*CPU).cmp},
	{0xd9, "CMP", ABY, 3, 4, 1, (*CPU).cmp},
	{0xc1, "CMP", IDX, 2, 6, 0, (*CPU).cmp},
	{0xd1, "CMP", IDY, 2, 5, 1, (*CPU).cmp},

	{0xe0, "CPX", IMM, 2, 2, 0, (*CPU).cpx},
	{0xe4, "CPX", ZPG, 2, 3, 0, (*CPU).cpx},
	{0xec, "CPX", ABS, 3, 4, 0, (*CPU).cpx},

	{0xc0, "CPY", IMM, 2, 2, 0, (*CPU).cpy},
	{0xc4, "CPY", ZPG, 2, 3, 0, (*CPU).cpy},
	{0xcc, "CPY", ABS, 3, 4, 0, (*CPU).cpy},

	{0x29, "AND", IMM, 2, 2, 0, (*CPU).and},
	{0x25, "AND", ZPG, 2, 3, 0, (*CPU).and},
	{0x35, "AND", ZPX, 2, 4, 0, (*CPU).and},
	{0x2d, "AND", ABS, 3, 4, 0, (*CPU).and},
	{0x3d, "AND", ABX, 3, 4, 1, (*CPU).and},
	{0x39, "AND", ABY, 3, 4, 1, (*CPU).and},
	{0x21, "AND", IDX, 2, 6, 0, (*CPU).and},
	{0x31, "AND", IDY, 2, 5, 1, (*CPU).and},

	{0x09, "ORA", IMM, 2, 2, 0, (*CPU).ora},
	{0x05, "ORA", ZPG, 2, 3, 0, (*CPU).ora},
	{0x15, "ORA", ZPX, 2, 4, 0, (*CPU).ora},
	{0x0d, "ORA", ABS, 3, 4, 0, (*CPU).ora},
	{0x1d, "ORA", ABX, 3, 4, 1, (*CPU).ora},
	{0x19, "ORA", ABY, 3, 4, 1, (*CPU).ora},
	{0x01, "ORA", IDX, 2, 6, 0, (*CPU).ora},
	{0x11, "ORA", IDY, 2, 5, 1, (*CPU).ora},

	{0x49, "EOR", IMM, 2, 2, 0, (*CPU).eor},
	{0x45, "EOR", ZPG, 2, 3, 0, (*CPU).eor},
	{0x55, "EOR", ZPX, 2, 4, 0, (*CPU).eor},
	{0x4d, "EOR", ABS, 3, 4, 0, (*CPU).eor},
	{0x5d, "EOR", ABX, 3, 4, 1, (*CPU).eor},
	{0x59, "EOR", ABY, 3, 4, 1, (*CPU).eor},
	{0x41, "EOR", IDX, 2, 6, 0, (*CPU).eor},
	{0x51, "EOR", IDY, 2, 5, 1, (*CPU).eor},

	{0x24, "BIT", ZPG, 2, 3, 0, (*CPU).bit},
	{0x2c, "BIT", ABS, 3, 4, 0, (*CPU).bit},

	{0x0a, "ASL", ACC, 1, 2, 0, (*CPU).asl},
	{0x06, "ASL", ZPG, 2, 5, 0, (*CPU).asl},
	{0x16, "ASL", ZPX, 2, 6, 0, (*CPU).asl},
	{0x0e, "ASL", ABS, 3, 6, 0, (*CPU).asl},
	{0x1e, "ASL", ABX, 3, 7, 0, (*CPU).asl},

	{0x4a, "LSR", ACC, 1, 2, 0, (*CPU).lsr},
	{0x46, "LSR", ZPG, 2, 5, 0, (*CPU).lsr},
	{0x56, "LSR", ZPX, 2, 6, 0, (*CPU).lsr},
	{0x4e, "LSR", ABS, 3, 6, 0, (*CPU).lsr},
	{0x5e, "LSR", ABX, 3, 7, 0, (*CPU).lsr},

	{0x2a, "ROL", ACC, 1, 2, 0, (*CPU).rol},
	{0x26, "ROL", ZPG, 2, 5, 0, (*CPU).rol},
	{0x36, "ROL", ZPX, 2, 6, 0, (*CPU).rol},
	{0x2e, "ROL", ABS, 3, 6, 0, (*CPU).rol},
	{0x3e, "ROL", ABX, 3, 7, 0, (*CPU).rol},

	{0x6a, "ROR", ACC, 1, 2, 0, (*CPU).ror},
	{0x66, "ROR", ZPG, 2, 5, 0, (*CPU).ror},
	{0x76, "ROR", ZPX, 2, 6, 0, (*CPU).ror},
	{0x6e, "ROR", ABS, 3, 6, 0, (*CPU).ror},
	{0x7e, "ROR", ABX, 3, 7, 0, (*CPU).ror},

	{0xe6, "INC", ZPG, 2, 5, 0, (*CPU).inc},
	{0xf6, "INC", ZPX, 2, 6, 0, (*CPU).inc},
	{0xee, "INC", ABS, 3, 6, 0, (*CPU).inc},
	{0xfe, "INC", ABX, 3, 7, 0, (*CPU).inc},

	{0xc6, "DEC", ZPG, 2, 5, 0, (*CPU).dec},
	{0xd6, "DEC", ZPX, 2, 6, 0, (*CPU).dec},
	{0xce, "DEC", ABS, 3, 6, 0, (*CPU).dec},
	{0xde, "DEC", ABX, 3, 7, 0, (*CPU).dec},

	{0xe8, "INX", IMP, 1, 2, 0, (*CPU).inx},
	{0xc8, "INY", IMP, 1, 2, 0, (*CPU).iny},
	{0xca, "DEX", IMP, 1, 2, 0, (*CPU).dex},
	{0x88, "DEY", IMP, 1, 2, 0, (*CPU).dey},

	{0x18, "CLC", IMP, 1, 2, 0, (*CPU).clc},
	{0x38, "SEC", IMP, 1, 2, 0, (*CPU).sec},
	{0x58, "CLI", IMP, 1, 2, 0, (*CPU).cli},
	{0x78, "SEI", IMP, 1, 2, 0, (*CPU).sei},
	{0xd8, "CLD", IMP, 1, 2, 0, (*CPU).cld},
	{0xf8, "SED", IMP, 1, 2, 0, (*CPU).sed},
	{0xb8, "CLV", IMP, 1, 2, 0, (*CPU).clv},

	{0x90, "BCC", REL, 2, 2, 1, (*CPU).bcc},
	{0xb0, "BCS", REL, 2, 2, 1, (*CPU).bcs},
	{0xf0, "BEQ", REL, 2, 2, 1, (*CPU).beq},
	{0xd0, "BNE", REL, 2, 2, 1, (*CPU).bne},
	{0x30, "BMI", REL, 2, 2, 1, (*CPU).bmi},
	{0x10, "BPL", REL, 2, 2, 1, (*CPU).bpl},
	{0x50, "BVC", REL, 2, 2, 1, (*CPU).bvc},
	{0x70, "BVS", REL, 2, 2, 1, (*CPU).bvs},

	{0x4c, "JMP", ABS, 3, 3, 0, (*CPU).jmp},
	{0x6c, "JMP", IND, 3, 5, 0, (*CPU).jmp},
	{0x20, "JSR", ABS, 3, 6, 0, (*CPU).jsr},
	{0x60, "RTS", IMP, 1, 6, 0, (*CPU).rts},

	{0x00, "BRK", IMP, 1, 7, 0, (*CPU).brk},
	{0x40, "RTI", IMP, 1, 6, 0, (*CPU).rti},

	{0x48, "PHA", IMP, 1, 3, 0, (*CPU).pha},
	{0x68, "PLA", IMP, 1, 4, 0, (*CPU).pla},
	{0x08, "PHP", IMP, 1, 3, 0, (*CPU).php},
	{0x28, "PLP", IMP, 1, 4, 0, (*CPU).plp},

	{0xaa, "TAX", IMP, 1, 2, 0, (*CPU).tax},
	{0x8a, "TXA", IMP, 1, 2, 0, (*CPU).txa},
	{0xa8, "TAY", IMP, 1, 2, 0, (*CPU).tay},
	{0x98, "TYA", IMP, 1, 2, 0, (*CPU).tya},
	{0x9a, "TXS", IMP, 1, 2, 0, (*CPU).txs},
	{0xba, "TSX", IMP, 1, 2, 0, (*CPU).tsx},

	{0xea, "NOP", IMP, 1, 2, 0, (*CPU).nop},
}

// instructions is the dense decode table, indexed by opcode. It is
// built once at startup and never modified afterward.
var instructions [256]Instruction

func init() {
	for i := range instructions {
		instructions[i] = Instruction{Opcode: byte(i), Name: "???", Length: 1}
	}
	for _, inst := range opcodes {
		if instructions[inst.Opcode].fn != nil {
			panic("duplicate opcode")
		}
		instructions[inst.Opcode] = inst
	}
}

// Lookup returns the decode table entry for an opcode.
func Lookup(opcode byte) *Instruction {
	return &instructions[opcode]
}
