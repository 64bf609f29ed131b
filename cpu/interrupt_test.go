// Copyright 2026 Rachel Finch. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cpu_test

import (
	"errors"
	"testing"

	"github.com/rfinch/go2a03/cpu"
)

func TestBRKRTI(t *testing.T) {
	c := loadCPU(0x1000,
		0x58, // CLI
		0x00, // BRK
	)
	c.Mem.StoreAddress(0xfffe, 0x9000)
	c.Mem.StoreByte(0x9000, 0x40) // RTI

	stepCPU(t, c, 2)
	expectPC(t, c, 0x9000)
	expectSP(t, c, 0xfa)
	expectMem(t, c, 0x01fd, 0x10) // return address high
	expectMem(t, c, 0x01fc, 0x03) // return address low (BRK + padding byte)
	expectMem(t, c, 0x01fb, 0x30) // status with break and reserved set
	expectFlag(t, "InterruptDisable", c.Reg.InterruptDisable, true)
	expectCycles(t, c, 9)

	stepCPU(t, c, 1)
	expectPC(t, c, 0x1003)
	expectSP(t, c, 0xfd)
	expectFlag(t, "InterruptDisable", c.Reg.InterruptDisable, false)
}

func TestNMI(t *testing.T) {
	c := loadCPU(0x1000,
		0xea, // NOP
	)
	c.Mem.StoreAddress(0xfffa, 0x8000)
	c.Mem.StoreByte(0x8000, 0xea) // NOP

	// An NMI is taken before the next instruction, even with the
	// interrupt disable flag set.
	c.SignalNMI()

	n, err := c.Step()
	if err != nil {
		t.Fatal(err)
	}
	if n != 7 {
		t.Errorf("NMI cycles incorrect. exp: 7, got: %d", n)
	}
	expectPC(t, c, 0x8000)
	expectSP(t, c, 0xfa)
	expectMem(t, c, 0x01fd, 0x10)
	expectMem(t, c, 0x01fc, 0x00)
	expectMem(t, c, 0x01fb, 0x24) // pushed status has break clear
	expectFlag(t, "InterruptDisable", c.Reg.InterruptDisable, true)

	// The edge was consumed, so the next step runs an instruction.
	stepCPU(t, c, 1)
	expectPC(t, c, 0x8001)
}

func TestNMIPriorityOverIRQ(t *testing.T) {
	c := loadCPU(0x1000,
		0xea, // NOP
	)
	c.Mem.StoreAddress(0xfffa, 0x8000)
	c.Mem.StoreAddress(0xfffe, 0x9000)
	c.Mem.StoreByte(0x8000, 0xea) // NOP
	c.Mem.StoreByte(0x9000, 0xea) // NOP

	c.Reg.InterruptDisable = false
	c.SignalNMI()
	c.SetIRQ(true)

	// Both pending: the NMI wins.
	stepCPU(t, c, 1)
	expectPC(t, c, 0x8000)

	// The interrupt disable flag now masks the IRQ.
	stepCPU(t, c, 1)
	expectPC(t, c, 0x8001)

	// Clearing the flag lets the still-asserted line through.
	c.Reg.InterruptDisable = false
	stepCPU(t, c, 1)
	expectPC(t, c, 0x9000)
}

func TestIRQMaskingAndLevel(t *testing.T) {
	c := loadCPU(0x1000,
		0xea, // NOP
	)
	c.Mem.StoreAddress(0xfffe, 0x9000)
	c.Mem.StoreBytes(0x9000, []byte{
		0x58, // CLI
		0xea, // NOP
	})

	// Power-on state has interrupt disable set, so the line is masked.
	c.SetIRQ(true)
	stepCPU(t, c, 1)
	expectPC(t, c, 0x1001)
	expectCycles(t, c, 2)

	// Unmask: the level-triggered line is serviced.
	c.Reg.InterruptDisable = false
	stepCPU(t, c, 1)
	expectPC(t, c, 0x9000)
	expectFlag(t, "InterruptDisable", c.Reg.InterruptDisable, true)
	expectCycles(t, c, 9)

	// CLI inside the handler with the line still high retriggers.
	stepCPU(t, c, 2)
	expectPC(t, c, 0x9000)
	expectSP(t, c, 0xf7)

	// Deasserting the line lets execution continue.
	c.SetIRQ(false)
	c.Reg.InterruptDisable = false
	stepCPU(t, c, 1)
	expectPC(t, c, 0x9001)
}

func TestReset(t *testing.T) {
	c := loadCPU(0x1000,
		0xa9, 0x55, // LDA #$55
		0xa2, 0x00, // LDX #$00
		0x9a, // TXS
	)
	c.Mem.StoreAddress(0xfffc, 0x1234)
	stepCPU(t, c, 3)

	c.SignalNMI()
	c.Reset()

	expectPC(t, c, 0x1234)
	expectSP(t, c, 0xfd)
	expectA(t, c, 0x00)
	expectFlag(t, "InterruptDisable", c.Reg.InterruptDisable, true)
	expectFlag(t, "Decimal", c.Reg.Decimal, false)
	expectCycles(t, c, 13) // 6 before reset, 7 for the reset sequence

	// Reset discards any pending NMI.
	c.Mem.StoreByte(0x1234, 0xea) // NOP
	stepCPU(t, c, 1)
	expectPC(t, c, 0x1235)
}

func TestIllegalOpcode(t *testing.T) {
	c := loadCPU(0x1000,
		0xff, // undocumented
	)

	n, err := c.Step()
	if !errors.Is(err, cpu.ErrIllegalOpcode) {
		t.Fatalf("expected illegal opcode error, got: %v", err)
	}
	if n != 0 {
		t.Errorf("faulted step cycles incorrect. exp: 0, got: %d", n)
	}
	expectPC(t, c, 0x1000)
	if !c.Halted() {
		t.Error("CPU should be halted after an illegal opcode")
	}

	// The halt is sticky.
	if _, err = c.Step(); !errors.Is(err, cpu.ErrHalted) {
		t.Fatalf("expected halted error, got: %v", err)
	}
	if _, err = c.Run(100); !errors.Is(err, cpu.ErrHalted) {
		t.Fatalf("expected halted error from Run, got: %v", err)
	}

	// Reset recovers the processor.
	c.Mem.StoreAddress(0xfffc, 0x2000)
	c.Mem.StoreByte(0x2000, 0xea) // NOP
	c.Reset()
	if c.Halted() {
		t.Error("CPU should not be halted after reset")
	}
	stepCPU(t, c, 1)
	expectPC(t, c, 0x2001)
}

func TestRunStopsOnFault(t *testing.T) {
	c := loadCPU(0x1000,
		0xea, // NOP
		0xff, // undocumented
	)

	consumed, err := c.Run(100)
	if !errors.Is(err, cpu.ErrIllegalOpcode) {
		t.Fatalf("expected illegal opcode error, got: %v", err)
	}
	if consumed != 2 {
		t.Errorf("consumed cycles incorrect. exp: 2, got: %d", consumed)
	}
	expectPC(t, c, 0x1001)
}
