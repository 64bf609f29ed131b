// Copyright 2026 Rachel Finch. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bus_test

import (
	"testing"

	"github.com/rfinch/go2a03/bus"
	"github.com/rfinch/go2a03/cpu"
)

// recorder is a test device that returns a fixed value on reads and
// remembers every write it receives.
type recorder struct {
	value  byte
	reads  []uint16
	writes map[uint16]byte
}

func newRecorder(value byte) *recorder {
	return &recorder{value: value, writes: make(map[uint16]byte)}
}

func (d *recorder) ReadByte(addr uint16) byte {
	d.reads = append(d.reads, addr)
	return d.value
}

func (d *recorder) WriteByte(addr uint16, v byte) {
	d.writes[addr] = v
}

func TestRAMMirroring(t *testing.T) {
	b := bus.New()

	b.StoreByte(0x0005, 0xaa)
	for _, addr := range []uint16{0x0005, 0x0805, 0x1005, 0x1805} {
		if got := b.LoadByte(addr); got != 0xaa {
			t.Errorf("mirror read at $%04X incorrect. exp: $AA, got: $%02X", addr, got)
		}
	}

	// Writes through a mirror land in the same cell.
	b.StoreByte(0x1fff, 0x5e)
	if got := b.LoadByte(0x07ff); got != 0x5e {
		t.Errorf("mirror write incorrect. exp: $5E, got: $%02X", got)
	}
}

func TestDeviceWindows(t *testing.T) {
	b := bus.New()
	dev := newRecorder(0x42)
	b.Attach(0x6000, 0x6fff, dev)

	if got := b.LoadByte(0x6123); got != 0x42 {
		t.Errorf("device read incorrect. exp: $42, got: $%02X", got)
	}
	if len(dev.reads) != 1 || dev.reads[0] != 0x6123 {
		t.Errorf("device saw reads %v, expected [0x6123]", dev.reads)
	}

	b.StoreByte(0x6fff, 0x99)
	if dev.writes[0x6fff] != 0x99 {
		t.Errorf("device write not delivered: %v", dev.writes)
	}

	// Addresses outside the window never reach the device.
	b.StoreByte(0x7000, 0x11)
	if _, ok := dev.writes[0x7000]; ok {
		t.Error("device received a write outside its window")
	}
}

func TestWindowPrecedence(t *testing.T) {
	b := bus.New()
	outer := newRecorder(0x01)
	inner := newRecorder(0x02)
	b.Attach(0x6000, 0x6fff, outer)
	b.Attach(0x6800, 0x68ff, inner)

	// The later attachment wins where the windows overlap.
	if got := b.LoadByte(0x6800); got != 0x02 {
		t.Errorf("overlapped read incorrect. exp: $02, got: $%02X", got)
	}
	b.StoreByte(0x6810, 0x77)
	if inner.writes[0x6810] != 0x77 {
		t.Error("overlapped write did not reach the later window")
	}
	if _, ok := outer.writes[0x6810]; ok {
		t.Error("overlapped write reached the shadowed window")
	}

	// The earlier window still serves the rest of its range.
	if got := b.LoadByte(0x6000); got != 0x01 {
		t.Errorf("non-overlapped read incorrect. exp: $01, got: $%02X", got)
	}
}

func TestOpenBus(t *testing.T) {
	b := bus.New()

	// Nothing has driven the bus yet.
	if got := b.LoadByte(0x5000); got != 0x00 {
		t.Errorf("initial open-bus read incorrect. exp: $00, got: $%02X", got)
	}

	// An unmapped write is dropped but drives the bus value.
	b.StoreByte(0x5000, 0x7e)
	if got := b.LoadByte(0x5000); got != 0x7e {
		t.Errorf("open-bus read after write incorrect. exp: $7E, got: $%02X", got)
	}

	// A RAM read drives the bus value too.
	b.StoreByte(0x0000, 0x42)
	b.LoadByte(0x0000)
	if got := b.LoadByte(0x4321); got != 0x42 {
		t.Errorf("open-bus read after RAM read incorrect. exp: $42, got: $%02X", got)
	}
}

func TestLoadStoreAddress(t *testing.T) {
	b := bus.New()

	b.StoreByte(0x0200, 0x34)
	b.StoreByte(0x0201, 0x12)
	if got := b.LoadAddress(0x0200); got != 0x1234 {
		t.Errorf("LoadAddress incorrect. exp: $1234, got: $%04X", got)
	}

	b.StoreAddress(0x0300, 0xbeef)
	if got := b.LoadByte(0x0300); got != 0xef {
		t.Errorf("StoreAddress low byte incorrect. got: $%02X", got)
	}
	if got := b.LoadByte(0x0301); got != 0xbe {
		t.Errorf("StoreAddress high byte incorrect. got: $%02X", got)
	}
}

func TestRAMDevice(t *testing.T) {
	b := bus.New()
	b.Attach(0x8000, 0xffff, bus.NewRAM(0x8000, 0x8000))

	b.StoreAddress(0xfffc, 0xc000)
	if got := b.LoadAddress(0xfffc); got != 0xc000 {
		t.Errorf("reset vector read incorrect. exp: $C000, got: $%04X", got)
	}

	b.StoreBytes(0x8000, []byte{0xde, 0xad})
	if got := b.LoadByte(0x8001); got != 0xad {
		t.Errorf("RAM device read incorrect. got: $%02X", got)
	}
}

func TestCPUOnBus(t *testing.T) {
	// A CPU bound to the bus can run code from a cartridge RAM window
	// and hit internal RAM through a mirror.
	b := bus.New()
	b.Attach(0x8000, 0xffff, bus.NewRAM(0x8000, 0x8000))

	b.StoreBytes(0x8000, []byte{
		0xa9, 0x42, // LDA #$42
		0x8d, 0x05, 0x08, // STA $0805  -> internal RAM $0005
	})
	b.StoreAddress(0xfffc, 0x8000)

	c := cpu.NewCPU(cpu.Ricoh2A03, b)
	c.Reset()
	for i := 0; i < 2; i++ {
		if _, err := c.Step(); err != nil {
			t.Fatal(err)
		}
	}

	if got := b.LoadByte(0x0005); got != 0x42 {
		t.Errorf("RAM value incorrect. exp: $42, got: $%02X", got)
	}
}
