// Copyright 2026 Rachel Finch. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package bus emulates the NES CPU memory map: 2 KiB of internal RAM
// mirrored through the low 8 KiB of the address space, with device
// windows mapped over the remainder. Reads from addresses no device
// claims return the last byte driven on the bus ("open bus").
package bus

const (
	ramSize   = 0x0800
	ramMirror = 0x2000
)

// A Device occupies a window of the CPU address space and responds to
// byte reads and writes within it. The full 16-bit address is passed
// through, so a device spanning several mirrors can decode it as it
// pleases.
type Device interface {
	ReadByte(addr uint16) byte
	WriteByte(addr uint16, v byte)
}

type window struct {
	lo, hi uint16
	dev    Device
}

// Bus is the CPU-visible address space. It satisfies the cpu.Memory
// interface, so a CPU can be bound to it directly.
type Bus struct {
	ram     [ramSize]byte
	windows []window
	last    byte // most recent byte transferred, returned for open-bus reads
}

// New creates a bus with zeroed internal RAM and no attached devices.
func New() *Bus {
	return &Bus{}
}

// Attach maps a device over the inclusive address range [lo, hi].
// A window attached later takes precedence over any earlier window it
// overlaps. Windows below $2000 are shadowed by internal RAM.
func (b *Bus) Attach(lo, hi uint16, dev Device) {
	b.windows = append(b.windows, window{lo: lo, hi: hi, dev: dev})
}

func (b *Bus) find(addr uint16) Device {
	for i := len(b.windows) - 1; i >= 0; i-- {
		if w := &b.windows[i]; addr >= w.lo && addr <= w.hi {
			return w.dev
		}
	}
	return nil
}

// LoadByte loads a single byte from the address and returns it.
func (b *Bus) LoadByte(addr uint16) byte {
	var v byte
	switch {
	case addr < ramMirror:
		v = b.ram[addr%ramSize]
	default:
		if dev := b.find(addr); dev != nil {
			v = dev.ReadByte(addr)
		} else {
			v = b.last
		}
	}
	b.last = v
	return v
}

// LoadBytes loads multiple bytes starting at the address and stores
// them into the buffer 'b'.
func (b *Bus) LoadBytes(addr uint16, buf []byte) {
	for i := range buf {
		buf[i] = b.LoadByte(addr + uint16(i))
	}
}

// LoadAddress loads a 16-bit value from the requested address, low
// byte first.
func (b *Bus) LoadAddress(addr uint16) uint16 {
	lo := b.LoadByte(addr)
	hi := b.LoadByte(addr + 1)
	return uint16(lo) | uint16(hi)<<8
}

// StoreByte stores a byte to the requested address. Writes to
// addresses no device claims are dropped, though they still drive the
// bus value.
func (b *Bus) StoreByte(addr uint16, v byte) {
	b.last = v
	switch {
	case addr < ramMirror:
		b.ram[addr%ramSize] = v
	default:
		if dev := b.find(addr); dev != nil {
			dev.WriteByte(addr, v)
		}
	}
}

// StoreBytes stores multiple bytes starting at the requested address.
func (b *Bus) StoreBytes(addr uint16, buf []byte) {
	for i, v := range buf {
		b.StoreByte(addr+uint16(i), v)
	}
}

// StoreAddress stores a 16-bit value to the requested address, low
// byte first.
func (b *Bus) StoreAddress(addr uint16, v uint16) {
	b.StoreByte(addr, byte(v))
	b.StoreByte(addr+1, byte(v>>8))
}
