// Copyright 2026 Rachel Finch. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bus

// RAM is a device backed by a flat byte slice, useful for work RAM or
// a RAM-backed cartridge window.
type RAM struct {
	base uint16
	b    []byte
}

// NewRAM creates a RAM device of the given size whose first byte
// responds at address 'base'.
func NewRAM(base uint16, size int) *RAM {
	return &RAM{base: base, b: make([]byte, size)}
}

// ReadByte returns the byte stored at the address.
func (r *RAM) ReadByte(addr uint16) byte {
	return r.b[addr-r.base]
}

// WriteByte stores a byte at the address.
func (r *RAM) WriteByte(addr uint16, v byte) {
	r.b[addr-r.base] = v
}
