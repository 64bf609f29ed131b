// Copyright 2026 Rachel Finch. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package host

import (
	"io"
	"sync"
)

// Memory-mapped console ports. Writing a byte to the output port sends
// it to the terminal; reading the input port returns the next buffered
// keyboard byte, or 0 when none is waiting.
const (
	consolePortOut = 0xf001
	consolePortIn  = 0xf004
)

// console is a character I/O device mapped over two one-byte windows
// of the system bus.
type console struct {
	out io.Writer

	mu   sync.Mutex
	keys []byte
}

func newConsole(out io.Writer) *console {
	return &console{out: out}
}

// Push buffers a keyboard byte for the running program to consume.
// Safe to call from the keyboard reader goroutine.
func (c *console) Push(v byte) {
	c.mu.Lock()
	c.keys = append(c.keys, v)
	c.mu.Unlock()
}

// ReadByte pops the next buffered keyboard byte from the input port.
func (c *console) ReadByte(addr uint16) byte {
	if addr != consolePortIn {
		return 0
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.keys) == 0 {
		return 0
	}
	v := c.keys[0]
	c.keys = c.keys[1:]
	return v
}

// WriteByte sends a byte to the terminal through the output port.
func (c *console) WriteByte(addr uint16, v byte) {
	if addr != consolePortOut {
		return
	}
	c.out.Write([]byte{v})
}
