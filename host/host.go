// Copyright 2026 Rachel Finch. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package host implements a machine monitor for an emulated NES-style
// system: a Ricoh 2A03 CPU on a mirrored-RAM bus with a memory-mapped
// console device. The monitor can load raw binary images, run and
// reset the CPU, raise interrupts, and inspect memory and registers.
package host

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"sync/atomic"

	"github.com/beevik/cmd"
	"github.com/beevik/term"

	"github.com/rfinch/go2a03/bus"
	"github.com/rfinch/go2a03/cpu"
)

type state byte

const (
	stateProcessingCommands state = iota
	stateRunning
)

// A Host wraps the emulated machine with an interactive command
// processor.
type Host struct {
	input       *bufio.Scanner
	output      *bufio.Writer
	interactive bool
	bus         *bus.Bus
	cpu         *cpu.CPU
	console     *console
	lastCmd     *cmd.Selection
	state       state
	settings    *settings
}

// New creates a host around a freshly powered-on machine: a 2A03 CPU,
// the mirrored-RAM system bus, a 48K RAM window covering the cartridge
// space so the vector table is writable, and the console device mapped
// over two bytes of that window.
func New() *Host {
	h := &Host{
		state:    stateProcessingCommands,
		settings: newSettings(),
	}

	h.bus = bus.New()
	h.bus.Attach(0x4020, 0xffff, bus.NewRAM(0x4020, 0x10000-0x4020))

	h.console = newConsole(os.Stdout)
	h.bus.Attach(consolePortOut, consolePortOut, h.console)
	h.bus.Attach(consolePortIn, consolePortIn, h.console)

	h.cpu = cpu.NewCPU(cpu.Ricoh2A03, h.bus)
	return h
}

// RunCommands accepts host commands from a reader and outputs results
// to a writer. If interactive, a prompt is displayed while the host
// waits for the next command.
func (h *Host) RunCommands(r io.Reader, w io.Writer, interactive bool) {
	h.input = bufio.NewScanner(r)
	h.output = bufio.NewWriter(w)
	h.interactive = interactive

	if interactive {
		h.println()
		h.displayRegisters()
	}

	for {
		h.prompt()

		line, err := h.getLine()
		if err != nil {
			break
		}

		var c cmd.Selection
		if line != "" {
			c, err = cmds.Lookup(line)
			switch {
			case err == cmd.ErrNotFound:
				h.println("Command not found.")
				continue
			case err == cmd.ErrAmbiguous:
				h.println("Command is ambiguous.")
				continue
			case err != nil:
				h.printf("ERROR: %v.\n", err)
				continue
			}
		} else if h.lastCmd != nil {
			c = *h.lastCmd
		}

		if c.Command == nil {
			continue
		}
		h.lastCmd = &c

		handler := c.Command.Data.(func(*Host, cmd.Selection) error)
		if err := handler(h, c); err != nil {
			break
		}
	}
}

// Break interrupts a running CPU. It is safe to call from a signal
// handler goroutine.
func (h *Host) Break() {
	h.state = stateProcessingCommands
}

func (h *Host) printf(format string, args ...any) {
	fmt.Fprintf(h.output, format, args...)
	h.flush()
}

func (h *Host) println(args ...any) {
	fmt.Fprintln(h.output, args...)
	h.flush()
}

func (h *Host) flush() {
	h.output.Flush()
}

func (h *Host) getLine() (string, error) {
	if h.input.Scan() {
		return h.input.Text(), nil
	}
	if h.input.Err() != nil {
		return "", h.input.Err()
	}
	return "", io.EOF
}

func (h *Host) prompt() {
	if h.interactive {
		h.printf("* ")
	}
}

func (h *Host) cmdHelp(c cmd.Selection) error {
	if len(c.Args) == 0 {
		h.println("Commands:")
		for _, e := range helpEntries {
			if e.brief != "" {
				h.printf("    %-15s  %s\n", e.name, e.brief)
			}
		}
		return nil
	}

	name := strings.ToLower(strings.Join(c.Args, " "))
	for _, e := range helpEntries {
		if e.name == name || strings.HasPrefix(e.name, name) {
			h.printf("Syntax: %s\n\n", e.usage)
			if e.description != "" {
				h.printf("%s\n", e.description)
			}
			return nil
		}
	}

	h.printf("Command '%s' not found.\n", name)
	return nil
}

func (h *Host) cmdLoad(c cmd.Selection) error {
	if len(c.Args) < 1 {
		h.displayUsage(c.Command)
		return nil
	}

	filename := c.Args[0]
	if filepath.Ext(filename) == "" {
		filename += ".bin"
	}

	addr := h.settings.LoadAddress
	if len(c.Args) >= 2 {
		a, err := h.parseAddr(c.Args[1])
		if err != nil {
			h.printf("%v\n", err)
			return nil
		}
		addr = a
	}

	code, err := os.ReadFile(filename)
	if err != nil {
		h.printf("Failed to open '%s': %v\n", filepath.Base(filename), err)
		return nil
	}
	if len(code) > 0x10000-int(addr) {
		h.printf("File '%s' does not fit at $%04X.\n", filepath.Base(filename), addr)
		return nil
	}

	h.cpu.Mem.StoreBytes(addr, code)
	h.cpu.SetPC(addr)
	h.printf("Loaded '%s' to $%04X..$%04X\n", filepath.Base(filename),
		addr, int(addr)+len(code)-1)
	return nil
}

func (h *Host) cmdRegisters(c cmd.Selection) error {
	h.displayRegisters()
	return nil
}

func (h *Host) cmdMemoryDump(c cmd.Selection) error {
	var addr uint16
	if len(c.Args) > 0 {
		switch c.Args[0] {
		case "$":
			addr = h.settings.NextMemDumpAddr
		case ".":
			addr = h.cpu.Reg.PC
		default:
			a, err := h.parseAddr(c.Args[0])
			if err != nil {
				h.printf("%v\n", err)
				return nil
			}
			addr = a
		}
	} else {
		addr = h.settings.NextMemDumpAddr
	}

	bytes := uint16(h.settings.MemDumpBytes)
	if len(c.Args) >= 2 {
		n, err := parseNumber(c.Args[1], h.settings.HexMode)
		if err != nil || n < 1 || n > 0x10000 {
			h.println("Invalid byte count.")
			return nil
		}
		bytes = uint16(n)
	}

	h.dumpMemory(addr, bytes)

	h.settings.NextMemDumpAddr = addr + bytes
	h.lastCmd.Args = []string{"$", fmt.Sprintf("%d", bytes)}
	return nil
}

func (h *Host) cmdMemorySet(c cmd.Selection) error {
	if len(c.Args) < 2 {
		h.displayUsage(c.Command)
		return nil
	}

	addr, err := h.parseAddr(c.Args[0])
	if err != nil {
		h.printf("%v\n", err)
		return nil
	}

	for i, arg := range c.Args[1:] {
		v, err := parseNumber(arg, h.settings.HexMode)
		if err != nil || v < 0 || v > 0xff {
			h.printf("Invalid byte value '%s'\n", arg)
			return nil
		}
		h.cpu.Mem.StoreByte(addr+uint16(i), byte(v))
	}
	return nil
}

func (h *Host) cmdRun(c cmd.Selection) error {
	if len(c.Args) > 0 {
		pc, err := h.parseAddr(c.Args[0])
		if err != nil {
			h.printf("%v\n", err)
			return nil
		}
		h.cpu.SetPC(pc)
	}

	h.printf("Running from $%04X. Press ctrl-C to break.\n", h.cpu.Reg.PC)

	h.state = stateRunning
	stopKeyboard := h.startKeyboard()
	for h.state == stateRunning {
		if _, err := h.cpu.Run(uint64(h.settings.RunBatchCycles)); err != nil {
			h.printf("\nCPU fault: %v\n", err)
			break
		}
	}
	stopKeyboard()
	h.state = stateProcessingCommands

	h.println()
	h.displayRegisters()
	return nil
}

func (h *Host) cmdReset(c cmd.Selection) error {
	h.cpu.Reset()
	h.printf("CPU reset. PC=$%04X\n", h.cpu.Reg.PC)
	return nil
}

func (h *Host) cmdIRQ(c cmd.Selection) error {
	if len(c.Args) < 1 {
		h.displayUsage(c.Command)
		return nil
	}

	level, err := stringToBool(c.Args[0])
	if err != nil {
		h.printf("%v\n", err)
		return nil
	}

	h.cpu.SetIRQ(level)
	h.printf("IRQ line %s.\n", map[bool]string{true: "raised", false: "cleared"}[level])
	return nil
}

func (h *Host) cmdNMI(c cmd.Selection) error {
	h.cpu.SignalNMI()
	h.println("NMI signaled.")
	return nil
}

func (h *Host) cmdSet(c cmd.Selection) error {
	switch len(c.Args) {
	case 0:
		h.println("Variables:")
		h.settings.Display(h.output)
		h.flush()

	case 1:
		h.displayUsage(c.Command)

	default:
		key, value := strings.ToLower(c.Args[0]), strings.Join(c.Args[1:], " ")
		v, errV := parseNumber(value, h.settings.HexMode)

		// Setting a register?
		if errV == nil {
			sz := -1
			switch key {
			case "a":
				h.cpu.Reg.A, sz = byte(v), 1
			case "x":
				h.cpu.Reg.X, sz = byte(v), 1
			case "y":
				h.cpu.Reg.Y, sz = byte(v), 1
			case "sp":
				h.cpu.Reg.SP, sz = byte(v), 1
			case ".", "pc":
				key = "pc"
				h.cpu.Reg.PC, sz = uint16(v), 2
			case "carry":
				h.cpu.Reg.Carry, sz = v != 0, 0
			case "zero":
				h.cpu.Reg.Zero, sz = v != 0, 0
			case "decimal":
				h.cpu.Reg.Decimal, sz = v != 0, 0
			case "overflow":
				h.cpu.Reg.Overflow, sz = v != 0, 0
			case "sign":
				h.cpu.Reg.Sign, sz = v != 0, 0
			}

			switch sz {
			case 0:
				h.printf("Flag %s set to %v.\n", strings.ToUpper(key), v != 0)
				return nil
			case 1:
				h.printf("Register %s set to $%02X.\n", strings.ToUpper(key), byte(v))
				return nil
			case 2:
				h.printf("Register %s set to $%04X.\n", strings.ToUpper(key), uint16(v))
				return nil
			}
		}

		// Setting a configuration variable?
		var err error
		switch h.settings.Kind(key) {
		case reflect.Invalid:
			err = fmt.Errorf("setting '%s' not found", key)
		case reflect.Bool:
			var b bool
			b, err = stringToBool(value)
			if err == nil {
				err = h.settings.Set(key, b)
			}
		default:
			err = errV
			if err == nil {
				err = h.settings.Set(key, v)
			}
		}

		if err == nil {
			h.println("Setting updated.")
		} else {
			h.printf("%v\n", err)
		}
	}

	return nil
}

func (h *Host) cmdQuit(c cmd.Selection) error {
	return errors.New("exiting program")
}

// startKeyboard switches the terminal to raw input mode and feeds
// keystrokes to the console device until the returned stop function is
// called. Ctrl-C arrives as a plain byte in raw mode, so it is handled
// here instead of by a signal.
func (h *Host) startKeyboard() (stop func()) {
	fd := int(os.Stdin.Fd())
	if !h.interactive || !term.IsTerminal(fd) {
		return func() {}
	}

	old, err := term.MakeRawInput(fd)
	if err != nil {
		return func() {}
	}

	var done atomic.Bool
	go func() {
		var b [1]byte
		for {
			n, err := os.Stdin.Read(b[:])
			if done.Load() || err != nil {
				return
			}
			if n == 0 {
				continue
			}
			if b[0] == 0x03 { // Ctrl-C
				h.Break()
				return
			}
			h.console.Push(b[0])
		}
	}()

	return func() {
		done.Store(true)
		term.Restore(fd, old)
	}
}

func (h *Host) parseAddr(s string) (uint16, error) {
	v, err := parseNumber(s, h.settings.HexMode)
	if err != nil || v < 0 || v > 0xffff {
		return 0, fmt.Errorf("invalid address '%s'", s)
	}
	return uint16(v), nil
}

func (h *Host) displayUsage(c *cmd.Command) {
	if c.Usage != "" {
		h.printf("Syntax: %s\n", c.Usage)
	}
}

func (h *Host) displayRegisters() {
	r := &h.cpu.Reg
	h.printf("A=%02X X=%02X Y=%02X SP=%02X PC=%04X %s C=%d\n",
		r.A, r.X, r.Y, r.SP, r.PC, flagString(r), h.cpu.Cycles)
}

// flagString renders the status flags in NV-BDIZC order, with a dot
// for each clear flag.
func flagString(r *cpu.Registers) string {
	flags := []struct {
		name byte
		set  bool
	}{
		{'N', r.Sign},
		{'V', r.Overflow},
		{'-', true},
		{'B', false},
		{'D', r.Decimal},
		{'I', r.InterruptDisable},
		{'Z', r.Zero},
		{'C', r.Carry},
	}

	b := make([]byte, len(flags))
	for i, f := range flags {
		if f.set {
			b[i] = f.name
		} else {
			b[i] = '.'
		}
	}
	return string(b)
}

func (h *Host) dumpMemory(addr0, bytes uint16) {
	if bytes < 1 {
		return
	}

	addr1 := addr0 + bytes - 1
	if addr1 < addr0 {
		addr1 = 0xffff
	}

	buf := []byte("    -" + strings.Repeat(" ", 35))

	// Don't align display for short dumps.
	if addr1-addr0 < 8 {
		addrToBuf(addr0, buf[0:4])
		for a, c1, c2 := addr0, 6, 32; a <= addr1; a, c1, c2 = a+1, c1+3, c2+1 {
			m := h.cpu.Mem.LoadByte(a)
			byteToBuf(m, buf[c1:c1+2])
			buf[c2] = toPrintableChar(m)
		}
		h.println(string(buf))
		return
	}

	// Align addr0 and addr1 to 8-byte boundaries.
	start := uint32(addr0) & 0xfff8
	stop := (uint32(addr1) + 8) & 0xffff8
	if stop > 0x10000 {
		stop = 0x10000
	}

	a := uint16(start)
	for r := start; r < stop; r += 8 {
		addrToBuf(a, buf[0:4])
		for c1, c2 := 6, 32; c1 < 29; c1, c2, a = c1+3, c2+1, a+1 {
			if a >= addr0 && a <= addr1 {
				m := h.cpu.Mem.LoadByte(a)
				byteToBuf(m, buf[c1:c1+2])
				buf[c2] = toPrintableChar(m)
			} else {
				buf[c1] = ' '
				buf[c1+1] = ' '
				buf[c2] = ' '
			}
		}
		h.println(string(buf))
	}
}
