// Copyright 2026 Rachel Finch. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package host

import "github.com/beevik/cmd"

var cmds *cmd.Tree

// A helpEntry records a registered command so the help command can
// list and describe commands without walking the tree.
type helpEntry struct {
	name        string
	brief       string
	usage       string
	description string
}

var helpEntries []helpEntry

func register(tree *cmd.Tree, prefix string, d cmd.Command) {
	tree.AddCommand(d)
	name := d.Name
	if prefix != "" {
		name = prefix + " " + d.Name
	}
	helpEntries = append(helpEntries, helpEntry{
		name:        name,
		brief:       d.Brief,
		usage:       d.Usage,
		description: d.Description,
	})
}

func init() {
	root := cmd.NewTree("go2a03")
	register(root, "", cmd.Command{
		Name:        "help",
		Brief:       "Display help for a command",
		Description: "Display help for a command.",
		Usage:       "help [<command>]",
		Data:        (*Host).cmdHelp,
	})
	register(root, "", cmd.Command{
		Name:  "load",
		Brief: "Load a binary file",
		Description: "Load the contents of a raw binary file into the" +
			" emulated system's memory at the specified address. If no" +
			" address is given, the LoadAddress setting is used. The" +
			" program counter is left at the first loaded byte.",
		Usage: "load <filename> [<address>]",
		Data:  (*Host).cmdLoad,
	})
	register(root, "", cmd.Command{
		Name:        "registers",
		Brief:       "Display register contents",
		Description: "Display the current contents of all CPU registers and status flags.",
		Usage:       "registers",
		Data:        (*Host).cmdRegisters,
	})

	// Memory commands
	me := cmd.NewTree("Memory commands")
	root.AddCommand(cmd.Command{Name: "memory", Brief: "Memory commands", Subtree: me})
	register(me, "memory", cmd.Command{
		Name:  "dump",
		Brief: "Dump memory at address",
		Description: "Dump the contents of memory starting from the" +
			" specified address. The number of bytes to dump may be" +
			" specified as an option. If no address is specified, the" +
			" memory dump continues from where the last dump left off.",
		Usage: "memory dump [<address>] [<bytes>]",
		Data:  (*Host).cmdMemoryDump,
	})
	register(me, "memory", cmd.Command{
		Name:  "set",
		Brief: "Set memory at address",
		Description: "Set the contents of memory starting from the" +
			" specified address. The values to assign should be a series" +
			" of space-separated byte values.",
		Usage: "memory set <address> <byte> [<byte> ...]",
		Data:  (*Host).cmdMemorySet,
	})

	register(root, "", cmd.Command{
		Name:  "run",
		Brief: "Run the CPU",
		Description: "Run the CPU from the current program counter (or from" +
			" the specified address) until it faults or until the user types" +
			" Ctrl-C. While running, keyboard input feeds the console device.",
		Usage: "run [<address>]",
		Data:  (*Host).cmdRun,
	})
	register(root, "", cmd.Command{
		Name:  "reset",
		Brief: "Reset the CPU",
		Description: "Perform the hardware reset sequence: registers return" +
			" to their power-on state and the program counter is loaded from" +
			" the reset vector at $FFFC.",
		Usage: "reset",
		Data:  (*Host).cmdReset,
	})
	register(root, "", cmd.Command{
		Name:  "irq",
		Brief: "Drive the IRQ line",
		Description: "Drive the level-triggered interrupt request line high" +
			" (1) or low (0). While the line is high, the CPU services an IRQ" +
			" at every instruction boundary at which interrupts are enabled.",
		Usage: "irq <0|1>",
		Data:  (*Host).cmdIRQ,
	})
	register(root, "", cmd.Command{
		Name:  "nmi",
		Brief: "Signal an NMI",
		Description: "Latch an edge on the non-maskable interrupt line. The" +
			" CPU services it at the next instruction boundary regardless of" +
			" the interrupt-disable flag.",
		Usage: "nmi",
		Data:  (*Host).cmdNMI,
	})
	register(root, "", cmd.Command{
		Name:  "set",
		Brief: "Set a register or configuration variable",
		Description: "Set the value of a register or configuration variable." +
			" Type the set command without arguments to display the current" +
			" values of all configuration variables.",
		Usage: "set [<var> <value>]",
		Data:  (*Host).cmdSet,
	})
	register(root, "", cmd.Command{
		Name:        "quit",
		Brief:       "Quit the program",
		Description: "Quit the program.",
		Usage:       "quit",
		Data:        (*Host).cmdQuit,
	})

	// Command shortcuts.
	root.AddShortcut("?", "help")
	root.AddShortcut("m", "memory dump")
	root.AddShortcut("ms", "memory set")
	root.AddShortcut("r", "registers")
	root.AddShortcut("g", "run")

	cmds = root
}
