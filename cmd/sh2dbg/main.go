// Command sh2dbg is an interactive REPL debugger for the sh2 package:
// step/continue execution, inspect registers and memory, set breakpoints
// (optionally Lua-conditional), and assert interrupts by hand.
//
// Grounded on golc3/cmd/golc3/main.go + debug.go: flag-driven front end,
// a debugREPL loop reading from stdin with a "repeat last command on
// blank line" convenience, dispatched by a switch on the first token.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/sh2core/sh2"
	"github.com/sh2core/sh2/membus"
)

var (
	loadAddr uint
	ramSize  uint
)

const usage = "sh2dbg [-load addr] [-ram bytes] romfile"

func init() {
	exe, _ := os.Executable()
	log.SetFlags(0)
	log.SetPrefix(fmt.Sprintf("%s: ", filepath.Base(exe)))
	log.SetOutput(os.Stderr)
}

func sh2dbg() int {
	flag.UintVar(&loadAddr, "load", 0, "address the ROM image is mapped at")
	flag.UintVar(&ramSize, "ram", 1<<20, "RAM region size in bytes")
	flag.Parse()

	args := flag.Args()
	if len(args) != 1 {
		log.Println(usage)
		return 1
	}

	image, err := os.ReadFile(args[0])
	if err != nil {
		log.Println(err)
		return 1
	}

	romSize := nextPowerOfTwo(uint32(len(image)))
	padded := make([]byte, romSize)
	copy(padded, image)

	bus := membus.NewRouter()
	bus.Map(uint32(loadAddr), romSize, membus.NewROM(padded))
	ramSz := nextPowerOfTwo(uint32(ramSize))
	bus.Map(uint32(loadAddr)+romSize, ramSz, membus.NewRAM(ramSz))

	cpu, err := sh2.New(bus)
	if err != nil {
		log.Println(err)
		return 1
	}
	cpu.PowerOn()

	dbg := NewDebugger(cpu, bus, 256)
	defer dbg.Close()

	enterRawTerm()
	defer exitRawTerm()

	debugREPL(dbg)
	return 0
}

func nextPowerOfTwo(n uint32) uint32 {
	if n == 0 {
		return 1
	}
	p := uint32(1)
	for p < n {
		p <<= 1
	}
	return p
}

func main() {
	os.Exit(sh2dbg())
}

var lastCmd []string

func debugREPL(dbg *Debugger) {
	exitRawTerm()
	defer enterRawTerm()

	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Print("(sh2dbg) ")

		if !scanner.Scan() {
			fmt.Println()
			return
		}

		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			if len(lastCmd) == 0 {
				continue
			}
			fields = lastCmd
		} else {
			lastCmd = append([]string(nil), fields...)
		}

		cmd := fields[0]
		rest := fields[1:]

		switch cmd {
		case "s", "step":
			n := 1
			if len(rest) == 1 {
				if v, err := strconv.Atoi(rest[0]); err == nil {
					n = v
				}
			}
			for i := 0; i < n; i++ {
				dbg.Step()
			}
			printRegs(dbg.CPU)

		case "c", "continue":
			if bp := dbg.Run(0); bp != nil {
				fmt.Printf("breakpoint hit at %#08x\n", bp.Addr)
			} else {
				fmt.Printf("stopped, state=%v\n", dbg.CPU.State())
			}
			printRegs(dbg.CPU)

		case "b", "break":
			cmdBreak(dbg, rest)

		case "r", "regs", "registers":
			printRegs(dbg.CPU)

		case "m", "mem", "memory":
			cmdMem(dbg, rest)

		case "irq":
			cmdIRQ(dbg, rest)

		case "nmi":
			dbg.CPU.NMI()
			printRegs(dbg.CPU)

		case "h", "history":
			for _, e := range dbg.Trace.Recent(16) {
				fmt.Println(e.String())
			}

		case "save":
			cmdSave(dbg, rest)

		case "load":
			cmdLoad(dbg, rest)

		case "q", "quit", "exit":
			return

		default:
			fmt.Printf("error: '%s' is not a valid command\n", cmd)
		}
	}
}

func cmdBreak(dbg *Debugger, args []string) {
	const usage = "break <addr> [lua-condition...]"
	if len(args) == 0 {
		for i, bp := range dbg.Breakpoints {
			fmt.Printf("#%d: %#08x %s\n", i, bp.Addr, bp.Cond)
		}
		return
	}

	addr, err := strconv.ParseUint(strings.TrimPrefix(args[0], "0x"), 16, 32)
	if err != nil {
		fmt.Println(usage)
		return
	}

	cond := strings.Join(args[1:], " ")
	dbg.Breakpoints = append(dbg.Breakpoints, Breakpoint{Addr: uint32(addr), Cond: cond})
	fmt.Printf("breakpoint #%d at %#08x %s\n", len(dbg.Breakpoints)-1, addr, cond)
}

func cmdMem(dbg *Debugger, args []string) {
	const usage = "mem <addr> [len]"
	if len(args) == 0 {
		fmt.Println(usage)
		return
	}

	addr, err := strconv.ParseUint(strings.TrimPrefix(args[0], "0x"), 16, 32)
	if err != nil {
		fmt.Println(usage)
		return
	}

	length := uint64(16)
	if len(args) > 1 {
		length, err = strconv.ParseUint(args[1], 10, 32)
		if err != nil {
			fmt.Println(usage)
			return
		}
	}

	for i := uint64(0); i < length; i++ {
		if i%8 == 0 {
			if i != 0 {
				fmt.Println()
			}
			fmt.Printf("[%#08x] ", uint32(addr)+uint32(i))
		}
		fmt.Printf("%02x ", dbg.Bus.Read8(uint32(addr)+uint32(i)))
	}
	fmt.Println()
}

func printRegs(cpu *sh2.CPU) {
	r := cpu.Registers()
	for i := 0; i < 16; i += 4 {
		fmt.Printf("r%-2d=%08x r%-2d=%08x r%-2d=%08x r%-2d=%08x\n",
			i, r.R[i], i+1, r.R[i+1], i+2, r.R[i+2], i+3, r.R[i+3])
	}
	fmt.Printf("sr=%08x gbr=%08x vbr=%08x mach=%08x macl=%08x pr=%08x pc=%08x state=%v\n",
		r.SR, r.GBR, r.VBR, r.MACH, r.MACL, r.PR, r.PC, cpu.State())
}

func cmdSave(dbg *Debugger, args []string) {
	const usage = "save <file>"
	if len(args) != 1 {
		fmt.Println(usage)
		return
	}

	buf := make([]byte, dbg.CPU.SerializeSize())
	if err := dbg.CPU.Serialize(buf); err != nil {
		fmt.Println(err)
		return
	}
	if err := os.WriteFile(args[0], buf, 0o644); err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("saved %d bytes to %s\n", len(buf), args[0])
}

func cmdLoad(dbg *Debugger, args []string) {
	const usage = "load <file>"
	if len(args) != 1 {
		fmt.Println(usage)
		return
	}

	buf, err := os.ReadFile(args[0])
	if err != nil {
		fmt.Println(err)
		return
	}
	if err := dbg.CPU.Deserialize(buf); err != nil {
		fmt.Println(err)
		return
	}
	printRegs(dbg.CPU)
}

func cmdIRQ(dbg *Debugger, args []string) {
	const usage = "irq <line 0-7>"
	if len(args) != 1 {
		fmt.Println(usage)
		return
	}
	line, err := strconv.Atoi(args[0])
	if err != nil {
		fmt.Println(usage)
		return
	}
	if err := dbg.CPU.IRQ(line); err != nil {
		fmt.Println(err)
	}
}
