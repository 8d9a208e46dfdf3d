// Command sh2run loads a flat SH-2 ROM image and runs it to completion (or
// forever, for programs that never reach Sleep/Standby).
//
// Grounded on golc3/cmd/golc3/main.go: flag-driven front end, a log
// prefix set from the executable's own name, a single run loop that
// steps the machine until it has a reason to stop.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/sh2core/sh2"
	"github.com/sh2core/sh2/membus"
)

var (
	romPath  string
	ramSize  uint
	loadAddr uint
	maxCycle uint
)

const usage = "sh2run [-ram bytes] [-load addr] [-max cycles] romfile"

func init() {
	exe, _ := os.Executable()
	log.SetFlags(0)
	log.SetPrefix(fmt.Sprintf("%s: ", filepath.Base(exe)))
	log.SetOutput(os.Stderr)
}

func init() {
	flag.UintVar(&ramSize, "ram", 1<<20, "RAM region size in bytes (power of two)")
	flag.UintVar(&loadAddr, "load", 0, "address the ROM image is mapped at")
	flag.UintVar(&maxCycle, "max", 0, "stop after this many cycles (0 = unbounded)")
	flag.Parse()
}

func sh2run() int {
	args := flag.Args()
	if len(args) != 1 {
		log.Println(usage)
		return 1
	}
	romPath = args[0]

	image, err := os.ReadFile(romPath)
	if err != nil {
		log.Println(err)
		return 1
	}

	romSize := nextPowerOfTwo(uint32(len(image)))
	padded := make([]byte, romSize)
	copy(padded, image)

	bus := membus.NewRouter()
	bus.Map(uint32(loadAddr), romSize, membus.NewROM(padded))

	ramBase := uint32(loadAddr) + romSize
	bus.Map(ramBase, nextPowerOfTwo(uint32(ramSize)), membus.NewRAM(nextPowerOfTwo(uint32(ramSize))))

	cpu, err := sh2.New(bus)
	if err != nil {
		log.Println(err)
		return 1
	}
	cpu.PowerOn()

	var cycles uint
	for cpu.State() != sh2.StatePowerOff {
		if maxCycle != 0 && cycles >= maxCycle {
			break
		}
		cpu.Cycle()
		cycles++

		if cpu.State() == sh2.StateSleep || cpu.State() == sh2.StateStandby {
			break
		}
	}

	log.Printf("stopped after %d cycles, state=%v, pc=%#08x", cycles, cpu.State(), cpu.Reg(sh2.RegPC))
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
	os.Exit(sh2run())
}
