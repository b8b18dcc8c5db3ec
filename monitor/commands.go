// This file is part of Gopher2e.
//
// Gopher2e is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher2e is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher2e.  If not, see <https://www.gnu.org/licenses/>.

package monitor

import (
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/jetsetilly/gopher2e/curated"
	"github.com/jetsetilly/gopher2e/hardware"
	"github.com/jetsetilly/gopher2e/hardware/cpu"
	"github.com/jetsetilly/gopher2e/hardware/cpu/disassembly"
	"github.com/jetsetilly/gopher2e/hardware/cpu/instructions"
	"github.com/jetsetilly/gopher2e/hardware/memory"
	"github.com/jetsetilly/gopher2e/hardware/memory/memorymap"
	"github.com/jetsetilly/gopher2e/logger"
	"github.com/jetsetilly/gopher2e/modalflag"
	"github.com/jetsetilly/gopher2e/romloader"
)

type command struct {
	usage   string
	help    string
	minArgs int

	// -1 for no maximum
	maxArgs int

	fn func(mon *Monitor, args []string) error
}

var commands map[string]command

func init() {
	commands = map[string]command{
		"HELP":     {"HELP [command]", "list commands or show help for a command", 0, 1, cmdHelp},
		"QUIT":     {"QUIT", "leave the monitor", 0, 0, cmdQuit},
		"CPU":      {"CPU", "show CPU registers and the last instruction", 0, 0, cmdCPU},
		"STEP":     {"STEP [n]", "execute n instructions", 0, 1, cmdStep},
		"RUN":      {"RUN [frames]", "run for a number of frames", 0, 1, cmdRun},
		"UNTIL":    {"UNTIL address [cycles]", "run until the PC reaches the address", 1, 2, cmdUntil},
		"RESET":    {"RESET", "reset the machine", 0, 0, cmdReset},
		"DISASM":   {"DISASM [address] [n]", "disassemble n instructions from the address or the PC", 0, 2, cmdDisasm},
		"PEEK":     {"PEEK address [n]", "show memory without side effects", 1, 2, cmdPeek},
		"POKE":     {"POKE address value...", "change memory without side effects", 2, -1, cmdPoke},
		"SWITCHES": {"SWITCHES", "show the soft switches", 0, 0, cmdSwitches},
		"MAP":      {"MAP [address]", "show the memory map or the area of an address", 0, 1, cmdMap},
		"DISK":     {"DISK [drive]", "show the disk controller or a detailed view of a disk", 0, 1, cmdDisk},
		"INSERT":   {"INSERT drive file", "insert a disk image into a drive", 2, 2, cmdInsert},
		"EJECT":    {"EJECT drive", "eject the disk from a drive", 1, 1, cmdEject},
		"SAVE":     {"SAVE drive [file]", "save the disk in a drive as a NIB file", 1, 2, cmdSave},
		"TIMING":   {"TIMING [EXACT|ACCELERATED]", "show or change the disk timing strategy", 0, 1, cmdTiming},
		"TYPE":     {"TYPE text", "type text on the keyboard", 1, -1, cmdType},
		"TEXT":     {"TEXT", "show the text screen", 0, 0, cmdText},
		"REWIND":   {"REWIND [frame]", "show the rewind history or go to a frame", 0, 1, cmdRewind},
		"GRAPH":    {"GRAPH [file]", "write a graphviz representation of the machine state", 0, 1, cmdGraph},
		"LOG":      {"LOG [n]", "show the last n log entries", 0, 1, cmdLog},
	}
}

func commandNames() []string {
	names := make([]string, 0, len(commands))
	for n := range commands {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

func parseInt(s string) (int, error) {
	v, err := strconv.Atoi(s)
	if err != nil || v < 0 {
		return 0, curated.Errorf(MonitorError, fmt.Sprintf("not a valid number (%s)", s))
	}
	return v, nil
}

func parseDrive(s string) (int, error) {
	v, err := parseInt(s)
	if err != nil || v < 1 || v > 2 {
		return 0, curated.Errorf(MonitorError, fmt.Sprintf("drive must be 1 or 2 (%s)", s))
	}
	return v - 1, nil
}

func parseAddress(s string) (uint16, error) {
	a, err := modalflag.ParseAddress(s)
	if err != nil {
		return 0, curated.Errorf(MonitorError, fmt.Sprintf("not a valid address (%s)", s))
	}
	return a, nil
}

func cmdHelp(mon *Monitor, args []string) error {
	if len(args) == 1 {
		cmd, ok := commands[strings.ToUpper(args[0])]
		if !ok {
			return curated.Errorf(MonitorError, fmt.Sprintf("no help for %s", args[0]))
		}
		mon.printf("%s\n  %s\n", cmd.usage, cmd.help)
		return nil
	}

	for _, n := range commandNames() {
		mon.printf("%-28s %s\n", commands[n].usage, commands[n].help)
	}
	return nil
}

func cmdQuit(mon *Monitor, _ []string) error {
	mon.quit = true
	return nil
}

func cmdCPU(mon *Monitor, _ []string) error {
	mon.printf("%s\n", mon.m.CPU)
	mon.printf("last: %s\n", mon.m.CPU.LastResult)
	if mon.m.CPU.Killed {
		mon.printf("CPU is jammed. RESET required\n")
	}
	return nil
}

func cmdStep(mon *Monitor, args []string) error {
	n := 1
	if len(args) == 1 {
		var err error
		if n, err = parseInt(args[0]); err != nil {
			return err
		}
	}

	for i := 0; i < n && !mon.m.CPU.Killed; i++ {
		mon.Keys.Feed(mon.m)
		mon.m.Step(nil)
	}

	mon.printf("%s\n%s\n", mon.m.CPU.LastResult, mon.m.CPU)
	return nil
}

func cmdRun(mon *Monitor, args []string) error {
	n := 1
	if len(args) == 1 {
		var err error
		if n, err = parseInt(args[0]); err != nil {
			return err
		}
	}

	for i := 0; i < n && !mon.m.CPU.Killed; i++ {
		mon.Keys.Feed(mon.m)
		mon.m.RunFrame()
	}

	mon.printf("frame %d, %d cycles\n%s\n", mon.m.Frame(), mon.m.Cycles(), mon.m.CPU)
	return nil
}

func cmdUntil(mon *Monitor, args []string) error {
	address, err := parseAddress(args[0])
	if err != nil {
		return err
	}

	budget := hardware.CyclesPerFrame * 60
	if len(args) == 2 {
		if budget, err = parseInt(args[1]); err != nil {
			return err
		}
	}

	if !mon.m.StepUntil(address, budget) {
		return curated.Errorf(MonitorError, fmt.Sprintf("$%04x not reached after %d cycles", address, budget))
	}
	mon.printf("%s\n", mon.m.CPU)
	return nil
}

func cmdReset(mon *Monitor, _ []string) error {
	if mon.rom == nil {
		return curated.Errorf(MonitorError, "no ROM to reset with")
	}
	if err := mon.m.Reset(mon.rom, memory.Auto); err != nil {
		return curated.Errorf(MonitorError, err)
	}
	mon.printf("%s\n", mon.m.CPU)
	return nil
}

func cmdDisasm(mon *Monitor, args []string) error {
	address := mon.m.CPU.PC.Address()
	n := 10

	var err error
	if len(args) > 0 {
		if address, err = parseAddress(args[0]); err != nil {
			return err
		}
	}
	if len(args) > 1 {
		if n, err = parseInt(args[1]); err != nil {
			return err
		}
	}

	table := instructions.NMOS()
	if mon.m.CPU.Variant() == cpu.CMOS65C02 {
		table = instructions.CMOS()
	}

	for _, e := range disassembly.Linear(mon.m, table, address, n) {
		mon.printf("%s\n", e)
	}
	return nil
}

func cmdPeek(mon *Monitor, args []string) error {
	address, err := parseAddress(args[0])
	if err != nil {
		return err
	}

	n := 1
	if len(args) == 2 {
		if n, err = parseInt(args[1]); err != nil {
			return err
		}
	}

	for i := 0; i < n; i++ {
		a := address + uint16(i)
		if i%16 == 0 {
			if i > 0 {
				mon.printf("\n")
			}
			mon.printf("%04x:", a)
		}
		mon.printf(" %02x", mon.m.Peek(a))
	}
	mon.printf("\n")

	return nil
}

func cmdPoke(mon *Monitor, args []string) error {
	address, err := parseAddress(args[0])
	if err != nil {
		return err
	}

	for i, s := range args[1:] {
		v, err := strconv.ParseUint(strings.TrimPrefix(s, "$"), 16, 8)
		if err != nil {
			return curated.Errorf(MonitorError, fmt.Sprintf("not a valid byte (%s)", s))
		}
		mon.m.Poke(address+uint16(i), uint8(v))
	}

	return nil
}

func cmdSwitches(mon *Monitor, _ []string) error {
	mon.printf("%s: %s\n", mon.m.Mem.Model(), mon.m.Mem.Switches)
	return nil
}

func cmdMap(mon *Monitor, args []string) error {
	if len(args) == 0 {
		mon.printf("%s", memorymap.Summary())
		return nil
	}

	address, err := parseAddress(args[0])
	if err != nil {
		return err
	}

	area := memorymap.MapAddress(address)
	switch area {
	case memorymap.SlotIO, memorymap.SlotROM:
		mon.printf("%04x: %s (slot %d)\n", address, area, memorymap.Slot(address))
	default:
		mon.printf("%04x: %s\n", address, area)
	}
	return nil
}

func cmdDisk(mon *Monitor, args []string) error {
	if len(args) == 0 {
		mon.printf("%s\n", mon.m.Disk)
		return nil
	}

	drv, err := parseDrive(args[0])
	if err != nil {
		return err
	}
	d, err := mon.m.Disk.Drive(drv)
	if err != nil {
		return curated.Errorf(MonitorError, err)
	}

	mon.printf("%s\n", d)
	if img := d.Image(); img != nil {
		mon.printf("%s\n", img.Describe())
	}
	return nil
}

func cmdInsert(mon *Monitor, args []string) error {
	drv, err := parseDrive(args[0])
	if err != nil {
		return err
	}

	ld := romloader.NewLoader(args[1])
	img, err := ld.Disk()
	if err != nil {
		return curated.Errorf(MonitorError, err)
	}

	if err := mon.m.InsertDisk(drv, img); err != nil {
		return curated.Errorf(MonitorError, err)
	}
	mon.disks[drv] = args[1]

	mon.printf("%s inserted into drive %d\n", ld.ShortName(), drv+1)
	return nil
}

func cmdEject(mon *Monitor, args []string) error {
	drv, err := parseDrive(args[0])
	if err != nil {
		return err
	}

	img := mon.m.EjectDisk(drv)
	if img == nil {
		return curated.Errorf(MonitorError, fmt.Sprintf("drive %d is empty", drv+1))
	}
	if img.Modified() {
		mon.printf("disk in drive %d has been modified and not saved\n", drv+1)
	}
	mon.disks[drv] = ""

	return nil
}

func cmdSave(mon *Monitor, args []string) error {
	drv, err := parseDrive(args[0])
	if err != nil {
		return err
	}

	d, err := mon.m.Disk.Drive(drv)
	if err != nil {
		return curated.Errorf(MonitorError, err)
	}
	img := d.Image()
	if img == nil {
		return curated.Errorf(MonitorError, fmt.Sprintf("drive %d is empty", drv+1))
	}

	var fn string
	if len(args) == 2 {
		fn = args[1]
	} else {
		// save alongside the original image. the NIB extension is added so
		// that a DSK file is never overwritten with NIB data
		if mon.disks[drv] == "" {
			return curated.Errorf(MonitorError, "a filename is required")
		}
		fn = strings.TrimSuffix(mon.disks[drv], ".nib") + ".nib"
	}

	f, err := os.Create(fn)
	if err != nil {
		return curated.Errorf(MonitorError, err)
	}
	defer f.Close()

	if err := img.Save(f); err != nil {
		return curated.Errorf(MonitorError, err)
	}

	mon.printf("drive %d saved to %s\n", drv+1, fn)
	return nil
}

func cmdTiming(mon *Monitor, args []string) error {
	if len(args) == 1 {
		switch strings.ToUpper(args[0]) {
		case "EXACT":
			if err := mon.m.Prefs.Accelerated.Set(false); err != nil {
				return curated.Errorf(MonitorError, err)
			}
		case "ACCELERATED":
			if err := mon.m.Prefs.Accelerated.Set(true); err != nil {
				return curated.Errorf(MonitorError, err)
			}
		default:
			return curated.Errorf(MonitorError, fmt.Sprintf("unknown timing strategy (%s)", args[0]))
		}
		mon.printf("timing change takes effect on RESET\n")
	}

	mon.printf("%s\n", mon.m.Disk.Timing())
	return nil
}

func cmdType(mon *Monitor, args []string) error {
	mon.Keys.Push(strings.Join(args, " ")+"\n", !mon.m.Mem.Model().IsIIe())
	mon.printf("%d keys queued\n", mon.Keys.Len())
	return nil
}

func cmdText(mon *Monitor, _ []string) error {
	for _, l := range TextScreen(mon.m) {
		mon.printf("%s\n", l)
	}
	return nil
}

func cmdRewind(mon *Monitor, args []string) error {
	if mon.m.Rewind == nil {
		return curated.Errorf(MonitorError, "rewind is not enabled")
	}

	if len(args) == 1 {
		frame, err := parseInt(args[0])
		if err != nil {
			return err
		}
		if !mon.m.Rewind.GotoFrame(frame) {
			mon.printf("frame %d not in history. nearest frame used\n", frame)
		}
	}

	n, pos := mon.m.Rewind.State()
	mon.printf("%d snapshots. at %d (frame %d)\n", n, pos, mon.m.Frame())
	return nil
}

func cmdLog(mon *Monitor, args []string) error {
	n := 10
	if len(args) == 1 {
		var err error
		if n, err = parseInt(args[0]); err != nil {
			return err
		}
	}
	logger.Tail(mon.output, n)
	return nil
}
