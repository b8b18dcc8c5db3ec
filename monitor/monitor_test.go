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

package monitor_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jetsetilly/gopher2e/curated"
	"github.com/jetsetilly/gopher2e/hardware"
	"github.com/jetsetilly/gopher2e/hardware/disk2/diskimage"
	"github.com/jetsetilly/gopher2e/hardware/memory"
	"github.com/jetsetilly/gopher2e/hardware/preferences"
	"github.com/jetsetilly/gopher2e/monitor"
	"github.com/jetsetilly/gopher2e/test"
)

// echo is a program that waits for a key, clears the strobe and stores the
// key at $0300
var echo = []uint8{
	0xad, 0x00, 0xc0, // LDA $C000
	0x10, 0xfb, //       BPL $D000
	0x8d, 0x10, 0xc0, // STA $C010
	0x8d, 0x00, 0x03, // STA $0300
	0x4c, 0x00, 0xd0, // JMP $D000
}

func newMonitor(t *testing.T) (*monitor.Monitor, *hardware.Machine, *test.CompareWriter) {
	t.Helper()

	prefs, err := preferences.NewPreferencesFromFile(filepath.Join(t.TempDir(), "preferences"))
	test.DemandSuccess(t, err)

	m, err := hardware.NewMachine(prefs)
	test.DemandSuccess(t, err)

	rom := make([]uint8, 0x3000)
	copy(rom, echo)
	rom[0x2ffc] = 0x00
	rom[0x2ffd] = 0xd0
	test.DemandSuccess(t, m.Reset(rom, memory.Auto))

	tw := &test.CompareWriter{}
	return monitor.NewMonitor(m, rom, tw), m, tw
}

func TestUnknownCommand(t *testing.T) {
	mon, _, _ := newMonitor(t)

	err := mon.Process("frobnicate")
	test.ExpectSuccess(t, curated.Is(err, monitor.MonitorError))

	// wrong number of arguments
	test.ExpectFailure(t, mon.Process("peek"))
	test.ExpectFailure(t, mon.Process("eject 1 2"))

	// empty lines are fine
	test.ExpectSuccess(t, mon.Process("   "))
}

func TestHelp(t *testing.T) {
	mon, _, tw := newMonitor(t)

	test.ExpectSuccess(t, mon.Process("help peek"))
	test.ExpectSuccess(t, tw.Compare("PEEK address [n]\n  show memory without side effects\n"), tw.String())

	tw.Clear()
	test.ExpectSuccess(t, mon.Process("help"))
	test.ExpectSuccess(t, strings.Contains(tw.String(), "GRAPH [file]"))

	test.ExpectFailure(t, mon.Process("help frobnicate"))
}

func TestMap(t *testing.T) {
	mon, _, tw := newMonitor(t)

	test.ExpectSuccess(t, mon.Process("map"))
	test.ExpectSuccess(t, strings.HasPrefix(tw.String(), "0000 -> 01ff\tZero Page & Stack\n"), tw.String())
	test.ExpectSuccess(t, strings.Contains(tw.String(), "d000 -> ffff\tLanguage Card\n"), tw.String())

	tw.Clear()
	test.ExpectSuccess(t, mon.Process("map c0e9"))
	test.ExpectSuccess(t, tw.Compare("c0e9: Slot I/O (slot 6)\n"), tw.String())

	tw.Clear()
	test.ExpectSuccess(t, mon.Process("map $0400"))
	test.ExpectSuccess(t, tw.Compare("0400: RAM\n"), tw.String())
}

func TestQuit(t *testing.T) {
	mon, _, _ := newMonitor(t)
	test.ExpectEquality(t, mon.Quit(), false)
	test.ExpectSuccess(t, mon.Process("QUIT"))
	test.ExpectEquality(t, mon.Quit(), true)
}

func TestPeekPoke(t *testing.T) {
	mon, m, tw := newMonitor(t)

	test.ExpectSuccess(t, mon.Process("poke $300 01 02 ff"))
	test.ExpectEquality(t, m.Peek(0x0302), uint8(0xff))

	test.ExpectSuccess(t, mon.Process("peek 300 3"))
	test.ExpectSuccess(t, tw.Compare("0300: 01 02 ff\n"), tw.String())

	tw.Clear()
	test.ExpectSuccess(t, mon.Process("peek 0x2fe 4"))
	test.ExpectSuccess(t, tw.Compare("02fe: 00 00 01 02\n"), tw.String())

	tw.Clear()
	test.ExpectSuccess(t, mon.Process("peek d000 17"))
	test.ExpectSuccess(t, strings.HasPrefix(tw.String(), "d000: ad 00 c0 10 fb"), tw.String())
	test.ExpectSuccess(t, strings.Contains(tw.String(), "\nd010: "), tw.String())

	test.ExpectFailure(t, mon.Process("poke 300 100"))
	test.ExpectFailure(t, mon.Process("peek 10000"))
	test.ExpectFailure(t, mon.Process("peek 300 -1"))
}

func TestStepAndType(t *testing.T) {
	mon, m, tw := newMonitor(t)

	test.ExpectSuccess(t, mon.Process("step"))
	test.ExpectSuccess(t, strings.HasPrefix(tw.String(), "d000 LDA $c000"), tw.String())
	test.ExpectEquality(t, m.CPU.PC.Address(), uint16(0xd003))

	// no key has been pressed so the program loops
	test.ExpectSuccess(t, mon.Process("run 1"))
	test.ExpectEquality(t, m.Peek(0x0300), uint8(0x00))

	test.ExpectSuccess(t, mon.Process("type a"))
	test.ExpectEquality(t, mon.Keys.Len(), 2)

	// one key is fed per frame. keys are upper case on the II+
	test.ExpectSuccess(t, mon.Process("run 1"))
	test.ExpectEquality(t, m.Peek(0x0300), uint8(0xc1))
	test.ExpectEquality(t, mon.Keys.Len(), 1)

	test.ExpectSuccess(t, mon.Process("run 1"))
	test.ExpectEquality(t, m.Peek(0x0300), uint8(0x8d))
	test.ExpectEquality(t, mon.Keys.Len(), 0)

	test.ExpectFailure(t, mon.Process("until d005 100"))
	test.ExpectSuccess(t, mon.Process("until d000 100"))
}

func TestDisasm(t *testing.T) {
	mon, _, tw := newMonitor(t)

	test.ExpectSuccess(t, mon.Process("disasm d000 3"))
	test.ExpectSuccess(t, tw.Compare(
		"d000  ad 00 c0  LDA $c000\n"+
			"d003  10 fb     BPL $d000\n"+
			"d005  8d 10 c0  STA $c010\n"), tw.String())

	tw.Clear()
	test.ExpectSuccess(t, mon.Process("disasm"))
	test.ExpectEquality(t, strings.Count(tw.String(), "\n"), 10)
}

func TestReset(t *testing.T) {
	mon, m, _ := newMonitor(t)

	test.ExpectSuccess(t, mon.Process("run 2"))
	test.ExpectSuccess(t, m.Cycles() > 0)
	test.ExpectSuccess(t, mon.Process("reset"))
	test.ExpectEquality(t, m.Cycles(), uint64(0))
	test.ExpectEquality(t, m.CPU.PC.Address(), uint16(0xd000))

	mon = monitor.NewMonitor(m, nil, &test.CompareWriter{})
	test.ExpectFailure(t, mon.Process("reset"))
}

func TestKeyQueue(t *testing.T) {
	_, m, _ := newMonitor(t)

	q := &monitor.KeyQueue{}
	q.Push("ab\n", true)
	test.ExpectEquality(t, q.Len(), 3)

	test.ExpectEquality(t, q.Feed(m), true)
	test.ExpectEquality(t, m.Peek(0xc000), uint8(0xc1))

	// strobe has not been cleared
	test.ExpectEquality(t, q.Feed(m), false)
	test.ExpectEquality(t, q.Len(), 2)

	q.Push("a", false)
	test.ExpectEquality(t, q.Len(), 3)
}

func TestText(t *testing.T) {
	mon, m, tw := newMonitor(t)

	// HELLO in normal video on the first line and in inverse on the second
	for i, c := range []uint8("HELLO") {
		m.Poke(0x0400+uint16(i), c|0x80)
		m.Poke(0x0480+uint16(i), c&0x3f)
	}
	// lower case is only available on the IIe but the screen code is
	// decoded anyway
	m.Poke(0x0428, 'a'|0x80)

	lines := monitor.TextScreen(m)
	test.DemandEquality(t, len(lines), 24)
	test.ExpectEquality(t, lines[0][:5], "HELLO")
	test.ExpectEquality(t, lines[1][:5], "HELLO")
	test.ExpectEquality(t, lines[8][:1], "a")
	test.ExpectEquality(t, len(lines[23]), 40)

	test.ExpectSuccess(t, mon.Process("text"))
	test.ExpectEquality(t, strings.Count(tw.String(), "\n"), 24)
}

func TestDisk(t *testing.T) {
	mon, m, tw := newMonitor(t)
	dir := t.TempDir()

	dsk := filepath.Join(dir, "blank.dsk")
	test.DemandSuccess(t, os.WriteFile(dsk, make([]byte, diskimage.DSKSize), 0o644))

	test.ExpectFailure(t, mon.Process("insert 3 "+dsk))
	test.ExpectFailure(t, mon.Process("insert 1 "+filepath.Join(dir, "missing.dsk")))
	test.DemandSuccess(t, mon.Process("insert 1 "+dsk))
	test.ExpectSuccess(t, strings.Contains(tw.String(), "blank inserted into drive 1"), tw.String())

	tw.Clear()
	test.ExpectSuccess(t, mon.Process("disk"))
	test.ExpectSuccess(t, strings.Contains(tw.String(), "1: track 0, idle, DSK (DOS order)"), tw.String())

	tw.Clear()
	test.ExpectSuccess(t, mon.Process("disk 1"))
	test.ExpectSuccess(t, strings.Contains(tw.String(), "00: "), tw.String())

	nib := filepath.Join(dir, "saved.nib")
	test.ExpectSuccess(t, mon.Process("save 1 "+nib))
	info, err := os.Stat(nib)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, info.Size(), int64(diskimage.NIBSize))

	// without a filename the image is saved next to the original
	test.ExpectSuccess(t, mon.Process("save 1"))
	_, err = os.Stat(dsk + ".nib")
	test.ExpectSuccess(t, err)

	test.ExpectFailure(t, mon.Process("save 2"))
	test.ExpectSuccess(t, mon.Process("eject 1"))
	test.ExpectFailure(t, mon.Process("eject 1"))

	d, err := m.Disk.Drive(0)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, d.Image() == nil, true)
}

func TestTiming(t *testing.T) {
	mon, m, tw := newMonitor(t)

	test.ExpectSuccess(t, mon.Process("timing"))
	test.ExpectSuccess(t, strings.HasPrefix(tw.String(), "accelerated"), tw.String())

	test.ExpectSuccess(t, mon.Process("timing exact"))
	test.ExpectSuccess(t, mon.Process("reset"))
	test.ExpectEquality(t, m.Disk.Timing().String(), "exact")

	test.ExpectFailure(t, mon.Process("timing fast"))
}

func TestRewind(t *testing.T) {
	mon, m, tw := newMonitor(t)

	test.ExpectFailure(t, mon.Process("rewind"))

	m.EnableRewind()
	test.ExpectSuccess(t, mon.Process("run 5"))
	test.ExpectSuccess(t, mon.Process("rewind 2"))
	test.ExpectEquality(t, m.Frame(), 2)
	test.ExpectSuccess(t, strings.Contains(tw.String(), "6 snapshots"), tw.String())
}

func TestGraph(t *testing.T) {
	mon, _, _ := newMonitor(t)

	fn := filepath.Join(t.TempDir(), "state.dot")
	test.ExpectSuccess(t, mon.Process("graph "+fn))

	data, err := os.ReadFile(fn)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, strings.Contains(string(data), "digraph"))
	test.ExpectSuccess(t, strings.Contains(string(data), "Switches"))
}

func TestLog(t *testing.T) {
	mon, _, tw := newMonitor(t)
	test.ExpectSuccess(t, mon.Process("log 5"))
	test.ExpectSuccess(t, mon.Process("cpu"))
	test.ExpectSuccess(t, strings.Contains(tw.String(), "PC="), tw.String())
	test.ExpectSuccess(t, mon.Process("switches"))
}
