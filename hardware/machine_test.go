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

package hardware_test

import (
	"math"
	"math/rand"
	"path/filepath"
	"testing"
	"time"

	"github.com/jetsetilly/gopher2e/curated"
	"github.com/jetsetilly/gopher2e/hardware"
	"github.com/jetsetilly/gopher2e/hardware/cpu"
	"github.com/jetsetilly/gopher2e/hardware/disk2"
	"github.com/jetsetilly/gopher2e/hardware/disk2/diskimage"
	"github.com/jetsetilly/gopher2e/hardware/memory"
	"github.com/jetsetilly/gopher2e/hardware/preferences"
	"github.com/jetsetilly/gopher2e/test"
)

func newMachine(t *testing.T) *hardware.Machine {
	t.Helper()

	prefs, err := preferences.NewPreferencesFromFile(filepath.Join(t.TempDir(), "preferences"))
	test.DemandSuccess(t, err)

	m, err := hardware.NewMachine(prefs)
	test.DemandSuccess(t, err)

	return m
}

// systemROM returns a 12k ROM for $D000 to $FFFF with the program at $D000
// and the reset vector pointing to it
func systemROM(program []uint8) []uint8 {
	rom := make([]uint8, 0x3000)
	copy(rom, program)
	rom[0x2ffc] = 0x00
	rom[0x2ffd] = 0xd0
	return rom
}

func TestResetBadROM(t *testing.T) {
	m := newMachine(t)

	err := m.Reset(make([]uint8, 100), memory.Auto)
	test.ExpectSuccess(t, curated.Is(err, memory.RomError))

	err = m.Reset(nil, memory.Auto)
	test.ExpectSuccess(t, curated.Is(err, memory.RomError))

	test.ExpectEquality(t, m.Cycles(), uint64(0))
}

func TestModel(t *testing.T) {
	m := newMachine(t)

	// a 12k ROM suggests a II+
	test.DemandSuccess(t, m.Reset(systemROM(nil), memory.Auto))
	test.ExpectEquality(t, m.Mem.Model(), memory.AppleIIPlus)
	test.ExpectEquality(t, m.CPU.Variant(), cpu.NMOS6502)

	// the enhanced IIe has a 65C02
	rom := make([]uint8, 0x4000)
	test.DemandSuccess(t, m.Reset(rom, memory.AppleIIeEnhanced))
	test.ExpectEquality(t, m.Mem.Model(), memory.AppleIIeEnhanced)
	test.ExpectEquality(t, m.CPU.Variant(), cpu.CMOS65C02)

	// the model preference is used when the requested model is Auto
	test.DemandSuccess(t, m.Prefs.Model.Set("II"))
	test.DemandSuccess(t, m.Reset(rom, memory.Auto))
	test.ExpectEquality(t, m.Mem.Model(), memory.AppleII)
}

func TestRunCycles(t *testing.T) {
	m := newMachine(t)

	// JMP $D000
	test.DemandSuccess(t, m.Reset(systemROM([]uint8{0x4c, 0x00, 0xd0}), memory.Auto))

	n := m.RunCycles(100)
	test.ExpectSuccess(t, n >= 100)
	test.ExpectSuccess(t, n < 103)
	test.ExpectEquality(t, m.Cycles(), uint64(n))

	m.RunFrame()
	test.ExpectSuccess(t, m.Cycles() >= hardware.CyclesPerFrame+100)
	test.ExpectEquality(t, m.Frame(), 1)

	// a single instruction
	test.ExpectEquality(t, m.Step(nil), 3)

	var cycles int
	test.ExpectEquality(t, m.Step(func() { cycles++ }), 3)
	test.ExpectEquality(t, cycles, 3)
}

func TestHalt(t *testing.T) {
	m := newMachine(t)
	test.DemandSuccess(t, m.Reset(systemROM([]uint8{0x4c, 0x00, 0xd0}), memory.Auto))

	m.Halt()
	test.ExpectEquality(t, m.RunCycles(1000), 0)
	test.ExpectSuccess(t, m.Halted())

	m.Resume()
	test.ExpectSuccess(t, m.RunCycles(1000) >= 1000)

	go func() {
		time.Sleep(10 * time.Millisecond)
		m.Halt()
	}()
	n := m.RunCycles(math.MaxInt32)
	test.ExpectSuccess(t, n < math.MaxInt32)

	// the halt is honoured between instructions
	test.ExpectEquality(t, m.CPU.PC.Address(), uint16(0xd000))

	// reset clears the halt
	test.DemandSuccess(t, m.Reset(systemROM([]uint8{0x4c, 0x00, 0xd0}), memory.Auto))
	test.ExpectFailure(t, m.Halted())
}

type speaker struct {
	toggles []uint64
}

func (s *speaker) SpeakerToggle(cycle uint64) {
	s.toggles = append(s.toggles, cycle)
}

func TestSpeakerAndPeek(t *testing.T) {
	m := newMachine(t)
	spk := &speaker{}
	m.AttachSpeaker(spk)

	// LDA $C030 ; JMP $D000
	test.DemandSuccess(t, m.Reset(systemROM([]uint8{0xad, 0x30, 0xc0, 0x4c, 0x00, 0xd0}), memory.Auto))

	// peek has no side effects
	m.Peek(0xc030)
	test.ExpectEquality(t, len(spk.toggles), 0)

	m.RunCycles(70)
	test.DemandEquality(t, len(spk.toggles), 10)
	for i := 1; i < len(spk.toggles); i++ {
		test.ExpectEquality(t, spk.toggles[i]-spk.toggles[i-1], uint64(7))
	}

	m.Poke(0x0400, 0x41)
	test.ExpectEquality(t, m.Peek(0x0400), uint8(0x41))
}

func TestKeyboard(t *testing.T) {
	m := newMachine(t)

	// LDA $C000 ; STA $10 ; JMP $D000
	test.DemandSuccess(t, m.Reset(systemROM([]uint8{0xad, 0x00, 0xc0, 0x85, 0x10, 0x4c, 0x00, 0xd0}), memory.Auto))

	m.KeyPress('A')
	m.RunCycles(10)
	test.ExpectEquality(t, m.Peek(0x0010), uint8(0xc1))
}

func TestSnapshot(t *testing.T) {
	m := newMachine(t)

	// INC $10 ; JMP $D000
	test.DemandSuccess(t, m.Reset(systemROM([]uint8{0xe6, 0x10, 0x4c, 0x00, 0xd0}), memory.Auto))
	m.RunCycles(1000)

	s := m.Snapshot()
	v := m.Peek(0x0010)
	pc := m.CPU.PC.Address()
	cycles := m.Cycles()

	m.RunCycles(1000)
	test.ExpectInequality(t, m.Peek(0x0010), v)

	m.Plumb(s)
	test.ExpectEquality(t, m.Peek(0x0010), v)
	test.ExpectEquality(t, m.CPU.PC.Address(), pc)
	test.ExpectEquality(t, m.Cycles(), cycles)

	// the machine still runs after plumbing and the state is unchanged by it
	m.RunCycles(1000)
	test.ExpectInequality(t, m.Peek(0x0010), v)
	test.ExpectEquality(t, s.Mem.Peek(0x0010), v)
}

func TestRewind(t *testing.T) {
	m := newMachine(t)
	m.EnableRewind()

	// INC $10 ; JMP $D000
	test.DemandSuccess(t, m.Reset(systemROM([]uint8{0xe6, 0x10, 0x4c, 0x00, 0xd0}), memory.Auto))

	for i := 0; i < 5; i++ {
		m.RunFrame()
	}
	n, pos := m.Rewind.State()
	test.ExpectEquality(t, n, 6)
	test.ExpectEquality(t, pos, 5)

	test.ExpectSuccess(t, m.Rewind.GotoFrame(2))
	test.ExpectEquality(t, m.Frame(), 2)
	_, pos = m.Rewind.State()
	test.ExpectEquality(t, pos, 2)

	// running from a rewound position forgets the future
	m.RunFrame()
	n, _ = m.Rewind.State()
	test.ExpectEquality(t, n, 4)

	test.ExpectFailure(t, m.Rewind.GotoFrame(100))
	test.ExpectEquality(t, m.Frame(), 3)
}

func TestDisks(t *testing.T) {
	m := newMachine(t)

	img, err := diskimage.NewImage(make([]uint8, diskimage.DSKSize), diskimage.DOS, "")
	test.DemandSuccess(t, err)

	err = m.InsertDisk(2, img)
	test.ExpectSuccess(t, curated.Is(err, disk2.DriveError))

	err = m.InsertDisk(0, nil)
	test.ExpectSuccess(t, curated.Is(err, diskimage.DiskImageError))

	test.DemandSuccess(t, m.InsertDisk(1, img))
	test.ExpectEquality(t, m.EjectDisk(1), img)
	test.ExpectEquality(t, m.EjectDisk(1), nil)

	// the controller is in slot 6
	test.ExpectEquality(t, m.Mem.Peripheral(hardware.DiskSlot), memory.Peripheral(m.Disk))
}

// the 6-and-2 disk bytes
var writeTable = [64]uint8{
	0x96, 0x97, 0x9a, 0x9b, 0x9d, 0x9e, 0x9f, 0xa6,
	0xa7, 0xab, 0xac, 0xad, 0xae, 0xaf, 0xb2, 0xb3,
	0xb4, 0xb5, 0xb6, 0xb7, 0xb9, 0xba, 0xbb, 0xbc,
	0xbd, 0xbe, 0xbf, 0xcb, 0xcd, 0xce, 0xcf, 0xd3,
	0xd6, 0xd7, 0xd9, 0xda, 0xdb, 0xdc, 0xdd, 0xde,
	0xdf, 0xe5, 0xe6, 0xe7, 0xe9, 0xea, 0xeb, 0xec,
	0xed, 0xee, 0xef, 0xf2, 0xf3, 0xf4, 0xf5, 0xf6,
	0xf7, 0xf9, 0xfa, 0xfb, 0xfc, 0xfd, 0xfe, 0xff,
}

// bootTest creates a machine with a system ROM that jumps to a boot ROM in
// slot 6. the boot ROM finds sector 0 of track 0 and checks the XOR chain of
// the data field. $AA is written to $0300 if the data is good and $FF is
// written to $0301 if it is not
func bootTest(t *testing.T, accelerated bool) *hardware.Machine {
	t.Helper()

	m := newMachine(t)
	test.DemandSuccess(t, m.Prefs.Accelerated.Set(accelerated))

	// system ROM. the table at $D100 translates disk bytes to 6 bit values.
	// invalid disk bytes translate to $80
	sys := systemROM([]uint8{0x4c, 0x00, 0xc6})
	for i := 0; i < 256; i++ {
		sys[0x100+i] = 0x80
	}
	for i, v := range writeTable {
		sys[0x100+int(v)] = uint8(i)
	}

	const (
		q6l     = 0xc0ec
		table   = 0xd100
		ldaAbs  = 0xad
		ldyAbs  = 0xac
		bpl     = 0x10
		bne     = 0xd0
		cmpImm  = 0xc9
		ldxImm  = 0xa2
		ldaImm  = 0xa9
		ldaZp   = 0xa5
		staZp   = 0x85
		staAbs  = 0x8d
		eorAbsY = 0x59
		dex     = 0xca
	)

	a := newAssembler(0xc600)

	// LDX #$20 is the signature of a Disk II boot ROM
	a.op(ldxImm, 0x20)

	// motor on, drive 1, read mode
	a.abs(ldaAbs, 0xc0e9)
	a.abs(ldaAbs, 0xc0ea)
	a.abs(ldaAbs, 0xc0ee)

	// wait for a byte and compare it with a value. go to fail if the byte is
	// not the same
	expect := func(wait string, v uint8, fail string) {
		a.label(wait)
		a.abs(ldaAbs, q6l)
		a.branch(bpl, wait)
		a.op(cmpImm, v)
		a.branch(bne, fail)
	}

	// address field of sector 0
	expect("find", 0xd5, "find")
	expect("f2", 0xaa, "find")
	expect("f3", 0x96, "find")
	a.op(ldxImm, 0x04)
	a.label("skip")
	a.abs(ldaAbs, q6l)
	a.branch(bpl, "skip")
	a.op(dex)
	a.branch(bne, "skip")
	expect("s1", 0xaa, "find")
	expect("s2", 0xaa, "find")

	// data field
	expect("d1", 0xd5, "d1")
	expect("d2", 0xaa, "d1")
	expect("d3", 0xad, "d1")

	// XOR of the 343 translated values is zero if the checksum is correct
	a.op(ldaImm, 0x00)
	a.op(staZp, 0x00)
	read := func(loop string) {
		a.label(loop)
		a.abs(ldyAbs, q6l)
		a.branch(bpl, loop)
		a.op(ldaZp, 0x00)
		a.abs(eorAbsY, table)
		a.op(staZp, 0x00)
		a.op(dex)
		a.branch(bne, loop)
	}
	a.op(ldxImm, 0x57)
	read("r1")
	read("r2")

	a.op(ldaZp, 0x00)
	a.branch(bne, "fail")
	a.op(ldaImm, 0xaa)
	a.abs(staAbs, 0x0300)
	a.jmp("done")
	a.label("fail")
	a.op(ldaImm, 0xff)
	a.abs(staAbs, 0x0301)
	a.label("done")
	a.jmp("done")

	boot := make([]uint8, 256)
	copy(boot, a.assemble())
	test.DemandSuccess(t, m.SetBootROM(boot))

	test.DemandSuccess(t, m.Reset(sys, memory.Auto))

	return m
}

func dosDisk(t *testing.T) *diskimage.Image {
	t.Helper()

	rnd := rand.New(rand.NewSource(2))
	data := make([]uint8, diskimage.DSKSize)
	for i := range data {
		data[i] = uint8(rnd.Intn(256))
	}

	img, err := diskimage.NewImage(data, diskimage.DOS, "boot.dsk")
	test.DemandSuccess(t, err)

	return img
}

// the budget is enough for the motor to spin up and for two revolutions of
// the disk
const bootBudget = preferences.DefaultSpinUp + diskimage.TrackSize*disk2.CyclesPerByte*2

func TestBoot(t *testing.T) {
	for _, accelerated := range []bool{false, true} {
		m := bootTest(t, accelerated)
		test.DemandSuccess(t, m.InsertDisk(0, dosDisk(t)))

		m.RunCycles(bootBudget)

		test.ExpectEquality(t, m.Peek(0x0300), uint8(0xaa), accelerated)
		test.ExpectEquality(t, m.Peek(0x0301), uint8(0x00), accelerated)

		// the boot ROM leaves the motor running
		d, err := m.Disk.Drive(0)
		test.DemandSuccess(t, err)
		test.ExpectEquality(t, d.Motor, disk2.Ready, accelerated)
		test.ExpectEquality(t, m.Disk.Timing().Accelerated(), accelerated, accelerated)
	}
}

func TestBootTamper(t *testing.T) {
	for _, accelerated := range []bool{false, true} {
		m := bootTest(t, accelerated)

		// a single bit of the data field of sector 0
		img := dosDisk(t)
		img.Tracks[0][48+14+6+3+100] ^= 0x01
		test.DemandSuccess(t, m.InsertDisk(0, img))

		m.RunCycles(bootBudget)

		test.ExpectEquality(t, m.Peek(0x0300), uint8(0x00), accelerated)
		test.ExpectEquality(t, m.Peek(0x0301), uint8(0xff), accelerated)
	}
}
