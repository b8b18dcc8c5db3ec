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

package thomharte

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/jetsetilly/gopher2e/hardware/cpu"
	"github.com/jetsetilly/gopher2e/hardware/cpu/instructions"
	"github.com/jetsetilly/gopher2e/test"
)

// the posible memory events recorded by the memory implementation. also used to seal the memEvent
// types in the BusCycle test data
type memEvent string

const (
	read  = memEvent("read")
	write = memEvent("write")
)

type busEvent struct {
	address uint16
	data    uint8
	event   memEvent
}

type testMem struct {
	internal []uint8
	events   []busEvent
}

func newTestMem() *testMem {
	return &testMem{
		// the CPU has a 16bit address bus so the maximum amount of memory is 64k
		internal: make([]uint8, 0x10000),
	}
}

func (mem *testMem) Read(address uint16) uint8 {
	data := mem.internal[address]
	mem.events = append(mem.events, busEvent{address: address, data: data, event: read})
	return data
}

func (mem *testMem) Write(address uint16, data uint8) {
	mem.internal[address] = data
	mem.events = append(mem.events, busEvent{address: address, data: data, event: write})
}

type RAMEntry struct {
	Address uint16 `json:"0"`
	Value   uint8  `json:"1"`
}

func (r *RAMEntry) UnmarshalJSON(data []byte) error {
	var raw [2]uint64
	err := json.Unmarshal(data, &raw)
	if err != nil {
		return err
	}
	r.Address = uint16(raw[0])
	r.Value = uint8(raw[1])
	return nil
}

type BusCycle struct {
	Address uint16
	Data    uint8
	Event   memEvent
}

func (b *BusCycle) UnmarshalJSON(data []byte) error {
	var raw [3]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	addr, _ := raw[0].(float64)
	dat, _ := raw[1].(float64)
	ev, _ := raw[2].(string)

	b.Address = uint16(addr)
	b.Data = uint8(dat)
	b.Event = memEvent(ev)

	switch b.Event {
	case read, write:
	default:
		return fmt.Errorf("unexpected memory event: %q", b.Event)
	}

	return nil
}

type State struct {
	PC  uint64     `json:"pc"`
	S   uint64     `json:"s"`
	A   uint64     `json:"a"`
	X   uint64     `json:"x"`
	Y   uint64     `json:"y"`
	P   uint64     `json:"p"`
	RAM []RAMEntry `json:"ram"`
}

type Tests struct {
	Name    string     `json:"name"`
	Initial State      `json:"initial"`
	Final   State      `json:"final"`
	Cycles  []BusCycle `json:"cycles"`
}

func (d *Tests) UnmarshalJSON(data []byte) error {
	// we have a custom unmarshaller for Tests only so that we can insert the Name field to any
	// error. to make the unmarshaller as clean as possible we want to avoid recursion; and we can
	// do this by using an alias type
	type norecurse Tests

	var tmp norecurse
	if err := json.Unmarshal(data, &tmp); err != nil {
		return fmt.Errorf("error unmarshalling test %q: %w", tmp.Name, err)
	}
	*d = Tests(tmp)
	return nil
}

// the unused and break bits of the status register have no meaning outside
// of the stack and are ignored when comparing
const statusMask = 0xcf

// opcodes that are not tested. the JAM instructions never finish and the
// results of ANE and LXA depend on a constant that varies between chips
func skip(variant cpu.Variant, opcode uint8) bool {
	if variant == cpu.NMOS6502 {
		switch instructions.NMOS()[opcode].Operator {
		case instructions.Jam, instructions.Ane, instructions.Lxa:
			return true
		}
	}
	return false
}

func TestThomHarte(t *testing.T) {
	t.Run("6502", func(t *testing.T) {
		testDirectory(t, filepath.Join("6502", "v1"), cpu.NMOS6502)
	})
	t.Run("65C02", func(t *testing.T) {
		testDirectory(t, filepath.Join("rockwell65c02", "v1"), cpu.CMOS65C02)
	})
}

func testDirectory(t *testing.T, testsPath string, variant cpu.Variant) {
	d, err := os.ReadDir(testsPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			t.Skipf("%s not found", testsPath)
		}
		t.Fatal(err)
	}

	for _, e := range d {
		if !e.Type().IsRegular() || filepath.Ext(e.Name()) != ".json" {
			continue
		}

		opcode, err := strconv.ParseUint(strings.TrimSuffix(e.Name(), ".json"), 16, 8)
		if err != nil {
			continue
		}
		if skip(variant, uint8(opcode)) {
			continue
		}

		testThomHarte(t, filepath.Join(testsPath, e.Name()), variant)
	}
}

func testThomHarte(t *testing.T, testFile string, variant cpu.Variant) {
	t.Logf("testing %s", testFile)

	f, err := os.Open(testFile)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	var tests []Tests
	if err := json.NewDecoder(f).Decode(&tests); err != nil {
		t.Fatalf("%s: %v", testFile, err)
	}

	mem := newTestMem()
	mc := cpu.NewCPU(mem, variant)
	mc.Quiet = true
	mc.Reset()

	for i, s := range tests {
		mc.PC.Load(uint16(s.Initial.PC))
		mc.A.Load(uint8(s.Initial.A))
		mc.X.Load(uint8(s.Initial.X))
		mc.Y.Load(uint8(s.Initial.Y))
		mc.SP.Load(uint8(s.Initial.S))
		mc.Status.Load(uint8(s.Initial.P))
		for _, r := range s.Initial.RAM {
			mem.internal[r.Address] = r.Value
		}
		mem.events = mem.events[:0]

		mc.ExecuteInstruction(cpu.NilCycleCallback)

		var fail bool

		fail = !test.ExpectEquality(t, len(mem.events), len(s.Cycles), testFile, i, "cycles") || fail
		for c := 0; c < min(len(mem.events), len(s.Cycles)); c++ {
			fail = !test.ExpectEquality(t, mem.events[c].address, s.Cycles[c].Address, testFile, i, c, "address bus") || fail
			fail = !test.ExpectEquality(t, mem.events[c].data, s.Cycles[c].Data, testFile, i, c, "data bus") || fail
			fail = !test.ExpectEquality(t, mem.events[c].event, s.Cycles[c].Event, testFile, i, c, "memory event") || fail
		}

		fail = !test.ExpectEquality(t, mc.PC.Address(), uint16(s.Final.PC), testFile, i, "PC") || fail
		fail = !test.ExpectEquality(t, mc.A.Value(), uint8(s.Final.A), testFile, i, "A") || fail
		fail = !test.ExpectEquality(t, mc.X.Value(), uint8(s.Final.X), testFile, i, "X") || fail
		fail = !test.ExpectEquality(t, mc.Y.Value(), uint8(s.Final.Y), testFile, i, "Y") || fail
		fail = !test.ExpectEquality(t, mc.SP.Value(), uint8(s.Final.S), testFile, i, "SP") || fail
		fail = !test.ExpectEquality(t, mc.Status.Value()&statusMask, uint8(s.Final.P)&statusMask, testFile, i, "Status") || fail
		for _, r := range s.Final.RAM {
			fail = !test.ExpectEquality(t, mem.internal[r.Address], r.Value, testFile, i, "RAM", r.Address) || fail
		}

		if fail {
			t.Logf("last instruction: %s", mc.LastResult.String())
			t.Fatalf("%s: failed on test %d (%s)", testFile, i, s.Name)
		}
	}
}
