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

package functional_test

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"runtime/pprof"
	"testing"
	"time"

	"github.com/jetsetilly/gopher2e/hardware/cpu"
	"github.com/jetsetilly/gopher2e/hardware/memory/cpubus"
	"github.com/jetsetilly/gopher2e/test"
)

// whether to create a CPU profile of the host computer when running the test
const profiling = false

// the clock rate of the Apple II in Hz. used only to report how long the test
// would take on real hardware
const appleClock = 1020484

type testMem struct {
	internal []uint8
}

func newTestMem() *testMem {
	return &testMem{
		internal: make([]uint8, 0x10000),
	}
}

func (mem *testMem) Read(address uint16) uint8 {
	return mem.internal[address]
}

func (mem *testMem) Write(address uint16, data uint8) {
	mem.internal[address] = data
}

type program struct {
	filename string
	variant  cpu.Variant

	// these addresses are specific to the binary
	origin         uint16
	successAddress uint16
}

var programs = []program{
	{
		filename:       "6502_functional_test.bin",
		variant:        cpu.NMOS6502,
		origin:         0x0400,
		successAddress: 0x3469,
	},
	{
		filename:       "6502_functional_test.bin",
		variant:        cpu.CMOS65C02,
		origin:         0x0400,
		successAddress: 0x3469,
	},
	{
		filename:       "65C02_extended_opcodes_test.bin",
		variant:        cpu.CMOS65C02,
		origin:         0x0400,
		successAddress: 0x24f1,
	},
}

func TestFunctional(t *testing.T) {
	for _, p := range programs {
		t.Run(p.variant.String()+"_"+p.filename, func(t *testing.T) {
			testFunctional(t, p)
		})
	}
}

func testFunctional(t *testing.T, p program) {
	bin, err := os.ReadFile(filepath.Join("testdata", p.filename))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			t.Skipf("%s not found", p.filename)
		}
		t.Fatal(err)
	}

	mem := newTestMem()
	copy(mem.internal, bin)

	// set reset vectors
	mem.internal[cpubus.Reset] = byte(p.origin)
	mem.internal[cpubus.Reset+1] = byte(p.origin >> 8)

	// create CPU. reset will be done in run() function
	mc := cpu.NewCPU(mem, p.variant)

	// cpu snapshot to be examined in case of test failure
	type snapshot struct {
		mc    *cpu.CPU
		stack []byte
	}
	var history [15]snapshot

	// benchmarking. reset on every call to run()
	var totalCycles int
	var startTime time.Time

	// the run function is run at least once with the record parameter set to
	// false. if the run() fails, the function is run again with the record
	// parameter set to true
	run := func(record bool) bool {
		if profiling && !record {
			f, err := os.Create("cpu_performance.profile")
			if err != nil {
				t.Fatal(err.Error())
			}
			defer func() {
				err := f.Close()
				if err != nil {
					t.Fatal(err.Error())
				}
			}()

			err = pprof.StartCPUProfile(f)
			if err != nil {
				t.Fatal(err.Error())
			}
			defer pprof.StopCPUProfile()
		}

		// the binary may have modified itself during a previous run
		copy(mem.internal, bin)
		mem.internal[cpubus.Reset] = byte(p.origin)
		mem.internal[cpubus.Reset+1] = byte(p.origin >> 8)

		totalCycles = 0
		startTime = time.Now()

		mc.Reset()

		for {
			addr := mc.PC.Address()

			totalCycles += mc.ExecuteInstruction(cpu.NilCycleCallback)

			if record {
				copy(history[:], history[1:])
				history[len(history)-1].mc = mc.Snapshot()
				history[len(history)-1].stack = append([]byte{}, mem.internal[0x0100|mc.SP.Address()+1:0x0200]...)
			}

			// reaching the successAddress means that all tests have completed
			if mc.PC.Address() == p.successAddress {
				return true
			}

			// "Loop on program counter determines error or successful completion of test"
			if mc.PC.Address() == addr || mc.Killed {
				return false
			}
		}
	}

	if run(false) {
		elapsed := time.Since(startTime)
		t.Logf("%d cycles (%.1fs of emulated time) in %s", totalCycles,
			float64(totalCycles)/appleClock, elapsed)
		return
	}

	// the first run() failed so we run it again with the record parameter
	// set to true. note that we expect the execution to return false. if it
	// does not then something unexpected has gone wrong
	ok := run(true)
	test.DemandFailure(t, ok)

	// output immediate CPU history
	for _, l := range history {
		if l.mc != nil {
			t.Logf("%s", l.mc.LastResult.String())
			t.Logf("%s", l.mc.String())
			if len(l.stack) == 0 {
				t.Log("[stack is empty]")
			} else {
				t.Logf("[% 02x]", l.stack)
			}
		}
	}
	t.Fail()
}
