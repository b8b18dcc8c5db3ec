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
	"io"
	"os"

	"github.com/bradleyjkemp/memviz"
	"github.com/jetsetilly/gopher2e/curated"
	"github.com/jetsetilly/gopher2e/hardware/cpu/registers"
	"github.com/jetsetilly/gopher2e/hardware/disk2"
	"github.com/jetsetilly/gopher2e/hardware/memory"
	"github.com/jetsetilly/gopher2e/paths"
)

// graphState is the part of the machine that is included in the graph. RAM
// is left out because it would swamp everything else.
type graphState struct {
	Cycles   uint64
	PC       registers.ProgramCounter
	A        registers.Register
	X        registers.Register
	Y        registers.Register
	SP       registers.Register
	Status   registers.StatusRegister
	Model    memory.Model
	Switches memory.SoftSwitches
	Disk     *disk2.State
}

// Graph writes a graphviz dot representation of the machine state.
func (mon *Monitor) Graph(w io.Writer) {
	s := mon.m.Snapshot()
	memviz.Map(w, &graphState{
		Cycles:   s.Cycles,
		PC:       s.CPU.PC,
		A:        s.CPU.A,
		X:        s.CPU.X,
		Y:        s.CPU.Y,
		SP:       s.CPU.SP,
		Status:   s.CPU.Status,
		Model:    s.Mem.Model(),
		Switches: s.Mem.Switches,
		Disk:     s.Disk,
	})
}

func cmdGraph(mon *Monitor, args []string) error {
	var fn string
	if len(args) == 1 {
		fn = args[0]
	} else {
		fn = fmt.Sprintf("%s.dot", paths.UniqueFilename("graph", mon.disks[0]))
	}

	f, err := os.Create(fn)
	if err != nil {
		return curated.Errorf(MonitorError, err)
	}
	defer f.Close()

	mon.Graph(f)
	mon.printf("graph written to %s\n", fn)
	mon.printf("render with: dot -Tpng -O %s\n", fn)

	return nil
}
