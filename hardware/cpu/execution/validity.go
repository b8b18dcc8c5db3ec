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

package execution

import (
	"github.com/jetsetilly/gopher2e/curated"
)

// IsValid checks whether the instance of Result contains information
// consistent with the instruction definition.
func (r Result) IsValid() error {
	if !r.Final {
		return curated.Errorf("cpu: execution not finalised (bad opcode?)")
	}

	// interrupts have no definition to compare against
	if r.Interrupt != NoInterrupt {
		if r.Cycles != 7 {
			return curated.Errorf("cpu: number of cycles wrong for %s (%d instead of 7)", r.Interrupt, r.Cycles)
		}
		return nil
	}

	if r.Defn == nil {
		return curated.Errorf("cpu: execution finalised but no definition")
	}

	// is PageFault valid given content of Defn
	if !r.Defn.PageSensitive && r.PageFault {
		return curated.Errorf("cpu: unexpected page fault")
	}

	// byte count
	if r.ByteCount != r.Defn.Bytes {
		return curated.Errorf("cpu: unexpected number of bytes read during decode (%d instead of %d)", r.ByteCount, r.Defn.Bytes)
	}

	cycles := r.Cycles
	if r.DecimalModeCycle {
		cycles--
	}

	// if a bug has been triggered, don't perform the number of cycles check
	if r.CPUBug == NoBug {
		if r.Defn.IsBranch() {
			if cycles != r.Defn.Cycles && cycles != r.Defn.Cycles+1 && cycles != r.Defn.Cycles+2 {
				return curated.Errorf("cpu: number of cycles wrong for opcode %#02x [%s] (%d instead of %d, %d or %d)",
					r.Defn.OpCode,
					r.Defn.Mnemonic(),
					cycles,
					r.Defn.Cycles,
					r.Defn.Cycles+1,
					r.Defn.Cycles+2)
			}
		} else {
			if r.Defn.PageSensitive {
				if r.PageFault && cycles != r.Defn.Cycles+1 || !r.PageFault && cycles != r.Defn.Cycles {
					return curated.Errorf("cpu: number of cycles wrong for opcode %#02x [%s] (%d instead of %d, %d)",
						r.Defn.OpCode,
						r.Defn.Mnemonic(),
						cycles,
						r.Defn.Cycles,
						r.Defn.Cycles+1)
				}
			} else {
				if cycles != r.Defn.Cycles {
					return curated.Errorf("cpu: number of cycles wrong for opcode %#02x [%s] (%d instead of %d)",
						r.Defn.OpCode,
						r.Defn.Mnemonic(),
						cycles,
						r.Defn.Cycles)
				}
			}
		}
	}

	return nil
}
