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

//go:generate go run instructions_gen.go

package main

import (
	"encoding/csv"
	"fmt"
	"go/format"
	"io"
	"os"
	"strconv"
	"strings"
)

const leadingBoilerPlate = "// Code generated by instructions_gen.go - DO NOT EDIT.\n\n" +
	"package instructions\n\n" +
	"// %s is the table of instruction definitions for the %s.\n" +
	"var %s = Table{\n"

const trailingBoilerPlate = "}\n"

type table struct {
	csvFile string
	goFile  string
	name    string
	part    string
}

var tables = []table{
	{csvFile: "./nmos.csv", goFile: "../table_nmos.go", name: "nmos", part: "NMOS 6502"},
	{csvFile: "./cmos.csv", goFile: "../table_cmos.go", name: "cmos", part: "CMOS 65C02"},
}

// addressing mode name in the CSV file, the name of the constant in the
// instructions package and the number of bytes the addressing mode implies
var addressingModes = map[string]struct {
	name  string
	bytes int
}{
	"IMPLIED":                   {"Implied", 1},
	"IMMEDIATE":                 {"Immediate", 2},
	"RELATIVE":                  {"Relative", 2},
	"ABSOLUTE":                  {"Absolute", 3},
	"ZERO_PAGE":                 {"ZeroPage", 2},
	"INDIRECT":                  {"Indirect", 3},
	"INDEXED_INDIRECT":          {"IndexedIndirect", 2},
	"INDIRECT_INDEXED":          {"IndirectIndexed", 2},
	"ABSOLUTE_INDEXED_X":        {"AbsoluteIndexedX", 3},
	"ABSOLUTE_INDEXED_Y":        {"AbsoluteIndexedY", 3},
	"ZERO_PAGE_INDEXED_X":       {"ZeroPageIndexedX", 2},
	"ZERO_PAGE_INDEXED_Y":       {"ZeroPageIndexedY", 2},
	"ZERO_PAGE_INDIRECT":        {"ZeroPageIndirect", 2},
	"ABSOLUTE_INDEXED_INDIRECT": {"AbsoluteIndexedIndirect", 3},
	"ZERO_PAGE_RELATIVE":        {"ZeroPageRelative", 3},
}

var effects = map[string]string{
	"READ":        "Read",
	"WRITE":       "Write",
	"RMW":         "RMW",
	"FLOW":        "Flow",
	"SUB-ROUTINE": "Subroutine",
	"INTERRUPT":   "Interrupt",
}

func parseCSV(tab table) (string, error) {
	df, err := os.Open(tab.csvFile)
	if err != nil {
		return "", fmt.Errorf("error opening instruction definitions (%w)", err)
	}
	defer df.Close()

	csvr := csv.NewReader(df)
	csvr.Comment = rune('#')
	csvr.TrimLeadingSpace = true
	csvr.ReuseRecord = true

	// instruction effect field is optional (defaulting to READ)
	csvr.FieldsPerRecord = -1

	var defined [256]string

	line := 0
	for {
		line++
		rec, err := csvr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", err
		}

		if !(len(rec) == 5 || len(rec) == 6) {
			return "", fmt.Errorf("wrong number of fields in instruction definition (%s) [line %d]", rec, line)
		}

		for i := 0; i < len(rec); i++ {
			rec[i] = strings.TrimSpace(rec[i])
		}

		opcode, err := strconv.ParseUint(strings.TrimPrefix(rec[0], "0x"), 16, 8)
		if err != nil {
			return "", fmt.Errorf("invalid opcode (%s) [line %d]", rec[0], line)
		}

		mnemonic := strings.ToUpper(rec[1])
		if len(mnemonic) != 3 {
			return "", fmt.Errorf("invalid mnemonic for %#02x (%s) [line %d]", opcode, rec[1], line)
		}
		operator := mnemonic[:1] + strings.ToLower(mnemonic[1:])

		cycles, err := strconv.Atoi(rec[2])
		if err != nil {
			return "", fmt.Errorf("invalid cycle count for %#02x (%s) [line %d]", opcode, rec[2], line)
		}

		am, ok := addressingModes[strings.ToUpper(rec[3])]
		if !ok {
			return "", fmt.Errorf("invalid addressing mode for %#02x (%s) [line %d]", opcode, rec[3], line)
		}

		pageSensitive, err := strconv.ParseBool(rec[4])
		if err != nil {
			return "", fmt.Errorf("invalid page sensitivity switch for %#02x (%s) [line %d]", opcode, rec[4], line)
		}

		effect := "Read"
		if len(rec) == 6 {
			effect, ok = effects[rec[5]]
			if !ok {
				return "", fmt.Errorf("unknown category for %#02x (%s) [line %d]", opcode, rec[5], line)
			}
		}

		if defined[opcode] != "" {
			return "", fmt.Errorf("duplicate definition for %#02x [line %d]", opcode, line)
		}

		defined[opcode] = fmt.Sprintf("{OpCode: 0x%02x, Operator: %s, Bytes: %d, Cycles: %d, AddressingMode: %s, PageSensitive: %t, Effect: %s},",
			opcode, operator, am.bytes, cycles, am.name, pageSensitive, effect)
	}

	// every opcode must be defined. the CPU relies on there being no gaps in
	// the table
	var missing []string
	for opcode, d := range defined {
		if d == "" {
			missing = append(missing, fmt.Sprintf("%#02x", opcode))
		}
	}
	if len(missing) > 0 {
		return "", fmt.Errorf("%s: %d missing opcodes: %s", tab.csvFile, len(missing), strings.Join(missing, " "))
	}

	return strings.Join(defined[:], "\n"), nil
}

func generate(tab table) error {
	output, err := parseCSV(tab)
	if err != nil {
		return err
	}

	output = fmt.Sprintf(leadingBoilerPlate, tab.name, tab.part, tab.name) + output + trailingBoilerPlate

	formattedOutput, err := format.Source([]byte(output))
	if err != nil {
		return err
	}

	return os.WriteFile(tab.goFile, formattedOutput, 0644)
}

func main() {
	for _, tab := range tables {
		err := generate(tab)
		if err != nil {
			fmt.Printf("error during instruction table generation: %s\n", err)
			os.Exit(10)
		}
	}
}
