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
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/jetsetilly/gopher2e/curated"
	"github.com/jetsetilly/gopher2e/hardware"
	"github.com/jetsetilly/gopher2e/logger"
)

// MonitorError is the pattern used for errors returned by commands.
const MonitorError = "monitor: %v"

// Monitor is an interactive front-end to a Machine.
type Monitor struct {
	m      *hardware.Machine
	output io.Writer

	// the system ROM used by the RESET command. can be nil
	rom []uint8

	// filenames of the disks in each drive. used by the SAVE command when no
	// filename is given
	disks [2]string

	Keys *KeyQueue

	quit bool
}

// NewMonitor is the preferred method of initialisation for the Monitor type.
func NewMonitor(m *hardware.Machine, rom []uint8, output io.Writer) *Monitor {
	return &Monitor{
		m:      m,
		rom:    rom,
		output: output,
		Keys:   &KeyQueue{},
	}
}

func (mon *Monitor) printf(format string, args ...any) {
	fmt.Fprintf(mon.output, format, args...)
}

// Quit returns true if the QUIT command has been processed.
func (mon *Monitor) Quit() bool {
	return mon.quit
}

// Prompt returns the prompt string for the current state of the machine.
func (mon *Monitor) Prompt() string {
	return fmt.Sprintf("[$%04x] > ", mon.m.CPU.PC.Address())
}

// Process a single line of input. Empty lines are ignored.
func (mon *Monitor) Process(line string) error {
	tokens := strings.Fields(line)
	if len(tokens) == 0 {
		return nil
	}

	name := strings.ToUpper(tokens[0])
	cmd, ok := commands[name]
	if !ok {
		return curated.Errorf(MonitorError, fmt.Sprintf("unrecognised command (%s)", tokens[0]))
	}

	args := tokens[1:]
	if len(args) < cmd.minArgs || (cmd.maxArgs >= 0 && len(args) > cmd.maxArgs) {
		return curated.Errorf(MonitorError, fmt.Sprintf("usage: %s", cmd.usage))
	}

	return cmd.fn(mon, args)
}

func completer() *readline.PrefixCompleter {
	items := make([]readline.PrefixCompleterInterface, 0, len(commands))
	for _, name := range commandNames() {
		items = append(items, readline.PcItem(name))
	}
	return readline.NewPrefixCompleter(items...)
}

// Run the monitor until the QUIT command or end of input. The history file
// can be empty.
func (mon *Monitor) Run(historyFile string) error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          mon.Prompt(),
		HistoryFile:     historyFile,
		AutoComplete:    completer(),
		InterruptPrompt: "^C",
		EOFPrompt:       "quit",
	})
	if err != nil {
		return curated.Errorf(MonitorError, err)
	}
	defer rl.Close()

	mon.output = rl.Stdout()
	mon.printf("type HELP for a list of commands\n")

	for !mon.quit {
		line, err := rl.Readline()
		if err != nil {
			if errors.Is(err, readline.ErrInterrupt) {
				if len(line) == 0 {
					return nil
				}
				continue // for loop
			}
			if errors.Is(err, io.EOF) {
				return nil
			}
			return curated.Errorf(MonitorError, err)
		}

		if err := mon.Process(line); err != nil {
			mon.printf("* %v\n", err)
			logger.Log(logger.Allow, "monitor", err)
		}

		rl.SetPrompt(mon.Prompt())
	}

	return nil
}
