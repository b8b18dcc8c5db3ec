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

package modalflag

import (
	"errors"
	"flag"
	"io"
	"strconv"
	"strings"
)

// ModalFlagError is the pattern used for all errors returned by Parse().
const ModalFlagError = "modalflag: %v"

const modeSeparator = "/"

// Modes handles command line arguments that are divided into modes, each
// mode having its own set of flags. The Output field should be specified
// before calling Parse() or help messages will be lost.
type Modes struct {
	// where to print help messages
	Output io.Writer

	// whether Parse() has been called since the last NewArgs() or NewMode()
	parsed bool

	// a new flagset is created on every call to NewArgs() and NewMode()
	flags *flag.FlagSet

	// the argument list as specified by NewArgs()
	args    []string
	argsIdx int

	// the sub-modes for the next call to Parse(). the first entry is the
	// default
	subModes []string

	// the series of modes found by successive calls to Parse(). never reset
	path []string

	additionalHelp string
}

func (md *Modes) String() string {
	return md.Path()
}

// Mode returns the last mode to be encountered.
func (md *Modes) Mode() string {
	if len(md.path) == 0 {
		return ""
	}
	return md.path[len(md.path)-1]
}

// Path returns all the modes encountered during parsing, separated by a
// forward slash.
func (md *Modes) Path() string {
	return strings.Join(md.path, modeSeparator)
}

// NewArgs sets the arguments to be parsed and starts a new mode.
func (md *Modes) NewArgs(args []string) {
	md.args = args
	md.argsIdx = 0
	md.NewMode()
}

// NewMode indicates that further arguments should be considered part of a new
// mode.
func (md *Modes) NewMode() {
	md.subModes = []string{}
	md.flags = flag.NewFlagSet("", flag.ContinueOnError)
	md.parsed = false
	md.additionalHelp = ""
}

// AdditionalHelp adds text to be displayed after the regular help on
// available flags and sub-modes.
func (md *Modes) AdditionalHelp(help string) {
	md.additionalHelp = help
}

// Parsed returns false if Parse() has not been called since the most recent
// call to NewArgs() or NewMode(). A failed Parse() still counts.
func (md *Modes) Parsed() bool {
	return md.parsed
}

// ParseResult is returned from the Parse() function.
type ParseResult int

// List of valid ParseResult values.
const (
	// Continue with command line processing. If sub-modes were specified then
	// Mode() should be checked.
	ParseContinue ParseResult = iota

	// Help was requested and has been printed to Output.
	ParseHelp

	// An error has occurred and is returned as the second return value.
	ParseError
)

// Parse the current layer of arguments. Idiomatic usage:
//
//	switch r, err := md.Parse(); r {
//	case modalflag.ParseHelp:
//		return nil
//	case modalflag.ParseError:
//		return err
//	}
func (md *Modes) Parse() (ParseResult, error) {
	md.parsed = true

	hw := &helpWriter{}
	md.flags.SetOutput(hw)

	err := md.flags.Parse(md.args[md.argsIdx:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			hw.Help(md.Output, md.Path(), md.subModes, md.additionalHelp)
			return ParseHelp, nil
		}

		// unrecognised flags are allowed if there is a default sub-mode. the
		// flags are left for the sub-mode to deal with
		if len(md.subModes) == 0 {
			return ParseError, errorf(err)
		}
		md.path = append(md.path, md.subModes[0])
		return ParseContinue, nil
	}

	if len(md.subModes) > 0 {
		mode := md.subModes[0]
		arg := strings.ToUpper(md.flags.Arg(0))
		for _, m := range md.subModes {
			if m == arg {
				mode = arg
				md.argsIdx++
				break // for loop
			}
		}
		md.path = append(md.path, mode)
	}

	return ParseContinue, nil
}

// RemainingArgs returns the arguments after a call to Parse() that aren't
// flags or a listed sub-mode.
func (md *Modes) RemainingArgs() []string {
	return md.flags.Args()
}

// GetArg returns the numbered argument that isn't a flag or listed sub-mode.
// Returns the empty string if the argument doesn't exist.
func (md *Modes) GetArg(i int) string {
	return md.flags.Arg(i)
}

// AddSubModes to list of submodes for next parse. The first sub-mode in the
// list is the default sub-mode. Comparisons are case insensitive.
func (md *Modes) AddSubModes(submodes ...string) {
	for _, m := range submodes {
		md.subModes = append(md.subModes, strings.ToUpper(m))
	}
}

// AddDefaultSubMode puts the sub-mode at the head of the list.
func (md *Modes) AddDefaultSubMode(defSubMode string) {
	md.subModes = append([]string{strings.ToUpper(defSubMode)}, md.subModes...)
}

// AddBool flag for next call to Parse().
func (md *Modes) AddBool(name string, value bool, usage string) *bool {
	return md.flags.Bool(name, value, usage)
}

// AddInt flag for next call to Parse().
func (md *Modes) AddInt(name string, value int, usage string) *int {
	return md.flags.Int(name, value, usage)
}

// AddString flag for next call to Parse().
func (md *Modes) AddString(name string, value string, usage string) *string {
	return md.flags.String(name, value, usage)
}

// AddUint64 flag for next call to Parse().
func (md *Modes) AddUint64(name string, value uint64, usage string) *uint64 {
	return md.flags.Uint64(name, value, usage)
}

// AddAddress adds a flag that takes a 16 bit hexadecimal address. The address
// can be written with or without a leading "$" or "0x".
func (md *Modes) AddAddress(name string, value uint16, usage string) *uint16 {
	a := address(value)
	md.flags.Var(&a, name, usage)
	return (*uint16)(&a)
}

// Visit visits the flags that have been set, in lexicographical order.
func (md *Modes) Visit(fn func(flag string)) {
	md.flags.Visit(func(f *flag.Flag) {
		fn(f.Name)
	})
}

// address implements the flag.Value interface.
type address uint16

func (a *address) String() string {
	if a == nil {
		return ""
	}
	return "$" + strings.ToUpper(strconv.FormatUint(uint64(*a), 16))
}

func (a *address) Set(s string) error {
	v, err := ParseAddress(s)
	if err != nil {
		return err
	}
	*a = address(v)
	return nil
}

// ParseAddress parses a 16 bit hexadecimal address with an optional "$" or
// "0x" prefix.
func ParseAddress(s string) (uint16, error) {
	s = strings.TrimPrefix(s, "$")
	s = strings.TrimPrefix(strings.ToLower(s), "0x")
	v, err := strconv.ParseUint(s, 16, 16)
	if err != nil {
		return 0, errorf(errors.New("not a valid address"))
	}
	return uint16(v), nil
}
