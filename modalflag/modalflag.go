// This file is part of nes2a03.
//
// nes2a03 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// nes2a03 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with nes2a03.  If not, see <https://www.gnu.org/licenses/>.

package modalflag

import (
	"flag"
	"io"
	"strings"
	"time"
)

const modeSeparator = "/"

// Modes handles command line arguments that select a mode of operation along
// with the flags for that mode. The Output field should be set before
// calling Parse() otherwise help messages will not be seen.
type Modes struct {
	// where to print help messages
	Output io.Writer

	// the flags for the current mode. a new flagset is created on every call
	// to NewArgs() and NewMode()
	flags *flag.FlagSet

	// the argument list as given to NewArgs() and the index of the next
	// argument to be parsed
	args    []string
	argsIdx int

	// the sub-modes specified with AddSubModes() since the most recent call
	// to NewMode(). the first entry is the default
	subModes []string

	// the series of sub-modes that have been selected by each call to
	// Parse(). never reset
	path []string

	// extended help text for the current mode
	additionalHelp string
}

func (md *Modes) String() string {
	return md.Path()
}

// Mode returns the most recently selected mode.
func (md *Modes) Mode() string {
	if len(md.path) == 0 {
		return ""
	}
	return md.path[len(md.path)-1]
}

// Path returns all the modes selected so far, separated by a slash.
func (md *Modes) Path() string {
	return strings.Join(md.path, modeSeparator)
}

// NewArgs sets the arguments to be parsed. The arguments will usually come
// from os.Args.
func (md *Modes) NewArgs(args []string) {
	md.args = args
	md.argsIdx = 0
	md.NewMode()
}

// NewMode indicates that further arguments should be considered part of a new
// mode. Flags and sub-modes added before this call are forgotten.
func (md *Modes) NewMode() {
	md.subModes = []string{}
	md.flags = flag.NewFlagSet("", flag.ContinueOnError)
	md.additionalHelp = ""
}

// AdditionalHelp adds text that is printed after the list of flags and
// sub-modes.
func (md *Modes) AdditionalHelp(help string) {
	md.additionalHelp = help
}

// ParseResult is returned from the Parse() function.
type ParseResult int

// List of valid ParseResult values.
const (
	// command line processing should continue. the Mode() function should be
	// consulted if sub-modes were added since the last call to NewMode()
	ParseContinue ParseResult = iota

	// help was requested and has been printed
	ParseHelp

	// an error has occurred and is returned as the second return value
	ParseError
)

// Parse the arguments for the current mode. Help messages are printed
// automatically. The ParseHelp result should be treated like an error
// that has already been reported to the user.
func (md *Modes) Parse() (ParseResult, error) {
	hw := newHelpWriter(md)
	md.flags.SetOutput(hw)

	err := md.flags.Parse(md.args[md.argsIdx:])
	if err != nil {
		if err == flag.ErrHelp {
			hw.help(md.Output)
			return ParseHelp, nil
		}

		// unrecognised flags are left for the default sub-mode to parse
		if len(md.subModes) > 0 {
			md.path = append(md.path, md.subModes[0])
			return ParseContinue, nil
		}

		return ParseError, err
	}

	if len(md.subModes) == 0 {
		return ParseContinue, nil
	}

	// flags have been consumed. move the index past them so that the next
	// call to Parse() begins at the mode selector
	md.argsIdx = len(md.args) - md.flags.NArg()

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

	return ParseContinue, nil
}

// RemainingArgs returns the arguments that are not flags or the selected
// sub-mode.
func (md *Modes) RemainingArgs() []string {
	args := md.flags.Args()
	if len(args) > 0 && len(md.subModes) > 0 && strings.ToUpper(args[0]) == md.Mode() {
		return args[1:]
	}
	return args
}

// GetArg returns the numbered argument from the list returned by
// RemainingArgs(). Returns the empty string if there is no such argument.
func (md *Modes) GetArg(i int) string {
	args := md.RemainingArgs()
	if i < 0 || i >= len(args) {
		return ""
	}
	return args[i]
}

// AddSubModes to the list of sub-modes for the next call to Parse(). The
// first sub-mode in the list is the default.
func (md *Modes) AddSubModes(submodes ...string) {
	for _, m := range submodes {
		md.subModes = append(md.subModes, strings.ToUpper(m))
	}
}

// AddBool flag for next call to Parse().
func (md *Modes) AddBool(name string, value bool, usage string) *bool {
	return md.flags.Bool(name, value, usage)
}

// AddDuration flag for next call to Parse().
func (md *Modes) AddDuration(name string, value time.Duration, usage string) *time.Duration {
	return md.flags.Duration(name, value, usage)
}

// AddInt flag for next call to Parse().
func (md *Modes) AddInt(name string, value int, usage string) *int {
	return md.flags.Int(name, value, usage)
}

// AddUint64 flag for next call to Parse().
func (md *Modes) AddUint64(name string, value uint64, usage string) *uint64 {
	return md.flags.Uint64(name, value, usage)
}

// AddString flag for next call to Parse().
func (md *Modes) AddString(name string, value string, usage string) *string {
	return md.flags.String(name, value, usage)
}

// AddAddress flag for next call to Parse().
func (md *Modes) AddAddress(name string, value uint16, usage string) *uint16 {
	a := &address{value: value}
	md.flags.Var(a, name, usage)
	return &a.value
}

// IsSet returns true if the named flag was given on the command line.
func (md *Modes) IsSet(name string) bool {
	var set bool
	md.flags.Visit(func(f *flag.Flag) {
		if f.Name == name {
			set = true
		}
	})
	return set
}
