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
	"fmt"
	"io"
	"strings"
)

// the note added to the flag descriptions when one or more flags take an
// address value
const addressNote = "  addresses are decimal, or hexadecimal with a $ or 0x prefix\n"

// helpWriter collects the usage text printed by the flag package. The help()
// function rewrites it with the mode path, the list of sub-modes and any
// additional help text.
type helpWriter struct {
	usage strings.Builder

	// the mode path. empty for the top level
	path string

	subModes   []string
	additional string

	// one or more flags take an address value
	addresses bool
}

func newHelpWriter(md *Modes) *helpWriter {
	hw := &helpWriter{
		path:       md.Path(),
		subModes:   md.subModes,
		additional: md.additionalHelp,
	}

	md.flags.VisitAll(func(f *flag.Flag) {
		if _, ok := f.Value.(*address); ok {
			hw.addresses = true
		}
	})

	return hw
}

// Write implements the io.Writer interface. The flag package writes its usage
// text here.
func (hw *helpWriter) Write(p []byte) (int, error) {
	return hw.usage.Write(p)
}

func (hw *helpWriter) help(output io.Writer) {
	banner, flags, _ := strings.Cut(hw.usage.String(), "\n")

	if flags == "" && len(hw.subModes) == 0 {
		s := "No help available"
		if hw.path != "" {
			s = fmt.Sprintf("%s for %s", s, hw.path)
		}
		io.WriteString(output, s+"\n")
		return
	}

	s := &strings.Builder{}

	s.WriteString(banner)
	if hw.path != "" {
		fmt.Fprintf(s, " for %s mode", hw.path)
	}
	s.WriteString("\n")

	s.WriteString(flags)
	if hw.addresses {
		s.WriteString(addressNote)
	}

	if len(hw.subModes) > 0 {
		if flags != "" {
			s.WriteString("\n")
		}
		fmt.Fprintf(s, "  available sub-modes: %s\n", strings.Join(hw.subModes, ", "))
		fmt.Fprintf(s, "    default: %s\n", hw.subModes[0])
	}

	if hw.additional != "" {
		s.WriteString("\n")
		s.WriteString(hw.additional)
		s.WriteString("\n")
	}

	io.WriteString(output, s.String())
}
