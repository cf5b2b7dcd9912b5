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
	"fmt"
	"strconv"
	"strings"
)

// address implements the flag.Value interface for 16 bit addresses.
type address struct {
	value uint16
}

func (a *address) String() string {
	if a == nil {
		return ""
	}
	return fmt.Sprintf("$%04x", a.value)
}

// ParseAddress converts the string to a 16 bit address. Hexadecimal values
// are prefixed with $ or 0x.
func ParseAddress(s string) (uint16, error) {
	s = strings.TrimSpace(s)

	base := 10
	switch {
	case strings.HasPrefix(s, "$"):
		s = s[1:]
		base = 16
	case strings.HasPrefix(s, "0x"), strings.HasPrefix(s, "0X"):
		s = s[2:]
		base = 16
	}

	v, err := strconv.ParseUint(s, base, 16)
	if err != nil {
		return 0, fmt.Errorf("not a valid address (%s)", s)
	}

	return uint16(v), nil
}

func (a *address) Set(s string) error {
	v, err := ParseAddress(s)
	if err != nil {
		return err
	}
	a.value = v
	return nil
}
