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

package memorymap

import (
	"fmt"
	"strings"
)

// Summary returns a single multiline string detailing all the areas in memory.
// Useful for reference.
func Summary() string {
	s := strings.Builder{}

	// look up area of first address in memory
	_, current := MapAddress(0)
	start := 0

	// an int is used for the loop counter because the address space ends
	// exactly at the limit of uint16
	for a := 1; a <= int(MemtopCart); a++ {
		_, area := MapAddress(uint16(a))

		// if the area has changed print out the summary line and update
		// current area and start address of the area
		if area != current {
			s.WriteString(fmt.Sprintf("%04x -> %04x\t%s\n", start, a-1, current))
			current = area
			start = a
		}
	}

	// write last line of summary
	s.WriteString(fmt.Sprintf("%04x -> %04x\t%s\n", start, MemtopCart, current))

	return s.String()
}
