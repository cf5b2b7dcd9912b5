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

package cpu

// Sentinal error patterns.
const (
	IllegalOpcode     = "cpu: illegal opcode (%#02x) at %#04x"
	UnsupportedOpcode = "cpu: unsupported opcode (%#02x %s) at %#04x"
	NoAddress         = "cpu: %s addressing mode has no address"
)
