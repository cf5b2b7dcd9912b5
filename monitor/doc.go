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

// Package monitor implements a simple interactive monitor for the NES
// emulation. Each command is a single key:
//
//	s or space	step one instruction
//	n		step 100 instructions
//	r		print registers
//	z		print zero page
//	k		print stack page
//	l		print the tail of the log
//	h or ?		print help
//	q		quit
//
// Instructions are printed in the trace format of the disassembly package
// before they are executed.
//
// When the input is a terminal it is put into cbreak mode so that commands
// take effect without the need to press return. The terminal is restored
// when the monitor ends. When the input is not a terminal, commands are read
// one per line and an empty line is the same as the step command.
package monitor
