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

// Package disassembly coordinates the decoding of 2A03 machine code into a
// human readable form.
//
// The Disassemble() function performs a linear disassembly of a block of
// data, typically the PRG ROM of a cartridge. Every instruction is decoded
// as it is found, with no attempt to follow the flow of the program. Data
// areas will therefore be disassembled as though they were instructions.
//
// The Decode() function decodes the single instruction at an address in a
// memory implementation. TraceLine() uses Decode() to produce a line in the
// same format as the well known nestest.log file:
//
//	C000  4C F5 C5  JMP $C5F5                       A:00 X:00 Y:00 P:24 SP:FD CYC:7
//
// Unofficial opcodes are marked with an asterisk before the mnemonic.
package disassembly
