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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface.
//
// Curated errors are created with the Errorf() function. It takes a
// formatting pattern and placeholder values, like the function of the same
// name in the fmt package, but the pattern is retained so that the error can
// be identified later with the Is() and Has() functions:
//
//	e := curated.Errorf("cpu: illegal opcode (%#02x)", opcode)
//
//	if curated.Is(e, "cpu: illegal opcode (%#02x)") {
//		fmt.Println("true")
//	}
//
// Packages that raise curated errors export the pattern as a constant so that
// callers do not need to repeat the string. For example, cpu.IllegalOpcode.
//
// The Has() function is similar to Is() but checks if a pattern occurs
// anywhere in the error chain. A curated error wrapped inside another curated
// error (with the %v verb) is still found:
//
//	f := curated.Errorf("nes: %v", e)
//
//	curated.Has(f, cpu.IllegalOpcode) // true
//	curated.Is(f, cpu.IllegalOpcode)  // false
//
// The Error() implementation normalises the message so that duplicate adjacent
// parts of the chain are removed. This means that a function can wrap an error
// with its own prefix without worrying whether the prefix is already present:
//
//	"memory: memory: unmapped address ($2002)"
//
// is reported as
//
//	"memory: unmapped address ($2002)"
package curated
