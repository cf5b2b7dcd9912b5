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

// Package functional_test runs the nestest ROM by Kevin Horton in its
// automated mode. The ROM and the reference log are not distributed with
// this package and must be placed in the testdata directory:
//
//	testdata/nestest.nes
//	testdata/nestest.log
//
// The test is skipped if the ROM is missing. If the log is present then the
// register values and cycle count before every instruction are compared with
// the corresponding line in the log.
//
// The automated mode is entered by starting execution at $C000 rather than at
// the address in the reset vector. Results of the official and unofficial
// instruction tests are written to $02 and $03. Zero in both locations means
// that all tests passed.
package functional_test
