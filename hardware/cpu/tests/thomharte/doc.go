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

// Package thomharte contains 6502 single-step tests as created/maintained by
// Thom Harte.
//
// https://github.com/SingleStepTests/65x02
//
// The tests are large and are not included as part of the repository.
//
// Add the instructions you want to test from the nes6502/v1 directory on
// Github to the nes6502/v1 directory in this package. The NES variant of the
// tests is used because the 2A03 has no decimal mode. The test is skipped if
// the directory does not exist.
//
// Only the state of the CPU and memory after each instruction, and the number
// of cycles taken, are compared. The bus activity of individual cycles is not
// emulated.
package thomharte
