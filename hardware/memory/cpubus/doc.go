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

// Package cpubus defines the interface between the CPU and memory. The CPU
// knows nothing about how the address space is populated. It only requires
// byte sized reads and writes over the 16 bit address space, with a faster
// path for zero page access.
//
// The package also names the interrupt vectors and the errors that memory
// implementations should return.
package cpubus
