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

// Package hardware is the base package for the NES emulation. It and its
// sub-packages contain everything required for a headless emulation of the
// 2A03 CPU and the memory it sees.
//
// The NES type is the root of the emulation and contains external references
// to all the sub-components.
//
//	nes, err := hardware.NewNES(cart)
//	if err != nil {
//		return err
//	}
//
//	err = nes.Run(nil)
//
// The Run() function runs the emulation until the continueCheck() function
// returns the Ending state or an error occurs. The RunForCycles() function
// runs for at least the specified number of CPU cycles.
//
// The Step() function executes a single CPU instruction.
package hardware
