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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It handles program modes, and sub-modes, and allows a different
// set of flags for each mode.
//
// Arguments are given to the Modes type with NewArgs() and then parsed with
// Parse(). Flags for the mode must be added before the call to Parse().
//
//	md = Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("RUN", "TRACE", "DISASM")
//	_, _ = md.Parse()
//
// A mode is a special command line argument that puts the program into a
// different mode of operation. After the call to Parse() the Mode() function
// returns the mode that was selected. If none of the sub-modes was specified
// on the command line then the first sub-mode is selected. All sub-mode
// comparisons are case insensitive.
//
//	switch md.Mode() {
//	case "RUN":
//		runMode(md)
//	case "TRACE":
//		traceMode(md)
//	}
//
// Each mode can then add its own flags and parse the remaining arguments by
// calling NewMode() followed by Parse():
//
//	func traceMode(md *modalflag.Modes) {
//		md.NewMode()
//		count := md.AddInt("count", 100, "number of instructions to trace")
//		pc := md.AddAddress("pc", 0xc000, "start address")
//
//		switch p, err := md.Parse(); p {
//		case modalflag.ParseError:
//			fmt.Println(err)
//			return
//		case modalflag.ParseHelp:
//			return
//		}
//
//		trace(md.GetArg(0), *count, *pc)
//	}
//
// Help is printed automatically by Parse() when the -help flag is given. The
// ParseHelp result tells the caller that there is nothing more to do.
//
// Addresses given to flags added with AddAddress() can be written in decimal
// or hexadecimal. Hexadecimal values are prefixed with either $ or 0x.
package modalflag
