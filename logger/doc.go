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

// Package logger is the central log repository for the emulator. Log entries
// are tagged with the name of the emulated component (or the driver mode)
// making the entry:
//
//	logger.Logf(logger.Allow, "CPU", "illegal opcode (%#02x) at %#04x", opcode, pc)
//
// The first argument is an implementation of the Permission interface. The
// logger.Allow value can be used when a log entry should always be made. A
// Limit allows only the first few entries from a noisy source.
//
// Entries are kept in a fixed size list. The oldest entries are dropped when
// the list becomes full. Repeated entries (same tag and same detail) are
// collapsed into one entry with a repeat count.
//
// Independent instances of the logger can be created with NewLogger(). This is
// mostly useful for testing.
package logger
