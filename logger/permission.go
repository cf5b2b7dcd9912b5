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

package logger

import "sync/atomic"

// Permission implementations decide whether a component may add an entry to
// the log at the moment of the request.
type Permission interface {
	AllowLogging() bool
}

type allow struct{}

func (allow) AllowLogging() bool {
	return true
}

// Allow is used for entries that are always made. Log() and Logf() do not
// call AllowLogging() for this value.
var Allow Permission = allow{}

// Limit permits a fixed number of entries. Hardware that can produce an entry
// on every instruction, a program writing to ROM in a loop for example, logs
// through a Limit so that the central log is not filled by the one message.
//
// Safe for concurrent use.
type Limit struct {
	remaining int32
}

// NewLimit returns a Limit that allows n entries.
func NewLimit(n int) *Limit {
	return &Limit{remaining: int32(n)}
}

// AllowLogging implements the Permission interface. Each call that returns
// true uses up one of the remaining entries.
func (l *Limit) AllowLogging() bool {
	for {
		r := atomic.LoadInt32(&l.remaining)
		if r <= 0 {
			return false
		}
		if atomic.CompareAndSwapInt32(&l.remaining, r, r-1) {
			return true
		}
	}
}

// Remaining returns the number of entries still allowed.
func (l *Limit) Remaining() int {
	return int(atomic.LoadInt32(&l.remaining))
}
