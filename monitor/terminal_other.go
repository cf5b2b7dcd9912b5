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

//go:build !(linux || darwin || freebsd || openbsd || netbsd)
// +build !linux,!darwin,!freebsd,!openbsd,!netbsd

package monitor

import (
	"fmt"
	"os"
)

const keyInterrupt = 3

// cbreak mode is not supported on this platform. the monitor falls back to
// reading commands by line
func cbreak(_ *os.File) (func() error, error) {
	return nil, fmt.Errorf("cbreak mode not supported")
}
