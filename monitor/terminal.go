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

//go:build linux || darwin || freebsd || openbsd || netbsd
// +build linux darwin freebsd openbsd netbsd

package monitor

import (
	"os"

	"github.com/pkg/term/termios"
	"golang.org/x/sys/unix"
)

// ASCII end-of-text character. in cbreak mode the terminal still generates a
// signal for ctrl-c but the character is checked for in case ISIG is off
const keyInterrupt = 3

// cbreak puts the terminal into cbreak mode. the returned function restores
// the terminal to its previous state
func cbreak(f *os.File) (func() error, error) {
	var canAttr unix.Termios
	if err := termios.Tcgetattr(f.Fd(), &canAttr); err != nil {
		return nil, err
	}

	cbreakAttr := canAttr
	termios.Cfmakecbreak(&cbreakAttr)

	if err := termios.Tcsetattr(f.Fd(), termios.TCSANOW, &cbreakAttr); err != nil {
		return nil, err
	}

	return func() error {
		return termios.Tcsetattr(f.Fd(), termios.TCSANOW, &canAttr)
	}, nil
}
