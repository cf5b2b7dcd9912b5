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

package test_test

import (
	"errors"
	"testing"

	"github.com/jetsetilly/nes2a03/test"
)

func TestExpect(t *testing.T) {
	test.ExpectSuccess(t, true)
	test.ExpectFailure(t, false)
	test.ExpectSuccess(t, nil)

	var err error
	test.ExpectSuccess(t, err)
	test.ExpectFailure(t, errors.New("test"))

	test.ExpectEquality(t, 10, 10)
	test.ExpectInequality(t, "a", "b")
}

func TestEquate(t *testing.T) {
	test.Equate(t, uint16(0x4020), 0x4020)
	test.Equate(t, uint8(0xff), 255)
	test.Equate(t, uint64(7), 7)
	test.Equate(t, "foo", "foo")
	test.Equate(t, true, true)
}
