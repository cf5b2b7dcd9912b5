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

package registers_test

import (
	"testing"

	"github.com/jetsetilly/nes2a03/curated"
	"github.com/jetsetilly/nes2a03/hardware/cpu/registers"
	"github.com/jetsetilly/nes2a03/test"
)

func TestStatusRegisterInitialisation(t *testing.T) {
	sr := registers.NewStatusRegister()
	test.ExpectEquality(t, sr.Value(), uint8(0x20))
	test.ExpectEquality(t, sr.String(), "nv-bdizc")
}

func TestStatusRegisterBits(t *testing.T) {
	sr := registers.NewStatusRegister()

	for bit := registers.Carry; bit <= registers.Negative; bit++ {
		if bit == registers.Unused {
			continue
		}

		test.DemandSuccess(t, sr.Set(bit, true))
		v, err := sr.Get(bit)
		test.DemandSuccess(t, err)
		test.ExpectSuccess(t, v, bit)
		test.ExpectEquality(t, sr.Value(), uint8(0x20|1<<bit), bit)

		// setting twice has no further effect
		test.DemandSuccess(t, sr.Set(bit, true))
		test.ExpectEquality(t, sr.Value(), uint8(0x20|1<<bit), bit)

		test.DemandSuccess(t, sr.Set(bit, false))
		v, err = sr.Get(bit)
		test.DemandSuccess(t, err)
		test.ExpectFailure(t, v, bit)
		test.ExpectEquality(t, sr.Value(), uint8(0x20), bit)

		// clearing twice has no further effect
		test.DemandSuccess(t, sr.Set(bit, false))
		test.ExpectEquality(t, sr.Value(), uint8(0x20), bit)
	}
}

func TestStatusRegisterUnusedBit(t *testing.T) {
	sr := registers.NewStatusRegister()

	// the unused bit can never be cleared
	test.DemandSuccess(t, sr.Set(registers.Unused, false))
	v, err := sr.Get(registers.Unused)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, v)

	sr.Load(0x00)
	test.ExpectEquality(t, sr.Value(), uint8(0x20))
}

func TestStatusRegisterInvalidBit(t *testing.T) {
	sr := registers.NewStatusRegister()

	err := sr.Set(8, true)
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, registers.InvalidStatusBit))

	err = sr.Set(-1, true)
	test.ExpectSuccess(t, curated.Is(err, registers.InvalidStatusBit))

	_, err = sr.Get(8)
	test.ExpectSuccess(t, curated.Is(err, registers.InvalidStatusBit))

	// nothing was changed by the failed calls
	test.ExpectEquality(t, sr.Value(), uint8(0x20))
}

func TestSetZeroNegative(t *testing.T) {
	sr := registers.NewStatusRegister()

	// try every value with every combination of the other flags. only Z and
	// N should ever change
	for _, others := range []uint8{0x00, 0x5d} {
		for v := 0; v <= 0xff; v++ {
			sr.Load(others)
			sr.SetZeroNegative(uint8(v))

			test.ExpectEquality(t, sr.Zero(), v == 0, v)
			test.ExpectEquality(t, sr.Negative(), v&0x80 == 0x80, v)
			test.ExpectEquality(t, sr.Value()&^0x82, (others|0x20)&^0x82, v)
		}
	}
}

func TestStatusRegisterString(t *testing.T) {
	sr := registers.NewStatusRegister()
	sr.SetNegative(true)
	sr.SetZero(true)
	sr.SetCarry(true)
	test.ExpectEquality(t, sr.String(), "Nv-bdiZC")

	sr.Load(0xff)
	test.ExpectEquality(t, sr.String(), "NV-BDIZC")
	test.ExpectEquality(t, sr.Value(), uint8(0xff))
}
