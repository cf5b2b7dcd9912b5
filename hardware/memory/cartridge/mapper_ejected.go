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

package cartridge

// ejected implements the Mapper interface. It is used when no cartridge is
// attached.
type ejected struct {
}

// NewEjected returns a Mapper that represents the absence of a cartridge.
// All reads return zero and all writes are ignored.
func NewEjected() Mapper {
	return &ejected{}
}

// ID implements the Mapper interface.
func (m *ejected) ID() string {
	return "-"
}

// Get implements the Mapper interface.
func (m *ejected) Get(_ uint16) (uint8, error) {
	// return undriven pins
	return 0, nil
}

// Set implements the Mapper interface.
func (m *ejected) Set(_ uint16, _ uint8) error {
	return nil
}

// GetChr implements the Mapper interface.
func (m *ejected) GetChr(_ uint16) (uint8, error) {
	return 0, nil
}

// SetChr implements the Mapper interface.
func (m *ejected) SetChr(_ uint16, _ uint8) error {
	return nil
}
