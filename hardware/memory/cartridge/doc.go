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

// Package cartridge fully implements loading of iNES cartridge images and the
// mappers that translate CPU addresses in the cartridge area to offsets in
// the PRG and CHR data.
//
// The Cartridge type holds the data as parsed from the image. A Mapper is
// created from a Cartridge with NewMapper() and it is the Mapper that is
// attached to memory. Supported mappers are NROM (iNES mapper 0) and MMC1
// (iNES mapper 1).
//
// When no cartridge is attached the ejected mapper should be used. It
// returns zero for every read and ignores all writes.
package cartridge
