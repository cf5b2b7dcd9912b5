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

import (
	"bytes"
	"crypto/sha1"
	"fmt"
	"os"

	"github.com/jetsetilly/nes2a03/curated"
	"github.com/jetsetilly/nes2a03/logger"
)

// Sentinal error patterns.
const (
	NotINES           = "cartridge: not an iNES image"
	UnsupportedFormat = "cartridge: unsupported format: %s"
	Truncated         = "cartridge: image is truncated: %s"
	LoadError         = "cartridge: %v"
)

// Sizes of the data units in an iNES image.
const (
	headerSize  = 16
	trainerSize = 512
	PRGBankSize = 0x4000
	CHRBankSize = 0x2000
)

var magic = []byte{'N', 'E', 'S', 0x1a}

// Mirroring describes how the nametables of the PPU are arranged. It is
// recorded for completeness; nothing in this emulation makes use of it.
type Mirroring int

// List of valid Mirroring values.
const (
	Horizontal Mirroring = iota
	Vertical
	FourScreen
)

func (m Mirroring) String() string {
	switch m {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	case FourScreen:
		return "four-screen"
	}
	return "unknown"
}

// Cartridge is the data from a parsed iNES image.
type Cartridge struct {
	Filename string
	Hash     string

	PRG     []uint8
	CHR     []uint8
	Trainer []uint8

	// the iNES mapper number
	MapperID int

	Mirroring Mirroring
	Battery   bool

	// CHR is RAM rather than ROM. this is the case when the image has no CHR
	// banks
	ChrRAM bool
}

// NumPRG returns the number of 16K PRG banks.
func (cart *Cartridge) NumPRG() int {
	return len(cart.PRG) / PRGBankSize
}

// NumCHR returns the number of 8K CHR banks. Zero if the cartridge uses CHR
// RAM.
func (cart *Cartridge) NumCHR() int {
	if cart.ChrRAM {
		return 0
	}
	return len(cart.CHR) / CHRBankSize
}

func (cart *Cartridge) String() string {
	return cart.Summary()
}

// Summary returns a single line description of the cartridge.
func (cart *Cartridge) Summary() string {
	s := fmt.Sprintf("mapper %d; PRG %dx16K; ", cart.MapperID, cart.NumPRG())
	if cart.ChrRAM {
		s = fmt.Sprintf("%sCHR RAM 8K; ", s)
	} else {
		s = fmt.Sprintf("%sCHR %dx8K; ", s, cart.NumCHR())
	}
	s = fmt.Sprintf("%s%s mirroring", s, cart.Mirroring)
	if cart.Battery {
		s = fmt.Sprintf("%s; battery", s)
	}
	if len(cart.Trainer) > 0 {
		s = fmt.Sprintf("%s; trainer", s)
	}
	return s
}

// ParseINES creates a new Cartridge from the data of an iNES image.
func ParseINES(data []uint8) (*Cartridge, error) {
	if len(data) < headerSize || !bytes.Equal(data[:len(magic)], magic) {
		return nil, curated.Errorf(NotINES)
	}

	numPRG := int(data[4])
	numCHR := int(data[5])
	flags6 := data[6]
	flags7 := data[7]

	if flags7&0x0c == 0x08 {
		return nil, curated.Errorf(UnsupportedFormat, "NES 2.0")
	}

	if numPRG == 0 {
		return nil, curated.Errorf(UnsupportedFormat, "no PRG data")
	}

	cart := &Cartridge{
		Hash:     fmt.Sprintf("%x", sha1.Sum(data)),
		MapperID: int(flags7&0xf0) | int(flags6>>4),
		Battery:  flags6&0x02 == 0x02,
	}

	switch {
	case flags6&0x08 == 0x08:
		cart.Mirroring = FourScreen
	case flags6&0x01 == 0x01:
		cart.Mirroring = Vertical
	default:
		cart.Mirroring = Horizontal
	}

	idx := headerSize

	if flags6&0x04 == 0x04 {
		if len(data) < idx+trainerSize {
			return nil, curated.Errorf(Truncated, "trainer")
		}
		cart.Trainer = make([]uint8, trainerSize)
		copy(cart.Trainer, data[idx:])
		idx += trainerSize
	}

	sz := numPRG * PRGBankSize
	if len(data) < idx+sz {
		return nil, curated.Errorf(Truncated, "PRG")
	}
	cart.PRG = make([]uint8, sz)
	copy(cart.PRG, data[idx:])
	idx += sz

	if numCHR == 0 {
		cart.ChrRAM = true
		cart.CHR = make([]uint8, CHRBankSize)
	} else {
		sz = numCHR * CHRBankSize
		if len(data) < idx+sz {
			return nil, curated.Errorf(Truncated, "CHR")
		}
		cart.CHR = make([]uint8, sz)
		copy(cart.CHR, data[idx:])
	}

	logger.Log(logger.Allow, "iNES", cart)

	return cart, nil
}

// Load reads the named file and parses it as an iNES image.
func Load(filename string) (*Cartridge, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, curated.Errorf(LoadError, err)
	}

	cart, err := ParseINES(data)
	if err != nil {
		return nil, err
	}
	cart.Filename = filename

	return cart, nil
}
