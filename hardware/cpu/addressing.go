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

package cpu

import (
	"github.com/jetsetilly/nes2a03/curated"
)

// Mode describes where the data for an instruction comes from and where the
// result of an instruction should go.
//
// Mode values are created during instruction decode from the operand bytes
// and are discarded once the instruction has completed.
type Mode interface {
	// the data for the instruction
	Load(mc *CPU) (uint8, error)

	// store the result of the instruction
	Save(mc *CPU, v uint8) error

	// the effective address. Accumulator and Immediate modes have no address
	// and will return an error with the NoAddress pattern
	EffectiveAddress(mc *CPU) (uint16, error)
}

// implemented by indexed modes that can cost an additional cycle when the
// effective address is on a different page to the base address
type pageCrosser interface {
	pageCrossed(mc *CPU) bool
}

func pageCrossed(a, b uint16) bool {
	return a&0xff00 != b&0xff00
}

// Accumulator mode uses the A register as the source and destination of the
// instruction.
type Accumulator struct{}

func (m Accumulator) Load(mc *CPU) (uint8, error) {
	return mc.A.Value(), nil
}

func (m Accumulator) Save(mc *CPU, v uint8) error {
	mc.A.Load(v)
	return nil
}

func (m Accumulator) EffectiveAddress(mc *CPU) (uint16, error) {
	return 0, curated.Errorf(NoAddress, "accumulator")
}

// Immediate mode data is the operand of the instruction. Branch instructions
// also use the Immediate type to carry their offset.
type Immediate struct {
	Value uint8
}

func (m Immediate) Load(mc *CPU) (uint8, error) {
	return m.Value, nil
}

func (m Immediate) Save(mc *CPU, v uint8) error {
	return curated.Errorf(NoAddress, "immediate")
}

func (m Immediate) EffectiveAddress(mc *CPU) (uint16, error) {
	return 0, curated.Errorf(NoAddress, "immediate")
}

// ZeroPage mode addresses the first 256 bytes of memory.
type ZeroPage struct {
	Address uint8
}

func (m ZeroPage) Load(mc *CPU) (uint8, error) {
	return mc.mem.ReadZeroPage(m.Address), nil
}

func (m ZeroPage) Save(mc *CPU, v uint8) error {
	mc.mem.WriteZeroPage(m.Address, v)
	return nil
}

func (m ZeroPage) EffectiveAddress(mc *CPU) (uint16, error) {
	return uint16(m.Address), nil
}

// ZeroPageX mode adds the X register to the zero page address. The effective
// address never leaves page zero.
type ZeroPageX struct {
	Address uint8
}

func (m ZeroPageX) effective(mc *CPU) uint8 {
	return m.Address + mc.X.Value()
}

func (m ZeroPageX) Load(mc *CPU) (uint8, error) {
	return mc.mem.ReadZeroPage(m.effective(mc)), nil
}

func (m ZeroPageX) Save(mc *CPU, v uint8) error {
	mc.mem.WriteZeroPage(m.effective(mc), v)
	return nil
}

func (m ZeroPageX) EffectiveAddress(mc *CPU) (uint16, error) {
	return uint16(m.effective(mc)), nil
}

// ZeroPageY mode adds the Y register to the zero page address. The effective
// address never leaves page zero.
type ZeroPageY struct {
	Address uint8
}

func (m ZeroPageY) effective(mc *CPU) uint8 {
	return m.Address + mc.Y.Value()
}

func (m ZeroPageY) Load(mc *CPU) (uint8, error) {
	return mc.mem.ReadZeroPage(m.effective(mc)), nil
}

func (m ZeroPageY) Save(mc *CPU, v uint8) error {
	mc.mem.WriteZeroPage(m.effective(mc), v)
	return nil
}

func (m ZeroPageY) EffectiveAddress(mc *CPU) (uint16, error) {
	return uint16(m.effective(mc)), nil
}

// Absolute mode addresses anywhere in memory.
type Absolute struct {
	Address uint16
}

func (m Absolute) Load(mc *CPU) (uint8, error) {
	return mc.mem.Read(m.Address)
}

func (m Absolute) Save(mc *CPU, v uint8) error {
	return mc.mem.Write(m.Address, v)
}

func (m Absolute) EffectiveAddress(mc *CPU) (uint16, error) {
	return m.Address, nil
}

// AbsoluteX mode adds the X register to the address.
type AbsoluteX struct {
	Address uint16
}

func (m AbsoluteX) effective(mc *CPU) uint16 {
	return m.Address + uint16(mc.X.Value())
}

func (m AbsoluteX) Load(mc *CPU) (uint8, error) {
	return mc.mem.Read(m.effective(mc))
}

func (m AbsoluteX) Save(mc *CPU, v uint8) error {
	return mc.mem.Write(m.effective(mc), v)
}

func (m AbsoluteX) EffectiveAddress(mc *CPU) (uint16, error) {
	return m.effective(mc), nil
}

func (m AbsoluteX) pageCrossed(mc *CPU) bool {
	return pageCrossed(m.Address, m.effective(mc))
}

// AbsoluteY mode adds the Y register to the address.
type AbsoluteY struct {
	Address uint16
}

func (m AbsoluteY) effective(mc *CPU) uint16 {
	return m.Address + uint16(mc.Y.Value())
}

func (m AbsoluteY) Load(mc *CPU) (uint8, error) {
	return mc.mem.Read(m.effective(mc))
}

func (m AbsoluteY) Save(mc *CPU, v uint8) error {
	return mc.mem.Write(m.effective(mc), v)
}

func (m AbsoluteY) EffectiveAddress(mc *CPU) (uint16, error) {
	return m.effective(mc), nil
}

func (m AbsoluteY) pageCrossed(mc *CPU) bool {
	return pageCrossed(m.Address, m.effective(mc))
}

// IndexedIndirect mode, written as (zp,X). The X register is added to the
// zero page address and the effective address is read from the two bytes at
// that location. The pointer wraps within page zero.
type IndexedIndirect struct {
	Address uint8
}

func (m IndexedIndirect) effective(mc *CPU) uint16 {
	ptr := m.Address + mc.X.Value()
	lo := mc.mem.ReadZeroPage(ptr)
	hi := mc.mem.ReadZeroPage(ptr + 1)
	return uint16(hi)<<8 | uint16(lo)
}

func (m IndexedIndirect) Load(mc *CPU) (uint8, error) {
	return mc.mem.Read(m.effective(mc))
}

func (m IndexedIndirect) Save(mc *CPU, v uint8) error {
	return mc.mem.Write(m.effective(mc), v)
}

func (m IndexedIndirect) EffectiveAddress(mc *CPU) (uint16, error) {
	return m.effective(mc), nil
}

// IndirectIndexed mode, written as (zp),Y. The base address is read from the
// two bytes at the zero page address and the Y register is added to it. The
// pointer wraps within page zero.
type IndirectIndexed struct {
	Address uint8
}

func (m IndirectIndexed) base(mc *CPU) uint16 {
	lo := mc.mem.ReadZeroPage(m.Address)
	hi := mc.mem.ReadZeroPage(m.Address + 1)
	return uint16(hi)<<8 | uint16(lo)
}

func (m IndirectIndexed) effective(mc *CPU) uint16 {
	return m.base(mc) + uint16(mc.Y.Value())
}

func (m IndirectIndexed) Load(mc *CPU) (uint8, error) {
	return mc.mem.Read(m.effective(mc))
}

func (m IndirectIndexed) Save(mc *CPU, v uint8) error {
	return mc.mem.Write(m.effective(mc), v)
}

func (m IndirectIndexed) EffectiveAddress(mc *CPU) (uint16, error) {
	return m.effective(mc), nil
}

func (m IndirectIndexed) pageCrossed(mc *CPU) bool {
	b := m.base(mc)
	return pageCrossed(b, b+uint16(mc.Y.Value()))
}
