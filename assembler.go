package astamboly

import (
	"fmt"
)

// An assembler encodes a sequence of instructions into a byte slice. The first error stops the
// assembler; later calls return that error until Reset is called.
//
// When re-using an assembler after encoding a set of instructions, the Reset method must be called beforehand.
type Assembler struct {
	b   buffer
	enc *Encoder
	err error
}

// Create a new Assembler for instruction encoding. Output will be encoded to buf. If the encoded output
// exceeds the length of buf, a new slice will be allocated.
//
// Instructions are matched against the standard table.
func NewAssembler(buf []byte) *Assembler {
	return NewAssemblerWithTable(buf, nil)
}

// Create a new Assembler which encodes instructions through table. A nil table selects the standard table.
func NewAssemblerWithTable(buf []byte, table Table) *Assembler {
	return &Assembler{b: buffer{b: buf, i: 0, sz: len(buf)}, enc: NewEncoder(table)}
}

// Reset an assembler before encoding a new set of instructions. The error will be cleared if one exists,
// and the PC will be reset to 0.
//
// If buf is not nil, the assembler's buffer will be replaced with buf; otherwise, the assembler's
// buffer will be reset and possibly resized.
func (a *Assembler) Reset(buf []byte) {
	if buf != nil {
		a.b = buffer{b: buf, i: 0, sz: len(buf)}
	} else {
		a.b.Reset()
	}
	a.err = nil
}

// Get the first error which occured while encoding instructions, since the assembler
// was last reset (or initialized, if the assembler has not been reset).
func (a *Assembler) Err() error { return a.err }

// Get the current encoded instructions. This method may be called multiple times and does not affect the
// underlying code buffer.
func (a *Assembler) Code() []byte { return a.b.Get() }

// Get the current program counter (i.e. number of bytes written to the encoding buffer).
func (a *Assembler) PC() uint32 { return uint32(a.b.i) }

// Align the program counter to a power-of-2 offset. Intermediate space will be filled with NOPs.
func (a *Assembler) AlignPC(pow2 uint8) {
	if pad := (pow2 - uint8(a.PC())&(pow2-1)) & (pow2 - 1); pad > 0 {
		a.b.Nop(pad)
	}
}

// Encode inst with args to the encoding buffer. If no matching instruction-encoding is found,
// an error wrapping ErrNoMatch will be returned.
func (a *Assembler) Inst(inst Inst, args ...Arg) error {
	if a.err != nil {
		return a.err
	}
	var in Instruction
	if in, a.err = NewInstruction(inst, args...); a.err != nil {
		return a.err
	}
	return a.Emit(in)
}

// Encode a previously built instruction to the encoding buffer.
func (a *Assembler) Emit(in Instruction) error {
	if a.err != nil {
		return a.err
	}
	if err := a.enc.encodeTo(&a.b, in); err != nil {
		a.err = fmt.Errorf("at pc %#x: %w", a.PC(), err)
	}
	return a.err
}

// Encode length bytes of NOP instructions to the encoding buffer.
func (a *Assembler) Nop(length uint8) {
	a.b.Nop(length)
}

// Encode inst with a register destination and register source to the encoding buffer.
func (a *Assembler) RR(inst Inst, dst, src Reg) error { return a.Emit(Inst2(inst, dst, src)) }

// Encode inst with a register destination and memory source to the encoding buffer.
func (a *Assembler) RM(inst Inst, dst Reg, src Mem) error { return a.Emit(Inst2(inst, dst, src)) }

// Encode inst with a memory destination and register source to the encoding buffer.
func (a *Assembler) MR(inst Inst, dst Mem, src Reg) error { return a.Emit(Inst2(inst, dst, src)) }

// Encode inst with a register destination and immediate to the encoding buffer.
func (a *Assembler) RI(inst Inst, dst Reg, imm ImmArg) error { return a.Emit(Inst2(inst, dst, imm)) }

// Encode inst with a memory destination and immediate to the encoding buffer.
func (a *Assembler) MI(inst Inst, dst Mem, imm ImmArg) error { return a.Emit(Inst2(inst, dst, imm)) }

// Write raw data to the encoding buffer.
func (a *Assembler) Raw(data []byte) { a.b.Bytes(data) }

// Write a raw byte to the encoding buffer.
func (a *Assembler) RawByte(b byte) { a.b.Byte(b) }

// Write a raw 16-bit integer to the encoding buffer.
func (a *Assembler) Raw16(i int16) { a.b.Int16(i) }

// Write a raw 32-bit integer to the encoding buffer.
func (a *Assembler) Raw32(i int32) { a.b.Int32(i) }

// Write a raw 64-bit integer to the encoding buffer.
func (a *Assembler) Raw64(i int64) { a.b.Int64(i) }
