package astamboly

import (
	"fmt"
	"strings"
)

// Arg represents an instruction argument.
//
// Reg, Mem, Imm8, Imm32, Imm64 and Rel32 implement Arg. The set is closed.
type Arg interface {
	isArg()
	width() uint8
}

// AddrShape selects how a memory argument is addressed.
type AddrShape uint8

const (
	// The shape is derived from the other fields of the memory argument when the
	// instruction is normalized.
	AddrAuto AddrShape = iota
	// [base]
	AddrIndirect
	// [base+disp]
	AddrDisp
	// [base+index*scale+disp], encoded through a SIB byte
	AddrIndexed
)

func (s AddrShape) String() string {
	switch s {
	case AddrAuto:
		return "auto"
	case AddrIndirect:
		return "indirect"
	case AddrDisp:
		return "disp"
	case AddrIndexed:
		return "indexed"
	}
	return fmt.Sprintf("AddrShape(%d)", uint8(s))
}

// Mem is a memory-reference argument. Base and Index must be 64-bit general purpose registers.
// An Index of RSP selects no index within a SIB byte, which is how RSP and R12 are used as a base.
//
// Width is the size of the referenced memory in bytes. A zero Width is inherited from the other
// argument of the instruction.
//
// Mem implements Arg.
type Mem struct {
	Base  Reg
	Index Reg
	Disp  int32
	Scale uint8
	Width uint8
	Shape AddrShape
}

func (m Mem) isArg()       {}
func (m Mem) width() uint8 { return m.Width }

// Ptr references [base+disp]. The shape is chosen so the reference can always be encoded:
// an RSP or R12 base is routed through a SIB byte.
func Ptr(base Reg, disp int32) Mem {
	m := Mem{Base: base, Disp: disp, Scale: 1}
	switch {
	case base.Num()&7 == 4:
		m.Index, m.Shape = RSP, AddrIndexed
	case disp == 0 && base.Num()&7 != 5:
		m.Shape = AddrIndirect
	default:
		m.Shape = AddrDisp
	}
	return m
}

// PtrIndex references [base+index*scale+disp].
func PtrIndex(base, index Reg, scale uint8, disp int32) Mem {
	return Mem{Base: base, Index: index, Scale: scale, Disp: disp, Shape: AddrIndexed}
}

// Sized returns a copy of the memory argument referencing width bytes.
func (m Mem) Sized(width uint8) Mem {
	m.Width = width
	return m
}

func (m Mem) String() string {
	var sb strings.Builder
	switch m.Width {
	case 1:
		sb.WriteString("byte ptr ")
	case 2:
		sb.WriteString("word ptr ")
	case 4:
		sb.WriteString("dword ptr ")
	case 8:
		sb.WriteString("qword ptr ")
	}
	sb.WriteByte('[')
	sb.WriteString(m.Base.String())
	if m.Index != 0 && !(m.Index == RSP && m.Shape == AddrIndexed) {
		scale := m.Scale
		if scale == 0 {
			scale = 1
		}
		fmt.Fprintf(&sb, "+%s*%d", m.Index, scale)
	}
	if m.Disp > 0 {
		fmt.Fprintf(&sb, "+%#x", m.Disp)
	} else if m.Disp < 0 {
		fmt.Fprintf(&sb, "-%#x", -int64(m.Disp))
	}
	sb.WriteByte(']')
	return sb.String()
}

// ImmArg represents an immediate argument.
//
// Any Imm8, Imm32, or Imm64 value implements ImmArg.
type ImmArg interface {
	Arg
	isImm()
	Int64() int64
}

func isImm(arg Arg) bool {
	_, ok := arg.(ImmArg)
	return ok
}

// Imm8 is an 8-bit immediate argument.
//
// Imm8 implements ImmArg.
type Imm8 int8

// Imm32 is a 32-bit immediate argument.
//
// Imm32 implements ImmArg.
type Imm32 int32

// Imm64 is a 64-bit immediate argument.
//
// Imm64 implements ImmArg.
type Imm64 int64

func (i Imm8) isArg()  {}
func (i Imm32) isArg() {}
func (i Imm64) isArg() {}

func (i Imm8) isImm()  {}
func (i Imm32) isImm() {}
func (i Imm64) isImm() {}

func (i Imm8) width() uint8  { return 1 }
func (i Imm32) width() uint8 { return 4 }
func (i Imm64) width() uint8 { return 8 }

func (i Imm8) Int64() int64  { return int64(i) }
func (i Imm32) Int64() int64 { return int64(i) }
func (i Imm64) Int64() int64 { return int64(i) }

// Imm returns the narrowest immediate argument holding v.
func Imm(v int64) ImmArg {
	switch {
	case fitsInt8(v):
		return Imm8(v)
	case fitsInt32(v):
		return Imm32(v)
	}
	return Imm64(v)
}

func fitsInt8(v int64) bool  { return v >= -128 && v <= 127 }
func fitsInt32(v int64) bool { return v >= -(1<<31) && v < 1<<31 }

// Rel32 is a 32-bit displacement relative to the next instruction. Relative branches need
// label resolution, which is not performed here, so Rel32 is rejected by the encoder.
//
// Rel32 implements Arg.
type Rel32 int32

func (r Rel32) isArg()       {}
func (r Rel32) width() uint8 { return 4 }

// Reg is a register argument with a specific width and family. All registers have a number
// which distinguishes them within their family.
//
// Reg implements Arg.
type Reg uint32

func (r Reg) isArg() {}

// Get the family for the register: REG_LEGACY, REG_HIGHBYTE, or REG_SEGMENT.
func (r Reg) Family() uint8 { return uint8(r >> 8) }

// Get the number which distinguishes the register within its family.
func (r Reg) Num() uint8 { return uint8(r) & 0xf }

// Get the width of the register in bytes.
func (r Reg) Width() uint8 { return r.width() }
func (r Reg) width() uint8 { return uint8(r>>16) & 0x1f }

// Get the width of the register in bits.
func (r Reg) Bits() uint8 { return r.width() * 8 }

// Check if the register is numbered 8 or higher.
func (r Reg) IsExtended() bool { return r.Num() > 7 }

// Check if the register is SPL, BPL, SIL or DIL. These are only reachable with a REX prefix,
// without which the same numbers select AH, CH, DH and BH.
func (r Reg) IsNew8Bit() bool {
	return r.Family() == REG_LEGACY && r.width() == 1 && r.Num() >= 4 && r.Num() <= 7
}

// To32 returns the 32-bit general purpose register with the same number.
func (r Reg) To32() Reg {
	return Reg(4<<16 | REG_LEGACY<<8 | uint32(r.Num()))
}

// regOf reports whether arg is a general purpose register which can be encoded.
func regOf(arg Arg) (Reg, bool) {
	r, ok := arg.(Reg)
	if !ok {
		return 0, false
	}
	switch r.Family() {
	case REG_LEGACY, REG_HIGHBYTE:
		return r, true
	}
	return 0, false
}

func argString(arg Arg) string {
	switch v := arg.(type) {
	case Reg:
		return v.String()
	case Mem:
		return v.String()
	case ImmArg:
		return fmt.Sprintf("%#x", v.Int64())
	case Rel32:
		return fmt.Sprintf(".%+#x", int32(v))
	}
	return "?"
}
