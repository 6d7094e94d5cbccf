package astamboly

import (
	. "github.com/mahanfarzaneh2000/Astamboly/internal/flags"
)

const (
	modDirect uint8 = 3
	modNoDisp uint8 = 0
	modDisp8  uint8 = 1
	modDisp32 uint8 = 2

	rmSIB    uint8 = 4 // ModRM.rm escape selecting a SIB byte
	rmRIPRel uint8 = 5 // ModRM.rm with mod 0 selecting disp32 without a base

	prefixOpSize byte = 0x66
	rexBase      byte = 0x40
)

// REX bits
const (
	rexW byte = 1 << 3
	rexR byte = 1 << 2
	rexX byte = 1 << 1
	rexB byte = 1 << 0
)

// Compute the REX byte for the extracted arguments. The extension bit of each register follows the
// field it is encoded in: ModRM.reg extends through R, ModRM.rm or the opcode through B, and a
// SIB index through X. The second result reports whether the byte must be emitted.
func computeRex(ext extractedArgs, size uint8, op Opcode, single bool) (byte, bool, error) {
	rex := rexBase
	needed := false
	highByte := false

	mark := func(r Reg, bit byte) {
		if r.IsExtended() {
			rex |= bit
		}
		if r.IsNew8Bit() {
			needed = true
		}
		if r.Family() == REG_HIGHBYTE {
			highByte = true
		}
	}

	if r, ok := ext.r.(Reg); ok {
		mark(r, rexR)
	}
	switch v := ext.m.(type) {
	case Reg:
		mark(v, rexB)
	case Mem:
		mark(v.Base, rexB)
		if v.Index != 0 {
			mark(v.Index, rexX)
		}
	}

	// a lone operand of PUSH/POP/CALL/JMP is 64-bit without REX.W, registers and memory alike
	if size == 64 && !(single && hasFlag(op.Flags, DEFAULT_64)) {
		rex |= rexW
	}

	emit := needed || rex != rexBase
	if emit && highByte {
		return rex, emit, ErrHighByteRex
	}
	return rex, emit, nil
}

// Emit the operand-size override and REX prefixes, in that order.
func emitPrefixes(b *buffer, size uint8, rex byte, emitRex bool) {
	if size == 16 {
		b.Byte(prefixOpSize)
	}
	if emitRex {
		b.Byte(rex)
	}
}

// Emit the opcode, adding the register number for opcode+register encodings.
// 1-byte opcodes are <= 0xff; larger values are emitted most-significant byte first.
func emitOpcode(b *buffer, op Opcode, ext extractedArgs) {
	v := op.Value
	if op.Kind == OpcodeReg {
		v += uint16(ext.m.(Reg).Num() & 7)
	}
	if v <= 0xff {
		b.Byte(byte(v))
		return
	}
	b.Byte2(byte(v>>8), byte(v))
}

func modrm(mod, reg, rm uint8) byte {
	return byte(((mod&3)<<3|reg&7)<<3 | rm&7)
}

// Emit the ModRM byte, the SIB byte and the displacement.
func emitModRM(b *buffer, op Opcode, ext extractedArgs) {
	var reg uint8
	switch op.Kind {
	case ModRMNone, OpcodeReg:
		return
	case ModRMExt:
		reg = op.Ext
	case ModRMReg:
		if r, ok := ext.r.(Reg); ok {
			reg = r.Num()
		}
	default:
		invariant("addressing-mode classification %d", op.Kind)
	}

	switch v := ext.m.(type) {
	case Reg:
		b.Byte(modrm(modDirect, reg, v.Num()))
	case Mem:
		emitMem(b, reg, v)
	default:
		invariant("ModRM.r/m argument %T", ext.m)
	}
}

func emitMem(b *buffer, reg uint8, m Mem) {
	base := m.Base.Num()
	switch m.Shape {
	case AddrIndirect:
		if base&7 == rmSIB || base&7 == rmRIPRel {
			invariant("base register %s cannot be encoded without a displacement or SIB byte", m.Base)
		}
		b.Byte(modrm(modNoDisp, reg, base))
	case AddrDisp:
		if base&7 == rmSIB {
			invariant("base register %s requires a SIB byte", m.Base)
		}
		if fitsInt8(int64(m.Disp)) {
			b.Byte(modrm(modDisp8, reg, base))
			b.Int8(int8(m.Disp))
		} else {
			b.Byte(modrm(modDisp32, reg, base))
			b.Int32(m.Disp)
		}
	case AddrIndexed:
		if m.Index == 0 {
			invariant("indexed memory argument without an index register")
		}
		var mod uint8
		switch {
		case m.Disp == 0:
			if base&7 == rmRIPRel {
				invariant("base register %s cannot be encoded in a SIB byte without a displacement", m.Base)
			}
			mod = modNoDisp
		case fitsInt8(int64(m.Disp)):
			mod = modDisp8
		default:
			mod = modDisp32
		}
		b.Byte(modrm(mod, reg, rmSIB))
		b.Byte(sib(m.Scale, m.Index.Num(), base))
		switch mod {
		case modDisp8:
			b.Int8(int8(m.Disp))
		case modDisp32:
			b.Int32(m.Disp)
		}
	default:
		invariant("memory argument with shape %s", m.Shape)
	}
}

func sib(scale, index, base uint8) byte {
	var ss uint8
	switch scale {
	case 0, 1:
		ss = 0
	case 2:
		ss = 1
	case 4:
		ss = 2
	case 8:
		ss = 3
	default:
		invariant("scale %d", scale)
	}
	return byte(ss<<6 | (index&7)<<3 | base&7)
}
