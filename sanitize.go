package astamboly

// Rewrite an instruction into the canonical form expected by the opcode table and the emitter.
// The instruction is copied; the caller's value is left untouched.
//
//   - MOV r64, imm8/imm32 with a non-negative immediate becomes MOV r32, imm32: writes to a
//     32-bit register zero-extend, and the short form saves the REX prefix.
//   - A memory argument's zero scale becomes 1, and an AddrAuto shape is replaced by the
//     shape its fields describe.
//
// Arguments which can never be encoded panic.
func normalize(inst Instruction) Instruction {
	out := inst
	for i, arg := range out.args[:out.argc] {
		switch v := arg.(type) {
		case Reg:
			encodableReg(v)
		case Mem:
			out.args[i] = sanitizeMem(v, inst)
		case ImmArg:
		case Rel32:
			invariant("relative displacement in %s", inst.Inst.Name())
		default:
			invariant("unknown argument %T in %s", arg, inst.Inst.Name())
		}
	}

	if out.Inst == MOV && out.argc == 2 {
		if r, ok := regOf(out.args[0]); ok && r.Family() == REG_LEGACY && r.width() == 8 {
			switch imm := out.args[1].(type) {
			case Imm8, Imm32:
				// negative values keep the 64-bit destination so they stay sign-extended
				if v := imm.(ImmArg).Int64(); v >= 0 {
					out.args[0], out.args[1] = r.To32(), Imm32(v)
				}
			}
		}
	}
	return out
}

func sanitizeMem(m Mem, inst Instruction) Mem {
	if m.Base == 0 {
		invariant("memory argument without a base register in %s", inst.Inst.Name())
	}
	if m.Base.Family() != REG_LEGACY || m.Base.width() != 8 {
		invariant("base register %s is not a 64-bit register in %s", m.Base, inst.Inst.Name())
	}
	if m.Index != 0 && (m.Index.Family() != REG_LEGACY || m.Index.width() != 8) {
		invariant("index register %s is not a 64-bit register in %s", m.Index, inst.Inst.Name())
	}
	switch m.Scale {
	case 0:
		m.Scale = 1
	case 1, 2, 4, 8:
	default:
		invariant("scale %d in %s", m.Scale, inst.Inst.Name())
	}
	if m.Shape == AddrAuto {
		switch {
		case m.Index != 0:
			m.Shape = AddrIndexed
		case m.Base.Num()&7 == 4:
			// RSP and R12 are only reachable through a SIB byte; index RSP selects no index
			m.Index, m.Shape = RSP, AddrIndexed
		case m.Disp == 0 && m.Base.Num()&7 != 5:
			m.Shape = AddrIndirect
		default:
			m.Shape = AddrDisp
		}
	}
	return m
}
