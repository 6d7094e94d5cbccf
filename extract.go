package astamboly

import (
	. "github.com/mahanfarzaneh2000/Astamboly/internal/flags"
)

// Arguments sorted by where they are encoded.
type extractedArgs struct {
	r   Arg    // ModRM.reg, nil when the field holds an extension or 0
	m   Arg    // ModRM.r/m, or the register added to the opcode
	imm ImmArg // trailing immediate
}

// Operand order:
//
// if there's a memory operand, it goes into modrm.r/m and the register goes into modrm.reg.
// two registers are encoded as r/m, reg unless the encoding carries ENC_RM.
// an immediate is never encoded in modrm.
func extractArgs(inst Instruction, op Opcode) extractedArgs {
	var ext extractedArgs
	switch inst.Shape() {
	case ShapeNone:
	case ShapeOne:
		switch v := inst.args[0].(type) {
		case Reg, Mem:
			ext.m = v
		case ImmArg:
			ext.imm = v
		default:
			invariant("unsupported argument %T for %s", v, inst.Inst.Name())
		}
	case ShapeTwo:
		dst, src := inst.args[0], inst.args[1]
		switch d := dst.(type) {
		case Reg:
			switch s := src.(type) {
			case Reg:
				if hasFlag(op.Flags, ENC_RM) {
					ext.r, ext.m = d, s
				} else {
					ext.m, ext.r = d, s
				}
			case Mem:
				ext.r, ext.m = d, s
			case ImmArg:
				ext.m, ext.imm = d, s
			default:
				invariant("unsupported source %T for %s", src, inst.Inst.Name())
			}
		case Mem:
			switch s := src.(type) {
			case Reg:
				ext.m, ext.r = d, s
			case ImmArg:
				ext.m, ext.imm = d, s
			default:
				invariant("unsupported source %T for memory destination of %s", src, inst.Inst.Name())
			}
		default:
			invariant("unsupported destination %T for %s", dst, inst.Inst.Name())
		}
	}

	if op.Kind == OpcodeReg {
		if _, ok := ext.m.(Reg); !ok || ext.r != nil {
			invariant("opcode+register encoding for %s without a lone register argument", inst)
		}
	}
	if op.Kind == ModRMNone && (ext.r != nil || ext.m != nil) {
		invariant("%s has register or memory arguments but no ModRM byte", inst)
	}
	if (op.Kind == ModRMReg || op.Kind == ModRMExt) && ext.m == nil {
		invariant("%s needs a ModRM byte but has no register or memory argument", inst)
	}
	if op.Kind == ModRMExt && ext.r != nil {
		invariant("%s carries an opcode extension and a ModRM.reg register", inst)
	}
	return ext
}
