package astamboly

// Resolve the operand size, in bits, shared by both arguments of a two-argument instruction.
// Registers carry their own size, sized memory carries its declared size, and size-less memory
// and immediates inherit the size of the other argument.
//
// Instructions with fewer than two arguments are not resolved and yield 0.
func resolveSize(inst Instruction) (uint8, error) {
	if inst.Shape() != ShapeTwo {
		return 0, nil
	}
	dst, src := inst.args[0], inst.args[1]

	var lhs uint8
	switch v := dst.(type) {
	case Reg:
		lhs = encodableReg(v).Bits()
	case Mem:
		lhs = v.Width * 8
	case ImmArg:
		return 0, errorf(ErrImmediateDestination, "%s", inst)
	case Rel32:
		invariant("relative displacement as the destination of %s", inst.Inst.Name())
	default:
		invariant("unknown destination %T for %s", dst, inst.Inst.Name())
	}

	var rhs uint8
	switch v := src.(type) {
	case Reg:
		rhs = encodableReg(v).Bits()
	case Mem:
		rhs = v.Width * 8
	case ImmArg:
		// inherits
	case Rel32:
		invariant("relative displacement as the source of %s", inst.Inst.Name())
	default:
		invariant("unknown source %T for %s", src, inst.Inst.Name())
	}

	if lhs == 0 {
		lhs = rhs
	} else if rhs == 0 {
		rhs = lhs
	}
	if lhs == 0 {
		return 0, errorf(ErrAmbiguousSize, "%s", inst)
	}
	if lhs != rhs {
		return 0, errorf(ErrSizeMismatch, "%s (%d-bit and %d-bit)", inst, lhs, rhs)
	}
	return lhs, nil
}

// Size of a lone argument in bits, or 0 if it has no size.
func argSize(arg Arg) uint8 {
	switch v := arg.(type) {
	case Reg:
		return v.Bits()
	case Mem:
		return v.Width * 8
	}
	return 0
}

func encodableReg(r Reg) Reg {
	if _, ok := regOf(r); !ok {
		invariant("register %s cannot be encoded", r)
	}
	return r
}
