package astamboly

// Operand type/size patterns
//
// i : immediate
// m : memory
// r : legacy reg
// v : r and m
//
// b, w, d, q match a byte, word, doubleword and quadword
// 0/* matches all possible sizes for this operand (b/d for i, w/d/q for r/v/m)
// 1/_ matches a lack of size, only useful in combination with m
//
// A memory argument without a width takes the width of the other argument before it is matched.
// An immediate is always matched by its own width.
func matchInst(inst Instruction, start uint16) (enc, uint16, bool) {
	inst0 := inst.Inst
	o := inst0.offset()
	c := uint16(inst0.count())
	argc := int(inst.argc)
SEARCH:
	for ei := start; ei < c; ei++ {
		e := encs[o+ei]
		p := e.format()
		pl := 0
		for _, b := range p[:] {
			if b == 0 {
				break
			}
			pl++
		}
		if pl/2 != argc {
			continue
		}

		// scan arg-pattern:
		for pi, ai := 0, 0; pi+1 < pl && ai < argc; pi, ai = pi+2, ai+1 {
			t, sz, arg := p[pi], p[pi+1], inst.args[ai]

			argsz := matchWidth(inst, ai)

			// check type
			switch t {
			case 'i': // immediate
				if !isImm(arg) {
					continue SEARCH
				}
			case 'r', 'v': // legacy reg or memory
				switch arg.(type) {
				case Reg:
					if _, ok := regOf(arg); !ok {
						continue SEARCH
					}
				case Mem:
					if t != 'v' {
						continue SEARCH
					}
				default:
					continue SEARCH
				}
			case 'm': // memory
				if _, ok := arg.(Mem); !ok {
					continue SEARCH
				}
			default:
				continue SEARCH
			}

			// check size
			switch sz {
			case 'b':
				if argsz != 1 {
					continue SEARCH
				}
			case 'w':
				if argsz != 2 {
					continue SEARCH
				}
			case 'd':
				if argsz != 4 {
					continue SEARCH
				}
			case 'q':
				if argsz != 8 {
					continue SEARCH
				}
			case '0': // matches all possible sizes for this operand (b/d for i, w/d/q for r/v/m)
				switch t {
				case 'i':
					if argsz != 1 && argsz != 4 {
						continue SEARCH
					}
				default:
					if argsz != 2 && argsz != 4 && argsz != 8 {
						continue SEARCH
					}
				}
			case '1': // matches a lack of size, only useful in combination with m
				if t != 'm' || argsz != 0 {
					continue SEARCH
				}
			default:
				continue SEARCH
			}
		}

		if e.offset() != uint8(ei) || e.instid() != inst0.Id() {
			panic("unexpected encoding at offset")
		}

		// all arguments match for the current encoding
		return e, ei, true
	}

	return enc{}, 0, false
}

func matchWidth(inst Instruction, ai int) uint8 {
	arg := inst.args[ai]
	w := arg.width()
	if _, ok := arg.(Mem); !ok || w != 0 || inst.argc != 2 {
		return w
	}
	switch other := inst.args[1-ai].(type) {
	case Reg:
		return other.width()
	case Mem:
		return other.Width
	}
	return 0
}
