package astamboly

import (
	"fmt"

	. "github.com/mahanfarzaneh2000/Astamboly/internal/flags"
)

// Encode inst to b. Nothing is written unless the instruction is valid.
func (e *Encoder) encodeTo(b *buffer, inst Instruction) error {
	if inst.argc > 2 {
		invariant("instruction with %d arguments", inst.argc)
	}
	if _, err := resolveSize(inst); err != nil {
		return err
	}
	norm := normalize(inst)
	// normalization may narrow the destination, so the size is taken again from the rewritten form
	size, err := resolveSize(norm)
	if err != nil {
		return err
	}

	op, err := e.table.Lookup(norm)
	if err != nil {
		return fmt.Errorf("%w for %s", err, inst)
	}

	ext := extractArgs(norm, op)
	single := norm.Shape() == ShapeOne
	if single {
		size = argSize(norm.args[0])
	}

	rex, emitRex, err := computeRex(ext, size, op, single)
	if err != nil {
		return errorf(err, "%s", inst)
	}

	emitPrefixes(b, size, rex, emitRex)
	emitOpcode(b, op, ext)
	emitModRM(b, op, ext)
	if ext.imm != nil {
		emitImm(b, norm, op, ext)
	}
	return nil
}

// Emit the trailing immediate.
//
// Destination-precision encodings (PRECISION_IMM) size the immediate by the destination: 1 byte for
// byte memory and 4 bytes for any other memory; a register destination takes its own width, except
// that only opcode+register encodings take a full 8 bytes. All other encodings emit the immediate at
// its own width.
func emitImm(b *buffer, inst Instruction, op Opcode, ext extractedArgs) {
	v := ext.imm.Int64()
	n := ext.imm.width()
	if hasFlag(op.Flags, PRECISION_IMM) && inst.Shape() == ShapeTwo {
		switch dst := inst.args[0].(type) {
		case Mem:
			if dst.Width == 1 {
				n = 1
			} else {
				n = 4
			}
		case Reg:
			n = dst.width()
			// only MOV r64, imm64 (B8+r) takes 8 bytes; C7 /0 and 81 /7 sign-extend an imm32
			if n == 8 && op.Kind != OpcodeReg {
				n = 4
			}
		}
	}
	switch n {
	case 1:
		b.Int8(int8(v))
	case 2:
		b.Int16(int16(v))
	case 4:
		b.Int32(int32(v))
	case 8:
		b.Int64(v)
	default:
		invariant("immediate width %d", n)
	}
}
