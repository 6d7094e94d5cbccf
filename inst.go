package astamboly

import (
	"strings"
)

func hasFlag(flags, flag uint32) bool { return flags&flag != 0 }

// Inst represents an instruction-mnemonic.
//
// 	[0..12] bits are a uint16 offset into an internal array of instruction-encodings
// 	[16..20] bits specify the number of supported encodings for the instruction
// 	[21..31] bits identify the unique mnemonic
type Inst uint32

// Get the unique numeric identifier for the instruction mnemonic. This is an arbitrary value.
func (inst Inst) Id() uint16     { return uint16(inst >> 21) }
func (inst Inst) offset() uint16 { return uint16(inst) & 0xfff }
func (inst Inst) count() uint8   { return uint8(inst>>16) & 0x1f }

// Get the name of the instruction mnemonic.
func (inst Inst) Name() string {
	if inst.Id() == 0 || int(inst.Id()) > len(instNameOffsets) {
		return "INVALID"
	}
	idOffset := inst.Id() - 1
	nmOffset := instNameOffsets[idOffset]
	var nmLength uint16
	if idOffset < uint16(len(instNameOffsets))-1 {
		nmLength = instNameOffsets[idOffset+1] - nmOffset
	} else {
		nmLength = uint16(len(instNames)) - nmOffset
	}
	return instNames[nmOffset : nmOffset+nmLength]
}

func (inst Inst) String() string { return inst.Name() }

func (inst Inst) encs() []enc {
	off := inst.offset()
	return encs[off : off+uint16(inst.count())]
}

// Mnemonics lists every instruction-mnemonic in the standard table, ordered by name.
func Mnemonics() []Inst {
	return append([]Inst(nil), mnemonics[:]...)
}

// enc represents an instruction-encoding spec.
//
// * Format:
//   * opcode: uint16, 1-byte opcodes are <= 0xff
//   * flags: uint32
//   * mnemonic: uint16
//     * [0..10] bits identify the unique mnemonic (reverse mapping to the mnemonic)
//     * [11..15] bits identify the offset of this encoding w.r.t. the starting offset for the mnemonic within the encodings array
//   * kind: addressing-mode classification
//   * ext: opcode extension for the ModRM.reg field
//   * arg-pattern: byte
type enc struct {
	op    uint16
	flags uint32
	mne   uint16
	kind  ModRMKind
	ext   uint8
	argp  uint8
}

func (e enc) instid() uint16  { return e.mne & 0x7ff }
func (e enc) offset() uint8   { return uint8(e.mne >> 11) }
func (e enc) format() [4]byte { return argpFormats[e.argp] }

func (e enc) opcode() Opcode {
	return Opcode{Value: e.op, Kind: e.kind, Ext: e.ext, Flags: e.flags}
}

// Pattern returns the arg-pattern of the encoding in the notation used by the opcode table.
func (e enc) pattern() string {
	p := e.format()
	var sb strings.Builder
	for i := 0; i+1 < len(p) && p[i] != 0; i += 2 {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteByte(p[i])
		switch p[i+1] {
		case '0':
			sb.WriteByte('*')
		case '1':
			sb.WriteByte('_')
		default:
			sb.WriteByte(p[i+1])
		}
	}
	return sb.String()
}

// Shape describes how many operands an instruction carries.
type Shape uint8

const (
	ShapeNone Shape = iota
	ShapeOne
	ShapeTwo
)

// Instruction is a mnemonic with up to two arguments. Instructions are values; the encoder never
// modifies the Instruction it is given.
type Instruction struct {
	Inst Inst
	args [2]Arg
	argc uint8
}

// Build an instruction with no arguments.
func Inst0(inst Inst) Instruction { return Instruction{Inst: inst} }

// Build an instruction with one argument.
func Inst1(inst Inst, a Arg) Instruction {
	return Instruction{Inst: inst, args: [2]Arg{a}, argc: 1}
}

// Build an instruction with two arguments. The first argument is the destination.
func Inst2(inst Inst, dst, src Arg) Instruction {
	return Instruction{Inst: inst, args: [2]Arg{dst, src}, argc: 2}
}

// NewInstruction builds an instruction from a variable number of arguments. More than two
// arguments cannot be represented, so ErrTooManyArgs is returned.
func NewInstruction(inst Inst, args ...Arg) (Instruction, error) {
	switch len(args) {
	case 0:
		return Inst0(inst), nil
	case 1:
		return Inst1(inst, args[0]), nil
	case 2:
		return Inst2(inst, args[0], args[1]), nil
	}
	return Instruction{}, errorf(ErrTooManyArgs, "%s takes at most 2 arguments, got %d", inst.Name(), len(args))
}

// Get the number of arguments.
func (i Instruction) Shape() Shape { return Shape(i.argc) }

// Get the arguments.
func (i Instruction) Args() []Arg { return i.args[:i.argc:i.argc] }

// Get the nth argument.
func (i Instruction) Arg(n int) Arg { return i.args[:i.argc][n] }

func (i Instruction) String() string {
	var sb strings.Builder
	sb.WriteString(strings.ToLower(i.Inst.Name()))
	for n, arg := range i.Args() {
		if n == 0 {
			sb.WriteByte(' ')
		} else {
			sb.WriteString(", ")
		}
		sb.WriteString(argString(arg))
	}
	return sb.String()
}
