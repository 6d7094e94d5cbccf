package astamboly

// ModRMKind is the addressing-mode classification of an opcode.
type ModRMKind uint8

const (
	// No ModRM byte follows the opcode.
	ModRMNone ModRMKind = iota
	// ModRM.reg holds the register argument, or 0 when there is none.
	ModRMReg
	// ModRM.reg holds the opcode extension.
	ModRMExt
	// The register argument is added to the low 3 bits of the opcode.
	OpcodeReg
)

func (k ModRMKind) String() string {
	switch k {
	case ModRMNone:
		return "none"
	case ModRMReg:
		return "/r"
	case ModRMExt:
		return "/ext"
	case OpcodeReg:
		return "+r"
	}
	return "?"
}

// Opcode is the result of an opcode-table lookup. Values above 0xff are 2-byte opcodes.
// Flags holds the internal/flags bits which change how the instruction is encoded.
type Opcode struct {
	Value uint16
	Kind  ModRMKind
	Ext   uint8
	Flags uint32
}

// Table maps an instruction to its opcode. Lookup returns an error wrapping ErrNoMatch for
// instructions it cannot encode.
type Table interface {
	Lookup(inst Instruction) (Opcode, error)
}

// Encoder encodes single instructions through an opcode table. Encoders hold no mutable state
// and are safe for concurrent use.
type Encoder struct {
	table Table
}

// Create an encoder for the given opcode table. A nil table selects the standard table.
func NewEncoder(table Table) *Encoder {
	if table == nil {
		table = StandardTable
	}
	return &Encoder{table: table}
}

// StandardTable is the built-in opcode table.
var StandardTable Table = stdTable{}

type stdTable struct{}

func (stdTable) Lookup(inst Instruction) (Opcode, error) {
	var m InstMatcher
	if err := m.Match(inst); err != nil {
		return Opcode{}, err
	}
	return m.Opcode(), nil
}

var defaultEncoder = NewEncoder(nil)

// Encode one instruction with the standard table.
func Encode(inst Instruction) ([]byte, error) { return defaultEncoder.Encode(inst) }

// Encode one instruction. The returned slice is owned by the caller.
//
// Validation problems (ambiguous or conflicting sizes, an immediate destination, no matching
// encoding) are returned as errors. Arguments which can never be encoded, such as a segment
// register or a relative displacement, cause a panic.
func (e *Encoder) Encode(inst Instruction) ([]byte, error) {
	b := newBuffer(make([]byte, 16))
	if err := e.encodeTo(b, inst); err != nil {
		return nil, err
	}
	return b.Get(), nil
}
