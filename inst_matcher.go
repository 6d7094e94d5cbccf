package astamboly

import (
	flags "github.com/mahanfarzaneh2000/Astamboly/internal/flags"
)

// InstMatcher finds valid encodings for an instruction in the standard table. InstMatcher implements
// Table through StandardTable; it can also be used directly to inspect a match.
type InstMatcher struct {
	inst  Instruction
	encId uint // offset of the matched encoding
	enc   enc  // matched encoding
}

func (m *InstMatcher) reset() { *m = InstMatcher{} }

// Get the instruction's unique encoding ID.
func (m *InstMatcher) EncodingId() uint { return m.encId }

// Get the matched instruction.
func (m *InstMatcher) Instruction() Instruction { return m.inst }

// Get the opcode and addressing-mode classification of the match.
func (m *InstMatcher) Opcode() Opcode { return m.enc.opcode() }

// Get the arg-pattern of the match, e.g. "r*,m*".
func (m *InstMatcher) Pattern() string { return m.enc.pattern() }

// Check if a register argument will be encoded in the last byte of the instruction's opcode.
func (m *InstMatcher) HasOpcodeRegArg() bool { return m.enc.kind == OpcodeReg }

// Check if immediates are sized by the destination rather than by their own width.
func (m *InstMatcher) HasPrecisionImm() bool { return m.enc.flags&flags.PRECISION_IMM != 0 }

// Get the names of the encoding flags of the match.
func (m *InstMatcher) FlagNames() []string { return flags.Names(m.enc.flags) }

// Find the first encoding for the instruction. The instruction should already be normalized;
// Encode takes care of that. If no matching instruction-encoding is found, ErrNoMatch will be returned.
func (m *InstMatcher) Match(inst Instruction) error {
	return m.match(inst, 0)
}

// Find all matching encodings for an instruction. If no matches are found, ErrNoMatch will be returned.
func (m *InstMatcher) AllMatches(inst Instruction) ([]InstMatcher, error) {
	var matches []InstMatcher
	count := uint16(inst.Inst.count())
	offset := uint16(0)
	for offset < count {
		if err := m.match(inst, offset); err != nil {
			break
		}
		matches = append(matches, *m)
		offset = uint16(m.encId) - inst.Inst.offset() + 1
	}
	m.reset()
	if len(matches) == 0 {
		return nil, ErrNoMatch
	}
	return matches, nil
}

func (m *InstMatcher) match(inst Instruction, start uint16) error {
	m.reset()
	if inst.Inst.Id() == 0 || int(inst.Inst.Id()) > len(mnemonics) {
		return ErrNoMatch
	}
	e, ei, ok := matchInst(inst, start)
	if !ok {
		return ErrNoMatch
	}
	m.inst, m.enc, m.encId = inst, e, uint(inst.Inst.offset()+ei)
	return nil
}

// Encodings lists the encodings of a mnemonic in the standard table, in match order.
func Encodings(inst Inst) []EncodingInfo {
	if inst.Id() == 0 || int(inst.Id()) > len(mnemonics) {
		return nil
	}
	es := inst.encs()
	infos := make([]EncodingInfo, len(es))
	for i, e := range es {
		infos[i] = EncodingInfo{Pattern: e.pattern(), Opcode: e.opcode(), Flags: flags.Names(e.flags)}
	}
	return infos
}

// EncodingInfo describes one entry of the standard table.
type EncodingInfo struct {
	Pattern string
	Opcode  Opcode
	Flags   []string
}
