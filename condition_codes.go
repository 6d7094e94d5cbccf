package astamboly

type ConditionCode byte

const (
	CCUnsignedLT  ConditionCode = 2
	CCUnsignedGTE ConditionCode = 3
	CCEq          ConditionCode = 4
	CCNeq         ConditionCode = 5
	CCUnsignedLTE ConditionCode = 6
	CCUnsignedGT  ConditionCode = 7
	CCSignedLT    ConditionCode = 0xC
	CCSignedGTE   ConditionCode = 0xD
	CCSignedLTE   ConditionCode = 0xE
	CCSignedGT    ConditionCode = 0xF
)

var invccTable = [...]ConditionCode{
	CCUnsignedGTE, // CCUnsignedLT
	CCUnsignedLT,  // CCUnsignedGTE
	CCNeq,         // CCEq
	CCEq,          // CCNeq
	CCUnsignedGT,  // CCUnsignedLTE
	CCUnsignedLTE, // CCUnsignedGT
	CCSignedGTE,   // CCSignedLT
	CCSignedLT,    // CCSignedGTE
	CCSignedGT,    // CCSignedLTE
	CCSignedLTE,   // CCSignedGT
}

var setccTable = [...]Inst{
	SETB,  // CCUnsignedLT
	SETAE, // CCUnsignedGTE
	SETE,  // CCEq
	SETNE, // CCNeq
	SETBE, // CCUnsignedLTE
	SETA,  // CCUnsignedGT
	SETL,  // CCSignedLT
	SETGE, // CCSignedGTE
	SETLE, // CCSignedLTE
	SETG,  // CCSignedGT
}

var cmovccTable = [...]Inst{
	CMOVB,  // CCUnsignedLT
	CMOVAE, // CCUnsignedGTE
	CMOVE,  // CCEq
	CMOVNE, // CCNeq
	CMOVBE, // CCUnsignedLTE
	CMOVA,  // CCUnsignedGT
	CMOVL,  // CCSignedLT
	CMOVGE, // CCSignedGTE
	CMOVLE, // CCSignedLTE
	CMOVG,  // CCSignedGT
}

func ccTableOffset(cc ConditionCode) uint8 {
	if cc < CCSignedLT {
		return uint8(cc - CCUnsignedLT)
	}
	return uint8(((CCUnsignedGT + 1) - CCUnsignedLT) + (cc - CCSignedLT))
}

// Get the conditional-set instruction for a condition code.
func Setcc(cc ConditionCode) Inst { return setccTable[ccTableOffset(cc)] }

// Get the conditional-move instruction for a condition code.
func Cmovcc(cc ConditionCode) Inst { return cmovccTable[ccTableOffset(cc)] }

// Invert a condition code.
func Invcc(cc ConditionCode) ConditionCode { return invccTable[ccTableOffset(cc)] }

// Get the condition code selected by a conditional-set or conditional-move instruction.
// The low 4 bits of the opcode are the condition code.
func InstCondition(inst Inst) (ConditionCode, bool) {
	for _, e := range inst.encs() {
		switch e.op &^ 0xf {
		case 0x0f40, 0x0f90:
			return ConditionCode(e.op & 0xf), true
		}
	}
	return 0, false
}
