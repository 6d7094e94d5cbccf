package astamboly

// Register families
const (
	REG_LEGACY   = iota
	REG_HIGHBYTE // AH, CH, DH, BH
	REG_SEGMENT
)

// Registers
const (
	// 8-bit
	AH   Reg = Reg(1<<16 | REG_HIGHBYTE<<8 | 4)
	CH   Reg = Reg(1<<16 | REG_HIGHBYTE<<8 | 5)
	DH   Reg = Reg(1<<16 | REG_HIGHBYTE<<8 | 6)
	BH   Reg = Reg(1<<16 | REG_HIGHBYTE<<8 | 7)
	AL   Reg = Reg(1<<16 | REG_LEGACY<<8 | 0)
	CL   Reg = Reg(1<<16 | REG_LEGACY<<8 | 1)
	DL   Reg = Reg(1<<16 | REG_LEGACY<<8 | 2)
	BL   Reg = Reg(1<<16 | REG_LEGACY<<8 | 3)
	SPL  Reg = Reg(1<<16 | REG_LEGACY<<8 | 4)
	BPL  Reg = Reg(1<<16 | REG_LEGACY<<8 | 5)
	SIL  Reg = Reg(1<<16 | REG_LEGACY<<8 | 6)
	DIL  Reg = Reg(1<<16 | REG_LEGACY<<8 | 7)
	R8B  Reg = Reg(1<<16 | REG_LEGACY<<8 | 8)
	R9B  Reg = Reg(1<<16 | REG_LEGACY<<8 | 9)
	R10B Reg = Reg(1<<16 | REG_LEGACY<<8 | 10)
	R11B Reg = Reg(1<<16 | REG_LEGACY<<8 | 11)
	R12B Reg = Reg(1<<16 | REG_LEGACY<<8 | 12)
	R13B Reg = Reg(1<<16 | REG_LEGACY<<8 | 13)
	R14B Reg = Reg(1<<16 | REG_LEGACY<<8 | 14)
	R15B Reg = Reg(1<<16 | REG_LEGACY<<8 | 15)

	// 16-bit
	AX   Reg = Reg(2<<16 | REG_LEGACY<<8 | 0)
	CX   Reg = Reg(2<<16 | REG_LEGACY<<8 | 1)
	DX   Reg = Reg(2<<16 | REG_LEGACY<<8 | 2)
	BX   Reg = Reg(2<<16 | REG_LEGACY<<8 | 3)
	SP   Reg = Reg(2<<16 | REG_LEGACY<<8 | 4)
	BP   Reg = Reg(2<<16 | REG_LEGACY<<8 | 5)
	SI   Reg = Reg(2<<16 | REG_LEGACY<<8 | 6)
	DI   Reg = Reg(2<<16 | REG_LEGACY<<8 | 7)
	R8W  Reg = Reg(2<<16 | REG_LEGACY<<8 | 8)
	R9W  Reg = Reg(2<<16 | REG_LEGACY<<8 | 9)
	R10W Reg = Reg(2<<16 | REG_LEGACY<<8 | 10)
	R11W Reg = Reg(2<<16 | REG_LEGACY<<8 | 11)
	R12W Reg = Reg(2<<16 | REG_LEGACY<<8 | 12)
	R13W Reg = Reg(2<<16 | REG_LEGACY<<8 | 13)
	R14W Reg = Reg(2<<16 | REG_LEGACY<<8 | 14)
	R15W Reg = Reg(2<<16 | REG_LEGACY<<8 | 15)

	// 32-bit
	EAX  Reg = Reg(4<<16 | REG_LEGACY<<8 | 0)
	ECX  Reg = Reg(4<<16 | REG_LEGACY<<8 | 1)
	EDX  Reg = Reg(4<<16 | REG_LEGACY<<8 | 2)
	EBX  Reg = Reg(4<<16 | REG_LEGACY<<8 | 3)
	ESP  Reg = Reg(4<<16 | REG_LEGACY<<8 | 4)
	EBP  Reg = Reg(4<<16 | REG_LEGACY<<8 | 5)
	ESI  Reg = Reg(4<<16 | REG_LEGACY<<8 | 6)
	EDI  Reg = Reg(4<<16 | REG_LEGACY<<8 | 7)
	R8D  Reg = Reg(4<<16 | REG_LEGACY<<8 | 8)
	R9D  Reg = Reg(4<<16 | REG_LEGACY<<8 | 9)
	R10D Reg = Reg(4<<16 | REG_LEGACY<<8 | 10)
	R11D Reg = Reg(4<<16 | REG_LEGACY<<8 | 11)
	R12D Reg = Reg(4<<16 | REG_LEGACY<<8 | 12)
	R13D Reg = Reg(4<<16 | REG_LEGACY<<8 | 13)
	R14D Reg = Reg(4<<16 | REG_LEGACY<<8 | 14)
	R15D Reg = Reg(4<<16 | REG_LEGACY<<8 | 15)

	// 64-bit
	RAX Reg = Reg(8<<16 | REG_LEGACY<<8 | 0)
	RCX Reg = Reg(8<<16 | REG_LEGACY<<8 | 1)
	RDX Reg = Reg(8<<16 | REG_LEGACY<<8 | 2)
	RBX Reg = Reg(8<<16 | REG_LEGACY<<8 | 3)
	RSP Reg = Reg(8<<16 | REG_LEGACY<<8 | 4)
	RBP Reg = Reg(8<<16 | REG_LEGACY<<8 | 5)
	RSI Reg = Reg(8<<16 | REG_LEGACY<<8 | 6)
	RDI Reg = Reg(8<<16 | REG_LEGACY<<8 | 7)
	R8  Reg = Reg(8<<16 | REG_LEGACY<<8 | 8)
	R9  Reg = Reg(8<<16 | REG_LEGACY<<8 | 9)
	R10 Reg = Reg(8<<16 | REG_LEGACY<<8 | 10)
	R11 Reg = Reg(8<<16 | REG_LEGACY<<8 | 11)
	R12 Reg = Reg(8<<16 | REG_LEGACY<<8 | 12)
	R13 Reg = Reg(8<<16 | REG_LEGACY<<8 | 13)
	R14 Reg = Reg(8<<16 | REG_LEGACY<<8 | 14)
	R15 Reg = Reg(8<<16 | REG_LEGACY<<8 | 15)

	// Segment registers. These can be named but not encoded.
	ES Reg = Reg(2<<16 | REG_SEGMENT<<8 | 0)
	CS Reg = Reg(2<<16 | REG_SEGMENT<<8 | 1)
	SS Reg = Reg(2<<16 | REG_SEGMENT<<8 | 2)
	DS Reg = Reg(2<<16 | REG_SEGMENT<<8 | 3)
	FS Reg = Reg(2<<16 | REG_SEGMENT<<8 | 4)
	GS Reg = Reg(2<<16 | REG_SEGMENT<<8 | 5)
)

var gprNames = [4][16]string{
	{"al", "cl", "dl", "bl", "spl", "bpl", "sil", "dil", "r8b", "r9b", "r10b", "r11b", "r12b", "r13b", "r14b", "r15b"},
	{"ax", "cx", "dx", "bx", "sp", "bp", "si", "di", "r8w", "r9w", "r10w", "r11w", "r12w", "r13w", "r14w", "r15w"},
	{"eax", "ecx", "edx", "ebx", "esp", "ebp", "esi", "edi", "r8d", "r9d", "r10d", "r11d", "r12d", "r13d", "r14d", "r15d"},
	{"rax", "rcx", "rdx", "rbx", "rsp", "rbp", "rsi", "rdi", "r8", "r9", "r10", "r11", "r12", "r13", "r14", "r15"},
}

var highByteNames = [4]string{"ah", "ch", "dh", "bh"}

var segmentNames = [6]string{"es", "cs", "ss", "ds", "fs", "gs"}

// Registers lists every register which can be named, in a stable order.
func Registers() []Reg {
	regs := make([]Reg, 0, 4*16+4+6)
	for _, w := range [4]uint32{1, 2, 4, 8} {
		for n := uint32(0); n < 16; n++ {
			regs = append(regs, Reg(w<<16|REG_LEGACY<<8|n))
		}
	}
	regs = append(regs, AH, CH, DH, BH)
	regs = append(regs, ES, CS, SS, DS, FS, GS)
	return regs
}

// String returns the lower-case assembler name of the register.
func (r Reg) String() string {
	switch r.Family() {
	case REG_LEGACY:
		switch r.width() {
		case 1:
			return gprNames[0][r.Num()]
		case 2:
			return gprNames[1][r.Num()]
		case 4:
			return gprNames[2][r.Num()]
		case 8:
			return gprNames[3][r.Num()]
		}
	case REG_HIGHBYTE:
		if n := r.Num(); n >= 4 && n <= 7 {
			return highByteNames[n-4]
		}
	case REG_SEGMENT:
		if n := r.Num(); n < uint8(len(segmentNames)) {
			return segmentNames[n]
		}
	}
	return "reg?"
}
