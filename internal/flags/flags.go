package flags

// Flags
const (
	DEFAULT       uint32 = 0         // this instruction has default encoding
	PRECISION_IMM uint32 = 1 << iota // immediates are truncated to the destination rather than their own width
	DEFAULT_64                       // a lone operand is 64-bit without REX.W
	ENC_RM                           // two registers are encoded as reg, r/m rather than r/m, reg
)

func FlagName(f uint32) string { return flagNames[f] }

var flagNames = map[uint32]string{
	DEFAULT:       "DEFAULT",
	PRECISION_IMM: "PRECISION_IMM",
	DEFAULT_64:    "DEFAULT_64",
	ENC_RM:        "ENC_RM",
}

// Names lists the names of the flags set in f, lowest bit first.
func Names(f uint32) []string {
	var names []string
	for b := uint32(0); b < 32; b++ {
		if f&(1<<b) != 0 {
			if name, ok := flagNames[1<<b]; ok {
				names = append(names, name)
			}
		}
	}
	return names
}
