// Package lookup maps textual mnemonic and register names to values of the astamboly package.
package lookup

import (
	astamboly "github.com/mahanfarzaneh2000/Astamboly"
)

const maxNameLength = 16

var (
	instMap = make(map[string]astamboly.Inst)
	regMap  = make(map[string]astamboly.Reg)
)

func init() {
	for _, inst := range astamboly.Mnemonics() {
		instMap[inst.Name()] = inst
	}
	for _, r := range astamboly.Registers() {
		regMap[upperCase(r.String())] = r
	}
}

// Lookup the instruction for a mnemonic. The mnemonic will be converted to uppercase if necessary.
func Inst(mnemonic string) (astamboly.Inst, bool) {
	if len(mnemonic) > 0 && len(mnemonic) < maxNameLength {
		inst, ok := instMap[upperCase(mnemonic)]
		return inst, ok
	}
	return astamboly.Inst(0), false
}

// Lookup a register by its assembler name, e.g. "rax", "R9D" or "ah". Case is ignored.
func Reg(name string) (astamboly.Reg, bool) {
	if len(name) > 0 && len(name) < maxNameLength {
		r, ok := regMap[upperCase(name)]
		return r, ok
	}
	return 0, false
}

func upperCase(s string) string {
	var b [maxNameLength]byte
	var ch byte
	_ = b[len(s)] // lift bounds-checks out of the loop below (golang.org/issue/14808)
	i, changed := 0, false
loop: // functions containing for-loops cannot currently be inlined (golang.org/issue/14768)
	ch = s[i]
	if ch >= 'a' && ch <= 'z' {
		b[i] = ch - ('a' - 'A')
	} else {
		b[i] = ch
	}
	changed = changed || b[i] != ch
	i++
	if i < len(s) {
		goto loop
	}
	if !changed {
		return s
	}
	return string(b[:len(s)])
}
