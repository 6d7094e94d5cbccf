package main

// go run ./gen > ./x86.generated.go && gofmt -w ./x86.generated.go

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"text/template"

	. "github.com/mahanfarzaneh2000/Astamboly/internal/flags"
)

// Encoding:
//
// mnemonics:
// * uint32 constants
// * [0..12] bits are uint16 offset into encodings array
// * [16..20] bits specify the number of available encodings for the mnemonic
// * [21..31] bits identify the unique mnemonic
//
// encodings:
// * arg-pattern: byte
// * opcode: uint16
// * kind: ModRMNone, ModRMReg, ModRMExt or OpcodeReg
// * ext: the ModRM.reg extension for ModRMExt
// * flags: uint32
// * mnemonic: uint16
//   * [0..10] bits identify the unique mnemonic (reverse mapping to the mnemonic)
//   * [11..15] bits identify the offset of this encoding w.r.t. the starting offset for the mnemonic within the encodings array
func main() {
	var ms []mnemonic
	pset := make(map[string]int, 64)
	for mne, specs := range opMap {
		for _, spec := range specs {
			pset[cleanArgp(spec.pattern)] = -1
		}
		ms = append(ms, mnemonic{mne, specs, -1, -1})
	}
	ps := make([]string, 0, len(pset))
	for p := range pset {
		ps = append(ps, p)
	}

	sort.Slice(ms, func(i, j int) bool { return ms[i].mne < ms[j].mne })
	sort.Slice(ps, func(i, j int) bool {
		pi, pj := ps[i], ps[j]
		return len(pi) < len(pj) || (len(pi) == len(pj) && pi < pj)
	})

	var sps []spec
	for i, m := range ms {
		ms[i].i = i + 1 // 1-based indexes since 0 represents an invalid instruction
		ms[i].offset = len(sps)
		sps = append(sps, m.specs...)
	}

	type TM struct {
		Name, Value string
	}
	type TE struct {
		Argp  string
		Op    string
		Kind  string
		Ext   string
		Flags string
		Mne   string
	}
	tms := make([]TM, len(ms))
	tes := make([]TE, len(sps))
	mflat := ""
	mtab := ""
	for i, m := range ms {
		tms[i] = TM{
			Name:  strings.ToUpper(m.mne),
			Value: fmt.Sprintf("%v<<21 | %v<<16 | %v", m.i, len(m.specs), m.offset),
		}
		if i > 0 {
			mtab += ", "
		}
		mtab += fmt.Sprintf("%d", len(mflat))
		mflat += tms[i].Name
		for j, sp := range m.specs {
			flags := "0"
			if sp.flags != 0 {
				flags = strings.Join(Names(sp.flags), " | ")
			}
			tes[m.offset+j] = TE{
				Argp:  "argp_" + cleanArgp(sp.pattern),
				Op:    fmt.Sprintf("%#x", sp.op),
				Kind:  sp.kind,
				Ext:   fmt.Sprintf("%d", sp.ext),
				Flags: flags,
				Mne:   fmt.Sprintf("%v<<11 | %v", j, m.i),
			}
		}
	}

	pfs := make([]string, len(ps))
	for i, p := range ps {
		pf := "[4]byte{"
		for i := 0; i < len(p); i++ {
			if i > 0 {
				pf += ", "
			}
			pf += fmt.Sprintf("'%s'", string(p[i]))
		}
		if len(p) == 0 {
			pf += "0, 0, 0, 0"
		} else {
			for i := 0; i < 4-len(p); i++ {
				pf += ", 0"
			}
		}
		pf += "}"
		pfs[i] = pf
	}

	ct := template.Must(template.New("tables-x86").Parse(tablesTemplate))
	err := ct.Execute(os.Stdout, struct {
		Patterns       []string
		PatternFormats []string
		Mnemonics      []TM
		MnemonicsFlat  string
		NameOffsets    string
		Encodings      []TE
	}{
		Patterns:       ps,
		PatternFormats: pfs,
		Mnemonics:      tms,
		MnemonicsFlat:  mflat,
		NameOffsets:    mtab,
		Encodings:      tes,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
}

func cleanArgp(p string) string {
	p = strings.Replace(p, ",", "", -1)
	p = strings.Replace(p, "*", "0", -1)
	p = strings.Replace(p, "_", "1", -1)
	return p
}

const tablesTemplate = `package astamboly

// THIS FILE IS AUTOMATICALLY GENERATED. DO NOT EDIT!
// go run ./gen > ./x86.generated.go && gofmt -w ./x86.generated.go

import (
	. "github.com/mahanfarzaneh2000/Astamboly/internal/flags"
)

// Arg-patterns
const (
{{- range $i, $p := .Patterns }}
	argp_{{ $p }} uint8 = {{ $i }}
{{- end }}
)

var argpFormats = [...][4]byte{
{{- range .PatternFormats }}
	{{ . }},
{{- end }}
}

// Instruction mnemonics
const (
{{- range .Mnemonics }}
	{{ .Name }} Inst = {{ .Value }}
{{- end }}
)

var mnemonics = [...]Inst{
{{- range .Mnemonics }}
	{{ .Name }},
{{- end }}
}

const instNames = "{{ .MnemonicsFlat }}"

var instNameOffsets = [...]uint16{ {{ .NameOffsets }} }

var encs = [...]enc{
{{- range .Encodings }}
	{argp: {{ .Argp }}, op: {{ .Op }}, kind: {{ .Kind }}, ext: {{ .Ext }}, flags: {{ .Flags }}, mne: {{ .Mne }}},
{{- end }}
}
`

type mnemonic struct {
	mne    string
	specs  specs
	i      int
	offset int
}

type specs []spec

type spec struct {
	pattern string
	op      uint16
	kind    string
	ext     uint8
	flags   uint32
}

func (s specs) with(flags uint32) specs {
	out := make(specs, len(s))
	for i, sp := range s {
		sp.flags |= flags
		out[i] = sp
	}
	return out
}

// no ModRM byte
func none(p string, op uint16) spec { return spec{pattern: p, op: op, kind: "ModRMNone"} }

// ModRM.reg holds the register argument
func rm(p string, op uint16) spec { return spec{pattern: p, op: op, kind: "ModRMReg"} }

// ModRM.reg holds an opcode extension
func ext(p string, op uint16, n uint8) spec {
	return spec{pattern: p, op: op, kind: "ModRMExt", ext: n}
}

// register added to the opcode
func oreg(p string, op uint16) spec { return spec{pattern: p, op: op, kind: "OpcodeReg"} }

func (s spec) with(flags uint32) spec {
	s.flags |= flags
	return s
}

// add, or, adc, sbb, and, sub, xor
func alu(n uint16) specs {
	b := n * 8
	return specs{
		rm("rb,rb", b+0), rm("r*,r*", b+1),
		rm("mb,rb", b+0), rm("m*,r*", b+1),
		rm("rb,mb", b+2), rm("r*,m*", b+3),
		ext("vb,ib", 0x80, uint8(n)), ext("v*,ib", 0x83, uint8(n)),
		ext("vd,id", 0x81, uint8(n)), ext("vq,id", 0x81, uint8(n)),
	}
}

// not, neg, mul, imul, div, idiv
func unary(n uint8) specs {
	return specs{ext("vb", 0xf6, n), ext("v*", 0xf7, n)}
}

// rol, ror, shl, shr, sar
func shift(n uint8) specs {
	return specs{
		ext("vb", 0xd0, n), ext("v*", 0xd1, n),
		ext("vb,ib", 0xc0, n), ext("v*,ib", 0xc1, n),
	}
}

func cmov(cc uint16) specs {
	return specs{
		rm("r*,r*", 0x0f40+cc).with(ENC_RM),
		rm("r*,m*", 0x0f40+cc),
	}
}

func setcc(cc uint16) specs {
	return specs{
		ext("rb", 0x0f90+cc, 0),
		ext("mb", 0x0f90+cc, 0),
		ext("m_", 0x0f90+cc, 0),
	}
}

// indirect call or jump
func branch(n uint8) specs {
	return specs{
		ext("rq", 0xff, n),
		ext("mq", 0xff, n),
		ext("m_", 0xff, n),
	}.with(DEFAULT_64)
}

var opMap = map[string]specs{
	"adc": alu(2),
	"add": alu(0),
	"and": alu(4),
	"bswap": {
		oreg("rd", 0x0fc8),
		oreg("rq", 0x0fc8),
	},
	"call":   branch(2),
	"cdq":    {none("", 0x99)},
	"cmova":  cmov(0x7),
	"cmovae": cmov(0x3),
	"cmovb":  cmov(0x2),
	"cmovbe": cmov(0x6),
	"cmove":  cmov(0x4),
	"cmovg":  cmov(0xf),
	"cmovge": cmov(0xd),
	"cmovl":  cmov(0xc),
	"cmovle": cmov(0xe),
	"cmovne": cmov(0x5),
	"cmp": specs{
		rm("rb,rb", 0x38), rm("r*,r*", 0x39),
		rm("mb,rb", 0x38), rm("m*,r*", 0x39),
		rm("rb,mb", 0x3a), rm("r*,m*", 0x3b),
		ext("vb,i*", 0x80, 7), ext("v*,i*", 0x81, 7),
	}.with(PRECISION_IMM),
	"cpuid": {none("", 0x0fa2)},
	"dec":   {ext("vb", 0xfe, 1), ext("v*", 0xff, 1)},
	"div":   unary(6),
	"hlt":   {none("", 0xf4)},
	"idiv":  unary(7),
	"imul": append(unary(5),
		rm("r*,r*", 0x0faf).with(ENC_RM),
		rm("r*,m*", 0x0faf),
	),
	"inc":   {ext("vb", 0xfe, 0), ext("v*", 0xff, 0)},
	"int3":  {none("", 0xcc)},
	"jmp":   branch(4),
	"lea":   {rm("r*,m*", 0x8d)},
	"leave": {none("", 0xc9)},
	"mov": specs{
		rm("rb,rb", 0x88), rm("r*,r*", 0x89),
		rm("mb,rb", 0x88), rm("m*,r*", 0x89),
		rm("rb,mb", 0x8a), rm("r*,m*", 0x8b),
		oreg("rb,i*", 0xb0), oreg("rw,i*", 0xb8), oreg("rd,i*", 0xb8), oreg("rq,iq", 0xb8),
		ext("rq,i*", 0xc7, 0),
		ext("mb,i*", 0xc6, 0), ext("m*,i*", 0xc7, 0),
	}.with(PRECISION_IMM),
	"mul": unary(4),
	"neg": unary(3),
	"nop": {none("", 0x90)},
	"not": unary(2),
	"or":  alu(1),
	"pause": {
		none("", 0xf390),
	},
	"pop": specs{
		oreg("rq", 0x58), oreg("rw", 0x58),
		ext("mq", 0x8f, 0), ext("mw", 0x8f, 0), ext("m_", 0x8f, 0),
	}.with(DEFAULT_64),
	"push": specs{
		oreg("rq", 0x50), oreg("rw", 0x50),
		ext("mq", 0xff, 6), ext("mw", 0xff, 6), ext("m_", 0xff, 6),
		none("ib", 0x6a), none("id", 0x68),
	}.with(DEFAULT_64),
	"ret":    {none("", 0xc3)},
	"rol":    shift(0),
	"ror":    shift(1),
	"sar":    shift(7),
	"sbb":    alu(3),
	"seta":   setcc(0x7),
	"setae":  setcc(0x3),
	"setb":   setcc(0x2),
	"setbe":  setcc(0x6),
	"sete":   setcc(0x4),
	"setg":   setcc(0xf),
	"setge":  setcc(0xd),
	"setl":   setcc(0xc),
	"setle":  setcc(0xe),
	"setne":  setcc(0x5),
	"shl":    shift(4),
	"shr":    shift(5),
	"sub":    alu(5),
	"syscall": {none("", 0x0f05)},
	"test": {
		rm("rb,rb", 0x84), rm("r*,r*", 0x85),
		rm("mb,rb", 0x84), rm("m*,r*", 0x85),
		rm("rb,mb", 0x84), rm("r*,m*", 0x85),
		ext("vb,ib", 0xf6, 0), ext("vd,id", 0xf7, 0), ext("vq,id", 0xf7, 0),
	},
	"ud2": {none("", 0x0f0b)},
	"xchg": {
		rm("rb,rb", 0x86), rm("r*,r*", 0x87),
		rm("mb,rb", 0x86), rm("m*,r*", 0x87),
		rm("rb,mb", 0x86), rm("r*,m*", 0x87),
	},
	"xor": alu(6),
}
