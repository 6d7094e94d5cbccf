// Package program reads a list of instructions described as YAML (or JSON) and assembles it.
//
// Each item names a mnemonic and its arguments; an item may instead align the program counter
// or insert raw bytes:
//
//	# sum.yaml
//	- op: mov
//	  args:
//	    - reg: rax
//	    - mem: {base: rdi, index: rcx, scale: 8, disp: 16, size: 8}
//	- op: add
//	  args: [{reg: rax}, {imm: -1, bits: 8}]
//	- align: 16
//	- raw: "0f0b"
//	- op: ret
//
// An immediate without bits takes the narrowest of 8, 32 and 64 bits which holds its value, and
// is widened from 8 to 32 bits when the mnemonic has no 8-bit immediate form for its operands.
// An immediate with bits 8 or 32 may go above the signed range only when the destination has
// exactly that width; anywhere else the CPU would sign-extend it.
// A memory argument without size takes the size of the other argument.
package program

import (
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"math"

	"gopkg.in/yaml.v3"

	astamboly "github.com/mahanfarzaneh2000/Astamboly"
	"github.com/mahanfarzaneh2000/Astamboly/lookup"
)

// Kind of a program item.
type Kind uint8

const (
	KindInst Kind = iota
	KindAlign
	KindRaw
)

// An Item is one entry of a program.
type Item struct {
	Line  int // source line, 1-based
	Kind  Kind
	Inst  astamboly.Instruction
	Align uint8
	Raw   []byte
}

// A Program is a decoded list of items.
type Program struct {
	Items []Item
}

// Instructions of the program, without alignment and raw items.
func (p *Program) Instructions() []astamboly.Instruction {
	var insts []astamboly.Instruction
	for _, it := range p.Items {
		if it.Kind == KindInst {
			insts = append(insts, it.Inst)
		}
	}
	return insts
}

// Encode every item with a. The first error is returned together with the source line of the
// item that caused it.
func (p *Program) Assemble(a *astamboly.Assembler) error {
	for _, it := range p.Items {
		switch it.Kind {
		case KindInst:
			a.Emit(it.Inst)
		case KindAlign:
			a.AlignPC(it.Align)
		case KindRaw:
			a.Raw(it.Raw)
		}
		if err := a.Err(); err != nil {
			return fmt.Errorf("line %d: %w", it.Line, err)
		}
	}
	return nil
}

type itemDoc struct {
	Op    string   `yaml:"op"`
	Args  []argDoc `yaml:"args"`
	Align *int     `yaml:"align"`
	Raw   *string  `yaml:"raw"`
}

type argDoc struct {
	Reg  string  `yaml:"reg"`
	Imm  *int64  `yaml:"imm"`
	Bits int     `yaml:"bits"`
	Mem  *memDoc `yaml:"mem"`
}

type memDoc struct {
	Base  string `yaml:"base"`
	Index string `yaml:"index"`
	Scale uint8  `yaml:"scale"`
	Disp  int32  `yaml:"disp"`
	Size  uint8  `yaml:"size"`
}

// Decode a program from r. An empty document is an empty program.
func Decode(r io.Reader) (*Program, error) {
	var root yaml.Node
	if err := yaml.NewDecoder(r).Decode(&root); err != nil {
		if errors.Is(err, io.EOF) {
			return &Program{}, nil
		}
		return nil, err
	}
	if len(root.Content) == 0 {
		return &Program{}, nil
	}
	seq := root.Content[0]
	if seq.Kind != yaml.SequenceNode {
		return nil, fmt.Errorf("line %d: program must be a list of items", seq.Line)
	}

	p := &Program{Items: make([]Item, 0, len(seq.Content))}
	for _, node := range seq.Content {
		var doc itemDoc
		if err := node.Decode(&doc); err != nil {
			return nil, fmt.Errorf("line %d: %w", node.Line, err)
		}
		it, err := doc.item()
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", node.Line, err)
		}
		it.Line = node.Line
		p.Items = append(p.Items, it)
	}
	return p, nil
}

func (d itemDoc) item() (Item, error) {
	set := 0
	for _, ok := range []bool{d.Op != "", d.Align != nil, d.Raw != nil} {
		if ok {
			set++
		}
	}
	if set != 1 {
		return Item{}, errors.New("item needs exactly one of op, align or raw")
	}

	switch {
	case d.Align != nil:
		a := *d.Align
		if a <= 0 || a > 128 || a&(a-1) != 0 {
			return Item{}, fmt.Errorf("alignment %d is not a power of 2 up to 128", a)
		}
		return Item{Kind: KindAlign, Align: uint8(a)}, nil
	case d.Raw != nil:
		raw, err := hex.DecodeString(*d.Raw)
		if err != nil {
			return Item{}, fmt.Errorf("raw bytes: %w", err)
		}
		return Item{Kind: KindRaw, Raw: raw}, nil
	}

	inst, ok := lookup.Inst(d.Op)
	if !ok {
		return Item{}, fmt.Errorf("unknown mnemonic %q", d.Op)
	}
	args := make([]astamboly.Arg, len(d.Args))
	for i, a := range d.Args {
		arg, err := a.arg()
		if err != nil {
			return Item{}, fmt.Errorf("argument %d of %s: %w", i+1, inst, err)
		}
		args[i] = arg
	}
	for i, a := range d.Args {
		if err := a.checkUnsigned(args, i); err != nil {
			return Item{}, fmt.Errorf("argument %d of %s: %w", i+1, inst, err)
		}
	}
	in, err := astamboly.NewInstruction(inst, args...)
	if err != nil {
		return Item{}, err
	}
	return Item{Kind: KindInst, Inst: widen(in, d.Args)}, nil
}

// widen replaces an 8-bit immediate picked without bits by its 32-bit form when only the
// latter has an encoding, as for TEST which has no sign-extended imm8.
func widen(in astamboly.Instruction, docs []argDoc) astamboly.Instruction {
	var m astamboly.InstMatcher
	if m.Match(in) == nil {
		return in
	}
	args := in.Args()
	wide := make([]astamboly.Arg, len(args))
	changed := false
	for i, arg := range args {
		wide[i] = arg
		if imm, ok := arg.(astamboly.Imm8); ok && docs[i].Bits == 0 {
			wide[i] = astamboly.Imm32(imm)
			changed = true
		}
	}
	if !changed {
		return in
	}
	w, err := astamboly.NewInstruction(in.Inst, wide...)
	if err != nil || m.Match(w) != nil {
		return in
	}
	return w
}

func (a argDoc) arg() (astamboly.Arg, error) {
	switch {
	case a.Reg != "" && a.Imm == nil && a.Mem == nil:
		r, ok := lookup.Reg(a.Reg)
		if !ok {
			return nil, fmt.Errorf("unknown register %q", a.Reg)
		}
		return r, nil
	case a.Imm != nil && a.Reg == "" && a.Mem == nil:
		return immediate(*a.Imm, a.Bits)
	case a.Mem != nil && a.Reg == "" && a.Imm == nil:
		return a.Mem.mem()
	}
	return nil, errors.New("argument needs exactly one of reg, imm or mem")
}

// checkUnsigned rejects an immediate above the signed range of its bits unless the other
// argument has exactly that width.
func (a argDoc) checkUnsigned(args []astamboly.Arg, i int) error {
	if a.Imm == nil {
		return nil
	}
	v := *a.Imm
	switch {
	case a.Bits == 8 && v > math.MaxInt8, a.Bits == 32 && v > math.MaxInt32:
	default:
		return nil
	}
	var width uint8
	if len(args) == 2 {
		switch dst := args[1-i].(type) {
		case astamboly.Reg:
			width = dst.Width()
		case astamboly.Mem:
			width = dst.Width
		}
	}
	if int(width)*8 != a.Bits {
		return fmt.Errorf("immediate %d is sign-extended past %d bits; use a %d-bit destination or a negative value", v, a.Bits, a.Bits)
	}
	return nil
}

func immediate(v int64, bits int) (astamboly.Arg, error) {
	switch bits {
	case 0:
		return astamboly.Imm(v), nil
	case 8:
		if v < -128 || v > 255 {
			return nil, fmt.Errorf("immediate %d does not fit in 8 bits", v)
		}
		return astamboly.Imm8(int8(v)), nil
	case 32:
		if v < -(1<<31) || v > 1<<32-1 {
			return nil, fmt.Errorf("immediate %d does not fit in 32 bits", v)
		}
		return astamboly.Imm32(int32(v)), nil
	case 64:
		return astamboly.Imm64(v), nil
	}
	return nil, fmt.Errorf("immediate size %d is not 8, 32 or 64 bits", bits)
}

func (m memDoc) mem() (astamboly.Arg, error) {
	base, ok := lookup.Reg(m.Base)
	if !ok {
		return nil, fmt.Errorf("unknown base register %q", m.Base)
	}
	if base.Width() != 8 {
		return nil, fmt.Errorf("base register %s is not a 64-bit register", base)
	}
	switch m.Size {
	case 0, 1, 2, 4, 8:
	default:
		return nil, fmt.Errorf("memory size %d is not 1, 2, 4 or 8 bytes", m.Size)
	}

	var mem astamboly.Mem
	if m.Index == "" {
		if m.Scale != 0 {
			return nil, errors.New("scale without an index register")
		}
		mem = astamboly.Ptr(base, m.Disp)
	} else {
		index, ok := lookup.Reg(m.Index)
		if !ok {
			return nil, fmt.Errorf("unknown index register %q", m.Index)
		}
		if index.Width() != 8 || index == astamboly.RSP {
			return nil, fmt.Errorf("%s cannot be an index register", index)
		}
		// mod 00 with a SIB base of 101 means no base at all
		if base.Num()&7 == 5 && m.Disp == 0 {
			return nil, fmt.Errorf("base register %s with an index register needs a non-zero disp", base)
		}
		switch m.Scale {
		case 0, 1, 2, 4, 8:
		default:
			return nil, fmt.Errorf("scale %d is not 1, 2, 4 or 8", m.Scale)
		}
		mem = astamboly.PtrIndex(base, index, m.Scale, m.Disp)
	}
	return mem.Sized(m.Size), nil
}
