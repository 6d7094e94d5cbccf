package program

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	. "github.com/mahanfarzaneh2000/Astamboly"
)

const sum = `
- op: mov
  args:
    - reg: rax
    - mem: {base: rdi, index: rcx, scale: 8, disp: 16}
- op: add
  args: [{reg: rax}, {imm: -1, bits: 8}]
- op: CMP
  args: [{mem: {base: rsi, size: 4}}, {imm: 100000}]
- align: 8
- raw: "0f0b"
- op: ret
`

func TestDecode(t *testing.T) {
	p, err := Decode(strings.NewReader(sum))
	require.NoError(t, err)
	require.Len(t, p.Items, 6)

	want := []Instruction{
		Inst2(MOV, RAX, PtrIndex(RDI, RCX, 8, 16)),
		Inst2(ADD, RAX, Imm8(-1)),
		Inst2(CMP, Ptr(RSI, 0).Sized(4), Imm32(100000)),
		Inst0(RET),
	}
	if diff := cmp.Diff(want, p.Instructions(), cmp.AllowUnexported(Instruction{})); diff != "" {
		t.Fatalf("instructions differ (-want +got):\n%s", diff)
	}

	require.Equal(t, KindAlign, p.Items[3].Kind)
	require.Equal(t, uint8(8), p.Items[3].Align)
	require.Equal(t, []byte{0x0f, 0x0b}, p.Items[4].Raw)
	require.Equal(t, 2, p.Items[0].Line)
	require.Equal(t, 12, p.Items[5].Line)
}

func TestDecodeJSON(t *testing.T) {
	p, err := Decode(strings.NewReader(`[{"op": "push", "args": [{"reg": "r12"}]}, {"op": "pop", "args": [{"reg": "r12"}]}]`))
	require.NoError(t, err)
	want := []Instruction{Inst1(PUSH, R12), Inst1(POP, R12)}
	if diff := cmp.Diff(want, p.Instructions(), cmp.AllowUnexported(Instruction{})); diff != "" {
		t.Fatalf("instructions differ (-want +got):\n%s", diff)
	}
}

func TestDecodeEmpty(t *testing.T) {
	p, err := Decode(strings.NewReader(""))
	require.NoError(t, err)
	require.Empty(t, p.Items)
}

func TestAssemble(t *testing.T) {
	p, err := Decode(strings.NewReader(sum))
	require.NoError(t, err)

	asm := NewAssembler(nil)
	require.NoError(t, p.Assemble(asm))
	require.Equal(t, []byte{
		0x48, 0x8b, 0x44, 0xcf, 0x10, // mov rax, qword ptr [rdi+rcx*8+0x10]
		0x48, 0x83, 0xc0, 0xff, // add rax, -1
		0x81, 0x3e, 0xa0, 0x86, 0x01, 0x00, // cmp dword ptr [rsi], 100000
		0x90,       // align 8
		0x0f, 0x0b, // raw
		0xc3, // ret
	}, asm.Code())
}

func TestAssembleErrorLine(t *testing.T) {
	p, err := Decode(strings.NewReader(`
- op: nop
- op: mov
  args: [{mem: {base: rax}}, {imm: 1}]
`))
	require.NoError(t, err)

	err = p.Assemble(NewAssembler(nil))
	require.ErrorIs(t, err, ErrAmbiguousSize)
	require.Contains(t, err.Error(), "line 3:")
}

func TestAssembleEdgeForms(t *testing.T) {
	cases := []struct {
		name string
		src  string
		code []byte
	}{
		{"test without an imm8 form", `[{op: test, args: [{reg: rax}, {imm: 1}]}]`, []byte{0x48, 0xf7, 0xc0, 0x01, 0x00, 0x00, 0x00}},
		{"test eax", `[{op: test, args: [{reg: eax}, {imm: 1}]}]`, []byte{0xf7, 0xc0, 0x01, 0x00, 0x00, 0x00}},
		{"unsigned imm32 into eax", `[{op: mov, args: [{reg: eax}, {imm: 4294967295, bits: 32}]}]`, []byte{0xb8, 0xff, 0xff, 0xff, 0xff}},
		{"unsigned imm8 into al", `[{op: mov, args: [{reg: al}, {imm: 200, bits: 8}]}]`, []byte{0xb0, 0xc8}},
		{"unsigned imm8 into a byte", `[{op: mov, args: [{mem: {base: rdi, size: 1}}, {imm: 200, bits: 8}]}]`, []byte{0xc6, 0x07, 0xc8}},
		{"rbp base with index", `[{op: mov, args: [{reg: rax}, {mem: {base: rbp, index: rcx, disp: 8}}]}]`, []byte{0x48, 0x8b, 0x44, 0x0d, 0x08}},
	}
	for _, c := range cases {
		p, err := Decode(strings.NewReader(c.src))
		require.NoError(t, err, c.name)
		asm := NewAssembler(nil)
		require.NoError(t, p.Assemble(asm), c.name)
		require.Equal(t, c.code, asm.Code(), c.name)
	}

	p, err := Decode(strings.NewReader(`[{op: test, args: [{reg: rax}, {imm: 1}]}, {op: add, args: [{reg: rax}, {imm: 1}]}]`))
	require.NoError(t, err)
	// ADD keeps its sign-extended imm8 form
	want := []Instruction{Inst2(TEST, RAX, Imm32(1)), Inst2(ADD, RAX, Imm8(1))}
	if diff := cmp.Diff(want, p.Instructions(), cmp.AllowUnexported(Instruction{})); diff != "" {
		t.Fatalf("instructions differ (-want +got):\n%s", diff)
	}
}

func TestDecodeErrors(t *testing.T) {
	cases := map[string]string{
		"not a list":          `op: mov`,
		"unknown op":          `[{op: movz}]`,
		"unknown reg":         `[{op: inc, args: [{reg: r16}]}]`,
		"two kinds":           `[{op: inc, args: [{reg: rax, imm: 1}]}]`,
		"empty arg":           `[{op: inc, args: [{}]}]`,
		"op and align":        `[{op: nop, align: 4}]`,
		"bad align":           `[{align: 3}]`,
		"bad raw":             `[{raw: "0g"}]`,
		"imm bits":            `[{op: push, args: [{imm: 1, bits: 16}]}]`,
		"imm range":           `[{op: push, args: [{imm: 300, bits: 8}]}]`,
		"32-bit base":         `[{op: inc, args: [{mem: {base: eax, size: 4}}]}]`,
		"rsp index":           `[{op: inc, args: [{mem: {base: rax, index: rsp, size: 4}}]}]`,
		"scale":               `[{op: inc, args: [{mem: {base: rax, index: rbx, scale: 3, size: 4}}]}]`,
		"scale alone":         `[{op: inc, args: [{mem: {base: rax, scale: 2, size: 4}}]}]`,
		"size":                `[{op: inc, args: [{mem: {base: rax, size: 3}}]}]`,
		"three args":          `[{op: add, args: [{reg: rax}, {reg: rbx}, {reg: rcx}]}]`,
		"malformed field":     `[{op: [mov]}]`,
		"rbp base with index": `[{op: mov, args: [{reg: rax}, {mem: {base: rbp, index: rcx}}]}]`,
		"r13 base with index": `[{op: mov, args: [{reg: rax}, {mem: {base: r13, index: rcx, scale: 4}}]}]`,
		"imm32 sign-extended": `[{op: mov, args: [{reg: rax}, {imm: 4294967295, bits: 32}]}]`,
		"imm8 sign-extended":  `[{op: mov, args: [{reg: rax}, {imm: 200, bits: 8}]}]`,
		"imm8 into sizeless":  `[{op: mov, args: [{mem: {base: rdi}}, {imm: 200, bits: 8}]}]`,
		"unsigned push":       `[{op: push, args: [{imm: 4294967295, bits: 32}]}]`,
	}
	for name, src := range cases {
		_, err := Decode(strings.NewReader(src))
		require.Error(t, err, name)
	}
}
